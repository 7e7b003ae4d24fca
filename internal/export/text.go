// Package export renders itineraries for guests: plain text, calendar files,
// PDF, share links and map links.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/mytravelspring/rio-nido-complete/internal/catalog"
	"github.com/mytravelspring/rio-nido-complete/internal/model"
)

// Title is the heading used by every rendering.
func Title(prefs model.Preferences) string {
	if prefs.GuestName == "" {
		return catalog.Lodge.Name + " Itinerary"
	}
	return fmt.Sprintf("%s Itinerary for %s", catalog.Lodge.Name, prefs.GuestName)
}

// Summary describes the trip in one line.
func Summary(prefs model.Preferences, days int) string {
	parts := []string{plural(days, "day")}
	if prefs.GroupSize > 0 {
		parts = append(parts, plural(prefs.GroupSize, "guest"))
	}
	if s, ok := catalog.Style(prefs.TravelStyle); ok {
		parts = append(parts, s.Label)
	}
	return strings.Join(parts, " | ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// DayHeading is the heading for one day.
func DayHeading(d model.DayPlan) string {
	return fmt.Sprintf("Day %d - %s (%s)", d.Day, d.DisplayDate, d.FocusLabel)
}

// Text writes a plain-text rendering of the itinerary.
func Text(w io.Writer, it *model.Itinerary, prefs model.Preferences) error {
	var b strings.Builder
	days := 0
	if it != nil {
		days = len(it.Days)
	}

	fmt.Fprintln(&b, Title(prefs))
	fmt.Fprintln(&b, catalog.Lodge.Address)
	fmt.Fprintln(&b, Summary(prefs, days))

	if it != nil {
		for _, d := range it.Days {
			fmt.Fprintln(&b)
			fmt.Fprintln(&b, DayHeading(d))
			if len(d.Activities) == 0 {
				fmt.Fprintln(&b, "  Free day - ask the front desk for ideas.")
			}
			for _, a := range d.Activities {
				writeActivity(&b, a)
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeActivity(b *strings.Builder, a model.ScheduledActivity) {
	const indent = "            "
	biz := a.Activity
	fmt.Fprintf(b, "  %-9s %s", a.Time, biz.Name)
	if biz.Type != "" {
		fmt.Fprintf(b, " (%s)", biz.Type)
	}
	fmt.Fprintln(b)

	if biz.Description != "" {
		fmt.Fprintln(b, indent+biz.Description)
	}
	var facts []string
	if biz.Rating > 0 {
		facts = append(facts, fmt.Sprintf("%.1f stars", biz.Rating))
	}
	if biz.Price != "" {
		facts = append(facts, string(biz.Price))
	}
	if biz.DriveTime != "" {
		facts = append(facts, biz.DriveTime)
	}
	if len(facts) > 0 {
		fmt.Fprintln(b, indent+strings.Join(facts, " | "))
	}
	if a.Signature != nil {
		fmt.Fprintf(b, "%s%s, %s", indent, a.Signature.Location, a.Signature.Duration)
		if a.Signature.BookingRequired {
			fmt.Fprint(b, ", booking required")
		}
		fmt.Fprintln(b)
		return
	}
	if biz.LocalInsight != "" {
		fmt.Fprintln(b, indent+"Local tip: "+biz.LocalInsight)
	}
}
