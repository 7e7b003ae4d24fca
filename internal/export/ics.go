package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/mytravelspring/rio-nido-complete/internal/model"
)

// DefaultProdID identifies calendars produced by this package.
const DefaultProdID = "-//Rio Nido Lodge//Itinerary//EN"

// EventDuration is how long every calendar event lasts.
const EventDuration = 2 * time.Hour

// icsDateTime is a floating date-time with no zone suffix.
const icsDateTime = "20060102T150405"

// ICSOptions tunes calendar output.
type ICSOptions struct {
	ProdID string
	// Stamp is written as DTSTAMP. Zero means the current time.
	Stamp time.Time
	// Town is appended to each event location.
	Town string
}

// ParseTimeLabel parses a slot label such as "8:30 AM" into hours and minutes.
func ParseTimeLabel(label string) (hour, minute int, err error) {
	t, err := time.Parse("3:04 PM", strings.TrimSpace(label))
	if err != nil {
		return 0, 0, fmt.Errorf("parse time label %q: %w", label, err)
	}
	return t.Hour(), t.Minute(), nil
}

// CalendarFilename is the download name for a day's calendar.
func CalendarFilename(day int) string {
	return fmt.Sprintf("Rio-Nido-Day-%d.ics", day)
}

// ICS writes one day of the itinerary as an iCalendar file. Event times are
// floating local times on the day's date.
func ICS(w io.Writer, day model.DayPlan, opts ICSOptions) error {
	if opts.ProdID == "" {
		opts.ProdID = DefaultProdID
	}
	if opts.Stamp.IsZero() {
		opts.Stamp = time.Now()
	}
	if opts.Town == "" {
		opts.Town = "Guerneville, CA"
	}
	date, err := time.Parse("2006-01-02", day.Date)
	if err != nil {
		return fmt.Errorf("day %d: parse date: %w", day.Day, err)
	}

	cal := ics.NewCalendar()
	cal.SetProductId(opts.ProdID)
	cal.SetCalscale("GREGORIAN")
	for i, a := range day.Activities {
		hour, minute, err := ParseTimeLabel(a.Time)
		if err != nil {
			return fmt.Errorf("day %d activity %d: %w", day.Day, i, err)
		}
		start := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC)
		uid := uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("%s/%d/%s", day.Date, i, a.Activity.Name)))

		event := cal.AddEvent(uid.String() + "@rionido")
		event.SetDtStampTime(opts.Stamp)
		event.SetProperty(ics.ComponentPropertyDtStart, start.Format(icsDateTime))
		event.SetProperty(ics.ComponentPropertyDtEnd, start.Add(EventDuration).Format(icsDateTime))
		event.SetSummary(a.Activity.Name)
		event.SetDescription(a.Activity.Description)
		event.SetLocation(a.Activity.Name + ", " + opts.Town)
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("day %d: write calendar: %w", day.Day, err)
	}
	return nil
}
