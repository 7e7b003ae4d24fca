package model

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrNoInterests     = errors.New("no interests selected")
	ErrInvalidDuration = errors.New("trip duration must be at least one day")
)

// Preferences are a guest's selections. They are passed by value into generation.
type Preferences struct {
	GuestName    string      `json:"guest_name"`
	Interests    []Category  `json:"interests"`
	TravelStyle  TravelStyle `json:"travel_style"`
	TripDuration int         `json:"trip_duration"`
	GroupSize    int         `json:"group_size,omitempty"`
	Signature    string      `json:"signature_experience,omitempty"`
}

// HasInterest reports whether c is among the selected interests.
func (p Preferences) HasInterest(c Category) bool {
	return slices.Contains(p.Interests, c)
}

// Validate checks the preconditions for generating an itinerary.
// An unknown travel style is not an error; it resolves to the nearest clusters.
func (p Preferences) Validate() error {
	if len(p.Interests) == 0 {
		return ErrNoInterests
	}
	for _, c := range p.Interests {
		if !c.Selectable() {
			return fmt.Errorf("%w: %q", ErrInvalidCategory, c)
		}
	}
	if p.TripDuration < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDuration, p.TripDuration)
	}
	if p.GroupSize < 0 {
		return fmt.Errorf("group size must not be negative: got %d", p.GroupSize)
	}
	return nil
}

// ScheduledActivity is one placed activity. Signature is set only for signature slots.
type ScheduledActivity struct {
	Time      string               `json:"time"`
	Type      SlotType             `json:"type"`
	Activity  Business             `json:"activity"`
	Signature *SignatureExperience `json:"signature,omitempty"`
}

// DayPlan is the schedule for one day of the trip.
type DayPlan struct {
	Day         int                 `json:"day"`
	Date        string              `json:"date"`
	DisplayDate string              `json:"display_date"`
	Focus       Cluster             `json:"cluster"`
	FocusLabel  string              `json:"cluster_focus"`
	Activities  []ScheduledActivity `json:"activities"`
}

// Itinerary is the full multi-day plan.
type Itinerary struct {
	Days []DayPlan `json:"days"`
}

// Day returns the plan for the 1-based day number.
func (it *Itinerary) Day(day int) (*DayPlan, bool) {
	if it == nil || day < 1 || day > len(it.Days) {
		return nil, false
	}
	return &it.Days[day-1], true
}

// Activity returns the activity at the 0-based index of the 1-based day.
func (it *Itinerary) Activity(day, index int) (*ScheduledActivity, bool) {
	d, ok := it.Day(day)
	if !ok || index < 0 || index >= len(d.Activities) {
		return nil, false
	}
	return &d.Activities[index], true
}

// Names lists every placed activity name in schedule order.
func (it *Itinerary) Names() []string {
	if it == nil {
		return nil
	}
	var names []string
	for _, d := range it.Days {
		for _, a := range d.Activities {
			names = append(names, a.Activity.Name)
		}
	}
	return names
}

// Clone returns a deep copy.
func (it *Itinerary) Clone() *Itinerary {
	if it == nil {
		return nil
	}
	out := &Itinerary{Days: make([]DayPlan, len(it.Days))}
	for i, d := range it.Days {
		acts := make([]ScheduledActivity, len(d.Activities))
		for j, a := range d.Activities {
			a.Activity = a.Activity.Clone()
			if a.Signature != nil {
				sig := *a.Signature
				a.Signature = &sig
			}
			acts[j] = a
		}
		d.Activities = acts
		out.Days[i] = d
	}
	return out
}
