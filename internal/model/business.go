package model

import (
	"fmt"
	"slices"
)

// Hours describes when a business is open and which slots it suits.
// Open and Close form the half-open interval [Open, Close) in 24h clock hours.
type Hours struct {
	Open  int        `json:"open"`
	Close int        `json:"close"`
	Slots []TimeSlot `json:"time_appropriate,omitempty"`
}

// OpenAt reports whether hour falls inside [Open, Close).
func (h Hours) OpenAt(hour int) bool {
	return hour >= h.Open && hour < h.Close
}

// Business is an immutable catalog entry. Name is its identity key.
type Business struct {
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	Rating       float64   `json:"rating"`
	Price        PriceTier `json:"price_range"`
	Category     Category  `json:"category"`
	Cluster      Cluster   `json:"cluster,omitempty"`
	LocalInsight string    `json:"local_insight,omitempty"`
	DriveTime    string    `json:"drive_time,omitempty"`
	Hours        *Hours    `json:"hours,omitempty"`
}

// AvailableAt reports whether the business suits slot.
// A business without hours, or without slot tags, suits every slot.
func (b Business) AvailableAt(slot TimeSlot) bool {
	if b.Hours == nil || len(b.Hours.Slots) == 0 {
		return true
	}
	return slices.Contains(b.Hours.Slots, slot)
}

// Clone returns a copy that shares no memory with b.
func (b Business) Clone() Business {
	if b.Hours != nil {
		h := *b.Hours
		h.Slots = slices.Clone(b.Hours.Slots)
		b.Hours = &h
	}
	return b
}

// Validate checks the fields a catalog relies on.
func (b Business) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("business name is required")
	}
	if !b.Category.Valid() || b.Category == CategorySignature {
		return fmt.Errorf("business %q: %w: %q", b.Name, ErrInvalidCategory, b.Category)
	}
	if !b.Cluster.Valid() {
		return fmt.Errorf("business %q: %w: %q", b.Name, ErrInvalidCluster, b.Cluster)
	}
	if b.Price != "" && !b.Price.Valid() {
		return fmt.Errorf("business %q: %w: %q", b.Name, ErrInvalidPriceTier, b.Price)
	}
	if b.Rating < 0 || b.Rating > 5 {
		return fmt.Errorf("business %q: rating %.1f out of range 0-5", b.Name, b.Rating)
	}
	if b.Hours != nil {
		if b.Hours.Open < 0 || b.Hours.Open > 23 || b.Hours.Close < 0 || b.Hours.Close > 24 {
			return fmt.Errorf("business %q: hours %d-%d out of range", b.Name, b.Hours.Open, b.Hours.Close)
		}
		for _, s := range b.Hours.Slots {
			if !s.Valid() {
				return fmt.Errorf("business %q: %w: %q", b.Name, ErrInvalidTimeSlot, s)
			}
		}
	}
	return nil
}

// SignatureRating is the fixed rating given to an injected signature experience.
const SignatureRating = 5.0

// SignatureExperience is a premium add-on that is not part of any cluster.
type SignatureExperience struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Duration        string    `json:"duration"`
	Price           PriceTier `json:"price_range"`
	Location        string    `json:"location"`
	Distance        string    `json:"distance"`
	BookingRequired bool      `json:"booking_required"`
}

// AsBusiness renders the experience as the Business-like record placed in a day plan.
func (s SignatureExperience) AsBusiness() Business {
	return Business{
		Name:         s.Name,
		Type:         "Signature Experience",
		Description:  s.Description,
		Rating:       SignatureRating,
		Price:        s.Price,
		Category:     CategorySignature,
		LocalInsight: s.Location,
		DriveTime:    s.Distance,
		Hours:        &Hours{Slots: []TimeSlot{SlotMorning, SlotAfternoon}},
	}
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
