// Package model defines the itinerary domain types.
package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidCluster     = errors.New("invalid cluster")
	ErrInvalidTimeSlot    = errors.New("invalid time slot")
	ErrInvalidSlotType    = errors.New("invalid slot type")
	ErrInvalidPriceTier   = errors.New("invalid price tier")
	ErrInvalidTravelStyle = errors.New("invalid travel style")
)

// Category is the kind of experience a business offers.
type Category string

const (
	CategoryFood      Category = "food"
	CategoryCoffee    Category = "coffee"
	CategoryDessert   Category = "dessert"
	CategoryWine      Category = "wine"
	CategoryNature    Category = "nature"
	CategoryArts      Category = "arts"
	CategoryShopping  Category = "shopping"
	CategoryMusic     Category = "music"
	CategoryWellness  Category = "wellness"
	CategorySignature Category = "signature"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryFood, CategoryCoffee, CategoryDessert, CategoryWine, CategoryNature,
	CategoryArts, CategoryShopping, CategoryMusic, CategoryWellness, CategorySignature,
}

var categoryLabels = map[Category]string{
	CategoryFood:      "Local Food & Dining",
	CategoryCoffee:    "Coffee Culture",
	CategoryDessert:   "Sweets & Treats",
	CategoryWine:      "Wine & Tasting",
	CategoryNature:    "Nature & Outdoors",
	CategoryArts:      "Arts & Culture",
	CategoryShopping:  "Local Shopping",
	CategoryMusic:     "Music & Nightlife",
	CategoryWellness:  "Wellness & Spa",
	CategorySignature: "Signature Experience",
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Selectable reports whether a guest may pick the category as an interest.
func (c Category) Selectable() bool {
	return c.Valid() && c != CategorySignature
}

func (c Category) Label() string { return categoryLabels[c] }

// ParseCategory converts a raw string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// Cluster is a geographic grouping of businesses.
type Cluster string

const (
	ClusterLodge      Cluster = "lodge"
	ClusterTownCenter Cluster = "town-center"
	ClusterWineRegion Cluster = "wine-region"
	ClusterCoastal    Cluster = "coastal"
)

// Clusters lists every cluster, nearest first.
var Clusters = []Cluster{ClusterLodge, ClusterTownCenter, ClusterWineRegion, ClusterCoastal}

var clusterLabels = map[Cluster]string{
	ClusterLodge:      "Lodge",
	ClusterTownCenter: "Guerneville",
	ClusterWineRegion: "Wineries",
	ClusterCoastal:    "Coastal",
}

func (c Cluster) Valid() bool {
	_, ok := clusterLabels[c]
	return ok
}

// Label is the name shown as a day's cluster focus.
func (c Cluster) Label() string { return clusterLabels[c] }

// ParseCluster converts a raw string into a Cluster.
func ParseCluster(s string) (Cluster, error) {
	c := Cluster(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCluster, s)
	}
	return c, nil
}

// TimeSlot is a time-of-day window a business is suited for.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotLunch     TimeSlot = "lunch"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

// TimeSlots lists every time slot in chronological order.
var TimeSlots = []TimeSlot{SlotMorning, SlotLunch, SlotAfternoon, SlotEvening}

func (t TimeSlot) Valid() bool {
	switch t {
	case SlotMorning, SlotLunch, SlotAfternoon, SlotEvening:
		return true
	}
	return false
}

// ParseTimeSlot converts a raw string into a TimeSlot.
func ParseTimeSlot(s string) (TimeSlot, error) {
	t := TimeSlot(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeSlot, s)
	}
	return t, nil
}

// SlotType is the position an activity occupies in a day plan.
type SlotType string

const (
	SlotTypeMorning   SlotType = "morning"
	SlotTypeSignature SlotType = "signature"
	SlotTypeMain      SlotType = "main"
	SlotTypeLunch     SlotType = "lunch"
	SlotTypeEvening   SlotType = "evening"
)

// DaySequence is the fixed order in which slots are filled each day.
var DaySequence = []SlotType{
	SlotTypeMorning, SlotTypeSignature, SlotTypeMain, SlotTypeLunch, SlotTypeEvening,
}

func (s SlotType) Valid() bool {
	switch s {
	case SlotTypeMorning, SlotTypeSignature, SlotTypeMain, SlotTypeLunch, SlotTypeEvening:
		return true
	}
	return false
}

// TimeSlot returns the time-of-day window catalog candidates must match.
// Signature slots are not filled from the catalog and report false.
func (s SlotType) TimeSlot() (TimeSlot, bool) {
	switch s {
	case SlotTypeMorning:
		return SlotMorning, true
	case SlotTypeMain:
		return SlotAfternoon, true
	case SlotTypeLunch:
		return SlotLunch, true
	case SlotTypeEvening:
		return SlotEvening, true
	}
	return "", false
}

// ParseSlotType converts a raw string into a SlotType.
func ParseSlotType(s string) (SlotType, error) {
	t := SlotType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlotType, s)
	}
	return t, nil
}

// PriceTier is a coarse cost indicator.
type PriceTier string

const (
	PriceFree      PriceTier = "Free"
	PriceBudget    PriceTier = "$"
	PriceModerate  PriceTier = "$$"
	PriceExpensive PriceTier = "$$$"
)

func (p PriceTier) Valid() bool {
	switch p {
	case PriceFree, PriceBudget, PriceModerate, PriceExpensive:
		return true
	}
	return false
}

// ParsePriceTier converts a raw string into a PriceTier. "free" is accepted in any case.
func ParsePriceTier(s string) (PriceTier, error) {
	if s == "free" || s == "FREE" {
		return PriceFree, nil
	}
	p := PriceTier(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriceTier, s)
	}
	return p, nil
}

// TravelStyle selects how far a guest is willing to drive.
type TravelStyle string

const (
	TravelStayLocal TravelStyle = "stay_local"
	TravelRelaxed   TravelStyle = "relaxed"
	TravelModerate  TravelStyle = "moderate"
	TravelDayTrip   TravelStyle = "day_trip"
)

// TravelStyles lists every travel style, most restrictive first.
var TravelStyles = []TravelStyle{TravelStayLocal, TravelRelaxed, TravelModerate, TravelDayTrip}

func (t TravelStyle) Valid() bool {
	switch t {
	case TravelStayLocal, TravelRelaxed, TravelModerate, TravelDayTrip:
		return true
	}
	return false
}

// MostRestrictive reports whether the style keeps every day in town.
func (t TravelStyle) MostRestrictive() bool { return t == TravelStayLocal }

// ParseTravelStyle converts a raw string into a TravelStyle.
func ParseTravelStyle(s string) (TravelStyle, error) {
	t := TravelStyle(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTravelStyle, s)
	}
	return t, nil
}
