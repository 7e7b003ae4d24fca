package catalog

import "github.com/mytravelspring/rio-nido-complete/internal/model"

// BookingMethod is how a guest reserves a business.
type BookingMethod string

const (
	BookingPhone    BookingMethod = "phone"
	BookingWebsite  BookingMethod = "website"
	BookingInternal BookingMethod = "internal"
)

// BookingInfo tells a guest how to reserve a business.
type BookingInfo struct {
	Method BookingMethod `json:"type"`
	Value  string        `json:"value"`
}

var bookings = map[string]BookingInfo{
	"Boon Eat + Drink":        {BookingPhone, "(707) 869-0780"},
	"Furthermore Wines":       {BookingPhone, "(707) 579-1900"},
	"Williams Selyem":         {BookingPhone, "(707) 433-6425"},
	"Gary Farrell Winery":     {BookingWebsite, "https://garyfarrellwinery.com/visit"},
	"Jilly's Roadhouse":       {BookingPhone, "(707) 865-2827"},
	"Graze at Rio Nido Lodge": {BookingInternal, "lodge-concierge"},
}

// Booking returns how to reserve the named business. Unknown names get a
// generic phone entry.
func Booking(name string) BookingInfo {
	if b, ok := bookings[name]; ok {
		return b
	}
	return BookingInfo{Method: BookingPhone, Value: "Call for reservations"}
}

var coordinates = map[string]model.Coordinates{
	"Boon Eat + Drink":        {Lat: 38.5041, Lng: -122.9956},
	"Furthermore Wines":       {Lat: 38.4982, Lng: -123.0156},
	"Williams Selyem":         {Lat: 38.4901, Lng: -123.0201},
	"Coffee Bazaar":           {Lat: 38.5031, Lng: -122.9966},
	"Graze at Rio Nido Lodge": {Lat: 38.5024, Lng: -122.9911},
}

// CoordinatesFor returns the map position of the named business, falling
// back to the lodge.
func CoordinatesFor(name string) model.Coordinates {
	if c, ok := coordinates[name]; ok {
		return c
	}
	return Lodge.Coordinates
}
