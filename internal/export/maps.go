package export

import (
	"net/url"
	"strconv"

	"github.com/mytravelspring/rio-nido-complete/internal/model"
)

const directionsBase = "https://www.google.com/maps/dir/"

// DirectionsURL links to driving directions for the named place.
func DirectionsURL(name string, at model.Coordinates) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("destination", strconv.FormatFloat(at.Lat, 'f', -1, 64)+","+strconv.FormatFloat(at.Lng, 'f', -1, 64))
	q.Set("destination_place_id", name)
	return directionsBase + "?" + q.Encode()
}
