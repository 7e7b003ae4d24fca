package export

import (
	"time"

	"github.com/mytravelspring/rio-nido-complete/internal/model"
)

// Status is whether a business is open at a given moment.
type Status string

const (
	StatusOpen    Status = "open"
	StatusClosed  Status = "closed"
	StatusUnknown Status = "unknown"
)

// OpenStatus reports whether b is open at now's wall-clock hour.
// Businesses without opening hours have unknown status.
func OpenStatus(b model.Business, now time.Time) Status {
	h := b.Hours
	if h == nil || (h.Open == 0 && h.Close == 0) {
		return StatusUnknown
	}
	if h.OpenAt(now.Hour()) {
		return StatusOpen
	}
	return StatusClosed
}
