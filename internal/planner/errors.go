package planner

import (
	"errors"

	"github.com/mytravelspring/rio-nido-complete/internal/model"
)

var (
	// Re-exported so callers of the planner need not import model for them.
	ErrNoInterests     = model.ErrNoInterests
	ErrInvalidDuration = model.ErrInvalidDuration

	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadyUsed      = errors.New("business already in itinerary")
	ErrNotSwappable     = errors.New("activity cannot be swapped")
	ErrNotAlternative   = errors.New("business is not an alternative for this activity")
	ErrUnknownSignature = errors.New("unknown signature experience")
	ErrNoItinerary      = errors.New("no itinerary generated")
	ErrInvalidFilter    = errors.New("invalid filter")
)
