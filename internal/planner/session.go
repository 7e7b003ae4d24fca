package planner

import (
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/mytravelspring/rio-nido-complete/internal/model"
)

// Session is one guest's in-progress plan. The itinerary and used set are
// only ever changed together under the session lock.
type Session struct {
	ID      string
	Created time.Time

	planner *Planner

	mu        sync.Mutex
	prefs     model.Preferences
	itinerary *model.Itinerary
	used      *UsedSet
}

// SessionSnapshot is a point-in-time copy of a session.
type SessionSnapshot struct {
	ID          string            `json:"id"`
	Created     time.Time         `json:"created_at"`
	Preferences model.Preferences `json:"preferences"`
	Itinerary   *model.Itinerary  `json:"itinerary"`
	Used        []string          `json:"used"`
}

func NewSession(p *Planner) *Session {
	now := p.now()
	return &Session{
		ID:      ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		Created: now,
		planner: p,
		used:    NewUsedSet(),
	}
}

// Generate replaces the session's itinerary with a fresh one for prefs.
// On error the previous itinerary is kept.
func (s *Session) Generate(prefs model.Preferences) error {
	it, used, err := s.planner.Assemble(prefs)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = prefs
	s.itinerary = it
	s.used = used
	return nil
}

// Alternatives lists substitutes for the activity at day (1-based) and index (0-based).
func (s *Session) Alternatives(day, index int) ([]model.Business, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.itinerary == nil {
		return nil, ErrNoItinerary
	}
	return AlternativesFor(s.planner.catalog, s.itinerary, s.used, day, index)
}

// Swap replaces an activity with the named alternative and returns the
// replaced business.
func (s *Session) Swap(day, index int, name string) (model.Business, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.itinerary == nil {
		return model.Business{}, ErrNoItinerary
	}

	act, ok := s.itinerary.Activity(day, index)
	if !ok {
		return model.Business{}, fmt.Errorf("%w: day %d activity %d", ErrActivityNotFound, day, index)
	}
	if act.Type == model.SlotTypeSignature {
		return model.Business{}, fmt.Errorf("%w: signature experience %q", ErrNotSwappable, act.Activity.Name)
	}
	if s.used.Has(name) {
		return model.Business{}, fmt.Errorf("%w: %q", ErrAlreadyUsed, name)
	}

	alts, err := AlternativesFor(s.planner.catalog, s.itinerary, s.used, day, index)
	if err != nil {
		return model.Business{}, err
	}
	for _, b := range alts {
		if b.Name == name {
			old, err := Swap(s.itinerary, s.used, day, index, b)
			if err != nil {
				return model.Business{}, err
			}
			s.planner.log.Info("activity swapped", "session", s.ID, "day", day, "from", old.Name, "to", b.Name)
			return old, nil
		}
	}
	return model.Business{}, fmt.Errorf("%w: %q", ErrNotAlternative, name)
}

// Snapshot returns a copy that later swaps do not affect.
func (s *Session) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionSnapshot{
		ID:          s.ID,
		Created:     s.Created,
		Preferences: s.prefs,
		Itinerary:   s.itinerary.Clone(),
		Used:        s.used.Names(),
	}
}

// Preferences returns the preferences of the current itinerary.
func (s *Session) Preferences() model.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}
