// Package planner builds multi-day itineraries from a catalog and lets a
// guest swap individual activities without ever repeating a business.
package planner

import (
	"log/slog"
	"time"

	"github.com/mytravelspring/rio-nido-complete/internal/catalog"
)

// Planner generates itineraries against one catalog. It holds no per-guest
// state and is safe for concurrent use.
type Planner struct {
	catalog *catalog.Catalog
	now     func() time.Time
	log     *slog.Logger
}

type Option func(*Planner)

// WithClock sets the clock used to date each day of the trip.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) { p.log = l }
}

func New(c *catalog.Catalog, opts ...Option) *Planner {
	p := &Planner{
		catalog: c,
		now:     time.Now,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *Planner) Catalog() *catalog.Catalog { return p.catalog }

// Now returns the planner clock's current time.
func (p *Planner) Now() time.Time { return p.now() }

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
