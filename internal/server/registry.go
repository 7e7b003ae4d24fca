package server

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/mytravelspring/rio-nido-complete/internal/planner"
)

// Registry holds live guest sessions. A session expires after ttl without
// being touched.
type Registry struct {
	c *cache.Cache
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{c: cache.New(ttl, ttl)}
}

func (r *Registry) Put(s *planner.Session) {
	r.c.SetDefault(s.ID, s)
}

// Get returns the session and extends its lifetime.
func (r *Registry) Get(id string) (*planner.Session, bool) {
	v, ok := r.c.Get(id)
	if !ok {
		return nil, false
	}
	s, ok := v.(*planner.Session)
	if !ok {
		return nil, false
	}
	r.c.SetDefault(id, s)
	return s, true
}

func (r *Registry) Delete(id string) bool {
	if _, ok := r.c.Get(id); !ok {
		return false
	}
	r.c.Delete(id)
	return true
}

func (r *Registry) Len() int { return r.c.ItemCount() }
