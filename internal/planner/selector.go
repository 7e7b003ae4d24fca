package planner

import (
	"slices"
	"sort"

	"github.com/mytravelspring/rio-nido-complete/internal/model"
)

// Selector picks one business from a candidate list: interest matches first,
// then higher rating, then earlier position in the list.
type Selector struct {
	Interests []model.Category
}

func NewSelector(interests []model.Category) Selector {
	return Selector{Interests: slices.Clone(interests)}
}

func (s Selector) matches(b model.Business) bool {
	return slices.Contains(s.Interests, b.Category)
}

// Select returns the best unused candidate and records it in used.
// It returns false when no candidate remains. A nil used set excludes
// nothing and records nothing.
func (s Selector) Select(candidates []model.Business, used *UsedSet) (model.Business, bool) {
	pool := make([]model.Business, 0, len(candidates))
	for _, b := range candidates {
		if !used.Has(b.Name) {
			pool = append(pool, b)
		}
	}
	if len(pool) == 0 {
		return model.Business{}, false
	}

	sort.SliceStable(pool, func(i, j int) bool {
		mi, mj := s.matches(pool[i]), s.matches(pool[j])
		if mi != mj {
			return mi
		}
		return pool[i].Rating > pool[j].Rating
	})

	chosen := pool[0]
	used.Add(chosen.Name)
	return chosen, true
}
