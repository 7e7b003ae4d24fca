package planner

import (
	"encoding/json"
	"slices"
)

// UsedSet is the ordered set of business names already placed in an
// itinerary. Insertion order is kept so snapshots are reproducible.
type UsedSet struct {
	names []string
	index map[string]int
}

// NewUsedSet returns a set holding names, ignoring duplicates.
func NewUsedSet(names ...string) *UsedSet {
	u := &UsedSet{index: make(map[string]int, len(names))}
	for _, n := range names {
		u.Add(n)
	}
	return u
}

func (u *UsedSet) Has(name string) bool {
	if u == nil {
		return false
	}
	_, ok := u.index[name]
	return ok
}

// Add inserts name and reports whether it was new. A nil set records nothing.
func (u *UsedSet) Add(name string) bool {
	if u == nil || u.Has(name) {
		return false
	}
	if u.index == nil {
		u.index = make(map[string]int)
	}
	u.index[name] = len(u.names)
	u.names = append(u.names, name)
	return true
}

// Remove deletes name and reports whether it was present.
func (u *UsedSet) Remove(name string) bool {
	if u == nil {
		return false
	}
	i, ok := u.index[name]
	if !ok {
		return false
	}
	u.names = slices.Delete(u.names, i, i+1)
	delete(u.index, name)
	for j := i; j < len(u.names); j++ {
		u.index[u.names[j]] = j
	}
	return true
}

func (u *UsedSet) Len() int {
	if u == nil {
		return 0
	}
	return len(u.names)
}

// Names returns the names in insertion order.
func (u *UsedSet) Names() []string {
	if u == nil {
		return nil
	}
	return slices.Clone(u.names)
}

func (u *UsedSet) Clone() *UsedSet {
	return NewUsedSet(u.Names()...)
}

func (u *UsedSet) MarshalJSON() ([]byte, error) {
	names := u.Names()
	if names == nil {
		names = []string{}
	}
	return json.Marshal(names)
}

func (u *UsedSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*u = *NewUsedSet(names...)
	return nil
}
