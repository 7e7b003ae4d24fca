package planner

import (
	"fmt"

	"github.com/mytravelspring/rio-nido-complete/internal/catalog"
	"github.com/mytravelspring/rio-nido-complete/internal/model"
)

// AlternativeClusters returns the clusters searched for substitutes on a day
// planned around focus.
func AlternativeClusters(focus model.Cluster) []model.Cluster {
	return eveningClusters(focus)
}

// AlternativesParams describes the activity a guest wants to replace.
type AlternativesParams struct {
	Current model.Business
	Slot    model.SlotType
	Focus   model.Cluster
	Used    *UsedSet
}

// Alternatives lists unused businesses of the current activity's category
// that could take its slot. Signature slots have no alternatives.
func Alternatives(c *catalog.Catalog, p AlternativesParams) ([]model.Business, error) {
	slot, ok := p.Slot.TimeSlot()
	if !ok {
		return []model.Business{}, nil
	}
	candidates, err := Filter(c, FilterParams{
		Categories: []model.Category{p.Current.Category},
		Clusters:   AlternativeClusters(p.Focus),
		Used:       p.Used,
		Slot:       slot,
	})
	if err != nil {
		return nil, fmt.Errorf("alternatives for %q: %w", p.Current.Name, err)
	}
	out := make([]model.Business, 0, len(candidates))
	for _, b := range candidates {
		if b.Name != p.Current.Name {
			out = append(out, b)
		}
	}
	return out, nil
}

// AlternativesFor resolves the activity at day (1-based) and index (0-based)
// and lists its alternatives.
func AlternativesFor(c *catalog.Catalog, it *model.Itinerary, used *UsedSet, day, index int) ([]model.Business, error) {
	d, ok := it.Day(day)
	if !ok {
		return nil, fmt.Errorf("%w: day %d", ErrActivityNotFound, day)
	}
	act, ok := it.Activity(day, index)
	if !ok {
		return nil, fmt.Errorf("%w: day %d activity %d", ErrActivityNotFound, day, index)
	}
	return Alternatives(c, AlternativesParams{
		Current: act.Activity,
		Slot:    act.Type,
		Focus:   d.Focus,
		Used:    used,
	})
}

// Swap replaces the activity at day (1-based) and index (0-based) with chosen
// and returns the business it replaced. Neither it nor used is modified
// unless every check passes.
func Swap(it *model.Itinerary, used *UsedSet, day, index int, chosen model.Business) (model.Business, error) {
	act, ok := it.Activity(day, index)
	if !ok {
		return model.Business{}, fmt.Errorf("%w: day %d activity %d", ErrActivityNotFound, day, index)
	}
	if act.Type == model.SlotTypeSignature {
		return model.Business{}, fmt.Errorf("%w: signature experience %q", ErrNotSwappable, act.Activity.Name)
	}
	if used.Has(chosen.Name) {
		return model.Business{}, fmt.Errorf("%w: %q", ErrAlreadyUsed, chosen.Name)
	}

	old := act.Activity
	used.Remove(old.Name)
	used.Add(chosen.Name)
	act.Activity = chosen.Clone()
	return old, nil
}
