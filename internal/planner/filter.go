package planner

import (
	"fmt"
	"slices"

	"github.com/mytravelspring/rio-nido-complete/internal/catalog"
	"github.com/mytravelspring/rio-nido-complete/internal/model"
)

// FilterParams selects candidates for one slot.
type FilterParams struct {
	Categories []model.Category
	Clusters   []model.Cluster
	Used       *UsedSet
	Slot       model.TimeSlot
}

func (p FilterParams) validate() error {
	if len(p.Categories) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvalidFilter)
	}
	if len(p.Clusters) == 0 {
		return fmt.Errorf("%w: no clusters", ErrInvalidFilter)
	}
	switch p.Slot {
	case model.SlotMorning, model.SlotLunch, model.SlotAfternoon, model.SlotEvening:
	default:
		return fmt.Errorf("%w: %w: %q", ErrInvalidFilter, model.ErrInvalidTimeSlot, p.Slot)
	}
	return nil
}

// Filter returns every unused business in one of the clusters and categories
// that suits the slot. Results follow cluster order, then category order,
// then catalog order. An empty result is not an error.
func Filter(c *catalog.Catalog, p FilterParams) ([]model.Business, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	var out []model.Business
	seenCluster := make([]model.Cluster, 0, len(p.Clusters))
	for _, cl := range p.Clusters {
		if slices.Contains(seenCluster, cl) {
			continue
		}
		seenCluster = append(seenCluster, cl)

		seenCat := make([]model.Category, 0, len(p.Categories))
		for _, cat := range p.Categories {
			if slices.Contains(seenCat, cat) {
				continue
			}
			seenCat = append(seenCat, cat)

			for _, b := range c.InCluster(cl, cat) {
				if p.Used.Has(b.Name) || !b.AvailableAt(p.Slot) {
					continue
				}
				out = append(out, b)
			}
		}
	}
	return out, nil
}
