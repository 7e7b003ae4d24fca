package planner

import (
	"fmt"
	"slices"

	"github.com/mytravelspring/rio-nido-complete/internal/catalog"
	"github.com/mytravelspring/rio-nido-complete/internal/model"
)

// ClusterFocus picks the cluster a day is planned around.
func ClusterFocus(day int, style model.TravelStyle, allowed []model.Cluster) model.Cluster {
	switch {
	case day == 1 || style.MostRestrictive():
		return model.ClusterTownCenter
	case day == 2 && slices.Contains(allowed, model.ClusterWineRegion):
		return model.ClusterWineRegion
	case day == 3 && slices.Contains(allowed, model.ClusterCoastal):
		return model.ClusterCoastal
	case len(allowed) == 0:
		return model.ClusterTownCenter
	}
	return allowed[day%len(allowed)]
}

// Assemble builds a full itinerary for prefs. The returned used set holds
// every catalog business the itinerary places.
func (p *Planner) Assemble(prefs model.Preferences) (*model.Itinerary, *UsedSet, error) {
	if err := prefs.Validate(); err != nil {
		return nil, nil, fmt.Errorf("assemble itinerary: %w", err)
	}

	var sig *model.SignatureExperience
	if prefs.Signature != "" {
		s, ok := p.catalog.Signature(prefs.Signature)
		if !ok {
			return nil, nil, fmt.Errorf("assemble itinerary: %w: %q", ErrUnknownSignature, prefs.Signature)
		}
		sig = &s
	}

	allowed := catalog.ClustersFor(prefs.TravelStyle)
	start := startOfDay(p.now())
	used := NewUsedSet()
	it := &model.Itinerary{Days: make([]model.DayPlan, 0, prefs.TripDuration)}

	for day := 1; day <= prefs.TripDuration; day++ {
		focus := ClusterFocus(day, prefs.TravelStyle, allowed)
		it.Days = append(it.Days, p.planDay(start, day, prefs, focus, sig, used))
	}

	p.log.Info("itinerary assembled",
		"guest", prefs.GuestName,
		"days", prefs.TripDuration,
		"style", prefs.TravelStyle,
		"placed", used.Len())
	return it, used, nil
}
