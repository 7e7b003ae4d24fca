package catalog

import (
	"slices"

	"github.com/mytravelspring/rio-nido-complete/internal/model"
)

// StyleInfo describes one travel style and the clusters it can reach.
type StyleInfo struct {
	Style       model.TravelStyle `json:"value"`
	Label       string            `json:"label"`
	Description string            `json:"description"`
	Clusters    []model.Cluster   `json:"clusters"`
}

var travelStyles = []StyleInfo{
	{
		Style:       model.TravelStayLocal,
		Label:       "Stay Local",
		Description: "Lodge area & walking distance only (0-5 min)",
		Clusters:    []model.Cluster{model.ClusterLodge, model.ClusterTownCenter},
	},
	{
		Style:       model.TravelRelaxed,
		Label:       "Relaxed Pace",
		Description: "Short drives welcome (5-12 min)",
		Clusters:    []model.Cluster{model.ClusterLodge, model.ClusterTownCenter},
	},
	{
		Style:       model.TravelModerate,
		Label:       "Moderate Activity",
		Description: "Wine country exploring (up to 15 min)",
		Clusters:    []model.Cluster{model.ClusterLodge, model.ClusterTownCenter, model.ClusterWineRegion},
	},
	{
		Style:       model.TravelDayTrip,
		Label:       "Day Trip Explorer",
		Description: "Full Russian River Valley (15-25 min drives)",
		Clusters:    []model.Cluster{model.ClusterLodge, model.ClusterTownCenter, model.ClusterWineRegion, model.ClusterCoastal},
	},
}

// fallbackClusters are reachable when the travel style is not recognised.
var fallbackClusters = []model.Cluster{model.ClusterLodge, model.ClusterTownCenter}

// TravelStyles returns every known travel style, nearest first.
func TravelStyles() []StyleInfo {
	out := make([]StyleInfo, len(travelStyles))
	for i, s := range travelStyles {
		s.Clusters = slices.Clone(s.Clusters)
		out[i] = s
	}
	return out
}

// Style looks up the description of a travel style.
func Style(style model.TravelStyle) (StyleInfo, bool) {
	for _, s := range travelStyles {
		if s.Style == style {
			s.Clusters = slices.Clone(s.Clusters)
			return s, true
		}
	}
	return StyleInfo{}, false
}

// ClustersFor returns the ordered clusters reachable under style.
func ClustersFor(style model.TravelStyle) []model.Cluster {
	if s, ok := Style(style); ok {
		return s.Clusters
	}
	return slices.Clone(fallbackClusters)
}
