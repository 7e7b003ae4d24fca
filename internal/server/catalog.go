package server

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/mytravelspring/rio-nido-complete/internal/catalog"
	"github.com/mytravelspring/rio-nido-complete/internal/export"
	"github.com/mytravelspring/rio-nido-complete/internal/model"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.sessions.Len(),
	})
}

// BusinessView is a catalog entry with the details a guest needs to visit it.
type BusinessView struct {
	model.Business
	Booking    catalog.BookingInfo `json:"booking"`
	Directions string              `json:"directions_url"`
	OpenStatus export.Status       `json:"open_status"`
}

func newBusinessView(b model.Business, now time.Time) BusinessView {
	return BusinessView{
		Business:   b,
		Booking:    catalog.Booking(b.Name),
		Directions: export.DirectionsURL(b.Name, catalog.CoordinatesFor(b.Name)),
		OpenStatus: export.OpenStatus(b, now),
	}
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	var cluster model.Cluster
	var category model.Category
	if v := q.Get("cluster"); v != "" {
		c, err := model.ParseCluster(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_cluster", err.Error())
			return
		}
		cluster = c
	}
	if v := q.Get("category"); v != "" {
		c, err := model.ParseCategory(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_category", err.Error())
			return
		}
		category = c
	}

	now := s.planner.Now()
	items := []BusinessView{}
	for _, b := range s.planner.Catalog().Businesses() {
		if cluster != "" && b.Cluster != cluster {
			continue
		}
		if category != "" && b.Category != category {
			continue
		}
		items = append(items, newBusinessView(b, now))
	}
	writeJSON(w, http.StatusOK, map[string]any{"total": len(items), "items": items})
}

func (s *Server) handleSignatures(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]any{"items": s.planner.Catalog().Signatures()})
}

func (s *Server) handleTravelStyles(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]any{"items": catalog.TravelStyles()})
}
