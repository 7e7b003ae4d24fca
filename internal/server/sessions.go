package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/mytravelspring/rio-nido-complete/internal/export"
	"github.com/mytravelspring/rio-nido-complete/internal/model"
	"github.com/mytravelspring/rio-nido-complete/internal/planner"
)

const qrSize = 256

func (s *Server) session(w http.ResponseWriter, ps httprouter.Params) (*planner.Session, bool) {
	sess, ok := s.sessions.Get(ps.ByName("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "session_not_found", "no session "+ps.ByName("id"))
		return nil, false
	}
	return sess, true
}

func decodePreferences(w http.ResponseWriter, r *http.Request) (model.Preferences, bool) {
	var prefs model.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return prefs, false
	}
	if err := prefs.Validate(); err != nil {
		status, code := statusFor(err)
		if status == http.StatusInternalServerError {
			status, code = http.StatusBadRequest, "invalid_preferences"
		}
		writeError(w, status, code, err.Error())
		return prefs, false
	}
	return prefs, true
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	prefs, ok := decodePreferences(w, r)
	if !ok {
		return
	}
	sess := planner.NewSession(s.planner)
	if err := sess.Generate(prefs); err != nil {
		s.writeErr(w, r, err)
		return
	}
	s.sessions.Put(sess)
	s.log.InfoContext(r.Context(), "session created", "session", sess.ID, "days", prefs.TripDuration)
	writeJSON(w, http.StatusCreated, sess.Snapshot())
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, ok := s.session(w, ps)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleRegenerate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, ok := s.session(w, ps)
	if !ok {
		return
	}
	prefs, ok := decodePreferences(w, r)
	if !ok {
		return
	}
	if err := sess.Generate(prefs); err != nil {
		s.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !s.sessions.Delete(ps.ByName("id")) {
		writeError(w, http.StatusNotFound, "session_not_found", "no session "+ps.ByName("id"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func intParam(w http.ResponseWriter, ps httprouter.Params, name string) (int, bool) {
	n, err := strconv.Atoi(ps.ByName(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_"+name, fmt.Sprintf("%s must be an integer", name))
		return 0, false
	}
	return n, true
}

func (s *Server) handleAlternatives(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, ok := s.session(w, ps)
	if !ok {
		return
	}
	day, ok := intParam(w, ps, "day")
	if !ok {
		return
	}
	idx, ok := intParam(w, ps, "activity")
	if !ok {
		return
	}
	alts, err := sess.Alternatives(day, idx)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	now := s.planner.Now()
	items := make([]BusinessView, 0, len(alts))
	for _, b := range alts {
		items = append(items, newBusinessView(b, now))
	}
	writeJSON(w, http.StatusOK, map[string]any{"alternatives": items})
}

// SwapRequest names the activity to replace and its substitute.
// Day is 1-based and Activity is 0-based.
type SwapRequest struct {
	Day      int    `json:"day"`
	Activity int    `json:"activity"`
	Name     string `json:"name"`
}

type SwapResponse struct {
	Replaced model.Business          `json:"replaced"`
	Session  planner.SessionSnapshot `json:"session"`
}

func (s *Server) handleSwap(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, ok := s.session(w, ps)
	if !ok {
		return
	}
	var req SwapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "missing_name", "name is required")
		return
	}
	old, err := sess.Swap(req.Day, req.Activity, req.Name)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SwapResponse{Replaced: old, Session: sess.Snapshot()})
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, ok := s.session(w, ps)
	if !ok {
		return
	}
	day, ok := intParam(w, ps, "day")
	if !ok {
		return
	}
	snap := sess.Snapshot()
	d, ok := snap.Itinerary.Day(day)
	if !ok {
		writeError(w, http.StatusNotFound, "day_not_found", fmt.Sprintf("no day %d", day))
		return
	}

	var buf bytes.Buffer
	if err := export.ICS(&buf, *d, export.ICSOptions{Stamp: s.planner.Now()}); err != nil {
		s.writeErr(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+export.CalendarFilename(day))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (s *Server) shareLink(snap planner.SessionSnapshot) (string, error) {
	return export.ShareLink(s.shareBase, snap.Preferences, snap.Itinerary, s.planner.Now())
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, ok := s.session(w, ps)
	if !ok {
		return
	}
	link, err := s.shareLink(sess.Snapshot())
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"link": link})
}

func (s *Server) handleShareQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, ok := s.session(w, ps)
	if !ok {
		return
	}
	link, err := s.shareLink(sess.Snapshot())
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	png, err := export.ShareQR(link, qrSize)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (s *Server) handleExportText(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, ok := s.session(w, ps)
	if !ok {
		return
	}
	snap := sess.Snapshot()
	var buf bytes.Buffer
	if err := export.Text(&buf, snap.Itinerary, snap.Preferences); err != nil {
		s.writeErr(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, ok := s.session(w, ps)
	if !ok {
		return
	}
	snap := sess.Snapshot()
	var qr []byte
	if link, err := s.shareLink(snap); err == nil {
		qr, _ = export.ShareQR(link, qrSize)
	}

	var buf bytes.Buffer
	if err := export.PDF(&buf, snap.Itinerary, snap.Preferences, qr); err != nil {
		s.writeErr(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=rio-nido-itinerary-"+snap.ID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
