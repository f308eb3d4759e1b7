// Package stubserver is a small in-memory backend implementing the two read
// endpoints the client consumes. It exists for local development and demos;
// it partitions events with the same classifier the client renders with, so
// the two sides can never disagree about bucket membership.
package stubserver

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"tableflip.dev/whatson/pkg/event"
	"tableflip.dev/whatson/pkg/logging"
	"tableflip.dev/whatson/pkg/timeutil"
)

type Server struct {
	events []event.Event
	clock  timeutil.Clock
}

func New(events []event.Event, clock timeutil.Clock) *Server {
	if clock == nil {
		clock = timeutil.System()
	}
	return &Server{events: events, clock: clock}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/events/categories", s.handleCategories)
	r.Get("/events", s.handleEvents)
	return r
}

// handleCategories lists distinct categories in first-seen order.
func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, e := range s.events {
		if e.Category == "" || seen[e.Category] {
			continue
		}
		seen[e.Category] = true
		names = append(names, e.Category)
	}
	s.writeJSON(w, http.StatusOK, names)
}

// handleEvents partitions the (optionally category-scoped) events by
// registration window at the current instant, each bucket ascending by
// event start.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	now := s.clock.Now()

	col := event.Collection{
		Open:     []event.Event{},
		Upcoming: []event.Event{},
		Closed:   []event.Event{},
	}
	for _, e := range s.events {
		if category != "" && e.Category != category {
			continue
		}
		switch event.Classify(e, now) {
		case event.Open:
			col.Open = append(col.Open, e)
		case event.Upcoming:
			col.Upcoming = append(col.Upcoming, e)
		case event.Closed:
			col.Closed = append(col.Closed, e)
		}
		col.Count++
	}
	for _, bucket := range [][]event.Event{col.Open, col.Upcoming, col.Closed} {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].EventStart.Before(bucket[j].EventStart)
		})
	}

	s.writeJSON(w, http.StatusOK, col)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error("stubserver response encode failed", err)
	}
}
