package app

import (
	"context"
	"errors"

	"tableflip.dev/whatson/pkg/event"
	"tableflip.dev/whatson/pkg/filter"
)

// Backend is the read-only event directory the client talks to.
type Backend interface {
	Categories(ctx context.Context) ([]string, error)
	Events(ctx context.Context, category string) (*event.Collection, error)
}

// Service provides the high-level operations shared by the CLI runners and
// the TUI.
type Service struct {
	Backend Backend
}

// Categories returns the category directory in backend order.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	if s.Backend == nil {
		return nil, errors.New("app: no backend configured")
	}
	return s.Backend.Categories(ctx)
}

// Events fetches the event collection, scoped to category when non-empty.
func (s *Service) Events(ctx context.Context, category string) (*event.Collection, error) {
	if s.Backend == nil {
		return nil, errors.New("app: no backend configured")
	}
	return s.Backend.Events(ctx, category)
}

// Section is one rendered group of events under a status heading.
type Section struct {
	Status event.Status
	Events []event.Event
}

// Sections assembles the displayed groups: each bucket is narrowed by the
// query independently, the fixed order Open, Upcoming, Closed is kept, and a
// bucket left empty by the filter is omitted entirely.
func Sections(c *event.Collection, query string) []Section {
	if c == nil {
		return nil
	}
	out := make([]Section, 0, 3)
	for _, st := range event.Statuses() {
		kept := filter.Apply(c.Bucket(st), query)
		if len(kept) == 0 {
			continue
		}
		out = append(out, Section{Status: st, Events: kept})
	}
	return out
}
