// Package filter narrows event sequences by a live text query.
package filter

import (
	"strings"

	"tableflip.dev/whatson/pkg/event"
)

// Match reports whether the event's title, description, or venue contains
// query as a case-insensitive substring. The empty query matches everything.
func Match(e event.Event, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Description), q) ||
		strings.Contains(strings.ToLower(e.Venue), q)
}

// Apply returns the subsequence of events matching query, preserving the
// relative order of the input.
func Apply(events []event.Event, query string) []event.Event {
	if query == "" {
		return events
	}
	kept := make([]event.Event, 0, len(events))
	for _, e := range events {
		if Match(e, query) {
			kept = append(kept, e)
		}
	}
	return kept
}
