package event

import "time"

// Event is a single directory entry as delivered by the backend. An event is
// never mutated in place; a fetch replaces the whole collection.
type Event struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Venue             string     `json:"venue"`
	Category          string     `json:"category"`
	RegistrationStart time.Time  `json:"registration_start"`
	RegistrationEnd   time.Time  `json:"registration_end"`
	EventStart        time.Time  `json:"event_start"`
	EventEnd          *time.Time `json:"event_end,omitempty"`
	PosterURL         string     `json:"poster_url,omitempty"`
	GoogleFormURL     string     `json:"google_form_url,omitempty"`
	OrgVerified       bool       `json:"is_org_verified"`
}

// CanRegister reports whether a register action may be offered for the event
// under the given status. The window must not be closed and the event must
// carry a registration link.
func (e Event) CanRegister(s Status) bool {
	return s != Closed && e.GoogleFormURL != ""
}

// HasPoster reports whether a poster link may be offered.
func (e Event) HasPoster() bool {
	return e.PosterURL != ""
}

// Collection is the backend's partition of events by registration window.
// The three buckets are mutually exclusive and each is sorted ascending by
// EventStart. Count is the total across all buckets.
type Collection struct {
	Open     []Event `json:"open"`
	Upcoming []Event `json:"upcoming"`
	Closed   []Event `json:"closed"`
	Count    int     `json:"count"`
}

// Bucket returns the events partitioned under the given status.
func (c *Collection) Bucket(s Status) []Event {
	switch s {
	case Open:
		return c.Open
	case Upcoming:
		return c.Upcoming
	case Closed:
		return c.Closed
	}
	return nil
}
