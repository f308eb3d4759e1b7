package event

import (
	"fmt"
	"time"
)

// Status is the registration-window classification of an event.
type Status int

const (
	Open Status = iota
	Upcoming
	Closed
)

// Statuses lists all statuses in presentation order.
func Statuses() []Status {
	return []Status{Open, Upcoming, Closed}
}

// Glyph describes how a status is presented.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

func DefaultGlyphs() []Glyph {
	return []Glyph{
		{
			Key:     "o",
			Symbol:  "●",
			Meaning: "registration open",
		}, {
			Key:     "u",
			Symbol:  "○",
			Meaning: "registration not open yet",
		}, {
			Key:     "c",
			Symbol:  "✘",
			Meaning: "registration closed",
		},
	}
}

func (s Status) Glyph() Glyph {
	return DefaultGlyphs()[s]
}

func (s Status) String() string {
	switch s {
	case Open:
		return "open"
	case Upcoming:
		return "upcoming"
	case Closed:
		return "closed"
	}
	return "unknown"
}

// Title is the section heading used when grouping events by status.
func (s Status) Title() string {
	switch s {
	case Open:
		return "Open"
	case Upcoming:
		return "Upcoming"
	case Closed:
		return "Closed"
	}
	return "Unknown"
}

// StatusForAlias resolves a status name or shorthand typed on the command
// line, for example "open", "o", or "up".
func StatusForAlias(alias string) (Status, error) {
	for _, s := range Statuses() {
		if alias == s.String() || alias == s.Glyph().Key {
			return s, nil
		}
	}
	switch alias {
	case "up", "soon":
		return Upcoming, nil
	case "done", "past":
		return Closed, nil
	}
	return Open, fmt.Errorf("unknown status %q", alias)
}

// Classify maps an event and an instant to its registration-window status.
// The window [RegistrationStart, RegistrationEnd] is closed on both ends, so
// an instant equal to either bound is Open.
func Classify(e Event, now time.Time) Status {
	if now.Before(e.RegistrationStart) {
		return Upcoming
	}
	if now.After(e.RegistrationEnd) {
		return Closed
	}
	return Open
}
