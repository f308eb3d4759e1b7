package stubserver

import (
	"time"

	"tableflip.dev/whatson/pkg/event"
)

// SampleEvents returns demo data with registration windows spread around
// now, so every bucket is populated whenever the stub is started.
func SampleEvents(now time.Time) []event.Event {
	end := func(t time.Time) *time.Time { return &t }
	return []event.Event{
		{
			ID:                "smp-jazz",
			Title:             "Jazz Night",
			Description:       "An evening of improvised jazz with the city quartet.",
			Venue:             "Blue Room",
			Category:          "music",
			RegistrationStart: now.Add(-72 * time.Hour),
			RegistrationEnd:   now.Add(48 * time.Hour),
			EventStart:        now.Add(96 * time.Hour),
			EventEnd:          end(now.Add(99 * time.Hour)),
			GoogleFormURL:     "https://forms.example/jazz-night",
			PosterURL:         "https://posters.example/jazz-night.png",
			OrgVerified:       true,
		},
		{
			ID:                "smp-synth",
			Title:             "Synth Meetup",
			Description:       "Bring your own modular rig.",
			Venue:             "Warehouse 9",
			Category:          "music",
			RegistrationStart: now.Add(24 * time.Hour),
			RegistrationEnd:   now.Add(120 * time.Hour),
			EventStart:        now.Add(168 * time.Hour),
			GoogleFormURL:     "https://forms.example/synth-meetup",
		},
		{
			ID:                "smp-gophers",
			Title:             "Gopher Hack Evening",
			Description:       "Lightning talks and pair hacking.",
			Venue:             "The Foundry",
			Category:          "tech",
			RegistrationStart: now.Add(-48 * time.Hour),
			RegistrationEnd:   now.Add(24 * time.Hour),
			EventStart:        now.Add(72 * time.Hour),
			GoogleFormURL:     "https://forms.example/gopher-hack",
			OrgVerified:       true,
		},
		{
			ID:                "smp-raft",
			Title:             "Distributed Systems Reading Group",
			Description:       "This month: consensus papers.",
			Venue:             "Library Annex",
			Category:          "tech",
			RegistrationStart: now.Add(48 * time.Hour),
			RegistrationEnd:   now.Add(96 * time.Hour),
			EventStart:        now.Add(120 * time.Hour),
		},
		{
			ID:                "smp-print",
			Title:             "Letterpress Workshop",
			Description:       "Hands-on introduction to letterpress printing.",
			Venue:             "Print Shed",
			Category:          "art",
			RegistrationStart: now.Add(-240 * time.Hour),
			RegistrationEnd:   now.Add(-48 * time.Hour),
			EventStart:        now.Add(24 * time.Hour),
			PosterURL:         "https://posters.example/letterpress.png",
		},
		{
			ID:                "smp-mural",
			Title:             "Riverside Mural Day",
			Description:       "Community painting along the south bank.",
			Venue:             "Riverside Walk",
			Category:          "community",
			RegistrationStart: now.Add(-168 * time.Hour),
			RegistrationEnd:   now.Add(-24 * time.Hour),
			EventStart:        now.Add(-2 * time.Hour),
			GoogleFormURL:     "https://forms.example/mural-day",
		},
	}
}
