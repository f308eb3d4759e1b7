package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/whatson/pkg/event"
)

const layoutStart = "Jan 2 15:04"

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("a1b2c3d4e5f6a7b8  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

// SectionTitle prints a status heading with its event count.
func (pp *PrettyPrint) SectionTitle(s event.Status, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(s.Title())
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" event")
	default:
		_, _ = c.Println(" events")
	}
}

// Section prints heading and events; callers are expected to have dropped
// empty sections already, but an empty slice still renders a faint marker.
func (pp *PrettyPrint) Section(s event.Status, events ...event.Event) {
	pp.SectionTitle(s, len(events))
	pp.Events(s, events...)
}

// Events prints one line per event in the order given.
func (pp *PrettyPrint) Events(s event.Status, events ...event.Event) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	f := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	v := color.New(color.FgGreen)

	for _, e := range events {
		if pp.ShowID {
			_, _ = y.Print(e.ID)
			pad := len(spacing) - len(e.ID)
			if pad < 1 {
				pad = 1
			}
			_, _ = y.Print(strings.Repeat(" ", pad))
		}
		_, _ = t.Printf("%s %s", s.Glyph().Symbol, e.Title)
		if e.OrgVerified {
			_, _ = v.Print(" ✔")
		}
		_, _ = f.Printf("  %s", e.Venue)
		_, _ = f.Printf("  %s", formatStart(e))
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// Categories prints the category directory in the order given.
func (pp *PrettyPrint) Categories(names ...string) {
	t := color.New()
	if len(names) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n")
		return
	}
	for _, n := range names {
		_, _ = t.Printf("  %s\n", n)
	}
}

func formatStart(e event.Event) string {
	out := e.EventStart.Format(layoutStart)
	if e.EventEnd != nil {
		if e.EventEnd.YearDay() == e.EventStart.YearDay() && e.EventEnd.Year() == e.EventStart.Year() {
			out += e.EventEnd.Format("–15:04")
		} else {
			out += e.EventEnd.Format("–Jan 2 15:04")
		}
	}
	return out
}
