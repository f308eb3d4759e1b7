// Package export writes fetched events as an iCalendar feed.
package export

import (
	"context"
	"errors"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"tableflip.dev/whatson/pkg/app"
	"tableflip.dev/whatson/pkg/event"
)

// defaultDuration is assumed for events without an end time.
const defaultDuration = 2 * time.Hour

// Export fetches the (optionally category-scoped) event collection and
// serializes every event as a VEVENT to Out.
type Export struct {
	Service  *app.Service
	Category string
	Query    string
	Out      io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}
	if n.Out == nil {
		return errors.New("can not export, no output")
	}

	col, err := n.Service.Events(ctx, n.Category)
	if err != nil {
		return err
	}

	cal := Calendar(app.Sections(col, n.Query))
	_, err = io.WriteString(n.Out, cal.Serialize())
	return err
}

// Calendar builds the iCalendar document for the given sections.
func Calendar(sections []app.Section) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//whatson//event directory//EN")

	for _, s := range sections {
		for _, e := range s.Events {
			addEvent(cal, e)
		}
	}
	return cal
}

func addEvent(cal *ics.Calendar, e event.Event) {
	ve := cal.AddEvent(e.ID)
	ve.SetDtStampTime(e.EventStart)
	ve.SetStartAt(e.EventStart)
	if e.EventEnd != nil {
		ve.SetEndAt(*e.EventEnd)
	} else {
		ve.SetEndAt(e.EventStart.Add(defaultDuration))
	}
	ve.SetSummary(e.Title)
	if e.Description != "" {
		ve.SetDescription(e.Description)
	}
	if e.Venue != "" {
		ve.SetLocation(e.Venue)
	}
	if e.GoogleFormURL != "" {
		ve.SetURL(e.GoogleFormURL)
	}
	if e.Category != "" {
		ve.SetProperty(ics.ComponentPropertyCategories, e.Category)
	}
}
