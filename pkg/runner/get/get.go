package get

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/whatson/pkg/app"
	"tableflip.dev/whatson/pkg/event"
	"tableflip.dev/whatson/pkg/printers"
)

const layoutStart = "2006-01-02 15:04"

// Get fetches the event collection once and prints it grouped by
// registration-window status.
type Get struct {
	Service  *app.Service
	Category string
	Query    string

	// OnlyStatus, when StatusSet, restricts output to a single bucket.
	OnlyStatus event.Status
	StatusSet  bool

	ShowID bool
	Wide   bool
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	col, err := n.Service.Events(ctx, n.Category)
	if err != nil {
		return err
	}

	sections := app.Sections(col, n.Query)
	if n.StatusSet {
		narrowed := sections[:0]
		for _, s := range sections {
			if s.Status == n.OnlyStatus {
				narrowed = append(narrowed, s)
			}
		}
		sections = narrowed
	}

	fmt.Println("")

	if len(sections) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" no events")
		return nil
	}

	if n.Wide {
		n.wide(sections)
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	for _, s := range sections {
		pp.Section(s.Status, s.Events...)
	}
	return nil
}

func (n *Get) wide(sections []app.Section) {
	tbl := uitable.New()
	tbl.Separator = "  "
	b := color.New(color.Bold).SprintFunc()
	if n.ShowID {
		tbl.AddRow(b("ID"), b("Status"), b("Title"), b("Venue"), b("Category"), b("Starts"))
	} else {
		tbl.AddRow(b("Status"), b("Title"), b("Venue"), b("Category"), b("Starts"))
	}
	for _, s := range sections {
		for _, e := range s.Events {
			title := e.Title
			if e.OrgVerified {
				title += " ✔"
			}
			starts := e.EventStart.Format(layoutStart)
			if n.ShowID {
				tbl.AddRow(e.ID, s.Status.String(), title, e.Venue, e.Category, starts)
			} else {
				tbl.AddRow(s.Status.String(), title, e.Venue, e.Category, starts)
			}
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
