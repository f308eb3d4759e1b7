// Package key displays the status legend.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/whatson/pkg/event"
)

// Key prints the legend describing registration-window statuses.
type Key struct{}

func (k *Key) Do(_ context.Context) error {
	bold := color.New(color.Bold)

	_, _ = fmt.Fprintln(color.Output, "")

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Symbol"), bold.Sprint("Meaning"))
	for _, s := range event.Statuses() {
		g := s.Glyph()
		tbl.AddRow(g.Key, g.Symbol, g.Meaning)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
	return nil
}
