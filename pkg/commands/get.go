package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/whatson/pkg/commands/options"
	"tableflip.dev/whatson/pkg/event"
	"tableflip.dev/whatson/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	so := &options.ServerOptions{}
	co := &options.CategoryOptions{}
	qo := &options.QueryOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	var only event.Status
	var onlySet bool

	long := strings.Builder{}
	long.WriteString("Get all events, or a single registration-window bucket.\n\n")
	long.WriteString("Statuses and aliases:\n")

	validArgs := make([]string, 0, 3)
	for _, s := range event.Statuses() {
		g := s.Glyph()
		long.WriteString(fmt.Sprintf("%s: %s, %s\n", g.Symbol, s, g.Key))
		validArgs = append(validArgs, s.String())
	}

	cmd := &cobra.Command{
		Use:   "get [status]",
		Short: "get events grouped by registration window",
		Long:  long.String(),
		Example: `
whatson get
whatson get open --category music
whatson get upcoming --query jazz --wide
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			if len(args) > 1 {
				return errors.New("too many statuses set, confused")
			}
			var err error
			only, err = event.StatusForAlias(args[0])
			onlySet = err == nil
			return err
		},
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(so)
			if err != nil {
				return oo.HandleError(err)
			}
			g := get.Get{
				Service:    svc,
				Category:   co.Category,
				Query:      qo.Query,
				OnlyStatus: only,
				StatusSet:  onlySet,
				ShowID:     io.ShowID,
				Wide:       oo.Wide,
			}
			return oo.HandleError(g.Do(context.Background()))
		},
	}

	options.AddServerArgs(cmd, so)
	options.AddCategoryArgs(cmd, co)
	options.AddQueryArgs(cmd, qo)
	options.AddShowIDArgs(cmd, io)
	options.AddWideArg(cmd, oo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
