package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/whatson/pkg/commands/options"
	"tableflip.dev/whatson/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	so := &options.ServerOptions{}
	co := &options.CategoryOptions{}
	qo := &options.QueryOptions{}
	oo := &options.OutputOptions{}

	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "export events as an iCalendar feed",
		Example: `
whatson export > events.ics
whatson export --category music -o music.ics
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(so)
			if err != nil {
				return oo.HandleError(err)
			}

			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return oo.HandleError(err)
				}
				defer f.Close()
				out = f
			}

			e := export.Export{
				Service:  svc,
				Category: co.Category,
				Query:    qo.Query,
				Out:      out,
			}
			return oo.HandleError(e.Do(context.Background()))
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "",
		"Write the calendar to this file instead of stdout.")
	options.AddServerArgs(cmd, so)
	options.AddCategoryArgs(cmd, co)
	options.AddQueryArgs(cmd, qo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
