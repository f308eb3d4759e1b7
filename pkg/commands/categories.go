package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/whatson/pkg/commands/options"
	"tableflip.dev/whatson/pkg/runner/categories"
)

func addCategories(topLevel *cobra.Command) {
	so := &options.ServerOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "categories",
		Short:   "list the category directory",
		Aliases: []string{"cats"},
		Example: `
whatson categories
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(so)
			if err != nil {
				return oo.HandleError(err)
			}
			c := categories.Categories{Service: svc}
			return oo.HandleError(c.Do(context.Background()))
		},
	}

	options.AddServerArgs(cmd, so)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
