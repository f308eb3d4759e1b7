package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/whatson/pkg/commands/options"
	teaui "tableflip.dev/whatson/pkg/runner/tea"
	"tableflip.dev/whatson/pkg/timeutil"
)

func addUI(topLevel *cobra.Command) {
	so := &options.ServerOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
whatson ui
whatson ui --server http://localhost:8787
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(so)
			if err != nil {
				return err
			}
			return teaui.Run(svc, timeutil.System())
		},
	}

	options.AddServerArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
