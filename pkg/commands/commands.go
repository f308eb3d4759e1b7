package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/whatson/pkg/app"
	"tableflip.dev/whatson/pkg/client"
	"tableflip.dev/whatson/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "whatson",
		Short: base.Wrap80("Browse a directory of events from the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGet(topLevel)
	addCategories(topLevel)
	addExport(topLevel)
	addServe(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
}

// newService resolves the backend base URL (flag first, then config) and
// builds the service the runners share.
func newService(so *options.ServerOptions) (*app.Service, error) {
	server := so.Server
	if server == "" {
		cfg, err := client.LoadConfig()
		if err != nil {
			return nil, err
		}
		server = cfg.Server()
	}
	return &app.Service{Backend: client.New(server)}, nil
}
