package options

import (
	"github.com/spf13/cobra"
)

// ServerOptions selects the backend to talk to.
type ServerOptions struct {
	Server string
}

// AddServerArgs wires the backend selection flag on the provided command.
func AddServerArgs(cmd *cobra.Command, o *ServerOptions) {
	cmd.Flags().StringVar(&o.Server, "server", "",
		"Backend base URL. Defaults to the server key of ~/.whatson or $WHATSON_SERVER.")
}
