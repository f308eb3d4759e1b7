package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/whatson/pkg/runner/serve"
)

func addServe(topLevel *cobra.Command) {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "run a local stub backend with sample events",
		Example: `
whatson serve
whatson serve --listen :9090
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(),
				syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			s := serve.Serve{
				Listen: listen,
			}
			return s.Do(ctx)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "localhost:8787",
		"Address for the stub backend to listen on.")

	topLevel.AddCommand(cmd)
}
