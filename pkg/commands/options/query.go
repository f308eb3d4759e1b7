package options

import (
	"github.com/spf13/cobra"
)

// QueryOptions
type QueryOptions struct {
	Query string
}

func AddQueryArgs(cmd *cobra.Command, o *QueryOptions) {
	cmd.Flags().StringVarP(&o.Query, "query", "q", "",
		"Keep only events whose title, description, or venue contains this text.")
}
