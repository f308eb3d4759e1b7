package options

import (
	"github.com/spf13/cobra"
)

// CategoryOptions captures the category scoping flag shared by commands.
// Category is a backend query parameter, not a local filter; leaving it
// empty requests the full directory.
type CategoryOptions struct {
	Category string
}

func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Scope the fetch to a single category.")
}
