package categories

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/whatson/pkg/app"
	"tableflip.dev/whatson/pkg/printers"
)

// Categories fetches and prints the category directory.
type Categories struct {
	Service *app.Service
}

func (n *Categories) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list categories, no service")
	}

	names, err := n.Service.Categories(ctx)
	if err != nil {
		return err
	}

	fmt.Println("")
	pp := printers.PrettyPrint{}
	pp.Categories(names...)
	return nil
}
