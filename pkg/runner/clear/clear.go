package clear

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/focus/pkg/store"
)

type Clear struct {
	Confirm bool

	Persistence store.Persistence
}

func (n *Clear) Do(ctx context.Context) error {
	if !n.Confirm {
		return errors.New("refusing to clear history without --confirm")
	}
	if err := n.Persistence.Clear(); err != nil {
		return err
	}
	fmt.Println("history cleared")
	return nil
}
