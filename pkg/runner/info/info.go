package info

import (
	"context"
	"fmt"
	"os"

	"tableflip.dev/focus/pkg/day"
	"tableflip.dev/focus/pkg/store"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
}

func (n *Info) Do(ctx context.Context) error {
	if override := os.Getenv("FOCUS_CONFIG_PATH"); override != "" {
		fmt.Println("FOCUS_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Println("FOCUS_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Println("Config.path: ", n.Config.BasePath())

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	j := day.New(n.Persistence)
	entries := j.History()
	fmt.Printf("Entries: %d\n", len(entries))
	if last, ok := n.Persistence.LastCompleted(); ok {
		fmt.Printf("Last completed: %s\n", last)
	} else {
		fmt.Println("Last completed: never")
	}
	return nil
}
