package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/pokedex"
)

// Run executes the snapshots command.
func (c *SnapshotsCmd) Run(deps *Dependencies) error {
	if c.Delete != "" {
		if err := deps.Snapshots.DeleteSnapshot(deps.Ctx, c.Delete); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pokedex.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Deleted snapshot %s\n", c.Delete)
		return nil
	}

	snaps, err := deps.Snapshots.FindSnapshots(deps.Ctx, pokedex.SnapshotFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pokedex.ErrorMessage(err))
		return err
	}

	if len(snaps) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots found. Use 'pokedex build --save' to create one.")
		return nil
	}

	for _, s := range snaps {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d entries  %s\n",
			s.ID, s.CreatedAt.Format(time.RFC3339), s.EntryCount, s.ContentHash)
	}
	return nil
}
