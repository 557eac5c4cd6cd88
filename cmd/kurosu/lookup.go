package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/japaniel/kurosu/pkg/db"
)

func (a *app) lookupCmd() *cobra.Command {
	var snapshot string
	cmd := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Show a word from the lookup snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			override(cmd, "snapshot", &a.cfg.Output.SnapshotPath, snapshot)
			path := a.cfg.Output.SnapshotPath
			// Open would create an empty snapshot.
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("snapshot %s: %w", path, err)
			}
			conn, err := db.Open(path)
			if err != nil {
				return err
			}
			defer conn.Close()

			e, err := db.LookupEntry(conn, args[0])
			if errors.Is(err, db.ErrNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: not found\n", args[0])
				return nil
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, e.String())
			fmt.Fprintf(out, "  level: %d\n", e.Level)
			for _, r := range e.Readings {
				fmt.Fprintf(out, "  reading: %s (frequency %d)\n", r.Text, r.Frequency)
			}
			if e.Tail != "" {
				fmt.Fprintf(out, "  tail: %s\n", e.Tail)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&snapshot, "snapshot", "", "SQLite snapshot path")
	return cmd
}
