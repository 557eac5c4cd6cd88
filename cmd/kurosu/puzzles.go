package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/japaniel/kurosu/pkg/puzzle"
)

func (a *app) puzzlesCmd() *cobra.Command {
	var (
		rawDir string
		levels []int
	)
	cmd := &cobra.Command{
		Use:   "puzzles",
		Short: "Post-process puzzles produced by the crossword generator",
		Long: `Post-process puzzles produced by the crossword generator.

Available commands:
  rename    - rename raw files to <level>-<n>.json
  process   - locate every answer in its grid
  bundle    - combine processed puzzles into one document
  stats     - report word reuse per level`,
	}
	cmd.PersistentFlags().StringVar(&rawDir, "raw-dir", "", "root of the raw generator output (one directory per level)")
	cmd.PersistentFlags().IntSliceVar(&levels, "levels", nil, "levels to handle")

	apply := func(cmd *cobra.Command) {
		override(cmd, "raw-dir", &a.cfg.Puzzles.RawDir, rawDir)
		override(cmd, "levels", &a.cfg.Puzzles.Levels, levels)
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "rename",
		Short: "Rename raw generator files so names are unique across levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			apply(cmd)
			pc := a.cfg.Puzzles
			total := 0
			for _, level := range pc.Levels {
				renamed, err := puzzle.RenameRaw(puzzle.LevelDir(pc.RawDir, level), level)
				if err != nil {
					return err
				}
				a.logger.Info("level renamed", zap.Int("level", level), zap.Int("files", len(renamed)))
				total += len(renamed)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %d files.\n", total)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "process",
		Short: "Locate every answer in its grid and write processed puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			apply(cmd)
			pc := a.cfg.Puzzles
			n, err := puzzle.ProcessDir(pc.RawDir, pc.ProcessedDir, pc.Levels, a.logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Processed %d puzzles into %s.\n", n, pc.ProcessedDir)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "bundle",
		Short: "Combine processed puzzles into one JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pc := a.cfg.Puzzles
			c, err := puzzle.Bundle(pc.ProcessedDir, pc.Version)
			if err != nil {
				return err
			}
			if err := c.Save(pc.BundlePath); err != nil {
				return err
			}
			total := 0
			for _, ld := range c.LevelData {
				total += len(ld.Puzzles)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Bundled %d puzzles into %s.\n", total, pc.BundlePath)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Report word reuse for each level of raw puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			apply(cmd)
			pc := a.cfg.Puzzles
			for _, level := range pc.Levels {
				s, err := puzzle.StatsDir(pc.RawDir, level)
				if err != nil {
					return err
				}
				printStats(cmd.OutOrStdout(), s)
			}
			return nil
		},
	})
	return cmd
}

func printStats(w io.Writer, s puzzle.LevelStats) {
	fmt.Fprintf(w, "Level %d: %d unique words, %d uses\n", s.Level, s.Unique, s.Total)
	for _, k := range s.Counts() {
		fmt.Fprintf(w, "  used %d times: %d\n", k, s.Histogram[k])
	}
	for _, d := range s.Duplicates {
		fmt.Fprintf(w, "  duplicate: %s %s\n", d.A, d.B)
	}
}
