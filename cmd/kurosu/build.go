package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/japaniel/kurosu/pkg/clues"
	"github.com/japaniel/kurosu/pkg/db"
	"github.com/japaniel/kurosu/pkg/kana"
	"github.com/japaniel/kurosu/pkg/morph"
	"github.com/japaniel/kurosu/pkg/pipeline"
	"github.com/japaniel/kurosu/pkg/vocab"
)

func (a *app) buildCmd() *cobra.Command {
	var (
		export   string
		encoding string
		prefix   string
		maxTier  int
		snapshot string
		noSnap   bool
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Run the vocabulary pipeline and write the tier dictionaries",
		Long: `Load a ZKanji export, merge readings, expand verb stems, score levels,
drop obscure readings and convert them to katakana. Writes one cumulative
"<prefix>_level_<n>.txt" file per tier and a SQLite lookup snapshot.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			override(cmd, "export", &a.cfg.Vocab.ExportPath, export)
			override(cmd, "encoding", &a.cfg.Vocab.Encoding, encoding)
			override(cmd, "prefix", &a.cfg.Output.Prefix, prefix)
			override(cmd, "max-tier", &a.cfg.Output.MaxTier, maxTier)
			override(cmd, "snapshot", &a.cfg.Output.SnapshotPath, snapshot)
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			if noSnap {
				a.cfg.Output.SnapshotPath = ""
			}
			return a.runBuild(cmd)
		},
	}
	cmd.Flags().StringVar(&export, "export", "", "ZKanji export file (overrides vocab.export_path)")
	cmd.Flags().StringVar(&encoding, "encoding", "", "export encoding: utf-8 or shift_jis")
	cmd.Flags().StringVar(&prefix, "prefix", "", "output path prefix for tier files")
	cmd.Flags().IntVar(&maxTier, "max-tier", 0, "highest tier file to write")
	cmd.Flags().StringVar(&snapshot, "snapshot", "", "SQLite snapshot path")
	cmd.Flags().BoolVar(&noSnap, "no-snapshot", false, "skip writing the SQLite snapshot")
	return cmd
}

func (a *app) runBuild(cmd *cobra.Command) error {
	cfg := a.cfg
	logger := a.logger
	start := time.Now()

	enc, err := vocab.ParseEncoding(cfg.Vocab.Encoding)
	if err != nil {
		return err
	}
	scale, err := cfg.Vocab.FrequencyScale()
	if err != nil {
		return err
	}

	raw, err := vocab.LoadExport(cfg.Vocab.ExportPath, enc)
	if err != nil {
		return err
	}
	logger.Info("export loaded", zap.String("path", cfg.Vocab.ExportPath), zap.Int("entries", len(raw)))

	analyzer, err := morph.NewAnalyzer()
	if err != nil {
		return fmt.Errorf("create analyzer: %w", err)
	}
	normalizer, err := kana.NewNormalizer(analyzer, kana.DefaultCacheSize)
	if err != nil {
		return err
	}

	p := pipeline.New(scale, normalizer)
	p.Logger = logger
	entries, err := p.Run(cmd.Context(), raw)
	if err != nil {
		return err
	}

	paths, err := clues.WriteTiers(cfg.Output.Prefix, entries, cfg.Output.MaxTier)
	if err != nil {
		return err
	}
	for _, path := range paths {
		logger.Info("tier written", zap.String("path", path))
	}

	if cfg.Output.SnapshotPath != "" {
		if err := writeSnapshot(cfg.Output.SnapshotPath, entries, logger); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Build complete. %d entries, %d tier files in %v.\n",
		len(entries), len(paths), time.Since(start).Round(time.Millisecond))
	return nil
}

func writeSnapshot(path string, entries []vocab.Entry, logger *zap.Logger) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	conn, err := db.Open(path)
	if err != nil {
		return err
	}
	defer conn.Close()

	res, err := db.SaveSnapshot(conn, entries, logger)
	if err != nil {
		return err
	}
	counts, err := db.CountByLevel(conn)
	if err != nil {
		return err
	}
	for _, c := range counts {
		logger.Info("snapshot level", zap.Int("level", c.Level), zap.Int("entries", c.Entries))
	}
	logger.Info("snapshot written", zap.String("path", path),
		zap.Int("entries", res.Entries), zap.Int("readings", res.Readings), zap.Int("duplicates", res.Duplicates))
	return nil
}
