package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/japaniel/kurosu/pkg/dictionary"
	"github.com/japaniel/kurosu/pkg/morph"
	"github.com/japaniel/kurosu/pkg/stems"
	"github.com/japaniel/kurosu/pkg/wordlist"
)

func (a *app) stemsCmd() *cobra.Command {
	var lexicon string
	cmd := &cobra.Command{
		Use:   "stems",
		Short: "Build the verb stem tables used to resolve truncated words",
		Long: `Build the verb stem tables used during word-list filtering.

Available commands:
  godan     - stem,dictionary_form table for godan verbs
  ichidan   - list of ichidan verb stems`,
	}
	cmd.PersistentFlags().StringVar(&lexicon, "lexicon", "", "lexicon backend: kagome or jmdict")

	cmd.AddCommand(&cobra.Command{
		Use:   "godan <wordlist>",
		Short: "Build the godan stem table from a word list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			override(cmd, "lexicon", &a.cfg.Stems.Lexicon, lexicon)
			words, lex, err := a.stemInputs(cmd, args[0])
			if err != nil {
				return err
			}
			t, err := stems.BuildGodanTable(lex, words, a.logger)
			if err != nil {
				return err
			}
			if err := t.Save(a.cfg.Stems.GodanTable); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d godan stems to %s\n", t.Len(), a.cfg.Stems.GodanTable)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "ichidan <wordlist>",
		Short: "Build the ichidan stem list from a word list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			override(cmd, "lexicon", &a.cfg.Stems.Lexicon, lexicon)
			words, lex, err := a.stemInputs(cmd, args[0])
			if err != nil {
				return err
			}
			l, err := stems.BuildIchidanList(lex, words, a.logger)
			if err != nil {
				return err
			}
			if err := stems.SaveList(a.cfg.Stems.IchidanList, l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d ichidan stems to %s\n", l.Len(), a.cfg.Stems.IchidanList)
			return nil
		},
	})
	return cmd
}

func (a *app) stemInputs(cmd *cobra.Command, path string) ([]string, stems.Lexicon, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, nil, err
	}
	words, err := wordlist.Load(path)
	if err != nil {
		return nil, nil, err
	}
	lex, err := a.openLexicon(cmd)
	if err != nil {
		return nil, nil, err
	}
	return words, lex, nil
}

// openLexicon returns the configured lexicon behind an LRU cache.
func (a *app) openLexicon(cmd *cobra.Command) (stems.Lexicon, error) {
	var inner stems.Lexicon
	switch a.cfg.Stems.Lexicon {
	case "jmdict":
		path := a.cfg.Stems.JMdictPath
		if err := dictionary.NewDownloader(a.logger).Ensure(cmd.Context(), path); err != nil {
			return nil, fmt.Errorf("fetch dictionary: %w", err)
		}
		entries, err := dictionary.LoadJMdictSimplified(path)
		if err != nil {
			return nil, err
		}
		idx := dictionary.NewIndex(entries)
		a.logger.Info("dictionary loaded", zap.String("path", path), zap.Int("entries", idx.Len()))
		inner = idx
	default:
		analyzer, err := morph.NewAnalyzer()
		if err != nil {
			return nil, fmt.Errorf("create analyzer: %w", err)
		}
		inner = analyzer
	}
	return stems.NewCachedLexicon(inner, a.cfg.Stems.CacheSize)
}
