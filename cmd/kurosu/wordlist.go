package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/japaniel/kurosu/pkg/clues"
	"github.com/japaniel/kurosu/pkg/kana"
	"github.com/japaniel/kurosu/pkg/morph"
	"github.com/japaniel/kurosu/pkg/stems"
	"github.com/japaniel/kurosu/pkg/wordlist"
)

func (a *app) wordlistCmd() *cobra.Command {
	var (
		output          string
		limit           int
		allowDuplicates bool
	)
	cmd := &cobra.Command{
		Use:   "wordlist [input]",
		Short: "Convert a plain word list into a generator .dic file",
		Long: `Read one word per line, keep words within the configured length bounds,
resolve truncated verb stems, convert to katakana and write
"answer\tclue" lines.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wc := &a.cfg.Wordlist
			if len(args) == 1 {
				wc.Input = args[0]
			}
			override(cmd, "output", &wc.Output, output)
			override(cmd, "limit", &wc.Limit, limit)
			override(cmd, "allow-duplicates", &wc.AllowDuplicates, allowDuplicates)
			if wc.Input == "" {
				return errors.New("no word list given: pass a path or set wordlist.input")
			}
			return a.runWordlist(cmd)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output .dic path")
	cmd.Flags().IntVar(&limit, "limit", 0, "keep at most this many words after the length filter")
	cmd.Flags().BoolVar(&allowDuplicates, "allow-duplicates", false, "keep repeated words")
	return cmd
}

func (a *app) runWordlist(cmd *cobra.Command) error {
	wc := a.cfg.Wordlist
	opts := wordlist.Options{
		Limit:           wc.Limit,
		MinLen:          wc.MinLen,
		MaxLen:          wc.MaxLen,
		KanaLimit:       wc.KanaLimit,
		MaxLength:       wc.MaxLength,
		AllowDuplicates: wc.AllowDuplicates,
	}

	words, err := wordlist.Load(wc.Input)
	if err != nil {
		return err
	}
	resolver, err := a.loadResolver()
	if err != nil {
		return err
	}

	analyzer, err := morph.NewAnalyzer()
	if err != nil {
		return fmt.Errorf("create analyzer: %w", err)
	}
	normalizer, err := kana.NewNormalizer(analyzer, kana.DefaultCacheSize)
	if err != nil {
		return err
	}

	words = wordlist.InitialFilter(words, opts, resolver)
	katakana := wordlist.Convert(words, normalizer)
	words, katakana, err = wordlist.Filter(words, katakana, opts)
	if err != nil {
		return err
	}
	if err := clues.SaveDic(wc.Output, words, katakana); err != nil {
		return err
	}
	a.logger.Info("word list converted", zap.String("input", wc.Input), zap.String("output", wc.Output), zap.Int("words", len(words)))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d words to %s\n", len(words), wc.Output)
	return nil
}

// loadResolver reads the stem tables. When neither exists, words are used
// as they are.
func (a *app) loadResolver() (wordlist.Resolver, error) {
	sc := a.cfg.Stems
	godan, err := stems.LoadTable(sc.GodanTable)
	if errors.Is(err, os.ErrNotExist) {
		godan = stems.NewTable()
	} else if err != nil {
		return nil, err
	}
	ichidan, err := stems.LoadList(sc.IchidanList)
	if errors.Is(err, os.ErrNotExist) {
		ichidan = stems.NewList()
	} else if err != nil {
		return nil, err
	}
	if godan.Len() == 0 && ichidan.Len() == 0 {
		a.logger.Warn("no stem tables found, skipping stem resolution",
			zap.String("godan_table", sc.GodanTable), zap.String("ichidan_list", sc.IchidanList))
		return nil, nil
	}
	return stems.NewResolver(godan, ichidan, a.logger), nil
}
