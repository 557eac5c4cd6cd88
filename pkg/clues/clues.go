// Package clues writes answer/clue dictionaries for the crossword generator.
package clues

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/japaniel/kurosu/pkg/vocab"
)

// TierPath returns the output file for tier n.
func TierPath(prefix string, n int) string {
	return fmt.Sprintf("%s_level_%d.txt", prefix, n)
}

// WriteTier writes "reading\tword" for every reading of every entry whose
// level is at most n, in iteration order.
func WriteTier(w io.Writer, entries []vocab.Entry, n int) (int, error) {
	bw := bufio.NewWriter(w)
	lines := 0
	for i := range entries {
		e := &entries[i]
		if e.Level > n {
			continue
		}
		for _, r := range e.Readings {
			if _, err := fmt.Fprintf(bw, "%s\t%s\n", r.Text, e.Word); err != nil {
				return lines, err
			}
			lines++
		}
	}
	return lines, bw.Flush()
}

// WriteTiers creates one cumulative file per tier from 0 to maxTier and
// returns the paths written.
func WriteTiers(prefix string, entries []vocab.Entry, maxTier int) ([]string, error) {
	if maxTier < 0 || maxTier > vocab.MaxLevel {
		return nil, fmt.Errorf("max tier %d out of range 0..%d", maxTier, vocab.MaxLevel)
	}
	if dir := filepath.Dir(prefix); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	paths := make([]string, 0, maxTier+1)
	for n := 0; n <= maxTier; n++ {
		path := TierPath(prefix, n)
		if err := writeFile(path, func(w io.Writer) error {
			_, err := WriteTier(w, entries, n)
			return err
		}); err != nil {
			return paths, fmt.Errorf("write tier %d: %w", n, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteDic writes "answer\tclue" lines, pairing clues and answers by index.
func WriteDic(w io.Writer, clues, answers []string) error {
	if len(clues) != len(answers) {
		return fmt.Errorf("clues and answers differ in length: %d != %d", len(clues), len(answers))
	}
	bw := bufio.NewWriter(w)
	for i := range clues {
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", answers[i], clues[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveDic writes a .dic file to path.
func SaveDic(path string, clues, answers []string) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteDic(w, clues, answers)
	})
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
