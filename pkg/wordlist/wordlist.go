// Package wordlist turns a plain list of Japanese words into a katakana
// answer dictionary.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/japaniel/kurosu/pkg/kana"
)

// Options bounds which words make it into the dictionary.
type Options struct {
	// Limit keeps only the first Limit words after the length filter; 0
	// keeps all.
	Limit  int
	MinLen int
	MaxLen int
	// KanaLimit is the largest allowed fraction of kana runes in a word.
	KanaLimit float64
	// MaxLength bounds the katakana answer length.
	MaxLength       int
	AllowDuplicates bool
}

// DefaultOptions returns the settings used when none are configured.
func DefaultOptions() Options {
	return Options{MinLen: 1, MaxLen: 10, KanaLimit: 1.0, MaxLength: 10}
}

// Resolver maps verb stems to dictionary forms.
type Resolver interface {
	Resolve(word string) string
}

// Converter produces the katakana form of a word.
type Converter interface {
	Normalize(text string) string
}

// Load reads one word per line. Trailing whitespace is removed.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		words = append(words, strings.TrimRight(sc.Text(), " \t\r　"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	return words, nil
}

// InitialFilter keeps words within the rune length bounds, applies the
// limit and then replaces verb stems with their dictionary forms.
func InitialFilter(words []string, opts Options, resolver Resolver) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		n := kana.Len(w)
		if n < opts.MinLen || (opts.MaxLen > 0 && n > opts.MaxLen) {
			continue
		}
		out = append(out, w)
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	if resolver != nil {
		for i, w := range out {
			out[i] = resolver.Resolve(w)
		}
	}
	return out
}

// Convert returns the katakana form of every word.
func Convert(words []string, conv Converter) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = conv.Normalize(w)
	}
	return out
}

// Filter drops words with too much kana or too long an answer, then
// duplicate words unless they are allowed. The two slices are parallel.
func Filter(words, katakana []string, opts Options) ([]string, []string, error) {
	if len(words) != len(katakana) {
		return nil, nil, fmt.Errorf("words and readings differ in length: %d != %d", len(words), len(katakana))
	}
	var (
		keptWords []string
		keptKana  []string
		seen      = make(map[string]bool)
	)
	for i, w := range words {
		n := kana.Len(w)
		if n == 0 {
			continue
		}
		if float64(kana.CountKana(w))/float64(n) > opts.KanaLimit {
			continue
		}
		if opts.MaxLength > 0 && kana.Len(katakana[i]) > opts.MaxLength {
			continue
		}
		if !opts.AllowDuplicates {
			if seen[w] {
				continue
			}
			seen[w] = true
		}
		keptWords = append(keptWords, w)
		keptKana = append(keptKana, katakana[i])
	}
	return keptWords, keptKana, nil
}
