package kana

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/width"
)

// DefaultCacheSize bounds the number of memoized normalizations.
const DefaultCacheSize = 50_000

// KanjiConverter rewrites the kanji in a text as katakana readings, leaving
// any kana untouched.
type KanjiConverter interface {
	KanjiToKatakana(text string) string
}

// Normalizer converts arbitrary kanji/kana text to katakana. Build one per run
// and share it between stages.
type Normalizer struct {
	kanji KanjiConverter
	cache *lru.Cache[string, string]
}

// NewNormalizer creates a Normalizer around the given kanji converter. A
// cacheSize of 0 disables memoization.
func NewNormalizer(kanji KanjiConverter, cacheSize int) (*Normalizer, error) {
	if kanji == nil {
		return nil, fmt.Errorf("kana: nil kanji converter")
	}
	n := &Normalizer{kanji: kanji}
	if cacheSize > 0 {
		cache, err := lru.New[string, string](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("kana: create cache: %w", err)
		}
		n.cache = cache
	}
	return n, nil
}

// Normalize returns text in katakana. Kanji must be converted before the
// hiragana pass; running them the other way round mangles mixed text.
func (n *Normalizer) Normalize(text string) string {
	if n.cache != nil {
		if out, ok := n.cache.Get(text); ok {
			return out
		}
	}

	folded := width.Fold.String(text)
	out := ToKatakana(n.kanji.KanjiToKatakana(folded))

	if n.cache != nil {
		n.cache.Add(text, out)
	}
	return out
}
