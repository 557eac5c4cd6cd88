// Package stems recognises verb stems left behind when a word list is cut
// at the て-form (言っ, 食べ) and maps them back to dictionary forms.
package stems

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/japaniel/kurosu/pkg/vocab"
)

// DefaultCacheSize is the number of lookups a CachedLexicon keeps.
const DefaultCacheSize = 20_000

// Lexicon looks up the grammatical classifications of a word. A word the
// lexicon does not know has no classifications and no error.
type Lexicon interface {
	Classify(word string) ([]vocab.Classification, error)
}

// CachedLexicon memoizes the results of another Lexicon. Failed lookups are
// not cached.
type CachedLexicon struct {
	inner Lexicon
	cache *lru.Cache[string, []vocab.Classification]
}

// NewCachedLexicon wraps inner with an LRU cache of the given size.
func NewCachedLexicon(inner Lexicon, size int) (*CachedLexicon, error) {
	if inner == nil {
		return nil, fmt.Errorf("stems: nil lexicon")
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, []vocab.Classification](size)
	if err != nil {
		return nil, fmt.Errorf("stems: create lexicon cache: %w", err)
	}
	return &CachedLexicon{inner: inner, cache: cache}, nil
}

// Classify implements Lexicon.
func (c *CachedLexicon) Classify(word string) ([]vocab.Classification, error) {
	if cs, ok := c.cache.Get(word); ok {
		return cs, nil
	}
	cs, err := c.inner.Classify(word)
	if err != nil {
		return nil, err
	}
	c.cache.Add(word, cs)
	return cs, nil
}

func hasClass(lex Lexicon, word string, class vocab.ConjugationClass) (bool, error) {
	cs, err := lex.Classify(word)
	if err != nil {
		return false, fmt.Errorf("classify %q: %w", word, err)
	}
	return vocab.HasClass(cs, class), nil
}
