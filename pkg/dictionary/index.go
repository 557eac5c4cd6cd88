package dictionary

import (
	"sort"
	"strings"

	"github.com/japaniel/kurosu/pkg/kana"
	"github.com/japaniel/kurosu/pkg/vocab"
)

// Index is an in-memory lookup of dictionary entries by kanji and kana text.
// It is read-only after construction.
type Index struct {
	entries []JMdictEntry
	byText  map[string][]int
}

// NewIndex builds an index over entries.
func NewIndex(entries []JMdictEntry) *Index {
	idx := &Index{
		entries: entries,
		byText:  make(map[string][]int, len(entries)*2),
	}
	for i, e := range entries {
		for _, k := range e.Kanji {
			idx.add(k.Text, i)
		}
		for _, k := range e.Kana {
			idx.add(k.Text, i)
		}
	}
	return idx
}

func (idx *Index) add(text string, i int) {
	ids := idx.byText[text]
	if len(ids) > 0 && ids[len(ids)-1] == i {
		return
	}
	idx.byText[text] = append(ids, i)
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int { return len(idx.entries) }

// Lookup returns the entries written as word, ordered by entry ID.
func (idx *Index) Lookup(word string) []JMdictEntry {
	ids := idx.byText[word]
	if len(ids) == 0 {
		return nil
	}
	out := make([]JMdictEntry, len(ids))
	for i, id := range ids {
		out[i] = idx.entries[id]
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LookupReading returns the entries written as word that also have reading
// among their kana forms. Katakana and hiragana readings compare equal.
func (idx *Index) LookupReading(word, reading string) []JMdictEntry {
	want := kana.ToHiragana(reading)
	var out []JMdictEntry
	for _, e := range idx.Lookup(word) {
		for _, k := range e.Kana {
			if kana.ToHiragana(k.Text) == want {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// Classify implements stems.Lexicon. Each distinct POS tag of the matching
// entries becomes one classification.
func (idx *Index) Classify(word string) ([]vocab.Classification, error) {
	var out []vocab.Classification
	seen := make(map[string]bool)
	for _, e := range idx.Lookup(word) {
		for _, pos := range e.PartsOfSpeech() {
			if seen[pos] {
				continue
			}
			seen[pos] = true
			out = append(out, vocab.Classification{Tag: pos, Class: classOf(pos)})
		}
	}
	return out, nil
}

func classOf(pos string) vocab.ConjugationClass {
	switch {
	case strings.HasPrefix(pos, "v5"):
		return vocab.ClassGodan
	case strings.HasPrefix(pos, "v1"):
		return vocab.ClassIchidan
	case pos == "aux-v":
		return vocab.ClassAuxiliary
	}
	return vocab.ClassOther
}
