package vocab

import (
	"go.uber.org/zap"

	"github.com/japaniel/kurosu/pkg/kana"
)

// ExpandStems appends a stem entry for every verb or auxiliary whose word
// ends in kana. 教える read おしえる yields 教(える) read おし, so the kanji
// part alone can be used as a crossword answer. Originals are kept and the
// derived entries follow them.
//
// Words that are all kana, have no kana ending, or whose primary reading is
// not longer than the kana ending are skipped with a warning.
func ExpandStems(entries []Entry, logger *zap.Logger) []Entry {
	if logger == nil {
		logger = zap.NewNop()
	}

	out := make([]Entry, len(entries), len(entries)+len(entries)/4)
	copy(out, entries)

	for i := range entries {
		e := &entries[i]
		if !e.HasStemForm() {
			continue
		}
		derived, ok := stemEntry(e)
		if !ok {
			logger.Warn("skipping degenerate stem split",
				zap.String("word", e.Word),
				zap.String("reading", e.Primary().Text))
			continue
		}
		out = append(out, derived)
	}
	return out
}

func stemEntry(e *Entry) (Entry, bool) {
	word := []rune(e.Word)
	tail := kana.TailLen(e.Word)
	if tail == 0 || tail >= len(word) {
		return Entry{}, false
	}

	primary := e.Primary()
	reading := []rune(primary.Text)
	if len(reading) <= tail {
		return Entry{}, false
	}

	lead := string(word[:len(word)-tail])
	wordTail := string(word[len(word)-tail:])
	split := len(reading) - tail

	d := e.clone()
	d.Word = lead + "(" + wordTail + ")"
	d.Readings = []Reading{{Text: string(reading[:split]), Frequency: primary.Frequency}}
	d.Tail = string(reading[split:])
	return d, true
}
