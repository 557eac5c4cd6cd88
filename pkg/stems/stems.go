package stems

import (
	"github.com/japaniel/kurosu/pkg/kana"
	"github.com/japaniel/kurosu/pkg/vocab"
)

// godanEndings maps the final kana of a て-form stem to the dictionary-form
// endings it can come from, in lookup order.
var godanEndings = map[rune][]rune{
	'っ': {'う', 'つ', 'る'},
	'ん': {'む', 'ぬ', 'ぶ'},
	'い': {'く', 'ぐ'},
	'し': {'す'},
}

// GodanCandidates returns the possible dictionary forms of a godan stem in
// the order they should be tried. Stems starting with kana, or ending in
// anything other than っ, ん, い or し, have no candidates.
func GodanCandidates(stem string) []string {
	if stem == "" || kana.IsKana(kana.FirstRune(stem)) {
		return nil
	}
	rs := []rune(stem)
	endings, ok := godanEndings[rs[len(rs)-1]]
	if !ok {
		return nil
	}
	lead := string(rs[:len(rs)-1])
	out := make([]string, len(endings))
	for i, e := range endings {
		out[i] = lead + string(e)
	}
	return out
}

// IsGodanCandidate reports whether stem has the shape of a godan て-form stem.
func IsGodanCandidate(stem string) bool {
	return GodanCandidates(stem) != nil
}

// ResolveGodan returns the first candidate dictionary form that lex knows as
// a godan verb.
func ResolveGodan(lex Lexicon, stem string) (string, bool, error) {
	for _, form := range GodanCandidates(stem) {
		ok, err := hasClass(lex, form, vocab.ClassGodan)
		if err != nil {
			return "", false, err
		}
		if ok {
			return form, true, nil
		}
	}
	return "", false, nil
}

// IsIchidanCandidate reports whether stem starts with a non-kana rune and
// ends in kana other than い.
func IsIchidanCandidate(stem string) bool {
	if stem == "" {
		return false
	}
	last := kana.LastRune(stem)
	return !kana.IsKana(kana.FirstRune(stem)) && kana.IsKana(last) && last != 'い'
}

// ResolveIchidan reports whether stem+る is an ichidan verb in lex.
func ResolveIchidan(lex Lexicon, stem string) (bool, error) {
	if !IsIchidanCandidate(stem) {
		return false, nil
	}
	return hasClass(lex, stem+"る", vocab.ClassIchidan)
}
