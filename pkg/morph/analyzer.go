// Package morph wraps the kagome morphological analyzer. It serves two
// roles in the pipeline: a lexicon that tells which conjugation class a
// word belongs to, and a converter that replaces kanji with their katakana
// readings.
package morph

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/japaniel/kurosu/pkg/kana"
	"github.com/japaniel/kurosu/pkg/vocab"
)

// IPA part-of-speech labels used for classification.
const (
	posAuxiliaryVerb  = "助動詞"
	conjGodanPrefix   = "五段"
	conjIchidanPrefix = "一段"
)

// Token represents a single analyzed unit of text.
type Token struct {
	Surface       string   // The text as it appears (e.g. "行っ")
	BaseForm      string   // The dictionary form (e.g. "行く")
	Reading       string   // katakana, e.g. "イッ"
	PartsOfSpeech []string // e.g. ["動詞", "自立", "*", "*"]
	// ConjugationType is the IPA conjugation type, e.g. "五段・カ行促音便".
	ConjugationType string
	Known           bool
}

// PrimaryPOS returns the first part of speech if available.
func (t Token) PrimaryPOS() string {
	if len(t.PartsOfSpeech) == 0 {
		return ""
	}
	return t.PartsOfSpeech[0]
}

// Analyzer handles text segmentation.
type Analyzer struct {
	t *tokenizer.Tokenizer
}

// NewAnalyzer creates a new tokenizer instance.
func NewAnalyzer() (*Analyzer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Analyzer{t: t}, nil
}

// Analyze breaks text into tokens with readings and base forms.
func (a *Analyzer) Analyze(text string) []Token {
	tokens := a.t.Tokenize(text)
	result := make([]Token, 0, len(tokens))

	for _, token := range tokens {
		if token.Class == tokenizer.DUMMY {
			continue
		}

		// IPA features:
		// 0-3: POS and sub-POS, 4: conjugation type, 5: conjugation form,
		// 6: base form, 7: reading, 8: pronunciation
		features := token.Features()

		base := token.Surface
		if len(features) > 6 && features[6] != "*" {
			base = features[6]
		}
		reading := ""
		if len(features) > 7 && features[7] != "*" {
			reading = features[7]
		}
		conj := ""
		if len(features) > 4 && features[4] != "*" {
			conj = features[4]
		}
		pos := features
		if len(pos) > 4 {
			pos = pos[:4]
		}

		result = append(result, Token{
			Surface:         token.Surface,
			BaseForm:        base,
			Reading:         reading,
			PartsOfSpeech:   pos,
			ConjugationType: conj,
			Known:           token.Class != tokenizer.UNKNOWN,
		})
	}
	return result
}

// Classify reports the grammatical classification of word. Only words the
// dictionary knows as a single morpheme are classified; anything else
// yields no classifications.
func (a *Analyzer) Classify(word string) ([]vocab.Classification, error) {
	tokens := a.Analyze(word)
	if len(tokens) != 1 {
		return nil, nil
	}
	tok := tokens[0]
	if !tok.Known || tok.Surface != word {
		return nil, nil
	}

	class := vocab.ClassOther
	switch {
	case tok.PrimaryPOS() == posAuxiliaryVerb:
		class = vocab.ClassAuxiliary
	case strings.HasPrefix(tok.ConjugationType, conjGodanPrefix):
		class = vocab.ClassGodan
	case strings.HasPrefix(tok.ConjugationType, conjIchidanPrefix):
		class = vocab.ClassIchidan
	}

	tag := strings.Join(tok.PartsOfSpeech, ",")
	if tok.ConjugationType != "" {
		tag += "/" + tok.ConjugationType
	}
	return []vocab.Classification{{Tag: tag, Class: class}}, nil
}

// KanjiToKatakana replaces every token containing kanji with its katakana
// reading. Kana, latin text and tokens without a known reading pass through.
func (a *Analyzer) KanjiToKatakana(text string) string {
	if !kana.HasKanji(text) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, tok := range a.Analyze(text) {
		if tok.Reading != "" && kana.HasKanji(tok.Surface) {
			b.WriteString(tok.Reading)
			continue
		}
		b.WriteString(tok.Surface)
	}
	return b.String()
}
