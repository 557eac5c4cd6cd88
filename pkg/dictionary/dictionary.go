// Package dictionary loads the jmdict-simplified JSON distribution and
// answers conjugation-class queries against it.
package dictionary

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode"
)

// JMdictEntry matches the structure of jmdict-simplified entries.
type JMdictEntry struct {
	ID    string          `json:"id"`
	Kanji []JMdictElement `json:"kanji"`
	Kana  []JMdictElement `json:"kana"`
	Sense []JMdictSense   `json:"sense"`
}

type JMdictElement struct {
	Text   string   `json:"text"`
	Common bool     `json:"common"`
	Tags   []string `json:"tags"`
}

type JMdictSense struct {
	PartOfSpeech []string      `json:"partOfSpeech"`
	Gloss        []JMdictGloss `json:"gloss"`
}

type JMdictGloss struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

// PartsOfSpeech returns the distinct POS tags over all senses, in order.
func (e JMdictEntry) PartsOfSpeech() []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range e.Sense {
		for _, p := range s.PartOfSpeech {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	return out
}

// Glosses returns the gloss texts of all senses.
func (e JMdictEntry) Glosses() []string {
	var out []string
	for _, s := range e.Sense {
		for _, g := range s.Gloss {
			out = append(out, g.Text)
		}
	}
	return out
}

// LoadJMdictSimplified reads a dictionary file. Both the release layout
// ({"words": [...]}) and a bare array of entries are accepted.
func LoadJMdictSimplified(path string) ([]JMdictEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJMdictSimplified(f)
}

// ReadJMdictSimplified decodes a dictionary from r.
func ReadJMdictSimplified(r io.Reader) ([]JMdictEntry, error) {
	br := bufio.NewReader(r)
	first, err := firstNonSpace(br)
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}

	dec := json.NewDecoder(br)
	switch first {
	case '{':
		var wrapper struct {
			Words []JMdictEntry `json:"words"`
		}
		if err := dec.Decode(&wrapper); err != nil {
			return nil, fmt.Errorf("parse dictionary object: %w", err)
		}
		return wrapper.Words, nil
	case '[':
		var entries []JMdictEntry
		if err := dec.Decode(&entries); err != nil {
			return nil, fmt.Errorf("parse dictionary array: %w", err)
		}
		return entries, nil
	}
	return nil, fmt.Errorf("dictionary is neither an object nor an array (starts with %q)", first)
}

func firstNonSpace(br *bufio.Reader) (rune, error) {
	for {
		r, _, err := br.ReadRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(r) && r != '\uFEFF' {
			return r, br.UnreadRune()
		}
	}
}
