// Package vocab models vocabulary entries from a ZKanji export and the
// stages that turn them into crossword answers: merging homographs, adding
// stem readings, scoring difficulty tiers and filtering readings.
package vocab

import (
	"fmt"
	"strings"
)

// Reading is one pronunciation of a word together with its frequency value.
type Reading struct {
	Text      string `json:"text"`
	Frequency int    `json:"frequency"`
}

// Proficiency is a JLPT-style proficiency tag.
type Proficiency int

const (
	ProficiencyNone Proficiency = iota
	N5
	N4
	N3
	N2
	N1
	ProficiencyUngraded
)

var proficiencyNames = map[Proficiency]string{
	ProficiencyNone:     "",
	N5:                  "N5",
	N4:                  "N4",
	N3:                  "N3",
	N2:                  "N2",
	N1:                  "N1",
	ProficiencyUngraded: "N-",
}

func (p Proficiency) String() string {
	return proficiencyNames[p]
}

// ParseProficiency maps the tag text of an export row to a Proficiency. An
// empty tag is an ungraded word.
func ParseProficiency(s string) (Proficiency, error) {
	switch strings.TrimSpace(s) {
	case "N5":
		return N5, nil
	case "N4":
		return N4, nil
	case "N3":
		return N3, nil
	case "N2":
		return N2, nil
	case "N1":
		return N1, nil
	case "", "N-", "-":
		return ProficiencyUngraded, nil
	}
	return ProficiencyNone, fmt.Errorf("unknown proficiency tag %q", s)
}

// ConjugationClass is the verb conjugation family of a word.
type ConjugationClass int

const (
	ClassOther ConjugationClass = iota
	ClassGodan
	ClassIchidan
	ClassAuxiliary
)

func (c ConjugationClass) String() string {
	switch c {
	case ClassGodan:
		return "godan"
	case ClassIchidan:
		return "ichidan"
	case ClassAuxiliary:
		return "auxiliary"
	}
	return "other"
}

// Classification is a single grammatical classification of a word, as
// reported by a lexicon.
type Classification struct {
	Tag   string
	Class ConjugationClass
}

// HasClass reports whether any classification in cs is of class c.
func HasClass(cs []Classification, c ConjugationClass) bool {
	for _, x := range cs {
		if x.Class == c {
			return true
		}
	}
	return false
}

// ParsePOS extracts the conjugation classes named in a free-text
// part-of-speech string. Both the JMdict codes (v5u, v1, aux-v) and the
// ZKanji abbreviations (-u, -ru, aux.v.) are recognised.
func ParsePOS(pos string) []ConjugationClass {
	if pos == "" {
		return nil
	}
	var out []ConjugationClass
	add := func(c ConjugationClass) {
		for _, x := range out {
			if x == c {
				return
			}
		}
		out = append(out, c)
	}
	for _, field := range strings.FieldsFunc(pos, func(r rune) bool {
		return r == ',' || r == ' ' || r == '(' || r == ')' || r == ';'
	}) {
		switch {
		case strings.HasPrefix(field, "v5"), strings.Contains(field, "-u"):
			add(ClassGodan)
		case strings.HasPrefix(field, "v1"), strings.Contains(field, "-ru"):
			add(ClassIchidan)
		case field == "aux-v", strings.Contains(field, "aux.v."):
			add(ClassAuxiliary)
		}
	}
	return out
}

// Entry is a vocabulary item and everything the pipeline derives for it.
type Entry struct {
	Word        string
	Readings    []Reading
	Proficiency Proficiency
	Definition  string
	POS         string
	Classes     []ConjugationClass
	SourceRank  int
	Level       int
	// Tail is the kana suffix removed from the reading of a derived stem
	// entry; empty for ordinary entries.
	Tail string
}

// HasStemForm reports whether the entry is a verb or auxiliary whose kana
// ending can be split off.
func (e *Entry) HasStemForm() bool {
	for _, c := range e.Classes {
		if c == ClassGodan || c == ClassIchidan || c == ClassAuxiliary {
			return true
		}
	}
	return false
}

// Primary returns the first (most common) reading.
func (e *Entry) Primary() Reading {
	if len(e.Readings) == 0 {
		return Reading{}
	}
	return e.Readings[0]
}

func (e Entry) String() string {
	return fmt.Sprintf("%s read as %s means %q (JLPT: %s, POS: %s)",
		e.Word, e.Primary().Text, e.Definition, e.Proficiency, e.POS)
}

func (e *Entry) clone() Entry {
	c := *e
	c.Readings = append([]Reading(nil), e.Readings...)
	c.Classes = append([]ConjugationClass(nil), e.Classes...)
	return c
}
