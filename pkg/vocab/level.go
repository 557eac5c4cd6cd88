package vocab

import (
	"fmt"
	"strings"
)

// MaxLevel is the hardest tier; ungraded rare words land here.
const MaxLevel = 5

// ScaleKind says how frequency values are ordered.
type ScaleKind int

const (
	// RankScale: 1 is the most frequent word, larger is rarer.
	RankScale ScaleKind = iota
	// ScoreScale: larger is more frequent (the ZKanji F value).
	ScoreScale
)

// Scale holds the frequency cut-offs for tiers 1 to 4. A value exactly at a
// cut-off belongs to the easier tier.
type Scale struct {
	Kind    ScaleKind
	Cutoffs [4]int
}

// DefaultRankScale buckets by frequency rank: top 500, 2000, 5000, 10000.
func DefaultRankScale() Scale {
	return Scale{Kind: RankScale, Cutoffs: [4]int{500, 2000, 5000, 10000}}
}

// ZKanjiScoreScale uses ZKanji frequency scores, which roughly correspond
// to the same rank buckets as DefaultRankScale.
func ZKanjiScoreScale() Scale {
	return Scale{Kind: ScoreScale, Cutoffs: [4]int{5750, 5100, 4500, 3500}}
}

// NewScale builds a Scale from a kind name ("rank" or "score") and optional
// cut-offs. Empty cut-offs select the kind's defaults.
func NewScale(kind string, cutoffs []int) (Scale, error) {
	var s Scale
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "rank":
		s = DefaultRankScale()
	case "score":
		s = ZKanjiScoreScale()
	default:
		return Scale{}, fmt.Errorf("unknown frequency scale %q", kind)
	}
	if len(cutoffs) == 0 {
		return s, nil
	}
	if len(cutoffs) != len(s.Cutoffs) {
		return Scale{}, fmt.Errorf("expected %d cut-offs, got %d", len(s.Cutoffs), len(cutoffs))
	}
	for i := 1; i < len(cutoffs); i++ {
		if !s.Meets(cutoffs[i-1], cutoffs[i]) || cutoffs[i-1] == cutoffs[i] {
			return Scale{}, fmt.Errorf("cut-offs must get strictly rarer, got %v", cutoffs)
		}
	}
	copy(s.Cutoffs[:], cutoffs)
	return s, nil
}

// Meets reports whether freq is at least as common as cutoff.
func (s Scale) Meets(freq, cutoff int) bool {
	if s.Kind == ScoreScale {
		return freq >= cutoff
	}
	return freq <= cutoff
}

// Rarest returns the frequency of the least common reading.
func (s Scale) Rarest(readings []Reading) int {
	if len(readings) == 0 {
		return 0
	}
	rarest := readings[0].Frequency
	for _, r := range readings[1:] {
		if !s.Meets(r.Frequency, rarest) {
			rarest = r.Frequency
		}
	}
	return rarest
}

// tierTags are the tags that pin tiers 1..4.
var tierTags = [4]Proficiency{N4, N3, N2, N1}

// Level maps a proficiency tag and the rarest reading's frequency to a tier.
// Tiers are tested from easiest to hardest; a tier is taken as soon as the
// tag matches it or the frequency meets its cut-off. N5 alone yields tier 0.
func (s Scale) Level(tag Proficiency, rarest int) int {
	if tag == N5 {
		return 0
	}
	for i, cutoff := range s.Cutoffs {
		if tag == tierTags[i] || s.Meets(rarest, cutoff) {
			return i + 1
		}
	}
	return MaxLevel
}

// Obscure reports whether a reading with the given frequency is too rare to
// offer for a word carrying tag. Ungraded words never have obscure readings.
func (s Scale) Obscure(freq int, tag Proficiency) bool {
	var cutoff int
	switch tag {
	case N5, N4:
		cutoff = s.Cutoffs[0]
	case N3:
		cutoff = s.Cutoffs[1]
	case N2:
		cutoff = s.Cutoffs[2]
	case N1:
		cutoff = s.Cutoffs[3]
	default:
		return false
	}
	return !s.Meets(freq, cutoff)
}

// frequencyFor returns the frequency used to score e. On a rank scale a zero
// frequency means "unknown" and the entry's source position stands in.
func (s Scale) frequencyFor(e *Entry) int {
	freq := s.Rarest(e.Readings)
	if s.Kind == RankScale && freq <= 0 {
		return e.SourceRank
	}
	return freq
}

// ScoreLevels sets Level on every entry in place.
func ScoreLevels(entries []Entry, s Scale) {
	for i := range entries {
		e := &entries[i]
		e.Level = s.Level(e.Proficiency, s.frequencyFor(e))
	}
}
