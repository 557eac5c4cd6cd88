package vocab

import "github.com/japaniel/kurosu/pkg/kana"

// MinReadingLen is the shortest reading usable in a crossword grid.
const MinReadingLen = 2

// FilterReadings drops readings shorter than MinReadingLen and entries left
// without readings. Entries with several readings then lose the readings
// that are obscure for their proficiency tag; this never removes the last
// reading, the primary one is kept if every reading is obscure.
func FilterReadings(entries []Entry, s Scale) []Entry {
	out := make([]Entry, 0, len(entries))
	for i := range entries {
		e := entries[i].clone()

		e.Readings = keepReadings(e.Readings, func(r Reading) bool {
			return kana.Len(r.Text) >= MinReadingLen
		})
		if len(e.Readings) == 0 {
			continue
		}

		if len(e.Readings) > 1 {
			common := keepReadings(e.Readings, func(r Reading) bool {
				return !s.Obscure(r.Frequency, e.Proficiency)
			})
			if len(common) == 0 {
				common = e.Readings[:1]
			}
			e.Readings = common
		}
		out = append(out, e)
	}
	return out
}

func keepReadings(rs []Reading, keep func(Reading) bool) []Reading {
	out := make([]Reading, 0, len(rs))
	for _, r := range rs {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
