package puzzle

import (
	"fmt"
)

// MaxNumber is the largest puzzle number that fits the four-digit ID.
const MaxNumber = 9999

// Word is one located answer of a processed puzzle.
type Word struct {
	Across     bool   `json:"across"`
	ClueNumber int    `json:"clue_number"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
	KanjiForm  string `json:"kanji_form"`
	Reading    string `json:"reading"`
}

// Puzzle is the processed form consumed by the app.
type Puzzle struct {
	Number int    `json:"number"`
	ID     string `json:"id"`
	Level  int    `json:"level"`
	Words  []Word `json:"words"`
}

// PuzzleID formats the identifier of puzzle number within level.
func PuzzleID(level, number int) string {
	return fmt.Sprintf("%d-%04d", level, number)
}

// Process locates every hint of raw in its grid. Across hints come first.
// When a reading repeats in one direction, each repeat is matched to the
// next occurrence in the grid.
func Process(raw *Raw, level, number int) (*Puzzle, error) {
	if number < 0 || number > MaxNumber {
		return nil, fmt.Errorf("puzzle number %d out of range 0..%d", number, MaxNumber)
	}
	grid, err := NewGrid(raw.CellData)
	if err != nil {
		return nil, err
	}

	p := &Puzzle{
		Number: number,
		ID:     PuzzleID(level, number),
		Level:  level,
		Words:  make([]Word, 0, len(raw.Hints.Across)+len(raw.Hints.Down)),
	}
	for _, dir := range []struct {
		across bool
		hints  []Hint
	}{
		{true, raw.Hints.Across},
		{false, raw.Hints.Down},
	} {
		seen := make(map[string]int)
		for _, h := range dir.hints {
			row, col, err := Locate(grid, h.Reading, dir.across, seen[h.Reading])
			if err != nil {
				return nil, fmt.Errorf("puzzle %s clue %d: %w", p.ID, h.Number, err)
			}
			seen[h.Reading]++
			p.Words = append(p.Words, Word{
				Across:     dir.across,
				ClueNumber: h.Number,
				Row:        row,
				Col:        col,
				KanjiForm:  h.Word,
				Reading:    h.Reading,
			})
		}
	}
	return p, nil
}
