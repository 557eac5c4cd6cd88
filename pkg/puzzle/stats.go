package puzzle

import (
	"path/filepath"
	"sort"
)

// WordSet is the source words used by one puzzle.
type WordSet struct {
	Name  string
	Words []string
}

// DuplicatePair names two puzzles where one uses only words of the other.
type DuplicatePair struct {
	A, B string
}

// LevelStats summarises word reuse across the puzzles of one level.
type LevelStats struct {
	Level  int
	Unique int
	Total  int
	// Histogram maps k to the number of distinct words used exactly k times.
	Histogram  map[int]int
	Duplicates []DuplicatePair
}

// Counts returns the histogram keys in ascending order.
func (s LevelStats) Counts() []int {
	keys := make([]int, 0, len(s.Histogram))
	for k := range s.Histogram {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Stats computes reuse statistics for the puzzles of a level.
func Stats(level int, puzzles []WordSet) LevelStats {
	s := LevelStats{Level: level, Histogram: make(map[int]int)}

	uses := make(map[string]int)
	for _, p := range puzzles {
		for _, w := range p.Words {
			uses[w]++
			s.Total++
		}
	}
	s.Unique = len(uses)
	for _, n := range uses {
		s.Histogram[n]++
	}

	sets := make([]map[string]bool, len(puzzles))
	for i, p := range puzzles {
		sets[i] = make(map[string]bool, len(p.Words))
		for _, w := range p.Words {
			sets[i][w] = true
		}
	}
	for i := range puzzles {
		for j := i + 1; j < len(puzzles); j++ {
			if subset(sets[j], sets[i]) || subset(sets[i], sets[j]) {
				s.Duplicates = append(s.Duplicates, DuplicatePair{puzzles[i].Name, puzzles[j].Name})
			}
		}
	}
	return s
}

func subset(a, b map[string]bool) bool {
	for w := range a {
		if !b[w] {
			return false
		}
	}
	return true
}

// StatsDir computes statistics for one level of raw generator files.
func StatsDir(rawRoot string, level int) (LevelStats, error) {
	dir := LevelDir(rawRoot, level)
	names, err := listFiles(dir)
	if err != nil {
		return LevelStats{}, err
	}
	var sets []WordSet
	for _, name := range names {
		raw, err := LoadRaw(filepath.Join(dir, name))
		if err != nil {
			return LevelStats{}, err
		}
		sets = append(sets, WordSet{Name: name, Words: raw.Words()})
	}
	return Stats(level, sets), nil
}
