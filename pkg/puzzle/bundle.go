package puzzle

import (
	"fmt"
)

// Level describes one difficulty level of the app.
type Level struct {
	ID    int
	Name  string
	NRows int
	NCols int
}

// Levels is the fixed level table, indexed by level ID.
var Levels = []Level{
	{0, "Beginner I", 6, 7},
	{1, "Beginner II", 7, 8},
	{2, "Intermediate I", 8, 9},
	{3, "Intermediate II", 8, 9},
	{4, "Advanced I", 8, 9},
	{5, "Advanced II", 8, 9},
}

// LevelData is one level of a bundle.
type LevelData struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	NRows   int      `json:"nrows"`
	NCols   int      `json:"ncols"`
	Puzzles []Puzzle `json:"puzzles"`
}

// Collection is the combined puzzle document shipped with the app.
type Collection struct {
	LevelData []LevelData `json:"level_data"`
	Version   string      `json:"version"`
}

// NewCollection returns an empty collection with every level present.
func NewCollection(version string) *Collection {
	c := &Collection{Version: version, LevelData: make([]LevelData, len(Levels))}
	for i, l := range Levels {
		c.LevelData[i] = LevelData{ID: l.ID, Name: l.Name, NRows: l.NRows, NCols: l.NCols, Puzzles: []Puzzle{}}
	}
	return c
}

// Add appends p to its level.
func (c *Collection) Add(p Puzzle) error {
	if p.Level < 0 || p.Level >= len(c.LevelData) {
		return fmt.Errorf("puzzle %s: level %d out of range", p.ID, p.Level)
	}
	c.LevelData[p.Level].Puzzles = append(c.LevelData[p.Level].Puzzles, p)
	return nil
}

// Bundle combines every processed puzzle in dir into one collection.
func Bundle(dir, version string) (*Collection, error) {
	puzzles, err := LoadProcessed(dir)
	if err != nil {
		return nil, err
	}
	c := NewCollection(version)
	for _, p := range puzzles {
		if err := c.Add(p); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Save writes the collection as JSON to path.
func (c *Collection) Save(path string) error {
	return writeJSON(path, c)
}
