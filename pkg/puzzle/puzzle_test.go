package puzzle

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRaw = `{
  "cell_data": ["ネコ■イヌ", "コ■ネコ■", "■ネコ■■"],
  "hints": {
    "h": [[1, "ネコ", "猫"], [2, "イヌ", "犬"], [3, "ネコ", "猫"], [4, "ネコ", "寝子"]],
    "v": [[1, "ネコ", "猫"], [5, "ネコ", "猫"], [2, "イコ", "憩"]]
  }
}`

func sampleGrid(t *testing.T) Grid {
	t.Helper()
	g, err := NewGrid([]string{"ネコ■イヌ", "コ■ネコ■", "■ネコ■■"})
	require.NoError(t, err)
	return g
}

func TestParseRaw(t *testing.T) {
	raw, err := ParseRaw([]byte(sampleRaw))
	require.NoError(t, err)
	assert.Len(t, raw.CellData, 3)
	require.Len(t, raw.Hints.Across, 4)
	assert.Equal(t, Hint{Number: 2, Reading: "イヌ", Word: "犬"}, raw.Hints.Across[1])
	assert.Equal(t, []string{"猫", "犬", "猫", "寝子", "猫", "猫", "憩"}, raw.Words())
}

func TestParseRawRejectsInvalidDocuments(t *testing.T) {
	tests := map[string]string{
		"missing hints":   `{"cell_data": ["ネコ"]}`,
		"short hint":      `{"cell_data": ["ネコ"], "hints": {"h": [[1, "ネコ"]], "v": []}}`,
		"number as text":  `{"cell_data": ["ネコ"], "hints": {"h": [["1", "ネコ", "猫"]], "v": []}}`,
		"empty grid":      `{"cell_data": [], "hints": {"h": [], "v": []}}`,
		"not json":        `cell_data`,
		"grid not string": `{"cell_data": [1], "hints": {"h": [], "v": []}}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRaw([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestNewGridRejectsRaggedRows(t *testing.T) {
	_, err := NewGrid([]string{"ネコ", "イヌ■"})
	assert.Error(t, err)
}

func TestLocate(t *testing.T) {
	g := sampleGrid(t)
	tests := []struct {
		name     string
		reading  string
		across   bool
		n        int
		row, col int
	}{
		{"left edge across", "ネコ", true, 0, 0, 0},
		{"right edge across", "イヌ", true, 0, 0, 3},
		{"second occurrence", "ネコ", true, 1, 1, 2},
		{"third occurrence", "ネコ", true, 2, 2, 1},
		{"single cell", "コ", true, 0, 1, 0},
		{"top edge down", "ネコ", false, 0, 0, 0},
		{"bottom edge down", "ネコ", false, 1, 1, 2},
		{"down word", "イコ", false, 0, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, err := Locate(g, tt.reading, tt.across, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.row, row)
			assert.Equal(t, tt.col, col)
		})
	}
}

func TestLocateRequiresBoundedRun(t *testing.T) {
	g := sampleGrid(t)

	_, _, err := Locate(g, "ネ", true, 0)
	assert.True(t, errors.Is(err, ErrNotLocated))

	_, _, err = Locate(g, "ネコ", true, 3)
	assert.True(t, errors.Is(err, ErrNotLocated))

	_, _, err = Locate(g, "", true, 0)
	assert.Error(t, err)
}

func TestProcess(t *testing.T) {
	raw, err := ParseRaw([]byte(sampleRaw))
	require.NoError(t, err)

	p, err := Process(raw, 2, 17)
	require.NoError(t, err)
	assert.Equal(t, "2-0017", p.ID)
	assert.Equal(t, 17, p.Number)
	assert.Equal(t, 2, p.Level)
	require.Len(t, p.Words, 7)

	assert.Equal(t, Word{Across: true, ClueNumber: 1, Row: 0, Col: 0, KanjiForm: "猫", Reading: "ネコ"}, p.Words[0])
	assert.Equal(t, Word{Across: true, ClueNumber: 3, Row: 1, Col: 2, KanjiForm: "猫", Reading: "ネコ"}, p.Words[2])
	assert.Equal(t, Word{Across: true, ClueNumber: 4, Row: 2, Col: 1, KanjiForm: "寝子", Reading: "ネコ"}, p.Words[3])
	assert.Equal(t, Word{Across: false, ClueNumber: 5, Row: 1, Col: 2, KanjiForm: "猫", Reading: "ネコ"}, p.Words[5])
	assert.Equal(t, Word{Across: false, ClueNumber: 2, Row: 0, Col: 3, KanjiForm: "憩", Reading: "イコ"}, p.Words[6])
}

func TestProcessErrors(t *testing.T) {
	raw, err := ParseRaw([]byte(sampleRaw))
	require.NoError(t, err)

	_, err = Process(raw, 0, 10000)
	assert.Error(t, err)

	raw.Hints.Down = append(raw.Hints.Down, Hint{Number: 9, Reading: "トリ", Word: "鳥"})
	_, err = Process(raw, 0, 1)
	assert.ErrorIs(t, err, ErrNotLocated)
}

func TestPuzzleJSONShape(t *testing.T) {
	raw, err := ParseRaw([]byte(sampleRaw))
	require.NoError(t, err)
	p, err := Process(raw, 0, 1)
	require.NoError(t, err)

	data, err := json.Marshal(p.Words[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"across": true, "clue_number": 1, "row": 0, "col": 0, "kanji_form": "猫", "reading": "ネコ"}`, string(data))
}

func writeRawLevel(t *testing.T, root string, level int, names ...string) string {
	t.Helper()
	dir := LevelDir(root, level)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(sampleRaw), 0o644))
	}
	return dir
}

func TestRenameRaw(t *testing.T) {
	root := t.TempDir()
	dir := writeRawLevel(t, root, 3, "7.xw", "12.xw", "3-5.json", "notes")

	renamed, err := RenameRaw(dir, 3)
	require.NoError(t, err)
	assert.Len(t, renamed, 2)

	names, err := listFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"3-12.json", "3-5.json", "3-7.json", "notes"}, names)

	// Renaming again is a no-op.
	renamed, err = RenameRaw(dir, 3)
	require.NoError(t, err)
	assert.Empty(t, renamed)
}

func TestProcessDirBundleAndStats(t *testing.T) {
	root := t.TempDir()
	writeRawLevel(t, root, 0, "0-7.json", "0-12.json")
	writeRawLevel(t, root, 4, "4-1.json")
	out := filepath.Join(t.TempDir(), "processed")

	n, err := ProcessDir(root, out, []int{0, 4}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	data, err := os.ReadFile(filepath.Join(out, "0-0007.json"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"kanji_form":"猫"`), "kana should not be escaped: %s", data)

	c, err := Bundle(out, "0.1")
	require.NoError(t, err)
	assert.Equal(t, "0.1", c.Version)
	require.Len(t, c.LevelData, len(Levels))
	assert.Equal(t, "Beginner I", c.LevelData[0].Name)
	assert.Equal(t, 6, c.LevelData[0].NRows)
	assert.Equal(t, 7, c.LevelData[0].NCols)
	require.Len(t, c.LevelData[0].Puzzles, 2)
	assert.Equal(t, "0-0007", c.LevelData[0].Puzzles[0].ID)
	assert.Equal(t, "0-0012", c.LevelData[0].Puzzles[1].ID)
	assert.Len(t, c.LevelData[4].Puzzles, 1)
	assert.Empty(t, c.LevelData[5].Puzzles)

	bundlePath := filepath.Join(t.TempDir(), "bundle.json")
	require.NoError(t, c.Save(bundlePath))
	var decoded Collection
	data, err = os.ReadFile(bundlePath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *c, decoded)

	stats, err := StatsDir(root, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Unique)
	assert.Equal(t, 14, stats.Total)
	assert.Equal(t, []DuplicatePair{{"0-12.json", "0-7.json"}}, stats.Duplicates)
}

func TestCollectionAddRejectsUnknownLevel(t *testing.T) {
	c := NewCollection("1")
	assert.Error(t, c.Add(Puzzle{ID: "9-0001", Level: 9}))
}

func TestStats(t *testing.T) {
	s := Stats(1, []WordSet{
		{Name: "a", Words: []string{"猫", "犬", "鳥"}},
		{Name: "b", Words: []string{"猫", "犬"}},
		{Name: "c", Words: []string{"魚", "猫"}},
	})
	assert.Equal(t, 4, s.Unique)
	assert.Equal(t, 7, s.Total)
	assert.Equal(t, map[int]int{1: 2, 2: 1, 3: 1}, s.Histogram)
	assert.Equal(t, []int{1, 2, 3}, s.Counts())
	assert.Equal(t, []DuplicatePair{{"a", "b"}}, s.Duplicates)
}
