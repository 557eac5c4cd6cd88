package puzzle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// LevelDir returns the raw directory of a level under root.
func LevelDir(root string, level int) string {
	return filepath.Join(root, strconv.Itoa(level))
}

// RenameRaw renames generator output "<n>.<ext>" in dir to
// "<level>-<n>.json" so names are unique across levels. Files already named
// that way are left alone. It returns the new paths.
func RenameRaw(dir string, level int) ([]string, error) {
	names, err := listFiles(dir)
	if err != nil {
		return nil, err
	}
	prefix := strconv.Itoa(level) + "-"

	var renamed []string
	for _, name := range names {
		if _, ok := parseProcessedName(name, level); ok {
			continue
		}
		base, _, _ := strings.Cut(name, ".")
		if _, err := strconv.Atoi(base); err != nil {
			continue
		}
		dst := filepath.Join(dir, prefix+base+".json")
		if _, err := os.Stat(dst); err == nil {
			return renamed, fmt.Errorf("rename %s: %s already exists", name, dst)
		}
		if err := os.Rename(filepath.Join(dir, name), dst); err != nil {
			return renamed, err
		}
		renamed = append(renamed, dst)
	}
	return renamed, nil
}

// parseProcessedName extracts n from "<level>-<n>.json".
func parseProcessedName(name string, level int) (int, bool) {
	rest, ok := strings.CutPrefix(name, strconv.Itoa(level)+"-")
	if !ok {
		return 0, false
	}
	num, ok := strings.CutSuffix(rest, ".json")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ProcessDir processes every renamed raw file of each level under rawRoot and
// writes "<level>-<nnnn>.json" files to outDir. It returns the number of
// puzzles written.
func ProcessDir(rawRoot, outDir string, levels []int, logger *zap.Logger) (int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, err
	}

	written := 0
	for _, level := range levels {
		dir := LevelDir(rawRoot, level)
		names, err := listFiles(dir)
		if err != nil {
			return written, err
		}
		for _, name := range names {
			number, ok := parseProcessedName(name, level)
			if !ok {
				logger.Warn("skipping unrecognised puzzle file", zap.String("file", filepath.Join(dir, name)))
				continue
			}
			raw, err := LoadRaw(filepath.Join(dir, name))
			if err != nil {
				return written, err
			}
			p, err := Process(raw, level, number)
			if err != nil {
				return written, fmt.Errorf("%s: %w", name, err)
			}
			if err := writeJSON(filepath.Join(outDir, p.ID+".json"), p); err != nil {
				return written, err
			}
			written++
		}
		logger.Info("level processed", zap.Int("level", level), zap.Int("total", written))
	}
	return written, nil
}

// LoadProcessed reads every processed puzzle in dir, sorted by file name.
func LoadProcessed(dir string) ([]Puzzle, error) {
	names, err := listFiles(dir)
	if err != nil {
		return nil, err
	}
	var out []Puzzle
	for _, name := range names {
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		var p Puzzle
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// listFiles returns the names of the regular files in dir, sorted.
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// writeJSON writes v without escaping kana or HTML characters.
func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return os.WriteFile(path, bytes.TrimRight(buf.Bytes(), "\n"), 0o644)
}
