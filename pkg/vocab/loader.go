package vocab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/japanese"
)

// SectionMarker is the line that starts the data rows of a ZKanji export.
const SectionMarker = "[Words]"

const (
	proficiencyOpen = "G(\t"
	posPrefix       = "MT"
	maxLineSize     = 1 << 20
)

// Encoding names the character encoding of an export file.
type Encoding string

const (
	EncodingUTF8     Encoding = "utf-8"
	EncodingShiftJIS Encoding = "shift_jis"
)

// ParseEncoding accepts the common spellings of the supported encodings.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "shift_jis", "shift-jis", "sjis", "cp932":
		return EncodingShiftJIS, nil
	}
	return "", fmt.Errorf("unsupported encoding %q", s)
}

// LoadExport reads a ZKanji export from path.
func LoadExport(path string, enc Encoding) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if enc == EncodingShiftJIS {
		r = japanese.ShiftJIS.NewDecoder().Reader(f)
	}

	entries, err := ParseExport(r)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return entries, nil
}

// ParseExport reads the rows after the [Words] marker, one raw entry per
// row. SourceRank is the row's position within the data section. The first
// malformed row aborts parsing with a *LineError.
func ParseExport(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		entries     []Entry
		dataStarted bool
		lineNum     int
		rank        int
	)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == SectionMarker {
			dataStarted = true
			continue
		}
		if !dataStarted || line == "" {
			continue
		}

		rank++
		entry, reason := parseRow(line)
		if reason != "" {
			return nil, &LineError{Line: lineNum, Text: line, Reason: reason}
		}
		entry.SourceRank = rank
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	return entries, nil
}

// parseRow returns a non-empty reason when the row is malformed.
func parseRow(line string) (Entry, string) {
	fields := strings.SplitN(line, " ", 4)
	if len(fields) < 4 {
		return Entry{}, "expected word, reading, frequency and metadata fields"
	}
	word, reading, freqField, meta := fields[0], fields[1], fields[2], fields[3]
	if word == "" || reading == "" {
		return Entry{}, "empty word or reading"
	}

	if !strings.HasPrefix(freqField, "F") {
		return Entry{}, "frequency marker must start with F"
	}
	freq, err := strconv.Atoi(strings.TrimPrefix(freqField, "F"))
	if err != nil {
		return Entry{}, "frequency marker is not a number"
	}

	open := strings.Index(meta, proficiencyOpen)
	if open < 0 {
		return Entry{}, "missing proficiency marker"
	}
	afterOpen := meta[open+len(proficiencyOpen):]
	tagEnd := strings.IndexByte(afterOpen, '\t')
	if tagEnd < 0 {
		return Entry{}, "unterminated proficiency marker"
	}
	prof, err := ParseProficiency(afterOpen[:tagEnd])
	if err != nil {
		return Entry{}, err.Error()
	}
	rest := afterOpen[tagEnd:]
	closing := strings.IndexByte(rest, ')')
	if closing < 0 {
		return Entry{}, "unterminated proficiency marker"
	}

	var definition, pos string
	for _, f := range strings.Split(rest[closing+1:], "\t") {
		f = strings.TrimSpace(f)
		switch {
		case f == "":
		case strings.HasPrefix(f, posPrefix):
			if pos == "" {
				pos = strings.Trim(strings.TrimPrefix(f, posPrefix), "()")
			}
		case definition == "":
			definition = f
		}
	}
	if definition == "" {
		return Entry{}, "missing definition"
	}

	return Entry{
		Word:        word,
		Readings:    []Reading{{Text: reading, Frequency: freq}},
		Proficiency: prof,
		Definition:  definition,
		POS:         pos,
		Classes:     ParsePOS(pos),
	}, ""
}
