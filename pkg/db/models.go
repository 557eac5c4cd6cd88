package db

import "github.com/japaniel/kurosu/pkg/vocab"

// LevelCount is the number of snapshot entries at one difficulty tier.
type LevelCount struct {
	Level   int
	Entries int
}

// SaveResult summarises a SaveSnapshot call.
type SaveResult struct {
	Entries    int
	Readings   int
	Duplicates int
}

func proficiencyText(p vocab.Proficiency) string {
	return p.String()
}

func parseProficiencyText(s string) vocab.Proficiency {
	if s == "" {
		return vocab.ProficiencyNone
	}
	p, err := vocab.ParseProficiency(s)
	if err != nil {
		return vocab.ProficiencyNone
	}
	return p
}
