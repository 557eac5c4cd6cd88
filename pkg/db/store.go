package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/japaniel/kurosu/pkg/vocab"
)

// ErrNotFound is returned when a word is not in the snapshot.
var ErrNotFound = errors.New("db: entry not found")

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// isUniqueConstraintErr returns true when the error indicates a unique/constraint violation
func isUniqueConstraintErr(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "unique") || strings.Contains(s, "constraint failed")
}

// SaveSnapshot replaces the snapshot contents with entries in a single
// transaction. A word that appears twice keeps its first value and the
// duplicate is logged.
func SaveSnapshot(conn *sql.DB, entries []vocab.Entry, logger *zap.Logger) (SaveResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var res SaveResult

	tx, err := conn.Begin()
	if err != nil {
		return res, fmt.Errorf("begin snapshot: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM readings`); err != nil {
		return res, fmt.Errorf("clear readings: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return res, fmt.Errorf("clear entries: %w", err)
	}

	for i := range entries {
		e := &entries[i]
		id, err := insertEntry(tx, e)
		if isUniqueConstraintErr(err) {
			res.Duplicates++
			logger.Warn("duplicate snapshot word, keeping first",
				zap.String("word", e.Word), zap.Int("source_rank", e.SourceRank))
			continue
		}
		if err != nil {
			return res, fmt.Errorf("insert %q: %w", e.Word, err)
		}
		for pos, r := range e.Readings {
			if _, err := tx.Exec(
				`INSERT INTO readings (entry_id, position, text, frequency) VALUES (?, ?, ?, ?)`,
				id, pos, r.Text, r.Frequency,
			); err != nil {
				return res, fmt.Errorf("insert reading %q of %q: %w", r.Text, e.Word, err)
			}
			res.Readings++
		}
		res.Entries++
	}

	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("commit snapshot: %w", err)
	}
	logger.Info("snapshot saved",
		zap.Int("entries", res.Entries),
		zap.Int("readings", res.Readings),
		zap.Int("duplicates", res.Duplicates))
	return res, nil
}

func insertEntry(db DBExecutor, e *vocab.Entry) (int64, error) {
	word := strings.TrimSpace(e.Word)
	if word == "" {
		return 0, fmt.Errorf("word must be non-empty")
	}
	res, err := db.Exec(
		`INSERT INTO entries (word, proficiency, definition, pos, source_rank, level, tail)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		word, proficiencyText(e.Proficiency), e.Definition, e.POS, e.SourceRank, e.Level, e.Tail,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// LookupEntry returns the snapshot entry for word, or ErrNotFound.
func LookupEntry(db DBExecutor, word string) (vocab.Entry, error) {
	var (
		e           vocab.Entry
		id          int64
		proficiency string
	)
	err := db.QueryRow(
		`SELECT id, word, proficiency, definition, pos, source_rank, level, tail FROM entries WHERE word = ?`,
		word,
	).Scan(&id, &e.Word, &proficiency, &e.Definition, &e.POS, &e.SourceRank, &e.Level, &e.Tail)
	if errors.Is(err, sql.ErrNoRows) {
		return vocab.Entry{}, fmt.Errorf("%q: %w", word, ErrNotFound)
	}
	if err != nil {
		return vocab.Entry{}, err
	}
	e.Proficiency = parseProficiencyText(proficiency)
	e.Classes = vocab.ParsePOS(e.POS)

	rows, err := db.Query(`SELECT text, frequency FROM readings WHERE entry_id = ? ORDER BY position`, id)
	if err != nil {
		return vocab.Entry{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var r vocab.Reading
		if err := rows.Scan(&r.Text, &r.Frequency); err != nil {
			return vocab.Entry{}, err
		}
		e.Readings = append(e.Readings, r)
	}
	if err := rows.Err(); err != nil {
		return vocab.Entry{}, err
	}
	return e, nil
}

// CountEntries returns the number of words in the snapshot.
func CountEntries(db DBExecutor) (int, error) {
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountByLevel returns the number of entries per tier, lowest tier first.
func CountByLevel(db DBExecutor) ([]LevelCount, error) {
	rows, err := db.Query(`SELECT level, COUNT(*) FROM entries GROUP BY level ORDER BY level`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LevelCount
	for rows.Next() {
		var lc LevelCount
		if err := rows.Scan(&lc.Level, &lc.Entries); err != nil {
			return nil, err
		}
		out = append(out, lc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
