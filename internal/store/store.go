// Package store persists vocabulary entries in a local sqlite database.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/tangocli/tango/internal/vocab"
)

var (
	// ErrNotFound is returned when no entry matches the given key.
	ErrNotFound = errors.New("store: entry not found")
	// ErrExists is returned when inserting a headword that is already
	// stored. Deduplication happens here, not in the extraction pipeline.
	ErrExists = errors.New("store: word already exists")
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id            TEXT PRIMARY KEY,
	word          TEXT NOT NULL,
	word_display  TEXT NOT NULL DEFAULT '',
	meaning       TEXT NOT NULL DEFAULT '',
	phonetic      TEXT NOT NULL DEFAULT '',
	pos           TEXT NOT NULL DEFAULT '',
	examples      TEXT NOT NULL DEFAULT '[]',
	synonyms      TEXT NOT NULL DEFAULT '[]',
	antonyms      TEXT NOT NULL DEFAULT '[]',
	repetitions   INTEGER NOT NULL DEFAULT 0,
	ease          REAL NOT NULL DEFAULT 2.5,
	interval_days INTEGER NOT NULL DEFAULT 0,
	next_review   TEXT,
	last_review   TEXT,
	flash_correct INTEGER NOT NULL DEFAULT 0,
	flash_wrong   INTEGER NOT NULL DEFAULT 0,
	spell_correct INTEGER NOT NULL DEFAULT 0,
	spell_wrong   INTEGER NOT NULL DEFAULT 0,
	match_correct INTEGER NOT NULL DEFAULT 0,
	match_wrong   INTEGER NOT NULL DEFAULT 0,
	created_at    TEXT NOT NULL,
	updated_at    TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_entries_word ON entries(word);
CREATE INDEX IF NOT EXISTS idx_entries_next_review ON entries(next_review)
`

// Store is a sqlite-backed repository of vocabulary entries.
type Store struct {
	db *sqlx.DB
}

// Open opens (or creates) the database at path and runs migrations.
// Use ":memory:" for an ephemeral database.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// sqlite allows a single writer; serialize access at the pool level.
	db.SetMaxOpenConns(1)

	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("running migration: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// entryRow mirrors the entries table. Slices are stored as JSON text and
// timestamps as RFC 3339 strings, with NULL as the "unset" sentinel for
// the review timestamps.
type entryRow struct {
	ID          string         `db:"id"`
	Word        string         `db:"word"`
	WordDisplay string         `db:"word_display"`
	Meaning     string         `db:"meaning"`
	Phonetic    string         `db:"phonetic"`
	POS         string         `db:"pos"`
	Examples    string         `db:"examples"`
	Synonyms    string         `db:"synonyms"`
	Antonyms    string         `db:"antonyms"`
	Repetitions int            `db:"repetitions"`
	Ease        float64        `db:"ease"`
	Interval    int            `db:"interval_days"`
	NextReview  sql.NullString `db:"next_review"`
	LastReview  sql.NullString `db:"last_review"`
	FlashOK     int            `db:"flash_correct"`
	FlashNG     int            `db:"flash_wrong"`
	SpellOK     int            `db:"spell_correct"`
	SpellNG     int            `db:"spell_wrong"`
	MatchOK     int            `db:"match_correct"`
	MatchNG     int            `db:"match_wrong"`
	CreatedAt   string         `db:"created_at"`
	UpdatedAt   string         `db:"updated_at"`
}

func timeColumn(t time.Time) sql.NullString {
	if t.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339Nano), Valid: true}
}

func columnTime(col sql.NullString) (time.Time, error) {
	if !col.Valid {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, col.String)
}

func toRow(e *vocab.Entry) (entryRow, error) {
	examples, err := json.Marshal(emptySlice(e.Examples))
	if err != nil {
		return entryRow{}, fmt.Errorf("encoding examples: %w", err)
	}
	synonyms, err := json.Marshal(emptyStrings(e.Synonyms))
	if err != nil {
		return entryRow{}, fmt.Errorf("encoding synonyms: %w", err)
	}
	antonyms, err := json.Marshal(emptyStrings(e.Antonyms))
	if err != nil {
		return entryRow{}, fmt.Errorf("encoding antonyms: %w", err)
	}

	return entryRow{
		ID:          e.ID,
		Word:        e.Word,
		WordDisplay: e.WordDisplay,
		Meaning:     e.Meaning,
		Phonetic:    e.Phonetic,
		POS:         e.POS,
		Examples:    string(examples),
		Synonyms:    string(synonyms),
		Antonyms:    string(antonyms),
		Repetitions: e.SRS.Repetitions,
		Ease:        e.SRS.Ease,
		Interval:    e.SRS.IntervalDays,
		NextReview:  timeColumn(e.SRS.NextReview),
		LastReview:  timeColumn(e.SRS.LastReview),
		FlashOK:     e.Stats.FlashCorrect,
		FlashNG:     e.Stats.FlashWrong,
		SpellOK:     e.Stats.SpellCorrect,
		SpellNG:     e.Stats.SpellWrong,
		MatchOK:     e.Stats.MatchCorrect,
		MatchNG:     e.Stats.MatchWrong,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339Nano),
	}, nil
}

func (r entryRow) entry() (vocab.Entry, error) {
	e := vocab.Entry{
		ID:          r.ID,
		Word:        r.Word,
		WordDisplay: r.WordDisplay,
		Meaning:     r.Meaning,
		Phonetic:    r.Phonetic,
		POS:         r.POS,
		SRS: vocab.Scheduling{
			Repetitions:  r.Repetitions,
			Ease:         r.Ease,
			IntervalDays: r.Interval,
		},
		Stats: vocab.Stats{
			FlashCorrect: r.FlashOK,
			FlashWrong:   r.FlashNG,
			SpellCorrect: r.SpellOK,
			SpellWrong:   r.SpellNG,
			MatchCorrect: r.MatchOK,
			MatchWrong:   r.MatchNG,
		},
	}

	if err := json.Unmarshal([]byte(r.Examples), &e.Examples); err != nil {
		return vocab.Entry{}, fmt.Errorf("decoding examples: %w", err)
	}
	if err := json.Unmarshal([]byte(r.Synonyms), &e.Synonyms); err != nil {
		return vocab.Entry{}, fmt.Errorf("decoding synonyms: %w", err)
	}
	if err := json.Unmarshal([]byte(r.Antonyms), &e.Antonyms); err != nil {
		return vocab.Entry{}, fmt.Errorf("decoding antonyms: %w", err)
	}
	if len(e.Examples) == 0 {
		e.Examples = nil
	}
	if len(e.Synonyms) == 0 {
		e.Synonyms = nil
	}
	if len(e.Antonyms) == 0 {
		e.Antonyms = nil
	}

	var err error
	if e.SRS.NextReview, err = columnTime(r.NextReview); err != nil {
		return vocab.Entry{}, fmt.Errorf("parsing next_review: %w", err)
	}
	if e.SRS.LastReview, err = columnTime(r.LastReview); err != nil {
		return vocab.Entry{}, fmt.Errorf("parsing last_review: %w", err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339Nano, r.CreatedAt); err != nil {
		return vocab.Entry{}, fmt.Errorf("parsing created_at: %w", err)
	}
	if e.UpdatedAt, err = time.Parse(time.RFC3339Nano, r.UpdatedAt); err != nil {
		return vocab.Entry{}, fmt.Errorf("parsing updated_at: %w", err)
	}
	return e, nil
}

func emptySlice(ex []vocab.Example) []vocab.Example {
	if ex == nil {
		return []vocab.Example{}
	}
	return ex
}

func emptyStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

const insertQuery = `INSERT INTO entries (
	id, word, word_display, meaning, phonetic, pos,
	examples, synonyms, antonyms,
	repetitions, ease, interval_days, next_review, last_review,
	flash_correct, flash_wrong, spell_correct, spell_wrong, match_correct, match_wrong,
	created_at, updated_at
) VALUES (
	:id, :word, :word_display, :meaning, :phonetic, :pos,
	:examples, :synonyms, :antonyms,
	:repetitions, :ease, :interval_days, :next_review, :last_review,
	:flash_correct, :flash_wrong, :spell_correct, :spell_wrong, :match_correct, :match_wrong,
	:created_at, :updated_at
)`

const updateQuery = `UPDATE entries SET
	word = :word, word_display = :word_display, meaning = :meaning,
	phonetic = :phonetic, pos = :pos,
	examples = :examples, synonyms = :synonyms, antonyms = :antonyms,
	repetitions = :repetitions, ease = :ease, interval_days = :interval_days,
	next_review = :next_review, last_review = :last_review,
	flash_correct = :flash_correct, flash_wrong = :flash_wrong,
	spell_correct = :spell_correct, spell_wrong = :spell_wrong,
	match_correct = :match_correct, match_wrong = :match_wrong,
	updated_at = :updated_at
WHERE id = :id`

// Insert stores a new entry, assigning its id and timestamps. A duplicate
// headword returns ErrExists.
func (s *Store) Insert(ctx context.Context, e *vocab.Entry) error {
	if e.Word == "" {
		return fmt.Errorf("store: word must be non-empty")
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	row, err := toRow(e)
	if err != nil {
		return err
	}
	if _, err := s.db.NamedExecContext(ctx, insertQuery, row); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrExists, e.Word)
		}
		return fmt.Errorf("inserting entry: %w", err)
	}
	return nil
}

// Update replaces the stored entry wholesale, including the scheduling
// state. The caller owns the read-modify-write sequence for an entry.
func (s *Store) Update(ctx context.Context, e *vocab.Entry) error {
	e.UpdatedAt = time.Now().UTC()
	row, err := toRow(e)
	if err != nil {
		return err
	}
	res, err := s.db.NamedExecContext(ctx, updateQuery, row)
	if err != nil {
		return fmt.Errorf("updating entry: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, e.ID)
	}
	return nil
}

// Get returns the entry with the given id.
func (s *Store) Get(ctx context.Context, id string) (vocab.Entry, error) {
	var row entryRow
	err := s.db.GetContext(ctx, &row, `SELECT * FROM entries WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return vocab.Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return vocab.Entry{}, fmt.Errorf("getting entry: %w", err)
	}
	return row.entry()
}

// GetByWord returns the entry with the given normalized headword.
func (s *Store) GetByWord(ctx context.Context, word string) (vocab.Entry, error) {
	var row entryRow
	err := s.db.GetContext(ctx, &row, `SELECT * FROM entries WHERE word = ?`, vocab.NormalizeWord(word))
	if errors.Is(err, sql.ErrNoRows) {
		return vocab.Entry{}, fmt.Errorf("%w: %s", ErrNotFound, word)
	}
	if err != nil {
		return vocab.Entry{}, fmt.Errorf("getting entry by word: %w", err)
	}
	return row.entry()
}

// Delete removes the entry with the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// All returns every stored entry ordered by headword.
func (s *Store) All(ctx context.Context) ([]vocab.Entry, error) {
	var rows []entryRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT * FROM entries ORDER BY word`); err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	entries := make([]vocab.Entry, 0, len(rows))
	for _, row := range rows {
		e, err := row.entry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM entries`); err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return n, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "constraint failed")
}
