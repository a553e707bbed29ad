package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/doseprompt/internal/calendar"
	"github.com/julianstephens/doseprompt/internal/logger"
	"github.com/julianstephens/doseprompt/internal/migration"
	"github.com/julianstephens/doseprompt/internal/models"
)

// SQLiteStore keeps mood entries in SQLite. With the default ":memory:" DSN
// the database lives and dies with the process.
type SQLiteStore struct {
	dsn string
	db  *sql.DB
}

func NewSQLiteStore(dsn string) *SQLiteStore {
	return &SQLiteStore{
		dsn: dsn,
	}
}

func (s *SQLiteStore) Init() error {
	if s.db != nil {
		return nil
	}

	if s.isFile() {
		dir := filepath.Dir(s.dsn)
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", s.dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	s.db = db
	return nil
}

func migrate(db *sql.DB) error {
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return err
	}
	applied, err := migration.NewRunner(db, sub).Apply()
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	if applied > 0 {
		logger.Debug("SQLite schema migrated", "applied", applied)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) SaveMoodEntry(entry models.MoodEntry) error {
	if s.db == nil {
		return fmt.Errorf("storage not initialized")
	}
	if err := validateEntry(entry); err != nil {
		return err
	}
	if _, err := calendar.ParseISO(entry.Date); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`
		INSERT INTO mood_entries (date, mood, energy, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			mood = excluded.mood,
			energy = excluded.energy,
			updated_at = excluded.updated_at`,
		entry.Date, string(entry.Mood), int(entry.Energy), now, now)
	if err != nil {
		return fmt.Errorf("failed to save mood entry: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetMoodEntry(date string) (models.MoodEntry, error) {
	if s.db == nil {
		return models.MoodEntry{}, fmt.Errorf("storage not initialized")
	}

	row := s.db.QueryRow(`SELECT date, mood, energy FROM mood_entries WHERE date = ?`, date)

	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.MoodEntry{}, ErrNotFound
	}
	if err != nil {
		return models.MoodEntry{}, err
	}
	return entry, nil
}

func (s *SQLiteStore) GetMoodEntriesForMonth(year, monthIdx int) ([]models.MoodEntry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not initialized")
	}

	first := calendar.FirstOfMonth(year, monthIdx)
	nextY, nextM := calendar.ShiftMonth(first.Year, first.MonthIndex(), 1)
	next := calendar.FirstOfMonth(nextY, nextM)

	rows, err := s.db.Query(`
		SELECT date, mood, energy FROM mood_entries
		WHERE date >= ? AND date < ?
		ORDER BY date`, first.ISO(), next.ISO())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.MoodEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) Describe() string {
	return "sqlite (" + s.dsn + ")"
}

// FilePath returns the database file, or "" for in-memory and URI DSNs
func (s *SQLiteStore) FilePath() string {
	if !s.isFile() {
		return ""
	}
	return s.dsn
}

func (s *SQLiteStore) isFile() bool {
	return s.dsn != ":memory:" && !strings.HasPrefix(s.dsn, "file:")
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (models.MoodEntry, error) {
	var entry models.MoodEntry
	var mood string
	var energy int
	if err := row.Scan(&entry.Date, &mood, &energy); err != nil {
		return models.MoodEntry{}, err
	}

	parsed, err := models.ParseMood(mood)
	if err != nil {
		return models.MoodEntry{}, err
	}
	entry.Mood = parsed
	entry.Energy = models.Energy(energy)
	return entry, nil
}
