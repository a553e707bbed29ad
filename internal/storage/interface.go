package storage

import (
	"errors"
	"fmt"

	"github.com/julianstephens/doseprompt/internal/constants"
	"github.com/julianstephens/doseprompt/internal/models"
)

// ErrNotFound is returned when no mood entry exists for a date
var ErrNotFound = errors.New("mood entry not found")

type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Mood entries, keyed by YYYY-MM-DD
	SaveMoodEntry(models.MoodEntry) error
	GetMoodEntry(date string) (models.MoodEntry, error)
	GetMoodEntriesForMonth(year, monthIdx int) ([]models.MoodEntry, error)

	// Utils
	Describe() string
}

// New returns the provider named by kind. dsn is only used by the SQLite store.
func New(kind, dsn string) (Provider, error) {
	switch kind {
	case "", constants.StoreMemory:
		return NewMemoryStore(), nil
	case constants.StoreSQLite:
		if dsn == "" {
			dsn = constants.DefaultSQLiteDSN
		}
		return NewSQLiteStore(dsn), nil
	default:
		return nil, fmt.Errorf("unknown store %q (expected %s or %s)", kind, constants.StoreMemory, constants.StoreSQLite)
	}
}

func validateEntry(entry models.MoodEntry) error {
	if !entry.Complete() {
		return fmt.Errorf("incomplete mood entry for %s: mood=%q energy=%d", entry.Date, entry.Mood, entry.Energy)
	}
	return nil
}
