package storage

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/julianstephens/doseprompt/internal/calendar"
	"github.com/julianstephens/doseprompt/internal/models"
)

// MemoryStore keeps mood entries in a map for the life of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]models.MoodEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]models.MoodEntry),
	}
}

func (s *MemoryStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entries == nil {
		s.entries = make(map[string]models.MoodEntry)
	}
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) SaveMoodEntry(entry models.MoodEntry) error {
	if err := validateEntry(entry); err != nil {
		return err
	}
	if _, err := calendar.ParseISO(entry.Date); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.Date] = entry
	return nil
}

func (s *MemoryStore) GetMoodEntry(date string) (models.MoodEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[date]
	if !ok {
		return models.MoodEntry{}, ErrNotFound
	}
	return entry, nil
}

func (s *MemoryStore) GetMoodEntriesForMonth(year, monthIdx int) ([]models.MoodEntry, error) {
	prefix := calendar.FirstOfMonth(year, monthIdx).ISO()[:8] // "YYYY-MM-"

	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []models.MoodEntry
	for date, entry := range s.entries {
		if strings.HasPrefix(date, prefix) {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
	return entries, nil
}

func (s *MemoryStore) Describe() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fmt.Sprintf("memory (%d entries)", len(s.entries))
}
