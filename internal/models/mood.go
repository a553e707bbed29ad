package models

import (
	"fmt"

	"github.com/julianstephens/doseprompt/internal/constants"
)

type Mood string

const (
	MoodNone    Mood = ""
	MoodSad     Mood = "sad"
	MoodNeutral Mood = "neutral"
	MoodHappy   Mood = "happy"
)

// Moods lists the selectable moods in display order
var Moods = []Mood{MoodSad, MoodNeutral, MoodHappy}

func (m Mood) Valid() bool {
	switch m {
	case MoodSad, MoodNeutral, MoodHappy:
		return true
	}
	return false
}

func (m Mood) Label() string {
	switch m {
	case MoodSad:
		return "Sad"
	case MoodNeutral:
		return "Neutral"
	case MoodHappy:
		return "Happy"
	}
	return ""
}

func (m Mood) Emoji() string {
	switch m {
	case MoodSad:
		return "😔"
	case MoodNeutral:
		return "😐"
	case MoodHappy:
		return "😊"
	}
	return ""
}

// ParseMood accepts the stored form of a mood ("happy", "neutral", "sad").
func ParseMood(s string) (Mood, error) {
	m := Mood(s)
	if !m.Valid() {
		return MoodNone, fmt.Errorf("invalid mood: %q", s)
	}
	return m, nil
}

// Energy is a 1..5 rating; zero means no selection.
type Energy int

const EnergyNone Energy = 0

func (e Energy) Valid() bool {
	return e >= constants.MinEnergy && e <= constants.MaxEnergy
}

func (e Energy) Label() string {
	switch e {
	case constants.MinEnergy:
		return fmt.Sprintf("%d - Low", e)
	case constants.MaxEnergy:
		return fmt.Sprintf("%d - High", e)
	}
	if e.Valid() {
		return fmt.Sprintf("%d", e)
	}
	return ""
}

// Energies lists the selectable energy levels in display order
func Energies() []Energy {
	levels := make([]Energy, 0, constants.MaxEnergy-constants.MinEnergy+1)
	for e := Energy(constants.MinEnergy); e <= constants.MaxEnergy; e++ {
		levels = append(levels, e)
	}
	return levels
}

// MoodEntry is the saved mood and energy for one date
type MoodEntry struct {
	Date   string `json:"date"` // YYYY-MM-DD format
	Mood   Mood   `json:"mood"`
	Energy Energy `json:"energy"`
}

// Complete reports whether both mood and energy are present and in range.
func (e MoodEntry) Complete() bool {
	return e.Mood.Valid() && e.Energy.Valid()
}
