// Package mood holds the mood tracker session: which date is selected, the
// pending mood and energy picks, and the month cursors of the inline picker
// and the monthly summary.
package mood

import (
	stderrors "errors"

	"github.com/julianstephens/doseprompt/internal/calendar"
	"github.com/julianstephens/doseprompt/internal/constants"
	"github.com/julianstephens/doseprompt/internal/errors"
	"github.com/julianstephens/doseprompt/internal/logger"
	"github.com/julianstephens/doseprompt/internal/models"
	"github.com/julianstephens/doseprompt/internal/storage"
)

// MonthCursor points at a month with a zero-based index.
type MonthCursor struct {
	Year     int
	MonthIdx int
}

func (c MonthCursor) Shift(delta int) MonthCursor {
	y, m := calendar.ShiftMonth(c.Year, c.MonthIdx, delta)
	return MonthCursor{Year: y, MonthIdx: m}
}

func (c MonthCursor) Matrix() calendar.Matrix {
	return calendar.BuildMonthMatrix(c.Year, c.MonthIdx)
}

func (c MonthCursor) Title() string {
	return calendar.Title(c.Year, c.MonthIdx)
}

func cursorOf(d calendar.Date) MonthCursor {
	return MonthCursor{Year: d.Year, MonthIdx: d.MonthIndex()}
}

type Tracker struct {
	store       storage.Provider
	selected    calendar.Date
	mood        models.Mood
	energy      models.Energy
	picker      MonthCursor
	summary     MonthCursor
	summaryOpen bool
}

// NewTracker starts a session on today, loading any entry already saved for it.
func NewTracker(store storage.Provider, today calendar.Date) *Tracker {
	t := &Tracker{
		store:   store,
		picker:  cursorOf(today),
		summary: cursorOf(today),
	}
	t.SelectDate(today)
	return t
}

func (t *Tracker) Selected() calendar.Date     { return t.selected }
func (t *Tracker) Mood() models.Mood           { return t.mood }
func (t *Tracker) Energy() models.Energy       { return t.energy }
func (t *Tracker) PickerMonth() MonthCursor    { return t.picker }
func (t *Tracker) SummaryMonth() MonthCursor   { return t.summary }
func (t *Tracker) SummaryOpen() bool           { return t.summaryOpen }
func (t *Tracker) SetMood(m models.Mood)       { t.mood = m }
func (t *Tracker) SetEnergy(e models.Energy)   { t.energy = e }
func (t *Tracker) ShiftPickerMonth(delta int)  { t.picker = t.picker.Shift(delta) }
func (t *Tracker) ShiftSummaryMonth(delta int) { t.summary = t.summary.Shift(delta) }
func (t *Tracker) CloseSummary()               { t.summaryOpen = false }

// SelectDate moves the selection, brings the picker to that month and loads
// the saved pair for the date into the pending selection.
func (t *Tracker) SelectDate(d calendar.Date) {
	t.selected = d
	t.picker = cursorOf(d)

	if entry, ok := t.Load(d.ISO()); ok {
		t.mood = entry.Mood
		t.energy = entry.Energy
	} else {
		t.mood = models.MoodNone
		t.energy = models.EnergyNone
	}
}

// MoveSelection shifts the selected date by days. When the picker has been
// paged away from the selected date, the first move lands on the 1st of the
// visible month instead.
func (t *Tracker) MoveSelection(days int) {
	if cursorOf(t.selected) != t.picker {
		t.SelectDate(calendar.FirstOfMonth(t.picker.Year, t.picker.MonthIdx))
		return
	}
	t.SelectDate(t.selected.AddDays(days))
}

// OpenSummary opens the monthly summary on the picker's month.
func (t *Tracker) OpenSummary() {
	t.summary = t.picker
	t.summaryOpen = true
}

// Save stores the pending mood and energy for the selected date. Both must be
// chosen; otherwise a ValidationError is returned and nothing changes.
func (t *Tracker) Save() error {
	return t.SaveEntry(t.selected.ISO(), t.mood, t.energy)
}

// SaveEntry creates or overwrites the entry for date.
func (t *Tracker) SaveEntry(date string, mood models.Mood, energy models.Energy) error {
	if !mood.Valid() || !energy.Valid() {
		return errors.NewValidation(constants.MissingSelectionTitle, constants.MissingSelectionMessage)
	}

	entry := models.MoodEntry{Date: date, Mood: mood, Energy: energy}
	if err := t.store.SaveMoodEntry(entry); err != nil {
		return err
	}
	logger.Debug("Saved mood entry", "date", date, "mood", mood, "energy", energy)
	return nil
}

// Load returns the saved entry for date. Storage failures are logged and
// reported as no entry.
func (t *Tracker) Load(date string) (models.MoodEntry, bool) {
	entry, err := t.store.GetMoodEntry(date)
	if err != nil {
		if !stderrors.Is(err, storage.ErrNotFound) {
			logger.Warn("Failed to load mood entry", "date", date, "error", err)
		}
		return models.MoodEntry{}, false
	}
	return entry, true
}

// SummaryEntries returns the saved entries of the summary month keyed by date.
func (t *Tracker) SummaryEntries() map[string]models.MoodEntry {
	return t.monthEntries(t.summary)
}

// PickerEntries returns the saved entries of the picker month keyed by date.
func (t *Tracker) PickerEntries() map[string]models.MoodEntry {
	return t.monthEntries(t.picker)
}

func (t *Tracker) monthEntries(c MonthCursor) map[string]models.MoodEntry {
	entries, err := t.store.GetMoodEntriesForMonth(c.Year, c.MonthIdx)
	if err != nil {
		logger.Warn("Failed to load month entries", "month", c.Title(), "error", err)
		return map[string]models.MoodEntry{}
	}

	byDate := make(map[string]models.MoodEntry, len(entries))
	for _, e := range entries {
		byDate[e.Date] = e
	}
	return byDate
}
