package shopping

import (
	"github.com/julianstephens/doseprompt/internal/constants"
	"github.com/julianstephens/doseprompt/internal/models"
)

// Option is one dropdown entry. Value is a medication id or
// constants.CustomMedicationID.
type Option struct {
	Label string
	Value string
}

// List is the shopping list. It starts with one empty row; rows are appended
// and only removed through a confirmed delete.
type List struct {
	catalog       models.Catalog
	rows          []*Row
	pendingDelete string
}

func NewList(catalog models.Catalog) *List {
	return &List{
		catalog: catalog,
		rows:    []*Row{newRow()},
	}
}

// Options returns the dropdown entries: the catalog, then the custom entry.
func (l *List) Options() []Option {
	opts := make([]Option, 0, len(l.catalog)+1)
	for _, m := range l.catalog {
		opts = append(opts, Option{Label: m.Name, Value: m.ID})
	}
	return append(opts, Option{Label: constants.CustomMedicationLabel, Value: constants.CustomMedicationID})
}

// Rows returns the rows in display order.
func (l *List) Rows() []*Row {
	out := make([]*Row, len(l.rows))
	copy(out, l.rows)
	return out
}

func (l *List) Len() int { return len(l.rows) }

func (l *List) Row(id string) (*Row, bool) {
	for _, r := range l.rows {
		if r.id == id {
			return r, true
		}
	}
	return nil, false
}

// Add appends an unchecked, unselected row and returns its id.
func (l *List) Add() string {
	r := newRow()
	l.rows = append(l.rows, r)
	return r.id
}

func (l *List) ToggleCheck(id string) {
	if r, ok := l.Row(id); ok {
		r.ToggleCheck()
	}
}

func (l *List) ToggleDropdown(id string) {
	if r, ok := l.Row(id); ok {
		r.ToggleDropdown()
	}
}

// Select applies a dropdown option to the row.
func (l *List) Select(id, value string) {
	if value == constants.CustomMedicationID {
		l.SelectCustom(id)
		return
	}
	l.SelectMedication(id, value)
}

// SelectMedication commits a catalog medication. Unknown medication ids are ignored.
func (l *List) SelectMedication(id, medicationID string) {
	r, ok := l.Row(id)
	if !ok {
		return
	}
	med, ok := l.catalog.Find(medicationID)
	if !ok {
		return
	}
	r.SelectMedication(med)
}

func (l *List) SelectCustom(id string) {
	if r, ok := l.Row(id); ok {
		r.SelectCustom()
	}
}

func (l *List) EditCustomText(id, text string) {
	if r, ok := l.Row(id); ok {
		r.EditCustomText(text)
	}
}

func (l *List) ConfirmCustom(id string) {
	if r, ok := l.Row(id); ok {
		r.ConfirmCustom()
	}
}

// RequestDelete marks a row for deletion pending confirmation and returns
// the prompt text. ok is false for unknown rows.
func (l *List) RequestDelete(id string) (prompt string, ok bool) {
	r, ok := l.Row(id)
	if !ok {
		return "", false
	}
	l.pendingDelete = id
	return `Remove "` + r.Label() + `" from the shopping list?`, true
}

// PendingDelete returns the id awaiting confirmation, if any.
func (l *List) PendingDelete() (string, bool) {
	return l.pendingDelete, l.pendingDelete != ""
}

// CancelDelete drops the pending request. Rows are untouched.
func (l *List) CancelDelete() {
	l.pendingDelete = ""
}

// ConfirmDelete removes the pending row and reports whether one was removed.
func (l *List) ConfirmDelete() bool {
	id := l.pendingDelete
	l.pendingDelete = ""
	if id == "" {
		return false
	}
	for i, r := range l.rows {
		if r.id == id {
			l.rows = append(l.rows[:i], l.rows[i+1:]...)
			return true
		}
	}
	return false
}
