package home

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/doseprompt/internal/constants"
	"github.com/julianstephens/doseprompt/internal/models"
	"github.com/julianstephens/doseprompt/internal/nav"
)

func newTestModel() Model {
	return New(models.DoseProgress{Total: 10, Completed: 0}, 80, 30)
}

func selectItem(t *testing.T, m Model, name string) Model {
	t.Helper()
	for i, it := range MenuItems() {
		if it.Name == name {
			m.list.Select(i)
			return m
		}
	}
	t.Fatalf("no menu item %q", name)
	return m
}

func TestMenuItems(t *testing.T) {
	items := MenuItems()
	if len(items) != 7 {
		t.Fatalf("got %d menu items, want 7", len(items))
	}

	ready := map[string]constants.Screen{}
	for _, it := range items {
		if it.Ready {
			ready[it.Name] = it.Screen
		}
	}
	want := map[string]constants.Screen{
		"Set Reminders": constants.ScreenSetReminders,
		"Shopping list": constants.ScreenShoppingList,
		"Mood Tracker":  constants.ScreenMoodTracker,
	}
	for name, screen := range want {
		if ready[name] != screen {
			t.Errorf("%s opens %v, want %v", name, ready[name], screen)
		}
	}
	if len(ready) != len(want) {
		t.Errorf("got %d ready items, want %d", len(ready), len(want))
	}
}

func TestOpenReadyItem(t *testing.T) {
	m := selectItem(t, newTestModel(), "Mood Tracker")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	if msg := cmd(); msg != (nav.GoToMsg{Screen: constants.ScreenMoodTracker}) {
		t.Errorf("command produced %#v", msg)
	}
	if m.Notice() != "" {
		t.Errorf("Notice() = %q", m.Notice())
	}
}

func TestOpenUnavailableItem(t *testing.T) {
	m := selectItem(t, newTestModel(), "Refill Tracker")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Errorf("unavailable item produced a command: %#v", cmd())
	}
	if m.Notice() != "Refill Tracker is not available yet." {
		t.Errorf("Notice() = %q", m.Notice())
	}
	if !strings.Contains(m.View(), "not available yet") {
		t.Error("View() does not show the notice")
	}

	// moving on clears the notice
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.Notice() != "" {
		t.Errorf("Notice() = %q after moving", m.Notice())
	}
}

func TestViewShowsProgress(t *testing.T) {
	m := New(models.DoseProgress{Total: 10, Completed: 3}, 80, 30)
	view := m.View()

	for _, want := range []string{"Daily Progress", "30%", "3 of 10 Doses"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestStartAnimatesProgress(t *testing.T) {
	m := newTestModel()
	if m.Start() == nil {
		t.Error("Start() returned no animation command")
	}
}
