package calendar

import (
	"testing"
	"time"
)

func TestBuildMonthMatrixLeapFebruary(t *testing.T) {
	m := BuildMonthMatrix(2024, 1)

	dates := m.Dates()
	if len(dates) != 29 {
		t.Fatalf("expected 29 dates, got %d", len(dates))
	}

	leading := 0
	for _, cell := range m[0] {
		if !cell.IsEmpty() {
			break
		}
		leading++
	}
	if leading != 4 {
		t.Errorf("expected 4 leading empty slots (Feb 1 2024 is a Thursday), got %d", leading)
	}

	first, ok := m[0][4].Date()
	if !ok || first != NewDate(2024, time.February, 1) {
		t.Errorf("m[0][4] = %v (ok=%v), want 2024-02-01", first, ok)
	}
}

func TestBuildMonthMatrixProperties(t *testing.T) {
	for year := 1999; year <= 2030; year++ {
		for monthIdx := 0; monthIdx < 12; monthIdx++ {
			m := BuildMonthMatrix(year, monthIdx)

			if len(m) < 4 || len(m) > 6 {
				t.Errorf("%d-%02d: unexpected week count %d", year, monthIdx+1, len(m))
			}

			dates := m.Dates()
			if want := DaysIn(year, monthIdx); len(dates) != want {
				t.Errorf("%d-%02d: %d dates, want %d", year, monthIdx+1, len(dates), want)
			}

			// contiguous, starting on the 1st, no duplicates
			for i, d := range dates {
				want := NewDate(year, time.Month(monthIdx+1), 1).AddDays(i)
				if d != want {
					t.Fatalf("%d-%02d: slot %d = %v, want %v", year, monthIdx+1, i, d, want)
				}
			}

			// each date sits in the column of its weekday
			for _, week := range m {
				for col, cell := range week {
					if d, ok := cell.Date(); ok && int(d.Weekday()) != col {
						t.Errorf("%v in column %d, weekday %d", d, col, d.Weekday())
					}
				}
			}

			// no fully empty trailing week
			last := m[len(m)-1]
			if last[0].IsEmpty() {
				t.Errorf("%d-%02d: last week starts with an empty slot", year, monthIdx+1)
			}
		}
	}
}

func TestBuildMonthMatrixKnownShapes(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		monthIdx int
		weeks    int
		leading  int
		trailing int
	}{
		{name: "February 2015 fits four weeks", year: 2015, monthIdx: 1, weeks: 4, leading: 0, trailing: 0},
		{name: "March 2025 needs six weeks", year: 2025, monthIdx: 2, weeks: 6, leading: 6, trailing: 5},
		{name: "January 2023 starts on Sunday", year: 2023, monthIdx: 0, weeks: 5, leading: 0, trailing: 4},
		{name: "non-leap February", year: 2023, monthIdx: 1, weeks: 5, leading: 3, trailing: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := BuildMonthMatrix(tt.year, tt.monthIdx)
			if len(m) != tt.weeks {
				t.Fatalf("weeks = %d, want %d", len(m), tt.weeks)
			}

			leading := 0
			for _, c := range m[0] {
				if !c.IsEmpty() {
					break
				}
				leading++
			}
			trailing := 0
			last := m[len(m)-1]
			for i := 6; i >= 0 && last[i].IsEmpty(); i-- {
				trailing++
			}

			if leading != tt.leading {
				t.Errorf("leading = %d, want %d", leading, tt.leading)
			}
			if trailing != tt.trailing {
				t.Errorf("trailing = %d, want %d", trailing, tt.trailing)
			}
		})
	}
}

func TestBuildMonthMatrixNormalizesIndex(t *testing.T) {
	m := BuildMonthMatrix(2023, 12)
	if got := m.Dates()[0]; got != NewDate(2024, time.January, 1) {
		t.Errorf("month index 12 of 2023 should be January 2024, got %v", got)
	}

	m = BuildMonthMatrix(2024, -1)
	if got := m.Dates()[0]; got != NewDate(2023, time.December, 1) {
		t.Errorf("month index -1 of 2024 should be December 2023, got %v", got)
	}
}

func TestShiftMonth(t *testing.T) {
	tests := []struct {
		year, monthIdx, delta int
		wantYear, wantIdx     int
	}{
		{2024, 0, -1, 2023, 11},
		{2024, 11, 1, 2025, 0},
		{2024, 5, 0, 2024, 5},
		{2024, 1, 13, 2025, 2},
	}
	for _, tt := range tests {
		y, m := ShiftMonth(tt.year, tt.monthIdx, tt.delta)
		if y != tt.wantYear || m != tt.wantIdx {
			t.Errorf("ShiftMonth(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.year, tt.monthIdx, tt.delta, y, m, tt.wantYear, tt.wantIdx)
		}
	}
}

func TestTitleAndISO(t *testing.T) {
	if got := Title(2024, 1); got != "February 2024" {
		t.Errorf("Title() = %q", got)
	}

	d := NewDate(2024, time.February, 10)
	if d.ISO() != "2024-02-10" {
		t.Errorf("ISO() = %q", d.ISO())
	}

	parsed, err := ParseISO("2024-02-10")
	if err != nil {
		t.Fatalf("ParseISO() error: %v", err)
	}
	if parsed != d {
		t.Errorf("ParseISO() = %v, want %v", parsed, d)
	}

	if _, err := ParseISO("2024/02/10"); err == nil {
		t.Error("ParseISO() accepted a malformed date")
	}
}

func TestLocate(t *testing.T) {
	m := BuildMonthMatrix(2024, 1)

	week, col, ok := m.Locate(NewDate(2024, time.February, 10))
	if !ok || week != 1 || col != 6 {
		t.Errorf("Locate(2024-02-10) = (%d, %d, %v), want (1, 6, true)", week, col, ok)
	}

	if _, _, ok := m.Locate(NewDate(2024, time.March, 1)); ok {
		t.Error("Locate() found a date outside the month")
	}
}
