package calendarview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/doseprompt/internal/calendar"
)

const cellWidth = 5

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(cellWidth).
			Align(lipgloss.Center)

	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center)
)

// Decorator renders the content of one non-empty cell. The returned style is
// applied on top of the fixed cell width.
type Decorator func(d calendar.Date) (text string, style lipgloss.Style)

// DayNumber is the plain decorator: the day of the month, unstyled
func DayNumber(d calendar.Date) (string, lipgloss.Style) {
	return DayText(d), lipgloss.NewStyle()
}

// Render draws a month matrix under title with a weekday header row
func Render(title string, matrix calendar.Matrix, decorate Decorator) string {
	if decorate == nil {
		decorate = DayNumber
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	headers := make([]string, 0, len(calendar.WeekdayHeaders))
	for _, h := range calendar.WeekdayHeaders {
		headers = append(headers, headerStyle.Render(h))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, headers...))

	for _, week := range matrix {
		cells := make([]string, 0, len(week))
		for _, cell := range week {
			d, ok := cell.Date()
			if !ok {
				cells = append(cells, cellStyle.Render(""))
				continue
			}
			text, style := decorate(d)
			cells = append(cells, style.Inherit(cellStyle).Render(text))
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return b.String()
}

// DayText is the day of the month as shown in a cell
func DayText(d calendar.Date) string {
	return strconv.Itoa(d.Day)
}
