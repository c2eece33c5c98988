package shell

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout renders like `date` with the C locale.
const DateLayout = "Mon Jan 02 15:04:05 MST 2006"

const calendarWidth = 20 // seven 2-column days separated by single spaces

const weekHeader = "Mo Tu We Th Fr Sa Su"

// formatDate renders t for the date command.
func formatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// formatMonth renders the month containing t as a Monday-first text calendar.
// Every line ends in a newline and carries no trailing spaces.
func formatMonth(t time.Time) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %d", t.Month(), t.Year())
	pad := calendarWidth - len(title)
	if pad > 0 {
		title = strings.Repeat(" ", pad/2) + title
	}
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(weekHeader)
	b.WriteString("\n")

	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	days := first.AddDate(0, 1, -1).Day()
	offset := (int(first.Weekday()) + 6) % 7 // Monday == 0

	cells := make([]string, 0, 7)
	flush := func() {
		b.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		b.WriteString("\n")
		cells = cells[:0]
	}
	for i := 0; i < offset; i++ {
		cells = append(cells, "  ")
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, fmt.Sprintf("%2d", d))
		if len(cells) == 7 {
			flush()
		}
	}
	if len(cells) > 0 {
		flush()
	}

	return b.String()
}
