// Package timefmt renders the wall-clock annotation given to the model so it
// can answer questions about the current time and date.
package timefmt

import (
	"fmt"
	"strings"
	"time"
)

// Format renders t+offset as "3:05 pm friday 13th october 2023".
func Format(t time.Time, offset time.Duration) string {
	t = t.Add(offset)
	return fmt.Sprintf("%s %s %s %s %d",
		t.Format("3:04 pm"),
		strings.ToLower(t.Weekday().String()),
		Ordinal(t.Day()),
		strings.ToLower(t.Month().String()),
		t.Year(),
	)
}

// Ordinal returns day with its English suffix: 1st, 2nd, 3rd, 4th ... 21st.
func Ordinal(day int) string {
	suffix := "th"
	switch day {
	case 1, 21, 31:
		suffix = "st"
	case 2, 22:
		suffix = "nd"
	case 3, 23:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", day, suffix)
}
