package dashboard

import (
	"fmt"
	"strings"
	"time"
)

// Weekdays are the calendar column headers, starting on Sunday.
var Weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Cell is one square of the month grid. Blank cells pad the first week.
type Cell struct {
	Blank       bool
	Day         int
	Key         string
	IsToday     bool
	HasDeadline bool
}

// Month is a rendered calendar month.
type Month struct {
	Year  int
	Month time.Month
	Cells []Cell
}

// Title is the heading shown above the grid, e.g. "September 2025".
func (m Month) Title() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// Prev returns the year and month before m.
func (m Month) Prev() (int, time.Month) {
	return ShiftMonth(m.Year, m.Month, -1)
}

// Next returns the year and month after m.
func (m Month) Next() (int, time.Month) {
	return ShiftMonth(m.Year, m.Month, 1)
}

// ShiftMonth moves delta months from year/month, wrapping across years.
func ShiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return t.Year(), t.Month()
}

// DayKey formats a date as the zero padded YYYY-MM-DD prefix used for matching.
func DayKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// DeadlineKey is the ISO timestamp a deadline is matched against.
func DeadlineKey(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// HasDeadline reports whether any deadline timestamp starts with key.
// The match is a string prefix, so a timestamp carrying a non-UTC offset
// lands on the day written in the string, not the local calendar day.
func HasDeadline(key string, deadlines []string) bool {
	for _, d := range deadlines {
		if strings.HasPrefix(d, key) {
			return true
		}
	}
	return false
}

// NewMonth lays out the grid for year/month, flagging today and days with deadlines.
func NewMonth(year int, month time.Month, deadlines []string, now time.Time) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	leading := int(first.Weekday())
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	m := Month{Year: first.Year(), Month: first.Month()}
	m.Cells = make([]Cell, 0, leading+daysInMonth)
	for i := 0; i < leading; i++ {
		m.Cells = append(m.Cells, Cell{Blank: true})
	}
	for day := 1; day <= daysInMonth; day++ {
		key := DayKey(m.Year, m.Month, day)
		m.Cells = append(m.Cells, Cell{
			Day:         day,
			Key:         key,
			IsToday:     now.Year() == m.Year && now.Month() == m.Month && now.Day() == day,
			HasDeadline: HasDeadline(key, deadlines),
		})
	}
	return m
}
