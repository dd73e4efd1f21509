package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/ovenware/bakeboard/internal/domain"
)

// Clock formats a timestamp's time-of-day as "5:30 AM".
func Clock(t time.Time) string {
	return t.Format("3:04 PM")
}

// TimeRange formats a task's start and end as "5:30 AM – 6:15 AM".
func TimeRange(start, end time.Time) string {
	return Clock(start) + " – " + Clock(end)
}

// Resources joins a resource list for display, dimmed when empty.
func Resources(rs []string) string {
	if len(rs) == 0 {
		return Dim("—")
	}
	return strings.Join(rs, ", ")
}

// BoardDate formats a date key as "Mon, Mar 10 2025".
func BoardDate(d domain.DateKey) string {
	t := d.Time()
	if t.IsZero() {
		return string(d)
	}
	return t.Format("Mon, Jan 2 2006")
}

// Duration formats the span of a task as "45m" or "1h 30m".
func Duration(start, end time.Time) string {
	min := int(end.Sub(start).Minutes())
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// PadRight pads or truncates s to exactly width cells. Truncation counts
// runes, not bytes, so multibyte names never split mid-character.
func PadRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		if width <= 1 {
			return string(runes[:width])
		}
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}
