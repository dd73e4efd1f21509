// Package timeline maps wall-clock times onto a fixed 24-hour horizontal
// axis. The axis runs from 00:00 to 24:00 at 100 position units per hour,
// so the full day spans [0, 2400].
package timeline

import "time"

const (
	// UnitsPerHour is the fixed horizontal scale.
	UnitsPerHour = 100

	// EndOfDayUnits is the position of the upper rendering edge (24:00).
	EndOfDayUnits = 24 * UnitsPerHour
)

// Position converts a timestamp's time-of-day to a position unit offset.
// Only the clock component of t matters; the date is ignored. The function
// is pure and total: 00:00 maps to 0, 23:59 to 2398 (truncated to whole
// units), and every input lands in [0, EndOfDayUnits).
//
// Tasks that span midnight are outside the model: their end lands "before"
// their start on this axis and the resulting block width collapses. That is
// a known limitation of the single-day coordinate space, not an error.
func Position(t time.Time) int {
	return t.Hour()*UnitsPerHour + t.Minute()*UnitsPerHour/60
}

// BlockWidth is the rendered width of a [start, end) task block:
// Position(end) - Position(start), clamped to zero so inverted or
// midnight-spanning input never yields a negative-width block.
func BlockWidth(start, end time.Time) int {
	w := Position(end) - Position(start)
	if w < 0 {
		return 0
	}
	return w
}
