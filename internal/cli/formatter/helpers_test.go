package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/ovenware/bakeboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, time.Local)
}

func TestClockAndTimeRange(t *testing.T) {
	assert.Equal(t, "5:30 AM", Clock(at(5, 30)))
	assert.Equal(t, "1:05 PM", Clock(at(13, 5)))
	assert.Equal(t, "8:00 AM – 8:30 AM", TimeRange(at(8, 0), at(8, 30)))
}

func TestDuration(t *testing.T) {
	assert.Equal(t, "45m", Duration(at(5, 30), at(6, 15)))
	assert.Equal(t, "2h", Duration(at(6, 0), at(8, 0)))
	assert.Equal(t, "1h 30m", Duration(at(8, 0), at(9, 30)))
	assert.Equal(t, "0m", Duration(at(8, 0), at(8, 0)))
	// Inverted spans collapse rather than going negative.
	assert.Equal(t, "0m", Duration(at(9, 0), at(8, 0)))
}

func TestBoardDate(t *testing.T) {
	assert.Equal(t, "Mon, Mar 10 2025", BoardDate(domain.DateKey("2025-03-10")))
	assert.Equal(t, "not-a-date", BoardDate(domain.DateKey("not-a-date")))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "abc  ", PadRight("abc", 5))
	assert.Equal(t, "abcd…", PadRight("abcdef", 5))
	assert.Equal(t, "abcde", PadRight("abcde", 5))
}

func TestPadRight_MultibyteNames(t *testing.T) {
	// Accented names must pad by rune count and never split mid-character.
	assert.Equal(t, []rune("Crème Brûlée   "), []rune(PadRight("Crème Brûlée", 15)))
	assert.Equal(t, "Crème Brû…", PadRight("Crème Brûlée", 10))
	assert.Equal(t, 10, len([]rune(PadRight("Crème Brûlée", 10))))
}

func TestDependencyCallout_UrgencyAffectsEmphasisOnly(t *testing.T) {
	calm := DependencyCallout(domain.Dependency{FromBaker: "baker2", Message: "cookies cooled"})
	urgent := DependencyCallout(domain.Dependency{FromBaker: "baker2", Message: "cookies cooled", Urgent: true})

	assert.Contains(t, calm, "cookies cooled")
	assert.Contains(t, calm, "baker2")
	assert.Contains(t, urgent, "URGENT")
	assert.Contains(t, urgent, "cookies cooled")
}

func TestFormatSchedule_EmptyDate(t *testing.T) {
	out := FormatSchedule(domain.DateKey("2025-03-10"), nil)
	assert.Contains(t, out, "No production scheduled")
}

func TestFormatBakerTasks_CalloutsInInputOrder(t *testing.T) {
	task := &domain.BakerTask{
		Name:  "Pack Wholesale",
		Start: at(11, 0),
		End:   at(12, 0),
		Dependencies: []domain.Dependency{
			{FromBaker: "baker2", Message: "first note"},
			{FromBaker: "baker2", Message: "second note"},
		},
	}
	out := FormatBakerTasks("baker1", domain.DateKey("2025-03-10"), []*domain.BakerTask{task})

	first := strings.Index(out, "first note")
	second := strings.Index(out, "second note")
	assert.GreaterOrEqual(t, first, 0)
	assert.Less(t, first, second, "callouts must render in input order")
}
