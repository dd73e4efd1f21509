package cli

import "github.com/ovenware/bakeboard/internal/domain"

// SharedState holds context shared across all views via pointer.
//
// SelectedDate and SelectedBaker survive role switches on purpose: flipping
// to the order form and back must land the manager on the same date, and a
// baker's screen must come back to the same baker.
type SharedState struct {
	App *App

	// Board context
	SelectedDate  domain.DateKey
	SelectedBaker string

	// Known dates and bakers, sorted, loaded once at startup.
	Dates  []domain.DateKey
	Bakers []string

	// Terminal dimensions
	Width  int
	Height int
}

// PageDate moves SelectedDate forward or backward among the known dates.
// At either end of the list the selection stays put. When the current date
// is not in the list (or the list is empty) the date shifts by whole days
// instead, so paging still works on an unpopulated board.
func (s *SharedState) PageDate(delta int) {
	idx := -1
	for i, d := range s.Dates {
		if d == s.SelectedDate {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.SelectedDate = s.SelectedDate.AddDays(delta)
		return
	}
	next := idx + delta
	if next < 0 || next >= len(s.Dates) {
		return
	}
	s.SelectedDate = s.Dates[next]
}

// BakerByNumber returns the baker ID for a 1-based key number, or "" when
// no baker holds that slot.
func (s *SharedState) BakerByNumber(n int) string {
	if n < 1 || n > len(s.Bakers) {
		return ""
	}
	return s.Bakers[n-1]
}

// BakerNumber returns the 1-based slot of a baker ID, or 0 when unknown.
func (s *SharedState) BakerNumber(bakerID string) int {
	for i, b := range s.Bakers {
		if b == bakerID {
			return i + 1
		}
	}
	return 0
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
