package cli

import (
	"github.com/ovenware/bakeboard/internal/domain"
)

// Messages handled by the appModel in its Update method.

// boardInitMsg carries the startup board context: the known schedule dates,
// the known bakers, and the date the board should open on.
type boardInitMsg struct {
	date   domain.DateKey
	dates  []domain.DateKey
	bakers []string
	err    error
}

// formDoneMsg is sent when the order form completes or is cancelled.
// The appModel handles it atomically: return to the manager view, reload
// the board, and show the note transiently.
type formDoneMsg struct {
	note string
}
