package domain

import "time"

// Task is a single scheduled unit of work on the production board.
// Start and End carry both date and time-of-day; the producer guarantees
// Start < End and that both fall on the same calendar date. The board does
// not validate geometry; rendering clamps whatever results.
type Task struct {
	ID        string
	StepID    string
	Name      string
	Start     time.Time
	End       time.Time
	Details   string
	Resources []string

	CreatedAt time.Time
}

// ProcessStep is a named production phase (Mixing, Baking, ...) owning an
// ordered run of tasks for one date. Steps are never shared across dates.
type ProcessStep struct {
	ID    string
	Date  DateKey
	Name  string
	Order int
	Tasks []Task
}

// Dependency is a cross-baker coordination note attached to a baker task.
// It is informational only: it neither orders nor blocks anything.
type Dependency struct {
	FromBaker string
	Message   string
	Urgent    bool
}

// BakerTask is a task as seen from one baker's personal list, with a
// lifecycle status and optional coordination dependencies in display order.
type BakerTask struct {
	ID           string
	BakerID      string
	Date         DateKey
	Name         string
	Start        time.Time
	End          time.Time
	Details      string
	Equipment    string
	Status       TaskStatus
	Dependencies []Dependency
	Order        int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Order is a submitted customer order record. The board only collects and
// stores it; turning orders into scheduled tasks happens elsewhere.
type Order struct {
	ID       string
	Customer string
	Product  string
	Quantity int
	DueDate  *time.Time
	Notes    string

	CreatedAt time.Time
}
