package domain

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// statusRank orders the lifecycle. Status only moves forward.
var statusRank = map[TaskStatus]int{
	TaskPending:    0,
	TaskInProgress: 1,
	TaskDone:       2,
}

// CanAdvanceTo reports whether moving from s to next is a forward step.
// Regressions and unknown statuses are rejected.
func (s TaskStatus) CanAdvanceTo(next TaskStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// Next returns the following lifecycle status, or s itself when already done.
func (s TaskStatus) Next() TaskStatus {
	switch s {
	case TaskPending:
		return TaskInProgress
	case TaskInProgress:
		return TaskDone
	}
	return s
}

// ValidTaskStatuses is the canonical set of accepted status strings.
var ValidTaskStatuses = map[string]bool{
	"pending": true, "in_progress": true, "done": true,
}

// RoleKind discriminates the dashboard's active screen.
type RoleKind string

const (
	RoleOrderIntake RoleKind = "order_intake"
	RoleManager     RoleKind = "manager"
	RoleBaker       RoleKind = "baker"
)

// Role is the shell's view-mode value: which screen is active, and for
// the baker screen, which baker. BakerID is empty unless Kind == RoleBaker.
type Role struct {
	Kind    RoleKind
	BakerID string
}

func ManagerRole() Role            { return Role{Kind: RoleManager} }
func OrderIntakeRole() Role        { return Role{Kind: RoleOrderIntake} }
func BakerRole(bakerID string) Role { return Role{Kind: RoleBaker, BakerID: bakerID} }
