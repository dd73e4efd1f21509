package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovenware/bakeboard/internal/cli/formatter"
	"github.com/ovenware/bakeboard/internal/domain"
)

// bakerTasksLoadedMsg signals that a baker's task list has loaded.
type bakerTasksLoadedMsg struct {
	tasks []*domain.BakerTask
	err   error
}

// bakerView is one baker's screen: their tasks for the selected date in
// list order, with status markers and cross-baker coordination callouts.
// Space advances the selected task one lifecycle step.
type bakerView struct {
	state   *SharedState
	bakerID string
	tasks   []*domain.BakerTask
	cursor  int
	loading bool
	err     error
}

func newBakerView(state *SharedState, bakerID string) *bakerView {
	return &bakerView{state: state, bakerID: bakerID, loading: true}
}

func (v *bakerView) ID() ViewID { return ViewBaker }

func (v *bakerView) Title() string {
	return v.bakerID + " " + formatter.BoardDate(v.state.SelectedDate)
}

func (v *bakerView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "select task")),
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "advance status")),
		key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "change date")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *bakerView) Init() tea.Cmd {
	return v.loadTasks()
}

func (v *bakerView) loadTasks() tea.Cmd {
	app := v.state.App
	bakerID := v.bakerID
	date := v.state.SelectedDate
	return func() tea.Msg {
		tasks, err := app.BakerTasks.TasksFor(context.Background(), bakerID, date)
		return bakerTasksLoadedMsg{tasks: tasks, err: err}
	}
}

// advanceTask moves the selected task one status step forward and reloads.
// A task that is already done stays done; the service rejects the step and
// the list simply re-renders unchanged.
func (v *bakerView) advanceTask(id string) tea.Cmd {
	app := v.state.App
	bakerID := v.bakerID
	date := v.state.SelectedDate
	return func() tea.Msg {
		ctx := context.Background()
		_, _ = app.BakerTasks.Advance(ctx, id)
		tasks, err := app.BakerTasks.TasksFor(ctx, bakerID, date)
		return bakerTasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (v *bakerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bakerTasksLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.tasks = msg.tasks
		if v.cursor >= len(v.tasks) {
			v.cursor = 0
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.tasks)-1 {
				v.cursor++
			}
		case " ":
			if v.cursor < len(v.tasks) {
				return v, v.advanceTask(v.tasks[v.cursor].ID)
			}
		case "[", "left":
			v.state.PageDate(-1)
			v.cursor = 0
			v.loading = true
			return v, v.loadTasks()
		case "]", "right":
			v.state.PageDate(1)
			v.cursor = 0
			v.loading = true
			return v, v.loadTasks()
		case "r":
			v.loading = true
			return v, v.loadTasks()
		}
	}
	return v, nil
}

func (v *bakerView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading tasks...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if len(v.tasks) == 0 {
		return "\n  " + formatter.Dim("No tasks for this date.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, task := range v.tasks {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString(cursor + formatter.StatusIcon(task.Status) + " " +
			formatter.Dim(formatter.TimeRange(task.Start, task.End)) + "  " +
			task.Name + "\n")
		// Every coordination note renders with its task, in stored order,
		// so the whole day's handoffs are visible without selecting rows.
		for _, dep := range task.Dependencies {
			b.WriteString("      " + formatter.DependencyCallout(dep) + "\n")
		}
	}

	if v.cursor < len(v.tasks) {
		b.WriteString(v.renderDetail(v.tasks[v.cursor]))
	}
	return b.String()
}

// renderDetail shows the selected task's status, timing, details, and
// equipment. Coordination callouts live in the list itself, one per task row.
func (v *bakerView) renderDetail(task *domain.BakerTask) string {
	var b strings.Builder
	b.WriteString("\n" + formatter.Bold(task.Name) + "  " + formatter.StatusPill(task.Status) + "\n")
	b.WriteString("  " + formatter.TimeRange(task.Start, task.End) +
		"  " + formatter.Dim("("+formatter.Duration(task.Start, task.End)+")") + "\n")
	if task.Details != "" {
		b.WriteString("  " + task.Details + "\n")
	}
	if task.Equipment != "" {
		b.WriteString("  " + formatter.Dim("equipment: ") + task.Equipment + "\n")
	}
	return b.String()
}
