package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovenware/bakeboard/internal/cli/formatter"
	"github.com/ovenware/bakeboard/internal/domain"
	"github.com/ovenware/bakeboard/internal/timeline"
)

const (
	// unitsPerCell converts timeline position units to terminal cells:
	// 25 units per cell puts 4 cells in every hour.
	unitsPerCell = 25

	// ganttCells is the fixed width of the 24-hour track.
	ganttCells = timeline.EndOfDayUnits / unitsPerCell

	// ganttLabelWidth is the task name gutter left of the track.
	ganttLabelWidth = 16
)

// ganttRow is one selectable task bar on the board.
type ganttRow struct {
	stepName string
	task     domain.Task
}

// ganttLoadedMsg signals that the schedule for the selected date has loaded.
type ganttLoadedMsg struct {
	steps []*domain.ProcessStep
	err   error
}

// ganttView is the manager's screen: every process step for the selected
// date, each task drawn as a bar on a fixed 24-hour track. The cursor walks
// task bars top to bottom and the selected task's detail renders below the
// chart.
type ganttView struct {
	state   *SharedState
	steps   []*domain.ProcessStep
	rows    []ganttRow
	cursor  int
	loading bool
	err     error
}

func newGanttView(state *SharedState) *ganttView {
	return &ganttView{state: state, loading: true}
}

func (v *ganttView) ID() ViewID { return ViewGantt }

func (v *ganttView) Title() string {
	return "Production " + formatter.BoardDate(v.state.SelectedDate)
}

func (v *ganttView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "select task")),
		key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "change date")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *ganttView) Init() tea.Cmd {
	return v.loadSchedule()
}

func (v *ganttView) loadSchedule() tea.Cmd {
	app := v.state.App
	date := v.state.SelectedDate
	return func() tea.Msg {
		steps, err := app.Schedule.StepsForDate(context.Background(), date)
		return ganttLoadedMsg{steps: steps, err: err}
	}
}

func (v *ganttView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ganttLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.steps = msg.steps
		v.rows = flattenGanttRows(msg.steps)
		if v.cursor >= len(v.rows) {
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
			if v.cursor < len(v.rows)-1 {
				v.cursor++
			}
		case "[", "left":
			v.state.PageDate(-1)
			v.cursor = 0
			v.loading = true
			return v, v.loadSchedule()
		case "]", "right":
			v.state.PageDate(1)
			v.cursor = 0
			v.loading = true
			return v, v.loadSchedule()
		case "r":
			v.loading = true
			return v, v.loadSchedule()
		}
	}
	return v, nil
}

func (v *ganttView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading schedule...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if len(v.steps) == 0 {
		return "\n  " + formatter.Dim("No production scheduled for this date.")
	}

	var b strings.Builder
	b.WriteString("\n" + v.renderRuler() + "\n")

	rowIdx := 0
	for _, step := range v.steps {
		b.WriteString(formatter.StyleBold.Render(step.Name) + "\n")
		for _, task := range step.Tasks {
			b.WriteString(v.renderBar(task, rowIdx == v.cursor) + "\n")
			rowIdx++
		}
	}

	if v.cursor < len(v.rows) {
		b.WriteString(v.renderDetail(v.rows[v.cursor]))
	}
	return b.String()
}

// renderRuler draws the fixed hour scale: one marker per hour, four cells
// per hour, 96 cells for the whole day.
func (v *ganttView) renderRuler() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", ganttLabelWidth+1))
	for h := 0; h < 24; h++ {
		b.WriteString(fmt.Sprintf("%-4d", h))
	}
	return formatter.Dim(b.String())
}

// renderBar draws one task as a block on the 24-hour track. Midnight-spanning
// tasks collapse to an empty track rather than wrapping.
func (v *ganttView) renderBar(task domain.Task, selected bool) string {
	startCell := timeline.Position(task.Start) / unitsPerCell
	widthCells := timeline.BlockWidth(task.Start, task.End) / unitsPerCell
	if widthCells == 0 && timeline.BlockWidth(task.Start, task.End) > 0 {
		widthCells = 1 // short tasks still get a visible sliver
	}
	if startCell+widthCells > ganttCells {
		widthCells = ganttCells - startCell
	}

	blockStyle := formatter.StyleBlue
	cursor := "  "
	if selected {
		blockStyle = formatter.StyleGreen
		cursor = formatter.StyleGreen.Render("▸ ")
	}

	track := formatter.Dim(strings.Repeat("·", startCell)) +
		blockStyle.Render(strings.Repeat("█", widthCells)) +
		formatter.Dim(strings.Repeat("·", ganttCells-startCell-widthCells))

	label := formatter.PadRight(task.Name, ganttLabelWidth-2)
	if selected {
		label = formatter.StyleGreen.Render(label)
	}
	return cursor + label + " " + track
}

// renderDetail shows the selected task's full information under the chart.
func (v *ganttView) renderDetail(row ganttRow) string {
	t := row.task
	var b strings.Builder
	b.WriteString("\n" + formatter.Bold(t.Name) + "  " + formatter.Dim(row.stepName) + "\n")
	b.WriteString("  " + formatter.TimeRange(t.Start, t.End) +
		"  " + formatter.Dim("("+formatter.Duration(t.Start, t.End)+")") + "\n")
	if t.Details != "" {
		b.WriteString("  " + t.Details + "\n")
	}
	b.WriteString("  " + formatter.Dim("resources: ") + formatter.Resources(t.Resources) + "\n")
	return b.String()
}

// flattenGanttRows walks the steps in display order and yields one row per
// task, matching the order the bars render in.
func flattenGanttRows(steps []*domain.ProcessStep) []ganttRow {
	var rows []ganttRow
	for _, step := range steps {
		for _, task := range step.Tasks {
			rows = append(rows, ganttRow{stepName: step.Name, task: task})
		}
	}
	return rows
}
