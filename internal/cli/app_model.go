package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovenware/bakeboard/internal/cli/formatter"
	"github.com/ovenware/bakeboard/internal/domain"
)

// appModel is the root bubbletea Model for the dashboard.
//
// Exactly one view is active at a time. Switching roles replaces the view
// outright; there is no stack and no layering. Board context that must
// survive the swap (selected date, selected baker) lives in SharedState,
// never in the views.
type appModel struct {
	state    *SharedState
	role     domain.Role
	active   View
	quitting bool

	// Transient note shown in the status bar (order submitted, cancelled).
	// Cleared on the next role switch.
	note string
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	return appModel{
		state:  state,
		role:   domain.ManagerRole(),
		active: newGanttView(state),
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	return m.loadBoardContext()
}

// loadBoardContext fetches the known dates and bakers once at startup and
// picks the opening date: the earliest scheduled date, or today when the
// board is empty.
func (m appModel) loadBoardContext() tea.Cmd {
	app := m.state.App
	return func() tea.Msg {
		ctx := context.Background()

		dates, err := app.Schedule.ListDates(ctx)
		if err != nil {
			return boardInitMsg{err: err}
		}
		bakers, err := app.BakerTasks.ListBakers(ctx)
		if err != nil {
			return boardInitMsg{err: err}
		}

		date, ok, err := app.Schedule.EarliestDate(ctx)
		if err != nil {
			return boardInitMsg{err: err}
		}
		if !ok {
			date = domain.Today()
		}
		return boardInitMsg{date: date, dates: dates, bakers: bakers}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		updated, cmd := m.active.Update(msg)
		m.active = updated.(View)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case boardInitMsg:
		if msg.err != nil {
			m.note = formatter.StyleRed.Render("Error: " + msg.err.Error())
			return m, nil
		}
		m.state.Dates = msg.dates
		m.state.Bakers = msg.bakers
		if m.state.SelectedDate == "" {
			m.state.SelectedDate = msg.date
		}
		return m, m.active.Init()

	case formDoneMsg:
		// Leaving the form always lands back on the manager board.
		m.role = domain.ManagerRole()
		m.active = newGanttView(m.state)
		m.note = msg.note
		return m, m.active.Init()
	}

	// Forward everything else to the active view.
	updated, cmd := m.active.Update(msg)
	m.active = updated.(View)
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// The order form owns the keyboard: every character belongs to its
	// inputs, including the role-switch letters. Only ctrl+c above escapes.
	if m.active.ID() == ViewOrderForm {
		updated, cmd := m.active.Update(msg)
		m.active = updated.(View)
		return m, cmd
	}

	switch k := msg.String(); {
	case k == "q":
		m.quitting = true
		return m, tea.Quit

	case k == "m":
		return m.switchTo(domain.ManagerRole())

	case k == "o":
		return m.switchTo(domain.OrderIntakeRole())

	case len(k) == 1 && k[0] >= '1' && k[0] <= '9':
		bakerID := m.state.BakerByNumber(int(k[0] - '0'))
		if bakerID == "" {
			return m, nil
		}
		return m.switchTo(domain.BakerRole(bakerID))
	}

	updated, cmd := m.active.Update(msg)
	m.active = updated.(View)
	return m, cmd
}

// switchTo replaces the active view with the one for the given role.
// Selecting the role that is already active changes nothing, not even the
// view's cursor or scroll state.
func (m appModel) switchTo(role domain.Role) (tea.Model, tea.Cmd) {
	if role == m.role {
		return m, nil
	}
	m.role = role
	m.note = ""

	switch role.Kind {
	case domain.RoleOrderIntake:
		m.active = newOrderFormView(m.state)
	case domain.RoleBaker:
		m.state.SelectedBaker = role.BakerID
		m.active = newBakerView(m.state, role.BakerID)
	default:
		m.active = newGanttView(m.state)
	}
	return m, m.active.Init()
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	body := m.active.View()
	if m.state.Height > 0 {
		if lines := strings.Split(body, "\n"); len(lines) > m.state.ContentHeight() {
			body = strings.Join(lines[:m.state.ContentHeight()], "\n")
		}
	}

	sections := []string{
		m.renderHeader(),
		body,
		m.renderStatusBar(),
	}

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m appModel) roleLabel() string {
	switch m.role.Kind {
	case domain.RoleOrderIntake:
		return "New Order"
	case domain.RoleBaker:
		if n := m.state.BakerNumber(m.role.BakerID); n > 0 {
			return fmt.Sprintf("Baker %d", n)
		}
		return m.role.BakerID
	default:
		return "Manager"
	}
}

func (m appModel) renderHeader() string {
	title := formatter.StylePurple.Render("bakeboard")
	role := formatter.StyleGreen.Render(m.roleLabel())

	header := title + "  " + formatter.Dim("[") + role + formatter.Dim("]")
	if t := m.active.Title(); t != "" {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(t)
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m appModel) renderStatusBar() string {
	var hints []string

	if m.note != "" {
		hints = append(hints, m.note)
	} else {
		for _, b := range m.active.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
		if m.active.ID() != ViewOrderForm {
			hints = append(hints, formatter.Dim("o: order"), formatter.Dim("m: manager"))
			if len(m.state.Bakers) > 0 {
				hints = append(hints, formatter.Dim(fmt.Sprintf("1-%d: baker", len(m.state.Bakers))))
			}
			hints = append(hints, formatter.Dim("q: quit"))
		}
	}

	bar := strings.Join(hints, "  ")
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}
