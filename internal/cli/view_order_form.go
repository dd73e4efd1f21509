package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ovenware/bakeboard/internal/cli/formatter"
	"github.com/ovenware/bakeboard/internal/domain"
)

// orderFields holds form-bound values for the order intake form.
type orderFields struct {
	customer string
	product  string
	quantity string
	dueDate  string
	notes    string
}

// orderFormView wraps a huh.Form as the order intake screen. While active
// it owns the keyboard; escape cancels back to the manager board without
// writing anything.
type orderFormView struct {
	state  *SharedState
	form   *huh.Form
	fields *orderFields

	// submitted latches after the first completion so stray messages
	// arriving before the view is swapped out can't write the order twice.
	submitted bool
}

func newOrderFormView(state *SharedState) *orderFormView {
	f := &orderFields{}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Customer").
				Placeholder("Cafe Luna").
				Value(&f.customer).
				Validate(validateRequired("customer")),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Product").
				Placeholder("Sourdough loaf").
				Value(&f.product).
				Validate(validateRequired("product")),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Quantity").
				Placeholder("12").
				Value(&f.quantity).
				Validate(validateQuantity),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Due Date (YYYY-MM-DD, optional)").
				Placeholder("2025-03-14").
				Value(&f.dueDate).
				Validate(validateOptionalDate),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Notes (optional)").
				Value(&f.notes),
		),
	).WithTheme(bakeboardHuhTheme()).WithShowHelp(false)

	return &orderFormView{state: state, form: form, fields: f}
}

func (v *orderFormView) ID() ViewID    { return ViewOrderForm }
func (v *orderFormView) Title() string { return "New Order" }

func (v *orderFormView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *orderFormView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *orderFormView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape cancels the form.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return formDoneMsg{note: formatter.Dim("Order cancelled.")}
		}
	}

	if v.submitted {
		return v, nil
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		v.submitted = true
		return v, v.submit()
	}

	return v, cmd
}

// submit persists the collected order and reports the outcome. Validation
// already ran field by field, so conversion failures here only happen for
// values the form never accepted.
func (v *orderFormView) submit() tea.Cmd {
	app := v.state.App
	f := v.fields
	return func() tea.Msg {
		qty, _ := strconv.Atoi(f.quantity)

		o := &domain.Order{
			Customer: f.customer,
			Product:  f.product,
			Quantity: qty,
			Notes:    f.notes,
		}
		if f.dueDate != "" {
			if t, err := time.Parse("2006-01-02", f.dueDate); err == nil {
				o.DueDate = &t
			}
		}

		if err := app.Orders.Submit(context.Background(), o); err != nil {
			return formDoneMsg{note: formatter.StyleRed.Render("Error: " + err.Error())}
		}

		return formDoneMsg{
			note: fmt.Sprintf("%s Order recorded: %s ×%d for %s",
				formatter.StyleGreen.Render("✔"),
				formatter.Bold(f.product), qty, f.customer),
		}
	}
}

func (v *orderFormView) View() string {
	return v.form.View()
}
