package formatter

import (
	"fmt"
	"strings"

	"github.com/ovenware/bakeboard/internal/domain"
)

// FormatSchedule renders a date's process steps as a plain listing for the
// non-interactive `schedule` command.
func FormatSchedule(date domain.DateKey, steps []*domain.ProcessStep) string {
	var b strings.Builder
	b.WriteString(Header("Production "+BoardDate(date)) + "\n")

	if len(steps) == 0 {
		b.WriteString("\n" + Dim("No production scheduled for this date.") + "\n")
		return b.String()
	}

	for _, step := range steps {
		b.WriteString("\n" + StyleBold.Render(step.Name) + "\n")
		if len(step.Tasks) == 0 {
			b.WriteString("  " + Dim("no tasks") + "\n")
			continue
		}
		for _, task := range step.Tasks {
			b.WriteString(fmt.Sprintf("  %s  %s %s\n",
				Dim(TimeRange(task.Start, task.End)),
				task.Name,
				Dim("["+Resources(task.Resources)+"]"),
			))
			if task.Details != "" {
				b.WriteString("  " + Dim("           "+task.Details) + "\n")
			}
		}
	}
	return b.String()
}

// FormatBakerTasks renders one baker's day as a plain listing for the
// non-interactive `tasks` command.
func FormatBakerTasks(bakerID string, date domain.DateKey, tasks []*domain.BakerTask) string {
	var b strings.Builder
	b.WriteString(Header(bakerID+" — "+BoardDate(date)) + "\n")

	if len(tasks) == 0 {
		b.WriteString("\n" + Dim("No tasks for this baker and date.") + "\n")
		return b.String()
	}

	for _, task := range tasks {
		b.WriteString(fmt.Sprintf("\n%s %s  %s\n",
			StatusIcon(task.Status),
			Dim(TimeRange(task.Start, task.End)),
			Bold(task.Name),
		))
		if task.Details != "" {
			b.WriteString("  " + task.Details + "\n")
		}
		if task.Equipment != "" {
			b.WriteString("  " + Dim("equipment: "+task.Equipment) + "\n")
		}
		for _, dep := range task.Dependencies {
			b.WriteString("  " + DependencyCallout(dep) + "\n")
		}
	}
	return b.String()
}

// FormatOrders renders the recorded orders as a plain listing for the
// non-interactive `orders` command.
func FormatOrders(orders []*domain.Order) string {
	var b strings.Builder
	b.WriteString(Header("Orders") + "\n")

	if len(orders) == 0 {
		b.WriteString("\n" + Dim("No orders recorded.") + "\n")
		return b.String()
	}

	for _, o := range orders {
		due := Dim("no due date")
		if o.DueDate != nil {
			due = Dim("due " + o.DueDate.Format("2006-01-02"))
		}
		b.WriteString(fmt.Sprintf("\n%s ×%d  %s  %s\n", Bold(o.Product), o.Quantity, o.Customer, due))
		if o.Notes != "" {
			b.WriteString("  " + Dim(o.Notes) + "\n")
		}
	}
	return b.String()
}
