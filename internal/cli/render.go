package cli

import (
	"fmt"
	"io"
	"time"
	"todoTracker/internal/models/task"
	"todoTracker/internal/query"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func shortID(t task.Task) string {
	return t.ID.String()[:8]
}

func statusLabel(s task.Status) string {
	if s == task.StatusCompleted {
		return "выполнена"
	}
	return "в работе"
}

func priorityColor(p task.Priority) text.Color {
	switch p {
	case task.PriorityHigh:
		return text.FgRed
	case task.PriorityLow:
		return text.FgGreen
	}
	return text.FgYellow
}

func renderTasks(out io.Writer, title string, tasks []task.Task) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	t.SetTitle(fmt.Sprintf("%s (%d)", title, len(tasks)))

	t.AppendHeader(table.Row{
		text.FgGreen.Sprint("ID"),
		text.FgGreen.Sprint("Название"),
		text.FgGreen.Sprint("Приоритет"),
		text.FgGreen.Sprint("Категория"),
		text.FgGreen.Sprint("Срок"),
		text.FgGreen.Sprint("Статус"),
	})

	now := time.Now()
	for _, item := range tasks {
		due := "-"
		if item.DueDate != nil {
			due = item.DueDate.Format("02 Jan 2006")
			if !item.IsCompleted() && item.DueDate.Before(now) {
				due = text.FgRed.Sprint(due)
			}
		}
		t.AppendRow(table.Row{
			shortID(item),
			item.Name,
			priorityColor(item.Priority).Sprint(string(item.Priority)),
			string(item.Category),
			due,
			statusLabel(item.Status),
		})
	}
	t.Render()
}

func renderStatistics(out io.Writer, stats query.Statistics) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	t.SetTitle("Статистика")

	t.AppendRow(table.Row{"Всего", stats.Total})
	t.AppendRow(table.Row{"Выполнено", stats.Completed})
	t.AppendRow(table.Row{"Процент", fmt.Sprintf("%.0f%%", stats.CompletionRate*100)})
	t.AppendSeparator()
	for _, c := range task.Categories {
		t.AppendRow(table.Row{string(c), stats.ByCategory[c]})
	}
	t.Render()
}
