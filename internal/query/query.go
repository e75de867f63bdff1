// Package query строит представления списка задач: фильтры, сортировку,
// разделение на активные и выполненные и статистику. Все функции чистые.
package query

import (
	"slices"
	"strings"
	"todoTracker/internal/models/task"

	"golang.org/x/text/cases"
)

type Filter struct {
	Search   string
	Priority *task.Priority
	Category *task.Category
}

type View struct {
	Pending              []task.Task `json:"pending"`
	Completed            []task.Task `json:"completed"`
	CompletionPercentage float64     `json:"completionPercentage"`
}

type Statistics struct {
	Total          int                   `json:"total"`
	Completed      int                   `json:"completed"`
	CompletionRate float64               `json:"completionRate"`
	ByCategory     map[task.Category]int `json:"byCategory"`
}

func (f Filter) matches(t task.Task, fold cases.Caser, needle string) bool {
	if needle != "" && !strings.Contains(fold.String(t.Name), needle) {
		return false
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	if f.Category != nil && t.Category != *f.Category {
		return false
	}
	return true
}

// Apply фильтрует и сортирует по метке приоритета как по строке,
// поэтому порядок High, Low, Medium, а не по срочности
func Apply(tasks []task.Task, f Filter) []task.Task {
	fold := cases.Fold()
	needle := fold.String(f.Search)

	res := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.matches(t, fold, needle) {
			res = append(res, t.Clone())
		}
	}

	slices.SortStableFunc(res, func(a, b task.Task) int {
		return strings.Compare(string(a.Priority), string(b.Priority))
	})
	return res
}

func Build(tasks []task.Task, f Filter) View {
	filtered := Apply(tasks, f)

	view := View{
		Pending:   []task.Task{},
		Completed: []task.Task{},
	}
	for _, t := range filtered {
		if t.IsCompleted() {
			view.Completed = append(view.Completed, t)
		} else {
			view.Pending = append(view.Pending, t)
		}
	}
	view.CompletionPercentage = ratio(len(view.Completed), len(tasks))
	return view
}

// CategoryCounts считается по полному списку, фильтры на него не влияют
func CategoryCounts(tasks []task.Task) map[task.Category]int {
	counts := make(map[task.Category]int, len(task.Categories))
	for _, c := range task.Categories {
		counts[c] = 0
	}
	for _, t := range tasks {
		counts[t.Category]++
	}
	return counts
}

func Summarize(tasks []task.Task) Statistics {
	completed := 0
	for _, t := range tasks {
		if t.IsCompleted() {
			completed++
		}
	}
	return Statistics{
		Total:          len(tasks),
		Completed:      completed,
		CompletionRate: ratio(completed, len(tasks)),
		ByCategory:     CategoryCounts(tasks),
	}
}

func ratio(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}
