package cli

import (
	"fmt"
	"time"
	"todoTracker/internal/models/task"
	"todoTracker/internal/query"

	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func parseDue(raw string) (time.Time, error) {
	due, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("срок %q: ожидается формат ГГГГ-ММ-ДД", raw)
	}
	return due, nil
}

func newAddCmd(rt *runtime) *cobra.Command {
	var description, priority, category, due string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Добавить задачу",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options := []task.DraftOption{task.WithDescription(description)}
			if priority != "" {
				p, err := task.ParsePriority(priority)
				if err != nil {
					return err
				}
				options = append(options, task.WithPriority(p))
			}
			if category != "" {
				c, err := task.ParseCategory(category)
				if err != nil {
					return err
				}
				options = append(options, task.WithCategory(c))
			}
			if due != "" {
				d, err := parseDue(due)
				if err != nil {
					return err
				}
				options = append(options, task.WithDueDate(d))
			}

			created, err := rt.core.Store.Add(cmd.Context(), task.NewDraft(args[0], options...))
			if err != nil {
				return err
			}
			fmt.Fprintf(rt.out, "✅ Задача %s добавлена: %s\n", shortID(created), created.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "desc", "d", "", "описание")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "High, Medium или Low")
	cmd.Flags().StringVarP(&category, "category", "k", "", "Work, Personal или Other")
	cmd.Flags().StringVar(&due, "due", "", "срок в формате ГГГГ-ММ-ДД")
	return cmd
}

func newEditCmd(rt *runtime) *cobra.Command {
	var name, description, priority, category, due string
	var clearDue bool

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Изменить задачу",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := rt.resolveID(args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			var options []task.DraftOption
			if flags.Changed("name") {
				options = append(options, task.WithName(name))
			}
			if flags.Changed("desc") {
				options = append(options, task.WithDescription(description))
			}
			if flags.Changed("priority") {
				p, err := task.ParsePriority(priority)
				if err != nil {
					return err
				}
				options = append(options, task.WithPriority(p))
			}
			if flags.Changed("category") {
				c, err := task.ParseCategory(category)
				if err != nil {
					return err
				}
				options = append(options, task.WithCategory(c))
			}
			switch {
			case clearDue && flags.Changed("due"):
				return fmt.Errorf("--due и --clear-due нельзя передавать вместе")
			case clearDue:
				options = append(options, task.WithoutDueDate())
			case flags.Changed("due"):
				d, err := parseDue(due)
				if err != nil {
					return err
				}
				options = append(options, task.WithDueDate(d))
			}

			updated, err := rt.core.Store.Edit(cmd.Context(), id, options...)
			if err != nil {
				return err
			}
			fmt.Fprintf(rt.out, "✅ Задача %s обновлена: %s\n", shortID(updated), updated.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "новое название")
	cmd.Flags().StringVarP(&description, "desc", "d", "", "описание")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "High, Medium или Low")
	cmd.Flags().StringVarP(&category, "category", "k", "", "Work, Personal или Other")
	cmd.Flags().StringVar(&due, "due", "", "срок в формате ГГГГ-ММ-ДД")
	cmd.Flags().BoolVar(&clearDue, "clear-due", false, "убрать срок")
	return cmd
}

func newToggleCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle [id]",
		Short: "Отметить выполненной или вернуть в работу",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := rt.resolveID(args[0])
			if err != nil {
				return err
			}
			toggled, err := rt.core.Store.ToggleStatus(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(rt.out, "✅ %s: %s\n", toggled.Name, statusLabel(toggled.Status))
			return nil
		},
	}
}

func newRemoveCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "rm [id]",
		Aliases: []string{"remove"},
		Short:   "Удалить задачу",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := rt.resolveID(args[0])
			if err != nil {
				return err
			}
			if err := rt.core.Store.Remove(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(rt.out, "🗑️  Задача %s удалена\n", id.String()[:8])
			return nil
		},
	}
}

func newListCmd(rt *runtime) *cobra.Command {
	var search, priority, category string
	var all bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Показать задачи",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := rt.core.Store.Snapshot()
			if all {
				renderTasks(rt.out, "Все задачи", tasks)
				return nil
			}

			filter := query.Filter{Search: search}
			if priority != "" {
				p, err := task.ParsePriority(priority)
				if err != nil {
					return err
				}
				filter.Priority = &p
			}
			if category != "" {
				c, err := task.ParseCategory(category)
				if err != nil {
					return err
				}
				filter.Category = &c
			}

			view := query.Build(tasks, filter)
			renderTasks(rt.out, "В работе", view.Pending)
			renderTasks(rt.out, "Выполнено", view.Completed)
			fmt.Fprintf(rt.out, "Прогресс: %.0f%%\n", view.CompletionPercentage*100)
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "поиск по названию без учёта регистра")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "только этот приоритет")
	cmd.Flags().StringVarP(&category, "category", "k", "", "только эта категория")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "весь список в порядке добавления")
	return cmd
}

func newStatsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Статистика выполнения",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderStatistics(rt.out, query.Summarize(rt.core.Store.Snapshot()))
			return nil
		},
	}
}
