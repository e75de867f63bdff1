package cli

import (
	"fmt"
	"todoTracker/internal/models/task"

	"github.com/spf13/cobra"
)

func newThemeCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [Light|Dark|Blue]",
		Short: "Показать или сменить тему",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(rt.out, rt.core.Store.Theme(cmd.Context()))
				return nil
			}

			theme, ok := task.ParseTheme(args[0])
			if !ok {
				return fmt.Errorf("неизвестная тема %q", args[0])
			}
			if err := rt.core.Store.SetTheme(cmd.Context(), theme); err != nil {
				return err
			}
			fmt.Fprintf(rt.out, "✅ Тема: %s\n", theme)
			return nil
		},
	}
}

func newOnboardingCmd(rt *runtime) *cobra.Command {
	var seen bool

	cmd := &cobra.Command{
		Use:   "onboarding",
		Short: "Флаг просмотра приветствия",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seen {
				rt.core.Store.MarkOnboardingSeen(cmd.Context())
			}
			fmt.Fprintf(rt.out, "onboarding seen: %t\n", rt.core.Store.OnboardingSeen(cmd.Context()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&seen, "seen", false, "отметить приветствие просмотренным")
	return cmd
}

func newWidgetCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "widget",
		Short: "Лента виджета из общего раздела",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			timeline := rt.core.Widget.Timeline(cmd.Context())
			for _, entry := range timeline.Entries {
				fmt.Fprintf(rt.out, "%s  задач: %d\n", entry.Date.Format("02 Jan 15:04"), entry.TaskCount)
			}
			fmt.Fprintf(rt.out, "policy: %s\n", timeline.Policy)
			return nil
		},
	}
}
