// Package cli - консольный клиент хранилища задач.
// Работает напрямую с разделами из конфигурации, без HTTP-сервера.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"todoTracker/internal/app"
	"todoTracker/internal/config"
	"todoTracker/internal/logger"
	"todoTracker/internal/models/task"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type runtime struct {
	configPath string
	verbose    bool
	core       *app.Core
	out        io.Writer
}

// Execute разбирает args и выполняет команду. Хранилища закрываются и при ошибке.
func Execute(ctx context.Context, out io.Writer, args []string) error {
	rt := &runtime{out: out}
	defer rt.close()

	root := newRootCmd(rt)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRootCmd(rt *runtime) *cobra.Command {
	out := rt.out
	root := &cobra.Command{
		Use:           "todo",
		Short:         "Список задач с приоритетами, категориями и напоминаниями",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.open(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(out)

	defaultPath := os.Getenv("TODO_CONFIG")
	if defaultPath == "" {
		defaultPath = "config.yml"
	}
	root.PersistentFlags().StringVarP(&rt.configPath, "config", "c", defaultPath, "путь к config.yml")
	root.PersistentFlags().BoolVarP(&rt.verbose, "verbose", "v", false, "подробный лог в stderr")

	root.AddCommand(
		newAddCmd(rt),
		newEditCmd(rt),
		newToggleCmd(rt),
		newRemoveCmd(rt),
		newListCmd(rt),
		newStatsCmd(rt),
		newThemeCmd(rt),
		newOnboardingCmd(rt),
		newWidgetCmd(rt),
	)
	return root
}

func (rt *runtime) open(cmd *cobra.Command) error {
	if rt.verbose {
		if err := logger.Init(true); err != nil {
			return fmt.Errorf("инициализация логгера: %w", err)
		}
	}

	cfg, err := config.LoadOrDefault(rt.configPath)
	if err != nil {
		return err
	}

	core, err := app.NewCore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	rt.core = core
	return nil
}

func (rt *runtime) close() {
	if rt.core != nil {
		rt.core.Close()
		rt.core = nil
	}
	logger.Sync()
}

// resolveID принимает полный id или его однозначный префикс
func (rt *runtime) resolveID(raw string) (uuid.UUID, error) {
	if id, err := uuid.Parse(raw); err == nil {
		return id, nil
	}

	prefix := strings.ToLower(strings.TrimSpace(raw))
	if prefix == "" {
		return uuid.Nil, fmt.Errorf("пустой id")
	}

	var found []task.Task
	for _, t := range rt.core.Store.Snapshot() {
		if strings.HasPrefix(t.ID.String(), prefix) {
			found = append(found, t)
		}
	}
	switch len(found) {
	case 0:
		return uuid.Nil, fmt.Errorf("задача %q не найдена", raw)
	case 1:
		return found[0].ID, nil
	}
	return uuid.Nil, fmt.Errorf("префикс %q подходит к %d задачам", raw, len(found))
}
