package cli_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"todoTracker/internal/cli"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := fmt.Sprintf(`storage:
  local:
    driver: sqlite
    path: %s
  shared:
    driver: sqlite
    path: %s
`, filepath.Join(dir, "local.db"), filepath.Join(dir, "shared.db"))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, cfg string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := cli.Execute(context.Background(), &out, append([]string{"--config", cfg}, args...))
	return out.String(), err
}

var shortIDPattern = regexp.MustCompile(`Задача ([0-9a-f]{8}) добавлена`)

// TestCLI_TaskLifecycle тестирует добавление, переключение, правку и удаление через команды
func TestCLI_TaskLifecycle(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, cfg, "add", "Купить молоко", "--priority", "high", "--category", "Personal", "--due", "2099-01-15")
	require.NoError(t, err)
	match := shortIDPattern.FindStringSubmatch(out)
	require.Len(t, match, 2)
	id := match[1]

	_, err = run(t, cfg, "add", "Отчёт", "-k", "Work")
	require.NoError(t, err)

	out, err = run(t, cfg, "toggle", id)
	require.NoError(t, err)
	assert.Contains(t, out, "выполнена")

	out, err = run(t, cfg, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Купить молоко")
	assert.Contains(t, out, "Отчёт")
	assert.Contains(t, out, "Прогресс: 50%")

	out, err = run(t, cfg, "list", "--search", "ОТЧ")
	require.NoError(t, err)
	assert.NotContains(t, out, "Купить молоко")

	_, err = run(t, cfg, "edit", id, "--name", "Купить кефир", "--clear-due")
	require.NoError(t, err)

	out, err = run(t, cfg, "list", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Купить кефир")

	out, err = run(t, cfg, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Статистика")

	out, err = run(t, cfg, "widget")
	require.NoError(t, err)
	assert.Contains(t, out, "задач: 2")
	assert.Contains(t, out, "policy: atEnd")

	_, err = run(t, cfg, "rm", id)
	require.NoError(t, err)

	_, err = run(t, cfg, "toggle", id)
	assert.Error(t, err)
}

// TestCLI_Validation тестирует отказ на пустое название и неверные значения
func TestCLI_Validation(t *testing.T) {
	cfg := writeConfig(t)

	_, err := run(t, cfg, "add", "   ")
	assert.Error(t, err)

	_, err = run(t, cfg, "add", "x", "--priority", "Urgent")
	assert.Error(t, err)

	_, err = run(t, cfg, "add", "x", "--due", "15.01.2099")
	assert.Error(t, err)

	out, err := run(t, cfg, "widget")
	require.NoError(t, err)
	assert.Contains(t, out, "задач: 0")
}

// TestCLI_Settings тестирует тему и флаг онбординга
func TestCLI_Settings(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, cfg, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "Light")

	_, err = run(t, cfg, "theme", "dark")
	require.NoError(t, err)

	out, err = run(t, cfg, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "Dark")

	_, err = run(t, cfg, "theme", "Pink")
	assert.Error(t, err)

	out, err = run(t, cfg, "onboarding")
	require.NoError(t, err)
	assert.Contains(t, out, "seen: false")

	out, err = run(t, cfg, "onboarding", "--seen")
	require.NoError(t, err)
	assert.Contains(t, out, "seen: true")
}
