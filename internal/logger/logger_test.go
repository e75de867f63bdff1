package logger_test

import (
	"errors"
	"net/http/httptest"
	"testing"
	"todoTracker/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	logger.Use(zap.New(core))
	t.Cleanup(func() { logger.Use(nil) })
	return logs
}

// TestError тестирует поле error и пропуск nil
func TestError(t *testing.T) {
	logs := observe(t)

	logger.Error("сбой", errors.New("boom"), zap.String("op", "save"))
	logger.Error("без ошибки", nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "boom", entries[0].ContextMap()["error"])
	assert.Equal(t, "save", entries[0].ContextMap()["op"])
	assert.NotContains(t, entries[1].ContextMap(), "error")
}

// TestHttpRequestInfo тестирует поля запроса
func TestHttpRequestInfo(t *testing.T) {
	logs := observe(t)

	req := httptest.NewRequest("GET", "/tasks?search=x", nil)
	logger.HttpRequestInfo(req, "HTTP_IN:", zap.Int("extra", 1))

	entries := logs.FilterMessage("HTTP_IN:").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/tasks", fields["path"])
	assert.Equal(t, "search=x", fields["query"])
	assert.EqualValues(t, 1, fields["extra"])
}

// TestLog тестирует выбор уровня
func TestLog(t *testing.T) {
	logs := observe(t)

	logger.Log(zapcore.WarnLevel, "w")
	logger.Debug("d")

	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.DebugLevel).Len())
}
