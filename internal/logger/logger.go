package logger

import (
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeLayout = "2006/01/02 15:04:05"

// Logger пишет в никуда до Init: пакеты и тесты логируют без подготовки
var Logger = zap.NewNop()

// Init строит логгер для API и CLI. В development цветные уровни и уровень debug,
// иначе JSON с уровня info. Все записи помечаются полем service.
func Init(development bool) error {
	config := zap.NewProductionConfig()
	if development {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
	config.InitialFields = map[string]any{"service": "todo-tracker"}

	built, err := config.Build()
	if err != nil {
		return err
	}
	Use(built)
	return nil
}

// Use подменяет логгер, в тестах сюда передаётся zaptest/observer
func Use(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	Logger = l
}

func Sync() {
	_ = Logger.Sync()
}

func Debug(msg string, fields ...zap.Field) { Logger.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { Logger.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { Logger.Warn(msg, fields...) }

func Log(lvl zapcore.Level, msg string, fields ...zap.Field) {
	Logger.Log(lvl, msg, fields...)
}

// Error добавляет err отдельным полем, nil пропускается
func Error(msg string, err error, fields ...zap.Field) {
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	Logger.Error(msg, fields...)
}

// HttpRequestInfo - вход в обработчик с методом, путём и адресом клиента
func HttpRequestInfo(r *http.Request, msg string, fields ...zap.Field) {
	Logger.Info(msg, append([]zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("query", r.URL.RawQuery),
		zap.String("client_ip", r.RemoteAddr),
	}, fields...)...)
}
