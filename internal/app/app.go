package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
	"todoTracker/internal/config"
	"todoTracker/internal/handlers"
	"todoTracker/internal/logger"
	"todoTracker/internal/middleware"
	"todoTracker/internal/worker"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config    *config.Config
	server    *http.Server
	router    *chi.Mux
	core      *Core
	worker    *worker.ReminderWorker
	shutdowns []func() // функции для graceful shutdown
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

func (a *App) Init(ctx context.Context) (*App, error) {
	if err := logger.Init(a.config.Logging.Development); err != nil {
		return nil, fmt.Errorf("инициализация логгера: %w", err)
	}

	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("Завершение работы логгирования...")
		logger.Sync()
	})

	core, err := NewCore(ctx, a.config)
	if err != nil {
		a.Shutdown()
		return nil, fmt.Errorf("инициализация хранилища: %w", err)
	}
	a.core = core
	a.shutdowns = append(a.shutdowns, core.Close)

	interval := a.config.Reminders.Interval
	a.worker = worker.NewReminderWorker(core.Center, nil, &interval)

	a.router = a.newRouter()
	a.server = &http.Server{
		Addr:              a.config.GetServerAddr(),
		Handler:           a.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return a, nil
}

// Handler отдаёт готовый роутер, удобно для httptest
func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) Core() *Core {
	return a.core
}

func (a *App) newRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: a.config.Server.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "Retry-After"},
		MaxAge:         300,
	}))
	if rl := a.config.RateLimit; rl.RequestsPerSecond > 0 {
		r.Use(middleware.RateLimit(rl.RequestsPerSecond, rl.Burst))
	}

	handlers.NewTaskHandler(a.core.Store, a.core.Widget).Routes(r)
	return r
}

// Run блокируется до отмены ctx или падения сервера, затем останавливает сервер и воркер
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.worker.Start(gctx)
		return nil
	})

	g.Go(func() error {
		logger.Info("Сервер запущен", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("сервер: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Остановка сервера")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Ошибка остановки сервера", err)
		}
		return nil
	})

	err := g.Wait()
	a.Shutdown()
	return err
}

// Shutdown вызывает зарегистрированные функции в обратном порядке
func (a *App) Shutdown() {
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
	a.shutdowns = nil
}
