package worker

import (
	"context"
	"time"
	"todoTracker/internal/logger"
	"todoTracker/internal/notify"

	"go.uber.org/zap"
)

// DueSource - центр уведомлений, из которого забираются наступившие напоминания
type DueSource interface {
	Due(now time.Time) []notify.Request
	Ack(ctx context.Context, req notify.Request) bool
}

// Deliverer показывает напоминание пользователю
type Deliverer interface {
	Deliver(ctx context.Context, req notify.Request) error
}

type DelivererFunc func(ctx context.Context, req notify.Request) error

func (f DelivererFunc) Deliver(ctx context.Context, req notify.Request) error {
	return f(ctx, req)
}

// LogDeliverer пишет напоминание в лог
type LogDeliverer struct{}

func (LogDeliverer) Deliver(ctx context.Context, req notify.Request) error {
	logger.Info(req.Title,
		zap.String("task_id", req.ID),
		zap.String("body", req.Body),
		zap.Time("fire_at", req.FireAt))
	return nil
}

type ReminderWorker struct {
	center    DueSource
	deliverer Deliverer
	interval  time.Duration
	now       func() time.Time
}

func NewReminderWorker(center DueSource, deliverer Deliverer, interval *time.Duration) *ReminderWorker {
	var intervalToSet time.Duration
	if interval == nil || *interval <= 0 {
		intervalToSet = time.Minute
	} else {
		intervalToSet = *interval
	}

	if deliverer == nil {
		deliverer = LogDeliverer{}
	}

	return &ReminderWorker{
		center:    center,
		deliverer: deliverer,
		interval:  intervalToSet,
		now:       time.Now,
	}
}

func (w *ReminderWorker) WithClock(now func() time.Time) *ReminderWorker {
	w.now = now
	return w
}

func (w *ReminderWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger.Info("Worker: Рассылка напоминаний запущена", zap.Duration("interval", w.interval))
	for {
		select {
		case <-ticker.C:
			w.Check(ctx)
		case <-ctx.Done():
			logger.Info("Worker: Рассылка напоминаний останавливается")
			return
		}
	}
}

// Check отправляет наступившие напоминания. Каждое срабатывает один раз:
// после успешной доставки запрос снимается, при ошибке остаётся до следующего тика.
// Запрос, заменённый за время доставки, не снимается.
func (w *ReminderWorker) Check(ctx context.Context) int {
	start := time.Now()

	due := w.center.Due(w.now())
	delivered := 0
	for _, req := range due {
		if err := w.deliverer.Deliver(ctx, req); err != nil {
			logger.Warn("Worker: Ошибка доставки напоминания", zap.String("task_id", req.ID), zap.Error(err))
			continue
		}
		if !w.center.Ack(ctx, req) {
			logger.Debug("Worker: Напоминание перепланировано во время доставки", zap.String("task_id", req.ID))
		}
		delivered++
	}

	if len(due) > 0 {
		logger.Info(
			"Worker: Завершение рассылки напоминаний",
			zap.Duration("ms", time.Since(start)),
			zap.Int("due", len(due)),
			zap.Int("delivered", delivered),
		)
	}
	return delivered
}
