package notify_test

import (
	"context"
	"testing"
	"time"
	"todoTracker/internal/models/task"
	"todoTracker/internal/notify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCenter - мок системного центра уведомлений
type MockCenter struct {
	mock.Mock
}

func (m *MockCenter) Add(ctx context.Context, req notify.Request) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockCenter) Remove(ctx context.Context, ids ...string) {
	m.Called(ctx, ids)
}

var _ notify.Center = (*MockCenter)(nil)

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func taskDue(name string, due *time.Time) task.Task {
	return task.Task{
		ID:           uuid.New(),
		Name:         name,
		Status:       task.StatusPending,
		Priority:     task.PriorityMedium,
		Category:     task.CategoryPersonal,
		CreationDate: now,
		DueDate:      due,
	}
}

func at(d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}

// TestScheduler_Schedule тестирует решение о напоминании
func TestScheduler_Schedule(t *testing.T) {
	tests := []struct {
		name          string
		due           *time.Time
		wantScheduled bool
	}{
		{name: "no due date", due: nil, wantScheduled: false},
		{name: "due yesterday", due: at(-24 * time.Hour), wantScheduled: false},
		{name: "due in 12 hours", due: at(12 * time.Hour), wantScheduled: false},
		{name: "due in exactly one day", due: at(24 * time.Hour), wantScheduled: false},
		{name: "due in one day and a minute", due: at(24*time.Hour + time.Minute), wantScheduled: true},
		{name: "due in three days", due: at(72 * time.Hour), wantScheduled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			center := new(MockCenter)
			tk := taskDue("Pay rent", tt.due)

			center.On("Remove", mock.Anything, []string{tk.ID.String()}).Return().Once()
			if tt.wantScheduled {
				center.On("Add", mock.Anything, mock.MatchedBy(func(req notify.Request) bool {
					return req.ID == tk.ID.String() && req.FireAt.Equal(tt.due.AddDate(0, 0, -1))
				})).Return(nil).Once()
			}

			res := notify.NewScheduler(center, notify.WithClock(clock)).Schedule(ctx, tk)

			assert.Equal(t, tt.wantScheduled, res.Scheduled)
			assert.NoError(t, res.Err)
			center.AssertExpectations(t)
			if !tt.wantScheduled {
				center.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
			}
		})
	}
}

// TestScheduler_ScheduleFailureIsReported тестирует отказ системного вызова
func TestScheduler_ScheduleFailureIsReported(t *testing.T) {
	ctx := context.Background()
	center := new(MockCenter)
	tk := taskDue("Pay rent", at(72*time.Hour))

	center.On("Remove", mock.Anything, mock.Anything).Return()
	center.On("Add", mock.Anything, mock.Anything).Return(notify.ErrNotAuthorized)

	res := notify.NewScheduler(center, notify.WithClock(clock)).Schedule(ctx, tk)

	assert.False(t, res.Scheduled)
	assert.ErrorIs(t, res.Err, notify.ErrNotAuthorized)
	assert.Equal(t, tk.ID, res.TaskID)
}

// TestScheduler_RequestPayload тестирует заголовок и текст уведомления
func TestScheduler_RequestPayload(t *testing.T) {
	due := time.Date(2026, 10, 22, 9, 0, 0, 0, time.UTC)
	tk := taskDue("Pay rent", &due)

	fireAt, ok := notify.ReminderTime(tk)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 10, 21, 9, 0, 0, 0, time.UTC), fireAt)

	req := notify.NewRequest(tk, fireAt)
	assert.Equal(t, tk.ID.String(), req.ID)
	assert.Equal(t, "Напоминание о задаче", req.Title)
	assert.Contains(t, req.Body, "Pay rent")
	assert.Contains(t, req.Body, "22 Oct 2026")
}

// TestScheduler_RescheduleReplaces тестирует отсутствие дублей при повторном планировании
func TestScheduler_RescheduleReplaces(t *testing.T) {
	ctx := context.Background()
	center := notify.NewLocalCenter(true)
	scheduler := notify.NewScheduler(center, notify.WithClock(clock))
	tk := taskDue("Pay rent", at(72*time.Hour))

	scheduler.Schedule(ctx, tk)
	scheduler.Schedule(ctx, tk)
	require.Len(t, center.Pending(), 1)

	tk.DueDate = at(96 * time.Hour)
	scheduler.Schedule(ctx, tk)
	pending := center.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, now.Add(72*time.Hour), pending[0].FireAt)

	// снятие срока отменяет напоминание
	tk.DueDate = nil
	res := scheduler.Schedule(ctx, tk)
	assert.False(t, res.Scheduled)
	assert.Empty(t, center.Pending())
}

// TestScheduler_Cancel тестирует идемпотентную отмену
func TestScheduler_Cancel(t *testing.T) {
	ctx := context.Background()
	center := notify.NewLocalCenter(true)
	scheduler := notify.NewScheduler(center, notify.WithClock(clock))
	tk := taskDue("Pay rent", at(72*time.Hour))

	scheduler.Schedule(ctx, tk)
	scheduler.Cancel(ctx, tk.ID)
	scheduler.Cancel(ctx, tk.ID)
	scheduler.Cancel(ctx, uuid.New())

	assert.Empty(t, center.Pending())
}

// TestScheduler_Resync тестирует пересчёт для всех задач
func TestScheduler_Resync(t *testing.T) {
	ctx := context.Background()
	center := notify.NewLocalCenter(true)
	scheduler := notify.NewScheduler(center, notify.WithClock(clock))

	tasks := []task.Task{
		taskDue("Pay rent", at(72*time.Hour)),
		taskDue("Old task", at(-24*time.Hour)),
		taskDue("No date", nil),
		taskDue("Dentist", at(48*time.Hour)),
	}

	results := scheduler.Resync(ctx, tasks)
	require.Len(t, results, 4)
	assert.True(t, results[0].Scheduled)
	assert.False(t, results[1].Scheduled)
	assert.False(t, results[2].Scheduled)
	assert.True(t, results[3].Scheduled)

	pending := center.Pending()
	require.Len(t, pending, 2)
	assert.Equal(t, tasks[3].ID.String(), pending[0].ID)
	assert.Equal(t, tasks[0].ID.String(), pending[1].ID)

	// повторный пересчёт ничего не дублирует
	scheduler.Resync(ctx, tasks)
	assert.Len(t, center.Pending(), 2)
}
