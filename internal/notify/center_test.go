package notify_test

import (
	"context"
	"testing"
	"time"
	"todoTracker/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLocalCenter_Authorization тестирует отказ без разрешения
func TestLocalCenter_Authorization(t *testing.T) {
	ctx := context.Background()
	center := notify.NewLocalCenter(false)

	err := center.Add(ctx, notify.Request{ID: "a", FireAt: now})
	assert.ErrorIs(t, err, notify.ErrNotAuthorized)
	assert.Empty(t, center.Pending())
	assert.False(t, center.Authorized())

	center.SetAuthorized(true)
	require.NoError(t, center.Add(ctx, notify.Request{ID: "a", FireAt: now}))
	assert.Len(t, center.Pending(), 1)
}

// TestLocalCenter_ReplaceAndRemove тестирует замену по id и удаление
func TestLocalCenter_ReplaceAndRemove(t *testing.T) {
	ctx := context.Background()
	center := notify.NewLocalCenter(true)

	require.NoError(t, center.Add(ctx, notify.Request{ID: "a", Title: "first", FireAt: now}))
	require.NoError(t, center.Add(ctx, notify.Request{ID: "a", Title: "second", FireAt: now}))

	req, ok := center.Get("a")
	require.True(t, ok)
	assert.Equal(t, "second", req.Title)

	center.Remove(ctx, "a", "missing")
	_, ok = center.Get("a")
	assert.False(t, ok)
}

// TestLocalCenter_Due тестирует выборку наступивших напоминаний
func TestLocalCenter_Due(t *testing.T) {
	ctx := context.Background()
	center := notify.NewLocalCenter(true)

	require.NoError(t, center.Add(ctx, notify.Request{ID: "late", FireAt: now.Add(-time.Minute)}))
	require.NoError(t, center.Add(ctx, notify.Request{ID: "later", FireAt: now.Add(-time.Hour)}))
	require.NoError(t, center.Add(ctx, notify.Request{ID: "exact", FireAt: now}))
	require.NoError(t, center.Add(ctx, notify.Request{ID: "future", FireAt: now.Add(time.Hour)}))

	due := center.Due(now)
	require.Len(t, due, 3)
	assert.Equal(t, "later", due[0].ID)
	assert.Equal(t, "late", due[1].ID)
	assert.Equal(t, "exact", due[2].ID)
	assert.Len(t, center.Pending(), 4)
}

// TestLocalCenter_Ack тестирует снятие только того запроса, который был доставлен
func TestLocalCenter_Ack(t *testing.T) {
	ctx := context.Background()
	center := notify.NewLocalCenter(true)

	delivered := notify.Request{ID: "a", Title: "t", Body: "b", FireAt: now}
	require.NoError(t, center.Add(ctx, delivered))
	assert.True(t, center.Ack(ctx, delivered))
	_, ok := center.Get("a")
	assert.False(t, ok)
	assert.False(t, center.Ack(ctx, delivered))

	require.NoError(t, center.Add(ctx, delivered))
	rescheduled := delivered
	rescheduled.FireAt = now.Add(48 * time.Hour)
	require.NoError(t, center.Add(ctx, rescheduled))

	assert.False(t, center.Ack(ctx, delivered))
	req, ok := center.Get("a")
	require.True(t, ok)
	assert.True(t, req.FireAt.Equal(rescheduled.FireAt))
}
