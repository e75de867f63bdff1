package notify

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"
)

var ErrNotAuthorized = errors.New("нет разрешения на уведомления")

// Request - одно отложенное локальное уведомление
type Request struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	FireAt time.Time `json:"fireAt"`
}

// Center - системный центр уведомлений
type Center interface {
	Add(ctx context.Context, req Request) error
	Remove(ctx context.Context, ids ...string)
}

// LocalCenter - центр уведомлений внутри процесса. Хранит не более одного
// запроса на идентификатор; новый запрос с тем же id заменяет старый.
type LocalCenter struct {
	mtx        sync.RWMutex
	pending    map[string]Request
	authorized bool
}

func NewLocalCenter(authorized bool) *LocalCenter {
	return &LocalCenter{
		pending:    make(map[string]Request),
		authorized: authorized,
	}
}

func (c *LocalCenter) SetAuthorized(granted bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.authorized = granted
}

func (c *LocalCenter) Authorized() bool {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	return c.authorized
}

func (c *LocalCenter) Add(ctx context.Context, req Request) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if !c.authorized {
		return ErrNotAuthorized
	}
	c.pending[req.ID] = req
	return nil
}

func (c *LocalCenter) Remove(ctx context.Context, ids ...string) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	for _, id := range ids {
		delete(c.pending, id)
	}
}

// Ack снимает доставленный запрос, только если под его id всё ещё лежит он же.
// Запрос, перепланированный после выборки, остаётся.
func (c *LocalCenter) Ack(ctx context.Context, req Request) bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	current, ok := c.pending[req.ID]
	if !ok || !current.same(req) {
		return false
	}
	delete(c.pending, req.ID)
	return true
}

func (r Request) same(other Request) bool {
	return r.ID == other.ID && r.Title == other.Title && r.Body == other.Body && r.FireAt.Equal(other.FireAt)
}

func (c *LocalCenter) Get(id string) (Request, bool) {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	req, ok := c.pending[id]
	return req, ok
}

// Pending возвращает запросы по возрастанию времени срабатывания
func (c *LocalCenter) Pending() []Request {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	res := make([]Request, 0, len(c.pending))
	for _, req := range c.pending {
		res = append(res, req)
	}
	sortByFireAt(res)
	return res
}

// Due возвращает запросы, время которых наступило к now
func (c *LocalCenter) Due(now time.Time) []Request {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	res := []Request{}
	for _, req := range c.pending {
		if !req.FireAt.After(now) {
			res = append(res, req)
		}
	}
	sortByFireAt(res)
	return res
}

func sortByFireAt(reqs []Request) {
	slices.SortFunc(reqs, func(a, b Request) int {
		if c := a.FireAt.Compare(b.FireAt); c != 0 {
			return c
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
}
