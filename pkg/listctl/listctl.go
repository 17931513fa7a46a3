// Package listctl holds one remote collection in memory and keeps it in step
// with the backend: load on mount, refetch after every successful mutation.
package listctl

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"farmdesk/pkg/logging"
)

type Phase int

const (
	Loading Phase = iota
	Ready
	Error
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Error:
		return "error"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Source is the remote collection. *client.Resource[T] satisfies it.
type Source[T any] interface {
	Name() string
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, draft T) (*T, error)
	Update(ctx context.Context, id uint, patch any) (*T, error)
	Delete(ctx context.Context, id uint) error
}

// Notice is a transient message about a failed mutation.
type Notice struct {
	Resource string
	Op       string
	Err      error
}

func (n Notice) String() string { return fmt.Sprintf("%s %s failed: %v", n.Op, n.Resource, n.Err) }

type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

// State is a snapshot; Items is never shared with the controller.
type State[T any] struct {
	Phase Phase
	Items []T
	Err   error
}

type Controller[T any] struct {
	src    Source[T]
	notify Notifier
	log    *logrus.Entry

	mu    sync.Mutex
	state State[T]
	subs  []chan State[T]
}

type Option[T any] func(*Controller[T])

func WithNotifier[T any](n Notifier) Option[T] { return func(c *Controller[T]) { c.notify = n } }

func WithLogger[T any](l *logrus.Entry) Option[T] { return func(c *Controller[T]) { c.log = l } }

// New starts in Loading with an empty collection; call Mount to fetch.
func New[T any](src Source[T], opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		src:    src,
		notify: NotifierFunc(func(Notice) {}),
		log:    logging.Discard(),
		state:  State[T]{Phase: Loading, Items: []T{}},
	}
	for _, o := range opts {
		o(c)
	}
	c.log = c.log.WithField("resource", src.Name())
	return c
}

// Mount loads the collection. The returned error is also held in State.
func (c *Controller[T]) Mount(ctx context.Context) error {
	return c.load(ctx)
}

// Retry reloads after an Error phase.
func (c *Controller[T]) Retry(ctx context.Context) error {
	return c.load(ctx)
}

// Refresh refetches without going through Loading.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	return c.fetch(ctx)
}

func (c *Controller[T]) load(ctx context.Context) error {
	c.set(func(s *State[T]) {
		s.Phase = Loading
		s.Err = nil
	})
	return c.fetch(ctx)
}

// fetch applies whatever response arrives; overlapping fetches are not
// ordered, the last one to finish wins.
func (c *Controller[T]) fetch(ctx context.Context) error {
	items, err := c.src.List(ctx)
	if err != nil {
		c.log.WithError(err).Warn("list failed")
		c.set(func(s *State[T]) {
			s.Phase = Error
			s.Items = []T{}
			s.Err = err
		})
		return err
	}
	c.log.WithField("count", len(items)).Debug("list loaded")
	c.set(func(s *State[T]) {
		s.Phase = Ready
		s.Items = items
		s.Err = nil
	})
	return nil
}

// Create stores draft and refetches. On failure the state is untouched and
// a Notice is published.
func (c *Controller[T]) Create(ctx context.Context, draft T) (*T, error) {
	out, err := c.src.Create(ctx, draft)
	if err != nil {
		c.fail("create", err)
		return nil, err
	}
	_ = c.fetch(ctx)
	return out, nil
}

func (c *Controller[T]) Update(ctx context.Context, id uint, patch any) (*T, error) {
	out, err := c.src.Update(ctx, id, patch)
	if err != nil {
		c.fail("update", err)
		return nil, err
	}
	_ = c.fetch(ctx)
	return out, nil
}

func (c *Controller[T]) Delete(ctx context.Context, id uint) error {
	if err := c.src.Delete(ctx, id); err != nil {
		c.fail("delete", err)
		return err
	}
	_ = c.fetch(ctx)
	return nil
}

func (c *Controller[T]) fail(op string, err error) {
	c.log.WithField("op", op).WithError(err).Warn("mutation failed")
	c.notify.Notify(Notice{Resource: c.src.Name(), Op: op, Err: err})
}

// State returns a copy of the current snapshot.
func (c *Controller[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller[T]) Items() []T { return c.State().Items }

func (c *Controller[T]) Phase() Phase { return c.State().Phase }

// Subscribe delivers the current snapshot and every later one. Slow
// subscribers miss intermediate snapshots but always see the newest.
func (c *Controller[T]) Subscribe() <-chan State[T] {
	ch := make(chan State[T], 1)
	c.mu.Lock()
	c.subs = append(c.subs, ch)
	ch <- c.snapshot()
	c.mu.Unlock()
	return ch
}

// Unsubscribe closes ch.
func (c *Controller[T]) Unsubscribe(ch <-chan State[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, sub := range c.subs {
		if (<-chan State[T])(sub) == ch {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			close(sub)
			return
		}
	}
}

func (c *Controller[T]) set(fn func(*State[T])) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.state)
	snap := c.snapshot()
	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}

func (c *Controller[T]) snapshot() State[T] {
	items := make([]T, len(c.state.Items))
	copy(items, c.state.Items)
	return State[T]{Phase: c.state.Phase, Items: items, Err: c.state.Err}
}
