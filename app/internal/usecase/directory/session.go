package directory

import (
	"context"
	"time"

	"go.uber.org/zap"

	"example.com/solar-directory/app/internal/domain/filter"
	domview "example.com/solar-directory/app/internal/domain/view"
)

// Persister stores the encoded filter state somewhere shareable.
type Persister interface {
	Persist(ctx context.Context, query string) error
}

type PersisterFunc func(ctx context.Context, query string) error

func (f PersisterFunc) Persist(ctx context.Context, query string) error {
	return f(ctx, query)
}

const persistTimeout = 5 * time.Second

// Session is one logical view over a resident collection. It is driven from a
// single goroutine; only persistence runs in the background.
type Session struct {
	svc      *Service
	kind     domview.Kind
	coll     Collections
	state    filter.State
	sort     filter.SortBy
	current  filter.View
	debounce *Debouncer[string]
	logger   *zap.Logger
}

type SessionOptions struct {
	Kind      domview.Kind
	Initial   filter.State
	Sort      filter.SortBy
	Persister Persister
	Window    time.Duration
}

func (s *Service) NewSession(ctx context.Context, opts SessionOptions) (*Session, error) {
	coll, err := s.Load(ctx, opts.Kind)
	if err != nil {
		return nil, err
	}
	sess := &Session{
		svc:    s,
		kind:   opts.Kind,
		coll:   coll,
		state:  opts.Initial,
		sort:   opts.Sort,
		logger: s.logger.With(zap.String("kind", string(opts.Kind))),
	}
	persister := opts.Persister
	sess.debounce = NewDebouncer(opts.Window, func(query string) {
		if persister == nil {
			return
		}
		pctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := persister.Persist(pctx, query); err != nil {
			sess.logger.Warn("persist filter state failed", zap.String("query", query), zap.Error(err))
		}
	})
	sess.recompute()
	return sess, nil
}

// OnFilterChange applies one filter transition, recomputes the view and
// schedules persistence of the new state.
func (s *Session) OnFilterChange(key filter.Key, value string) filter.View {
	s.state = filter.Set(s.state, key, value)
	s.recompute()
	s.debounce.Trigger(filter.Encode(s.state))
	return s.current
}

func (s *Session) SetSort(by filter.SortBy) filter.View {
	s.sort = by
	s.recompute()
	return s.current
}

// Refetch reloads the collections and rebuilds the view against the current
// state.
func (s *Session) Refetch(ctx context.Context) (filter.View, error) {
	coll, err := s.svc.Load(ctx, s.kind)
	if err != nil {
		return s.current, err
	}
	s.coll = coll
	s.recompute()
	return s.current, nil
}

func (s *Session) State() filter.State {
	return s.state
}

func (s *Session) Query() string {
	return filter.Encode(s.state)
}

func (s *Session) View() filter.View {
	return s.current
}

func (s *Session) FetchFailed() bool {
	return s.coll.FetchFailed
}

// Flush persists a pending state immediately.
func (s *Session) Flush() bool {
	return s.debounce.Flush()
}

// Close cancels any pending persistence.
func (s *Session) Close() {
	s.debounce.Cancel()
}

func (s *Session) recompute() {
	s.current = filter.NewView(s.coll.Entities, s.coll.Categories, s.state, s.sort, s.svc.locale)
}
