// Package session owns the to-do state for one run of the program.
//
// A Session is created once (New or Open) and handed to the front end
// explicitly. It is not safe for concurrent use: exactly one goroutine
// dispatches, matching the single event loop of the CLI and the TUI.
package session

import (
	"context"
	"fmt"

	"todo-cli/internal/model"
	"todo-cli/internal/mutate"
	"todo-cli/internal/store"

	"github.com/charmbracelet/log"
)

// ChangeHook runs synchronously after each successful reduction.
type ChangeHook func(ctx context.Context, st model.State) error

type Session struct {
	state   model.State
	reducer mutate.Reducer
	hooks   []ChangeHook
	logger  *log.Logger
}

type Option func(*Session)

func WithReducer(r mutate.Reducer) Option {
	return func(s *Session) { s.reducer = r }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

func WithHook(h ChangeHook) Option {
	return func(s *Session) { s.OnChange(h) }
}

// New returns a session holding initial. No hooks run.
func New(initial model.State, opts ...Option) *Session {
	s := &Session{
		state:   initial.Clone(),
		reducer: mutate.DefaultReducer(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Open restores state through p and keeps it persisted after every change.
// A stored state that cannot be read is ignored and the session starts empty.
// The current state is written once before Open returns.
func Open(ctx context.Context, p *store.Persister, opts ...Option) (*Session, error) {
	s := New(model.State{TodoItems: []model.Item{}}, opts...)

	if saved, ok := p.Load(ctx); ok {
		st, err := s.reducer.Reduce(s.state, mutate.LoadState{Data: saved})
		if err != nil {
			return nil, err
		}
		s.state = st
		s.debug("state restored", "items", len(st.TodoItems))
	}

	s.OnChange(func(ctx context.Context, st model.State) error {
		return p.Save(ctx, st)
	})
	if err := p.Save(ctx, s.state); err != nil {
		return nil, fmt.Errorf("initial save: %w", err)
	}
	return s, nil
}

// OnChange registers h. Hooks run in registration order.
func (s *Session) OnChange(h ChangeHook) {
	if h == nil {
		return
	}
	s.hooks = append(s.hooks, h)
}

// Dispatch applies a. If the reducer fails, state is left untouched and the
// error is returned. Otherwise the new state is installed and hooks run; the
// first hook error is returned (the state change itself stands).
func (s *Session) Dispatch(ctx context.Context, a mutate.Action) error {
	next, err := s.reducer.Reduce(s.state, a)
	if err != nil {
		if mutate.IsUnknownAction(err) && s.logger != nil {
			s.logger.Error("dispatch rejected", "err", err)
		}
		return err
	}
	s.state = next
	s.debug("action applied", "type", a.Type(), "items", len(next.TodoItems))

	for _, h := range s.hooks {
		if err := h(ctx, s.State()); err != nil {
			return err
		}
	}
	return nil
}

// State returns a copy of the current state.
func (s *Session) State() model.State { return s.state.Clone() }

// Items returns the stored order.
func (s *Session) Items() []model.Item { return model.CloneItems(s.state.TodoItems) }

// Sorted returns the display order.
func (s *Session) Sorted() []model.Item { return mutate.SortForDisplay(s.state.TodoItems) }

func (s *Session) Find(id string) (model.Item, bool) { return s.state.FindItem(id) }

func (s *Session) debug(msg string, kv ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, kv...)
	}
}
