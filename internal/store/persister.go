package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"todo-cli/internal/model"

	"github.com/charmbracelet/log"
)

// Persister reads and writes the whole state under one slot key.
type Persister struct {
	Slot   Slot
	Key    string
	Logger *log.Logger
}

func NewPersister(slot Slot, key string, logger *log.Logger) *Persister {
	if strings.TrimSpace(key) == "" {
		key = StateKey
	}
	return &Persister{Slot: slot, Key: key, Logger: logger}
}

// Load returns the persisted state. ok is false when nothing usable is stored.
// Read and decode failures are logged and otherwise ignored.
func (p *Persister) Load(ctx context.Context) (st model.State, ok bool) {
	empty := model.State{TodoItems: []model.Item{}}
	if p == nil || p.Slot == nil {
		return empty, false
	}
	b, found, err := p.Slot.Get(ctx, p.key())
	if err != nil {
		p.debug("read saved state failed", "key", p.key(), "err", err)
		return empty, false
	}
	if !found || len(b) == 0 {
		return empty, false
	}
	st, err = DecodeState(b)
	if err != nil {
		p.debug("ignoring unreadable saved state", "key", p.key(), "err", err)
		return empty, false
	}
	return st, true
}

// Save overwrites the slot with st.
func (p *Persister) Save(ctx context.Context, st model.State) error {
	if p == nil || p.Slot == nil {
		return errors.New("persister: no slot")
	}
	b, err := EncodeState(st)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := p.Slot.Set(ctx, p.key(), b); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if p.Logger != nil {
		p.Logger.Debug("state saved", "key", p.key(), "items", len(st.TodoItems), "bytes", len(b))
	}
	return nil
}

// Raw returns the stored blob as is.
func (p *Persister) Raw(ctx context.Context) ([]byte, bool, error) {
	if p == nil || p.Slot == nil {
		return nil, false, errors.New("persister: no slot")
	}
	return p.Slot.Get(ctx, p.key())
}

func (p *Persister) key() string {
	if strings.TrimSpace(p.Key) == "" {
		return StateKey
	}
	return p.Key
}

func (p *Persister) debug(msg string, kv ...any) {
	if p.Logger != nil {
		p.Logger.Debug(msg, kv...)
	}
}
