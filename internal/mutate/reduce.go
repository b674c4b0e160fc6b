package mutate

import (
	"fmt"
	"strings"

	"todo-cli/internal/model"
	"todo-cli/internal/store"
)

// Reducer computes the next state from the current state and an action.
// It never modifies its inputs.
type Reducer struct {
	// NewID generates ids for added items.
	NewID func() (string, error)
}

// DefaultReducer uses store.NewItemID for ids.
func DefaultReducer() Reducer {
	return Reducer{NewID: store.NewItemID}
}

// Reduce applies a to st. On error the returned state is the zero value and
// callers must keep st.
func (r Reducer) Reduce(st model.State, a Action) (model.State, error) {
	switch a := a.(type) {
	case LoadState:
		return a.Data.Clone(), nil
	case Add:
		return r.add(st, a)
	case Delete:
		return reduceDelete(st, a), nil
	case ToggleDone:
		return reduceToggleDone(st, a), nil
	case SaveDrop:
		return reduceSaveDrop(st, a), nil
	case nil:
		return model.State{}, UnknownActionError{Type: "<nil>"}
	default:
		return model.State{}, UnknownActionError{Type: fmt.Sprintf("%T", a)}
	}
}

func (r Reducer) add(st model.State, a Add) (model.State, error) {
	// Persisted JSON cannot carry invalid UTF-8; store what a reload would see.
	title := strings.TrimSpace(strings.ToValidUTF8(a.Item.Title, "\uFFFD"))
	if title == "" {
		return model.State{}, ErrTitleRequired
	}
	newID := r.NewID
	if newID == nil {
		newID = store.NewItemID
	}
	id, err := newID()
	if err != nil {
		return model.State{}, fmt.Errorf("generate item id: %w", err)
	}

	items := make([]model.Item, 0, len(st.TodoItems)+1)
	items = append(items, model.Item{
		ID:      id,
		Title:   title,
		Details: strings.TrimRight(strings.ToValidUTF8(a.Item.Details, "\uFFFD"), " \t\r\n"),
		Done:    false,
	})
	items = append(items, st.TodoItems...)
	return model.State{TodoItems: items}, nil
}

func reduceDelete(st model.State, a Delete) model.State {
	items := make([]model.Item, 0, len(st.TodoItems))
	for _, it := range st.TodoItems {
		if it.ID == a.ID {
			continue
		}
		items = append(items, it)
	}
	return model.State{TodoItems: items}
}

func reduceToggleDone(st model.State, a ToggleDone) model.State {
	out := st.Clone()
	// Missing id is a no-op, same as delete.
	if idx := FindIndex(out.TodoItems, a.ID); idx >= 0 {
		out.TodoItems[idx].Done = !out.TodoItems[idx].Done
	}
	return out
}

func reduceSaveDrop(st model.State, a SaveDrop) model.State {
	dest := a.DragResult.Destination
	if dest == nil {
		return st.Clone()
	}
	src := a.DragResult.Source.Index
	if src < 0 || src >= len(a.SortedItems) {
		return st.Clone()
	}
	return model.State{TodoItems: Reorder(a.SortedItems, src, dest.Index)}
}
