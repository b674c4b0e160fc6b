package mutate

import (
	"encoding/json"
	"fmt"
	"strings"

	"todo-cli/internal/model"
)

// Wire form of an action: {"type": "...", "data": {...}}.
type wireAction struct {
	Type ActionType      `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

type wireAdd struct {
	TodoItem *model.ItemNew `json:"todoItem"`
}

type wireID struct {
	ID string `json:"id"`
}

type wireSaveDrop struct {
	SortedItems []model.Item      `json:"sortedItems"`
	DragResult  *model.DragResult `json:"dragResult"`
}

// DecodeAction parses the wire form of an action.
// An unrecognized type yields UnknownActionError.
func DecodeAction(b []byte) (Action, error) {
	var w wireAction
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, fmt.Errorf("decode action: %w", err)
	}
	data := w.Data
	if len(data) == 0 {
		data = json.RawMessage("{}")
	}

	switch w.Type {
	case TypeLoadState:
		var st model.State
		if err := json.Unmarshal(data, &st); err != nil {
			return nil, fmt.Errorf("decode %s data: %w", w.Type, err)
		}
		if st.TodoItems == nil {
			st.TodoItems = []model.Item{}
		}
		return LoadState{Data: st}, nil
	case TypeAdd:
		var d wireAdd
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("decode %s data: %w", w.Type, err)
		}
		if d.TodoItem == nil {
			return nil, fmt.Errorf("decode %s data: missing todoItem", w.Type)
		}
		return Add{Item: *d.TodoItem}, nil
	case TypeDelete, TypeToggleDone:
		var d wireID
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("decode %s data: %w", w.Type, err)
		}
		if strings.TrimSpace(d.ID) == "" {
			return nil, fmt.Errorf("decode %s data: missing id", w.Type)
		}
		if w.Type == TypeDelete {
			return Delete{ID: d.ID}, nil
		}
		return ToggleDone{ID: d.ID}, nil
	case TypeSaveDrop:
		var d wireSaveDrop
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("decode %s data: %w", w.Type, err)
		}
		a := SaveDrop{SortedItems: d.SortedItems}
		if d.DragResult != nil {
			a.DragResult = *d.DragResult
		} else {
			// No drag result behaves like a cancelled drag.
			a.DragResult = model.DragResult{Reason: model.DropReasonCancel}
		}
		return a, nil
	default:
		return nil, UnknownActionError{Type: string(w.Type)}
	}
}

// EncodeAction renders a in its wire form.
func EncodeAction(a Action) ([]byte, error) {
	var data any
	switch a := a.(type) {
	case LoadState:
		st := a.Data.Clone()
		data = st
	case Add:
		item := a.Item
		data = wireAdd{TodoItem: &item}
	case Delete:
		data = wireID{ID: a.ID}
	case ToggleDone:
		data = wireID{ID: a.ID}
	case SaveDrop:
		res := a.DragResult
		data = wireSaveDrop{SortedItems: model.CloneItems(a.SortedItems), DragResult: &res}
	case nil:
		return nil, UnknownActionError{Type: "<nil>"}
	default:
		return nil, UnknownActionError{Type: fmt.Sprintf("%T", a)}
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wireAction{Type: a.Type(), Data: raw})
}
