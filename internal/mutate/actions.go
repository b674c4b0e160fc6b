package mutate

import "todo-cli/internal/model"

type ActionType string

const (
	TypeLoadState  ActionType = "loadState"
	TypeAdd        ActionType = "add"
	TypeDelete     ActionType = "delete"
	TypeToggleDone ActionType = "toggleDone"
	TypeSaveDrop   ActionType = "saveDrop"
)

// Action is an intent to transform state. The set is closed: only the types
// declared in this file implement it.
type Action interface {
	Type() ActionType
	isAction()
}

// LoadState replaces the whole state with Data. Used once at startup after the
// persisted blob decoded successfully.
type LoadState struct {
	Data model.State
}

// Add prepends a new item built from Item.
type Add struct {
	Item model.ItemNew
}

// Delete removes the item with ID.
type Delete struct {
	ID string
}

// ToggleDone flips the done flag of the item with ID.
type ToggleDone struct {
	ID string
}

// SaveDrop stores the result of a reorder gesture made on SortedItems
// (the displayed order at the time of the gesture).
type SaveDrop struct {
	SortedItems []model.Item
	DragResult  model.DragResult
}

func (LoadState) Type() ActionType  { return TypeLoadState }
func (Add) Type() ActionType        { return TypeAdd }
func (Delete) Type() ActionType     { return TypeDelete }
func (ToggleDone) Type() ActionType { return TypeToggleDone }
func (SaveDrop) Type() ActionType   { return TypeSaveDrop }

func (LoadState) isAction()  {}
func (Add) isAction()        {}
func (Delete) isAction()     {}
func (ToggleDone) isAction() {}
func (SaveDrop) isAction()   {}

// MoveItem builds a SaveDrop for moving the displayed item at from to to.
func MoveItem(displayed []model.Item, from, to int) SaveDrop {
	res := model.DragResult{
		Source:      model.DraggableLocation{Index: from},
		Destination: &model.DraggableLocation{Index: to},
		Reason:      model.DropReasonDrop,
	}
	if from >= 0 && from < len(displayed) {
		res.DraggableID = displayed[from].ID
	}
	return SaveDrop{SortedItems: model.CloneItems(displayed), DragResult: res}
}

// CancelDrag builds a SaveDrop for a gesture that ended without a destination.
func CancelDrag(displayed []model.Item, from int) SaveDrop {
	res := model.DragResult{
		Source: model.DraggableLocation{Index: from},
		Reason: model.DropReasonCancel,
	}
	if from >= 0 && from < len(displayed) {
		res.DraggableID = displayed[from].ID
	}
	return SaveDrop{SortedItems: model.CloneItems(displayed), DragResult: res}
}
