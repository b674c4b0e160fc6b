package model

// Item is a single to-do entry.
type Item struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Details string `json:"details,omitempty"`
	Done    bool   `json:"done"`
}

// ItemNew is the user-supplied part of an item; id and done are assigned on add.
type ItemNew struct {
	Title   string `json:"title"`
	Details string `json:"details,omitempty"`
}

// State is the ordered list of items and the unit of persistence.
// Order is the stored order; views may sort it for display.
type State struct {
	TodoItems []Item `json:"todoItems"`
}

// Clone returns a copy whose item slice does not alias s.
func (s State) Clone() State {
	return State{TodoItems: CloneItems(s.TodoItems)}
}

// FindItem returns the item with the given id.
func (s State) FindItem(id string) (Item, bool) {
	for _, it := range s.TodoItems {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// CloneItems copies items into a fresh non-nil slice.
func CloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// DraggableLocation is a position inside the displayed list.
type DraggableLocation struct {
	DroppableID string `json:"droppableId,omitempty"`
	Index       int    `json:"index"`
}

// DragResult describes a finished reorder gesture.
// Destination is nil when the gesture was cancelled (e.g. dropped outside the list).
type DragResult struct {
	DraggableID string             `json:"draggableId,omitempty"`
	Source      DraggableLocation  `json:"source"`
	Destination *DraggableLocation `json:"destination,omitempty"`
	Reason      string             `json:"reason,omitempty"`
}

const (
	DropReasonDrop   = "DROP"
	DropReasonCancel = "CANCEL"
)

// Moved reports whether the gesture ended on a destination.
func (r DragResult) Moved() bool { return r.Destination != nil }
