package mutate

import "todo-cli/internal/model"

// SortForDisplay returns items with every done item moved after every
// not-done item. Relative order inside each group is kept. The input is not
// modified.
func SortForDisplay(items []model.Item) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if !it.Done {
			out = append(out, it)
		}
	}
	for _, it := range items {
		if it.Done {
			out = append(out, it)
		}
	}
	return out
}

// Reorder returns a copy of items with the element at from moved to to.
// to is clamped to the list bounds. An out-of-range from yields an unchanged copy.
func Reorder(items []model.Item, from, to int) []model.Item {
	out := model.CloneItems(items)
	if from < 0 || from >= len(out) {
		return out
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	if to < 0 {
		to = 0
	}
	if to > len(out) {
		to = len(out)
	}
	out = append(out, model.Item{})
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out
}

// FindIndex returns the position of the item with id, or -1.
func FindIndex(items []model.Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
