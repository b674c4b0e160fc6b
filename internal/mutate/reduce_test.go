package mutate

import (
	"errors"
	"fmt"
	"testing"

	"todo-cli/internal/model"
	"todo-cli/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seqIDs() func() (string, error) {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("id-%d", n), nil
	}
}

func sampleState() model.State {
	return model.State{TodoItems: []model.Item{
		{ID: "a", Title: "A"},
		{ID: "b", Title: "B", Details: "bee", Done: true},
		{ID: "c", Title: "C"},
	}}
}

func ids(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

type bogusAction struct{}

func (bogusAction) Type() ActionType { return "bogus" }
func (bogusAction) isAction()        {}

func TestReduce_AddPrependsFreshItem(t *testing.T) {
	t.Parallel()

	r := Reducer{NewID: seqIDs()}
	st := sampleState()

	got, err := r.Reduce(st, Add{Item: model.ItemNew{Title: "New", Details: "more"}})
	require.NoError(t, err)
	require.Len(t, got.TodoItems, 4)

	first := got.TodoItems[0]
	assert.Equal(t, model.Item{ID: "id-1", Title: "New", Details: "more", Done: false}, first)
	for _, it := range st.TodoItems {
		assert.NotEqual(t, it.ID, first.ID)
	}
	assert.Equal(t, st.TodoItems, got.TodoItems[1:])
}

func TestReduce_AddGeneratesDistinctIDs(t *testing.T) {
	t.Parallel()

	r := DefaultReducer()
	st := model.State{TodoItems: []model.Item{}}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		var err error
		st, err = r.Reduce(st, Add{Item: model.ItemNew{Title: "x"}})
		require.NoError(t, err)
		id := st.TodoItems[0].ID
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestReduce_AddRequiresTitle(t *testing.T) {
	t.Parallel()

	r := Reducer{NewID: seqIDs()}
	_, err := r.Reduce(sampleState(), Add{Item: model.ItemNew{Title: "   "}})
	assert.ErrorIs(t, err, ErrTitleRequired)
}

func TestReduce_AddPropagatesIDFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("no entropy")
	r := Reducer{NewID: func() (string, error) { return "", boom }}
	_, err := r.Reduce(sampleState(), Add{Item: model.ItemNew{Title: "x"}})
	assert.ErrorIs(t, err, boom)
}

func TestReduce_Delete(t *testing.T) {
	t.Parallel()

	r := Reducer{NewID: seqIDs()}
	st := sampleState()

	got, err := r.Reduce(st, Delete{ID: "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, ids(got.TodoItems))
	assert.Len(t, st.TodoItems, 3, "input must not be modified")

	same, err := r.Reduce(st, Delete{ID: "missing"})
	require.NoError(t, err)
	assert.Equal(t, st, same)
}

func TestReduce_ToggleDone(t *testing.T) {
	t.Parallel()

	r := Reducer{NewID: seqIDs()}
	st := sampleState()

	got, err := r.Reduce(st, ToggleDone{ID: "a"})
	require.NoError(t, err)
	want := sampleState()
	want.TodoItems[0].Done = true
	assert.Equal(t, want, got)
	assert.False(t, st.TodoItems[0].Done, "input must not be modified")

	back, err := r.Reduce(got, ToggleDone{ID: "a"})
	require.NoError(t, err)
	assert.Equal(t, st, back)
}

func TestReduce_ToggleDoneMissingIDIsNoop(t *testing.T) {
	t.Parallel()

	r := Reducer{NewID: seqIDs()}
	st := sampleState()

	got, err := r.Reduce(st, ToggleDone{ID: "missing"})
	require.NoError(t, err)
	assert.Equal(t, st, got)

	empty, err := r.Reduce(model.State{TodoItems: []model.Item{}}, ToggleDone{ID: "missing"})
	require.NoError(t, err)
	assert.Empty(t, empty.TodoItems)
}

func TestReduce_SaveDrop(t *testing.T) {
	t.Parallel()

	r := Reducer{NewID: seqIDs()}
	st := sampleState()
	sorted := SortForDisplay(st.TodoItems)

	tests := []struct {
		name string
		from int
		to   int
		want []string
	}{
		{name: "first to last", from: 0, to: 2, want: []string{"c", "b", "a"}},
		{name: "last to first", from: 2, to: 0, want: []string{"b", "a", "c"}},
		{name: "same position", from: 1, to: 1, want: []string{"a", "c", "b"}},
		{name: "destination past end clamps", from: 0, to: 10, want: []string{"c", "b", "a"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := r.Reduce(st, MoveItem(sorted, tt.from, tt.to))
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got.TodoItems))
		})
	}
}

func TestReduce_SaveDropWithoutDestinationIsNoop(t *testing.T) {
	t.Parallel()

	r := Reducer{NewID: seqIDs()}
	st := sampleState()

	got, err := r.Reduce(st, CancelDrag(SortForDisplay(st.TodoItems), 0))
	require.NoError(t, err)
	assert.Equal(t, st, got)
}

func TestReduce_SaveDropSourceOutOfRangeIsNoop(t *testing.T) {
	t.Parallel()

	r := Reducer{NewID: seqIDs()}
	st := sampleState()

	got, err := r.Reduce(st, MoveItem(SortForDisplay(st.TodoItems), 7, 0))
	require.NoError(t, err)
	assert.Equal(t, st, got)
}

func TestReduce_SaveDropDoesNotModifySortedItems(t *testing.T) {
	t.Parallel()

	r := Reducer{NewID: seqIDs()}
	sorted := SortForDisplay(sampleState().TodoItems)
	a := SaveDrop{
		SortedItems: sorted,
		DragResult: model.DragResult{
			Source:      model.DraggableLocation{Index: 0},
			Destination: &model.DraggableLocation{Index: 2},
		},
	}
	_, err := r.Reduce(sampleState(), a)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b"}, ids(sorted))
}

func TestReduce_LoadStateReplacesVerbatim(t *testing.T) {
	t.Parallel()

	r := Reducer{NewID: seqIDs()}
	data := model.State{TodoItems: []model.Item{{ID: "x", Title: "X", Done: true}}}

	got, err := r.Reduce(sampleState(), LoadState{Data: data})
	require.NoError(t, err)
	assert.Equal(t, data, got)

	got.TodoItems[0].Title = "changed"
	assert.Equal(t, "X", data.TodoItems[0].Title, "result must not alias the payload")
}

func TestReduce_UnknownAction(t *testing.T) {
	t.Parallel()

	r := Reducer{NewID: seqIDs()}

	_, err := r.Reduce(sampleState(), nil)
	require.Error(t, err)
	assert.True(t, IsUnknownAction(err))

	_, err = r.Reduce(sampleState(), bogusAction{})
	var ue UnknownActionError
	require.ErrorAs(t, err, &ue)
	assert.Contains(t, ue.Type, "bogusAction")
}

func TestScenario_AddToggleDelete(t *testing.T) {
	t.Parallel()

	r := DefaultReducer()
	st := model.State{TodoItems: []model.Item{}}

	st, err := r.Reduce(st, Add{Item: model.ItemNew{Title: "Buy milk"}})
	require.NoError(t, err)
	require.Len(t, st.TodoItems, 1)
	assert.Equal(t, "Buy milk", st.TodoItems[0].Title)
	assert.False(t, st.TodoItems[0].Done)
	id := st.TodoItems[0].ID

	st, err = r.Reduce(st, ToggleDone{ID: id})
	require.NoError(t, err)
	assert.True(t, st.TodoItems[0].Done)

	st, err = r.Reduce(st, Delete{ID: id})
	require.NoError(t, err)
	assert.Empty(t, st.TodoItems)
}

func TestScenario_DragAcrossDoneBoundary(t *testing.T) {
	t.Parallel()

	r := Reducer{NewID: seqIDs()}
	st := sampleState()

	sorted := SortForDisplay(st.TodoItems)
	require.Equal(t, []string{"a", "c", "b"}, ids(sorted))

	st, err := r.Reduce(st, MoveItem(sorted, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, ids(st.TodoItems))
	assert.Equal(t, []string{"c", "a", "b"}, ids(SortForDisplay(st.TodoItems)))
}

func TestAdd_InvalidUTF8IsStoredAsReloaded(t *testing.T) {
	t.Parallel()
	r := Reducer{NewID: seqIDs()}

	got, err := r.Reduce(model.State{}, Add{Item: model.ItemNew{Title: "caf\xe9", Details: "bad \xff byte"}})
	require.NoError(t, err)
	require.Equal(t, "caf\uFFFD", got.TodoItems[0].Title)
	require.Equal(t, "bad \uFFFD byte", got.TodoItems[0].Details)

	b, err := store.EncodeState(got)
	require.NoError(t, err)
	reloaded, err := store.DecodeState(b)
	require.NoError(t, err)
	require.Equal(t, got, reloaded)
}

func TestAdd_KeepsDetailsIndentation(t *testing.T) {
	t.Parallel()
	r := Reducer{NewID: seqIDs()}

	got, err := r.Reduce(model.State{}, Add{Item: model.ItemNew{
		Title:   "  Snippet  ",
		Details: "    code block\n    second line\n\n",
	}})
	require.NoError(t, err)
	assert.Equal(t, "Snippet", got.TodoItems[0].Title)
	assert.Equal(t, "    code block\n    second line", got.TodoItems[0].Details)

	got, err = r.Reduce(model.State{}, Add{Item: model.ItemNew{Title: "T", Details: " \n\t "}})
	require.NoError(t, err)
	assert.Empty(t, got.TodoItems[0].Details)
}
