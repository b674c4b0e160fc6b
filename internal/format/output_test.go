package format

import (
	"bytes"
	"testing"

	"todo-cli/internal/model"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Tests compare plain text.
	color.NoColor = true
}

var sampleItems = []model.Item{
	{ID: "a", Title: "Buy milk"},
	{ID: "b", Title: "Taxes", Details: "federal\nstate", Done: true},
}

func TestWrite_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, map[string]any{"data": sampleItems[:1]}, "json", false))
	assert.Equal(t, `{"data":[{"id":"a","title":"Buy milk","done":false}]}`+"\n", buf.String())
}

func TestWrite_JSONPretty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, map[string]any{"data": 1}, "", true))
	assert.Equal(t, "{\n  \"data\": 1\n}\n", buf.String())
}

func TestWrite_YAMLUsesJSONNames(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, map[string]any{"data": model.State{TodoItems: sampleItems[:1]}}, "yaml", false))
	out := buf.String()
	assert.Contains(t, out, "todoItems:")
	assert.Contains(t, out, "id: a")
	assert.Contains(t, out, "title: Buy milk")
	assert.Contains(t, out, "done: false")
	assert.NotContains(t, out, "TodoItems")
}

func TestWrite_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, map[string]any{"data": sampleItems}, "text", false))
	want := " 0 [ ] Buy milk  a\n" +
		" 1 [x] Taxes  b\n" +
		"       federal\n" +
		"       state\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_TextEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, []model.Item{}))
	assert.Equal(t, "(no items)\n", buf.String())
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	assert.Error(t, Write(&bytes.Buffer{}, nil, "edn", false))
}
