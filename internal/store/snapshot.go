package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"todo-cli/internal/model"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// stateSchema is the accepted shape of the persisted blob. Unknown fields are
// tolerated; the blob carries no version.
const stateSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["todoItems"],
  "properties": {
    "todoItems": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title"],
        "properties": {
          "id":      {"type": "string"},
          "title":   {"type": "string"},
          "details": {"type": "string"},
          "done":    {"type": "boolean"}
        }
      }
    }
  }
}`

var compileStateSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("todo-state.schema.json", stateSchema)
})

// EncodeState serializes the whole state. An empty list encodes as [].
func EncodeState(st model.State) ([]byte, error) {
	if st.TodoItems == nil {
		st.TodoItems = []model.Item{}
	}
	return json.Marshal(st)
}

// DecodeState parses a persisted blob. Anything that is not JSON of the
// expected shape is an error.
func DecodeState(b []byte) (model.State, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return model.State{}, fmt.Errorf("decode state: %w", err)
	}

	schema, err := compileStateSchema()
	if err != nil {
		return model.State{}, fmt.Errorf("compile state schema: %w", err)
	}
	if err := schema.Validate(raw); err != nil {
		return model.State{}, fmt.Errorf("invalid state: %w", err)
	}

	var st model.State
	if err := json.Unmarshal(b, &st); err != nil {
		return model.State{}, fmt.Errorf("decode state: %w", err)
	}
	if st.TodoItems == nil {
		st.TodoItems = []model.Item{}
	}
	return st, nil
}
