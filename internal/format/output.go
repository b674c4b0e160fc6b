package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"todo-cli/internal/model"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Write writes output in the requested format.
//
// Supported formats:
// - json (default)
// - yaml
// - text (human-oriented; items and item lists only, other values fall back to yaml)
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "yaml", "yml":
		return WriteYAML(w, v)
	case "text":
		return WriteText(w, v)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON output for CLI commands.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WriteYAML writes v as YAML using its JSON field names.
func WriteYAML(w io.Writer, v any) error {
	// Round-trip through JSON so json tags drive key names.
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(x); err != nil {
		return err
	}
	return enc.Close()
}

// WriteText prints one line per item: "[x] title  id". Done items are dimmed
// when the writer is a color terminal (fatih/color decides).
func WriteText(w io.Writer, v any) error {
	switch t := unwrapData(v).(type) {
	case model.Item:
		return writeTextItems(w, []model.Item{t})
	case []model.Item:
		return writeTextItems(w, t)
	case model.State:
		return writeTextItems(w, t.TodoItems)
	default:
		return WriteYAML(w, v)
	}
}

func unwrapData(v any) any {
	if m, ok := v.(map[string]any); ok {
		if d, ok := m["data"]; ok {
			return d
		}
	}
	return v
}

var (
	doneStyle  = color.New(color.Faint, color.CrossedOut)
	idStyle    = color.New(color.FgHiBlack)
	checkStyle = color.New(color.FgGreen)
)

func writeTextItems(w io.Writer, items []model.Item) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "(no items)")
		return err
	}
	for i, it := range items {
		box := "[ ]"
		title := it.Title
		if it.Done {
			box = checkStyle.Sprint("[x]")
			title = doneStyle.Sprint(title)
		}
		if _, err := fmt.Fprintf(w, "%2d %s %s  %s\n", i, box, title, idStyle.Sprint(it.ID)); err != nil {
			return err
		}
		if d := strings.TrimLeft(strings.TrimRight(it.Details, " \t\r\n"), "\r\n"); d != "" {
			for _, line := range strings.Split(d, "\n") {
				if _, err := fmt.Fprintf(w, "       %s\n", line); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
