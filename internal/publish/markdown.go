package publish

import (
	"bytes"
	"fmt"
	"strings"

	"todo-cli/internal/model"
	"todo-cli/internal/mutate"
)

type RenderOptions struct {
	// IncludeDone keeps completed items in the list page.
	IncludeDone bool
	// Title heads the list page; defaults to "Todo".
	Title string
}

// RenderListMarkdown renders items as a Markdown task list in display order.
func RenderListMarkdown(items []model.Item, opt RenderOptions) string {
	title := strings.TrimSpace(opt.Title)
	if title == "" {
		title = "Todo"
	}

	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	writeLn("# " + title)
	writeLn("")

	n := 0
	for _, it := range mutate.SortForDisplay(items) {
		if it.Done && !opt.IncludeDone {
			continue
		}
		n++
		box := "[ ]"
		if it.Done {
			box = "[x]"
		}
		writeLn(fmt.Sprintf("- %s %s", box, escapeInline(it.Title)))
		if d := strings.TrimLeft(strings.TrimRight(it.Details, " \t\r\n"), "\r\n"); d != "" {
			for _, line := range strings.Split(d, "\n") {
				writeLn("  " + strings.TrimRight(line, " \t"))
			}
		}
	}
	if n == 0 {
		writeLn("_Nothing to do._")
	}
	return buf.String()
}

// RenderItemMarkdown renders a single item page.
func RenderItemMarkdown(it model.Item) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	writeLn("# " + escapeInline(it.Title))
	writeLn("")
	writeLn("- ID: " + it.ID)
	if it.Done {
		writeLn("- Status: done")
	} else {
		writeLn("- Status: open")
	}
	if d := strings.TrimLeft(strings.TrimRight(it.Details, " \t\r\n"), "\r\n"); d != "" {
		writeLn("")
		writeLn("## Details")
		writeLn("")
		writeLn(d)
	}
	return buf.String()
}

// escapeInline keeps a title on one line and stops it from starting a
// heading or list of its own.
func escapeInline(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if strings.HasPrefix(s, "#") || strings.HasPrefix(s, "- ") || strings.HasPrefix(s, "* ") {
		s = `\` + s
	}
	return s
}
