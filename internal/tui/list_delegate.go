package tui

import (
	"fmt"
	"io"
	"strings"

	"todo-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// itemRow is one to-do in the list. picked marks the item being moved.
type itemRow struct {
	item   model.Item
	picked bool
}

func (r itemRow) FilterValue() string { return r.item.Title }

func (r itemRow) Title() string {
	box := "[ ]"
	if r.item.Done {
		box = "[x]"
	}
	return box + " " + r.item.Title
}

func toRows(items []model.Item, pickedID string) []list.Item {
	rows := make([]list.Item, 0, len(items))
	for _, it := range items {
		rows = append(rows, itemRow{item: it, picked: pickedID != "" && it.ID == pickedID})
	}
	return rows
}

type itemDelegate struct {
	normal   lipgloss.Style
	done     lipgloss.Style
	selected lipgloss.Style
	picked   lipgloss.Style
}

func newItemDelegate() itemDelegate {
	return itemDelegate{
		normal: lipgloss.NewStyle().Foreground(colorSurfaceFg),
		done:   styleMuted().Strikethrough(true),
		selected: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
		picked: lipgloss.NewStyle().
			Foreground(colorAccentFg).
			Background(colorAccent).
			Bold(true),
	}
}

func (d itemDelegate) Height() int  { return 1 }
func (d itemDelegate) Spacing() int { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		return
	}

	row, ok := item.(itemRow)
	if !ok {
		fmt.Fprint(w, xansi.Cut(fmt.Sprint(item), 0, contentW))
		return
	}

	style := d.normal
	switch {
	case row.picked:
		style = d.picked
	case index == m.Index():
		style = d.selected
	case row.item.Done:
		style = d.done
	}

	// Pad before styling so the selection bar spans the full width.
	line := " " + row.Title()
	lineW := xansi.StringWidth(line)
	if lineW < contentW {
		line += strings.Repeat(" ", contentW-lineW)
	} else if lineW > contentW {
		line = xansi.Cut(line, 0, contentW)
	}

	fmt.Fprint(w, style.Render(line))
}

func newList(items []list.Item) list.Model {
	l := list.New(items, newItemDelegate(), 0, 0)
	l.Title = "Todo"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")
	// q, esc and ctrl+c are handled by the app.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	// d and u page by default; d deletes here.
	l.KeyMap.NextPage.SetKeys("right", "l", "pgdown", "f")
	l.KeyMap.PrevPage.SetKeys("left", "h", "pgup", "b")
	return l
}
