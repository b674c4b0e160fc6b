package tui

import (
	"context"
	"fmt"
	"strings"

	"todo-cli/internal/logging"
	"todo-cli/internal/model"
	"todo-cli/internal/mutate"
	"todo-cli/internal/session"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeMove
)

type appModel struct {
	ctx     context.Context
	session *session.Session
	logger  *log.Logger

	width  int
	height int

	mode mode
	keys keyMap
	help help.Model
	list list.Model

	titleInput   textinput.Model
	detailsInput textinput.Model

	// Move mode: the display order when the item was picked up, where it
	// came from and where it would land.
	dragItems []model.Item
	dragFrom  int
	dragTo    int

	errMsg string
}

func newAppModel(ctx context.Context, s *session.Session, logger *log.Logger) appModel {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = logging.Nop()
	}
	m := appModel{
		ctx:          ctx,
		session:      s,
		logger:       logger,
		mode:         modeList,
		keys:         defaultKeyMap(),
		help:         help.New(),
		list:         newList(nil),
		titleInput:   newInput("What needs doing?"),
		detailsInput: newInput("Details (Markdown, optional)"),
	}
	m.refresh("")
	return m
}

func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 0 // unlimited, same as the CLI
	in.Prompt = "> "
	return in
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		m.errMsg = ""
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeMove:
			return m.updateMove(msg)
		default:
			return m.updateList(msg)
		}
	}

	if m.mode == modeAdd {
		return m.updateInputs(msg)
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		if it, ok := m.selected(); ok {
			m.dispatch(mutate.ToggleDone{ID: it.ID})
			m.refresh("")
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if it, ok := m.selected(); ok {
			m.dispatch(mutate.Delete{ID: it.ID})
			m.refresh("")
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.titleInput.SetValue("")
		m.detailsInput.SetValue("")
		m.detailsInput.Blur()
		m.resize()
		cmd := m.titleInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.MoveDown):
		m.moveBy(1)
		return m, nil

	case key.Matches(msg, m.keys.MoveUp):
		m.moveBy(-1)
		return m, nil

	case key.Matches(msg, m.keys.PickUp):
		items := m.session.Sorted()
		if len(items) == 0 {
			return m, nil
		}
		m.dragItems = items
		m.dragFrom = m.list.Index()
		m.dragTo = m.dragFrom
		m.mode = modeMove
		m.showDragPreview()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeAddForm()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		var cmd tea.Cmd
		if m.titleInput.Focused() {
			m.titleInput.Blur()
			cmd = m.detailsInput.Focus()
		} else {
			m.detailsInput.Blur()
			cmd = m.titleInput.Focus()
		}
		return m, cmd

	case key.Matches(msg, m.keys.Submit):
		add := mutate.Add{Item: model.ItemNew{
			Title:   m.titleInput.Value(),
			Details: m.detailsInput.Value(),
		}}
		before := len(m.session.Items())
		m.dispatch(add)
		if len(m.session.Items()) == before {
			// Rejected (e.g. blank title); keep the form open with the error.
			return m, nil
		}
		m.closeAddForm()
		// Add prepends, so the new item is first in stored order.
		m.refresh(m.session.Items()[0].ID)
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m appModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	cmds = append(cmds, cmd)
	m.detailsInput, cmd = m.detailsInput.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *appModel) closeAddForm() {
	m.mode = modeList
	m.titleInput.Blur()
	m.detailsInput.Blur()
	m.resize()
}

func (m appModel) updateMove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.TargetUp):
		if m.dragTo > 0 {
			m.dragTo--
			m.showDragPreview()
		}
	case key.Matches(msg, m.keys.TargetDown):
		if m.dragTo < len(m.dragItems)-1 {
			m.dragTo++
			m.showDragPreview()
		}
	case key.Matches(msg, m.keys.Drop):
		id := m.dragItems[m.dragFrom].ID
		m.dispatch(mutate.MoveItem(m.dragItems, m.dragFrom, m.dragTo))
		m.endDrag(id)
	case key.Matches(msg, m.keys.Cancel):
		id := m.dragItems[m.dragFrom].ID
		m.dispatch(mutate.CancelDrag(m.dragItems, m.dragFrom))
		m.endDrag(id)
	}
	return m, nil
}

// moveBy moves the selected item delta places in display order.
func (m *appModel) moveBy(delta int) {
	items := m.session.Sorted()
	from := m.list.Index()
	to := from + delta
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		return
	}
	id := items[from].ID
	m.dispatch(mutate.MoveItem(items, from, to))
	m.refresh(id)
}

func (m *appModel) showDragPreview() {
	preview := mutate.Reorder(m.dragItems, m.dragFrom, m.dragTo)
	m.list.SetItems(toRows(preview, m.dragItems[m.dragFrom].ID))
	m.list.Select(m.dragTo)
}

func (m *appModel) endDrag(id string) {
	m.mode = modeList
	m.dragItems = nil
	m.refresh(id)
}

// dispatch applies a to the session and surfaces failures in the footer.
func (m *appModel) dispatch(a mutate.Action) {
	if err := m.session.Dispatch(m.ctx, a); err != nil {
		m.errMsg = err.Error()
		m.logger.Warn("dispatch failed", "type", a.Type(), "err", err)
		return
	}
	m.logger.Debug("dispatched", "type", a.Type())
}

// refresh reloads rows in display order. The cursor follows selectID when
// given and otherwise keeps its position.
func (m *appModel) refresh(selectID string) {
	idx := m.list.Index()
	items := m.session.Sorted()
	m.list.SetItems(toRows(items, ""))
	if len(items) == 0 {
		return
	}
	if selectID != "" {
		if i := mutate.FindIndex(items, selectID); i >= 0 {
			idx = i
		}
	}
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx < 0 {
		idx = 0
	}
	m.list.Select(idx)
}

func (m appModel) selected() (model.Item, bool) {
	row, ok := m.list.SelectedItem().(itemRow)
	if !ok {
		return model.Item{}, false
	}
	return row.item, true
}

func (m *appModel) resize() {
	w, h := m.bodySize()
	m.list.SetSize(m.listWidth(w), h)
	m.help.Width = m.width
	m.titleInput.Width = max(10, m.width-4)
	m.detailsInput.Width = max(10, m.width-4)
}

// bodySize is the area between the header and the footer.
func (m appModel) bodySize() (int, int) {
	chrome := 4
	if m.mode == modeAdd {
		chrome += 4
	}
	h := m.height - chrome
	if h < 3 {
		h = 3
	}
	w := m.width
	if w < 20 {
		w = 20
	}
	return w, h
}

// listWidth splits the body: list on the left, details on the right, unless
// the terminal is too narrow for both.
func (m appModel) listWidth(bodyW int) int {
	if bodyW < 60 {
		return bodyW
	}
	return bodyW / 2
}

func (m appModel) View() string {
	var sections []string
	sections = append(sections, m.viewHeader())

	bodyW, bodyH := m.bodySize()
	listW := m.listWidth(bodyW)
	body := m.list.View()
	if len(m.list.Items()) == 0 {
		body = lipgloss.NewStyle().Width(listW).Height(bodyH).Render(styleMuted().Render(" Nothing to do. Press a to add an item."))
	}
	if listW < bodyW {
		detailW := bodyW - listW - 2
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.viewDetail(detailW, bodyH))
	}
	sections = append(sections, body)

	if m.mode == modeAdd {
		sections = append(sections, m.viewAddForm())
	}
	sections = append(sections, m.viewFooter())
	return strings.Join(sections, "\n")
}

func (m appModel) viewHeader() string {
	open, done := 0, 0
	for _, it := range m.session.Items() {
		if it.Done {
			done++
		} else {
			open++
		}
	}
	title := lipgloss.NewStyle().Bold(true).Render("Todo")
	counts := styleMuted().Render(fmt.Sprintf("  %d open  %d done", open, done))
	if m.mode == modeMove {
		counts += lipgloss.NewStyle().Foreground(colorAccent).Render("  moving")
	}
	return title + counts + "\n"
}

func (m appModel) viewDetail(width, height int) string {
	box := lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height)

	it, ok := m.selected()
	if !ok {
		return box.Render(styleMuted().Render("No item selected."))
	}

	status := "open"
	if it.Done {
		status = lipgloss.NewStyle().Foreground(colorDone).Render("done")
	}
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(it.Title),
		styleMuted().Render(it.ID) + "  " + status,
		"",
	}
	if md := renderMarkdown(it.Details, width); md != "" {
		lines = append(lines, md)
	} else {
		lines = append(lines, styleMuted().Render("No details."))
	}
	return box.Render(strings.Join(lines, "\n"))
}

func (m appModel) viewAddForm() string {
	label := lipgloss.NewStyle().Bold(true)
	return strings.Join([]string{
		"",
		label.Render("New item"),
		m.titleInput.View(),
		m.detailsInput.View(),
	}, "\n")
}

func (m appModel) viewFooter() string {
	if m.errMsg != "" {
		return "\n" + styleError().Render("error: "+m.errMsg)
	}
	return "\n" + m.help.View(m.keys.forMode(m.mode))
}
