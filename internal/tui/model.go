// Package tui renders the board in the terminal and maps keys and mouse
// gestures onto store operations.
package tui

import (
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/listboard/internal/board"
	"github.com/idilsaglam/listboard/internal/config"
	"github.com/idilsaglam/listboard/internal/dnd"
	"github.com/idilsaglam/listboard/internal/model"
	"github.com/idilsaglam/listboard/internal/ui"
)

// Options configure a board model.
type Options struct {
	Theme       ui.Theme
	Keys        config.KeyConfig
	ColumnWidth int
	Logger      *log.Logger
}

// Model is the bubbletea model for the board. It owns the store and the
// drag controller; everything else is derived per frame.
type Model struct {
	store *board.Store
	drag  dnd.Controller
	keys  keyMap
	help  help.Model
	theme ui.Theme
	log   *log.Logger

	colWidth int
	width    int
	height   int
	scroll   int // board lines hidden above the viewport

	selGroup int
	selItem  int

	input  textinput.Model // new item text, mirrored into the store
	editor textinput.Model // inline edit of the selected item

	status    string
	statusErr bool
	showHelp  bool
}

// New builds a board model over store.
func New(store *board.Store, opt Options) Model {
	if opt.ColumnWidth <= 0 {
		opt.ColumnWidth = config.Default().Board.ColumnWidth
	}
	if opt.Logger == nil {
		opt.Logger = log.New(io.Discard)
	}
	if opt.Theme.Name == "" {
		opt.Theme = ui.ThemeNamed("classic")
	}
	keys := newKeyMap()
	keys.applyConfig(opt.Keys)

	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "Add new item"
	in.CharLimit = 200
	in.Width = 30

	ed := textinput.New()
	ed.Prompt = ""
	ed.CharLimit = 200
	ed.Width = opt.ColumnWidth - tileChromeW - 1

	return Model{
		store:    store,
		keys:     keys,
		help:     help.New(),
		theme:    opt.Theme,
		log:      opt.Logger,
		colWidth: opt.ColumnWidth,
		width:    80,
		height:   24,
		input:    in,
		editor:   ed,
	}
}

// Run starts the board on the terminal and blocks until the user quits.
func Run(store *board.Store, opt Options) error {
	p := tea.NewProgram(New(store, opt), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.ensureVisible()
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		switch {
		case m.input.Focused():
			return m.handleInputKey(msg)
		case m.editing():
			return m.handleEditKey(msg)
		case m.drag.Active():
			return m.handleDragKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) editing() bool {
	_, ok := m.store.Editing()
	return ok
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.toggleHelp):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.left):
		m.selectGroup(m.selGroup - 1)
	case key.Matches(msg, m.keys.right):
		m.selectGroup(m.selGroup + 1)
	case key.Matches(msg, m.keys.up):
		m.selectItem(m.selItem - 1)
	case key.Matches(msg, m.keys.down):
		m.selectItem(m.selItem + 1)
	case key.Matches(msg, m.keys.grab):
		m.startDrag(model.Location{Group: m.selGroup, Index: m.selItem})
	case key.Matches(msg, m.keys.edit):
		return m.beginEdit(m.selGroup, m.selItem)
	case key.Matches(msg, m.keys.deleteItem):
		m.deleteItem(m.selGroup, m.selItem)
	case key.Matches(msg, m.keys.addGroup):
		m.addGroup()
	case key.Matches(msg, m.keys.addGenerated):
		m.addGenerated()
	case key.Matches(msg, m.keys.newItem):
		return m.focusInput()
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.submitPending()
		return m, nil
	case tea.KeyEsc:
		m.input.Blur()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.store.SetPending(m.input.Value())
	return m, cmd
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.commitEdit()
		return m, nil
	case tea.KeyEsc:
		m.store.CancelEdit()
		m.editor.Blur()
		m.setStatus("edit cancelled")
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if err := m.store.UpdateDraft(m.editor.Value()); err != nil {
		m.setError(err)
	}
	return m, cmd
}

func (m Model) handleDragKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sizes := m.groupSizes()
	switch {
	case key.Matches(msg, m.keys.left):
		m.drag.Nudge(-1, 0, sizes)
	case key.Matches(msg, m.keys.right):
		m.drag.Nudge(1, 0, sizes)
	case key.Matches(msg, m.keys.up):
		m.drag.Nudge(0, -1, sizes)
	case key.Matches(msg, m.keys.down):
		m.drag.Nudge(0, 1, sizes)
	case key.Matches(msg, m.keys.grab), key.Matches(msg, m.keys.save):
		id := m.drag.ItemID()
		m.finishDrag(id, m.drag.Drop())
		return m, nil
	case key.Matches(msg, m.keys.cancel):
		id := m.drag.ItemID()
		m.finishDrag(id, m.drag.Cancel())
		return m, nil
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}
	if over, ok := m.drag.Over(); ok {
		m.ensureSlotVisible(over.Index)
	}
	return m, nil
}

// Store operations. Each one logs, updates the status line and re-clamps
// the selection against the new board.

func (m *Model) addGroup() {
	g := m.store.AddGroup()
	m.log.Debug("group added", "group", g.ID)
	m.selectGroup(len(m.store.Board().Groups) - 1)
	m.setStatus("added an empty group")
}

func (m *Model) addGenerated() {
	g := m.store.AddGeneratedGroup()
	m.log.Debug("generated group added", "group", g.ID, "item", g.Items[0].ID)
	m.selectGroup(len(m.store.Board().Groups) - 1)
	m.setStatus("added " + g.Items[0].Content)
}

func (m *Model) submitPending() {
	m.store.SetPending(m.input.Value())
	it := m.store.SubmitPending()
	m.input.SetValue("")
	m.log.Debug("item added", "item", it.ID, "content", it.Content)
	m.selGroup = 0
	m.selectItem(len(m.store.Board().Groups[0].Items) - 1)
	m.setStatus("added to group 1")
}

func (m Model) beginEdit(groupIndex, itemIndex int) (tea.Model, tea.Cmd) {
	if err := m.store.BeginEdit(groupIndex, itemIndex); err != nil {
		m.setError(err)
		return m, nil
	}
	sess, _ := m.store.Editing()
	m.selGroup, m.selItem = groupIndex, itemIndex
	m.input.Blur()
	m.editor.SetValue(sess.Draft)
	m.editor.CursorEnd()
	m.log.Debug("edit started", "item", sess.ItemID)
	m.setStatus("editing")
	cmd := m.editor.Focus()
	return m, cmd
}

// focusInput moves focus to the new item input, closing any open edit
// so only one field takes keys.
func (m Model) focusInput() (tea.Model, tea.Cmd) {
	if m.editing() {
		m.store.CancelEdit()
		m.editor.Blur()
		m.log.Debug("edit cancelled for new item input")
	}
	cmd := m.input.Focus()
	return m, cmd
}

func (m *Model) commitEdit() {
	sess, _ := m.store.Editing()
	m.editor.Blur()
	if m.store.CommitEdit() {
		m.log.Debug("edit saved", "item", sess.ItemID)
		m.setStatus("saved")
		return
	}
	m.log.Debug("edit dropped", "item", sess.ItemID)
	m.setStatus("item no longer exists; edit dropped")
}

func (m *Model) deleteItem(groupIndex, itemIndex int) {
	it, err := m.store.DeleteItem(groupIndex, itemIndex)
	if err != nil {
		m.setError(err)
		return
	}
	m.log.Debug("item deleted", "item", it.ID)
	m.syncEditor()
	m.clampSelection()
	m.setStatus("deleted " + it.Content)
}

func (m *Model) startDrag(src model.Location) {
	it, ok := m.store.Board().At(src)
	if !ok {
		return
	}
	m.drag.Start(src, it.ID)
	m.log.Debug("drag started", "item", it.ID, "source", src)
	m.setStatus("dragging " + it.Content)
}

func (m *Model) finishDrag(itemID string, r model.DragResult) {
	if r.Cancelled() {
		m.log.Debug("drag cancelled", "source", r.Source)
		m.setStatus("drag cancelled")
		return
	}
	it, ok := m.store.Board().At(r.Source)
	if !ok || it.ID != itemID {
		// The board changed under the drag; pick the item up where it is now.
		loc, found := m.store.Board().Find(itemID)
		if !found {
			m.setStatus("dragged item no longer exists")
			return
		}
		r.Source = loc
		it, _ = m.store.Board().At(loc)
	}
	if err := m.store.ApplyDrag(r); err != nil {
		m.setError(err)
		return
	}
	m.log.Debug("drag applied", "item", it.ID, "source", r.Source, "destination", *r.Destination)
	// Follow the dropped item; its group may have shifted left after pruning.
	if loc, ok := m.store.Board().Find(it.ID); ok {
		m.selGroup, m.selItem = loc.Group, loc.Index
	}
	m.clampSelection()
	m.ensureVisible()
	m.setStatus("moved " + it.Content)
}

// syncEditor drops editor focus once the store has closed the session.
func (m *Model) syncEditor() {
	if !m.editing() {
		m.editor.Blur()
	}
}

func (m Model) groupSizes() []int {
	groups := m.store.Board().Groups
	sizes := make([]int, len(groups))
	for i, g := range groups {
		sizes[i] = len(g.Items)
	}
	return sizes
}

func (m *Model) selectGroup(g int) {
	m.selGroup = g
	m.clampSelection()
	m.ensureVisible()
}

func (m *Model) selectItem(i int) {
	m.selItem = i
	m.clampSelection()
	m.ensureVisible()
}

func (m *Model) clampSelection() {
	groups := m.store.Board().Groups
	if len(groups) == 0 {
		m.selGroup, m.selItem = 0, 0
		return
	}
	m.selGroup = max(0, min(m.selGroup, len(groups)-1))
	n := len(groups[m.selGroup].Items)
	m.selItem = max(0, min(m.selItem, n-1))
}

func (m *Model) setStatus(s string) {
	m.status, m.statusErr = s, false
}

func (m *Model) setError(err error) {
	m.status, m.statusErr = err.Error(), true
	if errors.Is(err, board.ErrOutOfRange) {
		m.log.Warn("rejected board operation", "err", err)
		return
	}
	m.log.Error("board operation failed", "err", err)
}
