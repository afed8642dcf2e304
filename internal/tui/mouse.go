package tui

import tea "github.com/charmbracelet/bubbletea"

// handleMouse maps pointer events to buttons, tile controls and drag
// gestures. A press on a tile picks it up; the drop happens on release.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollBy(-tileHeight)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollBy(tileHeight)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return m.handlePress(msg.X, msg.Y)
	case msg.Action == tea.MouseActionMotion && m.drag.Active():
		m.hover(msg.X, msg.Y)
	case msg.Action == tea.MouseActionRelease && m.drag.Active():
		m.hover(msg.X, msg.Y)
		id := m.drag.ItemID()
		m.finishDrag(id, m.drag.Drop())
	}
	return m, nil
}

// handlePress ignores presses while a drag is in progress; the drag
// source is a board position and must not shift before the drop.
func (m Model) handlePress(x, y int) (tea.Model, tea.Cmd) {
	if m.drag.Active() {
		return m, nil
	}
	switch {
	case y == titleRow:
		for _, b := range m.headerButtons() {
			if b.hit(x) {
				m.press(b.action)
			}
		}
		return m, nil
	case y == inputRow:
		if b := m.addButton(); b.hit(x) {
			m.press(b.action)
			return m, nil
		}
		if x < m.addButton().x0 {
			return m.focusInput()
		}
		return m, nil
	case y < boardTop:
		return m, nil
	}

	m.input.Blur()
	l := m.layout()
	loc, ok := l.Tile(x, y, m.groupSizes())
	if !ok {
		return m, nil
	}
	row := (y - l.Top - l.HeaderRows) % l.TileHeight
	col := x - loc.Group*(l.ColumnW+l.ColumnGap) - 2 // column and tile borders
	it, _ := m.store.Board().At(loc)

	if row == tileControlsRow {
		if m.store.Mode(it.ID).Editing {
			if col >= 0 && col < len(saveLabel) {
				m.commitEdit()
				return m, nil
			}
		} else {
			switch {
			case col >= 0 && col < len(editLabel):
				return m.beginEdit(loc.Group, loc.Index)
			case col > len(editLabel) && col <= len(editLabel)+len(deleteLabel):
				m.deleteItem(loc.Group, loc.Index)
				return m, nil
			}
		}
	}

	m.selGroup, m.selItem = loc.Group, loc.Index
	if !m.store.Mode(it.ID).Editing {
		m.startDrag(loc)
	}
	return m, nil
}

func (m *Model) press(a buttonAction) {
	switch a {
	case buttonAddGroup:
		m.addGroup()
	case buttonAddGenerated:
		m.addGenerated()
	case buttonAdd:
		m.submitPending()
	}
}

// hover points the drag at the slot under (x, y), or at nothing when the
// pointer is outside every column.
func (m *Model) hover(x, y int) {
	if y < boardTop {
		m.drag.Leave()
		return
	}
	slot, ok := m.layout().Slot(x, y, m.groupSizes(), m.drag.Source())
	if !ok {
		m.drag.Leave()
		return
	}
	m.drag.Hover(slot)
}
