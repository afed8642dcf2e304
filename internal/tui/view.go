package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/listboard/internal/dnd"
	"github.com/idilsaglam/listboard/internal/model"
)

// Screen layout. Mouse hit-testing reads the same constants, so every
// tile has a fixed height and every column a fixed width.
const (
	titleRow         = 0
	inputRow         = 2
	statusRow        = 3
	boardTop         = 5
	columnGap        = 1
	columnHeaderRows = 2 // top border + title
	tileHeight       = 4 // border, content, controls, border
	tileChromeW      = 4 // column and tile borders on both sides
	tileControlsRow  = 2
	footerRows       = 2

	editLabel   = "[edit]"
	deleteLabel = "[delete]"
	saveLabel   = "[save]"
)

type buttonAction int

const (
	buttonAddGroup buttonAction = iota
	buttonAddGenerated
	buttonAdd
)

type button struct {
	label  string
	x0, x1 int
	action buttonAction
}

func (b button) hit(x int) bool { return x >= b.x0 && x < b.x1 }

func (m Model) title() string { return m.theme.Title.Render("ListBoard") }

// headerButtons lays out the buttons on the title row.
func (m Model) headerButtons() []button {
	x := lipgloss.Width(m.title()) + 2
	out := make([]button, 0, 2)
	for _, b := range []struct {
		label  string
		action buttonAction
	}{{"Add new group", buttonAddGroup}, {"Add new item", buttonAddGenerated}} {
		w := lipgloss.Width(m.theme.Button.Render(b.label))
		out = append(out, button{label: b.label, x0: x, x1: x + w, action: b.action})
		x += w + 1
	}
	return out
}

// addButton lays out the button following the new item input.
func (m Model) addButton() button {
	x := lipgloss.Width(m.input.View()) + 2
	return button{label: "Add", x0: x, x1: x + lipgloss.Width(m.theme.Button.Render("Add")), action: buttonAdd}
}

func (m Model) layout() dnd.Layout {
	return dnd.Layout{
		Top:        boardTop - m.scroll,
		ColumnGap:  columnGap,
		ColumnW:    m.colWidth,
		HeaderRows: columnHeaderRows,
		TileHeight: tileHeight,
	}
}

func (m Model) boardRows() int {
	return max(tileHeight, m.height-boardTop-footerRows)
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View() + "  " + m.theme.Button.Render("Add"))
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())
	sb.WriteString("\n\n")
	sb.WriteString(m.renderBoard())
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) renderHeader() string {
	parts := []string{m.title(), " "}
	for _, b := range m.headerButtons() {
		parts = append(parts, " ", m.theme.Button.Render(b.label))
	}
	groups, items := m.store.Stats()
	parts = append(parts, "   ", m.theme.Muted.Render(fmt.Sprintf("%d groups · %d items", groups, items)))
	return strings.Join(parts, "")
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return m.theme.Error.Render("✖ " + m.status)
	}
	return m.theme.Muted.Render(m.status)
}

func (m Model) renderBoard() string {
	groups := m.store.Board().Groups
	if len(groups) == 0 {
		return m.padRows(m.theme.Muted.Render("board is empty: press g to add a group or a to add an item"))
	}
	cols := make([]string, 0, len(groups)*2)
	for gi, g := range groups {
		if gi > 0 {
			cols = append(cols, strings.Repeat(" ", columnGap))
		}
		cols = append(cols, m.renderColumn(gi, g))
	}
	lines := strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, cols...), "\n")
	start := min(m.scroll, len(lines))
	end := min(start+m.boardRows(), len(lines))
	return m.padRows(strings.Join(lines[start:end], "\n"))
}

func (m Model) padRows(s string) string {
	if n := m.boardRows() - lipgloss.Height(s); n > 0 {
		s += strings.Repeat("\n", n)
	}
	return s
}

func (m Model) renderColumn(gi int, g model.Group) string {
	inner := m.colWidth - 2
	over := m.drag.IsDraggingOver(gi)
	title := fmt.Sprintf("Group %d · %d", gi+1, len(g.Items))
	if over {
		if loc, ok := m.drag.Over(); ok {
			title += fmt.Sprintf("  ↳ #%d", loc.Index+1)
		}
	}
	lines := []string{m.theme.Accent.Render(ansi.Truncate(title, inner, "…"))}
	for ii, it := range g.Items {
		lines = append(lines, m.renderTile(gi, ii, it))
	}
	if len(g.Items) == 0 {
		lines = append(lines, m.theme.Muted.Render("drop items here"))
	}
	return m.theme.ColumnStyle(m.colWidth, over).Render(strings.Join(lines, "\n"))
}

func (m Model) renderTile(gi, ii int, it model.Item) string {
	w := m.colWidth - tileChromeW
	selected := gi == m.selGroup && ii == m.selItem
	var body, controls string
	if mode := m.store.Mode(it.ID); mode.Editing {
		body = m.editor.View()
		controls = m.theme.Accent.Render(saveLabel)
	} else {
		body = ansi.Truncate(it.Content, w, "…")
		controls = m.theme.Muted.Render(editLabel + " " + deleteLabel)
	}
	return m.theme.TileStyle(m.colWidth-2, m.drag.IsDragging(it.ID), selected).Render(body + "\n" + controls)
}

// ensureVisible scrolls so the selected tile is on screen.
func (m *Model) ensureVisible() {
	m.ensureSlotVisible(m.selItem)
}

func (m *Model) ensureSlotVisible(index int) {
	top := columnHeaderRows + index*tileHeight
	if index == 0 {
		top = 0
	}
	bottom := columnHeaderRows + (index+1)*tileHeight
	rows := m.boardRows()
	if top < m.scroll {
		m.scroll = top
	}
	if bottom > m.scroll+rows {
		m.scroll = bottom - rows
	}
	m.scroll = max(0, m.scroll)
}

func (m *Model) scrollBy(delta int) {
	maxItems := 0
	for _, g := range m.store.Board().Groups {
		maxItems = max(maxItems, len(g.Items))
	}
	limit := max(0, columnHeaderRows+maxItems*tileHeight+1-m.boardRows())
	m.scroll = max(0, min(m.scroll+delta, limit))
}
