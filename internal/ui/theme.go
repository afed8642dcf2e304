package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the palette and box borders of the board.
// Drag feedback is expressed as style callbacks keyed on the flags the
// drag controller reports.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error lipgloss.Style
	Button                               lipgloss.Style

	Border                               lipgloss.Border
	ColumnBG, ColumnOverBG               lipgloss.TerminalColor
	TileBG, TileDraggingBG, TileSelectFG lipgloss.TerminalColor
	BorderFG, BorderOverFG, BorderDragFG lipgloss.TerminalColor
}

// ThemeNamed returns a built-in theme; unknown names fall back to classic.
func ThemeNamed(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:           "neon",
			Title:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:          lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:         lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:        lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:          lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Button:         lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("13")).Padding(0, 1),
			Border:         lipgloss.RoundedBorder(),
			ColumnBG:       lipgloss.NoColor{},
			ColumnOverBG:   lipgloss.Color("17"),
			TileBG:         lipgloss.NoColor{},
			TileDraggingBG: lipgloss.Color("22"),
			TileSelectFG:   lipgloss.Color("14"),
			BorderFG:       lipgloss.Color("8"),
			BorderOverFG:   lipgloss.Color("14"),
			BorderDragFG:   lipgloss.Color("10"),
		}
	case "mono":
		return Theme{
			Name:           "mono",
			Title:          lipgloss.NewStyle().Bold(true),
			Muted:          lipgloss.NewStyle(),
			Accent:         lipgloss.NewStyle().Underline(true),
			Success:        lipgloss.NewStyle(),
			Error:          lipgloss.NewStyle().Bold(true),
			Button:         lipgloss.NewStyle().Reverse(true).Padding(0, 1),
			Border:         lipgloss.NormalBorder(),
			ColumnBG:       lipgloss.NoColor{},
			ColumnOverBG:   lipgloss.NoColor{},
			TileBG:         lipgloss.NoColor{},
			TileDraggingBG: lipgloss.NoColor{},
			TileSelectFG:   lipgloss.NoColor{},
			BorderFG:       lipgloss.NoColor{},
			BorderOverFG:   lipgloss.NoColor{},
			BorderDragFG:   lipgloss.NoColor{},
		}
	default:
		return Theme{
			Name:           "classic",
			Title:          lipgloss.NewStyle().Bold(true),
			Muted:          lipgloss.NewStyle().Faint(true),
			Accent:         lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:        lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:          lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Button:         lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1),
			Border:         lipgloss.RoundedBorder(),
			ColumnBG:       lipgloss.NoColor{},
			ColumnOverBG:   lipgloss.Color("153"),
			TileBG:         lipgloss.NoColor{},
			TileDraggingBG: lipgloss.Color("120"),
			TileSelectFG:   lipgloss.Color("12"),
			BorderFG:       lipgloss.Color("8"),
			BorderOverFG:   lipgloss.Color("12"),
			BorderDragFG:   lipgloss.Color("42"),
		}
	}
}

// ColumnStyle styles a group column; isDraggingOver marks the drop target.
func (t Theme) ColumnStyle(width int, isDraggingOver bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderFG).
		Background(t.ColumnBG).
		Width(width - 2)
	if isDraggingOver {
		s = s.BorderForeground(t.BorderOverFG).Background(t.ColumnOverBG)
		if t.Name == "mono" {
			s = s.Border(lipgloss.DoubleBorder())
		}
	}
	return s
}

// TileStyle styles one item tile.
func (t Theme) TileStyle(width int, isDragging, selected bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderFG).
		Background(t.TileBG).
		Width(width - 2)
	switch {
	case isDragging:
		s = s.BorderForeground(t.BorderDragFG).Background(t.TileDraggingBG).Bold(true)
		if t.Name == "mono" {
			s = s.Border(lipgloss.DoubleBorder())
		}
	case selected:
		s = s.BorderForeground(t.TileSelectFG)
		if t.Name == "mono" {
			s = s.Border(lipgloss.ThickBorder())
		}
	}
	return s
}
