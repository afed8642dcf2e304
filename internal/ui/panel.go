package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel draws a framed box using t.
func Panel(w io.Writer, t Theme, lines []string) {
	border := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderFG).
		Padding(0, 1)
	fmt.Fprintln(w, border.Render(strings.Join(lines, "\n")))
}

// OK prints a success line.
func OK(w io.Writer, t Theme, msg string) { fmt.Fprintln(w, t.Success.Render("✔ "+msg)) }

// Fail prints an error line.
func Fail(w io.Writer, t Theme, msg string) { fmt.Fprintln(w, t.Error.Render("✖ "+msg)) }
