package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Terminal palette (ANSI 256).
var (
	colorHeading = lipgloss.Color("36")
	colorOK      = lipgloss.Color("35")
	colorWarn    = lipgloss.Color("220")
	colorValue   = lipgloss.Color("255")
	colorLabel   = lipgloss.Color("245")
	colorMuted   = lipgloss.Color("240")
)

var (
	// StyleTitle renders table headings such as the loci column row.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorHeading)

	StyleDim     = lipgloss.NewStyle().Foreground(colorMuted)
	StyleValue   = lipgloss.NewStyle().Foreground(colorValue)
	StyleWarning = lipgloss.NewStyle().Foreground(colorWarn)

	styleOK  = lipgloss.NewStyle().Foreground(colorOK)
	styleKey = lipgloss.NewStyle().Foreground(colorLabel).Width(8)
)

// status writes the short result lines that follow a command.
type status struct{ w io.Writer }

func (s status) success(msg string) {
	fmt.Fprintln(s.w, styleOK.Render("✓")+" "+msg)
}

func (s status) warn(msg string) {
	fmt.Fprintln(s.w, StyleWarning.Render("! "+msg))
}

func (s status) file(path string) {
	fmt.Fprintln(s.w, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

func (s status) field(key string, value any) {
	fmt.Fprintln(s.w, styleKey.Render(key)+" "+StyleValue.Render(fmt.Sprint(value)))
}
