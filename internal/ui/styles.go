package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the colors of a theme.
type Palette struct {
	Primary   lipgloss.TerminalColor
	Secondary lipgloss.TerminalColor
	Danger    lipgloss.TerminalColor
	Muted     lipgloss.TerminalColor
	Highlight lipgloss.TerminalColor
	Text      lipgloss.TerminalColor
}

var (
	darkPalette = Palette{
		Primary:   lipgloss.Color("4"),
		Secondary: lipgloss.Color("8"),
		Danger:    lipgloss.Color("1"),
		Muted:     lipgloss.Color("245"),
		Highlight: lipgloss.Color("6"),
		Text:      lipgloss.Color("252"),
	}
	lightPalette = Palette{
		Primary:   lipgloss.Color("4"),
		Secondary: lipgloss.Color("7"),
		Danger:    lipgloss.Color("1"),
		Muted:     lipgloss.Color("240"),
		Highlight: lipgloss.Color("5"),
		Text:      lipgloss.Color("235"),
	}
	autoPalette = Palette{
		Primary:   lipgloss.Color("4"),
		Secondary: lipgloss.AdaptiveColor{Light: "7", Dark: "8"},
		Danger:    lipgloss.Color("1"),
		Muted:     lipgloss.AdaptiveColor{Light: "240", Dark: "245"},
		Highlight: lipgloss.AdaptiveColor{Light: "5", Dark: "6"},
		Text:      lipgloss.AdaptiveColor{Light: "235", Dark: "252"},
	}
)

// Styles
var (
	TitleStyle    lipgloss.Style
	HeaderStyle   lipgloss.Style
	TileStyle     lipgloss.Style
	SelectedStyle lipgloss.Style
	HiddenStyle   lipgloss.Style
	RulerStyle    lipgloss.Style
	HelpStyle     lipgloss.Style
	StatusStyle   lipgloss.Style
	ErrorStyle    lipgloss.Style
	DividerStyle  lipgloss.Style
	InputStyle    lipgloss.Style
)

// Borders
var (
	TileBorder     = lipgloss.RoundedBorder()
	SelectedBorder = lipgloss.ThickBorder()
	RulerBorder    = lipgloss.Border{
		Top:         "·",
		Bottom:      "·",
		Left:        "·",
		Right:       "·",
		TopLeft:     "·",
		TopRight:    "·",
		BottomLeft:  "·",
		BottomRight: "·",
	}
)

func init() {
	SetTheme("auto")
}

// SetTheme switches the styles to the named theme: "dark", "light", or
// anything else for colors that adapt to the terminal background.
func SetTheme(name string) {
	p := autoPalette
	switch name {
	case "dark":
		p = darkPalette
	case "light":
		p = lightPalette
	}

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	HeaderStyle = lipgloss.NewStyle().Foreground(p.Muted)
	TileStyle = lipgloss.NewStyle().Foreground(p.Text)
	SelectedStyle = lipgloss.NewStyle().Foreground(p.Highlight).Bold(true)
	HiddenStyle = lipgloss.NewStyle().Foreground(p.Secondary).Faint(true)
	RulerStyle = lipgloss.NewStyle().Foreground(p.Secondary)
	HelpStyle = lipgloss.NewStyle().Foreground(p.Muted)
	StatusStyle = lipgloss.NewStyle().Foreground(p.Muted).Italic(true)
	ErrorStyle = lipgloss.NewStyle().Foreground(p.Danger)
	DividerStyle = lipgloss.NewStyle().Foreground(p.Secondary)
	InputStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(0, 1)
}

// Symbols
const (
	SymbolDivider = "─"
	SymbolHidden  = "░"
)
