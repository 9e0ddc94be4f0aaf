package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/henri123lemoine/gridlayout/internal/config"
)

// KeyMap defines all keybindings.
type KeyMap struct {
	// Navigation
	Left  key.Binding
	Right key.Binding

	// Tiles
	Add    key.Binding
	Remove key.Binding
	Toggle key.Binding

	// Geometry
	AddRow        key.Binding
	RemoveRow     key.Binding
	AddColumn     key.Binding
	RemoveColumn  key.Binding
	WidenSpacing  key.Binding
	NarrowSpacing key.Binding
	GrowSpacing   key.Binding
	ShrinkSpacing key.Binding
	Fill          key.Binding

	// General
	Filter  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMapFromConfig(&config.DefaultConfig().Keys)
}

// KeyMapFromConfig creates a KeyMap from config settings. Empty entries
// fall back to the defaults.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	def := config.DefaultConfig().Keys
	bind := func(keys, fallback, help string) key.Binding {
		if strings.TrimSpace(keys) == "" {
			keys = fallback
		}
		return key.NewBinding(
			key.WithKeys(parseKeys(keys)...),
			key.WithHelp(displayKeys(keys), help),
		)
	}

	return KeyMap{
		Left:          bind(cfg.Left, def.Left, "prev tile"),
		Right:         bind(cfg.Right, def.Right, "next tile"),
		Add:           bind(cfg.Add, def.Add, "add tile"),
		Remove:        bind(cfg.Remove, def.Remove, "remove tile"),
		Toggle:        bind(cfg.Toggle, def.Toggle, "hide/show"),
		AddRow:        bind(cfg.AddRow, def.AddRow, "add row"),
		RemoveRow:     bind(cfg.RemoveRow, def.RemoveRow, "remove row"),
		AddColumn:     bind(cfg.AddColumn, def.AddColumn, "add column"),
		RemoveColumn:  bind(cfg.RemoveColumn, def.RemoveColumn, "remove column"),
		WidenSpacing:  bind(cfg.WidenSpacing, def.WidenSpacing, "h-spacing +"),
		NarrowSpacing: bind(cfg.NarrowSpacing, def.NarrowSpacing, "h-spacing -"),
		GrowSpacing:   bind(cfg.GrowSpacing, def.GrowSpacing, "v-spacing +"),
		ShrinkSpacing: bind(cfg.ShrinkSpacing, def.ShrinkSpacing, "v-spacing -"),
		Fill:          bind(cfg.Fill, def.Fill, "fill/shrink"),
		Filter:        bind(cfg.Filter, def.Filter, "filter"),
		Help:          bind(cfg.Help, def.Help, "help"),
		Quit:          bind(cfg.Quit, def.Quit, "quit"),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Remove, k.Toggle, k.AddColumn, k.AddRow, k.Fill, k.Filter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Add, k.Remove, k.Toggle},
		{k.AddRow, k.RemoveRow, k.AddColumn, k.RemoveColumn},
		{k.WidenSpacing, k.NarrowSpacing, k.GrowSpacing, k.ShrinkSpacing},
		{k.Fill, k.Filter, k.Help, k.Quit},
	}
}

// parseKeys parses a comma-separated list of keys. A lone space is the
// space bar, so entries are not trimmed down to nothing.
func parseKeys(s string) []string {
	parts := strings.Split(s, ",")
	var keys []string
	for _, p := range parts {
		if p == " " {
			keys = append(keys, p)
			continue
		}
		p = strings.TrimSpace(p)
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}

func displayKeys(s string) string {
	keys := parseKeys(s)
	for i, k := range keys {
		if k == " " {
			keys[i] = "space"
		}
	}
	return strings.Join(keys, "/")
}
