// Package config handles gridlayout configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/henri123lemoine/gridlayout/internal/grid"
)

// Config represents gridlayout configuration.
type Config struct {
	Grid    GridConfig    `toml:"grid"`
	Padding PaddingConfig `toml:"padding"`
	Minimum MinimumConfig `toml:"minimum"`
	UI      UIConfig      `toml:"ui"`
	Keys    KeysConfig    `toml:"keys"`
	Tiles   []TileConfig  `toml:"tiles"`
}

// GridConfig contains the grid geometry.
type GridConfig struct {
	Rows              int `toml:"rows"`
	Columns           int `toml:"columns"`
	HorizontalSpacing int `toml:"horizontal_spacing"`
	VerticalSpacing   int `toml:"vertical_spacing"`
}

// PaddingConfig is the padding of the host container around the grid.
type PaddingConfig struct {
	Left   int `toml:"left"`
	Top    int `toml:"top"`
	Right  int `toml:"right"`
	Bottom int `toml:"bottom"`
}

// MinimumConfig is the host's suggested minimum size.
type MinimumConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// TileConfig describes one child of the grid.
type TileConfig struct {
	// Text shown inside the tile
	Label string `toml:"label"`

	// Preferred width: "wrap", "match", or a number of cells
	Width string `toml:"width"`

	// Preferred height: "wrap", "match", or a number of cells
	Height string `toml:"height"`

	// Hidden tiles keep their cell but are not drawn
	Hidden bool `toml:"hidden"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Color theme: auto, dark, light
	Theme string `toml:"theme"`

	// Draw the outline of every cell, including empty ones
	ShowRulers bool `toml:"show_rulers"`

	// How the terminal bounds the grid: "atmost" shrinks to content,
	// "exact" fills the terminal
	Mode string `toml:"mode"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	Left          string `toml:"left"`
	Right         string `toml:"right"`
	Add           string `toml:"add"`
	Remove        string `toml:"remove"`
	AddRow        string `toml:"add_row"`
	RemoveRow     string `toml:"remove_row"`
	AddColumn     string `toml:"add_column"`
	RemoveColumn  string `toml:"remove_column"`
	WidenSpacing  string `toml:"widen_spacing"`
	NarrowSpacing string `toml:"narrow_spacing"`
	GrowSpacing   string `toml:"grow_spacing"`
	ShrinkSpacing string `toml:"shrink_spacing"`
	Toggle        string `toml:"toggle"`
	Fill          string `toml:"fill"`
	Filter        string `toml:"filter"`
	Help          string `toml:"help"`
	Quit          string `toml:"quit"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			Rows:              2,
			Columns:           3,
			HorizontalSpacing: 1,
			VerticalSpacing:   0,
		},
		Padding: PaddingConfig{},
		Minimum: MinimumConfig{},
		UI: UIConfig{
			Theme:      "auto",
			ShowRulers: true,
			Mode:       "atmost",
		},
		Keys: KeysConfig{
			Left:          "left",
			Right:         "right",
			Add:           "a",
			Remove:        "x",
			AddRow:        "R",
			RemoveRow:     "r",
			AddColumn:     "C",
			RemoveColumn:  "c",
			WidenSpacing:  "H",
			NarrowSpacing: "h",
			GrowSpacing:   "V",
			ShrinkSpacing: "v",
			Toggle:        " ",
			Fill:          "f",
			Filter:        "/",
			Help:          "?",
			Quit:          "q,ctrl+c",
		},
		Tiles: []TileConfig{
			{Label: "one", Width: "wrap", Height: "wrap"},
			{Label: "two", Width: "match", Height: "wrap"},
			{Label: "three", Width: "wrap", Height: "match"},
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/gridlayout/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "gridlayout", "config.toml")
	}
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "gridlayout", "config.toml")
	}
	// Fallback to os.UserConfigDir() for Windows
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "gridlayout", "config.toml")
	}
	return filepath.Join(configDir, "gridlayout", "config.toml")
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	// go-toml/v2 only overwrites fields present in the file, preserving
	// defaults for the rest. Array tables are merged index by index into an
	// existing slice, so default tiles are dropped when the file lists its own.
	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if _, ok := raw["tiles"]; ok {
		cfg.Tiles = nil
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Save saves configuration to path.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// CreateDefaultConfigFile writes a commented default config file to path.
func CreateDefaultConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(generateDefaultConfigContent()), 0644)
}

// generateDefaultConfigContent generates a commented config file.
func generateDefaultConfigContent() string {
	var b strings.Builder
	cfg := DefaultConfig()

	b.WriteString("# gridlayout configuration\n\n")

	b.WriteString("[grid]\n")
	b.WriteString("# Number of rows and columns. Tiles beyond rows*columns are rejected.\n")
	fmt.Fprintf(&b, "rows = %d\n", cfg.Grid.Rows)
	fmt.Fprintf(&b, "columns = %d\n", cfg.Grid.Columns)
	b.WriteString("# Gap between columns and between rows, in cells\n")
	fmt.Fprintf(&b, "horizontal_spacing = %d\n", cfg.Grid.HorizontalSpacing)
	fmt.Fprintf(&b, "vertical_spacing = %d\n\n", cfg.Grid.VerticalSpacing)

	b.WriteString("[padding]\n")
	b.WriteString("# Space between the terminal edge and the grid\n")
	fmt.Fprintf(&b, "left = %d\n", cfg.Padding.Left)
	fmt.Fprintf(&b, "top = %d\n", cfg.Padding.Top)
	fmt.Fprintf(&b, "right = %d\n", cfg.Padding.Right)
	fmt.Fprintf(&b, "bottom = %d\n\n", cfg.Padding.Bottom)

	b.WriteString("[minimum]\n")
	b.WriteString("# The grid never measures smaller than this unless the terminal forces it\n")
	fmt.Fprintf(&b, "width = %d\n", cfg.Minimum.Width)
	fmt.Fprintf(&b, "height = %d\n\n", cfg.Minimum.Height)

	b.WriteString("[ui]\n")
	b.WriteString("# Color theme: \"auto\", \"dark\", or \"light\"\n")
	fmt.Fprintf(&b, "theme = %q\n", cfg.UI.Theme)
	b.WriteString("# Outline every cell, including empty ones\n")
	fmt.Fprintf(&b, "show_rulers = %v\n", cfg.UI.ShowRulers)
	b.WriteString("# \"atmost\" shrinks the grid to its tiles, \"exact\" fills the terminal\n")
	fmt.Fprintf(&b, "mode = %q\n\n", cfg.UI.Mode)

	b.WriteString("[keys]\n")
	b.WriteString("# Keybindings (comma-separated for multiple keys)\n")
	fmt.Fprintf(&b, "# add = %q\n", cfg.Keys.Add)
	fmt.Fprintf(&b, "# remove = %q\n", cfg.Keys.Remove)
	fmt.Fprintf(&b, "# add_row = %q\n", cfg.Keys.AddRow)
	fmt.Fprintf(&b, "# add_column = %q\n", cfg.Keys.AddColumn)
	fmt.Fprintf(&b, "# toggle = %q\n", cfg.Keys.Toggle)
	fmt.Fprintf(&b, "# quit = %q\n\n", cfg.Keys.Quit)

	b.WriteString("# Tiles fill the grid in row-major order.\n")
	b.WriteString("# width/height: \"wrap\" (fit the label), \"match\" (fill the cell) or a number\n")
	for _, tile := range cfg.Tiles {
		b.WriteString("[[tiles]]\n")
		fmt.Fprintf(&b, "label = %q\n", tile.Label)
		fmt.Fprintf(&b, "width = %q\n", tile.Width)
		fmt.Fprintf(&b, "height = %q\n\n", tile.Height)
	}

	return b.String()
}

// ParseDimension parses a tile dimension. The empty string means "wrap".
func ParseDimension(s string) (grid.Dimension, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "wrap":
		return grid.Wrap(), nil
	case "match":
		return grid.Match(), nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return grid.Dimension{}, fmt.Errorf("invalid dimension %q (expected wrap, match, or a number)", s)
	}
	if n < 0 {
		return grid.Dimension{}, fmt.Errorf("invalid dimension %q (must not be negative)", s)
	}
	return grid.Fixed(n), nil
}

// Dimensions returns the parsed width and height preferences of the tile.
func (t TileConfig) Dimensions() (width, height grid.Dimension, err error) {
	if width, err = ParseDimension(t.Width); err != nil {
		return width, height, fmt.Errorf("tile %q width: %w", t.Label, err)
	}
	if height, err = ParseDimension(t.Height); err != nil {
		return width, height, fmt.Errorf("tile %q height: %w", t.Label, err)
	}
	return width, height, nil
}

// GridOptions returns the grid options for the configured geometry.
func (c *Config) GridOptions() []grid.Option {
	return []grid.Option{
		grid.WithRows(c.Grid.Rows),
		grid.WithColumns(c.Grid.Columns),
		grid.WithSpacing(c.Grid.HorizontalSpacing, c.Grid.VerticalSpacing),
		grid.WithPadding(c.PaddingEdges()),
		grid.WithMinimumSize(c.Minimum.Width, c.Minimum.Height),
	}
}

// PaddingEdges converts the padding section to grid edges.
func (c *Config) PaddingEdges() grid.Edges {
	return grid.Edges{
		Top:    c.Padding.Top,
		Right:  c.Padding.Right,
		Bottom: c.Padding.Bottom,
		Left:   c.Padding.Left,
	}
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.Grid.Rows < 0 {
		warnings = append(warnings, fmt.Sprintf("Invalid value for grid.rows: %d (must not be negative)", c.Grid.Rows))
	}
	if c.Grid.Columns < 0 {
		warnings = append(warnings, fmt.Sprintf("Invalid value for grid.columns: %d (must not be negative)", c.Grid.Columns))
	}
	if c.Grid.HorizontalSpacing < 0 {
		warnings = append(warnings, fmt.Sprintf("Invalid value for grid.horizontal_spacing: %d (must not be negative)", c.Grid.HorizontalSpacing))
	}
	if c.Grid.VerticalSpacing < 0 {
		warnings = append(warnings, fmt.Sprintf("Invalid value for grid.vertical_spacing: %d (must not be negative)", c.Grid.VerticalSpacing))
	}

	pad := c.Padding
	if pad.Left < 0 || pad.Top < 0 || pad.Right < 0 || pad.Bottom < 0 {
		warnings = append(warnings, "Padding must not be negative")
	}
	if c.Minimum.Width < 0 || c.Minimum.Height < 0 {
		warnings = append(warnings, "Minimum size must not be negative")
	}

	if capacity := c.Grid.Rows * c.Grid.Columns; c.Grid.Rows >= 0 && c.Grid.Columns >= 0 && len(c.Tiles) > capacity {
		warnings = append(warnings, fmt.Sprintf("%d tiles do not fit a %dx%d grid", len(c.Tiles), c.Grid.Rows, c.Grid.Columns))
	}

	for i, tile := range c.Tiles {
		if _, _, err := tile.Dimensions(); err != nil {
			warnings = append(warnings, fmt.Sprintf("Tile %d: %v", i, err))
		}
	}

	if c.UI.Theme != "" &&
		c.UI.Theme != "auto" &&
		c.UI.Theme != "dark" &&
		c.UI.Theme != "light" {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.theme: %s (expected auto, dark, or light)", c.UI.Theme))
	}

	if c.UI.Mode != "" &&
		c.UI.Mode != "atmost" &&
		c.UI.Mode != "exact" {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.mode: %s (expected atmost or exact)", c.UI.Mode))
	}

	return warnings
}
