package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/henri123lemoine/gridlayout/internal/app"
	"github.com/henri123lemoine/gridlayout/internal/config"
	"github.com/henri123lemoine/gridlayout/internal/debug"
	"github.com/henri123lemoine/gridlayout/internal/grid"
	"github.com/henri123lemoine/gridlayout/internal/session"
	"github.com/henri123lemoine/gridlayout/internal/ui"
)

func main() {
	configPath := flag.String("config", config.ConfigPath(), "path to the config file")
	debugPath := flag.String("debug", "", "write a debug log to this file (- for stderr)")
	initConfig := flag.Bool("init", false, "write a commented default config and exit")
	printSize := flag.String("print", "", "lay out for WIDTHxHEIGHT, print placements and exit")
	mode := flag.String("mode", "atmost", "constraint for -print: exact, atmost, or unspecified")
	noSession := flag.Bool("no-session", false, "ignore and do not save the previous session")
	flag.Parse()

	if *debugPath != "" {
		if err := debug.Enable(*debugPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error enabling debug log: %v\n", err)
			os.Exit(1)
		}
		defer debug.Close()
	}

	if *initConfig {
		if err := config.CreateDefaultConfigFile(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *configPath)
		return
	}

	// Load configuration
	cfg, err := config.LoadFromPath(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	for _, w := range cfg.Validate() {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	if *printSize != "" {
		if err := printLayout(os.Stdout, cfg, *printSize, *mode); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	sessionPath := session.Path(*configPath)
	if !*noSession {
		if snap := session.Load(sessionPath, *configPath); snap != nil {
			if err := snap.Apply(cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: ignoring saved session: %v\n", err)
			} else {
				debug.Log("restored session from %s", snap.UpdatedAt)
			}
		}
	}

	// Create and run the application
	model, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if m, ok := finalModel.(app.Model); ok && m.ShouldQuit() && !*noSession {
		if err := session.Save(sessionPath, m.Snapshot(*configPath)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save session: %v\n", err)
		}
	}
}

// printLayout measures and lays out the configured grid once and prints
// every tile's cell and placement.
func printLayout(w io.Writer, cfg *config.Config, size, mode string) error {
	width, height, err := parseSize(size)
	if err != nil {
		return err
	}
	ws, hs, err := specs(mode, width, height)
	if err != nil {
		return err
	}

	model, err := app.New(cfg)
	if err != nil {
		return err
	}
	g := model.Grid()
	res := g.Measure(ws, hs)
	g.Layout(res.Width, res.Height)

	fmt.Fprintf(w, "grid %dx%d under %s x %s: %dx%d (%s)\n",
		g.Rows(), g.Columns(), ws, hs, res.Width, res.Height, res.State)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "CELL", "LABEL", "RECT")
	var tiles []*ui.Tile
	for i, c := range g.Children() {
		tile := c.(*ui.Tile)
		tiles = append(tiles, tile)
		row, column := g.Cell(i)
		rect := "hidden"
		if tile.Visible() {
			rect = tile.Rect.String()
		}
		t.Row(strconv.Itoa(i), fmt.Sprintf("%d,%d", row, column), tile.Label, rect)
	}
	fmt.Fprintln(w, t.String())

	fmt.Fprintln(w, ui.Paint(g, tiles, -1, max(res.Width, 1), max(res.Height, 1), cfg.UI.ShowRulers).Plain())
	return nil
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q (expected WIDTHxHEIGHT)", s)
	}
	width, err1 := strconv.Atoi(ws)
	height, err2 := strconv.Atoi(hs)
	if err := errors.Join(err1, err2); err != nil || width < 0 || height < 0 {
		return 0, 0, fmt.Errorf("invalid size %q (expected WIDTHxHEIGHT)", s)
	}
	return width, height, nil
}

func specs(mode string, width, height int) (grid.Spec, grid.Spec, error) {
	switch mode {
	case "exact":
		return grid.ExactSpec(width), grid.ExactSpec(height), nil
	case "atmost", "":
		return grid.AtMostSpec(width), grid.AtMostSpec(height), nil
	case "unspecified":
		return grid.UnspecifiedSpec(), grid.UnspecifiedSpec(), nil
	}
	return grid.Spec{}, grid.Spec{}, fmt.Errorf("invalid mode %q (expected exact, atmost, or unspecified)", mode)
}
