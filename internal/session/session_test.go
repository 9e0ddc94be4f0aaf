package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/henri123lemoine/gridlayout/internal/config"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "session.json")
	snap := Snapshot{
		ConfigPath:        "/home/me/.config/gridlayout/config.toml",
		Rows:              3,
		Columns:           4,
		HorizontalSpacing: 2,
		VerticalSpacing:   1,
		Tiles:             []config.TileConfig{{Label: "a", Width: "match"}, {Label: "b", Hidden: true}},
	}

	if err := Save(path, snap); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got := Load(path, snap.ConfigPath)
	if got == nil {
		t.Fatal("Expected snapshot, got nil")
	}
	if got.Rows != 3 || got.Columns != 4 || got.HorizontalSpacing != 2 || got.VerticalSpacing != 1 {
		t.Errorf("Unexpected geometry: %+v", got)
	}
	if len(got.Tiles) != 2 || !got.Tiles[1].Hidden {
		t.Errorf("Unexpected tiles: %+v", got.Tiles)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("Expected UpdatedAt to be set")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("Expected temp file to be renamed away")
	}
}

func TestLoadMisses(t *testing.T) {
	dir := t.TempDir()

	if got := Load(filepath.Join(dir, "absent.json"), "cfg"); got != nil {
		t.Errorf("Expected nil for missing file, got %+v", got)
	}

	corrupt := filepath.Join(dir, "corrupt.json")
	if err := os.WriteFile(corrupt, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if got := Load(corrupt, "cfg"); got != nil {
		t.Errorf("Expected nil for corrupt file, got %+v", got)
	}

	other := filepath.Join(dir, "other.json")
	if err := Save(other, Snapshot{ConfigPath: "a.toml"}); err != nil {
		t.Fatal(err)
	}
	if got := Load(other, "b.toml"); got != nil {
		t.Errorf("Expected nil for snapshot of another config, got %+v", got)
	}
}

func TestApply(t *testing.T) {
	cfg := config.DefaultConfig()
	snap := &Snapshot{Rows: 1, Columns: 5, HorizontalSpacing: 3, Tiles: []config.TileConfig{{Label: "z"}}}
	if err := snap.Apply(cfg); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if cfg.Grid.Rows != 1 || cfg.Grid.Columns != 5 || cfg.Grid.HorizontalSpacing != 3 || cfg.Grid.VerticalSpacing != 0 {
		t.Errorf("Unexpected grid after Apply: %+v", cfg.Grid)
	}
	if len(cfg.Tiles) != 1 || cfg.Tiles[0].Label != "z" {
		t.Errorf("Unexpected tiles after Apply: %+v", cfg.Tiles)
	}
}

func TestApplyRejectsInvalidSnapshot(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
	}{
		{
			name: "more tiles than cells",
			snap: Snapshot{Rows: 1, Columns: 2, Tiles: []config.TileConfig{{Label: "a"}, {Label: "b"}, {Label: "c"}}},
		},
		{
			name: "negative columns",
			snap: Snapshot{Rows: 1, Columns: -1},
		},
		{
			name: "bad tile dimension",
			snap: Snapshot{Rows: 1, Columns: 1, Tiles: []config.TileConfig{{Label: "a", Width: "huge"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			want := config.DefaultConfig()

			if err := tt.snap.Apply(cfg); err == nil {
				t.Fatal("Expected Apply to reject the snapshot")
			}
			if cfg.Grid != want.Grid || len(cfg.Tiles) != len(want.Tiles) {
				t.Errorf("Expected config to be unchanged, got %+v with %d tiles", cfg.Grid, len(cfg.Tiles))
			}
		})
	}
}

func TestPathIsStablePerConfig(t *testing.T) {
	a := Path("/x/gridlayout/config.toml")
	b := Path("/x/gridlayout/config.toml")
	c := Path("/x/other/config.toml")
	if a != b {
		t.Errorf("Expected stable path, got %q and %q", a, b)
	}
	if a == c {
		t.Errorf("Expected different configs to use different snapshots, both got %q", a)
	}
}
