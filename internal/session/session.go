// Package session persists the playground's last grid between runs.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"github.com/henri123lemoine/gridlayout/internal/config"
	"github.com/henri123lemoine/gridlayout/internal/debug"
)

var trace = debug.Scope("session")

// Snapshot is the saved state of a playground session.
type Snapshot struct {
	ConfigPath        string              `json:"config_path"`
	Rows              int                 `json:"rows"`
	Columns           int                 `json:"columns"`
	HorizontalSpacing int                 `json:"horizontal_spacing"`
	VerticalSpacing   int                 `json:"vertical_spacing"`
	Tiles             []config.TileConfig `json:"tiles"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// Path returns the snapshot file for the given config file.
func Path(configPath string) string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	name := filepath.Base(filepath.Dir(configPath)) + "-" + filepath.Base(configPath)
	return filepath.Join(cacheDir, "gridlayout", name+".json")
}

// Load returns the snapshot stored at path, or nil if it is missing,
// unreadable, or was saved for another config file.
func Load(path, configPath string) *Snapshot {
	// Acquire shared (read) lock - blocks if exclusive lock is held
	fileLock := flock.New(path + ".lock")
	if err := fileLock.RLock(); err != nil {
		trace.Logf("lock %s: %v", path, err)
		return nil
	}
	defer fileLock.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		trace.Logf("discarding corrupt snapshot %s: %v", path, err)
		return nil
	}

	if snap.ConfigPath != configPath {
		trace.Logf("snapshot %s belongs to %s", path, snap.ConfigPath)
		return nil
	}

	return &snap
}

// Save writes snap to path, stamping UpdatedAt.
func Save(path string, snap Snapshot) error {
	snap.UpdatedAt = time.Now()

	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	// Acquire exclusive lock - blocks until lock is available
	fileLock := flock.New(path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return err
	}
	defer fileLock.Unlock()

	// Write atomically: write to temp file then rename
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}
	trace.Logf("saved %dx%d with %d tiles to %s", snap.Rows, snap.Columns, len(snap.Tiles), path)
	return nil
}

// Apply overlays the snapshot's geometry and tiles onto cfg. A snapshot that
// would make the config invalid, such as one holding more tiles than its grid
// has cells, is rejected and cfg is left unchanged.
func (s *Snapshot) Apply(cfg *config.Config) error {
	next := *cfg
	next.Grid.Rows = s.Rows
	next.Grid.Columns = s.Columns
	next.Grid.HorizontalSpacing = s.HorizontalSpacing
	next.Grid.VerticalSpacing = s.VerticalSpacing
	next.Tiles = append([]config.TileConfig(nil), s.Tiles...)

	known := make(map[string]bool)
	for _, w := range cfg.Validate() {
		known[w] = true
	}
	var introduced []string
	for _, w := range next.Validate() {
		if !known[w] {
			introduced = append(introduced, w)
		}
	}
	if len(introduced) > 0 {
		trace.Logf("ignoring snapshot: %s", strings.Join(introduced, "; "))
		return fmt.Errorf("invalid snapshot: %s", strings.Join(introduced, "; "))
	}

	*cfg = next
	return nil
}
