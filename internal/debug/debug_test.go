package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDisabledIsSilent(t *testing.T) {
	Close()
	Log("nothing %d", 1)
	Timed("noop")()
	if IsEnabled() {
		t.Fatal("Expected debug logging to be disabled")
	}
}

func TestEnableWritesScopedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	if err := Enable(path); err != nil {
		t.Fatalf("Enable() error = %v", err)
	}
	t.Cleanup(Close)

	Scoped("grid")("measured %dx%d", 4, 2)
	Timed("render")()
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	out := string(data)
	for _, want := range []string{"debug logging enabled", "grid: measured 4x2", "render took"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected log to contain %q, got:\n%s", want, out)
		}
	}
}

func TestEnableWriter(t *testing.T) {
	var buf bytes.Buffer
	EnableWriter(&buf)
	t.Cleanup(Close)

	Scope("session").Logf("saved %s", "x.json")
	Log("plain")

	out := buf.String()
	if !strings.Contains(out, "session: saved x.json") {
		t.Errorf("Expected scoped line, got:\n%s", out)
	}
	if !strings.Contains(out, "] plain\n") {
		t.Errorf("Expected unscoped line, got:\n%s", out)
	}

	Close()
	Log("after close")
	if strings.Contains(buf.String(), "after close") {
		t.Error("Expected no output after Close")
	}
}
