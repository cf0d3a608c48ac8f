package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/pond/config"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v; want nil, nil", om, err)
	}
	// Every method is a no-op on a nil manager.
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Error(err)
	}
	if err := om.WriteBookmark(Bookmark{}); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
	if om.Dir() != "" {
		t.Error("nil manager should report an empty dir")
	}
}

func TestOutputManagerWritesHeaderOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager failed: %v", err)
	}

	for tick := int64(600); tick <= 1800; tick += 600 {
		if err := om.WriteTelemetry(WindowStats{WindowEndTick: tick, Seed: 5, Flies: 99}); err != nil {
			t.Fatalf("WriteTelemetry: %v", err)
		}
	}
	if err := om.WritePerf(NewPerfCollector(4).Stats(), 600); err != nil {
		t.Fatalf("WritePerf: %v", err)
	}
	if err := om.WriteBookmark(Bookmark{Type: BookmarkFernDieOff, Tick: 1200, Description: "all 9 ferns dead"}); err != nil {
		t.Fatalf("WriteBookmark: %v", err)
	}
	if err := om.WriteConfig(config.Default()); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	lines := readLines(t, filepath.Join(dir, TelemetryFile))
	if len(lines) != 4 {
		t.Fatalf("telemetry.csv has %d lines, want header + 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "window_end,seed,flies") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "1800,5,99") {
		t.Errorf("unexpected last row %q", lines[3])
	}

	perf := readLines(t, filepath.Join(dir, PerfFile))
	if len(perf) != 2 || !strings.HasPrefix(perf[1], "600,") {
		t.Errorf("perf.csv = %q", perf)
	}

	marks := readLines(t, filepath.Join(dir, BookmarkFile))
	if len(marks) != 2 || !strings.Contains(marks[1], "fern_die_off") {
		t.Errorf("bookmarks.csv = %q", marks)
	}

	loaded, err := config.Load(filepath.Join(dir, ConfigFile))
	if err != nil {
		t.Fatalf("reloading written config: %v", err)
	}
	if loaded.Population.Flies != config.Default().Population.Flies {
		t.Errorf("reloaded flies = %d", loaded.Population.Flies)
	}
}
