package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 960 || cfg.Window.Height != 720 {
		t.Fatalf("window = %dx%d, want 960x720", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.TPS != 60 {
		t.Fatalf("tps = %d, want 60", cfg.Window.TPS)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "console" {
		t.Fatalf("log = %+v", cfg.Log)
	}
	if cfg.Trace.Path != "" {
		t.Fatalf("trace path = %q, want empty", cfg.Trace.Path)
	}
	if !cfg.HotReload.Enabled || len(cfg.HotReload.Dirs) == 0 {
		t.Fatalf("hot reload = %+v", cfg.HotReload)
	}
}

func TestLoadOverlaysUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ptest.yaml")
	data := "window:\n  width: 1280\nlog:\n  level: debug\n  format: json\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 1280 {
		t.Fatalf("width = %d, want 1280", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Fatalf("height = %d, want default 720", cfg.Window.Height)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("log = %+v", cfg.Log)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "missing file", path: filepath.Join(dir, "nope.yaml"), want: "config: read"},
		{name: "bad yaml", path: write("bad.yaml", "window: [1, 2"), want: "config: parse"},
		{name: "zero width", path: write("zero.yaml", "window:\n  width: 0\n"), want: "window size"},
		{name: "bad format", path: write("fmt.yaml", "log:\n  format: xml\n"), want: "unknown log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}
