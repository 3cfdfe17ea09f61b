package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/edward-ap/stepslider/internal/geometry"
	"github.com/edward-ap/stepslider/internal/ui"
)

func TestLoadDefaultConfig(t *testing.T) {
	overrideConfigEnv(t, t.TempDir())

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath error: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load returned nil config")
	}
	if len(cfg.Options) != 5 {
		t.Errorf("Options = %v, want 5 entries", cfg.Options)
	}
	if cfg.Anchor != geometry.AnchorLeft {
		t.Errorf("Anchor = %v, want left", cfg.Anchor)
	}
	if cfg.Width != geometry.DefaultTotalWidth {
		t.Errorf("Width = %v, want %v", cfg.Width, geometry.DefaultTotalWidth)
	}
	if cfg.TextColor != ui.DefaultTextColor || cfg.TailColor != ui.DefaultTailColor {
		t.Errorf("colors = %q/%q", cfg.TextColor, cfg.TailColor)
	}
	if cfg.WindowW != DefaultWindowWidth || cfg.WindowH != DefaultWindowHeight {
		t.Errorf("window = %dx%d", cfg.WindowW, cfg.WindowH)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s, got error: %v", path, err)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	overrideConfigEnv(t, t.TempDir())

	cfg := Default()
	cfg.Value = 3
	cfg.Anchor = geometry.AnchorCenter
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.Value != 3 || got.Anchor != geometry.AnchorCenter {
		t.Fatalf("loaded value/anchor = %d/%v", got.Value, got.Anchor)
	}
}

func TestLoadFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slider.toml")
	data := `options = ["low", "mid", "high"]
value = 9
anchor = "center"
tail_color = "black"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if len(cfg.Options) != 3 || cfg.Options[2] != "high" {
		t.Errorf("Options = %v", cfg.Options)
	}
	if cfg.Value != 9 {
		t.Errorf("Value = %d, out-of-range values must be kept", cfg.Value)
	}
	if cfg.Anchor != geometry.AnchorCenter {
		t.Errorf("Anchor = %v, want center", cfg.Anchor)
	}
	if cfg.TailColor != "black" || cfg.TextColor != ui.DefaultTextColor {
		t.Errorf("colors = %q/%q", cfg.TextColor, cfg.TailColor)
	}
	if cfg.Width != geometry.DefaultTotalWidth {
		t.Errorf("Width = %v", cfg.Width)
	}
}

func TestSaveFileTOMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "slider.toml")
	cfg := Default()
	cfg.Label = "Brand A"
	cfg.Anchor = geometry.AnchorCenter
	if err := cfg.SaveFile(path); err != nil {
		t.Fatalf("SaveFile error: %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if got.Label != "Brand A" || got.Anchor != geometry.AnchorCenter || got.MinText != DefaultMinText {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFile(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: want ErrNotExist, got %v", err)
	}

	yaml := filepath.Join(dir, "slider.yaml")
	_ = os.WriteFile(yaml, []byte("options: []"), 0o644)
	if _, err := LoadFile(yaml); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("yaml: want ErrUnsupportedFormat, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	_ = os.WriteFile(bad, []byte(`{"anchor": "right"}`), 0o644)
	if _, err := LoadFile(bad); !errors.Is(err, geometry.ErrUnknownAnchor) {
		t.Errorf("bad anchor: want ErrUnknownAnchor, got %v", err)
	}
}

func TestConfigProps(t *testing.T) {
	cfg := Default()
	cfg.Anchor = geometry.AnchorCenter
	p := cfg.Props(func(int) {})
	if err := p.Validate(); err != nil {
		t.Fatalf("default props invalid: %v", err)
	}
	if p.Anchor != "center" || len(p.Options) != 5 {
		t.Fatalf("props = %+v", p)
	}
}

func overrideConfigEnv(t *testing.T, tempDir string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", tempDir)
		t.Setenv("LOCALAPPDATA", tempDir)
		t.Setenv("USERPROFILE", tempDir)
		return
	}
	xdg := filepath.Join(tempDir, "xdg")
	_ = os.MkdirAll(xdg, 0o755)
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", tempDir)
}

func TestCloneIsIndependent(t *testing.T) {
	c := Default()
	cp := c.Clone()

	c.Value = 3
	c.Options[0] = "changed"
	if cp.Value != 0 || cp.Options[0] != "1" {
		t.Fatalf("clone changed with original: %+v", cp)
	}

	empty := &Config{Options: []string{}}
	if got := empty.Clone().Options; got == nil {
		t.Fatal("empty options should stay non-nil")
	}
}
