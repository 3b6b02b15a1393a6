package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.FPS != defaultFPS {
		t.Fatalf("expected default fps %d, got %d", defaultFPS, cfg.App.FPS)
	}
	if cfg.App.ItemsPath != "" {
		t.Fatalf("expected empty items path, got %q", cfg.App.ItemsPath)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer enabled by default")
	}
}

func TestLoadArgsFlagBeatsEnv(t *testing.T) {
	cfg, err := LoadArgs(
		[]string{"--fps", "60", "--items", "flag.yaml"},
		[]string{"DOCKBAR_FPS=15", "DOCKBAR_ITEMS=env.yaml"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.FPS != 60 {
		t.Fatalf("expected flag fps 60, got %d", cfg.App.FPS)
	}
	if cfg.App.ItemsPath != "flag.yaml" {
		t.Fatalf("expected flag items path, got %q", cfg.App.ItemsPath)
	}
}

func TestLoadArgsEnvFallback(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"DOCKBAR_FPS=45", "DOCKBAR_TRACE=true"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.FPS != 45 {
		t.Fatalf("expected env fps 45, got %d", cfg.App.FPS)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace enabled from env")
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"--height", "-2"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestValidateFPSBounds(t *testing.T) {
	cfg, err := LoadArgs([]string{"--fps", "0"}, nil)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected validation error for fps 0")
	}
	cfg, err = LoadArgs([]string{"--fps", "240"}, nil)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected validation error for fps 240")
	}
}

func TestValidateItemsPathMustExist(t *testing.T) {
	cfg, err := LoadArgs([]string{"--items", "/nonexistent/items.yaml"}, nil)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected validation error for missing catalog")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "items.yaml")
	if err := os.WriteFile(path, []byte("- icon: a\n  label: one\n"), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	cfg, err = LoadArgs([]string{"--items", path}, nil)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}
