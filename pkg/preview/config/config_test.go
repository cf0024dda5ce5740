package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Limits.DefaultRows != 100 || cfg.Limits.DefaultCols != 30 {
		t.Errorf("unexpected default limits %+v", cfg.Limits)
	}
	if cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("TTL = %s, expected 5m", cfg.Cache.TTL)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheetpreview.yaml")
	data := []byte(`
listen: ":9090"
root: /srv/docs
cache:
  maxEntries: 10
  ttl: 30s
limits:
  maxRows: 500
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Listen != ":9090" || cfg.Root != "/srv/docs" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Cache.MaxEntries != 10 || cfg.Cache.TTL != 30*time.Second {
		t.Errorf("unexpected cache config %+v", cfg.Cache)
	}
	// Unset fields keep their defaults.
	if cfg.Cache.MaxBytes != 50<<20 || cfg.Limits.DefaultCols != 30 || cfg.Limits.MaxRows != 500 {
		t.Errorf("defaults lost: %+v %+v", cfg.Cache, cfg.Limits)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SHEETPREVIEW_ROOT", "/data")
	t.Setenv("SHEETPREVIEW_CACHE_TTL", "2m")
	t.Setenv("SHEETPREVIEW_CACHE_MAX_ENTRIES", "3")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Root != "/data" || cfg.Cache.TTL != 2*time.Minute || cfg.Cache.MaxEntries != 3 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("SHEETPREVIEW_CACHE_TTL", "soon")
	if _, err := Load(""); err == nil {
		t.Error("expected error for invalid TTL")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Limits.MaxRows = 10
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when maxRows < defaultRows")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
