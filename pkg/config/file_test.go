package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMissingFileUsesDefaults(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "nonexistent.json"))
	if err != nil {
		t.Fatalf("NewFile returned error: %v", err)
	}

	if f.Decimals() != 0 {
		t.Fatalf("expected default decimals 0, got %d", f.Decimals())
	}
	if f.Unit() != "deg" {
		t.Fatalf("expected default unit deg, got %q", f.Unit())
	}
	if !f.Color() {
		t.Fatalf("expected color enabled by default")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpolar.json")

	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile returned error: %v", err)
	}

	f.SetDecimals(2)
	f.SetUnit("rad")
	f.SetColor(false)
	if err := f.Save(); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	g, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile after save returned error: %v", err)
	}
	if g.Decimals() != 2 || g.Unit() != "rad" || g.Color() {
		t.Fatalf("reloaded config does not match saved config: %d %q %t",
			g.Decimals(), g.Unit(), g.Color())
	}
}

func TestEmptyFileIsEmptyConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpolar.json")
	if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile returned error: %v", err)
	}
	if f.Decimals() != 0 || f.Unit() != "deg" {
		t.Fatalf("expected defaults for empty file, got %d %q", f.Decimals(), f.Unit())
	}
}

func TestSetUnitRejectsUnknownToken(t *testing.T) {
	f := NewFileFromConfig(&RawFileConfig{}, "")

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown unit token")
		}
	}()
	f.SetUnit("foo")
}
