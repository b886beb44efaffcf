package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	p := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadFullManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[package]
name = "demo"

[check]
deny_warnings = true
no_warnings = false
max_diagnostics = 50
`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Name != "demo" {
		t.Errorf("name = %q", m.Name)
	}
	if m.Root != dir {
		t.Errorf("root = %q, want %q", m.Root, dir)
	}
	if !m.SetDenyWarnings || !m.DenyWarnings {
		t.Errorf("deny_warnings: set=%v value=%v", m.SetDenyWarnings, m.DenyWarnings)
	}
	if !m.SetNoWarnings || m.NoWarnings {
		t.Errorf("no_warnings: set=%v value=%v", m.SetNoWarnings, m.NoWarnings)
	}
	if !m.SetMaxDiagnostics || m.MaxDiagnostics != 50 {
		t.Errorf("max_diagnostics: set=%v value=%d", m.SetMaxDiagnostics, m.MaxDiagnostics)
	}
}

func TestLoadMinimalManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package]\nname = \"demo\"\n")

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// отсутствующие ключи не считаются заданными
	if m.SetDenyWarnings || m.SetNoWarnings || m.SetMaxDiagnostics {
		t.Errorf("unset keys reported as set: %+v", m)
	}
}

func TestLoadRejectsMissingName(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[check]\ndeny_warnings = true\n")

	if _, err := Load(path); !errors.Is(err, ErrPackageNameMissing) {
		t.Errorf("err = %v, want ErrPackageNameMissing", err)
	}
}

func TestLoadRejectsNegativeMax(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package]\nname = \"demo\"\n[check]\nmax_diagnostics = -1\n")

	if _, err := Load(path); err == nil {
		t.Error("negative max_diagnostics must be rejected")
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n")
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found from nested dir")
	}
	if path != filepath.Join(root, ManifestName) {
		t.Errorf("path = %q", path)
	}
}

func TestDiscoverWithoutManifest(t *testing.T) {
	m, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if m != nil {
		t.Errorf("want nil manifest, got %+v", m)
	}
}
