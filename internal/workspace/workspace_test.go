package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, WindsurfDir, "rules"), 0755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	if got := FindRoot(nested); got != root {
		t.Errorf("FindRoot(nested) = %q, want %q", got, root)
	}
	if got := FindRoot(root); got != root {
		t.Errorf("FindRoot(root) = %q, want %q", got, root)
	}
}

func TestFindRootNoMarker(t *testing.T) {
	dir := t.TempDir()
	if got := FindRoot(dir); got != dir {
		t.Errorf("FindRoot(unmarked) = %q, want %q", got, dir)
	}
}

func TestRulesDirExplicitWins(t *testing.T) {
	if got := RulesDir("/tmp/custom", "ignored"); got != "/tmp/custom" {
		t.Errorf("RulesDir(explicit) = %q, want /tmp/custom", got)
	}
}

func TestRulesDirRelativeFromRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, WindsurfDir, "rules"), 0755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(root)

	// From the workspace root the result is workspace-relative, so
	// diagnostics read ".windsurf/rules/x.md" rather than an absolute path.
	if got := RulesDir("", ""); got != DefaultRulesDir {
		t.Errorf("RulesDir() = %q, want %q", got, DefaultRulesDir)
	}
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), WindsurfDir, "rules")

	path, err := Init(dir, false)
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("starter rule not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("starter rule is empty")
	}

	// Second init without force must refuse.
	if _, err := Init(dir, false); !errors.Is(err, ErrExists) {
		t.Errorf("Init(existing) error = %v, want ErrExists", err)
	}
	// Force overwrites.
	if _, err := Init(dir, true); err != nil {
		t.Errorf("Init(force) error: %v", err)
	}
}
