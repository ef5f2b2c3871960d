package adapter

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFixture(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

const coreSuite = `test_kind: js_test
selector:
  roots:
  - jstests/core/**/*.js
  exclude_files:
  - jstests/core/txns/**
executor:
  config:
    shell_options:
      readMode: commands
`

func TestYAMLSuiteStore_LoadSuite(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, filepath.Join(root, "suites", "core.yml"), coreSuite)

	store := NewYAMLSuiteStore(root)

	suite, err := store.LoadSuite(context.Background(), "suites", "core")
	if err != nil {
		t.Fatalf("LoadSuite() error = %v", err)
	}

	if suite.Name != "core" {
		t.Fatalf("Name = %q", suite.Name)
	}

	if !reflect.DeepEqual(suite.Roots, []string{"jstests/core/**/*.js"}) {
		t.Fatalf("Roots = %v", suite.Roots)
	}

	if !reflect.DeepEqual(suite.ExcludeFiles, []string{"jstests/core/txns/**"}) {
		t.Fatalf("ExcludeFiles = %v", suite.ExcludeFiles)
	}

	if suite.Raw["test_kind"] != "js_test" {
		t.Fatalf("Raw lost test_kind: %v", suite.Raw)
	}
}

func TestYAMLSuiteStore_LoadSuiteMissing(t *testing.T) {
	_, err := NewYAMLSuiteStore(t.TempDir()).LoadSuite(context.Background(), "suites", "absent")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("LoadSuite() error = %v, want fs.ErrNotExist", err)
	}
}

func TestYAMLSuiteStore_LoadSuiteInvalid(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, filepath.Join(root, "suites", "broken.yml"), "selector: [roots\n")

	_, err := NewYAMLSuiteStore(root).LoadSuite(context.Background(), "suites", "broken")
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("LoadSuite() error = %v, want a parse error", err)
	}
}

func TestYAMLSuiteStore_ResolveTests(t *testing.T) {
	root := t.TempDir()
	for _, path := range []string{
		"jstests/core/b.js",
		"jstests/core/a.js",
		"jstests/core/nested/c.js",
		"jstests/core/txns/d.js",
		"jstests/core/README.md",
	} {
		writeFixture(t, filepath.Join(root, path), "// test\n")
	}

	store := NewYAMLSuiteStore(root)
	writeFixture(t, filepath.Join(root, "suites", "core.yml"), coreSuite)

	suite, err := store.LoadSuite(context.Background(), "suites", "core")
	if err != nil {
		t.Fatalf("LoadSuite() error = %v", err)
	}

	suite.Roots = append(suite.Roots, "jstests/core/a.js")

	tests, err := store.ResolveTests(context.Background(), suite)
	if err != nil {
		t.Fatalf("ResolveTests() error = %v", err)
	}

	want := []string{"jstests/core/a.js", "jstests/core/b.js", "jstests/core/nested/c.js"}
	if !reflect.DeepEqual(tests, want) {
		t.Fatalf("ResolveTests() = %v, want %v", tests, want)
	}
}

func TestYAMLSuiteStore_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewYAMLSuiteStore(t.TempDir()).LoadSuite(ctx, "suites", "core"); !errors.Is(err, context.Canceled) {
		t.Fatalf("LoadSuite() error = %v, want context.Canceled", err)
	}
}

func TestMatchesAny(t *testing.T) {
	patterns := []string{"jstests/core/**", "jstests/auth/*.js", "[bad"}

	tests := []struct {
		path string
		want bool
	}{
		{"jstests/core/a.js", true},
		{"jstests/core/deep/nested/a.js", true},
		{"jstests/auth/a.js", true},
		{"jstests/auth/nested/a.js", false},
		{"[bad", false},
	}

	for _, tt := range tests {
		if got := MatchesAny(patterns, tt.path); got != tt.want {
			t.Errorf("MatchesAny(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
