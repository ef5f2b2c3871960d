package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	m "selectest.dev/pkg/selectest/internal/model"
)

// SuiteStore loads resmoke suite definitions and expands their membership.
type SuiteStore interface {
	// LoadSuite reads <dir>/<name>.yml.
	LoadSuite(ctx context.Context, dir m.Path, name string) (m.SuiteConfig, error)
	// ResolveTests expands the suite's roots against the repository.
	ResolveTests(ctx context.Context, suite m.SuiteConfig) ([]string, error)
}

// YAMLSuiteStore reads suite files relative to a repository root.
type YAMLSuiteStore struct {
	root string
}

// NewYAMLSuiteStore constructs a YAMLSuiteStore rooted at repoRoot.
func NewYAMLSuiteStore(repoRoot string) *YAMLSuiteStore {
	return &YAMLSuiteStore{root: repoRoot}
}

// LoadSuite implements SuiteStore.
func (s *YAMLSuiteStore) LoadSuite(ctx context.Context, dir m.Path, name string) (m.SuiteConfig, error) {
	if err := ctx.Err(); err != nil {
		return m.SuiteConfig{}, err
	}

	path := filepath.Join(s.root, string(dir), name+".yml")

	// #nosec G304 - suite path comes from project configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return m.SuiteConfig{}, fmt.Errorf("read suite %s: %w", name, err)
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return m.SuiteConfig{}, fmt.Errorf("parse suite %s: %w", name, err)
	}

	suite := m.SuiteConfig{Name: name, Raw: raw}

	if selector, ok := raw["selector"].(map[string]any); ok {
		suite.Roots = stringList(selector["roots"])
		suite.ExcludeFiles = stringList(selector["exclude_files"])
	}

	return suite, nil
}

// ResolveTests implements SuiteStore.
func (s *YAMLSuiteStore) ResolveTests(ctx context.Context, suite m.SuiteConfig) ([]string, error) {
	fsys := os.DirFS(s.root)
	seen := map[string]struct{}{}

	for _, root := range suite.Roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		matches, err := doublestar.Glob(fsys, root, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand root %q of suite %s: %w", root, suite.Name, err)
		}

		for _, match := range matches {
			if MatchesAny(suite.ExcludeFiles, match) {
				continue
			}

			seen[match] = struct{}{}
		}
	}

	tests := make([]string, 0, len(seen))
	for test := range seen {
		tests = append(tests, test)
	}

	sort.Strings(tests)

	return tests, nil
}

// MatchesAny reports whether path matches any of the glob patterns.
// Malformed patterns never match.
func MatchesAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}

	return false
}

func stringList(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(items))

	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}

	return out
}
