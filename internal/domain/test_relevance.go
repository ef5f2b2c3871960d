package domain

import (
	"context"
	"log/slog"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"selectest.dev/pkg/selectest/internal/adapter"
	m "selectest.dev/pkg/selectest/internal/model"
)

// DefaultTestFilePatterns match the files the relevance service may
// report that are runnable resmoke tests.
var DefaultTestFilePatterns = []string{"jstests/**/*.js"}

// TestClassifier decides whether a path names a runnable test file.
type TestClassifier interface {
	IsTestFile(path m.Path) bool
}

// GlobTestClassifier classifies test files by include and exclude globs.
type GlobTestClassifier struct {
	patterns []string
	excludes []string
}

// NewGlobTestClassifier validates the globs and builds a classifier.
// Empty patterns fall back to DefaultTestFilePatterns.
func NewGlobTestClassifier(patterns, excludes []string) (*GlobTestClassifier, error) {
	if len(patterns) == 0 {
		patterns = DefaultTestFilePatterns
	}

	for _, pattern := range append(append([]string(nil), patterns...), excludes...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, configurationErrorf("invalid test file pattern %q", pattern)
		}
	}

	return &GlobTestClassifier{
		patterns: append([]string(nil), patterns...),
		excludes: append([]string(nil), excludes...),
	}, nil
}

// IsTestFile implements TestClassifier.
func (c *GlobTestClassifier) IsTestFile(path m.Path) bool {
	name := string(path)

	return adapter.MatchesAny(c.patterns, name) && !adapter.MatchesAny(c.excludes, name)
}

// TestRelevanceResolver finds test files related to a change and the
// tasks that run them.
type TestRelevanceResolver struct {
	adapter.RelevanceService
	classifier TestClassifier
	mapper     TestTaskMapper
	policy     SelectionPolicy
}

// NewTestRelevanceResolver constructs a TestRelevanceResolver.
func NewTestRelevanceResolver(service adapter.RelevanceService, classifier TestClassifier, mapper TestTaskMapper, policy SelectionPolicy) *TestRelevanceResolver {
	return &TestRelevanceResolver{
		RelevanceService: service,
		classifier:       classifier,
		mapper:           mapper,
		policy:           policy,
	}
}

// SelectTestFiles returns the sorted, de-duplicated test files related to changed.
// Entries the classifier rejects are dropped.
func (r *TestRelevanceResolver) SelectTestFiles(ctx context.Context, changed m.ChangedFiles) ([]m.Path, error) {
	mappings, err := r.GetTestMappings(ctx, r.policy.Threshold, changed)
	if err != nil {
		return nil, wrapService(err, "get test mappings")
	}

	seen := map[m.Path]struct{}{}

	for _, mapping := range mappings {
		for _, testFile := range mapping.TestFiles {
			path := m.Path(testFile.Name)
			if !r.classifier.IsTestFile(path) {
				slog.Debug("Ignoring non-test file from test mappings", "file", path, "source", mapping.SourceFile)
				continue
			}

			seen[path] = struct{}{}
		}
	}

	tests := make([]m.Path, 0, len(seen))
	for path := range seen {
		tests = append(tests, path)
	}

	sort.Slice(tests, func(i, j int) bool { return tests[i] < tests[j] })

	slog.Debug("Selected related test files", "count", len(tests))

	return tests, nil
}

// TestsByTask groups test files by the variant tasks that run them.
func (r *TestRelevanceResolver) TestsByTask(ctx context.Context, tests []m.Path, variant *m.Variant) (map[string]m.TaskTests, error) {
	if len(tests) == 0 {
		return map[string]m.TaskTests{}, nil
	}

	return r.mapper.MapTestsToTasks(ctx, tests, variant)
}
