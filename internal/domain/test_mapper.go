package domain

import (
	"context"
	"io/fs"
	"log/slog"

	"github.com/cockroachdb/errors"

	"selectest.dev/pkg/selectest/internal/adapter"
	m "selectest.dev/pkg/selectest/internal/model"
)

// TestTaskMapper groups test files by the variant tasks whose suites include them.
type TestTaskMapper interface {
	MapTestsToTasks(ctx context.Context, tests []m.Path, variant *m.Variant) (map[string]m.TaskTests, error)
}

// SuiteTestTaskMapper maps tests to tasks through resmoke suite selectors.
type SuiteTestTaskMapper struct {
	adapter.SuiteStore
	suitesDir m.Path
	policy    SelectionPolicy
}

// NewSuiteTestTaskMapper constructs a SuiteTestTaskMapper reading suites from suitesDir.
func NewSuiteTestTaskMapper(store adapter.SuiteStore, suitesDir m.Path, policy SelectionPolicy) *SuiteTestTaskMapper {
	return &SuiteTestTaskMapper{SuiteStore: store, suitesDir: suitesDir, policy: policy}
}

// MapTestsToTasks implements TestTaskMapper. Tasks without a suite file
// are skipped; tasks with no matching tests are left out of the result.
func (t *SuiteTestTaskMapper) MapTestsToTasks(ctx context.Context, tests []m.Path, variant *m.Variant) (map[string]m.TaskTests, error) {
	result := map[string]m.TaskTests{}
	suites := map[string]*m.SuiteConfig{}

	for _, task := range variant.Tasks() {
		if t.policy.Excludes(task.Name) || !RunsResmoke(task) {
			continue
		}

		suiteName := SuiteName(task)

		suite, ok := suites[suiteName]
		if !ok {
			loaded, err := t.LoadSuite(ctx, t.suitesDir, suiteName)
			if err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					return nil, wrapConfiguration(err, "load suite for task %s", task.Name)
				}

				slog.Debug("Suite file not found", "suite", suiteName, "task", task.Name)
			} else {
				suite = &loaded
			}

			suites[suiteName] = suite
		}

		if suite == nil {
			continue
		}

		var matched []string

		for _, test := range tests {
			name := string(test)
			if adapter.MatchesAny(suite.Roots, name) && !adapter.MatchesAny(suite.ExcludeFiles, name) {
				matched = append(matched, name)
			}
		}

		if len(matched) == 0 {
			continue
		}

		result[task.Name] = m.TaskTests{Tests: matched}

		slog.Debug("Mapped tests to task", "task", task.Name, "suite", suiteName, "tests", len(matched))
	}

	return result, nil
}
