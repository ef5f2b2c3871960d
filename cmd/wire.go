package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"selectest.dev/pkg/selectest/internal/adapter"
	"selectest.dev/pkg/selectest/internal/domain"
	m "selectest.dev/pkg/selectest/internal/model"
)

// buildSelector wires the production selector from viper configuration.
func buildSelector() (domain.Selector, error) {
	serviceConfig, err := adapter.LoadServiceConfig(m.Path(viper.GetString(selectedTestsConfigKey)))
	if err != nil {
		return nil, err
	}

	policy, err := domain.NewSelectionPolicy(
		viper.GetFloat64(thresholdKey),
		concat(domain.DefaultExcludedTaskNames, viper.GetStringSlice(excludeTasksKey)),
		concat(domain.DefaultExcludedTaskPatterns, viper.GetStringSlice(excludePatternsKey)),
	)
	if err != nil {
		return nil, fmt.Errorf("selection policy: %w", err)
	}

	classifier, err := domain.NewGlobTestClassifier(
		viper.GetStringSlice(testFilePatternsKey),
		viper.GetStringSlice(testFileExcludesKey),
	)
	if err != nil {
		return nil, err
	}

	service := adapter.NewHTTPRelevanceService(serviceConfig,
		adapter.WithRetryMax(viper.GetInt(serviceRetryMaxKey)),
		adapter.WithTimeout(time.Duration(viper.GetInt64(serviceTimeoutKey))*time.Second),
	)
	suites := adapter.NewYAMLSuiteStore(viper.GetString(repoRootKey))
	suitesDir := m.Path(viper.GetString(suitesDirKey))
	mapper := domain.NewSuiteTestTaskMapper(suites, suitesDir, policy)

	return domain.NewSelector(
		adapter.NewYAMLProjectConfigStore(m.Path(viper.GetString(evergreenFileKey))),
		adapter.NewYAMLExpansionReader(),
		domain.NewTestRelevanceResolver(service, classifier, mapper, policy),
		domain.NewTaskRelevanceResolver(service, policy),
		domain.NewTaskConfigResolver(),
		domain.NewSubSuiteGenerator(suites, suitesDir),
	), nil
}

func concat(base, extra []string) []string {
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)

	return append(out, extra...)
}
