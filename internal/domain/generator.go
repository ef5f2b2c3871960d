package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strconv"

	"gopkg.in/yaml.v3"

	"selectest.dev/pkg/selectest/internal/adapter"
	m "selectest.dev/pkg/selectest/internal/model"
)

// Function names used by generated tasks.
const (
	DoSetupFunc           = "do setup"
	RunGeneratedTestsFunc = "run generated tests"
)

const miscSuffix = "misc"

// keyGenTaskConfigDir points generated tasks at the folder the selection
// task published their suite files under.
const keyGenTaskConfigDir = "gen_task_config_location"

// Suite is one generated sub-suite of a source suite. Sub-suites are
// named after the generated task so tasks sharing a source suite write
// distinct files.
type Suite struct {
	Index int
	Name  string
	Tests []string
}

// FileName is the name of the suite file the sub-suite is written to.
func (s Suite) FileName() string {
	return s.Name + ".yml"
}

// Generator turns a GenerationConfig into sub-suites, suite files and
// task definitions.
type Generator interface {
	ListSuites(ctx context.Context, config GenerationConfig) ([]Suite, error)
	GenerateSuiteFiles(ctx context.Context, config GenerationConfig, suites []Suite) (m.ArtifactSet, error)
	GenerateTaskDefinitions(build *m.BuildConfig, config GenerationConfig, suites []Suite)
}

// SubSuiteGenerator splits suites into a fixed number of sub-suites.
type SubSuiteGenerator struct {
	adapter.SuiteStore
	suitesDir m.Path
}

// NewSubSuiteGenerator constructs a SubSuiteGenerator reading source
// suites from suitesDir, the same directory tests are mapped against.
func NewSubSuiteGenerator(store adapter.SuiteStore, suitesDir m.Path) *SubSuiteGenerator {
	return &SubSuiteGenerator{SuiteStore: store, suitesDir: suitesDir}
}

// ListSuites implements Generator.
func (g *SubSuiteGenerator) ListSuites(ctx context.Context, config GenerationConfig) ([]Suite, error) {
	tests := config.SelectedTests
	if config.CreateMiscSuite() {
		source, err := g.LoadSuite(ctx, g.suitesDir, config.Suite)
		if err != nil {
			return nil, wrapConfiguration(err, "load suite %s for task %s", config.Suite, config.TaskName)
		}

		tests, err = g.ResolveTests(ctx, source)
		if err != nil {
			return nil, wrapConfiguration(err, "resolve tests of suite %s", config.Suite)
		}
	}

	count := subSuiteCount(len(tests), config)
	suites := make([]Suite, count)

	for i := range suites {
		suites[i] = Suite{Index: i, Name: config.Task() + "_" + strconv.Itoa(i)}
	}

	for i, test := range tests {
		suites[i%count].Tests = append(suites[i%count].Tests, test)
	}

	slog.Debug("Split suite", "suite", config.Suite, "tests", len(tests), "subSuites", count)

	return suites, nil
}

func subSuiteCount(tests int, config GenerationConfig) int {
	if tests == 0 {
		return 0
	}

	count := min(config.FallbackNumSubSuites, tests)
	if config.MaxSubSuites > 0 {
		count = min(count, config.MaxSubSuites)
	}

	count = max(count, 1)

	if limit := config.MaxTestsPerSuite; limit > 0 && (tests+count-1)/count > limit {
		count = (tests + limit - 1) / limit
	}

	return count
}

// GenerateSuiteFiles implements Generator. A misc suite running
// everything not covered by the sub-suites is added for full-suite runs.
func (g *SubSuiteGenerator) GenerateSuiteFiles(ctx context.Context, config GenerationConfig, suites []Suite) (m.ArtifactSet, error) {
	source, err := g.LoadSuite(ctx, g.suitesDir, config.Suite)
	if err != nil {
		return nil, wrapConfiguration(err, "load suite %s for task %s", config.Suite, config.TaskName)
	}

	artifacts := m.ArtifactSet{}
	generated := make([]string, 0)

	for _, suite := range suites {
		content, err := renderSuite(source, suite.Tests, nil)
		if err != nil {
			return nil, fmt.Errorf("render suite %s: %w", suite.Name, err)
		}

		artifacts[suite.FileName()] = content
		generated = append(generated, suite.Tests...)
	}

	if config.CreateMiscSuite() {
		excludes := append(append([]string(nil), source.ExcludeFiles...), generated...)

		content, err := renderSuite(source, source.Roots, excludes)
		if err != nil {
			return nil, fmt.Errorf("render misc suite of %s: %w", config.Suite, err)
		}

		artifacts[miscSuite(config).FileName()] = content
	}

	return artifacts, nil
}

// GenerateTaskDefinitions implements Generator.
func (g *SubSuiteGenerator) GenerateTaskDefinitions(build *m.BuildConfig, config GenerationConfig, suites []Suite) {
	all := append([]Suite(nil), suites...)
	if config.CreateMiscSuite() {
		all = append(all, miscSuite(config))
	}

	var distros []string
	if config.UseLargeDistro {
		distros = []string{config.LargeDistroName}
	}

	names := make([]string, 0, len(all))

	for _, suite := range all {
		name := taskNameFor(config, suite)
		names = append(names, name)

		build.AddTask(m.GeneratedTask{
			Name: name,
			Commands: []m.FunctionCall{
				{Func: DoSetupFunc},
				{Func: RunGeneratedTestsFunc, Vars: generatedTaskVars(config, suite)},
			},
		})
	}

	if len(names) == 0 {
		return
	}

	variant := build.Variant(config.BuildVariant)
	for _, name := range names {
		variant.Tasks = append(variant.Tasks, m.VariantTask{Name: name, Distros: distros})
	}

	variant.DisplayTasks = append(variant.DisplayTasks, m.DisplayTask{
		Name:           config.DisplayTaskName(),
		ExecutionTasks: names,
	})
}

func miscSuite(config GenerationConfig) Suite {
	return Suite{Index: -1, Name: config.Task() + "_" + miscSuffix}
}

func taskNameFor(config GenerationConfig, suite Suite) string {
	index := miscSuffix
	if suite.Index >= 0 {
		index = strconv.Itoa(suite.Index)
	}

	return fmt.Sprintf("%s_%s_%s", config.Task(), index, config.BuildVariant)
}

func generatedTaskVars(config GenerationConfig, suite Suite) map[string]string {
	args := fmt.Sprintf("--suites=%s --originSuite=%s",
		path.Join(config.GeneratedConfigDir, suite.FileName()), config.Suite)
	if config.ResmokeArgs != "" {
		args += " " + config.ResmokeArgs
	}

	return map[string]string{
		m.KeyResmokeArgs:       args,
		keyRunMultipleJobs:     config.RunMultipleJobs,
		keyResmokeRepeatSuites: strconv.Itoa(config.ResmokeRepeatSuites),
		keyGenTaskConfigDir:    path.Join(config.RunTestsTask(), config.RunTestsBuildVariant(), config.RunTestsBuildID()),
	}
}

func renderSuite(source m.SuiteConfig, roots, excludes []string) (string, error) {
	doc := make(map[string]any, len(source.Raw)+1)
	for key, value := range source.Raw {
		doc[key] = value
	}

	selector := map[string]any{}
	if existing, ok := source.Raw["selector"].(map[string]any); ok {
		for key, value := range existing {
			selector[key] = value
		}
	}

	selector["roots"] = append([]string(nil), roots...)
	delete(selector, "exclude_files")

	if len(excludes) > 0 {
		selector["exclude_files"] = excludes
	}

	doc["selector"] = selector

	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", err
	}

	return string(out), nil
}
