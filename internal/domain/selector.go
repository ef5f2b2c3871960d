// Package domain implements test and task selection for a code change
// and the generation of the resulting sub-suites.
package domain

import (
	"context"
	"log/slog"
	"sort"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"selectest.dev/pkg/selectest/internal/adapter"
	m "selectest.dev/pkg/selectest/internal/model"
)

// ManifestFileName is the artifact holding the generated build configuration.
const ManifestFileName = "selected_tests_config.json"

// Names of the configuration layers, lowest precedence first.
const (
	layerVariantExpansions = "variant expansions"
	layerExpansionFile     = "expansion file"
	layerTaskConfig        = "task config"
)

// RunArgs are the inputs of one selection run.
type RunArgs struct {
	ChangedFiles  m.ChangedFiles
	BuildVariant  string
	ExpansionFile m.Path
}

// Selector computes the tasks and tests relevant to a change.
type Selector interface {
	// Plan resolves the per-task configs without generating anything.
	Plan(ctx context.Context, args RunArgs) (m.SelectionResult, error)
	// Run plans and generates the suite files and the task manifest.
	Run(ctx context.Context, args RunArgs) (m.ArtifactSet, error)
}

type selector struct {
	adapter.ProjectConfigStore
	adapter.ExpansionReader
	Generator

	tests   *TestRelevanceResolver
	tasks   *TaskRelevanceResolver
	configs *TaskConfigResolver
	tracer  trace.Tracer
}

// NewSelector wires a Selector from its collaborators.
func NewSelector(
	projects adapter.ProjectConfigStore,
	expansions adapter.ExpansionReader,
	tests *TestRelevanceResolver,
	tasks *TaskRelevanceResolver,
	configs *TaskConfigResolver,
	generator Generator,
) Selector {
	return &selector{
		ProjectConfigStore: projects,
		ExpansionReader:    expansions,
		Generator:          generator,
		tests:              tests,
		tasks:              tasks,
		configs:            configs,
		tracer:             otel.Tracer("selectest/domain"),
	}
}

func (s *selector) Plan(ctx context.Context, args RunArgs) (m.SelectionResult, error) {
	ctx, span := s.tracer.Start(ctx, "selector.plan", trace.WithAttributes(
		attribute.String("build_variant", args.BuildVariant),
		attribute.Int("changed_files", len(args.ChangedFiles)),
	))
	defer span.End()

	_, _, result, err := s.plan(ctx, args)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	return result, nil
}

func (s *selector) Run(ctx context.Context, args RunArgs) (m.ArtifactSet, error) {
	ctx, span := s.tracer.Start(ctx, "selector.run", trace.WithAttributes(
		attribute.String("build_variant", args.BuildVariant),
		attribute.Int("changed_files", len(args.ChangedFiles)),
	))
	defer span.End()

	artifacts, err := s.run(ctx, args)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	span.SetAttributes(attribute.Int("artifacts", len(artifacts)))

	return artifacts, nil
}

func (s *selector) run(ctx context.Context, args RunArgs) (m.ArtifactSet, error) {
	variant, expansions, selection, err := s.plan(ctx, args)
	if err != nil {
		return nil, err
	}

	artifacts := m.ArtifactSet{}
	build := &m.BuildConfig{}

	for _, name := range selection.Names() {
		taskConfig := selection[name]

		config, err := NewGenerationConfig(NewLayeredConfig(
			Layer{Name: layerVariantExpansions, Values: stringLayer(variant.Expansions)},
			Layer{Name: layerExpansionFile, Values: stringLayer(expansions)},
			Layer{Name: layerTaskConfig, Values: taskConfig.Layer()},
		))
		if err != nil {
			return nil, errors.Wrapf(err, "build generation config for task %s", name)
		}

		suites, err := s.ListSuites(ctx, config)
		if err != nil {
			return nil, errors.Wrapf(err, "list suites for task %s", name)
		}

		files, err := s.GenerateSuiteFiles(ctx, config, suites)
		if err != nil {
			return nil, errors.Wrapf(err, "generate suite files for task %s", name)
		}

		for _, file := range files.Names() {
			if _, ok := artifacts[file]; ok {
				return nil, configurationErrorf("task %s generates %s, which another selected task already generated", name, file)
			}
		}

		artifacts.Add(files)
		s.GenerateTaskDefinitions(build, config, suites)

		slog.Info("Generated task", "task", name, "variant", config.BuildVariant, "subSuites", len(suites), "files", len(files))
	}

	manifest, err := build.JSON()
	if err != nil {
		return nil, errors.Wrap(err, "serialize build config")
	}

	artifacts[ManifestFileName] = manifest

	return artifacts, nil
}

// plan reads the expansion file only once a task is selected, so a
// change without related tasks needs no generating identity.
func (s *selector) plan(ctx context.Context, args RunArgs) (*m.Variant, m.Expansions, m.SelectionResult, error) {
	variant, err := s.GetVariant(ctx, args.BuildVariant)
	if err != nil {
		return nil, nil, nil, wrapConfiguration(err, "resolve build variant %s", args.BuildVariant)
	}

	testFiles, err := s.tests.SelectTestFiles(ctx, args.ChangedFiles)
	if err != nil {
		return nil, nil, nil, err
	}

	testsByTask, err := s.tests.TestsByTask(ctx, testFiles, variant)
	if err != nil {
		return nil, nil, nil, err
	}

	taskNames, err := s.tasks.SelectTasks(ctx, args.ChangedFiles, variant)
	if err != nil {
		return nil, nil, nil, err
	}

	if len(testsByTask) == 0 && len(taskNames) == 0 {
		slog.Info("No tasks selected", "variant", variant.Name)

		return variant, nil, m.SelectionResult{}, nil
	}

	expansions, err := s.Read(ctx, args.ExpansionFile)
	if err != nil {
		return nil, nil, nil, wrapConfiguration(err, "read expansion file %s", args.ExpansionFile)
	}

	identity, err := GeneratingIdentityFromExpansions(expansions)
	if err != nil {
		return nil, nil, nil, err
	}

	byTests, err := s.configsForTests(identity, variant, testsByTask)
	if err != nil {
		return nil, nil, nil, err
	}

	byTasks, err := s.configsForTasks(identity, variant, taskNames)
	if err != nil {
		return nil, nil, nil, err
	}

	selection := byTests.Merge(byTasks)

	slog.Info("Selected tasks", "variant", variant.Name, "byTests", len(byTests), "byTasks", len(byTasks), "total", len(selection))

	return variant, expansions, selection, nil
}

func (s *selector) configsForTests(identity m.GeneratingIdentity, variant *m.Variant, byTask map[string]m.TaskTests) (m.SelectionResult, error) {
	taskNames := make([]string, 0, len(byTask))
	for taskName := range byTask {
		taskNames = append(taskNames, taskName)
	}

	sort.Strings(taskNames)

	result := m.SelectionResult{}

	for _, taskName := range taskNames {
		config, err := s.configs.Resolve(identity, taskName, variant)
		if err != nil {
			return nil, err
		}

		result[taskName] = config.WithTests(byTask[taskName].Tests)
	}

	return result, nil
}

func (s *selector) configsForTasks(identity m.GeneratingIdentity, variant *m.Variant, taskNames []string) (m.SelectionResult, error) {
	result := m.SelectionResult{}

	for _, taskName := range taskNames {
		config, err := s.configs.Resolve(identity, taskName, variant)
		if err != nil {
			return nil, err
		}

		result[taskName] = config
	}

	return result, nil
}

func stringLayer(values map[string]string) map[string]any {
	out := make(map[string]any, len(values))
	for key, value := range values {
		out[key] = value
	}

	return out
}
