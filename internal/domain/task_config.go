package domain

import (
	"log/slog"

	m "selectest.dev/pkg/selectest/internal/model"
)

// Expansion keys identifying the selection task itself.
const (
	expansionTaskName     = "task_name"
	expansionBuildVariant = "build_variant"
	expansionBuildID      = "build_id"
)

// GeneratingIdentityFromExpansions reads the invoking task's identity.
// Generated output is published under this identity.
func GeneratingIdentityFromExpansions(expansions m.Expansions) (m.GeneratingIdentity, error) {
	identity := m.GeneratingIdentity{
		Task:         expansions[expansionTaskName],
		BuildVariant: expansions[expansionBuildVariant],
		BuildID:      expansions[expansionBuildID],
	}

	for _, key := range []string{expansionTaskName, expansionBuildVariant, expansionBuildID} {
		if expansions[key] == "" {
			return m.GeneratingIdentity{}, configurationErrorf("expansion file is missing required key %q", key)
		}
	}

	return identity, nil
}

// TaskConfigResolver reconstructs the generation parameters of a selected task.
type TaskConfigResolver struct{}

// NewTaskConfigResolver constructs a TaskConfigResolver.
func NewTaskConfigResolver() *TaskConfigResolver {
	return &TaskConfigResolver{}
}

// Resolve builds the TaskConfig for taskName on variant. The --suites
// selector is moved out of resmoke_args into Suite so an explicit test
// subset is not overridden by the full suite membership downstream.
func (r *TaskConfigResolver) Resolve(identity m.GeneratingIdentity, taskName string, variant *m.Variant) (m.TaskConfig, error) {
	task, ok := FindTask(variant, taskName)
	if !ok {
		return m.TaskConfig{}, configurationErrorf("task %s not found on build variant %s", taskName, variant.Name)
	}

	definition := NewTaskDefinition(task, variant.Name)

	args, err := definition.ExtractArgs()
	if err != nil {
		return m.TaskConfig{}, err
	}

	resmokeArgs, ok := args[m.KeyResmokeArgs]
	if !ok {
		return m.TaskConfig{}, configurationErrorf("task %s on %s has no %s", task.Name, variant.Name, m.KeyResmokeArgs)
	}

	config := m.TaskConfig{
		TaskName:             definition.Name(),
		BuildVariant:         definition.BuildVariant(),
		Suite:                args[m.KeySuite],
		ResmokeArgs:          resmokeArgs,
		FallbackNumSubSuites: args[m.KeyFallbackNumSubSuites],
		Generating:           identity,
	}

	if suite, ok := GetResmokeArg(resmokeArgs, suitesArg); ok {
		config.Suite = suite
		config.ResmokeArgs = RemoveResmokeArg(resmokeArgs, suitesArg)
	}

	delete(args, m.KeyResmokeArgs)
	delete(args, m.KeySuite)
	delete(args, m.KeyFallbackNumSubSuites)
	config.Vars = args

	slog.Debug("Resolved task config", "task", config.TaskName, "kind", definition.Kind(), "suite", config.Suite, "resmokeArgs", config.ResmokeArgs)

	return config, nil
}
