package domain

import (
	m "selectest.dev/pkg/selectest/internal/model"
)

// Function names of the task commands the engine understands.
const (
	GenerateResmokeTasksFunc = "generate resmoke tasks"
	RunTestsFunc             = "run tests"
)

// plainTaskFallbackSubSuites preserves "run everything" for tasks that
// have no sub-suite splitting of their own.
const plainTaskFallbackSubSuites = "1"

// TaskKind tags the two shapes of selectable task.
type TaskKind int

// Available TaskKind values.
const (
	KindRun TaskKind = iota
	KindGenerator
)

func (k TaskKind) String() string {
	if k == KindGenerator {
		return "generator"
	}

	return "run"
}

// TaskDefinition is a task resolved against its build variant.
type TaskDefinition interface {
	Name() string
	BuildVariant() string
	Kind() TaskKind
	// ExtractArgs returns a private copy of the task's generation arguments.
	ExtractArgs() (m.ArgumentSet, error)
}

// NewTaskDefinition tags a task as a generator or a plain run task.
func NewTaskDefinition(task *m.Task, variant string) TaskDefinition {
	if command, ok := task.FindCommand(GenerateResmokeTasksFunc); ok {
		return generatorTask{name: task.Name, variant: variant, command: command}
	}

	return runTask{task: task, variant: variant}
}

type generatorTask struct {
	name    string
	variant string
	command *m.Command
}

func (t generatorTask) Name() string         { return t.name }
func (t generatorTask) BuildVariant() string { return t.variant }
func (t generatorTask) Kind() TaskKind       { return KindGenerator }

func (t generatorTask) ExtractArgs() (m.ArgumentSet, error) {
	return t.command.Vars.Clone(), nil
}

type runTask struct {
	task    *m.Task
	variant string
}

func (t runTask) Name() string         { return t.task.Name }
func (t runTask) BuildVariant() string { return t.variant }
func (t runTask) Kind() TaskKind       { return KindRun }

func (t runTask) ExtractArgs() (m.ArgumentSet, error) {
	command, ok := t.task.FindCommand(RunTestsFunc)
	if !ok {
		return nil, configurationErrorf("task %s on %s has no %q command", t.task.Name, t.variant, RunTestsFunc)
	}

	args := command.Vars.Clone()
	args[m.KeyFallbackNumSubSuites] = plainTaskFallbackSubSuites

	return args, nil
}

// SuiteName returns the resmoke suite a task runs: the --suites argument,
// an explicit suite var, or the task name without its generator suffix.
// The order matches TaskConfigResolver.Resolve.
func SuiteName(task *m.Task) string {
	for _, funcName := range []string{GenerateResmokeTasksFunc, RunTestsFunc} {
		command, ok := task.FindCommand(funcName)
		if !ok {
			continue
		}

		if suite, ok := GetResmokeArg(command.Vars[m.KeyResmokeArgs], suitesArg); ok {
			return suite
		}

		if suite := command.Vars[m.KeySuite]; suite != "" {
			return suite
		}

		break
	}

	return RemoveGenSuffix(task.Name)
}

// RunsResmoke reports whether a task executes or generates resmoke suites.
func RunsResmoke(task *m.Task) bool {
	if _, ok := task.FindCommand(GenerateResmokeTasksFunc); ok {
		return true
	}

	_, ok := task.FindCommand(RunTestsFunc)

	return ok
}
