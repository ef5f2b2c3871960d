package model

import "sort"

// Configuration keys shared by task configs and generation configs.
const (
	KeyTaskName               = "task_name"
	KeyBuildVariant           = "build_variant"
	KeySuite                  = "suite"
	KeyResmokeArgs            = "resmoke_args"
	KeyFallbackNumSubSuites   = "fallback_num_sub_suites"
	KeyGeneratingTask         = "name_of_generating_task"
	KeyGeneratingBuildVariant = "name_of_generating_build_variant"
	KeyGeneratingBuildID      = "name_of_generating_build_id"
	KeySelectedTestsToRun     = "selected_tests_to_run"
)

// TestFile is a test file associated with a changed source file.
type TestFile struct {
	Name              string `json:"name"`
	TestFileSeenCount int    `json:"test_file_seen_count"`
}

// TestMapping associates a changed source file with related test files.
type TestMapping struct {
	SourceFile          string     `json:"source_file"`
	SourceFileSeenCount int        `json:"source_file_seen_count"`
	TestFiles           []TestFile `json:"test_files"`
}

// MappedTask is a task associated with a changed source file.
type MappedTask struct {
	Name      string `json:"name"`
	Variant   string `json:"variant"`
	FlipCount int    `json:"flip_count"`
}

// TaskMapping associates a changed source file with related tasks.
type TaskMapping struct {
	SourceFile          string       `json:"source_file"`
	SourceFileSeenCount int          `json:"source_file_seen_count"`
	Tasks               []MappedTask `json:"tasks"`
}

// GeneratingIdentity names the selection task whose output is being produced.
type GeneratingIdentity struct {
	Task         string
	BuildVariant string
	BuildID      string
}

// TaskTests is the subset of tests a task should run.
type TaskTests struct {
	Tests []string
}

// TaskConfig carries everything needed to regenerate one task's sub-suites.
// A nil Tests slice means the whole suite runs.
type TaskConfig struct {
	TaskName             string
	BuildVariant         string
	Suite                string
	ResmokeArgs          string
	FallbackNumSubSuites string
	Vars                 ArgumentSet
	Generating           GeneratingIdentity
	Tests                []string
}

// HasTestSubset reports whether the config restricts the suite to some tests.
func (c TaskConfig) HasTestSubset() bool {
	return c.Tests != nil
}

// WithTests returns a copy of the config restricted to the given tests.
func (c TaskConfig) WithTests(tests []string) TaskConfig {
	subset := make([]string, len(tests))
	copy(subset, tests)
	sort.Strings(subset)

	c.Tests = subset

	return c
}

// Layer renders the config as key/value pairs for layered merging.
func (c TaskConfig) Layer() map[string]any {
	values := make(map[string]any, len(c.Vars)+8)
	for key, value := range c.Vars {
		values[key] = value
	}

	values[KeyTaskName] = c.TaskName
	values[KeyBuildVariant] = c.BuildVariant
	values[KeyResmokeArgs] = c.ResmokeArgs
	values[KeyGeneratingTask] = c.Generating.Task
	values[KeyGeneratingBuildVariant] = c.Generating.BuildVariant
	values[KeyGeneratingBuildID] = c.Generating.BuildID

	if c.FallbackNumSubSuites != "" {
		values[KeyFallbackNumSubSuites] = c.FallbackNumSubSuites
	}

	if c.Suite != "" {
		values[KeySuite] = c.Suite
	}

	if c.HasTestSubset() {
		tests := make([]string, len(c.Tests))
		copy(tests, c.Tests)
		values[KeySelectedTestsToRun] = tests
	}

	return values
}

// SelectionResult maps task names to their resolved configs.
type SelectionResult map[string]TaskConfig

// Merge returns a new result holding r's entries overwritten by override's.
func (r SelectionResult) Merge(override SelectionResult) SelectionResult {
	merged := make(SelectionResult, len(r)+len(override))
	for name, config := range r {
		merged[name] = config
	}

	for name, config := range override {
		merged[name] = config
	}

	return merged
}

// Names returns the task names in sorted order.
func (r SelectionResult) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// ArtifactSet maps output file names to file contents.
type ArtifactSet map[string]string

// Add copies every entry of other into the set.
func (a ArtifactSet) Add(other ArtifactSet) {
	for name, content := range other {
		a[name] = content
	}
}

// Names returns the file names in sorted order.
func (a ArtifactSet) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// SuiteConfig is a test suite definition read from the suites directory.
// Raw keeps the full document so generated suites inherit executor settings.
type SuiteConfig struct {
	Name         string
	Roots        []string
	ExcludeFiles []string
	Raw          map[string]any
}
