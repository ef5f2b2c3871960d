package domain

import (
	"fmt"
	"strconv"

	m "selectest.dev/pkg/selectest/internal/model"
)

// Generation config keys beyond the task config ones.
const (
	keyProject             = "project"
	keyTaskID              = "task_id"
	keyGeneratedConfigDir  = "generated_config_dir"
	keyMaxSubSuites        = "max_sub_suites"
	keyMaxTestsPerSuite    = "max_tests_per_suite"
	keyResmokeRepeatSuites = "resmoke_repeat_suites"
	keyRunMultipleJobs     = "run_multiple_jobs"
	keyUseLargeDistro      = "use_large_distro"
	keyLargeDistroName     = "large_distro_name"
)

// RequiredConfigKeys must be present after layering and defaults.
var RequiredConfigKeys = []string{
	m.KeyBuildVariant,
	m.KeyFallbackNumSubSuites,
	keyProject,
	keyTaskID,
	m.KeyTaskName,
}

// DefaultConfigValues fill keys no layer supplied.
var DefaultConfigValues = map[string]any{
	keyGeneratedConfigDir:  "generated_resmoke_config",
	keyMaxSubSuites:        5,
	keyMaxTestsPerSuite:    100,
	m.KeyResmokeArgs:       "",
	keyResmokeRepeatSuites: 1,
	keyRunMultipleJobs:     "true",
	keyUseLargeDistro:      false,
}

// GenerationConfig is the fully resolved, typed configuration for
// generating one task's sub-suites. It is passed by value.
type GenerationConfig struct {
	TaskName               string
	BuildVariant           string
	Project                string
	TaskID                 string
	Suite                  string
	ResmokeArgs            string
	FallbackNumSubSuites   int
	MaxSubSuites           int
	MaxTestsPerSuite       int
	ResmokeRepeatSuites    int
	RunMultipleJobs        string
	GeneratedConfigDir     string
	UseLargeDistro         bool
	LargeDistroName        string
	SelectedTests          []string
	GeneratingTask         string
	GeneratingBuildVariant string
	GeneratingBuildID      string
}

// NewGenerationConfig merges layers, applies defaults, checks required
// keys and coerces typed values.
func NewGenerationConfig(layers LayeredConfig) (GenerationConfig, error) {
	values := layers.Merge().WithDefaults(DefaultConfigValues)

	for _, key := range RequiredConfigKeys {
		if value, ok := values.Lookup(key); !ok || value == nil || value == "" {
			return GenerationConfig{}, configurationErrorf("missing required configuration key %q", key)
		}
	}

	reader := configReader{values: values}

	config := GenerationConfig{
		TaskName:               reader.str(m.KeyTaskName),
		BuildVariant:           reader.str(m.KeyBuildVariant),
		Project:                reader.str(keyProject),
		TaskID:                 reader.str(keyTaskID),
		Suite:                  reader.str(m.KeySuite),
		ResmokeArgs:            reader.str(m.KeyResmokeArgs),
		FallbackNumSubSuites:   reader.integer(m.KeyFallbackNumSubSuites),
		MaxSubSuites:           reader.integer(keyMaxSubSuites),
		MaxTestsPerSuite:       reader.integer(keyMaxTestsPerSuite),
		ResmokeRepeatSuites:    reader.integer(keyResmokeRepeatSuites),
		RunMultipleJobs:        reader.str(keyRunMultipleJobs),
		GeneratedConfigDir:     reader.str(keyGeneratedConfigDir),
		UseLargeDistro:         reader.boolean(keyUseLargeDistro),
		LargeDistroName:        reader.str(keyLargeDistroName),
		SelectedTests:          reader.strings(m.KeySelectedTestsToRun),
		GeneratingTask:         reader.str(m.KeyGeneratingTask),
		GeneratingBuildVariant: reader.str(m.KeyGeneratingBuildVariant),
		GeneratingBuildID:      reader.str(m.KeyGeneratingBuildID),
	}

	if reader.err != nil {
		return GenerationConfig{}, reader.err
	}

	if config.Suite == "" {
		config.Suite = config.Task()
	}

	if config.UseLargeDistro && config.LargeDistroName == "" {
		return GenerationConfig{}, configurationErrorf("task %s requests a large distro but %s does not define %q",
			config.TaskName, config.BuildVariant, keyLargeDistroName)
	}

	return config, nil
}

// Task is the task name without its generator suffix.
func (c GenerationConfig) Task() string {
	return RemoveGenSuffix(c.TaskName)
}

// RunTestsTask names the selection task whose output folder holds the generated files.
func (c GenerationConfig) RunTestsTask() string {
	return RemoveGenSuffix(c.GeneratingTask)
}

// RunTestsBuildVariant is the build variant of the selection task.
func (c GenerationConfig) RunTestsBuildVariant() string {
	return c.GeneratingBuildVariant
}

// RunTestsBuildID is the build id of the selection task.
func (c GenerationConfig) RunTestsBuildID() string {
	return c.GeneratingBuildID
}

// CreateMiscSuite reports whether a catch-all suite is generated; only
// full-suite runs need one.
func (c GenerationConfig) CreateMiscSuite() bool {
	return len(c.SelectedTests) == 0
}

// DisplayTaskName groups the generated sub-tasks.
func (c GenerationConfig) DisplayTaskName() string {
	return c.Task() + "_" + c.BuildVariant
}

type configReader struct {
	values ConfigValues
	err    error
}

func (r *configReader) fail(key string, format string, args ...any) {
	if r.err != nil {
		return
	}

	r.err = configurationErrorf("configuration key %q (from %s): %s",
		key, r.values.Source(key), fmt.Sprintf(format, args...))
}

func (r *configReader) str(key string) string {
	value, ok := r.values.Lookup(key)
	if !ok || value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func (r *configReader) integer(key string) int {
	value, ok := r.values.Lookup(key)
	if !ok || value == nil {
		return 0
	}

	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			r.fail(key, "expected an integer, got %q", v)
		}

		return n
	default:
		r.fail(key, "expected an integer, got %T", value)
		return 0
	}
}

func (r *configReader) boolean(key string) bool {
	value, ok := r.values.Lookup(key)
	if !ok || value == nil {
		return false
	}

	switch v := value.(type) {
	case bool:
		return v
	case string:
		if v == "" {
			return false
		}

		b, err := strconv.ParseBool(v)
		if err != nil {
			r.fail(key, "expected a boolean, got %q", v)
		}

		return b
	default:
		r.fail(key, "expected a boolean, got %T", value)
		return false
	}
}

func (r *configReader) strings(key string) []string {
	value, ok := r.values.Lookup(key)
	if !ok || value == nil {
		return nil
	}

	tests, ok := value.([]string)
	if !ok {
		r.fail(key, "expected a list of strings, got %T", value)
		return nil
	}

	out := make([]string, len(tests))
	copy(out, tests)

	return out
}
