package model

import "encoding/json"

// FunctionCall invokes a project function from a generated task.
type FunctionCall struct {
	Func string            `json:"func"`
	Vars map[string]string `json:"vars,omitempty"`
}

// GeneratedTask is a task definition emitted into the manifest.
type GeneratedTask struct {
	Name     string         `json:"name"`
	Commands []FunctionCall `json:"commands"`
}

// VariantTask schedules a task on a build variant.
type VariantTask struct {
	Name    string   `json:"name"`
	Distros []string `json:"distros,omitempty"`
}

// DisplayTask groups execution tasks under one name.
type DisplayTask struct {
	Name           string   `json:"name"`
	ExecutionTasks []string `json:"execution_tasks"`
}

// BuildVariant is the generated schedule for one build variant.
type BuildVariant struct {
	Name         string        `json:"name"`
	Tasks        []VariantTask `json:"tasks,omitempty"`
	DisplayTasks []DisplayTask `json:"display_tasks,omitempty"`
}

// BuildConfig accumulates generated tasks across every selected task.
type BuildConfig struct {
	Tasks         []GeneratedTask `json:"tasks,omitempty"`
	BuildVariants []BuildVariant  `json:"buildvariants,omitempty"`
}

// AddTask appends a generated task definition.
func (b *BuildConfig) AddTask(task GeneratedTask) {
	b.Tasks = append(b.Tasks, task)
}

// Variant returns the named build variant, creating it when missing.
// The pointer is only valid until the next call that adds a variant.
func (b *BuildConfig) Variant(name string) *BuildVariant {
	for i := range b.BuildVariants {
		if b.BuildVariants[i].Name == name {
			return &b.BuildVariants[i]
		}
	}

	b.BuildVariants = append(b.BuildVariants, BuildVariant{Name: name})

	return &b.BuildVariants[len(b.BuildVariants)-1]
}

// JSON serializes the build config; an empty config renders as "{}".
func (b *BuildConfig) JSON() (string, error) {
	if len(b.Tasks) == 0 && len(b.BuildVariants) == 0 {
		return "{}", nil
	}

	out, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return "", err
	}

	return string(out), nil
}
