package domain

import (
	"strings"

	m "selectest.dev/pkg/selectest/internal/model"
)

// GenTaskSuffix is appended to the name of a task that generates sub-suites.
const GenTaskSuffix = "_gen"

// FindTask looks a task up by exact name, then under its generator alias.
// Relevance data is recorded against executing task names while the project
// may register the generating task as "<name>_gen".
func FindTask(variant *m.Variant, name string) (*m.Task, bool) {
	if task, ok := variant.GetTask(name); ok {
		return task, true
	}

	return variant.GetTask(name + GenTaskSuffix)
}

// RemoveGenSuffix strips the generator suffix from a task name.
func RemoveGenSuffix(name string) string {
	return strings.TrimSuffix(name, GenTaskSuffix)
}
