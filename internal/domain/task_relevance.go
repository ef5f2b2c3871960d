package domain

import (
	"context"
	"log/slog"

	"selectest.dev/pkg/selectest/internal/adapter"
	m "selectest.dev/pkg/selectest/internal/model"
)

// TaskRelevanceResolver finds whole tasks related to a change.
type TaskRelevanceResolver struct {
	adapter.RelevanceService
	policy SelectionPolicy
}

// NewTaskRelevanceResolver constructs a TaskRelevanceResolver.
func NewTaskRelevanceResolver(service adapter.RelevanceService, policy SelectionPolicy) *TaskRelevanceResolver {
	return &TaskRelevanceResolver{RelevanceService: service, policy: policy}
}

// SelectTasks returns the registered names of the related tasks that exist
// on variant and pass the exclusion policy, in first-seen order.
// Mappings naming tasks the variant no longer defines are skipped.
func (r *TaskRelevanceResolver) SelectTasks(ctx context.Context, changed m.ChangedFiles, variant *m.Variant) ([]string, error) {
	mappings, err := r.GetTaskMappings(ctx, r.policy.Threshold, changed)
	if err != nil {
		return nil, wrapService(err, "get task mappings")
	}

	seen := map[string]struct{}{}
	selected := make([]string, 0)

	for _, mapping := range mappings {
		for _, mapped := range mapping.Tasks {
			if _, ok := seen[mapped.Name]; ok {
				continue
			}

			seen[mapped.Name] = struct{}{}

			task, ok := FindTask(variant, mapped.Name)
			if !ok {
				slog.Debug("Task from mappings not found on build variant", "task", mapped.Name, "variant", variant.Name)
				continue
			}

			if r.policy.Excludes(task.Name) {
				slog.Debug("Excluding task", "task", task.Name, "variant", variant.Name)
				continue
			}

			if _, ok := seen[task.Name]; ok && task.Name != mapped.Name {
				continue
			}

			seen[task.Name] = struct{}{}
			selected = append(selected, task.Name)
		}
	}

	return selected, nil
}
