package domain_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "selectest.dev/pkg/selectest/internal/adapter/mocks"
	"selectest.dev/pkg/selectest/internal/domain"
	m "selectest.dev/pkg/selectest/internal/model"
)

func taskMapping(source string, tasks ...string) m.TaskMapping {
	mapping := m.TaskMapping{SourceFile: source, SourceFileSeenCount: 1}
	for _, task := range tasks {
		mapping.Tasks = append(mapping.Tasks, m.MappedTask{Name: task, Variant: testVariant, FlipCount: 1})
	}

	return mapping
}

func TestTaskRelevanceResolver_SelectTasks(t *testing.T) {
	changed := m.NewChangedFiles("src/mongo/db/a.cpp", "src/mongo/db/b.cpp")

	service := adaptermocks.NewMockRelevanceService(t)
	service.EXPECT().GetTaskMappings(mock.Anything, 0.1, changed).Return([]m.TaskMapping{
		taskMapping("src/mongo/db/a.cpp", "replica_sets", "jsCore", "compile", "removed_task"),
		taskMapping("src/mongo/db/b.cpp", "replica_sets", "jsCore_gen", "unittests", "jstestfuzz_gen"),
	}, nil).Once()

	resolver := domain.NewTaskRelevanceResolver(service, domain.DefaultSelectionPolicy())

	tasks, err := resolver.SelectTasks(context.Background(), changed, newTestVariant())
	require.NoError(t, err)
	assert.Equal(t, []string{"replica_sets", "jsCore_gen"}, tasks)
}

func TestTaskRelevanceResolver_ExcludedTasksOnly(t *testing.T) {
	tests := []struct {
		name string
		task string
	}{
		{"compile pattern", "compile"},
		{"denylist", "unittests"},
		{"lint pattern", "lint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := adaptermocks.NewMockRelevanceService(t)
			service.EXPECT().GetTaskMappings(mock.Anything, mock.Anything, mock.Anything).
				Return([]m.TaskMapping{taskMapping("src/a.cpp", tt.task)}, nil).Once()

			tasks, err := domain.NewTaskRelevanceResolver(service, domain.DefaultSelectionPolicy()).
				SelectTasks(context.Background(), m.NewChangedFiles("src/a.cpp"), newTestVariant())
			require.NoError(t, err)
			assert.Empty(t, tasks)
		})
	}
}

func TestTaskRelevanceResolver_UsesPolicyThreshold(t *testing.T) {
	policy, err := domain.NewSelectionPolicy(0.5, nil, nil)
	require.NoError(t, err)

	service := adaptermocks.NewMockRelevanceService(t)
	service.EXPECT().GetTaskMappings(mock.Anything, 0.5, mock.Anything).Return(nil, nil).Once()

	tasks, err := domain.NewTaskRelevanceResolver(service, policy).
		SelectTasks(context.Background(), m.NewChangedFiles("src/a.cpp"), newTestVariant())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskRelevanceResolver_ServiceError(t *testing.T) {
	service := adaptermocks.NewMockRelevanceService(t)
	service.EXPECT().GetTaskMappings(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("503 Service Unavailable")).Once()

	_, err := domain.NewTaskRelevanceResolver(service, domain.DefaultSelectionPolicy()).
		SelectTasks(context.Background(), m.NewChangedFiles("src/a.cpp"), newTestVariant())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrService))
}
