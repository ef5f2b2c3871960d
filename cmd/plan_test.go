package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "selectest.dev/pkg/selectest/internal/adapter/mocks"
	"selectest.dev/pkg/selectest/internal/controller"
	controllermocks "selectest.dev/pkg/selectest/internal/controller/mocks"
	"selectest.dev/pkg/selectest/internal/domain"
	domainmocks "selectest.dev/pkg/selectest/internal/domain/mocks"
	m "selectest.dev/pkg/selectest/internal/model"
)

func TestPlanCmd_DisplaysSelection(t *testing.T) {
	selection := m.SelectionResult{
		"jsCore": m.TaskConfig{TaskName: "jsCore_gen", BuildVariant: "v", Suite: "core", Tests: []string{"jstests/core/a.js"}},
		"replica_sets": m.TaskConfig{TaskName: "replica_sets", BuildVariant: "v", Suite: "replica_sets"},
	}

	selector := domainmocks.NewMockSelector(t)
	selector.EXPECT().Plan(mock.Anything, domain.RunArgs{
		ChangedFiles:  m.NewChangedFiles("src/a.cpp"),
		BuildVariant:  "v",
		ExpansionFile: "exp.yml",
	}).Return(selection, nil).Once()

	stubCommandDeps(t, selector, adaptermocks.NewMockArtifactWriter(t), nil)

	output, err := executeCommand(t, newPlanCmd(), "plan", "-b", "v", "-e", "exp.yml", "-f", "src/a.cpp")
	require.NoError(t, err)

	assert.Contains(t, output, "jsCore")
	assert.Contains(t, output, "replica_sets")
	assert.Contains(t, output, "TOTAL TASKS 2")
}

func TestPlanCmd_EmptySelection(t *testing.T) {
	selector := domainmocks.NewMockSelector(t)
	selector.EXPECT().Plan(mock.Anything, mock.Anything).Return(m.SelectionResult{}, nil).Once()

	stubCommandDeps(t, selector, adaptermocks.NewMockArtifactWriter(t), nil)

	output, err := executeCommand(t, newPlanCmd(), "plan", "-b", "v", "-e", "exp.yml", "-f", "README.md")
	require.NoError(t, err)
	assert.Contains(t, output, "No tasks selected")
}

func TestPlanCmd_Error(t *testing.T) {
	selector := domainmocks.NewMockSelector(t)
	selector.EXPECT().Plan(mock.Anything, mock.Anything).Return(nil, domain.ErrConfiguration).Once()

	stubCommandDeps(t, selector, adaptermocks.NewMockArtifactWriter(t), nil)

	_, err := executeCommand(t, newPlanCmd(), "plan", "-b", "v", "-e", "exp.yml", "-f", "a.cpp")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestPlanCmd_UsesCommandUI(t *testing.T) {
	selection := m.SelectionResult{"jsCore": m.TaskConfig{TaskName: "jsCore_gen", BuildVariant: "v"}}

	selector := domainmocks.NewMockSelector(t)
	selector.EXPECT().Plan(mock.Anything, mock.Anything).Return(selection, nil).Once()

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplaySelection(mock.Anything, selection).Return(nil).Once()

	stubCommandDeps(t, selector, adaptermocks.NewMockArtifactWriter(t), nil)
	newUI = func(*cobra.Command) controller.UI { return ui }

	_, err := executeCommand(t, newPlanCmd(), "plan", "-b", "v", "-e", "exp.yml", "-f", "a.cpp")
	require.NoError(t, err)
}
