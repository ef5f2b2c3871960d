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
	domainmocks "selectest.dev/pkg/selectest/internal/domain/mocks"
	m "selectest.dev/pkg/selectest/internal/model"
)

func newClassifier(t *testing.T) *domain.GlobTestClassifier {
	t.Helper()

	classifier, err := domain.NewGlobTestClassifier(nil, []string{"jstests/libs/**"})
	require.NoError(t, err)

	return classifier
}

func TestGlobTestClassifier(t *testing.T) {
	classifier := newClassifier(t)

	tests := []struct {
		path string
		want bool
	}{
		{"jstests/core/foo.js", true},
		{"jstests/replsets/nested/dir/bar.js", true},
		{"jstests/libs/helper.js", false},
		{"jstests/core/foo.py", false},
		{"src/mongo/db/foo.cpp", false},
		{"buildscripts/jstests/foo.js", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.IsTestFile(m.Path(tt.path)))
		})
	}
}

func TestNewGlobTestClassifier_InvalidPattern(t *testing.T) {
	_, err := domain.NewGlobTestClassifier([]string{"jstests/[.js"}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfiguration))
}

func TestTestRelevanceResolver_SelectTestFiles(t *testing.T) {
	ctx := context.Background()
	changed := m.NewChangedFiles("src/mongo/db/storage/a.cpp", "src/mongo/db/b.cpp")

	service := adaptermocks.NewMockRelevanceService(t)
	service.EXPECT().GetTestMappings(mock.Anything, 0.1, changed).Return([]m.TestMapping{
		{
			SourceFile: "src/mongo/db/storage/a.cpp",
			TestFiles: []m.TestFile{
				{Name: "jstests/core/b.js", TestFileSeenCount: 4},
				{Name: "jstests/core/a.js", TestFileSeenCount: 2},
				{Name: "jstests/libs/helper.js", TestFileSeenCount: 9},
			},
		},
		{
			SourceFile: "src/mongo/db/b.cpp",
			TestFiles: []m.TestFile{
				{Name: "jstests/core/a.js", TestFileSeenCount: 1},
				{Name: "src/mongo/db/b_test.cpp", TestFileSeenCount: 1},
			},
		},
	}, nil).Once()

	resolver := domain.NewTestRelevanceResolver(service, newClassifier(t), domainmocks.NewMockTestTaskMapper(t), domain.DefaultSelectionPolicy())

	tests, err := resolver.SelectTestFiles(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, []m.Path{"jstests/core/a.js", "jstests/core/b.js"}, tests)
}

func TestTestRelevanceResolver_SelectTestFilesServiceError(t *testing.T) {
	service := adaptermocks.NewMockRelevanceService(t)
	service.EXPECT().GetTestMappings(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).Once()

	resolver := domain.NewTestRelevanceResolver(service, newClassifier(t), domainmocks.NewMockTestTaskMapper(t), domain.DefaultSelectionPolicy())

	_, err := resolver.SelectTestFiles(context.Background(), m.NewChangedFiles("a.cpp"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrService))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestTestRelevanceResolver_TestsByTask(t *testing.T) {
	ctx := context.Background()
	variant := newTestVariant()
	tests := []m.Path{"jstests/core/a.js"}

	mapper := domainmocks.NewMockTestTaskMapper(t)
	mapper.EXPECT().MapTestsToTasks(mock.Anything, tests, variant).
		Return(map[string]m.TaskTests{"jsCore_gen": {Tests: []string{"jstests/core/a.js"}}}, nil).Once()

	resolver := domain.NewTestRelevanceResolver(adaptermocks.NewMockRelevanceService(t), newClassifier(t), mapper, domain.DefaultSelectionPolicy())

	byTask, err := resolver.TestsByTask(ctx, tests, variant)
	require.NoError(t, err)
	assert.Equal(t, map[string]m.TaskTests{"jsCore_gen": {Tests: []string{"jstests/core/a.js"}}}, byTask)
}

func TestTestRelevanceResolver_TestsByTaskWithoutTests(t *testing.T) {
	resolver := domain.NewTestRelevanceResolver(
		adaptermocks.NewMockRelevanceService(t), newClassifier(t), domainmocks.NewMockTestTaskMapper(t), domain.DefaultSelectionPolicy())

	byTask, err := resolver.TestsByTask(context.Background(), nil, newTestVariant())
	require.NoError(t, err)
	assert.Empty(t, byTask)
}
