package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	m "selectest.dev/pkg/selectest/internal/model"
)

// ErrVariantNotFound is returned when the project does not define a build variant.
var ErrVariantNotFound = errors.New("build variant not found")

// ProjectConfigStore provides build variant definitions from the project configuration.
type ProjectConfigStore interface {
	GetVariant(ctx context.Context, name string) (*m.Variant, error)
}

type projectFile struct {
	Tasks         []m.Task      `yaml:"tasks"`
	BuildVariants []variantFile `yaml:"buildvariants"`
}

type variantFile struct {
	Name        string       `yaml:"name"`
	DisplayName string       `yaml:"display_name,omitempty"`
	Expansions  m.Expansions `yaml:"expansions,omitempty"`
	Tasks       []struct {
		Name string `yaml:"name"`
	} `yaml:"tasks"`
}

// YAMLProjectConfigStore reads the project configuration from a YAML file.
// The file is parsed once and reused for later lookups.
type YAMLProjectConfigStore struct {
	path m.Path

	once    sync.Once
	project *projectFile
	loadErr error
}

// NewYAMLProjectConfigStore constructs a store backed by the YAML file at path.
func NewYAMLProjectConfigStore(path m.Path) *YAMLProjectConfigStore {
	return &YAMLProjectConfigStore{path: path}
}

// GetVariant implements ProjectConfigStore.
func (s *YAMLProjectConfigStore) GetVariant(ctx context.Context, name string) (*m.Variant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.once.Do(func() {
		s.project, s.loadErr = loadProjectFile(s.path)
	})

	if s.loadErr != nil {
		return nil, s.loadErr
	}

	return s.project.variant(name)
}

func loadProjectFile(path m.Path) (*projectFile, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read project config %s: %w", path, err)
	}

	var project projectFile
	if err := yaml.Unmarshal(content, &project); err != nil {
		return nil, fmt.Errorf("parse project config %s: %w", path, err)
	}

	slog.Debug("Loaded project config", "path", path, "tasks", len(project.Tasks), "variants", len(project.BuildVariants))

	return &project, nil
}

func (p *projectFile) variant(name string) (*m.Variant, error) {
	tasksByName := make(map[string]*m.Task, len(p.Tasks))
	for i := range p.Tasks {
		tasksByName[p.Tasks[i].Name] = &p.Tasks[i]
	}

	for _, bv := range p.BuildVariants {
		if bv.Name != name {
			continue
		}

		tasks := make([]*m.Task, 0, len(bv.Tasks))

		for _, ref := range bv.Tasks {
			task, ok := tasksByName[ref.Name]
			if !ok {
				slog.Debug("Variant references undefined task", "variant", name, "task", ref.Name)
				continue
			}

			tasks = append(tasks, task)
		}

		return m.NewVariant(bv.Name, bv.Expansions, tasks...), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrVariantNotFound, name)
}
