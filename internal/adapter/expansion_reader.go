package adapter

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "selectest.dev/pkg/selectest/internal/model"
)

// ExpansionReader loads the expansion file written by the CI agent.
type ExpansionReader interface {
	Read(ctx context.Context, path m.Path) (m.Expansions, error)
}

// YAMLExpansionReader reads flat YAML expansion files.
type YAMLExpansionReader struct{}

// NewYAMLExpansionReader constructs a YAMLExpansionReader.
func NewYAMLExpansionReader() *YAMLExpansionReader {
	return &YAMLExpansionReader{}
}

// Read implements ExpansionReader.
func (r *YAMLExpansionReader) Read(ctx context.Context, path m.Path) (m.Expansions, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read expansion file %s: %w", path, err)
	}

	expansions := m.Expansions{}
	if err := yaml.Unmarshal(content, &expansions); err != nil {
		return nil, fmt.Errorf("parse expansion file %s: %w", path, err)
	}

	return expansions, nil
}
