package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	m "selectest.dev/pkg/selectest/internal/model"
)

const defaultWriteParallelism = 4

// ArtifactWriter persists generated artifacts.
type ArtifactWriter interface {
	WriteFiles(ctx context.Context, dir m.Path, artifacts m.ArtifactSet) error
}

// LocalArtifactWriter writes artifacts to the local filesystem.
type LocalArtifactWriter struct {
	parallel int
}

// NewLocalArtifactWriter constructs a LocalArtifactWriter.
func NewLocalArtifactWriter() *LocalArtifactWriter {
	return &LocalArtifactWriter{parallel: defaultWriteParallelism}
}

// WriteFiles implements ArtifactWriter. Every name must stay inside dir.
func (w *LocalArtifactWriter) WriteFiles(ctx context.Context, dir m.Path, artifacts m.ArtifactSet) error {
	root := filepath.Clean(string(dir))

	targets := make(map[string]string, len(artifacts))

	for _, name := range artifacts.Names() {
		target := filepath.Join(root, name)
		if target != root && !strings.HasPrefix(target, root+string(filepath.Separator)) {
			return fmt.Errorf("artifact %q escapes output directory %s", name, root)
		}

		targets[name] = target
	}

	if err := os.MkdirAll(root, 0o750); err != nil {
		return fmt.Errorf("create output directory %s: %w", root, err)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(w.parallel)

	for name, target := range targets {
		content := artifacts[name]

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			return writeArtifact(target, content)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	slog.Info("Wrote artifacts", "dir", root, "count", len(artifacts))

	return nil
}

func writeArtifact(target, content string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return fmt.Errorf("create directory for %s: %w", target, err)
	}

	if err := os.WriteFile(target, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}

	return nil
}
