// Package controller provides output adapters for displaying selection results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "selectest.dev/pkg/selectest/internal/model"
)

// UI defines how selection results are presented.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayChangedFiles(ctx context.Context, files m.ChangedFiles)
	DisplaySelection(ctx context.Context, selection m.SelectionResult) error
	DisplayArtifacts(ctx context.Context, dir m.Path, artifacts m.ArtifactSet) error
}

// NewUI returns a TUI when writing to a terminal and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

const allTestsLabel = "all"

type selectionRow struct {
	task    string
	variant string
	suite   string
	tests   string
}

func buildSelectionRows(selection m.SelectionResult) []selectionRow {
	rows := make([]selectionRow, 0, len(selection))

	for _, name := range selection.Names() {
		config := selection[name]

		tests := allTestsLabel
		if config.HasTestSubset() {
			tests = itoa(len(config.Tests))
		}

		rows = append(rows, selectionRow{
			task:    name,
			variant: config.BuildVariant,
			suite:   config.Suite,
			tests:   tests,
		})
	}

	return rows
}

type artifactRow struct {
	name string
	size int
}

func buildArtifactRows(artifacts m.ArtifactSet) ([]artifactRow, int) {
	rows := make([]artifactRow, 0, len(artifacts))
	total := 0

	for _, name := range artifacts.Names() {
		size := len(artifacts[name])
		rows = append(rows, artifactRow{name: name, size: size})
		total += size
	}

	return rows, total
}
