package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "selectest.dev/pkg/selectest/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayChangedFiles prints the changed files considered for selection.
func (s *SimpleUI) DisplayChangedFiles(ctx context.Context, files m.ChangedFiles) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Changed files: %d\n", len(files))

	for _, file := range files {
		s.printf("  %s\n", file)
	}
}

// DisplaySelection prints one row per selected task.
func (s *SimpleUI) DisplaySelection(ctx context.Context, selection m.SelectionResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(selection) == 0 {
		s.printf("No tasks selected\n")
		return nil
	}

	s.printf("\n%s", renderSelectionTable(buildSelectionRows(selection)))

	return nil
}

// DisplayArtifacts prints the files written to dir.
func (s *SimpleUI) DisplayArtifacts(ctx context.Context, dir m.Path, artifacts m.ArtifactSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows, total := buildArtifactRows(artifacts)
	s.printf("\nWrote %d file(s) to %s\n%s", len(rows), dir, renderArtifactTable(rows, total))

	return nil
}

func renderSelectionTable(rows []selectionRow) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Task", "Variant", "Suite", "Tests"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
	})

	for _, row := range rows {
		table.Append([]string{row.task, row.variant, row.suite, row.tests})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Tasks %d", len(rows)), "", "", ""})
	table.Render()

	return tableBuffer.String()
}

func renderArtifactTable(rows []artifactRow, total int) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Bytes"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, row := range rows {
		table.Append([]string{row.name, strconv.Itoa(row.size)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(rows)), strconv.Itoa(total)})
	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
