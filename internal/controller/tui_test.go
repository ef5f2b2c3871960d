package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	m "selectest.dev/pkg/selectest/internal/model"
)

func TestTUI_DisplayChangedFiles(t *testing.T) {
	var buf bytes.Buffer

	NewTUI(&buf).DisplayChangedFiles(context.Background(), m.NewChangedFiles("src/a.cpp"))

	output := buf.String()
	if !strings.Contains(output, "Changed files (1)") {
		t.Errorf("output should contain the header, got: %s", output)
	}

	if !strings.Contains(output, "src/a.cpp") {
		t.Errorf("output should list the file, got: %s", output)
	}
}

func TestTUI_DisplaySelection_Empty(t *testing.T) {
	var buf bytes.Buffer

	if err := NewTUI(&buf).DisplaySelection(context.Background(), m.SelectionResult{}); err != nil {
		t.Fatalf("DisplaySelection() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No tasks selected") {
		t.Errorf("expected empty message, got: %s", buf.String())
	}
}

func TestTUI_DisplaySelection(t *testing.T) {
	var buf bytes.Buffer

	if err := NewTUI(&buf).DisplaySelection(context.Background(), testSelection()); err != nil {
		t.Fatalf("DisplaySelection() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Selected tasks (2)", "Task", "Suite", "jsCore", "replica_sets", allTestsLabel} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestTUI_DisplayArtifacts(t *testing.T) {
	var buf bytes.Buffer

	artifacts := m.ArtifactSet{"core_0.yml": "abc", "selected_tests_config.json": "{}"}
	if err := NewTUI(&buf).DisplayArtifacts(context.Background(), "out", artifacts); err != nil {
		t.Fatalf("DisplayArtifacts() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Wrote 2 file(s) to out (5 bytes)", "core_0.yml", "selected_tests_config.json"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func manyRows(n int) []table.Row {
	rows := make([]table.Row, n)
	for i := range rows {
		rows[i] = table.Row{fmt.Sprintf("task_%03d", i), "variant", "suite", "all"}
	}

	return rows
}

func testColumns() []table.Column {
	return []table.Column{
		{Title: "Task", Width: 10},
		{Title: "Variant", Width: 9},
		{Title: "Suite", Width: 7},
		{Title: "Tests", Width: 7},
	}
}

func TestTableModel_Pagination(t *testing.T) {
	model := newTableModel("Selected tasks (100)", testColumns(), manyRows(100), 20)

	if !model.needsPagination() {
		t.Fatal("expected pagination with 100 rows and height 20")
	}

	view := model.View()

	if !strings.Contains(view, "task_000") {
		t.Error("first page should contain the first row")
	}

	if strings.Contains(view, "task_099") {
		t.Error("first page should not contain the last row")
	}

	for _, help := range []string{"↑", "↓", "q quit"} {
		if !strings.Contains(view, help) {
			t.Errorf("view should show navigation help %q", help)
		}
	}
}

func TestTableModel_NoPagination(t *testing.T) {
	for _, height := range []int{0, 100} {
		model := newTableModel("Selected tasks (5)", testColumns(), manyRows(5), height)

		if model.needsPagination() {
			t.Errorf("height %d: 5 rows should not need pagination", height)
		}

		view := model.staticView()
		for i := range 5 {
			if row := fmt.Sprintf("task_%03d", i); !strings.Contains(view, row) {
				t.Errorf("height %d: view should contain %s", height, row)
			}
		}
	}
}

func TestTableModel_Update(t *testing.T) {
	model := newTableModel("Selected tasks (100)", testColumns(), manyRows(100), 20)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 200})
	if got := updated.(tableModel).height; got != 200 {
		t.Errorf("height = %d, want 200", got)
	}

	if updated.(tableModel).needsPagination() {
		t.Error("a taller window should not need pagination")
	}

	quit, cmd := updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}

	if view := quit.View(); view != "" {
		t.Errorf("view after quit = %q, want empty", view)
	}
}

func TestBodyHeight(t *testing.T) {
	tests := []struct {
		rows, height, want int
	}{
		{rows: 5, height: 0, want: 5},
		{rows: 5, height: 100, want: 5},
		{rows: 100, height: 20, want: 14},
		{rows: 0, height: 20, want: 1},
	}

	for _, tt := range tests {
		if got := bodyHeight(tt.rows, tt.height); got != tt.want {
			t.Errorf("bodyHeight(%d, %d) = %d, want %d", tt.rows, tt.height, got, tt.want)
		}
	}
}
