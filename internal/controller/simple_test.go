package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "selectest.dev/pkg/selectest/internal/model"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return cmd, &buf
}

func testSelection() m.SelectionResult {
	return m.SelectionResult{
		"jsCore": m.TaskConfig{
			TaskName:     "jsCore_gen",
			BuildVariant: "enterprise-rhel-80-64-bit",
			Suite:        "core",
			Tests:        []string{"jstests/core/a.js", "jstests/core/b.js"},
		},
		"replica_sets": m.TaskConfig{
			TaskName:     "replica_sets",
			BuildVariant: "enterprise-rhel-80-64-bit",
			Suite:        "replica_sets",
		},
	}
}

func TestSimpleUI_DisplayChangedFiles(t *testing.T) {
	cmd, buf := newTestCommand()

	NewSimpleUI(cmd).DisplayChangedFiles(context.Background(), m.NewChangedFiles("src/a.cpp", "jstests/core/a.js"))

	output := buf.String()
	for _, want := range []string{"Changed files: 2", "  jstests/core/a.js\n", "  src/a.cpp\n"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplaySelection(t *testing.T) {
	tests := []struct {
		name         string
		selection    m.SelectionResult
		wantContains []string
	}{
		{
			name:         "empty selection",
			selection:    m.SelectionResult{},
			wantContains: []string{"No tasks selected"},
		},
		{
			name:      "tasks with and without test subsets",
			selection: testSelection(),
			wantContains: []string{
				"TASK", "VARIANT", "SUITE", "TESTS",
				"jsCore", "core", "2",
				"replica_sets", allTestsLabel,
				"TOTAL TASKS 2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, buf := newTestCommand()

			if err := NewSimpleUI(cmd).DisplaySelection(context.Background(), tt.selection); err != nil {
				t.Fatalf("DisplaySelection() error = %v", err)
			}

			output := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q:\n%s", want, output)
				}
			}
		})
	}
}

func TestSimpleUI_DisplayArtifacts(t *testing.T) {
	cmd, buf := newTestCommand()

	artifacts := m.ArtifactSet{
		"core_0.yml":                 "0123456789",
		"selected_tests_config.json": "{}",
	}

	if err := NewSimpleUI(cmd).DisplayArtifacts(context.Background(), "out", artifacts); err != nil {
		t.Fatalf("DisplayArtifacts() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Wrote 2 file(s) to out", "core_0.yml", "selected_tests_config.json", "10", "TOTAL FILES 2", "12"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}

	if strings.Index(output, "core_0.yml") > strings.Index(output, "selected_tests_config.json") {
		t.Error("artifacts should be listed in name order")
	}
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	cmd, buf := newTestCommand()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui := NewSimpleUI(cmd)
	ui.DisplayChangedFiles(ctx, m.NewChangedFiles("a.cpp"))

	if err := ui.DisplaySelection(ctx, testSelection()); err == nil {
		t.Error("DisplaySelection() should fail on a cancelled context")
	}

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestNewUI(t *testing.T) {
	cmd, _ := newTestCommand()

	if _, ok := NewUI(cmd, false).(*SimpleUI); !ok {
		t.Error("NewUI(false) should return a SimpleUI")
	}

	if _, ok := NewUI(cmd, true).(*TUI); !ok {
		t.Error("NewUI(true) should return a TUI")
	}

	if IsTTY(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
}
