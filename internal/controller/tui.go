package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "selectest.dev/pkg/selectest/internal/model"
)

// chrome is the number of lines around the table body (title, header, help).
const chrome = 6

// headerLines is the height of the bordered table header.
const headerLines = 2

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	baseStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	height int
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	tui := &TUI{output: output}

	if f, ok := output.(*os.File); ok {
		if _, height, err := term.GetSize(int(f.Fd())); err == nil {
			tui.height = height
		}
	}

	return tui
}

// DisplayChangedFiles prints the changed files considered for selection.
func (p *TUI) DisplayChangedFiles(ctx context.Context, files m.ChangedFiles) {
	if err := ctx.Err(); err != nil {
		return
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Changed files (%d)", len(files))))
	b.WriteString("\n")

	for _, file := range files {
		b.WriteString(mutedStyle.Render("  " + string(file)))
		b.WriteString("\n")
	}

	_, _ = fmt.Fprint(p.output, b.String())
}

// DisplaySelection shows the selected tasks, paging when they do not fit the terminal.
func (p *TUI) DisplaySelection(ctx context.Context, selection m.SelectionResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(selection) == 0 {
		_, err := fmt.Fprintln(p.output, mutedStyle.Render("No tasks selected"))
		return err
	}

	rows := buildSelectionRows(selection)
	tableRows := make([]table.Row, 0, len(rows))

	for _, row := range rows {
		tableRows = append(tableRows, table.Row{row.task, row.variant, row.suite, row.tests})
	}

	columns := []table.Column{
		{Title: "Task", Width: columnWidth("Task", tableRows, 0)},
		{Title: "Variant", Width: columnWidth("Variant", tableRows, 1)},
		{Title: "Suite", Width: columnWidth("Suite", tableRows, 2)},
		{Title: "Tests", Width: columnWidth("Tests", tableRows, 3)},
	}

	model := newTableModel(fmt.Sprintf("Selected tasks (%d)", len(rows)), columns, tableRows, p.height)

	return p.show(model)
}

// DisplayArtifacts shows the files written to dir.
func (p *TUI) DisplayArtifacts(ctx context.Context, dir m.Path, artifacts m.ArtifactSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows, total := buildArtifactRows(artifacts)
	tableRows := make([]table.Row, 0, len(rows))

	for _, row := range rows {
		tableRows = append(tableRows, table.Row{row.name, strconv.Itoa(row.size)})
	}

	columns := []table.Column{
		{Title: "File", Width: columnWidth("File", tableRows, 0)},
		{Title: "Bytes", Width: max(columnWidth("Bytes", tableRows, 1), len(strconv.Itoa(total))+2)},
	}

	title := fmt.Sprintf("Wrote %d file(s) to %s (%d bytes)", len(rows), dir, total)

	return p.show(newTableModel(title, columns, tableRows, p.height))
}

func (p *TUI) show(model tableModel) error {
	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.staticView())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func columnWidth(title string, rows []table.Row, column int) int {
	width := lipgloss.Width(title)

	for _, row := range rows {
		if column < len(row) {
			width = max(width, lipgloss.Width(row[column]))
		}
	}

	return width + 2
}

// tableModel is a scrollable table that quits on q, esc or ctrl+c.
type tableModel struct {
	title    string
	table    table.Model
	rows     int
	height   int
	quitting bool
}

func newTableModel(title string, columns []table.Column, rows []table.Row, height int) tableModel {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(bodyHeight(len(rows), height)+headerLines),
	)
	t.SetStyles(styles)

	return tableModel{
		title:  title,
		table:  t,
		rows:   len(rows),
		height: height,
	}
}

func bodyHeight(rows, height int) int {
	if height <= chrome {
		return rows
	}

	return max(1, min(rows, height-chrome))
}

// needsPagination reports whether the rows exceed the known terminal height.
func (tm tableModel) needsPagination() bool {
	return tm.height > chrome && tm.rows > tm.height-chrome
}

func (tm tableModel) Init() tea.Cmd {
	return nil
}

func (tm tableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		tm.height = msg.Height
		tm.table.SetHeight(bodyHeight(tm.rows, msg.Height) + headerLines)

		return tm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			tm.quitting = true
			return tm, tea.Quit
		}
	}

	var cmd tea.Cmd
	tm.table, cmd = tm.table.Update(msg)

	return tm, cmd
}

func (tm tableModel) View() string {
	if tm.quitting {
		return ""
	}

	return tm.staticView() + helpStyle.Render("↑/↓ scroll • q quit") + "\n"
}

func (tm tableModel) staticView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(tm.title))
	b.WriteString("\n")
	b.WriteString(baseStyle.Render(tm.table.View()))
	b.WriteString("\n")

	return b.String()
}
