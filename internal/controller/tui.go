package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "mutagene.dev/pkg/mutagene/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// TUI collects the simple report and shows it in a scrollable pager when
// Wait is called.
type TUI struct {
	output io.Writer
	buffer *bytes.Buffer
	simple *SimpleUI
	title  string
	run    func(model tea.Model, options ...tea.ProgramOption) error
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	buffer := &bytes.Buffer{}

	return &TUI{
		output: output,
		buffer: buffer,
		simple: newWriterSimpleUI(buffer, true),
		title:  "mutagene",
		run:    runProgram,
	}
}

func runProgram(model tea.Model, options ...tea.ProgramOption) error {
	_, err := tea.NewProgram(model, options...).Run()
	return err
}

// Start initializes the UI.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	config := newStartConfig(options)

	switch config.mode {
	case ModeLineages:
		t.title = "mutagene · lineages"
	case ModeInspect:
		t.title = "mutagene · inspect"
	case ModeSimulate:
		t.title = "mutagene · simulate"
	}

	return t.simple.Start(ctx, options...)
}

// Close finalizes the UI. A report that never reached the pager, such as
// one cut short by an error before Wait, is printed as plain text.
func (t *TUI) Close(ctx context.Context) {
	t.simple.Close(ctx)
	t.flush()
}

func (t *TUI) flush() {
	if t.buffer.Len() == 0 {
		return
	}

	_, _ = fmt.Fprint(t.output, t.buffer.String())
	t.buffer.Reset()
}

// Wait opens the pager and blocks until the user quits it. Without a usable
// terminal the report is printed as plain text.
func (t *TUI) Wait(ctx context.Context) {
	if ctx.Err() != nil {
		t.flush()
		return
	}

	model := newPagerModel(t.title, t.buffer.String())

	err := t.run(model,
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if err != nil {
		slog.Error("pager exited with error", "error", err)
		t.flush()

		return
	}

	t.buffer.Reset()
}

// DisplayRun implements UI.
func (t *TUI) DisplayRun(ctx context.Context, result m.SimulationResult) {
	t.simple.DisplayRun(ctx, result)
}

// DisplayGeneration implements UI.
func (t *TUI) DisplayGeneration(ctx context.Context, report m.GenerationReport) {
	t.simple.DisplayGeneration(ctx, report)
}

// DisplaySummary implements UI.
func (t *TUI) DisplaySummary(ctx context.Context, summary m.RunSummary) {
	t.simple.DisplaySummary(ctx, summary)
}

// DisplayLineages implements UI.
func (t *TUI) DisplayLineages(ctx context.Context, lineages []m.LineageResult) {
	t.simple.DisplayLineages(ctx, lineages)
}

// DisplayTranslation implements UI.
func (t *TUI) DisplayTranslation(ctx context.Context, seq m.Sequence, protein m.Protein, err error) {
	t.simple.DisplayTranslation(ctx, seq, protein, err)
}

// DisplayImpact implements UI.
func (t *TUI) DisplayImpact(ctx context.Context, original, mutated m.Protein, verdict m.ImpactVerdict, changes []m.PositionalChange) {
	t.simple.DisplayImpact(ctx, original, mutated, verdict, changes)
}

// pagerModel is the Bubble Tea model behind the TUI pager.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
	quitting bool
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{title: title, content: content}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(msg.Height-pm.chromeHeight(), 1)
		if !pm.ready {
			pm.viewport = viewport.New(msg.Width, height)
			pm.viewport.SetContent(pm.content)
			pm.ready = true
		} else {
			pm.viewport.Width = msg.Width
			pm.viewport.Height = height
		}

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		}
	}

	var cmd tea.Cmd

	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) chromeHeight() int {
	return lipgloss.Height(pm.header()) + lipgloss.Height(pm.footer())
}

func (pm pagerModel) header() string {
	return titleStyle.Render(pm.title)
}

func (pm pagerModel) footer() string {
	percent := 100.0
	if pm.ready {
		percent = pm.viewport.ScrollPercent() * 100
	}

	return footerStyle.Render(fmt.Sprintf("%3.f%% | ↑/k ↓/j pgup/pgdown | q: quit", percent))
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	if !pm.ready {
		return "\n  Loading..."
	}

	return strings.Join([]string{pm.header(), pm.viewport.View(), pm.footer()}, "\n")
}
