// Package controller provides console reporters for simulation results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "mutagene.dev/pkg/mutagene/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeSimulate StartMode = iota
	ModeLineages
	ModeInspect
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode        StartMode
	interactive bool
}

// WithSimulateMode renders a single lineage generation by generation.
func WithSimulateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeSimulate
	}
}

// WithLineagesMode renders a comparison of independent lineages.
func WithLineagesMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeLineages
	}
}

// WithInspectMode renders one-off translation and impact queries.
func WithInspectMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeInspect
	}
}

// WithInteractive requests the interactive pager when the terminal allows it.
func WithInteractive(enabled bool) StartOption {
	return func(c *StartConfig) {
		c.interactive = enabled
	}
}

func newStartConfig(options []StartOption) StartConfig {
	config := StartConfig{mode: ModeSimulate}
	for _, option := range options {
		option(&config)
	}

	return config
}

// UI receives simulation values and renders them for humans. The simulation
// core never formats output itself.
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayRun(ctx context.Context, result m.SimulationResult)
	DisplayGeneration(ctx context.Context, report m.GenerationReport)
	DisplaySummary(ctx context.Context, summary m.RunSummary)
	DisplayLineages(ctx context.Context, lineages []m.LineageResult)
	DisplayTranslation(ctx context.Context, seq m.Sequence, protein m.Protein, err error)
	DisplayImpact(ctx context.Context, original, mutated m.Protein, verdict m.ImpactVerdict, changes []m.PositionalChange)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewUI returns a UI writing through cmd. When tty is true output is styled
// and Start(WithInteractive(true)) switches to the pager.
func NewUI(cmd *cobra.Command, tty bool) UI {
	return &switchUI{
		simple: NewSimpleUI(cmd, tty),
		cmd:    cmd,
		tty:    tty,
	}
}

// switchUI picks SimpleUI or TUI when Start is called.
type switchUI struct {
	simple *SimpleUI
	cmd    *cobra.Command
	tty    bool
	active UI
}

func (s *switchUI) Start(ctx context.Context, options ...StartOption) error {
	config := newStartConfig(options)

	s.active = s.simple
	if config.interactive && s.tty {
		s.active = NewTUI(s.cmd.OutOrStdout())
	}

	return s.active.Start(ctx, options...)
}

func (s *switchUI) current() UI {
	if s.active == nil {
		return s.simple
	}

	return s.active
}

func (s *switchUI) Close(ctx context.Context) {
	s.current().Close(ctx)
}

func (s *switchUI) Wait(ctx context.Context) {
	s.current().Wait(ctx)
}

func (s *switchUI) DisplayRun(ctx context.Context, result m.SimulationResult) {
	s.current().DisplayRun(ctx, result)
}

func (s *switchUI) DisplayGeneration(ctx context.Context, report m.GenerationReport) {
	s.current().DisplayGeneration(ctx, report)
}

func (s *switchUI) DisplaySummary(ctx context.Context, summary m.RunSummary) {
	s.current().DisplaySummary(ctx, summary)
}

func (s *switchUI) DisplayLineages(ctx context.Context, lineages []m.LineageResult) {
	s.current().DisplayLineages(ctx, lineages)
}

func (s *switchUI) DisplayTranslation(ctx context.Context, seq m.Sequence, protein m.Protein, err error) {
	s.current().DisplayTranslation(ctx, seq, protein, err)
}

func (s *switchUI) DisplayImpact(ctx context.Context, original, mutated m.Protein, verdict m.ImpactVerdict, changes []m.PositionalChange) {
	s.current().DisplayImpact(ctx, original, mutated, verdict, changes)
}
