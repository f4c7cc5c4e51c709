// Package adapter provides output adapters for simulation results.
package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
	m "mutagene.dev/pkg/mutagene/internal/model"
)

// ReportWriter exports a finished simulation. Nothing written is ever read
// back by the simulator.
type ReportWriter interface {
	Write(ctx context.Context, path m.Path, export m.Export) error
}

// LocalReportWriter writes YAML or JSON files depending on the extension.
type LocalReportWriter struct{}

// NewLocalReportWriter constructs a LocalReportWriter.
func NewLocalReportWriter() *LocalReportWriter {
	return &LocalReportWriter{}
}

// Write encodes export to path. Supported extensions: .yaml, .yml, .json.
func (w *LocalReportWriter) Write(ctx context.Context, path m.Path, export m.Export) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := encodeExport(string(path), export)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			slog.Error("Failed to create report directory", "dir", dir, "error", err)
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), content, 0o600); err != nil {
		slog.Error("Failed to write report", "path", path, "error", err)
		return fmt.Errorf("failed to write report: %w", err)
	}

	slog.Debug("Wrote report", "path", path, "lineages", len(export.Lineages))

	return nil
}

func encodeExport(path string, export m.Export) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var buf bytes.Buffer

		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)

		if err := encoder.Encode(export); err != nil {
			return nil, fmt.Errorf("failed to encode yaml report: %w", err)
		}

		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml report: %w", err)
		}

		return buf.Bytes(), nil
	case ".json":
		content, err := json.MarshalIndent(export, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json report: %w", err)
		}

		return append(content, '\n'), nil
	}

	return nil, fmt.Errorf("unsupported report format %q (use .yaml, .yml or .json)", filepath.Ext(path))
}
