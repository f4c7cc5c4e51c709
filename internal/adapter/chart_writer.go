package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	m "mutagene.dev/pkg/mutagene/internal/model"
)

// ChartWriter renders the length trajectory of one or more lineages.
type ChartWriter interface {
	Write(ctx context.Context, path m.Path, lineages []m.LineageResult) error
}

// LocalChartWriter saves charts with gonum/plot. The image format follows the
// file extension.
type LocalChartWriter struct {
	width  vg.Length
	height vg.Length
}

// NewLocalChartWriter constructs a LocalChartWriter producing 8x4 inch charts.
func NewLocalChartWriter() *LocalChartWriter {
	return &LocalChartWriter{width: 8 * vg.Inch, height: 4 * vg.Inch}
}

var chartFormats = map[string]bool{".svg": true, ".png": true, ".pdf": true, ".eps": true, ".jpg": true, ".jpeg": true}

// Write plots sequence length per generation, one line per lineage.
func (w *LocalChartWriter) Write(ctx context.Context, path m.Path, lineages []m.LineageResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(string(path)))
	if !chartFormats[ext] {
		return fmt.Errorf("unsupported chart format %q", ext)
	}

	p := plot.New()
	p.Title.Text = "Sequence length by generation"
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Length (bases)"
	p.Legend.Top = true

	for i, lineage := range lineages {
		line, err := plotter.NewLine(LengthTrajectory(lineage.Result))
		if err != nil {
			return fmt.Errorf("failed to build chart line for lineage %d: %w", lineage.Lineage, err)
		}

		line.LineStyle.Color = plotutil.Color(i)
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("lineage %d", lineage.Lineage), line)
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			slog.Error("Failed to create chart directory", "dir", dir, "error", err)
			return fmt.Errorf("failed to create chart directory: %w", err)
		}
	}

	if err := p.Save(w.width, w.height, string(path)); err != nil {
		slog.Error("Failed to save chart", "path", path, "error", err)
		return fmt.Errorf("failed to save chart: %w", err)
	}

	slog.Debug("Wrote chart", "path", path, "lineages", len(lineages))

	return nil
}

// LengthTrajectory returns (generation, length) points starting with the
// ancestor at generation 0.
func LengthTrajectory(result m.SimulationResult) plotter.XYs {
	points := make(plotter.XYs, 0, len(result.Reports)+1)
	points = append(points, plotter.XY{X: 0, Y: float64(result.Initial.Len())})

	for _, report := range result.Reports {
		points = append(points, plotter.XY{X: float64(report.Index), Y: float64(report.Output.Len())})
	}

	return points
}
