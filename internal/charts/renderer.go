package charts

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Default series colors, keyed by simplified scientific name.
var defaultPalette = map[string]string{
	"Stenella coeruleoalba": "#2A9D8F",
	"Delphinus delphis":     "#B55656",
}

const fallbackColor = "#4C72B0"

// Renderer writes figures into a fixed output directory with deterministic
// file names.
type Renderer struct {
	figuresDir string
	palette    map[string]string
	logger     *slog.Logger
}

// NewRenderer creates a figure renderer. A nil palette falls back to the
// default species colors.
func NewRenderer(figuresDir string, palette map[string]string, logger *slog.Logger) *Renderer {
	if palette == nil {
		palette = defaultPalette
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		figuresDir: figuresDir,
		palette:    palette,
		logger:     logger,
	}
}

// color resolves the configured color for a species.
func (r *Renderer) color(species string) drawing.Color {
	hex, ok := r.palette[species]
	if !ok {
		hex = fallbackColor
	}
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// hexColor resolves the configured color as a hex string for HTML output.
func (r *Renderer) hexColor(species string) string {
	if hex, ok := r.palette[species]; ok {
		return hex
	}
	return fallbackColor
}

// savePNG renders a chart into the figures directory.
func (r *Renderer) savePNG(name string, render func(w *os.File) error) (string, error) {
	if err := os.MkdirAll(r.figuresDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create figures directory: %w", err)
	}
	path := filepath.Join(r.figuresDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create figure %s: %w", path, err)
	}
	defer f.Close()

	if err := render(f); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	r.logger.Info("Figure rendered", slog.String("path", path))
	return path, nil
}

// Slug derives a file-name-safe fragment from a species name.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// renderChart is a small adapter so savePNG can render a chart.Chart.
func renderChart(graph *chart.Chart) func(*os.File) error {
	return func(w *os.File) error {
		return graph.Render(chart.PNG, w)
	}
}

// renderBarChart is the BarChart counterpart of renderChart.
func renderBarChart(graph *chart.BarChart) func(*os.File) error {
	return func(w *os.File) error {
		return graph.Render(chart.PNG, w)
	}
}
