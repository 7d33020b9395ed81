package viz

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ============================================================================
// VIOLIN — KDE-outline distribution plot
// ============================================================================
// gonum/plot ships box plots but no violins, so the outline is built here:
// the density curve is mirrored around the category's x position and filled
// as a polygon, with dashed quartile lines inside (q1, median, q3).
// ============================================================================

// violinHalfWidth is the widest half-extent of a violin in x units.
const violinHalfWidth = 0.4

// addViolin draws one violin for data at nominal x position pos.
func addViolin(p *plot.Plot, data []float64, pos float64, fill color.Color) error {
	if len(data) == 0 {
		return fmt.Errorf("violin at %v: no data", pos)
	}

	bw := silvermanBandwidth(data)
	grid := kdeGrid(data, bw, 80)
	density := gaussianKDE(data, bw, grid)

	maxDensity := 0.0
	for _, d := range density {
		if d > maxDensity {
			maxDensity = d
		}
	}
	if maxDensity == 0 {
		return fmt.Errorf("violin at %v: flat density", pos)
	}

	// Mirrored outline: left edge bottom→top, right edge top→bottom.
	outline := make(plotter.XYs, 0, 2*len(grid))
	for i := range grid {
		w := violinHalfWidth * density[i] / maxDensity
		outline = append(outline, plotter.XY{X: pos - w, Y: grid[i]})
	}
	for i := len(grid) - 1; i >= 0; i-- {
		w := violinHalfWidth * density[i] / maxDensity
		outline = append(outline, plotter.XY{X: pos + w, Y: grid[i]})
	}

	poly, err := plotter.NewPolygon(outline)
	if err != nil {
		return err
	}
	poly.Color = fill
	poly.LineStyle.Color = color.Black
	poly.LineStyle.Width = vg.Points(0.5)
	p.Add(poly)

	// Quartile markers, clipped to the violin's local width.
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)
	for _, q := range []float64{0.25, 0.5, 0.75} {
		y := stat.Quantile(q, stat.Empirical, sorted, nil)
		w := violinHalfWidth * interpDensity(grid, density, y) / maxDensity
		line, err := plotter.NewLine(plotter.XYs{
			{X: pos - w, Y: y},
			{X: pos + w, Y: y},
		})
		if err != nil {
			return err
		}
		line.LineStyle.Color = color.Black
		line.LineStyle.Width = vg.Points(0.5)
		line.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(line)
	}
	return nil
}

// interpDensity linearly interpolates the density curve at y.
func interpDensity(grid, density []float64, y float64) float64 {
	if y <= grid[0] {
		return density[0]
	}
	for i := 1; i < len(grid); i++ {
		if y <= grid[i] {
			span := grid[i] - grid[i-1]
			if span == 0 {
				return density[i]
			}
			t := (y - grid[i-1]) / span
			return density[i-1] + t*(density[i]-density[i-1])
		}
	}
	return density[len(density)-1]
}
