package viz

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/KarimM0rgan/What-Movie-Should-I-Watch/engine"
)

// ============================================================================
// VIZ — Four-panel analysis dashboard rendered to one PNG
// ============================================================================
// Panel layout (2×2):
//   A: rating vs votes scatter, log-scale y, runtime encoded in size+color
//   B: movies per decade bar chart
//   C: rating distribution (violin) for the 5 most frequent genres
//   D: runtime histogram with KDE overlay and mean marker
// ============================================================================

const (
	imageWidth  = 16 * vg.Inch
	imageHeight = 12 * vg.Inch
	imageDPI    = 300

	histogramBins  = 15
	annotatedCount = 5
	violinGenres   = 5
)

// Violin fill palette (pastel, one per genre).
var violinColors = []color.Color{
	color.RGBA{R: 0x66, G: 0xC2, B: 0xA5, A: 0xFF},
	color.RGBA{R: 0xFC, G: 0x8D, B: 0x62, A: 0xFF},
	color.RGBA{R: 0x8D, G: 0xA0, B: 0xCB, A: 0xFF},
	color.RGBA{R: 0xE7, G: 0x8A, B: 0xC3, A: 0xFF},
	color.RGBA{R: 0xA6, G: 0xD8, B: 0x54, A: 0xFF},
}

// Render writes the four-panel dashboard to path, overwriting any existing
// file. An empty view is an error — there is nothing to draw.
func Render(view engine.RecordView, path string) error {
	if view.Len() == 0 {
		return fmt.Errorf("render %s: no movies to plot", path)
	}

	pa, err := scatterPanel(view)
	if err != nil {
		return fmt.Errorf("scatter panel: %w", err)
	}
	pb, err := decadePanel(view)
	if err != nil {
		return fmt.Errorf("decade panel: %w", err)
	}
	pc, err := genrePanel(view)
	if err != nil {
		return fmt.Errorf("genre panel: %w", err)
	}
	pd, err := runtimePanel(view)
	if err != nil {
		return fmt.Errorf("runtime panel: %w", err)
	}

	plots := [][]*plot.Plot{{pa, pb}, {pc, pd}}

	img := vgimg.NewWith(vgimg.UseWH(imageWidth, imageHeight), vgimg.UseDPI(imageDPI))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 2, Cols: 2,
		PadX: vg.Millimeter * 8, PadY: vg.Millimeter * 8,
		PadTop: vg.Millimeter * 4, PadBottom: vg.Millimeter * 4,
		PadLeft: vg.Millimeter * 4, PadRight: vg.Millimeter * 4,
	}
	canvases := plot.Align(plots, tiles, dc)
	for r := range plots {
		for c := range plots[r] {
			plots[r][c].Draw(canvases[r][c])
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// ============================================================================
// PANEL A — Rating vs Votes (size/color = runtime)
// ============================================================================

func scatterPanel(view engine.RecordView) (*plot.Plot, error) {
	p := newPanel("Rating vs. Votes (Size = Runtime)", "IMDb Rating", "Votes (log scale)")
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = millionTicks{}

	// Parallel point + runtime slices; log scale cannot take votes <= 0.
	var pts plotter.XYs
	var runtimes []float64
	var hasRuntime []bool
	for i := 0; i < view.Len(); i++ {
		rating, _ := view.Measure(i, "rating")
		votes, _ := view.Measure(i, "votes")
		if votes <= 0 {
			continue
		}
		pts = append(pts, plotter.XY{X: rating, Y: votes})
		rt, ok := view.Measure(i, "runtime")
		runtimes = append(runtimes, rt)
		hasRuntime = append(hasRuntime, ok)
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("no positive vote counts")
	}

	rtMin, rtMax := math.Inf(1), math.Inf(-1)
	for i, rt := range runtimes {
		if !hasRuntime[i] {
			continue
		}
		rtMin = math.Min(rtMin, rt)
		rtMax = math.Max(rtMax, rt)
	}

	cm := moreland.Kindlmann()
	if rtMin < rtMax {
		cm.SetMin(rtMin)
		cm.SetMax(rtMax)
	} else {
		cm.SetMin(0)
		cm.SetMax(1)
	}

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		style := draw.GlyphStyle{Radius: vg.Points(3), Shape: draw.CircleGlyph{}, Color: color.Gray{Y: 0x80}}
		if hasRuntime[i] && rtMin < rtMax {
			t := (runtimes[i] - rtMin) / (rtMax - rtMin)
			style.Radius = vg.Points(2 + 4*t)
			if col, err := cm.At(runtimes[i]); err == nil {
				style.Color = col
			}
		}
		return style
	}
	p.Add(sc)

	if labels, err := topRatedLabels(view); err == nil && labels != nil {
		p.Add(labels)
	}
	return p, nil
}

// topRatedLabels annotates the highest-rated movies with their titles.
func topRatedLabels(view engine.RecordView) (*plotter.Labels, error) {
	top := engine.TopN(view, "rating", annotatedCount)

	var pts plotter.XYs
	var names []string
	for i := 0; i < top.Len(); i++ {
		rating, _ := top.Measure(i, "rating")
		votes, _ := top.Measure(i, "votes")
		if votes <= 0 {
			continue
		}
		pts = append(pts, plotter.XY{X: rating, Y: votes})
		names = append(names, top.Dimension(i, "title"))
	}
	if len(pts) == 0 {
		return nil, nil
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: names})
	if err != nil {
		return nil, err
	}
	labels.Offset = vg.Point{X: vg.Points(5), Y: vg.Points(5)}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = vg.Points(9)
	}
	return labels, nil
}

// millionTicks labels a log-scale vote axis at powers of ten, in millions.
type millionTicks struct{}

func (millionTicks) Ticks(min, max float64) []plot.Tick {
	if min <= 0 {
		min = 1
	}
	var ticks []plot.Tick
	for exp := math.Floor(math.Log10(min)); exp <= math.Ceil(math.Log10(max)); exp++ {
		v := math.Pow(10, exp)
		ticks = append(ticks, plot.Tick{
			Value: v,
			Label: fmt.Sprintf("%.0fM", v/1e6),
		})
	}
	return ticks
}

// ============================================================================
// PANEL B — Movies by Decade
// ============================================================================

func decadePanel(view engine.RecordView) (*plot.Plot, error) {
	p := newPanel("Movies by Decade", "Decade", "Number of Movies")

	groups := engine.GroupBy(view, "decade")
	// Movies with no release year have no decade.
	kept := groups[:0]
	for _, g := range groups {
		if g.Key != "" {
			kept = append(kept, g)
		}
	}
	engine.SortGroups(kept, "label_num_asc")

	values := make(plotter.Values, len(kept))
	names := make([]string, len(kept))
	for i, g := range kept {
		values[i] = float64(g.Count)
		names[i] = g.Label
	}

	bars, err := plotter.NewBarChart(values, vg.Points(22))
	if err != nil {
		return nil, err
	}
	bars.Color = color.RGBA{R: 0x8E, G: 0x2F, B: 0x5C, A: 0xFF}
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)
	return p, nil
}

// ============================================================================
// PANEL C — Rating Distribution by Top Genres
// ============================================================================

func genrePanel(view engine.RecordView) (*plot.Plot, error) {
	p := newPanel("Rating Distribution by Top Genres", "Genre", "Rating")

	exploded := engine.Explode(view, "genres")
	top := engine.TopValues(view, "genres", violinGenres)
	if len(top) == 0 {
		return nil, fmt.Errorf("no genres present")
	}

	names := make([]string, len(top))
	for i, g := range top {
		names[i] = g.Label
		pool := engine.ApplyFilters(exploded, engine.Filters{
			Dimensions: map[string][]string{"genres": {g.Key}},
		})
		ratings := engine.MeasureValues(pool, "rating")
		if err := addViolin(p, ratings, float64(i), violinColors[i%len(violinColors)]); err != nil {
			return nil, err
		}
	}
	p.NominalX(names...)
	return p, nil
}

// ============================================================================
// PANEL D — Runtime Distribution
// ============================================================================

func runtimePanel(view engine.RecordView) (*plot.Plot, error) {
	p := newPanel("Runtime Distribution", "Minutes", "Number of Movies")

	runtimes := engine.MeasureValues(view, "runtime")
	if len(runtimes) == 0 {
		return nil, fmt.Errorf("no runtimes present")
	}

	hist, err := plotter.NewHist(plotter.Values(runtimes), histogramBins)
	if err != nil {
		return nil, err
	}
	hist.FillColor = color.RGBA{R: 0x87, G: 0xCE, B: 0xEB, A: 0xFF}
	hist.LineStyle.Color = color.Black
	hist.LineStyle.Width = vg.Points(0.5)
	p.Add(hist)

	peak := histogramPeak(runtimes, histogramBins)

	// KDE overlay, scaled from density to counts.
	bw := silvermanBandwidth(runtimes)
	grid := kdeGrid(runtimes, bw, 120)
	density := gaussianKDE(runtimes, bw, grid)
	binWidth := histogramBinWidth(runtimes, histogramBins)
	curve := make(plotter.XYs, len(grid))
	for i := range grid {
		curve[i] = plotter.XY{X: grid[i], Y: density[i] * float64(len(runtimes)) * binWidth}
	}
	if line, err := plotter.NewLine(curve); err == nil {
		line.LineStyle.Color = color.RGBA{R: 0x1F, G: 0x4E, B: 0x79, A: 0xFF}
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
	}

	// Mean marker with text label.
	mean := engine.AvgMeasure(view, "runtime")
	meanLine, err := plotter.NewLine(plotter.XYs{
		{X: mean, Y: 0},
		{X: mean, Y: peak * 1.05},
	})
	if err != nil {
		return nil, err
	}
	meanLine.LineStyle.Color = color.RGBA{R: 0xFF, A: 0xFF}
	meanLine.LineStyle.Width = vg.Points(1)
	meanLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(meanLine)

	meanLabel, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: mean + 5, Y: peak * 0.9}},
		Labels: []string{fmt.Sprintf("Mean: %.1f min", mean)},
	})
	if err != nil {
		return nil, err
	}
	for i := range meanLabel.TextStyle {
		meanLabel.TextStyle[i].Color = color.RGBA{R: 0xFF, A: 0xFF}
		meanLabel.TextStyle[i].Font.Size = vg.Points(10)
	}
	p.Add(meanLabel)

	return p, nil
}

func histogramBinWidth(data []float64, bins int) float64 {
	lo, hi := data[0], data[0]
	for _, d := range data {
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	if hi == lo {
		return 1
	}
	return (hi - lo) / float64(bins)
}

// histogramPeak returns the tallest bin count, for sizing the mean marker.
func histogramPeak(data []float64, bins int) float64 {
	lo, hi := data[0], data[0]
	for _, d := range data {
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	if hi == lo {
		return float64(len(data))
	}
	width := (hi - lo) / float64(bins)
	counts := make([]int, bins)
	for _, d := range data {
		b := int((d - lo) / width)
		if b >= bins {
			b = bins - 1
		}
		counts[b]++
	}
	peak := 0
	for _, c := range counts {
		if c > peak {
			peak = c
		}
	}
	return float64(peak)
}

// ============================================================================
// PANEL SCAFFOLDING
// ============================================================================

func newPanel(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = xLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.Text = yLabel
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	return p
}
