package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gohyd/internal/friction"
	"github.com/alexiusacademia/gohyd/internal/pipe"
)

// ErrNoData is returned when there is nothing to plot
var ErrNoData = errors.New("no data to plot")

// imageFormats are the extensions gonum/plot can write
var imageFormats = map[string]string{
	".png":  "png",
	".svg":  "svg",
	".pdf":  "pdf",
	".eps":  "eps",
	".jpg":  "jpg",
	".jpeg": "jpeg",
	".tif":  "tif",
	".tiff": "tiff",
}

// outputPath picks the image format from the extension, appending .png when
// the extension is not one gonum/plot can write.
func outputPath(filename string) (string, string) {
	ext := strings.ToLower(filepath.Ext(filename))
	if format, ok := imageFormats[ext]; ok {
		return filename, format
	}
	return filename + ".png", "png"
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return nil
}

var (
	hfColor      = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	qColor       = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	laminarColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// ExportConvergence writes hf and Q against iteration number as two stacked
// plots, with laminar steps marked in red. It returns the path written.
func ExportConvergence(res *pipe.Result, filename string) (string, error) {
	if len(res.Table) == 0 {
		return "", ErrNoData
	}

	hf := make(plotter.XYs, len(res.Table))
	q := make(plotter.XYs, len(res.Table))
	var laminarHf, laminarQ plotter.XYs
	for i, row := range res.Table {
		x := float64(row.Iter)
		hf[i] = plotter.XY{X: x, Y: finite(row.Hf)}
		q[i] = plotter.XY{X: x, Y: finite(row.Q)}
		if row.Regime == pipe.Laminar {
			laminarHf = append(laminarHf, hf[i])
			laminarQ = append(laminarQ, q[i])
		}
	}

	top, err := historyPlot("Head Loss", "hf (m)", hf, laminarHf, hfColor)
	if err != nil {
		return "", err
	}
	top.Title.Text = fmt.Sprintf("Pipe Discharge Convergence (%d iterations)", len(res.Table))
	if !res.Converged {
		top.Title.Text += " - not converged"
	}

	bottom, err := historyPlot("Discharge", "Q (m³/s)", q, laminarQ, qColor)
	if err != nil {
		return "", err
	}
	bottom.X.Label.Text = "Iteration"

	path, format := outputPath(filename)
	if err := ensureDir(path); err != nil {
		return "", err
	}

	width := 8 * vg.Inch
	height := 8 * vg.Inch
	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return "", err
	}

	plots := [][]*plot.Plot{{top}, {bottom}}
	tiles := draw.Tiles{Rows: 2, Cols: 1, PadY: vg.Points(10), PadTop: vg.Points(5), PadBottom: vg.Points(5)}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

func historyPlot(name, label string, pts, laminar plotter.XYs, c color.Color) (*plot.Plot, error) {
	p := plot.New()
	p.Y.Label.Text = label
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = c
	points.GlyphStyle.Color = c
	points.GlyphStyle.Radius = vg.Points(2)
	p.Add(line, points)
	p.Legend.Add(name, line)

	if len(laminar) > 0 {
		marks, err := plotter.NewScatter(laminar)
		if err != nil {
			return nil, err
		}
		marks.GlyphStyle.Color = laminarColor
		marks.GlyphStyle.Radius = vg.Points(4)
		marks.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(marks)
		p.Legend.Add("laminar step", marks)
	}
	p.Legend.Top = true
	return p, nil
}

// ExportMoody writes friction-factor curves on log-log axes, together with
// the laminar line f = 64/Re below Re = 2000. It returns the path written.
func ExportMoody(curves []friction.Curve, filename string) (string, error) {
	p := plot.New()
	p.Title.Text = "Moody Chart"
	p.X.Label.Text = "Reynolds number Re"
	p.Y.Label.Text = "Darcy friction factor f"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	plotted := 0
	for i, curve := range curves {
		var pts plotter.XYs
		for _, pt := range curve.Points {
			if pt.Reynolds > 0 && pt.Factor > 0 {
				pts = append(pts, plotter.XY{X: pt.Reynolds, Y: pt.Factor})
			}
		}
		if len(pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return "", err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(curveLabel(curve), line)
		plotted++
	}
	if plotted == 0 {
		return "", ErrNoData
	}

	re := friction.LogSpace(600, pipe.CriticalReynolds, 20)
	laminar := make(plotter.XYs, len(re))
	for i, r := range re {
		laminar[i] = plotter.XY{X: r, Y: friction.LaminarFactor(r)}
	}
	lamLine, err := plotter.NewLine(laminar)
	if err != nil {
		return "", err
	}
	lamLine.LineStyle.Width = vg.Points(1.5)
	lamLine.LineStyle.Color = color.Black
	lamLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(lamLine)
	p.Legend.Add("laminar 64/Re", lamLine)
	p.Legend.Top = true

	path, _ := outputPath(filename)
	if err := ensureDir(path); err != nil {
		return "", err
	}

	width := 10 * vg.Inch
	height := 7 * vg.Inch
	if err := p.Save(width, height, path); err != nil {
		return "", err
	}
	return path, nil
}

func curveLabel(c friction.Curve) string {
	if !c.Equation.NeedsRoughness() {
		return c.Equation.Title()
	}
	return fmt.Sprintf("%s ε/D=%g", c.Equation.Title(), c.RelativeRoughness)
}
