package plotting

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/notargets/isotherms/utils"
)

const (
	titleHeight  = 36
	legendSample = 24
	legendRow    = 16
)

var (
	white = utils.GetColor(utils.White)
	black = utils.GetColor(utils.Black)
)

func toDrawing(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func tickFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.3g", f)
	}
	return ""
}

func seriesStyle(opts LineOpts) (st chart.Style) {
	c := toDrawing(utils.GetColor(opts.Color))
	switch opts.Style {
	case Markers:
		st = chart.Style{
			StrokeColor: drawing.Color{R: 255, G: 255, B: 255, A: 0},
			StrokeWidth: 1,
			DotColor:    c,
			DotWidth:    opts.Width + 1,
		}
	case Dashed:
		st = chart.Style{
			StrokeColor:     c,
			StrokeWidth:     opts.Width,
			StrokeDashArray: []float64{6, 4},
		}
	case Solid:
		fallthrough
	default:
		st = chart.Style{
			StrokeColor: c,
			StrokeWidth: opts.Width,
		}
	}
	return
}

// padRange widens [min, max] by 5% per side, and opens up a degenerate range.
func padRange(min, max float64) (lo, hi float64) {
	delta := max - min
	if delta <= 0 {
		delta = math.Abs(max) * 0.2
		if delta == 0 {
			delta = 1
		}
	}
	return min - 0.05*delta, max + 0.05*delta
}

// renderAxes draws one panel of the given size.
func (ax *Axes) renderAxes(width, height int) (img *image.RGBA, err error) {
	var (
		lines  = ax.visible()
		series []chart.Series
		xs, ys [][]float64
		buf    bytes.Buffer
		xRange *chart.ContinuousRange
	)
	if len(lines) == 0 {
		return ax.renderEmpty(width, height), nil
	}
	for _, l := range lines {
		series = append(series, chart.ContinuousSeries{
			Name:    l.Label,
			XValues: l.X,
			YValues: l.Y,
			Style:   seriesStyle(l.LineOpts),
		})
		xs, ys = append(xs, l.X), append(ys, l.Y)
	}
	if xmin, xmax, ok := ax.XLim(); ok {
		xRange = &chart.ContinuousRange{Min: xmin, Max: xmax}
	} else {
		xmin, xmax, _ := utils.MinMax(xs...)
		if xmin == xmax {
			xmin, xmax = padRange(xmin, xmax)
		}
		xRange = &chart.ContinuousRange{Min: xmin, Max: xmax}
	}
	ymin, ymax, _ := utils.MinMax(ys...)
	ymin, ymax = padRange(ymin, ymax)

	ch := chart.Chart{
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:           ax.XLabel,
			Range:          xRange,
			ValueFormatter: tickFormatter,
		},
		YAxis: chart.YAxis{
			Name:           ax.YLabel,
			Range:          &chart.ContinuousRange{Min: ymin, Max: ymax},
			ValueFormatter: tickFormatter,
		},
		Series: series,
	}
	if err = ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("unable to render panel %q: %w", ax.YLabel, err)
	}
	var panel image.Image
	if panel, err = png.Decode(&buf); err != nil {
		return nil, err
	}
	img = image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: white}, image.Point{}, draw.Src)
	draw.Draw(img, panel.Bounds(), panel, image.Point{}, draw.Src)
	if ax.Legend {
		drawLegend(img, lines)
	}
	return
}

// renderEmpty is used when no line has a point inside the x limits.
func (ax *Axes) renderEmpty(width, height int) (img *image.RGBA) {
	img = image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: white}, image.Point{}, draw.Src)
	frame := image.Rect(20, 20, width-20, height-20)
	for x := frame.Min.X; x < frame.Max.X; x++ {
		img.Set(x, frame.Min.Y, black)
		img.Set(x, frame.Max.Y-1, black)
	}
	for y := frame.Min.Y; y < frame.Max.Y; y++ {
		img.Set(frame.Min.X, y, black)
		img.Set(frame.Max.X-1, y, black)
	}
	msg := "no data"
	if xmin, xmax, ok := ax.XLim(); ok {
		msg = fmt.Sprintf("no data in x = [%g, %g]", xmin, xmax)
	}
	drawText(img, (width-textWidth(msg))/2, height/2, msg, black)
	drawText(img, frame.Min.X+6, frame.Min.Y+16, ax.YLabel, black)
	drawText(img, (width-textWidth(ax.XLabel))/2, frame.Max.Y-6, ax.XLabel, black)
	return
}

func textWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}

// drawText writes s with its baseline at y.
func drawText(img draw.Image, x, y int, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(s)
}

// drawLegend lists labelled lines in a box at the upper right of the panel.
func drawLegend(img *image.RGBA, lines []Line) {
	var (
		labelled []Line
		maxW     int
	)
	for _, l := range lines {
		if len(l.Label) != 0 {
			labelled = append(labelled, l)
			if w := textWidth(l.Label); w > maxW {
				maxW = w
			}
		}
	}
	if len(labelled) == 0 {
		return
	}
	b := img.Bounds()
	boxW := legendSample + 16 + maxW
	boxH := legendRow*len(labelled) + 8
	box := image.Rect(b.Max.X-boxW-90, 30, b.Max.X-90, 30+boxH)
	draw.Draw(img, box, &image.Uniform{C: white}, image.Point{}, draw.Src)
	for x := box.Min.X; x < box.Max.X; x++ {
		img.Set(x, box.Min.Y, black)
		img.Set(x, box.Max.Y-1, black)
	}
	for y := box.Min.Y; y < box.Max.Y; y++ {
		img.Set(box.Min.X, y, black)
		img.Set(box.Max.X-1, y, black)
	}
	for i, l := range labelled {
		y := box.Min.Y + 4 + legendRow*i + legendRow/2
		x0 := box.Min.X + 4
		c := utils.GetColor(l.Color)
		switch l.Style {
		case Markers:
			for d := -3; d <= 3; d++ {
				img.Set(x0+legendSample/2+d, y+d, c)
				img.Set(x0+legendSample/2+d, y-d, c)
			}
		case Dashed:
			for x := 0; x < legendSample; x++ {
				if x%8 < 5 {
					img.Set(x0+x, y, c)
					img.Set(x0+x, y+1, c)
				}
			}
		default:
			for x := 0; x < legendSample; x++ {
				img.Set(x0+x, y, c)
				img.Set(x0+x, y+1, c)
			}
		}
		drawText(img, x0+legendSample+6, y+5, l.Label, black)
	}
}

// Image renders all axes stacked top to bottom below the title.
func (f *Figure) Image() (img *image.RGBA, err error) {
	var (
		top = 0
	)
	if len(f.Axes) == 0 {
		return nil, fmt.Errorf("figure has no axes")
	}
	if len(f.Title) != 0 {
		top = titleHeight
	}
	panelH := (f.Height - top) / len(f.Axes)
	if f.Width < 100 || panelH < 100 {
		return nil, fmt.Errorf("figure %dx%d is too small for %d panels", f.Width, f.Height, len(f.Axes))
	}
	img = image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: white}, image.Point{}, draw.Src)
	if len(f.Title) != 0 {
		drawText(img, (f.Width-textWidth(f.Title))/2, titleHeight-12, f.Title, black)
	}
	for i, ax := range f.Axes {
		var panel *image.RGBA
		if panel, err = ax.renderAxes(f.Width, panelH); err != nil {
			return nil, err
		}
		y0 := top + i*panelH
		draw.Draw(img, image.Rect(0, y0, f.Width, y0+panelH), panel, image.Point{}, draw.Src)
	}
	return
}

// Render writes the figure as PNG.
func (f *Figure) Render(w io.Writer) error {
	img, err := f.Image()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func (f *Figure) Save(filename string) (err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(filename); err != nil {
		return
	}
	if err = f.Render(file); err != nil {
		file.Close()
		return
	}
	return file.Close()
}
