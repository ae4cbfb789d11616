// Package plotting builds multi-panel line figures and renders them to PNG.
// Figures and axes are explicit handles, nothing is drawn through global state.
package plotting

import (
	"fmt"

	"github.com/notargets/isotherms/utils"
)

type LineStyle uint8

const (
	Solid LineStyle = iota
	Dashed
	Markers // points only, no connecting line
)

type LineOpts struct {
	Color utils.ColorName
	Style LineStyle
	Width float64
	Label string // empty labels stay out of the legend
}

type Line struct {
	X, Y []float64
	LineOpts
}

type Axes struct {
	Lines          []Line
	XLabel, YLabel string
	Legend         bool
	xlim           *[2]float64
}

// Plot adds a line, x and y are copied.
func (ax *Axes) Plot(x, y []float64, opts LineOpts) error {
	if len(x) != len(y) {
		return fmt.Errorf("x and y must have the same length, have %d and %d", len(x), len(y))
	}
	if opts.Width <= 0 {
		opts.Width = 2
	}
	ax.Lines = append(ax.Lines, Line{
		X:        append([]float64(nil), x...),
		Y:        append([]float64(nil), y...),
		LineOpts: opts,
	})
	return nil
}

// SetXLim restricts the displayed x range. Line data is left untouched.
func (ax *Axes) SetXLim(min, max float64) error {
	if !(min < max) {
		return fmt.Errorf("invalid x limits [%g, %g]", min, max)
	}
	ax.xlim = &[2]float64{min, max}
	return nil
}

func (ax *Axes) XLim() (min, max float64, ok bool) {
	if ax.xlim == nil {
		return
	}
	return ax.xlim[0], ax.xlim[1], true
}

func (ax *Axes) SetXLabel(label string) { ax.XLabel = label }
func (ax *Axes) SetYLabel(label string) { ax.YLabel = label }
func (ax *Axes) ShowLegend()            { ax.Legend = true }

// visible returns the lines with their non-finite points dropped and the rest clipped to the x limits.
func (ax *Axes) visible() (lines []Line) {
	for _, l := range ax.Lines {
		x, y := utils.Finite(l.X, l.Y)
		if xmin, xmax, ok := ax.XLim(); ok {
			x, y = utils.Clip(x, y, xmin, xmax)
		}
		if len(x) == 0 {
			continue
		}
		lines = append(lines, Line{X: x, Y: y, LineOpts: l.LineOpts})
	}
	return
}

// Figure is a column of axes sharing the figure width, with an optional title.
type Figure struct {
	Title         string
	Width, Height int
	Axes          []*Axes
}

func NewFigure(rows, width, height int) (fig *Figure) {
	fig = &Figure{
		Width:  width,
		Height: height,
		Axes:   make([]*Axes, rows),
	}
	for i := range fig.Axes {
		fig.Axes[i] = &Axes{}
	}
	return
}

func (f *Figure) SetTitle(title string) { f.Title = title }

// LineCount is the number of lines across all axes.
func (f *Figure) LineCount() (n int) {
	for _, ax := range f.Axes {
		n += len(ax.Lines)
	}
	return
}
