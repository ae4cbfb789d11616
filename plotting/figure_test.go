package plotting

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/isotherms/utils"
)

func profile(n int, x0, dx, scale float64) (x, y []float64) {
	x, y = make([]float64, n), make([]float64, n)
	for i := range x {
		x[i] = x0 + dx*float64(i)
		y[i] = scale * float64(i%7)
	}
	return
}

func twoPanel(t *testing.T) *Figure {
	fig := NewFigure(2, 800, 800)
	fig.SetTitle("Amanzi 1D Isotherms Benchmark at 50 years")
	for j, style := range []LineStyle{Solid, Dashed, Markers} {
		x, y := profile(40, 1.25, 2.5, 1.e-4*float64(j+1))
		require.NoError(t, fig.Axes[0].Plot(x, y, LineOpts{Color: utils.ComponentColor(j), Style: style, Label: "A"}))
		require.NoError(t, fig.Axes[1].Plot(x, y, LineOpts{Color: utils.ComponentColor(j), Style: style}))
	}
	fig.Axes[0].SetYLabel("Total Concentration [mol/L]")
	fig.Axes[1].SetYLabel("Total Sorbed Concent. [mol/m3]")
	fig.Axes[1].SetXLabel("Distance (m)")
	fig.Axes[0].ShowLegend()
	fig.Axes[1].ShowLegend()
	return fig
}

func decodeSize(t *testing.T, data []byte) (w, h int) {
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestPlotCopiesAndValidates(t *testing.T) {
	ax := &Axes{}
	x, y := []float64{1, 2}, []float64{3, 4}
	require.NoError(t, ax.Plot(x, y, LineOpts{}))
	x[0] = 99
	assert.Equal(t, 1., ax.Lines[0].X[0])
	assert.Equal(t, 2., ax.Lines[0].Width)
	assert.Error(t, ax.Plot([]float64{1}, []float64{1, 2}, LineOpts{}))
}

func TestSetXLim(t *testing.T) {
	ax := &Axes{}
	_, _, ok := ax.XLim()
	assert.False(t, ok)
	require.NoError(t, ax.SetXLim(30, 70))
	min, max, ok := ax.XLim()
	assert.True(t, ok)
	assert.Equal(t, 30., min)
	assert.Equal(t, 70., max)
	assert.Error(t, ax.SetXLim(70, 30))
}

func TestRenderTwoPanels(t *testing.T) {
	fig := twoPanel(t)
	var buf bytes.Buffer
	require.NoError(t, fig.Render(&buf))
	w, h := decodeSize(t, buf.Bytes())
	assert.Equal(t, 800, w)
	assert.Equal(t, 800, h)
	assert.Equal(t, 6, fig.LineCount())
}

func TestXLimIsDisplayOnly(t *testing.T) {
	for _, lim := range [][2]float64{{30, 70}, {-1000, 1000}, {40, 41}, {500, 600}} {
		fig := twoPanel(t)
		for _, ax := range fig.Axes {
			require.NoError(t, ax.SetXLim(lim[0], lim[1]))
		}
		var buf bytes.Buffer
		require.NoError(t, fig.Render(&buf), "limits %v", lim)
		// data is never filtered
		assert.Equal(t, 40, len(fig.Axes[0].Lines[0].X))
	}
}

func TestRenderDegenerate(t *testing.T) {
	fig := NewFigure(2, 600, 600)
	// constant zero profile, as at time zero
	require.NoError(t, fig.Axes[0].Plot([]float64{1, 2, 3}, []float64{0, 0, 0}, LineOpts{}))
	// single point
	require.NoError(t, fig.Axes[1].Plot([]float64{5}, []float64{2}, LineOpts{Style: Markers}))
	var buf bytes.Buffer
	require.NoError(t, fig.Render(&buf))

	empty := NewFigure(1, 400, 300)
	require.NoError(t, empty.Render(&buf))
}

func TestRenderNonFinite(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	fig := NewFigure(2, 600, 600)
	require.NoError(t, fig.Axes[0].Plot([]float64{10, 50, 90}, []float64{1, nan, 3}, LineOpts{Label: "A"}))
	require.NoError(t, fig.Axes[0].Plot([]float64{10, inf, 90}, []float64{2, 2, -inf}, LineOpts{Style: Markers}))
	// nothing finite left in this panel
	require.NoError(t, fig.Axes[1].Plot([]float64{50}, []float64{nan}, LineOpts{}))
	fig.Axes[0].ShowLegend()
	for _, lim := range [][2]float64{{30, 70}, {0, 100}} {
		for _, ax := range fig.Axes {
			require.NoError(t, ax.SetXLim(lim[0], lim[1]))
		}
		var buf bytes.Buffer
		require.NoError(t, fig.Render(&buf), "limits %v", lim)
		assert.NotZero(t, buf.Len())
	}
	assert.True(t, math.IsNaN(fig.Axes[0].Lines[0].Y[1]))
	assert.Equal(t, 3, len(fig.Axes[0].Lines[1].X))
}

func TestRenderErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, (&Figure{Width: 800, Height: 800}).Render(&buf))
	assert.Error(t, NewFigure(2, 800, 150).Render(&buf))
}

func TestPadRange(t *testing.T) {
	lo, hi := padRange(0, 10)
	assert.Equal(t, -0.5, lo)
	assert.Equal(t, 10.5, hi)
	lo, hi = padRange(0, 0)
	assert.True(t, lo < 0 && hi > 0)
	lo, hi = padRange(2, 2)
	assert.True(t, lo < 2 && hi > 2)
}

func TestSave(t *testing.T) {
	fig := twoPanel(t)
	name := filepath.Join(t.TempDir(), "isotherms_1d.png")
	require.NoError(t, fig.Save(name))
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	w, h := decodeSize(t, data)
	assert.Equal(t, 800, w)
	assert.Equal(t, 800, h)
}
