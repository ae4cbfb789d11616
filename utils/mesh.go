package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NodeAxis extracts the 1D coordinate axis from a flattened N x dim node array.
// The exported mesh concatenates the node planes of the structured grid, so the
// x-axis is the first quarter of the rows (integer division), column 0.
func NodeAxis(nodes []float64, dim int) (x []float64, err error) {
	var (
		nRows int
	)
	if dim < 1 {
		return nil, fmt.Errorf("node dimension must be positive, have %d", dim)
	}
	if len(nodes)%dim != 0 {
		return nil, fmt.Errorf("node array of length %d is not a multiple of dimension %d", len(nodes), dim)
	}
	nRows = len(nodes) / dim
	if nRows/4 < 2 {
		return nil, fmt.Errorf("need at least 8 node rows to form a cell, have %d", nRows)
	}
	N := mat.NewDense(nRows, dim, nodes)
	quarter := N.Slice(0, nRows/4, 0, 1).(*mat.Dense)
	x = VecGetF64(quarter.ColView(0))
	return
}

// CellCenters returns the midpoint of each pair of consecutive nodes,
// c[i] = (y[i+1]-y[i])/2 + y[i].
func CellCenters(y []float64) (c []float64, err error) {
	var (
		n = len(y)
	)
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 nodes to form a cell, have %d", n)
	}
	c = make([]float64, n-1)
	floats.SubTo(c, y[1:], y[:n-1])
	floats.Scale(0.5, c)
	floats.Add(c, y[:n-1])
	return
}

func VecGetF64(v mat.Vector) (r []float64) {
	r = make([]float64, v.Len())
	for i := 0; i < v.Len(); i++ {
		r[i] = v.AtVec(i)
	}
	return
}

// Clip returns the x/y pairs whose x lies in [xmin, xmax]. The inputs are not modified.
func Clip(x, y []float64, xmin, xmax float64) (xo, yo []float64) {
	var (
		n = len(x)
	)
	if len(y) < n {
		n = len(y)
	}
	for i := 0; i < n; i++ {
		if x[i] >= xmin && x[i] <= xmax {
			xo = append(xo, x[i])
			yo = append(yo, y[i])
		}
	}
	return
}

// Finite returns the x/y pairs where both values are neither NaN nor infinite.
func Finite(x, y []float64) (xo, yo []float64) {
	var (
		n = len(x)
	)
	if len(y) < n {
		n = len(y)
	}
	for i := 0; i < n; i++ {
		if isFinite(x[i]) && isFinite(y[i]) {
			xo = append(xo, x[i])
			yo = append(yo, y[i])
		}
	}
	return
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// MinMax returns the extent of all finite values in the given series, ok is false when there are none.
func MinMax(series ...[]float64) (min, max float64, ok bool) {
	for _, s := range series {
		for _, v := range s {
			if !isFinite(v) {
				continue
			}
			if !ok {
				min, max, ok = v, v, true
				continue
			}
			min, max = math.Min(min, v), math.Max(max, v)
		}
	}
	return
}
