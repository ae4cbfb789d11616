package readfiles

import (
	"path/filepath"

	"github.com/notargets/isotherms/utils"
)

var PFloTranCoordinatesPath = []string{"Coordinates", "X [m]"}

// PFloTran reads the combined 1d-<root>.h5 output of a standalone PFloTran run.
// Per-time data is keyed time first, variable second.
type PFloTran struct {
	Open            Opener
	CoordinatesPath []string
}

func NewPFloTran(open Opener) *PFloTran {
	if open == nil {
		open = OpenH5
	}
	return &PFloTran{
		Open:            open,
		CoordinatesPath: PFloTranCoordinatesPath,
	}
}

func PFloTranFile(dir, root string) string {
	return filepath.Join(dir, "1d-"+root+".h5")
}

func (p *PFloTran) ReadXY(dir, root, time, variable string) (x, c []float64, err error) {
	var (
		f File
		y []float64
	)
	if f, err = p.Open(PFloTranFile(dir, root)); err != nil {
		return
	}
	defer f.Close()

	if y, err = f.Float64s(p.CoordinatesPath...); err != nil {
		return nil, nil, err
	}
	if x, err = utils.CellCenters(y); err != nil {
		return nil, nil, err
	}
	if c, err = f.Float64s(time, variable); err != nil {
		return nil, nil, err
	}
	return
}
