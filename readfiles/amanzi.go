package readfiles

import (
	"fmt"
	"path/filepath"

	"github.com/notargets/isotherms/utils"
)

var (
	// AmanziNodesPath is where current Amanzi mesh files keep the node coordinates.
	AmanziNodesPath = []string{"0", "Mesh", "Nodes"}
	// AmanziLegacyNodesPath is the older layout without the leading step group.
	AmanziLegacyNodesPath = []string{"Mesh", "Nodes"}
)

// XYReader extracts cell-centre coordinates and a concentration profile for one
// variable at one output time.
type XYReader interface {
	ReadXY(dir, root, time, variable string) (x, c []float64, err error)
}

// Amanzi reads the paired <root>_data.h5 / <root>_mesh.h5 output of an Amanzi run.
type Amanzi struct {
	Open      Opener
	NodesPath []string
	NodeDim   int // columns of the node array, x is column 0
}

func NewAmanzi(open Opener) *Amanzi {
	if open == nil {
		open = OpenH5
	}
	return &Amanzi{
		Open:      open,
		NodesPath: AmanziNodesPath,
		NodeDim:   3,
	}
}

func AmanziDataFile(dir, root string) string {
	return filepath.Join(dir, root+"_data.h5")
}

func AmanziMeshFile(dir, root string) string {
	return filepath.Join(dir, root+"_mesh.h5")
}

// ReadXY returns the cell centres along x and the flattened dataset variable/time.
func (a *Amanzi) ReadXY(dir, root, time, variable string) (x, c []float64, err error) {
	var (
		data, mesh File
		nodes, y   []float64
	)
	if data, err = a.Open(AmanziDataFile(dir, root)); err != nil {
		return
	}
	defer data.Close()
	if mesh, err = a.Open(AmanziMeshFile(dir, root)); err != nil {
		return
	}
	defer mesh.Close()

	if nodes, err = mesh.Float64s(a.NodesPath...); err != nil {
		return nil, nil, err
	}
	if y, err = utils.NodeAxis(nodes, a.NodeDim); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", AmanziMeshFile(dir, root), err)
	}
	if x, err = utils.CellCenters(y); err != nil {
		return nil, nil, err
	}
	if c, err = data.Float64s(variable, time); err != nil {
		return nil, nil, err
	}
	return
}
