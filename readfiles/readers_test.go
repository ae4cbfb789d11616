package readfiles

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	root       = "isotherms"
	pflTime    = "Time:  5.00000E+01 y"
	amanziComp = "total_component_concentration.cell.Component 0 conc"
)

// amanziNodes builds 4 node planes of k+1 nodes spanning [0, 100], 3 columns per node.
func amanziNodes(k int) (nodes []float64) {
	dx := 100. / float64(k)
	for plane := 0; plane < 4; plane++ {
		for i := 0; i <= k; i++ {
			nodes = append(nodes, float64(i)*dx, float64(plane%2), float64(plane/2))
		}
	}
	return
}

func ramp(n int, scale float64) (r []float64) {
	r = make([]float64, n)
	for i := range r {
		r[i] = float64(i) * scale
	}
	return
}

func newAmanziFS(dir string, k int) (MemFS, *MemFile, *MemFile) {
	data := NewMemFile(AmanziDataFile(dir, root)).
		Put(ramp(k, 1.e-3), amanziComp, "71").
		Put(ramp(k, 0), amanziComp, "0")
	mesh := NewMemFile(AmanziMeshFile(dir, root)).
		Put(amanziNodes(k), AmanziNodesPath...)
	fs := MemFS{}.Add(data).Add(mesh)
	return fs, data, mesh
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "0/Mesh/Nodes", JoinPath("0", "Mesh", "Nodes"))
	assert.Equal(t, "0/Mesh/Nodes", JoinPath("/0/Mesh/Nodes/"))
	assert.Equal(t, "Time:  5.00000E+01 y/Total_A [M]", JoinPath(pflTime, "Total_A [M]"))
	assert.Equal(t, "a/b", JoinPath("", "/a", "", "b/"))
}

func TestAmanziReadXY(t *testing.T) {
	// 41 nodes per plane, 164 node rows, 40 cells
	fs, data, mesh := newAmanziFS("amanzi-native-output", 40)
	r := NewAmanzi(fs.Open)
	x, c, err := r.ReadXY("amanzi-native-output", root, "71", amanziComp)
	require.NoError(t, err)
	require.Equal(t, 40, len(x))
	require.Equal(t, 40, len(c))
	assert.InDelta(t, 1.25, x[0], 1.e-12)
	assert.InDelta(t, 98.75, x[39], 1.e-12)
	assert.InDelta(t, 0.039, c[39], 1.e-12)
	assert.True(t, data.Closed())
	assert.True(t, mesh.Closed())
}

func TestAmanziReadIdempotent(t *testing.T) {
	fs, _, _ := newAmanziFS("out", 40)
	r := NewAmanzi(fs.Open)
	x1, c1, err := r.ReadXY("out", root, "71", amanziComp)
	require.NoError(t, err)
	x2, c2, err := r.ReadXY("out", root, "71", amanziComp)
	require.NoError(t, err)
	assert.Equal(t, x1, x2)
	assert.Equal(t, c1, c2)
	// mutating a returned slice never leaks back into the store
	c1[0] = 42
	_, c3, err := r.ReadXY("out", root, "71", amanziComp)
	require.NoError(t, err)
	assert.Equal(t, c2, c3)
}

func TestAmanziLegacyLayout(t *testing.T) {
	dir := "legacy"
	data := NewMemFile(AmanziDataFile(dir, root)).Put(ramp(10, 1), amanziComp, "71")
	mesh := NewMemFile(AmanziMeshFile(dir, root)).Put(amanziNodes(10), AmanziLegacyNodesPath...)
	fs := MemFS{}.Add(data).Add(mesh)

	r := NewAmanzi(fs.Open)
	_, _, err := r.ReadXY(dir, root, "71", amanziComp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDatasetNotFound))

	r.NodesPath = AmanziLegacyNodesPath
	x, c, err := r.ReadXY(dir, root, "71", amanziComp)
	require.NoError(t, err)
	assert.Equal(t, 10, len(x))
	assert.Equal(t, 10, len(c))
}

func TestAmanziErrors(t *testing.T) {
	fs, _, _ := newAmanziFS("out", 40)
	r := NewAmanzi(fs.Open)

	_, _, err := r.ReadXY("missing", root, "71", amanziComp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, _, err = r.ReadXY("out", root, "99", amanziComp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDatasetNotFound))

	_, _, err = r.ReadXY("out", root, "71", "total_sorbed.cell.7")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDatasetNotFound))

	r.NodeDim = 7
	_, _, err = r.ReadXY("out", root, "71", amanziComp)
	assert.Error(t, err)
}

func TestPFloTranReadXY(t *testing.T) {
	dir := "pflotran"
	f := NewMemFile(PFloTranFile(dir, root)).
		Put(ramp(41, 2.5), PFloTranCoordinatesPath...).
		Put(ramp(40, 1.e-4), pflTime, "Total_A [M]").
		Put(ramp(40, 2.e-4), pflTime, "Total_Sorbed_A [mol_m^3]")
	fs := MemFS{}.Add(f)

	r := NewPFloTran(fs.Open)
	x, c, err := r.ReadXY(dir, root, pflTime, "Total_A [M]")
	require.NoError(t, err)
	require.Equal(t, 40, len(x))
	require.Equal(t, 40, len(c))
	assert.Equal(t, 1.25, x[0])
	assert.True(t, f.Closed())

	_, s, err := r.ReadXY(dir, root, pflTime, "Total_Sorbed_A [mol_m^3]")
	require.NoError(t, err)
	assert.InDelta(t, 2*c[39], s[39], 1.e-15)
	assert.Equal(t, 2, f.Opens())

	// variable first, time second is the coupling layout and must not resolve here
	_, _, err = r.ReadXY(dir, root, "Total_A [M]", pflTime)
	assert.True(t, errors.Is(err, ErrDatasetNotFound))

	_, _, err = r.ReadXY("elsewhere", root, pflTime, "Total_A [M]")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFileNames(t *testing.T) {
	assert.Equal(t, "out/isotherms_data.h5", AmanziDataFile("out", root))
	assert.Equal(t, "out/isotherms_mesh.h5", AmanziMeshFile("out", root))
	assert.Equal(t, "pflotran/1d-isotherms.h5", PFloTranFile("pflotran", root))
}

func TestOpenH5Missing(t *testing.T) {
	_, err := OpenH5("does-not-exist.h5")
	assert.Error(t, err)
}
