package readfiles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/scigolib/hdf5"
)

// ErrDatasetNotFound is returned when a dataset path is absent from a file.
var ErrDatasetNotFound = errors.New("dataset not found")

// File is the read-only view of an HDF5 file used by the readers.
type File interface {
	// Float64s returns the named dataset flattened in row-major order.
	Float64s(path ...string) ([]float64, error)
	Close() error
}

// Opener opens a named file for reading.
type Opener func(filename string) (File, error)

// JoinPath builds the slash separated dataset key used by both file layouts.
// Segments may contain spaces and brackets, e.g. "Time:  5.00000E+01 y".
func JoinPath(path ...string) string {
	segs := make([]string, 0, len(path))
	for _, p := range path {
		if p = strings.Trim(p, "/"); len(p) != 0 {
			segs = append(segs, p)
		}
	}
	return strings.Join(segs, "/")
}

type h5File struct {
	name     string
	file     *hdf5.File
	datasets map[string]*hdf5.Dataset
}

// OpenH5 opens an HDF5 file and indexes every dataset it contains by path.
func OpenH5(filename string) (File, error) {
	f, err := hdf5.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", filename, err)
	}
	h := &h5File{
		name:     filename,
		file:     f,
		datasets: make(map[string]*hdf5.Dataset),
	}
	f.Walk(func(path string, obj hdf5.Object) {
		if ds, ok := obj.(*hdf5.Dataset); ok {
			h.datasets[JoinPath(path)] = ds
		}
	})
	return h, nil
}

func (h *h5File) Float64s(path ...string) (data []float64, err error) {
	key := JoinPath(path...)
	ds, ok := h.datasets[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w: %q", h.name, ErrDatasetNotFound, key)
	}
	if data, err = ds.Read(); err != nil {
		return nil, fmt.Errorf("%s: unable to read %q: %w", h.name, key, err)
	}
	return
}

func (h *h5File) Close() error {
	return h.file.Close()
}
