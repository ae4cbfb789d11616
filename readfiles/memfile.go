package readfiles

import (
	"fmt"
	"os"
)

// MemFile is an in-memory File keyed by JoinPath'd dataset paths.
type MemFile struct {
	Name     string
	Datasets map[string][]float64

	closed bool
	opens  int
}

func NewMemFile(name string) *MemFile {
	return &MemFile{Name: name, Datasets: make(map[string][]float64)}
}

// Put stores a copy of data under the given path and returns the file for chaining.
func (m *MemFile) Put(data []float64, path ...string) *MemFile {
	m.Datasets[JoinPath(path...)] = append([]float64(nil), data...)
	return m
}

func (m *MemFile) Float64s(path ...string) ([]float64, error) {
	if m.closed {
		return nil, fmt.Errorf("%s: read after close", m.Name)
	}
	key := JoinPath(path...)
	d, ok := m.Datasets[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w: %q", m.Name, ErrDatasetNotFound, key)
	}
	return append([]float64(nil), d...), nil
}

func (m *MemFile) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether the last handle opened on m was closed.
func (m *MemFile) Closed() bool {
	return m.closed
}

// Opens reports how many times m has been opened through a MemFS.
func (m *MemFile) Opens() int {
	return m.opens
}

// MemFS maps file names to in-memory files.
type MemFS map[string]*MemFile

// Add registers f under its own name.
func (fs MemFS) Add(f *MemFile) MemFS {
	fs[f.Name] = f
	return fs
}

// Open satisfies Opener. Each open reopens the file for reading.
func (fs MemFS) Open(filename string) (File, error) {
	f, ok := fs[filename]
	if !ok {
		return nil, fmt.Errorf("unable to open %s: %w", filename, os.ErrNotExist)
	}
	f.closed = false
	f.opens++
	return f, nil
}
