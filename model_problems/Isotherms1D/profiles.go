package Isotherms1D

import (
	"fmt"

	"github.com/notargets/isotherms/readfiles"
)

// Profiles holds the cell centres of one source and its concentrations indexed
// [time][component][cell].
type Profiles struct {
	X       []float64
	Times   []string
	Aqueous [][][]float64
	Sorbed  [][][]float64
}

// ReadProfiles reads every time x variable pair of one source. The first error aborts the read.
func ReadProfiles(r readfiles.XYReader, dir, root string, times []string, names VariableNames) (p *Profiles, err error) {
	p = &Profiles{
		Times:   append([]string(nil), times...),
		Aqueous: make([][][]float64, len(times)),
		Sorbed:  make([][][]float64, len(times)),
	}
	read := func(time, variable string) (c []float64, err error) {
		var x []float64
		if x, c, err = r.ReadXY(dir, root, time, variable); err != nil {
			return
		}
		if len(x) != len(c) {
			return nil, fmt.Errorf("%s %q at %q: %d cell centres but %d values",
				dir, variable, time, len(x), len(c))
		}
		p.X = x
		return
	}
	for i, time := range times {
		p.Aqueous[i] = make([][]float64, len(names.Aqueous))
		for j, comp := range names.Aqueous {
			if p.Aqueous[i][j], err = read(time, comp); err != nil {
				return nil, err
			}
		}
	}
	for i, time := range times {
		p.Sorbed[i] = make([][]float64, len(names.Sorbed))
		for j, sorb := range names.Sorbed {
			if p.Sorbed[i][j], err = read(time, sorb); err != nil {
				return nil, err
			}
		}
	}
	return
}
