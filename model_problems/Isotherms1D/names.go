package Isotherms1D

import (
	"fmt"

	"github.com/notargets/isotherms/InputParameters"
)

// VariableNames are the dataset keys of one source, one entry per component.
// They must match the producing simulator's naming exactly.
type VariableNames struct {
	Aqueous, Sorbed []string
}

// ReferenceNames formats the standalone templates with each component letter,
// e.g. "Total_A [M]" and "Total_Sorbed_A [mol_m^3]".
func ReferenceNames(bp *InputParameters.BenchmarkParameters) (vn VariableNames) {
	for _, comp := range bp.Components {
		vn.Aqueous = append(vn.Aqueous, fmt.Sprintf(bp.ReferenceAqueous, comp))
		vn.Sorbed = append(vn.Sorbed, fmt.Sprintf(bp.ReferenceSorbed, comp))
	}
	return
}

// CoupledNames formats the Amanzi templates with each component index,
// e.g. "total_component_concentration.cell.Component 0 conc" and "total_sorbed.cell.0".
func CoupledNames(bp *InputParameters.BenchmarkParameters) (vn VariableNames) {
	for i := range bp.Components {
		vn.Aqueous = append(vn.Aqueous, fmt.Sprintf(bp.CoupledAqueous, i))
		vn.Sorbed = append(vn.Sorbed, fmt.Sprintf(bp.CoupledSorbed, i))
	}
	return
}
