package InputParameters

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Line styles of a coupled variant on the comparison plot
const (
	StyleSolid  = "solid"
	StyleDashed = "dashed"
)

// Variant is one coupled Amanzi run compared against the reference
type Variant struct {
	Name      string   `yaml:"Name"`      // legend label
	Input     string   `yaml:"Input"`     // input description, relative to the benchmark directory
	OutputDir string   `yaml:"OutputDir"` // run directory holding <root>_data.h5 and <root>_mesh.h5
	ChemFiles []string `yaml:"ChemFiles"` // chemistry definitions copied into OutputDir before the run
	Style     string   `yaml:"Style"`
}

// Parameters obtained from the YAML benchmark file
type BenchmarkParameters struct {
	Title            string    `yaml:"Title"`
	Root             string    `yaml:"Root"`
	Components       []string  `yaml:"Components"`
	ReferenceName    string    `yaml:"ReferenceName"`
	ReferenceDir     string    `yaml:"ReferenceDir"`
	ReferenceTimes   []string  `yaml:"ReferenceTimes"`
	CoupledTimes     []string  `yaml:"CoupledTimes"`
	PlotTimeIndex    int       `yaml:"PlotTimeIndex"`
	PlotTimeLabel    string    `yaml:"PlotTimeLabel"`
	XMin             float64   `yaml:"XMin"`
	XMax             float64   `yaml:"XMax"`
	NodeDim          int       `yaml:"NodeDim"`
	LegacyMesh       bool      `yaml:"LegacyMesh"`
	ReferenceAqueous string    `yaml:"ReferenceAqueous"` // format verb receives the component name
	ReferenceSorbed  string    `yaml:"ReferenceSorbed"`
	CoupledAqueous   string    `yaml:"CoupledAqueous"` // format verb receives the component index
	CoupledSorbed    string    `yaml:"CoupledSorbed"`
	Variants         []Variant `yaml:"Variants"`
	Width            int       `yaml:"Width"`
	Height           int       `yaml:"Height"`
}

// NewBenchmarkParameters returns the 1D isotherms benchmark as published.
func NewBenchmarkParameters() (bp *BenchmarkParameters) {
	bp = &BenchmarkParameters{
		Root:             "isotherms",
		Components:       []string{"A", "B", "C"},
		ReferenceName:    "PFloTran",
		ReferenceDir:     "pflotran",
		ReferenceTimes:   []string{"Time:  0.00000E+00 y", "Time:  5.00000E+01 y"},
		CoupledTimes:     []string{"0", "71"},
		PlotTimeIndex:    1,
		PlotTimeLabel:    "50 years",
		XMin:             30,
		XMax:             70,
		NodeDim:          3,
		ReferenceAqueous: "Total_%s [M]",
		ReferenceSorbed:  "Total_Sorbed_%s [mol_m^3]",
		CoupledAqueous:   "total_component_concentration.cell.Component %d conc",
		CoupledSorbed:    "total_sorbed.cell.%d",
		Width:            800,
		Height:           800,
	}
	bp.Variants = []Variant{
		{
			Name:      "Amanzi Native Chemistry",
			Input:     "amanzi-u-1d-" + bp.Root + ".xml",
			OutputDir: "amanzi-native-output",
			ChemFiles: []string{bp.Root + ".bgd"},
			Style:     StyleDashed,
		},
		{
			Name:      "Amanzi+Alquimia(PFloTran)",
			Input:     "amanzi-u-1d-" + bp.Root + "-alq.xml",
			OutputDir: "amanzi-alquimia-output",
			ChemFiles: []string{"1d-" + bp.Root + ".in", bp.Root + ".dat"},
			Style:     StyleSolid,
		},
	}
	return
}

// Parse overlays the YAML document on the receiver, keys absent from data keep their value.
func (bp *BenchmarkParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, bp)
}

func (bp *BenchmarkParameters) Marshal() ([]byte, error) {
	return yaml.Marshal(bp)
}

func (bp *BenchmarkParameters) Validate() error {
	if len(bp.Root) == 0 {
		return fmt.Errorf("benchmark root name is empty")
	}
	if len(bp.Components) == 0 {
		return fmt.Errorf("benchmark has no components")
	}
	if len(bp.ReferenceTimes) == 0 || len(bp.CoupledTimes) == 0 {
		return fmt.Errorf("benchmark needs reference and coupled output times")
	}
	if bp.PlotTimeIndex < 0 || bp.PlotTimeIndex >= len(bp.ReferenceTimes) || bp.PlotTimeIndex >= len(bp.CoupledTimes) {
		return fmt.Errorf("plot time index %d out of range for %d reference and %d coupled times",
			bp.PlotTimeIndex, len(bp.ReferenceTimes), len(bp.CoupledTimes))
	}
	if !(bp.XMin < bp.XMax) {
		return fmt.Errorf("x limits [%g, %g] are inverted or empty", bp.XMin, bp.XMax)
	}
	if bp.NodeDim < 1 {
		return fmt.Errorf("node dimension must be positive, have %d", bp.NodeDim)
	}
	for _, templ := range []string{bp.ReferenceAqueous, bp.ReferenceSorbed, bp.CoupledAqueous, bp.CoupledSorbed} {
		if !strings.Contains(templ, "%") {
			return fmt.Errorf("variable name template %q has no format verb", templ)
		}
	}
	names := make(map[string]bool)
	for _, v := range bp.Variants {
		if len(v.Name) == 0 || len(v.OutputDir) == 0 {
			return fmt.Errorf("variant %+v needs a name and an output directory", v)
		}
		if names[v.Name] {
			return fmt.Errorf("duplicate variant name %q", v.Name)
		}
		names[v.Name] = true
		switch v.Style {
		case StyleSolid, StyleDashed:
		default:
			return fmt.Errorf("variant %q has unknown style %q", v.Name, v.Style)
		}
	}
	return nil
}

// PlotTitle is the figure title, derived from the root name unless Title is set.
func (bp *BenchmarkParameters) PlotTitle() string {
	if len(bp.Title) != 0 {
		return bp.Title
	}
	root := cases.Title(language.English).String(bp.Root)
	return fmt.Sprintf("Amanzi 1D %s Benchmark at %s", root, bp.PlotTimeLabel)
}

func (bp *BenchmarkParameters) Print() {
	fmt.Printf("\"%s\"\t= Title\n", bp.PlotTitle())
	fmt.Printf("[%s]\t\t\t= Root\n", bp.Root)
	fmt.Printf("%v\t\t= Components\n", bp.Components)
	fmt.Printf("[%s] %q\t= Reference Times\n", bp.ReferenceDir, bp.ReferenceTimes)
	fmt.Printf("%q\t\t= Coupled Times\n", bp.CoupledTimes)
	fmt.Printf("[%d]\t\t\t= Plot Time Index\n", bp.PlotTimeIndex)
	fmt.Printf("[%5.1f, %5.1f]\t= X Range\n", bp.XMin, bp.XMax)
	for _, v := range bp.Variants {
		fmt.Printf("Variant[%s] = %s -> %s %v (%s)\n", v.Name, v.Input, v.OutputDir, v.ChemFiles, v.Style)
	}
}
