package Isotherms1D

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/notargets/isotherms/InputParameters"
	"github.com/notargets/isotherms/plotting"
	"github.com/notargets/isotherms/readfiles"
	"github.com/notargets/isotherms/runner"
	"github.com/notargets/isotherms/utils"
)

type Stage uint8

const (
	NotRun Stage = iota
	ReferenceRead
	VariantsAttempted
	PlotDrawn
)

func (s Stage) String() string {
	switch s {
	case NotRun:
		return "not run"
	case ReferenceRead:
		return "reference read"
	case VariantsAttempted:
		return "variants attempted"
	case PlotDrawn:
		return "plot drawn"
	}
	return fmt.Sprintf("Stage(%d)", uint8(s))
}

// VariantResult is the outcome of one coupled run: profiles on success, the
// reason it was left off the plot otherwise.
type VariantResult struct {
	Variant  InputParameters.Variant
	Profiles *Profiles
	Err      error
}

func (vr VariantResult) Skipped() bool { return vr.Err != nil }

type Report struct {
	Stage     Stage
	Reference *Profiles
	Variants  []VariantResult
	Figure    *plotting.Figure
}

// Skipped lists the variants that could not be run or read.
func (r *Report) Skipped() (skipped []VariantResult) {
	for _, vr := range r.Variants {
		if vr.Skipped() {
			skipped = append(skipped, vr)
		}
	}
	return
}

// Comparison reads the reference and coupled outputs of the benchmark and assembles the figure.
type Comparison struct {
	Params    *InputParameters.BenchmarkParameters
	BaseDir   string
	Reference readfiles.XYReader
	Coupled   readfiles.XYReader
	Runner    runner.Runner // nil reads existing output without running
	Log       *log.Logger
}

func NewComparison(bp *InputParameters.BenchmarkParameters, baseDir string, open readfiles.Opener,
	run runner.Runner, logger *log.Logger) (c *Comparison) {
	amanzi := readfiles.NewAmanzi(open)
	amanzi.NodeDim = bp.NodeDim
	if bp.LegacyMesh {
		amanzi.NodesPath = readfiles.AmanziLegacyNodesPath
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	c = &Comparison{
		Params:    bp,
		BaseDir:   baseDir,
		Reference: readfiles.NewPFloTran(open),
		Coupled:   amanzi,
		Runner:    run,
		Log:       logger,
	}
	return
}

func (c *Comparison) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.BaseDir, name)
}

// Run reads the reference, attempts each variant in order and draws the figure.
// Only reference failures are returned; variant failures are recorded in the report.
func (c *Comparison) Run(ctx context.Context) (rep *Report, err error) {
	var (
		bp = c.Params
	)
	if err = bp.Validate(); err != nil {
		return
	}
	rep = &Report{Stage: NotRun}
	refDir := c.path(bp.ReferenceDir)
	c.Log.WithFields(log.Fields{"dir": refDir, "times": len(bp.ReferenceTimes)}).Debug("reading reference")
	if rep.Reference, err = ReadProfiles(c.Reference, refDir, bp.Root, bp.ReferenceTimes, ReferenceNames(bp)); err != nil {
		return nil, fmt.Errorf("reference %s: %w", bp.ReferenceName, err)
	}
	rep.Stage = ReferenceRead

	for _, v := range bp.Variants {
		vr := c.runVariant(ctx, v)
		if vr.Skipped() {
			c.Log.WithFields(log.Fields{"variant": v.Name, "error": vr.Err}).Warn("variant skipped")
		}
		rep.Variants = append(rep.Variants, vr)
	}
	rep.Stage = VariantsAttempted

	if rep.Figure, err = c.Plot(rep); err != nil {
		return nil, err
	}
	rep.Stage = PlotDrawn
	return
}

func (c *Comparison) runVariant(ctx context.Context, v InputParameters.Variant) (vr VariantResult) {
	var (
		bp     = c.Params
		outDir = c.path(v.OutputDir)
	)
	vr.Variant = v
	if c.Runner != nil {
		chemFiles := make([]string, len(v.ChemFiles))
		for i, cf := range v.ChemFiles {
			chemFiles[i] = c.path(cf)
		}
		c.Log.WithFields(log.Fields{"variant": v.Name, "input": v.Input}).Info("running variant")
		if err := c.Runner.Run(ctx, c.path(v.Input), outDir, chemFiles); err != nil {
			vr.Err = fmt.Errorf("run: %w", err)
			return
		}
	}
	c.Log.WithFields(log.Fields{"variant": v.Name, "dir": outDir}).Debug("reading variant")
	p, err := ReadProfiles(c.Coupled, outDir, bp.Root, bp.CoupledTimes, CoupledNames(bp))
	if err != nil {
		vr.Err = fmt.Errorf("read: %w", err)
		return
	}
	vr.Profiles = p
	return
}

func variantStyle(v InputParameters.Variant) plotting.LineStyle {
	if v.Style == InputParameters.StyleDashed {
		return plotting.Dashed
	}
	return plotting.Solid
}

// drawOrder returns the variants that ran, solid lines ahead of dashed ones.
// Within a style the configured order is kept.
func drawOrder(variants []VariantResult) (drawn []VariantResult) {
	for _, vr := range variants {
		if !vr.Skipped() {
			drawn = append(drawn, vr)
		}
	}
	sort.SliceStable(drawn, func(a, b int) bool {
		return variantStyle(drawn[a].Variant) == plotting.Solid &&
			variantStyle(drawn[b].Variant) != plotting.Solid
	})
	return
}

// Plot draws aqueous concentrations on the top axes and sorbed concentrations on
// the bottom one at the configured plot time. Skipped variants are left out.
func (c *Comparison) Plot(rep *Report) (fig *plotting.Figure, err error) {
	var (
		bp = c.Params
		i  = bp.PlotTimeIndex
	)
	fig = plotting.NewFigure(2, bp.Width, bp.Height)
	aq, so := fig.Axes[0], fig.Axes[1]
	plot := func(ax *plotting.Axes, x, y []float64, opts plotting.LineOpts) {
		if err == nil {
			err = ax.Plot(x, y, opts)
		}
	}
	drawn := drawOrder(rep.Variants)
	for j, comp := range bp.Components {
		color := utils.ComponentColor(j)
		for _, vr := range drawn {
			opts := plotting.LineOpts{Color: color, Style: variantStyle(vr.Variant)}
			plot(aq, vr.Profiles.X, vr.Profiles.Aqueous[i][j], opts)
			if j == 0 {
				opts.Label = vr.Variant.Name
			}
			plot(so, vr.Profiles.X, vr.Profiles.Sorbed[i][j], opts)
		}
		ref := rep.Reference
		opts := plotting.LineOpts{Color: color, Style: plotting.Markers, Label: comp}
		plot(aq, ref.X, ref.Aqueous[i][j], opts)
		opts.Label = ""
		if j == 0 {
			opts.Label = bp.ReferenceName
		}
		plot(so, ref.X, ref.Sorbed[i][j], opts)
	}
	if err != nil {
		return nil, err
	}
	so.SetXLabel("Distance (m)")
	aq.SetYLabel("Total Concentration [mol/L]")
	so.SetYLabel("Total Sorbed Concent. [mol/m3]")
	aq.ShowLegend()
	so.ShowLegend()
	for _, ax := range fig.Axes {
		if err = ax.SetXLim(bp.XMin, bp.XMax); err != nil {
			return nil, err
		}
	}
	fig.SetTitle(bp.PlotTitle())
	return
}
