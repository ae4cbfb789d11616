/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/isotherms/InputParameters"
	"github.com/notargets/isotherms/model_problems/Isotherms1D"
	"github.com/notargets/isotherms/readfiles"
	"github.com/notargets/isotherms/runner"
)

type Compare struct {
	BenchmarkFile string
	Dir           string
	SkipRun       bool
	Save          string
	Timeout       time.Duration
	Executable    string
	Launcher      []string
}

// CompareCmd represents the compare command
var CompareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run the coupled simulations and plot them against the reference",
	Long: `
Runs each coupled Amanzi variant of the benchmark (unless --skip-run), reads its
output and the PFloTran reference, and draws the two panel comparison figure.
Variants that fail to run or read are reported and left off the plot.

isotherms compare --dir testing/benchmarking/chemistry/isotherms_1d`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cm := &Compare{
			BenchmarkFile: viper.GetString("benchmark"),
			Dir:           viper.GetString("dir"),
			SkipRun:       viper.GetBool("skip-run"),
			Save:          viper.GetString("save"),
			Timeout:       viper.GetDuration("timeout"),
			Executable:    viper.GetString("executable"),
			Launcher:      viper.GetStringSlice("launcher"),
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return RunCompare(ctx, cm, readfiles.OpenH5, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(CompareCmd)
	CompareCmd.Flags().StringP("benchmark", "B", "", "YAML benchmark description, defaults to the isotherms benchmark")
	CompareCmd.Flags().StringP("dir", "D", ".", "benchmark directory holding inputs, chemistry files and outputs")
	CompareCmd.Flags().Bool("skip-run", false, "read existing output instead of running the simulations")
	CompareCmd.Flags().StringP("save", "o", "", "write the figure to this PNG file")
	CompareCmd.Flags().Duration("timeout", 0, "per simulation time limit, 0 is unlimited")
	CompareCmd.Flags().String("executable", "amanzi", "simulator executable")
	CompareCmd.Flags().StringSlice("launcher", nil, "launcher prefix for the simulator, e.g. mpirun,-n,1")
	for _, name := range []string{"benchmark", "dir", "skip-run", "save", "timeout", "executable", "launcher"} {
		_ = viper.BindPFlag(name, CompareCmd.Flags().Lookup(name))
	}
}

// LoadBenchmark returns the default benchmark overlaid with the given file, if any.
func LoadBenchmark(filename string) (bp *InputParameters.BenchmarkParameters, err error) {
	var (
		data []byte
	)
	bp = InputParameters.NewBenchmarkParameters()
	if len(filename) == 0 {
		return
	}
	if data, err = os.ReadFile(filename); err != nil {
		return nil, err
	}
	if err = bp.Parse(data); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", filename, err)
	}
	return
}

func RunCompare(ctx context.Context, cm *Compare, open readfiles.Opener, out io.Writer) (err error) {
	var (
		bp  *InputParameters.BenchmarkParameters
		run runner.Runner
		rep *Isotherms1D.Report
	)
	if bp, err = LoadBenchmark(cm.BenchmarkFile); err != nil {
		return
	}
	if !cm.SkipRun {
		a := runner.NewAmanzi("")
		a.Executable = cm.Executable
		a.Launcher = cm.Launcher
		a.Timeout = cm.Timeout
		a.Log = logger
		run = a
	}
	c := Isotherms1D.NewComparison(bp, cm.Dir, open, run, logger)
	if rep, err = c.Run(ctx); err != nil {
		return
	}
	PrintReport(out, rep)
	if len(cm.Save) == 0 {
		logger.Info("figure not saved, use --save to write it")
		return
	}
	if err = rep.Figure.Save(cm.Save); err != nil {
		return
	}
	logger.WithField("file", cm.Save).Info("figure saved")
	return
}

func PrintReport(w io.Writer, rep *Isotherms1D.Report) {
	fmt.Fprintf(w, "reference\t%d cells, %d times\n", len(rep.Reference.X), len(rep.Reference.Times))
	for _, vr := range rep.Variants {
		if vr.Skipped() {
			fmt.Fprintf(w, "%s\tskipped: %v\n", vr.Variant.Name, vr.Err)
			continue
		}
		fmt.Fprintf(w, "%s\t%d cells, %d times\n", vr.Variant.Name, len(vr.Profiles.X), len(vr.Profiles.Times))
	}
	fmt.Fprintf(w, "%d lines drawn (%s)\n", rep.Figure.LineCount(), rep.Stage)
}
