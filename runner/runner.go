// Package runner launches the external simulations whose output is compared.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Runner runs one simulation to completion, leaving its output files in runDir, or fails.
type Runner interface {
	Run(ctx context.Context, input, runDir string, chemFiles []string) error
}

// Func adapts a function to the Runner interface.
type Func func(ctx context.Context, input, runDir string, chemFiles []string) error

func (f Func) Run(ctx context.Context, input, runDir string, chemFiles []string) error {
	return f(ctx, input, runDir, chemFiles)
}

const InputPlaceholder = "{input}"

// Amanzi runs the amanzi executable inside runDir.
type Amanzi struct {
	Launcher   []string // optional prefix, e.g. mpirun -n 1
	Executable string
	Args       []string // InputPlaceholder is replaced with the absolute input path
	BaseDir    string   // where input and chemistry files are found
	Timeout    time.Duration
	StdoutName string
	Log        *log.Logger
}

func NewAmanzi(baseDir string) *Amanzi {
	return &Amanzi{
		Executable: "amanzi",
		Args:       []string{"--xml_file=" + InputPlaceholder},
		BaseDir:    baseDir,
		StdoutName: "stdout.out",
		Log:        log.StandardLogger(),
	}
}

func (a *Amanzi) resolve(name string) (string, error) {
	if !filepath.IsAbs(name) {
		name = filepath.Join(a.BaseDir, name)
	}
	return filepath.Abs(name)
}

// Command returns the argv for a run on the given absolute input path.
func (a *Amanzi) Command(input string) (argv []string) {
	argv = append(argv, a.Launcher...)
	argv = append(argv, a.Executable)
	for _, arg := range a.Args {
		argv = append(argv, strings.ReplaceAll(arg, InputPlaceholder, input))
	}
	return
}

func (a *Amanzi) Run(ctx context.Context, input, runDir string, chemFiles []string) (err error) {
	var (
		inputPath, dir string
		out            *os.File
	)
	if len(a.Executable) == 0 {
		return fmt.Errorf("no simulator executable configured")
	}
	if inputPath, err = a.resolve(input); err != nil {
		return
	}
	if dir, err = a.resolve(runDir); err != nil {
		return
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("unable to create run directory: %w", err)
	}
	for _, cf := range chemFiles {
		var src string
		if src, err = a.resolve(cf); err != nil {
			return
		}
		if err = copyFile(src, filepath.Join(dir, filepath.Base(cf))); err != nil {
			return fmt.Errorf("unable to stage chemistry file %s: %w", cf, err)
		}
	}
	if a.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Timeout)
		defer cancel()
	}
	argv := a.Command(inputPath)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	if len(a.StdoutName) != 0 {
		if out, err = os.Create(filepath.Join(dir, a.StdoutName)); err != nil {
			return
		}
		defer out.Close()
		cmd.Stdout, cmd.Stderr = out, out
	}
	if a.Log != nil {
		a.Log.WithFields(log.Fields{"dir": dir, "cmd": strings.Join(argv, " ")}).Info("running simulation")
	}
	start := time.Now()
	if err = cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("simulation %s in %s: %w", filepath.Base(inputPath), dir, ctxErr)
		}
		return fmt.Errorf("simulation %s in %s: %w", filepath.Base(inputPath), dir, err)
	}
	if a.Log != nil {
		a.Log.WithFields(log.Fields{"dir": dir, "elapsed": time.Since(start).Round(time.Millisecond)}).Info("simulation finished")
	}
	return
}

func copyFile(src, dst string) (err error) {
	var (
		in, out *os.File
	)
	if src == dst {
		return
	}
	if in, err = os.Open(src); err != nil {
		return
	}
	defer in.Close()
	if out, err = os.Create(dst); err != nil {
		return
	}
	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return
	}
	return out.Close()
}
