// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/exec"

	"github.com/ezrec/stackasm/asm"
	"github.com/ezrec/stackasm/render"
)

const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

// Runner runs tests one at a time in a simulation project.
type Runner struct {
	Config     Config    // Project configuration.
	Out        io.Writer // Progress report.
	Color      bool      // If set, colors PASSED and FAILED.
	PathPrefix string    // If set, prepended to the simulator PATH.
	Verbose    bool      // If set, verbosely logs the runner actions.
}

// Result is the outcome of a single test.
type Result struct {
	Test   Test
	Passed bool
	Err    error // Set if a step failed before the assertions were checked.
}

// Summary is the outcome of a run.
type Summary struct {
	Results []Result
	Passed  int
	Failed  int
}

// OK is true if every test passed.
func (sum Summary) OK() bool {
	return sum.Failed == 0
}

// paint colors text when enabled.
func (run *Runner) paint(color, text string) string {
	if !run.Color {
		return text
	}
	return color + text + colorReset
}

// Run runs the tests in order and reports progress to Out.
func (run *Runner) Run(ctx context.Context, tests []Test) (sum Summary) {
	out := run.Out

	fmt.Fprintf(out, "Discovered %d tests:\n", len(tests))
	for _, test := range tests {
		fmt.Fprintf(out, "  - %v (%d assertions)\n", test.Name, len(test.Assertions))
	}

	for _, test := range tests {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "=== Running: %v ===\n", test.Name)

		passed, err := run.RunTest(ctx, test)
		if err != nil {
			fmt.Fprintln(out)
			fmt.Fprintln(out, run.paint(colorRed, "ERROR"))
			fmt.Fprintln(out, err)
		}

		if passed {
			sum.Passed++
			fmt.Fprintln(out, run.paint(colorGreen, "PASSED"))
		} else {
			sum.Failed++
			fmt.Fprintln(out, run.paint(colorRed, "FAILED"))
		}

		sum.Results = append(sum.Results, Result{Test: test, Passed: passed, Err: err})
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d passed, %d failed\n", sum.Passed, sum.Failed)

	return
}

// RunTest assembles, simulates and checks a single test.
// A non-nil error means a step failed before the assertions were checked.
func (run *Runner) RunTest(ctx context.Context, test Test) (passed bool, err error) {
	out := run.Out
	cfg := &run.Config

	fmt.Fprint(out, "Assemble")
	err = run.assemble(test)
	if err != nil {
		err = &ErrStep{Step: "assemble", Err: err}
		return
	}

	fmt.Fprint(out, " | Simulate")
	output, err := run.simulate(ctx)
	if err != nil {
		if len(output) != 0 {
			err = fmt.Errorf("%w\n%s", err, output)
		}
		err = &ErrStep{Step: "simulate", Err: err}
		return
	}

	fmt.Fprint(out, " | Load")
	globals, err := LoadResults(cfg.Path(cfg.Results))
	if err != nil {
		err = &ErrStep{Step: "load", Err: err}
		return
	}

	fmt.Fprintln(out, " | Check")
	for _, expr := range test.Assertions {
		fmt.Fprintf(out, "  %v\n", expr)
		ok, eval_err := Evaluate(expr, globals)
		if eval_err != nil {
			fmt.Fprintf(out, "  ASSERTION FAILED: %v\n", eval_err)
			return
		}
		if !ok {
			fmt.Fprintln(out, "  ASSERTION FAILED")
			return
		}
	}

	passed = true
	return
}

// assemble writes the rendered instruction memory of a test program.
// Nothing is written if the program does not assemble.
func (run *Runner) assemble(test Test) (err error) {
	cfg := &run.Config

	inf, err := os.Open(test.File)
	if err != nil {
		return
	}
	defer inf.Close()

	assembler := &asm.Assembler{Verbose: run.Verbose}
	prog, err := assembler.Parse(inf)
	if err != nil {
		return
	}

	mem := render.Memory{
		Source: test.File,
		Module: cfg.Module,
		Count:  prog.Count(),
		Data:   prog.Binary(),
	}

	var buff bytes.Buffer
	err = render.Verilog(&buff, mem)
	if err != nil {
		return
	}

	err = os.WriteFile(cfg.Path(cfg.Memory), buff.Bytes(), 0o644)
	return
}

// simulate runs the simulator in the project directory, returning its combined output.
func (run *Runner) simulate(ctx context.Context) (output []byte, err error) {
	cfg := &run.Config

	if len(cfg.Simulator) == 0 {
		err = ErrSimulatorMissing
		return
	}

	// Never check assertions against a previous run's results.
	err = os.Remove(cfg.Path(cfg.Results))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return
	}
	err = nil

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, cfg.Simulator[0], cfg.Simulator[1:]...)
	cmd.Dir = cfg.Dir
	if len(run.PathPrefix) != 0 {
		path := run.PathPrefix + string(os.PathListSeparator) + os.Getenv("PATH")
		cmd.Env = append(os.Environ(), "PATH="+path)
	}

	if run.Verbose {
		log.Printf("simulate: %v", cmd)
	}

	output, err = cmd.CombinedOutput()
	return
}
