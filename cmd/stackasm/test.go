// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"golang.org/x/term"

	"github.com/ezrec/stackasm/harness"
)

var testFlags struct {
	config string
}

var testCmd = &cobra.Command{
	Use:   "test [flags] [project]",
	Short: "Run the test programs of a simulation project",
	Long: `Test discovers the programs of a simulation project that contain a
';!test' line, and for each one assembles it, renders the instruction memory,
runs the simulator and checks every ';!assert' expression against the
simulation results.

The project is configured by stackasm.toml in the project directory; without
one, an apio project is assumed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) != 0 {
			dir = args[0]
		}
		return runTests(cmd, dir)
	},
}

func init() {
	testCmd.Flags().StringVarP(&testFlags.config, "config", "c", "", "Configuration file (default PROJECT/"+harness.CONFIG_FILE+")")

	rootCmd.AddCommand(testCmd)
}

func runTests(cmd *cobra.Command, dir string) (err error) {
	path := testFlags.config
	if len(path) == 0 {
		path = filepath.Join(dir, harness.CONFIG_FILE)
	}

	cfg, err := harness.LoadConfig(path)
	if err != nil {
		return
	}

	tests, err := harness.Discover(cfg.Path(cfg.Programs))
	if err != nil {
		return
	}

	runner := &harness.Runner{
		Config:  cfg,
		Out:     os.Stdout,
		Color:   term.IsTerminal(int(os.Stdout.Fd())),
		Verbose: verbose,
	}

	if len(cfg.Viewers) != 0 {
		var stub string
		stub, err = harness.StubViewer(cfg.Viewers...)
		if err != nil {
			return
		}
		atexit.Register(func() {
			err := os.RemoveAll(stub)
			if err != nil {
				log.Printf("%v: %v", stub, err)
			}
		})
		runner.PathPrefix = stub
	}

	sum := runner.Run(cmd.Context(), tests)
	if !sum.OK() {
		err = errFailed
	}

	return
}
