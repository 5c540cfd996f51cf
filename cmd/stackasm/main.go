// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command stackasm assembles stack machine programs into instruction memories
// and runs them through a hardware simulator.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// errFailed exits with a failure status without printing anything more.
var errFailed = errors.New("failed")

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "stackasm",
	Short: "Assembler and test runner for the stack machine",
	Long: `Stackasm assembles line oriented stack machine assembly into an
instruction stream, and renders it as a Verilog instruction memory.

Each line holds one instruction and at most one operand. Operands take a
radix prefix: x for hexadecimal, d for decimal and b for binary. A ';' starts
a comment.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("stackasm: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	atexit.Register(stop)

	code := 0
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		code = 1
	}

	atexit.Exit(code)
}
