// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/stackasm/asm"
)

var disCmd = &cobra.Command{
	Use:   "dis [flags] memory.bin",
	Short: "List a raw instruction stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return disassemble(args[0])
	},
}

func init() {
	rootCmd.AddCommand(disCmd)
}

func disassemble(path string) (err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	prog, err := asm.Disassemble(data)
	if err != nil {
		return
	}

	if verbose {
		pp.Fprintln(os.Stderr, prog)
	}

	err = prog.Listing(os.Stdout)
	return
}
