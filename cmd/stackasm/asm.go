// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"log"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/stackasm/asm"
	"github.com/ezrec/stackasm/render"
)

var asmFlags struct {
	output string
	format render.Format
	module string
}

var asmCmd = &cobra.Command{
	Use:   "asm [flags] source.asm",
	Short: "Assemble a program into an instruction memory",
	Long: `Asm assembles a single source file. On success the rendered memory is
written to standard output, or to the -o file. On failure the first error is
reported as 'Error (line N): description' and nothing is written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return assemble(args[0])
	},
}

func init() {
	flags := asmCmd.Flags()
	flags.StringVarP(&asmFlags.output, "output", "o", "-", "Output file, - for standard output")
	flags.VarP(&asmFlags.format, "format", "f", "Output format: verilog, hex or bin")
	flags.StringVarP(&asmFlags.module, "module", "m", render.DEFAULT_MODULE, "Verilog module name")

	rootCmd.AddCommand(asmCmd)
}

func assemble(source string) (err error) {
	inf, err := os.Open(source)
	if err != nil {
		return
	}
	defer inf.Close()

	assembler := &asm.Assembler{Verbose: verbose}
	prog, err := assembler.Parse(inf)
	if err != nil {
		return
	}

	if verbose {
		pp.Fprintln(os.Stderr, prog)
	}

	mem := render.Memory{
		Source: source,
		Module: asmFlags.module,
		Count:  prog.Count(),
		Data:   prog.Binary(),
	}

	var buff bytes.Buffer
	err = render.Render(&buff, asmFlags.format, mem)
	if err != nil {
		return
	}

	if asmFlags.output == "-" {
		_, err = os.Stdout.Write(buff.Bytes())
		return
	}

	err = os.WriteFile(asmFlags.output, buff.Bytes(), 0o644)
	if err != nil {
		return
	}

	if verbose {
		log.Printf("%v: %v instructions, %v bytes", asmFlags.output, mem.Count, len(mem.Data))
	}

	return
}
