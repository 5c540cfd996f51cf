// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package render turns an assembled instruction stream into a memory
// initialization artifact.
package render

import (
	"errors"
	"fmt"
	"io"
	"text/template"

	"github.com/ezrec/stackasm/translate"
)

var f = translate.From

var (
	ErrFormatUnknown = errors.New(f("unknown format"))
	ErrModuleName    = errors.New(f("invalid module name"))
)

// DEFAULT_MODULE is the Verilog module name used when none is given.
const DEFAULT_MODULE = "instruction_memory"

// Format is an output artifact format.
type Format int

const (
	FORMAT_VERILOG = Format(0) // verilog
	FORMAT_HEX     = Format(1) // hex
	FORMAT_BIN     = Format(2) // bin
)

var formatName = map[Format]string{
	FORMAT_VERILOG: "verilog",
	FORMAT_HEX:     "hex",
	FORMAT_BIN:     "bin",
}

func (format Format) String() string {
	name, ok := formatName[format]
	if !ok {
		return fmt.Sprintf("Format(%d)", int(format))
	}
	return name
}

// Set parses a format name, so a Format can be used as a command line flag.
func (format *Format) Set(name string) error {
	for value, known := range formatName {
		if known == name {
			*format = value
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrFormatUnknown, name)
}

// Type names the flag value type.
func (format *Format) Type() string {
	return "format"
}

// Memory is the content of an instruction memory.
type Memory struct {
	Source string // Name of the assembly source, for the artifact header.
	Module string // Verilog module name.
	Count  int    // Number of instructions.
	Data   []byte // Encoded instruction stream.
}

// Last returns the highest index of the memory array.
func (mem Memory) Last() int {
	return len(mem.Data) - 1
}

var verilogTemplate = template.Must(template.New("verilog").Parse(`// AUTO-GENERATED
// {{.Source}}
// {{.Count}} instructions, {{len .Data}} bytes

module {{.Module}}(input [31:0] index, output [7:0] instruction, output [31:0] constant);
    wire [7:0] instructions [0:{{.Last}}];

{{range $index, $data := .Data}}    assign instructions[{{$index}}] = 8'h{{printf "%x" $data}};
{{end}}
    assign instruction = instructions[index];
    assign constant = {
        instructions[index+1],
        instructions[index+2],
        instructions[index+3],
        instructions[index+4]
    };
endmodule
`))

// validModule checks a Verilog simple identifier.
func validModule(name string) bool {
	if len(name) == 0 {
		return false
	}
	for n, c := range name {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case n > 0 && (c == '$' || (c >= '0' && c <= '9')):
		default:
			return false
		}
	}
	return true
}

// Verilog writes the memory as a Verilog module exposing each byte by index,
// with a 4-byte big-endian constant window starting at index+1.
func Verilog(w io.Writer, mem Memory) (err error) {
	if len(mem.Module) == 0 {
		mem.Module = DEFAULT_MODULE
	}
	if !validModule(mem.Module) {
		err = fmt.Errorf("%w: %q", ErrModuleName, mem.Module)
		return
	}

	err = verilogTemplate.Execute(w, mem)
	return
}

// Hex writes the memory as one hexadecimal byte per line, for $readmemh.
func Hex(w io.Writer, mem Memory) (err error) {
	for _, data := range mem.Data {
		_, err = fmt.Fprintf(w, "%02x\n", data)
		if err != nil {
			return
		}
	}
	return
}

// Binary writes the raw memory content.
func Binary(w io.Writer, mem Memory) (err error) {
	_, err = w.Write(mem.Data)
	return
}

// Render writes the memory in the selected format.
func Render(w io.Writer, format Format, mem Memory) (err error) {
	switch format {
	case FORMAT_VERILOG:
		err = Verilog(w, mem)
	case FORMAT_HEX:
		err = Hex(w, mem)
	case FORMAT_BIN:
		err = Binary(w, mem)
	default:
		err = fmt.Errorf("%w: %v", ErrFormatUnknown, format)
	}
	return
}
