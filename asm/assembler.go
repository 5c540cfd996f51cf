// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"errors"
	"io"
	"log"
	"slices"
	"strings"

	"github.com/ezrec/stackasm/isa"
)

// Assembler is a single pass assembler for the stack machine.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.
}

// currentOffset gets the byte offset of the next opcode.
func (asm *Assembler) currentOffset() int {
	if len(asm.Opcode) == 0 {
		return 0
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Offset + last.Size()
}

// splitLine strips comments and splits a line into words.
// A nil result means the line has nothing to assemble.
func splitLine(text string) (words []string) {
	line := strings.TrimSpace(text)
	if len(line) == 0 || strings.HasPrefix(line, ";") {
		return
	}

	code, _, _ := strings.Cut(line, ";")
	words = strings.Fields(code)
	if words == nil {
		words = []string{}
	}

	return
}

// EncodeLine encodes a single line of source text.
//
// Blank and comment-only lines return a nil opcode and no error.
// The opcode returned has no line number or offset assigned.
func EncodeLine(text string) (op *Opcode, err error) {
	words := splitLine(text)
	if words == nil {
		return
	}

	op, err = encodeWords(words)
	return
}

// encodeWords resolves the mnemonic and operand of a tokenized line.
func encodeWords(words []string) (op *Opcode, err error) {
	if len(words) == 0 {
		err = ErrOpcodeMissing
		return
	}

	inst, ok := isa.Lookup(words[0])
	if !ok {
		err = ErrUnknownInstruction(words[0])
		return
	}

	args := words[1:]

	op = &Opcode{
		Words:       words,
		Instruction: inst,
	}

	if !inst.Operand {
		if len(args) != 0 {
			op = nil
			err = ErrUnexpectedOperand
		}
		return
	}

	if len(args) != 1 {
		op = nil
		err = ErrOperandArity{Expected: 1, Got: len(args)}
		return
	}

	operand, err := ParseOperand(args[0])
	if err != nil {
		op = nil
		return
	}
	op.Operand = &operand

	return
}

// Parse parses an input stream into a Program.
//
// Lines may be of any length. Read failures are reported at the line being read.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	reader := bufio.NewReader(input)

	var line string
	var lineno int

	asm.Opcode = asm.Opcode[:0]

	for {
		text, read_err := reader.ReadString('\n')
		if read_err != nil && !errors.Is(read_err, io.EOF) {
			err = &ErrSyntax{LineNo: lineno + 1, Line: text, Err: read_err}
			return
		}
		if len(text) == 0 && read_err != nil {
			break
		}

		line = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		var op *Opcode
		op, err = EncodeLine(line)
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}
		if op != nil {
			op.LineNo = lineno
			op.Offset = asm.currentOffset()
			asm.Opcode = append(asm.Opcode, *op)
		}

		if read_err != nil {
			break
		}
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	if asm.Verbose {
		log.Printf("%v instructions, %v bytes\n", prog.Count(), prog.Len())
	}

	return
}
