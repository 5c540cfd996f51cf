// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/stackasm/internal"
	"github.com/ezrec/stackasm/isa"
)

// Opcode is a line of assembled code with its source location and encoding.
type Opcode struct {
	LineNo      int             // Source line number, 1-based. Zero if disassembled.
	Offset      int             // Byte offset of the opcode in the program.
	Words       []string        // Source words.
	Instruction isa.Instruction // Encoding rule.
	Operand     *Operand        // Operand, if the instruction takes one.
}

// Size returns the encoded size, in bytes.
func (op *Opcode) Size() int {
	return op.Instruction.Size()
}

// Bytes returns the encoding: the opcode byte, then the big-endian operand.
func (op *Opcode) Bytes() (data []byte) {
	data = append(make([]byte, 0, op.Size()), byte(op.Instruction.Opcode))
	if op.Operand != nil {
		data = append(data, op.Operand.Bytes()...)
	}
	return
}

// String returns the source words of the opcode.
func (op *Opcode) String() string {
	return strings.Join(op.Words, " ")
}

// Program is an assembled instruction stream.
type Program struct {
	Opcodes []Opcode
}

// Debug locates the opcode that encodes a byte offset.
type Debug struct {
	*Opcode
	Index int // Index of the byte within the opcode encoding.
}

// Debug returns the opcode owning a byte offset. The Opcode is nil if out of range.
func (prog *Program) Debug(offset int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if offset >= op.Offset && offset < op.Offset+op.Size() {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  offset - op.Offset,
			}
			break
		}
	}

	return
}

// Count returns the number of instructions.
func (prog *Program) Count() int {
	return len(prog.Opcodes)
}

// Len returns the encoded size of the program, in bytes.
func (prog *Program) Len() (size int) {
	for n := range prog.Opcodes {
		size += prog.Opcodes[n].Size()
	}
	return
}

// Bytes iterates over the byte offset and value of the encoded program.
func (prog *Program) Bytes() iter.Seq2[int, byte] {
	seqs := make([]iter.Seq[byte], len(prog.Opcodes))
	for n := range prog.Opcodes {
		seqs[n] = slices.Values(prog.Opcodes[n].Bytes())
	}

	return internal.IterSeqEnumerate(internal.IterSeqConcat(seqs...))
}

// Binary returns the encoded program.
func (prog *Program) Binary() (bins []byte) {
	bins = make([]byte, 0, prog.Len())
	for n := range prog.Opcodes {
		bins = append(bins, prog.Opcodes[n].Bytes()...)
	}

	return
}

// Listing writes a human readable listing of the program.
func (prog *Program) Listing(w io.Writer) (err error) {
	for n := range prog.Opcodes {
		op := &prog.Opcodes[n]
		var hex []string
		for _, data := range op.Bytes() {
			hex = append(hex, fmt.Sprintf("%02x", data))
		}
		_, err = fmt.Fprintf(w, "%04x: %-14s %v\n", op.Offset, strings.Join(hex, " "), op)
		if err != nil {
			return
		}
	}

	return
}
