// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ezrec/stackasm/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrOpcodeMissing     = errors.New(f("No opcode given"))
	ErrUnexpectedOperand = errors.New(f("Operands given but not expected"))
)

// ErrUnknownInstruction is a mnemonic absent from the instruction table.
type ErrUnknownInstruction string

func (err ErrUnknownInstruction) Error() string {
	return f("Unknown instruction '%v'", string(err))
}

// ErrOperandArity is a mismatch in the count of operands.
type ErrOperandArity struct {
	Expected int
	Got      int
}

func (err ErrOperandArity) Error() string {
	return f("Expected %d operand, got %d", err.Expected, err.Got)
}

// ErrMalformedOperand is an operand with an unknown radix prefix or invalid digits.
type ErrMalformedOperand string

func (err ErrMalformedOperand) Error() string {
	return f("Malformed operand '%v'", string(err))
}

// ErrSyntax locates an assembly error in the source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	// Line numbers are never digit grouped.
	return f("Error (line %v): %v", strconv.Itoa(err.LineNo), err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrOpcodeInvalid is an unknown opcode byte found while disassembling.
type ErrOpcodeInvalid struct {
	Offset int
	Opcode byte
}

func (err ErrOpcodeInvalid) Error() string {
	return f("offset %v: bad opcode %v", fmt.Sprintf("0x%04x", err.Offset), fmt.Sprintf("0x%02x", err.Opcode))
}

// ErrOperandTruncated is an operand cut short by the end of the data.
type ErrOperandTruncated int

func (err ErrOperandTruncated) Error() string {
	return f("offset %v: operand truncated", fmt.Sprintf("0x%04x", int(err)))
}
