// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package asm implements the assembler for the stack machine.
//
// Source is line oriented. Each line holds one instruction mnemonic and at
// most one operand, and may end in a ';' comment. Operands carry an explicit
// radix prefix: 'x' for hexadecimal, 'd' for decimal and 'b' for binary.
// Every line encodes independently to an opcode byte optionally followed by
// a 32-bit big-endian operand; there are no labels and no relocation.
//
// The first error aborts assembly, and is reported with its line number.
package asm
