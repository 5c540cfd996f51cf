// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package isa defines the instruction table of the stack machine.
//
// Every instruction is a single opcode byte. Instructions that take an
// operand are followed by a 32-bit big-endian value. The table is fixed at
// compile time; adding an instruction is a change to this package.
package isa
