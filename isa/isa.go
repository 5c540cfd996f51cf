// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// OPERAND_SIZE is the encoded size of an operand, in bytes.
const OPERAND_SIZE = 4

// Opcode is an instruction opcode byte.
type Opcode byte

const (
	OP_NOP   = Opcode(0x00) // nop
	OP_PUSH  = Opcode(0x10) // push
	OP_PUSH0 = Opcode(0x11) // push0
	OP_INC   = Opcode(0x20) // inc
	OP_BR    = Opcode(0x30) // br
	OP_HALT  = Opcode(0xff) // halt
)

// Instruction is the encoding rule for a mnemonic.
type Instruction struct {
	Mnemonic string // Assembly name.
	Opcode   Opcode // Encoded opcode byte.
	Operand  bool   // If set, a 32-bit operand follows the opcode.
}

// Size returns the encoded size of the instruction, in bytes.
func (inst Instruction) Size() int {
	if inst.Operand {
		return 1 + OPERAND_SIZE
	}
	return 1
}

// mnemonicMap maps assembly names to instructions.
var mnemonicMap = map[string]Instruction{
	"nop":   {Mnemonic: "nop", Opcode: OP_NOP},
	"halt":  {Mnemonic: "halt", Opcode: OP_HALT},
	"push":  {Mnemonic: "push", Opcode: OP_PUSH, Operand: true},
	"push0": {Mnemonic: "push0", Opcode: OP_PUSH0},
	"inc":   {Mnemonic: "inc", Opcode: OP_INC},
	"br":    {Mnemonic: "br", Opcode: OP_BR},
}

// opcodeMap is the reverse of mnemonicMap.
var opcodeMap = func() map[Opcode]Instruction {
	ops := make(map[Opcode]Instruction, len(mnemonicMap))
	for _, inst := range mnemonicMap {
		ops[inst.Opcode] = inst
	}
	return ops
}()

// Lookup returns the instruction for a mnemonic. Matching is exact and case sensitive.
func Lookup(mnemonic string) (inst Instruction, ok bool) {
	inst, ok = mnemonicMap[mnemonic]
	return
}

// Decode returns the instruction for an opcode byte.
func Decode(op Opcode) (inst Instruction, ok bool) {
	inst, ok = opcodeMap[op]
	return
}

// Instructions iterates over the instruction table in opcode order.
func Instructions() iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for _, op := range slices.Sorted(maps.Keys(opcodeMap)) {
			if !yield(opcodeMap[op]) {
				return
			}
		}
	}
}

// String returns the mnemonic of the opcode.
func (op Opcode) String() string {
	inst, ok := opcodeMap[op]
	if !ok {
		return fmt.Sprintf("0x%02x", byte(op))
	}
	return inst.Mnemonic
}
