// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"encoding/binary"

	"github.com/ezrec/stackasm/isa"
)

// Disassemble decodes an encoded instruction stream back into a Program.
//
// Operands are rendered in hexadecimal.
func Disassemble(data []byte) (prog *Program, err error) {
	var opcodes []Opcode

	for offset := 0; offset < len(data); {
		inst, ok := isa.Decode(isa.Opcode(data[offset]))
		if !ok {
			err = ErrOpcodeInvalid{Offset: offset, Opcode: data[offset]}
			return
		}

		op := Opcode{
			Offset:      offset,
			Words:       []string{inst.Mnemonic},
			Instruction: inst,
		}

		if inst.Operand {
			if offset+inst.Size() > len(data) {
				err = ErrOperandTruncated(offset)
				return
			}
			operand := Operand{
				Value: binary.BigEndian.Uint32(data[offset+1:]),
				Radix: RADIX_HEX,
			}
			op.Operand = &operand
			op.Words = append(op.Words, operand.String())
		}

		opcodes = append(opcodes, op)
		offset += inst.Size()
	}

	prog = &Program{
		Opcodes: opcodes,
	}

	return
}
