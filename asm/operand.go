// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"encoding/binary"
	"errors"
	"math/big"
	"strconv"

	"github.com/ezrec/stackasm/isa"
)

// Radix is the numeric base an operand was written in.
type Radix int

const (
	RADIX_HEX = Radix(16) // x
	RADIX_DEC = Radix(10) // d
	RADIX_BIN = Radix(2)  // b
)

// radixMap maps operand prefixes to their radix.
var radixMap = map[byte]Radix{
	'x': RADIX_HEX,
	'd': RADIX_DEC,
	'b': RADIX_BIN,
}

// Prefix returns the operand prefix character of the radix.
func (radix Radix) Prefix() string {
	switch radix {
	case RADIX_HEX:
		return "x"
	case RADIX_DEC:
		return "d"
	case RADIX_BIN:
		return "b"
	}
	return "?"
}

// Operand is a parsed operand literal.
type Operand struct {
	Value uint32 // Value, truncated to 32 bits.
	Radix Radix  // Radix of the source text.
}

// String returns the operand in assembly syntax.
func (op Operand) String() string {
	return op.Radix.Prefix() + strconv.FormatUint(uint64(op.Value), int(op.Radix))
}

// Bytes returns the big-endian encoding of the operand.
func (op Operand) Bytes() []byte {
	return binary.BigEndian.AppendUint32(make([]byte, 0, isa.OPERAND_SIZE), op.Value)
}

// mask32 keeps the low 32 bits of an oversized literal.
var mask32 = new(big.Int).SetUint64(0xffffffff)

// ParseOperand parses a radix-prefixed operand such as "x1A", "d26" or "b11010".
//
// Literals wider than 32 bits are truncated to their low 32 bits.
func ParseOperand(word string) (op Operand, err error) {
	if len(word) < 2 {
		err = ErrMalformedOperand(word)
		return
	}

	radix, ok := radixMap[word[0]]
	if !ok {
		err = ErrMalformedOperand(word)
		return
	}

	digits := word[1:]
	value, err := strconv.ParseUint(digits, int(radix), 64)
	if errors.Is(err, strconv.ErrRange) {
		// Wider than 64 bits. ParseUint stops at the overflow, so the
		// remaining digits are checked here.
		wide, ok := new(big.Int).SetString(digits, int(radix))
		if !ok {
			err = ErrMalformedOperand(word)
			return
		}
		value = wide.And(wide, mask32).Uint64()
		err = nil
	}
	if err != nil {
		err = ErrMalformedOperand(word)
		return
	}

	op = Operand{
		Value: uint32(value),
		Radix: radix,
	}

	return
}
