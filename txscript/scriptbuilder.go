// Copyright (c) 2013-2014 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/binary"

	"github.com/andyzhshg/bitcoin/bn"
)

// defaultScriptAlloc is the default size used for the backing array for a
// script being built by ScriptBuilder. It grows as needed but covers most
// scripts, such as the standard templates in standard.go, without a
// reallocation.
const defaultScriptAlloc = 500

// ScriptBuilder builds scripts by appending opcodes, ints, and data while
// choosing canonical push encodings for each. It does not check that the
// resulting script is well-formed for any particular template.
type ScriptBuilder struct {
	script []byte
}

// NewScriptBuilder returns a new, empty ScriptBuilder.
func NewScriptBuilder() *ScriptBuilder {
	return &ScriptBuilder{script: make([]byte, 0, defaultScriptAlloc)}
}

// AddOp appends a single opcode to the script.
func (b *ScriptBuilder) AddOp(opcode byte) *ScriptBuilder {
	b.script = append(b.script, opcode)
	return b
}

// AddData appends data to the script, choosing the shortest canonical push
// opcode for its length. A zero-length or
// single small-integer payload collapses to OP_0/OP_1..OP_16 instead of a
// literal push, matching the minimal-push convention scripts are expected
// to follow.
func (b *ScriptBuilder) AddData(data []byte) *ScriptBuilder {
	dataLen := len(data)

	if dataLen == 0 || (dataLen == 1 && data[0] == 0) {
		b.script = append(b.script, OP_0)
		return b
	}
	if dataLen == 1 && data[0] == 0x81 {
		b.script = append(b.script, OP_1NEGATE)
		return b
	}
	if dataLen == 1 && data[0] >= 1 && data[0] <= 16 {
		b.script = append(b.script, byte((OP_1-1)+data[0]))
		return b
	}

	switch {
	case dataLen < OP_PUSHDATA1:
		b.script = append(b.script, byte(dataLen))
	case dataLen <= 0xff:
		b.script = append(b.script, OP_PUSHDATA1, byte(dataLen))
	case dataLen <= 0xffff:
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(dataLen))
		b.script = append(b.script, OP_PUSHDATA2)
		b.script = append(b.script, buf...)
	default:
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(dataLen))
		b.script = append(b.script, OP_PUSHDATA4)
		b.script = append(b.script, buf...)
	}

	b.script = append(b.script, data...)
	return b
}

// AddInt64 appends val to the script, using OP_1NEGATE/OP_1..OP_16 for the
// values those opcodes already cover and a canonical bignum push
// otherwise.
func (b *ScriptBuilder) AddInt64(val int64) *ScriptBuilder {
	if val == 0 {
		b.script = append(b.script, OP_0)
		return b
	}
	if val == -1 || (val >= 1 && val <= 16) {
		b.script = append(b.script, byte((OP_1-1)+val))
		return b
	}
	return b.AddData(bn.New(val).Bytes())
}

// Reset clears the builder so it can be reused.
func (b *ScriptBuilder) Reset() *ScriptBuilder {
	b.script = b.script[:0]
	return b
}

// Script returns the script built so far.
func (b *ScriptBuilder) Script() ([]byte, error) {
	return b.script, nil
}
