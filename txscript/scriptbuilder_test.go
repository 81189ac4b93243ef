// Copyright (c) 2013-2014 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"testing"
)

func TestScriptBuilderAddOp(t *testing.T) {
	builder := NewScriptBuilder()
	builder.AddOp(OP_DUP).AddOp(OP_HASH160)

	got, err := builder.Script()
	if err != nil {
		t.Fatalf("Script: %v", err)
	}
	want := []byte{OP_DUP, OP_HASH160}
	if !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestScriptBuilderAddDataChoosesMinimalPush(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []byte
	}{
		{"empty collapses to OP_0", nil, []byte{OP_0}},
		{"small int collapses to OP_N", []byte{5}, []byte{OP_1 - 1 + 5}},
		{"-1 collapses to OP_1NEGATE", []byte{0x81}, []byte{OP_1NEGATE}},
		{"direct push", []byte{1, 2, 3}, []byte{3, 1, 2, 3}},
		{
			"PUSHDATA1 boundary",
			bytes.Repeat([]byte{0xAA}, 76),
			append([]byte{OP_PUSHDATA1, 76}, bytes.Repeat([]byte{0xAA}, 76)...),
		},
	}

	for _, tc := range tests {
		b := NewScriptBuilder()
		b.AddData(tc.data)
		got, err := b.Script()
		if err != nil {
			t.Fatalf("%s: Script: %v", tc.name, err)
		}
		if !bytes.Equal(got, tc.want) {
			t.Errorf("%s: got %x, want %x", tc.name, got, tc.want)
		}
	}
}

func TestScriptBuilderAddInt64(t *testing.T) {
	b := NewScriptBuilder()
	b.AddInt64(0).AddInt64(16).AddInt64(-1).AddInt64(17)
	got, err := b.Script()
	if err != nil {
		t.Fatalf("Script: %v", err)
	}
	want := []byte{OP_0, OP_16, OP_1NEGATE, 1, 17}
	if !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestScriptBuilderReset(t *testing.T) {
	b := NewScriptBuilder()
	b.AddOp(OP_DUP)
	b.Reset()
	b.AddOp(OP_DROP)

	got, _ := b.Script()
	if !bytes.Equal(got, []byte{OP_DROP}) {
		t.Errorf("Reset did not clear prior opcodes, got %x", got)
	}
}
