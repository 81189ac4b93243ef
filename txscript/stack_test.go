// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"testing"

	"github.com/andyzhshg/bitcoin/bn"
)

func TestStackPushPopByteArray(t *testing.T) {
	var s stack
	s.PushByteArray([]byte{1, 2, 3})
	s.PushByteArray([]byte{4, 5})

	if s.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", s.Depth())
	}

	v, err := s.PopByteArray()
	if err != nil || !bytes.Equal(v, []byte{4, 5}) {
		t.Fatalf("PopByteArray() = %x, %v, want 0405, nil", v, err)
	}
	v, err = s.PopByteArray()
	if err != nil || !bytes.Equal(v, []byte{1, 2, 3}) {
		t.Fatalf("PopByteArray() = %x, %v, want 010203, nil", v, err)
	}

	if _, err := s.PopByteArray(); err != ErrStackUnderflow {
		t.Fatalf("PopByteArray on empty stack: err = %v, want ErrStackUnderflow", err)
	}
}

func TestStackPushPopInt(t *testing.T) {
	var s stack
	s.PushInt(bn.New(42))

	n, err := s.PopInt()
	if err != nil || n.Int64() != 42 {
		t.Fatalf("PopInt() = %d, %v, want 42, nil", n.Int64(), err)
	}
}

func TestAsBoolTreatsAnyNonzeroByteAsTrue(t *testing.T) {
	cases := []struct {
		v    []byte
		want bool
	}{
		{nil, false},
		{[]byte{0}, false},
		{[]byte{0, 0, 0}, false},
		{[]byte{0x80}, false}, // negative zero
		{[]byte{1}, true},
		{[]byte{0, 0, 1}, true},
	}
	for _, tc := range cases {
		if got := asBool(tc.v); got != tc.want {
			t.Errorf("asBool(%x) = %v, want %v", tc.v, got, tc.want)
		}
	}
}

func TestDupNAndDropN(t *testing.T) {
	var s stack
	s.PushByteArray([]byte{1})
	s.PushByteArray([]byte{2})

	if err := s.DupN(2); err != nil {
		t.Fatalf("DupN(2): %v", err)
	}
	if s.Depth() != 4 {
		t.Fatalf("Depth() after DupN(2) = %d, want 4", s.Depth())
	}

	if err := s.DropN(2); err != nil {
		t.Fatalf("DropN(2): %v", err)
	}
	if s.Depth() != 2 {
		t.Fatalf("Depth() after DropN(2) = %d, want 2", s.Depth())
	}
}

func TestSwapNRotN(t *testing.T) {
	var s stack
	s.PushByteArray([]byte{1})
	s.PushByteArray([]byte{2})

	if err := s.SwapN(1); err != nil {
		t.Fatalf("SwapN(1): %v", err)
	}
	top, _ := s.PeekByteArray(0)
	if !bytes.Equal(top, []byte{1}) {
		t.Fatalf("after SwapN(1) top = %x, want 01", top)
	}

	s.PushByteArray([]byte{3})
	if err := s.RotN(1); err != nil {
		t.Fatalf("RotN(1): %v", err)
	}
	bottom, _ := s.PeekByteArray(2)
	if !bytes.Equal(bottom, []byte{1}) {
		t.Fatalf("after RotN(1) bottom-of-3 = %x, want 01", bottom)
	}
}

func TestPickAndRoll(t *testing.T) {
	var s stack
	s.PushByteArray([]byte{1})
	s.PushByteArray([]byte{2})
	s.PushByteArray([]byte{3})

	if err := s.PickN(2); err != nil {
		t.Fatalf("PickN(2): %v", err)
	}
	top, _ := s.PeekByteArray(0)
	if !bytes.Equal(top, []byte{1}) {
		t.Fatalf("PickN(2) top = %x, want 01", top)
	}
	if s.Depth() != 4 {
		t.Fatalf("PickN leaves the original in place; depth = %d, want 4", s.Depth())
	}

	s2 := stack{}
	s2.PushByteArray([]byte{1})
	s2.PushByteArray([]byte{2})
	s2.PushByteArray([]byte{3})
	if err := s2.RollN(2); err != nil {
		t.Fatalf("RollN(2): %v", err)
	}
	if s2.Depth() != 3 {
		t.Fatalf("RollN moves rather than copies; depth = %d, want 3", s2.Depth())
	}
	top2, _ := s2.PeekByteArray(0)
	if !bytes.Equal(top2, []byte{1}) {
		t.Fatalf("RollN(2) top = %x, want 01", top2)
	}
}
