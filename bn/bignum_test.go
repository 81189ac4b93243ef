// Copyright (c) 2013-2014 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bn

import (
	"math/big"
	"testing"
)

func TestBytesRoundTrip(t *testing.T) {
	values := []int64{
		0, 1, -1, 127, 128, -127, -128, 255, 256, -255, -256,
		0x7fff, 0x8000, -0x7fff, -0x8000, 0x7fffff, 0x800000,
		1 << 32, -(1 << 32),
	}

	for _, v := range values {
		n := New(v)
		enc := n.Bytes()
		got := FromBytes(enc)
		if got.Cmp(n) != 0 {
			t.Errorf("round trip of %d: got %d (encoded %x)", v, got.Int64(), enc)
		}
	}
}

func TestZeroEncodesToEmptySlice(t *testing.T) {
	if got := New(0).Bytes(); len(got) != 0 {
		t.Errorf("New(0).Bytes() = %x, want empty slice", got)
	}
	if got := FromBytes(nil); got.Sign() != 0 {
		t.Errorf("FromBytes(nil) = %d, want 0", got.Int64())
	}
}

func TestSignByteAppendedWhenMagnitudeTopBitSet(t *testing.T) {
	// 0x80 alone would be misread as negative zero; the encoder must
	// append an extra 0x00 sign byte to keep it positive.
	n := New(128)
	enc := n.Bytes()
	if len(enc) != 2 || enc[0] != 0x80 || enc[1] != 0x00 {
		t.Fatalf("Bytes() for 128 = %x, want [80 00]", enc)
	}

	neg := New(-128)
	enc = neg.Bytes()
	if len(enc) != 2 || enc[0] != 0x80 || enc[1] != 0x80 {
		t.Fatalf("Bytes() for -128 = %x, want [80 80]", enc)
	}
}

func TestArithmetic(t *testing.T) {
	a, b := New(17), New(5)

	if got := Add(a, b).Int64(); got != 22 {
		t.Errorf("Add(17,5) = %d, want 22", got)
	}
	if got := Sub(a, b).Int64(); got != 12 {
		t.Errorf("Sub(17,5) = %d, want 12", got)
	}
	if got := Mul(a, b).Int64(); got != 85 {
		t.Errorf("Mul(17,5) = %d, want 85", got)
	}

	q, err := Div(a, b)
	if err != nil || q.Int64() != 3 {
		t.Errorf("Div(17,5) = %d, %v, want 3, nil", q.Int64(), err)
	}
	r, err := Mod(a, b)
	if err != nil || r.Int64() != 2 {
		t.Errorf("Mod(17,5) = %d, %v, want 2, nil", r.Int64(), err)
	}

	if got := Negate(a).Int64(); got != -17 {
		t.Errorf("Negate(17) = %d, want -17", got)
	}
	if got := Abs(New(-9)).Int64(); got != 9 {
		t.Errorf("Abs(-9) = %d, want 9", got)
	}
}

func TestDivisionByZero(t *testing.T) {
	if _, err := Div(New(1), New(0)); err != ErrDivideByZero {
		t.Errorf("Div by zero: err = %v, want ErrDivideByZero", err)
	}
	if _, err := Mod(New(1), New(0)); err != ErrDivideByZero {
		t.Errorf("Mod by zero: err = %v, want ErrDivideByZero", err)
	}
}

func TestShifts(t *testing.T) {
	got, err := Lshift(New(1), New(4))
	if err != nil || got.Int64() != 16 {
		t.Errorf("Lshift(1,4) = %d, %v, want 16, nil", got.Int64(), err)
	}

	got, err = Rshift(New(32), New(2))
	if err != nil || got.Int64() != 8 {
		t.Errorf("Rshift(32,2) = %d, %v, want 8, nil", got.Int64(), err)
	}

	if _, err := Lshift(New(1), New(-1)); err != ErrNegativeShift {
		t.Errorf("Lshift by negative: err = %v, want ErrNegativeShift", err)
	}
	if _, err := Rshift(New(1), New(-1)); err != ErrNegativeShift {
		t.Errorf("Rshift by negative: err = %v, want ErrNegativeShift", err)
	}
}

func TestNumericComparisonIgnoresByteRepresentation(t *testing.T) {
	// 0x01 and 0x0001 both decode to the integer 1: encoding length must
	// not affect numeric comparison.
	a := FromBytes([]byte{0x01})
	b := FromBytes([]byte{0x01, 0x00})
	if a.Cmp(b) != 0 {
		t.Errorf("FromBytes(01).Cmp(FromBytes(0100)) = %d, want 0", a.Cmp(b))
	}
}

func TestNewFromBigAndBig(t *testing.T) {
	big17 := big.NewInt(17)
	n := NewFromBig(big17)
	if n.Int64() != 17 {
		t.Fatalf("NewFromBig(17).Int64() = %d, want 17", n.Int64())
	}

	// Mutating the caller's big.Int afterwards must not affect n: Big()
	// and NewFromBig must both copy rather than alias.
	big17.SetInt64(99)
	if n.Int64() != 17 {
		t.Fatalf("NewFromBig did not copy: n changed to %d", n.Int64())
	}

	out := n.Big()
	out.SetInt64(5)
	if n.Int64() != 17 {
		t.Fatalf("Big() did not copy: n changed to %d", n.Int64())
	}
}
