// Copyright (c) 2013-2014 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bn implements the arbitrary-precision signed integer used
// throughout the script interpreter and the base-58 codec, together with
// its canonical signed-magnitude byte encoding.
package bn

import (
	"errors"
	"math/big"
)

// ErrDivideByZero is returned by Div and Mod when the divisor is zero.
var ErrDivideByZero = errors.New("bn: division by zero")

// ErrNegativeShift is returned by Lshift and Rshift when the shift amount
// itself is negative.
var ErrNegativeShift = errors.New("bn: negative shift count")

// BN is an arbitrary-precision signed integer. The zero value is 0.
//
// Arithmetic is delegated to math/big; only the canonical byte
// encoding/decoding in this file is consensus-critical and must be
// reproduced verbatim.
type BN struct {
	v big.Int
}

// New returns a BN with the value n.
func New(n int64) *BN {
	b := &BN{}
	b.v.SetInt64(n)
	return b
}

// NewFromBig returns a BN wrapping a copy of n.
func NewFromBig(n *big.Int) *BN {
	b := &BN{}
	b.v.Set(n)
	return b
}

// Big returns a copy of the underlying big.Int.
func (b *BN) Big() *big.Int {
	var out big.Int
	out.Set(&b.v)
	return &out
}

// Sign returns -1, 0 or 1 depending on the sign of b.
func (b *BN) Sign() int {
	return b.v.Sign()
}

// Int64 returns b truncated to an int64, per math/big.Int.Int64's rules.
func (b *BN) Int64() int64 {
	return b.v.Int64()
}

// Cmp compares b and other, returning -1, 0 or 1.
func (b *BN) Cmp(other *BN) int {
	return b.v.Cmp(&other.v)
}

// Add returns a + b.
func Add(a, b *BN) *BN {
	r := &BN{}
	r.v.Add(&a.v, &b.v)
	return r
}

// Sub returns a - b.
func Sub(a, b *BN) *BN {
	r := &BN{}
	r.v.Sub(&a.v, &b.v)
	return r
}

// Mul returns a * b.
func Mul(a, b *BN) *BN {
	r := &BN{}
	r.v.Mul(&a.v, &b.v)
	return r
}

// Div returns the truncated (toward zero) quotient a / b.
func Div(a, b *BN) (*BN, error) {
	if b.v.Sign() == 0 {
		return nil, ErrDivideByZero
	}
	r := &BN{}
	r.v.Quo(&a.v, &b.v)
	return r, nil
}

// Mod returns the truncated (toward zero) remainder a % b.
func Mod(a, b *BN) (*BN, error) {
	if b.v.Sign() == 0 {
		return nil, ErrDivideByZero
	}
	r := &BN{}
	r.v.Rem(&a.v, &b.v)
	return r, nil
}

// Negate returns -b.
func Negate(b *BN) *BN {
	r := &BN{}
	r.v.Neg(&b.v)
	return r
}

// Abs returns |b|.
func Abs(b *BN) *BN {
	r := &BN{}
	r.v.Abs(&b.v)
	return r
}

// Lshift returns b shifted left by n bits. n must be a nonnegative
// integer or ErrNegativeShift is returned.
func Lshift(b, n *BN) (*BN, error) {
	if n.v.Sign() < 0 {
		return nil, ErrNegativeShift
	}
	r := &BN{}
	r.v.Lsh(&b.v, uint(n.v.Uint64()))
	return r, nil
}

// Rshift returns b shifted right by n bits (arithmetic shift,
// sign-extended), matching CBigNum's operator>>.
func Rshift(b, n *BN) (*BN, error) {
	if n.v.Sign() < 0 {
		return nil, ErrNegativeShift
	}
	r := &BN{}
	r.v.Rsh(&b.v, uint(n.v.Uint64()))
	return r, nil
}

// Bytes returns the canonical signed-magnitude little-endian encoding of b:
// magnitude bytes little-endian, with a sign bit packed into the top bit of
// the most significant byte. If the magnitude's natural top byte already
// has its high bit set, an extra 0x00 (positive) or 0x80-only (negative)
// byte is appended first. Zero encodes as the empty slice.
func (b *BN) Bytes() []byte {
	if b.v.Sign() == 0 {
		return nil
	}

	abs := new(big.Int).Abs(&b.v)
	out := abs.Bytes() // big-endian magnitude, no leading zero byte
	reverse(out)        // little-endian

	// If the magnitude's top byte already has its high bit set, append a
	// 0x00 byte to carry the sign.
	if len(out) > 0 && out[len(out)-1]&0x80 != 0 {
		out = append(out, 0x00)
	}
	if b.v.Sign() < 0 {
		out[len(out)-1] |= 0x80
	}
	return out
}

// SetBytes decodes the canonical signed-magnitude little-endian encoding
// produced by Bytes and sets b to the resulting value. The empty slice
// decodes to zero.
func (b *BN) SetBytes(data []byte) *BN {
	if len(data) == 0 {
		b.v.SetInt64(0)
		return b
	}

	buf := make([]byte, len(data))
	copy(buf, data)

	negative := buf[len(buf)-1]&0x80 != 0
	buf[len(buf)-1] &^= 0x80

	reverse(buf) // big-endian magnitude
	b.v.SetBytes(buf)
	if negative {
		b.v.Neg(&b.v)
	}
	return b
}

// FromBytes decodes data per SetBytes and returns a new BN.
func FromBytes(data []byte) *BN {
	return new(BN).SetBytes(data)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
