// Copyright (c) 2013-2014 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package base58 implements the base-58 big-integer codec and its
// checksum-wrapped variant used by addresses.
package base58

import (
	"math/big"

	"github.com/andyzhshg/bitcoin/bn"
)

// alphabet is the 58 ASCII characters used by the encoding: digits and
// letters with 0, O, I and l removed to avoid visual ambiguity.
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var decodeMap [256]int8

func init() {
	for i := range decodeMap {
		decodeMap[i] = -1
	}
	for i, c := range alphabet {
		decodeMap[c] = int8(i)
	}
}

var bn58 = bn.New(58)

// Encode returns the base-58 encoding of b. b is treated as a big-endian
// big integer; each leading zero byte of b becomes one leading alphabet-
// zero character ('1') in the output, and the remaining magnitude is
// encoded by repeated division by 58.
func Encode(b []byte) string {
	// b.Bytes()/SetBytes's signed-magnitude codec reads the top bit of the
	// top byte as a sign, so it cannot be used here: a payload whose first
	// byte is >= 0x80 would decode as negative. Go through big.Int's own
	// unsigned big-endian SetBytes instead.
	n := bn.NewFromBig(new(big.Int).SetBytes(b))

	var out []byte
	zero := bn.New(0)
	for n.Cmp(zero) > 0 {
		q, r := divmod58(n)
		n = q
		out = append(out, alphabet[r])
	}

	for _, v := range b {
		if v != 0 {
			break
		}
		out = append(out, alphabet[0])
	}

	reverseBytes(out)
	return string(out)
}

// Decode is the inverse of Encode. It tolerates leading/trailing ASCII
// whitespace in s and returns nil if s contains a character outside the
// alphabet.
func Decode(s string) []byte {
	s = trimSpace(s)

	n := bn.New(0)
	for i := 0; i < len(s); i++ {
		c := s[i]
		d := decodeMap[c]
		if d < 0 {
			return nil
		}
		n = bn.Add(bn.Mul(n, bn58), bn.New(int64(d)))
	}

	magnitude := n.Bytes() // little-endian, may carry a spurious sign byte
	if len(magnitude) >= 1 && magnitude[len(magnitude)-1] == 0 {
		magnitude = magnitude[:len(magnitude)-1]
	}

	leadingZeros := 0
	for leadingZeros < len(s) && s[leadingZeros] == alphabet[0] {
		leadingZeros++
	}

	out := make([]byte, leadingZeros+len(magnitude))
	for i, v := range magnitude {
		out[leadingZeros+len(magnitude)-1-i] = v
	}
	return out
}

// divmod58 returns n/58 and n%58 for a nonnegative n.
func divmod58(n *bn.BN) (*bn.BN, byte) {
	q, _ := bn.Div(n, bn58)
	r, _ := bn.Mod(n, bn58)
	return q, byte(r.Int64())
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

func trimSpace(s string) string {
	start := 0
	for start < len(s) && isSpace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
