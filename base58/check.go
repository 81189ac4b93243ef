// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"errors"

	"github.com/andyzhshg/bitcoin/txhash"
)

// ErrChecksum indicates that the checksum of a check-encoded string did
// not verify.
var ErrChecksum = errors.New("base58: checksum mismatch")

// ErrInvalidFormat indicates a check-encoded string is too short to carry
// a version byte and a checksum.
var ErrInvalidFormat = errors.New("base58: version and/or checksum bytes missing")

// checksum returns the first four bytes of the double-SHA-256 of input.
func checksum(input []byte) (cksum [4]byte) {
	h := txhash.DoubleSha256(input)
	copy(cksum[:], h[:4])
	return
}

// CheckEncode prepends the single version byte to payload, appends a
// 4-byte double-SHA-256 checksum of the result, and base-58 encodes the
// whole thing.
func CheckEncode(payload []byte, version byte) string {
	b := make([]byte, 0, 1+len(payload)+4)
	b = append(b, version)
	b = append(b, payload...)
	cksum := checksum(b)
	b = append(b, cksum[:]...)
	return Encode(b)
}

// CheckDecode is the inverse of CheckEncode. It returns ErrInvalidFormat
// if the decoded payload is too short to contain a version byte and
// checksum, and ErrChecksum if the trailing checksum does not match.
func CheckDecode(input string) (payload []byte, version byte, err error) {
	decoded := Decode(input)
	if decoded == nil || len(decoded) < 5 {
		return nil, 0, ErrInvalidFormat
	}

	version = decoded[0]
	var cksum [4]byte
	copy(cksum[:], decoded[len(decoded)-4:])
	body := decoded[:len(decoded)-4]
	if checksum(body) != cksum {
		return nil, 0, ErrChecksum
	}

	payload = body[1:]
	return payload, version, nil
}
