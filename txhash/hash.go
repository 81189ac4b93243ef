// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txhash isolates the cryptographic hash primitives the rest of
// this module treats as an external, black-box collaborator: SHA-1,
// SHA-256 and RIPEMD-160, plus the two composite digests the script
// language and the address codec build on top of them.
package txhash

import (
	"crypto/sha1"
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// Sha1 returns the SHA-1 digest of data.
func Sha1(data []byte) []byte {
	h := sha1.Sum(data)
	return h[:]
}

// Sha256 returns the SHA-256 digest of data.
func Sha256(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

// DoubleSha256 returns SHA256(SHA256(data)), known as HASH256.
func DoubleSha256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Ripemd160 returns the RIPEMD-160 digest of data.
func Ripemd160(data []byte) []byte {
	h := ripemd160.New()
	h.Write(data)
	return h.Sum(nil)
}

// Hash160 returns RIPEMD160(SHA256(data)), known as HASH160.
func Hash160(data []byte) []byte {
	return Ripemd160(Sha256(data))
}
