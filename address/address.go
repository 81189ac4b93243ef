// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address implements the pay-to-pubkey-hash payment address
// encoding built on top of base58's checksum wrapping and txhash's
// HASH160: a payment address is version(1) ‖ hash160(20).
package address

import (
	"errors"
	"fmt"

	"github.com/andyzhshg/bitcoin/base58"
	"github.com/andyzhshg/bitcoin/txhash"
)

// ErrWrongHashLength indicates the decoded payload was not a 20-byte
// HASH160 value.
var ErrWrongHashLength = errors.New("address: decoded hash is not 20 bytes")

// Hash160Size is the size, in bytes, of a HASH160 digest.
const Hash160Size = 20

// Address is a pay-to-pubkey-hash payment destination: a single version
// byte identifying the network plus a 20-byte HASH160 of a public key.
type Address struct {
	version byte
	hash    [Hash160Size]byte
}

// NewFromHash160 builds an Address from a version byte and a pre-computed
// 20-byte HASH160 digest.
func NewFromHash160(version byte, hash160 []byte) (*Address, error) {
	if len(hash160) != Hash160Size {
		return nil, ErrWrongHashLength
	}
	a := &Address{version: version}
	copy(a.hash[:], hash160)
	return a, nil
}

// NewFromPubKey derives an Address by hashing a serialized public key with
// HASH160.
func NewFromPubKey(version byte, serializedPubKey []byte) *Address {
	a := &Address{version: version}
	copy(a.hash[:], txhash.Hash160(serializedPubKey))
	return a
}

// Hash160 returns the 20-byte HASH160 digest backing this address.
func (a *Address) Hash160() [Hash160Size]byte {
	return a.hash
}

// Version returns the address's network version byte.
func (a *Address) Version() byte {
	return a.version
}

// ScriptAddress returns the raw bytes normally inserted into a
// pay-to-pubkey-hash script, i.e. the bare HASH160 digest.
func (a *Address) ScriptAddress() []byte {
	out := make([]byte, Hash160Size)
	copy(out, a.hash[:])
	return out
}

// EncodeAddress returns the base-58Check string encoding of a.
func (a *Address) EncodeAddress() string {
	return base58.CheckEncode(a.hash[:], a.version)
}

// String satisfies fmt.Stringer and is identical to EncodeAddress.
func (a *Address) String() string {
	return a.EncodeAddress()
}

// Decode parses a base-58Check-encoded pay-to-pubkey-hash address.
func Decode(addr string) (*Address, error) {
	payload, version, err := base58.CheckDecode(addr)
	if err != nil {
		return nil, fmt.Errorf("address: %w", err)
	}
	return NewFromHash160(version, payload)
}
