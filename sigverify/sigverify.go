// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sigverify supplies the ECDSA collaborator the interpreter's
// OP_CHECKSIG/OP_CHECKMULTISIG delegate to, keeping key material and
// locking out of the core module behind a small Verify interface.
package sigverify

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// Verifier is the interface the script engine uses to check a signature
// against a public key and a signature hash. Implementations own whatever
// encoding strictness and library locking the underlying primitive
// requires; the engine only ever sees a boolean.
type Verifier interface {
	// Verify reports whether rawSig (the signature bytes with the
	// trailing hash-type byte already removed) is a valid secp256k1
	// ECDSA signature over hash by the key encoded in pubKey. Any
	// parsing failure of either rawSig or pubKey is treated as a failed
	// verification, never as an error.
	Verify(hash [32]byte, rawSig, pubKey []byte) bool
}

// ECDSAVerifier is the default Verifier, backed by btcec/v2's secp256k1
// implementation. It accepts DER-encoded signatures.
type ECDSAVerifier struct{}

// NewECDSAVerifier returns the stock secp256k1 ECDSA verifier.
func NewECDSAVerifier() ECDSAVerifier {
	return ECDSAVerifier{}
}

// Verify implements Verifier.
func (ECDSAVerifier) Verify(hash [32]byte, rawSig, pubKey []byte) bool {
	pub, err := btcec.ParsePubKey(pubKey)
	if err != nil {
		return false
	}

	sig, err := ecdsa.ParseDERSignature(rawSig)
	if err != nil {
		return false
	}

	return sig.Verify(hash[:], pub)
}
