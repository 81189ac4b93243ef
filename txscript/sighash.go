// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"fmt"

	"github.com/andyzhshg/bitcoin/txhash"
	"github.com/andyzhshg/bitcoin/wire"
)

// SigHashType represents the hash type bits appended to the end of a
// signature.
type SigHashType byte

// Hash type bits from the end of a signature.
const (
	SigHashAll          SigHashType = 0x1
	SigHashNone         SigHashType = 0x2
	SigHashSingle       SigHashType = 0x3
	SigHashAnyOneCanPay SigHashType = 0x80

	// sigHashMask masks off the ANYONECANPAY bit, leaving the base mode.
	sigHashMask = 0x1f
)

// oneHash is the 32-byte sentinel digest CalcSignatureHash returns when
// SIGHASH_SINGLE is requested for an input index with no matching output.
var oneHash = [32]byte{0x01}

// CalcSignatureHash computes the digest that is signed (and later verified)
// for input nIn of txTo, given the subscript scriptCode it is spending and
// a hash type. It builds a masked copy of the transaction and returns
// SHA256(SHA256(serialize(masked) ‖ hashType)).
func CalcSignatureHash(scriptCode []byte, hashType SigHashType, txTo *wire.MsgTx, nIn int) ([32]byte, error) {
	if nIn < 0 || nIn >= len(txTo.TxIn) {
		return [32]byte{}, fmt.Errorf("txscript: CalcSignatureHash: nIn=%d out of range", nIn)
	}

	txTmp := txTo.Copy()

	// In case concatenating two scripts ends up with two code separators,
	// or an extra one at the end, this prevents all those possible
	// incompatibilities.
	cleanedScript, err := RemoveOpcode(scriptCode, OP_CODESEPARATOR)
	if err != nil {
		return [32]byte{}, err
	}

	// Blank out other inputs' signatures.
	for i := range txTmp.TxIn {
		txTmp.TxIn[i].SignatureScript = nil
	}
	txTmp.TxIn[nIn].SignatureScript = cleanedScript

	switch hashType & sigHashMask {
	case SigHashNone:
		// Wildcard payee: no outputs are signed, and every other input's
		// sequence is free to change.
		txTmp.TxOut = nil
		for i := range txTmp.TxIn {
			if i != nIn {
				txTmp.TxIn[i].Sequence = 0
			}
		}

	case SigHashSingle:
		// Only the output at the same index as this input is signed; the
		// out-of-range case returns the well-known sentinel digest.
		if nIn >= len(txTmp.TxOut) {
			return oneHash, nil
		}
		txTmp.TxOut = txTmp.TxOut[:nIn+1]
		for i := 0; i < nIn; i++ {
			txTmp.TxOut[i].SetNull()
		}
		for i := range txTmp.TxIn {
			if i != nIn {
				txTmp.TxIn[i].Sequence = 0
			}
		}

	default:
		// SigHashAll: outputs are kept as-is.
	}

	if hashType&SigHashAnyOneCanPay != 0 {
		// Blank out other inputs completely.
		txTmp.TxIn[0] = txTmp.TxIn[nIn]
		txTmp.TxIn = txTmp.TxIn[:1]
	}

	var buf bytes.Buffer
	buf.Grow(txTmp.SerializeSize() + 4)
	if err := txTmp.Serialize(&buf); err != nil {
		return [32]byte{}, err
	}
	buf.Write([]byte{byte(hashType), 0, 0, 0})

	return [32]byte(txhash.DoubleSha256(buf.Bytes())), nil
}
