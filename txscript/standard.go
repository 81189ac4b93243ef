// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// Template is a recognized standard scriptPubKey shape together with its
// bound variable slot. Exactly one of PubKey / PubKeyHash is meaningful,
// selected by Kind.
type Template struct {
	Kind       TemplateKind
	PubKey     []byte // set when Kind == PayToPubKey
	PubKeyHash []byte // set when Kind == PayToPubKeyHash
}

// TemplateKind enumerates the standard scriptPubKey shapes Classify
// recognizes.
type TemplateKind int

const (
	// NonStandard means classify found no recognized shape.
	NonStandard TemplateKind = iota

	// PayToPubKey is "<pubkey> OP_CHECKSIG".
	PayToPubKey

	// PayToPubKeyHash is
	// "OP_DUP OP_HASH160 <pubkeyHash> OP_EQUALVERIFY OP_CHECKSIG".
	PayToPubKeyHash
)

// minPubKeyDataLen is the shortest payload Classify accepts as a pay-to-
// pubkey slot, distinguishing a raw public key from a 20-byte hash.
const minPubKeyDataLen = 33

// Classify pattern-recognizes script as one of the standard forms and
// returns its kind plus bound variable slot. A script matching neither
// shape classifies as NonStandard.
func Classify(script []byte) (Template, error) {
	ops, err := GetOp(script)
	if err != nil {
		return Template{}, err
	}

	if isPayToPubKey(ops) {
		return Template{Kind: PayToPubKey, PubKey: ops[0].data}, nil
	}
	if isPayToPubKeyHash(ops) {
		return Template{Kind: PayToPubKeyHash, PubKeyHash: ops[2].data}, nil
	}
	return Template{Kind: NonStandard}, nil
}

// isPayToPubKey reports whether ops is "<pubkey> OP_CHECKSIG" with a
// payload long enough to be a public key rather than a hash.
func isPayToPubKey(ops []parsedOpcode) bool {
	return len(ops) == 2 &&
		ops[0].opcode >= 1 && ops[0].opcode <= 75 &&
		len(ops[0].data) >= minPubKeyDataLen &&
		ops[1].opcode == OP_CHECKSIG
}

// isPayToPubKeyHash reports whether ops is
// "OP_DUP OP_HASH160 <20-byte hash> OP_EQUALVERIFY OP_CHECKSIG".
func isPayToPubKeyHash(ops []parsedOpcode) bool {
	return len(ops) == 5 &&
		ops[0].opcode == OP_DUP &&
		ops[1].opcode == OP_HASH160 &&
		ops[2].opcode >= 1 && ops[2].opcode <= 75 &&
		len(ops[2].data) == 20 &&
		ops[3].opcode == OP_EQUALVERIFY &&
		ops[4].opcode == OP_CHECKSIG
}

// PayToPubKeyHashScript builds the standard "OP_DUP OP_HASH160
// <pubKeyHash> OP_EQUALVERIFY OP_CHECKSIG" scriptPubKey for a 20-byte
// HASH160 digest, the counterpart signing helpers build against.
func PayToPubKeyHashScript(pubKeyHash []byte) ([]byte, error) {
	if len(pubKeyHash) != 20 {
		return nil, ErrStackInvalidArgs
	}
	b := NewScriptBuilder()
	b.AddOp(OP_DUP)
	b.AddOp(OP_HASH160)
	b.AddData(pubKeyHash)
	b.AddOp(OP_EQUALVERIFY)
	b.AddOp(OP_CHECKSIG)
	return b.Script()
}

// PayToPubKeyScript builds the standard "<pubKey> OP_CHECKSIG"
// scriptPubKey.
func PayToPubKeyScript(serializedPubKey []byte) ([]byte, error) {
	b := NewScriptBuilder()
	b.AddData(serializedPubKey)
	b.AddOp(OP_CHECKSIG)
	return b.Script()
}

// CountSigOps returns the number of signature operations in script: an
// OP_CHECKSIG or OP_CHECKSIGVERIFY counts as 1, an OP_CHECKMULTISIG or
// OP_CHECKMULTISIGVERIFY counts as MaxPubKeysPerMultiSig (the worst case,
// since the true count depends on the immediately preceding small-integer
// push, which this quick count does not try to read). If script fails to
// parse, the count accumulated up to the failure point is returned.
func CountSigOps(script []byte) int {
	ops, _ := GetOp(script)

	n := 0
	for _, op := range ops {
		switch op.opcode {
		case OP_CHECKSIG, OP_CHECKSIGVERIFY:
			n++
		case OP_CHECKMULTISIG, OP_CHECKMULTISIGVERIFY:
			n += MaxPubKeysPerMultiSig
		}
	}
	return n
}
