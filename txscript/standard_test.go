// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"testing"
)

func TestClassifyPayToPubKeyHash(t *testing.T) {
	pubKeyHash := bytes.Repeat([]byte{0xAB}, 20)
	script, err := PayToPubKeyHashScript(pubKeyHash)
	if err != nil {
		t.Fatalf("PayToPubKeyHashScript: %v", err)
	}

	tpl, err := Classify(script)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if tpl.Kind != PayToPubKeyHash {
		t.Fatalf("Kind = %v, want PayToPubKeyHash", tpl.Kind)
	}
	if !bytes.Equal(tpl.PubKeyHash, pubKeyHash) {
		t.Errorf("PubKeyHash = %x, want %x", tpl.PubKeyHash, pubKeyHash)
	}
}

func TestClassifyPayToPubKey(t *testing.T) {
	pubKey := bytes.Repeat([]byte{0xCD}, 33)
	script, err := PayToPubKeyScript(pubKey)
	if err != nil {
		t.Fatalf("PayToPubKeyScript: %v", err)
	}

	tpl, err := Classify(script)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if tpl.Kind != PayToPubKey {
		t.Fatalf("Kind = %v, want PayToPubKey", tpl.Kind)
	}
	if !bytes.Equal(tpl.PubKey, pubKey) {
		t.Errorf("PubKey = %x, want %x", tpl.PubKey, pubKey)
	}
}

func TestClassifyNonStandard(t *testing.T) {
	script := []byte{OP_DUP, OP_DROP}
	tpl, err := Classify(script)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if tpl.Kind != NonStandard {
		t.Fatalf("Kind = %v, want NonStandard", tpl.Kind)
	}
}

func TestClassifyRejectsShortPushAsPubKey(t *testing.T) {
	// A 20-byte push followed by OP_CHECKSIG looks like neither standard
	// template: too short to be a pubkey, and missing the DUP/HASH160
	// prefix to be a pubkey-hash script.
	b := NewScriptBuilder()
	b.AddData(bytes.Repeat([]byte{0x01}, 20)).AddOp(OP_CHECKSIG)
	script, _ := b.Script()

	tpl, err := Classify(script)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if tpl.Kind != NonStandard {
		t.Fatalf("Kind = %v, want NonStandard", tpl.Kind)
	}
}

func TestPayToPubKeyHashScriptRejectsWrongLength(t *testing.T) {
	if _, err := PayToPubKeyHashScript([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected error for non-20-byte hash")
	}
}

func TestCountSigOps(t *testing.T) {
	b := NewScriptBuilder()
	b.AddOp(OP_CHECKSIG).AddOp(OP_CHECKSIGVERIFY).AddOp(OP_DUP)
	script, _ := b.Script()

	if got, want := CountSigOps(script), 2; got != want {
		t.Errorf("CountSigOps = %d, want %d", got, want)
	}
}

func TestCountSigOpsCountsMultiSigAtWorstCase(t *testing.T) {
	script := []byte{OP_CHECKMULTISIG}
	if got, want := CountSigOps(script), MaxPubKeysPerMultiSig; got != want {
		t.Errorf("CountSigOps = %d, want %d", got, want)
	}
}

func TestCountSigOpsOnUnparseableScriptReturnsPartialCount(t *testing.T) {
	// One valid OP_CHECKSIG, followed by a push that claims more bytes
	// than are present.
	script := []byte{OP_CHECKSIG, 0x05, 0x01}
	if got, want := CountSigOps(script), 1; got != want {
		t.Errorf("CountSigOps = %d, want %d", got, want)
	}
}
