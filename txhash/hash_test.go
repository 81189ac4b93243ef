// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txhash

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustDecode(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex.DecodeString(%q): %v", s, err)
	}
	return b
}

func TestSha1KnownVector(t *testing.T) {
	got := Sha1([]byte("abc"))
	want := mustDecode(t, "a9993e364706816aba3e25717850c26c9cd0d89d")
	if !bytes.Equal(got, want) {
		t.Errorf("Sha1(\"abc\") = %x, want %x", got, want)
	}
}

func TestSha256KnownVector(t *testing.T) {
	got := Sha256([]byte("abc"))
	want := mustDecode(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
	if !bytes.Equal(got, want) {
		t.Errorf("Sha256(\"abc\") = %x, want %x", got, want)
	}
}

func TestDoubleSha256KnownVector(t *testing.T) {
	got := DoubleSha256([]byte("abc"))
	want := mustDecode(t, "4f8b42c22dd3729b519ba6f68d2da7cc5b2d606d05daed5ad5128cc03e6c6358")
	if !bytes.Equal(got, want) {
		t.Errorf("DoubleSha256(\"abc\") = %x, want %x", got, want)
	}
}

func TestRipemd160KnownVector(t *testing.T) {
	got := Ripemd160([]byte("abc"))
	want := mustDecode(t, "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc")
	if !bytes.Equal(got, want) {
		t.Errorf("Ripemd160(\"abc\") = %x, want %x", got, want)
	}
}

func TestHash160KnownVector(t *testing.T) {
	got := Hash160([]byte("abc"))
	want := mustDecode(t, "bb1be98c142444d7a56aa3981c3942a978e4dc33")
	if !bytes.Equal(got, want) {
		t.Errorf("Hash160(\"abc\") = %x, want %x", got, want)
	}
}

func TestSha1EmptyInput(t *testing.T) {
	got := Sha1(nil)
	want := mustDecode(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709")
	if !bytes.Equal(got, want) {
		t.Errorf("Sha1(nil) = %x, want %x", got, want)
	}
}

func TestHash160IsComposition(t *testing.T) {
	data := []byte("the quick brown fox")
	if !bytes.Equal(Hash160(data), Ripemd160(Sha256(data))) {
		t.Error("Hash160 is not RIPEMD160(SHA256(data))")
	}
}
