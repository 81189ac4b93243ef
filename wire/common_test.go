// Copyright (c) 2013 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"
	"testing"
)

func TestWriteCompactSizeBoundaries(t *testing.T) {
	tests := []struct {
		n    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{252, []byte{0xfc}},
		{253, []byte{0xfd, 0xfd, 0x00}},
		{0xffff, []byte{0xfd, 0xff, 0xff}},
		{0x10000, []byte{0xfe, 0x00, 0x00, 0x01, 0x00}},
		{0xffffffff, []byte{0xfe, 0xff, 0xff, 0xff, 0xff}},
		{0x100000000, []byte{0xff, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00}},
	}

	for _, test := range tests {
		var buf bytes.Buffer
		if err := WriteCompactSize(&buf, test.n); err != nil {
			t.Fatalf("WriteCompactSize(%d): unexpected error: %v", test.n, err)
		}
		if !bytes.Equal(buf.Bytes(), test.want) {
			t.Errorf("WriteCompactSize(%d) = %x, want %x", test.n, buf.Bytes(), test.want)
		}
		if got := CompactSizeLen(test.n); got != len(test.want) {
			t.Errorf("CompactSizeLen(%d) = %d, want %d", test.n, got, len(test.want))
		}
	}
}

func TestCompactSizeRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 252, 253, 254, 255, 65535, 65536,
		0xffffffff, 0x100000000, 0xffffffffffffffff}

	for _, v := range values {
		var buf bytes.Buffer
		if err := WriteCompactSize(&buf, v); err != nil {
			t.Fatalf("WriteCompactSize(%d): %v", v, err)
		}
		got, err := ReadCompactSize(&buf)
		if err != nil {
			t.Fatalf("ReadCompactSize after writing %d: %v", v, err)
		}
		if got != v {
			t.Errorf("round trip mismatch: wrote %d, read %d", v, got)
		}
	}
}

func TestReadCompactSizeAcceptsNonMinimalForms(t *testing.T) {
	// A reader must accept any of the four forms even when a shorter
	// one would have sufficed; only the writer is required to choose
	// minimally.
	buf := bytes.NewReader([]byte{0xfd, 0x05, 0x00})
	got, err := ReadCompactSize(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 5 {
		t.Errorf("got %d, want 5", got)
	}
}

func TestReadBoundedBytesRejectsOversized(t *testing.T) {
	var buf bytes.Buffer
	_ = WriteCompactSize(&buf, 100)
	buf.Write(make([]byte, 100))

	if _, err := ReadVarBytes(bytes.NewReader(buf.Bytes()), 10, "test"); err == nil {
		t.Fatal("expected error for declared size exceeding maxAllowed")
	}
}

func TestVarBytesRoundTrip(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")

	var buf bytes.Buffer
	if err := WriteVarBytes(&buf, data); err != nil {
		t.Fatalf("WriteVarBytes: %v", err)
	}

	got, err := ReadVarBytes(&buf, uint64(len(data)), "test")
	if err != nil {
		t.Fatalf("ReadVarBytes: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("got %q, want %q", got, data)
	}
}

func TestFixedStringRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFixedString(&buf, "hi", 8); err != nil {
		t.Fatalf("WriteFixedString: %v", err)
	}
	if buf.Len() != 8 {
		t.Fatalf("expected 8 bytes written, got %d", buf.Len())
	}
	got, err := ReadFixedString(&buf, 8)
	if err != nil {
		t.Fatalf("ReadFixedString: %v", err)
	}
	if got != "hi" {
		t.Errorf("got %q, want %q", got, "hi")
	}
}

func TestSequenceRoundTrip(t *testing.T) {
	items := []uint32{1, 2, 3, 4, 5}

	var buf bytes.Buffer
	err := WriteSequence(&buf, items, func(w io.Writer, v uint32) error {
		return WriteUint32(w, v)
	})
	if err != nil {
		t.Fatalf("WriteSequence: %v", err)
	}

	got, err := ReadSequence(&buf, 100, func(r io.Reader) (uint32, error) {
		return ReadUint32(r)
	})
	if err != nil {
		t.Fatalf("ReadSequence: %v", err)
	}
	if len(got) != len(items) {
		t.Fatalf("got %d items, want %d", len(got), len(items))
	}
	for i := range items {
		if got[i] != items[i] {
			t.Errorf("item %d: got %d, want %d", i, got[i], items[i])
		}
	}
}
