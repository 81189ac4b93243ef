// Copyright (c) 2013 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"io"
)

// WriteVarBytes writes a compact-size length prefix followed by data: the
// general "sequence of bytes" primitive.
func WriteVarBytes(w io.Writer, data []byte) error {
	if err := WriteCompactSize(w, uint64(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// ReadVarBytes reads a compact-size length prefix followed by that many
// bytes, bounded by maxAllowed.
func ReadVarBytes(r io.Reader, maxAllowed uint64, fieldName string) ([]byte, error) {
	count, err := ReadCompactSize(r)
	if err != nil {
		return nil, err
	}
	return readBoundedBytes(r, count, maxAllowed, fieldName)
}

// WriteVarString writes str as a compact-size length followed by its bytes.
func WriteVarString(w io.Writer, s string) error {
	return WriteVarBytes(w, []byte(s))
}

// ReadVarString is the inverse of WriteVarString.
func ReadVarString(r io.Reader, maxAllowed uint64) (string, error) {
	b, err := ReadVarBytes(r, maxAllowed, "varstring")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteBool writes b as a single byte: 1 for true, 0 for false.
func WriteBool(w io.Writer, b bool) error {
	var v byte
	if b {
		v = 1
	}
	_, err := w.Write([]byte{v})
	return err
}

// ReadBool reads a single byte written by WriteBool.
func ReadBool(r io.Reader) (bool, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return false, err
	}
	return buf[0] != 0, nil
}

// WriteFixedString writes s truncated or zero-padded to exactly size
// bytes.
func WriteFixedString(w io.Writer, s string, size int) error {
	buf := make([]byte, size)
	copy(buf, s)
	_, err := w.Write(buf)
	return err
}

// ReadFixedString reads exactly size bytes and returns them as a string
// with trailing zero bytes trimmed.
func ReadFixedString(r io.Reader, size int) (string, error) {
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	n := len(buf)
	for n > 0 && buf[n-1] == 0 {
		n--
	}
	return string(buf[:n]), nil
}

// WriteSequence writes a compact-size count followed by each element
// serialized in order by write. MsgTx's TxIn/TxOut lists are a
// hand-specialized instance of the same shape for performance.
func WriteSequence[T any](w io.Writer, items []T, write func(io.Writer, T) error) error {
	if err := WriteCompactSize(w, uint64(len(items))); err != nil {
		return err
	}
	for _, item := range items {
		if err := write(w, item); err != nil {
			return err
		}
	}
	return nil
}

// ReadSequence reads a compact-size count followed by that many elements
// via read, bounded by maxCount.
func ReadSequence[T any](r io.Reader, maxCount uint64, read func(io.Reader) (T, error)) ([]T, error) {
	count, err := ReadCompactSize(r)
	if err != nil {
		return nil, err
	}
	if count > maxCount {
		return nil, messageError("ReadSequence", "sequence count exceeds maximum allowed")
	}
	items := make([]T, 0, count)
	for i := uint64(0); i < count; i++ {
		item, err := read(r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// KV is a single serialized key-value pair, used by WriteMap/ReadMap.
type KV[K any, V any] struct {
	Key K
	Val V
}

// WriteMap writes a compact-size count followed by each (key, value) pair
// in the order items already appears in -- the caller is responsible for
// having put items into a deterministic order, since map iteration order
// in Go is not stable and cross-implementation compatibility requires it.
func WriteMap[K any, V any](w io.Writer, items []KV[K, V], writeKey func(io.Writer, K) error, writeVal func(io.Writer, V) error) error {
	if err := WriteCompactSize(w, uint64(len(items))); err != nil {
		return err
	}
	for _, kv := range items {
		if err := writeKey(w, kv.Key); err != nil {
			return err
		}
		if err := writeVal(w, kv.Val); err != nil {
			return err
		}
	}
	return nil
}

// ReadMap is the inverse of WriteMap.
func ReadMap[K any, V any](r io.Reader, maxCount uint64, readKey func(io.Reader) (K, error), readVal func(io.Reader) (V, error)) ([]KV[K, V], error) {
	count, err := ReadCompactSize(r)
	if err != nil {
		return nil, err
	}
	if count > maxCount {
		return nil, messageError("ReadMap", "map count exceeds maximum allowed")
	}
	items := make([]KV[K, V], 0, count)
	for i := uint64(0); i < count; i++ {
		k, err := readKey(r)
		if err != nil {
			return nil, err
		}
		v, err := readVal(r)
		if err != nil {
			return nil, err
		}
		items = append(items, KV[K, V]{Key: k, Val: v})
	}
	return items, nil
}

// WriteUint32 and ReadUint32 are the fixed-width little-endian primitives
// for a bare uint32, used outside the TxIn/TxOut fast paths (e.g. by
// callers composing their own records out of WriteSequence/WriteMap).
func WriteUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// ReadUint32 is the inverse of WriteUint32.
func ReadUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}
