// Copyright (c) 2013 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// maxReadChunk bounds how much is allocated at a time when reading a
// sequence whose declared length comes from untrusted input. A large
// declared size is consumed in chunks of at most this many bytes instead
// of being allocated up front, so a hostile length can cost at most one
// chunk of wasted memory before the short read surfaces an error.
const maxReadChunk = 5 * 1024 * 1024

// readElement reads the next sequence of bytes from r using little endian
// depending on the concrete type of element pointed to.
func readElement(r io.Reader, element interface{}) error {
	return binary.Read(r, binary.LittleEndian, element)
}

// readElements reads multiple items from r. It is equivalent to multiple
// calls to readElement.
func readElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		if err := readElement(r, element); err != nil {
			return err
		}
	}
	return nil
}

// writeElement writes the little endian representation of element to w.
func writeElement(w io.Writer, element interface{}) error {
	return binary.Write(w, binary.LittleEndian, element)
}

// writeElements writes multiple items to w. It is equivalent to multiple
// calls to writeElement.
func writeElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		if err := writeElement(w, element); err != nil {
			return err
		}
	}
	return nil
}

// ReadCompactSize reads a compact-size encoded nonnegative integer. The
// encoding always uses the shortest of the four forms that can represent
// the value, but a reader accepts any of them.
func ReadCompactSize(r io.Reader) (uint64, error) {
	var prefix [1]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return 0, err
	}

	switch prefix[0] {
	case 255:
		var v uint64
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, err
		}
		return v, nil
	case 254:
		var v uint32
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, err
		}
		return uint64(v), nil
	case 253:
		var v uint16
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, err
		}
		return uint64(v), nil
	default:
		return uint64(prefix[0]), nil
	}
}

// WriteCompactSize writes n to w using the minimal-length compact-size
// encoding.
func WriteCompactSize(w io.Writer, n uint64) error {
	switch {
	case n < 253:
		_, err := w.Write([]byte{byte(n)})
		return err
	case n <= 0xffff:
		if _, err := w.Write([]byte{253}); err != nil {
			return err
		}
		return binary.Write(w, binary.LittleEndian, uint16(n))
	case n <= 0xffffffff:
		if _, err := w.Write([]byte{254}); err != nil {
			return err
		}
		return binary.Write(w, binary.LittleEndian, uint32(n))
	default:
		if _, err := w.Write([]byte{255}); err != nil {
			return err
		}
		return binary.Write(w, binary.LittleEndian, n)
	}
}

// CompactSizeLen returns the number of bytes WriteCompactSize would emit
// for n, without performing the write.
func CompactSizeLen(n uint64) int {
	switch {
	case n < 253:
		return 1
	case n <= 0xffff:
		return 3
	case n <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// readBoundedBytes reads exactly count bytes from r, bounded by maxAllowed,
// growing the destination buffer in chunks of at most maxReadChunk so a
// large attacker-controlled count does not force an unbounded allocation
// before any bytes have actually arrived on the wire.
func readBoundedBytes(r io.Reader, count uint64, maxAllowed uint64, fieldName string) ([]byte, error) {
	if count > maxAllowed {
		return nil, fmt.Errorf("wire: %s is larger than the max allowed size [count %d, max %d]",
			fieldName, count, maxAllowed)
	}

	buf := bytes.NewBuffer(make([]byte, 0, min64(count, maxReadChunk)))
	remaining := count
	for remaining > 0 {
		chunk := remaining
		if chunk > maxReadChunk {
			chunk = maxReadChunk
		}
		if _, err := io.CopyN(buf, r, int64(chunk)); err != nil {
			return nil, err
		}
		remaining -= chunk
	}
	return buf.Bytes(), nil
}

func min64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}
