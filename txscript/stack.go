// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "github.com/andyzhshg/bitcoin/bn"

// maxScriptNumLen is the maximum length, in bytes, of a stack item the
// interpreter will interpret as a script number: larger items are
// rejected with ErrStackNumberTooBig, matching CScriptNum's 4-byte
// default limit.
const maxScriptNumLen = 4

// asBN decodes a stack item as a script number.
func asBN(v []byte) (*bn.BN, error) {
	if len(v) > maxScriptNumLen {
		return nil, ErrStackNumberTooBig
	}
	return bn.FromBytes(v), nil
}

// fromBN encodes a script number back to its canonical stack form.
func fromBN(n *bn.BN) []byte {
	return n.Bytes()
}

// asBool interprets a stack item as a boolean: any nonzero byte, other
// than a lone negative-zero (0x80) trailing byte, is true.
func asBool(v []byte) bool {
	for i, b := range v {
		if b == 0 {
			continue
		}
		if i == len(v)-1 && b == 0x80 {
			continue
		}
		return true
	}
	return false
}

func fromBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return nil
}

// stack is a stack of immutable byte-string values, as used by both the
// data stack and the alt stack of the interpreter. Values are
// shared, not copied, on Peek/Pop; callers that mutate a returned slice
// must copy it first.
type stack struct {
	items [][]byte
}

func (s *stack) Depth() int {
	return len(s.items)
}

func (s *stack) PushByteArray(v []byte) {
	s.items = append(s.items, v)
}

func (s *stack) PushInt(n *bn.BN) {
	s.PushByteArray(fromBN(n))
}

func (s *stack) PushBool(v bool) {
	s.PushByteArray(fromBool(v))
}

func (s *stack) PopByteArray() ([]byte, error) {
	return s.nipN(0)
}

func (s *stack) PopInt() (*bn.BN, error) {
	v, err := s.PopByteArray()
	if err != nil {
		return nil, err
	}
	return asBN(v)
}

func (s *stack) PopBool() (bool, error) {
	v, err := s.PopByteArray()
	if err != nil {
		return false, err
	}
	return asBool(v), nil
}

func (s *stack) PeekByteArray(idx int) ([]byte, error) {
	sz := len(s.items)
	if idx < 0 || idx >= sz {
		return nil, ErrStackUnderflow
	}
	return s.items[sz-idx-1], nil
}

func (s *stack) PeekInt(idx int) (*bn.BN, error) {
	v, err := s.PeekByteArray(idx)
	if err != nil {
		return nil, err
	}
	return asBN(v)
}

func (s *stack) PeekBool(idx int) (bool, error) {
	v, err := s.PeekByteArray(idx)
	if err != nil {
		return false, err
	}
	return asBool(v), nil
}

// nipN removes and returns the (0-indexed from the top) idx'th item.
func (s *stack) nipN(idx int) ([]byte, error) {
	sz := len(s.items)
	if idx < 0 || idx > sz-1 {
		return nil, ErrStackUnderflow
	}
	v := s.items[sz-idx-1]
	s.items = append(s.items[:sz-idx-1], s.items[sz-idx:]...)
	return v, nil
}

// DropN removes the top n items.
func (s *stack) DropN(n int) error {
	for ; n > 0; n-- {
		if _, err := s.PopByteArray(); err != nil {
			return err
		}
	}
	return nil
}

// DupN duplicates the top n items in place.
func (s *stack) DupN(n int) error {
	if n < 1 {
		return ErrStackInvalidArgs
	}
	for i := n; i > 0; i-- {
		v, err := s.PeekByteArray(n - 1)
		if err != nil {
			return err
		}
		s.PushByteArray(v)
	}
	return nil
}

// RotN rotates the top 3*n items, moving the bottom group of n items among
// them to the top.
func (s *stack) RotN(n int) error {
	if n < 1 {
		return ErrStackInvalidArgs
	}
	entry := 3*n - 1
	for i := n; i > 0; i-- {
		v, err := s.nipN(entry)
		if err != nil {
			return err
		}
		s.PushByteArray(v)
	}
	return nil
}

// SwapN swaps the top n items with the n items below them.
func (s *stack) SwapN(n int) error {
	if n < 1 {
		return ErrStackInvalidArgs
	}
	for i := n; i > 0; i-- {
		v, err := s.nipN(2*n - 1)
		if err != nil {
			return err
		}
		s.PushByteArray(v)
	}
	return nil
}

// OverN copies n items n items back to the top of the stack.
func (s *stack) OverN(n int) error {
	if n < 1 {
		return ErrStackInvalidArgs
	}
	for i := n; i > 0; i-- {
		v, err := s.PeekByteArray(2*n - 1)
		if err != nil {
			return err
		}
		s.PushByteArray(v)
	}
	return nil
}

// PickN copies the idx'th item (0-indexed from the top) to the top; RollN
// moves it instead.
func (s *stack) PickN(idx int) error {
	v, err := s.PeekByteArray(idx)
	if err != nil {
		return err
	}
	s.PushByteArray(v)
	return nil
}

func (s *stack) RollN(idx int) error {
	v, err := s.nipN(idx)
	if err != nil {
		return err
	}
	s.PushByteArray(v)
	return nil
}
