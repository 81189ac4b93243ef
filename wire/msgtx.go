// Copyright (c) 2013 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"crypto/sha256"
	"io"
)

// MaxTxInSequenceNum is the maximum sequence number the Sequence field of
// a transaction input can be.
const MaxTxInSequenceNum uint32 = 0xffffffff

// maxTxInPerMessage and maxTxOutPerMessage bound the input/output counts a
// deserialized transaction is allowed to declare, so a malicious
// compact-size prefix cannot alone force an unbounded allocation.
const (
	maxTxInPerMessage  = 1<<20 + 1
	maxTxOutPerMessage = 1<<20 + 1

	// maxScriptSize bounds an individual scriptSig/scriptPubKey read.
	maxScriptSize = 10 * 1024 * 1024
)

// OutPoint identifies a previous transaction output by the hash of the
// transaction that created it and its index within that transaction's
// output list.
type OutPoint struct {
	Hash  [32]byte
	Index uint32
}

// NewOutPoint returns a new OutPoint for the given hash and index.
func NewOutPoint(hash *[32]byte, index uint32) *OutPoint {
	return &OutPoint{Hash: *hash, Index: index}
}

// TxIn is a transaction input: a reference to a previous output together
// with the script that satisfies it and the input's sequence number.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// NewTxIn returns a TxIn spending prevOut with the given signature script
// and the default (final) sequence number.
func NewTxIn(prevOut *OutPoint, signatureScript []byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Sequence:         MaxTxInSequenceNum,
	}
}

// TxOut is a transaction output: an amount together with the script that
// must be satisfied to spend it.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// NewTxOut returns a new transaction output with the given value and
// public key script.
func NewTxOut(value int64, pkScript []byte) *TxOut {
	return &TxOut{Value: value, PkScript: pkScript}
}

// SetNull turns to into the SIGHASH_SINGLE sentinel null output: value -1
// and an empty script.
func (to *TxOut) SetNull() {
	to.Value = -1
	to.PkScript = nil
}

// MsgTx is a Bitcoin-style transaction.
type MsgTx struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// NewMsgTx returns an empty transaction with the given version.
func NewMsgTx(version int32) *MsgTx {
	return &MsgTx{Version: version}
}

// AddTxIn appends ti to the transaction's input list.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut appends to to the transaction's output list.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// Copy returns a deep copy of msg so that mutating the copy (as the
// signature-hash builder does) never touches the original.
func (msg *MsgTx) Copy() *MsgTx {
	newTx := &MsgTx{
		Version:  msg.Version,
		LockTime: msg.LockTime,
		TxIn:     make([]*TxIn, 0, len(msg.TxIn)),
		TxOut:    make([]*TxOut, 0, len(msg.TxOut)),
	}

	for _, oldTxIn := range msg.TxIn {
		newScript := make([]byte, len(oldTxIn.SignatureScript))
		copy(newScript, oldTxIn.SignatureScript)
		newTx.TxIn = append(newTx.TxIn, &TxIn{
			PreviousOutPoint: oldTxIn.PreviousOutPoint,
			SignatureScript:  newScript,
			Sequence:         oldTxIn.Sequence,
		})
	}

	for _, oldTxOut := range msg.TxOut {
		newScript := make([]byte, len(oldTxOut.PkScript))
		copy(newScript, oldTxOut.PkScript)
		newTx.TxOut = append(newTx.TxOut, &TxOut{
			Value:    oldTxOut.Value,
			PkScript: newScript,
		})
	}

	return newTx
}

// Serialize writes the canonical wire encoding of msg to w.
func (msg *MsgTx) Serialize(w io.Writer) error {
	if err := writeElement(w, msg.Version); err != nil {
		return err
	}

	if err := WriteCompactSize(w, uint64(len(msg.TxIn))); err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		if err := writeTxIn(w, ti); err != nil {
			return err
		}
	}

	if err := WriteCompactSize(w, uint64(len(msg.TxOut))); err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		if err := writeTxOut(w, to); err != nil {
			return err
		}
	}

	return writeElement(w, msg.LockTime)
}

// Deserialize reads the canonical wire encoding of a transaction from r
// into msg, replacing its contents.
func (msg *MsgTx) Deserialize(r io.Reader) error {
	var version int32
	if err := readElement(r, &version); err != nil {
		return err
	}

	inCount, err := ReadCompactSize(r)
	if err != nil {
		return err
	}
	if inCount > maxTxInPerMessage {
		return messageError("MsgTx.Deserialize", "too many transaction inputs to fit into max message size")
	}
	txIn := make([]*TxIn, 0, inCount)
	for i := uint64(0); i < inCount; i++ {
		ti, err := readTxIn(r)
		if err != nil {
			return err
		}
		txIn = append(txIn, ti)
	}

	outCount, err := ReadCompactSize(r)
	if err != nil {
		return err
	}
	if outCount > maxTxOutPerMessage {
		return messageError("MsgTx.Deserialize", "too many transaction outputs to fit into max message size")
	}
	txOut := make([]*TxOut, 0, outCount)
	for i := uint64(0); i < outCount; i++ {
		to, err := readTxOut(r)
		if err != nil {
			return err
		}
		txOut = append(txOut, to)
	}

	var lockTime uint32
	if err := readElement(r, &lockTime); err != nil {
		return err
	}

	msg.Version = version
	msg.TxIn = txIn
	msg.TxOut = txOut
	msg.LockTime = lockTime
	return nil
}

// SerializeSize returns the number of bytes Serialize would write.
func (msg *MsgTx) SerializeSize() int {
	n := 4 + 4 // version + lockTime
	n += CompactSizeLen(uint64(len(msg.TxIn)))
	for _, ti := range msg.TxIn {
		n += 32 + 4 // prevout hash + index
		n += CompactSizeLen(uint64(len(ti.SignatureScript))) + len(ti.SignatureScript)
		n += 4 // sequence
	}
	n += CompactSizeLen(uint64(len(msg.TxOut)))
	for _, to := range msg.TxOut {
		n += 8 // value
		n += CompactSizeLen(uint64(len(to.PkScript))) + len(to.PkScript)
	}
	return n
}

// TxHash returns the double-SHA-256 of msg's canonical serialization: the
// transaction identifier.
func (msg *MsgTx) TxHash() [32]byte {
	var buf bytes.Buffer
	buf.Grow(msg.SerializeSize())
	_ = msg.Serialize(&buf)
	first := sha256.Sum256(buf.Bytes())
	second := sha256.Sum256(first[:])
	return second
}

func readTxIn(r io.Reader) (*TxIn, error) {
	ti := &TxIn{}
	if err := readElements(r, &ti.PreviousOutPoint.Hash, &ti.PreviousOutPoint.Index); err != nil {
		return nil, err
	}

	slen, err := ReadCompactSize(r)
	if err != nil {
		return nil, err
	}
	script, err := readBoundedBytes(r, slen, maxScriptSize, "TxIn.SignatureScript")
	if err != nil {
		return nil, err
	}
	ti.SignatureScript = script

	if err := readElement(r, &ti.Sequence); err != nil {
		return nil, err
	}
	return ti, nil
}

func writeTxIn(w io.Writer, ti *TxIn) error {
	if err := writeElements(w, ti.PreviousOutPoint.Hash, ti.PreviousOutPoint.Index); err != nil {
		return err
	}
	if err := WriteCompactSize(w, uint64(len(ti.SignatureScript))); err != nil {
		return err
	}
	if _, err := w.Write(ti.SignatureScript); err != nil {
		return err
	}
	return writeElement(w, ti.Sequence)
}

func readTxOut(r io.Reader) (*TxOut, error) {
	to := &TxOut{}
	if err := readElement(r, &to.Value); err != nil {
		return nil, err
	}

	slen, err := ReadCompactSize(r)
	if err != nil {
		return nil, err
	}
	script, err := readBoundedBytes(r, slen, maxScriptSize, "TxOut.PkScript")
	if err != nil {
		return nil, err
	}
	to.PkScript = script
	return to, nil
}

func writeTxOut(w io.Writer, to *TxOut) error {
	if err := writeElement(w, to.Value); err != nil {
		return err
	}
	if err := WriteCompactSize(w, uint64(len(to.PkScript))); err != nil {
		return err
	}
	_, err := w.Write(to.PkScript)
	return err
}
