// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"

	"github.com/andyzhshg/bitcoin/bn"
	"github.com/andyzhshg/bitcoin/sigverify"
	"github.com/andyzhshg/bitcoin/txhash"
	"github.com/andyzhshg/bitcoin/wire"
)

// Consensus-fixed limits on interpreter resource usage.
const (
	// maxStackSize is the maximum combined height of the data and alt
	// stacks during execution.
	maxStackSize = 1000

	// maxScriptSize is the maximum allowed length of a script, enforced
	// before the combined scriptSig/scriptPubKey is ever evaluated.
	maxScriptSize = 10000

	// MaxOpsPerScript is the maximum number of non-push operations a
	// script may execute.
	MaxOpsPerScript = 201

	// MaxPubKeysPerMultiSig is the maximum number of pubkeys an
	// OP_CHECKMULTISIG may be given.
	MaxPubKeysPerMultiSig = 20

	// MaxScriptElementSize is the maximum number of bytes a single push
	// may place on the stack.
	MaxScriptElementSize = 520
)

// Engine is the stack machine that evaluates the concatenation
// scriptSig ‖ OP_CODESEPARATOR ‖ scriptPubKey against a transaction input
// and reduces to a single boolean.
type Engine struct {
	script        []byte
	pc            int
	codeHashBegin int

	dstack stack
	astack stack

	condStack []bool
	numOps    int

	tx    *wire.MsgTx
	txIdx int

	verifier sigverify.Verifier
}

// NewEngine builds the combined script for input txIdx of tx and returns an
// Engine ready to execute it. verifier supplies the ECDSA collaborator used
// by OP_CHECKSIG/OP_CHECKMULTISIG; only the verify side is needed here.
func NewEngine(scriptSig, scriptPubKey []byte, tx *wire.MsgTx, txIdx int, verifier sigverify.Verifier) (*Engine, error) {
	if txIdx < 0 || txIdx >= len(tx.TxIn) {
		return nil, ErrStackInvalidIndex
	}
	if len(scriptSig) > maxScriptSize || len(scriptPubKey) > maxScriptSize {
		return nil, ErrStackLongScript
	}

	// Join the two halves with a single OP_CODESEPARATOR so that
	// codeHashBegin, once advanced past it, can never cover the
	// signature-carrying scriptSig prefix.
	script := make([]byte, 0, len(scriptSig)+1+len(scriptPubKey))
	script = append(script, scriptSig...)
	script = append(script, OP_CODESEPARATOR)
	script = append(script, scriptPubKey...)

	if _, err := GetOp(script); err != nil {
		return nil, err
	}

	return &Engine{
		script:   script,
		tx:       tx,
		txIdx:    txIdx,
		verifier: verifier,
	}, nil
}

// Execute runs the engine's script to completion and returns the final
// boolean result, or an error describing why evaluation failed. Every
// failure path collapses to false at the VerifySignature boundary.
func (vm *Engine) Execute() (bool, error) {
	for vm.pc < len(vm.script) {
		if err := vm.step(); err != nil {
			return false, err
		}
		if vm.dstack.Depth()+vm.astack.Depth() > maxStackSize {
			return false, ErrStackOverflow
		}
	}

	if len(vm.condStack) != 0 {
		return false, ErrStackMissingEndif
	}
	if vm.dstack.Depth() < 1 {
		return false, ErrStackEmptyStack
	}

	v, err := vm.dstack.PopBool()
	if err != nil {
		return false, err
	}
	if !v {
		return false, ErrStackScriptFailed
	}
	return true, nil
}

// exec reports whether instructions are currently live: all frames on the
// conditional-execution mask stack must be true (an empty mask is
// vacuously true).
func (vm *Engine) exec() bool {
	for _, f := range vm.condStack {
		if !f {
			return false
		}
	}
	return true
}

// step decodes and runs the single opcode at vm.pc.
func (vm *Engine) step() error {
	pcAtEntry := vm.pc
	op := vm.script[vm.pc]
	vm.pc++

	log.Tracef("%v", newLogClosure(func() string {
		return fmt.Sprintf("stepping %02x:%04x: %s", 0, pcAtEntry, opcodeName[op])
	}))

	if op <= OP_PUSHDATA4 {
		dataLen, headerLen, err := bytesToParse(op, vm.script, vm.pc)
		if err != nil {
			return err
		}
		vm.pc += headerLen
		if dataLen < 0 || vm.pc+dataLen > len(vm.script) {
			return ErrStackShortScript
		}
		data := vm.script[vm.pc : vm.pc+dataLen]
		vm.pc += dataLen

		if len(data) > MaxScriptElementSize {
			return ErrStackElementTooBig
		}
		if vm.exec() {
			vm.dstack.PushByteArray(data)
		}
		return nil
	}

	isFlowOp := op == OP_IF || op == OP_NOTIF || op == OP_VERIF ||
		op == OP_VERNOTIF || op == OP_ELSE || op == OP_ENDIF

	if !vm.exec() && !isFlowOp {
		return nil
	}

	if op > OP_16 {
		vm.numOps++
		if vm.numOps > MaxOpsPerScript {
			return ErrStackTooManyOperations
		}
	}

	return vm.execOpcode(op)
}

// execOpcode dispatches a single non-push opcode.
func (vm *Engine) execOpcode(op byte) error {
	switch {
	case op >= OP_1NEGATE && op <= OP_16 && op != OP_RESERVED:
		return vm.opNumericConstant(op)
	}

	switch op {
	case OP_NOP, OP_NOP1, OP_NOP2, OP_NOP3, OP_NOP4, OP_NOP5,
		OP_NOP6, OP_NOP7, OP_NOP8, OP_NOP9, OP_NOP10:
		return nil

	case OP_VER:
		// Pushes the protocol version.
		vm.dstack.PushInt(bn.New(protocolVersion))
		return nil

	case OP_IF, OP_NOTIF, OP_VERIF, OP_VERNOTIF:
		return vm.opIf(op)
	case OP_ELSE:
		return vm.opElse()
	case OP_ENDIF:
		return vm.opEndif()
	case OP_VERIFY:
		return vm.opVerify()
	case OP_RETURN:
		return ErrStackEarlyReturn

	case OP_TOALTSTACK:
		v, err := vm.dstack.PopByteArray()
		if err != nil {
			return err
		}
		vm.astack.PushByteArray(v)
		return nil
	case OP_FROMALTSTACK:
		v, err := vm.astack.PopByteArray()
		if err != nil {
			return err
		}
		vm.dstack.PushByteArray(v)
		return nil
	case OP_2DROP:
		return vm.dstack.DropN(2)
	case OP_2DUP:
		return vm.dstack.DupN(2)
	case OP_3DUP:
		return vm.dstack.DupN(3)
	case OP_2OVER:
		return vm.dstack.OverN(2)
	case OP_2ROT:
		return vm.op2Rot()
	case OP_2SWAP:
		return vm.dstack.SwapN(2)
	case OP_IFDUP:
		return vm.opIfDup()
	case OP_DEPTH:
		vm.dstack.PushInt(bn.New(int64(vm.dstack.Depth())))
		return nil
	case OP_DROP:
		return vm.dstack.DropN(1)
	case OP_DUP:
		return vm.dstack.DupN(1)
	case OP_NIP:
		_, err := vm.dstack.nipN(1)
		return err
	case OP_OVER:
		return vm.dstack.OverN(1)
	case OP_PICK:
		return vm.opPickRoll(true)
	case OP_ROLL:
		return vm.opPickRoll(false)
	case OP_ROT:
		return vm.dstack.RotN(1)
	case OP_SWAP:
		return vm.dstack.SwapN(1)
	case OP_TUCK:
		return vm.opTuck()

	case OP_CAT:
		return vm.opCat()
	case OP_SUBSTR:
		return vm.opSubstr()
	case OP_LEFT, OP_RIGHT:
		return vm.opLeftRight(op)
	case OP_SIZE:
		return vm.opSize()

	case OP_INVERT:
		return vm.opInvert()
	case OP_AND, OP_OR, OP_XOR:
		return vm.opBitwise(op)
	case OP_EQUAL, OP_EQUALVERIFY:
		return vm.opEqual(op)

	case OP_1ADD, OP_1SUB, OP_2MUL, OP_2DIV, OP_NEGATE, OP_ABS,
		OP_NOT, OP_0NOTEQUAL:
		return vm.opUnaryNumeric(op)

	case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_MOD, OP_LSHIFT, OP_RSHIFT,
		OP_BOOLAND, OP_BOOLOR, OP_NUMEQUAL, OP_NUMEQUALVERIFY,
		OP_NUMNOTEQUAL, OP_LESSTHAN, OP_GREATERTHAN,
		OP_LESSTHANOREQUAL, OP_GREATERTHANOREQUAL, OP_MIN, OP_MAX:
		return vm.opBinaryNumeric(op)

	case OP_WITHIN:
		return vm.opWithin()

	case OP_RIPEMD160, OP_SHA1, OP_SHA256, OP_HASH160, OP_HASH256:
		return vm.opHash(op)
	case OP_CODESEPARATOR:
		vm.codeHashBegin = vm.pc
		return nil
	case OP_CHECKSIG, OP_CHECKSIGVERIFY:
		return vm.opCheckSig(op)
	case OP_CHECKMULTISIG, OP_CHECKMULTISIGVERIFY:
		return vm.opCheckMultiSig(op)

	case OP_RESERVED, OP_RESERVED1, OP_RESERVED2:
		return ErrStackReservedOpcode
	}

	return ErrStackInvalidOpcode
}

// protocolVersion is the value OP_VER pushes, mirroring the original
// client's hardcoded VERSION constant.
const protocolVersion = 311

func (vm *Engine) opNumericConstant(op byte) error {
	if op == OP_1NEGATE {
		vm.dstack.PushInt(bn.New(-1))
		return nil
	}
	vm.dstack.PushInt(bn.New(int64(op) - int64(OP_1) + 1))
	return nil
}

func (vm *Engine) opIf(op byte) error {
	value := false
	if vm.exec() {
		v, err := vm.dstack.PopByteArray()
		if err != nil {
			return err
		}
		if op == OP_VERIF || op == OP_VERNOTIF {
			// Compares the popped value, interpreted as a version
			// number, against the running protocol version.
			n, err := asBN(v)
			if err != nil {
				return err
			}
			value = bn.New(protocolVersion).Cmp(n) >= 0
		} else {
			value = asBool(v)
		}
		if op == OP_NOTIF || op == OP_VERNOTIF {
			value = !value
		}
	}
	vm.condStack = append(vm.condStack, value)
	return nil
}

func (vm *Engine) opElse() error {
	if len(vm.condStack) == 0 {
		return ErrStackNoIf
	}
	top := len(vm.condStack) - 1
	vm.condStack[top] = !vm.condStack[top]
	return nil
}

func (vm *Engine) opEndif() error {
	if len(vm.condStack) == 0 {
		return ErrStackNoIf
	}
	vm.condStack = vm.condStack[:len(vm.condStack)-1]
	return nil
}

func (vm *Engine) opVerify() error {
	v, err := vm.dstack.PopBool()
	if err != nil {
		return err
	}
	if !v {
		return ErrStackVerifyFailed
	}
	return nil
}

func (vm *Engine) op2Rot() error {
	if vm.dstack.Depth() < 6 {
		return ErrStackUnderflow
	}
	x1, _ := vm.dstack.nipN(5)
	x2, _ := vm.dstack.nipN(4)
	vm.dstack.PushByteArray(x1)
	vm.dstack.PushByteArray(x2)
	return nil
}

func (vm *Engine) opIfDup() error {
	v, err := vm.dstack.PeekByteArray(0)
	if err != nil {
		return err
	}
	if asBool(v) {
		vm.dstack.PushByteArray(v)
	}
	return nil
}

func (vm *Engine) opPickRoll(pick bool) error {
	n, err := vm.dstack.PopInt()
	if err != nil {
		return err
	}
	idx := int(n.Int64())
	if idx < 0 || idx >= vm.dstack.Depth() {
		return ErrStackInvalidArgs
	}
	if pick {
		return vm.dstack.PickN(idx)
	}
	return vm.dstack.RollN(idx)
}

func (vm *Engine) opTuck() error {
	v, err := vm.dstack.PeekByteArray(0)
	if err != nil {
		return err
	}
	v2, err := vm.dstack.PeekByteArray(1)
	if err != nil {
		return err
	}
	if _, err := vm.dstack.nipN(1); err != nil {
		return err
	}
	vm.dstack.PushByteArray(v2)
	vm.dstack.PushByteArray(v)
	return nil
}

func (vm *Engine) opCat() error {
	b, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	a, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	if len(out) > MaxScriptElementSize {
		return ErrStackElementTooBig
	}
	vm.dstack.PushByteArray(out)
	return nil
}

func (vm *Engine) opSubstr() error {
	size, err := vm.dstack.PopInt()
	if err != nil {
		return err
	}
	begin, err := vm.dstack.PopInt()
	if err != nil {
		return err
	}
	v, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}

	nBegin := int(begin.Int64())
	nEnd := nBegin + int(size.Int64())
	if nBegin < 0 || nEnd < nBegin {
		return ErrStackInvalidArgs
	}
	if nBegin > len(v) {
		nBegin = len(v)
	}
	if nEnd > len(v) {
		nEnd = len(v)
	}
	out := make([]byte, nEnd-nBegin)
	copy(out, v[nBegin:nEnd])
	vm.dstack.PushByteArray(out)
	return nil
}

func (vm *Engine) opLeftRight(op byte) error {
	size, err := vm.dstack.PopInt()
	if err != nil {
		return err
	}
	v, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}

	n := int(size.Int64())
	if n < 0 {
		return ErrStackInvalidArgs
	}
	if n > len(v) {
		n = len(v)
	}
	var out []byte
	if op == OP_LEFT {
		out = append([]byte(nil), v[:n]...)
	} else {
		out = append([]byte(nil), v[len(v)-n:]...)
	}
	vm.dstack.PushByteArray(out)
	return nil
}

func (vm *Engine) opSize() error {
	v, err := vm.dstack.PeekByteArray(0)
	if err != nil {
		return err
	}
	vm.dstack.PushInt(bn.New(int64(len(v))))
	return nil
}

func (vm *Engine) opInvert() error {
	v, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	out := make([]byte, len(v))
	for i, b := range v {
		out[i] = ^b
	}
	vm.dstack.PushByteArray(out)
	return nil
}

// makeSameSize lengthens the shorter of a and b with trailing zero bytes
// so the bitwise family can operate elementwise, matching the original
// MakeSameSize helper.
func makeSameSize(a, b []byte) ([]byte, []byte) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	oa := make([]byte, n)
	ob := make([]byte, n)
	copy(oa, a)
	copy(ob, b)
	return oa, ob
}

func (vm *Engine) opBitwise(op byte) error {
	b, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	a, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	a, b = makeSameSize(a, b)
	out := make([]byte, len(a))
	for i := range out {
		switch op {
		case OP_AND:
			out[i] = a[i] & b[i]
		case OP_OR:
			out[i] = a[i] | b[i]
		case OP_XOR:
			out[i] = a[i] ^ b[i]
		}
	}
	vm.dstack.PushByteArray(out)
	return nil
}

func (vm *Engine) opEqual(op byte) error {
	b, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	a, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	equal := bytesEqual(a, b)
	vm.dstack.PushBool(equal)
	if op == OP_EQUALVERIFY {
		if !equal {
			return ErrStackVerifyFailed
		}
		_, err := vm.dstack.PopByteArray()
		return err
	}
	return nil
}

func (vm *Engine) opUnaryNumeric(op byte) error {
	n, err := vm.dstack.PopInt()
	if err != nil {
		return err
	}

	var out *bn.BN
	switch op {
	case OP_1ADD:
		out = bn.Add(n, bn.New(1))
	case OP_1SUB:
		out = bn.Sub(n, bn.New(1))
	case OP_2MUL:
		out, err = bn.Lshift(n, bn.New(1))
	case OP_2DIV:
		out, err = bn.Rshift(n, bn.New(1))
	case OP_NEGATE:
		out = bn.Negate(n)
	case OP_ABS:
		out = bn.Abs(n)
	case OP_NOT:
		out = bn.New(boolToInt(n.Sign() == 0))
	case OP_0NOTEQUAL:
		out = bn.New(boolToInt(n.Sign() != 0))
	}
	if err != nil {
		return err
	}
	vm.dstack.PushInt(out)
	return nil
}

func (vm *Engine) opBinaryNumeric(op byte) error {
	b, err := vm.dstack.PopInt()
	if err != nil {
		return err
	}
	a, err := vm.dstack.PopInt()
	if err != nil {
		return err
	}

	var out *bn.BN
	switch op {
	case OP_ADD:
		out = bn.Add(a, b)
	case OP_SUB:
		out = bn.Sub(a, b)
	case OP_MUL:
		out = bn.Mul(a, b)
	case OP_DIV:
		out, err = bn.Div(a, b)
	case OP_MOD:
		out, err = bn.Mod(a, b)
	case OP_LSHIFT:
		out, err = bn.Lshift(a, b)
	case OP_RSHIFT:
		out, err = bn.Rshift(a, b)
	case OP_BOOLAND:
		out = bn.New(boolToInt(a.Sign() != 0 && b.Sign() != 0))
	case OP_BOOLOR:
		out = bn.New(boolToInt(a.Sign() != 0 || b.Sign() != 0))
	case OP_NUMEQUAL, OP_NUMEQUALVERIFY:
		out = bn.New(boolToInt(a.Cmp(b) == 0))
	case OP_NUMNOTEQUAL:
		out = bn.New(boolToInt(a.Cmp(b) != 0))
	case OP_LESSTHAN:
		out = bn.New(boolToInt(a.Cmp(b) < 0))
	case OP_GREATERTHAN:
		out = bn.New(boolToInt(a.Cmp(b) > 0))
	case OP_LESSTHANOREQUAL:
		out = bn.New(boolToInt(a.Cmp(b) <= 0))
	case OP_GREATERTHANOREQUAL:
		out = bn.New(boolToInt(a.Cmp(b) >= 0))
	case OP_MIN:
		if a.Cmp(b) < 0 {
			out = a
		} else {
			out = b
		}
	case OP_MAX:
		if a.Cmp(b) > 0 {
			out = a
		} else {
			out = b
		}
	}
	if err != nil {
		return err
	}
	vm.dstack.PushInt(out)

	if op == OP_NUMEQUALVERIFY {
		v, err := vm.dstack.PopBool()
		if err != nil {
			return err
		}
		if !v {
			return ErrStackVerifyFailed
		}
	}
	return nil
}

func (vm *Engine) opWithin() error {
	max, err := vm.dstack.PopInt()
	if err != nil {
		return err
	}
	min, err := vm.dstack.PopInt()
	if err != nil {
		return err
	}
	x, err := vm.dstack.PopInt()
	if err != nil {
		return err
	}
	vm.dstack.PushBool(x.Cmp(min) >= 0 && x.Cmp(max) < 0)
	return nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func (vm *Engine) opHash(op byte) error {
	v, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	var out []byte
	switch op {
	case OP_RIPEMD160:
		out = txhash.Ripemd160(v)
	case OP_SHA1:
		out = txhash.Sha1(v)
	case OP_SHA256:
		out = txhash.Sha256(v)
	case OP_HASH160:
		out = txhash.Hash160(v)
	case OP_HASH256:
		out = txhash.DoubleSha256(v)
	}
	vm.dstack.PushByteArray(out)
	return nil
}

// subScript returns the portion of the combined script since the most
// recent OP_CODESEPARATOR, the scriptCode that OP_CHECKSIG and
// OP_CHECKMULTISIG hash over.
func (vm *Engine) subScript() []byte {
	return vm.script[vm.codeHashBegin:]
}

func (vm *Engine) opCheckSig(op byte) error {
	pubKey, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	sig, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}

	ok, err := vm.checkSig(sig, pubKey, vm.subScript())
	if err != nil {
		return err
	}
	vm.dstack.PushBool(ok)

	if op == OP_CHECKSIGVERIFY {
		if !ok {
			return ErrStackVerifyFailed
		}
		_, err := vm.dstack.PopByteArray()
		return err
	}
	return nil
}

// checkSig drops sig from scriptCode, peels the trailing hash-type byte
// off sig, computes the signature hash and verifies it against pubKey.
func (vm *Engine) checkSig(sig, pubKey, scriptCode []byte) (bool, error) {
	if len(sig) == 0 {
		return false, nil
	}

	cleanedScript, err := FindAndDelete(scriptCode, sig)
	if err != nil {
		return false, err
	}

	hashType := SigHashType(sig[len(sig)-1])
	rawSig := sig[:len(sig)-1]

	hash, err := CalcSignatureHash(cleanedScript, hashType, vm.tx, vm.txIdx)
	if err != nil {
		return false, err
	}

	return vm.verifier.Verify(hash, rawSig, pubKey), nil
}

func (vm *Engine) opCheckMultiSig(op byte) error {
	nKeys, err := vm.dstack.PopInt()
	if err != nil {
		return err
	}
	numKeys := int(nKeys.Int64())
	if numKeys < 0 || numKeys > MaxPubKeysPerMultiSig {
		return ErrStackTooManyPubKeys
	}

	pubKeys := make([][]byte, numKeys)
	for i := numKeys - 1; i >= 0; i-- {
		pubKeys[i], err = vm.dstack.PopByteArray()
		if err != nil {
			return err
		}
	}

	nSigs, err := vm.dstack.PopInt()
	if err != nil {
		return err
	}
	numSigs := int(nSigs.Int64())
	if numSigs < 0 || numSigs > numKeys {
		return ErrStackInvalidArgs
	}

	sigs := make([][]byte, numSigs)
	for i := numSigs - 1; i >= 0; i-- {
		sigs[i], err = vm.dstack.PopByteArray()
		if err != nil {
			return err
		}
	}

	// One extra, unused stack item is always consumed: the well-known
	// OP_CHECKMULTISIG "off by one" bug, preserved for consensus fidelity.
	if _, err := vm.dstack.PopByteArray(); err != nil {
		return err
	}

	scriptCode := vm.subScript()
	for _, sig := range sigs {
		cleaned, err := FindAndDelete(scriptCode, sig)
		if err != nil {
			return err
		}
		scriptCode = cleaned
	}

	success := true
	ikey, isig := 0, 0
	remainingSigs, remainingKeys := numSigs, numKeys
	for success && remainingSigs > 0 {
		ok, err := vm.checkSig(sigs[isig], pubKeys[ikey], scriptCode)
		if err != nil {
			return err
		}
		if ok {
			isig++
			remainingSigs--
		}
		ikey++
		remainingKeys--

		if remainingSigs > remainingKeys {
			success = false
		}
	}

	vm.dstack.PushBool(success)

	if op == OP_CHECKMULTISIGVERIFY {
		if !success {
			return ErrStackVerifyFailed
		}
		_, err := vm.dstack.PopByteArray()
		return err
	}
	return nil
}

// VerifySignature resolves the prevout reference between txFrom and
// txTo, then evaluates
// txTo's scriptSig against txFrom's matching scriptPubKey and returns the
// resulting boolean. Any failure along the way — a bad prevout reference,
// a malformed script, a failed signature check — collapses to false.
func VerifySignature(txFrom, txTo *wire.MsgTx, inputIndex int, verifier sigverify.Verifier) bool {
	if inputIndex < 0 || inputIndex >= len(txTo.TxIn) {
		return false
	}
	txIn := txTo.TxIn[inputIndex]

	if txIn.PreviousOutPoint.Hash != txFrom.TxHash() {
		return false
	}
	prevIdx := int(txIn.PreviousOutPoint.Index)
	if prevIdx < 0 || prevIdx >= len(txFrom.TxOut) {
		return false
	}

	scriptPubKey := txFrom.TxOut[prevIdx].PkScript

	vm, err := NewEngine(txIn.SignatureScript, scriptPubKey, txTo, inputIndex, verifier)
	if err != nil {
		return false
	}

	ok, err := vm.Execute()
	if err != nil {
		log.Debugf("script evaluation failed for input %d: %v", inputIndex, err)
		return false
	}
	return ok
}
