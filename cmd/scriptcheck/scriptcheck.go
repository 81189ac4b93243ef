// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/btcsuite/btclog"

	"github.com/andyzhshg/bitcoin/sigverify"
	"github.com/andyzhshg/bitcoin/txscript"
	"github.com/andyzhshg/bitcoin/wire"
)

var (
	cfg *config
	log btclog.Logger
)

// decodeTx hex-decodes and deserializes a wire.MsgTx.
func decodeTx(hexStr string) (*wire.MsgTx, error) {
	raw, err := hex.DecodeString(hexStr)
	if err != nil {
		return nil, fmt.Errorf("decoding hex: %w", err)
	}

	var tx wire.MsgTx
	if err := tx.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("deserializing transaction: %w", err)
	}
	return &tx, nil
}

// realMain is the real main function for the utility. It is necessary to
// work around the fact that deferred functions do not run when os.Exit()
// is called.
func realMain() error {
	tcfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = tcfg

	backendLogger := btclog.NewBackend(os.Stdout)
	defer os.Stdout.Sync()
	log = backendLogger.Logger("MAIN")
	txscript.UseLogger(backendLogger.Logger("SCRT"))

	txFrom, err := decodeTx(cfg.TxFrom)
	if err != nil {
		return fmt.Errorf("--txfrom: %w", err)
	}
	txTo, err := decodeTx(cfg.TxTo)
	if err != nil {
		return fmt.Errorf("--txto: %w", err)
	}

	if cfg.InputIndex >= len(txTo.TxIn) {
		return fmt.Errorf("input index %d out of range (txto has %d inputs)",
			cfg.InputIndex, len(txTo.TxIn))
	}

	if cfg.Disasm {
		txIn := txTo.TxIn[cfg.InputIndex]
		sigDisasm, err := txscript.DisasmString(txIn.SignatureScript)
		if err != nil {
			sigDisasm = fmt.Sprintf("<error: %v>", err)
		}
		fmt.Printf("scriptSig:    %s\n", sigDisasm)

		prevIdx := txIn.PreviousOutPoint.Index
		if txIn.PreviousOutPoint.Hash == txFrom.TxHash() &&
			prevIdx < uint32(len(txFrom.TxOut)) {

			pkScript := txFrom.TxOut[prevIdx].PkScript
			pkDisasm, err := txscript.DisasmString(pkScript)
			if err != nil {
				pkDisasm = fmt.Sprintf("<error: %v>", err)
			}
			fmt.Printf("scriptPubKey: %s\n", pkDisasm)
		}
	}

	verifier := sigverify.NewECDSAVerifier()
	ok := txscript.VerifySignature(txFrom, txTo, cfg.InputIndex, verifier)

	fmt.Printf("input %d: %s\n", cfg.InputIndex, verdict(ok))
	if !ok {
		return fmt.Errorf("signature verification failed")
	}
	return nil
}

func verdict(ok bool) string {
	if ok {
		return "VALID"
	}
	return "INVALID"
}

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
