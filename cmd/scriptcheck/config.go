// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
)

const defaultInputIndex = 0

// config defines the configuration options for scriptcheck.
//
// See loadConfig for details on the configuration load process.
type config struct {
	TxFrom     string `long:"txfrom" description:"Hex-encoded serialized transaction that contains the output being spent" required:"true"`
	TxTo       string `long:"txto" description:"Hex-encoded serialized transaction that spends txfrom" required:"true"`
	InputIndex int    `short:"i" long:"input" description:"Index of the input in txto to verify"`
	Disasm     bool   `long:"disasm" description:"Print the disassembled scriptSig and scriptPubKey before verifying"`
}

// loadConfig initializes and parses the config using command line options.
func loadConfig() (*config, []string, error) {
	cfg := config{
		InputIndex: defaultInputIndex,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	if cfg.InputIndex < 0 {
		err := fmt.Errorf("loadConfig: input index must not be negative")
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
