//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of hx.
//
// hx is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2024-present Detlef Stern
//-----------------------------------------------------------------------------

// Package main provides the interactive interpreter for hx.
//
// Input is read line at a time; a blank line terminates a logical input,
// which is then evaluated form by form against the global frame.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"t73f.de/r/hx"
	"t73f.de/r/hx/hxeval"
)

const prompt = ">> "

var (
	banner   = color.New(color.FgCyan)
	errPrint = color.New(color.FgRed)
)

func main() {
	rl, err := readline.New(prompt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to set up input: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	banner.Fprintln(os.Stdout, "hx interpreter")
	in := hxeval.MakeInterp(hxeval.WithOutput(os.Stdout))
	repl(rl, in)
}

func repl(rl *readline.Instance, in *hxeval.Interp) {
	for {
		text, done := readInput(rl)
		if done {
			return
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		res, err := in.EvalText(text)
		if err != nil {
			errPrint.Fprintln(os.Stdout, err.Error())
			continue
		}
		if repr := hx.Repr(res); repr != "" {
			fmt.Fprintln(os.Stdout, repr)
		}
	}
}

// readInput assembles one logical input: lines up to a blank line or the
// end of the stream. The second result is true when the stream is done.
func readInput(rl *readline.Instance) (string, bool) {
	var sb strings.Builder
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			return "", false
		}
		if err == io.EOF {
			return sb.String(), sb.Len() == 0
		}
		if err != nil {
			errPrint.Fprintln(os.Stdout, err.Error())
			return "", true
		}
		if strings.TrimSpace(line) == "" {
			return sb.String(), false
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
}
