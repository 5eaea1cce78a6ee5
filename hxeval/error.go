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

package hxeval

import (
	"fmt"
	"strings"

	"t73f.de/r/hx"
)

// NotBoundError signals that a symbol was found neither in the frame chain
// nor in the primitive bridge.
type NotBoundError struct {
	Sym   hx.Symbol
	Frame *Binding
}

func (e NotBoundError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "symbol %q not bound in ", e.Sym.Name())
	second := false
	for frame := e.Frame; frame != nil; frame = frame.Parent() {
		if second {
			sb.WriteString("->")
		}
		fmt.Fprintf(&sb, "%q", frame.String())
		second = true
	}
	return sb.String()
}

// BadCallableError signals that a callee resolved to something that cannot
// be called.
type BadCallableError struct{ Obj hx.Object }

func (e BadCallableError) Error() string {
	return fmt.Sprintf("not callable: %T/%v", e.Obj, e.Obj)
}

// InvalidGlobalError signals a global form containing a sub-expression that
// is neither an assignment nor a fexpr definition.
type InvalidGlobalError struct{ Obj hx.Object }

func (e InvalidGlobalError) Error() string {
	return fmt.Sprintf("global allows only = and := sub-expressions, but got %T/%v", e.Obj, e.Obj)
}

// MalformedFormError signals a composite node lacking the children its head
// requires.
type MalformedFormError struct {
	Form   *hx.Form
	Reason string
}

func (e MalformedFormError) Error() string {
	return fmt.Sprintf("malformed %s form: %s: %v", e.Form.Head, e.Reason, e.Form)
}

// TypeError signals a primitive that received an argument of a wrong type.
type TypeError struct {
	Expected string
	Obj      hx.Object
}

func (e TypeError) Error() string {
	return fmt.Sprintf("%s expected, but got %T/%v", e.Expected, e.Obj, e.Obj)
}
