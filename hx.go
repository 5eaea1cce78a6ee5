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

// Package hx provides the object model of the hx expression language.
//
// The language is homoiconic: abstract syntax trees and runtime values share
// the same object universe. An evaluator therefore may hand unevaluated
// syntax around as ordinary values.
package hx

import (
	"fmt"
	"io"
)

// Object is the generic value all expressions and results must fulfill.
type Object interface {
	fmt.Stringer

	// IsNil checks if the concrete object is nil.
	IsNil() bool

	// IsAtom returns true iff the object is not further decomposable.
	IsAtom() bool

	// IsEqual compares two objects for deep equality.
	IsEqual(Object) bool
}

// IsNil returns true, if the given object is the nil object.
func IsNil(obj Object) bool { return obj == nil || obj.IsNil() }

// Printable is an object that has a specific representation, which is
// different to String().
type Printable interface {
	// Print emits the string representation on the given Writer.
	Print(io.Writer) (int, error)
}

// Print writes the string representation to an io.Writer.
func Print(w io.Writer, obj Object) (int, error) {
	if pr, ok := obj.(Printable); ok {
		return pr.Print(w)
	}
	if IsNil(obj) {
		return Nil().Print(w)
	}
	return io.WriteString(w, obj.String())
}

// Repr returns the read-eval-print representation of an object. It differs
// from String() in one point: the nil object is rendered as the empty
// string. Nil is a true value of the language, the empty rendering is just
// an ergonomic of interactive use.
func Repr(obj Object) string {
	if IsNil(obj) {
		return ""
	}
	return obj.String()
}

// Display returns the human representation of an object: strings are
// rendered without quotes and escapes, nil as the empty string. Everything
// else is rendered as with String().
func Display(obj Object) string {
	if IsNil(obj) {
		return ""
	}
	if s, ok := GetString(obj); ok {
		return s.GetValue()
	}
	return obj.String()
}
