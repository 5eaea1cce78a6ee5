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

package hx

import "io"

// NilObject signals the absence of a value. It is a true object of the
// language; only the interactive printer renders it as the empty string.
type NilObject struct{}

// Nil returns the nil object.
func Nil() NilObject { return NilObject{} }

// IsNil always returns true.
func (NilObject) IsNil() bool { return true }

// IsAtom always returns true because nil is an atomic value.
func (NilObject) IsAtom() bool { return true }

// IsEqual returns true if the other object is nil as well.
func (NilObject) IsEqual(other Object) bool { return IsNil(other) }

// String returns the Go string representation.
func (NilObject) String() string { return "nil" }

// Print writes the string representation to the given Writer.
func (NilObject) Print(w io.Writer) (int, error) { return io.WriteString(w, "nil") }
