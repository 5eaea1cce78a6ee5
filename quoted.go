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

import (
	"io"
	"strings"
)

// Quoted wraps an arbitrary object. Evaluating a Quoted returns the wrapped
// object untouched, which makes it the canonical way to carry syntax trees
// as values.
type Quoted struct{ Obj Object }

// MakeQuoted wraps the given object.
func MakeQuoted(obj Object) Quoted { return Quoted{Obj: obj} }

// IsNil returns false, a quoted object is never nil, even if it wraps nil.
func (q Quoted) IsNil() bool { return false }

// IsAtom always returns true; the wrapping is opaque to decomposition.
func (Quoted) IsAtom() bool { return true }

// IsEqual compares two objects for equivalence.
func (q Quoted) IsEqual(other Object) bool {
	otherQ, ok := other.(Quoted)
	if !ok {
		return false
	}
	if IsNil(q.Obj) {
		return IsNil(otherQ.Obj)
	}
	return q.Obj.IsEqual(otherQ.Obj)
}

// String returns the Go string representation.
func (q Quoted) String() string {
	var sb strings.Builder
	if _, err := q.Print(&sb); err != nil {
		return err.Error()
	}
	return sb.String()
}

// Print writes the string representation to the given Writer.
func (q Quoted) Print(w io.Writer) (int, error) {
	length, err := io.WriteString(w, "'")
	if err != nil {
		return length, err
	}
	l, err := Print(w, q.Obj)
	return length + l, err
}

// GetQuoted returns the object as a Quoted if possible.
func GetQuoted(obj Object) (Quoted, bool) {
	q, ok := obj.(Quoted)
	return q, ok
}
