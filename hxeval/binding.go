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
	"io"
	"strconv"

	"t73f.de/r/hx"
)

// Binding maintains a mapping between symbols and objects. Bindings form a
// tree of frames rooted at exactly one global frame.
type Binding struct {
	name   string
	parent *Binding
	vars   map[hx.Symbol]hx.Object
	global bool
}

// MakeGlobalBinding creates the global frame of an interpreter instance.
func MakeGlobalBinding(sizeHint int) *Binding {
	return &Binding{
		name:   "global",
		parent: nil,
		vars:   make(map[hx.Symbol]hx.Object, sizeHint),
		global: true,
	}
}

// MakeChildBinding creates a new empty frame with the receiver as parent.
func (b *Binding) MakeChildBinding(name string, sizeHint int) *Binding {
	if sizeHint <= 0 {
		sizeHint = 3
	}
	return &Binding{
		name:   name,
		parent: b,
		vars:   make(map[hx.Symbol]hx.Object, sizeHint),
		global: false,
	}
}

// MakeChildBindingWith creates a frame whose initial contents are the given
// mapping.
func (b *Binding) MakeChildBindingWith(name string, vars map[hx.Symbol]hx.Object) *Binding {
	if vars == nil {
		vars = make(map[hx.Symbol]hx.Object, 3)
	}
	return &Binding{name: name, parent: b, vars: vars, global: false}
}

// IsNil returns true if the binding is missing.
func (b *Binding) IsNil() bool { return b == nil }

// IsAtom returns true, a binding is not decomposable by the language.
func (b *Binding) IsAtom() bool { return true }

// IsEqual compares bindings by identity; frames are stateful objects.
func (b *Binding) IsEqual(other hx.Object) bool { return b == other }

// String returns the local name of this binding.
func (b *Binding) String() string { return b.name }

// Print writes a diagnostic representation to the given Writer.
func (b *Binding) Print(w io.Writer) (int, error) {
	length, err := io.WriteString(w, "#<binding:")
	if err != nil {
		return length, err
	}
	l, err := io.WriteString(w, b.name)
	length += l
	if err != nil {
		return length, err
	}
	l, err = io.WriteString(w, "/"+strconv.Itoa(len(b.vars))+">")
	return length + l, err
}

// Parent returns the parent frame, or nil for the global frame.
func (b *Binding) Parent() *Binding {
	if b == nil {
		return nil
	}
	return b.parent
}

// IsGlobal returns true for the global frame.
func (b *Binding) IsGlobal() bool { return b != nil && b.global }

// Global walks the parent chain and returns the global frame.
func (b *Binding) Global() *Binding {
	curr := b
	for curr.parent != nil {
		curr = curr.parent
	}
	return curr
}

// Length returns the number of symbols bound in this frame alone.
func (b *Binding) Length() int {
	if b == nil {
		return 0
	}
	return len(b.vars)
}

// Bind creates a local mapping of the given symbol to the object. A
// previous local mapping is overwritten.
func (b *Binding) Bind(sym hx.Symbol, obj hx.Object) { b.vars[sym] = obj }

// Lookup searches for a local binding of the given symbol. The search is
// not continued in the parent frame; use Resolve for that.
func (b *Binding) Lookup(sym hx.Symbol) (hx.Object, bool) {
	if b == nil {
		return nil, false
	}
	obj, found := b.vars[sym]
	return obj, found
}

// Resolve searches for the symbol in this frame and all parent frames and
// returns the first binding found.
func (b *Binding) Resolve(sym hx.Symbol) (hx.Object, bool) {
	for curr := b; curr != nil; curr = curr.parent {
		if obj, found := curr.vars[sym]; found {
			return obj, true
		}
	}
	return nil, false
}

// Assign stores the object under the symbol according to the walk-and-write
// rule:
//
//  1. If the receiver is the global frame, write there unconditionally.
//  2. Otherwise walk the parent chain. At each frame that is not the global
//     frame, an existing binding of the symbol is overwritten and the walk
//     stops.
//  3. If no non-global frame binds the symbol, bind it in the receiver.
//
// Skipping the global frame during the walk keeps inner frames from
// capturing a same-named global as "the nearest binding"; globals change
// only through an assignment that starts at the global frame itself.
func (b *Binding) Assign(sym hx.Symbol, obj hx.Object) {
	if b.global {
		b.vars[sym] = obj
		return
	}
	for curr := b; curr != nil; curr = curr.parent {
		if curr.global {
			continue
		}
		if _, found := curr.vars[sym]; found {
			curr.vars[sym] = obj
			return
		}
	}
	b.vars[sym] = obj
}

// Symbols returns the symbols bound in this frame alone, in no particular
// order.
func (b *Binding) Symbols() []hx.Symbol {
	syms := make([]hx.Symbol, 0, len(b.vars))
	for sym := range b.vars {
		syms = append(syms, sym)
	}
	return syms
}

// GetBinding returns the object as a binding if possible.
func GetBinding(obj hx.Object) (*Binding, bool) {
	if hx.IsNil(obj) {
		return nil, false
	}
	b, ok := obj.(*Binding)
	return b, ok
}
