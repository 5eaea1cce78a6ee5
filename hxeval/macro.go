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
	"strconv"

	"t73f.de/r/hx"
)

// Expand returns a structural copy of the given expression in which every
// interpolation node is replaced by the unevaluated object its symbol is
// bound to in the given frame. All other nodes are copied unchanged.
func (in *Interp) Expand(obj hx.Object, bind *Binding) (hx.Object, error) {
	form, ok := hx.GetForm(obj)
	if !ok {
		return obj, nil
	}
	if form.Head == hx.TagInterpolate {
		return in.Interpolate(form, bind)
	}
	args := make([]hx.Object, len(form.Args))
	for i, arg := range form.Args {
		expanded, err := in.Expand(arg, bind)
		if err != nil {
			return nil, err
		}
		args[i] = expanded
	}
	return hx.MakeForm(form.Head, args...), nil
}

// Interpolate resolves the symbol named by the last argument of the
// interpolation form, without evaluating the result.
func (in *Interp) Interpolate(form *hx.Form, bind *Binding) (hx.Object, error) {
	if len(form.Args) == 0 {
		return nil, MalformedFormError{Form: form, Reason: "symbol required"}
	}
	sym, ok := hx.GetSymbol(form.Args[len(form.Args)-1])
	if !ok {
		return nil, MalformedFormError{Form: form, Reason: "last argument must be a symbol"}
	}
	obj, found := bind.Resolve(sym)
	if !found {
		return nil, NotBoundError{Sym: sym, Frame: bind}
	}
	return obj, nil
}

// hygienePass renames the names a macro body introduces. Every symbol that
// occurs anywhere in the body and is not bound in the frame chain gets
// bound in the frame to a fresh symbol. Macro parameters and symbols that
// already resolve keep their meaning; interpolations of a renamed symbol
// then produce the fresh symbol, so a helper name introduced by the macro
// cannot clobber a same-named binding at the call site.
//
// Collecting every symbol, not only assignment targets, is over-broad but
// harmless: a symbol that is never interpolated never surfaces in the
// expansion.
func (in *Interp) hygienePass(body hx.Object, bind *Binding) {
	seen := map[hx.Symbol]struct{}{}
	collectSymbols(body, func(sym hx.Symbol) {
		if _, done := seen[sym]; done {
			return
		}
		seen[sym] = struct{}{}
		if _, found := bind.Resolve(sym); found {
			return
		}
		bind.Bind(sym, in.Gensym())
	})
}

// collectSymbols walks the expression and reports every symbol it finds.
func collectSymbols(obj hx.Object, report func(hx.Symbol)) {
	switch o := obj.(type) {
	case hx.Symbol:
		report(o)
	case hx.Quoted:
		collectSymbols(o.Obj, report)
	case *hx.Form:
		for _, arg := range o.Args {
			collectSymbols(arg, report)
		}
	}
}

// gensymPrefix makes generated symbols unreadable by the surface syntax,
// so they cannot clash with any symbol a program spells out.
const gensymPrefix = "##sym#"

// Gensym returns a fresh symbol that is unique within this interpreter
// instance.
func (in *Interp) Gensym() hx.Symbol {
	in.gensym++
	return hx.MakeSymbol(gensymPrefix + strconv.FormatUint(in.gensym, 10))
}
