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

package hx_test

import (
	"testing"

	"t73f.de/r/hx"
)

func TestFormString(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		form *hx.Form
		exp  string
	}{
		{hx.MakeForm(hx.TagIf, hx.MakeSymbol("c"), hx.Int64(1), hx.Int64(2)), "(if c 1 2)"},
		{hx.MakeCall(hx.MakeSymbol("f"), hx.Int64(1)), "(f 1)"},
		{hx.MakeCall(hx.MakeSymbol("f")), "(f)"},
		{hx.MakeForm(hx.TagBlock), "(begin)"},
		{
			hx.MakeForm(hx.TagAssign, hx.MakeSymbol("x"),
				hx.MakeCall(hx.MakeSymbol("+"), hx.MakeSymbol("x"), hx.Int64(1))),
			"(= x (+ x 1))",
		},
	}
	for i, tc := range testcases {
		if got := tc.form.String(); got != tc.exp {
			t.Errorf("%d: %q expected, but got %q", i, tc.exp, got)
		}
	}
}

func TestFormIsEqual(t *testing.T) {
	t.Parallel()
	mk := func() *hx.Form {
		return hx.MakeCall(hx.MakeSymbol("+"), hx.Int64(1), hx.Int64(2))
	}
	if !mk().IsEqual(mk()) {
		t.Error("structurally equal forms must be equal")
	}
	if mk().IsEqual(hx.MakeCall(hx.MakeSymbol("+"), hx.Int64(1))) {
		t.Error("forms with different argument counts must not be equal")
	}
	if mk().IsEqual(hx.MakeForm(hx.TagAnd, hx.Int64(1), hx.Int64(2))) {
		t.Error("forms with different heads must not be equal")
	}
}

func TestGetTaggedForm(t *testing.T) {
	t.Parallel()
	form := hx.MakeForm(hx.TagLet, hx.MakeSymbol("x"))
	if _, ok := hx.GetTaggedForm(form, hx.TagLet); !ok {
		t.Error("let form expected")
	}
	if _, ok := hx.GetTaggedForm(form, hx.TagIf); ok {
		t.Error("form is not an if form")
	}
	if _, ok := hx.GetTaggedForm(hx.MakeSymbol("let"), hx.TagLet); ok {
		t.Error("a symbol is not a form")
	}
}

func TestVector(t *testing.T) {
	t.Parallel()
	vec := hx.MakeVector(hx.Int64(1))
	same := vec
	vec.Append(hx.MakeString("x"), hx.False)
	if got := same.Length(); got != 3 {
		t.Errorf("append must be visible through every reference, length 3 expected, but got %d", got)
	}
	if got := vec.String(); got != `[1, "x", false]` {
		t.Errorf("vector rendering expected %q, but got %q", `[1, "x", false]`, got)
	}
	if !vec.IsEqual(hx.MakeVector(hx.Int64(1), hx.MakeString("x"), hx.False)) {
		t.Error("vectors with the same content must be equal")
	}
}
