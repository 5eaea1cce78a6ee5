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

func TestIsNil(t *testing.T) {
	t.Parallel()
	if !hx.IsNil(nil) {
		t.Error("nil must be nil")
	}
	if !hx.IsNil(hx.Nil()) {
		t.Error("Nil() must be nil")
	}
	if hx.IsNil(hx.Int64(0)) {
		t.Error("0 must not be nil")
	}
	if hx.IsNil(hx.MakeString("")) {
		t.Error("the empty string must not be nil")
	}
	if hx.IsNil(hx.False) {
		t.Error("false must not be nil")
	}
}

func TestRepr(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		obj hx.Object
		exp string
	}{
		{nil, ""},
		{hx.Nil(), ""},
		{hx.Int64(17), "17"},
		{hx.Float64(2.5), "2.5"},
		{hx.MakeString("a\"b"), `"a\"b"`},
		{hx.True, "true"},
		{hx.False, "false"},
		{hx.MakeSymbol("abc"), "abc"},
		{hx.MakeQuoted(hx.MakeSymbol("x")), "'x"},
		{hx.MakeLineMarker(3), "#<line:3>"},
	}
	for i, tc := range testcases {
		if got := hx.Repr(tc.obj); got != tc.exp {
			t.Errorf("%d: Repr(%v) expected %q, but got %q", i, tc.obj, tc.exp, got)
		}
	}
}

func TestDisplay(t *testing.T) {
	t.Parallel()
	if got := hx.Display(hx.MakeString("a b")); got != "a b" {
		t.Errorf("strings display raw, expected %q, but got %q", "a b", got)
	}
	if got := hx.Display(hx.Nil()); got != "" {
		t.Errorf("nil displays empty, but got %q", got)
	}
	if got := hx.Display(hx.Int64(-3)); got != "-3" {
		t.Errorf("-3 expected, but got %q", got)
	}
}

func TestIsTrueIsFalse(t *testing.T) {
	t.Parallel()
	if hx.IsTrue(hx.Nil()) {
		t.Error("nil must not be true")
	}
	if hx.IsTrue(hx.False) {
		t.Error("false must not be true")
	}
	if !hx.IsTrue(hx.Int64(0)) {
		t.Error("0 is a true value")
	}
	if !hx.IsTrue(hx.MakeString("")) {
		t.Error("the empty string is a true value")
	}
	if !hx.IsFalse(hx.False) {
		t.Error("false is the literal false")
	}
	if hx.IsFalse(hx.Nil()) {
		t.Error("nil is not the literal false")
	}
	if hx.IsFalse(hx.Int64(0)) {
		t.Error("0 is not the literal false")
	}
}
