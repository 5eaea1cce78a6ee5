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

package hxeval_test

import (
	"errors"
	"strings"
	"testing"

	"t73f.de/r/hx"
	"t73f.de/r/hx/hxeval"
)

func TestArithmetic(t *testing.T) {
	t.Parallel()
	in := makeInterp()
	testcases := []struct {
		src string
		exp hx.Object
	}{
		{"(+ 1 2 3)", hx.Int64(6)},
		{"(+ 1 0.5)", hx.Float64(1.5)},
		{"(- 10 1 2)", hx.Int64(7)},
		{"(- 3)", hx.Int64(-3)},
		{"(* 2 3 4)", hx.Int64(24)},
		{"(/ 6 3)", hx.Int64(2)},
		{"(/ 1 2)", hx.Float64(0.5)},
		{`(+ "foo" "bar")`, hx.MakeString("foobar")},
	}
	for i, tc := range testcases {
		got := evalString(t, in, tc.src)
		if !tc.exp.IsEqual(got) {
			t.Errorf("%d: %q expected %v, but got %v", i, tc.src, tc.exp, got)
		}
	}
}

func TestComparison(t *testing.T) {
	t.Parallel()
	in := makeInterp()
	testcases := []struct {
		src string
		exp hx.Boolean
	}{
		{"(< 1 2)", hx.True},
		{"(< 2 1)", hx.False},
		{"(< 1 2 3)", hx.True},
		{"(< 1 3 2)", hx.False},
		{"(<= 2 2)", hx.True},
		{"(> 3 2)", hx.True},
		{"(>= 2 3)", hx.False},
		{"(== 2 2)", hx.True},
		{"(== 2 2.0)", hx.True},
		{`(== "a" "a")`, hx.True},
		{`(== "a" "b")`, hx.False},
		{"(!= 1 2)", hx.True},
		{"(! true)", hx.False},
		{"(! false)", hx.True},
	}
	for i, tc := range testcases {
		got := evalString(t, in, tc.src)
		if !tc.exp.IsEqual(got) {
			t.Errorf("%d: %q expected %v, but got %v", i, tc.src, tc.exp, got)
		}
	}
}

func TestTypeErrors(t *testing.T) {
	t.Parallel()
	in := makeInterp()
	testcases := []string{
		`(+ 1 "a")`,
		`(< 1 "a")`,
		"(! 1)",
		"(push! 1 2)",
		`(append! [1] 2)`,
	}
	for i, src := range testcases {
		_, err := in.EvalText(src)
		var te hxeval.TypeError
		if !errors.As(err, &te) {
			t.Errorf("%d: %q expected a type error, but got %v", i, src, err)
		}
	}
}

func TestDivideByZero(t *testing.T) {
	t.Parallel()
	in := makeInterp()
	if _, err := in.EvalText("(/ 1 0)"); !errors.Is(err, hx.ErrDivideByZero) {
		t.Errorf("divide by zero expected, but got %v", err)
	}
}

func TestPushAppend(t *testing.T) {
	t.Parallel()
	in := makeInterp()
	evalString(t, in, "(= v [1])")
	evalString(t, in, "(push! v 2 3)")
	if got := evalString(t, in, "v"); !got.IsEqual(hx.MakeVector(hx.Int64(1), hx.Int64(2), hx.Int64(3))) {
		t.Errorf("[1, 2, 3] expected, but got %v", got)
	}
	evalString(t, in, "(append! v [4 5])")
	if got := evalString(t, in, "v"); got.(*hx.Vector).Length() != 5 {
		t.Errorf("5 elements expected, but got %v", got)
	}
}

func TestPrintln(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	in := hxeval.MakeInterp(hxeval.WithOutput(&sb))
	got := evalString(t, in, `(println "Positive" 3)`)
	if !hx.IsNil(got) {
		t.Errorf("println returns nil, but got %v", got)
	}
	if exp := "Positive 3\n"; sb.String() != exp {
		t.Errorf("%q expected, but got %q", exp, sb.String())
	}
}

// TestShadowPrimitive checks that a user binding wins over the bridge.
func TestShadowPrimitive(t *testing.T) {
	t.Parallel()
	in := makeInterp()
	evalString(t, in, "(= (println x) x)")
	if got := evalString(t, in, "(println 9)"); !got.IsEqual(hx.Int64(9)) {
		t.Errorf("the user function shadows the primitive, 9 expected, but got %v", got)
	}
}
