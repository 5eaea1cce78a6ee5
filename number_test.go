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

func TestNumAdd(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		x, y hx.Number
		exp  hx.Object
	}{
		{hx.Int64(1), hx.Int64(2), hx.Int64(3)},
		{hx.Int64(1), hx.Float64(0.5), hx.Float64(1.5)},
		{hx.Float64(0.5), hx.Int64(1), hx.Float64(1.5)},
		{hx.Float64(0.5), hx.Float64(0.25), hx.Float64(0.75)},
	}
	for i, tc := range testcases {
		got := hx.NumAdd(tc.x, tc.y)
		if !got.IsEqual(tc.exp) {
			t.Errorf("%d: %v + %v expected %v, but got %v", i, tc.x, tc.y, tc.exp, got)
		}
	}
}

func TestNumDiv(t *testing.T) {
	t.Parallel()
	got, err := hx.NumDiv(hx.Int64(6), hx.Int64(3))
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsEqual(hx.Int64(2)) {
		t.Errorf("6/3 expected 2, but got %v", got)
	}
	got, err = hx.NumDiv(hx.Int64(1), hx.Int64(2))
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsEqual(hx.Float64(0.5)) {
		t.Errorf("1/2 expected 0.5, but got %v", got)
	}
	if _, err = hx.NumDiv(hx.Int64(1), hx.Int64(0)); err == nil {
		t.Error("1/0 expected an error")
	}
}

func TestNumCmp(t *testing.T) {
	t.Parallel()
	if got := hx.NumCmp(hx.Int64(1), hx.Int64(2)); got >= 0 {
		t.Errorf("1 < 2 expected, but got %d", got)
	}
	if got := hx.NumCmp(hx.Int64(2), hx.Float64(2)); got != 0 {
		t.Errorf("2 == 2.0 expected, but got %d", got)
	}
	if got := hx.NumCmp(hx.Float64(2.5), hx.Int64(2)); got <= 0 {
		t.Errorf("2.5 > 2 expected, but got %d", got)
	}
}

func TestNumNeg(t *testing.T) {
	t.Parallel()
	if got := hx.NumNeg(hx.Int64(3)); !got.IsEqual(hx.Int64(-3)) {
		t.Errorf("-3 expected, but got %v", got)
	}
	if got := hx.NumNeg(hx.Float64(0.5)); !got.IsEqual(hx.Float64(-0.5)) {
		t.Errorf("-0.5 expected, but got %v", got)
	}
}
