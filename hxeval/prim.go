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
	"errors"
	"fmt"
	"io"

	"t73f.de/r/hx"
)

// The primitive bridge. A symbol that is unbound in the frame chain but
// listed here resolves to a host callable. A user binding of the same name
// shadows the primitive.

// ErrNoArgs is returned when a primitive requires at least one argument.
var ErrNoArgs = errors.New("argument required")

func makePrims() map[hx.Symbol]*HostCallable {
	prims := map[hx.Symbol]*HostCallable{}
	add := func(name string, fn func(*Interp, []hx.Object) (hx.Object, error)) {
		sym := hx.MakeSymbol(name)
		prims[sym] = &HostCallable{Name: name, Fn: fn}
	}

	add("+", primAdd)
	add("-", primSub)
	add("*", primMul)
	add("/", primDiv)
	add("==", primEqual)
	add("!=", primNotEqual)
	add("<", cmpPrim(func(res int) bool { return res < 0 }))
	add("<=", cmpPrim(func(res int) bool { return res <= 0 }))
	add(">", cmpPrim(func(res int) bool { return res > 0 }))
	add(">=", cmpPrim(func(res int) bool { return res >= 0 }))
	add("!", primNot)
	add("push!", primPush)
	add("append!", primAppend)
	add("println", primPrintln)
	add("register_traceable", primRegisterTraceable)
	return prims
}

// getNumber reads an argument as a number.
func getNumber(args []hx.Object, i int) (hx.Number, error) {
	if num, ok := hx.GetNumber(args[i]); ok {
		return num, nil
	}
	return nil, TypeError{Expected: "number", Obj: args[i]}
}

// primAdd adds numbers or concatenates strings.
func primAdd(_ *Interp, args []hx.Object) (hx.Object, error) {
	if len(args) == 0 {
		return nil, ErrNoArgs
	}
	if s, ok := hx.GetString(args[0]); ok {
		val := s.GetValue()
		for _, arg := range args[1:] {
			other, ok2 := hx.GetString(arg)
			if !ok2 {
				return nil, TypeError{Expected: "string", Obj: arg}
			}
			val += other.GetValue()
		}
		return hx.MakeString(val), nil
	}
	acc, err := getNumber(args, 0)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(args); i++ {
		num, err2 := getNumber(args, i)
		if err2 != nil {
			return nil, err2
		}
		acc = hx.NumAdd(acc, num)
	}
	return acc, nil
}

// primSub negates a single number, or folds subtraction left to right.
func primSub(_ *Interp, args []hx.Object) (hx.Object, error) {
	if len(args) == 0 {
		return nil, ErrNoArgs
	}
	acc, err := getNumber(args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return hx.NumNeg(acc), nil
	}
	for i := 1; i < len(args); i++ {
		num, err2 := getNumber(args, i)
		if err2 != nil {
			return nil, err2
		}
		acc = hx.NumSub(acc, num)
	}
	return acc, nil
}

func primMul(_ *Interp, args []hx.Object) (hx.Object, error) {
	if len(args) == 0 {
		return nil, ErrNoArgs
	}
	acc, err := getNumber(args, 0)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(args); i++ {
		num, err2 := getNumber(args, i)
		if err2 != nil {
			return nil, err2
		}
		acc = hx.NumMul(acc, num)
	}
	return acc, nil
}

func primDiv(_ *Interp, args []hx.Object) (hx.Object, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("/ requires two arguments, but got %d", len(args))
	}
	x, err := getNumber(args, 0)
	if err != nil {
		return nil, err
	}
	y, err := getNumber(args, 1)
	if err != nil {
		return nil, err
	}
	return hx.NumDiv(x, y)
}

// primEqual compares by deep object equality.
func primEqual(_ *Interp, args []hx.Object) (hx.Object, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("== requires two arguments, but got %d", len(args))
	}
	return hx.MakeBoolean(objectsEqual(args[0], args[1])), nil
}

func primNotEqual(_ *Interp, args []hx.Object) (hx.Object, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("!= requires two arguments, but got %d", len(args))
	}
	return hx.MakeBoolean(!objectsEqual(args[0], args[1])), nil
}

func objectsEqual(x, y hx.Object) bool {
	if hx.IsNil(x) {
		return hx.IsNil(y)
	}
	if nx, ok := hx.GetNumber(x); ok {
		ny, ok2 := hx.GetNumber(y)
		return ok2 && hx.NumCmp(nx, ny) == 0
	}
	return x.IsEqual(y)
}

// cmpPrim folds a numeric comparison over the arguments.
func cmpPrim(cmpFn func(int) bool) func(*Interp, []hx.Object) (hx.Object, error) {
	return func(_ *Interp, args []hx.Object) (hx.Object, error) {
		if len(args) < 2 {
			return nil, fmt.Errorf("comparison requires two arguments, but got %d", len(args))
		}
		acc, err := getNumber(args, 0)
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(args); i++ {
			num, err2 := getNumber(args, i)
			if err2 != nil {
				return nil, err2
			}
			if !cmpFn(hx.NumCmp(acc, num)) {
				return hx.False, nil
			}
			acc = num
		}
		return hx.True, nil
	}
}

func primNot(_ *Interp, args []hx.Object) (hx.Object, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("! requires one argument, but got %d", len(args))
	}
	b, ok := hx.GetBoolean(args[0])
	if !ok {
		return nil, TypeError{Expected: "boolean", Obj: args[0]}
	}
	return hx.MakeBoolean(!bool(b)), nil
}

// primPush appends the given elements to the vector, in place.
func primPush(_ *Interp, args []hx.Object) (hx.Object, error) {
	if len(args) == 0 {
		return nil, ErrNoArgs
	}
	vec, ok := hx.GetVector(args[0])
	if !ok {
		return nil, TypeError{Expected: "vector", Obj: args[0]}
	}
	vec.Append(args[1:]...)
	return vec, nil
}

// primAppend appends all elements of the argument vectors to the first
// vector, in place.
func primAppend(_ *Interp, args []hx.Object) (hx.Object, error) {
	if len(args) == 0 {
		return nil, ErrNoArgs
	}
	vec, ok := hx.GetVector(args[0])
	if !ok {
		return nil, TypeError{Expected: "vector", Obj: args[0]}
	}
	for _, arg := range args[1:] {
		other, ok2 := hx.GetVector(arg)
		if !ok2 {
			return nil, TypeError{Expected: "vector", Obj: arg}
		}
		vec.Append(other.Values()...)
	}
	return vec, nil
}

// primPrintln writes the display rendering of each argument, separated by
// spaces, followed by a newline.
func primPrintln(in *Interp, args []hx.Object) (hx.Object, error) {
	for i, arg := range args {
		if i > 0 {
			if _, err := io.WriteString(in.out, " "); err != nil {
				return nil, err
			}
		}
		if _, err := io.WriteString(in.out, hx.Display(arg)); err != nil {
			return nil, err
		}
	}
	if _, err := io.WriteString(in.out, "\n"); err != nil {
		return nil, err
	}
	return hx.Nil(), nil
}

func primRegisterTraceable(in *Interp, args []hx.Object) (hx.Object, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("register_traceable requires one argument, but got %d", len(args))
	}
	return in.RegisterTraceable(args[0])
}
