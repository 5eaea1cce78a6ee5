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
	"fmt"

	"t73f.de/r/hx"
	"t73f.de/r/zero/set"
)

// procedure is the shared shape of the three user-defined callables: a
// name, a parameter list, an unevaluated body, and the captured definition
// scope. The scope is a fresh frame extending the defining environment,
// allocated once when the callable is constructed; every invocation later
// extends it again, so recursive calls cannot clobber each other.
type procedure struct {
	Name   string
	Params []hx.Symbol
	Body   hx.Object
	Scope  *Binding
}

func makeProcedure(name string, params []hx.Symbol, body hx.Object, defBind *Binding) (procedure, error) {
	if set.New(params...).Length() != len(params) {
		return procedure{}, fmt.Errorf("duplicate parameter in definition of %q", name)
	}
	return procedure{
		Name:   name,
		Params: params,
		Body:   body,
		Scope:  defBind.MakeChildBinding(name+"-def", len(params)),
	}, nil
}

// Function is a user-defined callable with eager argument evaluation.
type Function struct{ procedure }

// IsNil returns true if the function is missing.
func (f *Function) IsNil() bool { return f == nil }

// IsAtom returns true, a function is not decomposable.
func (f *Function) IsAtom() bool { return true }

// IsEqual compares callables by identity.
func (f *Function) IsEqual(other hx.Object) bool { return f == other }

// String returns the user-visible rendering.
func (f *Function) String() string { return "<function>" }

// MakeFunction creates a function with the given parameters and body,
// capturing the defining environment.
func MakeFunction(name string, params []hx.Symbol, body hx.Object, defBind *Binding) (*Function, error) {
	proc, err := makeProcedure(name, params, body, defBind)
	if err != nil {
		return nil, err
	}
	return &Function{proc}, nil
}

// FExpr is a user-defined callable whose parameters are bound to the
// unevaluated argument expressions.
type FExpr struct{ procedure }

// IsNil returns true if the fexpr is missing.
func (f *FExpr) IsNil() bool { return f == nil }

// IsAtom returns true, a fexpr is not decomposable.
func (f *FExpr) IsAtom() bool { return true }

// IsEqual compares callables by identity.
func (f *FExpr) IsEqual(other hx.Object) bool { return f == other }

// String returns the user-visible rendering.
func (f *FExpr) String() string { return "<fexpr>" }

// MakeFExpr creates a fexpr with the given parameters and body, capturing
// the defining environment.
func MakeFExpr(name string, params []hx.Symbol, body hx.Object, defBind *Binding) (*FExpr, error) {
	proc, err := makeProcedure(name, params, body, defBind)
	if err != nil {
		return nil, err
	}
	return &FExpr{proc}, nil
}

// Macro is a user-defined callable whose body is expanded against the
// unevaluated arguments; the expansion is then evaluated in the caller's
// environment.
type Macro struct{ procedure }

// IsNil returns true if the macro is missing.
func (m *Macro) IsNil() bool { return m == nil }

// IsAtom returns true, a macro is not decomposable.
func (m *Macro) IsAtom() bool { return true }

// IsEqual compares callables by identity.
func (m *Macro) IsEqual(other hx.Object) bool { return m == other }

// String returns the user-visible rendering.
func (m *Macro) String() string { return "<macro>" }

// MakeMacro creates a macro with the given parameters and body, capturing
// the defining environment.
func MakeMacro(name string, params []hx.Symbol, body hx.Object, defBind *Binding) (*Macro, error) {
	proc, err := makeProcedure(name, params, body, defBind)
	if err != nil {
		return nil, err
	}
	return &Macro{proc}, nil
}

// CallScopedEval is the value bound to the symbol eval inside a running
// fexpr body. DefBind is the fexpr's invocation frame, CallBind the
// caller's environment.
type CallScopedEval struct {
	DefBind  *Binding
	CallBind *Binding
}

// IsNil returns true if the object is missing.
func (c *CallScopedEval) IsNil() bool { return c == nil }

// IsAtom returns true, the object is not decomposable.
func (c *CallScopedEval) IsAtom() bool { return true }

// IsEqual compares by identity.
func (c *CallScopedEval) IsEqual(other hx.Object) bool { return c == other }

// String returns the user-visible rendering. The value behaves like a
// function of one argument, so it prints as one.
func (c *CallScopedEval) String() string { return "<function>" }

// HostCallable wraps a host operator surfaced through the primitive bridge.
type HostCallable struct {
	Name string
	Fn   func(in *Interp, args []hx.Object) (hx.Object, error)
}

// IsNil returns true if the callable is missing.
func (hc *HostCallable) IsNil() bool { return hc == nil }

// IsAtom returns true, the callable is not decomposable.
func (hc *HostCallable) IsAtom() bool { return true }

// IsEqual compares by identity.
func (hc *HostCallable) IsEqual(other hx.Object) bool { return hc == other }

// String returns the user-visible rendering.
func (hc *HostCallable) String() string { return "<function>" }

// callableName returns the bound name of a user callable, for tracing.
func callableName(obj hx.Object) (string, bool) {
	switch c := obj.(type) {
	case *Function:
		return c.Name, true
	case *FExpr:
		return c.Name, true
	case *Macro:
		return c.Name, true
	}
	return "", false
}
