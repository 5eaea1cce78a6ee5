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

// Package hxeval evaluates hx expression trees against environment frames.
//
// The evaluator is a synchronous tree walker. Every step either completes
// with an object, delegates recursively, or fails with an error that
// unwinds to the caller.
package hxeval

import (
	"io"
	"log/slog"
	"os"

	"t73f.de/r/hx"
	"t73f.de/r/hx/hxreader"
)

// symEval is the symbol bound inside a running fexpr body.
var symEval = hx.MakeSymbol("eval")

// Interp is one interpreter instance: the global frame, the primitive
// bridge, the trace table, and the fresh-symbol counter.
type Interp struct {
	globals *Binding
	out     io.Writer
	logger  *slog.Logger
	prims   map[hx.Symbol]*HostCallable
	traced  map[hx.Object]string
	gensym  uint64
}

// Option modifies the default interpreter when it is made.
type Option func(*Interp)

// WithOutput sets the writer that println and call tracing write to.
func WithOutput(w io.Writer) Option {
	return func(in *Interp) { in.out = w }
}

// WithLogger sets a logger for debug events (definitions, expansions).
func WithLogger(logger *slog.Logger) Option {
	return func(in *Interp) { in.logger = logger }
}

// MakeInterp creates an interpreter with a fresh global frame.
func MakeInterp(opts ...Option) *Interp {
	in := &Interp{
		globals: MakeGlobalBinding(64),
		out:     os.Stdout,
		traced:  map[hx.Object]string{},
	}
	in.prims = makePrims()
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Globals returns the global frame of this interpreter instance.
func (in *Interp) Globals() *Binding { return in.globals }

// Output returns the writer that println and call tracing write to.
func (in *Interp) Output() io.Writer { return in.out }

// EvalText parses the given text and evaluates every form against the
// global frame. The result is the object of the last form.
func (in *Interp) EvalText(text string) (hx.Object, error) {
	return in.EvalTextIn(text, in.globals)
}

// EvalTextIn parses the given text and evaluates every form in the given
// frame.
func (in *Interp) EvalTextIn(text string, bind *Binding) (hx.Object, error) {
	objs, err := hxreader.ReadAllString(text)
	if err != nil {
		return nil, err
	}
	last := hx.Object(hx.Nil())
	for _, obj := range objs {
		if last, err = in.Eval(obj, bind); err != nil {
			return nil, err
		}
	}
	return last, nil
}

// Eval computes the given expression in the given frame.
func (in *Interp) Eval(obj hx.Object, bind *Binding) (hx.Object, error) {
	switch o := obj.(type) {
	case nil, hx.NilObject:
		return hx.Nil(), nil
	case hx.LineMarker:
		return hx.Nil(), nil
	case hx.Quoted:
		if hx.IsNil(o.Obj) {
			return hx.Nil(), nil
		}
		return o.Obj, nil
	case hx.Symbol:
		return in.resolveSymbol(o, bind)
	case *hx.Form:
		return in.evalForm(o, bind)
	default:
		// Numbers, strings, booleans, vectors and callables are
		// self-evaluating.
		return obj, nil
	}
}

// resolveSymbol looks a symbol up in the frame chain, falling back to the
// primitive bridge for unbound symbols.
func (in *Interp) resolveSymbol(sym hx.Symbol, bind *Binding) (hx.Object, error) {
	if obj, found := bind.Resolve(sym); found {
		return obj, nil
	}
	if hc, found := in.prims[sym]; found {
		return hc, nil
	}
	return nil, NotBoundError{Sym: sym, Frame: bind}
}

func (in *Interp) evalForm(form *hx.Form, bind *Binding) (hx.Object, error) {
	switch form.Head {
	case hx.TagCall:
		return in.evalCall(form, bind)
	case hx.TagIf, hx.TagElseif:
		return in.evalIf(form, bind)
	case hx.TagAnd:
		return in.evalAnd(form, bind)
	case hx.TagOr:
		return in.evalOr(form, bind)
	case hx.TagBlock, hx.TagToplevel:
		return in.evalSeq(form.Args, bind)
	case hx.TagAssign:
		return in.evalAssign(form, bind, bind)
	case hx.TagLet:
		return in.evalLet(form, bind)
	case hx.TagFExprDef:
		return in.evalFExprDef(form, bind, bind)
	case hx.TagMacroDef:
		return in.evalMacroDef(form, bind)
	case hx.TagGlobal:
		return in.evalGlobal(form, bind)
	case hx.TagLambda:
		return in.evalLambda(form, bind)
	case hx.TagQuote:
		// Quote evaluates its content and returns the last result. This
		// matches (quote sym) == resolved sym; programs that need the
		// verbatim tree wrap it in a Quoted atom instead.
		return in.evalSeq(form.Args, bind)
	case hx.TagInterpolate:
		return in.evalInterpolate(form, bind)
	default:
		// An unknown head map-evaluates its arguments.
		vals, err := in.evalArgs(form.Args, bind)
		if err != nil {
			return nil, err
		}
		return hx.MakeVector(vals...), nil
	}
}

// evalSeq evaluates the expressions in order and returns the last result;
// an empty sequence yields nil.
func (in *Interp) evalSeq(args []hx.Object, bind *Binding) (hx.Object, error) {
	last := hx.Object(hx.Nil())
	for _, arg := range args {
		var err error
		if last, err = in.Eval(arg, bind); err != nil {
			return nil, err
		}
	}
	return last, nil
}

// evalArgs evaluates the expressions in order and collects the results.
func (in *Interp) evalArgs(args []hx.Object, bind *Binding) ([]hx.Object, error) {
	vals := make([]hx.Object, len(args))
	for i, arg := range args {
		val, err := in.Eval(arg, bind)
		if err != nil {
			return nil, err
		}
		vals[i] = val
	}
	return vals, nil
}

func (in *Interp) evalIf(form *hx.Form, bind *Binding) (hx.Object, error) {
	if len(form.Args) < 2 {
		return nil, MalformedFormError{Form: form, Reason: "condition and consequent required"}
	}
	cond, err := in.Eval(form.Args[0], bind)
	if err != nil {
		return nil, err
	}
	if hx.IsTrue(cond) {
		return in.Eval(form.Args[1], bind)
	}
	if len(form.Args) > 2 {
		return in.Eval(form.Args[2], bind)
	}
	return hx.False, nil
}

// evalAnd evaluates left to right and stops at the first literal false.
// The result is not coerced: a conjunction of non-false values yields the
// last value.
func (in *Interp) evalAnd(form *hx.Form, bind *Binding) (hx.Object, error) {
	last := hx.Object(hx.True)
	for _, arg := range form.Args {
		val, err := in.Eval(arg, bind)
		if err != nil {
			return nil, err
		}
		if hx.IsFalse(val) {
			return hx.False, nil
		}
		last = val
	}
	return last, nil
}

// evalOr evaluates left to right and returns the first value that is not
// the literal false.
func (in *Interp) evalOr(form *hx.Form, bind *Binding) (hx.Object, error) {
	for _, arg := range form.Args {
		val, err := in.Eval(arg, bind)
		if err != nil {
			return nil, err
		}
		if !hx.IsFalse(val) {
			return val, nil
		}
	}
	return hx.False, nil
}

// evalAssign handles the two assignment shapes: binding a symbol to the
// evaluated right side, and the sugared function definition f(params) = body.
// The binding goes to storing, which differs from bind inside a global form.
func (in *Interp) evalAssign(form *hx.Form, bind, storing *Binding) (hx.Object, error) {
	if len(form.Args) != 2 {
		return nil, MalformedFormError{Form: form, Reason: "left and right side required"}
	}
	lhs, rhs := form.Args[0], form.Args[1]
	if call, ok := hx.GetTaggedForm(lhs, hx.TagCall); ok {
		name, params, err := parseCallHead(call)
		if err != nil {
			return nil, err
		}
		fn, err := MakeFunction(name.Name(), params, rhs, bind)
		if err != nil {
			return nil, err
		}
		storing.Assign(name, fn)
		in.logDefine("function", name, storing)
		return fn, nil
	}
	sym, ok := hx.GetSymbol(lhs)
	if !ok {
		return nil, MalformedFormError{Form: form, Reason: "left side must be a symbol or a call form"}
	}
	val, err := in.Eval(rhs, bind)
	if err != nil {
		return nil, err
	}
	storing.Assign(sym, val)
	return val, nil
}

func (in *Interp) evalLet(form *hx.Form, bind *Binding) (hx.Object, error) {
	child := bind.MakeChildBinding("let", len(form.Args))
	if len(form.Args) == 0 {
		return hx.Nil(), nil
	}
	for _, arg := range form.Args[:len(form.Args)-1] {
		if _, err := in.Eval(arg, child); err != nil {
			return nil, err
		}
	}
	return in.Eval(form.Args[len(form.Args)-1], child)
}

func (in *Interp) evalFExprDef(form *hx.Form, bind, storing *Binding) (hx.Object, error) {
	name, params, body, err := parseDefForm(form)
	if err != nil {
		return nil, err
	}
	fx, err := MakeFExpr(name.Name(), params, body, bind)
	if err != nil {
		return nil, err
	}
	storing.Assign(name, fx)
	in.logDefine("fexpr", name, storing)
	return fx, nil
}

func (in *Interp) evalMacroDef(form *hx.Form, bind *Binding) (hx.Object, error) {
	name, params, body, err := parseDefForm(form)
	if err != nil {
		return nil, err
	}
	m, err := MakeMacro(name.Name(), params, body, bind)
	if err != nil {
		return nil, err
	}
	bind.Assign(name, m)
	in.logDefine("macro", name, bind)
	return m, nil
}

// evalGlobal routes the sub-assignments of a global form to the global
// frame. Only = and := sub-expressions are allowed.
func (in *Interp) evalGlobal(form *hx.Form, bind *Binding) (hx.Object, error) {
	last := hx.Object(hx.Nil())
	for _, sub := range form.Args {
		subForm, ok := hx.GetForm(sub)
		if !ok {
			return nil, InvalidGlobalError{Obj: sub}
		}
		var err error
		switch subForm.Head {
		case hx.TagAssign:
			last, err = in.evalAssign(subForm, bind, in.globals)
		case hx.TagFExprDef:
			last, err = in.evalFExprDef(subForm, bind, in.globals)
		default:
			return nil, InvalidGlobalError{Obj: sub}
		}
		if err != nil {
			return nil, err
		}
	}
	return last, nil
}

// lambdaName is the name anonymous functions carry.
const lambdaName = "lambda"

func (in *Interp) evalLambda(form *hx.Form, bind *Binding) (hx.Object, error) {
	if len(form.Args) < 1 {
		return nil, MalformedFormError{Form: form, Reason: "body required"}
	}
	params, err := parseParams(form, form.Args[:len(form.Args)-1])
	if err != nil {
		return nil, err
	}
	return MakeFunction(lambdaName, params, form.Args[len(form.Args)-1], bind)
}

// evalInterpolate handles a stand-alone interpolation at evaluation time:
// the unevaluated object bound to the named symbol.
func (in *Interp) evalInterpolate(form *hx.Form, bind *Binding) (hx.Object, error) {
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

// evalCall implements the call protocol.
func (in *Interp) evalCall(form *hx.Form, bind *Binding) (hx.Object, error) {
	if len(form.Args) == 0 {
		return nil, MalformedFormError{Form: form, Reason: "callee required"}
	}
	callee, err := in.Eval(form.Args[0], bind)
	if err != nil {
		return nil, err
	}
	rawArgs := form.Args[1:]
	switch c := callee.(type) {
	case *CallScopedEval:
		if len(rawArgs) == 0 {
			return nil, MalformedFormError{Form: form, Reason: "eval requires an argument"}
		}
		return in.callScoped(c, rawArgs[0])
	case *HostCallable:
		vals, err2 := in.evalArgs(rawArgs, bind)
		if err2 != nil {
			return nil, err2
		}
		return c.Fn(in, vals)
	case *Function, *FExpr, *Macro:
		if name, isTraced := in.traced[callee]; isTraced {
			return in.traceCall(name, callee, rawArgs, bind)
		}
		return in.invoke(callee, rawArgs, bind)
	default:
		return nil, BadCallableError{Obj: callee}
	}
}

// invoke runs a user callable. Parameters are bound in a fresh child of
// the captured scope, so recursive calls see their own frame.
func (in *Interp) invoke(callee hx.Object, rawArgs []hx.Object, callBind *Binding) (hx.Object, error) {
	switch f := callee.(type) {
	case *Function:
		vals, err := in.evalArgs(rawArgs, callBind)
		if err != nil {
			return nil, err
		}
		frame := f.Scope.MakeChildBinding(f.Name, len(f.Params))
		assignParams(frame, f.Params, vals)
		return in.Eval(f.Body, frame)
	case *FExpr:
		frame := f.Scope.MakeChildBinding(f.Name, len(f.Params)+1)
		frame.Bind(symEval, &CallScopedEval{DefBind: frame, CallBind: callBind})
		assignParams(frame, f.Params, rawArgs)
		return in.Eval(f.Body, frame)
	case *Macro:
		frame := f.Scope.MakeChildBinding(f.Name, len(f.Params))
		assignParams(frame, f.Params, rawArgs)
		in.hygienePass(f.Body, frame)
		expanded, err := in.Expand(f.Body, frame)
		if err != nil {
			return nil, err
		}
		if in.logger != nil {
			in.logger.Debug("macro expanded", "macro", f.Name, "expansion", expanded.String())
		}
		return in.Eval(expanded, callBind)
	}
	return nil, BadCallableError{Obj: callee}
}

// callScoped implements eval inside a fexpr. If the invocation frame holds
// only the eval binding itself, the argument already lives in the caller's
// world and is evaluated there directly. Otherwise the argument is first
// resolved in the fexpr's frame, which yields the unevaluated expression
// the caller passed, and that expression is then evaluated in the caller's
// frame.
func (in *Interp) callScoped(c *CallScopedEval, arg hx.Object) (hx.Object, error) {
	if c.DefBind.Length() == 1 {
		return in.Eval(arg, c.CallBind)
	}
	inner, err := in.Eval(arg, c.DefBind)
	if err != nil {
		return nil, err
	}
	return in.Eval(inner, c.CallBind)
}

// assignParams binds parameters via the assignment rule of the frame.
// Missing arguments leave the parameter bound to nil; extra arguments are
// ignored.
func assignParams(frame *Binding, params []hx.Symbol, args []hx.Object) {
	for i, param := range params {
		if i < len(args) {
			frame.Assign(param, args[i])
		} else {
			frame.Assign(param, hx.Nil())
		}
	}
}

// parseDefForm splits a definition form (:= or $=) into name, parameters
// and body.
func parseDefForm(form *hx.Form) (hx.Symbol, []hx.Symbol, hx.Object, error) {
	if len(form.Args) != 2 {
		return "", nil, nil, MalformedFormError{Form: form, Reason: "head and body required"}
	}
	call, ok := hx.GetTaggedForm(form.Args[0], hx.TagCall)
	if !ok {
		return "", nil, nil, MalformedFormError{Form: form, Reason: "head must be a call form"}
	}
	name, params, err := parseCallHead(call)
	if err != nil {
		return "", nil, nil, err
	}
	return name, params, form.Args[1], nil
}

// parseCallHead reads a call form as a definition head: a name symbol
// followed by parameter symbols.
func parseCallHead(call *hx.Form) (hx.Symbol, []hx.Symbol, error) {
	if len(call.Args) == 0 {
		return "", nil, MalformedFormError{Form: call, Reason: "name required"}
	}
	name, ok := hx.GetSymbol(call.Args[0])
	if !ok {
		return "", nil, MalformedFormError{Form: call, Reason: "name must be a symbol"}
	}
	params, err := parseParams(call, call.Args[1:])
	if err != nil {
		return "", nil, err
	}
	return name, params, nil
}

func parseParams(form *hx.Form, objs []hx.Object) ([]hx.Symbol, error) {
	params := make([]hx.Symbol, len(objs))
	for i, obj := range objs {
		sym, ok := hx.GetSymbol(obj)
		if !ok {
			return nil, MalformedFormError{Form: form, Reason: "parameter must be a symbol"}
		}
		params[i] = sym
	}
	return params, nil
}

func (in *Interp) logDefine(kind string, name hx.Symbol, storing *Binding) {
	if in.logger != nil {
		in.logger.Debug("define", "kind", kind, "name", name.Name(), "frame", storing.String())
	}
}
