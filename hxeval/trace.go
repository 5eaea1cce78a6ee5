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
	"strings"

	"t73f.de/r/hx"
)

// RegisterTraceable marks a user callable as traced. Every call prints an
// entry line with the raw argument expressions and an exit line with the
// result. Registration is idempotent; the callable is returned.
func (in *Interp) RegisterTraceable(obj hx.Object) (hx.Object, error) {
	name, ok := callableName(obj)
	if !ok {
		return nil, TypeError{Expected: "function, fexpr or macro", Obj: obj}
	}
	in.traced[obj] = name
	return obj, nil
}

// IsTraced reports whether the callable is registered for tracing.
func (in *Interp) IsTraced(obj hx.Object) bool {
	_, found := in.traced[obj]
	return found
}

// traceCall wraps a normal invocation with the entry/exit lines. The
// arguments print before any evaluation, so fexprs and macros show the
// unevaluated expressions they actually receive.
func (in *Interp) traceCall(name string, callee hx.Object, rawArgs []hx.Object, callBind *Binding) (hx.Object, error) {
	fmt.Fprintf(in.out, "Calling function: %s with arguments: %s\n", name, tupleString(rawArgs))
	res, err := in.invoke(callee, rawArgs, callBind)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(in.out, "Function %s returned: %s\n", name, hx.Repr(res))
	return res, nil
}

// tupleString renders expressions the way the host renders tuples: a
// single element keeps a trailing comma.
func tupleString(objs []hx.Object) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, obj := range objs {
		if i > 0 {
			sb.WriteString(", ")
		}
		_, _ = hx.Print(&sb, obj)
	}
	if len(objs) == 1 {
		sb.WriteByte(',')
	}
	sb.WriteByte(')')
	return sb.String()
}
