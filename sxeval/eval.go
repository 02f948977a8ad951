//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of sx.
//
// sx is licensed under the latest version of the EUPL // (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2023-present Detlef Stern
//-----------------------------------------------------------------------------

package sxeval

import "github.com/sol-lang/sol"

// Eval reduces v against ctx, following the six cases of the evaluation
// rule: self-evaluating atoms return themselves; Quote unwraps once;
// Symbol resolves against ctx; the empty list self-evaluates; a non-empty
// list dispatches an application; a Vector evaluates its elements in
// order, short-circuiting on the first error.
func Eval(ctx *Context, v sx.Object) (sx.Object, error) {
	switch val := v.(type) {
	case sx.Quote:
		return val.Value, nil

	case sx.Symbol:
		return ctx.Resolve(val)

	case *sx.Pair:
		if val.IsNil() {
			return val, nil
		}
		return evalList(ctx, val)

	case sx.Vector:
		if len(val) == 0 {
			return val, nil
		}
		result := make(sx.Vector, len(val))
		for i, elem := range val {
			r, err := Eval(ctx, elem)
			if err != nil {
				return nil, err
			}
			result[i] = r
		}
		return result, nil

	default:
		// Nil, Boolean, Integer, String, *Builtin, *Function: self-evaluating.
		return v, nil
	}
}

// rawArgs collects the elements following the head of an application form,
// unevaluated.
func rawArgs(pair *sx.Pair) []sx.Object {
	var args []sx.Object
	for node := pair.Tail(); node != nil; node = node.Tail() {
		args = append(args, node.Car())
	}
	return args
}

// evalArgs evaluates each element of args in ctx, left to right, stopping
// at the first error.
func evalArgs(ctx *Context, args []sx.Object) ([]sx.Object, error) {
	result := make([]sx.Object, len(args))
	for i, arg := range args {
		v, err := Eval(ctx, arg)
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return result, nil
}

// evalList evaluates the head of a non-empty list, then dispatches the
// application per its Kind: Special builtins receive the raw argument
// slice; Primitive builtins and Function values receive arguments
// evaluated left-to-right.
func evalList(ctx *Context, pair *sx.Pair) (sx.Object, error) {
	head, err := Eval(ctx, pair.Car())
	if err != nil {
		return nil, err
	}
	args := rawArgs(pair)

	switch callee := head.(type) {
	case *Builtin:
		if err := callee.CheckArity(len(args)); err != nil {
			return nil, err
		}
		if callee.Kind == Special {
			return callee.Fn(ctx, args)
		}
		evaluated, err := evalArgs(ctx, args)
		if err != nil {
			return nil, err
		}
		return callee.Fn(ctx, evaluated)

	case *Function:
		evaluated, err := evalArgs(ctx, args)
		if err != nil {
			return nil, err
		}
		return applyFunction(ctx, callee, evaluated)

	default:
		return nil, NotAFunction{Value: head}
	}
}

// Apply invokes callee with args already evaluated, as used by the `apply`
// builtin: a Builtin's Fn is called directly regardless of Kind, since
// args are already concrete values rather than unevaluated syntax.
func Apply(ctx *Context, callee sx.Object, args []sx.Object) (sx.Object, error) {
	switch fn := callee.(type) {
	case *Builtin:
		if err := fn.CheckArity(len(args)); err != nil {
			return nil, err
		}
		return fn.Fn(ctx, args)
	case *Function:
		return applyFunction(ctx, fn, args)
	default:
		return nil, NotAFunction{Value: callee}
	}
}

// applyFunction checks arity, binds parameters as Local definitions in a
// cloned context whose current module is the function's defining module,
// and evaluates the body sequence, returning the last value.
func applyFunction(ctx *Context, fn *Function, args []sx.Object) (sx.Object, error) {
	if len(args) < len(fn.Params) {
		return nil, FnTooFewArgs{Got: len(args), Want: len(fn.Params)}
	}
	if len(args) > len(fn.Params) {
		return nil, FnTooManyArgs{Got: len(args), Want: len(fn.Params)}
	}

	child := ctx.Clone()
	child.CurrentModule = fn.Module
	for i, param := range fn.Params {
		child.Define(fn.Module, param, args[i], Local)
	}

	var result sx.Object = sx.Nil()
	for _, expr := range fn.Body {
		v, err := Eval(child, expr)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}
