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

package sxbuiltins

import (
	"math"

	"github.com/sol-lang/sol"
	"github.com/sol-lang/sol/sxeval"
)

func integers(name string, args []sx.Object) ([]int64, error) {
	vals := make([]int64, len(args))
	for i, a := range args {
		n, ok := sx.GetInteger(a)
		if !ok {
			return nil, sxeval.BuiltinBadArg{Name: name, Arg: a}
		}
		vals[i] = int64(n)
	}
	return vals, nil
}

// addOverflows reports whether a+b overflows a signed 64-bit integer.
func addOverflows(a, b int64) bool {
	sum := a + b
	return ((a ^ sum) & (b ^ sum)) < 0
}

// subOverflows reports whether a-b overflows a signed 64-bit integer.
func subOverflows(a, b int64) bool {
	if b == math.MinInt64 {
		return a >= 0
	}
	return addOverflows(a, -b)
}

// mulOverflows reports whether a*b overflows a signed 64-bit integer.
func mulOverflows(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	if (a == -1 && b == math.MinInt64) || (a == math.MinInt64 && b == -1) {
		return true
	}
	p := a * b
	return p/b != a
}

// plusBuiltin implements (+ ...): folds with identity 0, BuiltinBadArg on
// overflow.
var plusBuiltin = &sxeval.Builtin{
	Name: "+", MinArity: 0, MaxArity: -1, Kind: sxeval.Primitive,
	Fn: func(_ *sxeval.Context, args []sx.Object) (sx.Object, error) {
		vals, err := integers("+", args)
		if err != nil {
			return nil, err
		}
		var sum int64
		for _, v := range vals {
			if addOverflows(sum, v) {
				return nil, sxeval.BuiltinBadArg{Name: "+", Arg: sx.Integer(v)}
			}
			sum += v
		}
		return sx.Integer(sum), nil
	},
}

// minusBuiltin implements (- A) (negation) and (- A B ...) (subtracts the
// tail from the head, left to right).
var minusBuiltin = &sxeval.Builtin{
	Name: "-", MinArity: 1, MaxArity: -1, Kind: sxeval.Primitive,
	Fn: func(_ *sxeval.Context, args []sx.Object) (sx.Object, error) {
		vals, err := integers("-", args)
		if err != nil {
			return nil, err
		}
		if len(vals) == 1 {
			if vals[0] == math.MinInt64 {
				return nil, sxeval.BuiltinBadArg{Name: "-", Arg: sx.Integer(vals[0])}
			}
			return sx.Integer(-vals[0]), nil
		}
		acc := vals[0]
		for _, v := range vals[1:] {
			if subOverflows(acc, v) {
				return nil, sxeval.BuiltinBadArg{Name: "-", Arg: sx.Integer(v)}
			}
			acc -= v
		}
		return sx.Integer(acc), nil
	},
}

// timesBuiltin implements (* ...): folds with identity 1, BuiltinBadArg on
// overflow.
var timesBuiltin = &sxeval.Builtin{
	Name: "*", MinArity: 0, MaxArity: -1, Kind: sxeval.Primitive,
	Fn: func(_ *sxeval.Context, args []sx.Object) (sx.Object, error) {
		vals, err := integers("*", args)
		if err != nil {
			return nil, err
		}
		prod := int64(1)
		for _, v := range vals {
			if mulOverflows(prod, v) {
				return nil, sxeval.BuiltinBadArg{Name: "*", Arg: sx.Integer(v)}
			}
			prod *= v
		}
		return sx.Integer(prod), nil
	},
}

// eqBuiltin implements (= A B ...): pairwise structural equality; a single
// argument is trivially true.
var eqBuiltin = &sxeval.Builtin{
	Name: "=", MinArity: 1, MaxArity: -1, Kind: sxeval.Primitive,
	Fn: func(_ *sxeval.Context, args []sx.Object) (sx.Object, error) {
		for _, a := range args[1:] {
			if !args[0].IsEqual(a) {
				return sx.False, nil
			}
		}
		return sx.True, nil
	},
}
