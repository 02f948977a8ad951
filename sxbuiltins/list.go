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
	"github.com/sol-lang/sol"
	"github.com/sol-lang/sol/sxeval"
)

// consBuiltin implements (cons E L): prepends E to List L.
var consBuiltin = &sxeval.Builtin{
	Name: "cons", MinArity: 2, MaxArity: 2, Kind: sxeval.Primitive,
	Fn: func(_ *sxeval.Context, args []sx.Object) (sx.Object, error) {
		list, ok := sx.GetPair(args[1])
		if !ok {
			return nil, sxeval.BuiltinBadArg{Name: "cons", Arg: args[1]}
		}
		return list.Cons(args[0]), nil
	},
}

// headBuiltin implements (head L): the first element of a non-empty List.
var headBuiltin = &sxeval.Builtin{
	Name: "head", MinArity: 1, MaxArity: 1, Kind: sxeval.Primitive,
	Fn: func(_ *sxeval.Context, args []sx.Object) (sx.Object, error) {
		list, ok := sx.GetPair(args[0])
		if !ok || list.IsNil() {
			return nil, sxeval.BuiltinBadArg{Name: "head", Arg: args[0]}
		}
		return list.Car(), nil
	},
}

// tailBuiltin implements (tail L): the List after its first element.
var tailBuiltin = &sxeval.Builtin{
	Name: "tail", MinArity: 1, MaxArity: 1, Kind: sxeval.Primitive,
	Fn: func(_ *sxeval.Context, args []sx.Object) (sx.Object, error) {
		list, ok := sx.GetPair(args[0])
		if !ok || list.IsNil() {
			return nil, sxeval.BuiltinBadArg{Name: "tail", Arg: args[0]}
		}
		return list.Cdr(), nil
	},
}

// rangeBuiltin implements (range) / (range END) / (range START END):
// a Vector of ascending Integers over [start, end).
var rangeBuiltin = &sxeval.Builtin{
	Name: "range", MinArity: 0, MaxArity: 2, Kind: sxeval.Primitive,
	Fn: func(_ *sxeval.Context, args []sx.Object) (sx.Object, error) {
		var start, end sx.Integer
		switch len(args) {
		case 0:
			// start=0, end=0: empty Vector.
		case 1:
			e, ok := sx.GetInteger(args[0])
			if !ok {
				return nil, sxeval.BuiltinBadArg{Name: "range", Arg: args[0]}
			}
			end = e
		case 2:
			s, ok := sx.GetInteger(args[0])
			if !ok {
				return nil, sxeval.BuiltinBadArg{Name: "range", Arg: args[0]}
			}
			e, ok := sx.GetInteger(args[1])
			if !ok {
				return nil, sxeval.BuiltinBadArg{Name: "range", Arg: args[1]}
			}
			start, end = s, e
		}

		if end <= start {
			return sx.Vector{}, nil
		}
		result := make(sx.Vector, 0, end-start)
		for i := start; i < end; i++ {
			result = append(result, i)
		}
		return result, nil
	},
}
