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
	"t73f.de/r/zero/set"

	"github.com/sol-lang/sol"
	"github.com/sol-lang/sol/sxeval"
)

// fnBuiltin implements (fn (P…) B…): the parameter list must be a List of
// distinct Symbols; the body is the remaining forms. The resulting
// Function is bound to the current module, not to any caller binding.
var fnBuiltin = &sxeval.Builtin{
	Name: "fn", MinArity: 2, MaxArity: -1, Kind: sxeval.Special,
	Fn: func(ctx *sxeval.Context, args []sx.Object) (sx.Object, error) {
		paramList, ok := sx.GetPair(args[0])
		if !ok {
			return nil, sxeval.InvalidBinding{Value: args[0]}
		}

		var params []sx.Symbol
		for val := range paramList.Values() {
			sym, ok := sx.GetSymbol(val)
			if !ok {
				return nil, sxeval.InvalidBinding{Value: val}
			}
			params = append(params, sym)
		}

		if set.New(params...).Length() != len(params) {
			for i, p := range params {
				for _, other := range params[i+1:] {
					if p == other {
						return nil, sxeval.DuplicateBinding{Symbol: p}
					}
				}
			}
		}

		return &sxeval.Function{
			Module: ctx.CurrentModule,
			Params: params,
			Body:   args[1:],
		}, nil
	},
}
