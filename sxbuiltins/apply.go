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

// applyBuiltin implements (apply F ARGS): F must be callable and ARGS a
// List; applying F to the elements of ARGS must match a direct call to F
// with those same elements, result for result, error for error.
var applyBuiltin = &sxeval.Builtin{
	Name: "apply", MinArity: 2, MaxArity: 2, Kind: sxeval.Primitive,
	Fn: func(ctx *sxeval.Context, args []sx.Object) (sx.Object, error) {
		list, ok := sx.GetPair(args[1])
		if !ok {
			return nil, sxeval.BuiltinBadArg{Name: "apply", Arg: args[1]}
		}
		return sxeval.Apply(ctx, args[0], []sx.Object(sx.Collect(list.Values())))
	},
}
