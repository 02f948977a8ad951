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

// traceBuiltin implements (trace LABEL VALUE): emits a human-readable
// record to ctx.Trace, if any, and returns VALUE unchanged.
var traceBuiltin = &sxeval.Builtin{
	Name: "trace", MinArity: 2, MaxArity: 2, Kind: sxeval.Primitive,
	Fn: func(ctx *sxeval.Context, args []sx.Object) (sx.Object, error) {
		label, ok := sx.GetString(args[0])
		if !ok {
			return nil, sxeval.BuiltinBadArg{Name: "trace", Arg: args[0]}
		}
		if ctx.Trace != nil {
			ctx.Trace(label.GetValue(), args[1].String())
		}
		return args[1], nil
	},
}
