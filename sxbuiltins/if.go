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

// ifBuiltin implements (if C T F): the unchosen branch is never evaluated.
var ifBuiltin = &sxeval.Builtin{
	Name: "if", MinArity: 3, MaxArity: 3, Kind: sxeval.Special,
	Fn: func(ctx *sxeval.Context, args []sx.Object) (sx.Object, error) {
		cond, err := sxeval.Eval(ctx, args[0])
		if err != nil {
			return nil, err
		}
		if sx.IsTruthy(cond) {
			return sxeval.Eval(ctx, args[1])
		}
		return sxeval.Eval(ctx, args[2])
	},
}
