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

// defBuiltin implements (def S E): require S be a symbol that is bare or
// qualified with the current module, reject redefinition of a core or current-module
// binding, evaluate E, install the result under the current module with
// Private visibility, and return S.
var defBuiltin = &sxeval.Builtin{
	Name: "def", MinArity: 2, MaxArity: 2, Kind: sxeval.Special,
	Fn: func(ctx *sxeval.Context, args []sx.Object) (sx.Object, error) {
		sym, ok := sx.GetSymbol(args[0])
		if !ok {
			return nil, sxeval.DefineBadSymbol{Value: args[0]}
		}
		module, name, err := sym.Split(ctx.CurrentModule)
		if err != nil {
			return nil, err
		}
		if module != ctx.CurrentModule {
			return nil, sxeval.DefineBadSymbol{Value: args[0]}
		}

		if ctx.IsDefinedIn(ctx.CoreModule, name) {
			return nil, sxeval.RedefineCore{Symbol: sym}
		}
		if ctx.IsDefinedIn(ctx.CurrentModule, name) {
			return nil, sxeval.Redefine{Symbol: sym}
		}

		value, err := sxeval.Eval(ctx, args[1])
		if err != nil {
			return nil, err
		}
		ctx.DefineCurrent(name, value, sxeval.Private)
		return sym, nil
	},
}
