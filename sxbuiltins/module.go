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

// moduleBuiltin implements (module M): sets current_module to M, marks M
// loaded, and re-imports core into M.
var moduleBuiltin = &sxeval.Builtin{
	Name: "module", MinArity: 1, MaxArity: 1, Kind: sxeval.Special,
	Fn: func(ctx *sxeval.Context, args []sx.Object) (sx.Object, error) {
		sym, ok := sx.GetSymbol(args[0])
		if !ok {
			return nil, sxeval.DefineBadSymbol{Value: args[0]}
		}
		ctx.CurrentModule = sym
		ctx.MarkModuleLoaded(sym)
		ctx.ImportCore(sym)
		return sym, nil
	},
}
