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

// doImport resolves and loads module M via ctx.Loader, then imports its
// Public definitions into the current module as Imported. (use M) is kept
// as an alias of (import M): both names appear in the wild for the same
// operation, and nothing is gained by rejecting either.
func doImport(ctx *sxeval.Context, args []sx.Object) (sx.Object, error) {
	sym, ok := sx.GetSymbol(args[0])
	if !ok {
		return nil, sxeval.DefineBadSymbol{Value: args[0]}
	}
	if !ctx.IsModuleLoaded(sym) {
		if ctx.Loader == nil {
			return nil, sxeval.ModuleNotLoaded{Module: sym}
		}
		if err := ctx.Loader(ctx, sym); err != nil {
			return nil, err
		}
	}
	ctx.ImportModule(ctx.CurrentModule, sym)
	return sym, nil
}

// importBuiltin implements (import M).
var importBuiltin = &sxeval.Builtin{
	Name: "import", MinArity: 1, MaxArity: 1, Kind: sxeval.Special,
	Fn: doImport,
}

// useBuiltin implements (use M), an alias of (import M).
var useBuiltin = &sxeval.Builtin{
	Name: "use", MinArity: 1, MaxArity: 1, Kind: sxeval.Special,
	Fn: doImport,
}
