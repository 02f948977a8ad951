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
	"sort"

	"github.com/sol-lang/sol"
	"github.com/sol-lang/sol/sxeval"
)

// snapshotEnv builds the fixed four-entry reflection Vector documented for
// (context)/(env): [module-paths, loaded-modules, current-module,
// definitions]. module-paths and loaded-modules are Vectors of Strings and
// Symbols, respectively; definitions is a Vector of (module name value
// visibility) Vectors, sorted for determinism.
func snapshotEnv(ctx *sxeval.Context) sx.Object {
	paths := make(sx.Vector, len(ctx.ModulePaths))
	for i, p := range ctx.ModulePaths {
		paths[i] = sx.MakeString(p)
	}

	loaded := make([]sx.Symbol, 0, len(ctx.LoadedModules))
	for m := range ctx.LoadedModules {
		loaded = append(loaded, m)
	}
	sort.Slice(loaded, func(i, j int) bool { return loaded[i] < loaded[j] })
	loadedVec := make(sx.Vector, len(loaded))
	for i, m := range loaded {
		loadedVec[i] = m
	}

	defs := ctx.Snapshot()
	sort.Slice(defs, func(i, j int) bool {
		if defs[i].Module != defs[j].Module {
			return defs[i].Module < defs[j].Module
		}
		return defs[i].Name < defs[j].Name
	})
	defVec := make(sx.Vector, len(defs))
	for i, d := range defs {
		defVec[i] = sx.Vector{d.Module, d.Name, d.Value, sx.MakeSymbol(d.Visibility.String())}
	}

	return sx.Vector{paths, loadedVec, ctx.CurrentModule, defVec}
}

// contextBuiltin implements (context), a snapshot of the Environment.
var contextBuiltin = &sxeval.Builtin{
	Name: "context", MinArity: 0, MaxArity: 0, Kind: sxeval.Primitive,
	Fn: func(ctx *sxeval.Context, _ []sx.Object) (sx.Object, error) { return snapshotEnv(ctx), nil },
}

// envBuiltin implements (env), an alias of (context): the reflection
// primitive's name varied across revisions of the original source.
var envBuiltin = &sxeval.Builtin{
	Name: "env", MinArity: 0, MaxArity: 0, Kind: sxeval.Primitive,
	Fn: func(ctx *sxeval.Context, _ []sx.Object) (sx.Object, error) { return snapshotEnv(ctx), nil },
}
