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

// Package sxbuiltins implements the core special forms and primitives that
// InstallCore registers into a fresh Context's core module.
package sxbuiltins

import (
	"github.com/sol-lang/sol"
	"github.com/sol-lang/sol/sxeval"
)

// core lists every core builtin, in registration order. The table is
// walked once per Context; registration is pure, with no IO and no
// ordering hazards between entries.
var core = []*sxeval.Builtin{
	defBuiltin,
	fnBuiltin,
	ifBuiltin,
	quoteBuiltin,
	moduleBuiltin,
	importBuiltin,
	useBuiltin,
	applyBuiltin,
	traceBuiltin,
	contextBuiltin,
	envBuiltin,
	consBuiltin,
	headBuiltin,
	tailBuiltin,
	rangeBuiltin,
	plusBuiltin,
	minusBuiltin,
	timesBuiltin,
	eqBuiltin,
}

// InstallCore walks the core builtin table and installs each entry at
// (ctx.CoreModule, name) with Public visibility.
func InstallCore(ctx *sxeval.Context) {
	for _, b := range core {
		ctx.Define(ctx.CoreModule, sx.MakeSymbol(b.Name), b, sxeval.Public)
	}
}
