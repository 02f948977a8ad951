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

package sxeval_test

import (
	"testing"

	"github.com/sol-lang/sol"
	"github.com/sol-lang/sol/sxeval"
)

func TestNewContextLoadsCoreAndCurrent(t *testing.T) {
	t.Parallel()

	ctx := sxeval.NewContext(nil, sx.MakeSymbol("app"))
	if !ctx.IsModuleLoaded(sx.CoreModuleName) {
		t.Error("core module should be loaded")
	}
	if !ctx.IsModuleLoaded(sx.MakeSymbol("app")) {
		t.Error("current module should be loaded")
	}
	if ctx.IsModuleLoaded(sx.MakeSymbol("other")) {
		t.Error("unrelated module should not be loaded")
	}
}

func TestDefineAndResolve(t *testing.T) {
	t.Parallel()

	ctx := sxeval.NewContext(nil, sx.MakeSymbol("app"))
	ctx.DefineCurrent("x", sx.Integer(10), sxeval.Private)

	got, err := ctx.Resolve(sx.MakeSymbol("x"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !got.IsEqual(sx.Integer(10)) {
		t.Errorf("got %v, want 10", got)
	}
}

func TestResolveUndefined(t *testing.T) {
	t.Parallel()

	ctx := sxeval.NewContext(nil, sx.MakeSymbol("app"))
	_, err := ctx.Resolve(sx.MakeSymbol("nope"))
	if _, ok := err.(sxeval.Undefined); !ok {
		t.Errorf("got %T, want Undefined", err)
	}
}

func TestResolveModuleNotLoaded(t *testing.T) {
	t.Parallel()

	ctx := sxeval.NewContext(nil, sx.MakeSymbol("app"))
	_, err := ctx.Resolve(sx.MakeSymbol("other/x"))
	if _, ok := err.(sxeval.ModuleNotLoaded); !ok {
		t.Errorf("got %T, want ModuleNotLoaded", err)
	}
}

func TestResolveNeverLeaksPrivateFromOtherModule(t *testing.T) {
	t.Parallel()

	ctx := sxeval.NewContext(nil, sx.MakeSymbol("app"))
	ctx.MarkModuleLoaded(sx.MakeSymbol("lib"))
	ctx.Define(sx.MakeSymbol("lib"), sx.MakeSymbol("secret"), sx.Integer(1), sxeval.Private)

	_, err := ctx.Resolve(sx.MakeSymbol("lib/secret"))
	if _, ok := err.(sxeval.Undefined); !ok {
		t.Errorf("got %T, want Undefined (private not visible across modules)", err)
	}
}

func TestImportModuleCopiesOnlyPublic(t *testing.T) {
	t.Parallel()

	ctx := sxeval.NewContext(nil, sx.MakeSymbol("app"))
	ctx.MarkModuleLoaded(sx.MakeSymbol("lib"))
	ctx.Define(sx.MakeSymbol("lib"), sx.MakeSymbol("pub"), sx.Integer(1), sxeval.Public)
	ctx.Define(sx.MakeSymbol("lib"), sx.MakeSymbol("priv"), sx.Integer(2), sxeval.Private)

	ctx.ImportModule(sx.MakeSymbol("app"), sx.MakeSymbol("lib"))

	if !ctx.IsDefinedIn(sx.MakeSymbol("app"), sx.MakeSymbol("pub")) {
		t.Error("expected pub to be imported")
	}
	if ctx.IsDefinedIn(sx.MakeSymbol("app"), sx.MakeSymbol("priv")) {
		t.Error("priv must not be imported")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	ctx := sxeval.NewContext(nil, sx.MakeSymbol("app"))
	ctx.DefineCurrent("x", sx.Integer(1), sxeval.Private)

	clone := ctx.Clone()
	clone.DefineCurrent("y", sx.Integer(2), sxeval.Private)
	clone.MarkModuleLoaded(sx.MakeSymbol("lib"))

	if ctx.IsDefinedIn(sx.MakeSymbol("app"), sx.MakeSymbol("y")) {
		t.Error("mutating clone must not affect original Definitions")
	}
	if ctx.IsModuleLoaded(sx.MakeSymbol("lib")) {
		t.Error("mutating clone must not affect original LoadedModules")
	}
}
