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

// quoteBuiltin implements (quote X): returns X unevaluated.
var quoteBuiltin = &sxeval.Builtin{
	Name: "quote", MinArity: 1, MaxArity: 1, Kind: sxeval.Special,
	Fn: func(_ *sxeval.Context, args []sx.Object) (sx.Object, error) { return args[0], nil },
}
