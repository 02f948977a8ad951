//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of sx.
//
// sx is licensed under the latest version of the EUPL // (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2022-present Detlef Stern
//-----------------------------------------------------------------------------

package sx_test

import (
	"testing"

	"github.com/sol-lang/sol"
)

func TestQuotePrint(t *testing.T) {
	t.Parallel()

	q := sx.MakeQuote(sx.MakeSymbol("x"))
	if got, want := q.String(), "'x"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	qq := sx.MakeQuote(sx.MakeQuote(sx.MakeSymbol("x")))
	if got, want := qq.String(), "''x"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestQuoteIsEqual(t *testing.T) {
	t.Parallel()

	a := sx.MakeQuote(sx.Integer(1))
	b := sx.MakeQuote(sx.Integer(1))
	c := sx.MakeQuote(sx.Integer(2))
	if !a.IsEqual(b) {
		t.Error("quotes of equal values should compare equal")
	}
	if a.IsEqual(c) {
		t.Error("quotes of different values should not compare equal")
	}
}
