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

func newTestContext(t *testing.T) *sxeval.Context {
	t.Helper()
	return sxeval.NewContext(nil, sx.MakeSymbol("app"))
}

func TestEvalSelfEvaluating(t *testing.T) {
	t.Parallel()
	ctx := newTestContext(t)

	cases := []sx.Object{sx.Nil(), sx.True, sx.False, sx.Integer(42), sx.MakeString("hi")}
	for _, v := range cases {
		got, err := sxeval.Eval(ctx, v)
		if err != nil {
			t.Fatalf("Eval(%v): %v", v, err)
		}
		if !got.IsEqual(v) {
			t.Errorf("Eval(%v) = %v, want itself", v, got)
		}
	}
}

func TestEvalQuoteUnwrapsOnce(t *testing.T) {
	t.Parallel()
	ctx := newTestContext(t)

	q := sx.MakeQuote(sx.MakeQuote(sx.MakeSymbol("x")))
	got, err := sxeval.Eval(ctx, q)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	want := sx.MakeQuote(sx.MakeSymbol("x"))
	if !got.IsEqual(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEvalEmptyListSelfEvaluates(t *testing.T) {
	t.Parallel()
	ctx := newTestContext(t)

	got, err := sxeval.Eval(ctx, sx.Nil())
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if !got.IsNil() {
		t.Errorf("got %v, want nil", got)
	}
}

func TestEvalVectorEvaluatesElements(t *testing.T) {
	t.Parallel()
	ctx := newTestContext(t)
	ctx.DefineCurrent("x", sx.Integer(5), sxeval.Private)

	got, err := sxeval.Eval(ctx, sx.Vector{sx.MakeSymbol("x"), sx.Integer(1)})
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	want := sx.Vector{sx.Integer(5), sx.Integer(1)}
	if !got.IsEqual(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEvalVectorShortCircuits(t *testing.T) {
	t.Parallel()
	ctx := newTestContext(t)

	_, err := sxeval.Eval(ctx, sx.Vector{sx.Integer(1), sx.MakeSymbol("nope")})
	if _, ok := err.(sxeval.Undefined); !ok {
		t.Errorf("got %T, want Undefined", err)
	}
}

func TestEvalNotAFunction(t *testing.T) {
	t.Parallel()
	ctx := newTestContext(t)

	_, err := sxeval.Eval(ctx, sx.MakeList(sx.Integer(1), sx.Integer(2)))
	if _, ok := err.(sxeval.NotAFunction); !ok {
		t.Errorf("got %T, want NotAFunction", err)
	}
}

// addBuiltin is a minimal Primitive builtin summing Integer arguments,
// standing in for the `+` core primitive without depending on it.
func addBuiltin() *sxeval.Builtin {
	return &sxeval.Builtin{
		Name: "+", MinArity: 0, MaxArity: -1, Kind: sxeval.Primitive,
		Fn: func(_ *sxeval.Context, args []sx.Object) (sx.Object, error) {
			var sum int64
			for _, a := range args {
				i, ok := sx.GetInteger(a)
				if !ok {
					return nil, sxeval.BuiltinBadArg{Name: "+", Arg: a}
				}
				sum += int64(i)
			}
			return sx.Integer(sum), nil
		},
	}
}

func TestEvalPrimitiveBuiltinApplication(t *testing.T) {
	t.Parallel()
	ctx := newTestContext(t)
	ctx.Define(ctx.CoreModule, sx.MakeSymbol("+"), addBuiltin(), sxeval.Public)

	form := sx.MakeList(sx.MakeSymbol("+"), sx.Integer(1), sx.Integer(2), sx.Integer(3))
	got, err := sxeval.Eval(ctx, form)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if !got.IsEqual(sx.Integer(6)) {
		t.Errorf("got %v, want 6", got)
	}
}

// ifBuiltin is a minimal Special builtin standing in for the `if` core
// special form, used to verify the unchosen branch is never evaluated.
func ifBuiltin() *sxeval.Builtin {
	return &sxeval.Builtin{
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
}

func TestEvalSpecialBuiltinSkipsUnchosenBranch(t *testing.T) {
	t.Parallel()
	ctx := newTestContext(t)
	ctx.Define(ctx.CoreModule, sx.MakeSymbol("if"), ifBuiltin(), sxeval.Public)

	form := sx.MakeList(sx.MakeSymbol("if"), sx.Nil(),
		sx.MakeList(sx.MakeSymbol("undefined-fn")), sx.MakeString("n"))
	got, err := sxeval.Eval(ctx, form)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if !got.IsEqual(sx.MakeString("n")) {
		t.Errorf("got %v, want \"n\"", got)
	}
}

func TestFunctionCallArityAndBinding(t *testing.T) {
	t.Parallel()
	ctx := newTestContext(t)
	ctx.Define(ctx.CoreModule, sx.MakeSymbol("+"), addBuiltin(), sxeval.Public)

	fn := &sxeval.Function{
		Module: sx.MakeSymbol("app"),
		Params: []sx.Symbol{"x", "y"},
		Body: []sx.Object{sx.MakeList(sx.MakeSymbol("+"),
			sx.MakeSymbol("x"), sx.MakeSymbol("x"), sx.MakeSymbol("y"))},
	}
	ctx.DefineCurrent("f", fn, sxeval.Private)

	form := sx.MakeList(sx.MakeSymbol("f"), sx.Integer(3), sx.Integer(4))
	got, err := sxeval.Eval(ctx, form)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if !got.IsEqual(sx.Integer(10)) {
		t.Errorf("got %v, want 10", got)
	}
}

func TestFunctionCallArityMismatch(t *testing.T) {
	t.Parallel()
	ctx := newTestContext(t)
	fn := &sxeval.Function{Module: sx.MakeSymbol("app"), Params: []sx.Symbol{"x"}, Body: []sx.Object{sx.MakeSymbol("x")}}

	_, err := sxeval.Apply(ctx, fn, nil)
	if _, ok := err.(sxeval.FnTooFewArgs); !ok {
		t.Errorf("got %T, want FnTooFewArgs", err)
	}

	_, err = sxeval.Apply(ctx, fn, []sx.Object{sx.Integer(1), sx.Integer(2)})
	if _, ok := err.(sxeval.FnTooManyArgs); !ok {
		t.Errorf("got %T, want FnTooManyArgs", err)
	}
}

func TestApplyEquivalentToDirectCall(t *testing.T) {
	t.Parallel()
	ctx := newTestContext(t)
	plus := addBuiltin()
	ctx.Define(ctx.CoreModule, sx.MakeSymbol("+"), plus, sxeval.Public)

	direct, errDirect := sxeval.Eval(ctx, sx.MakeList(sx.MakeSymbol("+"), sx.Integer(1), sx.Integer(2), sx.Integer(3)))
	applied, errApplied := sxeval.Apply(ctx, plus, []sx.Object{sx.Integer(1), sx.Integer(2), sx.Integer(3)})

	if errDirect != nil || errApplied != nil {
		t.Fatalf("unexpected errors: %v, %v", errDirect, errApplied)
	}
	if !direct.IsEqual(applied) {
		t.Errorf("direct=%v, applied=%v, want equal", direct, applied)
	}
}

func TestBuiltinPrintForms(t *testing.T) {
	t.Parallel()

	if got, want := ifBuiltin().String(), "#special<if>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := addBuiltin().String(), "#primitive<+>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFunctionPrintForm(t *testing.T) {
	t.Parallel()

	fn := &sxeval.Function{Module: sx.MakeSymbol("app"), Params: []sx.Symbol{"x", "y"}, Body: []sx.Object{sx.MakeSymbol("x")}}
	if got, want := fn.String(), "#function<arity: 2, bindings: (x y)>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
