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

package sxeval

import (
	"fmt"

	"github.com/sol-lang/sol"
)

// Undefined is returned when a symbol resolves to nothing in any module
// visible from the current one.
type Undefined struct{ Symbol sx.Symbol }

func (err Undefined) Error() string { return "undefined: " + string(err.Symbol) }

// ModuleNotLoaded is returned when a symbol is qualified with a module that
// has not been loaded into the context.
type ModuleNotLoaded struct{ Module sx.Symbol }

func (err ModuleNotLoaded) Error() string { return "module not loaded: " + string(err.Module) }

// Redefine is returned when (def ...) names a symbol already defined in the
// current module.
type Redefine struct{ Symbol sx.Symbol }

func (err Redefine) Error() string { return "already defined: " + string(err.Symbol) }

// RedefineCore is returned when (def ...) names a symbol already defined in
// the core module, which is never allowed regardless of current module.
type RedefineCore struct{ Symbol sx.Symbol }

func (err RedefineCore) Error() string { return "cannot redefine core symbol: " + string(err.Symbol) }

// DefineBadSymbol is returned when (def ...) is given a non-symbol, or a
// symbol qualified with a module other than the current one.
type DefineBadSymbol struct{ Value sx.Object }

func (err DefineBadSymbol) Error() string {
	return fmt.Sprintf("not a definable symbol: %v", err.Value)
}

// NotAFunction is returned when the head of an application is neither a
// Builtin nor a Function.
type NotAFunction struct{ Value sx.Object }

func (err NotAFunction) Error() string { return fmt.Sprintf("not a function: %v", err.Value) }

// InvalidBinding is returned when the parameter list of (fn ...) is not a
// list, or contains something other than a symbol.
type InvalidBinding struct{ Value sx.Object }

func (err InvalidBinding) Error() string { return fmt.Sprintf("invalid binding: %v", err.Value) }

// DuplicateBinding is returned when a parameter list names the same symbol
// more than once.
type DuplicateBinding struct{ Symbol sx.Symbol }

func (err DuplicateBinding) Error() string { return "duplicate binding: " + string(err.Symbol) }

// BuiltinBadArg is returned when a builtin receives an argument of the
// wrong type or out of range, e.g. an arithmetic overflow.
type BuiltinBadArg struct {
	Name string
	Arg  sx.Object
}

func (err BuiltinBadArg) Error() string {
	return fmt.Sprintf("%s: bad argument: %v", err.Name, err.Arg)
}

// BuiltinTooFewArgs is returned when a call supplies fewer arguments than a
// builtin's minimum arity.
type BuiltinTooFewArgs struct {
	Name string
	Got  int
	Min  int
}

func (err BuiltinTooFewArgs) Error() string {
	return fmt.Sprintf("%s: too few arguments: got %d, want at least %d", err.Name, err.Got, err.Min)
}

// BuiltinTooManyArgs is returned when a call supplies more arguments than a
// builtin's maximum arity.
type BuiltinTooManyArgs struct {
	Name string
	Got  int
	Max  int
}

func (err BuiltinTooManyArgs) Error() string {
	return fmt.Sprintf("%s: too many arguments: got %d, want at most %d", err.Name, err.Got, err.Max)
}

// FnTooFewArgs is returned when a call to a user-defined Function supplies
// fewer arguments than it has parameters.
type FnTooFewArgs struct {
	Got  int
	Want int
}

func (err FnTooFewArgs) Error() string {
	return fmt.Sprintf("too few arguments: got %d, want %d", err.Got, err.Want)
}

// FnTooManyArgs is returned when a call to a user-defined Function supplies
// more arguments than it has parameters.
type FnTooManyArgs struct {
	Got  int
	Want int
}

func (err FnTooManyArgs) Error() string {
	return fmt.Sprintf("too many arguments: got %d, want %d", err.Got, err.Want)
}
