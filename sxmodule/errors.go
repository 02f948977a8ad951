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

// Package sxmodule resolves a module name against a Context's search path,
// reads and evaluates the corresponding source file, and commits the
// result back into the caller's Context.
package sxmodule

import (
	"fmt"

	"github.com/sol-lang/sol"
)

// ModuleSelfRefer is returned when a module imports itself.
type ModuleSelfRefer struct{ Module sx.Symbol }

func (err ModuleSelfRefer) Error() string { return "module refers to itself: " + string(err.Module) }

// ModulePathError is returned when a search-path entry cannot be joined
// with the module name into a filesystem path.
type ModulePathError struct {
	ModulePath string
	Module     sx.Symbol
}

func (err ModulePathError) Error() string {
	return fmt.Sprintf("bad module path %q for module %s", err.ModulePath, err.Module)
}

// ModuleNotFound is returned when no search-path entry contains the
// module's source file.
type ModuleNotFound struct {
	Module      sx.Symbol
	ModulePaths []string
}

func (err ModuleNotFound) Error() string {
	return fmt.Sprintf("module not found: %s (searched %v)", err.Module, err.ModulePaths)
}

// ModuleMultipleOptions is returned when more than one search-path entry
// contains a matching source file.
type ModuleMultipleOptions struct {
	Module    sx.Symbol
	Filenames []string
}

func (err ModuleMultipleOptions) Error() string {
	return fmt.Sprintf("multiple candidates for module %s: %v", err.Module, err.Filenames)
}

// ModuleIoOpenError is returned when the resolved source file cannot be
// opened.
type ModuleIoOpenError struct {
	Module sx.Symbol
	Cause  string
}

func (err ModuleIoOpenError) Error() string {
	return fmt.Sprintf("cannot open module %s: %s", err.Module, err.Cause)
}

// ModuleIoReadError is returned when the resolved source file cannot be
// read to completion.
type ModuleIoReadError struct {
	Module sx.Symbol
	Cause  string
}

func (err ModuleIoReadError) Error() string {
	return fmt.Sprintf("cannot read module %s: %s", err.Module, err.Cause)
}

// ModuleReadErrors is returned when the reader reports one or more errors
// against a module's source.
type ModuleReadErrors struct {
	Module sx.Symbol
	Errors []error
}

func (err ModuleReadErrors) Error() string {
	return fmt.Sprintf("module %s: %d read error(s): %v", err.Module, len(err.Errors), err.Errors)
}

// ModuleEvalErrors is returned when evaluating a module's top-level forms
// reports one or more errors.
type ModuleEvalErrors struct {
	Module sx.Symbol
	Errors []error
}

func (err ModuleEvalErrors) Error() string {
	return fmt.Sprintf("module %s: %d evaluation error(s): %v", err.Module, len(err.Errors), err.Errors)
}
