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

package sxmodule

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sol-lang/sol"
	"github.com/sol-lang/sol/sxeval"
	"github.com/sol-lang/sol/sxreader"
)

// Load resolves module against ctx.ModulePaths, reads and evaluates its
// source file, and, on success, commits the result back into ctx. Failure
// leaves ctx unchanged.
//
// Loading an already-loaded module is a no-op; loading the current module
// fails ModuleSelfRefer. These two checks, done before any filesystem
// access, are what makes a circular import chain terminate instead of
// recursing forever.
func Load(ctx *sxeval.Context, module sx.Symbol) error {
	if module == ctx.CurrentModule {
		return ModuleSelfRefer{Module: module}
	}
	if ctx.IsModuleLoaded(module) {
		return nil
	}

	filename, err := resolve(ctx, module)
	if err != nil {
		return err
	}

	source, err := readFile(module, filename)
	if err != nil {
		return err
	}

	forms, errs := sxreader.ReadAllString(filename, source)
	if errs != nil {
		return ModuleReadErrors{Module: module, Errors: errs}
	}

	child := ctx.Clone()
	child.CurrentModule = module
	child.MarkModuleLoaded(module)
	child.ImportCore(module)

	var evalErrs []error
	for _, form := range forms {
		if _, err := sxeval.Eval(child, form); err != nil {
			evalErrs = append(evalErrs, err)
		}
	}
	if len(evalErrs) > 0 {
		return ModuleEvalErrors{Module: module, Errors: evalErrs}
	}

	child.CurrentModule = ctx.CurrentModule
	*ctx = *child
	return nil
}

// resolve forms dir/module.sol for each configured search directory and
// returns the single matching regular file.
func resolve(ctx *sxeval.Context, module sx.Symbol) (string, error) {
	var matches []string
	for _, dir := range ctx.ModulePaths {
		path := filepath.Join(dir, string(module)+sx.ModuleFileExt)
		info, err := os.Stat(path)
		if err == nil && info.Mode().IsRegular() {
			matches = append(matches, path)
		}
	}
	switch len(matches) {
	case 0:
		return "", ModuleNotFound{Module: module, ModulePaths: ctx.ModulePaths}
	case 1:
		return matches[0], nil
	default:
		return "", ModuleMultipleOptions{Module: module, Filenames: matches}
	}
}

// readFile reads filename in full, distinguishing an open failure from a
// read failure, as the error taxonomy requires.
func readFile(module sx.Symbol, filename string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", ModuleIoOpenError{Module: module, Cause: err.Error()}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", ModuleIoReadError{Module: module, Cause: err.Error()}
	}
	return string(data), nil
}

// NameFromFilename derives a module Symbol from a source path: the file
// stem, without directory or extension.
func NameFromFilename(filename string) sx.Symbol {
	base := filepath.Base(filename)
	return sx.MakeSymbol(base[:len(base)-len(filepath.Ext(base))])
}
