//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of sx.
//
// sx is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2023-present Detlef Stern
//-----------------------------------------------------------------------------

// Package main is a thin, non-interactive driver over the core: it reads
// one or more .sol files, evaluates their top-level forms, and prints
// each result. It does not attempt to reproduce a line-editor REPL,
// pretty-printing, or a history file — those are external collaborators.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sol-lang/sol/sxbuiltins"
	"github.com/sol-lang/sol/sxeval"
	"github.com/sol-lang/sol/sxmodule"
	"github.com/sol-lang/sol/sxreader"
)

func main() {
	var modulePath stringList
	flag.Var(&modulePath, "path", "directory to search for imported modules (repeatable)")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: sol [-path DIR]... FILE.sol...")
		os.Exit(2)
	}

	for _, file := range files {
		if err := run(file, modulePath); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
			os.Exit(1)
		}
	}
}

func run(file string, modulePaths []string) error {
	module := sxmodule.NameFromFilename(file)
	paths := append([]string{filepath.Dir(file)}, modulePaths...)

	ctx := sxeval.NewContext(paths, module)
	sxbuiltins.InstallCore(ctx)
	ctx.Loader = sxmodule.Load
	ctx.Trace = func(label, value string) { fmt.Fprintf(os.Stderr, "; %s: %s\n", label, value) }

	source, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	forms, errs := sxreader.ReadAllString(file, string(source))
	if errs != nil {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		return fmt.Errorf("%d read error(s)", len(errs))
	}

	for _, form := range forms {
		v, err := sxeval.Eval(ctx, form)
		if err != nil {
			return err
		}
		fmt.Println(v.String())
	}
	return nil
}

// stringList accumulates repeated -path flags.
type stringList []string

func (s *stringList) String() string { return fmt.Sprint([]string(*s)) }

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}
