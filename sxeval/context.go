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

// Package sxeval evaluates s-expressions: it holds the module-scoped
// definition environment (Context) and reduces values against it (Eval).
package sxeval

import (
	"maps"

	"github.com/sol-lang/sol"
)

// Visibility classifies how a definition was introduced.
type Visibility int

// The four visibility levels a definition can carry.
const (
	// Private is produced by a top-level (def ...) in the current module.
	Private Visibility = iota
	// Public is produced by core builtin registration.
	Public
	// Imported is produced by importing a Public binding of another module.
	Imported
	// Local is produced by function-parameter binding.
	Local
)

func (v Visibility) String() string {
	switch v {
	case Private:
		return "private"
	case Public:
		return "public"
	case Imported:
		return "imported"
	case Local:
		return "local"
	default:
		return "unknown"
	}
}

// defKey identifies a definition by the module it lives in and its name.
type defKey struct{ module, name sx.Symbol }

// Definition is a value together with the visibility it was bound under.
type Definition struct {
	Value      sx.Object
	Visibility Visibility
}

// Context holds everything evaluation needs: the module search path, the
// module currently being defined into, the set of modules whose loading
// has begun, and the module-qualified definition table.
type Context struct {
	ModulePaths   []string
	CurrentModule sx.Symbol
	LoadedModules map[sx.Symbol]struct{}
	Definitions   map[defKey]Definition
	CoreModule    sx.Symbol

	// Trace receives diagnostic records emitted by the `trace` primitive.
	// A nil Trace discards them.
	Trace func(label, value string)

	// Loader is invoked by the `import`/`use` builtin to resolve and
	// evaluate a module by name. It is nil until wired by a driver that
	// knows how to read module files (see sxmodule.Load), keeping sxeval
	// and sxbuiltins free of any filesystem dependency.
	Loader func(ctx *Context, module sx.Symbol) error
}

// NewContext creates a Context in which only the core module and
// currentModule are marked loaded, its core module empty. Builtins are installed separately via InstallCore, so
// that sxeval never needs to import the concrete builtin table.
func NewContext(modulePaths []string, currentModule sx.Symbol) *Context {
	core := sx.CoreModuleName
	return &Context{
		ModulePaths:   append([]string(nil), modulePaths...),
		CurrentModule: currentModule,
		LoadedModules: map[sx.Symbol]struct{}{core: {}, currentModule: {}},
		Definitions:   make(map[defKey]Definition),
		CoreModule:    core,
	}
}

// Clone returns a copy of the context whose Definitions and LoadedModules
// are independent of the original — a shallow copy (values are shared)
// serving as the transaction boundary used by function application and module loading.
func (ctx *Context) Clone() *Context {
	clone := *ctx
	clone.ModulePaths = append([]string(nil), ctx.ModulePaths...)
	clone.Definitions = maps.Clone(ctx.Definitions)
	clone.LoadedModules = maps.Clone(ctx.LoadedModules)
	return &clone
}

// Define installs value under (module, name) with the given visibility.
func (ctx *Context) Define(module, name sx.Symbol, value sx.Object, vis Visibility) {
	ctx.Definitions[defKey{module, name}] = Definition{Value: value, Visibility: vis}
}

// DefineCurrent installs value into the current module.
func (ctx *Context) DefineCurrent(name sx.Symbol, value sx.Object, vis Visibility) {
	ctx.Define(ctx.CurrentModule, name, value, vis)
}

// lookup returns the definition stored at (module, name), if any.
func (ctx *Context) lookup(module, name sx.Symbol) (Definition, bool) {
	def, found := ctx.Definitions[defKey{module, name}]
	return def, found
}

// Entry is one row of a Context.Snapshot result: a single definition
// together with the key it is stored under.
type Entry struct {
	Module     sx.Symbol
	Name       sx.Symbol
	Value      sx.Object
	Visibility Visibility
}

// Snapshot returns every definition in the context as a flat, unordered
// slice of Entry, for use by the `context`/`env` reflection builtins.
func (ctx *Context) Snapshot() []Entry {
	entries := make([]Entry, 0, len(ctx.Definitions))
	for key, def := range ctx.Definitions {
		entries = append(entries, Entry{Module: key.module, Name: key.name, Value: def.Value, Visibility: def.Visibility})
	}
	return entries
}

// IsDefinedIn reports whether name has any definition in module, regardless
// of visibility.
func (ctx *Context) IsDefinedIn(module, name sx.Symbol) bool {
	_, found := ctx.lookup(module, name)
	return found
}

// IsModuleLoaded reports whether module has begun loading.
func (ctx *Context) IsModuleLoaded(module sx.Symbol) bool {
	_, found := ctx.LoadedModules[module]
	return found
}

// MarkModuleLoaded records that module has begun loading.
func (ctx *Context) MarkModuleLoaded(module sx.Symbol) { ctx.LoadedModules[module] = struct{}{} }

// ImportCore copies every Public core definition into module as Imported.
func (ctx *Context) ImportCore(module sx.Symbol) { ctx.ImportModule(module, ctx.CoreModule) }

// ImportModule copies every Public definition of source into module as
// Imported. It is used both for the implicit core import and for a
// user-level (import M) / (use M) form.
func (ctx *Context) ImportModule(module, source sx.Symbol) {
	for key, def := range ctx.Definitions {
		if key.module == source && def.Visibility == Public {
			ctx.Define(module, key.name, def.Value, Imported)
		}
	}
}

// Resolve implements the symbol-resolution state machine of §4.4.3: split
// the symbol into (module, name), and then look it up in module-qualified,
// current-module, and core order.
func (ctx *Context) Resolve(sym sx.Symbol) (sx.Object, error) {
	module, name, err := sym.Split(ctx.CurrentModule)
	if err != nil {
		return nil, err
	}

	if module != ctx.CurrentModule {
		if !ctx.IsModuleLoaded(module) {
			return nil, ModuleNotLoaded{Module: module}
		}
		if def, found := ctx.lookup(module, name); found &&
			(def.Visibility == Public || def.Visibility == Imported) {
			return def.Value, nil
		}
		return nil, Undefined{Symbol: sym}
	}
	if def, found := ctx.lookup(ctx.CurrentModule, name); found {
		return def.Value, nil
	}
	if def, found := ctx.lookup(ctx.CoreModule, name); found {
		return def.Value, nil
	}
	return nil, Undefined{Symbol: sym}
}
