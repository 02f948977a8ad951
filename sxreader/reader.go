//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of sx.
//
// sx is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2022-present Detlef Stern
//-----------------------------------------------------------------------------

package sxreader

import "github.com/sol-lang/sol"

// Option configures a Reader at construction time.
type Option func(*Reader)

// DefaultNestingLimit is the default maximum nesting depth of compounds.
const DefaultNestingLimit = 1000

// WithNestingLimit bounds how deeply lists and vectors may nest.
func WithNestingLimit(depth int) Option {
	return func(rd *Reader) { rd.maxDepth = depth }
}

// DefaultListLimit is the default maximum element count of a list or vector.
const DefaultListLimit = 100000

// WithListLimit bounds how many elements a single list or vector may hold.
func WithListLimit(length int) Option {
	return func(rd *Reader) { rd.maxLength = length }
}

// Reader folds a token stream into a sequence of sx.Object values,
// matching delimiters and applying quote sugar, per the state machine:
// atoms produce a value directly; ListStart/VectorStart push a frame and
// begin a fresh sequence; ListEnd/VectorEnd close the top frame, checking
// that its opening kind matches.
type Reader struct {
	name      string
	maxDepth  int
	maxLength int
}

// NewReader creates a Reader. name identifies the source in error positions.
func NewReader(name string, opts ...Option) *Reader {
	rd := &Reader{name: name, maxDepth: DefaultNestingLimit, maxLength: DefaultListLimit}
	for _, opt := range opts {
		opt(rd)
	}
	return rd
}

type frame struct {
	openKind Kind
	seq      sx.Vector
	quotes   int
	pos      Position
}

// ReadAll reads every value out of src. It returns either the full value
// sequence or the full, non-empty error list — never both, per the
// invariant that reading never mixes partial results with errors.
func (rd *Reader) ReadAll(src string) (sx.Vector, []error) {
	lx := NewLexer(rd.name, src)
	var stack []frame
	var curSeq sx.Vector
	quotes := 0
	var errs []error

	appendValue := func(val sx.Object) {
		for range quotes {
			val = sx.MakeQuote(val)
		}
		quotes = 0
		curSeq = append(curSeq, val)
	}

	for {
		tok, ok := lx.Next()
		if !ok {
			break
		}
		switch tok.Kind {
		case KindQuote:
			quotes++

		case KindNil:
			appendValue(sx.Nil())
		case KindBoolean:
			appendValue(sx.MakeBoolean(tok.Text == sx.LiteralTrue))
		case KindInteger:
			i, err := sx.ParseInteger(tok.Text)
			if err != nil {
				errs = append(errs, IntegerLimit{Text: tok.Text, Pos: tok.Pos})
				continue
			}
			appendValue(i)
		case KindSymbol:
			appendValue(sx.MakeSymbol(tok.Text))
		case KindString:
			appendValue(sx.MakeString(tok.Text))
		case KindStringPartial:
			errs = append(errs, PartialString{Text: tok.Text, Pos: tok.Pos})
		case KindInvalid:
			errs = append(errs, InvalidToken{Text: tok.Text, Pos: tok.Pos})

		case KindListStart, KindVectorStart:
			if len(stack) >= rd.maxDepth {
				errs = append(errs, InvalidToken{Text: tok.Text, Pos: tok.Pos})
				continue
			}
			stack = append(stack, frame{openKind: tok.Kind, seq: curSeq, quotes: quotes, pos: tok.Pos})
			curSeq = nil
			quotes = 0

		case KindListEnd, KindVectorEnd:
			if len(stack) == 0 {
				errs = append(errs, TrailingDelimiter{Pos: tok.Pos})
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			wantKind := KindListStart
			if tok.Kind == KindVectorEnd {
				wantKind = KindVectorStart
			}
			if top.openKind != wantKind {
				errs = append(errs, InvalidCloseDelimiter{Pos: tok.Pos})
				curSeq = top.seq
				quotes = 0
				continue
			}
			if rd.maxLength > 0 && len(curSeq) > rd.maxLength {
				errs = append(errs, InvalidToken{Text: "list too long", Pos: top.pos})
				curSeq = top.seq
				quotes = 0
				continue
			}

			var val sx.Object
			if top.openKind == KindListStart {
				val = sx.MakeList(curSeq...)
			} else {
				val = curSeq
			}
			for range top.quotes {
				val = sx.MakeQuote(val)
			}
			curSeq = top.seq
			quotes = 0
			curSeq = append(curSeq, val)
		}
	}

	for _, top := range stack {
		errs = append(errs, UnmatchedDelimiter{Pos: top.pos})
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return curSeq, nil
}

// ReadAllString is a convenience wrapper around NewReader(name).ReadAll(src).
func ReadAllString(name, src string, opts ...Option) (sx.Vector, []error) {
	return NewReader(name, opts...).ReadAll(src)
}
