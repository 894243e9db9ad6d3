//-----------------------------------------------------------------------------
// Copyright (c) 2020-present Detlef Stern
//
// This file is part of wikitree.
//
// wikitree is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2020-present Detlef Stern
//-----------------------------------------------------------------------------

// Package parser provides a generic interface to a range of different parsers.
//
// A parser does not build a tree. It delivers a stream of events to a handler,
// typically a tree builder chained with some state handlers.
package parser

import (
	"fmt"
	"slices"

	"zettelstore.de/wikitree/ast"
	"zettelstore.de/wikitree/builder"
	"zettelstore.de/wikitree/event"
	"zettelstore.de/wikitree/input"
)

// Info describes a single parser.
//
// Parse delivers the events of a whole document, starting with BeginDocument
// and ending with EndDocument. ParseInline delivers only inline events; it is
// used to parse the label of a link.
type Info struct {
	Name        string
	AltNames    []string
	Parse       func(inp *input.Input, syntax string, h event.Handler) error
	ParseInline func(inp *input.Input, syntax string, h event.Handler) error
}

// DefaultSyntax is used if no parser was found for a syntax.
const DefaultSyntax = "plain"

var registry = map[string]*Info{}

// Register the parser (info) for later retrieval.
func Register(pi *Info) {
	if _, ok := registry[pi.Name]; ok {
		panic(fmt.Sprintf("Parser %q already registered", pi.Name))
	}
	registry[pi.Name] = pi
	for _, alt := range pi.AltNames {
		if _, ok := registry[alt]; ok {
			panic(fmt.Sprintf("Parser %q already registered", alt))
		}
		registry[alt] = pi
	}
}

// GetSyntaxes returns a sorted list of syntaxes implemented by all registered parsers.
func GetSyntaxes() []string {
	result := make([]string, 0, len(registry))
	for syntax := range registry {
		result = append(result, syntax)
	}
	slices.Sort(result)
	return result
}

// IsKnown returns true, if there is a parser for the given syntax.
func IsKnown(syntax string) bool {
	_, ok := registry[syntax]
	return ok
}

// Get the parser (info) by name. If name not found, use the default parser.
func Get(name string) *Info {
	if pi := registry[name]; pi != nil {
		return pi
	}
	if pi := registry[DefaultSyntax]; pi != nil {
		return pi
	}
	panic(fmt.Sprintf("No parser for %q found", name))
}

// Parse delivers the events of the source to the handler.
func Parse(src []byte, syntax string, h event.Handler) error {
	return Get(syntax).Parse(input.NewInput(src), syntax, h)
}

// InlineParser returns a parser for link labels that are written in the given syntax.
func InlineParser(syntax string) builder.InlineParser {
	pi := Get(syntax)
	return builder.InlineParserFunc(func(text string, h event.Handler) error {
		return pi.ParseInline(input.NewInput([]byte(text)), syntax, h)
	})
}

// ParseDocument parses the source and returns the document tree built by b.
// All events are delivered to the listeners too, after b has seen them.
func ParseDocument(src []byte, syntax string, b *builder.Builder, listeners ...event.Handler) (*ast.DocumentNode, error) {
	var h event.Handler = b
	if len(listeners) > 0 {
		h = append(event.Chain{b}, listeners...)
	}
	if err := Parse(src, syntax, h); err != nil {
		return nil, err
	}
	return b.Finish()
}
