//-----------------------------------------------------------------------------
// Copyright (c) 2026-present Detlef Stern
//
// This file is part of wikitree.
//
// wikitree is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2026-present Detlef Stern
//-----------------------------------------------------------------------------

package reference

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"zettelstore.de/wikitree/ast"
)

// TypeParser parses the body of a reference with an explicit type prefix.
//
// It returns nil and no error if it does not recognize the body. It returns
// a *FormatError if the body is malformed.
type TypeParser interface {
	Parse(body string) (*ast.Reference, error)
}

// TypeParserFunc adapts a function to a TypeParser.
type TypeParserFunc func(body string) (*ast.Reference, error)

// Parse calls f(body).
func (f TypeParserFunc) Parse(body string) (*ast.Reference, error) { return f(body) }

// Registry maps type prefixes to their parsers.
//
// A registry is filled at startup and frozen afterwards. A frozen registry
// is safe for concurrent use without locking.
type Registry struct {
	mx      sync.Mutex // protects parsers while not frozen
	parsers map[string]TypeParser
	frozen  atomic.Bool
}

// NewRegistry creates a new, empty registry.
func NewRegistry() *Registry {
	return &Registry{parsers: map[string]TypeParser{}}
}

// Register the parser for the given type prefix.
func (r *Registry) Register(key string, tp TypeParser) {
	if key == "" || tp == nil {
		panic("reference type parser needs a key and a parser")
	}
	r.mx.Lock()
	defer r.mx.Unlock()
	if r.frozen.Load() {
		panic(fmt.Sprintf("reference type %q registered after freeze", key))
	}
	if _, found := r.parsers[key]; found {
		panic(fmt.Sprintf("reference type %q already registered", key))
	}
	r.parsers[key] = tp
}

// Freeze the registry. Further registrations will panic.
func (r *Registry) Freeze() *Registry {
	r.mx.Lock()
	r.frozen.Store(true)
	r.mx.Unlock()
	return r
}

// IsFrozen returns true if the registry does not accept registrations.
func (r *Registry) IsFrozen() bool { return r.frozen.Load() }

// Get returns the parser for the given type prefix.
func (r *Registry) Get(key string) (TypeParser, bool) {
	if r == nil {
		return nil, false
	}
	if !r.frozen.Load() {
		r.mx.Lock()
		defer r.mx.Unlock()
	}
	tp, found := r.parsers[key]
	return tp, found
}

// Keys returns all registered type prefixes, sorted.
func (r *Registry) Keys() []string {
	if r == nil {
		return nil
	}
	if !r.frozen.Load() {
		r.mx.Lock()
		defer r.mx.Unlock()
	}
	result := make([]string, 0, len(r.parsers))
	for key := range r.parsers {
		result = append(result, key)
	}
	slices.Sort(result)
	return result
}

// DefaultRegistry returns a frozen registry with all built-in type parsers.
func DefaultRegistry() *Registry {
	r, err := NewRegistryWith(BuiltinKeys()...)
	if err != nil {
		panic(err)
	}
	return r
}

// NewRegistryWith returns a frozen registry with the given built-in type
// parsers.
func NewRegistryWith(keys ...string) (*Registry, error) {
	r := NewRegistry()
	for _, key := range keys {
		tp, found := Builtin(key)
		if !found {
			return nil, fmt.Errorf("unknown reference type %q", key)
		}
		if _, found = r.parsers[key]; found {
			return nil, fmt.Errorf("reference type %q given twice", key)
		}
		r.Register(key, tp)
	}
	return r.Freeze(), nil
}
