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

// Package reference resolves the textual references of links and images into
// structured references.
package reference

import (
	"regexp"
	"strings"

	"zettelstore.de/wikitree/ast"
	"zettelstore.de/wikitree/logger"
)

// WikiMode tells whether wiki references are meaningful in the current
// environment. Without wiki mode, every reference is a literal URL.
type WikiMode interface {
	Available() bool
}

// StaticWikiMode is a WikiMode that never changes.
type StaticWikiMode bool

// Available returns the static value.
func (wm StaticWikiMode) Available() bool { return bool(wm) }

// Observer is notified about the outcome of resolutions.
type Observer interface {
	Resolved(ref *ast.Reference)
	Failed(prefix string, err error)
}

// Resolver turns raw reference text into structured references.
//
// A resolver does not change after creation and may be used concurrently,
// if its registry is frozen and its observer allows concurrent calls.
type Resolver struct {
	reg        *Registry
	wikiMode   WikiMode
	heuristics []TypeParser
	log        *logger.Logger
	observer   Observer
}

// Option configures a resolver.
type Option func(*Resolver)

// WithLogger sets the logger of the resolver.
func WithLogger(log *logger.Logger) Option { return func(r *Resolver) { r.log = log } }

// WithObserver sets the observer of the resolver.
func WithObserver(o Observer) Option { return func(r *Resolver) { r.observer = o } }

// NewLinkResolver creates a resolver for links. Untyped references that do
// not look like an URL are document references.
func NewLinkResolver(reg *Registry, wm WikiMode, opts ...Option) *Resolver {
	return newResolver(reg, wm, TypeParserFunc(parseDocument), opts)
}

// NewImageResolver creates a resolver for images. Untyped references that do
// not look like an URL are attachment references.
func NewImageResolver(reg *Registry, wm WikiMode, opts ...Option) *Resolver {
	return newResolver(reg, wm, TypeParserFunc(parseAttachment), opts)
}

func newResolver(reg *Registry, wm WikiMode, def TypeParser, opts []Option) *Resolver {
	r := &Resolver{
		reg:        reg,
		wikiMode:   wm,
		heuristics: []TypeParser{TypeParserFunc(parseURLPattern), def},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WikiMode returns true if the resolver works in wiki mode.
func (r *Resolver) WikiMode() bool { return r.wikiMode != nil && r.wikiMode.Available() }

// Parse resolves the raw reference, in the wiki mode of the resolver.
func (r *Resolver) Parse(raw string) (*ast.Reference, error) {
	return r.Resolve(raw, r.WikiMode())
}

// Resolve the raw reference.
//
// Without wiki mode, the result is always an untyped URL. Otherwise an
// explicit type prefix is tried first, then the heuristics. A reference
// nobody recognizes has type RefTypeUnknown; this is not an error. An error
// is returned only if a type parser found a malformed body.
func (r *Resolver) Resolve(raw string, wikiMode bool) (*ast.Reference, error) {
	if !wikiMode {
		return r.resolved(&ast.Reference{Value: raw, Type: ast.RefTypeURL}), nil
	}
	if prefix, body, found := strings.Cut(raw, ":"); found {
		if tp, ok := r.reg.Get(prefix); ok {
			ref, err := tp.Parse(body)
			if err != nil {
				r.log.Trace().Str("prefix", prefix).Err(err).Msg("Malformed reference")
				if r.observer != nil {
					r.observer.Failed(prefix, err)
				}
				return nil, err
			}
			if ref != nil {
				return r.resolved(withTyped(ref, true)), nil
			}
			r.log.Trace().Str("prefix", prefix).Quote("body", body).Msg("Type parser declined")
		}
	}
	for _, tp := range r.heuristics {
		ref, err := tp.Parse(raw)
		if err == nil && ref != nil {
			return r.resolved(withTyped(ref, false)), nil
		}
	}
	r.log.Trace().Quote("reference", raw).Msg("Unknown reference")
	return r.resolved(&ast.Reference{Value: raw, Type: ast.RefTypeUnknown}), nil
}

// withTyped returns a copy of the reference a type parser delivered. Parsers
// may return shared values; every node owns its own reference.
func withTyped(ref *ast.Reference, typed bool) *ast.Reference {
	res := *ref
	res.Typed = typed
	res.Params = ref.Params.Clone()
	return &res
}

func (r *Resolver) resolved(ref *ast.Reference) *ast.Reference {
	if r.observer != nil {
		r.observer.Resolved(ref)
	}
	return ref
}

var reURL = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

func parseURLPattern(raw string) (*ast.Reference, error) {
	if reURL.MatchString(raw) {
		return &ast.Reference{Value: raw, Type: ast.RefTypeURL}, nil
	}
	return nil, nil
}
