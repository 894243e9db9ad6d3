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
	"errors"
	"net/mail"
	"slices"
	"strings"

	"zettelstore.de/wikitree/ast"
)

// Parameter keys of a reference.
const (
	ParamAnchor         = "anchor"
	ParamQueryString    = "queryString"
	ParamInterWikiAlias = "interWikiAlias"
)

// ImageScheme is the inner scheme of a URL that denotes an image.
const ImageScheme = "image:"

var builtins = map[string]TypeParser{
	ast.RefTypeURL.String():        TypeParserFunc(parseURL),
	ast.RefTypeDocument.String():   TypeParserFunc(parseDocument),
	ast.RefTypeAttachment.String(): TypeParserFunc(parseAttachment),
	ast.RefTypeMailto.String():     TypeParserFunc(parseMailto),
	ast.RefTypeInterWiki.String():  TypeParserFunc(parseInterWiki),
	ast.RefTypePath.String():       TypeParserFunc(parsePath),
	ast.RefTypeUNC.String():        TypeParserFunc(parseUNC),
	"image":                        TypeParserFunc(parseImage),
}

// BuiltinKeys returns the type prefixes of all built-in type parsers, sorted.
func BuiltinKeys() []string {
	result := make([]string, 0, len(builtins))
	for key := range builtins {
		result = append(result, key)
	}
	slices.Sort(result)
	return result
}

// Builtin returns the built-in type parser for the given prefix.
func Builtin(key string) (TypeParser, bool) {
	tp, found := builtins[key]
	return tp, found
}

func nonEmpty(rt ast.RefType) func(string) (*ast.Reference, error) {
	return func(body string) (*ast.Reference, error) {
		if body == "" {
			return nil, nil
		}
		return &ast.Reference{Value: body, Type: rt}, nil
	}
}

var (
	parseURL        = nonEmpty(ast.RefTypeURL)
	parseAttachment = nonEmpty(ast.RefTypeAttachment)
	parsePath       = nonEmpty(ast.RefTypePath)
	parseUNC        = nonEmpty(ast.RefTypeUNC)
)

// parseDocument accepts every body. An empty body references the current
// document.
func parseDocument(body string) (*ast.Reference, error) {
	ref := &ast.Reference{Value: body, Type: ast.RefTypeDocument}
	rest := body
	if pos := strings.IndexByte(rest, '#'); pos >= 0 {
		ref.Params = ref.Params.Set(ParamAnchor, rest[pos+1:])
		rest = rest[:pos]
	}
	if pos := strings.IndexByte(rest, '?'); pos >= 0 {
		ref.Params = ref.Params.Set(ParamQueryString, rest[pos+1:])
	}
	return ref, nil
}

func parseMailto(body string) (*ast.Reference, error) {
	addr := body
	if pos := strings.IndexByte(addr, '?'); pos >= 0 {
		addr = addr[:pos]
	}
	if _, err := mail.ParseAddress(addr); err != nil {
		return nil, &FormatError{Type: ast.RefTypeMailto.String(), Body: body, Err: err}
	}
	return &ast.Reference{Value: body, Type: ast.RefTypeMailto}, nil
}

var errNoAlias = errors.New("missing wiki alias")

func parseInterWiki(body string) (*ast.Reference, error) {
	alias, _, found := strings.Cut(body, ":")
	if !found || alias == "" {
		return nil, &FormatError{Type: ast.RefTypeInterWiki.String(), Body: body, Err: errNoAlias}
	}
	return &ast.Reference{
		Value:  body,
		Type:   ast.RefTypeInterWiki,
		Params: ast.Attributes{{Key: ParamInterWikiAlias, Value: alias}},
	}, nil
}

// parseImage handles the link syntax for images: the result is an URL with
// an inner "image:" scheme, which the tree builder turns into an image.
func parseImage(body string) (*ast.Reference, error) {
	if body == "" {
		return nil, nil
	}
	return &ast.Reference{Value: ImageScheme + body, Type: ast.RefTypeURL}, nil
}

// IsImage returns the location of an image, if the reference was written
// with the "image:" inner scheme.
func IsImage(ref *ast.Reference) (string, bool) {
	if ref == nil || ref.Type != ast.RefTypeURL {
		return "", false
	}
	return strings.CutPrefix(ref.Value, ImageScheme)
}
