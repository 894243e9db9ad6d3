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

package reference_test

import (
	"errors"
	"net/mail"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zettelstore.de/wikitree/ast"
	"zettelstore.de/wikitree/reference"
)

func TestResolveFlatMode(t *testing.T) {
	t.Parallel()
	r := reference.NewLinkResolver(reference.DefaultRegistry(), reference.StaticWikiMode(false))
	for _, raw := range []string{"http://x.test", "url:http://x.test", "doc:Main.Home", "mailto:bad", ""} {
		ref, err := r.Parse(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, &ast.Reference{Value: raw, Type: ast.RefTypeURL}, ref, raw)
	}
}

func TestResolveWikiMode(t *testing.T) {
	t.Parallel()
	reg := reference.DefaultRegistry()
	links := reference.NewLinkResolver(reg, reference.StaticWikiMode(true))
	images := reference.NewImageResolver(reg, reference.StaticWikiMode(true))
	testcases := []struct {
		images bool
		raw    string
		exp    ast.Reference
	}{
		{false, "url:http://x.test", ast.Reference{Value: "http://x.test", Type: ast.RefTypeURL, Typed: true}},
		{false, "http://x.test", ast.Reference{Value: "http://x.test", Type: ast.RefTypeURL}},
		{false, "doc:Main.Home", ast.Reference{Value: "Main.Home", Type: ast.RefTypeDocument, Typed: true}},
		{false, "Main.Home", ast.Reference{Value: "Main.Home", Type: ast.RefTypeDocument}},
		{false, "doc:", ast.Reference{Value: "", Type: ast.RefTypeDocument, Typed: true}},
		{false, "Space.Page?x=1#sec", ast.Reference{
			Value:  "Space.Page?x=1#sec",
			Type:   ast.RefTypeDocument,
			Params: ast.Attributes{{Key: "anchor", Value: "sec"}, {Key: "queryString", Value: "x=1"}},
		}},
		{false, `C:\path\file`, ast.Reference{Value: `C:\path\file`, Type: ast.RefTypeDocument}},
		{false, "attach:a.png", ast.Reference{Value: "a.png", Type: ast.RefTypeAttachment, Typed: true}},
		{false, "attach:", ast.Reference{Value: "attach:", Type: ast.RefTypeDocument}},
		{false, "url:", ast.Reference{Value: "url:", Type: ast.RefTypeDocument}},
		{false, "mailto:john@x.test", ast.Reference{Value: "john@x.test", Type: ast.RefTypeMailto, Typed: true}},
		{false, "interwiki:wikipedia:Go", ast.Reference{
			Value:  "wikipedia:Go",
			Type:   ast.RefTypeInterWiki,
			Typed:  true,
			Params: ast.Attributes{{Key: "interWikiAlias", Value: "wikipedia"}},
		}},
		{false, "path:/download/x.zip", ast.Reference{Value: "/download/x.zip", Type: ast.RefTypePath, Typed: true}},
		{false, `unc:\\server\share`, ast.Reference{Value: `\\server\share`, Type: ast.RefTypeUNC, Typed: true}},
		{false, "image:a.png", ast.Reference{Value: "image:a.png", Type: ast.RefTypeURL, Typed: true}},
		{true, "a.png", ast.Reference{Value: "a.png", Type: ast.RefTypeAttachment}},
		{true, "attach:a.png", ast.Reference{Value: "a.png", Type: ast.RefTypeAttachment, Typed: true}},
		{true, "https://x.test/a.png", ast.Reference{Value: "https://x.test/a.png", Type: ast.RefTypeURL}},
		{true, "", ast.Reference{Value: "", Type: ast.RefTypeUnknown}},
	}
	for _, tc := range testcases {
		r := links
		if tc.images {
			r = images
		}
		got, err := r.Resolve(tc.raw, true)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, &tc.exp, got, tc.raw)
	}
}

func TestResolveFormatError(t *testing.T) {
	t.Parallel()
	obs := &recordObserver{}
	r := reference.NewLinkResolver(reference.DefaultRegistry(), reference.StaticWikiMode(true), reference.WithObserver(obs))
	for _, raw := range []string{"mailto:not an address", "mailto:", "interwiki:nowiki", "interwiki::Go"} {
		ref, err := r.Parse(raw)
		assert.Nil(t, ref, raw)
		var fe *reference.FormatError
		require.ErrorAs(t, err, &fe, raw)
		assert.Equal(t, raw[:len(fe.Type)], fe.Type)
		assert.NotEmpty(t, fe.Error())
	}
	assert.Equal(t, []string{"mailto", "mailto", "interwiki", "interwiki"}, obs.failed)
	assert.Empty(t, obs.resolved)

	_, err := r.Parse("mailto:x")
	_, addrErr := mail.ParseAddress("x")
	assert.Equal(t, addrErr.Error(), errors.Unwrap(err).Error())
}

func TestResolveSubsetRegistry(t *testing.T) {
	t.Parallel()
	reg, err := reference.NewRegistryWith("url")
	require.NoError(t, err)
	r := reference.NewLinkResolver(reg, reference.StaticWikiMode(true))
	ref, err := r.Parse("mailto:not an address")
	require.NoError(t, err)
	assert.Equal(t, &ast.Reference{Value: "mailto:not an address", Type: ast.RefTypeDocument}, ref)
}

func TestResolveWithoutWikiMode(t *testing.T) {
	t.Parallel()
	r := reference.NewLinkResolver(reference.DefaultRegistry(), nil)
	assert.False(t, r.WikiMode())
	ref, err := r.Parse("doc:Main.Home")
	require.NoError(t, err)
	assert.Equal(t, ast.RefTypeURL, ref.Type)
	assert.False(t, ref.Typed)
}

func TestResolveRoundTrip(t *testing.T) {
	t.Parallel()
	r := reference.NewLinkResolver(reference.DefaultRegistry(), reference.StaticWikiMode(true))
	for _, raw := range []string{"url:http://x.test", "http://x.test", "doc:Main.Home", "Main.Home#x", "interwiki:w:Go"} {
		ref, err := r.Parse(raw)
		require.NoError(t, err)
		again, err := r.Parse(ref.String())
		require.NoError(t, err)
		assert.Equal(t, ref, again, raw)
	}
}

func TestIsImage(t *testing.T) {
	t.Parallel()
	loc, ok := reference.IsImage(&ast.Reference{Value: "image:a.png", Type: ast.RefTypeURL, Typed: true})
	assert.True(t, ok)
	assert.Equal(t, "a.png", loc)
	_, ok = reference.IsImage(&ast.Reference{Value: "image:a.png", Type: ast.RefTypeDocument})
	assert.False(t, ok)
	_, ok = reference.IsImage(nil)
	assert.False(t, ok)
}

func TestRegistry(t *testing.T) {
	t.Parallel()
	reg := reference.NewRegistry()
	tp := reference.TypeParserFunc(func(body string) (*ast.Reference, error) {
		return &ast.Reference{Value: body, Type: ast.RefTypePath}, nil
	})
	reg.Register("x", tp)
	assert.Panics(t, func() { reg.Register("x", tp) })
	_, found := reg.Get("x")
	assert.True(t, found)
	_, found = reg.Get("y")
	assert.False(t, found)

	assert.False(t, reg.IsFrozen())
	reg.Freeze()
	assert.True(t, reg.IsFrozen())
	assert.Panics(t, func() { reg.Register("y", tp) })
	assert.Equal(t, []string{"x"}, reg.Keys())

	_, err := reference.NewRegistryWith("url", "nope")
	assert.Error(t, err)
	_, err = reference.NewRegistryWith("url", "url")
	assert.Error(t, err)

	assert.Equal(t, reference.BuiltinKeys(), reference.DefaultRegistry().Keys())
	assert.Equal(t, []string{"attach", "doc", "image", "interwiki", "mailto", "path", "unc", "url"}, reference.BuiltinKeys())
}

func TestResolveCopiesParserResult(t *testing.T) {
	t.Parallel()
	shared := &ast.Reference{Value: "a", Type: ast.RefTypePath, Params: ast.Attributes{{Key: "k", Value: "v"}}}
	reg := reference.NewRegistry()
	reg.Register("x", reference.TypeParserFunc(func(string) (*ast.Reference, error) { return shared, nil }))
	r := reference.NewLinkResolver(reg.Freeze(), reference.StaticWikiMode(true))

	first, err := r.Parse("x:a")
	require.NoError(t, err)
	second, err := r.Parse("x:a")
	require.NoError(t, err)
	assert.True(t, first.Typed)
	assert.NotSame(t, first, second)
	assert.NotSame(t, shared, first)
	assert.False(t, shared.Typed, "parser result must not be modified")

	first.Params[0].Value = "changed"
	assert.Equal(t, "v", second.Params[0].Value)
	assert.Equal(t, "v", shared.Params[0].Value)
}

func TestBuiltin(t *testing.T) {
	t.Parallel()
	for _, key := range reference.BuiltinKeys() {
		_, found := reference.Builtin(key)
		assert.True(t, found, key)
	}
	_, found := reference.Builtin("ftp")
	assert.False(t, found)
}

func TestConcurrentResolve(t *testing.T) {
	t.Parallel()
	r := reference.NewLinkResolver(reference.DefaultRegistry(), reference.StaticWikiMode(true))
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				ref, err := r.Parse("doc:Main.Home")
				if err != nil || ref.Type != ast.RefTypeDocument {
					t.Errorf("unexpected result %v/%v", ref, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

type recordObserver struct {
	resolved []*ast.Reference
	failed   []string
}

func (o *recordObserver) Resolved(ref *ast.Reference) { o.resolved = append(o.resolved, ref) }
func (o *recordObserver) Failed(prefix string, _ error) { o.failed = append(o.failed, prefix) }
