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

package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zettelstore.de/wikitree/ast"
	"zettelstore.de/wikitree/event"
)

func TestKindClasses(t *testing.T) {
	t.Parallel()
	pairs := []struct{ begin, end event.Event }{
		{event.BeginDocument{}, event.EndDocument{}},
		{event.BeginParagraph{}, event.EndParagraph{}},
		{event.BeginHeader{}, event.EndHeader{}},
		{event.BeginList{}, event.EndList{}},
		{event.BeginListItem{}, event.EndListItem{}},
		{event.BeginDefinitionList{}, event.EndDefinitionList{}},
		{event.BeginDefinitionTerm{}, event.EndDefinitionTerm{}},
		{event.BeginDefinitionDescription{}, event.EndDefinitionDescription{}},
		{event.BeginQuotation{}, event.EndQuotation{}},
		{event.BeginQuotationLine{}, event.EndQuotationLine{}},
		{event.BeginTable{}, event.EndTable{}},
		{event.BeginTableRow{}, event.EndTableRow{}},
		{event.BeginTableCell{}, event.EndTableCell{}},
		{event.BeginFormat{}, event.EndFormat{}},
		{event.BeginLink{}, event.EndLink{}},
	}
	for _, p := range pairs {
		bk, ek := p.begin.Kind(), p.end.Kind()
		assert.True(t, bk.IsBegin(), bk.String())
		assert.False(t, bk.IsEnd(), bk.String())
		assert.True(t, ek.IsEnd(), ek.String())
		assert.False(t, ek.IsBegin(), ek.String())
		assert.Equal(t, bk, ek.Begin(), ek.String())
		assert.Equal(t, "Begin"+ek.String()[len("End"):], bk.String())
	}

	leaves := []event.Event{
		event.Word{}, event.Space{}, event.SpecialSymbol{}, event.NewLine{},
		event.EmptyLines{}, event.HorizontalLine{}, event.Macro{}, event.Verbatim{},
		event.Reference{}, event.Image{}, event.Error{},
	}
	for _, ev := range leaves {
		k := ev.Kind()
		assert.False(t, k.IsBegin() || k.IsEnd(), k.String())
		assert.Equal(t, k, k.Begin())
	}
	assert.Equal(t, "Kind(0)", event.Kind(0).String())
	assert.Equal(t, "Kind(200)", event.Kind(200).String())
}

func TestKindIsInline(t *testing.T) {
	t.Parallel()
	assert.True(t, event.KindWord.IsInline())
	assert.True(t, event.KindBeginFormat.IsInline())
	assert.True(t, event.KindReference.IsInline())
	assert.False(t, event.KindBeginParagraph.IsInline())
	assert.False(t, event.KindMacro.IsInline())
	assert.False(t, event.KindEmptyLines.IsInline())
}

func TestChainAndRecorder(t *testing.T) {
	t.Parallel()
	var r1, r2 event.Recorder
	count := 0
	chain := event.Chain{&r1, event.HandlerFunc(func(event.Event) { count++ }), &r2}
	event.Feed(chain, event.BeginDocument{}, event.Word{Text: "a"}, event.EndDocument{})

	require.Equal(t, 3, r1.Len())
	assert.Equal(t, r1.Events(), r2.Events())
	assert.Equal(t, 3, count)

	var r3 event.Recorder
	r1.Replay(&r3)
	assert.Equal(t, r1.Events(), r3.Events())
	r1.Reset()
	assert.Zero(t, r1.Len())
}

func TestEmit(t *testing.T) {
	t.Parallel()
	doc := &ast.DocumentNode{Children: ast.NodeSlice{
		&ast.SectionNode{Level: 1, Children: ast.NodeSlice{
			&ast.HeaderNode{Level: 1, ID: "HTitle", Children: ast.NodeSlice{&ast.WordNode{Text: "Title"}}},
			&ast.ParagraphNode{Children: ast.NodeSlice{
				&ast.FormatNode{Format: ast.FormatBold, Children: ast.NodeSlice{&ast.WordNode{Text: "b"}}},
				&ast.SpaceNode{},
				&ast.LinkNode{
					Ref:          &ast.Reference{Value: "Main.Home", Type: ast.RefTypeDocument, Typed: true},
					FreeStanding: true,
				},
				&ast.LinkNode{
					Ref:      &ast.Reference{Value: "http://x.test", Type: ast.RefTypeURL},
					Children: ast.NodeSlice{&ast.WordNode{Text: "x"}},
				},
				&ast.ImageNode{Ref: &ast.Reference{Value: "a.png", Type: ast.RefTypeAttachment}},
			}},
		}},
		&ast.EmptyLinesNode{Count: 2},
		&ast.GroupNode{Attrs: ast.Attributes{{Key: "source", Value: "macro"}}, Children: ast.NodeSlice{
			&ast.ErrorNode{Message: "m", Description: "d"},
		}},
	}}

	var rec event.Recorder
	event.Emit(doc, &rec)
	exp := []event.Event{
		event.BeginDocument{},
		event.BeginHeader{Level: 1},
		event.Word{Text: "Title"},
		event.EndHeader{Level: 1},
		event.BeginParagraph{},
		event.BeginFormat{Styles: []ast.FormatKind{ast.FormatBold}},
		event.Word{Text: "b"},
		event.EndFormat{Styles: []ast.FormatKind{ast.FormatBold}},
		event.Space{},
		event.Reference{Reference: "doc:Main.Home", FreeStanding: true},
		event.BeginLink{Reference: "http://x.test"},
		event.Word{Text: "x"},
		event.EndLink{Reference: "http://x.test"},
		event.Image{Reference: "a.png"},
		event.EndParagraph{},
		event.EmptyLines{Count: 2},
		event.BeginDocument{Attrs: ast.Attributes{{Key: "source", Value: "macro"}}},
		event.Error{Message: "m", Description: "d"},
		event.EndDocument{Attrs: ast.Attributes{{Key: "source", Value: "macro"}}},
		event.EndDocument{},
	}
	assert.Equal(t, exp, rec.Events())

	rec.Reset()
	event.Emit(nil, &rec)
	assert.Zero(t, rec.Len())
}
