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

package builder_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zettelstore.de/wikitree/ast"
	"zettelstore.de/wikitree/builder"
	"zettelstore.de/wikitree/encoder/nativeenc"
	"zettelstore.de/wikitree/event"
	"zettelstore.de/wikitree/reference"
)

func newBuilder(opts ...builder.Option) *builder.Builder {
	reg := reference.DefaultRegistry()
	wm := reference.StaticWikiMode(true)
	return builder.New(reference.NewLinkResolver(reg, wm), reference.NewImageResolver(reg, wm), opts...)
}

func build(t *testing.T, events []event.Event, opts ...builder.Option) *ast.DocumentNode {
	t.Helper()
	b := newBuilder(opts...)
	event.Feed(b, events...)
	doc, err := b.Finish()
	require.NoError(t, err)
	require.NotNil(t, doc)
	return doc
}

// para wraps the events into a document and a paragraph.
func para(events ...event.Event) []event.Event {
	result := make([]event.Event, 0, len(events)+4)
	result = append(result, event.BeginDocument{}, event.BeginParagraph{})
	result = append(result, events...)
	return append(result, event.EndParagraph{}, event.EndDocument{})
}

func header(level int, text string) []event.Event {
	return []event.Event{
		event.BeginHeader{Level: level},
		event.Word{Text: text},
		event.EndHeader{Level: level},
	}
}

func document(parts ...[]event.Event) []event.Event {
	result := []event.Event{event.BeginDocument{}}
	for _, part := range parts {
		result = append(result, part...)
	}
	return append(result, event.EndDocument{})
}

func TestEndToEnd(t *testing.T) {
	t.Parallel()
	doc := build(t, para(
		event.Word{Text: "Hello"},
		event.Space{},
		event.Reference{Reference: "doc:Main.Home", FreeStanding: true},
	))
	assert.Equal(t,
		`(DOCUMENT (PARA (WORD "Hello") (SPACE) (LINK FREE (REF doc "Main.Home" TYPED))))`,
		nativeenc.String(doc))

	require.Len(t, doc.Children, 1)
	pn := doc.Children[0].(*ast.ParagraphNode)
	require.Len(t, pn.Children, 3)
	ln := pn.Children[2].(*ast.LinkNode)
	assert.Equal(t, &ast.Reference{Value: "Main.Home", Type: ast.RefTypeDocument, Typed: true}, ln.Ref)
	assert.True(t, ln.FreeStanding)
	assert.Empty(t, ln.Children)
}

func TestBuild(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		name   string
		events []event.Event
		exp    string
	}{
		{"empty", document(), "(DOCUMENT)"},
		{"empty paragraph", para(), "(DOCUMENT (PARA))"},
		{"leaves", para(
			event.Word{Text: "a"}, event.SpecialSymbol{Symbol: '*'}, event.NewLine{},
			event.Macro{Name: "toc", Inline: true}, event.Verbatim{Content: "x := 1", Inline: true},
		), `(DOCUMENT (PARA (WORD "a") (SYMBOL "*") (NEWLINE) (MACRO-INLINE "toc") (VERBATIM-INLINE "x := 1")))`},
		{"block leaves", document([]event.Event{
			event.HorizontalLine{Attrs: ast.Attributes{{Key: "class", Value: "thin"}}},
			event.EmptyLines{Count: 2},
			event.Macro{Name: "info", Content: "body"},
		}), `(DOCUMENT (HRULE (@ (class "thin"))) (EMPTY-LINES 2) (MACRO "info" "body"))`},
		{"list", document([]event.Event{
			event.BeginList{Ordered: true},
			event.BeginListItem{}, event.Word{Text: "one"}, event.EndListItem{},
			event.BeginListItem{}, event.Word{Text: "two"}, event.EndListItem{},
			event.EndList{Ordered: true},
		}), `(DOCUMENT (LIST-ORDERED (ITEM (WORD "one")) (ITEM (WORD "two"))))`},
		{"definition list", document([]event.Event{
			event.BeginDefinitionList{},
			event.BeginDefinitionTerm{}, event.Word{Text: "t"}, event.EndDefinitionTerm{},
			event.BeginDefinitionDescription{}, event.Word{Text: "d"}, event.EndDefinitionDescription{},
			event.EndDefinitionList{},
		}), `(DOCUMENT (DL (DT (WORD "t")) (DD (WORD "d"))))`},
		{"quotation", document([]event.Event{
			event.BeginQuotation{},
			event.BeginQuotationLine{}, event.Word{Text: "q"},
			event.BeginQuotation{}, event.BeginQuotationLine{}, event.Word{Text: "qq"}, event.EndQuotationLine{}, event.EndQuotation{},
			event.EndQuotationLine{},
			event.EndQuotation{},
		}), `(DOCUMENT (QUOTATION (QUOTATION-LINE (WORD "q") (QUOTATION (QUOTATION-LINE (WORD "qq"))))))`},
		{"table", document([]event.Event{
			event.BeginTable{},
			event.BeginTableRow{},
			event.BeginTableCell{Head: true}, event.Word{Text: "h"}, event.EndTableCell{Head: true},
			event.EndTableRow{},
			event.BeginTableRow{},
			event.BeginTableCell{}, event.Word{Text: "c"}, event.EndTableCell{},
			event.EndTableRow{},
			event.EndTable{},
		}), `(DOCUMENT (TABLE (ROW (CELL-HEAD (WORD "h"))) (ROW (CELL (WORD "c")))))`},
		{"attributes of end event", document([]event.Event{
			event.BeginParagraph{},
			event.Word{Text: "p"},
			event.EndParagraph{Attrs: ast.Attributes{{Key: "lang", Value: "de"}}},
		}), `(DOCUMENT (PARA (@ (lang "de")) (WORD "p")))`},
		{"error event", para(event.Error{Message: "Unknown macro", Description: "foo"}),
			`(DOCUMENT (PARA (ERROR "Unknown macro" "foo")))`},
		{"nested document", document([]event.Event{
			event.BeginDocument{},
			event.BeginParagraph{}, event.Word{Text: "in"}, event.EndParagraph{},
			event.EndDocument{Attrs: ast.Attributes{{Key: "source", Value: "macro"}}},
		}), `(DOCUMENT (GROUP (@ (source "macro")) (PARA (WORD "in"))))`},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.exp, nativeenc.String(build(t, tc.events)))
		})
	}
}

func TestSections(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		name   string
		events []event.Event
		exp    string
	}{
		{"1-2-2-1", document(header(1, "A"), header(2, "B"), header(2, "C"), header(1, "D")),
			`(DOCUMENT (SECTION 1 (HEADER 1 "HA" (WORD "A")) (SECTION 2 (HEADER 2 "HB" (WORD "B"))) (SECTION 2 (HEADER 2 "HC" (WORD "C")))) (SECTION 1 (HEADER 1 "HD" (WORD "D"))))`},
		{"skipped level", document(header(3, "A")),
			`(DOCUMENT (SECTION 1 (SECTION 2 (SECTION 3 (HEADER 3 "HA" (WORD "A"))))))`},
		{"content belongs to section", document(
			[]event.Event{event.BeginParagraph{}, event.Word{Text: "pre"}, event.EndParagraph{}},
			header(1, "A"),
			[]event.Event{event.BeginParagraph{}, event.Word{Text: "text"}, event.EndParagraph{}},
			header(2, "B"),
			[]event.Event{event.HorizontalLine{}},
		), `(DOCUMENT (PARA (WORD "pre")) (SECTION 1 (HEADER 1 "HA" (WORD "A")) (PARA (WORD "text")) (SECTION 2 (HEADER 2 "HB" (WORD "B")) (HRULE))))`},
		{"nested document has own sections", document(
			header(1, "A"),
			[]event.Event{event.BeginDocument{}},
			header(2, "B"),
			[]event.Event{event.EndDocument{}},
			header(2, "C"),
		), `(DOCUMENT (SECTION 1 (HEADER 1 "HA" (WORD "A")) (GROUP (SECTION 1 (SECTION 2 (HEADER 2 "HB" (WORD "B"))))) (SECTION 2 (HEADER 2 "HC" (WORD "C")))))`},
		{"header in list item", document([]event.Event{
			event.BeginList{}, event.BeginListItem{},
			event.BeginHeader{Level: 1}, event.Word{Text: "A"}, event.EndHeader{Level: 1},
			event.EndListItem{}, event.EndList{},
		}), `(DOCUMENT (LIST-UNORDERED (ITEM (SECTION 1 (HEADER 1 "HA" (WORD "A"))))))`},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.exp, nativeenc.String(build(t, tc.events)))
		})
	}
}

func TestTwoTopLevelSections(t *testing.T) {
	t.Parallel()
	doc := build(t, document(header(1, "A"), header(2, "B"), header(2, "C"), header(1, "D")))
	require.Len(t, doc.Children, 2)
	first := doc.Children[0].(*ast.SectionNode)
	assert.Equal(t, 1, first.Level)
	assert.Equal(t, "HA", first.Header().ID)
	nested := 0
	for _, child := range first.Children {
		if sn, ok := child.(*ast.SectionNode); ok {
			assert.Equal(t, 2, sn.Level)
			nested++
		}
	}
	assert.Equal(t, 2, nested)
}

func TestFormat(t *testing.T) {
	t.Parallel()
	bold := []ast.FormatKind{ast.FormatBold}
	classX := ast.Attributes{{Key: "class", Value: "x"}}
	testcases := []struct {
		name   string
		events []event.Event
		exp    string
	}{
		{"merge", para(
			event.BeginFormat{Styles: bold}, event.Word{Text: "a"}, event.EndFormat{Styles: bold},
			event.BeginFormat{Styles: bold}, event.Word{Text: "b"}, event.EndFormat{Styles: bold},
		), `(DOCUMENT (PARA (FORMAT-BOLD (WORD "a") (WORD "b"))))`},
		{"no merge with intervening word", para(
			event.BeginFormat{Styles: bold}, event.Word{Text: "a"}, event.EndFormat{Styles: bold},
			event.Space{},
			event.BeginFormat{Styles: bold}, event.Word{Text: "b"}, event.EndFormat{Styles: bold},
		), `(DOCUMENT (PARA (FORMAT-BOLD (WORD "a")) (SPACE) (FORMAT-BOLD (WORD "b"))))`},
		{"no merge with other attributes", para(
			event.BeginFormat{Styles: bold}, event.Word{Text: "a"}, event.EndFormat{Styles: bold},
			event.BeginFormat{Styles: bold, Attrs: classX}, event.Word{Text: "b"}, event.EndFormat{Styles: bold, Attrs: classX},
		), `(DOCUMENT (PARA (FORMAT-BOLD (WORD "a")) (FORMAT-BOLD (@ (class "x")) (WORD "b"))))`},
		{"no merge with other style", para(
			event.BeginFormat{Styles: bold}, event.Word{Text: "a"}, event.EndFormat{Styles: bold},
			event.BeginFormat{Styles: []ast.FormatKind{ast.FormatItalic}}, event.Word{Text: "b"},
			event.EndFormat{Styles: []ast.FormatKind{ast.FormatItalic}},
		), `(DOCUMENT (PARA (FORMAT-BOLD (WORD "a")) (FORMAT-ITALIC (WORD "b"))))`},
		{"unwrap", para(
			event.Word{Text: "a"},
			event.BeginFormat{}, event.Word{Text: "b"}, event.Space{}, event.EndFormat{},
		), `(DOCUMENT (PARA (WORD "a") (WORD "b") (SPACE)))`},
		{"nested styles", para(
			event.BeginFormat{Styles: []ast.FormatKind{ast.FormatBold, ast.FormatItalic, ast.FormatMonospace}},
			event.Word{Text: "t"},
			event.EndFormat{Styles: []ast.FormatKind{ast.FormatBold, ast.FormatItalic, ast.FormatMonospace}, Attrs: classX},
		), `(DOCUMENT (PARA (FORMAT-BOLD (@ (class "x")) (FORMAT-ITALIC (FORMAT-MONOSPACE (WORD "t"))))))`},
		{"attributes only", para(
			event.BeginFormat{Attrs: classX}, event.Word{Text: "t"}, event.EndFormat{Attrs: classX},
		), `(DOCUMENT (PARA (FORMAT (@ (class "x")) (WORD "t"))))`},
		{"merge nested", para(
			event.BeginFormat{Styles: []ast.FormatKind{ast.FormatBold, ast.FormatItalic}}, event.Word{Text: "a"},
			event.EndFormat{Styles: []ast.FormatKind{ast.FormatBold, ast.FormatItalic}},
			event.BeginFormat{Styles: []ast.FormatKind{ast.FormatBold, ast.FormatItalic}}, event.Word{Text: "b"},
			event.EndFormat{Styles: []ast.FormatKind{ast.FormatBold, ast.FormatItalic}},
		), `(DOCUMENT (PARA (FORMAT-BOLD (FORMAT-ITALIC (WORD "a")) (FORMAT-ITALIC (WORD "b")))))`},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.exp, nativeenc.String(build(t, tc.events)))
		})
	}
}

func TestReferences(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		name   string
		events []event.Event
		exp    string
	}{
		{"untyped url", para(event.Reference{Reference: "https://x.test", FreeStanding: true}),
			`(DOCUMENT (PARA (LINK FREE (REF url "https://x.test"))))`},
		{"free-standing ignores label", para(event.Reference{Reference: "https://x.test", Label: "x", FreeStanding: true}),
			`(DOCUMENT (PARA (LINK FREE (REF url "https://x.test"))))`},
		{"label as words", para(event.Reference{Reference: "Main.Home", Label: "go  home"}),
			`(DOCUMENT (PARA (LINK (REF doc "Main.Home") (WORD "go") (SPACE) (SPACE) (WORD "home"))))`},
		{"no label", para(event.Reference{Reference: "Main.Home#top"}),
			`(DOCUMENT (PARA (LINK (REF doc "Main.Home#top" (@ (anchor "top"))))))`},
		{"image via link", para(event.Reference{Reference: "image:pic.png", Label: "ignored"}),
			`(DOCUMENT (PARA (IMAGE (REF attach "pic.png"))))`},
		{"typed image via link", para(event.Reference{Reference: "image:url:http://x.test/a.png", FreeStanding: true}),
			`(DOCUMENT (PARA (IMAGE FREE (REF url "http://x.test/a.png" TYPED))))`},
		{"image event", para(event.Image{Reference: "http://x.test/a.png", Attrs: ast.Attributes{{Key: "width", Value: "10"}}}),
			`(DOCUMENT (PARA (IMAGE (REF url "http://x.test/a.png") (@ (width "10")))))`},
		{"link scope", para(
			event.BeginLink{Reference: "doc:Main.Home"},
			event.Word{Text: "Home"},
			event.EndLink{Reference: "doc:Main.Home"},
		), `(DOCUMENT (PARA (LINK (REF doc "Main.Home" TYPED) (WORD "Home"))))`},
		{"image via link scope", para(
			event.BeginLink{Reference: "image:pic.png"},
			event.Word{Text: "alt"},
			event.EndLink{Reference: "image:pic.png"},
		), `(DOCUMENT (PARA (IMAGE (REF attach "pic.png"))))`},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.exp, nativeenc.String(build(t, tc.events)))
		})
	}
}

func TestFlatModeLinks(t *testing.T) {
	t.Parallel()
	reg := reference.DefaultRegistry()
	wm := reference.StaticWikiMode(false)
	b := builder.New(reference.NewLinkResolver(reg, wm), reference.NewImageResolver(reg, wm))
	event.Feed(b, para(event.Reference{Reference: "image:pic.png", FreeStanding: true})...)
	doc, err := b.Finish()
	require.NoError(t, err)
	assert.Equal(t, `(DOCUMENT (PARA (IMAGE FREE (REF url "pic.png"))))`, nativeenc.String(doc))
}

func findErrors(node ast.Node) []*ast.ErrorNode {
	var result []*ast.ErrorNode
	ast.Inspect(node, func(n ast.Node) bool {
		if en, ok := n.(*ast.ErrorNode); ok {
			result = append(result, en)
		}
		return true
	})
	return result
}

func TestReferenceFormatError(t *testing.T) {
	t.Parallel()
	doc := build(t, para(
		event.Word{Text: "before"},
		event.Reference{Reference: "mailto:not an address", Label: "mail me"},
		event.Word{Text: "after"},
	))
	errs := findErrors(doc)
	require.Len(t, errs, 1)
	assert.Equal(t, "Invalid reference mailto:not an address", errs[0].Message)
	assert.NotEmpty(t, errs[0].Description)

	pn := doc.Children[0].(*ast.ParagraphNode)
	require.Len(t, pn.Children, 3)
	assert.IsType(t, &ast.WordNode{}, pn.Children[2])
	ast.Inspect(doc, func(n ast.Node) bool {
		_, isLink := n.(*ast.LinkNode)
		assert.False(t, isLink, "no link expected")
		return true
	})
}

func TestLabelParser(t *testing.T) {
	t.Parallel()
	bold := []ast.FormatKind{ast.FormatBold}
	ip := builder.InlineParserFunc(func(text string, h event.Handler) error {
		if text == "fail" {
			return errors.New("boom")
		}
		event.Feed(h,
			event.BeginFormat{Styles: bold},
			event.Word{Text: text},
			event.EndFormat{Styles: bold},
		)
		if text == "nested" {
			h.Handle(event.Reference{Reference: "Other", Label: "inner"})
		}
		return nil
	})
	testcases := []struct {
		name  string
		label string
		exp   string
	}{
		{"formatted", "go", `(DOCUMENT (PARA (LINK (REF doc "Main") (FORMAT-BOLD (WORD "go")))))`},
		{"error", "fail", `(DOCUMENT (PARA (LINK (REF doc "Main") (ERROR "Unable to parse link label" "boom"))))`},
		{"nested link", "nested",
			`(DOCUMENT (PARA (LINK (REF doc "Main") (FORMAT-BOLD (WORD "nested")) (LINK (REF doc "Other") (FORMAT-BOLD (WORD "inner"))))))`},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			doc := build(t, para(event.Reference{Reference: "Main", Label: tc.label}), builder.WithInlineParser(ip))
			assert.Equal(t, tc.exp, nativeenc.String(doc))
		})
	}
}

func TestUnbalancedLabel(t *testing.T) {
	t.Parallel()
	ip := builder.InlineParserFunc(func(_ string, h event.Handler) error {
		h.Handle(event.EndParagraph{})
		return nil
	})
	doc := build(t, para(event.Reference{Reference: "Main", Label: "x"}), builder.WithInlineParser(ip))
	errs := findErrors(doc)
	require.Len(t, errs, 1)
	assert.Equal(t, "Unable to parse link label", errs[0].Message)
}

func TestAnchorIDs(t *testing.T) {
	t.Parallel()
	events := document(
		header(1, "Intro"),
		header(1, "Intro"),
		[]event.Event{
			event.BeginHeader{Level: 2},
			event.Word{Text: "Über"}, event.Space{},
			event.BeginFormat{Styles: []ast.FormatKind{ast.FormatBold}}, event.Word{Text: "uns"},
			event.EndFormat{Styles: []ast.FormatKind{ast.FormatBold}},
			event.EndHeader{Level: 2},
		},
		header(2, "Intro"),
	)
	var ids []string
	ast.Inspect(build(t, events), func(n ast.Node) bool {
		if hn, ok := n.(*ast.HeaderNode); ok {
			ids = append(ids, hn.ID)
		}
		return true
	})
	assert.Equal(t, []string{"HIntro", "HIntro-1", "HUberuns", "HIntro-2"}, ids)
}

func TestIdempotence(t *testing.T) {
	t.Parallel()
	events := sampleEvents()
	first := build(t, events)
	second := build(t, events)
	assert.Equal(t, first, second)
	assert.Equal(t, nativeenc.String(first), nativeenc.String(second))
}

func sampleEvents() []event.Event {
	bold := []ast.FormatKind{ast.FormatBold}
	return document(
		header(1, "Intro"),
		[]event.Event{
			event.BeginParagraph{},
			event.Word{Text: "See"}, event.Space{},
			event.Reference{Reference: "doc:Main.Home", Label: "home page"}, event.Space{},
			event.BeginLink{Reference: "https://x.test"},
			event.BeginFormat{Styles: bold}, event.Word{Text: "x"}, event.EndFormat{Styles: bold},
			event.EndLink{Reference: "https://x.test"},
			event.NewLine{},
			event.Image{Reference: "pic.png", FreeStanding: true},
			event.EndParagraph{},
		},
		header(2, "Details"),
		[]event.Event{
			event.BeginList{},
			event.BeginListItem{}, event.Word{Text: "one"}, event.EndListItem{},
			event.EndList{},
			event.BeginTable{}, event.BeginTableRow{},
			event.BeginTableCell{Head: true}, event.Word{Text: "h"}, event.EndTableCell{Head: true},
			event.EndTableRow{}, event.EndTable{},
			event.Verbatim{Content: "code"},
		},
		header(1, "Intro"),
	)
}

func TestEmitRoundTrip(t *testing.T) {
	t.Parallel()
	doc := build(t, sampleEvents())
	var rec event.Recorder
	event.Emit(doc, &rec)
	again := build(t, rec.Events())
	assert.Equal(t, nativeenc.String(doc), nativeenc.String(again))
}

func TestDescendantCount(t *testing.T) {
	t.Parallel()
	events := para(
		event.Word{Text: "a"}, event.Space{},
		event.BeginFormat{Styles: []ast.FormatKind{ast.FormatItalic}}, event.Word{Text: "b"},
		event.EndFormat{Styles: []ast.FormatKind{ast.FormatItalic}},
		event.Reference{Reference: "x", FreeStanding: true},
		event.Error{Message: "e"},
	)
	events = append(events[:len(events)-1],
		event.BeginList{}, event.BeginListItem{}, event.Word{Text: "c"}, event.EndListItem{}, event.EndList{},
		event.EmptyLines{Count: 1},
		event.EndDocument{},
	)
	expected := 0
	for _, ev := range events[:len(events)-1] {
		if k := ev.Kind(); k.IsEnd() || !k.IsBegin() {
			expected++
		}
	}
	assert.Equal(t, expected, ast.CountNodes(build(t, events)))
}

func TestStructureErrors(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		name   string
		events []event.Event
		cause  error
		pos    int
		kind   event.Kind
	}{
		{"no document", []event.Event{event.Word{Text: "a"}}, builder.ErrUnbalanced, 1, event.KindWord},
		{"end without begin", []event.Event{event.BeginDocument{}, event.EndParagraph{}}, builder.ErrUnbalanced, 2, event.KindEndParagraph},
		{"mismatch", []event.Event{event.BeginDocument{}, event.BeginParagraph{}, event.EndList{}}, builder.ErrUnbalanced, 3, event.KindEndList},
		{"open header", []event.Event{event.BeginDocument{}, event.BeginHeader{Level: 1}, event.EndDocument{}}, builder.ErrUnbalanced, 3, event.KindEndDocument},
		{"trailing", []event.Event{event.BeginDocument{}, event.EndDocument{}, event.Word{Text: "a"}}, builder.ErrTrailing, 3, event.KindWord},
		{"second document", []event.Event{event.BeginDocument{}, event.EndDocument{}, event.BeginDocument{}}, builder.ErrTrailing, 3, event.KindBeginDocument},
		{"incomplete", []event.Event{event.BeginDocument{}, event.BeginParagraph{}}, builder.ErrIncomplete, 2, 0},
		{"nothing", nil, builder.ErrIncomplete, 0, 0},
		{"header level", []event.Event{event.BeginDocument{}, event.BeginHeader{Level: 0}}, builder.ErrHeaderLevel, 2, event.KindBeginHeader},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBuilder()
			event.Feed(b, tc.events...)
			doc, err := b.Finish()
			assert.Nil(t, doc)
			require.ErrorIs(t, err, tc.cause)
			var se *builder.StructureError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tc.pos, se.Pos)
			assert.Equal(t, tc.kind, se.Kind)
			assert.Equal(t, err, b.Err())

			b.Handle(event.EndDocument{})
			assert.Equal(t, err, b.Err(), "error must be sticky")
		})
	}
}

func TestStructureErrorText(t *testing.T) {
	t.Parallel()
	b := newBuilder()
	event.Feed(b, event.BeginDocument{}, event.BeginParagraph{}, event.EndList{})
	err := b.Err()
	require.Error(t, err)
	assert.Equal(t, "unbalanced event: EndList at event 3 (open scope is BeginParagraph)", err.Error())

	b = newBuilder()
	event.Feed(b, event.BeginDocument{}, event.BeginList{}, event.BeginListItem{})
	_, err = b.Finish()
	require.Error(t, err)
	assert.True(t, strings.HasSuffix(err.Error(), "(BeginDocument,BeginList,BeginListItem)"), err.Error())
}

type recordObserver struct {
	built  []int
	failed []error
}

func (o *recordObserver) DocumentBuilt(nodes int) { o.built = append(o.built, nodes) }
func (o *recordObserver) BuildFailed(err error)   { o.failed = append(o.failed, err) }

func TestObserver(t *testing.T) {
	t.Parallel()
	var obs recordObserver
	b := newBuilder(builder.WithObserver(&obs))
	event.Feed(b, para(event.Word{Text: "a"}, event.Reference{Reference: "x", Label: "y"})...)
	_, err := b.Finish()
	require.NoError(t, err)
	_, err = b.Finish()
	require.NoError(t, err)
	assert.Equal(t, []int{4}, obs.built)
	assert.Empty(t, obs.failed)

	obs = recordObserver{}
	b = newBuilder(builder.WithObserver(&obs))
	b.Handle(event.BeginDocument{})
	_, err = b.Finish()
	require.Error(t, err)
	_, err = b.Finish()
	require.Error(t, err)
	assert.Empty(t, obs.built)
	assert.Len(t, obs.failed, 1)
}
