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

// Package markdown provides a parser for markdown.
package markdown

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	gm "github.com/yuin/goldmark"
	gmAst "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gmExt "github.com/yuin/goldmark/extension/ast"
	gmParser "github.com/yuin/goldmark/parser"
	gmText "github.com/yuin/goldmark/text"

	"zettelstore.de/wikitree/ast"
	"zettelstore.de/wikitree/event"
	"zettelstore.de/wikitree/input"
	"zettelstore.de/wikitree/parser"
)

func init() {
	parser.Register(&parser.Info{
		Name:        "markdown",
		AltNames:    []string{"md"},
		Parse:       parseBlocks,
		ParseInline: parseInlines,
	})
}

var md = gm.New(
	gm.WithExtensions(extension.GFM, extension.DefinitionList),
	gm.WithParserOptions(gmParser.WithAttribute()),
)

func parseBlocks(inp *input.Input, _ string, h event.Handler) error {
	p := parseMarkdown(inp, h)
	h.Handle(event.BeginDocument{})
	p.acceptBlockChildren(p.docNode)
	h.Handle(event.EndDocument{})
	return nil
}

// parseInlines delivers the inline content of all blocks, separated by a space.
func parseInlines(inp *input.Input, _ string, h event.Handler) error {
	p := parseMarkdown(inp, h)
	first := true
	for child := p.docNode.FirstChild(); child != nil; child = child.NextSibling() {
		if !first {
			h.Handle(event.Space{})
		}
		switch child.(type) {
		case *gmAst.Paragraph, *gmAst.TextBlock, *gmAst.Heading:
			p.acceptInlineChildren(child)
		default:
			parser.EmitText(h, strings.ReplaceAll(plainText(child, p.source), "\n", " "))
		}
		first = false
	}
	return nil
}

func parseMarkdown(inp *input.Input, h event.Handler) *mdP {
	source := inp.Rest()
	node := md.Parser().Parse(gmText.NewReader(source))
	return &mdP{source: source, docNode: node, h: h}
}

type mdP struct {
	source  []byte
	docNode gmAst.Node
	h       event.Handler
}

func (p *mdP) acceptBlockChildren(node gmAst.Node) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		p.acceptBlock(child)
	}
}

func (p *mdP) acceptBlock(node gmAst.Node) {
	switch n := node.(type) {
	case *gmAst.Paragraph:
		p.acceptParagraph(n)
	case *gmAst.TextBlock:
		p.acceptInlineChildren(n)
	case *gmAst.Heading:
		p.h.Handle(event.BeginHeader{Level: n.Level, Attrs: attrsOf(n)})
		p.acceptInlineChildren(n)
		p.h.Handle(event.EndHeader{Level: n.Level, Attrs: attrsOf(n)})
	case *gmAst.ThematicBreak:
		p.h.Handle(event.HorizontalLine{Attrs: attrsOf(n)})
	case *gmAst.CodeBlock:
		p.h.Handle(event.Verbatim{Content: strings.Join(p.acceptRawText(n), "\n")})
	case *gmAst.FencedCodeBlock:
		p.acceptFencedCodeBlock(n)
	case *gmAst.Blockquote:
		p.acceptBlockquote(n)
	case *gmAst.List:
		p.acceptList(n)
	case *gmAst.HTMLBlock:
		p.acceptHTMLBlock(n)
	case *gmExt.Table:
		p.acceptTable(n)
	case *gmExt.DefinitionList:
		p.acceptDefinitionList(n)
	default:
		p.unhandled(node)
	}
}

func (p *mdP) unhandled(node gmAst.Node) {
	p.h.Handle(event.Error{
		Message:     "Unhandled markdown node",
		Description: node.Kind().String(),
	})
}

func (p *mdP) acceptParagraph(node *gmAst.Paragraph) {
	if node.ChildCount() == 0 {
		return
	}
	p.h.Handle(event.BeginParagraph{})
	p.acceptInlineChildren(node)
	p.h.Handle(event.EndParagraph{})
}

func (p *mdP) acceptFencedCodeBlock(node *gmAst.FencedCodeBlock) {
	var a ast.Attributes
	if language := node.Language(p.source); len(language) > 0 {
		a = a.Set("class", "language-"+cleanText(string(language), true))
	}
	p.h.Handle(event.Verbatim{Content: strings.Join(p.acceptRawText(node), "\n"), Attrs: a})
}

func (p *mdP) acceptRawText(node gmAst.Node) []string {
	lines := node.Lines()
	result := make([]string, 0, lines.Len())
	for i := range lines.Len() {
		s := lines.At(i)
		line := s.Value(p.source)
		if l := len(line); l > 0 {
			if l > 1 && line[l-2] == '\r' && line[l-1] == '\n' {
				line = line[0 : l-2]
			} else if line[l-1] == '\n' || line[l-1] == '\r' {
				line = line[0 : l-1]
			}
		}
		result = append(result, string(line))
	}
	return result
}

// acceptBlockquote delivers every line of a paragraph and every other block
// of the quote as a quotation line. Nested quotes stay within the line of
// their predecessor.
func (p *mdP) acceptBlockquote(node *gmAst.Blockquote) {
	p.h.Handle(event.BeginQuotation{})
	inLine := false
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if nested, isQuote := child.(*gmAst.Blockquote); isQuote && inLine {
			p.acceptBlockquote(nested)
			continue
		}
		if inLine {
			p.h.Handle(event.EndQuotationLine{})
		}
		p.h.Handle(event.BeginQuotationLine{})
		inLine = true
		switch c := child.(type) {
		case *gmAst.Paragraph, *gmAst.TextBlock:
			p.acceptQuotationLines(c)
		default:
			p.acceptBlock(c)
		}
	}
	if inLine {
		p.h.Handle(event.EndQuotationLine{})
	}
	p.h.Handle(event.EndQuotation{})
}

// acceptQuotationLines starts a new quotation line at every line break
// between top-level inline nodes. Breaks within formatted text stay new lines.
func (p *mdP) acceptQuotationLines(node gmAst.Node) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		t, isText := child.(*gmAst.Text)
		if !isText || !(t.SoftLineBreak() || t.HardLineBreak()) {
			p.acceptInline(child)
			continue
		}
		p.emitText(t)
		if child.NextSibling() != nil {
			p.h.Handle(event.EndQuotationLine{})
			p.h.Handle(event.BeginQuotationLine{})
		}
	}
}

func (p *mdP) acceptList(node *gmAst.List) {
	var a ast.Attributes
	ordered := node.IsOrdered()
	if ordered && node.Start != 1 {
		a = a.Set("start", strconv.Itoa(node.Start))
	}
	p.h.Handle(event.BeginList{Ordered: ordered, Attrs: a})
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if _, ok := child.(*gmAst.ListItem); !ok {
			p.unhandled(child)
			continue
		}
		p.h.Handle(event.BeginListItem{})
		p.acceptBlockChildren(child)
		p.h.Handle(event.EndListItem{})
	}
	p.h.Handle(event.EndList{Ordered: ordered, Attrs: a})
}

func (p *mdP) acceptHTMLBlock(node *gmAst.HTMLBlock) {
	lines := p.acceptRawText(node)
	if node.HasClosure() {
		closure := string(node.ClosureLine.Value(p.source))
		if l := len(closure); l > 1 && closure[l-1] == '\n' {
			closure = closure[:l-1]
		}
		lines = append(lines, closure)
	}
	p.h.Handle(event.Macro{Name: "html", Content: strings.Join(lines, "\n")})
}

func (p *mdP) acceptTable(node *gmExt.Table) {
	p.h.Handle(event.BeginTable{})
	for row := node.FirstChild(); row != nil; row = row.NextSibling() {
		_, isHeader := row.(*gmExt.TableHeader)
		p.h.Handle(event.BeginTableRow{})
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			var a ast.Attributes
			if tc, ok := cell.(*gmExt.TableCell); ok && tc.Alignment != gmExt.AlignNone {
				a = a.Set("align", tc.Alignment.String())
			}
			p.h.Handle(event.BeginTableCell{Head: isHeader, Attrs: a})
			p.acceptInlineChildren(cell)
			p.h.Handle(event.EndTableCell{Head: isHeader, Attrs: a})
		}
		p.h.Handle(event.EndTableRow{})
	}
	p.h.Handle(event.EndTable{})
}

func (p *mdP) acceptDefinitionList(node *gmExt.DefinitionList) {
	p.h.Handle(event.BeginDefinitionList{})
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *gmExt.DefinitionTerm:
			p.h.Handle(event.BeginDefinitionTerm{})
			p.acceptInlineChildren(c)
			p.h.Handle(event.EndDefinitionTerm{})
		case *gmExt.DefinitionDescription:
			p.h.Handle(event.BeginDefinitionDescription{})
			p.acceptBlockChildren(c)
			p.h.Handle(event.EndDefinitionDescription{})
		default:
			p.unhandled(child)
		}
	}
	p.h.Handle(event.EndDefinitionList{})
}

func (p *mdP) acceptInlineChildren(node gmAst.Node) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		p.acceptInline(child)
	}
}

func (p *mdP) acceptInline(node gmAst.Node) {
	switch n := node.(type) {
	case *gmAst.Text:
		p.acceptText(n)
	case *gmAst.String:
		parser.EmitText(p.h, cleanText(string(n.Value), !n.IsCode()))
	case *gmAst.CodeSpan:
		p.h.Handle(event.Verbatim{Content: cleanCodeSpan(plainText(n, p.source)), Inline: true})
	case *gmAst.Emphasis:
		p.acceptFormat(n, emphasisStyle(n.Level))
	case *gmExt.Strikethrough:
		p.acceptFormat(n, ast.FormatStrikedOut)
	case *gmAst.Link:
		p.acceptLink(n)
	case *gmAst.Image:
		p.acceptImage(n)
	case *gmAst.AutoLink:
		p.acceptAutoLink(n)
	case *gmAst.RawHTML:
		p.acceptRawHTML(n)
	case *gmExt.TaskCheckBox:
		p.h.Handle(event.Macro{
			Name:   "checkbox",
			Attrs:  ast.Attributes{{Key: "checked", Value: strconv.FormatBool(n.IsChecked)}},
			Inline: true,
		})
	default:
		p.unhandled(node)
	}
}

func emphasisStyle(level int) ast.FormatKind {
	if level == 2 {
		return ast.FormatBold
	}
	return ast.FormatItalic
}

func (p *mdP) acceptFormat(node gmAst.Node, kind ast.FormatKind) {
	styles := []ast.FormatKind{kind}
	p.h.Handle(event.BeginFormat{Styles: styles})
	p.acceptInlineChildren(node)
	p.h.Handle(event.EndFormat{Styles: styles})
}

func (p *mdP) acceptText(node *gmAst.Text) {
	p.emitText(node)
	if node.HardLineBreak() || node.SoftLineBreak() {
		p.h.Handle(event.NewLine{})
	}
}

func (p *mdP) emitText(node *gmAst.Text) {
	text := string(node.Segment.Value(p.source))
	if !node.IsRaw() {
		text = cleanText(text, true)
	}
	parser.EmitText(p.h, text)
}

var ignoreAfterBS = map[byte]bool{
	'!': true, '"': true, '#': true, '$': true, '%': true, '&': true,
	'\'': true, '(': true, ')': true, '*': true, '+': true, ',': true,
	'-': true, '.': true, '/': true, ':': true, ';': true, '<': true,
	'=': true, '>': true, '?': true, '@': true, '[': true, '\\': true,
	']': true, '^': true, '_': true, '`': true, '{': true, '|': true,
	'}': true, '~': true,
}

// cleanText removes backslashes from text and expands entities
func cleanText(text string, cleanBS bool) string {
	lastPos := 0
	var sb strings.Builder
	for pos, ch := range text {
		if pos < lastPos {
			continue
		}
		if ch == '&' {
			inp := input.NewInput([]byte(text[pos:]))
			if s, ok := inp.ScanEntity(); ok {
				sb.WriteString(text[lastPos:pos])
				sb.WriteString(s)
				lastPos = pos + inp.Pos
			}
			continue
		}
		if cleanBS && ch == '\\' && pos < len(text)-1 && ignoreAfterBS[text[pos+1]] {
			sb.WriteString(text[lastPos:pos])
			sb.WriteByte(text[pos+1])
			lastPos = pos + 2
		}
	}
	if lastPos == 0 {
		return text
	}
	if lastPos < len(text) {
		sb.WriteString(text[lastPos:])
	}
	return sb.String()
}

func cleanCodeSpan(text string) string {
	if text == "" {
		return ""
	}
	lastPos := 0
	var sb strings.Builder
	for pos, ch := range text {
		if ch == '\n' {
			sb.WriteString(text[lastPos:pos])
			if pos < len(text)-1 {
				sb.WriteByte(' ')
			}
			lastPos = pos + 1
		}
	}
	if lastPos == 0 {
		return text
	}
	sb.WriteString(text[lastPos:])
	return sb.String()
}

func (p *mdP) acceptLink(node *gmAst.Link) {
	ref := cleanText(string(node.Destination), true)
	var a ast.Attributes
	if title := string(node.Title); len(title) > 0 {
		a = a.Set("title", cleanText(title, true))
	}
	if node.ChildCount() == 0 {
		p.h.Handle(event.Reference{Reference: ref, Attrs: a})
		return
	}
	p.h.Handle(event.BeginLink{Reference: ref, Attrs: a})
	p.acceptInlineChildren(node)
	p.h.Handle(event.EndLink{Reference: ref, Attrs: a})
}

func (p *mdP) acceptImage(node *gmAst.Image) {
	var a ast.Attributes
	if alt := plainText(node, p.source); alt != "" {
		a = a.Set("alt", cleanText(alt, true))
	}
	if title := string(node.Title); len(title) > 0 {
		a = a.Set("title", cleanText(title, true))
	}
	p.h.Handle(event.Image{Reference: cleanText(string(node.Destination), true), Attrs: a})
}

func (p *mdP) acceptAutoLink(node *gmAst.AutoLink) {
	url := node.URL(p.source)
	if node.AutoLinkType == gmAst.AutoLinkEmail &&
		!bytes.HasPrefix(bytes.ToLower(url), []byte("mailto:")) {
		url = append([]byte("mailto:"), url...)
	}
	p.h.Handle(event.Reference{Reference: cleanText(string(url), false), FreeStanding: true})
}

func (p *mdP) acceptRawHTML(node *gmAst.RawHTML) {
	segs := make([]string, 0, node.Segments.Len())
	for i := range node.Segments.Len() {
		segment := node.Segments.At(i)
		segs = append(segs, string(segment.Value(p.source)))
	}
	p.h.Handle(event.Macro{Name: "html", Content: strings.Join(segs, ""), Inline: true})
}

// plainText returns the text of all descendants of the node.
func plainText(node gmAst.Node, source []byte) string {
	var sb strings.Builder
	_ = gmAst.Walk(node, func(n gmAst.Node, entering bool) (gmAst.WalkStatus, error) {
		if !entering {
			return gmAst.WalkContinue, nil
		}
		switch t := n.(type) {
		case *gmAst.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte('\n')
			}
		case *gmAst.String:
			sb.Write(t.Value)
		}
		return gmAst.WalkContinue, nil
	})
	return sb.String()
}

func attrsOf(node gmAst.Node) ast.Attributes {
	var a ast.Attributes
	for _, attr := range node.Attributes() {
		var val string
		switch v := attr.Value.(type) {
		case []byte:
			val = string(v)
		case string:
			val = v
		default:
			val = fmt.Sprint(v)
		}
		a = a.Set(string(attr.Name), val)
	}
	return a
}
