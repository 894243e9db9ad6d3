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

// Package html provides a parser for HTML documents.
//
// The source is parsed into a well-formed HTML tree first, so that the events
// are always balanced, even for sloppy HTML.
package html

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"zettelstore.de/wikitree/ast"
	"zettelstore.de/wikitree/event"
	"zettelstore.de/wikitree/input"
	"zettelstore.de/wikitree/parser"
)

func init() {
	parser.Register(&parser.Info{
		Name:        "html",
		AltNames:    []string{"htm"},
		Parse:       parseBlocks,
		ParseInline: parseInlines,
	})
}

func parseBlocks(inp *input.Input, _ string, h event.Handler) error {
	doc, err := html.Parse(bytes.NewReader(inp.Rest()))
	if err != nil {
		return fmt.Errorf("parse html: %w", err)
	}
	p := htmlP{h: h}
	h.Handle(event.BeginDocument{})
	if body := findElement(atom.Body, doc); body != nil {
		p.acceptBlocks(body)
	}
	h.Handle(event.EndDocument{})
	return nil
}

func parseInlines(inp *input.Input, _ string, h event.Handler) error {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(bytes.NewReader(inp.Rest()), context)
	if err != nil {
		return fmt.Errorf("parse html fragment: %w", err)
	}
	p := htmlP{h: h}
	p.startRun()
	for _, n := range nodes {
		p.acceptInline(n)
	}
	return nil
}

func findElement(a atom.Atom, n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(a, c); found != nil {
			return found
		}
	}
	return nil
}

type htmlP struct {
	h event.Handler

	// State of the current inline run, to collapse white space.
	atStart bool
	space   bool
}

var blockElements = map[atom.Atom]bool{
	atom.P: true, atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Ul: true, atom.Ol: true, atom.Li: true, atom.Dl: true, atom.Dt: true, atom.Dd: true,
	atom.Blockquote: true, atom.Table: true, atom.Hr: true, atom.Pre: true,
	atom.Div: true, atom.Section: true, atom.Article: true, atom.Main: true, atom.Aside: true,
	atom.Header: true, atom.Footer: true, atom.Nav: true, atom.Figure: true, atom.Address: true,
	atom.Form: true, atom.Fieldset: true,
}

var skipElements = map[atom.Atom]bool{
	atom.Script: true, atom.Style: true, atom.Head: true, atom.Template: true, atom.Noscript: true,
}

func isBlock(n *html.Node) bool { return n.Type == html.ElementNode && blockElements[n.DataAtom] }

func skip(n *html.Node) bool {
	switch n.Type {
	case html.ElementNode:
		return skipElements[n.DataAtom]
	case html.TextNode:
		return false
	}
	return true
}

// acceptBlocks delivers the children of n as blocks. Consecutive inline
// children are wrapped into a paragraph.
func (p *htmlP) acceptBlocks(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		if skip(c) {
			c = c.NextSibling
			continue
		}
		if isBlock(c) {
			p.acceptBlock(c)
			c = c.NextSibling
			continue
		}
		start := c
		for c != nil && !isBlock(c) {
			c = c.NextSibling
		}
		p.acceptParagraphRun(start, c)
	}
}

// acceptParagraphRun delivers the inline nodes from start up to end (exclusive)
// as a paragraph, unless they contain only white space.
func (p *htmlP) acceptParagraphRun(start, end *html.Node) {
	empty := true
	for c := start; c != end; c = c.NextSibling {
		if !skip(c) && (c.Type != html.TextNode || strings.TrimSpace(c.Data) != "") {
			empty = false
			break
		}
	}
	if empty {
		return
	}
	p.h.Handle(event.BeginParagraph{})
	p.startRun()
	for c := start; c != end; c = c.NextSibling {
		p.acceptInline(c)
	}
	p.h.Handle(event.EndParagraph{})
}

// acceptFlow delivers the children of n, which may contain inline and block
// content, e.g. a list item or a table cell. Inline content is not wrapped.
func (p *htmlP) acceptFlow(n *html.Node) {
	p.startRun()
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isBlock(c) {
			p.acceptBlock(c)
			p.startRun()
		} else {
			p.acceptInline(c)
		}
	}
}

func (p *htmlP) acceptBlock(n *html.Node) {
	a := attrsOf(n)
	switch n.DataAtom {
	case atom.P:
		p.h.Handle(event.BeginParagraph{Attrs: a})
		p.acceptInlineChildren(n)
		p.h.Handle(event.EndParagraph{Attrs: a})
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		level := int(n.Data[1] - '0')
		p.h.Handle(event.BeginHeader{Level: level, Attrs: a})
		p.acceptInlineChildren(n)
		p.h.Handle(event.EndHeader{Level: level, Attrs: a})
	case atom.Ul, atom.Ol:
		ordered := n.DataAtom == atom.Ol
		p.h.Handle(event.BeginList{Ordered: ordered, Attrs: a})
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == atom.Li {
				p.h.Handle(event.BeginListItem{})
				p.acceptFlow(c)
				p.h.Handle(event.EndListItem{})
			}
		}
		p.h.Handle(event.EndList{Ordered: ordered, Attrs: a})
	case atom.Dl:
		p.acceptDefinitionList(n, a)
	case atom.Blockquote:
		p.acceptBlockquote(n, a)
	case atom.Table:
		p.acceptTable(n, a)
	case atom.Hr:
		p.h.Handle(event.HorizontalLine{Attrs: a})
	case atom.Pre:
		p.h.Handle(event.Verbatim{Content: strings.TrimSuffix(textContent(n), "\n"), Attrs: a})
	case atom.Li, atom.Dt, atom.Dd:
		// Stray item outside of its list.
		p.acceptBlocks(n)
	default:
		p.acceptBlocks(n)
	}
}

func (p *htmlP) acceptDefinitionList(n *html.Node, a ast.Attributes) {
	p.h.Handle(event.BeginDefinitionList{Attrs: a})
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Dt:
			p.h.Handle(event.BeginDefinitionTerm{})
			p.acceptInlineChildren(c)
			p.h.Handle(event.EndDefinitionTerm{})
		case atom.Dd:
			p.h.Handle(event.BeginDefinitionDescription{})
			p.acceptFlow(c)
			p.h.Handle(event.EndDefinitionDescription{})
		}
	}
	p.h.Handle(event.EndDefinitionList{Attrs: a})
}

// acceptBlockquote delivers each paragraph of the quote as a quotation line.
func (p *htmlP) acceptBlockquote(n *html.Node, a ast.Attributes) {
	p.h.Handle(event.BeginQuotation{Attrs: a})
	for c := n.FirstChild; c != nil; {
		if skip(c) || (c.Type == html.TextNode && strings.TrimSpace(c.Data) == "") {
			c = c.NextSibling
			continue
		}
		p.h.Handle(event.BeginQuotationLine{})
		p.startRun()
		switch {
		case c.Type == html.ElementNode && c.DataAtom == atom.P:
			p.acceptInlineChildren(c)
			c = c.NextSibling
		case isBlock(c):
			p.acceptBlock(c)
			c = c.NextSibling
		default:
			for ; c != nil && !isBlock(c); c = c.NextSibling {
				p.acceptInline(c)
			}
		}
		p.h.Handle(event.EndQuotationLine{})
	}
	p.h.Handle(event.EndQuotation{Attrs: a})
}

func (p *htmlP) acceptTable(n *html.Node, a ast.Attributes) {
	p.h.Handle(event.BeginTable{Attrs: a})
	var rows func(*html.Node)
	rows = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Thead, atom.Tbody, atom.Tfoot:
				rows(c)
			case atom.Tr:
				p.acceptTableRow(c)
			}
		}
	}
	rows(n)
	p.h.Handle(event.EndTable{Attrs: a})
}

func (p *htmlP) acceptTableRow(n *html.Node) {
	ra := attrsOf(n)
	p.h.Handle(event.BeginTableRow{Attrs: ra})
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.DataAtom != atom.Td && c.DataAtom != atom.Th) {
			continue
		}
		head, ca := c.DataAtom == atom.Th, attrsOf(c)
		p.h.Handle(event.BeginTableCell{Head: head, Attrs: ca})
		p.acceptFlow(c)
		p.h.Handle(event.EndTableCell{Head: head, Attrs: ca})
	}
	p.h.Handle(event.EndTableRow{Attrs: ra})
}

func (p *htmlP) startRun() { p.atStart, p.space = true, false }

func (p *htmlP) acceptInlineChildren(n *html.Node) {
	p.startRun()
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.acceptInline(c)
	}
}

var formatElements = map[atom.Atom]ast.FormatKind{
	atom.B: ast.FormatBold, atom.Strong: ast.FormatBold,
	atom.I: ast.FormatItalic, atom.Em: ast.FormatItalic, atom.Cite: ast.FormatItalic,
	atom.U: ast.FormatUnderlined, atom.Ins: ast.FormatUnderlined,
	atom.S: ast.FormatStrikedOut, atom.Strike: ast.FormatStrikedOut, atom.Del: ast.FormatStrikedOut,
	atom.Sup: ast.FormatSuperscript, atom.Sub: ast.FormatSubscript,
	atom.Tt: ast.FormatMonospace, atom.Kbd: ast.FormatMonospace, atom.Samp: ast.FormatMonospace,
}

func (p *htmlP) acceptInline(n *html.Node) {
	if skip(n) {
		return
	}
	if n.Type == html.TextNode {
		p.acceptText(n.Data)
		return
	}
	if kind, ok := formatElements[n.DataAtom]; ok {
		p.acceptFormat(n, []ast.FormatKind{kind}, attrsOf(n))
		return
	}
	switch n.DataAtom {
	case atom.Span:
		p.acceptFormat(n, nil, attrsOf(n))
	case atom.Code:
		p.flushSpace()
		p.h.Handle(event.Verbatim{Content: textContent(n), Inline: true, Attrs: attrsOf(n)})
	case atom.Br:
		p.h.Handle(event.NewLine{})
		p.startRun()
	case atom.A:
		p.acceptLink(n)
	case atom.Img:
		p.flushSpace()
		p.h.Handle(event.Image{Reference: getAttr(n, "src"), Attrs: attrsOf(n, "src")})
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			p.acceptInline(c)
		}
	}
}

func (p *htmlP) acceptFormat(n *html.Node, styles []ast.FormatKind, a ast.Attributes) {
	p.flushSpace()
	p.h.Handle(event.BeginFormat{Styles: styles, Attrs: a})
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.acceptInline(c)
	}
	p.h.Handle(event.EndFormat{Styles: styles, Attrs: a})
}

func (p *htmlP) acceptLink(n *html.Node) {
	href, ok := getAttrOK(n, "href")
	if !ok {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			p.acceptInline(c)
		}
		return
	}
	p.flushSpace()
	a := attrsOf(n, "href")
	if text := strings.TrimSpace(textContent(n)); text == "" || text == href {
		p.h.Handle(event.Reference{Reference: href, FreeStanding: text == href, Attrs: a})
		p.atStart = false
		return
	}
	p.h.Handle(event.BeginLink{Reference: href, Attrs: a})
	p.startRun()
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.acceptInline(c)
	}
	p.h.Handle(event.EndLink{Reference: href, Attrs: a})
	p.atStart = false
}

// acceptText delivers the text with collapsed white space. Spaces at the
// start of a run are dropped, a trailing space is delivered only when more
// content follows.
func (p *htmlP) acceptText(text string) {
	words := strings.Fields(text)
	if len(words) == 0 {
		if text != "" {
			p.space = true
		}
		return
	}
	if text[0] == ' ' || text[0] == '\t' || text[0] == '\n' || text[0] == '\r' || text[0] == '\f' {
		p.space = true
	}
	for i, word := range words {
		if i > 0 {
			p.space = true
		}
		p.flushSpace()
		parser.EmitText(p.h, word)
		p.atStart = false
	}
	if last := text[len(text)-1]; last == ' ' || last == '\t' || last == '\n' || last == '\r' || last == '\f' {
		p.space = true
	}
}

func (p *htmlP) flushSpace() {
	if p.space && !p.atStart {
		p.h.Handle(event.Space{})
	}
	p.space = false
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}

func getAttr(n *html.Node, key string) string {
	val, _ := getAttrOK(n, key)
	return val
}

func getAttrOK(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// attrsOf returns the attributes of the element, without the given keys.
func attrsOf(n *html.Node, without ...string) ast.Attributes {
	var a ast.Attributes
outer:
	for _, attr := range n.Attr {
		for _, key := range without {
			if attr.Key == key {
				continue outer
			}
		}
		key := attr.Key
		if attr.Namespace != "" {
			key = attr.Namespace + ":" + key
		}
		a = a.Set(key, attr.Val)
	}
	return a
}
