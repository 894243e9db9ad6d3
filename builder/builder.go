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

// Package builder builds a document tree from a stream of parser events.
//
// The builder keeps a stack of nodes and markers. Every begin event pushes a
// marker; the matching end event pops everything above that marker and
// replaces it with a new node. Headers additionally open sections, which are
// closed by the next header of the same or a higher level, or at the end of
// their enclosing scope.
package builder

import (
	"strings"

	"zettelstore.de/wikitree/ast"
	"zettelstore.de/wikitree/encoder/textenc"
	"zettelstore.de/wikitree/event"
	"zettelstore.de/wikitree/logger"
	"zettelstore.de/wikitree/reference"
	"zettelstore.de/wikitree/strfun"
)

// InlineParser parses the label of a link. It delivers the inline events of
// the label to the handler.
type InlineParser interface {
	ParseInline(text string, h event.Handler) error
}

// InlineParserFunc adapts a function to an InlineParser.
type InlineParserFunc func(text string, h event.Handler) error

// ParseInline calls f(text, h).
func (f InlineParserFunc) ParseInline(text string, h event.Handler) error { return f(text, h) }

// Observer is notified when a builder has finished.
type Observer interface {
	DocumentBuilt(nodes int)
	BuildFailed(err error)
}

// Option configures a builder.
type Option func(*Builder)

// WithInlineParser sets the parser for link labels. Without it, a label is
// split into words and spaces.
func WithInlineParser(p InlineParser) Option { return func(b *Builder) { b.inline = p } }

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) Option { return func(b *Builder) { b.log = log } }

// WithObserver sets the observer.
func WithObserver(o Observer) Option { return func(b *Builder) { b.observer = o } }

// WithIDGenerator sets the generator for header anchors.
func WithIDGenerator(g *strfun.IDGenerator) Option { return func(b *Builder) { b.ids = g } }

// slot is an element of the builder stack: either a node or a marker.
type slot struct {
	marker   bool
	node     ast.Node    // only for nodes
	begin    event.Event // event that opened the scope; nil for section markers
	level    int         // level of a section marker
	sections int         // number of sections open in this scope
}

// Builder builds one document tree. It must not be reused for another
// document, and it is not safe for concurrent use.
type Builder struct {
	links    *reference.Resolver
	images   *reference.Resolver
	inline   InlineParser
	log      *logger.Logger
	observer Observer
	ids      *strfun.IDGenerator

	stack    []slot
	scopes   []int // indexes of open scope markers in stack
	pos      int   // number of handled events
	started  bool
	doc      *ast.DocumentNode
	err      error
	reported bool
}

// New creates a new builder. Links are resolved with links, images with images.
func New(links, images *reference.Resolver, opts ...Option) *Builder {
	b := &Builder{
		links:  links,
		images: images,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.ids == nil {
		b.ids = strfun.NewAnchorGenerator()
	}
	return b
}

// Err returns the first structural error, if any.
func (b *Builder) Err() error { return b.err }

// Finish returns the document, after the last EndDocument event.
func (b *Builder) Finish() (*ast.DocumentNode, error) {
	if b.err == nil && b.doc == nil {
		b.err = &StructureError{Pos: b.pos, Err: ErrIncomplete, Info: b.openScopes()}
		b.log.Error().Err(b.err).Msg("Document incomplete")
	}
	if b.err != nil {
		if !b.reported && b.observer != nil {
			b.observer.BuildFailed(b.err)
		}
		b.reported = true
		return nil, b.err
	}
	if !b.reported {
		nodes := ast.CountNodes(b.doc)
		b.log.Debug().Int("events", int64(b.pos)).Int("nodes", int64(nodes)).Msg("Document built")
		if b.observer != nil {
			b.observer.DocumentBuilt(nodes)
		}
		b.reported = true
	}
	return b.doc, nil
}

func (b *Builder) openScopes() string {
	kinds := make([]string, 0, len(b.scopes))
	for _, si := range b.scopes {
		kinds = append(kinds, b.stack[si].begin.Kind().String())
	}
	return strings.Join(kinds, ",")
}

func (b *Builder) fail(ev event.Event, cause error, info string) {
	b.err = &StructureError{Pos: b.pos, Kind: ev.Kind(), Err: cause, Info: info}
	b.log.Error().Err(b.err).Msg("Invalid event stream")
}

// Handle processes the next event.
func (b *Builder) Handle(ev event.Event) {
	if b.err != nil {
		return
	}
	b.pos++
	if b.doc != nil {
		b.fail(ev, ErrTrailing, "")
		return
	}
	if !b.started {
		if _, ok := ev.(event.BeginDocument); !ok {
			b.fail(ev, ErrUnbalanced, "no document started")
			return
		}
		b.started = true
	}

	switch e := ev.(type) {
	case event.BeginDocument, event.BeginParagraph, event.BeginList, event.BeginListItem,
		event.BeginDefinitionList, event.BeginDefinitionTerm, event.BeginDefinitionDescription,
		event.BeginQuotation, event.BeginQuotationLine,
		event.BeginTable, event.BeginTableRow, event.BeginTableCell,
		event.BeginFormat, event.BeginLink:
		b.openScope(ev)
	case event.BeginHeader:
		b.beginHeader(e)

	case event.EndDocument:
		b.endDocument(e)
	case event.EndParagraph:
		b.closeScope(ev, func(_ event.Event, children ast.NodeSlice) ast.Node {
			return &ast.ParagraphNode{Attrs: e.Attrs, Children: children}
		})
	case event.EndHeader:
		b.closeScope(ev, func(begin event.Event, children ast.NodeSlice) ast.Node {
			return &ast.HeaderNode{
				Level:    begin.(event.BeginHeader).Level,
				ID:       b.ids.Generate(textenc.Text(children)),
				Attrs:    e.Attrs,
				Children: children,
			}
		})
	case event.EndList:
		b.closeScope(ev, func(_ event.Event, children ast.NodeSlice) ast.Node {
			return &ast.ListNode{Ordered: e.Ordered, Attrs: e.Attrs, Children: children}
		})
	case event.EndListItem:
		b.closeScope(ev, func(_ event.Event, children ast.NodeSlice) ast.Node {
			return &ast.ListItemNode{Children: children}
		})
	case event.EndDefinitionList:
		b.closeScope(ev, func(_ event.Event, children ast.NodeSlice) ast.Node {
			return &ast.DefinitionListNode{Attrs: e.Attrs, Children: children}
		})
	case event.EndDefinitionTerm:
		b.closeScope(ev, func(_ event.Event, children ast.NodeSlice) ast.Node {
			return &ast.DefinitionTermNode{Children: children}
		})
	case event.EndDefinitionDescription:
		b.closeScope(ev, func(_ event.Event, children ast.NodeSlice) ast.Node {
			return &ast.DefinitionDescriptionNode{Children: children}
		})
	case event.EndQuotation:
		b.closeScope(ev, func(_ event.Event, children ast.NodeSlice) ast.Node {
			return &ast.QuotationNode{Attrs: e.Attrs, Children: children}
		})
	case event.EndQuotationLine:
		b.closeScope(ev, func(_ event.Event, children ast.NodeSlice) ast.Node {
			return &ast.QuotationLineNode{Children: children}
		})
	case event.EndTable:
		b.closeScope(ev, func(_ event.Event, children ast.NodeSlice) ast.Node {
			return &ast.TableNode{Attrs: e.Attrs, Children: children}
		})
	case event.EndTableRow:
		b.closeScope(ev, func(_ event.Event, children ast.NodeSlice) ast.Node {
			return &ast.TableRowNode{Attrs: e.Attrs, Children: children}
		})
	case event.EndTableCell:
		b.closeScope(ev, func(_ event.Event, children ast.NodeSlice) ast.Node {
			return &ast.TableCellNode{Head: e.Head, Attrs: e.Attrs, Children: children}
		})
	case event.EndFormat:
		b.endFormat(e)
	case event.EndLink:
		b.closeScope(ev, func(_ event.Event, children ast.NodeSlice) ast.Node {
			return b.createReference(e.Reference, children, false, e.FreeStanding, e.Attrs)
		})

	case event.Word:
		b.push(&ast.WordNode{Text: e.Text})
	case event.Space:
		b.push(&ast.SpaceNode{})
	case event.SpecialSymbol:
		b.push(&ast.SpecialSymbolNode{Symbol: e.Symbol})
	case event.NewLine:
		b.push(&ast.NewLineNode{})
	case event.EmptyLines:
		b.push(&ast.EmptyLinesNode{Count: e.Count})
	case event.HorizontalLine:
		b.push(&ast.HorizontalLineNode{Attrs: e.Attrs})
	case event.Macro:
		b.push(&ast.MacroNode{Name: e.Name, Attrs: e.Attrs, Content: e.Content, Inline: e.Inline})
	case event.Verbatim:
		b.push(&ast.VerbatimNode{Content: e.Content, Inline: e.Inline, Attrs: e.Attrs})
	case event.Reference:
		b.onReference(e)
	case event.Image:
		b.push(b.createImage(e.Reference, e.FreeStanding, e.Attrs))
	case event.Error:
		b.push(&ast.ErrorNode{Message: e.Message, Description: e.Description})
	default:
		panic("unknown event type")
	}
}

func (b *Builder) push(node ast.Node) { b.stack = append(b.stack, slot{node: node}) }

func (b *Builder) openScope(begin event.Event) {
	b.scopes = append(b.scopes, len(b.stack))
	b.stack = append(b.stack, slot{marker: true, begin: begin})
}

// closeScope closes the innermost scope, which must have been opened by the
// begin event that matches end. Open sections of the scope are closed first.
func (b *Builder) closeScope(end event.Event, create func(event.Event, ast.NodeSlice) ast.Node) {
	begin, children, ok := b.popScope(end)
	if ok {
		b.push(create(begin, children))
	}
}

func (b *Builder) popScope(end event.Event) (event.Event, ast.NodeSlice, bool) {
	if len(b.scopes) == 0 {
		b.fail(end, ErrUnbalanced, "no open scope")
		return nil, nil, false
	}
	si := b.scopes[len(b.scopes)-1]
	begin := b.stack[si].begin
	if begin.Kind() != end.Kind().Begin() {
		b.fail(end, ErrUnbalanced, "open scope is "+begin.Kind().String())
		return nil, nil, false
	}
	for ; b.stack[si].sections > 0; b.stack[si].sections-- {
		b.closeSection()
	}
	b.scopes = b.scopes[:len(b.scopes)-1]
	return begin, b.popAbove(si), true
}

// popAbove removes the marker at index mi and returns all nodes above it,
// in document order.
func (b *Builder) popAbove(mi int) ast.NodeSlice {
	var children ast.NodeSlice
	if above := b.stack[mi+1:]; len(above) > 0 {
		children = make(ast.NodeSlice, len(above))
		for i, s := range above {
			children[i] = s.node
		}
	}
	clear(b.stack[mi:])
	b.stack = b.stack[:mi]
	return children
}

// closeSection closes the innermost section. All scopes opened within the
// section must already be closed.
func (b *Builder) closeSection() {
	mi := len(b.stack) - 1
	for !b.stack[mi].marker {
		mi--
	}
	level := b.stack[mi].level
	b.push(&ast.SectionNode{Level: level, Children: b.popAbove(mi)})
}

func (b *Builder) beginHeader(e event.BeginHeader) {
	if e.Level < 1 {
		b.fail(e, ErrHeaderLevel, "")
		return
	}
	si := b.scopes[len(b.scopes)-1]
	sections := b.stack[si].sections
	for ; sections >= e.Level; sections-- {
		b.closeSection()
	}
	for sections < e.Level {
		sections++
		b.stack = append(b.stack, slot{marker: true, level: sections})
	}
	b.stack[si].sections = sections
	b.openScope(e)
}

func (b *Builder) endDocument(e event.EndDocument) {
	_, children, ok := b.popScope(e)
	if !ok {
		return
	}
	if len(b.scopes) > 0 {
		b.push(&ast.GroupNode{Attrs: e.Attrs, Children: children})
		return
	}
	b.doc = &ast.DocumentNode{Children: children}
}

func (b *Builder) endFormat(e event.EndFormat) {
	_, children, ok := b.popScope(e)
	if !ok {
		return
	}
	if len(e.Styles) == 0 && e.Attrs.IsEmpty() {
		for _, child := range children {
			b.push(child)
		}
		return
	}

	var fn *ast.FormatNode
	if n := len(e.Styles); n > 0 {
		fn = &ast.FormatNode{Format: e.Styles[n-1], Children: children}
		for i := n - 2; i >= 0; i-- {
			fn = &ast.FormatNode{Format: e.Styles[i], Children: ast.NodeSlice{fn}}
		}
	} else {
		fn = &ast.FormatNode{Format: ast.FormatNone, Children: children}
	}
	fn.Attrs = e.Attrs

	if top := len(b.stack) - 1; top >= 0 && !b.stack[top].marker {
		if prev, isFormat := b.stack[top].node.(*ast.FormatNode); isFormat &&
			prev.Format == fn.Format && prev.Attrs.Equal(fn.Attrs) {
			prev.Children = append(prev.Children, fn.Children...)
			return
		}
	}
	b.push(fn)
}

func (b *Builder) onReference(e event.Reference) {
	var children ast.NodeSlice
	if !e.FreeStanding && e.Label != "" {
		children = b.parseLabel(e.Label)
	}
	b.push(b.createReference(e.Reference, children, true, e.FreeStanding, e.Attrs))
}

// createReference resolves the reference and returns an image, a link, or
// an error node.
func (b *Builder) createReference(raw string, children ast.NodeSlice, fromEvent, free bool, a ast.Attributes) ast.Node {
	ref, err := b.links.Parse(raw)
	if err != nil {
		return b.referenceError(raw, err)
	}
	if loc, isImage := reference.IsImage(ref); isImage {
		return b.createImage(loc, free, a)
	}
	if free && fromEvent {
		children = nil
	}
	return &ast.LinkNode{Ref: ref, FreeStanding: free, Attrs: a, Children: children}
}

func (b *Builder) createImage(raw string, free bool, a ast.Attributes) ast.Node {
	ref, err := b.images.Parse(raw)
	if err != nil {
		return b.referenceError(raw, err)
	}
	return &ast.ImageNode{Ref: ref, FreeStanding: free, Attrs: a}
}

func (b *Builder) referenceError(raw string, err error) ast.Node {
	b.log.Warn().Quote("reference", raw).Err(err).Msg("Invalid reference")
	return &ast.ErrorNode{Message: "Invalid reference " + raw, Description: err.Error()}
}

// parseLabel parses the label of a link with a fresh builder that shares
// resolvers and anchor identifiers with this builder.
func (b *Builder) parseLabel(label string) ast.NodeSlice {
	if b.inline == nil {
		return splitLabel(label)
	}
	lb := &Builder{
		links:  b.links,
		images: b.images,
		inline: b.inline,
		log:    b.log,
		ids:    b.ids,
	}
	lb.Handle(event.BeginDocument{})
	err := b.inline.ParseInline(label, lb)
	lb.Handle(event.EndDocument{})
	if err == nil {
		err = lb.Err()
	}
	if err != nil {
		b.log.Warn().Str("label", label).Err(err).Msg("Unable to parse link label")
		return ast.NodeSlice{&ast.ErrorNode{Message: "Unable to parse link label", Description: err.Error()}}
	}
	return lb.doc.Children
}

// splitLabel returns the label as a sequence of words and spaces.
func splitLabel(label string) ast.NodeSlice {
	var result ast.NodeSlice
	start := -1
	for i, r := range label {
		if r == ' ' {
			if start >= 0 {
				result = append(result, &ast.WordNode{Text: label[start:i]})
				start = -1
			}
			result = append(result, &ast.SpaceNode{})
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		result = append(result, &ast.WordNode{Text: label[start:]})
	}
	return result
}
