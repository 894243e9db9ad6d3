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

package event

import (
	"fmt"

	"zettelstore.de/wikitree/ast"
)

// Emit walks the tree and delivers the events that describe it.
//
// Sections are not announced, because headers determine them. A link with a
// label is announced by BeginLink and EndLink; a link without label becomes a
// Reference event.
func Emit(node ast.Node, h Handler) {
	if node != nil {
		ast.Walk(&emitter{h: h}, node)
	}
}

type emitter struct {
	h Handler
}

func (e *emitter) Visit(node ast.Node) ast.WalkVisitor {
	switch n := node.(type) {
	case nil:
	case *ast.DocumentNode:
		e.scope(BeginDocument{}, &n.Children, EndDocument{})
	case *ast.GroupNode:
		e.scope(BeginDocument{Attrs: n.Attrs}, &n.Children, EndDocument{Attrs: n.Attrs})
	case *ast.SectionNode:
		return e
	case *ast.HeaderNode:
		e.scope(BeginHeader{Level: n.Level, Attrs: n.Attrs}, &n.Children, EndHeader{Level: n.Level, Attrs: n.Attrs})
	case *ast.ParagraphNode:
		e.scope(BeginParagraph{Attrs: n.Attrs}, &n.Children, EndParagraph{Attrs: n.Attrs})
	case *ast.ListNode:
		e.scope(BeginList{Ordered: n.Ordered, Attrs: n.Attrs}, &n.Children, EndList{Ordered: n.Ordered, Attrs: n.Attrs})
	case *ast.ListItemNode:
		e.scope(BeginListItem{}, &n.Children, EndListItem{})
	case *ast.DefinitionListNode:
		e.scope(BeginDefinitionList{Attrs: n.Attrs}, &n.Children, EndDefinitionList{Attrs: n.Attrs})
	case *ast.DefinitionTermNode:
		e.scope(BeginDefinitionTerm{}, &n.Children, EndDefinitionTerm{})
	case *ast.DefinitionDescriptionNode:
		e.scope(BeginDefinitionDescription{}, &n.Children, EndDefinitionDescription{})
	case *ast.QuotationNode:
		e.scope(BeginQuotation{Attrs: n.Attrs}, &n.Children, EndQuotation{Attrs: n.Attrs})
	case *ast.QuotationLineNode:
		e.scope(BeginQuotationLine{}, &n.Children, EndQuotationLine{})
	case *ast.TableNode:
		e.scope(BeginTable{Attrs: n.Attrs}, &n.Children, EndTable{Attrs: n.Attrs})
	case *ast.TableRowNode:
		e.scope(BeginTableRow{Attrs: n.Attrs}, &n.Children, EndTableRow{Attrs: n.Attrs})
	case *ast.TableCellNode:
		e.scope(BeginTableCell{Head: n.Head, Attrs: n.Attrs}, &n.Children, EndTableCell{Head: n.Head, Attrs: n.Attrs})
	case *ast.FormatNode:
		var styles []ast.FormatKind
		if n.Format != ast.FormatNone {
			styles = []ast.FormatKind{n.Format}
		}
		e.scope(BeginFormat{Styles: styles, Attrs: n.Attrs}, &n.Children, EndFormat{Styles: styles, Attrs: n.Attrs})
	case *ast.LinkNode:
		ref := n.Ref.String()
		if len(n.Children) == 0 {
			e.h.Handle(Reference{Reference: ref, FreeStanding: n.FreeStanding, Attrs: n.Attrs})
			break
		}
		e.scope(
			BeginLink{Reference: ref, FreeStanding: n.FreeStanding, Attrs: n.Attrs},
			&n.Children,
			EndLink{Reference: ref, FreeStanding: n.FreeStanding, Attrs: n.Attrs})
	case *ast.ImageNode:
		e.h.Handle(Image{Reference: n.Ref.String(), FreeStanding: n.FreeStanding, Attrs: n.Attrs})
	case *ast.MacroNode:
		e.h.Handle(Macro{Name: n.Name, Attrs: n.Attrs, Content: n.Content, Inline: n.Inline})
	case *ast.VerbatimNode:
		e.h.Handle(Verbatim{Content: n.Content, Inline: n.Inline, Attrs: n.Attrs})
	case *ast.WordNode:
		e.h.Handle(Word{Text: n.Text})
	case *ast.SpaceNode:
		e.h.Handle(Space{})
	case *ast.SpecialSymbolNode:
		e.h.Handle(SpecialSymbol{Symbol: n.Symbol})
	case *ast.NewLineNode:
		e.h.Handle(NewLine{})
	case *ast.EmptyLinesNode:
		e.h.Handle(EmptyLines{Count: n.Count})
	case *ast.HorizontalLineNode:
		e.h.Handle(HorizontalLine{Attrs: n.Attrs})
	case *ast.ErrorNode:
		e.h.Handle(Error{Message: n.Message, Description: n.Description})
	default:
		panic(fmt.Sprintf("unknown node type %T (%v)", n, n))
	}
	return nil
}

func (e *emitter) scope(begin Event, children *ast.NodeSlice, end Event) {
	e.h.Handle(begin)
	children.WalkChildren(e)
	e.h.Handle(end)
}
