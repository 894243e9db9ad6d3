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

package ast

// Definition of block nodes.

// HeaderNode stores the header text and level.
type HeaderNode struct {
	Level    int
	ID       string // Anchor identifier, unique within a document
	Attrs    Attributes
	Children NodeSlice // Header text, possibly formatted
}

// WalkChildren walks the header text.
func (hn *HeaderNode) WalkChildren(v WalkVisitor) { hn.Children.WalkChildren(v) }

//--------------------------------------------------------------------------

// ParagraphNode contains just a sequence of inline elements.
type ParagraphNode struct {
	Attrs    Attributes
	Children NodeSlice
}

// WalkChildren walks down the inline elements.
func (pn *ParagraphNode) WalkChildren(v WalkVisitor) { pn.Children.WalkChildren(v) }

//--------------------------------------------------------------------------

// ListNode specifies a list, either ordered or unordered.
// Its children are list items.
type ListNode struct {
	Ordered  bool
	Attrs    Attributes
	Children NodeSlice
}

// WalkChildren walks down the list items.
func (ln *ListNode) WalkChildren(v WalkVisitor) { ln.Children.WalkChildren(v) }

// ListItemNode is one item of a list.
type ListItemNode struct {
	Children NodeSlice
}

// WalkChildren walks down the content of the item.
func (ln *ListItemNode) WalkChildren(v WalkVisitor) { ln.Children.WalkChildren(v) }

//--------------------------------------------------------------------------

// DefinitionListNode specifies a definition list.
// Its children are terms and descriptions.
type DefinitionListNode struct {
	Attrs    Attributes
	Children NodeSlice
}

// WalkChildren walks down the terms and descriptions.
func (dn *DefinitionListNode) WalkChildren(v WalkVisitor) { dn.Children.WalkChildren(v) }

// DefinitionTermNode is the term of a definition list.
type DefinitionTermNode struct {
	Children NodeSlice
}

// WalkChildren walks down the term text.
func (dn *DefinitionTermNode) WalkChildren(v WalkVisitor) { dn.Children.WalkChildren(v) }

// DefinitionDescriptionNode describes the preceding term.
type DefinitionDescriptionNode struct {
	Children NodeSlice
}

// WalkChildren walks down the description.
func (dn *DefinitionDescriptionNode) WalkChildren(v WalkVisitor) { dn.Children.WalkChildren(v) }

//--------------------------------------------------------------------------

// QuotationNode contains quotation lines.
type QuotationNode struct {
	Attrs    Attributes
	Children NodeSlice
}

// WalkChildren walks down the quotation lines.
func (qn *QuotationNode) WalkChildren(v WalkVisitor) { qn.Children.WalkChildren(v) }

// QuotationLineNode is one line of a quotation. It may contain nested quotations.
type QuotationLineNode struct {
	Children NodeSlice
}

// WalkChildren walks down the line content.
func (qn *QuotationLineNode) WalkChildren(v WalkVisitor) { qn.Children.WalkChildren(v) }

//--------------------------------------------------------------------------

// TableNode specifies a full table. Its children are rows.
type TableNode struct {
	Attrs    Attributes
	Children NodeSlice
}

// WalkChildren walks down the rows.
func (tn *TableNode) WalkChildren(v WalkVisitor) { tn.Children.WalkChildren(v) }

// TableRowNode is a row of cells.
type TableRowNode struct {
	Attrs    Attributes
	Children NodeSlice
}

// WalkChildren walks down the cells.
func (tn *TableRowNode) WalkChildren(v WalkVisitor) { tn.Children.WalkChildren(v) }

// TableCellNode contains the data for one table cell.
type TableCellNode struct {
	Head     bool // Cell is a header cell
	Attrs    Attributes
	Children NodeSlice
}

// WalkChildren walks down the cell content.
func (tn *TableCellNode) WalkChildren(v WalkVisitor) { tn.Children.WalkChildren(v) }

//--------------------------------------------------------------------------

// HorizontalLineNode specifies a horizontal rule.
type HorizontalLineNode struct {
	Attrs Attributes
}

// WalkChildren does nothing.
func (*HorizontalLineNode) WalkChildren(WalkVisitor) { /* No children*/ }

// EmptyLinesNode keeps a number of consecutive empty lines.
type EmptyLinesNode struct {
	Count int
}

// WalkChildren does nothing.
func (*EmptyLinesNode) WalkChildren(WalkVisitor) { /* No children*/ }
