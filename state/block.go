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

package state

import "zettelstore.de/wikitree/event"

// BlockState tracks the nesting of block and inline constructs.
type BlockState struct {
	previous event.Kind

	documentDepth       int
	inlineDepth         int
	linkDepth           int
	listDepth           int
	listItemDepth       int
	tableDepth          int
	cellDepth           int
	quotationDepth      int
	quotationLineDepth  int
	definitionListDepth int
	descriptionDepth    int

	listItems      []int // index of current item, per open list
	definitionItem []int // index of current term or description, per open definition list
	quotationLines []int // index of current line, per open quotation
	cells          []cellPos
}

type cellPos struct{ row, col int }

// Reset the state.
func (bs *BlockState) Reset() { *bs = BlockState{} }

// Handle updates the state according to the event.
func (bs *BlockState) Handle(ev event.Event) {
	switch ev.(type) {
	case event.BeginDocument:
		bs.documentDepth++
	case event.EndDocument:
		bs.documentDepth--

	case event.BeginParagraph, event.BeginHeader:
		bs.inlineDepth++
	case event.EndParagraph, event.EndHeader:
		bs.inlineDepth--

	case event.BeginLink:
		bs.linkDepth++
	case event.EndLink:
		bs.linkDepth--

	case event.BeginList:
		bs.listDepth++
		bs.listItems = append(bs.listItems, -1)
	case event.EndList:
		bs.listDepth--
		bs.listItems = pop(bs.listItems)
	case event.BeginListItem:
		bs.listItemDepth++
		incTop(bs.listItems)
	case event.EndListItem:
		bs.listItemDepth--

	case event.BeginDefinitionList:
		bs.definitionListDepth++
		bs.definitionItem = append(bs.definitionItem, -1)
	case event.EndDefinitionList:
		bs.definitionListDepth--
		bs.definitionItem = pop(bs.definitionItem)
	case event.BeginDefinitionTerm:
		bs.inlineDepth++
		incTop(bs.definitionItem)
	case event.EndDefinitionTerm:
		bs.inlineDepth--
	case event.BeginDefinitionDescription:
		bs.descriptionDepth++
		incTop(bs.definitionItem)
	case event.EndDefinitionDescription:
		bs.descriptionDepth--

	case event.BeginQuotation:
		bs.quotationDepth++
		bs.quotationLines = append(bs.quotationLines, -1)
	case event.EndQuotation:
		bs.quotationDepth--
		bs.quotationLines = pop(bs.quotationLines)
	case event.BeginQuotationLine:
		bs.quotationLineDepth++
		bs.inlineDepth++
		incTop(bs.quotationLines)
	case event.EndQuotationLine:
		bs.quotationLineDepth--
		bs.inlineDepth--

	case event.BeginTable:
		bs.tableDepth++
		bs.cells = append(bs.cells, cellPos{row: -1, col: -1})
	case event.EndTable:
		bs.tableDepth--
		if n := len(bs.cells); n > 0 {
			bs.cells = bs.cells[:n-1]
		}
	case event.BeginTableRow:
		if n := len(bs.cells); n > 0 {
			bs.cells[n-1].row++
			bs.cells[n-1].col = -1
		}
	case event.BeginTableCell:
		bs.cellDepth++
		bs.inlineDepth++
		if n := len(bs.cells); n > 0 {
			bs.cells[n-1].col++
		}
	case event.EndTableCell:
		bs.cellDepth--
		bs.inlineDepth--
	}
	bs.previous = ev.Kind()
}

func pop(s []int) []int {
	if n := len(s); n > 0 {
		return s[:n-1]
	}
	return s
}

func incTop(s []int) {
	if n := len(s); n > 0 {
		s[n-1]++
	}
}

func top(s []int) int {
	if n := len(s); n > 0 {
		return s[n-1]
	}
	return -1
}

// PreviousEvent returns the kind of the last handled event, or zero.
func (bs *BlockState) PreviousEvent() event.Kind { return bs.previous }

// InDocument returns true inside a document.
func (bs *BlockState) InDocument() bool { return bs.documentDepth > 0 }

// DocumentDepth returns the nesting of documents; nested documents count.
func (bs *BlockState) DocumentDepth() int { return bs.documentDepth }

// InLine returns true inside a construct whose content is inline text:
// paragraph, header, definition term, quotation line, or table cell.
func (bs *BlockState) InLine() bool { return bs.inlineDepth > 0 }

// InLink returns true inside a link label.
func (bs *BlockState) InLink() bool { return bs.linkDepth > 0 }

// LinkDepth returns the nesting of links.
func (bs *BlockState) LinkDepth() int { return bs.linkDepth }

func (bs *BlockState) InList() bool     { return bs.listDepth > 0 }
func (bs *BlockState) ListDepth() int   { return bs.listDepth }
func (bs *BlockState) InListItem() bool { return bs.listItemDepth > 0 }

// ListItemIndex returns the index of the current item of the innermost list,
// starting with 0. It is -1 outside of a list or before its first item.
func (bs *BlockState) ListItemIndex() int { return top(bs.listItems) }

func (bs *BlockState) InTable() bool     { return bs.tableDepth > 0 }
func (bs *BlockState) InTableCell() bool { return bs.cellDepth > 0 }

// CellRow returns the index of the current row of the innermost table, or -1.
func (bs *BlockState) CellRow() int {
	if n := len(bs.cells); n > 0 {
		return bs.cells[n-1].row
	}
	return -1
}

// CellCol returns the index of the current cell within its row, or -1.
func (bs *BlockState) CellCol() int {
	if n := len(bs.cells); n > 0 {
		return bs.cells[n-1].col
	}
	return -1
}

func (bs *BlockState) InQuotation() bool     { return bs.quotationDepth > 0 }
func (bs *BlockState) QuotationDepth() int   { return bs.quotationDepth }
func (bs *BlockState) InQuotationLine() bool { return bs.quotationLineDepth > 0 }

// QuotationLineIndex returns the index of the current line of the innermost
// quotation, or -1.
func (bs *BlockState) QuotationLineIndex() int { return top(bs.quotationLines) }

func (bs *BlockState) InDefinitionList() bool        { return bs.definitionListDepth > 0 }
func (bs *BlockState) DefinitionListDepth() int      { return bs.definitionListDepth }
func (bs *BlockState) InDefinitionDescription() bool { return bs.descriptionDepth > 0 }

// DefinitionListItemIndex returns the index of the current term or
// description of the innermost definition list, or -1.
func (bs *BlockState) DefinitionListItemIndex() int { return top(bs.definitionItem) }
