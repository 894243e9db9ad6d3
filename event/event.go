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

// Package event defines the structural events that a markup parser emits
// while it walks its input.
//
// Every construct of a document is announced either by a pair of begin and
// end events, or by a single leaf event. Events are small values; they are
// delivered to a Handler and not retained afterwards.
package event

import (
	"strconv"

	"zettelstore.de/wikitree/ast"
)

// Event is one structural occurrence. The set of events is closed: only
// types of this package implement it.
type Event interface {
	Kind() Kind
	event()
}

// Kind is the tag of an event.
type Kind uint8

// Constants for Kind.
const (
	_ Kind = iota
	KindBeginDocument
	KindEndDocument
	KindBeginParagraph
	KindEndParagraph
	KindBeginHeader
	KindEndHeader
	KindBeginList
	KindEndList
	KindBeginListItem
	KindEndListItem
	KindBeginDefinitionList
	KindEndDefinitionList
	KindBeginDefinitionTerm
	KindEndDefinitionTerm
	KindBeginDefinitionDescription
	KindEndDefinitionDescription
	KindBeginQuotation
	KindEndQuotation
	KindBeginQuotationLine
	KindEndQuotationLine
	KindBeginTable
	KindEndTable
	KindBeginTableRow
	KindEndTableRow
	KindBeginTableCell
	KindEndTableCell
	KindBeginFormat
	KindEndFormat
	KindBeginLink
	KindEndLink
	KindWord
	KindSpace
	KindSpecialSymbol
	KindNewLine
	KindEmptyLines
	KindHorizontalLine
	KindMacro
	KindVerbatim
	KindReference
	KindImage
	KindError
)

var kindNames = [...]string{
	"",
	"BeginDocument", "EndDocument",
	"BeginParagraph", "EndParagraph",
	"BeginHeader", "EndHeader",
	"BeginList", "EndList",
	"BeginListItem", "EndListItem",
	"BeginDefinitionList", "EndDefinitionList",
	"BeginDefinitionTerm", "EndDefinitionTerm",
	"BeginDefinitionDescription", "EndDefinitionDescription",
	"BeginQuotation", "EndQuotation",
	"BeginQuotationLine", "EndQuotationLine",
	"BeginTable", "EndTable",
	"BeginTableRow", "EndTableRow",
	"BeginTableCell", "EndTableCell",
	"BeginFormat", "EndFormat",
	"BeginLink", "EndLink",
	"Word",
	"Space",
	"SpecialSymbol",
	"NewLine",
	"EmptyLines",
	"HorizontalLine",
	"Macro",
	"Verbatim",
	"Reference",
	"Image",
	"Error",
}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsBegin returns true if the kind opens a scope.
func (k Kind) IsBegin() bool { return k >= KindBeginDocument && k <= KindEndLink && k%2 == 1 }

// IsEnd returns true if the kind closes a scope.
func (k Kind) IsEnd() bool { return k >= KindBeginDocument && k <= KindEndLink && k%2 == 0 }

// Begin returns the kind that opens the scope closed by an end kind.
// For other kinds, the kind itself is returned.
func (k Kind) Begin() Kind {
	if k.IsEnd() {
		return k - 1
	}
	return k
}

// IsInline returns true if events of this kind always belong to an inline run.
// Macros and verbatim text may be both; look at their Inline field.
func (k Kind) IsInline() bool {
	switch k {
	case KindBeginFormat, KindEndFormat, KindBeginLink, KindEndLink,
		KindWord, KindSpace, KindSpecialSymbol, KindNewLine, KindReference, KindImage:
		return true
	}
	return false
}

// BeginDocument starts a document. Documents may be nested, e.g. for the
// parsed content of a macro.
type BeginDocument struct{ Attrs ast.Attributes }

// EndDocument ends a document.
type EndDocument struct{ Attrs ast.Attributes }

// BeginParagraph starts a paragraph.
type BeginParagraph struct{ Attrs ast.Attributes }

// EndParagraph ends a paragraph.
type EndParagraph struct{ Attrs ast.Attributes }

// BeginHeader starts a header of the given level (1 is the top level).
type BeginHeader struct {
	Level int
	Attrs ast.Attributes
}

// EndHeader ends a header.
type EndHeader struct {
	Level int
	Attrs ast.Attributes
}

// BeginList starts a list.
type BeginList struct {
	Ordered bool
	Attrs   ast.Attributes
}

// EndList ends a list.
type EndList struct {
	Ordered bool
	Attrs   ast.Attributes
}

// BeginListItem starts a list item.
type BeginListItem struct{}

// EndListItem ends a list item.
type EndListItem struct{}

// BeginDefinitionList starts a definition list.
type BeginDefinitionList struct{ Attrs ast.Attributes }

// EndDefinitionList ends a definition list.
type EndDefinitionList struct{ Attrs ast.Attributes }

// BeginDefinitionTerm starts a term of a definition list.
type BeginDefinitionTerm struct{}

// EndDefinitionTerm ends a term.
type EndDefinitionTerm struct{}

// BeginDefinitionDescription starts a description of a definition list.
type BeginDefinitionDescription struct{}

// EndDefinitionDescription ends a description.
type EndDefinitionDescription struct{}

// BeginQuotation starts a quotation.
type BeginQuotation struct{ Attrs ast.Attributes }

// EndQuotation ends a quotation.
type EndQuotation struct{ Attrs ast.Attributes }

// BeginQuotationLine starts a line of a quotation.
type BeginQuotationLine struct{}

// EndQuotationLine ends a line of a quotation.
type EndQuotationLine struct{}

// BeginTable starts a table.
type BeginTable struct{ Attrs ast.Attributes }

// EndTable ends a table.
type EndTable struct{ Attrs ast.Attributes }

// BeginTableRow starts a row.
type BeginTableRow struct{ Attrs ast.Attributes }

// EndTableRow ends a row.
type EndTableRow struct{ Attrs ast.Attributes }

// BeginTableCell starts a cell. Head is true for header cells.
type BeginTableCell struct {
	Head  bool
	Attrs ast.Attributes
}

// EndTableCell ends a cell.
type EndTableCell struct {
	Head  bool
	Attrs ast.Attributes
}

// BeginFormat opens nested formatting spans at once. The first style is the
// outermost span.
type BeginFormat struct {
	Styles []ast.FormatKind
	Attrs  ast.Attributes
}

// EndFormat closes the spans opened by the matching BeginFormat.
type EndFormat struct {
	Styles []ast.FormatKind
	Attrs  ast.Attributes
}

// BeginLink starts a link whose label is delivered as events.
type BeginLink struct {
	Reference    string
	FreeStanding bool
	Attrs        ast.Attributes
}

// EndLink ends a link.
type EndLink struct {
	Reference    string
	FreeStanding bool
	Attrs        ast.Attributes
}

// Word is a sequence of alphanumeric characters.
type Word struct{ Text string }

// Space is one inter-word space.
type Space struct{}

// SpecialSymbol is a single non-alphanumeric character.
type SpecialSymbol struct{ Symbol rune }

// NewLine is a new line within an inline run.
type NewLine struct{}

// EmptyLines is a sequence of Count empty lines between blocks.
type EmptyLines struct{ Count int }

// HorizontalLine is a horizontal rule.
type HorizontalLine struct{ Attrs ast.Attributes }

// Macro is a macro call. Its content is not interpreted.
type Macro struct {
	Name    string
	Attrs   ast.Attributes
	Content string
	Inline  bool
}

// Verbatim is text that must not be interpreted.
type Verbatim struct {
	Content string
	Inline  bool
	Attrs   ast.Attributes
}

// Reference is a reference to a resource, as written in the markup. Label is
// the unparsed label text; it is empty if there is no label.
type Reference struct {
	Reference    string
	Label        string
	FreeStanding bool
	Attrs        ast.Attributes
}

// Image is a reference to an image.
type Image struct {
	Reference    string
	FreeStanding bool
	Attrs        ast.Attributes
}

// Error reports a problem that the parser found in its input.
type Error struct {
	Message     string
	Description string
}

func (BeginDocument) Kind() Kind              { return KindBeginDocument }
func (EndDocument) Kind() Kind                { return KindEndDocument }
func (BeginParagraph) Kind() Kind             { return KindBeginParagraph }
func (EndParagraph) Kind() Kind               { return KindEndParagraph }
func (BeginHeader) Kind() Kind                { return KindBeginHeader }
func (EndHeader) Kind() Kind                  { return KindEndHeader }
func (BeginList) Kind() Kind                  { return KindBeginList }
func (EndList) Kind() Kind                    { return KindEndList }
func (BeginListItem) Kind() Kind              { return KindBeginListItem }
func (EndListItem) Kind() Kind                { return KindEndListItem }
func (BeginDefinitionList) Kind() Kind        { return KindBeginDefinitionList }
func (EndDefinitionList) Kind() Kind          { return KindEndDefinitionList }
func (BeginDefinitionTerm) Kind() Kind        { return KindBeginDefinitionTerm }
func (EndDefinitionTerm) Kind() Kind          { return KindEndDefinitionTerm }
func (BeginDefinitionDescription) Kind() Kind { return KindBeginDefinitionDescription }
func (EndDefinitionDescription) Kind() Kind   { return KindEndDefinitionDescription }
func (BeginQuotation) Kind() Kind             { return KindBeginQuotation }
func (EndQuotation) Kind() Kind               { return KindEndQuotation }
func (BeginQuotationLine) Kind() Kind         { return KindBeginQuotationLine }
func (EndQuotationLine) Kind() Kind           { return KindEndQuotationLine }
func (BeginTable) Kind() Kind                 { return KindBeginTable }
func (EndTable) Kind() Kind                   { return KindEndTable }
func (BeginTableRow) Kind() Kind              { return KindBeginTableRow }
func (EndTableRow) Kind() Kind                { return KindEndTableRow }
func (BeginTableCell) Kind() Kind             { return KindBeginTableCell }
func (EndTableCell) Kind() Kind               { return KindEndTableCell }
func (BeginFormat) Kind() Kind                { return KindBeginFormat }
func (EndFormat) Kind() Kind                  { return KindEndFormat }
func (BeginLink) Kind() Kind                  { return KindBeginLink }
func (EndLink) Kind() Kind                    { return KindEndLink }
func (Word) Kind() Kind                       { return KindWord }
func (Space) Kind() Kind                      { return KindSpace }
func (SpecialSymbol) Kind() Kind              { return KindSpecialSymbol }
func (NewLine) Kind() Kind                    { return KindNewLine }
func (EmptyLines) Kind() Kind                 { return KindEmptyLines }
func (HorizontalLine) Kind() Kind             { return KindHorizontalLine }
func (Macro) Kind() Kind                      { return KindMacro }
func (Verbatim) Kind() Kind                   { return KindVerbatim }
func (Reference) Kind() Kind                  { return KindReference }
func (Image) Kind() Kind                      { return KindImage }
func (Error) Kind() Kind                      { return KindError }

func (BeginDocument) event()              {}
func (EndDocument) event()                {}
func (BeginParagraph) event()             {}
func (EndParagraph) event()               {}
func (BeginHeader) event()                {}
func (EndHeader) event()                  {}
func (BeginList) event()                  {}
func (EndList) event()                    {}
func (BeginListItem) event()              {}
func (EndListItem) event()                {}
func (BeginDefinitionList) event()        {}
func (EndDefinitionList) event()          {}
func (BeginDefinitionTerm) event()        {}
func (EndDefinitionTerm) event()          {}
func (BeginDefinitionDescription) event() {}
func (EndDefinitionDescription) event()   {}
func (BeginQuotation) event()             {}
func (EndQuotation) event()               {}
func (BeginQuotationLine) event()         {}
func (EndQuotationLine) event()           {}
func (BeginTable) event()                 {}
func (EndTable) event()                   {}
func (BeginTableRow) event()              {}
func (EndTableRow) event()                {}
func (BeginTableCell) event()             {}
func (EndTableCell) event()               {}
func (BeginFormat) event()                {}
func (EndFormat) event()                  {}
func (BeginLink) event()                  {}
func (EndLink) event()                    {}
func (Word) event()                       {}
func (Space) event()                      {}
func (SpecialSymbol) event()              {}
func (NewLine) event()                    {}
func (EmptyLines) event()                 {}
func (HorizontalLine) event()             {}
func (Macro) event()                      {}
func (Verbatim) event()                   {}
func (Reference) event()                  {}
func (Image) event()                      {}
func (Error) event()                      {}
