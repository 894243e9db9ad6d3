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

import "strconv"

// Definitions of inline nodes.

// WordNode just contains some text.
type WordNode struct {
	Text string
}

// WalkChildren does nothing.
func (*WordNode) WalkChildren(WalkVisitor) { /* No children*/ }

// --------------------------------------------------------------------------

// SpaceNode is one inter-word space character.
type SpaceNode struct{}

// WalkChildren does nothing.
func (*SpaceNode) WalkChildren(WalkVisitor) { /* No children*/ }

// --------------------------------------------------------------------------

// SpecialSymbolNode is a single non-alphanumeric symbol, like "*" or "[".
type SpecialSymbolNode struct {
	Symbol rune
}

// WalkChildren does nothing.
func (*SpecialSymbolNode) WalkChildren(WalkVisitor) { /* No children*/ }

// --------------------------------------------------------------------------

// NewLineNode signals a new line. Renderers decide whether it is a line break.
type NewLineNode struct{}

// WalkChildren does nothing.
func (*NewLineNode) WalkChildren(WalkVisitor) { /* No children*/ }

// --------------------------------------------------------------------------

// LinkNode contains the specified link.
type LinkNode struct {
	Ref          *Reference
	FreeStanding bool // Reference was written directly in the text
	Attrs        Attributes
	Children     NodeSlice // The label of the link; empty for free-standing links
}

// WalkChildren walks to the link label.
func (ln *LinkNode) WalkChildren(v WalkVisitor) { ln.Children.WalkChildren(v) }

// --------------------------------------------------------------------------

// ImageNode contains the specified image reference.
type ImageNode struct {
	Ref          *Reference
	FreeStanding bool
	Attrs        Attributes
}

// WalkChildren does nothing.
func (*ImageNode) WalkChildren(WalkVisitor) { /* No children*/ }

// --------------------------------------------------------------------------

// FormatNode specifies some inline formatting.
type FormatNode struct {
	Format   FormatKind
	Attrs    Attributes // Optional attributes.
	Children NodeSlice
}

// FormatKind specifies the format that is applied to the inline nodes.
type FormatKind int

// Constants for FormatKind
const (
	FormatNone        FormatKind = iota // Only attributes, no style.
	FormatBold                          // Bold text.
	FormatItalic                        // Italic text.
	FormatUnderlined                    // Underlined text.
	FormatStrikedOut                    // Text that is no longer relevant.
	FormatSuperscript                   // Superscripted text.
	FormatSubscript                     // Subscripted text.
	FormatMonospace                     // Monospaced text.
)

var formatNames = [...]string{
	"none",
	"bold",
	"italic",
	"underlined",
	"strikedout",
	"superscript",
	"subscript",
	"monospace",
}

func (fk FormatKind) String() string {
	if FormatNone <= fk && int(fk) < len(formatNames) {
		return formatNames[fk]
	}
	return strconv.Itoa(int(fk))
}

// WalkChildren walks to the formatted text.
func (fn *FormatNode) WalkChildren(v WalkVisitor) { fn.Children.WalkChildren(v) }

// --------------------------------------------------------------------------

// MacroNode is a macro call. Its content is kept as text, it is not executed.
type MacroNode struct {
	Name    string
	Attrs   Attributes
	Content string
	Inline  bool
}

// WalkChildren does nothing.
func (*MacroNode) WalkChildren(WalkVisitor) { /* No children*/ }

// --------------------------------------------------------------------------

// VerbatimNode contains uninterpreted text.
type VerbatimNode struct {
	Content string
	Inline  bool
	Attrs   Attributes
}

// WalkChildren does nothing.
func (*VerbatimNode) WalkChildren(WalkVisitor) { /* No children*/ }

// --------------------------------------------------------------------------

// ErrorNode marks a place where something went wrong while building the tree.
type ErrorNode struct {
	Message     string
	Description string
}

// WalkChildren does nothing.
func (*ErrorNode) WalkChildren(WalkVisitor) { /* No children*/ }
