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

// Package nativeenc encodes the document tree into a compact s-expression.
//
// Every node is written as a list, whose first element is an upper-case
// symbol naming the node type. Attributes are written as an "@" list, e.g.
// (@ (class "x")), and only if they are not empty.
package nativeenc

import (
	"io"
	"strconv"
	"strings"

	"zettelstore.de/wikitree/ast"
	"zettelstore.de/wikitree/encoder"
)

func init() {
	encoder.Register("native", encoder.Info{
		Create:  func() encoder.Encoder { return &nativeEncoder{} },
		Default: true,
	})
}

type nativeEncoder struct{}

// WriteNode encodes the node to the writer.
func (*nativeEncoder) WriteNode(w io.Writer, node ast.Node) (int, error) {
	v := newVisitor(w)
	ast.Walk(v, node)
	return v.b.Flush()
}

// String returns the native encoding of the node.
func String(node ast.Node) string {
	var sb strings.Builder
	ast.Walk(newVisitor(&sb), node)
	return sb.String()
}

// visitor writes the document tree to an io.Writer.
type visitor struct {
	b encoder.EncWriter
}

func newVisitor(w io.Writer) *visitor {
	return &visitor{b: encoder.NewEncWriter(w)}
}

var mapFormatKind = map[ast.FormatKind]string{
	ast.FormatNone:        "FORMAT",
	ast.FormatBold:        "FORMAT-BOLD",
	ast.FormatItalic:      "FORMAT-ITALIC",
	ast.FormatUnderlined:  "FORMAT-UNDERLINED",
	ast.FormatStrikedOut:  "FORMAT-STRIKEDOUT",
	ast.FormatSuperscript: "FORMAT-SUPER",
	ast.FormatSubscript:   "FORMAT-SUB",
	ast.FormatMonospace:   "FORMAT-MONOSPACE",
}

func (v *visitor) Visit(node ast.Node) ast.WalkVisitor {
	switch n := node.(type) {
	case nil:
	case *ast.DocumentNode:
		v.writeList("DOCUMENT", nil, n.Children)
	case *ast.GroupNode:
		v.writeList("GROUP", n.Attrs, n.Children)
	case *ast.SectionNode:
		v.writeList("SECTION "+strconv.Itoa(n.Level), nil, n.Children)
	case *ast.HeaderNode:
		v.writeList("HEADER "+strconv.Itoa(n.Level)+" "+strconv.Quote(n.ID), n.Attrs, n.Children)
	case *ast.ParagraphNode:
		v.writeList("PARA", n.Attrs, n.Children)
	case *ast.ListNode:
		if n.Ordered {
			v.writeList("LIST-ORDERED", n.Attrs, n.Children)
		} else {
			v.writeList("LIST-UNORDERED", n.Attrs, n.Children)
		}
	case *ast.ListItemNode:
		v.writeList("ITEM", nil, n.Children)
	case *ast.DefinitionListNode:
		v.writeList("DL", n.Attrs, n.Children)
	case *ast.DefinitionTermNode:
		v.writeList("DT", nil, n.Children)
	case *ast.DefinitionDescriptionNode:
		v.writeList("DD", nil, n.Children)
	case *ast.QuotationNode:
		v.writeList("QUOTATION", n.Attrs, n.Children)
	case *ast.QuotationLineNode:
		v.writeList("QUOTATION-LINE", nil, n.Children)
	case *ast.TableNode:
		v.writeList("TABLE", n.Attrs, n.Children)
	case *ast.TableRowNode:
		v.writeList("ROW", n.Attrs, n.Children)
	case *ast.TableCellNode:
		if n.Head {
			v.writeList("CELL-HEAD", n.Attrs, n.Children)
		} else {
			v.writeList("CELL", n.Attrs, n.Children)
		}
	case *ast.FormatNode:
		v.writeList(mapFormatKind[n.Format], n.Attrs, n.Children)
	case *ast.LinkNode:
		v.b.WriteString("(LINK")
		if n.FreeStanding {
			v.b.WriteString(" FREE")
		}
		v.writeReference(n.Ref)
		v.writeAttrs(n.Attrs)
		v.writeChildren(n.Children)
		v.b.WriteByte(')')
	case *ast.ImageNode:
		v.b.WriteString("(IMAGE")
		if n.FreeStanding {
			v.b.WriteString(" FREE")
		}
		v.writeReference(n.Ref)
		v.writeAttrs(n.Attrs)
		v.b.WriteByte(')')
	case *ast.MacroNode:
		if n.Inline {
			v.b.WriteString("(MACRO-INLINE ")
		} else {
			v.b.WriteString("(MACRO ")
		}
		v.b.WriteString(strconv.Quote(n.Name))
		v.writeAttrs(n.Attrs)
		if n.Content != "" {
			v.b.WriteStrings(" ", strconv.Quote(n.Content))
		}
		v.b.WriteByte(')')
	case *ast.VerbatimNode:
		if n.Inline {
			v.b.WriteString("(VERBATIM-INLINE")
		} else {
			v.b.WriteString("(VERBATIM")
		}
		v.writeAttrs(n.Attrs)
		v.b.WriteStrings(" ", strconv.Quote(n.Content), ")")
	case *ast.WordNode:
		v.b.WriteStrings("(WORD ", strconv.Quote(n.Text), ")")
	case *ast.SpaceNode:
		v.b.WriteString("(SPACE)")
	case *ast.SpecialSymbolNode:
		v.b.WriteStrings("(SYMBOL ", strconv.Quote(string(n.Symbol)), ")")
	case *ast.NewLineNode:
		v.b.WriteString("(NEWLINE)")
	case *ast.EmptyLinesNode:
		v.b.WriteStrings("(EMPTY-LINES ", strconv.Itoa(n.Count), ")")
	case *ast.HorizontalLineNode:
		v.b.WriteString("(HRULE")
		v.writeAttrs(n.Attrs)
		v.b.WriteByte(')')
	case *ast.ErrorNode:
		v.b.WriteStrings("(ERROR ", strconv.Quote(n.Message))
		if n.Description != "" {
			v.b.WriteStrings(" ", strconv.Quote(n.Description))
		}
		v.b.WriteByte(')')
	default:
		v.b.WriteString("(UNKNOWN)")
	}
	return nil
}

func (v *visitor) writeList(head string, a ast.Attributes, children ast.NodeSlice) {
	v.b.WriteStrings("(", head)
	v.writeAttrs(a)
	v.writeChildren(children)
	v.b.WriteByte(')')
}

func (v *visitor) writeChildren(children ast.NodeSlice) {
	for _, child := range children {
		v.b.WriteByte(' ')
		ast.Walk(v, child)
	}
}

func (v *visitor) writeReference(ref *ast.Reference) {
	if ref == nil {
		v.b.WriteString(" (REF)")
		return
	}
	v.b.WriteStrings(" (REF ", ref.Type.String(), " ", strconv.Quote(ref.Value))
	if ref.Typed {
		v.b.WriteString(" TYPED")
	}
	v.writeAttrs(ref.Params)
	v.b.WriteByte(')')
}

func (v *visitor) writeAttrs(a ast.Attributes) {
	if a.IsEmpty() {
		return
	}
	v.b.WriteString(" (@")
	for _, attr := range a {
		key := attr.Key
		if key == "" {
			key = `""`
		}
		v.b.WriteStrings(" (", key, " ", strconv.Quote(attr.Value), ")")
	}
	v.b.WriteByte(')')
}
