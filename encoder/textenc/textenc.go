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

// Package textenc encodes the document tree into its plain text.
package textenc

import (
	"io"
	"strings"

	"zettelstore.de/wikitree/ast"
	"zettelstore.de/wikitree/encoder"
)

func init() {
	encoder.Register("text", encoder.Info{
		Create: func() encoder.Encoder { return &textEncoder{} },
	})
}

type textEncoder struct{}

// WriteNode writes the text of the node to the writer.
func (*textEncoder) WriteNode(w io.Writer, node ast.Node) (int, error) {
	v := newVisitor(w)
	ast.Walk(v, node)
	return v.b.Flush()
}

// Text returns the plain text of the given nodes.
func Text(ns ast.NodeSlice) string {
	var sb strings.Builder
	v := newVisitor(&sb)
	v.acceptInlines(ns)
	return sb.String()
}

// visitor writes the document tree to an io.Writer.
type visitor struct {
	b encoder.EncWriter
}

func newVisitor(w io.Writer) *visitor {
	return &visitor{b: encoder.NewEncWriter(w)}
}

func (v *visitor) Visit(node ast.Node) ast.WalkVisitor {
	switch n := node.(type) {
	case *ast.DocumentNode:
		v.acceptBlocks(n.Children)
	case *ast.GroupNode:
		v.acceptBlocks(n.Children)
	case *ast.SectionNode:
		v.acceptBlocks(n.Children)
	case *ast.ListNode:
		v.acceptBlocks(n.Children)
	case *ast.ListItemNode:
		v.acceptBlocks(n.Children)
	case *ast.DefinitionListNode:
		v.acceptBlocks(n.Children)
	case *ast.DefinitionDescriptionNode:
		v.acceptBlocks(n.Children)
	case *ast.QuotationNode:
		v.acceptBlocks(n.Children)
	case *ast.TableNode:
		v.acceptBlocks(n.Children)
	case *ast.TableRowNode:
		for i, cell := range n.Children {
			v.b.WritePosChar(i, ' ')
			ast.Walk(v, cell)
		}
	case *ast.VerbatimNode:
		v.b.WriteString(n.Content)
	case *ast.WordNode:
		v.b.WriteString(n.Text)
	case *ast.SpaceNode:
		v.b.WriteByte(' ')
	case *ast.NewLineNode:
		v.b.WriteByte(' ')
	case *ast.SpecialSymbolNode:
		v.b.WriteString(string(n.Symbol))
	case *ast.LinkNode:
		if len(n.Children) == 0 {
			v.b.WriteString(n.Ref.Value)
			return nil
		}
		return v
	case *ast.ImageNode, *ast.MacroNode, *ast.ErrorNode, *ast.HorizontalLineNode, *ast.EmptyLinesNode:
	default:
		return v
	}
	return nil
}

func (v *visitor) acceptBlocks(ns ast.NodeSlice) {
	pos := 0
	for _, n := range ns {
		switch n.(type) {
		case *ast.HorizontalLineNode, *ast.EmptyLinesNode, *ast.MacroNode, *ast.ErrorNode:
			continue
		}
		v.b.WritePosChar(pos, '\n')
		ast.Walk(v, n)
		pos++
	}
}

func (v *visitor) acceptInlines(ns ast.NodeSlice) {
	for _, n := range ns {
		ast.Walk(v, n)
	}
}
