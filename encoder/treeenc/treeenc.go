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

// Package treeenc encodes the document tree as an indented tree view.
package treeenc

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xlab/treeprint"

	"zettelstore.de/wikitree/ast"
	"zettelstore.de/wikitree/encoder"
)

func init() {
	encoder.Register("tree", encoder.Info{
		Create: func() encoder.Encoder { return &treeEncoder{} },
	})
}

type treeEncoder struct{}

// WriteNode writes a tree view of the node.
func (*treeEncoder) WriteNode(w io.Writer, node ast.Node) (int, error) {
	tree := treeprint.NewWithRoot(Label(node))
	if node != nil {
		addChildren(tree, node)
	}
	return w.Write(tree.Bytes())
}

func addChildren(tree treeprint.Tree, node ast.Node) {
	node.WalkChildren(&treeVisitor{tree: tree})
}

type treeVisitor struct {
	tree treeprint.Tree
}

func (tv *treeVisitor) Visit(node ast.Node) ast.WalkVisitor {
	if node == nil {
		return nil
	}
	if hasChildren(node) {
		addChildren(tv.tree.AddBranch(Label(node)), node)
	} else {
		tv.tree.AddNode(Label(node))
	}
	return nil
}

func hasChildren(node ast.Node) bool {
	found := false
	node.WalkChildren(ast.WalkFunc(func(ast.Node) bool { found = true; return false }))
	return found
}

// Label returns a one-line description of a node, without its children.
func Label(node ast.Node) string {
	switch n := node.(type) {
	case nil:
		return "<nil>"
	case *ast.DocumentNode:
		return "Document"
	case *ast.GroupNode:
		return withAttrs("Group", n.Attrs)
	case *ast.SectionNode:
		return "Section " + strconv.Itoa(n.Level)
	case *ast.HeaderNode:
		return withAttrs("Header "+strconv.Itoa(n.Level)+" #"+n.ID, n.Attrs)
	case *ast.ParagraphNode:
		return withAttrs("Paragraph", n.Attrs)
	case *ast.ListNode:
		if n.Ordered {
			return withAttrs("List ordered", n.Attrs)
		}
		return withAttrs("List", n.Attrs)
	case *ast.ListItemNode:
		return "Item"
	case *ast.DefinitionListNode:
		return withAttrs("DefinitionList", n.Attrs)
	case *ast.DefinitionTermNode:
		return "Term"
	case *ast.DefinitionDescriptionNode:
		return "Description"
	case *ast.QuotationNode:
		return withAttrs("Quotation", n.Attrs)
	case *ast.QuotationLineNode:
		return "QuotationLine"
	case *ast.TableNode:
		return withAttrs("Table", n.Attrs)
	case *ast.TableRowNode:
		return withAttrs("Row", n.Attrs)
	case *ast.TableCellNode:
		if n.Head {
			return withAttrs("Cell head", n.Attrs)
		}
		return withAttrs("Cell", n.Attrs)
	case *ast.FormatNode:
		return withAttrs("Format "+n.Format.String(), n.Attrs)
	case *ast.LinkNode:
		return withAttrs(refLabel("Link", n.Ref, n.FreeStanding), n.Attrs)
	case *ast.ImageNode:
		return withAttrs(refLabel("Image", n.Ref, n.FreeStanding), n.Attrs)
	case *ast.MacroNode:
		s := "Macro " + n.Name
		if n.Inline {
			s += " inline"
		}
		return withAttrs(s, n.Attrs) + contentLabel(n.Content)
	case *ast.VerbatimNode:
		s := "Verbatim"
		if n.Inline {
			s += " inline"
		}
		return withAttrs(s, n.Attrs) + contentLabel(n.Content)
	case *ast.WordNode:
		return "Word " + strconv.Quote(n.Text)
	case *ast.SpaceNode:
		return "Space"
	case *ast.SpecialSymbolNode:
		return "Symbol " + strconv.QuoteRune(n.Symbol)
	case *ast.NewLineNode:
		return "NewLine"
	case *ast.EmptyLinesNode:
		return "EmptyLines " + strconv.Itoa(n.Count)
	case *ast.HorizontalLineNode:
		return withAttrs("HorizontalLine", n.Attrs)
	case *ast.ErrorNode:
		return "Error " + strconv.Quote(n.Message)
	}
	return fmt.Sprintf("%T", node)
}

func refLabel(prefix string, ref *ast.Reference, free bool) string {
	s := prefix
	if ref != nil {
		s += " " + ref.Type.String() + " " + strconv.Quote(ref.Value)
		if ref.Typed {
			s += " typed"
		}
		if !ref.Params.IsEmpty() {
			s += " {" + ref.Params.String() + "}"
		}
	}
	if free {
		s += " free"
	}
	return s
}

func withAttrs(s string, a ast.Attributes) string {
	if a.IsEmpty() {
		return s
	}
	return s + " [" + a.String() + "]"
}

func contentLabel(content string) string {
	if content == "" {
		return ""
	}
	return " " + strconv.Quote(content)
}
