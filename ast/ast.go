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

// Package ast provides the document tree that is built from a stream of
// parser events.
package ast

// Node is the interface, all nodes must implement.
type Node interface {
	WalkChildren(v WalkVisitor)
}

// NodeSlice is an ordered sequence of nodes. The order is the document order.
type NodeSlice []Node

// WalkChildren walks down all nodes of the slice.
func (ns *NodeSlice) WalkChildren(v WalkVisitor) {
	if ns != nil {
		for _, n := range *ns {
			Walk(v, n)
		}
	}
}

// DocumentNode is the root node of a parsed document.
type DocumentNode struct {
	Children NodeSlice
}

// WalkChildren walks down the top-level nodes.
func (dn *DocumentNode) WalkChildren(v WalkVisitor) { dn.Children.WalkChildren(v) }

// GroupNode is a nested document, e.g. the parsed body of a macro.
type GroupNode struct {
	Attrs    Attributes
	Children NodeSlice
}

// WalkChildren walks down the nodes of the nested document.
func (gn *GroupNode) WalkChildren(v WalkVisitor) { gn.Children.WalkChildren(v) }

// SectionNode groups a header and everything up to the next header of the
// same or a lower level.
type SectionNode struct {
	Level    int
	Children NodeSlice
}

// WalkChildren walks down the content of the section, starting with its header.
func (sn *SectionNode) WalkChildren(v WalkVisitor) { sn.Children.WalkChildren(v) }

// Header returns the header node that opens the section, if any.
func (sn *SectionNode) Header() *HeaderNode {
	if len(sn.Children) > 0 {
		if hn, ok := sn.Children[0].(*HeaderNode); ok {
			return hn
		}
	}
	return nil
}
