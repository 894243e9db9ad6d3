//-----------------------------------------------------------------------------
// Copyright (c) 2021-present Detlef Stern
//
// This file is part of wikitree.
//
// wikitree is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2021-present Detlef Stern
//-----------------------------------------------------------------------------

package ast

// WalkVisitor is a visitor for walking the AST.
type WalkVisitor interface {
	Visit(node Node) WalkVisitor
}

// Walk traverses the AST.
func Walk(v WalkVisitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	node.WalkChildren(v)
	v.Visit(nil)
}

// WalkFunc is a function that is called for every node of a tree.
// If it returns false, the children of the node are not visited.
type WalkFunc func(Node) bool

// Visit calls the function for non-nil nodes.
func (wf WalkFunc) Visit(node Node) WalkVisitor {
	if node == nil || !wf(node) {
		return nil
	}
	return wf
}

// Inspect traverses the AST in document order and calls f for every node.
func Inspect(node Node, f func(Node) bool) {
	Walk(WalkFunc(f), node)
}

// CountNodes returns the number of descendants of the given node.
// The node itself is not counted.
func CountNodes(node Node) int {
	if node == nil {
		return 0
	}
	count := -1
	Inspect(node, func(Node) bool { count++; return true })
	return count
}
