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

// Package collect provides functions to collect items from a document tree.
package collect

import "zettelstore.de/wikitree/ast"

// Summary stores the references and headers found in a document.
type Summary struct {
	Links   []*ast.Reference  // List of all linked material
	Images  []*ast.Reference  // List of all referenced images
	Headers []*ast.HeaderNode // List of all headers, in document order
}

// References returns all references and headers of the given node.
func References(node ast.Node) (s Summary) {
	if node == nil {
		return s
	}
	ast.Inspect(node, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.LinkNode:
			s.Links = append(s.Links, n.Ref)
		case *ast.ImageNode:
			s.Images = append(s.Images, n.Ref)
		case *ast.HeaderNode:
			s.Headers = append(s.Headers, n)
		}
		return true
	})
	return s
}
