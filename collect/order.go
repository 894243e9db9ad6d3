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

package collect

import "zettelstore.de/wikitree/ast"

// Order returns the first wiki reference of every item of the top-level lists.
// A document that consists of such lists describes an ordering of wiki documents.
func Order(doc *ast.DocumentNode) (result []*ast.Reference) {
	if doc == nil {
		return nil
	}
	for _, n := range topLevel(doc.Children) {
		if ln, ok := n.(*ast.ListNode); ok {
			for _, item := range ln.Children {
				if li, ok2 := item.(*ast.ListItemNode); ok2 {
					if ref := firstItemWikiReference(li.Children); ref != nil {
						result = append(result, ref)
					}
				}
			}
		}
	}
	return result
}

// topLevel flattens sections, so that lists below a header count as top-level.
func topLevel(ns ast.NodeSlice) (result ast.NodeSlice) {
	for _, n := range ns {
		if sn, ok := n.(*ast.SectionNode); ok {
			result = append(result, topLevel(sn.Children)...)
			continue
		}
		result = append(result, n)
	}
	return result
}

func firstItemWikiReference(ns ast.NodeSlice) *ast.Reference {
	for _, n := range ns {
		inlines := ast.NodeSlice{n}
		if pn, ok := n.(*ast.ParagraphNode); ok {
			inlines = pn.Children
		}
		if ref := firstInlineWikiReference(inlines); ref != nil {
			return ref
		}
	}
	return nil
}

func firstInlineWikiReference(ns ast.NodeSlice) (result *ast.Reference) {
	for _, n := range ns {
		switch in := n.(type) {
		case *ast.LinkNode:
			if ref := in.Ref; ref != nil && ref.IsWiki() {
				return ref
			}
			result = firstInlineWikiReference(in.Children)
		case *ast.FormatNode:
			result = firstInlineWikiReference(in.Children)
		default:
			continue
		}
		if result != nil {
			return result
		}
	}
	return nil
}
