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

// DivideReferences divides the given list of references into wiki, local, and external references.
// Unknown references are ignored.
func DivideReferences(all []*ast.Reference, duplicates bool) (wiki, local, external []*ast.Reference) {
	if len(all) == 0 {
		return nil, nil, nil
	}

	mapWiki := make(map[string]bool)
	mapLocal := make(map[string]bool)
	mapExternal := make(map[string]bool)
	for _, ref := range all {
		if ref == nil || !ref.IsKnown() {
			continue
		}
		if ref.IsWiki() {
			wiki = appendRefToList(wiki, mapWiki, ref, duplicates)
		} else if ref.IsExternal() {
			external = appendRefToList(external, mapExternal, ref, duplicates)
		} else {
			local = appendRefToList(local, mapLocal, ref, duplicates)
		}
	}
	return wiki, local, external
}

func appendRefToList(
	reflist []*ast.Reference,
	refSet map[string]bool,
	ref *ast.Reference,
	duplicates bool,
) []*ast.Reference {
	if duplicates {
		reflist = append(reflist, ref)
	} else {
		s := ref.Type.String() + ":" + ref.Value
		if _, ok := refSet[s]; !ok {
			reflist = append(reflist, ref)
			refSet[s] = true
		}
	}

	return reflist
}
