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

package strfun

import "strconv"

// IDGenerator creates identifiers that are unique within its lifetime.
// It is not safe for concurrent use.
type IDGenerator struct {
	prefix string
	clean  func(string) string
	ids    map[string]struct{}
}

// NewIDGenerator creates a new generator. Every identifier starts with the
// given prefix, followed by the text as transformed by clean. If clean is
// nil, CleanID is used.
func NewIDGenerator(prefix string, clean func(string) string) *IDGenerator {
	if clean == nil {
		clean = CleanID
	}
	return &IDGenerator{prefix: prefix, clean: clean}
}

// NewAnchorGenerator returns the generator for header anchors: "H" followed
// by the letters and digits of the header text.
func NewAnchorGenerator() *IDGenerator { return NewIDGenerator("H", CleanID) }

// NewSlugGenerator returns a generator for lower-case, dash-separated anchors.
func NewSlugGenerator() *IDGenerator { return NewIDGenerator("", Slugify) }

// Generate returns a new identifier for the given text. If the identifier was
// already returned before, a numeric suffix "-1", "-2", ... is appended.
func (g *IDGenerator) Generate(text string) string {
	id := g.prefix + g.clean(text)
	if g.ids == nil {
		g.ids = map[string]struct{}{id: {}}
		return id
	}
	if _, found := g.ids[id]; found {
		prefix := id + "-"
		for count := 1; ; count++ {
			newID := prefix + strconv.Itoa(count)
			if _, found = g.ids[newID]; !found {
				g.ids[newID] = struct{}{}
				return newID
			}
		}
	}
	g.ids[id] = struct{}{}
	return id
}

// Reset forgets all generated identifiers.
func (g *IDGenerator) Reset() { g.ids = nil }
