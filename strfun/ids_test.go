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

package strfun_test

import (
	"testing"

	"zettelstore.de/wikitree/strfun"
)

func TestAnchorGenerator(t *testing.T) {
	g := strfun.NewAnchorGenerator()
	testcases := []struct{ in, exp string }{
		{"Intro", "HIntro"},
		{"Intro", "HIntro-1"},
		{"In-tro", "HIntro-2"},
		{"Other", "HOther"},
		{"", "H"},
		{"*", "H-1"},
		{"Intro", "HIntro-3"},
	}
	for i, tc := range testcases {
		if got := g.Generate(tc.in); got != tc.exp {
			t.Errorf("TC=%d: %q: expected %q, but got %q", i, tc.in, tc.exp, got)
		}
	}
	g.Reset()
	if got := g.Generate("Intro"); got != "HIntro" {
		t.Errorf("after reset, expected %q, but got %q", "HIntro", got)
	}
}

func TestSlugGenerator(t *testing.T) {
	g := strfun.NewSlugGenerator()
	for _, exp := range []string{"simple-test", "simple-test-1", "simple-test-2"} {
		if got := g.Generate("Simple Test"); got != exp {
			t.Errorf("expected %q, but got %q", exp, got)
		}
	}
}

func TestSet(t *testing.T) {
	s := strfun.NewSet("doc", "url", "doc")
	if !s.Has("doc") || s.Has("attach") {
		t.Errorf("wrong content: %v", s)
	}
	s.Set("attach")
	got := s.Sorted()
	exp := []string{"attach", "doc", "url"}
	if !eqStringSlice(got, exp) {
		t.Errorf("expected %v, but got %v", exp, got)
	}
}

func eqStringSlice(got, exp []string) bool {
	if len(got) != len(exp) {
		return false
	}
	for i, g := range got {
		if g != exp[i] {
			return false
		}
	}
	return true
}
