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

package html_test

import (
	"strings"
	"testing"

	"zettelstore.de/wikitree/builder"
	"zettelstore.de/wikitree/encoder/nativeenc"
	"zettelstore.de/wikitree/event"
	"zettelstore.de/wikitree/input"
	"zettelstore.de/wikitree/parser"
	"zettelstore.de/wikitree/reference"

	_ "zettelstore.de/wikitree/parser/html" // Allow to use HTML parser.
)

func parse(t *testing.T, src string) string {
	t.Helper()
	reg := reference.DefaultRegistry()
	wm := reference.StaticWikiMode(true)
	b := builder.New(reference.NewLinkResolver(reg, wm), reference.NewImageResolver(reg, wm))
	doc, err := parser.ParseDocument([]byte(src), "html", b)
	if err != nil {
		t.Fatalf("parsing %q: %v", src, err)
	}
	return nativeenc.String(doc)
}

func TestParse(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		name string
		src  string
		exp  string
	}{
		{"empty", "", "(DOCUMENT)"},
		{"paragraph", "<p>Hello <b>big</b> world</p>",
			`(DOCUMENT (PARA (WORD "Hello") (SPACE) (FORMAT-BOLD (WORD "big")) (SPACE) (WORD "world")))`},
		{"collapse", "<p>  a \n\t b  </p>", `(DOCUMENT (PARA (WORD "a") (SPACE) (WORD "b")))`},
		{"loose text", "a<div>b</div>", `(DOCUMENT (PARA (WORD "a")) (PARA (WORD "b")))`},
		{"heading", "<h1>T</h1><p>x</p>",
			`(DOCUMENT (SECTION 1 (HEADER 1 "HT" (WORD "T")) (PARA (WORD "x"))))`},
		{"heading attrs", `<h2 id="top">T</h2>`,
			`(DOCUMENT (SECTION 1 (SECTION 2 (HEADER 2 "HT" (@ (id "top")) (WORD "T")))))`},
		{"formats", "<p><i>i</i><u>u</u><del>d</del><sup>p</sup><sub>b</sub><kbd>k</kbd></p>",
			`(DOCUMENT (PARA (FORMAT-ITALIC (WORD "i")) (FORMAT-UNDERLINED (WORD "u")) (FORMAT-STRIKEDOUT (WORD "d")) (FORMAT-SUPER (WORD "p")) (FORMAT-SUB (WORD "b")) (FORMAT-MONOSPACE (WORD "k"))))`},
		{"span", `<p><span class="x">a</span></p>`, `(DOCUMENT (PARA (FORMAT (@ (class "x")) (WORD "a"))))`},
		{"symbols", "<p>a.b</p>", `(DOCUMENT (PARA (WORD "a") (SYMBOL ".") (WORD "b")))`},
		{"line break", "<p>a<br>b</p>", `(DOCUMENT (PARA (WORD "a") (NEWLINE) (WORD "b")))`},
		{"code", "<p><code>x y</code></p>", `(DOCUMENT (PARA (VERBATIM-INLINE "x y")))`},
		{"pre", "<pre>x\n  y\n</pre>", `(DOCUMENT (VERBATIM "x\n  y"))`},
		{"hr", "<hr>", `(DOCUMENT (HRULE))`},
		{"link", `<p><a href="Main.Home">Home</a></p>`,
			`(DOCUMENT (PARA (LINK (REF doc "Main.Home") (WORD "Home"))))`},
		{"free link", `<p><a href="https://x.test">https://x.test</a></p>`,
			`(DOCUMENT (PARA (LINK FREE (REF url "https://x.test"))))`},
		{"anchor only", `<p><a name="x">a</a></p>`, `(DOCUMENT (PARA (WORD "a")))`},
		{"image", `<p><img src="pic.png" alt="p"></p>`,
			`(DOCUMENT (PARA (IMAGE (REF attach "pic.png") (@ (alt "p")))))`},
		{"list", "<ul>\n<li>a</li>\n<li>b</li>\n</ul>",
			`(DOCUMENT (LIST-UNORDERED (ITEM (WORD "a")) (ITEM (WORD "b"))))`},
		{"nested list", "<ol><li>a<ul><li>b</li></ul></li></ol>",
			`(DOCUMENT (LIST-ORDERED (ITEM (WORD "a") (LIST-UNORDERED (ITEM (WORD "b"))))))`},
		{"definition list", "<dl><dt>t</dt><dd>d</dd></dl>",
			`(DOCUMENT (DL (DT (WORD "t")) (DD (WORD "d"))))`},
		{"quote", "<blockquote><p>a</p><p>b</p></blockquote>",
			`(DOCUMENT (QUOTATION (QUOTATION-LINE (WORD "a")) (QUOTATION-LINE (WORD "b"))))`},
		{"table", "<table><tr><th>a</th></tr><tr><td>b</td></tr></table>",
			`(DOCUMENT (TABLE (ROW (CELL-HEAD (WORD "a"))) (ROW (CELL (WORD "b")))))`},
		{"script", "<p>a</p><script>x()</script>", `(DOCUMENT (PARA (WORD "a")))`},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parse(t, tc.src); got != tc.exp {
				t.Errorf("\nsrc: %q\nexp: %s\ngot: %s", tc.src, tc.exp, got)
			}
		})
	}
}

func TestBalancedEvents(t *testing.T) {
	t.Parallel()
	var rec event.Recorder
	if err := parser.Parse([]byte("<p><b>a<i>b</p>c</i>"), "html", &rec); err != nil {
		t.Fatal(err)
	}
	depth := 0
	for _, ev := range rec.Events() {
		switch k := ev.Kind(); {
		case k.IsBegin():
			depth++
		case k.IsEnd():
			depth--
		}
		if depth < 0 {
			t.Fatalf("unbalanced events: %v", rec.Events())
		}
	}
	if depth != 0 {
		t.Errorf("%d scopes left open", depth)
	}
}

func TestInlineParser(t *testing.T) {
	t.Parallel()
	info := parser.Get("html")
	var rec event.Recorder
	if err := info.ParseInline(input.NewInput([]byte("<b>x</b> y")), "html", &rec); err != nil {
		t.Fatal(err)
	}
	var kinds []string
	for _, ev := range rec.Events() {
		kinds = append(kinds, ev.Kind().String())
	}
	exp := "BeginFormat Word EndFormat Space Word"
	if got := strings.Join(kinds, " "); got != exp {
		t.Errorf("expected %q, but got %q", exp, got)
	}
}
