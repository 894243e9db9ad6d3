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

// Package plain provides a parser for plain text data.
package plain

import (
	"strings"

	"zettelstore.de/wikitree/ast"
	"zettelstore.de/wikitree/event"
	"zettelstore.de/wikitree/input"
	"zettelstore.de/wikitree/parser"
	"zettelstore.de/wikitree/strfun"
)

func init() {
	parser.Register(&parser.Info{
		Name:        "plain",
		AltNames:    []string{"text", "txt"},
		Parse:       parseBlocks,
		ParseInline: parseInlines,
	})
	parser.Register(&parser.Info{
		Name:        "verbatim",
		AltNames:    []string{"css", "mustache", "code"},
		Parse:       parseVerbatim,
		ParseInline: parseVerbatimInline,
	})
}

// parseBlocks splits the text into paragraphs. Paragraphs are separated by an
// empty line; further empty lines are delivered as an EmptyLines event.
func parseBlocks(inp *input.Input, _ string, h event.Handler) error {
	h.Handle(event.BeginDocument{})
	inPara, empty := false, 0
	for inp.Ch != input.EOS {
		line := scanLine(inp)
		if strings.TrimSpace(line) == "" {
			if inPara {
				h.Handle(event.EndParagraph{})
				inPara, empty = false, -1
			}
			empty++
			continue
		}
		if inPara {
			h.Handle(event.NewLine{})
		} else {
			if empty > 0 {
				h.Handle(event.EmptyLines{Count: empty})
			}
			h.Handle(event.BeginParagraph{})
			inPara, empty = true, 0
		}
		parser.EmitText(h, line)
	}
	if inPara {
		h.Handle(event.EndParagraph{})
	} else if empty > 0 {
		h.Handle(event.EmptyLines{Count: empty})
	}
	h.Handle(event.EndDocument{})
	return nil
}

// parseInlines delivers all lines as text, separated by a space.
func parseInlines(inp *input.Input, _ string, h event.Handler) error {
	first := true
	for inp.Ch != input.EOS {
		line := strings.TrimSpace(scanLine(inp))
		if line == "" {
			continue
		}
		if !first {
			h.Handle(event.Space{})
		}
		parser.EmitText(h, line)
		first = false
	}
	return nil
}

func scanLine(inp *input.Input) string {
	return strfun.TrimSpaceRight(string(inp.ScanLine()))
}

func parseVerbatim(inp *input.Input, syntax string, h event.Handler) error {
	h.Handle(event.BeginDocument{})
	if content := inp.ScanLineContent(); len(content) > 0 {
		h.Handle(event.Verbatim{
			Content: string(content),
			Attrs:   ast.Attributes{{Key: "syntax", Value: syntax}},
		})
	}
	h.Handle(event.EndDocument{})
	return nil
}

func parseVerbatimInline(inp *input.Input, syntax string, h event.Handler) error {
	h.Handle(event.Verbatim{
		Content: string(inp.ScanLine()),
		Inline:  true,
		Attrs:   ast.Attributes{{Key: "syntax", Value: syntax}},
	})
	return nil
}
