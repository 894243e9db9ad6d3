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

package parser

import (
	"strings"

	"zettelstore.de/wikitree/event"
	"zettelstore.de/wikitree/input"
)

// specialSymbols are the characters that are delivered as SpecialSymbol events.
const specialSymbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// IsSpecialSymbol returns true if the rune is delivered as a special symbol.
func IsSpecialSymbol(ch rune) bool {
	return ch < 128 && strings.ContainsRune(specialSymbols, ch)
}

// EmitText delivers the text as a sequence of Word, Space, and SpecialSymbol
// events. Every space character results in one Space event. The text must not
// contain line endings.
func EmitText(h event.Handler, text string) {
	start := -1
	for pos, ch := range text {
		isSpace, isSym := input.IsSpace(ch), IsSpecialSymbol(ch)
		if !isSpace && !isSym {
			if start < 0 {
				start = pos
			}
			continue
		}
		if start >= 0 {
			h.Handle(event.Word{Text: text[start:pos]})
			start = -1
		}
		if isSpace {
			h.Handle(event.Space{})
		} else {
			h.Handle(event.SpecialSymbol{Symbol: ch})
		}
	}
	if start >= 0 {
		h.Handle(event.Word{Text: text[start:]})
	}
}
