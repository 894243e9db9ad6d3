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

package state

import "zettelstore.de/wikitree/event"

// LineState tracks whether the next content starts a new line.
//
// A serializer uses it to decide whether characters that would start a list
// or a header must be escaped.
type LineState struct {
	content  bool // some content was written since the last line boundary
	newLines int  // number of consecutive NewLine events
}

// Reset the state: at the start, there is a fresh line.
func (ls *LineState) Reset() { *ls = LineState{} }

// OnNewLine returns true if nothing was written on the current line.
func (ls *LineState) OnNewLine() bool { return !ls.content }

// NewLineCount returns the number of immediately preceding NewLine events.
func (ls *LineState) NewLineCount() int { return ls.newLines }

// Handle updates the state according to the event.
func (ls *LineState) Handle(ev event.Event) {
	if _, ok := ev.(event.NewLine); ok {
		ls.newLines++
		ls.content = false
		return
	}
	ls.newLines = 0

	switch e := ev.(type) {
	case event.Word, event.Space, event.SpecialSymbol, event.Reference, event.Image:
		ls.content = true
	case event.Macro:
		ls.content = e.Inline
	case event.Verbatim:
		ls.content = e.Inline
	case event.BeginFormat, event.EndFormat, event.BeginLink, event.EndLink, event.Error:
		// Inline constructs without content of their own.
	default:
		// Every block construct starts on a fresh line.
		ls.content = false
	}
}
