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

// Package input provides a rune-wise reader for the source of a parser.
package input

import "unicode/utf8"

// Input is the source of a parser.
type Input struct {
	// Read-only, will never change
	Src []byte // The source text

	// Read-only, will change
	Ch      rune // current character
	Pos     int  // byte position of Ch in Src
	readPos int  // position after current character
}

// NewInput creates a new input source.
func NewInput(src []byte) *Input {
	inp := &Input{Src: src}
	inp.Next()
	return inp
}

// EOS = End of source
const EOS = rune(-1)

// Next reads the next rune into inp.Ch and returns it too.
func (inp *Input) Next() rune {
	if inp.readPos >= len(inp.Src) {
		inp.Pos = len(inp.Src)
		inp.Ch = EOS
		return EOS
	}
	inp.Pos = inp.readPos
	r, w := rune(inp.Src[inp.readPos]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRune(inp.Src[inp.readPos:])
	}
	inp.readPos += w
	inp.Ch = r
	return r
}

// Peek returns the rune following the current rune without advancing.
func (inp *Input) Peek() rune {
	if pos := inp.readPos; pos < len(inp.Src) {
		r := rune(inp.Src[pos])
		if r >= utf8.RuneSelf {
			r, _ = utf8.DecodeRune(inp.Src[pos:])
		}
		return r
	}
	return EOS
}

// Rest returns the source that is not read yet, starting with the current rune.
func (inp *Input) Rest() []byte { return inp.Src[inp.Pos:] }

// IsEOLEOS returns true if char is either EOS or EOL.
func IsEOLEOS(ch rune) bool {
	switch ch {
	case EOS, '\n', '\r':
		return true
	}
	return false
}

// EatEOL transforms both "\r" and "\r\n" into "\n".
func (inp *Input) EatEOL() {
	switch inp.Ch {
	case '\r':
		if inp.Peek() == '\n' {
			inp.Next()
		}
		inp.Ch = '\n'
		inp.Next()
	case '\n':
		inp.Next()
	}
}

// SkipToEOL reads until the next end-of-line.
func (inp *Input) SkipToEOL() {
	for !IsEOLEOS(inp.Ch) {
		inp.Next()
	}
}

// ScanLine returns the current line without its end-of-line and advances to
// the start of the next line.
func (inp *Input) ScanLine() []byte {
	posL := inp.Pos
	inp.SkipToEOL()
	line := inp.Src[posL:inp.Pos]
	inp.EatEOL()
	return line
}

// ScanLineContent reads the remaining input and joins its lines with "\n".
// Line ends are normalized, a final end-of-line is dropped.
func (inp *Input) ScanLineContent() []byte {
	result := make([]byte, 0, len(inp.Src)-inp.Pos+1)
	inp.EatEOL()
	for inp.Ch != EOS {
		line := inp.ScanLine()
		if len(result) > 0 {
			result = append(result, '\n')
		}
		result = append(result, line...)
	}
	return result
}
