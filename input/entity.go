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

package input

import (
	"html"
	"unicode"
)

// ScanEntity scans either a named or a numbered character reference, like
// "&amp;", "&#38;", or "&#x26;", and returns its value.
//
// If there is no valid reference, ok is false and the position is undefined,
// unless the current character is not '&'.
func (inp *Input) ScanEntity() (res string, ok bool) {
	if inp.Ch != '&' {
		return "", false
	}
	pos := inp.Pos
	inp.Next()
	if inp.Ch != '#' {
		return inp.scanEntityNamed(pos)
	}
	base := 10
	if inp.Next(); inp.Ch == 'x' || inp.Ch == 'X' {
		base = 16
		inp.Next()
	}
	return inp.scanEntityNumber(base)
}

func (inp *Input) scanEntityNumber(base int) (string, bool) {
	code, digits := 0, 0
	for ; inp.Ch != ';'; inp.Next() {
		d := digitVal(inp.Ch)
		if d >= base {
			return "", false
		}
		code = base*code + d
		if code > unicode.MaxRune {
			return "", false
		}
		digits++
	}
	inp.Next()
	if r := rune(code); digits > 0 && isValidEntity(r) {
		return string(r), true
	}
	return "", false
}

func digitVal(ch rune) int {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0')
	case 'a' <= ch && ch <= 'f':
		return int(ch - 'a' + 10)
	case 'A' <= ch && ch <= 'F':
		return int(ch - 'A' + 10)
	}
	return 16
}

func (inp *Input) scanEntityNamed(pos int) (string, bool) {
	for {
		switch inp.Ch {
		case EOS, '\n', '\r', '&':
			return "", false
		case ';':
			inp.Next()
			es := string(inp.Src[pos:inp.Pos])
			if ues := html.UnescapeString(es); es != ues {
				return ues, true
			}
			return "", false
		}
		inp.Next()
	}
}

// isValidEntity reports whether a numeric character reference may denote r.
// Allowed is any code point, except CR, noncharacters, and controls other
// than ASCII white space.
//
// See: https://html.spec.whatwg.org/multipage/syntax.html#character-references
func isValidEntity(r rune) bool {
	switch r {
	case '\t', '\n', '\f', ' ':
		return true
	case '\r':
		return false
	}
	return !unicode.IsControl(r) && !unicode.Is(unicode.Noncharacter_Code_Point, r)
}
