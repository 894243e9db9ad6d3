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

package reference

import (
	"fmt"
	"strconv"
)

// FormatError is returned by a type parser if the body of a reference is
// malformed.
type FormatError struct {
	Type string // Type prefix
	Body string // Body of the reference
	Err  error  // Reason, may be nil
}

func (e *FormatError) Error() string {
	s := fmt.Sprintf("malformed %s reference %s", e.Type, strconv.Quote(e.Body))
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *FormatError) Unwrap() error { return e.Err }
