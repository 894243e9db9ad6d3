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

package builder

import (
	"errors"
	"fmt"

	"zettelstore.de/wikitree/event"
)

// Causes of a StructureError.
var (
	ErrUnbalanced  = errors.New("unbalanced event")
	ErrIncomplete  = errors.New("document not complete")
	ErrTrailing    = errors.New("event after end of document")
	ErrHeaderLevel = errors.New("invalid header level")
)

// StructureError signals that the event stream is not well-formed.
// A builder that reported a StructureError ignores all further events.
type StructureError struct {
	Pos  int        // Number of the offending event, starting with 1
	Kind event.Kind // Kind of the offending event, zero for Finish
	Err  error      // One of the Err... causes
	Info string     // Additional information, may be empty
}

func (e *StructureError) Error() string {
	s := e.Err.Error()
	if e.Kind != 0 {
		s = fmt.Sprintf("%s: %v at event %d", s, e.Kind, e.Pos)
	}
	if e.Info != "" {
		s += " (" + e.Info + ")"
	}
	return s
}

func (e *StructureError) Unwrap() error { return e.Err }
