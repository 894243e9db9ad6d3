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

// EmptyLineState counts empty lines that directly precede the current event.
type EmptyLineState struct {
	count int
}

// Reset the counter.
func (es *EmptyLineState) Reset() { es.count = 0 }

// Count returns the number of empty lines since the last other event.
func (es *EmptyLineState) Count() int { return es.count }

// Handle updates the counter.
func (es *EmptyLineState) Handle(ev event.Event) {
	if el, ok := ev.(event.EmptyLines); ok {
		es.count += el.Count
	} else {
		es.count = 0
	}
}
