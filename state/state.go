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

// Package state provides event handlers that track the context of the
// current event, e.g. whether it is inside a list or at the start of a line.
//
// The handlers only observe events. They are chained alongside a tree builder,
// or fed by event.Emit from an already built tree.
package state

import "zettelstore.de/wikitree/event"

// Context combines all state handlers.
type Context struct {
	Block     BlockState
	Line      LineState
	EmptyLine EmptyLineState
}

// NewContext returns a context in its initial state.
func NewContext() *Context {
	c := &Context{}
	c.Reset()
	return c
}

// Handle delivers the event to all state handlers.
func (c *Context) Handle(ev event.Event) {
	c.Block.Handle(ev)
	c.Line.Handle(ev)
	c.EmptyLine.Handle(ev)
}

// Reset all state handlers.
func (c *Context) Reset() {
	c.Block.Reset()
	c.Line.Reset()
	c.EmptyLine.Reset()
}
