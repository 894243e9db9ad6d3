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

package event

// Handler receives events in document order.
//
// Handle does not return an error. Handlers that can fail keep the first
// error and report it when asked, like bufio.Scanner does.
type Handler interface {
	Handle(Event)
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc func(Event)

// Handle calls f(ev).
func (f HandlerFunc) Handle(ev Event) { f(ev) }

// Chain delivers every event to all of its handlers, in order.
type Chain []Handler

// Handle delivers the event.
func (c Chain) Handle(ev Event) {
	for _, h := range c {
		h.Handle(ev)
	}
}

// Recorder stores events, so that they can be delivered later.
type Recorder struct {
	events []Event
}

// Handle stores the event.
func (r *Recorder) Handle(ev Event) { r.events = append(r.events, ev) }

// Events returns the stored events.
func (r *Recorder) Events() []Event { return r.events }

// Len returns the number of stored events.
func (r *Recorder) Len() int { return len(r.events) }

// Replay delivers all stored events to the given handler.
func (r *Recorder) Replay(h Handler) {
	for _, ev := range r.events {
		h.Handle(ev)
	}
}

// Reset removes all stored events.
func (r *Recorder) Reset() { r.events = nil }

// Feed delivers the given events to the handler.
func Feed(h Handler, events ...Event) {
	for _, ev := range events {
		h.Handle(ev)
	}
}
