//-----------------------------------------------------------------------------
// Copyright (c) 2021-present Detlef Stern
//
// This file is part of wikitree.
//
// wikitree is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2021-present Detlef Stern
//-----------------------------------------------------------------------------

// Package notify reports changes of source files, so that they can be
// parsed again.
package notify

import "fmt"

// Notifier sends events about the files it watches.
type Notifier interface {
	// Return the channel. It is closed after Close was called.
	Events() <-chan Event

	// Close the notifier.
	Close()
}

// EventOp describe a notification operation.
type EventOp uint8

// Valid constants for event operations.
//
// Update signals that the file Event.Name was created or written.
//
// Delete signals that the file Event.Name was removed or renamed.
const (
	_      EventOp = iota
	Error          // Error while operating
	Update         // Update file
	Delete         // Delete file
)

// String representation of operation code.
func (c EventOp) String() string {
	switch c {
	case Error:
		return "ERROR"
	case Update:
		return "UPDATE"
	case Delete:
		return "DELETE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", c)
	}
}

// Event represents a single file event.
type Event struct {
	Op   EventOp
	Name string // Absolute file name
	Err  error  // Valid iff Op == Error
}
