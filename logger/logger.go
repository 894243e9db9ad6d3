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

// Package logger implements a logging package for use in wikitree.
package logger

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// Level defines the possible log levels
type Level uint8

// Constants for Level
const (
	NoLevel    Level = iota // the absent log level
	TraceLevel              // Log every reference and file event
	DebugLevel              // Log built documents and configuration
	InfoLevel               // Log normal activities
	WarnLevel               // Log problems within a document
	ErrorLevel              // Log documents that could not be processed
	NeverLevel              // Logging is disabled
)

var levelNames = [...]struct{ short, long string }{
	{"     ", ""},
	{"TRACE", "trace"},
	{"DEBUG", "debug"},
	{"INFO ", "info"},
	{"WARN ", "warn"},
	{"ERROR", "error"},
	{"OFF  ", "off"},
}

// IsValid returns true, if the level is a valid level
func (l Level) IsValid() bool { return TraceLevel <= l && l <= NeverLevel }

func (l Level) String() string {
	if l.IsValid() {
		return levelNames[l].long
	}
	return strconv.Itoa(int(l))
}

// Format returns the level as a string of length 5.
func (l Level) Format() string {
	if l.IsValid() {
		return levelNames[l].short
	}
	return strconv.Itoa(int(l))
}

// ParseLevel returns the level whose name starts with the given text. At least
// three letters are needed, except for "off".
func ParseLevel(text string) Level {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "off" {
		return NeverLevel
	}
	if len(text) < 3 {
		return NoLevel
	}
	for lv := TraceLevel; lv < NeverLevel; lv++ {
		if strings.HasPrefix(levelNames[lv].long, text) {
			return lv
		}
	}
	return NoLevel
}

// Logger emits log messages. A nil *Logger is valid: it discards every message.
type Logger struct {
	lw      LogWriter
	level   *atomic.Uint32 // shared with all derived loggers
	prefix  string
	context []byte
}

// New creates a new logger that writes to lw with the given prefix.
func New(lw LogWriter, prefix string) *Logger {
	if prefix != "" && len(prefix) < 6 {
		prefix = (prefix + "     ")[:6]
	}
	result := &Logger{
		lw:     lw,
		level:  new(atomic.Uint32),
		prefix: prefix,
	}
	result.level.Store(uint32(InfoLevel))
	return result
}

// With returns a logger that adds the key/value pair to every message.
// The new logger shares its level with the receiver.
func (l *Logger) With(key, val string) *Logger {
	if l == nil {
		return nil
	}
	context := make([]byte, 0, len(l.context)+len(key)+len(val)+3)
	context = append(context, l.context...)
	return &Logger{
		lw:      l.lw,
		level:   l.level,
		prefix:  l.prefix,
		context: appendPair(context, key, val),
	}
}

// SetLevel sets the level of the logger and of all loggers derived by With.
func (l *Logger) SetLevel(newLevel Level) *Logger {
	if l != nil {
		l.level.Store(uint32(newLevel))
	}
	return l
}

// Level returns the current level of the given logger
func (l *Logger) Level() Level {
	if l != nil {
		return Level(l.level.Load())
	}
	return NeverLevel
}

// Trace creates a tracing message.
func (l *Logger) Trace() *Message { return newMessage(l, TraceLevel) }

// Debug creates a debug message.
func (l *Logger) Debug() *Message { return newMessage(l, DebugLevel) }

// Info creates a message suitable for information data.
func (l *Logger) Info() *Message { return newMessage(l, InfoLevel) }

// Warn creates a message suitable for warning the user.
func (l *Logger) Warn() *Message { return newMessage(l, WarnLevel) }

// Error creates a message suitable for signalling an error.
func (l *Logger) Error() *Message { return newMessage(l, ErrorLevel) }

func (l *Logger) writeMessage(level Level, msg string, details []byte) error {
	return l.lw.WriteMessage(level, time.Now().Local(), l.prefix, msg, details)
}
