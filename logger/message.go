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

package logger

import (
	"strconv"
	"sync"
	"time"
)

// Message presents a message to log.
type Message struct {
	logger *Logger
	level  Level
	buf    []byte
}

func newMessage(logger *Logger, level Level) *Message {
	if logger == nil || level < logger.Level() {
		return nil
	}
	m := messagePool.Get().(*Message)
	m.logger = logger
	m.level = level
	m.buf = append(m.buf[:0], logger.context...)
	return m
}

var messagePool = &sync.Pool{
	New: func() any {
		return &Message{
			buf: make([]byte, 0, 500),
		}
	},
}

// Enabled returns whether the message will log or not.
func (m *Message) Enabled() bool {
	return m != nil && m.level < NeverLevel
}

func appendKey(buf []byte, key string) []byte {
	buf = append(buf, ',', ' ')
	buf = append(buf, key...)
	return append(buf, '=')
}

func appendPair(buf []byte, key, val string) []byte {
	return append(appendKey(buf, key), val...)
}

// Str adds a string value to the full message
func (m *Message) Str(key, val string) *Message {
	if m.Enabled() {
		m.buf = appendPair(m.buf, key, val)
	}
	return m
}

// Quote adds a string value in Go syntax, so that spaces and control
// characters of document text stay visible.
func (m *Message) Quote(key, val string) *Message {
	if m.Enabled() {
		m.buf = strconv.AppendQuote(appendKey(m.buf, key), val)
	}
	return m
}

// Err adds an error value to the full message
func (m *Message) Err(err error) *Message {
	if err != nil {
		return m.Str("error", err.Error())
	}
	return m
}

// Int adds an integer value to the full message
func (m *Message) Int(key string, i int64) *Message {
	if m.Enabled() {
		m.buf = strconv.AppendInt(appendKey(m.buf, key), i, 10)
	}
	return m
}

// Bool adds a boolean value to the full message
func (m *Message) Bool(key string, b bool) *Message {
	if m.Enabled() {
		m.buf = strconv.AppendBool(appendKey(m.buf, key), b)
	}
	return m
}

// Dur adds a duration, e.g. the time needed to parse a document.
func (m *Message) Dur(key string, d time.Duration) *Message {
	if m.Enabled() {
		m.buf = appendPair(m.buf, key, d.String())
	}
	return m
}

// Msg add the given text to the message and writes it to the log.
func (m *Message) Msg(text string) {
	if m.Enabled() {
		m.logger.writeMessage(m.level, text, m.buf)
		messagePool.Put(m)
	}
}
