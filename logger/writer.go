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
	"io"
	"sync"
	"time"
)

// LogWriter writes log messages to their specified destinations.
type LogWriter interface {
	WriteMessage(level Level, ts time.Time, prefix string, msg string, details []byte) error
}

// LogWriterAdapter allows to use an io.Writer as a LogWriter.
type LogWriterAdapter struct {
	w      io.Writer
	layout string
	mx     sync.Mutex // protects buf and serializes w.Write
	buf    []byte
}

// NewLogWriterAdapter creates a new LogWriter from an io.Writer.
// Every line starts with date and time.
func NewLogWriterAdapter(w io.Writer) *LogWriterAdapter {
	return NewLogWriterAdapterLayout(w, time.DateTime)
}

// NewLogWriterAdapterLayout creates a new LogWriter from an io.Writer. The
// timestamp is formatted with the given layout; an empty layout omits it.
func NewLogWriterAdapterLayout(w io.Writer, layout string) *LogWriterAdapter {
	return &LogWriterAdapter{
		w:      w,
		layout: layout,
		buf:    make([]byte, 0, 500),
	}
}

// WriteMessage writes the message in one line.
func (lwa *LogWriterAdapter) WriteMessage(level Level, ts time.Time, prefix string, msg string, details []byte) error {
	lwa.mx.Lock()
	defer lwa.mx.Unlock()
	buf := lwa.buf[:0]
	if lwa.layout != "" {
		buf = ts.AppendFormat(buf, lwa.layout)
		buf = append(buf, ' ')
	}
	buf = append(buf, level.Format()...)
	buf = append(buf, ' ')
	if prefix != "" {
		buf = append(buf, prefix...)
		buf = append(buf, ' ')
	}
	buf = append(buf, msg...)
	buf = append(buf, details...)
	buf = append(buf, '\n')
	lwa.buf = buf
	_, err := lwa.w.Write(buf)
	return err
}
