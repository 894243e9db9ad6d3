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

package notify

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"zettelstore.de/wikitree/logger"
	"zettelstore.de/wikitree/strfun"
)

type fileNotifier struct {
	log    *logger.Logger
	events chan Event
	done   chan struct{}
	base   *fsnotify.Watcher
	files  strfun.Set
}

// NewFileNotifier creates a notifier for the given files. The directories of
// the files are watched, so that editors replacing a file are noticed too.
func NewFileNotifier(log *logger.Logger, paths ...string) (Notifier, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Debug().Err(err).Msg("Unable to create watcher")
		return nil, err
	}
	files, dirs := strfun.NewSet(), strfun.NewSet()
	for _, path := range paths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("Unable to create absolute path")
			watcher.Close()
			return nil, err
		}
		files.Set(absPath)
		dirs.Set(filepath.Dir(absPath))
	}
	for _, dir := range dirs.Sorted() {
		if err = watcher.Add(dir); err != nil {
			log.Error().Err(err).Str("dir", dir).Msg("Unable to watch directory")
			watcher.Close()
			return nil, err
		}
	}

	fn := &fileNotifier{
		log:    log,
		events: make(chan Event),
		done:   make(chan struct{}),
		base:   watcher,
		files:  files,
	}
	go fn.eventLoop()
	return fn, nil
}

func (fn *fileNotifier) Events() <-chan Event { return fn.events }

func (fn *fileNotifier) Close() { close(fn.done) }

func (fn *fileNotifier) eventLoop() {
	defer fn.base.Close()
	defer close(fn.events)
	for fn.readAndProcessEvent() {
	}
}

func (fn *fileNotifier) readAndProcessEvent() bool {
	select {
	case <-fn.done:
		fn.log.Trace().Msg("done with read and process events")
		return false
	case err, ok := <-fn.base.Errors:
		fn.log.Trace().Err(err).Bool("ok", ok).Msg("got errors")
		if !ok {
			return false
		}
		return fn.sendEvent(Event{Op: Error, Err: err})
	case ev, ok := <-fn.base.Events:
		if !ok {
			return false
		}
		fn.log.Trace().Str("name", ev.Name).Str("op", ev.Op.String()).Msg("file event")
		return fn.processEvent(&ev)
	}
}

func (fn *fileNotifier) processEvent(ev *fsnotify.Event) bool {
	if !fn.files.Has(ev.Name) {
		return true
	}
	if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) {
		if fi, err := os.Lstat(ev.Name); err != nil || !fi.Mode().IsRegular() {
			fn.log.Trace().Str("name", ev.Name).Err(err).Msg("not a regular file")
			return true
		}
		return fn.sendEvent(Event{Op: Update, Name: ev.Name})
	}
	if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		if _, err := os.Lstat(ev.Name); err == nil {
			return fn.sendEvent(Event{Op: Update, Name: ev.Name})
		}
		return fn.sendEvent(Event{Op: Delete, Name: ev.Name})
	}
	return true
}

func (fn *fileNotifier) sendEvent(ev Event) bool {
	select {
	case fn.events <- ev:
	case <-fn.done:
		fn.log.Trace().Msg("done file event processing")
		return false
	}
	return true
}
