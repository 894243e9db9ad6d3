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

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zettelstore.de/wikitree/notify"
)

// ---------- Subcommand: watch ----------------------------------------------

// WatchCmd parses a file, and parses it again after every change.
type WatchCmd struct {
	Delay time.Duration `help:"Wait this long for more changes before parsing." default:"200ms"`
	File  string        `arg:"" name:"file" help:"File to watch." type:"path"`
}

// Run the command until it is interrupted.
func (c *WatchCmd) Run(env *Env) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return c.watch(ctx, env)
}

func (c *WatchCmd) watch(ctx context.Context, env *Env) error {
	n, err := notify.NewFileNotifier(env.Log, c.File)
	if err != nil {
		return err
	}
	defer n.Close()

	c.parse(env)
	var timer <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-n.Events():
			if !ok {
				return nil
			}
			switch ev.Op {
			case notify.Error:
				env.Log.Warn().Err(ev.Err).Msg("Watching failed")
			case notify.Delete:
				env.Log.Info().Str("file", ev.Name).Msg("File removed, waiting for it to come back")
			case notify.Update:
				timer = time.After(c.Delay)
			}
		case <-timer:
			timer = nil
			c.parse(env)
		}
	}
}

func (c *WatchCmd) parse(env *Env) {
	src, err := os.ReadFile(c.File)
	if err != nil {
		env.Log.Warn().Str("file", c.File).Err(err).Msg("Unable to read file")
		return
	}
	fmt.Fprintf(env.Stdout, "== %s %s\n", c.File, time.Now().Format(time.TimeOnly))
	if err = parseFile(env, env.Stdout, c.File, src, false); err != nil {
		env.Log.Error().Str("file", c.File).Err(err).Msg("Unable to build document")
		fmt.Fprintf(env.Stderr, "%s: %v\n", c.File, err)
	}
}
