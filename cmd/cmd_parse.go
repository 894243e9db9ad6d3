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
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"zettelstore.de/wikitree/ast"
	"zettelstore.de/wikitree/encoder"
	"zettelstore.de/wikitree/event"
	"zettelstore.de/wikitree/parser"
	"zettelstore.de/wikitree/state"
)

// ---------- Subcommand: parse ----------------------------------------------

// ParseCmd parses files concurrently and prints the trees in the order of
// the files.
type ParseCmd struct {
	Events bool     `short:"e" help:"Print the event stream instead of the tree."`
	Files  []string `arg:"" optional:"" name:"file" help:"Files to parse; '-' or nothing reads standard input."`
}

// Run the command.
func (c *ParseCmd) Run(env *Env) error {
	files := c.Files
	if len(files) == 0 {
		files = []string{"-"}
	}
	results := make([]bytes.Buffer, len(files))
	failed := make([]bool, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range files {
		g.Go(func() error {
			src, err := readSource(env.Stdin, file)
			if err != nil {
				return err
			}
			if err = parseFile(env, &results[i], file, src, c.Events); err != nil {
				env.Log.Error().Str("file", file).Err(err).Msg("Unable to build document")
				fmt.Fprintf(&results[i], "%s: %v\n", file, err)
				failed[i] = true
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	hasFailed := false
	for i, file := range files {
		if len(files) > 1 {
			fmt.Fprintf(env.Stdout, "== %s\n", file)
		}
		if failed[i] {
			io.Copy(env.Stderr, &results[i])
			hasFailed = true
			continue
		}
		io.Copy(env.Stdout, &results[i])
	}
	if hasFailed {
		return errFailed
	}
	return nil
}

func readSource(stdin io.Reader, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(file)
}

// detectSyntax returns the syntax for the file: an explicit syntax wins,
// then the file extension, then the configured syntax.
func detectSyntax(env *Env, file string) string {
	if !env.explicit {
		if ext := strings.TrimPrefix(filepath.Ext(file), "."); ext != "" && parser.IsKnown(ext) {
			return ext
		}
	}
	return env.Config.Syntax
}

func parseFile(env *Env, w io.Writer, file string, src []byte, withEvents bool) error {
	syntax := detectSyntax(env, file)
	var listeners []event.Handler
	if withEvents {
		listeners = append(listeners, newEventTracer(w))
	}
	start := time.Now()
	doc, err := parser.ParseDocument(src, syntax, env.NewBuilder(syntax), listeners...)
	took := time.Since(start)
	env.Metrics.ObserveParse(parser.Get(syntax).Name, took)
	if err != nil {
		return err
	}
	env.Log.Debug().Str("file", file).Str("syntax", syntax).Int("nodes", int64(ast.CountNodes(doc))).Dur("took", took).Msg("Parsed")
	if withEvents {
		return nil
	}
	return writeNode(w, env.Config.Format, doc)
}

func writeNode(w io.Writer, format string, node ast.Node) error {
	enc := encoder.Create(format)
	if enc == nil {
		return fmt.Errorf("unknown format %q", format)
	}
	var buf bytes.Buffer
	if _, err := enc.WriteNode(&buf, node); err != nil {
		return err
	}
	if buf.Len() > 0 && buf.Bytes()[buf.Len()-1] != '\n' {
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// eventTracer writes one line per event, indented by its nesting depth, and
// annotated with the context of the event.
type eventTracer struct {
	w     io.Writer
	ctx   *state.Context
	depth int
}

func newEventTracer(w io.Writer) *eventTracer {
	return &eventTracer{w: w, ctx: state.NewContext()}
}

func (et *eventTracer) Handle(ev event.Event) {
	kind := ev.Kind()
	if kind.IsEnd() {
		et.depth--
	}
	et.ctx.Handle(ev)
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", max(et.depth, 0)))
	sb.WriteString(kind.String())
	if detail := eventDetail(ev); detail != "" {
		sb.WriteByte(' ')
		sb.WriteString(detail)
	}
	bs := &et.ctx.Block
	if bs.InListItem() && kind == event.KindBeginListItem {
		fmt.Fprintf(&sb, " #%d", bs.ListItemIndex()+1)
	}
	if bs.InTableCell() && kind == event.KindBeginTableCell {
		fmt.Fprintf(&sb, " [%d,%d]", bs.CellRow()+1, bs.CellCol()+1)
	}
	if kind == event.KindEmptyLines {
		fmt.Fprintf(&sb, " (%d in a row)", et.ctx.EmptyLine.Count())
	}
	sb.WriteByte('\n')
	io.WriteString(et.w, sb.String())
	if kind.IsBegin() {
		et.depth++
	}
}

func eventDetail(ev event.Event) string {
	switch e := ev.(type) {
	case event.BeginHeader:
		return fmt.Sprintf("%d", e.Level)
	case event.Word:
		return fmt.Sprintf("%q", e.Text)
	case event.SpecialSymbol:
		return fmt.Sprintf("%q", string(e.Symbol))
	case event.Reference:
		return fmt.Sprintf("%q", e.Reference)
	case event.BeginLink:
		return fmt.Sprintf("%q", e.Reference)
	case event.Image:
		return fmt.Sprintf("%q", e.Reference)
	case event.Macro:
		return fmt.Sprintf("%q", e.Name)
	case event.Error:
		return fmt.Sprintf("%q", e.Message)
	}
	return ""
}
