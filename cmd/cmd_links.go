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
	"fmt"
	"io"
	"strings"

	"zettelstore.de/wikitree/ast"
	"zettelstore.de/wikitree/collect"
	"zettelstore.de/wikitree/parser"
)

// ---------- Subcommand: links ----------------------------------------------

// LinksCmd prints the outline and the references of a document.
type LinksCmd struct {
	Duplicates bool   `short:"d" help:"Keep duplicate references."`
	Order      bool   `short:"o" help:"Print only the wiki documents listed by the document."`
	File       string `arg:"" optional:"" default:"-" help:"File to inspect; '-' reads standard input."`
}

// Run the command.
func (c *LinksCmd) Run(env *Env) error {
	src, err := readSource(env.Stdin, c.File)
	if err != nil {
		return err
	}
	syntax := detectSyntax(env, c.File)
	doc, err := parser.ParseDocument(src, syntax, env.NewBuilder(syntax))
	if err != nil {
		env.Log.Error().Str("file", c.File).Err(err).Msg("Unable to build document")
		fmt.Fprintf(env.Stderr, "%s: %v\n", c.File, err)
		return errFailed
	}
	if c.Order {
		for _, ref := range collect.Order(doc) {
			fmt.Fprintln(env.Stdout, ref.Value)
		}
		return nil
	}

	summary := collect.References(doc)
	if len(summary.Headers) > 0 {
		fmt.Fprintln(env.Stdout, "Outline:")
		for _, hn := range summary.Headers {
			fmt.Fprintf(env.Stdout, "%s%s #%s\n", strings.Repeat("  ", hn.Level), headerText(hn), hn.ID)
		}
	}
	wiki, local, external := collect.DivideReferences(summary.Links, c.Duplicates)
	writeRefs(env.Stdout, "Wiki", wiki)
	writeRefs(env.Stdout, "Local", local)
	writeRefs(env.Stdout, "External", external)
	imgWiki, imgLocal, imgExternal := collect.DivideReferences(summary.Images, c.Duplicates)
	writeRefs(env.Stdout, "Images", append(append(imgWiki, imgLocal...), imgExternal...))
	return nil
}

func writeRefs(w io.Writer, title string, refs []*ast.Reference) {
	if len(refs) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, ref := range refs {
		fmt.Fprintf(w, "  %s %s\n", ref.Type, ref.Value)
	}
}

func headerText(hn *ast.HeaderNode) string {
	var sb strings.Builder
	ast.Inspect(hn, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.WordNode:
			sb.WriteString(n.Text)
		case *ast.SpaceNode:
			sb.WriteByte(' ')
		case *ast.SpecialSymbolNode:
			sb.WriteRune(n.Symbol)
		}
		return true
	})
	return sb.String()
}
