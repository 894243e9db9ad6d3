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

	"zettelstore.de/wikitree/encoder"
	"zettelstore.de/wikitree/parser"
	"zettelstore.de/wikitree/reference"
	"zettelstore.de/wikitree/strfun"
)

// ---------- Subcommand: resolve --------------------------------------------

// ResolveCmd resolves references.
type ResolveCmd struct {
	Image bool     `short:"i" help:"Resolve as image references."`
	Refs  []string `arg:"" name:"reference" help:"References to resolve."`
}

// Run the command.
func (c *ResolveCmd) Run(env *Env) error {
	links, images := env.Resolvers()
	r := links
	if c.Image {
		r = images
	}
	width := 0
	for _, raw := range c.Refs {
		width = max(width, strfun.Length(raw))
	}
	width = min(width, 40)
	failed := false
	for _, raw := range c.Refs {
		label := strfun.JustifyLeft(raw, width, ' ')
		ref, err := r.Parse(raw)
		if err != nil {
			fmt.Fprintf(env.Stdout, "%s  error    %v\n", label, err)
			failed = true
			continue
		}
		typed := ""
		if ref.Typed {
			typed = " typed"
		}
		if loc, ok := reference.IsImage(ref); ok && !c.Image {
			fmt.Fprintf(env.Stdout, "%s  image    %q\n", label, loc)
			continue
		}
		fmt.Fprintf(env.Stdout, "%s  %s %q%s", label, strfun.JustifyLeft(ref.Type.String(), 8, ' '), ref.Value, typed)
		if !ref.Params.IsEmpty() {
			fmt.Fprintf(env.Stdout, " %v", ref.Params)
		}
		fmt.Fprintln(env.Stdout)
	}
	if failed {
		return errFailed
	}
	return nil
}

// ---------- Subcommand: syntaxes -------------------------------------------

// SyntaxesCmd lists the markup syntaxes and output formats.
type SyntaxesCmd struct{}

// Run the command.
func (*SyntaxesCmd) Run(env *Env) error {
	fmt.Fprintln(env.Stdout, "Syntaxes:")
	for _, syntax := range parser.GetSyntaxes() {
		if name := parser.Get(syntax).Name; name != syntax {
			fmt.Fprintf(env.Stdout, "  %s -> %s\n", strfun.JustifyLeft(syntax, 10, ' '), name)
		} else {
			fmt.Fprintf(env.Stdout, "  %s\n", syntax)
		}
	}
	fmt.Fprintln(env.Stdout, "Formats:")
	for _, enc := range encoder.GetEncodings() {
		fmt.Fprintf(env.Stdout, "  %s\n", enc)
	}
	return nil
}

// ---------- Subcommand: version --------------------------------------------

// VersionCmd prints the version.
type VersionCmd struct{}

// Run the command.
func (*VersionCmd) Run(env *Env) error {
	fmt.Fprintln(env.Stdout, env.Version)
	return nil
}
