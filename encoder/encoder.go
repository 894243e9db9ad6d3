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

// Package encoder provides a generic interface to encode the document tree
// into some text form.
//
// The encodings are debug views of a tree: they are used for tests, log
// messages and the command line tool. They are not meant to publish a
// document.
package encoder

import (
	"fmt"
	"io"
	"slices"

	"zettelstore.de/wikitree/ast"
)

// Encoder is an interface that allows to encode a document tree.
type Encoder interface {
	// WriteNode writes the node and all of its descendants.
	WriteNode(io.Writer, ast.Node) (int, error)
}

// Create builds a new encoder for the given encoding name.
// It returns nil if there is no such encoder.
func Create(enc string) Encoder {
	if info, ok := registry[enc]; ok {
		return info.Create()
	}
	return nil
}

// Info stores some data about an encoder.
type Info struct {
	Create  func() Encoder
	Default bool
}

var registry = map[string]Info{}
var defEncoding string

// Register the encoder for later retrieval.
func Register(enc string, info Info) {
	if _, ok := registry[enc]; ok {
		panic(fmt.Sprintf("Encoder %q already registered", enc))
	}
	if info.Default {
		if defEncoding != "" && defEncoding != enc {
			panic(fmt.Sprintf("Default encoder already set: %q, new encoding: %q", defEncoding, enc))
		}
		defEncoding = enc
	}
	registry[enc] = info
}

// GetEncodings returns all registered encodings, ordered by name.
func GetEncodings() []string {
	result := make([]string, 0, len(registry))
	for enc := range registry {
		result = append(result, enc)
	}
	slices.Sort(result)
	return result
}

// GetDefaultEncoding returns the encoding that should be used as default.
func GetDefaultEncoding() string {
	if defEncoding != "" {
		return defEncoding
	}
	panic("No default encoding given")
}
