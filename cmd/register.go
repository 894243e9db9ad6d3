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

// Package cmd provides the command line interface of wikitree.
package cmd

// Mention all needed encoders and parsers to have them registered.
import (
	_ "zettelstore.de/wikitree/encoder/nativeenc" // Allow to use native encoder.
	_ "zettelstore.de/wikitree/encoder/textenc"   // Allow to use text encoder.
	_ "zettelstore.de/wikitree/encoder/treeenc"   // Allow to use tree encoder.
	_ "zettelstore.de/wikitree/parser/html"       // Allow to use HTML parser.
	_ "zettelstore.de/wikitree/parser/markdown"   // Allow to use markdown parser.
	_ "zettelstore.de/wikitree/parser/plain"      // Allow to use plain parser.
)
