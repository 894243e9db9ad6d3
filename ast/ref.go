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

package ast

// Reference is a structured reference to a resource, e.g. a document, an
// attachment, or an external URL.
type Reference struct {
	Value  string     // Reference text, without a type prefix
	Type   RefType    // Kind of the referenced resource
	Typed  bool       // True if the type was written explicitly
	Params Attributes // Additional parts of the reference, e.g. an anchor
}

// RefType states the kind of resource a reference points to.
type RefType int

// Constants for RefType
const (
	RefTypeUnknown    RefType = iota // Reference could not be recognized
	RefTypeURL                       // External address, or any URI
	RefTypeDocument                  // Wiki document
	RefTypeAttachment                // Attachment of a wiki document
	RefTypeMailto                    // Mail address
	RefTypeInterWiki                 // Document of another wiki, via an alias
	RefTypePath                      // Path relative to the wiki installation
	RefTypeUNC                       // Windows network share
)

var refTypeKeys = [...]string{
	"unknown",
	"url",
	"doc",
	"attach",
	"mailto",
	"interwiki",
	"path",
	"unc",
}

// String returns the key of the type, as used in a type prefix.
func (rt RefType) String() string {
	if RefTypeUnknown <= rt && int(rt) < len(refTypeKeys) {
		return refTypeKeys[rt]
	}
	return refTypeKeys[RefTypeUnknown]
}

// RefTypeFromKey returns the reference type for a type prefix.
func RefTypeFromKey(key string) (RefType, bool) {
	for i, k := range refTypeKeys {
		if k == key && i > 0 {
			return RefType(i), true
		}
	}
	return RefTypeUnknown, false
}

// String returns the string representation of a reference. Typed references
// keep their type prefix, so that resolving the result yields the same reference.
func (r *Reference) String() string {
	if r == nil {
		return ""
	}
	if r.Typed {
		return r.Type.String() + ":" + r.Value
	}
	return r.Value
}

// IsExternal returns true if it is a reference to external material.
func (r *Reference) IsExternal() bool {
	return r.Type == RefTypeURL || r.Type == RefTypeMailto
}

// IsWiki returns true if the reference points into the wiki.
func (r *Reference) IsWiki() bool {
	switch r.Type {
	case RefTypeDocument, RefTypeAttachment, RefTypeInterWiki:
		return true
	}
	return false
}

// IsKnown returns true if some parser recognized the reference.
func (r *Reference) IsKnown() bool { return r.Type != RefTypeUnknown }
