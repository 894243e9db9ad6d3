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

import "strings"

// Attribute is a single key/value pair.
type Attribute struct {
	Key   string
	Value string
}

// Attributes store additional information about some node types and events.
// The order of the pairs is the order in which they were written.
type Attributes []Attribute

// IsEmpty returns true if there are no attributes.
func (a Attributes) IsEmpty() bool { return len(a) == 0 }

// Get returns the attribute value of the given key and a succes value.
func (a Attributes) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Set returns attributes where the given key has now the given value. A new
// key is appended. The receiver is never modified.
func (a Attributes) Set(key, value string) Attributes {
	for i, attr := range a {
		if attr.Key == key {
			result := a.Clone()
			result[i].Value = value
			return result
		}
	}
	return append(a[:len(a):len(a)], Attribute{Key: key, Value: value})
}

// Remove the key from the attributes.
func (a Attributes) Remove(key string) Attributes {
	for i, attr := range a {
		if attr.Key == key {
			return append(a[:i:i], a[i+1:]...)
		}
	}
	return a
}

// Clone returns a duplicate of the attribute.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	result := make(Attributes, len(a))
	copy(result, a)
	return result
}

// Keys returns the keys in their order.
func (a Attributes) Keys() []string {
	if len(a) == 0 {
		return nil
	}
	result := make([]string, len(a))
	for i, attr := range a {
		result[i] = attr.Key
	}
	return result
}

// Equal returns true if both attributes contain the same pairs in the same order.
// A nil value is equal to an empty value.
func (a Attributes) Equal(o Attributes) bool {
	if len(a) != len(o) {
		return false
	}
	for i, attr := range a {
		if attr != o[i] {
			return false
		}
	}
	return true
}

// AttributesFromMap creates attributes from the given keys and values.
// The keys are used in the given order; keys without a value are ignored.
func AttributesFromMap(keys []string, m map[string]string) Attributes {
	var result Attributes
	for _, key := range keys {
		if val, ok := m[key]; ok {
			result = result.Set(key, val)
		}
	}
	return result
}

func (a Attributes) String() string {
	var sb strings.Builder
	for i, attr := range a {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(attr.Key)
		sb.WriteString(`="`)
		sb.WriteString(attr.Value)
		sb.WriteByte('"')
	}
	return sb.String()
}
