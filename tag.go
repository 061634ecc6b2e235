// Copyright 2013 Seth Bunce. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

package rawbson

import "fmt"

// Tag identifies the wire type of a BSON element. The set of valid tags is
// closed; any other byte encountered while scanning a document is
// malformed, per spec §4.2.
type Tag byte

// Wire tags. See doc.go for the BSON grammar these correspond to.
const (
	TagFloat64           Tag = 0x01
	TagString            Tag = 0x02
	TagDocument          Tag = 0x03
	TagArray             Tag = 0x04
	TagBinary            Tag = 0x05
	TagUndefined         Tag = 0x06 // Deprecated.
	TagObjectID          Tag = 0x07
	TagBool              Tag = 0x08
	TagDateTime          Tag = 0x09
	TagNull              Tag = 0x0A
	TagRegex             Tag = 0x0B
	TagDBPointer         Tag = 0x0C // Deprecated.
	TagJavaScript        Tag = 0x0D
	TagSymbol            Tag = 0x0E // Deprecated.
	TagJavaScriptScope   Tag = 0x0F
	TagInt32             Tag = 0x10
	TagTimestamp         Tag = 0x11
	TagInt64             Tag = 0x12
	TagDecimal128        Tag = 0x13
	TagMinKey            Tag = 0xFF
	TagMaxKey            Tag = 0x7F
)

// String returns a human-readable tag name, for diagnostics and the CLI
// tools. It never fails; an unrecognized byte prints as a hex literal.
func (t Tag) String() string {
	switch t {
	case TagFloat64:
		return "float64"
	case TagString:
		return "string"
	case TagDocument:
		return "document"
	case TagArray:
		return "array"
	case TagBinary:
		return "binary"
	case TagUndefined:
		return "undefined"
	case TagObjectID:
		return "objectId"
	case TagBool:
		return "bool"
	case TagDateTime:
		return "datetime"
	case TagNull:
		return "null"
	case TagRegex:
		return "regex"
	case TagDBPointer:
		return "dbPointer"
	case TagJavaScript:
		return "javascript"
	case TagSymbol:
		return "symbol"
	case TagJavaScriptScope:
		return "javascriptWithScope"
	case TagInt32:
		return "int32"
	case TagTimestamp:
		return "timestamp"
	case TagInt64:
		return "int64"
	case TagDecimal128:
		return "decimal128"
	case TagMinKey:
		return "minKey"
	case TagMaxKey:
		return "maxKey"
	default:
		return fmt.Sprintf("%#x", byte(t))
	}
}

// validTag reports whether t is a member of the closed set of BSON type
// tags recognized by this module. Scanning a document with any other tag
// byte is a MalformedBytes error (spec §4.3).
func validTag(t Tag) bool {
	switch t {
	case TagFloat64, TagString, TagDocument, TagArray, TagBinary, TagUndefined,
		TagObjectID, TagBool, TagDateTime, TagNull, TagRegex, TagDBPointer,
		TagJavaScript, TagSymbol, TagJavaScriptScope, TagInt32, TagTimestamp,
		TagInt64, TagDecimal128, TagMinKey, TagMaxKey:
		return true
	default:
		return false
	}
}
