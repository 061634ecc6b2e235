// Copyright 2013 Seth Bunce. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

package rawbson

import "encoding/hex"

// Decimal128 is BSON's 16-byte IEEE-754-2008 decimal128 value (wire tag
// 0x13), stored exactly as it appears on the wire. Arithmetic over the
// value is intentionally out of scope for the core (spec §9's open
// question on Decimal128 representation); see interop.Decimal128ToDriver
// for a conversion into go.mongodb.org/mongo-driver/v2/bson's
// Decimal128 type.
type Decimal128 [16]byte

// Bytes returns the raw little-endian wire bytes.
func (d Decimal128) Bytes() []byte { return d[:] }

// String renders the raw bytes as hex; it is not a decimal rendering of
// the value.
func (d Decimal128) String() string {
	return hex.EncodeToString(d[:])
}
