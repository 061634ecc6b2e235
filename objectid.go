// Copyright 2013 Seth Bunce. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

package rawbson

import (
	"crypto/md5"
	"encoding/binary"
	"encoding/hex"
	"os"
	"sync/atomic"
	"time"
)

// ObjectID is BSON's 12-byte identifier type (wire tag 0x07).
type ObjectID [12]byte

// Hex renders the ObjectID as the 24-character lowercase hex string
// MongoDB tooling prints.
func (id ObjectID) Hex() string {
	return hex.EncodeToString(id[:])
}

// Timestamp returns the creation time encoded in the ObjectID's first four
// bytes (big-endian unix seconds), per the layout documented on
// NewObjectID.
func (id ObjectID) Timestamp() time.Time {
	sec := int64(binary.BigEndian.Uint32(id[0:4]))
	return time.Unix(sec, 0)
}

func (id ObjectID) String() string { return id.Hex() }

// lastObjectIDCount is the process-wide ObjectID counter. Use
// NewObjectID to get the next value.
var lastObjectIDCount int32

// NewObjectID creates a unique, incrementing ObjectID in the same format
// used by MongoDB:
//
//	+---+---+---+---+---+---+---+---+---+---+---+---+
//	|       A       |     B     |   C   |     D     |
//	+---+---+---+---+---+---+---+---+---+---+---+---+
//	  0   1   2   3   4   5   6   7   8   9  10  11
//
// A = unix time (big endian), B = machine ID (first 3 bytes of md5
// hostname), C = PID, D = incrementing counter (big endian).
func NewObjectID() (ObjectID, error) {
	var oid ObjectID
	binary.BigEndian.PutUint32(oid[0:4], uint32(time.Now().Unix()))

	name, err := os.Hostname()
	if err != nil {
		return ObjectID{}, err
	}
	hash := md5.Sum([]byte(name))
	copy(oid[4:7], hash[:3])

	binary.BigEndian.PutUint16(oid[7:9], uint16(os.Getpid()))

	// Wrap at 2^24 because we only use 3 bytes.
	cnt := atomic.AddInt32(&lastObjectIDCount, 1) % 16777216
	var cntbuf [4]byte
	binary.BigEndian.PutUint32(cntbuf[:], uint32(cnt))
	copy(oid[9:12], cntbuf[1:])

	return oid, nil
}
