// Copyright 2013 Seth Bunce. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

package rawbson

import "testing"

func TestNewObjectIDUnique(t *testing.T) {
	a, err := NewObjectID()
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewObjectID()
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("expected distinct ObjectIDs from successive calls")
	}
	if len(a.Hex()) != 24 {
		t.Fatalf("expected 24 hex chars, got %d", len(a.Hex()))
	}
}

func TestObjectIDTimestamp(t *testing.T) {
	oid, err := NewObjectID()
	if err != nil {
		t.Fatal(err)
	}
	now := oid.Timestamp()
	if now.IsZero() {
		t.Fatal("expected non-zero timestamp")
	}
}

func TestObjectIDStringIsHex(t *testing.T) {
	oid, err := NewObjectID()
	if err != nil {
		t.Fatal(err)
	}
	if oid.String() != oid.Hex() {
		t.Fatalf("String() and Hex() disagree: %q vs %q", oid.String(), oid.Hex())
	}
}
