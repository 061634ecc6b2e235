// Copyright 2013 Seth Bunce. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

package rawbson

import (
	"errors"
	"testing"

	"github.com/jcdyer/rawbson/internal/fixture"
)

// These mirror the six end-to-end scenarios enumerated for this package:
// a flat string lookup, a nested document lookup, iteration order over a
// multi-key document, positional array access, a truncated length prefix,
// and a malformed terminator byte.

func TestScenarioStringLookup(t *testing.T) {
	b := []byte{
		0x16, 0x00, 0x00, 0x00,
		0x02, 'h', 'e', 'l', 'l', 'o', 0x00, 0x06, 0x00, 0x00, 0x00, 'w', 'o', 'r', 'l', 'd', 0x00,
		0x00,
	}
	doc, err := New(b)
	if err != nil {
		t.Fatal(err)
	}
	v, ok, err := doc.GetStr("hello")
	if err != nil || !ok || v != "world" {
		t.Fatalf("got (%q, %v, %v)", v, ok, err)
	}
}

func TestScenarioNestedDocumentLookup(t *testing.T) {
	inner := fixture.New().Int32("y", 42).Bytes()
	outer := fixture.New().Document("x", inner).Bytes()

	doc, err := New(outer)
	if err != nil {
		t.Fatal(err)
	}
	nested, ok, err := doc.GetDocument("x")
	if err != nil || !ok {
		t.Fatalf("got (%v, %v)", ok, err)
	}
	y, ok, err := nested.GetI32("y")
	if err != nil || !ok || y != 42 {
		t.Fatalf("got (%d, %v, %v)", y, ok, err)
	}
}

func TestScenarioIterationOrder(t *testing.T) {
	b := fixture.New().
		Int32("a", 1).
		Int32("b", 2).
		Int32("c", 3).
		Bytes()
	doc, err := New(b)
	if err != nil {
		t.Fatal(err)
	}
	var keys []string
	it := doc.Iter()
	for {
		el, ok := it.Next()
		if !ok {
			break
		}
		keys = append(keys, el.Key())
	}
	if it.Err() != nil {
		t.Fatal(it.Err())
	}
	want := []string{"a", "b", "c"}
	if len(keys) != len(want) {
		t.Fatalf("got %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("got %v, want %v", keys, want)
		}
	}
}

func TestScenarioArrayPositionalAccess(t *testing.T) {
	inner := fixture.New().
		Str("0", "zero").
		Str("1", "one").
		Bytes()
	arr, err := NewArray(inner)
	if err != nil {
		t.Fatal(err)
	}
	el, ok, err := arr.Get(0)
	if err != nil || !ok {
		t.Fatalf("got (%v, %v)", ok, err)
	}
	v, err := el.AsStr()
	if err != nil || v != "zero" {
		t.Fatalf("got (%q, %v)", v, err)
	}
}

func TestScenarioTruncatedLength(t *testing.T) {
	// Length prefix claims 100 bytes but only 5 are present.
	b := []byte{0x64, 0x00, 0x00, 0x00, 0x00}
	_, err := New(b)
	if !errors.Is(err, MalformedBytes) {
		t.Fatalf("expected MalformedBytes, got %v", err)
	}
}

func TestScenarioMalformedTerminator(t *testing.T) {
	b := fixture.New().Bool("ok", true).Bytes()
	b[len(b)-1] = 0xff
	_, err := New(b)
	if !errors.Is(err, MalformedBytes) {
		t.Fatalf("expected MalformedBytes, got %v", err)
	}
}
