// Copyright 2013 Seth Bunce. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

package rawbson

import (
	"testing"

	"github.com/jcdyer/rawbson/internal/fixture"
)

func TestArrayPositionalAccess(t *testing.T) {
	// spec §8 scenario 4: array ["a", "b", "c"].
	inner := fixture.New().
		Str("0", "a").
		Str("1", "b").
		Str("2", "c").
		Bytes()
	outer := fixture.New().Array("list", inner).Bytes()

	doc, err := New(outer)
	if err != nil {
		t.Fatal(err)
	}
	arr, ok, err := doc.GetArray("list")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected list to be present")
	}

	el, ok, err := arr.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected index 1 to be present")
	}
	v, err := el.AsStr()
	if err != nil || v != "b" {
		t.Fatalf("got (%q, %v)", v, err)
	}

	if _, ok, err := arr.Get(99); err != nil || ok {
		t.Fatalf("expected out-of-range index to be absent, got (%v, %v)", ok, err)
	}
}

func TestArrayIterationOrder(t *testing.T) {
	inner := fixture.New().
		Int32("0", 10).
		Int32("1", 20).
		Int32("2", 30).
		Bytes()
	arr, err := NewArray(inner)
	if err != nil {
		t.Fatal(err)
	}

	var got []int32
	it := arr.Iter()
	for {
		el, ok := it.Next()
		if !ok {
			break
		}
		v, err := el.AsI32()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, v)
	}
	if it.Err() != nil {
		t.Fatal(it.Err())
	}
	if len(got) != 3 || got[0] != 10 || got[1] != 20 || got[2] != 30 {
		t.Fatalf("got %v", got)
	}
}

func TestArrayMaterialize(t *testing.T) {
	inner := fixture.New().
		Str("0", "x").
		Bool("1", true).
		Bytes()
	arr, err := NewArray(inner)
	if err != nil {
		t.Fatal(err)
	}
	vals, err := arr.Materialize()
	if err != nil {
		t.Fatal(err)
	}
	if len(vals) != 2 || vals[0] != "x" || vals[1] != true {
		t.Fatalf("got %v", vals)
	}
}

func TestArrayLen(t *testing.T) {
	inner := fixture.New().Int32("0", 1).Bytes()
	arr, err := NewArray(inner)
	if err != nil {
		t.Fatal(err)
	}
	if arr.Len() != len(inner) {
		t.Fatalf("got %d, want %d", arr.Len(), len(inner))
	}
}
