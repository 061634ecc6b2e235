// Copyright 2013 Seth Bunce. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

package rawbson

import "strconv"

// Array is a specialization of Document whose keys are expected to be
// decimal string indices "0", "1", ... in order. Per spec §4.4 the core
// does not enforce this naming on parse; Array is accessed positionally by
// iteration order, and is otherwise a plain Document.
type Array struct {
	doc *Document
}

// NewArray wraps bytes as an Array, applying the same outer-frame checks
// as New.
func NewArray(data []byte) (*Array, error) {
	doc, err := New(data)
	if err != nil {
		return nil, err
	}
	return &Array{doc: doc}, nil
}

// Document returns the underlying Document view, for callers that want the
// keyed API (e.g. to inspect whether the index names are actually
// well-formed).
func (a *Array) Document() *Document { return a.doc }

// Len returns the array's byte length.
func (a *Array) Len() int { return a.doc.Len() }

// Get formats i as a decimal ASCII string and delegates to Document.Get.
func (a *Array) Get(i uint32) (Element, bool, error) {
	return a.doc.Get(strconv.FormatUint(uint64(i), 10))
}

// ArrayIterator walks an Array's elements in document order, discarding
// keys.
type ArrayIterator struct {
	inner *Iterator
}

// Iter returns a fresh ArrayIterator over a's elements.
func (a *Array) Iter() *ArrayIterator {
	return &ArrayIterator{inner: a.doc.Iter()}
}

// Next advances the iterator and reports whether an element was produced.
func (it *ArrayIterator) Next() (Element, bool) {
	return it.inner.Next()
}

// Err returns the error that stopped iteration, or nil.
func (it *ArrayIterator) Err() error { return it.inner.Err() }

// Materialize recursively decodes the array into a []any, per the same
// non-lazy contract as Document.Materialize.
func (a *Array) Materialize() ([]interface{}, error) {
	out := make([]interface{}, 0, 8)
	it := a.Iter()
	for {
		el, ok := it.Next()
		if !ok {
			break
		}
		v, err := materializeElement(el)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
