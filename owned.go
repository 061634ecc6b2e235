// Copyright 2013 Seth Bunce. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

package rawbson

import "github.com/pkg/errors"

// Owned holds an owned byte vector and hands out a Document view bound to
// it. It is the "owned-buffer wrapper" spec §4.5 treats as an external
// collaborator: everything it does is delegation to Document, plus keeping
// the backing []byte alive for as long as the Owned value itself is alive.
type Owned struct {
	data []byte
	doc  *Document
}

// NewOwned takes ownership of data and validates its outer frame, exactly
// as New does.
func NewOwned(data []byte) (*Owned, error) {
	doc, err := New(data)
	if err != nil {
		return nil, errors.Wrap(err, "rawbson: NewOwned")
	}
	return &Owned{data: data, doc: doc}, nil
}

// Document returns the Document view bound to this Owned's buffer. The
// returned view must not be used after IntoInner is called.
func (o *Owned) Document() *Document { return o.doc }

// Get delegates to the bound Document.
func (o *Owned) Get(key string) (Element, bool, error) { return o.doc.Get(key) }

// Iter delegates to the bound Document.
func (o *Owned) Iter() *Iterator { return o.doc.Iter() }

// Bytes returns the owned buffer without releasing it.
func (o *Owned) Bytes() []byte { return o.data }

// IntoInner releases the owned buffer to the caller. o must not be used
// afterward.
func (o *Owned) IntoInner() []byte {
	data := o.data
	o.data = nil
	o.doc = nil
	return data
}
