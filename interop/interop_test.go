// Copyright 2013 Seth Bunce. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

package interop

import (
	"testing"

	"github.com/jcdyer/rawbson"
	"github.com/jcdyer/rawbson/internal/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestToRawAndFromRaw(t *testing.T) {
	b := fixture.New().Str("k", "v").Bytes()
	doc, err := rawbson.New(b)
	require.NoError(t, err)

	raw := ToRaw(doc)
	assert.Equal(t, []byte(b), []byte(raw))

	back, err := FromRaw(raw)
	require.NoError(t, err)
	v, ok, err := back.GetStr("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestToDPreservesOrderAndNesting(t *testing.T) {
	inner := fixture.New().Int32("y", 1).Bytes()
	b := fixture.New().
		Str("a", "first").
		Document("nested", inner).
		Int32("z", 9).
		Bytes()
	doc, err := rawbson.New(b)
	require.NoError(t, err)

	d, err := ToD(doc)
	require.NoError(t, err)
	require.Len(t, d, 3)
	assert.Equal(t, "a", d[0].Key)
	assert.Equal(t, "first", d[0].Value)
	assert.Equal(t, "nested", d[1].Key)
	nestedD, ok := d[1].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "y", nestedD[0].Key)
	assert.Equal(t, int32(1), nestedD[0].Value)
	assert.Equal(t, "z", d[2].Key)
	assert.Equal(t, int32(9), d[2].Value)
}

func TestToM(t *testing.T) {
	b := fixture.New().Bool("ok", true).Bytes()
	doc, err := rawbson.New(b)
	require.NoError(t, err)

	m, err := ToM(doc)
	require.NoError(t, err)
	assert.Equal(t, bson.M{"ok": true}, m)
}

func TestObjectIDRoundTrip(t *testing.T) {
	var oid rawbson.ObjectID
	for i := range oid {
		oid[i] = byte(i + 1)
	}
	driverID := ObjectIDToDriver(oid)
	back := ObjectIDFromDriver(driverID)
	assert.Equal(t, oid, back)
}

func TestDecimal128RoundTrip(t *testing.T) {
	var d rawbson.Decimal128
	d[0] = 0x01
	d[15] = 0xff
	driverD := Decimal128ToDriver(d)
	back := Decimal128FromDriver(driverD)
	assert.Equal(t, d, back)
}

func TestToDArray(t *testing.T) {
	innerArr := fixture.New().Str("0", "x").Str("1", "y").Bytes()
	b := fixture.New().Array("list", innerArr).Bytes()
	doc, err := rawbson.New(b)
	require.NoError(t, err)

	d, err := ToD(doc)
	require.NoError(t, err)
	require.Len(t, d, 1)
	slice, ok := d[0].Value.([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"x", "y"}, slice)
}
