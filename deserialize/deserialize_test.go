// Copyright 2013 Seth Bunce. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

package deserialize

import (
	"testing"

	"github.com/jcdyer/rawbson"
	"github.com/jcdyer/rawbson/internal/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Address struct {
	City string `bson:"city"`
	Zip  int32  `bson:"zip"`
}

type Person struct {
	Name    string  `bson:"name"`
	Age     int32   `bson:"age"`
	Active  bool    `bson:"active"`
	Ignored string  `bson:"-"`
	Address Address `bson:"address"`
}

func TestDecodeFlatFields(t *testing.T) {
	b := fixture.New().
		Str("name", "Marge").
		Int32("age", 36).
		Bool("active", true).
		Bytes()
	doc, err := rawbson.New(b)
	require.NoError(t, err)

	var p Person
	require.NoError(t, Decode(doc, &p))
	assert.Equal(t, "Marge", p.Name)
	assert.Equal(t, int32(36), p.Age)
	assert.True(t, p.Active)
}

func TestDecodeNestedStruct(t *testing.T) {
	addr := fixture.New().Str("city", "Springfield").Int32("zip", 90210).Bytes()
	b := fixture.New().
		Str("name", "Bart").
		Document("address", addr).
		Bytes()
	doc, err := rawbson.New(b)
	require.NoError(t, err)

	var p Person
	require.NoError(t, Decode(doc, &p))
	assert.Equal(t, "Springfield", p.Address.City)
	assert.Equal(t, int32(90210), p.Address.Zip)
}

func TestDecodeSkipsDashTag(t *testing.T) {
	b := fixture.New().Str("Ignored", "should not appear").Bytes()
	doc, err := rawbson.New(b)
	require.NoError(t, err)

	var p Person
	require.NoError(t, Decode(doc, &p))
	assert.Equal(t, "", p.Ignored)
}

func TestDecodeMissingKeyLeavesZeroValue(t *testing.T) {
	b := fixture.New().Str("name", "Lisa").Bytes()
	doc, err := rawbson.New(b)
	require.NoError(t, err)

	var p Person
	require.NoError(t, Decode(doc, &p))
	assert.Equal(t, "Lisa", p.Name)
	assert.Equal(t, int32(0), p.Age)
}

func TestDecodeSlice(t *testing.T) {
	type Tags struct {
		Names []string `bson:"names"`
	}
	inner := fixture.New().Str("0", "a").Str("1", "b").Bytes()
	b := fixture.New().Array("names", inner).Bytes()
	doc, err := rawbson.New(b)
	require.NoError(t, err)

	var tags Tags
	require.NoError(t, Decode(doc, &tags))
	assert.Equal(t, []string{"a", "b"}, tags.Names)
}

func TestDecodeTypeMismatchErrors(t *testing.T) {
	b := fixture.New().Str("age", "not a number").Bytes()
	doc, err := rawbson.New(b)
	require.NoError(t, err)

	var p Person
	err = Decode(doc, &p)
	assert.Error(t, err)
}

func TestDecodeLooseIntoMap(t *testing.T) {
	b := fixture.New().Str("name", "Maggie").Int32("age", 1).Bytes()
	doc, err := rawbson.New(b)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, DecodeLoose(doc, &out))
	assert.Equal(t, "Maggie", out["name"])
	assert.Equal(t, int32(1), out["age"])
}
