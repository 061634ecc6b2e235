// Copyright 2013 Seth Bunce. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

// Package deserialize projects a rawbson.Document onto a Go struct, the
// way the teacher (sbunce-bson)'s reach.go walked a fully-decoded Map and
// coerced values into a destination with reflection. The difference here
// is the direction of travel: rather than building a Map up front and
// then reaching into it, Decode walks the struct's fields and asks the
// lazy Document for exactly the keys it needs, one Get per field.
package deserialize

import (
	"reflect"
	"strings"
	"time"

	"github.com/jcdyer/rawbson"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// Decode populates the exported fields of the struct pointed to by dst
// from doc. Field names are taken from the field's `bson` tag, following
// encoding/json-style tag syntax: `bson:"name"`, `bson:"name,omitempty"`,
// `bson:",omitempty"`, and `bson:"-"` to skip a field entirely. A field
// with no tag is matched against its own Go name. Missing keys leave the
// field at its zero value; they are not an error.
func Decode(doc *rawbson.Document, dst interface{}) error {
	rv := indirect(reflect.ValueOf(dst))
	if rv.Kind() != reflect.Struct {
		return errors.Errorf("deserialize: Decode expects a pointer to a struct, got %T", dst)
	}
	return decodeStruct("", doc, rv)
}

func decodeStruct(path string, doc *rawbson.Document, rv reflect.Value) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.PkgPath != "" {
			continue // unexported
		}
		name := sf.Name
		if tag := sf.Tag.Get("bson"); tag != "" {
			tok := strings.Split(tag, ",")
			if tok[0] == "-" {
				continue
			}
			if tok[0] != "" {
				name = tok[0]
			}
		}

		el, ok, err := doc.Get(name)
		if err != nil {
			return errors.Wrapf(err, "deserialize: %s", catpath(path, name))
		}
		if !ok {
			continue
		}

		fv := indirectAlloc(rv.Field(i))
		if err := assign(catpath(path, name), fv, el); err != nil {
			return err
		}
	}
	return nil
}

func assign(path string, dst reflect.Value, el rawbson.Element) error {
	switch el.Tag() {
	case rawbson.TagFloat64:
		v, err := el.AsF64()
		if err != nil {
			return err
		}
		if dst.Kind() != reflect.Float64 && dst.Kind() != reflect.Float32 {
			return assignError(path, dst, v)
		}
		dst.SetFloat(v)
	case rawbson.TagString:
		v, err := el.AsStr()
		if err != nil {
			return err
		}
		if dst.Kind() != reflect.String {
			return assignError(path, dst, v)
		}
		dst.SetString(v)
	case rawbson.TagDocument:
		nested, err := el.AsDocument()
		if err != nil {
			return err
		}
		switch dst.Kind() {
		case reflect.Struct:
			return decodeStruct(path, nested, dst)
		case reflect.Map:
			m, err := nested.Materialize()
			if err != nil {
				return err
			}
			dst.Set(reflect.ValueOf(m))
		default:
			return assignError(path, dst, nested)
		}
	case rawbson.TagArray:
		arr, err := el.AsArray()
		if err != nil {
			return err
		}
		if dst.Kind() != reflect.Slice {
			return assignError(path, dst, arr)
		}
		return assignSlice(path, dst, arr)
	case rawbson.TagBinary:
		_, data, err := el.AsBinary()
		if err != nil {
			return err
		}
		if dst.Kind() != reflect.Slice || dst.Type().Elem().Kind() != reflect.Uint8 {
			return assignError(path, dst, data)
		}
		dst.SetBytes(append([]byte(nil), data...))
	case rawbson.TagObjectID:
		v, err := el.AsObjectID()
		if err != nil {
			return err
		}
		if dst.Type() != reflect.TypeOf(rawbson.ObjectID{}) {
			return assignError(path, dst, v)
		}
		dst.Set(reflect.ValueOf(v))
	case rawbson.TagBool:
		v, err := el.AsBool()
		if err != nil {
			return err
		}
		if dst.Kind() != reflect.Bool {
			return assignError(path, dst, v)
		}
		dst.SetBool(v)
	case rawbson.TagDateTime:
		v, err := el.AsDateTime()
		if err != nil {
			return err
		}
		if dst.Type() == reflect.TypeOf(time.Time{}) {
			dst.Set(reflect.ValueOf(v.Time()))
			return nil
		}
		if dst.Kind() != reflect.Int64 {
			return assignError(path, dst, v)
		}
		dst.SetInt(int64(v))
	case rawbson.TagNull, rawbson.TagUndefined, rawbson.TagMinKey, rawbson.TagMaxKey:
		// Leave the field at its zero value.
	case rawbson.TagInt32:
		v, err := el.AsI32()
		if err != nil {
			return err
		}
		if dst.Kind() != reflect.Int32 && dst.Kind() != reflect.Int64 && dst.Kind() != reflect.Int {
			return assignError(path, dst, v)
		}
		dst.SetInt(int64(v))
	case rawbson.TagInt64:
		v, err := el.AsI64()
		if err != nil {
			return err
		}
		if dst.Kind() != reflect.Int64 && dst.Kind() != reflect.Int {
			return assignError(path, dst, v)
		}
		dst.SetInt(v)
	case rawbson.TagJavaScript:
		v, err := el.AsJavaScript()
		if err != nil {
			return err
		}
		if dst.Kind() != reflect.String {
			return assignError(path, dst, v)
		}
		dst.SetString(v)
	case rawbson.TagSymbol:
		v, err := el.AsSymbol()
		if err != nil {
			return err
		}
		if dst.Kind() != reflect.String {
			return assignError(path, dst, v)
		}
		dst.SetString(v)
	case rawbson.TagDecimal128:
		v, err := el.AsDecimal128()
		if err != nil {
			return err
		}
		if dst.Type() != reflect.TypeOf(rawbson.Decimal128{}) {
			return assignError(path, dst, v)
		}
		dst.Set(reflect.ValueOf(v))
	default:
		v, err := el.Materialize()
		if err != nil {
			return err
		}
		return assignError(path, dst, v)
	}
	return nil
}

func assignSlice(path string, dst reflect.Value, arr *rawbson.Array) error {
	elemType := dst.Type().Elem()
	out := reflect.MakeSlice(dst.Type(), 0, 8)
	it := arr.Iter()
	for {
		el, ok := it.Next()
		if !ok {
			break
		}
		ev := reflect.New(elemType).Elem()
		if err := assign(path, ev, el); err != nil {
			return err
		}
		out = reflect.Append(out, ev)
	}
	if err := it.Err(); err != nil {
		return err
	}
	dst.Set(out)
	return nil
}

func assignError(path string, dst reflect.Value, src interface{}) error {
	return errors.Errorf("deserialize: %s: cannot assign %T into %s", path, src, dst.Type())
}

func catpath(path, name string) string {
	if path == "" {
		return name
	}
	return strings.Join([]string{path, name}, ".")
}

func indirect(v reflect.Value) reflect.Value {
	for {
		switch v.Kind() {
		case reflect.Interface, reflect.Ptr:
			v = v.Elem()
		default:
			return v
		}
	}
}

func indirectAlloc(v reflect.Value) reflect.Value {
	for {
		switch v.Kind() {
		case reflect.Ptr:
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		default:
			return v
		}
	}
}

// DecodeLoose materializes doc fully, then uses mapstructure to populate
// dst, following whatever conventions mapstructure itself applies
// (case-insensitive matching, weak type coercion left off by default),
// with field names read from `bson` struct tags. Use this over Decode when dst's shape is only
// loosely related to the document, e.g. decoding into a map of
// interfaces or a struct whose field types don't line up one-to-one with
// BSON's wire types.
func DecodeLoose(doc *rawbson.Document, dst interface{}) error {
	m, err := doc.Materialize()
	if err != nil {
		return errors.Wrap(err, "deserialize: materializing document")
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "bson",
		Result:  dst,
	})
	if err != nil {
		return errors.Wrap(err, "deserialize: building mapstructure decoder")
	}
	return errors.Wrap(dec.Decode(m), "deserialize: mapstructure decode")
}
