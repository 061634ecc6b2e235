// Copyright 2013 Seth Bunce. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

package rawbson

// Typed Get shortcuts. Each composes Get with the matching accessor:
// (zero, false, nil) if key is absent, (value, true, nil) if present with
// the matching tag, (zero, false, err) if present with the wrong tag or a
// malformed element was scanned en route (spec §4.3).

// GetF64 looks up key and returns it as a float64.
func (d *Document) GetF64(key string) (float64, bool, error) {
	el, ok, err := d.Get(key)
	if err != nil || !ok {
		return 0, ok, err
	}
	v, err := el.AsF64()
	return v, err == nil, err
}

// GetStr looks up key and returns it as a string.
func (d *Document) GetStr(key string) (string, bool, error) {
	el, ok, err := d.Get(key)
	if err != nil || !ok {
		return "", ok, err
	}
	v, err := el.AsStr()
	return v, err == nil, err
}

// GetDocument looks up key and returns it as a nested Document.
func (d *Document) GetDocument(key string) (*Document, bool, error) {
	el, ok, err := d.Get(key)
	if err != nil || !ok {
		return nil, ok, err
	}
	v, err := el.AsDocument()
	return v, err == nil, err
}

// GetArray looks up key and returns it as a nested Array.
func (d *Document) GetArray(key string) (*Array, bool, error) {
	el, ok, err := d.Get(key)
	if err != nil || !ok {
		return nil, ok, err
	}
	v, err := el.AsArray()
	return v, err == nil, err
}

// GetBinary looks up key and returns its subtype and borrowed data.
func (d *Document) GetBinary(key string) (subtype byte, data []byte, found bool, err error) {
	el, ok, err := d.Get(key)
	if err != nil || !ok {
		return 0, nil, ok, err
	}
	subtype, data, err = el.AsBinary()
	return subtype, data, err == nil, err
}

// GetObjectID looks up key and returns it as an ObjectID.
func (d *Document) GetObjectID(key string) (ObjectID, bool, error) {
	el, ok, err := d.Get(key)
	if err != nil || !ok {
		return ObjectID{}, ok, err
	}
	v, err := el.AsObjectID()
	return v, err == nil, err
}

// GetBool looks up key and returns it as a bool.
func (d *Document) GetBool(key string) (bool, bool, error) {
	el, ok, err := d.Get(key)
	if err != nil || !ok {
		return false, ok, err
	}
	v, err := el.AsBool()
	return v, err == nil, err
}

// GetDateTime looks up key and returns it as a DateTime.
func (d *Document) GetDateTime(key string) (DateTime, bool, error) {
	el, ok, err := d.Get(key)
	if err != nil || !ok {
		return 0, ok, err
	}
	v, err := el.AsDateTime()
	return v, err == nil, err
}

// GetRegex looks up key and returns its pattern and options.
func (d *Document) GetRegex(key string) (pattern, options string, found bool, err error) {
	el, ok, err := d.Get(key)
	if err != nil || !ok {
		return "", "", ok, err
	}
	pattern, options, err = el.AsRegex()
	return pattern, options, err == nil, err
}

// GetJavaScript looks up key and returns it as JavaScript code.
func (d *Document) GetJavaScript(key string) (string, bool, error) {
	el, ok, err := d.Get(key)
	if err != nil || !ok {
		return "", ok, err
	}
	v, err := el.AsJavaScript()
	return v, err == nil, err
}

// GetSymbol looks up key and returns it as a symbol (deprecated type).
func (d *Document) GetSymbol(key string) (string, bool, error) {
	el, ok, err := d.Get(key)
	if err != nil || !ok {
		return "", ok, err
	}
	v, err := el.AsSymbol()
	return v, err == nil, err
}

// GetI32 looks up key and returns it as an int32.
func (d *Document) GetI32(key string) (int32, bool, error) {
	el, ok, err := d.Get(key)
	if err != nil || !ok {
		return 0, ok, err
	}
	v, err := el.AsI32()
	return v, err == nil, err
}

// GetTimestamp looks up key and returns it as a Timestamp.
func (d *Document) GetTimestamp(key string) (Timestamp, bool, error) {
	el, ok, err := d.Get(key)
	if err != nil || !ok {
		return Timestamp{}, ok, err
	}
	v, err := el.AsTimestamp()
	return v, err == nil, err
}

// GetI64 looks up key and returns it as an int64.
func (d *Document) GetI64(key string) (int64, bool, error) {
	el, ok, err := d.Get(key)
	if err != nil || !ok {
		return 0, ok, err
	}
	v, err := el.AsI64()
	return v, err == nil, err
}

// GetDecimal128 looks up key and returns its raw 16 bytes.
func (d *Document) GetDecimal128(key string) (Decimal128, bool, error) {
	el, ok, err := d.Get(key)
	if err != nil || !ok {
		return Decimal128{}, ok, err
	}
	v, err := el.AsDecimal128()
	return v, err == nil, err
}
