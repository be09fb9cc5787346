// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package document

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/bitmark-inc/socialdbd/fault"
)

// Object - JSON object that keeps its keys in document order
//
// values are string, nil (null), *Object, or any other decoded JSON
// value (json.Number, bool, []interface{}) which a write rejects
type Object struct {
	keys   []string
	values map[string]interface{}
}

// NewObject - empty object
func NewObject() *Object {
	return &Object{
		values: make(map[string]interface{}),
	}
}

// Parse - decode a document that must be a JSON object
func Parse(data []byte) (*Object, error) {
	o := NewObject()
	err := json.Unmarshal(data, o)
	if nil != err {
		return nil, err
	}
	return o, nil
}

// Len - number of keys
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys - keys in document order
func (o *Object) Keys() []string {
	return o.keys
}

// Get - value of key
func (o *Object) Get(key string) (interface{}, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Set - replace the value of key, a new key goes last
func (o *Object) Set(key string, value interface{}) *Object {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

// Delete - remove key
func (o *Object) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// MarshalJSON - keys in document order
func (o *Object) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buffer.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if nil != err {
			return nil, err
		}
		buffer.Write(k)
		buffer.WriteByte(':')

		v, err := json.Marshal(o.values[key])
		if nil != err {
			return nil, err
		}
		buffer.Write(v)
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

// UnmarshalJSON - decode an object keeping key order
func (o *Object) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	t, err := decoder.Token()
	if nil != err {
		return err
	}
	if json.Delim('{') != t {
		return fault.ErrInvalidDocument
	}
	o.keys = nil
	o.values = make(map[string]interface{})
	err = o.decodeMembers(decoder)
	if nil != err {
		return err
	}
	if _, err := decoder.Token(); io.EOF != err {
		return fault.ErrInvalidDocument
	}
	return nil
}

// members up to and including the closing brace
func (o *Object) decodeMembers(decoder *json.Decoder) error {
	for decoder.More() {
		t, err := decoder.Token()
		if nil != err {
			return err
		}
		key, ok := t.(string)
		if !ok {
			return fault.ErrInvalidDocument
		}
		value, err := decodeValue(decoder)
		if nil != err {
			return err
		}
		o.Set(key, value)
	}
	_, err := decoder.Token()
	return err
}

func decodeValue(decoder *json.Decoder) (interface{}, error) {
	t, err := decoder.Token()
	if nil != err {
		return nil, err
	}
	switch t := t.(type) {
	case json.Delim:
		switch t {
		case '{':
			o := NewObject()
			err := o.decodeMembers(decoder)
			if nil != err {
				return nil, err
			}
			return o, nil
		case '[':
			items := make([]interface{}, 0)
			for decoder.More() {
				item, err := decodeValue(decoder)
				if nil != err {
					return nil, err
				}
				items = append(items, item)
			}
			_, err := decoder.Token()
			return items, err
		default:
			return nil, fault.ErrInvalidDocument
		}
	default:
		// string, json.Number, bool or nil
		return t, nil
	}
}
