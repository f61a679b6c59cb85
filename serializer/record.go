// Package serializer projects entities onto ordered records for transport.
//
// Projections are written out per entity type so that a new model field never
// reaches a response body unless it is added here.
package serializer

import (
	"bytes"
	"encoding/json"
)

type field struct {
	Key   string
	Value any
}

// Record is an ordered mapping of field name to value. It encodes to a JSON
// object whose keys keep insertion order.
type Record struct {
	fields []field
}

// Set stores value under key. Setting an existing key replaces its value in place.
func (r *Record) Set(key string, value any) {
	for i := range r.fields {
		if r.fields[i].Key == key {
			r.fields[i].Value = value
			return
		}
	}
	r.fields = append(r.fields, field{Key: key, Value: value})
}

func (r Record) Get(key string) (any, bool) {
	for _, f := range r.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

func (r Record) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}
	return keys
}

func (r Record) Len() int {
	return len(r.fields)
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// column lazily produces the value of one serialized field.
type column struct {
	key   string
	value func() any
}

// build evaluates the requested columns in the requested order. Without a
// field list every column is emitted; unknown field names are skipped.
func build(columns []column, fields []string) Record {
	var r Record
	if len(fields) == 0 {
		for _, c := range columns {
			r.Set(c.key, c.value())
		}
		return r
	}
	for _, name := range fields {
		for _, c := range columns {
			if c.key == name {
				r.Set(c.key, c.value())
				break
			}
		}
	}
	return r
}
