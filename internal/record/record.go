// Package record turns a field specification into a dataset of flat records.
package record

import (
	"bytes"
	"encoding/json"
)

// Field is one named value inside a record.
type Field struct {
	Name  string
	Value string
}

// Record is an ordered set of fields. Names are unique and follow the order
// of the spec the record was generated from.
type Record []Field

// Dataset is the ordered output of one generation run.
type Dataset []Record

// Keys returns the field names in order.
func (r Record) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Name
	}
	return keys
}

// Values returns the field values in order.
func (r Record) Values() []string {
	vals := make([]string, len(r))
	for i, f := range r {
		vals[i] = f.Value
	}
	return vals
}

// Get returns the value for name.
func (r Record) Get(name string) (string, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Map returns the record as an unordered map.
func (r Record) Map() map[string]string {
	m := make(map[string]string, len(r))
	for _, f := range r {
		m[f.Name] = f.Value
	}
	return m
}

// MarshalJSON encodes the record as a JSON object, keeping field order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Maps returns every record as a map, for callers that do not care about order.
func (d Dataset) Maps() []map[string]string {
	out := make([]map[string]string, len(d))
	for i, r := range d {
		out[i] = r.Map()
	}
	return out
}
