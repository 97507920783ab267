package domain

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"
)

// Annotation is a single key-value entry of auxiliary descriptor metadata.
type Annotation struct {
	Key   string
	Value string
}

// Annotations is an immutable, insertion-ordered mapping of annotation keys to values.
// The zero value is an empty set.
type Annotations struct {
	entries []Annotation
}

// NewAnnotations creates an Annotations set from the given entries in order.
// A repeated key replaces the earlier value but keeps its position.
func NewAnnotations(entries ...Annotation) Annotations {
	var a Annotations
	for _, e := range entries {
		a = a.With(e.Key, e.Value)
	}
	return a
}

// With returns a copy of the set with key set to value.
func (a Annotations) With(key, value string) Annotations {
	entries := slices.Clone(a.entries)
	if i := a.index(key); i >= 0 {
		entries[i].Value = value
		return Annotations{entries: entries}
	}
	return Annotations{entries: append(entries, Annotation{Key: key, Value: value})}
}

func (a Annotations) index(key string) int {
	return slices.IndexFunc(a.entries, func(e Annotation) bool { return e.Key == key })
}

// Get returns the value stored under key.
func (a Annotations) Get(key string) (string, bool) {
	i := a.index(key)
	if i < 0 {
		return "", false
	}
	return a.entries[i].Value, true
}

// Len returns the number of entries.
func (a Annotations) Len() int {
	return len(a.entries)
}

// Keys returns the keys in insertion order.
func (a Annotations) Keys() []string {
	keys := make([]string, len(a.entries))
	for i, e := range a.entries {
		keys[i] = e.Key
	}
	return keys
}

// All iterates over the entries in insertion order.
func (a Annotations) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range a.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// AsMap returns the entries as an unordered map.
func (a Annotations) AsMap() map[string]string {
	m := make(map[string]string, len(a.entries))
	for _, e := range a.entries {
		m[e.Key] = e.Value
	}
	return m
}

// Equal reports whether both sets hold the same entries.
// Like a JSON object, key order does not take part in equality.
func (a Annotations) Equal(other Annotations) bool {
	if len(a.entries) != len(other.entries) {
		return false
	}
	for _, e := range a.entries {
		v, ok := other.Get(e.Key)
		if !ok || v != e.Value {
			return false
		}
	}
	return true
}

// MarshalJSON renders the set as a JSON object preserving insertion order.
func (a Annotations) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range a.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Value)
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
