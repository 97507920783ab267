package domain

import (
	"encoding/json"
	"strings"
	"unique"
)

// OptionalString is a string that may be absent.
// Absence is distinct from the empty string: a pom.xml without a <scope> element and one
// with an empty <scope/> element produce different values.
// Values are interned: group IDs, types and scopes repeat across every node of a
// dependency tree, and interned handles keep MavenCoordinate comparable with ==.
type OptionalString struct {
	value unique.Handle[string]
	ok    bool
}

// Some returns a present OptionalString holding s.
func Some(s string) OptionalString {
	return OptionalString{value: unique.Make(s), ok: true}
}

// None returns an absent OptionalString.
func None() OptionalString {
	return OptionalString{}
}

// FromPtr converts a nil-able string pointer, as produced by decoders, into an OptionalString.
func FromPtr(s *string) OptionalString {
	if s == nil {
		return None()
	}
	return Some(*s)
}

// Get returns the value and whether it is present.
func (o OptionalString) Get() (string, bool) {
	if !o.ok {
		return "", false
	}
	return o.value.Value(), true
}

// IsSet reports whether a value is present.
func (o OptionalString) IsSet() bool {
	return o.ok
}

// OrElse returns the value, or def when absent.
func (o OptionalString) OrElse(def string) string {
	if !o.ok {
		return def
	}
	return o.value.Value()
}

// NonBlank returns the value when it is present and not empty after trimming whitespace.
// The returned value is untrimmed.
func (o OptionalString) NonBlank() (string, bool) {
	v, ok := o.Get()
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// String renders the value, or the empty string when absent.
func (o OptionalString) String() string {
	return o.OrElse("")
}

// MarshalJSON renders an absent value as null.
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value.Value())
}

// UnmarshalJSON treats null as absent.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None()
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*o = Some(s)
	return nil
}
