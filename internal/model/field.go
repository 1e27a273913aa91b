package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Field is a loosely typed scalar taken from a request body. Clients send
// numbers, numeric strings and empty strings interchangeably, so fields are
// kept as decoded and handed to the driver untouched; the store decides what
// is acceptable.
type Field struct {
	value any
}

// NewField wraps v as if it had been decoded from a request body.
func NewField(v any) Field {
	return Field{value: v}
}

func (f *Field) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	f.value = v
	return nil
}

func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.value)
}

// Value returns the raw decoded value, nil when the field was absent or null.
func (f Field) Value() any {
	return f.value
}

// Truthy reports whether the value counts as present: null, false, zero,
// NaN and the empty string do not.
func (f Field) Truthy() bool {
	switch v := f.value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return v.String() != ""
		}
		return n != 0 && !math.IsNaN(n)
	case float64:
		return v != 0 && !math.IsNaN(v)
	case int:
		return v != 0
	case int64:
		return v != 0
	default:
		return true
	}
}

// Or returns the value when truthy, fallback otherwise.
func (f Field) Or(fallback any) any {
	if f.Truthy() {
		return f.value
	}
	return fallback
}

// OrNull returns the value when truthy, nil otherwise.
func (f Field) OrNull() any {
	return f.Or(nil)
}

// Coalesce returns f when truthy, other otherwise.
func (f Field) Coalesce(other Field) Field {
	if f.Truthy() {
		return f
	}
	return other
}

// TrimmedOrNull renders the value as text, trims surrounding whitespace and
// returns nil when nothing is left.
func (f Field) TrimmedOrNull() any {
	if !f.Truthy() {
		return nil
	}
	s := strings.TrimSpace(f.String())
	if s == "" {
		return nil
	}
	return s
}

func (f Field) String() string {
	switch v := f.value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
