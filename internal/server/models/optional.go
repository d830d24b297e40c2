package models

import (
	"bytes"
	"encoding/json"
)

// OptionalString tells apart an absent JSON field, a field holding a string
// and a field holding anything else (null, number, object...).
type OptionalString struct {
	Present  bool
	IsString bool
	Value    string
}

func String(v string) OptionalString {
	return OptionalString{Present: true, IsString: true, Value: v}
}

// UnmarshalJSON is only invoked for keys present in the payload, null included.
func (o *OptionalString) UnmarshalJSON(b []byte) error {
	o.Present = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		// json.Unmarshal leaves a string untouched on null.
		o.IsString = false
		o.Value = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		o.IsString = false
		o.Value = ""
		return nil
	}
	o.IsString = true
	o.Value = s
	return nil
}
