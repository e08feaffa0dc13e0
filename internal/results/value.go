package results

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Value is an undecoded JSON value. Lookups never fail: a missing key or a
// value of the wrong shape yields a nil Value.
type Value json.RawMessage

// Get walks object keys and returns the value at the end of the path
func (v Value) Get(keys ...string) Value {
	cur := v
	for _, key := range keys {
		if cur.IsNull() {
			return nil
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(cur, &obj); err != nil {
			return nil
		}
		next, ok := obj[key]
		if !ok {
			return nil
		}
		cur = Value(next)
	}
	return cur
}

// IsNull reports whether the value is absent or JSON null
func (v Value) IsNull() bool {
	trimmed := bytes.TrimSpace(v)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// String returns the value if it is a JSON string
func (v Value) String() (string, bool) {
	if v.IsNull() {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", false
	}
	return s, true
}

// Bool returns the value if it is a JSON boolean
func (v Value) Bool() (bool, bool) {
	if v.IsNull() {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(v, &b); err != nil {
		return false, false
	}
	return b, true
}

// Text renders a scalar as text. Strings are returned as-is, non-zero
// numbers as written and true as "true". Zero, false, null, objects and
// arrays yield "".
func (v Value) Text() string {
	trimmed := bytes.TrimSpace(v)
	if len(trimmed) == 0 {
		return ""
	}
	switch trimmed[0] {
	case '"':
		s, _ := v.String()
		return s
	case 't':
		if b, ok := v.Bool(); ok && b {
			return "true"
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if f, err := strconv.ParseFloat(string(trimmed), 64); err == nil && f != 0 {
			return string(trimmed)
		}
	}
	return ""
}

// Truthy reports whether the value is present and not one of null, false,
// 0 or the empty string
func (v Value) Truthy() bool {
	trimmed := bytes.TrimSpace(v)
	if len(trimmed) == 0 {
		return false
	}
	switch trimmed[0] {
	case '{', '[':
		return true
	}
	return v.Text() != ""
}

// Array returns the elements if the value is a JSON array
func (v Value) Array() ([]Value, bool) {
	trimmed := bytes.TrimSpace(v)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, false
	}
	items := make([]Value, len(raw))
	for i, r := range raw {
		items[i] = Value(r)
	}
	return items, true
}

// Indent pretty-prints the value with a two-space indent, keeping key order
func (v Value) Indent() string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(v), "", "  "); err != nil {
		return string(v)
	}
	return buf.String()
}
