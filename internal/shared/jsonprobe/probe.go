// Package jsonprobe extracts values from loosely structured JSON trees by
// probing an ordered list of candidate key paths.
//
// Provider payloads in this gateway are semi-structured and drift between
// API versions; callers list the known schema variants from most- to
// least-likely and take the first one that resolves. Coercion never fails
// loudly: a value that cannot be parsed becomes an invalid (null) optional.
package jsonprobe

import (
	"encoding/json"
	"strconv"

	"github.com/guregu/null/v6"
)

// Path is a sequence of keys applied in nesting order.
type Path []string

// Lookup walks path through tree and reports whether the full traversal
// succeeded: every intermediate key must map to a sub-object and the
// terminal value must be present and non-null. A terminal 0, "" or false
// is present; only JSON null and absent keys count as missing.
func Lookup(tree map[string]any, path Path) (any, bool) {
	cur := any(tree)
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		v, ok := m[key]
		if !ok {
			return nil, false
		}
		cur = v
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

// FirstValue returns the value at the first path whose traversal succeeds.
// Path order encodes priority: once a value is found, later paths are not
// consulted even if coercing that value fails.
func FirstValue(tree map[string]any, paths []Path) (any, bool) {
	for _, p := range paths {
		if v, ok := Lookup(tree, p); ok {
			return v, true
		}
	}
	return nil, false
}

// Float coerces a decoded JSON value to a float. nil, the empty string and
// anything that fails numeric parsing coerce to an invalid Float.
func Float(v any) null.Float {
	switch x := v.(type) {
	case float64:
		return null.FloatFrom(x)
	case float32:
		return null.FloatFrom(float64(x))
	case int:
		return null.FloatFrom(float64(x))
	case int64:
		return null.FloatFrom(float64(x))
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return null.Float{}
		}
		return null.FloatFrom(f)
	case string:
		if x == "" {
			return null.Float{}
		}
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return null.Float{}
		}
		return null.FloatFrom(f)
	default:
		return null.Float{}
	}
}

// Int coerces a decoded JSON value to an integer. Float values are
// truncated; strings must parse as integers.
func Int(v any) null.Int {
	switch x := v.(type) {
	case float64:
		return null.IntFrom(int64(x))
	case float32:
		return null.IntFrom(int64(x))
	case int:
		return null.IntFrom(int64(x))
	case int64:
		return null.IntFrom(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return null.IntFrom(i)
		}
		return null.Int{}
	case string:
		if x == "" {
			return null.Int{}
		}
		i, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return null.Int{}
		}
		return null.IntFrom(i)
	default:
		return null.Int{}
	}
}

// String passes string values through untouched and rejects everything
// else. No numeric-to-string conversion is attempted.
func String(v any) null.String {
	if s, ok := v.(string); ok {
		return null.StringFrom(s)
	}
	return null.String{}
}

// FirstFloat probes paths in order and coerces the first match to a float.
func FirstFloat(tree map[string]any, paths []Path) null.Float {
	v, ok := FirstValue(tree, paths)
	if !ok {
		return null.Float{}
	}
	return Float(v)
}

// FirstInt probes paths in order and coerces the first match to an integer.
func FirstInt(tree map[string]any, paths []Path) null.Int {
	v, ok := FirstValue(tree, paths)
	if !ok {
		return null.Int{}
	}
	return Int(v)
}

// FirstString probes paths in order and returns the first string match.
func FirstString(tree map[string]any, paths []Path) null.String {
	v, ok := FirstValue(tree, paths)
	if !ok {
		return null.String{}
	}
	return String(v)
}
