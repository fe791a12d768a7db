// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bubble lays out bubble charts: scatter plots whose points
// are circles sized by a third metric.
//
// The package computes pure geometry (scales, circle placement, size
// legends and axis ticks) and the transient interaction state driven
// by pointer events. Drawing is left to a Render Driver such as
// package bubble/render.
package bubble

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// A Record is one dataset entry: a single region and its metrics.
type Record struct {
	Name     string
	X, Y     float64
	Size     float64
	Category string
}

// Fields maps Record attributes to the keys of the input JSON
// objects. Category may be empty, in which case records have no
// category.
type Fields struct {
	Name, X, Y, Size, Category string
}

// DefaultFields returns the key mapping of the restaurant datasets.
// X is left empty: those datasets have no numeric field for the
// horizontal axis, so it must be chosen explicitly.
func DefaultFields() Fields {
	return Fields{
		Name:     "state",
		Y:        "number_of_restaurants",
		Size:     "number_of_restaurants",
		Category: "category",
	}
}

// FieldError reports a record that lacks a required field.
type FieldError struct {
	Index int    // index of the object in the input array
	Name  string // record name, if known
	Field string
}

func (e *FieldError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("record %d (%s): missing field %q", e.Index, e.Name, e.Field)
	}
	return fmt.Sprintf("record %d: missing field %q", e.Index, e.Field)
}

// FieldTypeError reports a metric field whose value is not numeric.
type FieldTypeError struct {
	Index int
	Role  string // "x", "y" or "size"
	Field string
	Value string
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("record %d: %s field %q is %s, not a number", e.Index, e.Role, e.Field, e.Value)
}

// Decode reads a JSON array of objects and converts each object to a
// Record using the key mapping f.
//
// An object missing a required field is skipped and a *FieldError
// describing it is appended to skipped. If strict is set, the first
// such object instead fails the whole decode. A metric that is
// present but not numeric is always an error, since it indicates the
// field mapping itself is wrong.
func Decode(r io.Reader, f Fields, strict bool) (recs []Record, skipped []error, err error) {
	if f.Name == "" || f.X == "" || f.Y == "" || f.Size == "" {
		return nil, nil, fmt.Errorf("incomplete field mapping %+v", f)
	}
	var objs []map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&objs); err != nil {
		return nil, nil, fmt.Errorf("parsing dataset: %w", err)
	}

	recs = make([]Record, 0, len(objs))
	for i, obj := range objs {
		rec, err := decodeRecord(i, obj, f)
		if err != nil {
			if _, ok := err.(*FieldError); ok && !strict {
				skipped = append(skipped, err)
				continue
			}
			return nil, skipped, err
		}
		recs = append(recs, rec)
	}
	return recs, skipped, nil
}

func decodeRecord(i int, obj map[string]json.RawMessage, f Fields) (Record, error) {
	var rec Record
	raw, ok := present(obj, f.Name)
	if !ok {
		return rec, &FieldError{Index: i, Field: f.Name}
	}
	rec.Name = stringValue(raw)

	for _, m := range []struct {
		role, field string
		dst         *float64
	}{
		{"x", f.X, &rec.X},
		{"y", f.Y, &rec.Y},
		{"size", f.Size, &rec.Size},
	} {
		raw, ok := present(obj, m.field)
		if !ok {
			return rec, &FieldError{i, rec.Name, m.field}
		}
		v, ok := numberValue(raw)
		if !ok {
			return rec, &FieldTypeError{i, m.role, m.field, string(raw)}
		}
		*m.dst = v
	}

	if f.Category != "" {
		if raw, ok := present(obj, f.Category); ok {
			rec.Category = stringValue(raw)
		}
	}
	return rec, nil
}

// present returns obj[key] if it exists and is not null.
func present(obj map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := obj[key]
	if !ok || string(raw) == "null" {
		return nil, false
	}
	return raw, true
}

// numberValue accepts JSON numbers and strings holding finite numbers.
func numberValue(raw json.RawMessage) (float64, bool) {
	var v float64
	if err := json.Unmarshal(raw, &v); err == nil {
		return v, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !finite(v) {
		return 0, false
	}
	return v, true
}

// stringValue returns a JSON string's contents, or the raw JSON text
// of any other value.
func stringValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
