// Package models defines the record table and view data structures shared by
// the loaders, queries and presenters.
package models

import (
	"strconv"
	"time"
)

// Kind identifies the type held by a Value.
type Kind int

const (
	// KindMissing marks an absent or unparseable cell.
	KindMissing Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindTime
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	default:
		return "missing"
	}
}

// Value is a single cell of a record table. The zero Value is the missing
// marker and is distinct from every valid value, including the empty string.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
	t    time.Time
}

// Missing returns the missing marker.
func Missing() Value { return Value{} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Time returns a date/time value.
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether v is the missing marker.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Str returns the string payload and whether v is a string.
func (v Value) Str() (string, bool) { return v.s, v.kind == KindString }

// Int64 returns the integer payload and whether v is an integer.
func (v Value) Int64() (int64, bool) { return v.i, v.kind == KindInt }

// Float64 returns v as a float for numeric kinds.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	}
	return 0, false
}

// Time returns the time payload and whether v is a time.
func (v Value) Time() (time.Time, bool) { return v.t, v.kind == KindTime }

// Text returns the display and search representation of v.
// The missing marker renders as the empty string.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindTime:
		if v.t.Hour() == 0 && v.t.Minute() == 0 && v.t.Second() == 0 && v.t.Nanosecond() == 0 {
			return v.t.Format("2006-01-02")
		}
		return v.t.Format("2006-01-02 15:04:05")
	}
	return ""
}

// Equal reports whether v and o hold the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.s == o.s
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindBool:
		return v.b == o.b
	case KindTime:
		return v.t.Equal(o.t)
	}
	return true
}

// Before orders values of the same kind. Missing values sort after everything
// else; values of different kinds order by kind.
func (v Value) Before(o Value) bool {
	if v.kind != o.kind {
		if v.IsMissing() {
			return false
		}
		if o.IsMissing() {
			return true
		}
		return v.kind < o.kind
	}
	switch v.kind {
	case KindString:
		return v.s < o.s
	case KindInt:
		return v.i < o.i
	case KindFloat:
		return v.f < o.f
	case KindBool:
		return !v.b && o.b
	case KindTime:
		return v.t.Before(o.t)
	}
	return false
}
