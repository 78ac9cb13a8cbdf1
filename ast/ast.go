// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a tree of parsed values, and a recursive-descent parser
// that constructs value trees from source text.
//
// A Value is exactly one of the concrete types Null, Bool, Int, Float,
// String, Array, or Object. No other package can add implementations, so a
// type switch over these seven cases is exhaustive.
package ast

import (
	"fmt"
	"strconv"
)

// A Value is an arbitrary parsed value.
type Value interface {
	// Interface converts the value to a plain Go value: nil, bool, int64,
	// float64, string, []any, or map[string]any.
	Interface() any

	isValue()
}

// A Number is a Value that is either an Int or a Float.
type Number interface {
	Value

	// IsInt reports whether the number is an Int.
	IsInt() bool

	// Int64 returns the number as an int64, truncating a Float.
	Int64() int64

	// Float64 returns the number as a float64.
	Float64() float64
}

// Null represents the null constant.
type Null struct{}

// Interface satisfies the Value interface. It returns nil.
func (Null) Interface() any { return nil }
func (Null) isValue()       {}
func (Null) String() string { return "null" }

// A Bool is a Boolean constant, true or false.
type Bool bool

// Interface satisfies the Value interface.
func (b Bool) Interface() any { return bool(b) }
func (Bool) isValue()         {}
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// An Int is a number lexed without a decimal point.
type Int int64

// Interface satisfies the Value interface.
func (z Int) Interface() any   { return int64(z) }
func (Int) isValue()           {}
func (Int) IsInt() bool        { return true }
func (z Int) Int64() int64     { return int64(z) }
func (z Int) Float64() float64 { return float64(z) }
func (z Int) String() string   { return strconv.FormatInt(int64(z), 10) }

// A Float is a number lexed with a decimal point.
type Float float64

// Interface satisfies the Value interface.
func (f Float) Interface() any   { return float64(f) }
func (Float) isValue()           {}
func (Float) IsInt() bool        { return false }
func (f Float) Int64() int64     { return int64(f) }
func (f Float) Float64() float64 { return float64(f) }
func (f Float) String() string   { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// A String is a decoded string value.
type String string

// Interface satisfies the Value interface.
func (s String) Interface() any { return string(s) }
func (String) isValue()         {}

// An Array is a sequence of values.
type Array []Value

// Interface satisfies the Value interface.
func (a Array) Interface() any {
	out := make([]any, len(a))
	for i, v := range a {
		out[i] = v.Interface()
	}
	return out
}
func (Array) isValue() {}

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// An Object is a collection of key-value members, in order of first
// insertion. Keys are unique within an object.
type Object []*Member

// Interface satisfies the Value interface. The order of members is not
// preserved in the resulting map.
func (o Object) Interface() any {
	out := make(map[string]any, len(o))
	for _, m := range o {
		out[m.Key] = m.Value.Interface()
	}
	return out
}
func (Object) isValue() {}

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Keys returns the keys of o in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
func Field(key string, value Value) *Member { return &Member{Key: key, Value: value} }

// ToValue converts a plain Go value into a Value. It accepts nil, Value,
// bool, string, signed and unsigned integers, float32 and float64, []any, and
// []*Member. It panics for any other type, or for an unsigned integer that
// does not fit in an Int.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Int(t)
	case int8:
		return Int(t)
	case int16:
		return Int(t)
	case int32:
		return Int(t)
	case int64:
		return Int(t)
	case uint:
		return toInt(uint64(t))
	case uint8:
		return Int(t)
	case uint16:
		return Int(t)
	case uint32:
		return Int(t)
	case uint64:
		return toInt(t)
	case float32:
		return Float(t)
	case float64:
		return Float(t)
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	case []*Member:
		return Object(t)
	default:
		panic(fmt.Sprintf("unsupported value type %T", v))
	}
}

func toInt(u uint64) Int {
	if u > 1<<63-1 {
		panic(fmt.Sprintf("value %d out of range", u))
	}
	return Int(u)
}
