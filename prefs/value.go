package prefs

import (
	"fmt"
	"strconv"
	"strings"
)

// DataType tags the kind of value a preference holds.
type DataType int

const (
	None DataType = iota
	Int
	Float
	String
)

func (t DataType) String() string {
	switch t {
	case None:
		return "None"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case String:
		return "String"
	default:
		return fmt.Sprintf("DataType(%d)", int(t))
	}
}

// ParseDataType accepts the names printed by String, case-insensitively.
func ParseDataType(s string) (DataType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "int":
		return Int, nil
	case "float":
		return Float, nil
	case "string":
		return String, nil
	default:
		return None, fmt.Errorf("unknown data type %q", s)
	}
}

// Value is a preference value tagged with its DataType. The zero Value has
// type None.
type Value struct {
	typ DataType
	i   int
	f   float64
	s   string
}

func IntValue(v int) Value         { return Value{typ: Int, i: v} }
func FloatValue(v float64) Value   { return Value{typ: Float, f: v} }
func StringValue(v string) Value   { return Value{typ: String, s: v} }
func (v Value) Type() DataType     { return v.typ }
func (v Value) IsNone() bool       { return v.typ == None }
func (v Value) Equal(o Value) bool { return v == o }

// Int returns the integer payload. Float values are truncated; other types
// yield 0.
func (v Value) Int() int {
	switch v.typ {
	case Int:
		return v.i
	case Float:
		return int(v.f)
	default:
		return 0
	}
}

// Float returns the numeric payload as float64.
func (v Value) Float() float64 {
	switch v.typ {
	case Int:
		return float64(v.i)
	case Float:
		return v.f
	default:
		return 0
	}
}

// Text returns the string payload, or the formatted number for numeric values.
func (v Value) Text() string {
	switch v.typ {
	case Int:
		return strconv.Itoa(v.i)
	case Float:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case String:
		return v.s
	default:
		return ""
	}
}

func (v Value) String() string {
	if v.typ == None {
		return "<none>"
	}
	return v.typ.String() + "(" + v.Text() + ")"
}

// Convert coerces v to the given type. Strings that do not parse become the
// zero value of the target type and ok is false.
func (v Value) Convert(t DataType) (out Value, ok bool) {
	if v.typ == t {
		return v, true
	}
	switch t {
	case Int:
		if v.typ == String {
			n, err := strconv.Atoi(strings.TrimSpace(v.s))
			return IntValue(n), err == nil
		}
		return IntValue(v.Int()), v.typ != None
	case Float:
		if v.typ == String {
			f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
			return FloatValue(f), err == nil
		}
		return FloatValue(v.Float()), v.typ != None
	case String:
		return StringValue(v.Text()), v.typ != None
	default:
		return Value{}, false
	}
}

// ParseValue builds a Value of type t from its text form.
func ParseValue(t DataType, s string) (Value, error) {
	if t == None {
		return Value{}, fmt.Errorf("parse value: %w", ErrTypeMismatch)
	}
	v, ok := StringValue(s).Convert(t)
	if !ok {
		return Value{}, fmt.Errorf("parse %q as %s: %w", s, t, ErrTypeMismatch)
	}
	return v, nil
}

// Zero returns the zero value of t.
func Zero(t DataType) Value {
	switch t {
	case Int:
		return IntValue(0)
	case Float:
		return FloatValue(0)
	case String:
		return StringValue("")
	default:
		return Value{}
	}
}
