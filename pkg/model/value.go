package model

import "fmt"

// ValueState distinguishes an absent value from an explicit null and from a
// present value. Host form-state libraries that only deal in concrete values
// can flatten through Interface; the engine itself keeps the three states
// apart because default synthesis and empty normalization assign them
// different meanings.
type ValueState uint8

const (
	// StateAbsent means no value at all (an unset field).
	StateAbsent ValueState = iota
	// StateNull means an explicit null.
	StateNull
	// StatePresent means a concrete value, including zero values.
	StatePresent
)

// Value is the tri-state value representation used across the engine.
type Value struct {
	State ValueState
	Data  any
}

// Undefined returns the absent value.
func Undefined() Value { return Value{State: StateAbsent} }

// Null returns the explicit null value.
func Null() Value { return Value{State: StateNull} }

// Of wraps a concrete value. Of(nil) is a present nil, not a null; callers
// that mean null should say so.
func Of(data any) Value { return Value{State: StatePresent, Data: data} }

// IsAbsent reports whether the value is unset.
func (v Value) IsAbsent() bool { return v.State == StateAbsent }

// IsNull reports whether the value is an explicit null.
func (v Value) IsNull() bool { return v.State == StateNull }

// IsEmpty reports whether the value counts as empty for normalization
// purposes: absent, null, or an empty string. Zero and false are not empty.
func (v Value) IsEmpty() bool {
	switch v.State {
	case StateAbsent, StateNull:
		return true
	case StatePresent:
		s, ok := v.Data.(string)
		return ok && s == ""
	default:
		return false
	}
}

// Interface flattens the value for hosts without a tri-state representation.
// Absent and null both collapse to nil.
func (v Value) Interface() any {
	if v.State != StatePresent {
		return nil
	}
	return v.Data
}

// String renders the value for diagnostics and test output.
func (v Value) String() string {
	switch v.State {
	case StateAbsent:
		return "<absent>"
	case StateNull:
		return "<null>"
	default:
		return fmt.Sprintf("%v", v.Data)
	}
}
