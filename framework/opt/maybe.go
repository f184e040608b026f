// Package opt provides an optional value type for request parameters and
// test configuration, where "not set" must be distinguishable from a zero
// value (an omitted field versus an empty string, an unspecified page versus
// page zero).
package opt

import "fmt"

// Maybe is either a value of type V or nothing. The zero value is nothing.
type Maybe[V any] struct {
	present bool
	value   V
}

// Some wraps a value in a Maybe.
func Some[V any](value V) Maybe[V] {
	return Maybe[V]{present: true, value: value}
}

// None is the Maybe with no value.
func None[V any]() Maybe[V] { return Maybe[V]{} }

// IsDefined returns true if there is a value.
func (m Maybe[V]) IsDefined() bool { return m.present }

// Value returns the value, or the zero value of V if there is none.
func (m Maybe[V]) Value() V { return m.value }

// AsPtr returns a pointer to the value, or nil if there is none.
func (m Maybe[V]) AsPtr() *V {
	if !m.present {
		return nil
	}
	return &m.value
}

// OrElse returns the value if there is one, or fallback otherwise.
func (m Maybe[V]) OrElse(fallback V) V {
	if !m.present {
		return fallback
	}
	return m.value
}

// Map applies fn to the value, if there is one. None maps to None.
func (m Maybe[V]) Map(fn func(V) V) Maybe[V] {
	if !m.present {
		return m
	}
	return Some(fn(m.value))
}

// String formats the value with its own String() method if it has one, or
// with %v otherwise. No value formats as "[none]".
func (m Maybe[V]) String() string {
	if !m.present {
		return "[none]"
	}
	if s, ok := any(m.value).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", m.value)
}
