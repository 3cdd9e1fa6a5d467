// Package conv provides small, reflection-based helpers to move values into
// reflect.Values of a declared type.  Assignment is strict: values are only
// boxed into pointers or unboxed from them, never converted between kinds.
package conv
