package conv

import (
	"reflect"

	"github.com/viant/beanutil/fault"
)

// Value returns a reflect.Value of type dest holding value.
//
// A nil value (or a typed nil pointer) yields the zero value of dest. A value
// of type T is boxed when dest is *T and a non-nil *T is unboxed when dest is T.
// Any other mismatch is reported as fault.ErrInvalidArgument.
func Value(value interface{}, dest reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(dest), nil
	}
	src := reflect.ValueOf(value)
	if src.Type().AssignableTo(dest) {
		return src, nil
	}
	if dest.Kind() == reflect.Ptr && src.Type().AssignableTo(dest.Elem()) {
		ptr := reflect.New(dest.Elem())
		ptr.Elem().Set(src)
		return ptr, nil
	}
	if src.Kind() == reflect.Ptr && src.Type().Elem().AssignableTo(dest) {
		if src.IsNil() {
			return reflect.Zero(dest), nil
		}
		return src.Elem(), nil
	}
	return reflect.Value{}, fault.InvalidArgument("cannot assign %v to %v", src.Type(), dest)
}

// Assign sets dest (which must be settable) to value following Value rules.
func Assign(dest reflect.Value, value interface{}) error {
	v, err := Value(value, dest.Type())
	if err != nil {
		return err
	}
	dest.Set(v)
	return nil
}

// Addressable returns an addressable value for v, copying it when needed so
// that pointer receiver methods can be called.
func Addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}
	cp := reflect.New(v.Type()).Elem()
	cp.Set(v)
	return cp
}

// Pointer returns a pointer to a copy of value
func Pointer[T any](value T) *T {
	return &value
}

// Dereference returns the value ptr points to, or the zero value for nil
func Dereference[T any](ptr *T) T {
	if ptr == nil {
		var zero T
		return zero
	}
	return *ptr
}
