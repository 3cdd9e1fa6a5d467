package property

import "reflect"

var defaultAccessor = New()

// Get returns the named property of instance using the default Accessor
func Get(instance interface{}, name string) (interface{}, error) {
	return defaultAccessor.Get(instance, name)
}

// Set assigns the named property of instance using the default Accessor
func Set(instance interface{}, name string, value interface{}) error {
	return defaultAccessor.Set(instance, name, value)
}

// Lookup resolves the named property of t using the default Accessor
func Lookup(t reflect.Type, name string) (*Property, error) {
	return defaultAccessor.Lookup(t, name)
}

// Fields lists the fields of t using the default Accessor
func Fields(t reflect.Type) []Field {
	return defaultAccessor.Fields(t)
}
