package property

import (
	"reflect"

	"github.com/viant/xunsafe"
)

// AccessKind describes how a property is read and written
type AccessKind int

const (
	// GetterSetter uses exported methods, falling back to the field for a missing half
	GetterSetter AccessKind = iota + 1
	// PublicField uses an exported field matched by its declared name
	PublicField
	// AnnotatedField uses an exported field matched by its serialization tag
	AnnotatedField
	// PrivateField uses an unexported field, requires WithUnexported
	PrivateField
)

func (k AccessKind) String() string {
	switch k {
	case GetterSetter:
		return "getterSetter"
	case PublicField:
		return "publicField"
	case AnnotatedField:
		return "annotatedField"
	case PrivateField:
		return "privateField"
	}
	return "unknown"
}

// Field describes a struct field, including fields promoted from embedded structs
type Field struct {
	Name           string
	SerializedName string
	// Annotated is set when SerializedName comes from a struct tag
	Annotated bool
	Type      reflect.Type
	// Owner is the struct type declaring the field
	Owner reflect.Type
	// Index is the path from the inspected type, as used by reflect.Value.FieldByIndex
	Index    []int
	Exported bool
	Tag      reflect.StructTag

	xField *xunsafe.Field
}

// Depth returns the embedding depth, 0 for fields declared by the inspected type
func (f *Field) Depth() int {
	return len(f.Index) - 1
}

// Property is a resolved accessor for a named property of a struct type
type Property struct {
	Name           string
	SerializedName string
	Kind           AccessKind
	Owner          reflect.Type
	Type           reflect.Type
	// Field is the backing field, nil for method-only properties
	Field *Field

	getter *reflect.Method
	setter *reflect.Method
	// embedding paths to the structs contributing promoted accessors
	getterPath []int
	setterPath []int
}

// Readable reports whether the property has a getter or a backing field
func (p *Property) Readable() bool {
	return p.getter != nil || p.Field != nil
}

// Writable reports whether the property has a setter or a backing field
func (p *Property) Writable() bool {
	return p.setter != nil || p.Field != nil
}
