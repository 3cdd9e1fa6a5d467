package property

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/viant/beanutil/fault"
	"github.com/viant/beanutil/internal/conv"
	"github.com/viant/beanutil/internal/syncmap"
)

// ErrAccessDenied reports access to an unexported field by an Accessor
// created without WithUnexported(true).
var ErrAccessDenied = errors.New("access denied")

var errorType = reflect.TypeOf((*error)(nil)).Elem()

type propertyKey struct {
	owner reflect.Type
	name  string
}

// Accessor resolves and caches property descriptors. It is safe for concurrent use.
type Accessor struct {
	tags       []string
	unexported bool
	logger     *zap.Logger
	properties *syncmap.Map[propertyKey, *Property]
	fields     *syncmap.Map[reflect.Type, []Field]
}

// New creates an Accessor
func New(options ...Option) *Accessor {
	ret := &Accessor{
		tags:       []string{"json"},
		logger:     zap.NewNop(),
		properties: syncmap.New[propertyKey, *Property](),
		fields:     syncmap.New[reflect.Type, []Field](),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Lookup resolves the named property of t (a struct or pointer to struct)
func (a *Accessor) Lookup(t reflect.Type, name string) (*Property, error) {
	if name == "" {
		return nil, fault.InvalidArgument("property name is empty")
	}
	owner := structType(t)
	if owner == nil {
		return nil, fault.InvalidArgument("%v is not a struct", t)
	}
	return a.properties.GetOrLoad(propertyKey{owner: owner, name: name}, func() (*Property, error) {
		return a.resolve(owner, name)
	})
}

// Get returns the value of the named property of instance
func (a *Accessor) Get(instance interface{}, name string) (interface{}, error) {
	root, err := readable(instance)
	if err != nil {
		return nil, err
	}
	prop, err := a.Lookup(root.Type(), name)
	if err != nil {
		return nil, err
	}
	if prop.getter != nil {
		if _, err := walk(root, prop.getterPath, false); err != nil {
			return nil, fault.InvalidArgument("property %q of %v: %v", name, prop.Owner, err)
		}
		out := root.Addr().Method(prop.getter.Index).Call(nil)
		if len(out) == 2 && !out[1].IsNil() {
			return nil, fmt.Errorf("failed to get %v.%s: %w", prop.Owner, name, out[1].Interface().(error))
		}
		return out[0].Interface(), nil
	}
	if prop.Field == nil {
		return nil, fault.InvalidArgument("property %q of %v is write only", name, prop.Owner)
	}
	parent, err := parentForRead(root, prop.Field.Index)
	if err != nil {
		return nil, fault.InvalidArgument("property %q of %v: %v", name, prop.Owner, err)
	}
	if prop.Field.Exported {
		return parent.Field(last(prop.Field.Index)).Interface(), nil
	}
	if err := a.ensureUnexported(prop); err != nil {
		return nil, err
	}
	return prop.Field.xField.Value(parent.Addr().UnsafePointer()), nil
}

// Set assigns value to the named property of instance, which has to be a non nil pointer to a struct.
// value is boxed into or unboxed from a pointer when needed but never converted.
func (a *Accessor) Set(instance interface{}, name string, value interface{}) error {
	root, err := writable(instance)
	if err != nil {
		return err
	}
	prop, err := a.Lookup(root.Type(), name)
	if err != nil {
		return err
	}
	if prop.setter != nil {
		arg, err := conv.Value(value, prop.setter.Type.In(1))
		if err != nil {
			return fmt.Errorf("failed to set %v.%s: %w", prop.Owner, name, err)
		}
		if _, err := walk(root, prop.setterPath, true); err != nil {
			return fault.InvalidArgument("property %q of %v: %v", name, prop.Owner, err)
		}
		out := root.Addr().Method(prop.setter.Index).Call([]reflect.Value{arg})
		if len(out) == 1 && !out[0].IsNil() {
			return fmt.Errorf("failed to set %v.%s: %w", prop.Owner, name, out[0].Interface().(error))
		}
		return nil
	}
	if prop.Field == nil {
		return fault.InvalidArgument("property %q of %v is read only", name, prop.Owner)
	}
	if !prop.Field.Exported {
		if err := a.ensureUnexported(prop); err != nil {
			return err
		}
	}
	arg, err := conv.Value(value, prop.Field.Type)
	if err != nil {
		return fmt.Errorf("failed to set %v.%s: %w", prop.Owner, name, err)
	}
	parent, err := parentForWrite(root, prop.Field.Index)
	if err != nil {
		return fault.InvalidArgument("property %q of %v: %v", name, prop.Owner, err)
	}
	if prop.Field.Exported {
		parent.Field(last(prop.Field.Index)).Set(arg)
		return nil
	}
	prop.Field.xField.SetValue(parent.Addr().UnsafePointer(), arg.Interface())
	return nil
}

func (a *Accessor) ensureUnexported(prop *Property) error {
	if a.unexported {
		return nil
	}
	return fmt.Errorf("%w: field %v.%s is unexported", ErrAccessDenied, prop.Field.Owner, prop.Field.Name)
}

func (a *Accessor) resolve(owner reflect.Type, name string) (*Property, error) {
	ptrType := reflect.PointerTo(owner)
	camel := strcase.ToCamel(name)
	prop := &Property{Name: name, SerializedName: name, Owner: owner}
	field, tagged := a.matchField(owner, name, camel)
	// a bare <Name> method never shadows a field carrying name as its tag
	prop.getter, prop.setter = accessors(ptrType, camel, !tagged)
	if field != nil {
		prop.Field = field
		prop.SerializedName = field.SerializedName
		if prop.getter == nil && prop.setter == nil {
			prop.getter, prop.setter = accessors(ptrType, strcase.ToCamel(field.Name), true)
		}
	}
	if prop.getter != nil {
		prop.getterPath = promotion(owner, prop.getter.Name, map[reflect.Type]bool{owner: true})
	}
	if prop.setter != nil {
		prop.setterPath = promotion(owner, prop.setter.Name, map[reflect.Type]bool{owner: true})
	}
	switch {
	case prop.getter != nil:
		prop.Type = prop.getter.Type.Out(0)
	case prop.setter != nil:
		prop.Type = prop.setter.Type.In(1)
	case prop.Field != nil:
		prop.Type = prop.Field.Type
	default:
		return nil, fault.InvalidArgument("property %q not found on %v", name, owner)
	}
	switch {
	case prop.getter != nil || prop.setter != nil:
		prop.Kind = GetterSetter
	case !prop.Field.Exported:
		prop.Kind = PrivateField
	case prop.Field.Annotated && prop.Field.SerializedName == name:
		prop.Kind = AnnotatedField
	default:
		prop.Kind = PublicField
	}
	a.logger.Debug("resolved property",
		zap.Stringer("type", owner),
		zap.String("name", name),
		zap.Stringer("kind", prop.Kind))
	return prop, nil
}

// matchField prefers tag names over declared names and shallow fields over embedded ones.
// A case-insensitive match on the declared name is the last resort, so "id" finds ID.
// tagged reports a match by tag name.
func (a *Accessor) matchField(owner reflect.Type, name, camel string) (field *Field, tagged bool) {
	fields := a.Fields(owner)
	byTag := lo.Filter(fields, func(f Field, _ int) bool {
		return f.Annotated && f.SerializedName == name
	})
	if field = shallowest(byTag); field != nil {
		return field, true
	}
	byName := lo.Filter(fields, func(f Field, _ int) bool {
		return f.Name == name || f.Name == camel
	})
	if field = shallowest(byName); field != nil {
		return field, false
	}
	byFold := lo.Filter(fields, func(f Field, _ int) bool {
		return strings.EqualFold(f.Name, name)
	})
	return shallowest(byFold), false
}

func shallowest(fields []Field) *Field {
	if len(fields) == 0 {
		return nil
	}
	result := lo.MinBy(fields, func(a, b Field) bool {
		return a.Depth() < b.Depth()
	})
	return &result
}

// accessors finds Get<Name>/<Name>/Is<Name> and Set<Name> in the method set of ptrType,
// bare controls the <Name> candidate. A setter whose argument type differs from the
// getter result is ignored.
func accessors(ptrType reflect.Type, camel string, bare bool) (getter, setter *reflect.Method) {
	candidates := []string{"Get" + camel}
	if bare {
		candidates = append(candidates, camel)
	}
	for _, candidate := range candidates {
		if m, ok := method(ptrType, candidate); ok && isGetter(m) {
			getter = &m
			break
		}
	}
	if getter == nil {
		if m, ok := method(ptrType, "Is"+camel); ok && isGetter(m) && isBool(m.Type.Out(0)) {
			getter = &m
		}
	}
	if m, ok := method(ptrType, "Set"+camel); ok && isSetter(m) {
		if getter == nil || m.Type.In(1) == getter.Type.Out(0) {
			setter = &m
		}
	}
	return getter, setter
}

// method looks name up exactly, then case-insensitively so that GetUserId finds GetUserID
func method(t reflect.Type, name string) (reflect.Method, bool) {
	if m, ok := t.MethodByName(name); ok {
		return m, true
	}
	for i := 0; i < t.NumMethod(); i++ {
		if m := t.Method(i); strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return reflect.Method{}, false
}

func isGetter(m reflect.Method) bool {
	t := m.Type
	if t.NumIn() != 1 || t.NumOut() == 0 || t.Out(0) == errorType {
		return false
	}
	return t.NumOut() == 1 || (t.NumOut() == 2 && t.Out(1) == errorType)
}

func isSetter(m reflect.Method) bool {
	t := m.Type
	if t.NumIn() != 2 {
		return false
	}
	return t.NumOut() == 0 || (t.NumOut() == 1 && t.Out(0) == errorType)
}

// promotion returns the embedding path to the struct contributing the named method,
// nil when owner itself declares it. Promotion is attributed to the shallowest embedded
// struct whose pointer method set has the method.
func promotion(owner reflect.Type, name string, visited map[reflect.Type]bool) []int {
	var best []int
	for i := 0; i < owner.NumField(); i++ {
		sf := owner.Field(i)
		if !sf.Anonymous {
			continue
		}
		embedded := structType(sf.Type)
		if embedded == nil || visited[embedded] {
			continue
		}
		if _, ok := reflect.PointerTo(embedded).MethodByName(name); !ok {
			continue
		}
		visited[embedded] = true
		path := append([]int{i}, promotion(embedded, name, visited)...)
		delete(visited, embedded)
		if best == nil || len(path) < len(best) {
			best = path
		}
	}
	return best
}

func isBool(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Bool
}

func readable(instance interface{}) (reflect.Value, error) {
	if instance == nil {
		return reflect.Value{}, fault.InvalidArgument("instance is nil")
	}
	v := reflect.ValueOf(instance)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, fault.InvalidArgument("instance is a nil %v", v.Type())
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fault.InvalidArgument("instance %v is not a struct", v.Type())
	}
	return conv.Addressable(v), nil
}

func writable(instance interface{}) (reflect.Value, error) {
	if instance == nil {
		return reflect.Value{}, fault.InvalidArgument("instance is nil")
	}
	if reflect.TypeOf(instance).Kind() != reflect.Ptr {
		return reflect.Value{}, fault.InvalidArgument("instance %T is not a pointer", instance)
	}
	return readable(instance)
}

func parentForRead(root reflect.Value, index []int) (reflect.Value, error) {
	return walk(root, index[:len(index)-1], false)
}

func parentForWrite(root reflect.Value, index []int) (reflect.Value, error) {
	return walk(root, index[:len(index)-1], true)
}

// walk follows embedded fields along path, allocating nil pointers when allocate is set
func walk(root reflect.Value, path []int, allocate bool) (reflect.Value, error) {
	v := root
	for _, i := range path {
		v = v.Field(i)
		if v.Kind() != reflect.Ptr {
			continue
		}
		if v.IsNil() {
			if !allocate || !v.CanSet() {
				return reflect.Value{}, fmt.Errorf("embedded %v is nil", v.Type())
			}
			v.Set(reflect.New(v.Type().Elem()))
		}
		v = v.Elem()
	}
	return v, nil
}

func last(index []int) int {
	return index[len(index)-1]
}
