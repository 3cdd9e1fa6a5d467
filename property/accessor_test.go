package property

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/beanutil/fault"
	"github.com/viant/beanutil/internal/conv"
)

type Bean struct {
	privatePropertyWithMutators          string
	booleanPrimitivePropertyWithMutators bool
	booleanPropertyWithMutators          *bool
	PublicProperty                       string
	protectedProperty                    string
	taggedProperty                       string `json:"annotatedTaggedProperty"`
	Nick                                 string `json:"nickname,omitempty"`
}

func (b *Bean) GetPrivatePropertyWithMutators() string { return b.privatePropertyWithMutators }

func (b *Bean) SetPrivatePropertyWithMutators(v string) { b.privatePropertyWithMutators = v }

func (b *Bean) IsBooleanPrimitivePropertyWithMutators() bool {
	return b.booleanPrimitivePropertyWithMutators
}

func (b *Bean) SetBooleanPrimitivePropertyWithMutators(v bool) {
	b.booleanPrimitivePropertyWithMutators = v
}

func (b *Bean) BooleanPropertyWithMutators() *bool { return b.booleanPropertyWithMutators }

func (b *Bean) SetBooleanPropertyWithMutators(v *bool) { b.booleanPropertyWithMutators = v }

func (b *Bean) GetTaggedProperty() string { return b.taggedProperty }

func (b *Bean) SetTaggedProperty(v string) { b.taggedProperty = v }

type ChildBean struct {
	Bean
}

type ParentClass struct {
	parentField string
}

type ChildClass struct {
	ParentClass
	childField string
}

type Validated struct {
	age int
}

func (v *Validated) Age() (int, error) {
	if v.age < 0 {
		return 0, errors.New("age not set")
	}
	return v.age, nil
}

func (v *Validated) SetAge(age int) error {
	if age < 0 {
		return errors.New("negative age")
	}
	v.age = age
	return nil
}

type Conn struct {
	Closed     bool `json:"close"`
	closeCalls int
}

func (c *Conn) Close() error {
	c.closeCalls++
	c.Closed = true
	return nil
}

type Named struct {
	name string
}

func (n *Named) GetName() string { return n.name }

func (n *Named) SetName(v string) { n.name = v }

type Wrapper struct {
	*Named
	Label string
}

type Counter struct {
	Count int
}

func (c *Counter) GetCount() int { return c.Count }

func (c *Counter) SetCount(v string) { c.Count = len(v) }

type Record struct {
	ID     string
	userID string
}

func (r *Record) GetUserID() string { return r.userID }

func (r *Record) SetUserID(v string) { r.userID = v }

type Base struct {
	ID   string `json:"id"`
	Note string
}

type Derived struct {
	*Base
	Note string `json:"remark"`
}

func TestAccessor_Get(t *testing.T) {
	bean := &Bean{
		privatePropertyWithMutators:          "private",
		booleanPrimitivePropertyWithMutators: true,
		booleanPropertyWithMutators:          conv.Pointer(true),
		PublicProperty:                       "public",
		taggedProperty:                       "tagged",
		Nick:                                 "nick",
	}
	testCases := []struct {
		name     string
		instance interface{}
		property string
		expected interface{}
	}{
		{name: "getter", instance: bean, property: "privatePropertyWithMutators", expected: "private"},
		{name: "is getter", instance: bean, property: "booleanPrimitivePropertyWithMutators", expected: true},
		{name: "boxed getter", instance: bean, property: "booleanPropertyWithMutators", expected: conv.Pointer(true)},
		{name: "public field", instance: bean, property: "publicProperty", expected: "public"},
		{name: "public field declared name", instance: bean, property: "PublicProperty", expected: "public"},
		{name: "annotated field with mutators", instance: bean, property: "annotatedTaggedProperty", expected: "tagged"},
		{name: "annotated field", instance: bean, property: "nickname", expected: "nick"},
		{name: "non pointer instance", instance: *bean, property: "privatePropertyWithMutators", expected: "private"},
		{name: "inherited getter", instance: &ChildBean{Bean: *bean}, property: "privatePropertyWithMutators", expected: "private"},
	}

	accessor := New()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := accessor.Get(tc.instance, tc.property)
			require.NoError(t, err)
			assert.EqualValues(t, tc.expected, actual)
		})
	}
}

func TestAccessor_SetGetRoundTrip(t *testing.T) {
	testCases := []struct {
		name     string
		property string
		value    interface{}
		kind     AccessKind
		check    func(t *testing.T, bean *Bean)
	}{
		{
			name: "getter setter", property: "privatePropertyWithMutators", value: "value", kind: GetterSetter,
			check: func(t *testing.T, bean *Bean) {
				assert.EqualValues(t, "value", bean.GetPrivatePropertyWithMutators())
			},
		},
		{
			name: "boolean primitive", property: "booleanPrimitivePropertyWithMutators", value: true, kind: GetterSetter,
			check: func(t *testing.T, bean *Bean) {
				assert.True(t, bean.IsBooleanPrimitivePropertyWithMutators())
			},
		},
		{
			name: "boolean boxed", property: "booleanPropertyWithMutators", value: true, kind: GetterSetter,
			check: func(t *testing.T, bean *Bean) {
				assert.True(t, conv.Dereference(bean.BooleanPropertyWithMutators()))
			},
		},
		{
			name: "public field", property: "publicProperty", value: "value", kind: PublicField,
			check: func(t *testing.T, bean *Bean) {
				assert.EqualValues(t, "value", bean.PublicProperty)
			},
		},
		{
			name: "annotated field with mutators", property: "annotatedTaggedProperty", value: "value", kind: GetterSetter,
			check: func(t *testing.T, bean *Bean) {
				assert.EqualValues(t, "value", bean.GetTaggedProperty())
			},
		},
		{
			name: "annotated field", property: "nickname", value: "value", kind: AnnotatedField,
			check: func(t *testing.T, bean *Bean) {
				assert.EqualValues(t, "value", bean.Nick)
			},
		},
	}

	accessor := New()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bean := &Bean{}
			require.NoError(t, accessor.Set(bean, tc.property, tc.value))
			tc.check(t, bean)

			actual, err := accessor.Get(bean, tc.property)
			require.NoError(t, err)
			expected, err := conv.Value(tc.value, reflect.TypeOf(actual))
			require.NoError(t, err)
			assert.EqualValues(t, expected.Interface(), actual)

			prop, err := accessor.Lookup(reflect.TypeOf(bean), tc.property)
			require.NoError(t, err)
			assert.EqualValues(t, tc.kind, prop.Kind)
		})
	}
}

func TestAccessor_InheritedSet(t *testing.T) {
	child := &ChildBean{}
	require.NoError(t, Set(child, "privatePropertyWithMutators", "value"))
	assert.EqualValues(t, "value", child.GetPrivatePropertyWithMutators())
}

func TestAccessor_InvalidArguments(t *testing.T) {
	var nilBean *Bean
	accessor := New()

	_, err := accessor.Get(nil, "privatePropertyWithMutators")
	assert.True(t, fault.IsInvalidArgument(err))
	_, err = accessor.Get(nilBean, "privatePropertyWithMutators")
	assert.True(t, fault.IsInvalidArgument(err))
	_, err = accessor.Get(&Bean{}, "")
	assert.True(t, fault.IsInvalidArgument(err))
	_, err = accessor.Get(&Bean{}, "missing")
	assert.True(t, fault.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), `"missing"`)
	_, err = accessor.Get(42, "value")
	assert.True(t, fault.IsInvalidArgument(err))

	assert.True(t, fault.IsInvalidArgument(accessor.Set(nil, "privatePropertyWithMutators", nil)))
	assert.True(t, fault.IsInvalidArgument(accessor.Set(&Bean{}, "", nil)))
	assert.True(t, fault.IsInvalidArgument(accessor.Set(Bean{}, "publicProperty", "x")), "non pointer instance")
	assert.True(t, fault.IsInvalidArgument(accessor.Set(&Bean{}, "publicProperty", 12)), "no coercion")
	assert.True(t, fault.IsInvalidArgument(accessor.Set(&Bean{}, "missing", "x")))
}

func TestAccessor_Unexported(t *testing.T) {
	bean := &Bean{protectedProperty: "protected"}

	_, err := New().Get(bean, "protectedProperty")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAccessDenied))
	assert.False(t, fault.IsInvalidArgument(err))
	err = New().Set(bean, "protectedProperty", "x")
	assert.True(t, errors.Is(err, ErrAccessDenied))

	accessor := New(WithUnexported(true))
	actual, err := accessor.Get(bean, "protectedProperty")
	require.NoError(t, err)
	assert.EqualValues(t, "protected", actual)

	require.NoError(t, accessor.Set(bean, "protectedProperty", "changed"))
	assert.EqualValues(t, "changed", bean.protectedProperty)

	prop, err := accessor.Lookup(reflect.TypeOf(bean), "protectedProperty")
	require.NoError(t, err)
	assert.EqualValues(t, PrivateField, prop.Kind)

	child := &ChildClass{}
	require.NoError(t, accessor.Set(child, "parentField", "parent"))
	assert.EqualValues(t, "parent", child.parentField)
	actual, err = accessor.Get(child, "parentField")
	require.NoError(t, err)
	assert.EqualValues(t, "parent", actual)
}

func TestAccessor_MethodErrors(t *testing.T) {
	v := &Validated{age: -1}
	_, err := Get(v, "age")
	assert.EqualError(t, err, "failed to get property.Validated.age: age not set")

	err = Set(v, "age", -5)
	assert.EqualError(t, err, "failed to set property.Validated.age: negative age")
	require.NoError(t, Set(v, "age", 7))
	actual, err := Get(v, "age")
	require.NoError(t, err)
	assert.EqualValues(t, 7, actual)
}

func TestAccessor_EmbeddedPointer(t *testing.T) {
	derived := &Derived{}
	_, err := Get(derived, "id")
	assert.True(t, fault.IsInvalidArgument(err), "nil embedded pointer on read")

	require.NoError(t, Set(derived, "id", "42"))
	require.NotNil(t, derived.Base)
	assert.EqualValues(t, "42", derived.ID)

	require.NoError(t, Set(derived, "remark", "derived"))
	assert.EqualValues(t, "derived", derived.Note)
	assert.EqualValues(t, "", derived.Base.Note)

	actual, err := Get(derived, "note")
	require.NoError(t, err)
	assert.EqualValues(t, "derived", actual, "most derived declaration wins")

	wrapper := &Wrapper{}
	_, err = Get(wrapper, "name")
	assert.True(t, fault.IsInvalidArgument(err), "promoted getter over nil embedded pointer")
	assert.Nil(t, wrapper.Named)

	require.NoError(t, Set(wrapper, "name", "inner"))
	require.NotNil(t, wrapper.Named)
	assert.EqualValues(t, "inner", wrapper.GetName())
	actual, err = Get(wrapper, "name")
	require.NoError(t, err)
	assert.EqualValues(t, "inner", actual)
}

func TestAccessor_MethodResolution(t *testing.T) {
	testCases := []struct {
		name     string
		instance func() interface{}
		property string
		value    interface{}
		kind     AccessKind
		check    func(t *testing.T, instance interface{})
	}{
		{
			name:     "promoted getter setter",
			instance: func() interface{} { return &Wrapper{Named: &Named{}} },
			property: "name", value: "inner", kind: GetterSetter,
			check: func(t *testing.T, instance interface{}) {
				assert.EqualValues(t, "inner", instance.(*Wrapper).GetName())
			},
		},
		{
			name:     "error only method is not a getter",
			instance: func() interface{} { return &Conn{} },
			property: "close", value: true, kind: AnnotatedField,
			check: func(t *testing.T, instance interface{}) {
				assert.Zero(t, instance.(*Conn).closeCalls)
			},
		},
		{
			name:     "setter of another type writes the field",
			instance: func() interface{} { return &Counter{} },
			property: "count", value: 5, kind: GetterSetter,
			check: func(t *testing.T, instance interface{}) {
				assert.EqualValues(t, 5, instance.(*Counter).Count)
			},
		},
		{
			name:     "initialism field",
			instance: func() interface{} { return &Record{} },
			property: "id", value: "7", kind: PublicField,
			check: func(t *testing.T, instance interface{}) {
				assert.EqualValues(t, "7", instance.(*Record).ID)
			},
		},
		{
			name:     "initialism accessors",
			instance: func() interface{} { return &Record{} },
			property: "userId", value: "u1", kind: GetterSetter,
			check: func(t *testing.T, instance interface{}) {
				assert.EqualValues(t, "u1", instance.(*Record).GetUserID())
			},
		},
	}

	accessor := New()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			instance := tc.instance()
			require.NoError(t, accessor.Set(instance, tc.property, tc.value))
			tc.check(t, instance)

			actual, err := accessor.Get(instance, tc.property)
			require.NoError(t, err)
			assert.EqualValues(t, tc.value, actual)

			prop, err := accessor.Lookup(reflect.TypeOf(instance), tc.property)
			require.NoError(t, err)
			assert.EqualValues(t, tc.kind, prop.Kind)
			assert.EqualValues(t, reflect.TypeOf(tc.value), prop.Type)
		})
	}
}

func TestAccessor_ErrorOnlyMethod(t *testing.T) {
	conn := &Conn{}
	actual, err := Get(conn, "close")
	require.NoError(t, err)
	assert.EqualValues(t, false, actual)
	assert.Zero(t, conn.closeCalls, "reads never call Close")
	assert.False(t, conn.Closed)

	_, err = Get(&struct{ Conn }{}, "closeCalls")
	assert.True(t, errors.Is(err, ErrAccessDenied))
}

func TestAccessor_MismatchedSetter(t *testing.T) {
	counter := &Counter{}
	err := Set(counter, "count", "abc")
	assert.True(t, fault.IsInvalidArgument(err), "the field takes an int, the string setter is ignored")
	assert.Zero(t, counter.Count)

	prop, err := Lookup(reflect.TypeOf(counter), "count")
	require.NoError(t, err)
	assert.True(t, prop.Readable())
	assert.True(t, prop.Writable())
}

func TestAccessor_WithTags(t *testing.T) {
	type Document struct {
		Title string `yaml:"heading" json:"title"`
	}
	doc := &Document{Title: "doc"}

	actual, err := New(WithTags("yaml", "json")).Get(doc, "heading")
	require.NoError(t, err)
	assert.EqualValues(t, "doc", actual)

	_, err = New().Get(doc, "heading")
	assert.True(t, fault.IsInvalidArgument(err))
	actual, err = New().Get(doc, "title")
	require.NoError(t, err)
	assert.EqualValues(t, "doc", actual)
}
