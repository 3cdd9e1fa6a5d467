package property

import (
	"reflect"
	"slices"

	"github.com/fatih/structtag"
	"github.com/viant/xunsafe"
	"go.uber.org/zap"
)

// Fields returns the fields of t (dereferenced when a pointer) and of every
// struct it embeds, embedded fields first. A name declared at several levels
// is reported once, for the most derived declaration, in the slot of the
// embedded one. Non struct types yield nil.
func (a *Accessor) Fields(t reflect.Type) []Field {
	t = structType(t)
	if t == nil {
		return nil
	}
	fields, _ := a.fields.GetOrLoad(t, func() ([]Field, error) {
		return a.collect(t, nil, map[reflect.Type]bool{t: true}), nil
	})
	return slices.Clone(fields)
}

func (a *Accessor) collect(t reflect.Type, index []int, visited map[reflect.Type]bool) []Field {
	var inherited, own []Field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		fieldIndex := append(append(make([]int, 0, len(index)+1), index...), i)
		if sf.Anonymous {
			if embedded := structType(sf.Type); embedded != nil && !visited[embedded] {
				visited[embedded] = true
				inherited = override(inherited, a.collect(embedded, fieldIndex, visited))
				delete(visited, embedded)
				continue
			}
		}
		own = append(own, a.newField(t, sf, fieldIndex))
	}
	return override(inherited, own)
}

// override merges derived into base, derived declarations replace base ones by name
func override(base, derived []Field) []Field {
	for _, field := range derived {
		replaced := false
		for i := range base {
			if base[i].Name == field.Name {
				base[i] = field
				replaced = true
				break
			}
		}
		if !replaced {
			base = append(base, field)
		}
	}
	return base
}

func (a *Accessor) newField(owner reflect.Type, sf reflect.StructField, index []int) Field {
	field := Field{
		Name:           sf.Name,
		SerializedName: sf.Name,
		Type:           sf.Type,
		Owner:          owner,
		Index:          index,
		Exported:       sf.IsExported(),
		Tag:            sf.Tag,
	}
	if name, ok := a.serializedName(sf); ok {
		field.SerializedName = name
		field.Annotated = true
	}
	if !field.Exported {
		field.xField = xunsafe.NewField(sf)
	}
	return field
}

func (a *Accessor) serializedName(sf reflect.StructField) (string, bool) {
	if sf.Tag == "" {
		return "", false
	}
	tags, err := structtag.Parse(string(sf.Tag))
	if err != nil {
		a.logger.Debug("ignoring malformed struct tag", zap.String("field", sf.Name), zap.Error(err))
		return "", false
	}
	for _, key := range a.tags {
		tag, err := tags.Get(key)
		if err != nil || tag.Name == "" || tag.Name == "-" {
			continue
		}
		return tag.Name, true
	}
	return "", false
}

func structType(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	return t
}
