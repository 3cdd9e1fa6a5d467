package parser

import (
	"fmt"
	"reflect"

	"github.com/viant/beanutil/fault"
)

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Value parses text as T
func Value[T any](p *Parser, text string) (T, error) {
	var zero T
	v, err := p.Parse(text, typeOf[T]())
	if err != nil || v == nil {
		return zero, err
	}
	return v.(T), nil
}

// Optional parses text as T, nil text yields the zero value of T
func Optional[T any](p *Parser, text *string) (T, error) {
	var zero T
	if text == nil {
		return zero, nil
	}
	return Value[T](p, *text)
}

// Values parses every text as T, preserving order
func Values[T any](p *Parser, texts []string) ([]T, error) {
	v, err := p.ParseAll(texts, typeOf[T]())
	if err != nil {
		return nil, err
	}
	return v.([]T), nil
}

// RegisterFunc registers fn as the rule for T
func RegisterFunc[T any](p *Parser, fn func(text string) (T, error)) {
	p.Register(typeOf[T](), RuleFunc(func(text string) (interface{}, error) {
		v, err := fn(text)
		if err != nil {
			return nil, err
		}
		return v, nil
	}))
}

// RegisterEnum registers the rule for an enum type T; text has to match the
// String form of one of members exactly.
func RegisterEnum[T fmt.Stringer](p *Parser, members ...T) {
	t := typeOf[T]()
	byName := make(map[string]T, len(members))
	for _, member := range members {
		byName[member.String()] = member
	}
	p.Register(t, RuleFunc(func(text string) (interface{}, error) {
		member, ok := byName[text]
		if !ok {
			return nil, fault.InvalidArgument("%q is not a member of %v", text, t)
		}
		return member, nil
	}))
}
