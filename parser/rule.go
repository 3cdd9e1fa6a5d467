package parser

import (
	"encoding"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gopkg.in/inf.v0"

	"github.com/viant/beanutil/fault"
)

// Rule converts text into a value of one target type
type Rule interface {
	Parse(text string) (interface{}, error)
}

// RuleFunc is a sugar enabling to define a Rule as a function
type RuleFunc func(text string) (interface{}, error)

// Parse calls the RuleFunc function
func (f RuleFunc) Parse(text string) (interface{}, error) {
	return f(text)
}

// Char is a single Unicode code point. It exists as a target type of its own
// since rune is an alias of int32, which parses as an integer.
type Char rune

func (c Char) String() string {
	return string(rune(c))
}

var (
	charType            = reflect.TypeOf(Char(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

func builtinRules(timeLayout string) map[reflect.Type]Rule {
	rules := []struct {
		t    reflect.Type
		rule Rule
	}{
		{reflect.TypeOf(""), RuleFunc(parseString)},
		{charType, RuleFunc(parseChar)},
		{reflect.TypeOf(false), RuleFunc(parseBool)},
		{reflect.TypeOf(int8(0)), signed[int8](8)},
		{reflect.TypeOf(int16(0)), signed[int16](16)},
		{reflect.TypeOf(int32(0)), signed[int32](32)},
		{reflect.TypeOf(int64(0)), signed[int64](64)},
		{reflect.TypeOf(0), signed[int](strconv.IntSize)},
		{reflect.TypeOf(uint8(0)), unsigned[uint8](8)},
		{reflect.TypeOf(uint16(0)), unsigned[uint16](16)},
		{reflect.TypeOf(uint32(0)), unsigned[uint32](32)},
		{reflect.TypeOf(uint64(0)), unsigned[uint64](64)},
		{reflect.TypeOf(uint(0)), unsigned[uint](strconv.IntSize)},
		{reflect.TypeOf(float32(0)), float[float32](32)},
		{reflect.TypeOf(float64(0)), float[float64](64)},
		{reflect.TypeOf(&big.Int{}), RuleFunc(parseBigInt)},
		{reflect.TypeOf(&inf.Dec{}), RuleFunc(parseDecimal)},
		{reflect.TypeOf(uuid.UUID{}), RuleFunc(parseUUID)},
		{reflect.TypeOf(time.Duration(0)), RuleFunc(parseDuration)},
		{reflect.TypeOf(time.Time{}), timeRule(timeLayout)},
	}
	ret := make(map[reflect.Type]Rule, len(rules))
	for _, r := range rules {
		ret[r.t] = r.rule
	}
	return ret
}

func malformed(text string, t reflect.Type, cause error) error {
	if cause == nil {
		return fault.InvalidArgument("cannot parse %q as %v", text, t)
	}
	return fault.InvalidArgument("cannot parse %q as %v: %v", text, t, cause)
}

func parseString(text string) (interface{}, error) {
	return text, nil
}

func parseChar(text string) (interface{}, error) {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 || size != len(text) || (r == utf8.RuneError && size == 1) {
		return nil, fault.InvalidArgument("%q is not a single character", text)
	}
	return Char(r), nil
}

func parseBool(text string) (interface{}, error) {
	switch strings.ToLower(text) {
	case "true", "t":
		return true, nil
	case "false", "f":
		return false, nil
	}
	return nil, malformed(text, reflect.TypeOf(false), nil)
}

func signed[T int8 | int16 | int32 | int64 | int](bits int) RuleFunc {
	return func(text string) (interface{}, error) {
		v, err := strconv.ParseInt(text, 10, bits)
		if err != nil {
			return nil, malformed(text, reflect.TypeOf(T(0)), err)
		}
		return T(v), nil
	}
}

func unsigned[T uint8 | uint16 | uint32 | uint64 | uint](bits int) RuleFunc {
	return func(text string) (interface{}, error) {
		v, err := strconv.ParseUint(text, 10, bits)
		if err != nil {
			return nil, malformed(text, reflect.TypeOf(T(0)), err)
		}
		return T(v), nil
	}
}

func float[T float32 | float64](bits int) RuleFunc {
	return func(text string) (interface{}, error) {
		v, err := strconv.ParseFloat(text, bits)
		if err != nil {
			return nil, malformed(text, reflect.TypeOf(T(0)), err)
		}
		return T(v), nil
	}
}

func parseBigInt(text string) (interface{}, error) {
	v, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, malformed(text, reflect.TypeOf(v), nil)
	}
	return v, nil
}

func parseDecimal(text string) (interface{}, error) {
	v, ok := new(inf.Dec).SetString(text)
	if !ok {
		return nil, malformed(text, reflect.TypeOf(v), nil)
	}
	return v, nil
}

func parseUUID(text string) (interface{}, error) {
	v, err := uuid.Parse(text)
	if err != nil {
		return nil, malformed(text, reflect.TypeOf(v), err)
	}
	return v, nil
}

func parseDuration(text string) (interface{}, error) {
	v, err := time.ParseDuration(text)
	if err != nil {
		return nil, malformed(text, reflect.TypeOf(v), err)
	}
	return v, nil
}

func timeRule(layout string) RuleFunc {
	return func(text string) (interface{}, error) {
		v, err := time.Parse(layout, text)
		if err != nil {
			return nil, malformed(text, reflect.TypeOf(v), err)
		}
		return v, nil
	}
}

// pointerRule boxes the result of the element rule
func pointerRule(elem reflect.Type, rule Rule) RuleFunc {
	return func(text string) (interface{}, error) {
		v, err := rule.Parse(text)
		if err != nil {
			return nil, err
		}
		value, err := conform(v, elem)
		if err != nil {
			return nil, err
		}
		ptr := reflect.New(elem)
		ptr.Elem().Set(value)
		return ptr.Interface(), nil
	}
}

// textRule decodes with encoding.TextUnmarshaler, t is the type whose pointer implements it
func textRule(t reflect.Type, asPointer bool) RuleFunc {
	return func(text string) (interface{}, error) {
		ptr := reflect.New(t)
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text)); err != nil {
			return nil, malformed(text, t, err)
		}
		if asPointer {
			return ptr.Interface(), nil
		}
		return ptr.Elem().Interface(), nil
	}
}
