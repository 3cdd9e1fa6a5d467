package parser

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/viant/beanutil/fault"
	"github.com/viant/beanutil/internal/syncmap"
)

// ErrUnsupportedType reports a target type without a parse rule. Unlike
// fault.ErrInvalidArgument it calls for registering a rule, not for fixing input.
var ErrUnsupportedType = errors.New("unsupported type")

// Parser converts text into values of a requested type. It is safe for concurrent use.
type Parser struct {
	timeLayout string
	logger     *zap.Logger
	extra      map[reflect.Type]Rule
	rules      *syncmap.Map[reflect.Type, Rule]
	resolved   *syncmap.Map[reflect.Type, Rule]
	// mux orders registrations against stores into resolved; generation counts registrations
	mux        sync.RWMutex
	generation uint64
}

// New creates a Parser with the built-in rules
func New(options ...Option) *Parser {
	ret := &Parser{
		timeLayout: time.RFC3339,
		logger:     zap.NewNop(),
		rules:      syncmap.New[reflect.Type, Rule](),
		resolved:   syncmap.New[reflect.Type, Rule](),
	}
	for _, opt := range options {
		opt(ret)
	}
	for t, rule := range builtinRules(ret.timeLayout) {
		ret.rules.Set(t, rule)
	}
	for t, rule := range ret.extra {
		ret.rules.Set(t, rule)
	}
	ret.extra = nil
	return ret
}

// Register sets the rule for t, replacing any previous one, built-in rules included
func (p *Parser) Register(t reflect.Type, rule Rule) {
	p.mux.Lock()
	defer p.mux.Unlock()
	p.rules.Set(t, rule)
	p.resolved.Clear()
	p.generation++
}

// Types returns the types with a registered or built-in rule, sorted by name
func (p *Parser) Types() []reflect.Type {
	types := p.rules.Keys()
	sort.Slice(types, func(i, j int) bool {
		return types[i].String() < types[j].String()
	})
	return types
}

// Parse converts text into a value of type t
func (p *Parser) Parse(text string, t reflect.Type) (interface{}, error) {
	rule, err := p.Rule(t)
	if err != nil {
		return nil, err
	}
	return p.apply(rule, text, t)
}

// ParseOptional converts text into a value of type t; nil text yields the zero value of t
func (p *Parser) ParseOptional(text *string, t reflect.Type) (interface{}, error) {
	if t == nil {
		return nil, fault.InvalidArgument("target type is nil")
	}
	if text == nil {
		return reflect.Zero(t).Interface(), nil
	}
	return p.Parse(*text, t)
}

// ParseAll converts each text into a value of type elem and returns them as a []elem.
// The first failing element fails the whole call.
func (p *Parser) ParseAll(texts []string, elem reflect.Type) (interface{}, error) {
	rule, err := p.Rule(elem)
	if err != nil {
		return nil, err
	}
	result := reflect.MakeSlice(reflect.SliceOf(elem), len(texts), len(texts))
	for i, text := range texts {
		v, err := p.apply(rule, text, elem)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if v != nil {
			result.Index(i).Set(reflect.ValueOf(v))
		}
	}
	return result.Interface(), nil
}

// Rule returns the rule serving t
func (p *Parser) Rule(t reflect.Type) (Rule, error) {
	if t == nil {
		return nil, fault.InvalidArgument("target type is nil")
	}
	if rule, ok := p.resolved.Lookup(t); ok {
		return rule, nil
	}
	generation := p.currentGeneration()
	rule, err := p.resolve(t)
	if err != nil {
		return nil, err
	}
	p.cache(t, rule, generation)
	return rule, nil
}

func (p *Parser) currentGeneration() uint64 {
	p.mux.RLock()
	defer p.mux.RUnlock()
	return p.generation
}

// cache stores a rule resolved at generation unless a registration happened since
func (p *Parser) cache(t reflect.Type, rule Rule, generation uint64) bool {
	p.mux.RLock()
	defer p.mux.RUnlock()
	if generation != p.generation {
		return false
	}
	p.resolved.Set(t, rule)
	return true
}

func (p *Parser) resolve(t reflect.Type) (Rule, error) {
	if rule, ok := p.rules.Lookup(t); ok {
		return rule, nil
	}
	if t.Kind() == reflect.Ptr {
		if elem, err := p.Rule(t.Elem()); err == nil {
			p.logger.Debug("parse rule resolved", zap.Stringer("type", t), zap.String("strategy", "pointer"))
			return pointerRule(t.Elem(), elem), nil
		} else if !errors.Is(err, ErrUnsupportedType) {
			return nil, err
		}
		if t.Implements(textUnmarshalerType) {
			p.logger.Debug("parse rule resolved", zap.Stringer("type", t), zap.String("strategy", "text"))
			return textRule(t.Elem(), true), nil
		}
	}
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		p.logger.Debug("parse rule resolved", zap.Stringer("type", t), zap.String("strategy", "text"))
		return textRule(t, false), nil
	}
	p.logger.Debug("no parse rule", zap.Stringer("type", t))
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, t)
}

func (p *Parser) apply(rule Rule, text string, t reflect.Type) (interface{}, error) {
	v, err := rule.Parse(text)
	if err != nil {
		if fault.IsInvalidArgument(err) || errors.Is(err, ErrUnsupportedType) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: cannot parse %q as %v: %w", fault.ErrInvalidArgument, text, t, err)
	}
	value, err := conform(v, t)
	if err != nil {
		return nil, err
	}
	return value.Interface(), nil
}

// conform checks that a rule produced a value of type t, nil meaning the zero value
func conform(v interface{}, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(t), nil
	}
	value := reflect.ValueOf(v)
	if value.Type() == t {
		return value, nil
	}
	if value.Type().AssignableTo(t) {
		ret := reflect.New(t).Elem()
		ret.Set(value)
		return ret, nil
	}
	return reflect.Value{}, fmt.Errorf("rule for %v returned %v", t, value.Type())
}

// TypeNames returns the names of the types with a rule
func (p *Parser) TypeNames() []string {
	return lo.Map(p.Types(), func(t reflect.Type, _ int) string {
		return t.String()
	})
}
