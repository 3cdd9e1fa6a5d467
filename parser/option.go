package parser

import (
	"reflect"

	"go.uber.org/zap"
)

// Option configures a Parser
type Option func(p *Parser)

// WithTimeLayout sets the layout of the time.Time rule, time.RFC3339 by default
func WithTimeLayout(layout string) Option {
	return func(p *Parser) {
		if layout != "" {
			p.timeLayout = layout
		}
	}
}

// WithLogger sets the logger used to trace rule resolution
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithRule registers a rule for t, overriding a built-in one
func WithRule(t reflect.Type, rule Rule) Option {
	return func(p *Parser) {
		if p.extra == nil {
			p.extra = map[reflect.Type]Rule{}
		}
		p.extra[t] = rule
	}
}
