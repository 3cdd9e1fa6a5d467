package property

import "go.uber.org/zap"

// Option configures an Accessor
type Option func(a *Accessor)

// WithTags sets the struct tags consulted, in order, for serialization names (json by default)
func WithTags(tags ...string) Option {
	return func(a *Accessor) {
		if len(tags) > 0 {
			a.tags = tags
		}
	}
}

// WithUnexported grants access to unexported fields
func WithUnexported(enabled bool) Option {
	return func(a *Accessor) {
		a.unexported = enabled
	}
}

// WithLogger sets the logger used to trace property resolution
func WithLogger(logger *zap.Logger) Option {
	return func(a *Accessor) {
		if logger != nil {
			a.logger = logger
		}
	}
}
