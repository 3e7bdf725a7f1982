package env

import (
	"github.com/MKhiriev/go-conf-keeper/internal/logger"
)

// Option configures an [Env] at construction time.
type Option func(*options)

type options struct {
	value           any
	hasValue        bool
	def             any
	defaultProvider func() any
	valueProvider   func() any
	mandatory       bool
	tags            []string
	logger          *logger.Logger
}

// WithValue sets an explicit initial value that overrides the default. A
// compatible value already in the store still wins over it. A nil value is
// treated as absent.
func WithValue(v any) Option {
	return func(o *options) {
		if v == nil {
			return
		}
		o.value = v
		o.hasValue = true
	}
}

// WithDefault sets the compiled-in default. The default fixes the declared
// type of the cell; a one-element list declares a list cell whose element is
// used for padding.
func WithDefault(v any) Option {
	return func(o *options) {
		o.def = v
		o.defaultProvider = nil
	}
}

// WithDefaultProvider computes the default once, at construction. It
// replaces any value given with [WithDefault].
func WithDefaultProvider(fn func() any) Option {
	return func(o *options) {
		o.defaultProvider = fn
	}
}

// WithValueProvider turns the cell into a computed one: every read calls fn
// and the stored value is ignored.
func WithValueProvider(fn func() any) Option {
	return func(o *options) {
		o.valueProvider = fn
	}
}

// Mandatory marks the cell as required. The flag is advisory.
func Mandatory() Option {
	return func(o *options) {
		o.mandatory = true
	}
}

// WithTags attaches labels to the cell. The tag [TagIsEnabled] makes the
// cell boolean-coercing.
func WithTags(tags ...string) Option {
	return func(o *options) {
		o.tags = append(o.tags, tags...)
	}
}

// WithLogger sets the diagnostics sink. Cells without one log nowhere.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
