package vector

import (
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Option configures a DynamicArray at construction.
type Option func(*options)

type options struct {
	logger *zap.Logger
	name   string
}

// WithLogger makes the array report reallocations, rollbacks and releases
// at debug level. Each array built with a logger is tagged with its own
// array_id.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithName adds an "array" field to every log entry.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

var nopLogger = zap.NewNop()

func (o options) instanceLogger(elemType reflect.Type) *zap.Logger {
	if o.logger == nil {
		return nopLogger
	}
	fields := []zap.Field{
		zap.String("array_id", uuid.New().String()),
		zap.Stringer("elem_type", elemType),
	}
	if o.name != "" {
		fields = append(fields, zap.String("array", o.name))
	}
	return o.logger.With(fields...)
}
