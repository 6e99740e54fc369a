package selection

import "github.com/YuminosukeSato/curvefit/pkg/log"

type options struct {
	logger log.Logger
}

// Option configures Sweep and Explorer
type Option func(*options)

// WithLogger sets the logger that receives per-fit debug records
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.GetLoggerWithName("selection")
	}
	return o
}
