package encoder

import (
	"log/slog"
	"time"
)

// Option configures a CommandEncoder during creation.
//
// Example:
//
//	enc, err := encoder.New(dev,
//		encoder.WithLabel("upload"),
//		encoder.WithLogger(logger),
//	)
type Option func(*options)

// options holds optional configuration for CommandEncoder creation.
type options struct {
	label         string
	logger        *slog.Logger
	submitTimeout time.Duration
}

// defaultOptions returns the default encoder options.
func defaultOptions() options {
	return options{
		label:         "texcopy",
		submitTimeout: DefaultSubmitTimeout,
	}
}

// WithLabel sets the debug label used for the HAL command encoder.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// WithLogger sets a logger for this encoder only. By default the encoder
// logs through texcopy.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithSubmitTimeout sets how long Submit waits for the GPU when the context
// has no deadline. Non-positive values keep the default.
func WithSubmitTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.submitTimeout = d
		}
	}
}
