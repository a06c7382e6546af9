package armor

import (
	"errors"
	"io"
	"log/slog"
)

type options struct {
	logger *slog.Logger
}

// Option configures Encode and Decode.
// If any Option returns an error, then the operation ceases and the error is returned.
type Option = func(*options) error

// WithLogger sets the logger used to emit validation problems and debug information.
// By default, nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		o.logger = logger
		return nil
	}
}

func newOptions(opts ...Option) (*options, error) {
	o := &options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *options) logReport(op string, report Report) {
	for _, p := range report.Problems {
		o.logger.Warn("Validation problem",
			slog.String("op", op),
			slog.Int("offset", p.Offset),
			slog.Int("value", p.Value),
			slog.String("reason", p.Reason),
		)
	}
}
