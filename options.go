package rounded

import "log/slog"

// Option configures an Image during creation.
//
// Example:
//
//	img, err := rounded.New(surface, sink,
//	    rounded.WithVariant(rounded.LayeredVariant),
//	    rounded.WithParams(saved),
//	)
type Option func(*options)

// options holds optional configuration for Image creation.
type options struct {
	variant Variant
	params  Params
	logger  *slog.Logger
}

// defaultOptions returns the default image options.
func defaultOptions() options {
	return options{
		variant: ImageVariant,
		params:  DefaultParams(),
	}
}

// WithVariant selects the shader contract the image writes to.
// The default is ImageVariant.
func WithVariant(v Variant) Option {
	return func(o *options) {
		o.variant = v
	}
}

// WithParams sets the initial parameters instead of DefaultParams.
// They are validated against the surface extent before the first sync.
func WithParams(p Params) Option {
	return func(o *options) {
		o.params = p
	}
}

// WithLogger overrides the package logger for this image.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
