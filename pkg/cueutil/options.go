// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize caps the size of a decoded CUE document (1 MiB).
const DefaultMaxFileSize int64 = 1 << 20

type (
	// Option customizes a Decode call.
	Option func(*options)

	options struct {
		filename    string
		maxFileSize int64
		concrete    bool
	}
)

func defaultOptions() options {
	return options{
		filename:    "<input>",
		maxFileSize: DefaultMaxFileSize,
	}
}

// WithFilename sets the name reported in error messages.
func WithFilename(name string) Option {
	return func(o *options) {
		if name != "" {
			o.filename = name
		}
	}
}

// WithMaxFileSize overrides DefaultMaxFileSize.
func WithMaxFileSize(size int64) Option {
	return func(o *options) { o.maxFileSize = size }
}

// WithConcrete requires every field of the unified value to be concrete.
// Leave it off for documents whose fields are all optional.
func WithConcrete(concrete bool) Option {
	return func(o *options) { o.concrete = concrete }
}
