// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize is the largest input accepted by ParseAndDecode when
// no override is given. Snapshot and config files are small; anything past
// this is almost certainly the wrong file.
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

type parseOptions struct {
	filename    string
	maxFileSize int64
	concrete    bool
}

// Option configures a ParseAndDecode call.
type Option func(*parseOptions)

func defaultOptions() parseOptions {
	return parseOptions{
		maxFileSize: DefaultMaxFileSize,
		concrete:    true,
	}
}

// WithFilename sets the filename used in error messages.
func WithFilename(name string) Option {
	return func(o *parseOptions) {
		o.filename = name
	}
}

// WithMaxFileSize overrides the input size limit.
func WithMaxFileSize(size int64) Option {
	return func(o *parseOptions) {
		o.maxFileSize = size
	}
}

// WithoutConcrete validates without requiring every field to be concrete.
// Used for partial inputs that are merged with defaults afterwards, such
// as config overlays.
func WithoutConcrete() Option {
	return func(o *parseOptions) {
		o.concrete = false
	}
}
