package skipmap

import randv2 "math/rand/v2"

const (
	// DefaultMaxHeight caps how many levels a tower may span.
	DefaultMaxHeight = 12

	// DefaultBranchFactor is the reciprocal of the promotion
	// probability: on average one node in four at any level also
	// appears one level up.
	DefaultBranchFactor = 4
)

// Config holds construction parameters for a SkipList.
type Config struct {
	maxHeight    int
	branchFactor int
	src          randv2.Source
}

// NewConfig creates a Config with default values.
func NewConfig() Config {
	return Config{
		maxHeight:    DefaultMaxHeight,
		branchFactor: DefaultBranchFactor,
	}
}

// Option adjusts a Config. Options with out-of-range values are ignored.
type Option func(*Config)

// WithMaxHeight sets the maximum tower height.
func WithMaxHeight(h int) Option {
	return func(c *Config) {
		if h >= 1 {
			c.maxHeight = h
		}
	}
}

// WithBranchFactor sets the reciprocal of the level promotion
// probability.
func WithBranchFactor(b int) Option {
	return func(c *Config) {
		if b >= 2 {
			c.branchFactor = b
		}
	}
}

// WithRandSource injects the randomness behind tower-height sampling.
// Passing a seeded source makes tower sequences reproducible; separate
// lists never share generator state unless given the same source.
func WithRandSource(src randv2.Source) Option {
	return func(c *Config) {
		if src != nil {
			c.src = src
		}
	}
}
