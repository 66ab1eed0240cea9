package catalog

import "github.com/talentdir/skillscope/internal/domain/normalize"

// buildConfig carries Build-time configuration.
type buildConfig struct {
	normalizer *normalize.Normalizer
}

// Option applies a configuration option to Build.
type Option func(*buildConfig)

// WithNormalizer sets the normalizer used to derive catalog skill keys.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(c *buildConfig) {
		if n != nil {
			c.normalizer = n
		}
	}
}

func newBuildConfig(opts ...Option) *buildConfig {
	c := &buildConfig{
		normalizer: normalize.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
