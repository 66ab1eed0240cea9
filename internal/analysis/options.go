package analysis

import (
	"github.com/talentdir/skillscope/internal/domain/normalize"
	"github.com/talentdir/skillscope/pkg/logger"
)

// Option applies a configuration option to the Analyzer.
type Option func(*Analyzer)

// WithNormalizer sets the normalizer used for profile skills. It must be the
// same normalizer the catalog index was built with, or exact matches will
// silently disappear.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(a *Analyzer) {
		if n != nil {
			a.normalizer = n
		}
	}
}

// WithWorkerCount sets the number of concurrent matching workers.
func WithWorkerCount(count int) Option {
	return func(a *Analyzer) {
		if count > 0 {
			a.workerCount = count
		}
	}
}

// WithMultiSectorThreshold sets the sector count above which a skill is
// flagged as a candidate false positive.
func WithMultiSectorThreshold(threshold int) Option {
	return func(a *Analyzer) {
		if threshold > 0 {
			a.multiSectorThreshold = threshold
		}
	}
}

// WithHighMatchThreshold sets the occupation count above which a skill is
// flagged as overly generic.
func WithHighMatchThreshold(threshold int) Option {
	return func(a *Analyzer) {
		if threshold > 0 {
			a.highMatchThreshold = threshold
		}
	}
}

// WithNormalizationRatio sets the normalized/raw length ratio below which a
// raw string is flagged for unusual normalization.
func WithNormalizationRatio(ratio float64) Option {
	return func(a *Analyzer) {
		if ratio > 0 && ratio <= 1 {
			a.normalizationRatio = ratio
		}
	}
}

// WithLogger sets a custom logger for the analyzer. Without one the analyzer
// stays silent, which keeps it usable before logging is initialized.
func WithLogger(l logger.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}
