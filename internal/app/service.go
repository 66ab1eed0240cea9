// Package app wires the matching engine together: normalizer, catalog
// index, and diagnostics analyzer, behind one service with a start/stop
// lifecycle for hosts to embed.
package app

import (
	"context"
	"sync"

	"github.com/talentdir/skillscope/internal/analysis"
	"github.com/talentdir/skillscope/internal/domain/catalog"
	"github.com/talentdir/skillscope/internal/domain/model"
	"github.com/talentdir/skillscope/internal/domain/normalize"
	"github.com/talentdir/skillscope/internal/domain/rollup"
	"github.com/talentdir/skillscope/pkg/logger"
)

// Default service configuration.
const (
	defaultWorkerCount = 4
)

// Service owns one analysis run's engine components. Build the index once
// with BuildIndex, then Analyze and MatchProfile share it read-only.
type Service struct {
	mu sync.RWMutex

	// Core components
	normalizer *normalize.Normalizer
	analyzer   *analysis.Analyzer
	index      *catalog.Index

	// Configuration
	workerCount          int
	multiSectorThreshold int
	highMatchThreshold   int
	normalizationRatio   float64
	foldAccents          bool

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of concurrent matching workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithMultiSectorThreshold sets the multi-sector flag threshold.
func WithMultiSectorThreshold(threshold int) Option {
	return func(s *Service) {
		if threshold > 0 {
			s.multiSectorThreshold = threshold
		}
	}
}

// WithHighMatchThreshold sets the high-match flag threshold.
func WithHighMatchThreshold(threshold int) Option {
	return func(s *Service) {
		if threshold > 0 {
			s.highMatchThreshold = threshold
		}
	}
}

// WithNormalizationRatio sets the unusual-normalization flag ratio.
func WithNormalizationRatio(ratio float64) Option {
	return func(s *Service) {
		if ratio > 0 && ratio <= 1 {
			s.normalizationRatio = ratio
		}
	}
}

// WithFoldAccents enables diacritic folding in the normalizer.
func WithFoldAccents(enabled bool) Option {
	return func(s *Service) {
		s.foldAccents = enabled
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:          defaultWorkerCount,
		multiSectorThreshold: 3,
		highMatchThreshold:   10,
		normalizationRatio:   0.7,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the engine components. It does not build the catalog
// index; call BuildIndex once the catalog records are materialized.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.normalizer = normalize.New(normalize.WithFoldAccents(s.foldAccents))
	s.analyzer = analysis.New(
		analysis.WithNormalizer(s.normalizer),
		analysis.WithWorkerCount(s.workerCount),
		analysis.WithMultiSectorThreshold(s.multiSectorThreshold),
		analysis.WithHighMatchThreshold(s.highMatchThreshold),
		analysis.WithNormalizationRatio(s.normalizationRatio),
		analysis.WithLogger(s.logger),
	)

	s.started = true
	s.logger.Info(ctx, "matching engine started",
		logger.Int("workers", s.workerCount),
		logger.Int("multiSectorThreshold", s.multiSectorThreshold),
		logger.Int("highMatchThreshold", s.highMatchThreshold),
		logger.Float64("normalizationRatio", s.normalizationRatio),
	)

	return nil
}

// Stop releases the engine components.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.index = nil
	s.started = false
	s.logger.Info(context.Background(), "matching engine stopped")
}

// BuildIndex constructs the catalog index for this run and logs any
// data-quality warnings it collected.
func (s *Service) BuildIndex(ctx context.Context, sectors []model.Sector, jobTitles []model.JobTitle, skills []model.CatalogSkill, occupations []model.Occupation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}

	idx := catalog.Build(ctx, sectors, jobTitles, skills, occupations,
		catalog.WithNormalizer(s.normalizer),
	)
	for _, w := range idx.Warnings() {
		s.logger.Warn(ctx, "catalog data-quality warning",
			logger.String("kind", string(w.Kind)),
			logger.String("detail", w.Detail),
		)
	}
	s.index = idx
	return nil
}

// Analyze runs the diagnostics analyzer over the profile corpus against the
// built index.
func (s *Service) Analyze(ctx context.Context, profiles []model.Profile) (*analysis.Report, error) {
	s.mu.RLock()
	idx := s.index
	analyzer := s.analyzer
	s.mu.RUnlock()

	if analyzer == nil || idx == nil {
		return nil, ErrNoIndex
	}
	return analyzer.Analyze(ctx, profiles, idx)
}

// MatchProfile matches one profile's raw skill list against the built index.
func (s *Service) MatchProfile(_ context.Context, rawSkills []string) ([]*model.MatchRecord, error) {
	s.mu.RLock()
	idx := s.index
	normalizer := s.normalizer
	s.mu.RUnlock()

	if idx == nil {
		return nil, ErrNoIndex
	}
	return rollup.MatchProfile(rawSkills, idx, normalizer), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
	}
	if s.index != nil {
		stats["occupations"] = s.index.OccupationCount()
		stats["warnings"] = len(s.index.Warnings())
	}
	return stats
}
