// Package analysis runs the matching engine over an entire profile corpus
// and produces a diagnostic report flagging overly-generic skills, unusual
// normalization, and match-count outliers.
package analysis

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/talentdir/skillscope/internal/domain/catalog"
	"github.com/talentdir/skillscope/internal/domain/dedupe"
	"github.com/talentdir/skillscope/internal/domain/model"
	"github.com/talentdir/skillscope/internal/domain/normalize"
	"github.com/talentdir/skillscope/internal/domain/rollup"
	"github.com/talentdir/skillscope/pkg/logger"
	"github.com/talentdir/skillscope/pkg/metrics"
)

// Default analyzer thresholds. A skill legitimately spanning more than three
// sectors is rare, and more than ten occupations usually means the term is
// generic rather than wrong.
const (
	defaultMultiSectorThreshold = 3
	defaultHighMatchThreshold   = 10
	defaultNormalizationRatio   = 0.7
	defaultWorkerCount          = 4
)

// Analyzer runs corpus-wide diagnostics against a built catalog index.
type Analyzer struct {
	normalizer           *normalize.Normalizer
	workerCount          int
	multiSectorThreshold int
	highMatchThreshold   int
	normalizationRatio   float64
	logger               logger.Logger
}

// New creates an Analyzer with configuration options.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		normalizer:           normalize.New(),
		workerCount:          defaultWorkerCount,
		multiSectorThreshold: defaultMultiSectorThreshold,
		highMatchThreshold:   defaultHighMatchThreshold,
		normalizationRatio:   defaultNormalizationRatio,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// pending is a distinct normalized skill awaiting catalog matching.
type pending struct {
	rawSample string
	key       normalize.Key
}

// Analyze runs the full diagnostic pass: a sequential corpus scan that
// dedupes normalized keys, a parallel catalog-matching phase over the
// distinct keys, and the flag computation.
//
// The scan phase is sequential on purpose: it fixes which raw string is the
// representative sample for each key, so repeated runs over the same corpus
// yield identical reports regardless of worker count. Only the expensive
// catalog scans run concurrently, each writing to its own pre-assigned slot
// against the read-only index.
func (a *Analyzer) Analyze(ctx context.Context, profiles []model.Profile, idx *catalog.Index) (*Report, error) {
	start := time.Now()

	distinct := a.scanCorpus(ctx, profiles)

	records, err := a.matchDistinct(ctx, distinct, idx)
	if err != nil {
		return nil, err
	}

	report := a.buildReport(records)

	metrics.UpdateDistinctSkills(report.Summary.DistinctSkills)
	metrics.UpdateFlaggedSkills(FlagMultiSector, report.Summary.MultiSectorCount)
	metrics.UpdateFlaggedSkills(FlagHighMatch, report.Summary.HighMatchCount)
	metrics.UpdateFlaggedSkills(FlagUnusualNormalization, report.Summary.UnusualNormalizationCount)
	metrics.RecordAnalysisDuration(float64(time.Since(start).Milliseconds()))

	if a.logger != nil {
		a.logger.Info(ctx, "analysis complete",
			logger.Int("profiles", len(profiles)),
			logger.Int("distinctSkills", report.Summary.DistinctSkills),
			logger.Int("multiSector", report.Summary.MultiSectorCount),
			logger.Int("highMatch", report.Summary.HighMatchCount),
			logger.Int("unusualNormalization", report.Summary.UnusualNormalizationCount),
		)
	}

	return report, nil
}

// scanCorpus walks every raw skill of every profile, keeping the first
// occurrence of each non-empty normalized key.
func (a *Analyzer) scanCorpus(ctx context.Context, profiles []model.Profile) []pending {
	tracker := dedupe.NewInMemoryTracker()
	var distinct []pending

	for _, p := range profiles {
		metrics.RecordProfileAnalyzed()
		for _, raw := range p.RawSkills {
			key := a.normalizer.Key(raw)
			metrics.RecordSkillNormalized()
			if key.Empty() {
				metrics.RecordEmptyKeySkipped()
				continue
			}
			if tracker.SeenAndRecord(ctx, key) {
				metrics.RecordDuplicateSkill()
				continue
			}
			distinct = append(distinct, pending{rawSample: raw, key: key})
		}
	}
	return distinct
}

// matchDistinct fans the distinct keys out over the worker pool. Every
// worker writes to its own slot, so no ordering or locking is needed.
func (a *Analyzer) matchDistinct(ctx context.Context, distinct []pending, idx *catalog.Index) ([]*model.MatchRecord, error) {
	records := make([]*model.MatchRecord, len(distinct))

	workerCount := a.workerCount
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(distinct) {
		workerCount = len(distinct)
	}
	metrics.UpdateWorkerCount(workerCount)

	indices := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				res := rollup.MatchSkill(distinct[i].key, idx)
				records[i] = &model.MatchRecord{
					RawSample:            distinct[i].rawSample,
					Normalized:           distinct[i].key,
					MatchedOccupationIDs: res.OccupationIDs,
					MatchedSectorNames:   res.SectorNames,
				}
			}
		}()
	}

	cancelled := false
feed:
	for i := range distinct {
		if ctx.Err() != nil {
			cancelled = true
			break
		}
		select {
		case <-ctx.Done():
			cancelled = true
			break feed
		case indices <- i:
		}
	}
	close(indices)
	wg.Wait()

	if cancelled {
		return nil, fmt.Errorf("analysis cancelled: %w", ctx.Err())
	}
	return records, nil
}

// buildReport computes the three flagged lists from the accumulated records.
// Each list is sorted descending by its flagged metric; ties break on the
// normalized key so repeated runs produce identical output.
func (a *Analyzer) buildReport(records []*model.MatchRecord) *Report {
	report := &Report{Records: records}

	for _, rec := range records {
		if len(rec.MatchedSectorNames) > a.multiSectorThreshold {
			report.MultiSector = append(report.MultiSector, rec)
		}
		if len(rec.MatchedOccupationIDs) > a.highMatchThreshold {
			report.HighMatch = append(report.HighMatch, rec)
		}
		if float64(len(rec.Normalized)) < float64(len(rec.RawSample))*a.normalizationRatio {
			report.UnusualNormalization = append(report.UnusualNormalization, rec)
		}
	}

	sortFlagged(report.MultiSector, func(r *model.MatchRecord) float64 {
		return float64(len(r.MatchedSectorNames))
	})
	sortFlagged(report.HighMatch, func(r *model.MatchRecord) float64 {
		return float64(len(r.MatchedOccupationIDs))
	})
	sortFlagged(report.UnusualNormalization, func(r *model.MatchRecord) float64 {
		// Share of characters the pipeline removed.
		if len(r.RawSample) == 0 {
			return 0
		}
		return 1 - float64(len(r.Normalized))/float64(len(r.RawSample))
	})

	report.Summary = Summary{
		DistinctSkills:            len(records),
		MultiSectorCount:          len(report.MultiSector),
		HighMatchCount:            len(report.HighMatch),
		UnusualNormalizationCount: len(report.UnusualNormalization),
	}
	return report
}

// sortFlagged orders records descending by metric, ascending by key on ties.
func sortFlagged(records []*model.MatchRecord, metric func(*model.MatchRecord) float64) {
	sort.SliceStable(records, func(i, j int) bool {
		mi, mj := metric(records[i]), metric(records[j])
		if mi != mj {
			return mi > mj
		}
		return records[i].Normalized < records[j].Normalized
	})
}
