// Package metrics provides Prometheus metrics for the skillscope matching
// engine. The engine itself performs no I/O, so a host embedding it exposes
// the registry however it likes; batch drivers can simply ignore it.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the matching engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Catalog metrics - size of the taxonomy the index was built from
	catalogSectors     prometheus.Gauge
	catalogJobTitles   prometheus.Gauge
	catalogSkills      prometheus.Gauge
	catalogOccupations prometheus.Gauge

	// Matching metrics - what the aggregator actually did
	skillsNormalized prometheus.Counter
	skillsMatched    prometheus.Counter
	exactMatches     prometheus.Counter
	fuzzyMatches     prometheus.Counter
	emptyKeysSkipped prometheus.Counter
	matchLatency     prometheus.Histogram

	// Analysis metrics - per-run corpus diagnostics
	profilesAnalyzed prometheus.Counter
	duplicateSkills  prometheus.Counter
	distinctSkills   prometheus.Gauge
	flaggedSkills    *prometheus.GaugeVec
	analysisDuration prometheus.Histogram

	// Worker metrics - parallel matching pool
	workerCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "skillscope",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.catalogSectors = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_sectors",
		Help:      "Number of sectors in the catalog index",
	})

	m.catalogJobTitles = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_job_titles",
		Help:      "Number of job titles in the catalog index",
	})

	m.catalogSkills = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_skills",
		Help:      "Number of catalog skills in the catalog index",
	})

	m.catalogOccupations = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_occupations",
		Help:      "Number of occupations in the catalog index",
	})

	m.skillsNormalized = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "skills_normalized_total",
		Help:      "Total number of raw profile skills normalized",
	})

	m.skillsMatched = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "skills_matched_total",
		Help:      "Total number of profile skills that matched at least one occupation",
	})

	m.exactMatches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "exact_matches_total",
		Help:      "Total number of skill/occupation matches decided by exact key equality",
	})

	m.fuzzyMatches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fuzzy_matches_total",
		Help:      "Total number of skill/occupation matches decided by fuzzy containment",
	})

	m.emptyKeysSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "empty_keys_skipped_total",
		Help:      "Total number of profile skills that normalized to the empty key",
	})

	m.matchLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "match_latency_milliseconds",
		Help:      "Histogram of per-skill catalog scan latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.profilesAnalyzed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "profiles_analyzed_total",
		Help:      "Total number of profiles consumed by the diagnostics analyzer",
	})

	m.duplicateSkills = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "duplicate_skills_total",
		Help:      "Total number of raw skills skipped because their key was already seen",
	})

	m.distinctSkills = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "distinct_skills",
		Help:      "Distinct normalized skills in the last analysis run",
	})

	m.flaggedSkills = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "flagged_skills",
			Help:      "Skills flagged by the diagnostics analyzer in the last run, by flag",
		},
		[]string{"flag"},
	)

	m.analysisDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analysis_duration_milliseconds",
		Help:      "Histogram of full corpus analysis duration in milliseconds",
		Buckets:   []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000},
	})

	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_count",
		Help:      "Number of matching workers in the analysis pool",
	})
}

// Catalog metrics functions.

// UpdateCatalogSectors sets the number of sectors in the catalog index.
func UpdateCatalogSectors(count int) {
	globalManager.catalogSectors.Set(float64(count))
}

// UpdateCatalogJobTitles sets the number of job titles in the catalog index.
func UpdateCatalogJobTitles(count int) {
	globalManager.catalogJobTitles.Set(float64(count))
}

// UpdateCatalogSkills sets the number of catalog skills in the catalog index.
func UpdateCatalogSkills(count int) {
	globalManager.catalogSkills.Set(float64(count))
}

// UpdateCatalogOccupations sets the number of occupations in the catalog index.
func UpdateCatalogOccupations(count int) {
	globalManager.catalogOccupations.Set(float64(count))
}

// Matching metrics functions.

// RecordSkillNormalized increments the normalized skills counter.
func RecordSkillNormalized() {
	globalManager.skillsNormalized.Inc()
}

// RecordSkillMatched increments the matched skills counter.
func RecordSkillMatched() {
	globalManager.skillsMatched.Inc()
}

// RecordExactMatch increments the exact match counter.
func RecordExactMatch() {
	globalManager.exactMatches.Inc()
}

// RecordFuzzyMatch increments the fuzzy containment match counter.
func RecordFuzzyMatch() {
	globalManager.fuzzyMatches.Inc()
}

// RecordEmptyKeySkipped increments the empty key counter.
func RecordEmptyKeySkipped() {
	globalManager.emptyKeysSkipped.Inc()
}

// RecordMatchLatency records per-skill catalog scan latency in milliseconds.
func RecordMatchLatency(latencyMs float64) {
	globalManager.matchLatency.Observe(latencyMs)
}

// Analysis metrics functions.

// RecordProfileAnalyzed increments the analyzed profiles counter.
func RecordProfileAnalyzed() {
	globalManager.profilesAnalyzed.Inc()
}

// RecordDuplicateSkill increments the duplicate skills counter.
func RecordDuplicateSkill() {
	globalManager.duplicateSkills.Inc()
}

// UpdateDistinctSkills sets the distinct normalized skill count for the run.
func UpdateDistinctSkills(count int) {
	globalManager.distinctSkills.Set(float64(count))
}

// UpdateFlaggedSkills sets the flagged skill count for one flag category.
func UpdateFlaggedSkills(flag string, count int) {
	globalManager.flaggedSkills.WithLabelValues(flag).Set(float64(count))
}

// RecordAnalysisDuration records full corpus analysis duration in milliseconds.
func RecordAnalysisDuration(durationMs float64) {
	globalManager.analysisDuration.Observe(durationMs)
}

// Worker metrics functions.

// UpdateWorkerCount sets the number of matching workers.
func UpdateWorkerCount(count int) {
	globalManager.workerCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
