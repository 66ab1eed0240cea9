package analysis

import "github.com/talentdir/skillscope/internal/domain/model"

// Flag names used in the report summary and in metrics labels.
const (
	FlagMultiSector          = "multi_sector"
	FlagHighMatch            = "high_match"
	FlagUnusualNormalization = "unusual_normalization"
)

// Summary holds the headline counts for one analysis run.
type Summary struct {
	DistinctSkills            int
	MultiSectorCount          int
	HighMatchCount            int
	UnusualNormalizationCount int
}

// Report is the diagnostic artifact produced by one analysis run. It is a
// read-only view for human review: nothing in the catalog or the profiles is
// corrected or removed. Identical inputs always produce an identical Report;
// there is no clock, randomness, or hidden state in it.
type Report struct {
	// Records holds every distinct normalized skill in first-seen order.
	Records []*model.MatchRecord

	// MultiSector lists skills matching occupations in more than the
	// configured number of sectors: candidate false positives.
	MultiSector []*model.MatchRecord

	// HighMatch lists skills matching more than the configured number of
	// occupations: candidate overly-generic terms.
	HighMatch []*model.MatchRecord

	// UnusualNormalization lists raw strings whose key lost more than the
	// configured share of characters: the pipeline may be too aggressive
	// for those inputs.
	UnusualNormalization []*model.MatchRecord

	Summary Summary
}
