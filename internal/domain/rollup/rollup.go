// Package rollup aggregates per-skill match results up to the occupation and
// sector level. It is the read path of the engine: given one normalized
// profile skill and a built catalog index, it answers "which occupations and
// sectors does this skill count towards?".
package rollup

import (
	"time"

	"github.com/talentdir/skillscope/internal/domain/catalog"
	"github.com/talentdir/skillscope/internal/domain/match"
	"github.com/talentdir/skillscope/internal/domain/model"
	"github.com/talentdir/skillscope/internal/domain/normalize"
	"github.com/talentdir/skillscope/pkg/metrics"
)

// Result is the set of occupations and sectors one profile skill matched.
// A single skill can match several occupations across several sectors.
type Result struct {
	OccupationIDs map[model.ID]struct{}
	SectorNames   map[string]struct{}
}

// MatchSkill scans every occupation's skill set for a match against the
// given key. Empty keys never match anything; they are counted and skipped.
//
// The scan is O(occupations x skills-per-occupation). Catalog sizes are in
// the hundreds, so a plain scan beats the bookkeeping of an inverted index.
func MatchSkill(key normalize.Key, idx *catalog.Index) Result {
	res := Result{
		OccupationIDs: make(map[model.ID]struct{}),
		SectorNames:   make(map[string]struct{}),
	}
	if key.Empty() {
		metrics.RecordEmptyKeySkipped()
		return res
	}

	start := time.Now()
	for _, id := range idx.OccupationIDs() {
		skills := idx.SkillsFor(id)

		// Exact tier first: a direct set lookup, and it keeps the
		// exact/fuzzy counters deterministic.
		if _, ok := skills[key]; ok {
			metrics.RecordExactMatch()
			res.record(idx, id)
			continue
		}
		for sk := range skills {
			if match.IsMatch(key, sk) {
				metrics.RecordFuzzyMatch()
				res.record(idx, id)
				break
			}
		}
	}
	metrics.RecordMatchLatency(float64(time.Since(start).Milliseconds()))

	if len(res.OccupationIDs) > 0 {
		metrics.RecordSkillMatched()
	}
	return res
}

func (r *Result) record(idx *catalog.Index, id model.ID) {
	r.OccupationIDs[id] = struct{}{}
	r.SectorNames[idx.SectorFor(id)] = struct{}{}
}

// MatchProfile runs MatchSkill over a profile's raw skill list, deduplicating
// by normalized key. One MatchRecord is produced per distinct non-empty key,
// in first-appearance order, keeping the first raw string as the sample.
func MatchProfile(rawSkills []string, idx *catalog.Index, normalizer *normalize.Normalizer) []*model.MatchRecord {
	records := make([]*model.MatchRecord, 0, len(rawSkills))
	seen := make(map[normalize.Key]struct{}, len(rawSkills))

	for _, raw := range rawSkills {
		key := normalizer.Key(raw)
		metrics.RecordSkillNormalized()
		if key.Empty() {
			metrics.RecordEmptyKeySkipped()
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		res := MatchSkill(key, idx)
		records = append(records, &model.MatchRecord{
			RawSample:            raw,
			Normalized:           key,
			MatchedOccupationIDs: res.OccupationIDs,
			MatchedSectorNames:   res.SectorNames,
		})
	}
	return records
}
