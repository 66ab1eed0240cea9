// Package catalog builds the immutable lookup index joining sectors, job
// titles, catalog skills, and occupations. The index is built once per
// analysis run and is safe for concurrent reads afterwards.
package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/talentdir/skillscope/internal/domain/model"
	"github.com/talentdir/skillscope/internal/domain/normalize"
	"github.com/talentdir/skillscope/pkg/metrics"
)

// unknownSector is used for occupations with no denormalized sector name.
const unknownSector = "Unknown"

// Index holds the lookup structures for one analysis run. Construct it with
// Build; it must not be mutated afterwards.
type Index struct {
	sectorIDToName map[model.ID]string
	jobTitleSector map[model.ID]string
	jobTitleSkills map[model.ID]map[normalize.Key]struct{}

	occupationSkills map[model.ID]map[normalize.Key]struct{}
	occupationSector map[model.ID]string
	occupationIDs    []model.ID // sorted for deterministic iteration

	warnings []Warning
}

// Build constructs an Index from the in-memory catalog records.
//
// Occupations with an unresolved job-title link fall back to a
// case-insensitive exact match of their title against JobTitle names. The
// scan runs over job titles sorted by ID, so the first hit is deterministic
// even when several titles share a name across sectors.
//
// Data-quality findings are collected as warnings, never errors: a broken
// reference degrades the rollup, it does not abort the run.
func Build(_ context.Context, sectors []model.Sector, jobTitles []model.JobTitle, skills []model.CatalogSkill, occupations []model.Occupation, opts ...Option) *Index {
	cfg := newBuildConfig(opts...)

	idx := &Index{
		sectorIDToName:   make(map[model.ID]string, len(sectors)),
		jobTitleSector:   make(map[model.ID]string, len(jobTitles)),
		jobTitleSkills:   make(map[model.ID]map[normalize.Key]struct{}, len(jobTitles)),
		occupationSkills: make(map[model.ID]map[normalize.Key]struct{}, len(occupations)),
		occupationSector: make(map[model.ID]string, len(occupations)),
		occupationIDs:    make([]model.ID, 0, len(occupations)),
	}

	for _, s := range sectors {
		idx.sectorIDToName[s.ID] = s.Name
	}

	// Job titles with an unresolvable sector are omitted from sector rollups
	// but still carry their skill sets.
	for _, jt := range jobTitles {
		name, ok := idx.sectorIDToName[jt.SectorID]
		if !ok {
			idx.warn(Warning{
				Kind:       WarnUnresolvedSector,
				JobTitleID: jt.ID,
				Detail:     "job title " + jt.Name + " references a missing sector",
			})
			continue
		}
		idx.jobTitleSector[jt.ID] = name
	}

	for _, cs := range skills {
		set, ok := idx.jobTitleSkills[cs.JobTitleID]
		if !ok {
			set = make(map[normalize.Key]struct{})
			idx.jobTitleSkills[cs.JobTitleID] = set
		}
		key := cfg.normalizer.Key(cs.Name)
		if key.Empty() {
			continue
		}
		set[key] = struct{}{}
	}

	// Stable order for the fallback title scan.
	sortedTitles := make([]model.JobTitle, len(jobTitles))
	copy(sortedTitles, jobTitles)
	sort.Slice(sortedTitles, func(i, j int) bool { return sortedTitles[i].ID < sortedTitles[j].ID })

	for _, occ := range occupations {
		idx.occupationIDs = append(idx.occupationIDs, occ.ID)

		sector := occ.Sector
		if sector == "" {
			sector = unknownSector
		}
		idx.occupationSector[occ.ID] = sector

		skillSet := idx.resolveOccupationSkills(occ, sortedTitles)
		if skillSet == nil {
			skillSet = map[normalize.Key]struct{}{}
			idx.warn(Warning{
				Kind:         WarnUnresolvedOccupation,
				OccupationID: occ.ID,
				Detail:       "occupation " + occ.OccupationTitle + " has no resolvable job title; it will never match",
			})
		}
		idx.occupationSkills[occ.ID] = skillSet
	}

	sort.Slice(idx.occupationIDs, func(i, j int) bool { return idx.occupationIDs[i] < idx.occupationIDs[j] })

	metrics.UpdateCatalogSectors(len(sectors))
	metrics.UpdateCatalogJobTitles(len(jobTitles))
	metrics.UpdateCatalogSkills(len(skills))
	metrics.UpdateCatalogOccupations(len(occupations))

	return idx
}

// resolveOccupationSkills returns the skill set for an occupation, or nil
// when neither the direct link nor the title fallback resolves.
func (idx *Index) resolveOccupationSkills(occ model.Occupation, sortedTitles []model.JobTitle) map[normalize.Key]struct{} {
	if occ.JobTitleID != "" {
		if set, ok := idx.jobTitleSkills[occ.JobTitleID]; ok {
			return set
		}
	}
	// Fallback: first case-insensitive exact title match wins.
	for _, jt := range sortedTitles {
		if strings.EqualFold(jt.Name, occ.OccupationTitle) {
			if set, ok := idx.jobTitleSkills[jt.ID]; ok {
				return set
			}
			return nil
		}
	}
	return nil
}

func (idx *Index) warn(w Warning) {
	idx.warnings = append(idx.warnings, w)
}

// SkillsFor returns the normalized skill set for an occupation. The returned
// map is shared and must not be mutated.
func (idx *Index) SkillsFor(id model.ID) map[normalize.Key]struct{} {
	return idx.occupationSkills[id]
}

// SectorFor returns the sector name for an occupation, or the empty string
// for an unknown occupation id.
func (idx *Index) SectorFor(id model.ID) string {
	return idx.occupationSector[id]
}

// OccupationIDs returns all occupation ids in stable sorted order. The
// returned slice is shared and must not be mutated.
func (idx *Index) OccupationIDs() []model.ID {
	return idx.occupationIDs
}

// SectorNameByID resolves a sector id to its name via the taxonomy.
func (idx *Index) SectorNameByID(id model.ID) (string, bool) {
	name, ok := idx.sectorIDToName[id]
	return name, ok
}

// SectorForJobTitle returns the sector name a job title rolls up to, if its
// sector reference resolved at build time.
func (idx *Index) SectorForJobTitle(id model.ID) (string, bool) {
	name, ok := idx.jobTitleSector[id]
	return name, ok
}

// JobTitleSkills returns the cached normalized skill set for a job title.
// The returned map is shared and must not be mutated.
func (idx *Index) JobTitleSkills(id model.ID) map[normalize.Key]struct{} {
	return idx.jobTitleSkills[id]
}

// Warnings returns the data-quality findings collected during Build, for the
// driver to surface.
func (idx *Index) Warnings() []Warning {
	return idx.warnings
}

// OccupationCount returns the number of occupations in the index.
func (idx *Index) OccupationCount() int {
	return len(idx.occupationIDs)
}
