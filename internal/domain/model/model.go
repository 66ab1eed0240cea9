// Package model contains the catalog and profile records consumed by the
// matching engine. All records are read-only inputs owned by the platform's
// persistence layer; the engine never mutates them.
package model

import "github.com/talentdir/skillscope/internal/domain/normalize"

// ID identifies a catalog record. The platform issues uuid-shaped strings
// but the engine only relies on IDs being comparable and sortable.
type ID string

// SkillLevel classifies the depth of training an occupation targets.
type SkillLevel string

// Skill levels recognized by the recruiting pipeline.
const (
	SkillLevelFoundational SkillLevel = "foundational"
	SkillLevelIntermediate SkillLevel = "intermediate"
	SkillLevelAdvanced     SkillLevel = "advanced"
)

// Valid reports whether the skill level is one of the recognized values.
func (l SkillLevel) Valid() bool {
	switch l {
	case SkillLevelFoundational, SkillLevelIntermediate, SkillLevelAdvanced:
		return true
	default:
		return false
	}
}

// Sector is the root of the taxonomy, e.g. "Healthcare".
type Sector struct {
	ID           ID     `yaml:"id"`
	Name         string `yaml:"name"`
	DisplayOrder int    `yaml:"display_order"`
}

// JobTitle belongs to exactly one Sector and owns zero or more catalog skills.
type JobTitle struct {
	ID           ID     `yaml:"id"`
	SectorID     ID     `yaml:"sector_id"`
	Name         string `yaml:"name"`
	DisplayOrder int    `yaml:"display_order"`
}

// CatalogSkill is a raw taxonomy skill label attached to one JobTitle.
// Its normalized form is derived at index-build time, never stored.
type CatalogSkill struct {
	ID         ID     `yaml:"id"`
	JobTitleID ID     `yaml:"job_title_id"`
	Name       string `yaml:"name"`
}

// Occupation is a workforce-recruiting target record. JobTitleID is empty
// when the link was never established; the catalog index then falls back to
// a case-insensitive title match against JobTitle names.
type Occupation struct {
	ID                   ID         `yaml:"id"`
	Sector               string     `yaml:"sector"` // denormalized sector name, may be empty
	OccupationTitle      string     `yaml:"occupation_title"`
	JobTitleID           ID         `yaml:"job_title_id,omitempty"`
	HeadcountTarget      int        `yaml:"headcount_target"`
	SkillLevel           SkillLevel `yaml:"skill_level"`
	AnnualTrainingTarget int        `yaml:"annual_training_target"`
}

// Profile is the slice of a user profile the engine cares about: an ordered
// list of raw free-text skill strings, duplicates and all.
type Profile struct {
	ID        ID       `yaml:"id"`
	RawSkills []string `yaml:"raw_skills"`
}

// MatchRecord accumulates the match outcome for one distinct normalized
// profile skill across an analysis run. RawSample is the first raw string
// seen for the key and exists only for human-readable reporting.
type MatchRecord struct {
	RawSample            string
	Normalized           normalize.Key
	MatchedOccupationIDs map[ID]struct{}
	MatchedSectorNames   map[string]struct{}
}
