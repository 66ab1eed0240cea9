package catalog

import "github.com/talentdir/skillscope/internal/domain/model"

// WarningKind classifies data-quality findings collected at build time.
type WarningKind string

// Warning kinds.
const (
	// WarnUnresolvedSector marks a job title whose sector reference is
	// dangling; it is excluded from sector rollups.
	WarnUnresolvedSector WarningKind = "unresolved_sector"

	// WarnUnresolvedOccupation marks an occupation with neither a valid job
	// title link nor a fallback title match; it carries an empty skill set.
	WarnUnresolvedOccupation WarningKind = "unresolved_occupation"
)

// Warning is a non-fatal data-quality finding. The engine keeps going; the
// driver decides how loudly to surface these.
type Warning struct {
	Kind         WarningKind
	JobTitleID   model.ID
	OccupationID model.ID
	Detail       string
}
