// Package dataset loads and saves the in-memory record collections the
// engine consumes. The engine itself performs no I/O; this package is the
// boundary where the driver materializes catalog and profile data from YAML
// fixtures, standing in for the platform's persistence layer.
package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talentdir/skillscope/internal/domain/model"
)

// File permission for saved datasets.
const filePermission = 0o600

// Dataset bundles one run's worth of catalog and profile records.
type Dataset struct {
	Sectors     []model.Sector       `yaml:"sectors"`
	JobTitles   []model.JobTitle     `yaml:"job_titles"`
	Skills      []model.CatalogSkill `yaml:"catalog_skills"`
	Occupations []model.Occupation   `yaml:"occupations"`
	Profiles    []model.Profile      `yaml:"profiles"`
}

// Load reads and validates a dataset from a YAML file.
func Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadDataset, err)
	}

	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadDataset, err)
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Save writes the dataset to a YAML file.
func Save(path string, ds *Dataset) error {
	raw, err := yaml.Marshal(ds)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSaveDataset, err)
	}
	if err := os.WriteFile(path, raw, filePermission); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveDataset, err)
	}
	return nil
}

// Validate enforces the record invariants the engine assumes the persistence
// layer already guaranteed. Dangling references are not validated here; the
// catalog index tolerates them and reports them as data-quality warnings.
func (ds *Dataset) Validate() error {
	for _, occ := range ds.Occupations {
		if occ.HeadcountTarget < 0 {
			return fmt.Errorf("%w: occupation %s has negative headcount target", ErrInvalidDataset, occ.ID)
		}
		if occ.AnnualTrainingTarget < 0 {
			return fmt.Errorf("%w: occupation %s has negative annual training target", ErrInvalidDataset, occ.ID)
		}
		if occ.SkillLevel != "" && !occ.SkillLevel.Valid() {
			return fmt.Errorf("%w: occupation %s has unknown skill level %q", ErrInvalidDataset, occ.ID, occ.SkillLevel)
		}
	}
	return nil
}

// IsEmpty reports whether the dataset carries no catalog at all. An empty
// catalog is not an error for the engine (everything simply fails to match),
// but the driver should surface it as a configuration warning.
func (ds *Dataset) IsEmpty() bool {
	return len(ds.Sectors) == 0 && len(ds.JobTitles) == 0
}
