package seed

import "fmt"

// Default generation sizes.
const (
	defaultSectors             = 5
	defaultProfiles            = 200
	defaultMaxSkillsPerProfile = 6
	defaultUnlinkedShare       = 0.2
)

// Config holds configuration for dataset generation.
type Config struct {
	Sectors                 int     // number of sectors to draw from the pool
	Profiles                int     // number of synthetic profiles
	MaxSkillsPerProfile     int     // upper bound on raw skills per profile
	UnlinkedOccupationShare float64 // share of occupations left without a job title link
	OutputPath              string  // where to write the YAML dataset
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Sectors:                 defaultSectors,
		Profiles:                defaultProfiles,
		MaxSkillsPerProfile:     defaultMaxSkillsPerProfile,
		UnlinkedOccupationShare: defaultUnlinkedShare,
		OutputPath:              "dataset.yaml",
	}
}

func (c *Config) validate() error {
	if c.Sectors < 1 {
		return fmt.Errorf("%w: sectors must be positive", ErrInvalidGenConfig)
	}
	if c.Profiles < 0 {
		return fmt.Errorf("%w: profiles must not be negative", ErrInvalidGenConfig)
	}
	if c.MaxSkillsPerProfile < 1 {
		return fmt.Errorf("%w: max skills per profile must be positive", ErrInvalidGenConfig)
	}
	if c.UnlinkedOccupationShare < 0 || c.UnlinkedOccupationShare > 1 {
		return fmt.Errorf("%w: unlinked occupation share must be in [0, 1]", ErrInvalidGenConfig)
	}
	return nil
}
