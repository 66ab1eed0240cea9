// Package seed generates synthetic catalog and profile datasets for
// exercising the matching engine and its diagnostics. The headcount
// allocation applies a random factor, so generated datasets are
// non-deterministic by design; nothing in this package may be used inside
// the matching core, which must stay reproducible.
package seed

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"

	"github.com/talentdir/skillscope/internal/dataset"
	"github.com/talentdir/skillscope/internal/domain/model"
	"github.com/talentdir/skillscope/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
)

// Headcount allocation bounds: each occupation receives a random share of
// its sector's headcount budget between these factors.
const (
	headcountBase      = 40
	headcountSpread    = 160
	allocationMinPct   = 50
	allocationRangePct = 100
	trainingDivisor    = 4
)

// Sector name pool with job titles and skills per title. Raw skill labels
// intentionally mix case, punctuation, and spacing so the normalizer has
// something to chew on.
var sectorPool = []struct {
	name   string
	titles map[string][]string
}{
	{
		name: "Healthcare",
		titles: map[string][]string{
			"Registered Nurse":   {"Patient Care", "medication administration", "IV Therapy", "Wound care."},
			"Medical Assistant":  {"Vital Signs", "phlebotomy", "EHR Documentation", "patient intake"},
			"Physical Therapist": {"rehabilitation", "Mobility Training", "manual therapy"},
		},
	},
	{
		name: "Information Technology",
		titles: map[string][]string{
			"Software Developer":    {"Programming", "code review", "Debugging", "unit testing"},
			"Systems Administrator": {"networking", "Server Maintenance", "backup management"},
			"Data Analyst":          {"data entry", "SQL", "Reporting", "data visualization"},
		},
	},
	{
		name: "Manufacturing",
		titles: map[string][]string{
			"Machine Operator":  {"equipment operation", "Quality Control", "preventive maintenance"},
			"Welder":            {"MIG welding", "blueprint reading", "metal fabrication"},
			"Quality Inspector": {"inspection", "Measurement", "documentation"},
		},
	},
	{
		name: "Hospitality",
		titles: map[string][]string{
			"Line Cook":        {"food preparation", "Knife Skills", "sanitation"},
			"Front Desk Agent": {"customer service", "Reservations", "conflict resolution"},
		},
	},
	{
		name: "Logistics",
		titles: map[string][]string{
			"Forklift Operator":    {"forklift operation", "Inventory Management", "safety procedures"},
			"Dispatch Coordinator": {"route planning", "Scheduling", "communication"},
		},
	},
}

// Profile skill variants keyed by a canonical label; the generator sprinkles
// these across profiles so the corpus has spacing/punctuation variety and a
// few known trouble-makers for the diagnostics to flag.
var profileSkillVariants = [][]string{
	{"Patient Care", "patient care.", "Patient   Care", "patient-care!"},
	{"data entry", "Data Entry.", "DATA ENTRY"},
	{"customer service", "Customer Service!", "customer  service"},
	{"communication", "Communication,", "COMMUNICATION"},
	{"documentation", "Documentation;", "documentation."},
	{"SQL", "sql", "S.Q.L."},
	{"quality control", "Quality Control", "quality-control"},
	{"safety procedures", "Safety Procedures!", "safety   procedures"},
	{"scheduling", "Scheduling", "scheduling..."},
	{"inspection", "Inspection?", "inspection"},
}

// randomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func randomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// randomInt returns a random int in [0, max).
func randomInt(max int) int {
	if max <= 0 {
		return 0
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(n.Int64())
}

// Generate builds a synthetic dataset from the name pools.
func Generate(ctx context.Context, cfg *Config) (*dataset.Dataset, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	logger.Get().Info(ctx, "generating synthetic dataset",
		logger.Int("sectors", cfg.Sectors),
		logger.Int("profiles", cfg.Profiles),
	)

	ds := &dataset.Dataset{}

	levels := []model.SkillLevel{
		model.SkillLevelFoundational,
		model.SkillLevelIntermediate,
		model.SkillLevelAdvanced,
	}

	for si := 0; si < cfg.Sectors && si < len(sectorPool); si++ {
		pool := sectorPool[si]
		sector := model.Sector{
			ID:           model.ID(uuid.New().String()),
			Name:         pool.name,
			DisplayOrder: si + 1,
		}
		ds.Sectors = append(ds.Sectors, sector)

		order := 0
		for titleName, skillNames := range pool.titles {
			order++
			jt := model.JobTitle{
				ID:           model.ID(uuid.New().String()),
				SectorID:     sector.ID,
				Name:         titleName,
				DisplayOrder: order,
			}
			ds.JobTitles = append(ds.JobTitles, jt)

			for _, sn := range skillNames {
				ds.Skills = append(ds.Skills, model.CatalogSkill{
					ID:         model.ID(uuid.New().String()),
					JobTitleID: jt.ID,
					Name:       sn,
				})
			}

			// One recruiting target per job title. The allocation factor is
			// random on purpose: targets model a negotiation outcome, not a
			// derived quantity.
			factor := float64(allocationMinPct+randomInt(allocationRangePct)) / 100.0
			headcount := int(float64(headcountBase+randomInt(headcountSpread)) * factor)
			occ := model.Occupation{
				ID:                   model.ID(uuid.New().String()),
				Sector:               sector.Name,
				OccupationTitle:      titleName,
				JobTitleID:           jt.ID,
				HeadcountTarget:      headcount,
				SkillLevel:           levels[randomInt(len(levels))],
				AnnualTrainingTarget: headcount / trainingDivisor,
			}
			// Leave a share of occupations unlinked so the title-match
			// fallback path sees real traffic.
			if randomFloat() < cfg.UnlinkedOccupationShare {
				occ.JobTitleID = ""
			}
			ds.Occupations = append(ds.Occupations, occ)
		}
	}

	for p := 0; p < cfg.Profiles; p++ {
		profile := model.Profile{ID: model.ID(uuid.New().String())}
		count := 1 + randomInt(cfg.MaxSkillsPerProfile)
		for s := 0; s < count; s++ {
			variants := profileSkillVariants[randomInt(len(profileSkillVariants))]
			profile.RawSkills = append(profile.RawSkills, variants[randomInt(len(variants))])
		}
		ds.Profiles = append(ds.Profiles, profile)
	}

	return ds, nil
}

// Describe returns a one-line summary of the generated dataset.
func Describe(ds *dataset.Dataset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d sectors, %d job titles, %d catalog skills, %d occupations, %d profiles",
		len(ds.Sectors), len(ds.JobTitles), len(ds.Skills), len(ds.Occupations), len(ds.Profiles))
	return b.String()
}
