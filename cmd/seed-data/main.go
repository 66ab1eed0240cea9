// Command seed-data generates a synthetic catalog + profile dataset for
// exercising the matching diagnostics. Output is non-deterministic by
// design (random headcount allocation); never use it where reproducible
// reports are expected.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/talentdir/skillscope/internal/dataset"
	"github.com/talentdir/skillscope/internal/seed"
	"github.com/talentdir/skillscope/pkg/logger"
)

// Default generation parameters.
const (
	defaultSectors  = 5
	defaultProfiles = 200
	defaultMaxSkill = 6
)

func main() {
	var (
		sectors    = flag.Int("sectors", defaultSectors, "Number of sectors to generate (capped by the name pool)")
		profiles   = flag.Int("profiles", defaultProfiles, "Number of synthetic profiles")
		maxSkills  = flag.Int("max-skills", defaultMaxSkill, "Maximum raw skills per profile")
		unlinked   = flag.Float64("unlinked", 0.2, "Share of occupations left without a job title link")
		outputFile = flag.String("output", "dataset.yaml", "Output YAML file")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	ctx := context.Background()
	log := logger.Get()

	cfg := seed.NewConfig()
	cfg.Sectors = *sectors
	cfg.Profiles = *profiles
	cfg.MaxSkillsPerProfile = *maxSkills
	cfg.UnlinkedOccupationShare = *unlinked
	cfg.OutputPath = *outputFile

	ds, err := seed.Generate(ctx, cfg)
	if err != nil {
		log.Error(ctx, "generation failed", logger.Error(err))
		return
	}

	if err := dataset.Save(cfg.OutputPath, ds); err != nil {
		log.Error(ctx, "failed to write dataset", logger.Error(err))
		return
	}

	log.Info(ctx, "dataset written",
		logger.String("path", cfg.OutputPath),
		logger.String("contents", seed.Describe(ds)),
	)
}
