// Command skillscope runs the skill-matching diagnostics over a dataset of
// catalog and profile records and prints a human-readable report.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/talentdir/skillscope/internal/analysis"
	"github.com/talentdir/skillscope/internal/app"
	"github.com/talentdir/skillscope/internal/config"
	"github.com/talentdir/skillscope/internal/dataset"
	"github.com/talentdir/skillscope/internal/domain/model"
	"github.com/talentdir/skillscope/pkg/logger"
)

// maxFlaggedRows caps how many rows of each flagged list the console report
// prints; the full lists stay available to hosts consuming the Report value.
const maxFlaggedRows = 25

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to sync logger: " + err.Error() + "\n")
		}
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	ds, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		log.Error(ctx, "failed to load dataset", logger.String("path", cfg.DatasetPath), logger.Error(err))
		return
	}
	if ds.IsEmpty() {
		// Not fatal: every profile skill will simply match nothing.
		log.Warn(ctx, "dataset has no catalog; all match sets will be empty",
			logger.String("path", cfg.DatasetPath),
		)
	}

	svc := app.New(
		app.WithLogger(log),
		app.WithWorkerCount(cfg.WorkerCount),
		app.WithMultiSectorThreshold(cfg.MultiSectorThreshold),
		app.WithHighMatchThreshold(cfg.HighMatchThreshold),
		app.WithNormalizationRatio(cfg.NormalizationRatio),
		app.WithFoldAccents(cfg.FoldAccents),
	)
	if err := svc.Start(ctx); err != nil {
		log.Error(ctx, "failed to start service", logger.Error(err))
		return
	}
	defer svc.Stop()

	if err := svc.BuildIndex(ctx, ds.Sectors, ds.JobTitles, ds.Skills, ds.Occupations); err != nil {
		log.Error(ctx, "failed to build catalog index", logger.Error(err))
		return
	}

	report, err := svc.Analyze(ctx, ds.Profiles)
	if err != nil {
		log.Error(ctx, "analysis failed", logger.Error(err))
		return
	}

	printReport(os.Stdout, report)
}

// printReport renders the diagnostic report for the console. Formatting is
// presentation only; hosts wanting JSON or log lines consume the Report
// value directly.
func printReport(w *os.File, report *analysis.Report) {
	fmt.Fprintln(w, "Skill matching diagnostics")
	fmt.Fprintln(w, "==========================")
	fmt.Fprintf(w, "Distinct normalized skills: %d\n", report.Summary.DistinctSkills)
	fmt.Fprintf(w, "Multi-sector skills (candidate false positives): %d\n", report.Summary.MultiSectorCount)
	fmt.Fprintf(w, "High-match skills (candidate generic terms):     %d\n", report.Summary.HighMatchCount)
	fmt.Fprintf(w, "Unusual normalization:                           %d\n", report.Summary.UnusualNormalizationCount)

	printFlagged(w, "Multi-sector skills", report.MultiSector, func(r *model.MatchRecord) string {
		return fmt.Sprintf("%d sectors (%s)", len(r.MatchedSectorNames), joinSorted(r.MatchedSectorNames))
	})
	printFlagged(w, "High-match skills", report.HighMatch, func(r *model.MatchRecord) string {
		return fmt.Sprintf("%d occupations", len(r.MatchedOccupationIDs))
	})
	printFlagged(w, "Unusual normalization", report.UnusualNormalization, func(r *model.MatchRecord) string {
		return fmt.Sprintf("%q -> %q", r.RawSample, string(r.Normalized))
	})
}

func printFlagged(w *os.File, title string, records []*model.MatchRecord, describe func(*model.MatchRecord) string) {
	if len(records) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
	for i, rec := range records {
		if i >= maxFlaggedRows {
			fmt.Fprintf(w, "  ... and %d more\n", len(records)-maxFlaggedRows)
			break
		}
		fmt.Fprintf(w, "  %-30s %s\n", string(rec.Normalized), describe(rec))
	}
}

func joinSorted(set map[string]struct{}) string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
