package analysis_test

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/talentdir/skillscope/internal/analysis"
	"github.com/talentdir/skillscope/internal/domain/catalog"
	"github.com/talentdir/skillscope/internal/domain/model"
)

// sectorSpanIndex builds a catalog where the skill "documentation" is owned
// by one occupation in each of n sectors.
func sectorSpanIndex(n int) *catalog.Index {
	var (
		sectors     []model.Sector
		jobTitles   []model.JobTitle
		skills      []model.CatalogSkill
		occupations []model.Occupation
	)
	for i := 0; i < n; i++ {
		secID := model.ID(fmt.Sprintf("sec-%02d", i))
		jtID := model.ID(fmt.Sprintf("jt-%02d", i))
		sectors = append(sectors, model.Sector{ID: secID, Name: fmt.Sprintf("Sector %02d", i)})
		jobTitles = append(jobTitles, model.JobTitle{ID: jtID, SectorID: secID, Name: fmt.Sprintf("Title %02d", i)})
		skills = append(skills, model.CatalogSkill{ID: model.ID(fmt.Sprintf("cs-%02d", i)), JobTitleID: jtID, Name: "Documentation"})
		occupations = append(occupations, model.Occupation{
			ID:              model.ID(fmt.Sprintf("occ-%02d", i)),
			Sector:          fmt.Sprintf("Sector %02d", i),
			OccupationTitle: fmt.Sprintf("Title %02d", i),
			JobTitleID:      jtID,
		})
	}
	return catalog.Build(context.Background(), sectors, jobTitles, skills, occupations)
}

func TestAnalyze_MultiSectorFlag(t *testing.T) {
	Convey("Given a skill that matches occupations in four sectors", t, func() {
		idx := sectorSpanIndex(4)
		analyzer := analysis.New()
		profiles := []model.Profile{{ID: "p1", RawSkills: []string{"documentation"}}}

		Convey("When analyzing the corpus", func() {
			report, err := analyzer.Analyze(context.Background(), profiles, idx)
			So(err, ShouldBeNil)

			Convey("Then the skill is flagged as multi-sector", func() {
				So(report.Summary.MultiSectorCount, ShouldEqual, 1)
				So(len(report.MultiSector), ShouldEqual, 1)
				So(report.MultiSector[0].RawSample, ShouldEqual, "documentation")
			})
		})
	})

	Convey("Given the same skill spanning only three sectors", t, func() {
		idx := sectorSpanIndex(3)
		analyzer := analysis.New()
		profiles := []model.Profile{{ID: "p1", RawSkills: []string{"documentation"}}}

		Convey("When analyzing the corpus", func() {
			report, err := analyzer.Analyze(context.Background(), profiles, idx)
			So(err, ShouldBeNil)

			Convey("Then the boundary is strict: three sectors is not flagged", func() {
				So(report.Summary.MultiSectorCount, ShouldEqual, 0)
				So(len(report.MultiSector), ShouldEqual, 0)
			})
		})
	})
}

func TestAnalyze_HighMatchFlag(t *testing.T) {
	Convey("Given a skill owned by eleven occupations", t, func() {
		idx := sectorSpanIndex(11)
		analyzer := analysis.New()
		profiles := []model.Profile{{ID: "p1", RawSkills: []string{"documentation"}}}

		Convey("When analyzing the corpus", func() {
			report, err := analyzer.Analyze(context.Background(), profiles, idx)
			So(err, ShouldBeNil)

			Convey("Then it is flagged as overly generic", func() {
				So(report.Summary.HighMatchCount, ShouldEqual, 1)
				So(len(report.HighMatch[0].MatchedOccupationIDs), ShouldEqual, 11)
			})
		})
	})

	Convey("Given a skill owned by exactly ten occupations", t, func() {
		idx := sectorSpanIndex(10)
		analyzer := analysis.New()
		profiles := []model.Profile{{ID: "p1", RawSkills: []string{"documentation"}}}

		Convey("When analyzing the corpus", func() {
			report, err := analyzer.Analyze(context.Background(), profiles, idx)
			So(err, ShouldBeNil)

			Convey("Then ten is under the strict boundary and not flagged", func() {
				So(report.Summary.HighMatchCount, ShouldEqual, 0)
			})
		})
	})
}

func TestAnalyze_UnusualNormalizationFlag(t *testing.T) {
	Convey("Given raw strings with heavy punctuation and spacing", t, func() {
		idx := sectorSpanIndex(1)
		analyzer := analysis.New()
		profiles := []model.Profile{{
			ID: "p1",
			RawSkills: []string{
				"(((S...Q...L)))",  // key "sql", far below 70% of raw length
				"documentation",    // key identical to raw, never flagged
				"  Data   Entry  ", // whitespace-heavy
			},
		}}

		Convey("When analyzing the corpus", func() {
			report, err := analyzer.Analyze(context.Background(), profiles, idx)
			So(err, ShouldBeNil)

			Convey("Then only the heavily-normalized strings are flagged", func() {
				So(report.Summary.UnusualNormalizationCount, ShouldEqual, 2)
			})

			Convey("And the most-shrunk string sorts first", func() {
				So(report.UnusualNormalization[0].RawSample, ShouldEqual, "(((S...Q...L)))")
			})
		})
	})
}

func TestAnalyze_Dedupe(t *testing.T) {
	Convey("Given duplicate skills across profiles", t, func() {
		idx := sectorSpanIndex(2)
		analyzer := analysis.New()
		profiles := []model.Profile{
			{ID: "p1", RawSkills: []string{"Documentation", "documentation."}},
			{ID: "p2", RawSkills: []string{"DOCUMENTATION", "data entry"}},
		}

		Convey("When analyzing the corpus", func() {
			report, err := analyzer.Analyze(context.Background(), profiles, idx)
			So(err, ShouldBeNil)

			Convey("Then each distinct key is analyzed once", func() {
				So(report.Summary.DistinctSkills, ShouldEqual, 2)
			})

			Convey("And the first-seen raw string is the sample", func() {
				So(report.Records[0].RawSample, ShouldEqual, "Documentation")
			})
		})
	})
}

func TestAnalyze_Determinism(t *testing.T) {
	Convey("Given a fixed corpus and several worker counts", t, func() {
		idx := sectorSpanIndex(5)
		profiles := []model.Profile{
			{ID: "p1", RawSkills: []string{"documentation", "(((S...Q...L)))", "data entry"}},
			{ID: "p2", RawSkills: []string{"Documentation", "welding", "inspection!"}},
			{ID: "p3", RawSkills: []string{"  Documentation  ", "sql"}},
		}

		Convey("When analyzing repeatedly", func() {
			baseline, err := analysis.New(analysis.WithWorkerCount(1)).Analyze(context.Background(), profiles, idx)
			So(err, ShouldBeNil)

			Convey("Then every run yields an identical report", func() {
				for _, workers := range []int{1, 2, 8} {
					report, err := analysis.New(analysis.WithWorkerCount(workers)).Analyze(context.Background(), profiles, idx)
					So(err, ShouldBeNil)
					So(reflect.DeepEqual(report, baseline), ShouldBeTrue)
				}
			})
		})
	})
}

func TestAnalyze_EmptyInputs(t *testing.T) {
	Convey("Given an empty catalog", t, func() {
		idx := catalog.Build(context.Background(), nil, nil, nil, nil)
		analyzer := analysis.New()
		profiles := []model.Profile{{ID: "p1", RawSkills: []string{"anything at all"}}}

		Convey("When analyzing", func() {
			report, err := analyzer.Analyze(context.Background(), profiles, idx)
			So(err, ShouldBeNil)

			Convey("Then every skill simply matches nothing", func() {
				So(report.Summary.DistinctSkills, ShouldEqual, 1)
				So(len(report.Records[0].MatchedOccupationIDs), ShouldEqual, 0)
				So(report.Summary.MultiSectorCount, ShouldEqual, 0)
			})
		})
	})

	Convey("Given no profiles", t, func() {
		idx := sectorSpanIndex(2)
		analyzer := analysis.New()

		Convey("When analyzing", func() {
			report, err := analyzer.Analyze(context.Background(), nil, idx)
			So(err, ShouldBeNil)

			Convey("Then the report is empty", func() {
				So(report.Summary.DistinctSkills, ShouldEqual, 0)
				So(len(report.Records), ShouldEqual, 0)
			})
		})
	})
}

func TestAnalyze_Cancellation(t *testing.T) {
	Convey("Given a cancelled context", t, func() {
		idx := sectorSpanIndex(3)
		analyzer := analysis.New(analysis.WithWorkerCount(2))
		profiles := []model.Profile{
			{ID: "p1", RawSkills: []string{"documentation", "data entry", "welding", "inspection"}},
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Convey("When analyzing", func() {
			report, err := analyzer.Analyze(ctx, profiles, idx)

			Convey("Then analysis reports the cancellation", func() {
				So(err, ShouldNotBeNil)
				So(report, ShouldBeNil)
			})
		})
	})
}

func TestAnalyze_CustomThresholds(t *testing.T) {
	Convey("Given an analyzer with custom thresholds", t, func() {
		idx := sectorSpanIndex(3)
		analyzer := analysis.New(
			analysis.WithMultiSectorThreshold(2),
			analysis.WithHighMatchThreshold(2),
		)
		profiles := []model.Profile{{ID: "p1", RawSkills: []string{"documentation"}}}

		Convey("When analyzing", func() {
			report, err := analyzer.Analyze(context.Background(), profiles, idx)
			So(err, ShouldBeNil)

			Convey("Then three sectors clears a threshold of two", func() {
				So(report.Summary.MultiSectorCount, ShouldEqual, 1)
				So(report.Summary.HighMatchCount, ShouldEqual, 1)
			})
		})
	})
}
