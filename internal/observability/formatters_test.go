package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintExperience(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := types.ExperienceResult{
		Level:       types.LevelIntermediate,
		TotalMonths: 27,
		TotalYears:  2.25,
		RoleCalculations: []types.RoleDuration{
			{Title: "Data Analyst", Months: 20},
			{Title: "Reporting Intern", Months: 7},
		},
	}

	p.PrintExperience(result)
	output := buf.String()

	assert.Contains(t, output, "EXPERIENCE CLASSIFICATION")
	assert.Contains(t, output, "Intermediate")
	assert.Contains(t, output, "2.2 years (27 months)")
	assert.Contains(t, output, "Data Analyst (20 months)")
	assert.Contains(t, output, "Reporting Intern (7 months)")
}

func TestPrintGapAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	gap := &types.GapAnalysis{
		Skills: types.SkillsAnalysis{
			HasSkills:     []string{"Excel", "SQL"},
			MissingSkills: []string{"Power BI", "Python", "Statistics"},
		},
		Projects: types.ProjectsAnalysis{
			ProjectsToKeep:   []string{"Sales Dashboard"},
			ProjectsToRemove: []string{"Android App"},
		},
		Keywords: types.KeywordsAnalysis{
			MissingKeywords: []string{"dashboards", "ETL"},
		},
		Scores: types.Scores{JobRelevanceScore: 55, ATSScore: 62},
	}

	p.PrintGapAnalysis(gap)
	output := buf.String()

	assert.Contains(t, output, "GAP ANALYSIS")
	assert.Contains(t, output, "Job Relevance: 55/100")
	assert.Contains(t, output, "ATS Score:     62/100")
	assert.Contains(t, output, "Excel, SQL")
	assert.Contains(t, output, "Power BI")
	assert.Contains(t, output, "keep 1, remove 1")
	assert.Contains(t, output, "Missing keywords: 2")
}

func TestPrintGapAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGapAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintGapAnalysis_CapsMissingSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	gap := &types.GapAnalysis{
		Skills: types.SkillsAnalysis{
			MissingSkills: []string{"Power BI", "Python", "NumPy", "Pandas", "Seaborn", "DAX", "EDA"},
		},
	}

	p.PrintGapAnalysis(gap)
	output := buf.String()

	assert.Contains(t, output, "Seaborn")
	assert.NotContains(t, output, "DAX")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintStrategy(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	strategy := &types.Strategy{
		SkillStrategy: types.SkillStrategy{
			SkillsToEnhance: []types.SkillEnhancement{
				{Base: "Excel", Enhanced: "Excel (Power Query, Pivot Tables)"},
			},
			SkillsToAdd: []types.SkillAddition{
				{Skill: "Power BI", Module: "Data Visualization & Power BI"},
			},
		},
		ProjectStrategy: types.ProjectStrategy{
			ProjectsRemoved: []string{"Android App"},
			ProjectsKept:    []string{"Sales Dashboard"},
			ProjectsAdded: []types.ProjectAddition{
				{Name: "Marketing Funnel Dashboard"},
			},
			FinalProjectCount: 2,
		},
		CurriculumMapping: types.CurriculumMapping{
			ModulesUsed: []types.ModuleUsage{
				{Module: "Data Visualization & Power BI"},
			},
		},
	}

	p.PrintStrategy(strategy)
	output := buf.String()

	assert.Contains(t, output, "IMPROVEMENT STRATEGY")
	assert.Contains(t, output, "Enhance 1 skills")
	assert.Contains(t, output, "Excel →")
	assert.Contains(t, output, "Power BI")
	assert.Contains(t, output, "+1 added, 1 kept, 1 removed")
	assert.Contains(t, output, "Marketing Funnel Dashboard")
	assert.Contains(t, output, "Curriculum modules used: 1")
}

func TestPrintStrategy_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStrategy(nil)

	assert.Empty(t, buf.String())
}

func TestPrintClassification(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.ClassificationResult{
		Classification: types.Classification{
			SkillsEnhanced: []types.SkillChange{
				{Original: "Excel", Improved: "Excel (DAX)"},
			},
			SkillsAdded:   []string{"Power BI", "Python"},
			ProjectsAdded: []string{"Churn Analysis"},
		},
		JobRelevanceScore:    82,
		ATSScore:             88,
		EstimatedImprovement: 27,
	}

	p.PrintClassification(result)
	output := buf.String()

	assert.Contains(t, output, "CHANGE CLASSIFICATION")
	assert.Contains(t, output, "Job Relevance: 82/100")
	assert.Contains(t, output, "ATS Score:     88/100")
	assert.Contains(t, output, "Estimated improvement: +27")
	assert.Contains(t, output, "Enhanced 1 skills")
	assert.Contains(t, output, "Power BI, Python")
	assert.Contains(t, output, "Churn Analysis")
}

func TestPrintClassification_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintClassification(nil)

	assert.Empty(t, buf.String())
}

func TestPrintMarketStats(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	stats := types.MarketStats{
		JobsAnalyzed: 1247,
		TopSkills: []types.SkillDemand{
			{Skill: "Excel", Percentage: 91.01, Demand: "Critical"},
			{Skill: "SQL", Percentage: 84.5, Demand: "Critical"},
		},
		ResumeHasCount:       1,
		CurriculumCoverCount: 2,
	}

	p.PrintMarketStats(stats)
	output := buf.String()

	assert.Contains(t, output, "JOB MARKET SNAPSHOT")
	assert.Contains(t, output, "Jobs analyzed: 1247")
	assert.Contains(t, output, "Excel")
	assert.Contains(t, output, "91.01% of postings, demand: Critical")
	assert.Contains(t, output, "Resume covers:     1 of 2")
	assert.Contains(t, output, "Curriculum covers: 2 of 2")
}

func TestPrintMarketStats_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMarketStats(types.MarketStats{})

	assert.Empty(t, buf.String())
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	gap := &types.GapAnalysis{
		Skills: types.SkillsAnalysis{
			MissingSkills: []string{"A very long skill name that should be truncated to fit inside the box"},
		},
	}

	p.PrintGapAnalysis(gap)
	output := buf.String()

	// Should contain box characters
	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.Contains(t, output, "...")
}
