package pipeline

import (
	"strings"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/market"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

const (
	// maxGapModules is how many gap-to-module matches the comparison shows.
	maxGapModules = 3
	// maxMissingConsidered caps how many missing skills are checked for a
	// module match.
	maxMissingConsidered = 10
)

// assembleReport builds the final response payload. Nothing mutates the
// report after this returns.
func assembleReport(doc *types.ResumeDocument, gap *types.GapAnalysis, strategy *types.Strategy, improvedText string, classification *types.ClassificationResult) *types.AnalysisReport {
	return &types.AnalysisReport{
		Original: types.OriginalSummary{
			ResumeText:        doc.Text,
			JobRelevanceScore: gap.Scores.JobRelevanceScore,
			ATSScore:          gap.Scores.ATSScore,
			HasSkills:         gap.Skills.HasSkills,
			MissingSkills:     gap.Skills.MissingSkills,
			UserLevel:         string(gap.Experience.Level),
			LevelReasoning:    gap.Experience.Reasoning,
			AnalysisSummary:   gap.AnalysisSummary,
		},
		Improved: types.ImprovedSummary{
			ResumeText:          improvedText,
			JobRelevanceScore:   classification.JobRelevanceScore,
			ATSScore:            classification.ATSScore,
			SkillsAdded:         classification.SkillsAdded,
			SkillsEnhanced:      classification.SkillsEnhanced,
			ProjectsAdded:       classification.ProjectsAdded,
			ModificationSummary: classification.ModificationSummary,
		},
		LearningComparison: buildLearningComparison(strategy.CurriculumMapping, gap.Skills.MissingSkills),
		MarketStats:        market.BuildMarketStats(*gap),
		CurriculumUsed:     strategy.CurriculumMapping.ModulesUsed,
	}
}

// buildLearningComparison contrasts the self-paced path with the course
// path and matches the candidate's gaps to the curriculum modules that
// close them. Matching is case-insensitive on the gap name; the first
// module claiming a gap keeps it.
func buildLearningComparison(mapping types.CurriculumMapping, missingSkills []string) types.LearningComparison {
	gapToModule := make(map[string]types.GapModule)
	for _, module := range mapping.ModulesUsed {
		for _, gap := range module.AddressesGaps {
			norm := strings.ToLower(strings.TrimSpace(gap))
			if _, taken := gapToModule[norm]; !taken {
				gapToModule[norm] = types.GapModule{
					Gap:         gap,
					Module:      module.Module,
					Timeline:    orDefault(module.Timeline, "Week 1-4"),
					Description: orDefault(module.HowUsed, "Skill development"),
				}
			}
		}
	}

	considered := missingSkills
	if len(considered) > maxMissingConsidered {
		considered = considered[:maxMissingConsidered]
	}

	modules := make([]types.GapModule, 0, maxGapModules)
	matched := make(map[string]bool, maxGapModules)
	for _, gap := range considered {
		norm := strings.ToLower(strings.TrimSpace(gap))
		if gm, ok := gapToModule[norm]; ok && !matched[norm] {
			modules = append(modules, gm)
			matched[norm] = true
			if len(modules) >= maxGapModules {
				break
			}
		}
	}

	// Not enough direct matches: pad with the remaining modules so the
	// comparison always names something concrete.
	if len(modules) < maxGapModules {
		for _, module := range mapping.ModulesUsed {
			if len(modules) >= maxGapModules {
				break
			}
			if hasModule(modules, module.Module) {
				continue
			}
			firstGap := "General Skills"
			if len(module.AddressesGaps) > 0 {
				firstGap = module.AddressesGaps[0]
			}
			modules = append(modules, types.GapModule{
				Gap:         firstGap,
				Module:      module.Module,
				Timeline:    orDefault(module.Timeline, "Week 1-4"),
				Description: orDefault(module.HowUsed, "Skill development"),
			})
		}
	}

	return types.LearningComparison{
		Conventional: types.LearningTrack{Timeline: conventionalTimeline()},
		Course: types.CourseTrack{
			Timeline:              courseTimeline(),
			ModulesAddressingGaps: modules,
		},
	}
}

func hasModule(modules []types.GapModule, name string) bool {
	for _, m := range modules {
		if m.Module == name {
			return true
		}
	}
	return false
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// conventionalTimeline is the reference self-study progression.
func conventionalTimeline() []types.Milestone {
	return []types.Milestone{
		{Month: 0, Progress: 0, Milestone: "Start Learning"},
		{Month: 2, Progress: 15, Milestone: "Basic SQL from YouTube"},
		{Month: 4, Progress: 30, Milestone: "Python basics from blogs"},
		{Month: 6, Progress: 50, Milestone: "Self-made projects"},
		{Month: 8, Progress: 65, Milestone: "Still learning Power BI"},
		{Month: 10, Progress: 80, Milestone: "Job applications start"},
		{Month: 12, Progress: 85, Milestone: "Interview ready"},
	}
}

// courseTimeline is the structured course progression.
func courseTimeline() []types.Milestone {
	return []types.Milestone{
		{Month: 0, Progress: 0, Milestone: "Enroll in Data Analytics Course"},
		{Month: 1, Progress: 35, Milestone: "SQL Mastery + Python Fundamentals"},
		{Month: 2, Progress: 60, Milestone: "Power BI & Data Visualization"},
		{Month: 3, Progress: 80, Milestone: "Statistical Analysis + Projects"},
		{Month: 4, Progress: 95, Milestone: "Capstone Project + Interview Prep"},
		{Month: 5, Progress: 100, Milestone: "Job Ready + Placement Support"},
	}
}
