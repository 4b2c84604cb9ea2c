package pipeline

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/llm"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/market"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/prompts"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

// internalKeys is the fixed denylist of bookkeeping fields earlier revisions
// of the assessment prompt leaked into responses. Typed unmarshalling drops
// unknown fields anyway; stripping the raw payload first keeps the denylist
// explicit and covers the nested occurrences.
var internalKeys = []string{
	"_metadata",
	"keyword_density_score",
	"skill_match_percentage",
	"jobs_analyzed_at_level",
	"total_jobs_by_level",
	"jobs_sent_to_llm",
}

// assess runs the assessment call over the merged extraction outputs and
// assembles the full gap analysis.
func assess(ctx context.Context, opts *Options, experience types.ExperienceResult, skills types.SkillsAnalysis, projects types.ProjectsAnalysis, levelData *market.LevelData) (*types.GapAnalysis, error) {
	partial := map[string]any{
		"user_level":           experience.Level,
		"experience_reasoning": experience.Reasoning,
		"skills_analysis":      skills,
		"projects_analysis":    projects,
	}
	partialJSON, err := json.MarshalIndent(partial, "", "  ")
	if err != nil {
		return nil, err
	}

	system := prompts.MustGet("analysis.json", "assessment-system")
	user := prompts.Format(prompts.MustGet("analysis.json", "assessment-user"), map[string]string{
		"ResumeText":        opts.Document.Text,
		"GapAnalysis":       string(partialJSON),
		"Level":             string(experience.Level),
		"JobsAnalyzed":      strconv.Itoa(levelData.TotalJobsAnalyzed),
		"TopSkills":         strings.Join(levelData.TopSkills(), "\n"),
		"ScoringGuidelines": prompts.MustGet("analysis.json", "scoring-guidelines"),
	})

	content, _, err := llm.CallWithRetry(ctx, opts.Client, llm.CompletionRequest{
		System:      system,
		User:        user,
		Tier:        llm.TierStandard,
		Temperature: assessmentTemperature,
		Schema:      "assessment",
	}, assessmentBudget, retryBudget(assessmentBudget), "assessment")
	if err != nil {
		return nil, err
	}

	cleaned, err := stripInternalKeys([]byte(content))
	if err != nil {
		return nil, &llm.MalformedOutputError{Label: "assessment", Message: "failed to decode assessment", Cause: err}
	}

	var result types.AssessmentResult
	if err := json.Unmarshal(cleaned, &result); err != nil {
		return nil, &llm.MalformedOutputError{Label: "assessment", Message: "failed to decode assessment", Cause: err}
	}

	// The model occasionally returns an empty market block; fall back to the
	// level data it was shown rather than reporting zero jobs.
	if result.JobMarket.JobsAnalyzed == 0 && len(result.JobMarket.TopSkills) == 0 {
		result.JobMarket = types.JobMarketAnalysis{
			JobsAnalyzed: levelData.TotalJobsAnalyzed,
			TopSkills:    levelData.TopSkills(),
		}
	}

	return &types.GapAnalysis{
		Experience:      experience,
		Skills:          skills,
		Projects:        projects,
		Keywords:        result.Keywords,
		ATS:             result.ATS,
		JobMarket:       result.JobMarket,
		Scores:          result.Scores,
		AnalysisSummary: result.AnalysisSummary,
	}, nil
}

// stripInternalKeys removes the denylisted keys from the raw assessment
// payload, including the nested spots they historically appeared in.
func stripInternalKeys(raw []byte) ([]byte, error) {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}

	for _, key := range internalKeys {
		delete(payload, key)
	}
	stripNestedKey(payload, "scores", "skill_match_percentage")
	stripNestedKey(payload, "keywords_analysis", "keyword_density_score")
	stripNestedKey(payload, "job_market_analysis", "jobs_analyzed_at_level")

	return json.Marshal(payload)
}

func stripNestedKey(payload map[string]any, section, key string) {
	if nested, ok := payload[section].(map[string]any); ok {
		delete(nested, key)
	}
}
