package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/llm"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/prompts"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

// classifyChanges audits the rewritten resume against the strategy and
// scores the improved text. The generated classification must agree with
// the strategy on cardinalities; otherwise it is discarded and rebuilt
// deterministically from the strategy.
func classifyChanges(ctx context.Context, opts *Options, gap *types.GapAnalysis, strategy *types.Strategy, improvedText string) (*types.ClassificationResult, error) {
	gapJSON, err := json.MarshalIndent(gap, "", "  ")
	if err != nil {
		return nil, err
	}
	strategyJSON, err := json.MarshalIndent(strategy, "", "  ")
	if err != nil {
		return nil, err
	}

	system := prompts.MustGet("improvement.json", "classify-system")
	user := prompts.Format(prompts.MustGet("improvement.json", "classify-user"), map[string]string{
		"GapAnalysis":       string(gapJSON),
		"Strategy":          string(strategyJSON),
		"ImprovedText":      improvedText,
		"OriginalRelevance": strconv.Itoa(gap.Scores.JobRelevanceScore),
		"OriginalATS":       strconv.Itoa(gap.Scores.ATSScore),
		"ScoringGuidelines": prompts.MustGet("analysis.json", "scoring-guidelines"),
	})

	content, _, err := llm.CallWithRetry(ctx, opts.Client, llm.CompletionRequest{
		System:      system,
		User:        user,
		Tier:        llm.TierStandard,
		Temperature: assessmentTemperature,
		Schema:      "classification",
	}, assessmentBudget, retryBudget(assessmentBudget), "classification")
	if err != nil {
		return nil, err
	}

	var result types.ClassificationResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, &llm.MalformedOutputError{Label: "classification", Message: "failed to decode classification", Cause: err}
	}

	if !cardinalitiesMatch(&result.Classification, strategy) {
		slog.WarnContext(ctx, "classification disagrees with strategy, rebuilding from strategy",
			"enhanced", len(result.SkillsEnhanced),
			"want_enhanced", len(strategy.SkillStrategy.SkillsToEnhance),
			"added", len(result.SkillsAdded),
			"want_added", len(strategy.SkillStrategy.SkillsToAdd),
			"projects", len(result.ProjectsAdded),
			"want_projects", len(strategy.ProjectStrategy.ProjectsAdded))
		result.Classification = RebuildClassification(strategy)
	}

	return &result, nil
}

// cardinalitiesMatch reports whether a classification lists exactly as many
// changes as the strategy planned.
func cardinalitiesMatch(c *types.Classification, strategy *types.Strategy) bool {
	return len(c.SkillsEnhanced) == len(strategy.SkillStrategy.SkillsToEnhance) &&
		len(c.SkillsAdded) == len(strategy.SkillStrategy.SkillsToAdd) &&
		len(c.ProjectsAdded) == len(strategy.ProjectStrategy.ProjectsAdded)
}

// RebuildClassification projects the strategy's planned changes into a
// classification. The projection is deterministic: rebuilding from the same
// strategy always yields the same classification, and a rebuilt
// classification always satisfies cardinalitiesMatch.
func RebuildClassification(strategy *types.Strategy) types.Classification {
	c := types.Classification{
		SkillsEnhanced: make([]types.SkillChange, 0, len(strategy.SkillStrategy.SkillsToEnhance)),
		SkillsAdded:    make([]string, 0, len(strategy.SkillStrategy.SkillsToAdd)),
		ProjectsAdded:  make([]string, 0, len(strategy.ProjectStrategy.ProjectsAdded)),
	}

	for _, e := range strategy.SkillStrategy.SkillsToEnhance {
		c.SkillsEnhanced = append(c.SkillsEnhanced, types.SkillChange{
			Original: e.Base,
			Improved: e.Enhanced,
		})
	}
	for _, a := range strategy.SkillStrategy.SkillsToAdd {
		c.SkillsAdded = append(c.SkillsAdded, a.Skill)
	}
	for _, p := range strategy.ProjectStrategy.ProjectsAdded {
		c.ProjectsAdded = append(c.ProjectsAdded, p.Name)
	}

	return c
}
