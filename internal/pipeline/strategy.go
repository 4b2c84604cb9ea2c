package pipeline

import (
	"context"
	"encoding/json"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/llm"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/prompts"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

// generateStrategy plans the skill and project changes from the gap
// analysis and the curriculum. The strategy is the single source of truth
// for what the rewrite may change; classification is later reconciled
// against it.
func generateStrategy(ctx context.Context, opts *Options, gap *types.GapAnalysis) (*types.Strategy, error) {
	gapJSON, err := json.MarshalIndent(gap, "", "  ")
	if err != nil {
		return nil, err
	}
	linksJSON, err := json.MarshalIndent(opts.Document.Links, "", "  ")
	if err != nil {
		return nil, err
	}

	system := prompts.MustGet("improvement.json", "strategy-system")
	user := prompts.Format(prompts.MustGet("improvement.json", "strategy-user"), map[string]string{
		"ResumeText":       opts.Document.Text,
		"Links":            string(linksJSON),
		"GapAnalysis":      string(gapJSON),
		"Curriculum":       opts.Curriculum.FormatForPrompt(),
		"UserLevel":        string(gap.Experience.Level),
		"MissingSkills":    joinList(gap.Skills.MissingSkills),
		"MissingKeywords":  joinList(gap.Keywords.MissingKeywords),
		"ProjectsToRemove": joinList(gap.Projects.ProjectsToRemove),
		"ProjectsToKeep":   joinList(gap.Projects.ProjectsToKeep),
	})

	content, _, err := llm.CallWithRetry(ctx, opts.Client, llm.CompletionRequest{
		System:      system,
		User:        user,
		Tier:        llm.TierAdvanced,
		Temperature: generationTemperature,
		Schema:      "strategy",
	}, generationBudget, retryBudget(generationBudget), "strategy generation")
	if err != nil {
		return nil, err
	}

	var strategy types.Strategy
	if err := json.Unmarshal([]byte(content), &strategy); err != nil {
		return nil, &llm.MalformedOutputError{Label: "strategy generation", Message: "failed to decode strategy", Cause: err}
	}
	return &strategy, nil
}

// joinList renders a string slice as a bracketed prompt list.
func joinList(items []string) string {
	out, err := json.Marshal(items)
	if err != nil || items == nil {
		return "[]"
	}
	return string(out)
}
