package pipeline

import (
	"context"
	"encoding/json"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/llm"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/prompts"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

// extractProjects splits the resume's projects into domain-relevant keeps
// and off-domain removals.
func extractProjects(ctx context.Context, opts *Options) (types.ProjectsAnalysis, error) {
	system := prompts.MustGet("analysis.json", "extract-projects-system")
	user := prompts.Format(prompts.MustGet("analysis.json", "extract-projects-user"), map[string]string{
		"ResumeText": opts.Document.Text,
	})

	content, _, err := llm.CallWithRetry(ctx, opts.Client, llm.CompletionRequest{
		System:      system,
		User:        user,
		Tier:        llm.TierLite,
		Temperature: extractionTemperature,
		Schema:      "projects",
	}, extractionBudget, retryBudget(extractionBudget), "projects extraction")
	if err != nil {
		return types.ProjectsAnalysis{}, err
	}

	var result types.ProjectsAnalysis
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return types.ProjectsAnalysis{}, &llm.MalformedOutputError{Label: "projects extraction", Message: "failed to decode projects", Cause: err}
	}
	return result, nil
}
