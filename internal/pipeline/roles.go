package pipeline

import (
	"context"
	"encoding/json"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/llm"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/prompts"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

// extractRoles asks the completion service for the resume's work history.
// The prompt contract keeps all duration math out of the model: dates come
// back verbatim and the experience classification resolves them.
func extractRoles(ctx context.Context, opts *Options) ([]types.QualifyingRole, error) {
	system := prompts.MustGet("analysis.json", "extract-roles-system")
	user := prompts.Format(prompts.MustGet("analysis.json", "extract-roles-user"), map[string]string{
		"ResumeText": opts.Document.Text,
	})

	content, _, err := llm.CallWithRetry(ctx, opts.Client, llm.CompletionRequest{
		System:      system,
		User:        user,
		Tier:        llm.TierLite,
		Temperature: extractionTemperature,
		Schema:      "roles",
	}, extractionBudget, retryBudget(extractionBudget), "role extraction")
	if err != nil {
		return nil, err
	}

	var result types.RoleExtractionResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, &llm.MalformedOutputError{Label: "role extraction", Message: "failed to decode roles", Cause: err}
	}
	return result.Roles, nil
}
