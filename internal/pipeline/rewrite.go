package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/extraction"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/llm"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/prompts"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

// rewriteResume generates the improved resume text by applying the strategy.
// Links in the output may only be the ones extracted from the original
// document; anything else is a policy violation and gets logged.
func rewriteResume(ctx context.Context, opts *Options, gap *types.GapAnalysis, strategy *types.Strategy) (string, error) {
	gapJSON, err := json.MarshalIndent(gap, "", "  ")
	if err != nil {
		return "", err
	}
	strategyJSON, err := json.MarshalIndent(strategy, "", "  ")
	if err != nil {
		return "", err
	}
	linksJSON, err := json.MarshalIndent(opts.Document.Links, "", "  ")
	if err != nil {
		return "", err
	}

	year := strconv.Itoa(opts.certificationYear())
	system := prompts.Format(prompts.MustGet("improvement.json", "rewrite-system"), map[string]string{
		"CurrentYear": year,
	})
	user := prompts.Format(prompts.MustGet("improvement.json", "rewrite-user"), map[string]string{
		"ResumeText":  opts.Document.Text,
		"Links":       string(linksJSON),
		"GapAnalysis": string(gapJSON),
		"Strategy":    string(strategyJSON),
		"CurrentYear": year,
	})

	content, _, err := llm.CallWithRetry(ctx, opts.Client, llm.CompletionRequest{
		System:      system,
		User:        user,
		Tier:        llm.TierAdvanced,
		Temperature: generationTemperature,
		Schema:      "rewrite",
	}, generationBudget, retryBudget(generationBudget), "resume rewriting")
	if err != nil {
		return "", err
	}

	var result types.RewriteResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return "", &llm.MalformedOutputError{Label: "resume rewriting", Message: "failed to decode rewrite", Cause: err}
	}
	if strings.TrimSpace(result.ImprovedText) == "" {
		return "", &llm.MalformedOutputError{Label: "resume rewriting", Message: "rewrite returned empty resume text"}
	}

	verifyLinkPolicy(ctx, opts.Document.Links, result.ImprovedText)
	return result.ImprovedText, nil
}

// verifyLinkPolicy scans the rewritten text for URLs outside the original
// document's link set. Violations are logged, not fatal: the text is still
// usable and the caller decides what to surface.
func verifyLinkPolicy(ctx context.Context, allowed []types.Link, improved string) {
	allowedSet := make(map[string]bool, len(allowed))
	for _, link := range allowed {
		allowedSet[strings.ToLower(link.URL)] = true
	}

	for _, found := range extraction.ScanTextLinks(improved) {
		if !allowedSet[strings.ToLower(found.URL)] {
			slog.WarnContext(ctx, "rewritten resume contains a link not present in the original",
				"url", found.URL)
		}
	}
}
