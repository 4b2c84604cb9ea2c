package pipeline

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/curriculum"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/llm"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/market"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/prompts"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

// extractSkills compares the resume's technical skills against the market
// top skills for the classified level. Missing skills are filtered to the
// curriculum vocabulary by the prompt contract.
func extractSkills(ctx context.Context, opts *Options, level types.ExperienceLevel, levelData *market.LevelData) (types.SkillsAnalysis, error) {
	focus, err := json.Marshal(curriculum.FocusSkills())
	if err != nil {
		return types.SkillsAnalysis{}, err
	}

	system := prompts.MustGet("analysis.json", "extract-skills-system")
	user := prompts.Format(prompts.MustGet("analysis.json", "extract-skills-user"), map[string]string{
		"ResumeText":       opts.Document.Text,
		"Level":            string(level),
		"TopSkills":        strings.Join(levelData.TopSkills(), "\n"),
		"CurriculumSkills": string(focus),
	})

	content, _, err := llm.CallWithRetry(ctx, opts.Client, llm.CompletionRequest{
		System:      system,
		User:        user,
		Tier:        llm.TierLite,
		Temperature: extractionTemperature,
		Schema:      "skills",
	}, extractionBudget, retryBudget(extractionBudget), "skills extraction")
	if err != nil {
		return types.SkillsAnalysis{}, err
	}

	var result types.SkillsAnalysis
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return types.SkillsAnalysis{}, &llm.MalformedOutputError{Label: "skills extraction", Message: "failed to decode skills", Cause: err}
	}
	return result, nil
}
