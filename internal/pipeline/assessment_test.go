package pipeline

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/market"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

func TestStripInternalKeys(t *testing.T) {
	raw := []byte(`{
		"_metadata": {"model": "x"},
		"keyword_density_score": 41,
		"skill_match_percentage": 40,
		"jobs_analyzed_at_level": 100,
		"total_jobs_by_level": {"fresher": 100},
		"jobs_sent_to_llm": 10,
		"scores": {"job_relevance_score": 55, "ats_score": 60, "skill_match_percentage": 40},
		"keywords_analysis": {"present_keywords": [], "missing_keywords": [], "keyword_density_score": 12},
		"job_market_analysis": {"jobs_analyzed": 983, "top_skills": [], "jobs_analyzed_at_level": 983},
		"analysis_summary": "ok"
	}`)

	cleaned, err := stripInternalKeys(raw)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(cleaned, &payload))

	for _, key := range internalKeys {
		assert.NotContains(t, payload, key)
	}
	assert.NotContains(t, payload["scores"], "skill_match_percentage")
	assert.NotContains(t, payload["keywords_analysis"], "keyword_density_score")
	assert.NotContains(t, payload["job_market_analysis"], "jobs_analyzed_at_level")

	// Legitimate content survives.
	assert.Contains(t, payload["scores"], "job_relevance_score")
	assert.Equal(t, "ok", payload["analysis_summary"])
}

func TestStripInternalKeys_InvalidJSON(t *testing.T) {
	_, err := stripInternalKeys([]byte("not json"))
	assert.Error(t, err)
}

func TestAssess_FallsBackToLevelMarketData(t *testing.T) {
	// Assessment without a market block still reports the level's data.
	client := &fakeClient{responses: map[string]string{
		"assessment": `{
			"keywords_analysis": {"present_keywords": [], "missing_keywords": []},
			"ats_analysis": {"reasoning": "Fine."},
			"scores": {"job_relevance_score": 50, "ats_score": 55},
			"job_market_analysis": {"jobs_analyzed": 0, "top_skills": []},
			"analysis_summary": "ok"
		}`,
	}}

	marketData, err := market.LoadEmbedded()
	require.NoError(t, err)
	opts := Options{Client: client, Document: testDocument()}
	levelData := marketData.ForLevel(types.LevelFresher)

	experience := types.ExperienceResult{Level: types.LevelFresher}
	gap, err := assess(context.Background(), &opts, experience, types.SkillsAnalysis{}, types.ProjectsAnalysis{}, levelData)
	require.NoError(t, err)

	assert.Equal(t, 1247, gap.JobMarket.JobsAnalyzed)
	require.NotEmpty(t, gap.JobMarket.TopSkills)
	assert.Contains(t, gap.JobMarket.TopSkills[0], "Excel")
}

func TestAssess_MergesStageOutputs(t *testing.T) {
	client := &fakeClient{responses: happyResponses()}

	marketData, err := market.LoadEmbedded()
	require.NoError(t, err)
	opts := Options{Client: client, Document: testDocument()}

	experience := types.ExperienceResult{Level: types.LevelIntermediate, Reasoning: "27 months"}
	skills := types.SkillsAnalysis{HasSkills: []string{"Excel", "SQL"}, MissingSkills: []string{"Power BI"}}
	projects := types.ProjectsAnalysis{ProjectsToKeep: []string{"Sales Dashboard"}}

	gap, err := assess(context.Background(), &opts, experience, skills, projects, marketData.ForLevel(types.LevelIntermediate))
	require.NoError(t, err)

	assert.Equal(t, types.LevelIntermediate, gap.Experience.Level)
	assert.Equal(t, skills, gap.Skills)
	assert.Equal(t, projects, gap.Projects)
	assert.Equal(t, 55, gap.Scores.JobRelevanceScore)
	assert.Equal(t, 983, gap.JobMarket.JobsAnalyzed)
	assert.Equal(t, "Solid base, missing visualization skills.", gap.AnalysisSummary)
}
