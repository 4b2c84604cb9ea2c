package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

func sampleStrategy() *types.Strategy {
	return &types.Strategy{
		SkillStrategy: types.SkillStrategy{
			SkillsToEnhance: []types.SkillEnhancement{
				{Base: "Excel", Enhanced: "Advanced Excel (Power Query)", Module: "Excel & Power Query"},
				{Base: "SQL", Enhanced: "Advanced SQL (CTEs, Window Functions)", Module: "SQL & Databases"},
			},
			SkillsToAdd: []types.SkillAddition{
				{Skill: "Power BI", Module: "Data Visualization & Power BI"},
			},
		},
		ProjectStrategy: types.ProjectStrategy{
			ProjectsRemoved: []string{"Portfolio Website"},
			ProjectsKept:    []string{"Sales Dashboard"},
			ProjectsAdded: []types.ProjectAddition{
				{Name: "Marketing Funnel Dashboard in Power BI", Module: "Data Visualization & Power BI"},
			},
			FinalProjectCount: 2,
		},
	}
}

func TestRebuildClassification(t *testing.T) {
	strategy := sampleStrategy()

	rebuilt := RebuildClassification(strategy)
	assert.Equal(t, []types.SkillChange{
		{Original: "Excel", Improved: "Advanced Excel (Power Query)"},
		{Original: "SQL", Improved: "Advanced SQL (CTEs, Window Functions)"},
	}, rebuilt.SkillsEnhanced)
	assert.Equal(t, []string{"Power BI"}, rebuilt.SkillsAdded)
	assert.Equal(t, []string{"Marketing Funnel Dashboard in Power BI"}, rebuilt.ProjectsAdded)

	// A rebuilt classification always satisfies the reconciliation check.
	assert.True(t, cardinalitiesMatch(&rebuilt, strategy))
}

func TestRebuildClassification_Idempotent(t *testing.T) {
	strategy := sampleStrategy()

	first := RebuildClassification(strategy)
	second := RebuildClassification(strategy)
	assert.Equal(t, first, second)
}

func TestRebuildClassification_EmptyStrategy(t *testing.T) {
	rebuilt := RebuildClassification(&types.Strategy{})
	assert.Empty(t, rebuilt.SkillsEnhanced)
	assert.Empty(t, rebuilt.SkillsAdded)
	assert.Empty(t, rebuilt.ProjectsAdded)
	assert.NotNil(t, rebuilt.SkillsAdded)
}

func TestCardinalitiesMatch(t *testing.T) {
	strategy := sampleStrategy()

	matching := types.Classification{
		SkillsEnhanced: []types.SkillChange{{Original: "a", Improved: "b"}, {Original: "c", Improved: "d"}},
		SkillsAdded:    []string{"x"},
		ProjectsAdded:  []string{"p"},
	}
	assert.True(t, cardinalitiesMatch(&matching, strategy))

	missingEnhancement := matching
	missingEnhancement.SkillsEnhanced = missingEnhancement.SkillsEnhanced[:1]
	assert.False(t, cardinalitiesMatch(&missingEnhancement, strategy))

	extraAddition := matching
	extraAddition.SkillsAdded = []string{"x", "y"}
	assert.False(t, cardinalitiesMatch(&extraAddition, strategy))
}

func TestClassifyChanges_RebuildsOnMismatch(t *testing.T) {
	// Two enhancements planned, but the model reports only one and invents
	// an extra added skill. The whole classification gets discarded.
	client := &fakeClient{responses: map[string]string{
		"classification": `{
			"skills_enhanced": [{"original": "Excel", "improved": "Advanced Excel"}],
			"skills_added": ["Power BI", "Tableau"],
			"projects_added": ["Marketing Funnel Dashboard in Power BI"],
			"job_relevance_score": 80,
			"ats_score": 85,
			"modification_summary": "Did things."
		}`,
	}}
	opts := Options{Client: client}
	gap := &types.GapAnalysis{Scores: types.Scores{JobRelevanceScore: 55, ATSScore: 60}}

	result, err := classifyChanges(context.Background(), &opts, gap, sampleStrategy(), "improved text")
	require.NoError(t, err)

	assert.Equal(t, RebuildClassification(sampleStrategy()), result.Classification)
	// Scores from the model survive the rebuild.
	assert.Equal(t, 80, result.JobRelevanceScore)
	assert.Equal(t, 85, result.ATSScore)
}

func TestClassifyChanges_KeepsMatchingOutput(t *testing.T) {
	client := &fakeClient{responses: map[string]string{
		"classification": `{
			"skills_enhanced": [
				{"original": "Excel", "improved": "Advanced Excel (Power Query)"},
				{"original": "SQL", "improved": "Advanced SQL (CTEs, Window Functions)"}
			],
			"skills_added": ["Power BI"],
			"projects_added": ["Marketing Funnel Dashboard in Power BI"],
			"job_relevance_score": 81,
			"ats_score": 86,
			"modification_summary": "Matched the plan."
		}`,
	}}
	opts := Options{Client: client}
	gap := &types.GapAnalysis{Scores: types.Scores{JobRelevanceScore: 55, ATSScore: 60}}

	result, err := classifyChanges(context.Background(), &opts, gap, sampleStrategy(), "improved text")
	require.NoError(t, err)

	require.Len(t, result.SkillsEnhanced, 2)
	assert.Equal(t, "Advanced SQL (CTEs, Window Functions)", result.SkillsEnhanced[1].Improved)
	assert.Equal(t, "Matched the plan.", result.ModificationSummary)
}
