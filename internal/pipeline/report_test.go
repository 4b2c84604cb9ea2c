package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

func TestBuildLearningComparison_MatchesGapsToModules(t *testing.T) {
	mapping := types.CurriculumMapping{ModulesUsed: []types.ModuleUsage{
		{
			Module:        "Data Visualization & Power BI",
			AddressesGaps: []string{"Power BI", "DAX"},
			Timeline:      "Week 5-8",
			HowUsed:       "Covers dashboarding gap",
		},
		{
			Module:        "Python for Data Analysis",
			AddressesGaps: []string{"Python", "Pandas"},
		},
		{
			Module: "Statistics & EDA",
		},
	}}
	missing := []string{"power bi", "Python", "Cooking"}

	comparison := buildLearningComparison(mapping, missing)

	modules := comparison.Course.ModulesAddressingGaps
	require.Len(t, modules, 3)

	// Matching is case-insensitive and keeps the module's original casing.
	assert.Equal(t, types.GapModule{
		Gap:         "Power BI",
		Module:      "Data Visualization & Power BI",
		Timeline:    "Week 5-8",
		Description: "Covers dashboarding gap",
	}, modules[0])
	assert.Equal(t, "Python", modules[1].Gap)
	assert.Equal(t, "Week 1-4", modules[1].Timeline)
	assert.Equal(t, "Skill development", modules[1].Description)

	// Nothing addresses the third missing skill; the slot is padded with
	// the remaining module under its first (default) gap.
	assert.Equal(t, "Statistics & EDA", modules[2].Module)
	assert.Equal(t, "General Skills", modules[2].Gap)
}

func TestBuildLearningComparison_StopsAtThreeMatches(t *testing.T) {
	mapping := types.CurriculumMapping{ModulesUsed: []types.ModuleUsage{
		{Module: "M1", AddressesGaps: []string{"A"}},
		{Module: "M2", AddressesGaps: []string{"B"}},
		{Module: "M3", AddressesGaps: []string{"C"}},
		{Module: "M4", AddressesGaps: []string{"D"}},
	}}
	missing := []string{"A", "B", "C", "D"}

	comparison := buildLearningComparison(mapping, missing)
	require.Len(t, comparison.Course.ModulesAddressingGaps, 3)
	assert.Equal(t, "C", comparison.Course.ModulesAddressingGaps[2].Gap)
}

func TestBuildLearningComparison_PadsWithUnusedModules(t *testing.T) {
	mapping := types.CurriculumMapping{ModulesUsed: []types.ModuleUsage{
		{Module: "SQL & Databases", AddressesGaps: []string{"SQL"}},
		{Module: "Statistics & EDA"},
	}}

	// Nothing missing matches, so all slots come from padding.
	comparison := buildLearningComparison(mapping, []string{"Cooking"})

	modules := comparison.Course.ModulesAddressingGaps
	require.Len(t, modules, 2)
	assert.Equal(t, "SQL", modules[0].Gap)
	assert.Equal(t, "General Skills", modules[1].Gap)
	assert.Equal(t, "Statistics & EDA", modules[1].Module)
}

func TestBuildLearningComparison_FirstModuleClaimsGap(t *testing.T) {
	mapping := types.CurriculumMapping{ModulesUsed: []types.ModuleUsage{
		{Module: "First", AddressesGaps: []string{"SQL"}},
		{Module: "Second", AddressesGaps: []string{"sql"}},
	}}

	comparison := buildLearningComparison(mapping, []string{"SQL"})
	require.NotEmpty(t, comparison.Course.ModulesAddressingGaps)
	assert.Equal(t, "First", comparison.Course.ModulesAddressingGaps[0].Module)
}

func TestBuildLearningComparison_Timelines(t *testing.T) {
	comparison := buildLearningComparison(types.CurriculumMapping{}, nil)

	conv := comparison.Conventional.Timeline
	require.Len(t, conv, 7)
	assert.Equal(t, types.Milestone{Month: 0, Progress: 0, Milestone: "Start Learning"}, conv[0])
	assert.Equal(t, types.Milestone{Month: 12, Progress: 85, Milestone: "Interview ready"}, conv[6])

	course := comparison.Course.Timeline
	require.Len(t, course, 6)
	assert.Equal(t, types.Milestone{Month: 0, Progress: 0, Milestone: "Enroll in Data Analytics Course"}, course[0])
	assert.Equal(t, types.Milestone{Month: 5, Progress: 100, Milestone: "Job Ready + Placement Support"}, course[5])

	assert.Empty(t, comparison.Course.ModulesAddressingGaps)
	assert.NotNil(t, comparison.Course.ModulesAddressingGaps)
}
