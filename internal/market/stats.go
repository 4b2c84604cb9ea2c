package market

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

// reportedTopSkills is how many market skills the final report keeps.
const reportedTopSkills = 5

var (
	percentPattern = regexp.MustCompile(`(\d+\.?\d*)%`)
	demandPattern  = regexp.MustCompile(`Demand:\s*(\w+)`)
)

// skillAliases collapses vendor and brand variants onto the canonical skill
// name used for coverage matching. Matching is by substring on the lowercased
// skill, in declaration order.
var skillAliases = []struct {
	pattern    string
	normalized string
}{
	{"ms excel", "excel"},
	{"microsoft excel", "excel"},
	{"mysql", "sql"},
	{"mssql", "sql"},
	{"sql server", "sql"},
	{"postgresql", "sql"},
	{"postgres", "sql"},
}

// NormalizeSkillName maps a raw skill string onto its canonical lowercase
// form for matching, so "MS Excel" and "Microsoft Excel" both count as the
// one market skill "excel".
func NormalizeSkillName(skill string) string {
	lower := strings.ToLower(strings.TrimSpace(skill))
	if lower == "" {
		return ""
	}
	for _, alias := range skillAliases {
		if strings.Contains(lower, alias.pattern) {
			return alias.normalized
		}
	}
	return lower
}

// ParseTopSkills turns the annotated "<Skill> (appears in X%) - Demand: Y"
// lines back into structured records. The skill name is everything before
// the first parenthesis; a missing percentage defaults to 0 and a missing
// demand word to the lowest tier. Only the first five entries are kept.
func ParseTopSkills(lines []string) []types.SkillDemand {
	if len(lines) > reportedTopSkills {
		lines = lines[:reportedTopSkills]
	}

	parsed := make([]types.SkillDemand, 0, len(lines))
	for _, line := range lines {
		name, _, _ := strings.Cut(line, "(")

		percentage := 0.0
		if m := percentPattern.FindStringSubmatch(line); m != nil {
			percentage, _ = strconv.ParseFloat(m[1], 64)
		}

		demand := "Growing"
		if m := demandPattern.FindStringSubmatch(line); m != nil {
			demand = m[1]
		}

		parsed = append(parsed, types.SkillDemand{
			Skill:      strings.TrimSpace(name),
			Percentage: math.Round(percentage*100) / 100,
			Demand:     demand,
		})
	}
	return parsed
}

// BuildMarketStats derives the reporting statistics from a finished gap
// analysis. Everything here is deterministic text processing: the top-skill
// lines are parsed back into records and the candidate's extracted skills
// are matched against them after normalization, counting each market skill
// at most once however many resume skills collapse onto it.
func BuildMarketStats(gap types.GapAnalysis) types.MarketStats {
	topSkills := ParseTopSkills(gap.JobMarket.TopSkills)

	normalizedHas := make(map[string]bool, len(gap.Skills.HasSkills))
	for _, skill := range gap.Skills.HasSkills {
		if n := NormalizeSkillName(skill); n != "" {
			normalizedHas[n] = true
		}
	}

	resumeHas := 0
	matched := make(map[string]bool, len(topSkills))
	for _, top := range topSkills {
		n := NormalizeSkillName(top.Skill)
		if normalizedHas[n] && !matched[n] {
			resumeHas++
			matched[n] = true
		}
	}

	return types.MarketStats{
		JobsAnalyzed:   gap.JobMarket.JobsAnalyzed,
		TopSkills:      topSkills,
		ResumeHasCount: resumeHas,
		// The curriculum teaches every tracked market skill.
		CurriculumCoverCount: len(topSkills),
	}
}
