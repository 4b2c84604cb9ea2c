package market

import (
	"fmt"
	"strings"
)

// Counts of entries rendered into prompt text per section.
const (
	promptTopSkills      = 20
	promptTopSoftSkills  = 15
	promptTopRoles       = 15
	promptTopEducation   = 15
	topSkillsForAnalysis = 10
)

// DemandTier labels a demand percentage. The thresholds are fixed:
// at least 60% of postings is Critical, 40% High, 20% Essential,
// anything below that Growing.
func DemandTier(percent float64) string {
	switch {
	case percent >= 60:
		return "Critical"
	case percent >= 40:
		return "High"
	case percent >= 20:
		return "Essential"
	default:
		return "Growing"
	}
}

// TopSkillLines renders the n most demanded skills as the annotated lines
// the assessment prompts carry and the postprocessor later parses back:
// "<Skill> (appears in <pct>%) - Demand: <Tier>".
func (l *LevelData) TopSkillLines(n int) []string {
	entries := sortedByPercent(l.MostDemandedSkills)
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s (appears in %.2f%%) - Demand: %s", e.Name, e.Percent, DemandTier(e.Percent)))
	}
	return lines
}

// TopSkills returns the standard analysis cut of the demand list.
func (l *LevelData) TopSkills() []string {
	return l.TopSkillLines(topSkillsForAnalysis)
}

// FormatForPrompt renders the whole tier snapshot as the markdown block the
// assessment prompt consumes: demand-annotated skills plus soft skills,
// common job titles and educational background.
func (l *LevelData) FormatForPrompt() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Total Jobs Analyzed: %d\n", l.TotalJobsAnalyzed)

	if len(l.MostDemandedSkills) > 0 {
		sb.WriteString("\n## Most Demanded Skills:\n")
		for _, line := range l.TopSkillLines(promptTopSkills) {
			fmt.Fprintf(&sb, "- %s\n", line)
		}
	}
	writeSection(&sb, "## Soft Skills:", l.SoftSkills, promptTopSoftSkills)
	writeSection(&sb, "## Common Job Titles:", l.Roles, promptTopRoles)
	writeSection(&sb, "## Educational Background:", l.EducationalBackground, promptTopEducation)

	return strings.TrimSuffix(sb.String(), "\n")
}

func writeSection(sb *strings.Builder, heading string, m map[string]string, n int) {
	if len(m) == 0 {
		return
	}
	entries := sortedByPercent(m)
	if len(entries) > n {
		entries = entries[:n]
	}
	sb.WriteString("\n" + heading + "\n")
	for _, e := range entries {
		fmt.Fprintf(sb, "- %s (%.2f%%)\n", e.Name, e.Percent)
	}
}
