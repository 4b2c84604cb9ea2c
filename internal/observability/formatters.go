// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExperience outputs the date-derived experience classification.
func (p *Printer) PrintExperience(result types.ExperienceResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Level:      %s\n", result.Level))
	sb.WriteString(fmt.Sprintf("Experience: %.1f years (%d months)\n", result.TotalYears, result.TotalMonths))

	if len(result.RoleCalculations) > 0 {
		sb.WriteString("\nRoles counted:\n")
		count := min(len(result.RoleCalculations), maxItemsToShow)
		for i := 0; i < count; i++ {
			role := result.RoleCalculations[i]
			sb.WriteString(fmt.Sprintf("  • %s (%d months)\n", role.Title, role.Months))
		}
		if len(result.RoleCalculations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.RoleCalculations)-maxItemsToShow))
		}
	}

	p.printBox("EXPERIENCE CLASSIFICATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapAnalysis outputs the assessment scores and the skill gaps found.
func (p *Printer) PrintGapAnalysis(gap *types.GapAnalysis) {
	if gap == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Job Relevance: %d/100\n", gap.Scores.JobRelevanceScore))
	sb.WriteString(fmt.Sprintf("ATS Score:     %d/100\n", gap.Scores.ATSScore))
	sb.WriteString("\n")

	if len(gap.Skills.HasSkills) > 0 {
		skills := strings.Join(gap.Skills.HasSkills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Has: %s\n", skills))
	}

	if len(gap.Skills.MissingSkills) > 0 {
		sb.WriteString("Missing:\n")
		count := min(len(gap.Skills.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", gap.Skills.MissingSkills[i]))
		}
		if len(gap.Skills.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(gap.Skills.MissingSkills)-maxItemsToShow))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Projects: keep %d, remove %d\n", len(gap.Projects.ProjectsToKeep), len(gap.Projects.ProjectsToRemove)))
	sb.WriteString(fmt.Sprintf("Missing keywords: %d\n", len(gap.Keywords.MissingKeywords)))

	p.printBox("GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStrategy outputs the planned skill and project changes.
func (p *Printer) PrintStrategy(strategy *types.Strategy) {
	if strategy == nil {
		return
	}

	var sb strings.Builder

	if len(strategy.SkillStrategy.SkillsToEnhance) > 0 {
		sb.WriteString(fmt.Sprintf("Enhance %d skills:\n", len(strategy.SkillStrategy.SkillsToEnhance)))
		count := min(len(strategy.SkillStrategy.SkillsToEnhance), maxItemsToShow)
		for i := 0; i < count; i++ {
			enh := strategy.SkillStrategy.SkillsToEnhance[i]
			sb.WriteString(fmt.Sprintf("  • %s → %s\n", enh.Base, enh.Enhanced))
		}
		if len(strategy.SkillStrategy.SkillsToEnhance) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(strategy.SkillStrategy.SkillsToEnhance)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(strategy.SkillStrategy.SkillsToAdd) > 0 {
		sb.WriteString(fmt.Sprintf("Add %d skills:\n", len(strategy.SkillStrategy.SkillsToAdd)))
		count := min(len(strategy.SkillStrategy.SkillsToAdd), maxItemsToShow)
		for i := 0; i < count; i++ {
			add := strategy.SkillStrategy.SkillsToAdd[i]
			sb.WriteString(fmt.Sprintf("  • %s", add.Skill))
			if add.Module != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", add.Module))
			}
			sb.WriteString("\n")
		}
		if len(strategy.SkillStrategy.SkillsToAdd) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(strategy.SkillStrategy.SkillsToAdd)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	project := strategy.ProjectStrategy
	sb.WriteString(fmt.Sprintf("Projects: +%d added, %d kept, %d removed\n",
		len(project.ProjectsAdded), len(project.ProjectsKept), len(project.ProjectsRemoved)))

	if len(project.ProjectsAdded) > 0 {
		count := min(len(project.ProjectsAdded), 3)
		for i := 0; i < count; i++ {
			name := project.ProjectsAdded[i].Name
			if len(name) > 50 {
				name = name[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", name))
		}
		if len(project.ProjectsAdded) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(project.ProjectsAdded)-3))
		}
	}

	sb.WriteString(fmt.Sprintf("\nCurriculum modules used: %d\n", len(strategy.CurriculumMapping.ModulesUsed)))

	p.printBox("IMPROVEMENT STRATEGY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintClassification outputs the applied changes and the rescored resume.
func (p *Printer) PrintClassification(result *types.ClassificationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Job Relevance: %d/100\n", result.JobRelevanceScore))
	sb.WriteString(fmt.Sprintf("ATS Score:     %d/100\n", result.ATSScore))
	if result.EstimatedImprovement > 0 {
		sb.WriteString(fmt.Sprintf("Estimated improvement: +%d\n", result.EstimatedImprovement))
	}
	sb.WriteString("\n")

	if len(result.SkillsEnhanced) > 0 {
		sb.WriteString(fmt.Sprintf("Enhanced %d skills:\n", len(result.SkillsEnhanced)))
		count := min(len(result.SkillsEnhanced), maxItemsToShow)
		for i := 0; i < count; i++ {
			change := result.SkillsEnhanced[i]
			sb.WriteString(fmt.Sprintf("  • %s → %s\n", change.Original, change.Improved))
		}
		if len(result.SkillsEnhanced) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.SkillsEnhanced)-maxItemsToShow))
		}
	}

	if len(result.SkillsAdded) > 0 {
		skills := strings.Join(result.SkillsAdded, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Added skills:   %s\n", skills))
	}

	if len(result.ProjectsAdded) > 0 {
		projects := strings.Join(result.ProjectsAdded, ", ")
		if len(projects) > 40 {
			projects = projects[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Added projects: %s\n", projects))
	}

	p.printBox("CHANGE CLASSIFICATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMarketStats outputs the parsed market demand summary.
func (p *Printer) PrintMarketStats(stats types.MarketStats) {
	if stats.JobsAnalyzed == 0 && len(stats.TopSkills) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Jobs analyzed: %d\n\n", stats.JobsAnalyzed))

	count := min(len(stats.TopSkills), maxItemsToShow)
	for i := 0; i < count; i++ {
		skill := stats.TopSkills[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, skill.Skill))
		sb.WriteString(fmt.Sprintf("    %.2f%% of postings, demand: %s\n", skill.Percentage, skill.Demand))
	}

	sb.WriteString(fmt.Sprintf("\nResume covers:     %d of %d\n", stats.ResumeHasCount, len(stats.TopSkills)))
	sb.WriteString(fmt.Sprintf("Curriculum covers: %d of %d", stats.CurriculumCoverCount, len(stats.TopSkills)))

	p.printBox("JOB MARKET SNAPSHOT", sb.String())
}
