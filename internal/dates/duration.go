package dates

import (
	"fmt"
	"math"
	"strings"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

// Classification thresholds in months of qualifying experience.
const (
	fresherMaxMonths      = 12
	intermediateMaxMonths = 36
)

// DurationResult holds the exact month arithmetic for one role.
type DurationResult struct {
	Months int
	Years  float64
}

// CalculateRoleDuration resolves both endpoints against the reference date
// and returns the exact month count between them. It returns nil when either
// endpoint is unparseable or when the end precedes the start (swapped
// endpoints), so a malformed role can never contribute a negative duration.
func CalculateRoleDuration(start, end, reference string) *DurationResult {
	s, ok := ParseDate(start, reference)
	if !ok {
		return nil
	}
	e, ok := ParseDate(end, reference)
	if !ok {
		return nil
	}

	months := (e.Year-s.Year)*12 + (e.Month - s.Month)
	if months < 0 {
		return nil
	}
	return &DurationResult{Months: months, Years: roundYears(months)}
}

// ClassifyExperience sums the resolvable durations of all non-internship
// roles and maps the total onto an experience level. Internships and roles
// with unparseable dates are excluded from the total rather than counted as
// zero. Zero qualifying roles classifies as Fresher by definition.
func ClassifyExperience(roles []types.QualifyingRole, reference string) types.ExperienceResult {
	var (
		calcs       []types.RoleDuration
		excluded    []string
		totalMonths int
	)

	for _, role := range roles {
		if role.IsInternship {
			continue
		}
		dur := CalculateRoleDuration(role.StartDate, role.EndDate, reference)
		if dur == nil {
			excluded = append(excluded, role.Title)
			continue
		}
		calcs = append(calcs, types.RoleDuration{
			Title:   role.Title,
			Company: role.Company,
			Start:   NormalizeDateToken(role.StartDate),
			End:     NormalizeDateToken(role.EndDate),
			Months:  dur.Months,
			Years:   dur.Years,
		})
		totalMonths += dur.Months
	}

	level := types.LevelExperienced
	switch {
	case totalMonths <= fresherMaxMonths:
		level = types.LevelFresher
	case totalMonths <= intermediateMaxMonths:
		level = types.LevelIntermediate
	}

	return types.ExperienceResult{
		Level:            level,
		TotalMonths:      totalMonths,
		TotalYears:       roundYears(totalMonths),
		Reasoning:        buildReasoning(calcs, excluded, totalMonths),
		RoleCalculations: calcs,
	}
}

// buildReasoning names the per-role arithmetic so the classification can be
// audited without rerunning it.
func buildReasoning(calcs []types.RoleDuration, excluded []string, totalMonths int) string {
	var reasoning string
	if len(calcs) == 0 {
		reasoning = "No qualifying non-internship roles with parseable dates; classified as Fresher."
	} else {
		parts := make([]string, 0, len(calcs))
		for _, c := range calcs {
			parts = append(parts, fmt.Sprintf("%s (%s to %s: %d months)", c.Title, c.Start, c.End, c.Months))
		}
		reasoning = fmt.Sprintf("%d qualifying role(s) totaling %d months (%.2f years): %s.",
			len(calcs), totalMonths, roundYears(totalMonths), strings.Join(parts, "; "))
	}
	if len(excluded) > 0 {
		reasoning += fmt.Sprintf(" Excluded role(s) with unparseable dates: %s.", strings.Join(excluded, ", "))
	}
	return reasoning
}

func roundYears(months int) float64 {
	return math.Round(float64(months)/12*100) / 100
}
