package pipeline

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/dates"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/observability"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

// Run drives all eight states over one resume document and returns the
// final report. Any fatal stage failure aborts the whole run; partial
// results are never returned and the run is not retried.
func Run(ctx context.Context, opts Options) (*types.AnalysisReport, error) {
	gap, err := Analyze(ctx, opts)
	if err != nil {
		return nil, err
	}
	return Improve(ctx, opts, gap)
}

// Analyze runs the assessment phase (states 1-4) and returns the gap
// analysis for the document.
func Analyze(ctx context.Context, opts Options) (*types.GapAnalysis, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	printer := observability.NewPrinter(os.Stdout)

	emitProgress(&opts, StateRoleExtraction, "Extracting work history")
	roles, err := extractRoles(ctx, &opts)
	if err != nil {
		return nil, fmt.Errorf("role extraction failed: %w", err)
	}

	emitProgress(&opts, StateExperienceClassification, "Classifying experience level")
	experience := dates.ClassifyExperience(roles, opts.referenceDate())
	if opts.Verbose {
		printer.PrintExperience(experience)
	}

	// Skills and projects extraction are independent of each other; both
	// need only the classified level. Fixed fan-out of exactly two tasks,
	// joined before the assessment.
	emitProgress(&opts, StateGapExtraction, "Extracting skills and projects")
	levelData := opts.Market.ForLevel(experience.Level)

	g, gCtx := errgroup.WithContext(ctx)

	var skills types.SkillsAnalysis
	var projects types.ProjectsAnalysis
	var skillsMu, projectsMu sync.Mutex // Protect result assignments

	g.Go(func() error {
		result, err := extractSkills(gCtx, &opts, experience.Level, levelData)
		if err != nil {
			return fmt.Errorf("skills extraction failed: %w", err)
		}
		skillsMu.Lock()
		skills = result
		skillsMu.Unlock()
		return nil
	})

	g.Go(func() error {
		result, err := extractProjects(gCtx, &opts)
		if err != nil {
			return fmt.Errorf("projects extraction failed: %w", err)
		}
		projectsMu.Lock()
		projects = result
		projectsMu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	emitProgress(&opts, StateAssessmentScoring, "Assessing and scoring resume")
	gap, err := assess(ctx, &opts, experience, skills, projects, levelData)
	if err != nil {
		return nil, fmt.Errorf("assessment failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintGapAnalysis(gap)
	}

	return gap, nil
}

// Improve runs the improvement phase (states 5-8) over a finished gap
// analysis and returns the assembled report.
func Improve(ctx context.Context, opts Options, gap *types.GapAnalysis) (*types.AnalysisReport, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if gap == nil {
		return nil, fmt.Errorf("gap analysis is required")
	}

	printer := observability.NewPrinter(os.Stdout)

	emitProgress(&opts, StateStrategyGeneration, "Generating improvement strategy")
	strategy, err := generateStrategy(ctx, &opts, gap)
	if err != nil {
		return nil, fmt.Errorf("strategy generation failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintStrategy(strategy)
	}

	emitProgress(&opts, StateResumeRewriting, "Rewriting resume")
	improvedText, err := rewriteResume(ctx, &opts, gap, strategy)
	if err != nil {
		return nil, fmt.Errorf("resume rewriting failed: %w", err)
	}

	emitProgress(&opts, StateClassificationAndScoring, "Classifying changes and scoring")
	classification, err := classifyChanges(ctx, &opts, gap, strategy, improvedText)
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintClassification(classification)
	}

	emitProgress(&opts, StateDone, "Assembling report")
	report := assembleReport(opts.Document, gap, strategy, improvedText, classification)
	if opts.Verbose {
		printer.PrintMarketStats(report.MarketStats)
	}

	return report, nil
}
