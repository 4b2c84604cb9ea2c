package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/config"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/curriculum"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/llm"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/logging"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/market"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/pipeline"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full gap analysis and rewrite for a resume file",
	Long: `Runs the whole pipeline against one resume: work-history extraction, experience
classification, skill and project gap analysis, scoring, and the curriculum-backed rewrite.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath    string
	analyzeFile          string
	analyzeProvider      string
	analyzeAPIKey        string
	analyzeReferenceDate string
	analyzeMarketDir     string
	analyzeCurriculum    string
	analyzeOutput        string
	analyzeVerbose       bool
)

func init() {
	// Config file flag (processed first)
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to resume file (PDF, DOCX, or plain text)")
	analyzeCmd.Flags().StringVar(&analyzeProvider, "provider", "", "Completion provider: openai or gemini (default openai)")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Provider API key (defaults to OPENAI_API_KEY or GEMINI_API_KEY env var)")
	analyzeCmd.Flags().StringVar(&analyzeReferenceDate, "reference-date", "", `Anchor for duration math, e.g. "April 2025" (defaults to the current month)`)
	analyzeCmd.Flags().StringVar(&analyzeMarketDir, "market-dir", "", "Directory with per-level market JSON (defaults to embedded data)")
	analyzeCmd.Flags().StringVar(&analyzeCurriculum, "curriculum", "", "Curriculum JSON file (defaults to embedded data)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Path to output report JSON file (defaults to stdout)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print stage summaries while the pipeline runs")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("file") {
		cfg.Resume = analyzeFile
	}
	if cmd.Flags().Changed("provider") {
		cfg.Provider = analyzeProvider
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("reference-date") {
		cfg.ReferenceDate = analyzeReferenceDate
	}
	if cmd.Flags().Changed("market-dir") {
		cfg.MarketDir = analyzeMarketDir
	}
	if cmd.Flags().Changed("curriculum") {
		cfg.CurriculumPath = analyzeCurriculum
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = analyzeOutput
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Provider: string(llm.ProviderOpenAI),
	})

	// Step 4: Validate merged config and required fields
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--file is required (via flag or config)")
	}

	// Step 5: API key handling
	cfg.ResolveAPIKey()
	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required (set OPENAI_API_KEY or GEMINI_API_KEY, or use --api-key)")
	}

	logging.Setup(cfg.Verbose)

	doc, err := extractDocument(cfg.Resume)
	if err != nil {
		return err
	}

	marketData, course, err := loadAnalysisData(cfg.MarketDir, cfg.CurriculumPath)
	if err != nil {
		return err
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfigFor(llm.Provider(cfg.Provider)), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create completion client: %w", err)
	}
	defer client.Close()

	opts := pipeline.Options{
		Client:        client,
		Market:        marketData,
		Curriculum:    course,
		Document:      doc,
		ReferenceDate: cfg.ReferenceDate,
		Verbose:       cfg.Verbose,
		OnProgress: func(event pipeline.ProgressEvent) {
			fmt.Printf("Step %d/%d: %s\n", int(event.State), event.Total, event.Message)
		},
	}

	report, err := pipeline.Run(ctx, opts)
	if err != nil {
		return err
	}

	if err := writeJSON(cfg.Output, report); err != nil {
		return err
	}
	if cfg.Output != "" {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", cfg.Output)
	}
	return nil
}

// loadAnalysisData loads the market snapshots and the curriculum, preferring
// on-disk overrides when paths are configured.
func loadAnalysisData(marketDir, curriculumPath string) (*market.Data, *curriculum.Curriculum, error) {
	var (
		marketData *market.Data
		err        error
	)
	if marketDir != "" {
		marketData, err = market.Load(marketDir)
	} else {
		marketData, err = market.LoadEmbedded()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load market data: %w", err)
	}

	var course *curriculum.Curriculum
	if curriculumPath != "" {
		course, err = curriculum.Load(curriculumPath)
	} else {
		course, err = curriculum.LoadEmbedded()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load curriculum: %w", err)
	}

	return marketData, course, nil
}
