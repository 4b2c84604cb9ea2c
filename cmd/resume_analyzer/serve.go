package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/config"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/llm"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/logging"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/server"
)

const defaultPort = 8080

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the HTTP API that accepts resume uploads and serves gap-analysis and
rewrite results per session.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runServe,
}

var (
	serveConfigPath    string
	servePort          int
	serveProvider      string
	serveAPIKey        string
	serveMarketDir     string
	serveCurriculum    string
	serveReferenceDate string
	serveVerbose       bool
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (defaults to PORT env var, then 8080)")
	serveCmd.Flags().StringVar(&serveProvider, "provider", "", "Completion provider: openai or gemini (default openai)")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Provider API key (defaults to OPENAI_API_KEY or GEMINI_API_KEY env var)")
	serveCmd.Flags().StringVar(&serveMarketDir, "market-dir", "", "Directory with per-level market JSON (defaults to embedded data)")
	serveCmd.Flags().StringVar(&serveCurriculum, "curriculum", "", "Curriculum JSON file (defaults to embedded data)")
	serveCmd.Flags().StringVar(&serveReferenceDate, "reference-date", "", `Anchor for duration math, e.g. "April 2025" (defaults to the current month)`)
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var cfg config.Config
	if serveConfigPath != "" {
		loadedCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("provider") {
		cfg.Provider = serveProvider
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = serveAPIKey
	}
	if cmd.Flags().Changed("market-dir") {
		cfg.MarketDir = serveMarketDir
	}
	if cmd.Flags().Changed("curriculum") {
		cfg.CurriculumPath = serveCurriculum
	}
	if cmd.Flags().Changed("reference-date") {
		cfg.ReferenceDate = serveReferenceDate
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = serveVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Provider: string(llm.ProviderOpenAI),
		Port:     portFromEnv(),
	})

	// Step 4: Validate merged config
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Step 5: API key handling
	cfg.ResolveAPIKey()
	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required (set OPENAI_API_KEY or GEMINI_API_KEY, or use --api-key)")
	}

	logging.Setup(cfg.Verbose)

	srv, err := server.New(context.Background(), server.Config{
		Port:           cfg.Port,
		Provider:       cfg.Provider,
		APIKey:         cfg.APIKey,
		MarketDir:      cfg.MarketDir,
		CurriculumPath: cfg.CurriculumPath,
		ReferenceDate:  cfg.ReferenceDate,
	})
	if err != nil {
		return err
	}

	return srv.Start()
}

// portFromEnv resolves the fallback listen port: PORT env var, then 8080.
func portFromEnv() int {
	if raw := os.Getenv("PORT"); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil {
			return port
		}
	}
	return defaultPort
}
