package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/extraction"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract text and links from a resume file",
	Long:  "Extract the plain text and hyperlinks from a resume (PDF, DOCX, or plain text) and print them as JSON. No generative calls are made.",
	RunE:  runExtract,
}

var (
	extractFile   string
	extractOutput string
)

func init() {
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Path to resume file (required)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Path to output JSON file (defaults to stdout)")
	_ = extractCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	doc, err := extractDocument(extractFile)
	if err != nil {
		return err
	}

	return writeJSON(extractOutput, doc)
}

// extractDocument reads and extracts a resume file from disk.
func extractDocument(path string) (*types.ResumeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	doc, err := extraction.Extract(filepath.Base(path), data)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume text: %w", err)
	}
	return doc, nil
}
