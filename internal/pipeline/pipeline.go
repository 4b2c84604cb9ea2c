// Package pipeline provides the high-level orchestration for the resume
// analysis and improvement process.
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/curriculum"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/llm"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/market"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

// State identifies one pipeline stage. States run strictly in order; the
// skills and projects extractions share state 3 and run concurrently.
type State int

const (
	StateRoleExtraction State = iota + 1
	StateExperienceClassification
	StateGapExtraction
	StateAssessmentScoring
	StateStrategyGeneration
	StateResumeRewriting
	StateClassificationAndScoring
	StateDone
)

// stateCount is the total number of states reported in progress output.
const stateCount = 8

func (s State) String() string {
	switch s {
	case StateRoleExtraction:
		return "role extraction"
	case StateExperienceClassification:
		return "experience classification"
	case StateGapExtraction:
		return "skills and projects extraction"
	case StateAssessmentScoring:
		return "assessment and scoring"
	case StateStrategyGeneration:
		return "strategy generation"
	case StateResumeRewriting:
		return "resume rewriting"
	case StateClassificationAndScoring:
		return "classification and scoring"
	case StateDone:
		return "report assembly"
	default:
		return fmt.Sprintf("state %d", int(s))
	}
}

// ProgressEvent represents a progress update during pipeline execution.
type ProgressEvent struct {
	State   State  `json:"state"`
	Total   int    `json:"total"`
	Message string `json:"message"`
}

// ProgressCallback is called when pipeline progress occurs.
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for running the pipeline.
type Options struct {
	Client        llm.Client
	Market        *market.Data
	Curriculum    *curriculum.Curriculum
	Document      *types.ResumeDocument
	ReferenceDate string // "January 2006" form; empty means the current month
	OnProgress    ProgressCallback
	Verbose       bool
}

func (o *Options) validate() error {
	switch {
	case o.Client == nil:
		return fmt.Errorf("completion client is required")
	case o.Market == nil:
		return fmt.Errorf("market data is required")
	case o.Curriculum == nil:
		return fmt.Errorf("curriculum is required")
	case o.Document == nil || strings.TrimSpace(o.Document.Text) == "":
		return fmt.Errorf("resume document is required")
	}
	return nil
}

// referenceDate resolves the date all duration arithmetic is relative to.
func (o *Options) referenceDate() string {
	if o.ReferenceDate != "" {
		return o.ReferenceDate
	}
	return time.Now().Format("January 2006")
}

// certificationYear is the expected completion year printed on the added
// certification line, the year after the current one.
func (o *Options) certificationYear() int {
	return time.Now().Year() + 1
}

// emitProgress calls the progress callback if configured.
func emitProgress(opts *Options, state State, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{State: state, Total: stateCount, Message: message})
	}
}

// Stage generation profiles. Extraction-style calls run cold and small,
// the assessment slightly warmer, strategy and rewrite warmest with the
// widest output budget.
const (
	extractionBudget int32 = 800
	assessmentBudget int32 = 900
	generationBudget int32 = 3500

	extractionTemperature float32 = 0.0
	assessmentTemperature float32 = 0.1
	generationTemperature float32 = 0.2
)

// retryBudget widens a stage budget by half for the single retry attempt.
func retryBudget(initial int32) int32 {
	return initial + initial/2
}
