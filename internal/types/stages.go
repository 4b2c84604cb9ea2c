package types

// Stage envelope types for generative outputs. Unmarshalling into these
// drops any field the stage contract does not declare, so unexpected keys
// from the completion service disappear at the deserialization boundary.

// RoleExtractionResult is the role-extraction stage output.
type RoleExtractionResult struct {
	Roles []QualifyingRole `json:"roles"`
}

// AssessmentResult is the assessment/scoring stage output. It is merged
// with the extraction stages into a GapAnalysis.
type AssessmentResult struct {
	Keywords        KeywordsAnalysis  `json:"keywords_analysis"`
	ATS             ATSAnalysis       `json:"ats_analysis"`
	Scores          Scores            `json:"scores"`
	JobMarket       JobMarketAnalysis `json:"job_market_analysis"`
	AnalysisSummary string            `json:"analysis_summary"`
}

// RewriteResult is the resume-rewriting stage output.
type RewriteResult struct {
	ImprovedText string `json:"improved_text"`
}

// ClassificationResult is the classification/scoring stage output for the
// rewritten resume.
type ClassificationResult struct {
	Classification
	JobRelevanceScore    int    `json:"job_relevance_score"`
	ATSScore             int    `json:"ats_score"`
	EstimatedImprovement int    `json:"estimated_improvement,omitempty"`
	ModificationSummary  string `json:"modification_summary"`
}
