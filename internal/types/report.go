package types

// SkillDemand is one parsed market-demand entry.
type SkillDemand struct {
	Skill      string  `json:"skill"`
	Percentage float64 `json:"percentage"`
	Demand     string  `json:"demand"`
}

// MarketStats is derived purely from GapAnalysis text fields by the
// deterministic postprocessor.
type MarketStats struct {
	JobsAnalyzed         int           `json:"jobs_analyzed"`
	TopSkills            []SkillDemand `json:"top_skills"`
	ResumeHasCount       int           `json:"resume_has"`
	CurriculumCoverCount int           `json:"curriculum_covers"`
}

// Milestone is one point on a learning-progress timeline.
type Milestone struct {
	Month     int    `json:"month"`
	Progress  int    `json:"progress"`
	Milestone string `json:"milestone"`
}

// GapModule links a skill gap to the curriculum module that closes it.
type GapModule struct {
	Gap         string `json:"gap"`
	Module      string `json:"module"`
	Timeline    string `json:"timeline"`
	Description string `json:"description"`
}

// LearningTrack is a progress timeline for one learning path.
type LearningTrack struct {
	Timeline []Milestone `json:"timeline"`
}

// CourseTrack is the curriculum learning path, annotated with the modules
// that address the candidate's specific gaps.
type CourseTrack struct {
	Timeline              []Milestone `json:"timeline"`
	ModulesAddressingGaps []GapModule `json:"modules_addressing_gaps"`
}

// LearningComparison contrasts self-paced learning with the structured
// course path.
type LearningComparison struct {
	Conventional LearningTrack `json:"conventional_learning"`
	Course       CourseTrack   `json:"course_learning"`
}

// OriginalSummary reports the as-submitted resume and its assessment.
type OriginalSummary struct {
	ResumeText        string   `json:"resume_text"`
	JobRelevanceScore int      `json:"job_relevance_score"`
	ATSScore          int      `json:"ats_score"`
	HasSkills         []string `json:"has_skills"`
	MissingSkills     []string `json:"missing_skills"`
	UserLevel         string   `json:"user_level"`
	LevelReasoning    string   `json:"level_reasoning"`
	AnalysisSummary   string   `json:"analysis_summary"`
}

// ImprovedSummary reports the rewritten resume and the tracked changes.
type ImprovedSummary struct {
	ResumeText          string        `json:"resume_text"`
	JobRelevanceScore   int           `json:"job_relevance_score"`
	ATSScore            int           `json:"ats_score"`
	SkillsAdded         []string      `json:"skills_added"`
	SkillsEnhanced      []SkillChange `json:"skills_enhanced"`
	ProjectsAdded       []string      `json:"projects_added"`
	ModificationSummary string        `json:"modification_summary"`
}

// AnalysisReport is the final response payload assembled in the Done state.
// No further mutation happens after assembly.
type AnalysisReport struct {
	Original           OriginalSummary    `json:"original"`
	Improved           ImprovedSummary    `json:"improved"`
	LearningComparison LearningComparison `json:"learning_comparison"`
	MarketStats        MarketStats        `json:"market_stats"`
	CurriculumUsed     []ModuleUsage      `json:"curriculum_used"`
}
