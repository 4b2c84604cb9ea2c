package types

// ExperienceLevel classifies a candidate's total qualifying work experience.
type ExperienceLevel string

// Experience level constants. Thresholds live in the dates package.
const (
	LevelFresher      ExperienceLevel = "Fresher"
	LevelIntermediate ExperienceLevel = "Intermediate"
	LevelExperienced  ExperienceLevel = "Experienced"
)

// QualifyingRole is a work-history entry the role-extraction stage judged
// relevant to the target domain. Dates are punctuation-normalized strings,
// not yet resolved to calendar values.
type QualifyingRole struct {
	Title        string `json:"title"`
	Company      string `json:"company"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	IsInternship bool   `json:"is_internship"`
}

// RoleDuration records the resolved duration arithmetic for one role.
type RoleDuration struct {
	Title   string  `json:"title"`
	Company string  `json:"company,omitempty"`
	Start   string  `json:"start"`
	End     string  `json:"end"`
	Months  int     `json:"months"`
	Years   float64 `json:"years"`
}

// ExperienceResult is the deterministic classification of a candidate's
// experience. It is never produced by the generative service.
type ExperienceResult struct {
	Level            ExperienceLevel `json:"level"`
	TotalMonths      int             `json:"total_months"`
	TotalYears       float64         `json:"total_years"`
	Reasoning        string          `json:"reasoning"`
	RoleCalculations []RoleDuration  `json:"role_calculations"`
}

// SkillsAnalysis splits the candidate's technical skills into what the
// resume already shows versus what the market demands but the resume lacks.
type SkillsAnalysis struct {
	HasSkills     []string `json:"has_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// ProjectsAnalysis lists the projects worth keeping and the off-domain
// projects to drop.
type ProjectsAnalysis struct {
	ProjectsToKeep   []string `json:"projects_to_keep"`
	ProjectsToRemove []string `json:"projects_to_remove"`
}

// KeywordsAnalysis compares resume keywords with the market keyword set.
type KeywordsAnalysis struct {
	PresentKeywords []string `json:"present_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
}

// JobMarketAnalysis carries the market snapshot used for the assessment.
// TopSkills entries follow the "<Skill> (appears in X%) - Demand: Y" form
// the market package formats and later parses back.
type JobMarketAnalysis struct {
	JobsAnalyzed int      `json:"jobs_analyzed"`
	TopSkills    []string `json:"top_skills"`
}

// ATSAnalysis holds the short ATS-compatibility reasoning.
type ATSAnalysis struct {
	Reasoning string `json:"reasoning"`
}

// Scores holds the 0-100 assessment scores.
type Scores struct {
	JobRelevanceScore int    `json:"job_relevance_score"`
	ATSScore          int    `json:"ats_score"`
	ScoreReasoning    string `json:"score_reasoning,omitempty"`
}

// GapAnalysis aggregates every assessment stage output for one resume.
// It is owned by a single analysis session and passed by value into the
// improvement phase.
type GapAnalysis struct {
	Experience      ExperienceResult  `json:"experience"`
	Skills          SkillsAnalysis    `json:"skills_analysis"`
	Projects        ProjectsAnalysis  `json:"projects_analysis"`
	Keywords        KeywordsAnalysis  `json:"keywords_analysis"`
	ATS             ATSAnalysis       `json:"ats_analysis"`
	JobMarket       JobMarketAnalysis `json:"job_market_analysis"`
	Scores          Scores            `json:"scores"`
	AnalysisSummary string            `json:"analysis_summary"`
}
