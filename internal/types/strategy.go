package types

// SkillEnhancement describes upgrading a skill the resume already has with
// advanced curriculum topics.
type SkillEnhancement struct {
	Base     string `json:"base"`
	Enhanced string `json:"enhanced"`
	Module   string `json:"module,omitempty"`
}

// SkillAddition describes a missing skill to add, mapped to the curriculum
// module that teaches it.
type SkillAddition struct {
	Skill  string `json:"skill"`
	Module string `json:"module,omitempty"`
}

// KeywordSpecific breaks a missing keyword down into concrete sub-skills.
type KeywordSpecific struct {
	Keyword   string   `json:"keyword"`
	Specifics []string `json:"specifics"`
	Module    string   `json:"module,omitempty"`
}

// SkillStrategy is the planned set of skill changes.
type SkillStrategy struct {
	SkillsToEnhance  []SkillEnhancement `json:"skills_to_enhance"`
	SkillsToAdd      []SkillAddition    `json:"skills_to_add"`
	KeywordSpecifics []KeywordSpecific  `json:"keyword_specifics,omitempty"`
}

// ProjectAddition is a curriculum case study turned into a resume project.
type ProjectAddition struct {
	Name         string   `json:"name"`
	Module       string   `json:"module,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// ProjectStrategy is the planned set of project changes.
type ProjectStrategy struct {
	ProjectsRemoved   []string          `json:"projects_removed"`
	ProjectsKept      []string          `json:"projects_kept"`
	ProjectsAdded     []ProjectAddition `json:"projects_added"`
	FinalProjectCount int               `json:"final_project_count"`
}

// ModuleUsage tracks how one curriculum module was applied to the resume.
type ModuleUsage struct {
	Module                 string   `json:"module"`
	AddressesGaps          []string `json:"addresses_gaps,omitempty"`
	ProjectsIncluded       []string `json:"projects_included,omitempty"`
	SkillsAddedFromModule  []string `json:"skills_added_from_module,omitempty"`
	SkillsEnhancedByModule []string `json:"skills_enhanced_by_module,omitempty"`
	Timeline               string   `json:"timeline,omitempty"`
	HowUsed                string   `json:"how_used,omitempty"`
}

// CurriculumMapping lists every curriculum module the strategy drew from.
type CurriculumMapping struct {
	ModulesUsed []ModuleUsage `json:"modules_used"`
}

// Strategy is the single source of truth for planned resume changes.
// All later classification must be derivable from it.
type Strategy struct {
	SkillStrategy     SkillStrategy     `json:"skill_strategy"`
	ProjectStrategy   ProjectStrategy   `json:"project_strategy"`
	CurriculumMapping CurriculumMapping `json:"curriculum_mapping"`
}

// SkillChange records one enhancement as an original/improved pair.
type SkillChange struct {
	Original string `json:"original"`
	Improved string `json:"improved"`
}

// Classification is the final reported list of applied changes. When its
// cardinalities disagree with the Strategy it was derived from, it is
// discarded and rebuilt from the Strategy.
type Classification struct {
	SkillsEnhanced []SkillChange `json:"skills_enhanced"`
	SkillsAdded    []string      `json:"skills_added"`
	ProjectsAdded  []string      `json:"projects_added"`
}
