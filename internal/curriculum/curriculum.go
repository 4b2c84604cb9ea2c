// Package curriculum loads the course curriculum the improvement stages draw
// on and renders it as prompt text. One curriculum ships embedded; a file
// path can override it for deployments tracking a newer course revision.
package curriculum

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

//go:embed data/curriculum.json
var embedded []byte

// Module is one course module with its topics and hands-on case studies.
type Module struct {
	Name        string   `json:"module"`
	Topics      []string `json:"topics"`
	CaseStudies []string `json:"caseStudies"`
}

// Curriculum is the loaded course structure.
type Curriculum struct {
	Modules []Module `json:"curriculum"`
}

// focusSkills is the fixed technical-skill vocabulary the curriculum teaches.
// The skills stage filters market gaps down to this list so the strategy
// never plans around skills the course cannot deliver.
var focusSkills = []string{
	"Excel", "Power BI", "SQL", "MySQL", "Python", "NumPy", "Pandas",
	"Matplotlib", "Seaborn", "Statistics", "EDA", "Power Query", "DAX",
	"Generative AI",
}

// FocusSkills returns the curriculum's technical-skill vocabulary.
func FocusSkills() []string {
	out := make([]string, len(focusSkills))
	copy(out, focusSkills)
	return out
}

// LoadEmbedded parses the compiled-in curriculum.
func LoadEmbedded() (*Curriculum, error) {
	return parse(embedded)
}

// Load parses a curriculum from a JSON file on disk.
func Load(path string) (*Curriculum, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read curriculum %s: %w", path, err)
	}
	return parse(raw)
}

func parse(raw []byte) (*Curriculum, error) {
	var c Curriculum
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("failed to parse curriculum: %w", err)
	}
	if len(c.Modules) == 0 {
		return nil, fmt.Errorf("curriculum has no modules")
	}
	return &c, nil
}

// ModuleNames lists the module names in curriculum order.
func (c *Curriculum) ModuleNames() []string {
	names := make([]string, 0, len(c.Modules))
	for _, m := range c.Modules {
		names = append(names, m.Name)
	}
	return names
}

// FormatForPrompt renders the curriculum as the markdown block the strategy
// and rewrite prompts consume.
func (c *Curriculum) FormatForPrompt() string {
	var sb strings.Builder
	sb.WriteString("# Data Analytics Course Curriculum\n")

	for _, m := range c.Modules {
		fmt.Fprintf(&sb, "\n## %s\n", m.Name)
		sb.WriteString("\n### Topics Covered:\n")
		for _, topic := range m.Topics {
			fmt.Fprintf(&sb, "- %s\n", topic)
		}
		if len(m.CaseStudies) > 0 {
			sb.WriteString("\n### Case Studies:\n")
			for _, cs := range m.CaseStudies {
				fmt.Fprintf(&sb, "- %s\n", cs)
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
