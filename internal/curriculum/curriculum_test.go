package curriculum

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)
	require.NotEmpty(t, c.Modules)

	names := c.ModuleNames()
	assert.Contains(t, names, "SQL & Databases")
	assert.Contains(t, names, "Python for Data Analysis")

	for _, m := range c.Modules {
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Topics, "module %s has no topics", m.Name)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curriculum.json")
	doc := `{"curriculum": [{"module": "SQL", "topics": ["Joins"], "caseStudies": ["Orders"]}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Modules, 1)
	assert.Equal(t, "SQL", c.Modules[0].Name)
	assert.Equal(t, []string{"Joins"}, c.Modules[0].Topics)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"curriculum": []}`), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "no modules")
}

func TestFormatForPrompt(t *testing.T) {
	c := &Curriculum{Modules: []Module{
		{
			Name:        "SQL & Databases",
			Topics:      []string{"Joins", "Window functions"},
			CaseStudies: []string{"Order Funnel Analysis"},
		},
		{
			Name:   "Statistics",
			Topics: []string{"Hypothesis testing"},
		},
	}}

	text := c.FormatForPrompt()
	assert.True(t, strings.HasPrefix(text, "# Data Analytics Course Curriculum"))
	assert.Contains(t, text, "## SQL & Databases")
	assert.Contains(t, text, "### Topics Covered:\n- Joins\n- Window functions")
	assert.Contains(t, text, "### Case Studies:\n- Order Funnel Analysis")
	assert.Contains(t, text, "## Statistics")

	// Modules without case studies omit the section entirely.
	statsIdx := strings.Index(text, "## Statistics")
	assert.NotContains(t, text[statsIdx:], "### Case Studies:")
}

func TestFocusSkills_ReturnsCopy(t *testing.T) {
	first := FocusSkills()
	require.NotEmpty(t, first)
	first[0] = "mutated"
	assert.NotEqual(t, first[0], FocusSkills()[0])
	assert.Contains(t, FocusSkills(), "Generative AI")
	assert.Len(t, FocusSkills(), 14)
}
