// Package market loads the pre-analyzed job-market demand data and derives
// prompt text and reporting statistics from it. One JSON file per experience
// tier ships embedded; a data directory can override them at startup. The
// files are read once and treated as read-only for the process lifetime.
package market

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/types"
)

//go:embed data/*.json
var dataFS embed.FS

// levelFiles maps each experience tier to its data file name.
var levelFiles = map[types.ExperienceLevel]string{
	types.LevelFresher:      "fresher.json",
	types.LevelIntermediate: "intermediate.json",
	types.LevelExperienced:  "experienced.json",
}

// LevelData is the pre-analyzed snapshot for one experience tier. Percentage
// values are stored as strings ("91.01%") exactly as the analysis files carry
// them; use parsePercent for arithmetic.
type LevelData struct {
	TotalJobsAnalyzed     int               `json:"total_jobs_analyzed"`
	MostDemandedSkills    map[string]string `json:"most_demanded_skills"`
	SoftSkills            map[string]string `json:"soft_skills"`
	Roles                 map[string]string `json:"roles"`
	EducationalBackground map[string]string `json:"educational_background"`
}

// Data holds the three per-tier snapshots.
type Data struct {
	levels map[types.ExperienceLevel]*LevelData
}

// LoadEmbedded reads the compiled-in analysis files.
func LoadEmbedded() (*Data, error) {
	return load(func(name string) ([]byte, error) {
		return dataFS.ReadFile("data/" + name)
	})
}

// Load reads the analysis files from a directory, for deployments that swap
// in fresher market snapshots without rebuilding.
func Load(dir string) (*Data, error) {
	return load(func(name string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, name))
	})
}

func load(read func(name string) ([]byte, error)) (*Data, error) {
	levels := make(map[types.ExperienceLevel]*LevelData, len(levelFiles))
	for level, name := range levelFiles {
		raw, err := read(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read market data %s: %w", name, err)
		}
		var data LevelData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("failed to parse market data %s: %w", name, err)
		}
		levels[level] = &data
	}
	return &Data{levels: levels}, nil
}

// ForLevel returns the snapshot for a tier, falling back to the fresher data
// for any unrecognized level value.
func (d *Data) ForLevel(level types.ExperienceLevel) *LevelData {
	if data, ok := d.levels[level]; ok {
		return data
	}
	return d.levels[types.LevelFresher]
}

// skillPercent is one skill with its parsed demand percentage.
type skillPercent struct {
	Name    string
	Percent float64
}

// sortedByPercent orders a percentage map descending, ties broken by name so
// output is deterministic across runs.
func sortedByPercent(m map[string]string) []skillPercent {
	entries := make([]skillPercent, 0, len(m))
	for name, pct := range m {
		entries = append(entries, skillPercent{Name: name, Percent: parsePercent(pct)})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Percent != entries[j].Percent {
			return entries[i].Percent > entries[j].Percent
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// parsePercent reads "91.01%" or "91.01" as 91.01; malformed values count
// as zero demand rather than failing the whole snapshot.
func parsePercent(s string) float64 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
