package types

import (
	"time"

	"github.com/dustin/go-humanize"
)

const (
	// FallbackDependencyPercent is reported when either side of the
	// dependency/root size ratio is unavailable or zero.
	FallbackDependencyPercent = 0

	// TopPackages is the number of ranked entries kept in the package table.
	TopPackages = 10

	// MaxTrendCarry bounds how many historical trend rows are carried
	// forward from the previous report into the new one.
	MaxTrendCarry = 4

	// Placeholder is rendered for measurements that could not be taken.
	Placeholder = "N/A"
)

// Measurement is the recursive on-disk size of a single directory.
// Available is false when the path does not exist; consumers substitute
// Placeholder in output and treat the size as zero in arithmetic.
type Measurement struct {
	Label     string `json:"label"`
	Path      string `json:"path"`
	Bytes     int64  `json:"bytes"`
	Available bool   `json:"available"`
}

// Human returns the unit-scaled size string, or Placeholder when the
// measurement is unavailable.
func (m Measurement) Human() string {
	if !m.Available {
		return Placeholder
	}
	return humanize.Bytes(uint64(m.Bytes))
}

// PackageEntry is one installed package ranked by size.
type PackageEntry struct {
	Name    string `json:"name"`
	Bytes   int64  `json:"bytes"`
	Purpose string `json:"purpose"`
}

// PackageStats aggregates the dependency directory contents.
// Available is false when the directory does not exist; Entries then stays
// empty and the report states that no dependency analysis is available.
type PackageStats struct {
	Entries   []PackageEntry `json:"entries"`   // top TopPackages, descending by size
	Installed []string       `json:"installed"` // every immediate child, for presence checks
	Count     int            `json:"count"`     // immediate child count
	FileCount int64          `json:"fileCount"` // recursive file count
	Available bool           `json:"available"`
}

// Has reports whether a package with the given name is installed.
func (p PackageStats) Has(name string) bool {
	for _, n := range p.Installed {
		if n == name {
			return true
		}
	}
	return false
}

// Issue is one tiered recommendation produced by the rule engine.
type Issue struct {
	RuleID      string   `json:"ruleId"`
	Severity    string   `json:"severity"` // high | medium | low
	Description string   `json:"description"`
	Solutions   []string `json:"solutions"`
}

// TrendRow is one line of the size-trend table. Cells are carried verbatim
// between runs so a reformatted report never corrupts older history.
type TrendRow struct {
	Date      string `json:"date"`
	TotalSize string `json:"totalSize"`
	DepsSize  string `json:"depsSize"`
	Packages  string `json:"packages"`
}

// Report is the top-level structure assembled on every run.
type Report struct {
	GeneratedAt       time.Time     `json:"generatedAt"`
	Measurements      []Measurement `json:"measurements"` // fixed order: root, deps, vcs, logs, src, dist, build, coverage
	DependencyPercent int           `json:"dependencyPercent"`
	Packages          PackageStats  `json:"packages"`
	DeclaredDeps      int           `json:"declaredDeps"`
	Issues            []Issue       `json:"issues"`
	Trend             []TrendRow    `json:"trend"`
}

// Root returns the project-root measurement.
func (r *Report) Root() Measurement {
	return r.byLabel("project")
}

// Deps returns the dependency-directory measurement.
func (r *Report) Deps() Measurement {
	return r.byLabel("node_modules")
}

func (r *Report) byLabel(label string) Measurement {
	for _, m := range r.Measurements {
		if m.Label == label {
			return m
		}
	}
	return Measurement{Label: label}
}
