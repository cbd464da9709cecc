package report

import (
	"fmt"
	"strings"

	"github.com/example/paydemo/internal/rules"
	"github.com/example/paydemo/internal/types"
)

// Section headers, fixed order. trendHeader doubles as the anchor the trend
// parser looks for in the previous report.
const (
	titleHeader       = "# Dependency Disk Usage Report"
	overviewHeader    = "## Directory Overview"
	packagesHeader    = "## Dependency Packages"
	statsHeader       = "## Package Statistics"
	recommendHeader   = "## Optimization Recommendations"
	maintenanceHeader = "## Maintenance Commands"
	trendHeader       = "## Size Trend"
	practicesHeader   = "## Best Practices"
)

const maintenanceCommands = "```bash\n" +
	"# Re-install only what the manifest declares\n" +
	"npm prune\n\n" +
	"# Flatten duplicated transitive dependencies\n" +
	"npm dedupe\n\n" +
	"# Clear the package cache\n" +
	"npm cache clean --force\n\n" +
	"# Inspect the dependency directory by hand\n" +
	"du -sh node_modules/* | sort -rh | head -20\n" +
	"```\n"

// Render assembles the full Markdown document from an evaluated report.
// Unavailable measurements have already been reduced to placeholders by
// their own types, so rendering never fails.
func Render(r *types.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n**Generated:** %s\n\n", titleHeader, r.GeneratedAt.Format("2006-01-02 15:04:05"))

	// Directory overview
	fmt.Fprintf(&b, "%s\n\n", overviewHeader)
	b.WriteString("| Directory | Path | Size |\n")
	b.WriteString("|-----------|------|------|\n")
	for _, m := range r.Measurements {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", m.Label, m.Path, m.Human())
	}
	fmt.Fprintf(&b, "\nDependencies occupy **%d%%** of the project size.\n\n", r.DependencyPercent)

	// Package table
	fmt.Fprintf(&b, "%s\n\n", packagesHeader)
	if len(r.Packages.Entries) == 0 {
		b.WriteString("No dependency analysis available: the dependency directory is missing or empty.\n\n")
	} else {
		fmt.Fprintf(&b, "Top %d packages by size:\n\n", len(r.Packages.Entries))
		b.WriteString("| Package | Size | Purpose |\n")
		b.WriteString("|---------|------|---------|\n")
		for _, p := range r.Packages.Entries {
			m := types.Measurement{Bytes: p.Bytes, Available: true}
			fmt.Fprintf(&b, "| %s | %s | %s |\n", p.Name, m.Human(), p.Purpose)
		}
		b.WriteString("\n")
	}

	// Statistics
	fmt.Fprintf(&b, "%s\n\n", statsHeader)
	fmt.Fprintf(&b, "- **Installed packages:** %d\n", r.Packages.Count)
	fmt.Fprintf(&b, "- **Total files:** %d\n", r.Packages.FileCount)
	fmt.Fprintf(&b, "- **Declared dependencies:** %d\n\n", r.DeclaredDeps)

	// Recommendations, grouped by tier
	fmt.Fprintf(&b, "%s\n\n", recommendHeader)
	for _, tier := range []string{"high", "medium", "low"} {
		issues := issuesBySeverity(r, tier)
		if len(issues) == 0 {
			continue
		}
		fmt.Fprintf(&b, "### %s Priority\n\n", strings.Title(tier))
		for _, is := range issues {
			fmt.Fprintf(&b, "%s\n\n", is.Description)
			for i, sol := range is.Solutions {
				fmt.Fprintf(&b, "%d. %s\n", i+1, sol)
			}
			b.WriteString("\n")
		}
	}

	// Maintenance commands
	fmt.Fprintf(&b, "%s\n\n%s\n", maintenanceHeader, maintenanceCommands)

	// Size trend: carried history first, current run appended last
	fmt.Fprintf(&b, "%s\n\n", trendHeader)
	b.WriteString("| Date | Total Size | Dependencies | Packages |\n")
	b.WriteString("|------|------------|--------------|----------|\n")
	for _, row := range r.Trend {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", row.Date, row.TotalSize, row.DepsSize, row.Packages)
	}
	fmt.Fprintf(&b, "| %s | %s | %s | %d |\n\n",
		r.GeneratedAt.Format("2006-01-02 15:04"), r.Root().Human(), r.Deps().Human(), r.Packages.Count)

	// Best practices, keyed off the same rule hits
	fmt.Fprintf(&b, "%s\n\n", practicesHeader)
	b.WriteString("- Keep the manifest's dependency sections minimal; remove what the code no longer imports.\n")
	b.WriteString("- Prefer a lockfile-driven install in CI so the dependency directory stays reproducible.\n")
	if rules.Fired(r, rules.RuleDateLib) {
		b.WriteString("- Favor small, tree-shakeable date libraries over monolithic ones.\n")
	}
	if rules.Fired(r, rules.RuleAsyncLib) {
		b.WriteString("- Lean on native async/await instead of control-flow helper packages.\n")
	}
	if rules.Fired(r, rules.RuleDepsBloat) {
		b.WriteString("- Re-run this report after pruning to confirm the dependency share goes down.\n")
	}

	return b.String()
}

func issuesBySeverity(r *types.Report, severity string) []types.Issue {
	var out []types.Issue
	for _, is := range r.Issues {
		if is.Severity == severity {
			out = append(out, is)
		}
	}
	return out
}
