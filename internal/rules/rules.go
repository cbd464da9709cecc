package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/paydemo/internal/config"
	"github.com/example/paydemo/internal/types"
)

// Rule IDs produced by Evaluate. The report's best-practices section keys
// off these, so renaming one is a report-format change.
const (
	RuleDepsBloat = "DEPS_SIZE_HIGH"
	RuleDateLib   = "DATE_LIB_REPLACEABLE"
	RuleAsyncLib  = "ASYNC_LIB_OBSOLETE"
	RuleNoAction  = "NO_ACTION_NEEDED"
)

// Evaluate runs all recommendation rules and appends issues to
// report.Issues. It also ensures deterministic ordering of report.Issues.
// When no rule fires, a single default "no action needed" entry is added so
// the recommendations section is never empty.
func Evaluate(report *types.Report, cfg *config.Config) {
	if report == nil || cfg == nil {
		return
	}

	// DEPS_SIZE_HIGH
	deps := report.Deps()
	threshold := cfg.Rules.DepsBloat.SizeThreshold
	if deps.Available && threshold > 0 && deps.Bytes > threshold {
		severity := "medium"
		if deps.Bytes > threshold*2 {
			severity = "high"
		}
		report.Issues = append(report.Issues, types.Issue{
			RuleID:      RuleDepsBloat,
			Severity:    severity,
			Description: fmt.Sprintf("Dependency directory is %s, exceeding threshold of %d bytes", deps.Human(), threshold),
			Solutions: []string{
				"Run 'npm prune' to drop packages no longer declared in the manifest.",
				"Run 'npm dedupe' to flatten duplicated transitive dependencies.",
				"Audit the largest packages in the report table and remove unused ones.",
			},
		})
	}

	// DATE_LIB_REPLACEABLE
	if report.Packages.Has("moment") {
		report.Issues = append(report.Issues, types.Issue{
			RuleID:      RuleDateLib,
			Severity:    "medium",
			Description: "The 'moment' date/time library is installed; it is large and in maintenance mode.",
			Solutions: []string{
				"Replace 'moment' with 'dayjs' or 'date-fns' for a fraction of the size.",
				"Check whether native Intl.DateTimeFormat already covers the use cases.",
			},
		})
	}

	// ASYNC_LIB_OBSOLETE
	if report.Packages.Has("async") {
		report.Issues = append(report.Issues, types.Issue{
			RuleID:      RuleAsyncLib,
			Severity:    "low",
			Description: "The 'async' control-flow library is installed; native promises usually make it unnecessary.",
			Solutions: []string{
				"Review whether async/await and Promise.all can replace the 'async' package.",
			},
		})
	}

	if len(report.Issues) == 0 {
		report.Issues = append(report.Issues, types.Issue{
			RuleID:      RuleNoAction,
			Severity:    "low",
			Description: "Dependency footprint looks reasonable.",
			Solutions:   []string{"No action needed."},
		})
	}

	// Deterministic ordering for diff-friendly output
	severityRank := func(s string) int {
		switch strings.ToLower(s) {
		case "high":
			return 0
		case "medium":
			return 1
		case "low":
			return 2
		default:
			return 3
		}
	}
	sort.SliceStable(report.Issues, func(i, j int) bool {
		if severityRank(report.Issues[i].Severity) != severityRank(report.Issues[j].Severity) {
			return severityRank(report.Issues[i].Severity) < severityRank(report.Issues[j].Severity)
		}
		return report.Issues[i].RuleID < report.Issues[j].RuleID
	})
}

// Fired reports whether an issue with the given rule ID is present.
func Fired(report *types.Report, ruleID string) bool {
	for _, is := range report.Issues {
		if is.RuleID == ruleID {
			return true
		}
	}
	return false
}
