package rules

import (
	"testing"

	"github.com/example/paydemo/internal/config"
	"github.com/example/paydemo/internal/types"
)

func reportWith(depsBytes int64, installed ...string) *types.Report {
	return &types.Report{
		Measurements: []types.Measurement{
			{Label: "project", Bytes: depsBytes * 2, Available: true},
			{Label: "node_modules", Bytes: depsBytes, Available: true},
		},
		Packages: types.PackageStats{
			Installed: installed,
			Available: true,
		},
		Issues: []types.Issue{},
	}
}

func TestEvaluate_ProducesExpectedRuleIDs(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.DepsBloat.SizeThreshold = 1000

	report := reportWith(1500, "moment", "async", "lodash")
	Evaluate(report, cfg)

	seen := map[string]string{}
	for _, is := range report.Issues {
		seen[is.RuleID] = is.Severity
	}

	if sev, ok := seen[RuleDepsBloat]; !ok || sev != "medium" {
		t.Fatalf("expected medium %s, got %+v", RuleDepsBloat, seen)
	}
	if sev, ok := seen[RuleDateLib]; !ok || sev != "medium" {
		t.Fatalf("expected medium %s, got %+v", RuleDateLib, seen)
	}
	if sev, ok := seen[RuleAsyncLib]; !ok || sev != "low" {
		t.Fatalf("expected low %s, got %+v", RuleAsyncLib, seen)
	}
	if _, ok := seen[RuleNoAction]; ok {
		t.Fatalf("default entry must not appear when rules fired: %+v", seen)
	}
}

func TestEvaluate_BloatEscalatesToHigh(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.DepsBloat.SizeThreshold = 1000

	report := reportWith(2500)
	Evaluate(report, cfg)

	if !Fired(report, RuleDepsBloat) {
		t.Fatalf("expected %s to fire", RuleDepsBloat)
	}
	if report.Issues[0].Severity != "high" {
		t.Fatalf("expected high severity above twice the threshold, got %s", report.Issues[0].Severity)
	}
}

func TestEvaluate_DefaultEntryWhenNothingFires(t *testing.T) {
	cfg := config.Default()
	report := reportWith(100, "lodash", "express")

	Evaluate(report, cfg)

	if len(report.Issues) != 1 || report.Issues[0].RuleID != RuleNoAction {
		t.Fatalf("expected only the default entry, got %+v", report.Issues)
	}
}

func TestEvaluate_UnavailableDepsNeverFlagsBloat(t *testing.T) {
	cfg := config.Default()
	report := &types.Report{
		Measurements: []types.Measurement{
			{Label: "project", Bytes: 100, Available: true},
			{Label: "node_modules"},
		},
		Issues: []types.Issue{},
	}

	Evaluate(report, cfg)

	if Fired(report, RuleDepsBloat) {
		t.Fatalf("bloat rule must not fire on an unavailable measurement")
	}
}

func TestEvaluate_DeterministicSeverityOrdering(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.DepsBloat.SizeThreshold = 10

	report := reportWith(100, "moment", "async")
	Evaluate(report, cfg)

	rank := map[string]int{"high": 0, "medium": 1, "low": 2}
	for i := 1; i < len(report.Issues); i++ {
		if rank[report.Issues[i-1].Severity] > rank[report.Issues[i].Severity] {
			t.Fatalf("issues not ordered by severity: %+v", report.Issues)
		}
	}
}
