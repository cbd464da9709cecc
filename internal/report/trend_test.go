package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/example/paydemo/internal/types"
)

func TestLoadTrend_MissingFileYieldsNoRows(t *testing.T) {
	rows, err := LoadTrend(filepath.Join(t.TempDir(), "report.md"))
	if err != nil {
		t.Fatalf("missing report must not be an error, got %v", err)
	}
	if rows != nil {
		t.Fatalf("expected no rows, got %+v", rows)
	}
}

func TestLoadTrend_ParsesRenderedReport(t *testing.T) {
	r := sampleReport(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))
	path := filepath.Join(t.TempDir(), "report.md")
	if err := os.WriteFile(path, []byte(Render(r)), 0644); err != nil {
		t.Fatalf("write report: %v", err)
	}

	rows, err := LoadTrend(path)
	if err != nil {
		t.Fatalf("LoadTrend failed: %v", err)
	}
	// One carried row plus the run's own row.
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %+v", rows)
	}
	if rows[0].Date != "2026-08-01 10:00" || rows[1].Date != "2026-08-31 12:00" {
		t.Fatalf("rows parsed wrong: %+v", rows)
	}
	if rows[1].Packages != "2" {
		t.Fatalf("expected package cell carried verbatim, got %+v", rows[1])
	}
}

func TestLoadTrend_BoundsCarriedHistory(t *testing.T) {
	r := sampleReport(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))
	r.Trend = nil
	for i := 1; i <= 6; i++ {
		r.Trend = append(r.Trend, types.TrendRow{
			Date:      time.Date(2026, 8, i, 10, 0, 0, 0, time.UTC).Format("2006-01-02 15:04"),
			TotalSize: "10 kB",
			DepsSize:  "8.0 kB",
			Packages:  "2",
		})
	}
	path := filepath.Join(t.TempDir(), "report.md")
	if err := os.WriteFile(path, []byte(Render(r)), 0644); err != nil {
		t.Fatalf("write report: %v", err)
	}

	rows, err := LoadTrend(path)
	if err != nil {
		t.Fatalf("LoadTrend failed: %v", err)
	}
	if len(rows) != types.MaxTrendCarry {
		t.Fatalf("expected %d carried rows, got %d", types.MaxTrendCarry, len(rows))
	}
	// The most recent rows survive, oldest are dropped.
	if rows[len(rows)-1].Date != "2026-08-31 12:00" {
		t.Fatalf("expected the newest row last, got %+v", rows)
	}
}

func TestParseTrendRows_IgnoresOtherTables(t *testing.T) {
	doc := strings.Join([]string{
		"# Dependency Disk Usage Report",
		"",
		"## Directory Overview",
		"",
		"| Directory | Path | Size |",
		"|-----------|------|------|",
		"| project | . | 10 kB |",
		"",
		trendHeader,
		"",
		"| Date | Total Size | Dependencies | Packages |",
		"|------|------------|--------------|----------|",
		"| 2026-08-30 09:00 | 10 kB | 8.0 kB | 2 |",
		"",
		"## Best Practices",
		"",
		"| not | a | trend | table |",
	}, "\n")

	rows := parseTrendRows(doc)
	if len(rows) != 1 {
		t.Fatalf("expected exactly the trend section row, got %+v", rows)
	}
	if rows[0].TotalSize != "10 kB" || rows[0].DepsSize != "8.0 kB" {
		t.Fatalf("cells parsed wrong: %+v", rows[0])
	}
}
