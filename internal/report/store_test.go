package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWrite_CreatesReport(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "report.md")
	backup := filepath.Join(dir, "report.md.bak")

	if err := Write(output, backup, "first\n"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil || string(data) != "first\n" {
		t.Fatalf("report content wrong: %q, %v", data, err)
	}
	if _, err := os.Stat(backup); !os.IsNotExist(err) {
		t.Fatalf("backup must not exist after the first run")
	}
}

func TestWrite_RotatesPreviousIntoBackup(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "report.md")
	backup := filepath.Join(dir, "report.md.bak")

	if err := Write(output, backup, "first\n"); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := Write(output, backup, "second\n"); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	cur, _ := os.ReadFile(output)
	prev, _ := os.ReadFile(backup)
	if string(cur) != "second\n" || string(prev) != "first\n" {
		t.Fatalf("two-slot rotation wrong: current=%q backup=%q", cur, prev)
	}

	// A third run overwrites the backup; history stays bounded to one slot.
	if err := Write(output, backup, "third\n"); err != nil {
		t.Fatalf("third write failed: %v", err)
	}
	prev, _ = os.ReadFile(backup)
	if string(prev) != "second\n" {
		t.Fatalf("backup not overwritten: %q", prev)
	}
}

// Two consecutive runs over an unchanged tree must produce identical
// documents except for the generation timestamp and the trend table gaining
// one row.
func TestTwoRuns_StructurallyIdentical(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "report.md")
	backup := filepath.Join(dir, "report.md.bak")

	run := func(at time.Time) string {
		r := sampleReport(at)
		trend, err := LoadTrend(output)
		if err != nil {
			t.Fatalf("LoadTrend failed: %v", err)
		}
		r.Trend = trend
		doc := Render(r)
		if err := Write(output, backup, doc); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		return doc
	}

	first := run(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))
	second := run(time.Date(2026, 8, 31, 12, 5, 0, 0, time.UTC))

	firstLines := strings.Split(first, "\n")
	secondLines := strings.Split(second, "\n")
	if len(secondLines) != len(firstLines)+1 {
		t.Fatalf("expected exactly one extra trend row, got %d vs %d lines", len(secondLines), len(firstLines))
	}

	var diff int
	for _, line := range secondLines {
		if !contains(firstLines, line) {
			diff++
		}
	}
	// Only the new timestamp line and the new trend row may differ.
	if diff > 2 {
		t.Fatalf("documents differ beyond timestamp and trend: %d new lines", diff)
	}
}

func contains(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}
