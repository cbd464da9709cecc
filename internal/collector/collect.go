package collector

import (
	"context"
	"path/filepath"
	"time"

	"github.com/example/paydemo/internal/config"
	"github.com/example/paydemo/internal/types"
)

// Logger receives per-step progress messages during collection.
type Logger interface {
	Printf(format string, args ...any)
}

type loggerKey struct{}

// WithLogger attaches a progress logger to the context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	if l == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerKey{}, l)
}

func loggerFromContext(ctx context.Context) Logger {
	if ctx == nil {
		return nil
	}
	if l, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return l
	}
	return nil
}

// measuredDirs is the fixed set of directories every report covers, in
// report order. Paths are relative to the project root except the
// dependency directory, which comes from the config.
var measuredDirs = []struct {
	label string
	rel   string
}{
	{"project", "."},
	{"node_modules", ""}, // filled from cfg.Project.DepsDir
	{".git", ".git"},
	{"logs", "logs"},
	{"src", "src"},
	{"dist", "dist"},
	{"build", "build"},
	{"coverage", "coverage"},
}

// Collect gathers all the required data for the report. Missing directories
// and a missing manifest degrade to unavailable measurements and a zero
// count; Collect itself never fails on measurement problems.
func Collect(ctx context.Context, cfg *config.Config) *types.Report {
	log := loggerFromContext(ctx)
	report := &types.Report{
		GeneratedAt: time.Now(),
		Issues:      []types.Issue{},
		Trend:       []types.TrendRow{},
	}

	depsPath := cfg.Project.DepsDir
	if !filepath.IsAbs(depsPath) {
		depsPath = filepath.Join(cfg.Project.Root, depsPath)
	}

	dirStart := time.Now()
	for _, d := range measuredDirs {
		path := filepath.Join(cfg.Project.Root, d.rel)
		if d.label == "node_modules" {
			path = depsPath
		}
		m := DirSize(d.label, path)
		report.Measurements = append(report.Measurements, m)
		if log != nil {
			log.Printf("measured %s: %s", d.label, m.Human())
		}
	}
	if log != nil {
		log.Printf("directory measurements: ok (%dms)", time.Since(dirStart).Milliseconds())
	}

	report.DependencyPercent = dependencyPercent(report.Root(), report.Deps())

	pkgStart := time.Now()
	report.Packages = CollectPackages(depsPath)
	if log != nil {
		if report.Packages.Available {
			log.Printf("packages: %d installed, %d files (%dms)",
				report.Packages.Count, report.Packages.FileCount, time.Since(pkgStart).Milliseconds())
		} else {
			log.Printf("packages: dependency directory not found, skipped")
		}
	}

	manifestPath := cfg.Project.Manifest
	if !filepath.IsAbs(manifestPath) {
		manifestPath = filepath.Join(cfg.Project.Root, manifestPath)
	}
	report.DeclaredDeps = CountDeclaredDeps(manifestPath)
	if log != nil {
		log.Printf("manifest: %d declared dependencies", report.DeclaredDeps)
	}

	return report
}

// dependencyPercent is floor(100*deps/root). It is only computed when both
// measurements exist with non-zero size; any other combination yields the
// fallback constant so the arithmetic never divides by zero.
func dependencyPercent(root, deps types.Measurement) int {
	if !root.Available || !deps.Available || root.Bytes == 0 || deps.Bytes == 0 {
		return types.FallbackDependencyPercent
	}
	return int(100 * deps.Bytes / root.Bytes)
}
