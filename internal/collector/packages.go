package collector

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/example/paydemo/internal/types"
)

// purposes maps well-known package names to a human-readable description.
// Anything not listed falls back to genericPurpose. Extend the table rather
// than branching on names elsewhere.
var purposes = map[string]string{
	"moment":     "date/time manipulation library",
	"dayjs":      "date/time manipulation library",
	"lodash":     "general-purpose utility library",
	"async":      "async control-flow utility library",
	"express":    "web application framework",
	"react":      "UI rendering library",
	"react-dom":  "browser renderer for React",
	"webpack":    "module bundler",
	"@babel":     "JavaScript compiler toolchain",
	"typescript": "TypeScript compiler",
	"eslint":     "static analysis / linter",
	"prettier":   "code formatter",
	"jest":       "test framework",
	"mocha":      "test framework",
	"axios":      "HTTP client library",
	"rxjs":       "reactive streams library",
	"core-js":    "JavaScript standard-library polyfills",
}

const genericPurpose = "application dependency"

// Classify resolves a package name to its purpose description.
func Classify(name string) string {
	if p, ok := purposes[name]; ok {
		return p
	}
	return genericPurpose
}

// CollectPackages lists the immediate children of the dependency directory,
// measures each one, and keeps the types.TopPackages largest, descending.
// A missing directory yields an unavailable result with empty entries.
func CollectPackages(depsDir string) types.PackageStats {
	children, err := os.ReadDir(depsDir)
	if err != nil {
		return types.PackageStats{}
	}

	stats := types.PackageStats{
		Entries:   []types.PackageEntry{},
		Installed: []string{},
		Available: true,
	}

	for _, child := range children {
		name := child.Name()
		if name == ".bin" || name == ".package-lock.json" {
			continue
		}
		stats.Installed = append(stats.Installed, name)

		m := DirSize(name, filepath.Join(depsDir, name))
		stats.Entries = append(stats.Entries, types.PackageEntry{
			Name:    name,
			Bytes:   m.Bytes,
			Purpose: Classify(name),
		})
	}

	stats.Count = len(stats.Installed)
	stats.FileCount = countFiles(depsDir)

	sort.SliceStable(stats.Entries, func(i, j int) bool {
		return stats.Entries[i].Bytes > stats.Entries[j].Bytes
	})
	if len(stats.Entries) > types.TopPackages {
		stats.Entries = stats.Entries[:types.TopPackages]
	}

	return stats
}
