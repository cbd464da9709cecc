package collector

import (
	"encoding/json"
	"os"
)

// manifest is the slice of package.json this tool cares about.
type manifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// CountDeclaredDeps returns the number of dependencies declared in the
// manifest, counting both runtime and development sections. This is a
// structural parse of the dependency sections, not a quoted-key scan, so
// unrelated keys elsewhere in the manifest never inflate the count.
// A missing or unparseable manifest counts as zero and does not halt the
// rest of the report.
func CountDeclaredDeps(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return 0
	}

	return len(m.Dependencies) + len(m.DevDependencies)
}
