package collector

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/example/paydemo/internal/types"
)

// DirSize measures the recursive on-disk size of path. A path that does not
// exist yields an unavailable measurement instead of an error; unreadable
// entries below an existing root are skipped so one bad file never aborts
// the run.
func DirSize(label, path string) types.Measurement {
	if _, err := os.Stat(path); err != nil {
		return types.Measurement{Label: label, Path: path}
	}

	var total int64
	_ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total += info.Size()
		return nil
	})

	return types.Measurement{Label: label, Path: path, Bytes: total, Available: true}
}

// countFiles returns the recursive number of regular files under path.
func countFiles(path string) int64 {
	var count int64
	_ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	return count
}
