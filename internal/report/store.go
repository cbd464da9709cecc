package report

import (
	"fmt"
	"os"
)

// Write persists the rendered report using the two-slot scheme: the current
// report, if any, is moved into the backup slot first, then the new document
// takes its place. The backup is the only history kept, so concurrent runs
// are not supported; the tool assumes a single operator. Write failures are
// the one fatal condition of a report run.
func Write(output, backup, doc string) error {
	if _, err := os.Stat(output); err == nil {
		if err := os.Rename(output, backup); err != nil {
			return fmt.Errorf("failed to back up previous report: %w", err)
		}
	}

	if err := os.WriteFile(output, []byte(doc), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
