package report

import (
	"bufio"
	"os"
	"strings"

	"github.com/example/paydemo/internal/types"
)

// LoadTrend reads the size-trend rows out of the previous report, keeping at
// most the types.MaxTrendCarry most recent ones. A missing previous report
// yields no rows; history simply starts over.
func LoadTrend(path string) ([]types.TrendRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	rows := parseTrendRows(string(data))
	if len(rows) > types.MaxTrendCarry {
		rows = rows[len(rows)-types.MaxTrendCarry:]
	}
	return rows, nil
}

// parseTrendRows extracts table rows from the trend section of a rendered
// report. Cells are kept verbatim so older rows survive format changes in
// the rest of the document.
func parseTrendRows(doc string) []types.TrendRow {
	var rows []types.TrendRow
	inSection := false

	scanner := bufio.NewScanner(strings.NewReader(doc))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == trendHeader:
			inSection = true
		case inSection && strings.HasPrefix(line, "#"):
			return rows
		case inSection && strings.HasPrefix(line, "|"):
			cells := splitRow(line)
			if len(cells) != 4 {
				continue
			}
			// Skip the header and separator rows.
			if cells[0] == "Date" || strings.HasPrefix(cells[0], "---") {
				continue
			}
			rows = append(rows, types.TrendRow{
				Date:      cells[0],
				TotalSize: cells[1],
				DepsSize:  cells[2],
				Packages:  cells[3],
			})
		}
	}
	return rows
}

func splitRow(line string) []string {
	parts := strings.Split(strings.Trim(line, "|"), "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, strings.TrimSpace(p))
	}
	return cells
}
