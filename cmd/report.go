package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/example/paydemo/internal/collector"
	"github.com/example/paydemo/internal/config"
	"github.com/example/paydemo/internal/console"
	"github.com/example/paydemo/internal/report"
	"github.com/example/paydemo/internal/rules"
	"github.com/example/paydemo/internal/types"
	"github.com/spf13/cobra"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the dependency disk-usage report",
	Long: `Measure the project's directories, rank the installed packages by
size, and write a Markdown report with tiered optimization recommendations
and a bounded size-trend history. The previous report is kept as a .bak
backup; concurrent runs are not supported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSizeReport(configFile)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runSizeReport(configFile string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	console.Title("Dependency disk-usage report")

	// The trend rows must be read before the current report is rotated
	// into the backup slot.
	trend, err := report.LoadTrend(cfg.Report.Output)
	if err != nil {
		console.Warn("could not read previous report, trend history starts over: %v", err)
		trend = nil
	}

	ctx := collector.WithLogger(context.Background(), log.New(os.Stderr, "", 0))
	rep := collector.Collect(ctx, cfg)
	rep.Trend = trend

	rules.Evaluate(rep, cfg)

	doc := report.Render(rep)
	if err := report.Write(cfg.Report.Output, cfg.Report.Backup, doc); err != nil {
		return ExitError{Code: 1, Err: err}
	}

	printSummary(rep)
	console.Success("Report written to %s", cfg.Report.Output)
	return nil
}

// printSummary dumps the condensed statistics to the console so a run is
// useful without opening the report file.
func printSummary(rep *types.Report) {
	console.Separator()
	console.Stat("Project size", rep.Root().Human())
	console.Stat("Dependency size", rep.Deps().Human())
	console.Stat("Dependency share", fmt.Sprintf("%d%%", rep.DependencyPercent))
	console.Stat("Installed packages", fmt.Sprintf("%d", rep.Packages.Count))
	console.Stat("Files in dependencies", fmt.Sprintf("%d", rep.Packages.FileCount))
	console.Stat("Declared dependencies", fmt.Sprintf("%d", rep.DeclaredDeps))
	console.Stat("Recommendations", fmt.Sprintf("%d", len(rep.Issues)))
	console.Separator()
}
