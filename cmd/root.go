package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "paydemo",
	Short: "Tooling for the Stripe payouts demo project",
	Long: `paydemo bundles the two operational tools of the payouts demo:
a thin HTTP relay in front of the Stripe API (serve) and a disk-usage
report generator for the project's dependency tree (report).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	version   = "dev"
	gitCommit = ""
	buildTime = ""
)

// SetVersion records build metadata injected by the linker.
func SetVersion(v, commit, built string) {
	version = v
	gitCommit = commit
	buildTime = built
	rootCmd.Version = version
}

type exitCoder interface {
	ExitCode() int
}

// ExitError allows commands to exit with a specific exit code.
// If Err is nil, no error message is printed.
type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) ExitCode() int { return e.Code }
func (e ExitError) Unwrap() error { return e.Err }
func (e ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if ee, ok := err.(exitCoder); ok {
			if msg := strings.TrimSpace(err.Error()); msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			os.Exit(ee.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(3)
	}
}

var configFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "paydemo.yml", "config file")
}
