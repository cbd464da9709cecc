package console

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	// SuccessColor for successful operations
	SuccessColor = color.New(color.FgGreen, color.Bold)

	// WarningColor for degraded measurements
	WarningColor = color.New(color.FgYellow, color.Bold)

	// InfoColor for progress messages
	InfoColor = color.New(color.FgCyan)

	// TitleColor for section headers
	TitleColor = color.New(color.FgMagenta, color.Bold)
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	SuccessColor.Printf(format+"\n", args...)
}

// Warn prints a warning message
func Warn(format string, args ...interface{}) {
	WarningColor.Printf(format+"\n", args...)
}

// Info prints a progress message
func Info(format string, args ...interface{}) {
	InfoColor.Printf(format+"\n", args...)
}

// Title prints a section header
func Title(format string, args ...interface{}) {
	TitleColor.Printf(format+"\n", args...)
}

// Stat prints one name/value line of the condensed statistics dump.
func Stat(name, value string) {
	fmt.Printf("  %-28s %s\n", name+":", value)
}

// Separator prints a visual separator
func Separator() {
	fmt.Println(strings.Repeat("─", 60))
}
