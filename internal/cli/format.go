package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	// Colors for item output - fatih/color disables itself off-TTY
	nameColor    = color.New(color.FgCyan)
	stateColor   = color.New(color.FgYellow)
	markerColor  = color.New(color.FgGreen)
	commandColor = color.New(color.FgMagenta)
	dollarColor  = color.New(color.FgMagenta, color.Bold)
	errorColor   = color.New(color.FgRed)
)

// ReportError prints err to stderr: a short red message by default, the
// full error chain one cause per line with --debug.
func ReportError(err error) {
	if !debugMode {
		_, _ = errorColor.Fprintln(os.Stderr, err)
		return
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	depth := 1
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		fmt.Fprintf(os.Stderr, "%scaused by: %v\n", strings.Repeat("  ", depth), cause)
		depth++
	}
}
