// internal/clibase/usage.go
package clibase

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mpnnbias/internal/version"
)

// Describe fills the shared header of a tool's long help text and its
// version string.
func Describe(cmd *cobra.Command, summary string, body ...string) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s – %s\n\n", cmd.Name(), summary)
	fmt.Fprintln(&b, "License: MIT")
	fmt.Fprintf(&b, "Version: %s\n", version.Version)
	for _, s := range body {
		fmt.Fprintf(&b, "\n%s\n", strings.TrimRight(s, "\n"))
	}
	cmd.Short = summary
	cmd.Long = b.String()
	cmd.Version = version.Version
}

// Quiet lets a command run silently through cobra: errors and usage are
// reported by the app itself.
func Quiet(cmd *cobra.Command) {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
}
