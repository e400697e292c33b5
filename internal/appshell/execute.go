// internal/appshell/execute.go
package appshell

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"mpnnbias/internal/cmdutil"
	"mpnnbias/internal/writers"
)

// Execute runs cmd against argv with stdout buffered. run is invoked only
// after flags parsed cleanly and receives the buffered stdout; help and
// version output go through the same buffer. Flag errors exit with
// ExitUsage, a failed flush with ExitIO.
func Execute(cmd *cobra.Command, argv []string, stdout, stderr io.Writer, run func(out io.Writer) int) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)
	if argv == nil {
		argv = []string{} // cobra falls back to os.Args on nil
	}
	cmd.SetArgs(argv)
	cmd.SetOut(outw)
	cmd.SetErr(stderr)

	code := ExitOK
	cmd.RunE = func(*cobra.Command, []string) error {
		code = run(outw)
		return nil
	}
	if err := cmd.Execute(); err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.Name())
		code = ExitUsage
	}

	if err := outw.Flush(); err != nil {
		if writers.IsBrokenPipe(err) {
			return code
		}
		cmdutil.Errorf(stderr, "%v", err)
		return ExitIO
	}
	return code
}
