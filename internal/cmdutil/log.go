// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	infoTag  = color.New(color.FgCyan)
	warnTag  = color.New(color.FgYellow, color.Bold)
	errorTag = color.New(color.FgRed, color.Bold)
)

func logf(dst io.Writer, tag *color.Color, label, format string, a ...any) {
	_, _ = fmt.Fprintf(dst, "%s "+format+"\n", append([]any{tag.Sprint(label)}, a...)...)
}

// Infof prints progress messages unless quiet.
func Infof(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	logf(dst, infoTag, "INFO:", format, a...)
}

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	logf(dst, warnTag, "WARN:", format, a...)
}

// Errorf is never silenced.
func Errorf(dst io.Writer, format string, a ...any) {
	logf(dst, errorTag, "ERROR:", format, a...)
}

// Logger binds the helpers to one destination and quiet setting.
type Logger struct {
	Out   io.Writer
	Quiet bool
}

func (l Logger) Infof(format string, a ...any)  { Infof(l.Out, l.Quiet, format, a...) }
func (l Logger) Warnf(format string, a ...any)  { Warnf(l.Out, l.Quiet, format, a...) }
func (l Logger) Errorf(format string, a ...any) { Errorf(l.Out, format, a...) }
