package appshell

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() { color.NoColor = true }

func newCmd() *cobra.Command {
	c := &cobra.Command{Use: "tool", Args: cobra.NoArgs, Version: "1.2.3"}
	c.SilenceErrors = true
	c.SilenceUsage = true
	c.Flags().Bool("flag", false, "a flag")
	return c
}

func TestExecuteRunsAndFlushes(t *testing.T) {
	var out, errb bytes.Buffer
	code := Execute(newCmd(), []string{"--flag"}, &out, &errb, func(w io.Writer) int {
		_, _ = io.WriteString(w, "hello\n")
		return 0
	})
	if code != ExitOK || out.String() != "hello\n" || errb.Len() != 0 {
		t.Fatalf("code=%d out=%q err=%q", code, out.String(), errb.String())
	}
}

func TestExecutePropagatesCode(t *testing.T) {
	var out, errb bytes.Buffer
	if code := Execute(newCmd(), nil, &out, &errb, func(io.Writer) int { return ExitIO }); code != ExitIO {
		t.Fatalf("code = %d", code)
	}
}

func TestExecuteHelpAndVersion(t *testing.T) {
	for _, arg := range []string{"-h", "--version"} {
		var out, errb bytes.Buffer
		called := false
		code := Execute(newCmd(), []string{arg}, &out, &errb, func(io.Writer) int { called = true; return 1 })
		if code != ExitOK || called || out.Len() == 0 {
			t.Fatalf("%s: code=%d called=%v out=%q", arg, code, called, out.String())
		}
	}
}

func TestExecuteBadFlag(t *testing.T) {
	var out, errb bytes.Buffer
	code := Execute(newCmd(), []string{"--nope"}, &out, &errb, func(io.Writer) int { return 0 })
	if code != ExitUsage || !strings.Contains(errb.String(), "ERROR:") || !strings.Contains(errb.String(), "tool --help") {
		t.Fatalf("code=%d err=%q", code, errb.String())
	}
}

type pipeWriter struct{}

func (pipeWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestExecuteFlushErrors(t *testing.T) {
	write := func(w io.Writer) int { _, _ = io.WriteString(w, "x"); return ExitOK }
	var errb bytes.Buffer
	if code := Execute(newCmd(), nil, pipeWriter{}, &errb, write); code != ExitOK {
		t.Fatalf("broken pipe: code = %d", code)
	}
	if code := Execute(newCmd(), nil, failWriter{}, &errb, write); code != ExitIO {
		t.Fatalf("write failure: code = %d", code)
	}
}
