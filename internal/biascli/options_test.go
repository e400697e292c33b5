// internal/biascli/options_test.go
package biascli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func parse(args ...string) (Options, error) {
	var o Options
	cmd := NewCommand(&o)
	cmd.RunE = func(*cobra.Command, []string) error { return nil }
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	if err := cmd.Execute(); err != nil {
		return o, err
	}
	return o, Validate(o)
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	o, err := parse(args...)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return o
}

func TestBiasFileOK(t *testing.T) {
	o := mustParse(t, "-j", "s.json", "-b", "cmds.txt")
	if o.InputJSON != "s.json" || o.BiasFile != "cmds.txt" || o.OutPath != DefaultOut {
		t.Fatalf("bad parse: %+v", o)
	}
}

func TestLongFlags(t *testing.T) {
	o := mustParse(t, "--input-json", "s.json", "--bias-string", "select idx 1 res A:1;",
		"--out", "-", "--overwrite", "--indent", "--quiet")
	if o.BiasString == "" || o.OutPath != "-" || !o.Overwrite || !o.Indent || !o.Quiet {
		t.Fatalf("bad parse: %+v", o)
	}
}

func TestExampleNeedsNothingElse(t *testing.T) {
	if o := mustParse(t, "-e"); !o.Example {
		t.Fatalf("-e not parsed")
	}
}

func TestErrors(t *testing.T) {
	cases := [][]string{
		{"-b", "cmds.txt"},                                   // no structure
		{"-j", "s.json"},                                     // no commands
		{"-j", "s.json", "-b", "c.txt", "-s", "select idx 1 res A:1"}, // both sources
		{"-j", "s.json", "-b", "c.txt", "extra"},             // positional
		{"-j", "s.json", "-b", "c.txt", "--nope"},            // unknown flag
	}
	for _, args := range cases {
		if _, err := parse(args...); err == nil {
			t.Errorf("parse(%q): expected error", args)
		}
	}
}

func TestHelpMentionsExamples(t *testing.T) {
	var o Options
	cmd := NewCommand(&o)
	cmd.RunE = func(*cobra.Command, []string) error { return nil }
	var b bytes.Buffer
	cmd.SetOut(&b)
	cmd.SetArgs([]string{"--help"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("help: %v", err)
	}
	if !strings.Contains(b.String(), "mpnn-bias -e > biases.txt") || !strings.Contains(b.String(), "--bias-file") {
		t.Fatalf("help output missing sections:\n%s", b.String())
	}
}

func TestPrintExamples(t *testing.T) {
	var b bytes.Buffer
	PrintExamples(&b)
	if !strings.Contains(b.String(), "select name !CYS res C:220.5;") {
		t.Fatalf("example text missing:\n%s", b.String())
	}
}
