// internal/biasapp/app.go
package biasapp

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"mpnnbias-core/bias"
	"mpnnbias-core/command"
	"mpnnbias-core/structure"

	"mpnnbias/internal/appshell"
	"mpnnbias/internal/biascli"
	"mpnnbias/internal/cmdutil"
	"mpnnbias/internal/jsonutil"
	"mpnnbias/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	var opts biascli.Options
	cmd := biascli.NewCommand(&opts)
	cmd.PreRunE = func(*cobra.Command, []string) error { return biascli.Validate(opts) }
	return appshell.Execute(cmd, argv, stdout, stderr, func(out io.Writer) int {
		return run(ctx, opts, out, cmdutil.Logger{Out: stderr, Quiet: opts.Quiet})
	})
}

func run(ctx context.Context, opts biascli.Options, out io.Writer, log cmdutil.Logger) int {
	if opts.Example {
		biascli.PrintExamples(out)
		return appshell.ExitOK
	}

	texts, err := readCommands(opts)
	if err != nil {
		log.Errorf("%v", err)
		return appshell.ExitUsage
	}
	if len(texts) == 0 {
		log.Warnf("no commands found; every bias will be zero")
	}
	cmds, err := command.ParseAll(texts)
	if err != nil {
		log.Errorf("%v", err)
		return appshell.ExitUsage
	}
	for i, c := range cmds {
		log.Infof("command %d: %s", i+1, c.Text)
	}

	structs, err := structure.Load(opts.InputJSON)
	if err != nil {
		log.Errorf("loading structures: %v", err)
		return appshell.ExitUsage
	}

	set := bias.NewSet()
	for _, s := range structs {
		if ctx.Err() != nil {
			log.Warnf("canceled")
			return appshell.ExitCanceled
		}
		rbs, err := command.CompileAll(cmds, s)
		if err != nil {
			log.Errorf("structure %q: %v", s.Name, err)
			return appshell.ExitUsage
		}
		if err := set.Add(s.Name, bias.Assemble(s, rbs)); err != nil {
			log.Errorf("%v", err)
			return appshell.ExitUsage
		}
		log.Infof("structure %q: chains %v", s.Name, s.Chains())
	}

	// Everything compiled; only now is the output touched.
	var buf bytes.Buffer
	if err := jsonutil.Encode(&buf, set, opts.Indent); err != nil {
		log.Errorf("encoding biases: %v", err)
		return appshell.ExitIO
	}
	dst := writers.Output{Path: opts.OutPath, DefaultName: biascli.DefaultOut, Overwrite: opts.Overwrite}
	path, err := dst.Write(out, buf.Bytes())
	switch {
	case err == nil:
	case writers.IsBrokenPipe(err):
		return appshell.ExitOK
	case errors.Is(err, writers.ErrExists):
		log.Errorf("%v", err)
		return appshell.ExitUsage
	default:
		log.Errorf("writing %s: %v", path, err)
		return appshell.ExitIO
	}
	if path != writers.Stdout {
		log.Infof("wrote biases for %d structure(s) to %s", len(structs), path)
	}
	return appshell.ExitOK
}

// readCommands returns the statements from --bias-file or --bias-string.
func readCommands(opts biascli.Options) ([]string, error) {
	if opts.BiasFile != "" {
		return command.ReadFile(opts.BiasFile)
	}
	return command.Split(opts.BiasString), nil
}
