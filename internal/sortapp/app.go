// internal/sortapp/app.go
package sortapp

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"mpnnbias/internal/appshell"
	"mpnnbias/internal/cliutil"
	"mpnnbias/internal/cmdutil"
	"mpnnbias/internal/scores"
	"mpnnbias/internal/sortcli"
	"mpnnbias/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	var opts sortcli.Options
	cmd := sortcli.NewCommand(&opts)
	cmd.PreRunE = func(*cobra.Command, []string) error { return sortcli.Validate(opts) }
	return appshell.Execute(cmd, argv, stdout, stderr, func(out io.Writer) int {
		return run(ctx, opts, out, cmdutil.Logger{Out: stderr, Quiet: opts.Quiet})
	})
}

func run(ctx context.Context, opts sortcli.Options, out io.Writer, log cmdutil.Logger) int {
	paths, err := cliutil.ExpandPositionals(opts.Paths)
	if err != nil {
		log.Errorf("%v", err)
		return appshell.ExitUsage
	}

	var recs []scores.Record
	for _, p := range paths {
		if ctx.Err() != nil {
			log.Warnf("canceled")
			return appshell.ExitCanceled
		}
		list, err := scores.Read(p)
		if err != nil {
			log.Errorf("%v", err)
			return appshell.ExitUsage
		}
		if len(list) == 0 {
			log.Warnf("%s: no FASTA records", p)
		}
		log.Infof("%s: %d records", p, len(list))
		recs = append(recs, list...)
	}

	if err := scores.Sort(recs, opts.Field, opts.Reverse); err != nil {
		log.Errorf("%v", err)
		return appshell.ExitUsage
	}

	dst := writers.Output{Path: opts.OutPath, DefaultName: sortcli.DefaultOut, Overwrite: true}
	path, err := dst.Write(out, scores.Encode(recs))
	switch {
	case err == nil:
	case writers.IsBrokenPipe(err):
		return appshell.ExitOK
	default:
		log.Errorf("writing %s: %v", path, err)
		return appshell.ExitIO
	}
	if path != writers.Stdout {
		log.Infof("wrote %d sorted records to %s", len(recs), path)
	}
	return appshell.ExitOK
}
