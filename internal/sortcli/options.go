// internal/sortcli/options.go
package sortcli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mpnnbias/internal/clibase"
	"mpnnbias/internal/scores"
)

// DefaultOut is written when --out is omitted, or inside a directory --out.
const DefaultOut = "sorted.fasta"

type Options struct {
	clibase.Common

	Paths   []string
	OutPath string
	Field   int
	Reverse bool
}

const usageBody = `Input:
  FASTA files written by ProteinMPNN, whose headers look like
  ">T=0.1, sample=1, score=0.7291, global_score=0.8803, seq_recovery=0.42".
  Records from every file are merged and sorted by the chosen header field.
  Gzip input and "-" for stdin are accepted; globs are expanded.

Examples:
  mpnn-sort seqs/*.fa -o sorted.fasta
  mpnn-sort --reverse --field 3 designs.fa -o -`

// NewCommand builds the cobra command and binds its flags to o. The
// positional paths are collected by the command's Args hook.
func NewCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use: "mpnn-sort [flags] FASTA...",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("no FASTA input given")
			}
			o.Paths = append([]string(nil), args...)
			return nil
		},
	}
	clibase.Describe(cmd, "sort ProteinMPNN FASTA output by score", usageBody)
	clibase.Quiet(cmd)

	fs := cmd.Flags()
	fs.SortFlags = false
	fs.StringVarP(&o.OutPath, "out", "o", DefaultOut, "output FASTA path, directory, or - for stdout")
	fs.IntVar(&o.Field, "field", scores.DefaultField, "0-based comma-separated header field holding the score")
	fs.BoolVar(&o.Reverse, "reverse", false, "sort descending")
	clibase.Register(fs, &o.Common)
	return cmd
}

// Validate applies the checks cobra cannot express.
func Validate(o Options) error {
	if o.Field < 0 {
		return fmt.Errorf("--field must be >= 0 (got %d)", o.Field)
	}
	if o.OutPath == "" {
		return errors.New("--out must not be empty")
	}
	return nil
}
