// internal/biascli/options.go
package biascli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"mpnnbias-core/command"
	"mpnnbias/internal/clibase"
)

// DefaultOut is written when --out is omitted, or inside a directory --out.
const DefaultOut = "biases.json"

type Options struct {
	clibase.Common

	// Input
	InputJSON  string
	BiasFile   string
	BiasString string

	// Output
	OutPath   string
	Overwrite bool
	Indent    bool

	Example bool
}

const usageBody = `Input:
  The structure JSON holds a "name" and one "seq_<chain>" list per chain, as
  written by ProteinMPNN's parse_multiple_chains.py. A JSONL file or a
  directory of JSON files compiles every structure into one output.

Examples:
  mpnn-bias -j 1abc.json -b biases.txt -o biases.json
  mpnn-bias -j parsed_pdbs.jsonl -s "select name !CYS res C:-10;" -o - --indent
  mpnn-bias -e > biases.txt`

// NewCommand builds the cobra command and binds its flags to o.
func NewCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:  "mpnn-bias -j STRUCTURE (-b FILE | -s COMMANDS) [-o OUT]",
		Args: cobra.NoArgs,
	}
	clibase.Describe(cmd, "compile residue selections into a ProteinMPNN per-residue bias JSON", usageBody)
	clibase.Quiet(cmd)

	fs := cmd.Flags()
	fs.SortFlags = false
	fs.StringVarP(&o.InputJSON, "input-json", "j", "", "structure JSON, JSONL or directory of JSON files (- for stdin) [*]")
	fs.StringVarP(&o.BiasFile, "bias-file", "b", "", "command file with residue selections (see -e)")
	fs.StringVarP(&o.BiasString, "bias-string", "s", "", "inline commands, same syntax as the command file")
	fs.StringVarP(&o.OutPath, "out", "o", DefaultOut, "output JSON path, directory, or - for stdout")
	fs.BoolVar(&o.Overwrite, "overwrite", false, "replace an existing output file")
	fs.BoolVar(&o.Indent, "indent", false, "indent the output JSON")
	fs.BoolVarP(&o.Example, "example", "e", false, "print an example command file and exit")
	clibase.Register(fs, &o.Common)
	cmd.MarkFlagsMutuallyExclusive("bias-file", "bias-string")
	return cmd
}

// Validate applies the checks cobra cannot express.
func Validate(o Options) error {
	if o.Example {
		return nil
	}
	if o.InputJSON == "" {
		return errors.New("--input-json is required")
	}
	if o.BiasFile == "" && o.BiasString == "" {
		return errors.New("provide --bias-file or --bias-string")
	}
	if o.OutPath == "" {
		return errors.New("--out must not be empty")
	}
	return nil
}

// PrintExamples prints the embedded command file example.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "mpnn-bias", func(w io.Writer) {
		_, _ = fmt.Fprint(w, command.Example)
	})
}
