// internal/clibase/common.go
package clibase

import (
	"github.com/spf13/pflag"
)

// Common holds CLI fields shared by mpnn-bias and mpnn-sort.
type Common struct {
	Quiet bool
}

// Register wires shared flags onto fs.
func Register(fs *pflag.FlagSet, c *Common) {
	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "only report errors on stderr")
}
