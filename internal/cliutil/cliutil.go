// internal/cliutil/cliutil.go
package cliutil

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Stdin is the positional that selects standard input.
const Stdin = "-"

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands globs among input paths, keeping their order.
// A pattern that matches nothing is an error; plain paths pass through so
// the opener reports them.
func ExpandPositionals(args []string) ([]string, error) {
	var out []string
	for _, a := range args {
		if a == Stdin || !hasGlobMeta(a) {
			out = append(out, a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", a, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("no input matched %q", a)
		}
		out = append(out, m...)
	}
	return out, nil
}
