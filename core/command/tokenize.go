// core/command/tokenize.go
package command

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ErrNotFound is wrapped by ReadFile when the command file is missing.
var ErrNotFound = errors.New("command file not found")

// StripComments drops everything from the first '#' on each line and joins
// the lines with a single space, so a statement may span lines but a
// comment may not.
func StripComments(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, l := range lines {
		if j := strings.IndexByte(l, '#'); j >= 0 {
			lines[i] = l[:j]
		}
	}
	return strings.Join(lines, " ")
}

// SplitCommands splits on ';', trims, and drops empty statements.
// Source order is preserved.
func SplitCommands(text string) []string {
	var out []string
	for _, c := range strings.Split(text, ";") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// Split runs StripComments then SplitCommands.
func Split(text string) []string { return SplitCommands(StripComments(text)) }

// ReadFile loads and splits a command file.
func ReadFile(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q: %w", ErrNotFound, path, err)
	}
	if err != nil {
		return nil, err
	}
	return Split(string(b)), nil
}
