// internal/writers/output.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// ErrExists is returned when the target exists and overwriting was not requested.
var ErrExists = errors.New("output already exists")

// Stdout is the path that selects standard output.
const Stdout = "-"

// Output is a write destination. Path "-" is stdout; an existing directory
// receives DefaultName inside it.
type Output struct {
	Path        string
	DefaultName string
	Overwrite   bool
}

// Resolve returns the file that Write would create ("-" for stdout).
func (o Output) Resolve() string {
	if o.Path == Stdout {
		return Stdout
	}
	if info, err := os.Stat(o.Path); err == nil && info.IsDir() && o.DefaultName != "" {
		return filepath.Join(o.Path, o.DefaultName)
	}
	return o.Path
}

// Write stores data and returns the resolved destination.
func (o Output) Write(stdout io.Writer, data []byte) (string, error) {
	dst := o.Resolve()
	if dst == Stdout {
		_, err := stdout.Write(data)
		return dst, err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !o.Overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	fh, err := os.OpenFile(dst, flags, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return dst, fmt.Errorf("%w: %q (pass --overwrite to replace it)", ErrExists, dst)
	}
	if err != nil {
		return dst, err
	}
	if _, err := fh.Write(data); err != nil {
		_ = fh.Close()
		return dst, err
	}
	return dst, fh.Close()
}

// IsBrokenPipe reports whether err means the reader of stdout went away,
// as when output is piped into head.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
