// core/input/open.go
package input

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

var gzipMagic = []byte{0x1f, 0x8b}

// readCloser pairs a (possibly decompressing) reader with the closers of
// every layer beneath it.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path; "-" reads stdin. Gzip input is detected
// by its magic number and decompressed, for files and stdin alike.
func Open(path string) (io.ReadCloser, error) {
	var src io.ReadCloser = io.NopCloser(os.Stdin)
	if path != Stdin {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src = fh
	}

	br := bufio.NewReader(src)
	sig, _ := br.Peek(len(gzipMagic))
	if len(sig) == len(gzipMagic) && sig[0] == gzipMagic[0] && sig[1] == gzipMagic[1] {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = src.Close()
			return nil, err
		}
		return &readCloser{Reader: gr, closers: []io.Closer{gr, src}}, nil
	}
	return &readCloser{Reader: br, closers: []io.Closer{src}}, nil
}
