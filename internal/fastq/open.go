package fastq

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
	gzip "github.com/klauspost/pgzip"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}

	// snappy framed streams open with a stream identifier chunk
	snappyMagic = []byte("\xff\x06\x00\x00sNaPpY")
)

// readCloser closes every underlying io.Closer when Close is called.
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

// Open returns a reader over the decompressed contents of path. "-" reads stdin.
//
// gzip is recognized by its magic number or a ".gz" suffix, snappy by its
// stream identifier or a ".sz"/".snappy" suffix. Anything else is read as is.
func Open(path string) (io.ReadCloser, error) {
	var f io.ReadCloser
	if path == "-" {
		f = io.NopCloser(os.Stdin)
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		f = fh
	}

	br := bufio.NewReader(f)
	sig, _ := br.Peek(len(snappyMagic))

	switch {
	case bytes.HasPrefix(sig, gzipMagic) || strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to open gzip stream %s: %w", path, err)
		}
		return &readCloser{Reader: gr, closers: []io.Closer{gr, f}}, nil
	case bytes.HasPrefix(sig, snappyMagic) || strings.HasSuffix(path, ".sz") || strings.HasSuffix(path, ".snappy"):
		return &readCloser{Reader: snappy.NewReader(br), closers: []io.Closer{f}}, nil
	}
	return &readCloser{Reader: br, closers: []io.Closer{f}}, nil
}
