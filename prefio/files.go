package prefio

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// gzipSuffix marks compressed files.
const gzipSuffix = ".gz"

// Resolve returns path if it names an existing file. Otherwise, for relative
// paths and a non-empty dataDir, it tries dataDir/path. If neither exists it
// returns a *FileNotFoundError listing both attempts.
func Resolve(path, dataDir string) (string, error) {
	tried := []string{path}
	if isFile(path) {
		return path, nil
	}
	if dataDir != "" && !filepath.IsAbs(path) {
		alt := filepath.Join(dataDir, path)
		if isFile(alt) {
			return alt, nil
		}
		tried = append(tried, alt)
	}

	return "", &FileNotFoundError{Path: path, Tried: tried}
}

// isFile reports whether path exists and is not a directory.
func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// closeChain closes several layers in order, outermost (compressor) first,
// and returns the first error.
type closeChain []io.Closer

// Close implements io.Closer.
func (cc closeChain) Close() error {
	var first error
	for _, c := range cc {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// readCloser pairs a decompressing reader with the layers to close.
type readCloser struct {
	io.Reader
	closeChain
}

// writeCloser pairs a compressing writer with the layers to close.
type writeCloser struct {
	io.Writer
	closeChain
}

// Open opens path for reading, transparently decompressing ".gz" files.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &FileNotFoundError{Path: path, Tried: []string{path}}
		}
		return nil, err
	}
	if !strings.HasSuffix(path, gzipSuffix) {
		return f, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, &InputFormatError{Path: path, Msg: "invalid gzip stream", Err: err}
	}

	return &readCloser{Reader: zr, closeChain: closeChain{zr, f}}, nil
}

// Create creates (or truncates) path for writing, compressing ".gz" files.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, gzipSuffix) {
		return f, nil
	}
	zw := gzip.NewWriter(f)

	return &writeCloser{Writer: zw, closeChain: closeChain{zw, f}}, nil
}
