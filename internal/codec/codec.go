// Package codec provides compression and decompression for dataset
// files.
package codec

import (
	"compress/gzip"
	"io"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// Codec provides compression and decompression functionality.
type Codec interface {
	// Reader wraps r to decompress data read from it.
	Reader(r io.Reader) (io.ReadCloser, error)
	// Writer wraps w to compress data written to it.
	Writer(w io.Writer) (io.WriteCloser, error)
	// Extension returns the file extension without dot (e.g. "zst").
	// Empty for no compression.
	Extension() string
}

// ForPath picks a codec from the file extension.
// Unrecognized extensions get the no-op codec.
func ForPath(path string) Codec {
	switch filepath.Ext(path) {
	case ".zst":
		return Zstd{}
	case ".gz":
		return Gzip{}
	default:
		return Noop{}
	}
}

// Noop is a pass-through codec.
type Noop struct{}

var _ Codec = Noop{}

func (Noop) Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

func (Noop) Writer(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

func (Noop) Extension() string { return "" }

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// Gzip implements gzip compression via the standard library.
type Gzip struct{}

var _ Codec = Gzip{}

func (Gzip) Reader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

func (Gzip) Writer(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}

func (Gzip) Extension() string { return "gz" }

// Zstd implements zstd compression.
type Zstd struct{}

var _ Codec = Zstd{}

func (Zstd) Reader(r io.Reader) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return decoder.IOReadCloser(), nil
}

func (Zstd) Writer(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w)
}

func (Zstd) Extension() string { return "zst" }
