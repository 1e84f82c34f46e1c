// Package yeast is the public API of the tokenizer: open a byte source,
// pull YEAST tokens from it one at a time. Everything underneath
// internal/ is an implementation detail; this package only re-exports the
// shapes a caller needs and wires them together.
//
// Grounded on _examples/original_source/yip.h's public open_source_*/
// yip_next_token surface and on the teacher's pkg/yaml public API shape
// (thin wrapper package re-exporting internal types, doc comments carrying
// the real explanation).
package yeast

import (
	"io"
	"os"

	"github.com/shapestone/yeast/internal/bytesource"
)

// Source is an opened byte source ready to be handed to OpenParser. Obtain one
// with OpenBuffer, OpenString, OpenReader, OpenFile, or OpenPath.
type Source = bytesource.Source

// OpenBuffer wraps a caller-owned byte slice as a Source. data is not
// copied; the caller must keep it alive and unmodified until Close.
func OpenBuffer(data []byte) Source {
	return bytesource.NewBuffer(data)
}

// OpenString wraps s as a Source.
func OpenString(s string) Source {
	return bytesource.NewString(s)
}

// OpenReader wraps an arbitrary io.Reader as a Source. If toClose and r
// implements io.Closer, closing the returned Source also closes r.
func OpenReader(r io.Reader, toClose bool) Source {
	return bytesource.NewReader(r, toClose)
}

// OpenFile opens an already-open *os.File for reading, preferring a
// memory-mapped window and falling back to buffered reads for files that
// can't be mapped (pipes, sockets). If toClose, closing the returned
// Source also closes f.
func OpenFile(f *os.File, toClose bool) (Source, error) {
	return bytesource.NewFile(f, toClose)
}

// OpenPath opens the file at path for reading, or standard input if path
// is "-".
func OpenPath(path string) (Source, error) {
	return bytesource.NewPath(path)
}
