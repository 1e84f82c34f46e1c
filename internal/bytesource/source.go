// Package bytesource implements the polymorphic sliding byte window
// described by spec.md §4.A: a small capability set — More, Less, Close —
// over three backing implementations (static buffer, io.Reader stream held
// in a growable dynamic buffer, and a memory-mapped file).
//
// Grounded on _examples/original_source/yip.c's YIP_SOURCE v-table and its
// five constructors (yip_buffer_source, yip_string_source, yip_fp_source,
// yip_fd_read_source, yip_fd_map_source).
package bytesource

import (
	"github.com/shapestone/yeast/internal/yerr"
)

// Source is the common contract every byte-source variant satisfies.
//
// Window returns the currently materialized slice of bytes; it is only
// valid until the next call to More or Less on the same Source (the
// backing allocation may grow, shrink, or relocate).
type Source interface {
	// More requests up to size additional bytes be appended to the window.
	// It returns how many bytes were actually appended; 0 means EOF.
	More(size int) (int, error)
	// Less releases size bytes from the front of the window.
	Less(size int) (int, error)
	// Close releases all resources held by the source.
	Close() error
	// Window returns the currently materialized byte slice.
	Window() []byte
	// ByteOffset is how many bytes have been released (via Less) before
	// the start of the current window.
	ByteOffset() int64
}

// EndOffset returns byte_offset + len(window): the absolute offset just
// past the last available byte. Named after yip.c's endoff macro and
// exposed as a package function since several packages beyond bytesource need
// it (rebase math, invariant checks, EOF detection).
func EndOffset(s Source) int64 {
	return s.ByteOffset() + int64(len(s.Window()))
}

func invalidSize(op string) error {
	return yerr.New(yerr.EINVAL, op)
}
