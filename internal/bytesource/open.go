package bytesource

import (
	"os"

	"github.com/shapestone/yeast/internal/yerr"
)

// NewFile opens f for mmap-or-read access, matching yip_fd_source: try
// memory-mapping first, and fall back to a buffered read source if mmap
// isn't available for this file (e.g. a pipe or socket can't be mapped).
// toClose controls whether Close on the returned Source also closes f.
func NewFile(f *os.File, toClose bool) (Source, error) {
	if f == nil {
		return nil, yerr.New(yerr.EINVAL, "bytesource.NewFile")
	}
	if src, err := NewMmap(f, toClose); err == nil {
		return src, nil
	}
	return NewReader(f, toClose), nil
}

// NewPath opens path for mmap-or-read access, matching yip_path_source.
// The path "-" means standard input (which is never mappable, so this
// always falls back to the reader variant for stdin).
func NewPath(path string) (Source, error) {
	if path == "-" {
		return NewReader(os.Stdin, false), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, yerr.Wrap(yerr.EIO, "bytesource.NewPath", err)
	}
	return NewFile(f, true)
}
