package bytesource

import (
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"

	"github.com/shapestone/yeast/internal/yerr"
)

// mmapSource maps a file once at open; the window spans the whole mapping
// and never grows. Grounded on yip.c's FD_MMAP_SOURCE / yip_fd_map_source,
// using github.com/edsrzf/mmap-go for the actual syscalls instead of
// hand-rolled mmap(2)/unix.Mmap — mmap-go is cross-platform, which matters
// because yip.c's own comment flags a "TODO: Also provide a Windows
// implementation" that hand-rolling unix syscalls would leave unresolved.
// _examples/grafana-mimir declares this exact dependency for the same
// "map a file for zero-copy reads" concern in its indexheader package.
type mmapSource struct {
	f          *os.File
	m          mmap.MMap
	begin      int
	byteOffset int64
	toClose    bool
}

// NewMmap memory-maps f for reading. If toClose, Close also closes f.
func NewMmap(f *os.File, toClose bool) (Source, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, yerr.Wrap(yerr.EIO, "mmap.Stat", errors.Wrap(err, "stat mmap source"))
	}
	if info.Size() == 0 {
		if !info.Mode().IsRegular() {
			// A pipe, socket or device reports size 0 and cannot be mapped.
			return nil, yerr.New(yerr.EINVAL, "mmap.Map")
		}
		// mmap-go (like mmap(2)) rejects zero-length mappings; an empty
		// file is valid input (spec.md §8 scenario 1), so fall back to an
		// empty static window instead of failing the open. Nothing is ever
		// read from f, so if toClose it is closed here.
		if toClose {
			if err := f.Close(); err != nil {
				return nil, yerr.Wrap(yerr.EIO, "mmap.Close", err)
			}
		}
		return &staticSource{}, nil
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, yerr.Wrap(yerr.EIO, "mmap.Map", errors.Wrap(err, "mmap source"))
	}
	return &mmapSource{f: f, m: m, toClose: toClose}, nil
}

func (s *mmapSource) More(size int) (int, error) {
	if size < 0 {
		return 0, invalidSize("mmap.More")
	}
	return 0, nil
}

func (s *mmapSource) Less(size int) (int, error) {
	if size < 0 {
		return 0, invalidSize("mmap.Less")
	}
	if size > len(s.m)-s.begin {
		return 0, invalidSize("mmap.Less")
	}
	s.begin += size
	s.byteOffset += int64(size)
	return size, nil
}

func (s *mmapSource) Close() error {
	m, f := s.m, s.f
	s.m, s.f = nil, nil
	if m != nil {
		if err := m.Unmap(); err != nil {
			return yerr.Wrap(yerr.EIO, "mmap.Unmap", err)
		}
	}
	if s.toClose && f != nil {
		if err := f.Close(); err != nil {
			return yerr.Wrap(yerr.EIO, "mmap.Close", err)
		}
	}
	return nil
}

func (s *mmapSource) Window() []byte    { return s.m[s.begin:] }
func (s *mmapSource) ByteOffset() int64 { return s.byteOffset }
