package bytesource

import (
	"io"

	"github.com/shapestone/yeast/internal/yerr"
)

// readerSource wraps an io.Reader as a dynamic-buffered byte source.
//
// yip.c has two near-identical variants here, FP_READ_SOURCE (stdio
// fread) and FD_READ_SOURCE (POSIX read); both are extensions of the same
// dynamic buffer and differ only in which syscall fills the tail. Go's
// io.Reader already unifies *os.File, os.Stdin, and any other byte stream,
// which is the entire reason yip.c needed two structs — no such
// duplication makes sense here.
type readerSource struct {
	dynamicBuffer
	r        io.Reader
	closer   io.Closer
	toClose  bool
	sawEOF   bool
}

// NewReader wraps r as a byte source. If toClose and r implements
// io.Closer, Close also closes r.
func NewReader(r io.Reader, toClose bool) Source {
	s := &readerSource{r: r, toClose: toClose}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

func (s *readerSource) More(size int) (int, error) {
	if size < 0 {
		return 0, invalidSize("reader.More")
	}
	if s.sawEOF {
		return 0, nil
	}
	s.grow(size)
	n, err := io.ReadFull(s.r, s.base[s.end:s.end+size])
	// A short/partial read at EOF is expected here (spec.md: "short reads
	// are allowed; EOF returns 0"), not an error condition.
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		s.sawEOF = true
		err = nil
	}
	if err != nil {
		return 0, yerr.Wrap(yerr.EIO, "reader.More", err)
	}
	s.end += n
	if n == 0 {
		s.sawEOF = true
	}
	return n, nil
}

func (s *readerSource) Less(size int) (int, error) { return s.less(size) }

func (s *readerSource) Close() error {
	s.base, s.begin, s.end = nil, 0, 0
	if s.toClose && s.closer != nil {
		if err := s.closer.Close(); err != nil {
			return yerr.Wrap(yerr.EIO, "reader.Close", err)
		}
	}
	return nil
}

func (s *readerSource) Window() []byte      { return s.window() }
func (s *readerSource) ByteOffset() int64   { return s.byteOffsetOf() }
