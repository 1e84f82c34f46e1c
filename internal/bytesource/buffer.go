package bytesource

// staticSource wraps a fixed, caller-owned byte slice: no backing I/O, so
// More never has anything to add. Grounded on yip.c's buffer_more (always
// returns 0) / buffer_less (walks the window) / yip_buffer_source /
// yip_string_source, which share one implementation in the original too.
type staticSource struct {
	data       []byte
	byteOffset int64
}

// NewBuffer wraps data as a byte source with no backing I/O. data is not
// copied; the caller must keep it alive and unmodified for the source's
// lifetime.
func NewBuffer(data []byte) Source {
	return &staticSource{data: data}
}

// NewString wraps a Go string as a byte source, matching yip_string_source.
// Go strings are already immutable so there's no separate null-terminated
// variant to special-case here.
func NewString(s string) Source {
	return &staticSource{data: []byte(s)}
}

func (s *staticSource) More(size int) (int, error) {
	if size < 0 {
		return 0, invalidSize("buffer.More")
	}
	return 0, nil
}

func (s *staticSource) Less(size int) (int, error) {
	if size < 0 {
		return 0, invalidSize("buffer.Less")
	}
	if size > len(s.data) {
		return 0, invalidSize("buffer.Less")
	}
	s.data = s.data[size:]
	s.byteOffset += int64(size)
	return size, nil
}

func (s *staticSource) Close() error {
	s.data = nil
	return nil
}

func (s *staticSource) Window() []byte { return s.data }

func (s *staticSource) ByteOffset() int64 { return s.byteOffset }
