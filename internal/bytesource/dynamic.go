package bytesource

// dynamicBufferSize is the growth increment, matching yip.c's
// DYNAMIC_BUFFER_SIZE ("a good match for I/O operation size").
const dynamicBufferSize = 8192

// dynamicBuffer is a malloc-grown buffer with gap reclamation, embedded by
// the io.Reader-backed variant. Grounded on yip.c's
// DYNAMIC_SOURCE / dynamic_more / dynamic_less.
type dynamicBuffer struct {
	base       []byte // physical backing allocation
	begin, end int    // window bounds within base
	byteOffset int64
}

// grow makes room for size more bytes at the end of the window without
// appending them; readerSource.More writes the new bytes in afterwards. Mirrors dynamic_more's "make room, don't fill".
func (d *dynamicBuffer) grow(size int) {
	used := d.end
	need := used + size
	if need <= len(d.base) {
		return
	}
	buffers := (need + dynamicBufferSize - 1) / dynamicBufferSize
	newBase := make([]byte, buffers*dynamicBufferSize)
	copy(newBase, d.base[:d.end])
	d.base = newBase
}

func (d *dynamicBuffer) less(size int) (int, error) {
	if size < 0 {
		return 0, invalidSize("dynamic.Less")
	}
	dataSize := d.end - d.begin
	if size > dataSize {
		return 0, invalidSize("dynamic.Less")
	}
	d.begin += size
	d.byteOffset += int64(size)
	dataSize -= size
	// Tricky: move data to the start of the buffer if it fits in the gap
	// already behind it. This keeps the memmove a non-overlapping memcpy
	// and keeps amortized cost linear. Mirrors dynamic_less exactly.
	if d.begin >= dataSize {
		copy(d.base[:dataSize], d.base[d.begin:d.end])
		d.begin = 0
		d.end = dataSize
	}
	return size, nil
}

func (d *dynamicBuffer) window() []byte      { return d.base[d.begin:d.end] }
func (d *dynamicBuffer) byteOffsetOf() int64 { return d.byteOffset }
