package bytesource

import "testing"

func TestDynamicBufferGrowPreservesExistingData(t *testing.T) {
	d := &dynamicBuffer{base: make([]byte, 4), end: 4}
	copy(d.base, []byte("abcd"))
	d.grow(10)
	if len(d.base) < 14 {
		t.Fatalf("base too small after grow: %d", len(d.base))
	}
	if string(d.base[:4]) != "abcd" {
		t.Fatalf("grow did not preserve existing bytes: %q", d.base[:4])
	}
}

func TestDynamicBufferGrowIsANoOpWhenRoomAlreadyExists(t *testing.T) {
	d := &dynamicBuffer{base: make([]byte, dynamicBufferSize), end: 10}
	before := d.base
	d.grow(20)
	if &d.base[0] != &before[0] {
		t.Fatal("grow reallocated even though there was already room")
	}
}

func TestDynamicBufferLessReclaimsGapWhenBeginOutgrowsRemainder(t *testing.T) {
	d := &dynamicBuffer{base: []byte("abcdefgh"), begin: 0, end: 8}
	// Release 5 bytes: begin=5, remaining data "fgh" (3 bytes). begin(5) >=
	// dataSize(3), so the gap-reclamation slide fires: "fgh" moves to the
	// front of base and begin resets to 0.
	n, err := d.less(5)
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Errorf("less = %d, want 5", n)
	}
	if d.byteOffset != 5 {
		t.Errorf("byteOffset = %d, want 5", d.byteOffset)
	}
	if d.begin != 0 {
		t.Errorf("begin = %d, want 0 after the slide", d.begin)
	}
	if string(d.window()) != "fgh" {
		t.Errorf("window after slide = %q, want %q", d.window(), "fgh")
	}
}

func TestDynamicBufferLessDoesNotSlideWhenGapIsSmallerThanData(t *testing.T) {
	d := &dynamicBuffer{base: []byte("abcdefgh"), begin: 0, end: 8}
	// Release 2 bytes: begin=2, remaining data "cdefgh" (6 bytes). begin(2)
	// < dataSize(6), so the slide does not fire.
	if _, err := d.less(2); err != nil {
		t.Fatal(err)
	}
	if d.begin != 2 {
		t.Errorf("begin = %d, want 2 (no slide expected)", d.begin)
	}
	if string(d.window()) != "cdefgh" {
		t.Errorf("window = %q, want %q", d.window(), "cdefgh")
	}
}

func TestDynamicBufferLessRejectsOutOfRangeSize(t *testing.T) {
	d := &dynamicBuffer{base: []byte("abcd"), end: 4}
	if _, err := d.less(5); err == nil {
		t.Fatal("expected an error for a size beyond the window")
	}
	if _, err := d.less(-1); err == nil {
		t.Fatal("expected an error for a negative size")
	}
}

func TestDynamicBufferByteOffsetOf(t *testing.T) {
	d := &dynamicBuffer{byteOffset: 42}
	if got := d.byteOffsetOf(); got != 42 {
		t.Errorf("byteOffsetOf = %d, want 42", got)
	}
}
