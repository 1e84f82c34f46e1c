package bytesource

import (
	"strings"
	"testing"
)

func TestReaderMoreFillsFromUnderlyingReader(t *testing.T) {
	s := NewReader(strings.NewReader("hello world"), false)
	n, err := s.More(5)
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Errorf("More = %d, want 5", n)
	}
	if string(s.Window()) != "hello" {
		t.Errorf("Window = %q, want %q", s.Window(), "hello")
	}
}

func TestReaderMoreAtEOFIsIdempotent(t *testing.T) {
	s := NewReader(strings.NewReader("ab"), false)
	if _, err := s.More(10); err != nil {
		t.Fatal(err)
	}
	if string(s.Window()) != "ab" {
		t.Fatalf("Window = %q, want %q", s.Window(), "ab")
	}
	n, err := s.More(10)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("More past EOF = %d, want 0", n)
	}
	if string(s.Window()) != "ab" {
		t.Fatalf("Window after More past EOF = %q, want %q", s.Window(), "ab")
	}
}

func TestReaderLessSurvivesAGapReclamationSlide(t *testing.T) {
	s := NewReader(strings.NewReader("abcdefgh"), false)
	if _, err := s.More(8); err != nil {
		t.Fatal(err)
	}
	// Release enough of the front that the gap-reclamation slide in
	// dynamicBuffer.less fires: Window and ByteOffset must stay correct
	// across the rebase.
	if _, err := s.Less(6); err != nil {
		t.Fatal(err)
	}
	if got, want := s.ByteOffset(), int64(6); got != want {
		t.Fatalf("ByteOffset after Less = %d, want %d", got, want)
	}
	if got, want := string(s.Window()), "gh"; got != want {
		t.Fatalf("Window after Less = %q, want %q", got, want)
	}
	if got, want := EndOffset(s), int64(8); got != want {
		t.Fatalf("EndOffset = %d, want %d", got, want)
	}
}

func TestReaderCloseReleasesAndOptionallyClosesUnderlying(t *testing.T) {
	rc := &closeTrackingReader{r: strings.NewReader("x")}
	s := NewReader(rc, true)
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if !rc.closed {
		t.Error("Close did not close the underlying io.Closer when toClose was true")
	}
	if len(s.Window()) != 0 {
		t.Errorf("Window after Close = %q, want empty", s.Window())
	}
}

type closeTrackingReader struct {
	r      *strings.Reader
	closed bool
}

func (c *closeTrackingReader) Read(p []byte) (int, error) { return c.r.Read(p) }
func (c *closeTrackingReader) Close() error                { c.closed = true; return nil }
