package engine

import (
	"testing"

	"github.com/shapestone/yeast/internal/bytesource"
	"github.com/shapestone/yeast/internal/charset"
)

func TestNextCharAdvancesPosition(t *testing.T) {
	e := New(bytesource.NewString("ab"), charset.UTF8)

	if err := e.NextChar(); err != nil {
		t.Fatal(err)
	}
	if e.Curr().Code != 'a' || e.Curr().ByteOffset != 0 || e.Curr().CharOffset != 0 {
		t.Fatalf("first char = %+v", e.Curr())
	}

	if err := e.NextChar(); err != nil {
		t.Fatal(err)
	}
	if e.Curr().Code != 'b' || e.Curr().ByteOffset != 1 || e.Curr().CharOffset != 1 {
		t.Fatalf("second char = %+v", e.Curr())
	}
}

func TestNextCharEOFIsIdempotent(t *testing.T) {
	e := New(bytesource.NewString("a"), charset.UTF8)
	if err := e.NextChar(); err != nil {
		t.Fatal(err)
	}
	if err := e.NextChar(); err != nil {
		t.Fatal(err)
	}
	if e.Curr().Code != EOFCode {
		t.Fatalf("expected EOF, got %+v", e.Curr())
	}
	if e.Curr().Class&charset.EOF == 0 {
		t.Fatal("EOF character must carry the EOF class bit")
	}
	before := e.Curr()
	if err := e.NextChar(); err != nil {
		t.Fatal(err)
	}
	if e.Curr() != before {
		t.Fatalf("NextChar past EOF must be a no-op: got %+v, want %+v", e.Curr(), before)
	}
}

func TestNextLineDoesNotAdvanceOnItsOwn(t *testing.T) {
	e := New(bytesource.NewString("a\nb"), charset.UTF8)
	_ = e.NextChar() // 'a', line 1
	_ = e.NextChar() // '\n', line 1 still
	if e.Curr().Line != 1 {
		t.Fatalf("line = %d before NextLine, want 1", e.Curr().Line)
	}
	e.NextLine()
	if e.Curr().Line != 2 || e.Curr().LineChar != 0 {
		t.Fatalf("after NextLine: line=%d linechar=%d, want 2,0", e.Curr().Line, e.Curr().LineChar)
	}
	_ = e.NextChar() // 'b', still line 2
	if e.Curr().Line != 2 {
		t.Fatalf("NextChar bumped the line on its own: line = %d", e.Curr().Line)
	}
}

func TestRetractRestoresPreviousCharacter(t *testing.T) {
	e := New(bytesource.NewString("ab"), charset.UTF8)
	_ = e.NextChar()
	first := e.Curr()
	_ = e.NextChar()
	e.Retract()
	if e.Curr() != first {
		t.Fatalf("Retract = %+v, want %+v", e.Curr(), first)
	}
}

func TestRestoreChecksOutABacktrackSnapshot(t *testing.T) {
	e := New(bytesource.NewString("abc"), charset.UTF8)
	_ = e.NextChar()
	snapshotPrev, snapshotCurr := e.Prev(), e.Curr()
	_ = e.NextChar()
	_ = e.NextChar()
	e.Restore(snapshotPrev, snapshotCurr)
	if e.Curr() != snapshotCurr || e.Prev() != snapshotPrev {
		t.Fatal("Restore did not check out the snapshot")
	}
}
