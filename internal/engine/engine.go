// Package engine implements the character engine of spec.md §4.C: one
// code-point lookahead over a bytesource.Source, built on top of
// internal/charset's decoder and classifier.
//
// Grounded on _examples/original_source/yip.c's next_char/prev_char and the
// yip_char struct; the window-relocation handling yip.c performs by
// rebasing pointers is unnecessary here because Engine never calls
// Source.Less and always re-reads Source.Window() fresh rather than
// holding a slice across calls (spec.md §9 sanctions computing positions
// on demand instead of literal pointer rebasing).
package engine

import (
	"github.com/shapestone/yeast/internal/bytesource"
	"github.com/shapestone/yeast/internal/charset"
	"github.com/shapestone/yeast/internal/yerr"
)

// Special Code values a Character can carry instead of a decoded code
// point, matching yip.c's YIP_NO_CHAR / end-of-input / bad-sequence
// sentinels.
const (
	NoCode      int32 = -1 // before the first NextChar call
	EOFCode     int32 = -2 // past the last byte of input
	InvalidCode int32 = -3 // a malformed sequence was consumed
)

// Character is one decoded code point together with its position.
type Character struct {
	Code       int32
	Class      charset.Class
	ByteOffset int64 // absolute offset of the first byte of this character
	Width      int   // bytes this character occupies in its encoding
	CharOffset int64 // absolute code-point index from the start of input
	Line       int64 // 1-based line number
	LineChar   int64 // 0-based code-point index within the line
}

// Engine decodes a Source one code point at a time, tracking position and
// exposing a one-character lookahead (Curr/Prev), as required by spec.md
// §4.C.
type Engine struct {
	source   bytesource.Source
	encoding charset.Encoding

	prev, curr Character
	closed     bool
}

// New wraps source, decoding it as encoding. The first call to Curr
// returns a Character with Code == NoCode; call NextChar once to read the
// first real character. Line numbers are 1-based (spec.md §3).
func New(source bytesource.Source, encoding charset.Encoding) *Engine {
	e := &Engine{source: source, encoding: encoding}
	e.curr = Character{Code: NoCode, ByteOffset: source.ByteOffset(), Line: 1}
	e.prev = e.curr
	return e
}

// Encoding reports the encoding the engine is decoding.
func (e *Engine) Encoding() charset.Encoding { return e.encoding }

// Curr returns the most recently decoded character (the lookahead).
func (e *Engine) Curr() Character { return e.curr }

// Prev returns the character consumed just before Curr.
func (e *Engine) Prev() Character { return e.prev }

// ensure makes at least n bytes available in the source's window, starting
// from the current character's byte offset, short of EOF.
func (e *Engine) ensure(n int) ([]byte, error) {
	win := e.source.Window()
	have := len(win) - int(e.curr.ByteOffset-e.source.ByteOffset()) - e.curr.Width
	if have >= n {
		return e.currentTail(), nil
	}
	need := n - have
	if need < 0 {
		need = 0
	}
	if _, err := e.source.More(need); err != nil {
		return nil, err
	}
	return e.currentTail(), nil
}

// currentTail returns the window bytes starting just past the current
// character.
func (e *Engine) currentTail() []byte {
	win := e.source.Window()
	start := int(e.curr.ByteOffset-e.source.ByteOffset()) + e.curr.Width
	if start > len(win) {
		return nil
	}
	return win[start:]
}

// NextChar advances the lookahead by one code point. It is always safe to
// call at EOF: Curr becomes a Character with Code == EOFCode and Width ==
// 0, and further calls are idempotent. NextChar only advances line_char;
// it never bumps the line counter itself — that's NextLine's job, called
// by a production right after a break character has been consumed,
// matching yip.c's split between next_char (which only tracks
// line_char/char_offset) and next_line (which bumps line and resets
// line_char).
func (e *Engine) NextChar() error {
	if e.closed {
		return yerr.New(yerr.EINVAL, "engine.NextChar")
	}
	e.prev = e.curr

	if e.curr.Code == EOFCode {
		// Stay at EOF; offsets don't move.
		return nil
	}

	startOfLine := e.curr.Code == NoCode || e.curr.Class&charset.Break != 0

	nextByteOffset := e.curr.ByteOffset + int64(e.curr.Width)
	nextCharOffset := e.curr.CharOffset
	nextLine := e.curr.Line
	nextLineChar := e.curr.LineChar
	if e.curr.Code != NoCode {
		nextCharOffset++
		nextLineChar++
	}

	tail, err := e.ensure(charset.MaxEncodedLen)
	if err != nil {
		return err
	}
	if len(tail) == 0 {
		e.curr = Character{
			Code:       EOFCode,
			Class:      charset.EOF,
			ByteOffset: nextByteOffset,
			CharOffset: nextCharOffset,
			Line:       nextLine,
			LineChar:   nextLineChar,
		}
		return nil
	}

	code, n, decErr := charset.Decode(e.encoding, tail)
	class := charset.Classify(code)
	if startOfLine {
		class |= charset.StartOfLine
	}
	if decErr != nil {
		code = InvalidCode
		class = charset.Class(0)
	}
	e.curr = Character{
		Code:       code,
		Class:      class,
		ByteOffset: nextByteOffset,
		Width:      n,
		CharOffset: nextCharOffset,
		Line:       nextLine,
		LineChar:   nextLineChar,
	}
	return decErr
}

// NextLine bumps the line counter and resets line_char, without decoding
// a new character — called by a production right after consuming a break
// character via NextChar, matching yip.c's next_line (`line++; line_char =
// 0`). It also marks the current lookahead as start-of-line, since a
// character immediately following a break always starts its line.
func (e *Engine) NextLine() {
	e.curr.Line++
	e.curr.LineChar = 0
	e.curr.Class |= charset.StartOfLine
}

// Retract undoes the last NextChar, restoring Curr to Prev. Only one level
// of history is kept (spec.md §4.D's "immediately previous character"),
// matching yip.c's prev_char.
func (e *Engine) Retract() {
	e.curr = e.prev
}

// Restore resets the lookahead to a previously observed (prev, curr) pair,
// used by backtracking (spec.md §4.F's reset_state) to undo everything
// since a checkpoint without re-reading the source.
func (e *Engine) Restore(prev, curr Character) {
	e.prev = prev
	e.curr = curr
}

// Close releases the engine. It does not close the underlying Source;
// callers that own the source close it themselves.
func (e *Engine) Close() {
	e.closed = true
}
