package machine

import (
	"fmt"

	"github.com/shapestone/yeast/internal/bytesource"
	"github.com/shapestone/yeast/internal/charset"
	"github.com/shapestone/yeast/internal/engine"
	"github.com/shapestone/yeast/internal/yerr"
)

// noCode marks the current accumulating token as "not yet labeled" —
// distinct from Done, which is itself a real deliverable code. 0x01 is
// never a printable ASCII token code (the valid range is ' '..'~' plus the
// NUL used for Done), so it can't collide with a table-supplied code.
const noCode Code = 0x01

// Parser is the runtime state of one tokenizer instance (spec.md §3's
// "Parser State"): the active machine, its state/action cursor, the
// counters, the three stacks, and the character engine. Grounded on
// _examples/original_source/yip.c's struct YIP, generalized to the
// code-stack-bearing emitter spec.md §4.E/§9 calls for.
type Parser struct {
	source  bytesource.Source
	toClose bool
	eng     *engine.Engine

	tokens tokenStack
	codes  codeStack
	frames frameStack

	choices     uint
	state       int
	actionIndex int
	i, n        int
	machine     *Machine
	isTest      bool

	// cleanFinish is set by OpSuccess and only OpSuccess: it distinguishes
	// a production that ran its table to completion from one driven into
	// doneState directly by unexpected()/nonPositiveN(), which already
	// explained itself with its own ERROR token. doneReported makes the
	// one-shot checks doneToken performs on top of that idempotent across
	// repeated NextToken polls once DONE is reached.
	cleanFinish  bool
	doneReported bool

	cur Token

	err    error
	closed bool
}

// Open initializes a Parser over source, decoding it with encoding and
// running machine starting at state 0. n is the indentation parameter (-1
// if the production takes none), matching yip_init.
func Open(source bytesource.Source, toClose bool, encoding charset.Encoding, m *Machine, n int, isTest bool) (*Parser, error) {
	if source == nil || m == nil {
		return nil, yerr.New(yerr.EINVAL, "machine.Open")
	}
	p := &Parser{
		source:  source,
		toClose: toClose,
		eng:     engine.New(source, encoding),
		machine: m,
		n:       n,
		isTest:  isTest,
	}
	p.cur = p.freshToken(noCode)
	if err := p.nextChar(); err != nil {
		return nil, err
	}
	return p, nil
}

// Close tears down the parser and, if it owns the source, closes it too
// (spec.md §3's lifecycle, §5's shared-resource policy).
func (p *Parser) Close() error {
	p.closed = true
	p.eng.Close()
	if p.toClose {
		return p.source.Close()
	}
	return nil
}

// NextToken drains one token, running the machine as needed, matching
// yip_next_token's drain-then-run loop (spec.md §4.I).
func (p *Parser) NextToken() (Token, error) {
	if p.err != nil {
		return Token{}, p.err
	}
	if t, ok := p.tokens.drain(); ok {
		return t, nil
	}
	if p.state == doneState {
		return p.doneToken(), nil
	}
	result, err := p.machine.Step(p)
	if err != nil {
		p.err = err
		return Token{}, err
	}
	switch result {
	case ResultToken:
		t, ok := p.tokens.drain()
		if !ok {
			// An action signaled ResultToken without anything queued is a
			// table bug, not a runtime condition callers can recover from.
			p.err = yerr.New(yerr.EFAULT, "machine.NextToken")
			return Token{}, p.err
		}
		return t, nil
	case ResultDone:
		return p.doneToken(), nil
	default: // ResultUnexpected
		return p.unexpected()
	}
}

// doneToken returns the terminal DONE token, first performing the two
// one-shot checks spec.md §12 reserves for a test-production run: a
// non-empty accumulator that was never closed by its own end_token is
// wrapped up as a TEST token instead of being silently dropped, matching
// yip.c's done() relabeling a leftover token; and, outside test mode, a
// production that reported SUCCESS without its lookahead at EOF is
// reported as "Expected end of input", matching done()'s lookahead check
// on the real top-level stream production. Both checks run at most once;
// doneReported guards the second since the first already self-limits
// once p.cur is drained back to empty.
func (p *Parser) doneToken() Token {
	if p.isTest && p.cur.End > p.cur.Begin {
		finished := p.cur
		finished.Code = Test
		p.cur = p.freshToken(p.codes.top())
		return finished
	}
	if !p.isTest && p.cleanFinish && !p.doneReported && p.eng.Curr().Code != engine.EOFCode {
		p.doneReported = true
		curr := p.eng.Curr()
		return Token{
			ByteOffset: curr.ByteOffset,
			CharOffset: curr.CharOffset,
			Line:       curr.Line,
			LineChar:   curr.LineChar,
			Static:     []byte("Expected end of input"),
			Encoding:   charset.UTF8,
			Code:       Error,
		}
	}
	p.doneReported = true
	return p.terminalDone()
}

func (p *Parser) terminalDone() Token {
	curr := p.eng.Curr()
	return Token{
		ByteOffset: curr.ByteOffset,
		CharOffset: curr.CharOffset,
		Line:       curr.Line,
		LineChar:   curr.LineChar,
		Code:       Done,
	}
}

// unexpected reports the character the active machine couldn't dispatch
// on as an ERROR token and forces the parser into the done state,
// matching yip.c's unexpected().
func (p *Parser) unexpected() (Token, error) {
	curr := p.eng.Curr()
	t := Token{
		ByteOffset: curr.ByteOffset,
		CharOffset: curr.CharOffset,
		Line:       curr.Line,
		LineChar:   curr.LineChar,
		Static:     []byte(unexpectedMessage(curr)),
		Encoding:   charset.UTF8,
		Code:       Error,
	}
	p.state = doneState
	return t, nil
}

// unexpectedMessage names the offending code point, matching
// _examples/original_source/yip.c's unexpected() message assembly: a
// one-byte escape for code points that fit a byte, a four-hex-digit
// escape otherwise.
func unexpectedMessage(curr engine.Character) string {
	switch curr.Code {
	case engine.EOFCode:
		return "Unexpected end of input"
	case engine.InvalidCode:
		return "Unexpected invalid byte sequence"
	}
	if curr.Code >= 0 && curr.Code <= 0xFF {
		return fmt.Sprintf("Unexpected '\\x%02x'", curr.Code)
	}
	return fmt.Sprintf("Unexpected '\\u%04x'", curr.Code)
}

// freshToken returns a new, empty accumulating token anchored at the
// engine's current lookahead position.
func (p *Parser) freshToken(code Code) Token {
	curr := p.eng.Curr()
	return Token{
		ByteOffset: curr.ByteOffset,
		CharOffset: curr.CharOffset,
		Line:       curr.Line,
		LineChar:   curr.LineChar,
		Begin:      curr.ByteOffset,
		End:        curr.ByteOffset,
		Encoding:   p.eng.Encoding(),
		Code:       code,
	}
}

// beginToken opens a new MATCH (or BOM) context: if the current
// accumulating token already matched characters, it is emitted first;
// then code is pushed on the code stack and a fresh empty token starts.
// Matches yip.c's begin_token, generalized with the code stack spec.md
// §4.E/§9 calls for.
func (p *Parser) beginToken(code Code) {
	if p.cur.End > p.cur.Begin {
		p.tokens.push(p.cur)
	}
	p.codes.push(code)
	p.cur = p.freshToken(code)
}

// endToken closes the innermost open context, popping the code stack; code
// is the code the finished token is delivered under (normally the popped
// top, or Unparsed as a recovery override — no equality check is made).
// An empty accumulation is relabeled to the newly exposed stack top and
// not delivered; a non-empty one is delivered (with the BOM rewrite if
// applicable). Returns whether a token was queued.
func (p *Parser) endToken(code Code) bool {
	p.codes.pop()
	newTop := p.codes.top()
	if p.cur.End == p.cur.Begin {
		p.cur.Code = newTop
		return false
	}
	finished := p.cur
	finished.Code = code
	if code == BOM {
		name := finished.Encoding.StaticName()
		finished.Static = name
		finished.Begin, finished.End = 0, 0
		finished.Encoding = charset.UTF8
	}
	p.tokens.push(finished)
	p.cur = p.freshToken(newTop)
	return true
}

// emptyToken delivers a zero-length synthetic token for a BEGIN/END
// grouping code (or Done), independent of the accumulating token. Matches
// yip.c's empty_token.
func (p *Parser) emptyToken(code Code) {
	curr := p.eng.Curr()
	p.tokens.push(Token{
		ByteOffset: curr.ByteOffset,
		CharOffset: curr.CharOffset,
		Line:       curr.Line,
		LineChar:   curr.LineChar,
		Code:       code,
	})
}

// fakeToken delivers a FAKE token whose bytes are a static UTF-8 message,
// independent of the accumulating token. Matches yip.c's error-token
// assembly inline in commit/non_positive_n/unexpected.
func (p *Parser) fakeToken(code Code, text []byte) {
	curr := p.eng.Curr()
	p.tokens.push(Token{
		ByteOffset: curr.ByteOffset,
		CharOffset: curr.CharOffset,
		Line:       curr.Line,
		LineChar:   curr.LineChar,
		Static:     text,
		Encoding:   charset.UTF8,
		Code:       code,
	})
}

func (p *Parser) nextChar() error {
	wasNoCode := p.eng.Curr().Code == engine.NoCode
	if err := p.eng.NextChar(); err != nil {
		return err
	}
	if !wasNoCode {
		p.cur.End = p.eng.Curr().ByteOffset
	}
	return nil
}

func (p *Parser) prevChar() {
	p.eng.Retract()
	p.cur.End = p.eng.Curr().ByteOffset
}

func (p *Parser) nextLine() error {
	p.eng.NextLine()
	return nil
}

func (p *Parser) beginChoice(c Choice) { p.choices |= 1 << c }
func (p *Parser) endChoice(c Choice)   { p.choices &^= 1 << c }

// commit emits an ERROR token if executed outside the matching choice
// scope, matching yip.c's commit.
func (p *Parser) commit(c Choice) bool {
	if p.choices&(1<<c) != 0 {
		return false
	}
	p.fakeToken(Error, []byte(choiceErrors[c]))
	return true
}

func (p *Parser) nonPositiveN() {
	p.fakeToken(Error, []byte("Fewer than 0 repetitions"))
	p.state = doneState
}

// scanIndent implements s-indent(n): up to n leading spaces as one INDENT
// token. It runs as a single self-contained action rather than a
// dispatched run of states because its stopping condition — "the counter
// reached n" — can't be expressed as a class-based Transition, the same
// reason nonPositiveN and unexpected decide their own control flow from
// inside an action instead of through dispatch.
//
// A tab seen before n spaces are consumed is illegal indentation (unlike
// s-separate-in-line, where tab is permitted); it triggers spec.md §7's
// recovery policy via recoverFromIllegalTab.
func (p *Parser) scanIndent() error {
	p.beginToken(Indent)
	for p.i < p.n {
		curr := p.eng.Curr()
		if curr.Class&charset.White == 0 || curr.Class&charset.Break != 0 || curr.Class&charset.EOF != 0 {
			break
		}
		if curr.Class&charset.Tab != 0 {
			p.endToken(Indent)
			return p.recoverFromIllegalTab(curr)
		}
		if err := p.nextChar(); err != nil {
			return err
		}
		p.i++
	}
	p.endToken(Indent)
	return nil
}

// recoverFromIllegalTab reports curr as an ERROR naming the byte, then
// skips to the next line break (or EOF) as a single UNPARSED token
// covering the skipped bytes, matching spec.md §7's scenario of an
// unexpected tab where only spaces were permitted: an ERROR followed by
// an UNPARSED token, leaving the enclosing BEGIN free to still receive
// its paired END from the calling production's own table.
func (p *Parser) recoverFromIllegalTab(curr engine.Character) error {
	p.fakeToken(Error, []byte(unexpectedMessage(curr)))
	p.beginToken(Unparsed)
	for {
		c := p.eng.Curr()
		if c.Class&charset.Break != 0 || c.Class&charset.EOF != 0 {
			break
		}
		if err := p.nextChar(); err != nil {
			return err
		}
	}
	p.endToken(Unparsed)
	return nil
}

// pushState snapshots the live state as a new checkpoint (spec.md §4.F).
func (p *Parser) pushState() {
	p.frames.push(Frame{
		Prev:        p.eng.Prev(),
		Curr:        p.eng.Curr(),
		TokensDepth: p.tokens.len(),
		CodesDepth:  p.codes.len(),
	})
}

// setState commits progress since the last push/set without leaving the
// scope, by overwriting the checkpoint with a fresh snapshot.
func (p *Parser) setState() {
	p.frames.set(Frame{
		Prev:        p.eng.Prev(),
		Curr:        p.eng.Curr(),
		TokensDepth: p.tokens.len(),
		CodesDepth:  p.codes.len(),
	})
}

// popState discards the checkpoint, keeping all progress made since
// pushState.
func (p *Parser) popState() { p.frames.pop() }

// resetState discards progress since the checkpoint, restoring character
// position and truncating the token/code stacks back to the checkpoint's
// depths.
func (p *Parser) resetState() {
	f := p.frames.pop()
	p.eng.Restore(f.Prev, f.Curr)
	p.tokens.truncate(f.TokensDepth)
	p.codes.truncate(f.CodesDepth)
	p.cur = p.freshToken(p.codes.top())
}

// IsSameState reports whether the current character position equals the
// top checkpoint's — used by machines to detect unproductive choices.
func (p *Parser) IsSameState() bool {
	return p.eng.Curr().ByteOffset == p.frames.top().Curr.ByteOffset
}
