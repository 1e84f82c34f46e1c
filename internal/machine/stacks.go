package machine

import "github.com/shapestone/yeast/internal/engine"

// tokenStack is the growable token buffer of spec.md §9 ("Token stack with
// partial drain"): tokens accumulate by append, and a cursor tracks how
// far the caller has drained. It never shrinks during parsing; truncate is
// only used by ResetState to discard a backtracked scope's tentative
// tokens.
type tokenStack struct {
	tokens []Token
	cursor int
}

func (s *tokenStack) push(t Token) { s.tokens = append(s.tokens, t) }
func (s *tokenStack) len() int     { return len(s.tokens) }
func (s *tokenStack) truncate(n int) {
	s.tokens = s.tokens[:n]
	if s.cursor > n {
		s.cursor = n
	}
}

// drain returns the next undelivered token, if any.
func (s *tokenStack) drain() (Token, bool) {
	if s.cursor >= len(s.tokens) {
		return Token{}, false
	}
	t := s.tokens[s.cursor]
	s.cursor++
	return t, true
}

// codeStack is the LIFO of open MATCH-code contexts of spec.md §3; its top
// is the code a new empty token inherits on end_token.
type codeStack struct {
	codes []Code
}

func (s *codeStack) push(c Code) { s.codes = append(s.codes, c) }

func (s *codeStack) pop() Code {
	top := s.codes[len(s.codes)-1]
	s.codes = s.codes[:len(s.codes)-1]
	return top
}

func (s *codeStack) top() Code {
	if len(s.codes) == 0 {
		return Done
	}
	return s.codes[len(s.codes)-1]
}

func (s *codeStack) len() int { return len(s.codes) }

func (s *codeStack) truncate(n int) { s.codes = s.codes[:n] }

// Frame is a backtracking snapshot (spec.md §3): the character engine's
// lookahead at the moment of the snapshot, plus the token/code stack
// depths to truncate back to on ResetState.
//
// spec.md §9 describes the frame stack as "two indices into the same
// array" — one array slot doubling as checkpoint and live frame — which
// matters in the original because the live frame has to be mutated in
// place without allocating a second struct. In Go the "live" state is
// simply the parser's own fields (Engine, tokens, codes); FrameStack only
// ever needs to hold committed checkpoints, one per open PushState scope,
// so it is a plain stack of Frame values rather than a dual-index scheme.
type Frame struct {
	Prev, Curr              engine.Character
	TokensDepth, CodesDepth int
}

type frameStack struct {
	frames []Frame
}

func (f *frameStack) push(snapshot Frame) { f.frames = append(f.frames, snapshot) }

func (f *frameStack) pop() Frame {
	top := f.frames[len(f.frames)-1]
	f.frames = f.frames[:len(f.frames)-1]
	return top
}

func (f *frameStack) set(snapshot Frame) { f.frames[len(f.frames)-1] = snapshot }

func (f *frameStack) top() Frame { return f.frames[len(f.frames)-1] }

func (f *frameStack) len() int { return len(f.frames) }
