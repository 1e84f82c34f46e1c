// Package machine implements the parser core of spec.md §4.E-§4.I: the
// token/code model, the code stack and frame stack, the generic state
// machine runtime, and the production registry. Grounded throughout on
// _examples/original_source/yip.h's YIP_CODE/YIP_CODE_TYPE/YIP_TOKEN and
// yip.c's begin_token/end_token/empty_token/next_char/yip_next_token, with
// the code-stack semantics of spec.md §4.E (the "newer" variant spec.md §9
// calls for, rather than yip.c's single-token has_token tri-state, which
// has no code stack at all).
package machine

import "github.com/shapestone/yeast/internal/charset"

// Code is a YEAST token code: a single printable ASCII byte, exhaustively
// enumerated in spec.md §6. Values and names are taken verbatim from
// _examples/original_source/yip.h's YIP_CODE enum.
type Code byte

const (
	Done Code = 0 // YIP_DONE

	BOM Code = 'U' // byte order mark

	Text          Code = 'T' // content text
	Meta          Code = 't' // non-content text
	Break         Code = 'b' // non-content (separation) line break
	LineFeed      Code = 'L' // line break normalized to line feed
	LineFold      Code = 'l' // line break folded to content space
	Indicator     Code = 'I' // character indicating structure
	White         Code = 'w' // non-content (separation) white space
	Indent        Code = 'i' // indentation spaces
	DocumentStart Code = 'K' // document start marker
	DocumentEnd   Code = 'k' // document end marker

	BeginEscape     Code = 'E'
	EndEscape       Code = 'e'
	BeginComment    Code = 'C'
	EndComment      Code = 'c'
	BeginDirective  Code = 'D'
	EndDirective    Code = 'd'
	BeginTag        Code = 'G'
	EndTag          Code = 'g'
	BeginHandle     Code = 'H'
	EndHandle       Code = 'h'
	BeginAnchor     Code = 'A'
	EndAnchor       Code = 'a'
	BeginProperties Code = 'P'
	EndProperties   Code = 'p'
	BeginAlias      Code = 'R'
	EndAlias        Code = 'r'
	BeginScalar     Code = 'S'
	EndScalar       Code = 's'
	BeginSequence   Code = 'Q'
	EndSequence     Code = 'q'
	BeginMapping    Code = 'M'
	EndMapping      Code = 'm'
	BeginNode       Code = 'N'
	EndNode         Code = 'n'
	BeginPair       Code = 'X'
	EndPair         Code = 'x'
	BeginDocument   Code = 'O'
	EndDocument     Code = 'o'

	Error    Code = '!' // parsing error
	Unparsed Code = '-' // unparsed text left behind after recovery
	Test     Code = '?' // leftover accumulator wrapped up by a test run
)

// CodeType classifies a Code as BEGIN, END, MATCH, or FAKE (spec.md §3).
type CodeType int

const (
	Begin CodeType = iota
	End
	Match
	Fake
)

// pairs maps every BEGIN code to its END code; codePairs is built from it
// in both directions at init so code_pair is its own inverse, matching
// spec.md §8's `code_pair(code_pair(c)) == c`.
var pairs = map[Code]Code{
	BeginEscape:     EndEscape,
	BeginComment:    EndComment,
	BeginDirective:  EndDirective,
	BeginTag:        EndTag,
	BeginHandle:     EndHandle,
	BeginAnchor:     EndAnchor,
	BeginProperties: EndProperties,
	BeginAlias:      EndAlias,
	BeginScalar:     EndScalar,
	BeginSequence:   EndSequence,
	BeginMapping:    EndMapping,
	BeginNode:       EndNode,
	BeginPair:       EndPair,
	BeginDocument:   EndDocument,
}

var codePairs = func() map[Code]Code {
	m := make(map[Code]Code, len(pairs)*2)
	for b, e := range pairs {
		m[b] = e
		m[e] = b
	}
	return m
}()

// CodePair returns the BEGIN paired with an END, or vice versa. It panics
// on a code that has no pair (MATCH/FAKE codes never do) — callers must
// only call it on BEGIN/END codes, same as yip.c's switch-with-no-default
// on the pairing table.
func CodePair(code Code) Code {
	paired, ok := codePairs[code]
	if !ok {
		panic("machine: CodePair called on an unpaired code")
	}
	return paired
}

// Type reports code's CodeType, matching yip_code_type. Unlike yip_code_type
// (which folds an unrecognized code silently into an EINVAL-flavored
// NO_CODE), an unrecognized Code here always means a programming error in
// a production table, so Type panics rather than returning a sentinel.
func (code Code) Type() CodeType {
	if _, ok := pairs[code]; ok {
		return Begin
	}
	if _, ok := codePairs[code]; ok {
		// Present in codePairs but not pairs ⇒ it's an END code.
		return End
	}
	switch code {
	case Done, BOM, Error, Test:
		return Fake
	case Text, Meta, Break, LineFeed, LineFold, Indicator, White, Indent,
		DocumentStart, DocumentEnd, Unparsed:
		return Match
	default:
		panic("machine: Type called on an unrecognized code")
	}
}

// Token is one delivered YEAST token (spec.md §3).
type Token struct {
	ByteOffset int64
	CharOffset int64
	Line       int64
	LineChar   int64

	// Begin/End describe the token's bytes. For a non-synthetic token they
	// are absolute byte offsets into the input of the source that produced
	// it. For a synthetic token
	// (BOM name, error message) Static holds the bytes directly and
	// Begin/End are both zero.
	Begin, End int64
	Static     []byte

	Encoding charset.Encoding
	Code     Code
}

// Synthetic reports whether the token's bytes come from a static string
// rather than the source window.
func (t Token) Synthetic() bool { return t.Static != nil }

// Len returns the token's byte length.
func (t Token) Len() int64 {
	if t.Synthetic() {
		return int64(len(t.Static))
	}
	return t.End - t.Begin
}
