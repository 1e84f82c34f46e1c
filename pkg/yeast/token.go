package yeast

import (
	"github.com/shapestone/yeast/internal/charset"
	"github.com/shapestone/yeast/internal/machine"
)

// Token is one delivered YEAST token: a code, its position, and its bytes.
type Token = machine.Token

// Code is a single YEAST token code.
type Code = machine.Code

// CodeType classifies a Code as BEGIN, END, MATCH, or FAKE.
type CodeType = machine.CodeType

const (
	Begin CodeType = machine.Begin
	End   CodeType = machine.End
	Match CodeType = machine.Match
	Fake  CodeType = machine.Fake
)

// CodePair returns the BEGIN paired with an END, or vice versa.
func CodePair(code Code) Code { return machine.CodePair(code) }

// The full YEAST code vocabulary (spec.md §6), re-exported verbatim.
const (
	Done Code = machine.Done

	BOM Code = machine.BOM

	Text          Code = machine.Text
	Meta          Code = machine.Meta
	Break         Code = machine.Break
	LineFeed      Code = machine.LineFeed
	LineFold      Code = machine.LineFold
	Indicator     Code = machine.Indicator
	White         Code = machine.White
	Indent        Code = machine.Indent
	DocumentStart Code = machine.DocumentStart
	DocumentEnd   Code = machine.DocumentEnd

	BeginEscape     Code = machine.BeginEscape
	EndEscape       Code = machine.EndEscape
	BeginComment    Code = machine.BeginComment
	EndComment      Code = machine.EndComment
	BeginDirective  Code = machine.BeginDirective
	EndDirective    Code = machine.EndDirective
	BeginTag        Code = machine.BeginTag
	EndTag          Code = machine.EndTag
	BeginHandle     Code = machine.BeginHandle
	EndHandle       Code = machine.EndHandle
	BeginAnchor     Code = machine.BeginAnchor
	EndAnchor       Code = machine.EndAnchor
	BeginProperties Code = machine.BeginProperties
	EndProperties   Code = machine.EndProperties
	BeginAlias      Code = machine.BeginAlias
	EndAlias        Code = machine.EndAlias
	BeginScalar     Code = machine.BeginScalar
	EndScalar       Code = machine.EndScalar
	BeginSequence   Code = machine.BeginSequence
	EndSequence     Code = machine.EndSequence
	BeginMapping    Code = machine.BeginMapping
	EndMapping      Code = machine.EndMapping
	BeginNode       Code = machine.BeginNode
	EndNode         Code = machine.EndNode
	BeginPair       Code = machine.BeginPair
	EndPair         Code = machine.EndPair
	BeginDocument   Code = machine.BeginDocument
	EndDocument     Code = machine.EndDocument

	Error    Code = machine.Error
	Unparsed Code = machine.Unparsed
	Test     Code = machine.Test
)

// Encoding identifies which byte encoding a token's bytes are in.
type Encoding = charset.Encoding

const (
	UTF8    Encoding = charset.UTF8
	UTF16LE Encoding = charset.UTF16LE
	UTF16BE Encoding = charset.UTF16BE
	UTF32LE Encoding = charset.UTF32LE
	UTF32BE Encoding = charset.UTF32BE
)
