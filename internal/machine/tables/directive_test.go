package tables

import (
	"testing"

	"github.com/shapestone/yeast/internal/machine"
)

func TestDirectiveNameAndParameterWithComment(t *testing.T) {
	tokens := drain(t, "%YAML 1.2 # v\n", Directive(), -1)
	want := []machine.Code{
		machine.BeginDirective,
		machine.Meta, // "%YAML"
		machine.White,
		machine.Meta, // "1.2"
		machine.White,
		machine.BeginComment,
		machine.Meta, // "# v"
		machine.EndComment,
		machine.Break,
		machine.EndDirective,
		machine.Done,
	}
	assertCodes(t, tokens, want)

	if tokens[3].Len() != 3 { // "1.2"
		t.Errorf("parameter length = %d, want 3", tokens[3].Len())
	}
}

func TestDirectiveCutOffAtEOFHasNoTrailingBreak(t *testing.T) {
	tokens := drain(t, "%TAG !e! tag:example.com,2000:", Directive(), -1)
	want := []machine.Code{
		machine.BeginDirective,
		machine.Meta,
		machine.White,
		machine.Meta,
		machine.White,
		machine.Meta,
		machine.EndDirective,
		machine.Done,
	}
	assertCodes(t, tokens, want)
}

func TestDirectiveWithoutPercentFails(t *testing.T) {
	tokens := drain(t, "YAML 1.2\n", Directive(), -1)
	last := tokens[len(tokens)-2]
	if last.Code != machine.Error {
		t.Fatalf("expected an ERROR token before Done, got code %c", last.Code)
	}
}

func assertCodes(t *testing.T, tokens []machine.Token, want []machine.Code) {
	t.Helper()
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %q", len(tokens), len(want), codes(tokens))
	}
	for i, tok := range tokens {
		if tok.Code != want[i] {
			t.Fatalf("token %d: code = %c, want %c (%q)", i, tok.Code, want[i], codes(tokens))
		}
	}
}
