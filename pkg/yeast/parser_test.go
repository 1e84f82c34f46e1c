package yeast

import (
	"testing"

	"github.com/shapestone/yeast/internal/machine/tables"
)

func drain(t *testing.T, p *Parser) []Token {
	t.Helper()
	var tokens []Token
	for {
		tok, err := p.NextToken()
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		tokens = append(tokens, tok)
		if tok.Code == Done {
			return tokens
		}
		if len(tokens) > 1000 {
			t.Fatal("runaway token stream")
		}
	}
}

func codes(tokens []Token) string {
	out := make([]byte, len(tokens))
	for i, tok := range tokens {
		out[i] = byte(tok.Code)
	}
	return string(out)
}

func TestOpenParserRunsARegisteredProductionToCompletion(t *testing.T) {
	r := NewRegistry()
	p, err := OpenParser(r, OpenString("# hi\n"), true, UTF8, Production{Name: "l-comment"})
	if err != nil {
		t.Fatalf("OpenParser: %v", err)
	}
	defer p.Close()

	tokens := drain(t, p)
	got := codes(tokens)
	want := string([]byte{byte(BeginComment), byte(Meta), byte(EndComment), byte(Break), byte(Done)})
	if got != want {
		t.Fatalf("codes = %q, want %q", got, want)
	}
}

func TestOpenParserPassesTheIndentationParameter(t *testing.T) {
	r := NewRegistry()
	p, err := OpenParser(r, OpenString("   x"), true, UTF8, Production{Name: "s-indent", N: "3"})
	if err != nil {
		t.Fatalf("OpenParser: %v", err)
	}
	defer p.Close()

	// The trailing "x" is left unconsumed, so outside test mode the run ends
	// with an Expected-end-of-input Error before Done.
	tokens := drain(t, p)
	got := codes(tokens)
	want := string([]byte{byte(BeginNode), byte(Indent), byte(EndNode), byte(Error), byte(Done)})
	if got != want {
		t.Fatalf("codes = %q, want %q", got, want)
	}
	if tokens[1].Len() != 3 {
		t.Errorf("indent length = %d, want 3", tokens[1].Len())
	}
}

func TestOpenParserRejectsAnUnregisteredProduction(t *testing.T) {
	r := NewRegistry()
	if _, err := OpenParser(r, OpenString("x"), true, UTF8, Production{Name: "no-such-rule"}); err == nil {
		t.Fatal("expected an error for an unregistered production")
	}
}

func TestOpenParserRejectsANonNumericIndentation(t *testing.T) {
	r := NewRegistry()
	if _, err := OpenParser(r, OpenString("x"), true, UTF8, Production{Name: "s-indent", N: "not-a-number"}); err == nil {
		t.Fatal("expected an error for a malformed N parameter")
	}
}

func TestOpenParserRequiresFullyConsumedInput(t *testing.T) {
	r := NewRegistry()
	p, err := OpenParser(r, OpenString("# hi\nextra"), true, UTF8, Production{Name: "l-comment"})
	if err != nil {
		t.Fatalf("OpenParser: %v", err)
	}
	defer p.Close()

	tokens := drain(t, p)
	last := tokens[len(tokens)-2]
	if last.Code != Error || string(last.Static) != "Expected end of input" {
		t.Fatalf("second-to-last token = %+v, want an Expected-end-of-input Error", last)
	}
}

func TestOpenTestParserToleratesUnconsumedTrailingInput(t *testing.T) {
	r := NewRegistry()
	p, err := OpenTestParser(r, OpenString("# hi\nextra"), true, UTF8, Production{Name: "l-comment"})
	if err != nil {
		t.Fatalf("OpenTestParser: %v", err)
	}
	defer p.Close()

	tokens := drain(t, p)
	if tokens[len(tokens)-1].Code != Done {
		t.Fatalf("last token = %+v, want Done directly, no Expected-end-of-input", tokens[len(tokens)-1])
	}
}

func TestOpenTestParserDefaultsIndentationToNegative9999(t *testing.T) {
	r := NewRegistry()
	// NewRegistry files s-indent under the n-taking table, which a
	// Production with no N never reaches, so it is registered here in the
	// plain table as well. s-indent's loop condition is p.i < p.n; run with
	// no N under OpenTestParser it gets -9999, so the loop body never runs
	// and the production finishes as if n were 0.
	r.Register("s-indent", false, false, "", tables.Indent())
	p, err := OpenTestParser(r, OpenString("x"), true, UTF8, Production{Name: "s-indent"})
	if err != nil {
		t.Fatalf("OpenTestParser: %v", err)
	}
	defer p.Close()

	tokens := drain(t, p)
	got := codes(tokens)
	want := string([]byte{byte(BeginNode), byte(EndNode), byte(Done)})
	if got != want {
		t.Fatalf("codes = %q, want %q", got, want)
	}
}
