package machine

import "testing"

func TestCodePairIsItsOwnInverse(t *testing.T) {
	for b := range pairs {
		e := CodePair(b)
		if got := CodePair(e); got != b {
			t.Errorf("CodePair(CodePair(%c)) = %c, want %c", b, got, b)
		}
	}
}

func TestCodePairPanicsOnUnpairedCode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected CodePair to panic on a MATCH code")
		}
	}()
	CodePair(Text)
}

func TestTypeClassifiesEveryCode(t *testing.T) {
	tests := []struct {
		code Code
		want CodeType
	}{
		{BeginComment, Begin},
		{EndComment, End},
		{Text, Match},
		{Indent, Match},
		{Unparsed, Match},
		{Done, Fake},
		{BOM, Fake},
		{Error, Fake},
		{Test, Fake},
	}
	for _, tt := range tests {
		if got := tt.code.Type(); got != tt.want {
			t.Errorf("%c.Type() = %v, want %v", tt.code, got, tt.want)
		}
	}
}
