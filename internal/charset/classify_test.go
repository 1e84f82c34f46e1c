package charset

import "testing"

func TestClassifyASCII(t *testing.T) {
	tests := []struct {
		code int32
		want Class
		not  Class
	}{
		{'\n', Break, White},
		{' ', White, Break},
		{'#', Hash | Indicator, 0},
		{'-', Dash | Indicator | DocIndicator | WordChar, 0},
		{'9', Digit | HexDigit | WordChar, Indicator},
		{'z', WordChar, Digit},
		{',', CommaCls | FlowIndicator | Indicator, 0},
	}
	for _, tt := range tests {
		got := Classify(tt.code)
		if got&tt.want != tt.want {
			t.Errorf("Classify(%q) = %#x, missing bits %#x", rune(tt.code), got, tt.want&^got)
		}
		if tt.not != 0 && got&tt.not != 0 {
			t.Errorf("Classify(%q) = %#x, unexpectedly has bits %#x", rune(tt.code), got, got&tt.not)
		}
	}
}

func TestClassifyStartOfLineNeverSet(t *testing.T) {
	for code := int32(0); code < 0x80; code++ {
		if Classify(code)&StartOfLine != 0 {
			t.Fatalf("Classify(%d) set StartOfLine; only the engine may set it", code)
		}
	}
}

func TestClassifyHighRanges(t *testing.T) {
	tests := []struct {
		name string
		code int32
		want Class
	}{
		{"NEL is break and printable", 0x85, Break | Printable},
		{"BMP printable", 0x00E9, Printable}, // é
		{"BOM", 0xFEFF, BOM},
		{"LS", 0x2028, Break},
		{"supplementary plane", 0x1F600, Printable},
	}
	for _, tt := range tests {
		got := Classify(tt.code)
		if got&tt.want != tt.want {
			t.Errorf("%s: Classify(%#x) = %#x, missing bits %#x", tt.name, tt.code, got, tt.want&^got)
		}
	}
}

func TestClassifySurrogateNotPrintable(t *testing.T) {
	if Classify(0xD800)&Printable != 0 {
		t.Error("a surrogate code point must not classify as Printable")
	}
}
