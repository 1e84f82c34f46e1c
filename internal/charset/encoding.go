// Package charset implements the Unicode decoder (spec.md §4.B) and the
// character classifier (spec.md §4.C): pure functions from bytes to code
// points, and from code points to class bitmasks.
//
// Grounded on _examples/original_source/yip.c's yip_decode_utf8/utf16le/
// utf16be/utf32le/utf32be and on spec.md §4.C/§6's description of the
// (offline-generated) classification table format.
package charset

import "github.com/shapestone/yeast/internal/yerr"

// Encoding identifies which byte encoding a token's bytes are in.
type Encoding int

const (
	UTF8 Encoding = iota
	UTF16LE
	UTF16BE
	UTF32LE
	UTF32BE
)

var encodingNames = [...]string{
	UTF8:    "UTF-8",
	UTF16LE: "UTF-16LE",
	UTF16BE: "UTF-16BE",
	UTF32LE: "UTF-32LE",
	UTF32BE: "UTF-32BE",
}

// Name returns the encoding's printable name (e.g. "UTF-8"), matching
// yip_encoding_name. Unlike the original, both directions are bounds
// checked — yip_encoding_name's `encoding > numof(encoding_names)` test is
// an off-by-one and never checks negative values; spec.md §9 explicitly
// calls for enforcing bounds in the rewrite.
func (e Encoding) Name() (string, error) {
	if e < 0 || int(e) >= len(encodingNames) {
		return "", yerr.New(yerr.EINVAL, "Encoding.Name")
	}
	return encodingNames[e], nil
}

// StaticName returns a pointer to the same static name text that BOM
// tokens are rewritten to point at (spec.md §4.E). Synthetic tokens always
// reference UTF-8 bytes, regardless of the source encoding they describe.
func (e Encoding) StaticName() []byte {
	name, err := e.Name()
	if err != nil {
		return nil
	}
	return []byte(name)
}

// neverMatch is used in place of a missing byte during detection, chosen
// (per spec.md §4.A) to never match any of the patterns below.
const neverMatch = 0xAA

// Detect deduces an encoding from the first few bytes of input, following
// spec.md §4.A / yip.c's detect_encoding: full 4-byte BOMs for UTF-32,
// zero-byte stride patterns for BOM-less UTF-32/UTF-16, 2-byte UTF-16 BOMs,
// the 3-byte UTF-8 BOM, and UTF-8 as the default. peek must contain up to
// the first 4 bytes of input (fewer is fine at EOF; Detect treats missing
// bytes as neverMatch).
func Detect(peek []byte) Encoding {
	b := func(i int) uint32 {
		if i < len(peek) {
			return uint32(peek[i])
		}
		return neverMatch
	}
	b0, b1, b2, b3 := b(0), b(1), b(2), b(3)
	b01 := b0<<8 | b1
	b012 := b0<<16 | b1<<8 | b2
	b123 := b1<<16 | b2<<8 | b3
	b0123 := b0<<24 | b1<<16 | b2<<8 | b3

	switch {
	case b0123 == 0x0000FEFF:
		return UTF32BE
	case b012 == 0x000000:
		return UTF32BE
	case b0123 == 0xFFFE0000:
		return UTF32LE
	case b123 == 0x000000:
		return UTF32LE
	case b01 == 0xFEFF:
		return UTF16BE
	case b0 == 0x00:
		return UTF16BE
	case b01 == 0xFFFE:
		return UTF16LE
	case b1 == 0x00:
		return UTF16LE
	case b012 == 0xEFBBBF:
		return UTF8
	default:
		return UTF8
	}
}

// BOMLength returns how many leading bytes of peek, detected as encoding,
// are the byte-order-mark itself (0 if none is present). The BOM bytes are
// not consumed by detection (spec.md §4.A); the parser decides whether to
// skip them and emit a BOM token.
func BOMLength(encoding Encoding, peek []byte) int {
	has := func(n int, want ...byte) bool {
		if len(peek) < n {
			return false
		}
		for i, w := range want {
			if peek[i] != w {
				return false
			}
		}
		return true
	}
	switch encoding {
	case UTF8:
		if has(3, 0xEF, 0xBB, 0xBF) {
			return 3
		}
	case UTF16BE:
		if has(2, 0xFE, 0xFF) {
			return 2
		}
	case UTF16LE:
		if has(2, 0xFF, 0xFE) {
			return 2
		}
	case UTF32BE:
		if has(4, 0x00, 0x00, 0xFE, 0xFF) {
			return 4
		}
	case UTF32LE:
		if has(4, 0xFF, 0xFE, 0x00, 0x00) {
			return 4
		}
	}
	return 0
}
