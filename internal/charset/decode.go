package charset

import "github.com/shapestone/yeast/internal/yerr"

// Decode decodes one code point from the front of data in the given
// encoding. It returns the code point and how many bytes it occupied.
//
// On malformed input it still returns how many bytes were consumed (at
// least 1 whenever data is non-empty), so a caller can resynchronize on the
// next call — this is
// the one behavior the standard library's unicode/utf8 and unicode/utf16
// decoders don't expose, which is why they can't power spec.md §8's
// decoder round-trip property ("for every invalid sequence, the decoder
// advances past some bytes and returns a negative value"); hand-rolled
// here to match yip_decode's byte-exact contract.
func Decode(encoding Encoding, data []byte) (code int32, consumed int, err error) {
	switch encoding {
	case UTF8:
		return decodeUTF8(data)
	case UTF16LE:
		return decodeUTF16(data, false)
	case UTF16BE:
		return decodeUTF16(data, true)
	case UTF32LE:
		return decodeUTF32(data, false)
	case UTF32BE:
		return decodeUTF32(data, true)
	default:
		return -1, 0, yerr.New(yerr.EINVAL, "charset.Decode")
	}
}

// decodeUTF8 decodes 1-6 bytes, matching yip_decode_utf8's historic range
// (pre-Unicode-5.0 UTF-8 could encode up to 6 bytes / 31 bits); this is
// wider than RFC 3629's 1-4 byte range on purpose, to match the original
// byte-for-byte.
func decodeUTF8(data []byte) (int32, int, error) {
	if len(data) == 0 {
		return -1, 0, yerr.New(yerr.EILSEQ, "charset.decodeUTF8")
	}
	lead := data[0]
	var code int32
	var continuations int
	switch {
	case lead&0x80 == 0x00:
		return int32(lead), 1, nil
	case lead&0xE0 == 0xC0:
		code, continuations = int32(lead&0x1F), 1
	case lead&0xF0 == 0xE0:
		code, continuations = int32(lead&0x0F), 2
	case lead&0xF8 == 0xF0:
		code, continuations = int32(lead&0x07), 3
	case lead&0xFC == 0xF8:
		code, continuations = int32(lead&0x03), 4
	case lead&0xFE == 0xFC:
		code, continuations = int32(lead&0x01), 5
	default:
		return -1, 1, yerr.New(yerr.EILSEQ, "charset.decodeUTF8")
	}
	n := 1
	for ; continuations > 0; continuations-- {
		if n >= len(data) {
			return -1, n, yerr.New(yerr.EILSEQ, "charset.decodeUTF8")
		}
		next := data[n]
		n++
		if next&0xC0 != 0x80 {
			return -1, n, yerr.New(yerr.EILSEQ, "charset.decodeUTF8")
		}
		code = code<<6 | int32(next&0x3F)
	}
	return code, n, nil
}

func decodeUTF16(data []byte, bigEndian bool) (int32, int, error) {
	u16 := func(i int) int32 {
		if bigEndian {
			return int32(data[i])<<8 | int32(data[i+1])
		}
		return int32(data[i]) | int32(data[i+1])<<8
	}
	if len(data) < 2 {
		return -1, len(data), yerr.New(yerr.EILSEQ, "charset.decodeUTF16")
	}
	code := u16(0)
	if code < 0xD800 || code >= 0xE000 {
		return code, 2, nil
	}
	if code >= 0xDC00 {
		// Lone low surrogate.
		return -1, 2, yerr.New(yerr.EILSEQ, "charset.decodeUTF16")
	}
	if len(data) < 4 {
		return -1, 2, yerr.New(yerr.EILSEQ, "charset.decodeUTF16")
	}
	low := u16(2)
	if low < 0xDC00 || low >= 0xE000 {
		// High surrogate not followed by a low surrogate: yip_decode_utf16
		// has already read both code units by the time it detects this, so
		// 4 bytes are consumed even though decoding failed.
		return -1, 4, yerr.New(yerr.EILSEQ, "charset.decodeUTF16")
	}
	combined := (code << 10) + low + 0x10000 - (0xD800 << 10) - 0xDC00
	return combined, 4, nil
}

func decodeUTF32(data []byte, bigEndian bool) (int32, int, error) {
	if len(data) < 4 {
		return -1, len(data), yerr.New(yerr.EILSEQ, "charset.decodeUTF32")
	}
	var code int32
	if bigEndian {
		code = int32(data[0])<<24 | int32(data[1])<<16 | int32(data[2])<<8 | int32(data[3])
	} else {
		code = int32(data[0]) | int32(data[1])<<8 | int32(data[2])<<16 | int32(data[3])<<24
	}
	if code < 0 {
		return -1, 4, yerr.New(yerr.EILSEQ, "charset.decodeUTF32")
	}
	return code, 4, nil
}

// MaxEncodedLen is the most bytes any supported encoding needs to decode a
// single code point (UTF-8's historic 6-byte form), matching yip.c's
// next_char MAX_UTF_SIZE.
const MaxEncodedLen = 6
