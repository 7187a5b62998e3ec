package scanner

import (
	"strings"

	"github.com/t14raptor/esparse/token"
)

// scanString reads a single- or double-quoted StringLiteral. The
// opening quote must not yet be consumed.
func (s *Scanner) scanString() Token {
	start := s.src.position()
	quote, _ := s.src.peek()
	s.src.advance() // opening quote

	value, legacyOctal, ok := s.scanStringChars(quote)
	if !ok {
		s.addError("unterminated string literal")
	}
	end := s.src.position()
	raw := s.src.input[start.Offset:end.Offset]
	return Token{
		Type: token.String, Literal: raw, Start: start, End: end,
		StringValue: value, LegacyOctalEscape: legacyOctal,
	}
}

// scanStringChars reads characters up to (and consuming) the closing
// quote, decoding escapes. It reports whether any escape sequence
// matched the legacy octal grammar of spec §4.4 ("an odd-length run of
// backslashes followed by one or two octal digits where the digit(s)
// are not exactly '0'").
func (s *Scanner) scanStringChars(quote rune) (value string, legacyOctal bool, ok bool) {
	var b strings.Builder
	for {
		r, size := s.src.peek()
		if size == 0 {
			return b.String(), legacyOctal, false
		}
		if r == quote {
			s.src.advance()
			return b.String(), legacyOctal, true
		}
		if isLineTerminator(r) {
			return b.String(), legacyOctal, false
		}
		if r != '\\' {
			b.WriteRune(r)
			s.src.advance()
			continue
		}
		s.src.advance() // backslash
		decoded, isLegacyOctalEscape, escOK := s.scanEscapeSequence()
		if !escOK {
			return b.String(), legacyOctal, false
		}
		if isLegacyOctalEscape {
			legacyOctal = true
		}
		b.WriteString(decoded)
	}
}

// scanEscapeSequence decodes one escape sequence body (the part after
// the backslash already consumed by the caller).
func (s *Scanner) scanEscapeSequence() (decoded string, legacyOctal bool, ok bool) {
	r, size := s.src.peek()
	if size == 0 {
		return "", false, false
	}
	switch r {
	case 'n':
		s.src.advance()
		return "\n", false, true
	case 't':
		s.src.advance()
		return "\t", false, true
	case 'r':
		s.src.advance()
		return "\r", false, true
	case 'b':
		s.src.advance()
		return "\b", false, true
	case 'f':
		s.src.advance()
		return "\f", false, true
	case 'v':
		s.src.advance()
		return "\v", false, true
	case '0':
		// Distinguish a bare "\0" (NUL, not legacy octal) from "\0"
		// followed by more octal digits (which is legacy octal).
		s.src.advance()
		if nr, nsize := s.src.peek(); nsize != 0 && nr >= '0' && nr <= '7' {
			digits := string(nr)
			s.src.advance()
			if nr2, nsize2 := s.src.peek(); nsize2 != 0 && nr2 >= '0' && nr2 <= '7' && len(digits) < 2 {
				digits += string(nr2)
				s.src.advance()
			}
			v := parseOctal(digits)
			return string(rune(v)), true, true
		}
		return "\x00", false, true
	case '1', '2', '3', '4', '5', '6', '7':
		digits := string(r)
		s.src.advance()
		for len(digits) < 3 {
			nr, nsize := s.src.peek()
			if nsize == 0 || nr < '0' || nr > '7' {
				break
			}
			digits += string(nr)
			s.src.advance()
		}
		v := parseOctal(digits)
		return string(rune(v)), true, true
	case 'x':
		s.src.advance()
		var hex strings.Builder
		for i := 0; i < 2; i++ {
			hr, hsize := s.src.peek()
			if hsize == 0 || !isHexDigit(hr) {
				return "", false, false
			}
			hex.WriteRune(hr)
			s.src.advance()
		}
		v := parseHex(hex.String())
		return string(rune(v)), false, true
	case 'u':
		s.src.advance()
		v, ok := s.scanUnicodeEscapeValue()
		if !ok {
			return "", false, false
		}
		return string(v), false, true
	default:
		if isLineTerminator(r) {
			// Line continuation: backslash followed by a line
			// terminator produces no character.
			s.src.advance()
			return "", false, true
		}
		s.src.advance()
		return string(r), false, true
	}
}

func parseOctal(digits string) int64 {
	var v int64
	for _, c := range digits {
		v = v*8 + int64(c-'0')
	}
	return v
}

func parseHex(digits string) int64 {
	var v int64
	for _, c := range digits {
		switch {
		case c >= '0' && c <= '9':
			v = v*16 + int64(c-'0')
		case c >= 'a' && c <= 'f':
			v = v*16 + int64(c-'a'+10)
		case c >= 'A' && c <= 'F':
			v = v*16 + int64(c-'A'+10)
		}
	}
	return v
}
