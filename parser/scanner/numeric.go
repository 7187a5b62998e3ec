package scanner

import (
	"strconv"
	"strings"

	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/token"
)

// scanNumber reads a NumericLiteral: decimal (with optional fraction
// and exponent), 0x/0X hex, 0o/0O octal, 0b/0B binary, and legacy octal
// ("0" followed by octal digits with no radix prefix). Legacy octal is
// flagged for the strict-mode gate (spec §4.4); 0o/0b/0x forms are
// never legacy octal even though they start with "0".
func (s *Scanner) scanNumber() Token {
	start := s.src.position()
	var raw strings.Builder

	readDigits := func(isDigit func(rune) bool) {
		for {
			r, size := s.src.peek()
			if size == 0 {
				return
			}
			if r == '_' {
				raw.WriteRune(r)
				s.src.advance()
				continue
			}
			if !isDigit(r) {
				return
			}
			raw.WriteRune(r)
			s.src.advance()
		}
	}

	first, _ := s.src.peek()
	if first == '0' {
		raw.WriteRune(first)
		s.src.advance()
		if r, _ := s.src.peek(); r == 'x' || r == 'X' {
			raw.WriteRune(r)
			s.src.advance()
			readDigits(isHexDigit)
			return s.finishNumber(start, raw.String(), 16, 2, false)
		}
		if r, _ := s.src.peek(); r == 'o' || r == 'O' {
			raw.WriteRune(r)
			s.src.advance()
			readDigits(func(r rune) bool { return r >= '0' && r <= '7' })
			return s.finishNumber(start, raw.String(), 8, 2, false)
		}
		if r, _ := s.src.peek(); r == 'b' || r == 'B' {
			raw.WriteRune(r)
			s.src.advance()
			readDigits(func(r rune) bool { return r == '0' || r == '1' })
			return s.finishNumber(start, raw.String(), 2, 2, false)
		}
		// Legacy octal / decimal-with-leading-zero: "0" followed
		// directly by more digits, no decimal point or exponent.
		if r, _ := s.src.peek(); r >= '0' && r <= '9' {
			readDigits(func(r rune) bool { return r >= '0' && r <= '9' })
			text := raw.String()
			legacyOctal := isLegacyOctal(text)
			end := s.src.position()
			val, _ := strconv.ParseFloat(stripUnderscores(text), 64)
			if legacyOctal {
				if v, err := strconv.ParseInt(stripUnderscores(text)[1:], 8, 64); err == nil {
					val = float64(v)
				}
			}
			return Token{
				Type: token.Number, Literal: text, Start: start, End: end,
				NumberValue: val, LegacyOctalNumber: legacyOctal,
			}
		}
	} else {
		readDigits(func(r rune) bool { return r >= '0' && r <= '9' })
	}

	if r, _ := s.src.peek(); r == '.' {
		raw.WriteRune(r)
		s.src.advance()
		readDigits(func(r rune) bool { return r >= '0' && r <= '9' })
	}
	if r, _ := s.src.peek(); r == 'e' || r == 'E' {
		raw.WriteRune(r)
		s.src.advance()
		if sign, _ := s.src.peek(); sign == '+' || sign == '-' {
			raw.WriteRune(sign)
			s.src.advance()
		}
		readDigits(func(r rune) bool { return r >= '0' && r <= '9' })
	}

	return s.finishNumber(start, raw.String(), 10, 0, true)
}

func (s *Scanner) finishNumber(start ast.Position, raw string, base int, prefixLen int, decimal bool) Token {
	end := s.src.position()
	text := stripUnderscores(raw)
	var val float64
	if decimal {
		val, _ = strconv.ParseFloat(text, 64)
	} else if len(text) > prefixLen {
		if v, err := strconv.ParseUint(text[prefixLen:], base, 64); err == nil {
			val = float64(v)
		}
	}
	return Token{Type: token.Number, Literal: raw, Start: start, End: end, NumberValue: val}
}

func stripUnderscores(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	return strings.ReplaceAll(s, "_", "")
}

// isLegacyOctal matches the grammar in spec §4.4: "^0[0-7]+$".
func isLegacyOctal(text string) bool {
	if len(text) < 2 || text[0] != '0' {
		return false
	}
	for i := 1; i < len(text); i++ {
		c := text[i]
		if c == '_' {
			continue
		}
		if c < '0' || c > '7' {
			return false
		}
	}
	return true
}
