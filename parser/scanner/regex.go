package scanner

import (
	"strings"

	"github.com/t14raptor/esparse/token"
)

// ReconsumeAsRegexp re-lexes the current token as a RegularExpression
// literal, starting from the current token's start position (spec §5's
// "reconsumeCurrentTokenAsRegexp()" hook). The parser calls this only
// when grammar context says a "/" must begin an expression rather than
// a division operator, since the scanner alone cannot disambiguate
// those two readings.
func (s *Scanner) ReconsumeAsRegexp() Token {
	start := s.cur.Start
	s.src.offset = start.Offset
	s.src.line = start.Line
	s.src.lineStart = start.Offset - start.Column

	s.src.advance() // leading '/'
	var pattern strings.Builder
	inClass := false
	for {
		r, size := s.src.peek()
		if size == 0 || isLineTerminator(r) {
			s.addError("unterminated regular expression literal")
			break
		}
		if r == '\\' {
			pattern.WriteRune(r)
			s.src.advance()
			if r2, size2 := s.src.peek(); size2 != 0 {
				pattern.WriteRune(r2)
				s.src.advance()
			}
			continue
		}
		if r == '[' {
			inClass = true
		} else if r == ']' {
			inClass = false
		} else if r == '/' && !inClass {
			s.src.advance()
			break
		}
		pattern.WriteRune(r)
		s.src.advance()
	}

	var flags strings.Builder
	seen := map[rune]bool{}
	for {
		r, size := s.src.peek()
		if size == 0 || !isIDContinue(r) {
			break
		}
		if !strings.ContainsRune("gimsuy", r) {
			s.addError("invalid regular expression flag %q", string(r))
		} else if seen[r] {
			s.addError("duplicate regular expression flag %q", string(r))
		}
		seen[r] = true
		flags.WriteRune(r)
		s.src.advance()
	}

	end := s.src.position()
	raw := s.src.input[start.Offset:end.Offset]
	tok := Token{
		Type: token.RegularExpression, Literal: raw, Start: start, End: end,
		RegexPattern: pattern.String(), RegexFlags: flags.String(),
	}
	s.cur = tok
	return tok
}
