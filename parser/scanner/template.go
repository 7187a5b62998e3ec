package scanner

import (
	"strings"

	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/token"
)

// scanTemplateElement reads the first chunk of a template literal,
// consuming the opening backtick. The returned token's TemplateTail
// reports whether the chunk ends at a closing backtick (no
// substitutions at all) rather than at "${".
func (s *Scanner) scanTemplateElement() Token {
	s.src.advance() // '`'
	return s.scanTemplateChunk()
}

// NextTemplateElement reads the next chunk of a template literal. The
// parser calls this instead of Next() once it has parsed a "${...}"
// substitution's expression down to the "}" that closes it. By then
// that brace has already been consumed as an ordinary RightBrace token
// by the substitution's own expression parse. Distinguishing it from
// an unrelated nested block's closing brace is a purely syntactic fact
// the scanner cannot see on its own, so the parser is the one that
// decides to call this instead of Next() (spec §5's scanner/parser
// split, the same shape as the "reinterpret" hook used for regexps).
// This only resumes raw-text scanning from the current offset.
func (s *Scanner) NextTemplateElement() Token {
	tok := s.scanTemplateChunk()
	s.cur = tok
	return tok
}

func (s *Scanner) scanTemplateChunk() Token {
	start := s.src.position()
	var cooked strings.Builder
	legacyOctal := false
	for {
		r, size := s.src.peek()
		if size == 0 {
			s.addError("unterminated template literal")
			break
		}
		if r == '`' {
			end := s.src.position()
			s.src.advance()
			return s.finishTemplateChunk(start, end, cooked.String(), true, legacyOctal)
		}
		if r == '$' {
			if nr, nsize := s.src.peekAt(1); nsize != 0 && nr == '{' {
				end := s.src.position()
				s.src.advance()
				s.src.advance()
				return s.finishTemplateChunk(start, end, cooked.String(), false, legacyOctal)
			}
		}
		if r == '\\' {
			s.src.advance()
			decoded, isOctal, ok := s.scanEscapeSequence()
			if !ok {
				s.addError("invalid escape sequence in template literal")
				break
			}
			if isOctal {
				legacyOctal = true
			}
			cooked.WriteString(decoded)
			continue
		}
		// Raw CRLF/CR is normalized to LF in the cooked value, matching
		// ECMAScript's TV computation; Literal below keeps the raw text.
		if r == '\r' {
			cooked.WriteRune('\n')
			s.src.advance()
			if nr, nsize := s.src.peek(); nsize != 0 && nr == '\n' {
				s.src.advance()
			}
			continue
		}
		cooked.WriteRune(r)
		s.src.advance()
	}
	end := s.src.position()
	return s.finishTemplateChunk(start, end, cooked.String(), true, legacyOctal)
}

func (s *Scanner) finishTemplateChunk(start, end ast.Position, cooked string, tail bool, legacyOctal bool) Token {
	raw := s.src.input[start.Offset:end.Offset]
	return Token{
		Type: token.Template, Literal: raw, Start: start, End: end,
		StringValue: cooked, TemplateTail: tail, LegacyOctalEscape: legacyOctal,
	}
}
