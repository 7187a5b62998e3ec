package scanner

import (
	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/token"
)

// Scanner is the tokenizer collaborator of spec §1/§5. It holds all
// mutable lexing state; the parser drives it exclusively through the
// methods below and never inspects source text directly.
type Scanner struct {
	src *source
	cur Token

	strict bool

	err error

	// AllowHashBang controls whether a leading "#!" line is skipped as
	// a comment (SPEC_FULL §D.5); off by default.
	AllowHashBang bool
}

// NewScanner creates a scanner over src. Call Next once before reading
// Token to obtain the first token.
func NewScanner(src string) *Scanner {
	s := &Scanner{src: newSource(src)}
	return s
}

// Checkpoint is an opaque snapshot of scanner state, the sole
// backtracking primitive per spec §3/§5.
type Checkpoint struct {
	offset    int
	line      int
	lineStart int
	cur       Token
	err       error
}

// Mark returns a snapshot of the current scanner state.
func (s *Scanner) Mark() Checkpoint {
	return Checkpoint{
		offset:    s.src.offset,
		line:      s.src.line,
		lineStart: s.src.lineStart,
		cur:       s.cur,
		err:       s.err,
	}
}

// Reset restores a previously taken snapshot.
func (s *Scanner) Reset(c Checkpoint) {
	s.src.offset = c.offset
	s.src.line = c.line
	s.src.lineStart = c.lineStart
	s.cur = c.cur
	s.err = c.err
}

// Token returns the current token (the last one produced by Next).
func (s *Scanner) Token() Token { return s.cur }

// Pos returns the scanner's current read offset (spec §5's
// getPosition()); this is the end of the current token, not its
// start, since that is where the *next* token will begin.
func (s *Scanner) Pos() ast.Position { return s.src.position() }

// SetStrict sets the scanner's strict-mode flag, reported by Strict.
// Tokenizing does not depend on it: legacy octal numbers and escapes
// are flagged in every mode, and strict-mode enforcement lives in the
// parser (spec §4.4).
func (s *Scanner) SetStrict(strict bool) { s.strict = strict }

// Strict reports the scanner's current strict-mode flag.
func (s *Scanner) Strict() bool { return s.strict }

// Next scans and returns the next token, skipping whitespace and
// comments first and recording whether a line terminator was crossed
// (spec §5; feeds ASI and noLineTerminators()).
func (s *Scanner) Next() Token {
	if s.src.offset == 0 && s.AllowHashBang && s.src.startsWith("#!") {
		s.skipLineComment()
	}
	newline := s.skipWhitespaceAndComments()

	if s.src.eof() {
		pos := s.src.position()
		s.cur = Token{Type: token.Eof, Start: pos, End: pos, NewlineBefore: newline}
		return s.cur
	}

	r, _ := s.src.peek()
	var tok Token
	switch {
	case isIDStart(r) || r == '\\':
		tok = s.scanIdentifier()
	case r == '#':
		tok = s.scanPrivateIdentifier()
	case r >= '0' && r <= '9':
		tok = s.scanNumber()
	case r == '.':
		if nr, nsize := s.src.peekAt(1); nsize != 0 && nr >= '0' && nr <= '9' {
			tok = s.scanNumber()
		} else if t, ok := s.scanPunctuator(); ok {
			tok = t
		}
	case r == '"' || r == '\'':
		tok = s.scanString()
	case r == '`':
		tok = s.scanTemplateElement()
	default:
		if t, ok := s.scanPunctuator(); ok {
			tok = t
		} else {
			start := s.src.position()
			s.src.advance()
			s.addError("unexpected character %q", string(r))
			tok = Token{Type: token.Illegal, Start: start, End: s.src.position(), Literal: string(r)}
		}
	}
	tok.NewlineBefore = newline
	s.cur = tok
	return tok
}

func (s *Scanner) scanPrivateIdentifier() Token {
	start := s.src.position()
	s.src.advance() // '#'
	id := s.scanIdentifier()
	return Token{
		Type: token.PrivateIdentifier, Literal: "#" + id.Literal,
		Start: start, End: id.End, StringValue: id.StringValue,
	}
}
