package parser

import (
	"fmt"

	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/token"
)

// SyntaxError is the single error kind this module raises (spec §7):
// an optional human-readable message plus the scanner's position at
// the time of the error.
type SyntaxError struct {
	Message string
	Pos     int
	Line    int
	Column  int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (%d:%d)", e.Message, e.Line, e.Column)
}

// parseError is a panic payload used to unwind out of the recursive
// grammar the moment a production commits and then mismatches (spec
// §4.2: "any subsequent grammar mismatch is a fatal error (no
// backtracking)"). Parse and ParseModule recover it at the top level
// and return it as a plain error, so callers never see a panic.
type parseError struct {
	err *SyntaxError
}

func (p *Parser) raise(pos ast.Position, message string) {
	err := &SyntaxError{Message: message, Pos: pos.Offset, Line: pos.Line, Column: pos.Column}
	if p.log != nil {
		p.log.Error().Str("message", message).Int("line", pos.Line).Int("column", pos.Column).Msg("syntax error")
	}
	panic(parseError{err: err})
}

// unexpected raises the default "unexpected token"/"unexpected end of
// input" error at the current token's start (spec §7).
func (p *Parser) unexpected() {
	if p.tok.Type == token.Eof {
		p.raise(p.tok.Start, "Unexpected end of input")
	}
	p.raise(p.tok.Start, "Unexpected token")
}
