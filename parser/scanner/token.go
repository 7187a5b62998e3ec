package scanner

import (
	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/token"
)

// Token is the scanner's output unit (spec §3): an immutable record of
// kind, literal text, and source span. Tokens carrying decoded values
// (strings, numbers, templates) additionally set StringValue or
// NumberValue.
type Token struct {
	Type token.Token
	// Literal is the raw source text of the token.
	Literal string
	Start   ast.Position
	End     ast.Position
	// NewlineBefore reports whether a line terminator appears anywhere
	// between the end of the previous token and the start of this one;
	// this is the scanner-side half of ASI and of the various
	// noLineTerminators() restrictions (spec §4.2, §5).
	NewlineBefore bool

	// StringValue holds the decoded value for String/Template tokens.
	StringValue string
	// LegacyOctalEscape reports an escape made of octal digits other
	// than a lone "\0" (e.g. "\5", "\05", "\123") inside a
	// String/Template (spec §4.4).
	LegacyOctalEscape bool

	// NumberValue holds the decoded value for Number tokens.
	NumberValue float64
	// LegacyOctalNumber reports Literal matching ^0[0-7]+$ (spec §4.4).
	LegacyOctalNumber bool

	// TemplateTail reports whether a Template token closes the literal
	// (i.e. is followed by a closing backtick rather than "${").
	TemplateTail bool

	// RegexFlags holds the flags of a RegularExpression token.
	RegexFlags string
	// RegexPattern holds the pattern body (without slashes/flags).
	RegexPattern string
}
