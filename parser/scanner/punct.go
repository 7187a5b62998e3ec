package scanner

import "github.com/t14raptor/esparse/token"

// punctuators lists candidate punctuator spellings from longest to
// shortest so the greedy scan below always matches the longest valid
// token (e.g. ">>>=" before ">>>" before ">>" before ">").
var punctuators = []struct {
	text string
	kind token.Token
}{
	{">>>=", token.UnsignedShiftRightAssign},
	{"...", token.Ellipsis},
	{"===", token.StrictEqual},
	{"!==", token.StrictNotEqual},
	{">>>", token.UnsignedShiftRight},
	{"<<=", token.ShiftLeftAssign},
	{">>=", token.ShiftRightAssign},
	{"=>", token.Arrow},
	{"==", token.Equal},
	{"!=", token.NotEqual},
	{"<=", token.LessOrEqual},
	{">=", token.GreaterOrEqual},
	{"&&", token.LogicalAnd},
	{"||", token.LogicalOr},
	{"??", token.Illegal}, // nullish coalescing: not in ES2015; skipped below, so "??" scans as two "?" tokens
	{"++", token.Increment},
	{"--", token.Decrement},
	{"<<", token.ShiftLeft},
	{">>", token.ShiftRight},
	{"+=", token.AddAssign},
	{"-=", token.SubtractAssign},
	{"*=", token.MultiplyAssign},
	{"/=", token.QuotientAssign},
	{"%=", token.RemainderAssign},
	{"&=", token.AndAssign},
	{"|=", token.OrAssign},
	{"^=", token.ExclusiveOrAssign},
	{"{", token.LeftBrace},
	{"}", token.RightBrace},
	{"(", token.LeftParenthesis},
	{")", token.RightParenthesis},
	{"[", token.LeftBracket},
	{"]", token.RightBracket},
	{".", token.Period},
	{";", token.Semicolon},
	{",", token.Comma},
	{"?", token.QuestionMark},
	{":", token.Colon},
	{"<", token.Less},
	{">", token.Greater},
	{"+", token.Plus},
	{"-", token.Minus},
	{"*", token.Multiply},
	{"/", token.Slash},
	{"%", token.Remainder},
	{"&", token.And},
	{"|", token.Or},
	{"^", token.ExclusiveOr},
	{"!", token.Not},
	{"~", token.BitwiseNot},
	{"=", token.Assign},
}

// scanPunctuator matches the longest punctuator starting at the current
// offset. Returns ok=false if nothing matches (illegal character).
func (s *Scanner) scanPunctuator() (Token, bool) {
	start := s.src.position()
	for _, p := range punctuators {
		if s.src.startsWith(p.text) {
			if p.kind == token.Illegal {
				continue
			}
			for range p.text {
				s.src.advance()
			}
			end := s.src.position()
			return Token{Type: p.kind, Literal: p.text, Start: start, End: end}, true
		}
	}
	return Token{}, false
}
