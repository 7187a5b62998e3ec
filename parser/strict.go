package parser

import (
	"fmt"

	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/token"
)

// idClass is one of the three identifier-classification modes of spec
// §4.4, used when a binding or reference identifier is parsed.
type idClass int

const (
	// allowAll never rejects a name: meant for property keys and other
	// positions where "eval", "arguments" and the future-
	// reserved words are ordinary identifiers regardless of mode.
	allowAll idClass = iota
	// allowNothing always rejects "eval", "arguments" and the future-
	// reserved-strict words, independent of the current strict flag:
	// used inside class bodies and other contexts that are implicitly
	// strict before the surrounding function/program may itself be.
	allowNothing
	// mixed rejects them only when the current strict flag is set:
	// the common case for ordinary bindings, references and labels.
	mixed
)

// checkIdentifierName enforces idClass against name at pos (spec §4.4).
func (p *Parser) checkIdentifierName(pos ast.Position, name string, class idClass) {
	switch class {
	case allowAll:
		return
	case mixed:
		if !p.strict {
			return
		}
		fallthrough
	case allowNothing:
		if p.options.AllowReserved {
			return
		}
		if name == "eval" || name == "arguments" {
			p.raise(pos, fmt.Sprintf("Unexpected use of '%s' in strict mode", name))
		}
		if token.IsFutureReservedStrict(name) {
			p.raise(pos, fmt.Sprintf("The keyword '%s' is reserved", name))
		}
	}
}

// checkIdentifierReference validates an identifier used as a reference
// (not a binding): only "yield" is special-cased here, since it is
// rejected outright whenever the enclosing context disallows it
// (inside a generator body, or in strict mode, per spec §4.1/§4.4).
func (p *Parser) checkIdentifierReference(pos ast.Position, name string) {
	if name == "yield" && (p.ctx.allowYield || p.strict) {
		p.raise(pos, "Unexpected use of reserved word 'yield'")
	}
	p.checkIdentifierName(pos, name, mixed)
}

// checkBindingIdentifier validates an identifier used as a binding
// target (variable/function/class/parameter name), per class.
func (p *Parser) checkBindingIdentifier(pos ast.Position, name string, class idClass) {
	if name == "yield" && (p.ctx.allowYield || p.strict) {
		p.raise(pos, "Unexpected use of reserved word 'yield' as a binding name")
	}
	p.checkIdentifierName(pos, name, class)
}

// checkLegacyOctalNumber raises if a legacy octal numeric literal
// ("010") occurs in strict-mode code (spec §4.4).
func (p *Parser) checkLegacyOctalNumber(pos ast.Position, legacy bool) {
	if legacy && p.strict {
		p.raise(pos, "Octal literals are not allowed in strict mode")
	}
}

// checkLegacyOctalEscape raises if a legacy octal escape sequence
// inside a string or template literal occurs in strict-mode code
// (spec §4.4).
func (p *Parser) checkLegacyOctalEscape(pos ast.Position, legacy bool) {
	if legacy && p.strict {
		p.raise(pos, "Octal escape sequences are not allowed in strict mode")
	}
}

// checkStrictDelete enforces the bare "delete identifier" restriction:
// strict-mode code may not delete an unqualified reference (spec
// §4.4). Deleting a MemberExpression, or anything else, is unaffected.
func (p *Parser) checkStrictDelete(pos ast.Position, arg ast.Expr) {
	if !p.strict {
		return
	}
	if _, ok := arg.(*ast.Identifier); ok {
		p.raise(pos, "Deleting an unqualified identifier is not allowed in strict mode")
	}
}

// checkStrictLabelledFunction enforces the labelled-function
// restriction: a FunctionDeclaration may be the body of a
// LabeledStatement only outside strict mode (spec §4.4, Annex B).
func (p *Parser) checkStrictLabelledFunction(pos ast.Position) {
	if p.strict {
		p.raise(pos, "Labelled functions are not allowed in strict mode")
	}
}
