package parser

import (
	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/token"
)

// parseExpression parses the comma-operator Expression production,
// folding more than one AssignmentExpression into a SequenceExpression
// (spec §4.3).
func (p *Parser) parseExpression() ast.Expr {
	start := p.startPos()
	first := p.parseAssignmentExpression()
	if !p.at(token.Comma) {
		return first
	}
	exprs := []ast.Expr{first}
	for p.eat(token.Comma) {
		exprs = append(exprs, p.parseAssignmentExpression())
	}
	return finish(p, start, &ast.SequenceExpression{Expressions: exprs})
}

// parseAssignmentExpression is the entry point of the cover grammar
// (spec §4.3): it must recognize an arrow function's header, a bare
// identifier or a parenthesized parameter list immediately followed by
// "=>", before falling through to ConditionalExpression, since both
// readings start identically on the same tokens.
func (p *Parser) parseAssignmentExpression() ast.Expr {
	start := p.startPos()

	if p.ctx.allowYield && p.isContextual("yield") {
		return p.parseYieldExpression(start)
	}

	if p.tok.Type == token.Identifier && p.identifierArrowLookahead() {
		name := p.tok.StringValue
		idStart := p.tok.Start
		p.checkBindingIdentifier(idStart, name, mixed)
		p.next()
		id := finish(p, idStart, &ast.Identifier{Name: name})
		return p.finishArrowFunction(start, []ast.Pattern{id})
	}

	if p.at(token.LeftParenthesis) {
		if arrow := p.tryParseArrow(start); arrow != nil {
			return arrow
		}
	}

	left := p.parseConditionalExpression()
	if token.IsAssignOp(p.tok.Type) {
		op := p.tok.Type
		p.next()
		right := p.parseAssignmentExpression()
		target := p.toPattern(left)
		return finish(p, start, &ast.AssignmentExpression{Operator: op.String(), Left: target, Right: right})
	}
	return left
}

// identifierArrowLookahead reports whether the current identifier is
// immediately followed by "=>" with no line terminator between them
// (spec §4.3's noLineTerminators() restriction on the arrow itself).
func (p *Parser) identifierArrowLookahead() bool {
	snap := p.mark()
	p.next()
	isArrow := !p.tok.NewlineBefore && p.tok.Type == token.Arrow
	p.restore(snap)
	return isArrow
}

// tryParseArrow speculatively parses "(" params ")" "=>" starting at
// the current "(" token, using a scanner checkpoint to back out if the
// parameter list parse hits a grammar mismatch or is not followed by
// "=>" (spec §4.3's cover grammar: snapshot, attempt, retry on
// failure). This is the one place outside backtracking's general
// prohibition (spec §4.2) where a grammar mismatch is recoverable,
// since ArrowParameters and ParenthesizedExpression are genuinely
// ambiguous on their shared prefix.
func (p *Parser) tryParseArrow(start ast.Position) (result ast.Expr) {
	snap := p.mark()
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.restore(snap)
				result = nil
				return
			}
			panic(r)
		}
	}()
	params := withContext(p, func(c *context) { c.allowIn = true }, func() []ast.Pattern {
		return p.parseFunctionParams()
	})
	if p.tok.NewlineBefore || !p.at(token.Arrow) {
		p.restore(snap)
		return nil
	}
	return p.finishArrowFunction(start, params)
}

func (p *Parser) finishArrowFunction(start ast.Position, params []ast.Pattern) ast.Expr {
	p.expect(token.Arrow)
	var body ast.Node
	exprBody := false
	if p.at(token.LeftBrace) {
		body = withContext(p, func(c *context) { c.allowYield = false; c.allowReturn = true }, func() ast.Node {
			return p.parseFunctionBody()
		})
	} else {
		exprBody = true
		body = withContext(p, func(c *context) { c.allowYield = false }, func() ast.Node {
			return p.parseAssignmentExpression()
		})
	}
	return finish(p, start, &ast.ArrowFunctionExpression{Params: params, Body: body, ExpressionBody: exprBody})
}

// parseYieldExpression parses "yield", "yield argument" and
// "yield* argument" inside a generator body. Per spec §9 open question
// c, Delegate is forced false whenever no argument was parsed, so the
// two fields are never inconsistent.
func (p *Parser) parseYieldExpression(start ast.Position) ast.Expr {
	p.next() // 'yield'
	delegate := false
	var arg ast.Expr
	if !p.tok.NewlineBefore {
		if p.eat(token.Multiply) {
			delegate = true
			arg = p.parseAssignmentExpression()
		} else if p.canStartExpression() {
			arg = p.parseAssignmentExpression()
		}
	}
	if arg == nil {
		delegate = false
	}
	return finish(p, start, &ast.YieldExpression{Argument: arg, Delegate: delegate})
}

// canStartExpression reports whether the current token could begin an
// AssignmentExpression, used to decide whether a bare "yield" has an
// argument.
func (p *Parser) canStartExpression() bool {
	switch p.tok.Type {
	case token.RightParenthesis, token.RightBracket, token.RightBrace,
		token.Comma, token.Semicolon, token.Colon, token.Eof,
		token.In, token.InstanceOf:
		return false
	}
	return true
}

func (p *Parser) parseConditionalExpression() ast.Expr {
	start := p.startPos()
	test := p.parseBinaryExpression()
	if p.eat(token.QuestionMark) {
		cons := withContext(p, func(c *context) { c.allowIn = true }, func() ast.Expr {
			return p.parseAssignmentExpression()
		})
		p.expect(token.Colon)
		alt := p.parseAssignmentExpression()
		return finish(p, start, &ast.ConditionalExpression{Test: test, Consequent: cons, Alternate: alt})
	}
	return test
}

// parseBinaryExpression implements spec §4.3's exact algorithm: parse
// a flat list of unary operands separated by binary/logical operators,
// then fold it by repeatedly combining the operator of highest grade
// (leftmost first on ties, giving correct left-associativity), rather
// than the precedence-climbing/Pratt approach used elsewhere in this
// codebase's ancestry.
func (p *Parser) parseBinaryExpression() ast.Expr {
	operands := []ast.Expr{p.parseUnaryExpression()}
	var ops []token.Token
	var grades []int
	for {
		grade := token.BinaryGrade(p.tok.Type, p.ctx.allowIn)
		if grade == token.GradeNone {
			break
		}
		op := p.tok.Type
		p.next()
		operands = append(operands, p.parseUnaryExpression())
		ops = append(ops, op)
		grades = append(grades, grade)
	}
	return foldBinary(p, operands, ops, grades)
}

func foldBinary(p *Parser, operands []ast.Expr, ops []token.Token, grades []int) ast.Expr {
	for len(ops) > 0 {
		idx, maxGrade := 0, grades[0]
		for i, g := range grades {
			if g > maxGrade {
				maxGrade, idx = g, i
			}
		}
		left, right, op := operands[idx], operands[idx+1], ops[idx]
		start, end := left.GetLoc().Start, right.GetLoc().End
		var combined ast.Expr
		if token.IsLogical(maxGrade) {
			combined = finishAt(p, start, end, &ast.LogicalExpression{Operator: op.String(), Left: left, Right: right})
		} else {
			combined = finishAt(p, start, end, &ast.BinaryExpression{Operator: op.String(), Left: left, Right: right})
		}
		operands = append(operands[:idx], append([]ast.Expr{combined}, operands[idx+2:]...)...)
		ops = append(ops[:idx], ops[idx+1:]...)
		grades = append(grades[:idx], grades[idx+1:]...)
	}
	return operands[0]
}

func (p *Parser) parseUnaryExpression() ast.Expr {
	start := p.tok.Start
	if token.IsUpdateOp(p.tok.Type) {
		op := p.tok.Type
		p.next()
		arg := p.parseUnaryExpression()
		return finish(p, start, &ast.UpdateExpression{Operator: op.String(), Argument: arg, Prefix: true})
	}
	if token.IsPrefixUnaryOp(p.tok.Type) {
		op := p.tok.Type
		p.next()
		arg := p.parseUnaryExpression()
		if op == token.Delete {
			p.checkStrictDelete(start, arg)
		}
		return finish(p, start, &ast.UnaryExpression{Operator: op.String(), Argument: arg})
	}
	return p.parsePostfixExpression()
}

func (p *Parser) parsePostfixExpression() ast.Expr {
	start := p.startPos()
	expr := p.parseLeftHandSideExpression()
	if !p.tok.NewlineBefore && token.IsUpdateOp(p.tok.Type) {
		op := p.tok.Type
		p.next()
		return finish(p, start, &ast.UpdateExpression{Operator: op.String(), Argument: expr, Prefix: false})
	}
	return expr
}

// parseLeftHandSideExpression weaves together new-expressions, member
// access, calls and tagged templates (spec §4.3's LHS composition).
func (p *Parser) parseLeftHandSideExpression() ast.Expr {
	start := p.startPos()
	var expr ast.Expr
	if p.at(token.New) {
		expr = p.parseNewExpression(start)
	} else {
		expr = p.parsePrimaryExpression()
	}
	return p.parseSubscripts(start, expr, true)
}

// parseNewExpression handles "new.target", "new Callee(args)", and the
// recursive "new new Callee" form where an unmatched "new" wraps a
// NewExpression that itself received no call arguments (spec §4.3).
func (p *Parser) parseNewExpression(start ast.Position) ast.Expr {
	p.next() // 'new'
	newEnd := p.prevEnd
	if p.at(token.Period) {
		p.next()
		targetStart := p.tok.Start
		p.expectContextual("target")
		meta := finishAt(p, start, newEnd, &ast.Identifier{Name: "new"})
		prop := finishAt(p, targetStart, p.prevEnd, &ast.Identifier{Name: "target"})
		return finish(p, start, &ast.MetaProperty{Meta: meta, Property: prop})
	}
	calleeStart := p.startPos()
	var callee ast.Expr
	if p.at(token.New) {
		callee = p.parseNewExpression(calleeStart)
	} else {
		callee = p.parsePrimaryExpression()
	}
	callee = p.parseSubscripts(calleeStart, callee, false)
	var args []ast.Expr
	if p.at(token.LeftParenthesis) {
		args = p.parseArguments()
	}
	return finish(p, start, &ast.NewExpression{Callee: callee, Arguments: args})
}

// parseSubscripts appends member access, calls (only when allowCalls),
// and tagged templates onto expr, starting from start.
func (p *Parser) parseSubscripts(start ast.Position, expr ast.Expr, allowCalls bool) ast.Expr {
	for {
		switch {
		case p.at(token.Period):
			p.next()
			propStart := p.tok.Start
			name := p.identifierNameString()
			p.next()
			prop := finishAt(p, propStart, p.prevEnd, &ast.Identifier{Name: name})
			expr = finish(p, start, &ast.MemberExpression{Object: expr, Property: prop, Computed: false})
		case p.at(token.LeftBracket):
			p.next()
			idx := withContext(p, func(c *context) { c.allowIn = true }, func() ast.Expr {
				return p.parseExpression()
			})
			p.expect(token.RightBracket)
			expr = finish(p, start, &ast.MemberExpression{Object: expr, Property: idx, Computed: true})
		case allowCalls && p.at(token.LeftParenthesis):
			args := p.parseArguments()
			expr = finish(p, start, &ast.CallExpression{Callee: expr, Arguments: args})
		case p.at(token.Template):
			quasi := p.parseTemplateLiteral()
			expr = finish(p, start, &ast.TaggedTemplateExpression{Tag: expr, Quasi: quasi})
		default:
			return expr
		}
	}
}

func (p *Parser) parseArguments() []ast.Expr {
	p.expect(token.LeftParenthesis)
	var args []ast.Expr
	for !p.at(token.RightParenthesis) {
		if p.at(token.Ellipsis) {
			start := p.tok.Start
			p.next()
			arg := p.parseAssignmentExpression()
			args = append(args, finish(p, start, &ast.SpreadElement{Argument: arg}))
		} else {
			args = append(args, p.parseAssignmentExpression())
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RightParenthesis)
	return args
}

func (p *Parser) parsePrimaryExpression() ast.Expr {
	start := p.startPos()
	switch p.tok.Type {
	case token.This:
		p.next()
		return finish(p, start, &ast.ThisExpression{})
	case token.Super:
		p.next()
		return finish(p, start, &ast.Super{})
	case token.Identifier:
		name := p.tok.StringValue
		p.checkIdentifierReference(start, name)
		p.next()
		return finish(p, start, &ast.Identifier{Name: name})
	case token.Number:
		return p.parseNumericLiteral()
	case token.String:
		return p.parseStringLiteral()
	case token.BooleanLiteral:
		v := p.tok.StringValue == "true"
		raw := p.tok.Literal
		p.next()
		return finish(p, start, &ast.BooleanLiteral{Value: v, Raw: raw})
	case token.NullLiteral:
		p.next()
		return finish(p, start, &ast.NullLiteral{})
	case token.LeftBracket:
		return p.parseArrayExpression()
	case token.LeftBrace:
		return p.parseObjectExpression()
	case token.Function:
		return p.parseFunctionExpression(start)
	case token.Class:
		return p.parseClassExpression(start)
	case token.LeftParenthesis:
		return p.parseParenthesizedExpression(start)
	case token.Template:
		return p.parseTemplateLiteral()
	case token.Slash, token.QuotientAssign:
		tok := p.sc.ReconsumeAsRegexp()
		re := finishAt(p, start, tok.End, &ast.RegExpLiteral{Pattern: tok.RegexPattern, Flags: tok.RegexFlags, Raw: tok.Literal})
		p.tok = tok
		p.next()
		return re
	default:
		p.unexpected()
		return nil
	}
}

func (p *Parser) parseParenthesizedExpression(start ast.Position) ast.Expr {
	p.expect(token.LeftParenthesis)
	inner := withContext(p, func(c *context) { c.allowIn = true }, func() ast.Expr {
		return p.parseExpression()
	})
	p.expect(token.RightParenthesis)
	return finish(p, start, &ast.ParenthesizedExpression{Expression: inner})
}

func (p *Parser) parseNumericLiteral() ast.Expr {
	start, tok := p.tok.Start, p.tok
	p.checkLegacyOctalNumber(start, tok.LegacyOctalNumber)
	p.next()
	return finish(p, start, &ast.NumericLiteral{Value: tok.NumberValue, Raw: tok.Literal, LegacyOctal: tok.LegacyOctalNumber})
}

func (p *Parser) parseStringLiteral() *ast.StringLiteral {
	start, tok := p.tok.Start, p.tok
	p.checkLegacyOctalEscape(start, tok.LegacyOctalEscape)
	p.next()
	return finish(p, start, &ast.StringLiteral{Value: tok.StringValue, Raw: tok.Literal, LegacyOctalEscape: tok.LegacyOctalEscape})
}

// parseTemplateLiteral parses a backtick template, cooperating with
// the scanner's NextTemplateElement to resume raw-text scanning after
// each "${...}" substitution (spec §5).
func (p *Parser) parseTemplateLiteral() *ast.TemplateLiteral {
	start := p.startPos()
	lit := &ast.TemplateLiteral{}
	for {
		tok := p.tok
		el := finishAt(p, tok.Start, tok.End, &ast.TemplateElement{Raw: tok.Literal, Cooked: tok.StringValue, Tail: tok.TemplateTail})
		p.checkLegacyOctalEscape(tok.Start, tok.LegacyOctalEscape)
		lit.Quasis = append(lit.Quasis, el)
		if tok.TemplateTail {
			p.next()
			break
		}
		p.next()
		expr := withContext(p, func(c *context) { c.allowIn = true }, func() ast.Expr {
			return p.parseExpression()
		})
		lit.Expressions = append(lit.Expressions, expr)
		if p.tok.Type != token.RightBrace {
			p.unexpected()
		}
		next := p.sc.NextTemplateElement()
		p.prevEnd = p.tok.End
		p.tok = next
	}
	return finish(p, start, lit)
}

func (p *Parser) parseArrayExpression() ast.Expr {
	start := p.startPos()
	p.expect(token.LeftBracket)
	var elems []ast.Expr
	for !p.at(token.RightBracket) {
		if p.at(token.Comma) {
			elems = append(elems, nil)
			p.next()
			continue
		}
		if p.at(token.Ellipsis) {
			sstart := p.tok.Start
			p.next()
			arg := p.parseAssignmentExpression()
			elems = append(elems, finish(p, sstart, &ast.SpreadElement{Argument: arg}))
		} else {
			elems = append(elems, p.parseAssignmentExpression())
		}
		if !p.at(token.RightBracket) {
			p.expect(token.Comma)
		}
	}
	p.expect(token.RightBracket)
	return finish(p, start, &ast.ArrayExpression{Elements: elems})
}

func (p *Parser) parseObjectExpression() ast.Expr {
	start := p.startPos()
	p.expect(token.LeftBrace)
	var props []ast.Expr
	for !p.at(token.RightBrace) {
		props = append(props, p.parseObjectProperty())
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RightBrace)
	return finish(p, start, &ast.ObjectExpression{Properties: props})
}

func (p *Parser) parseObjectProperty() ast.Expr {
	start := p.startPos()
	kind := "init"
	generator := false
	if p.isContextual("get") && p.lookaheadIsPropertyKey() {
		kind = "get"
		p.next()
	} else if p.isContextual("set") && p.lookaheadIsPropertyKey() {
		kind = "set"
		p.next()
	} else if p.at(token.Multiply) {
		generator = true
		p.next()
	}

	computed := false
	var key ast.Expr
	if p.at(token.LeftBracket) {
		computed = true
		p.next()
		key = withContext(p, func(c *context) { c.allowIn = true }, func() ast.Expr {
			return p.parseAssignmentExpression()
		})
		p.expect(token.RightBracket)
	} else {
		key = p.parsePropertyKey()
	}

	if kind != "init" || generator || p.at(token.LeftParenthesis) {
		fn := p.parseMethodBody(start, generator)
		return finish(p, start, &ast.Property{Key: key, Value: fn, Kind: kind, Method: kind == "init", Computed: computed})
	}
	if p.eat(token.Colon) {
		value := withContext(p, func(c *context) { c.allowIn = true }, func() ast.Expr {
			return p.parseAssignmentExpression()
		})
		return finish(p, start, &ast.Property{Key: key, Value: value, Kind: "init", Computed: computed})
	}

	id, ok := key.(*ast.Identifier)
	if !ok {
		p.unexpected()
	}
	p.checkIdentifierReference(id.GetLoc().Start, id.Name)
	if p.eat(token.Assign) {
		def := p.parseAssignmentExpression()
		cover := finish(p, start, &ast.AssignmentExpression{Operator: "=", Left: id, Right: def})
		return finish(p, start, &ast.Property{Key: key, Value: cover, Kind: "init", Shorthand: true})
	}
	return finish(p, start, &ast.Property{Key: key, Value: id, Kind: "init", Shorthand: true})
}

// lookaheadIsPropertyKey reports whether the token after the current
// one can start a property/method key, used to tell a "get"/"set"
// accessor modifier or a "static" class-element modifier apart from a
// property of that very name (spec §4.2's contextual-keyword
// disambiguation).
func (p *Parser) lookaheadIsPropertyKey() bool {
	snap := p.mark()
	p.next()
	isKey := p.tok.Type != token.Colon && p.tok.Type != token.Comma &&
		p.tok.Type != token.RightBrace && p.tok.Type != token.Assign &&
		p.tok.Type != token.LeftParenthesis && p.tok.Type != token.Semicolon
	p.restore(snap)
	return isKey
}

func (p *Parser) parsePropertyKey() ast.Expr {
	switch p.tok.Type {
	case token.String:
		return p.parseStringLiteral()
	case token.Number:
		return p.parseNumericLiteral()
	default:
		start := p.tok.Start
		name := p.identifierNameString()
		p.next()
		return finish(p, start, &ast.Identifier{Name: name})
	}
}

// identifierNameString returns the spelling of the current token as an
// IdentifierName, valid for Identifier, Keyword and the literal-word
// tokens (true/false/null), all of which the scanner lexes through
// scanIdentifier and so carry their spelling in Literal.
func (p *Parser) identifierNameString() string {
	return p.tok.Literal
}

func (p *Parser) parseMethodBody(start ast.Position, generator bool) *ast.FunctionExpression {
	params := withContext(p, func(c *context) { c.allowIn = true; c.allowYield = generator }, func() []ast.Pattern {
		return p.parseFunctionParams()
	})
	body := withContext(p, func(c *context) { c.allowYield = generator; c.allowReturn = true }, func() *ast.BlockStatement {
		return p.parseFunctionBody()
	})
	return finishAt(p, start, body.GetLoc().End, &ast.FunctionExpression{Params: params, Body: body, Generator: generator})
}

func (p *Parser) parseFunctionExpression(start ast.Position) ast.Expr {
	id, params, body, generator := p.parseFunctionCommon(false)
	return finish(p, start, &ast.FunctionExpression{Id: id, Params: params, Body: body, Generator: generator})
}

// parseFunctionCommon parses everything after a leading "function"
// keyword, shared by FunctionExpression and FunctionDeclaration
// (including "export default function"). Class and object-literal
// methods parse their parameter/body pair through parseMethodBody.
func (p *Parser) parseFunctionCommon(requireId bool) (*ast.Identifier, []ast.Pattern, *ast.BlockStatement, bool) {
	p.expect(token.Function)
	generator := p.eat(token.Multiply)
	var id *ast.Identifier
	if p.tok.Type == token.Identifier {
		idStart, name := p.tok.Start, p.tok.StringValue
		p.checkBindingIdentifier(idStart, name, mixed)
		p.next()
		id = finish(p, idStart, &ast.Identifier{Name: name})
	} else if requireId {
		p.unexpected()
	}
	params := withContext(p, func(c *context) { c.allowIn = true; c.allowYield = generator }, func() []ast.Pattern {
		return p.parseFunctionParams()
	})
	body := withContext(p, func(c *context) { c.allowYield = generator; c.allowReturn = true }, func() *ast.BlockStatement {
		return p.parseFunctionBody()
	})
	return id, params, body, generator
}

// parseFunctionParams parses a parenthesized, comma-separated
// parameter list whose final entry may be a RestElement (spec §3
// invariant iii), shared by ordinary functions, methods and arrow
// functions (via tryParseArrow).
func (p *Parser) parseFunctionParams() []ast.Pattern {
	p.expect(token.LeftParenthesis)
	var params []ast.Pattern
	for !p.at(token.RightParenthesis) {
		if p.at(token.Ellipsis) {
			rstart := p.tok.Start
			p.next()
			arg := p.parseBindingTarget()
			params = append(params, finish(p, rstart, &ast.RestElement{Argument: arg}))
			break
		}
		params = append(params, p.parseBindingElement())
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RightParenthesis)
	return params
}

func (p *Parser) parseBindingElement() ast.Pattern {
	start := p.startPos()
	target := p.parseBindingTarget()
	if p.eat(token.Assign) {
		def := withContext(p, func(c *context) { c.allowIn = true }, func() ast.Expr {
			return p.parseAssignmentExpression()
		})
		return finish(p, start, &ast.AssignmentPattern{Left: target, Right: def})
	}
	return target
}

func (p *Parser) parseBindingTarget() ast.Pattern {
	switch p.tok.Type {
	case token.LeftBracket:
		return p.parseArrayBindingPattern()
	case token.LeftBrace:
		return p.parseObjectBindingPattern()
	default:
		return p.parseBindingIdentifier(mixed)
	}
}

func (p *Parser) parseBindingIdentifier(class idClass) *ast.Identifier {
	start := p.tok.Start
	if p.tok.Type != token.Identifier {
		p.unexpected()
	}
	name := p.tok.StringValue
	p.checkBindingIdentifier(start, name, class)
	p.next()
	return finish(p, start, &ast.Identifier{Name: name})
}

func (p *Parser) parseArrayBindingPattern() ast.Pattern {
	start := p.startPos()
	p.expect(token.LeftBracket)
	var elems []ast.Pattern
	for !p.at(token.RightBracket) {
		if p.at(token.Comma) {
			elems = append(elems, nil)
			p.next()
			continue
		}
		if p.at(token.Ellipsis) {
			rstart := p.tok.Start
			p.next()
			arg := p.parseBindingTarget()
			elems = append(elems, finish(p, rstart, &ast.RestElement{Argument: arg}))
			break
		}
		elems = append(elems, p.parseBindingElement())
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RightBracket)
	return finish(p, start, &ast.ArrayPattern{Elements: elems})
}

func (p *Parser) parseObjectBindingPattern() ast.Pattern {
	start := p.startPos()
	p.expect(token.LeftBrace)
	var props []ast.Node
	for !p.at(token.RightBrace) {
		if p.at(token.Ellipsis) {
			rstart := p.tok.Start
			p.next()
			arg := p.parseBindingIdentifier(mixed)
			props = append(props, finish(p, rstart, &ast.RestElement{Argument: arg}))
			break
		}
		pstart := p.startPos()
		computed := false
		var key ast.Expr
		var value ast.Pattern
		shorthand := false
		if p.at(token.LeftBracket) {
			computed = true
			p.next()
			key = withContext(p, func(c *context) { c.allowIn = true }, func() ast.Expr {
				return p.parseAssignmentExpression()
			})
			p.expect(token.RightBracket)
			p.expect(token.Colon)
			value = p.parseBindingElement()
		} else {
			key = p.parsePropertyKey()
			if p.eat(token.Colon) {
				value = p.parseBindingElement()
			} else {
				shorthand = true
				id, ok := key.(*ast.Identifier)
				if !ok {
					p.unexpected()
				}
				p.checkBindingIdentifier(id.GetLoc().Start, id.Name, mixed)
				if p.eat(token.Assign) {
					def := p.parseAssignmentExpression()
					value = finish(p, pstart, &ast.AssignmentPattern{Left: id, Right: def})
				} else {
					value = id
				}
			}
		}
		ap := finish(p, pstart, &ast.AssignmentProperty{Key: key, Value: value, Kind: "init", Shorthand: shorthand, Computed: computed})
		props = append(props, ap)
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RightBrace)
	return finish(p, start, &ast.ObjectPattern{Properties: props})
}

func (p *Parser) parseClassExpression(start ast.Position) ast.Expr {
	id, super, body := p.parseClassCommon(false)
	return finish(p, start, &ast.ClassExpression{Id: id, SuperClass: super, Body: body})
}

// parseClassCommon parses everything after a leading "class" keyword,
// shared by ClassExpression and ClassDeclaration. A class body is
// always parsed as strict-mode code regardless of the enclosing
// context (spec §4.4), which is why allowNothing classification (not
// mixed) is used for the class's own binding name.
func (p *Parser) parseClassCommon(requireId bool) (*ast.Identifier, ast.Expr, *ast.ClassBody) {
	p.expect(token.Class)
	var id *ast.Identifier
	if p.tok.Type == token.Identifier {
		idStart, name := p.tok.Start, p.tok.StringValue
		p.checkBindingIdentifier(idStart, name, allowNothing)
		p.next()
		id = finish(p, idStart, &ast.Identifier{Name: name})
	} else if requireId {
		p.unexpected()
	}
	var super ast.Expr
	if p.eat(token.Extends) {
		super = p.parseLeftHandSideExpression()
	}
	body := withStrictSaved(p, func() *ast.ClassBody {
		p.strict = true
		p.sc.SetStrict(true)
		return p.parseClassBody()
	})
	return id, super, body
}

func (p *Parser) parseClassBody() *ast.ClassBody {
	start := p.startPos()
	p.expect(token.LeftBrace)
	var elems []*ast.MethodDefinition
	for !p.at(token.RightBrace) {
		if p.eat(token.Semicolon) {
			continue
		}
		elems = append(elems, p.parseClassElement())
	}
	p.expect(token.RightBrace)
	return finish(p, start, &ast.ClassBody{Body: elems})
}

func (p *Parser) parseClassElement() *ast.MethodDefinition {
	start := p.startPos()
	static := false
	if p.isContextual("static") && p.lookaheadIsPropertyKey() {
		static = true
		p.next()
	}
	kind := "method"
	generator := false
	if p.isContextual("get") && p.lookaheadIsPropertyKey() {
		kind = "get"
		p.next()
	} else if p.isContextual("set") && p.lookaheadIsPropertyKey() {
		kind = "set"
		p.next()
	} else if p.at(token.Multiply) {
		generator = true
		p.next()
	}

	computed := false
	var key ast.Expr
	if p.at(token.LeftBracket) {
		computed = true
		p.next()
		key = withContext(p, func(c *context) { c.allowIn = true }, func() ast.Expr {
			return p.parseAssignmentExpression()
		})
		p.expect(token.RightBracket)
	} else {
		key = p.parsePropertyKey()
	}

	if !static && kind == "method" && !generator && !computed {
		if id, ok := key.(*ast.Identifier); ok && id.Name == "constructor" {
			kind = "constructor"
		}
	}

	fn := p.parseMethodBody(start, generator)
	return finish(p, start, &ast.MethodDefinition{Key: key, Value: fn, Kind: kind, Computed: computed, Static: static})
}
