package parser

import (
	"fmt"

	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/token"
)

// parseProgram is the top-level entry point (spec §6): a directive
// prologue followed by a mix of statements and, when parsing module
// source type, import/export declarations.
func (p *Parser) parseProgram() *ast.Program {
	start := p.startPos()
	var body []ast.ModuleItem
	var directives []string
	haveOctal := false
	var octalPos ast.Position
	inPrologue := true

	for !p.at(token.Eof) {
		if p.inModule && (p.at(token.Import) || p.at(token.Export)) {
			inPrologue = false
			body = append(body, p.parseModuleDeclaration())
			continue
		}
		if inPrologue && p.tok.Type == token.String {
			stmt, d, isDirective := p.parseDirectiveCandidate()
			body = append(body, stmt.(ast.ModuleItem))
			if isDirective {
				if d.legacyOctal && !haveOctal {
					haveOctal, octalPos = true, d.pos
				}
				if d.text == "use strict" {
					if haveOctal {
						p.raise(octalPos, "Octal literals are not allowed in strict mode")
					}
					p.strict = true
					p.sc.SetStrict(true)
				}
				directives = append(directives, d.text)
				continue
			}
			inPrologue = false
			continue
		}
		inPrologue = false
		body = append(body, p.parseStatement().(ast.ModuleItem))
	}
	return finish(p, start, &ast.Program{SourceType: string(p.options.SourceType), Body: body, Directives: directives})
}

// directiveInfo describes a statement-list entry recognized as a
// Directive Prologue member (spec §4.5).
type directiveInfo struct {
	text        string
	legacyOctal bool
	pos         ast.Position
}

// parseDirectiveCandidate parses one statement that might be a
// directive-prologue entry: a bare StringLiteral ExpressionStatement.
// Any other shape (even one that starts with a string, e.g.
// `"a" + "b"`) is not a directive.
func (p *Parser) parseDirectiveCandidate() (ast.Stmt, directiveInfo, bool) {
	stmt := p.parseExpressionStatement()
	es := stmt.(*ast.ExpressionStatement)
	sl, ok := es.Expression.(*ast.StringLiteral)
	if !ok {
		return stmt, directiveInfo{}, false
	}
	inner := sl.Raw
	if len(inner) >= 2 {
		inner = inner[1 : len(inner)-1]
	}
	return stmt, directiveInfo{text: inner, legacyOctal: sl.LegacyOctalEscape, pos: sl.GetLoc().Start}, true
}

// parseStatementListStrict parses statements up to endTok, applying
// the same directive-prologue/strict-mode detection as parseProgram
// (spec §4.5); used for function bodies.
func (p *Parser) parseStatementListStrict(endTok token.Token) ([]ast.Stmt, []string) {
	var body []ast.Stmt
	var directives []string
	haveOctal := false
	var octalPos ast.Position
	inPrologue := true

	for !p.at(endTok) {
		if inPrologue && p.tok.Type == token.String {
			stmt, d, isDirective := p.parseDirectiveCandidate()
			body = append(body, stmt)
			if isDirective {
				if d.legacyOctal && !haveOctal {
					haveOctal, octalPos = true, d.pos
				}
				if d.text == "use strict" {
					if haveOctal {
						p.raise(octalPos, "Octal literals are not allowed in strict mode")
					}
					if !p.strict {
						p.strict = true
						p.sc.SetStrict(true)
					}
				}
				directives = append(directives, d.text)
				continue
			}
			inPrologue = false
			continue
		}
		inPrologue = false
		body = append(body, p.parseStatement())
	}
	return body, directives
}

// parseStatementList parses an ordinary statement list with no
// directive-prologue detection (spec §4.5 scopes that to Program and
// function bodies only).
func (p *Parser) parseStatementList(endTok token.Token) []ast.Stmt {
	var body []ast.Stmt
	for !p.at(endTok) {
		body = append(body, p.parseStatement())
	}
	return body
}

// parseFunctionBody parses a function/arrow braced body. A "use
// strict" directive in the body's own prologue only takes effect for
// the duration of this body; withStrictSaved keeps it from leaking
// into the enclosing scope once the body finishes (spec §5 "Scoped
// resources").
func (p *Parser) parseFunctionBody() *ast.BlockStatement {
	return withStrictSaved(p, func() *ast.BlockStatement {
		start := p.startPos()
		p.expect(token.LeftBrace)
		body, directives := p.parseStatementListStrict(token.RightBrace)
		p.expect(token.RightBrace)
		return finish(p, start, &ast.BlockStatement{Body: body, Directives: directives})
	})
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	start := p.startPos()
	p.expect(token.LeftBrace)
	body := p.parseStatementList(token.RightBrace)
	p.expect(token.RightBrace)
	return finish(p, start, &ast.BlockStatement{Body: body})
}

// parseStatement is the grammar dispatcher of spec §4.2: it looks at
// the current token (and, for a handful of contextual keywords, one
// token of extra lookahead) to pick the right production.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.tok.Type {
	case token.LeftBrace:
		return p.parseBlockStatement()
	case token.Var, token.Const:
		return p.parseVariableStatement()
	case token.Semicolon:
		return p.parseEmptyStatement()
	case token.If:
		return p.parseIfStatement()
	case token.Do:
		return p.parseDoWhileStatement()
	case token.While:
		return p.parseWhileStatement()
	case token.For:
		return p.parseForStatement()
	case token.Continue:
		return p.parseContinueStatement()
	case token.Break:
		return p.parseBreakStatement()
	case token.Return:
		return p.parseReturnStatement()
	case token.With:
		return p.parseWithStatement()
	case token.Switch:
		return p.parseSwitchStatement()
	case token.Throw:
		return p.parseThrowStatement()
	case token.Try:
		return p.parseTryStatement()
	case token.Debugger:
		return p.parseDebuggerStatement()
	case token.Function:
		return p.parseFunctionDeclaration()
	case token.Class:
		return p.parseClassDeclaration()
	case token.Identifier:
		if p.isContextual("let") && p.letIsDeclaration() {
			return p.parseVariableStatement()
		}
		return p.parseExpressionOrLabeledStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseEmptyStatement() ast.Stmt {
	start := p.startPos()
	p.expect(token.Semicolon)
	return finish(p, start, &ast.EmptyStatement{})
}

func (p *Parser) parseExpressionStatement() ast.Stmt {
	start := p.startPos()
	expr := withContext(p, func(c *context) { c.allowIn = true }, func() ast.Expr {
		return p.parseExpression()
	})
	p.assertEndOfStatement()
	return finish(p, start, &ast.ExpressionStatement{Expression: expr})
}

// identifierColonLookahead reports whether the current identifier is
// the label of a LabeledStatement (followed by ":").
func (p *Parser) identifierColonLookahead() bool {
	if p.tok.Type != token.Identifier {
		return false
	}
	snap := p.mark()
	p.next()
	isLabel := p.tok.Type == token.Colon
	p.restore(snap)
	return isLabel
}

// startsIterationStatement reports whether the upcoming statement is a
// for/while/do loop, or (through a chain of further labels) resolves
// to one, so the label being pushed is a valid continue target (spec
// §4.2: continue may only target a label on an enclosing iteration
// statement).
func (p *Parser) startsIterationStatement() bool {
	switch p.tok.Type {
	case token.For, token.While, token.Do:
		return true
	case token.Identifier:
		if !p.identifierColonLookahead() {
			return false
		}
		snap := p.mark()
		p.next()
		p.next()
		isLoop := p.startsIterationStatement()
		p.restore(snap)
		return isLoop
	default:
		return false
	}
}

// findLabel looks up name among the currently enclosing labels,
// innermost first.
func (p *Parser) findLabel(name string) (label, bool) {
	for i := len(p.labels) - 1; i >= 0; i-- {
		if p.labels[i].name == name {
			return p.labels[i], true
		}
	}
	return label{}, false
}

func (p *Parser) parseExpressionOrLabeledStatement() ast.Stmt {
	start := p.startPos()
	if p.identifierColonLookahead() {
		idStart, name := p.tok.Start, p.tok.StringValue
		p.checkIdentifierName(idStart, name, mixed)
		p.next()
		p.expect(token.Colon)
		id := finishAt(p, idStart, p.prevEnd, &ast.Identifier{Name: name})
		p.pushLabel(name, p.startsIterationStatement())
		var body ast.Stmt
		if p.at(token.Function) {
			p.checkStrictLabelledFunction(p.tok.Start)
			body = p.parseFunctionDeclaration()
		} else {
			body = p.parseStatement()
		}
		p.popLabel()
		return finish(p, start, &ast.LabeledStatement{Label: id, Body: body})
	}
	return p.parseExpressionStatement()
}

func (p *Parser) pushLabel(name string, isLoop bool) { p.labels = append(p.labels, label{name: name, isLoop: isLoop}) }
func (p *Parser) popLabel()                          { p.labels = p.labels[:len(p.labels)-1] }

// letIsDeclaration disambiguates "let" as a LexicalDeclaration keyword
// from "let" as an ordinary identifier (spec Design Notes): it is a
// declaration only when immediately followed by a binding target.
func (p *Parser) letIsDeclaration() bool {
	snap := p.mark()
	p.next()
	ok := p.tok.Type == token.Identifier || p.tok.Type == token.LeftBracket || p.tok.Type == token.LeftBrace
	p.restore(snap)
	return ok
}

func (p *Parser) atVariableDeclarationStart() (kind string, ok bool) {
	switch {
	case p.at(token.Var):
		return "var", true
	case p.at(token.Const):
		return "const", true
	case p.isContextual("let") && p.letIsDeclaration():
		return "let", true
	}
	return "", false
}

func (p *Parser) parseVariableStatement() ast.Stmt {
	start := p.startPos()
	kind, ok := p.atVariableDeclarationStart()
	if !ok {
		p.unexpected()
	}
	p.next()
	var decls []*ast.VariableDeclarator
	for {
		dstart := p.startPos()
		target := p.parseBindingTarget()
		var init ast.Expr
		if p.eat(token.Assign) {
			init = withContext(p, func(c *context) { c.allowIn = true }, func() ast.Expr {
				return p.parseAssignmentExpression()
			})
		}
		decls = append(decls, finish(p, dstart, &ast.VariableDeclarator{Id: target, Init: init}))
		if !p.eat(token.Comma) {
			break
		}
	}
	p.assertEndOfStatement()
	return finish(p, start, &ast.VariableDeclaration{Kind: kind, Declarations: decls})
}

func (p *Parser) parseIfStatement() ast.Stmt {
	start := p.startPos()
	p.expect(token.If)
	p.expect(token.LeftParenthesis)
	test := withContext(p, func(c *context) { c.allowIn = true }, func() ast.Expr { return p.parseExpression() })
	p.expect(token.RightParenthesis)
	cons := p.parseStatement()
	var alt ast.Stmt
	if p.eat(token.Else) {
		alt = p.parseStatement()
	}
	return finish(p, start, &ast.IfStatement{Test: test, Consequent: cons, Alternate: alt})
}

func (p *Parser) parseDoWhileStatement() ast.Stmt {
	start := p.startPos()
	p.expect(token.Do)
	body := p.parseStatement()
	p.expect(token.While)
	p.expect(token.LeftParenthesis)
	test := withContext(p, func(c *context) { c.allowIn = true }, func() ast.Expr { return p.parseExpression() })
	p.expect(token.RightParenthesis)
	p.eat(token.Semicolon) // the trailing ";" after do-while is always optional, not just ASI-eligible
	return finish(p, start, &ast.DoWhileStatement{Body: body, Test: test})
}

func (p *Parser) parseWhileStatement() ast.Stmt {
	start := p.startPos()
	p.expect(token.While)
	p.expect(token.LeftParenthesis)
	test := withContext(p, func(c *context) { c.allowIn = true }, func() ast.Expr { return p.parseExpression() })
	p.expect(token.RightParenthesis)
	body := p.parseStatement()
	return finish(p, start, &ast.WhileStatement{Test: test, Body: body})
}

// parseForStatement implements spec §4.2's three-way disambiguation:
// an empty init, a var/let/const declaration, or a plain expression.
// For the latter two, a further in/of re-interpretation converts an
// already-parsed binding target or expression into the
// ForInStatement/ForOfStatement's Left.
func (p *Parser) parseForStatement() ast.Stmt {
	start := p.startPos()
	p.expect(token.For)
	p.expect(token.LeftParenthesis)

	if p.at(token.Semicolon) {
		return p.finishCStyleFor(start, nil)
	}

	if kind, ok := p.atVariableDeclarationStart(); ok {
		declStart := p.startPos()
		p.next()
		targetStart := p.startPos()
		firstTarget := withContext(p, func(c *context) { c.allowIn = false }, func() ast.Pattern {
			return p.parseBindingTarget()
		})
		if p.isContextual("of") || p.at(token.In) {
			return p.finishForInOf(start, finish(p, declStart, &ast.VariableDeclaration{
				Kind:         kind,
				Declarations: []*ast.VariableDeclarator{finish(p, targetStart, &ast.VariableDeclarator{Id: firstTarget})},
			}))
		}
		var init ast.Expr
		if p.eat(token.Assign) {
			init = withContext(p, func(c *context) { c.allowIn = false }, func() ast.Expr {
				return p.parseAssignmentExpression()
			})
		}
		decls := []*ast.VariableDeclarator{finish(p, declStart, &ast.VariableDeclarator{Id: firstTarget, Init: init})}
		for p.eat(token.Comma) {
			dstart := p.startPos()
			target := withContext(p, func(c *context) { c.allowIn = false }, func() ast.Pattern {
				return p.parseBindingTarget()
			})
			var dinit ast.Expr
			if p.eat(token.Assign) {
				dinit = withContext(p, func(c *context) { c.allowIn = false }, func() ast.Expr {
					return p.parseAssignmentExpression()
				})
			}
			decls = append(decls, finish(p, dstart, &ast.VariableDeclarator{Id: target, Init: dinit}))
		}
		decl := finish(p, declStart, &ast.VariableDeclaration{Kind: kind, Declarations: decls})
		return p.finishCStyleFor(start, decl)
	}

	initExpr := withContext(p, func(c *context) { c.allowIn = false }, func() ast.Expr {
		return p.parseExpression()
	})
	if p.isContextual("of") || p.at(token.In) {
		return p.finishForInOf(start, initExpr)
	}
	return p.finishCStyleFor(start, initExpr)
}

// finishForInOf parses the "[of|in] right) body" tail once left has
// already been parsed as either a fresh VariableDeclaration or a
// plain expression awaiting conversion via toPattern.
func (p *Parser) finishForInOf(start ast.Position, left ast.Node) ast.Stmt {
	isOf := p.isContextual("of")
	p.next()
	if _, ok := left.(*ast.VariableDeclaration); !ok {
		left = p.toPattern(left.(ast.Expr))
	}
	right := withContext(p, func(c *context) { c.allowIn = true }, func() ast.Expr {
		if isOf {
			return p.parseAssignmentExpression()
		}
		return p.parseExpression()
	})
	p.expect(token.RightParenthesis)
	body := p.parseStatement()
	if isOf {
		return finish(p, start, &ast.ForOfStatement{Left: left, Right: right, Body: body})
	}
	return finish(p, start, &ast.ForInStatement{Left: left, Right: right, Body: body})
}

func (p *Parser) finishCStyleFor(start ast.Position, init ast.Node) ast.Stmt {
	p.expect(token.Semicolon)
	var test ast.Expr
	if !p.at(token.Semicolon) {
		test = withContext(p, func(c *context) { c.allowIn = true }, func() ast.Expr { return p.parseExpression() })
	}
	p.expect(token.Semicolon)
	var update ast.Expr
	if !p.at(token.RightParenthesis) {
		update = withContext(p, func(c *context) { c.allowIn = true }, func() ast.Expr { return p.parseExpression() })
	}
	p.expect(token.RightParenthesis)
	body := p.parseStatement()
	return finish(p, start, &ast.ForStatement{Init: init, Test: test, Update: update, Body: body})
}

func (p *Parser) parseContinueStatement() ast.Stmt {
	start := p.startPos()
	p.expect(token.Continue)
	var lbl *ast.Identifier
	if !p.tok.NewlineBefore && p.tok.Type == token.Identifier {
		lstart, name := p.tok.Start, p.tok.StringValue
		p.next()
		lbl = finish(p, lstart, &ast.Identifier{Name: name})
		l, ok := p.findLabel(name)
		if !ok {
			p.raise(lstart, fmt.Sprintf("Undefined label '%s'", name))
		} else if !l.isLoop {
			p.raise(lstart, fmt.Sprintf("Illegal continue statement: '%s' does not denote an iteration statement", name))
		}
	}
	p.assertEndOfStatement()
	return finish(p, start, &ast.ContinueStatement{Label: lbl})
}

func (p *Parser) parseBreakStatement() ast.Stmt {
	start := p.startPos()
	p.expect(token.Break)
	var lbl *ast.Identifier
	if !p.tok.NewlineBefore && p.tok.Type == token.Identifier {
		lstart, name := p.tok.Start, p.tok.StringValue
		p.next()
		lbl = finish(p, lstart, &ast.Identifier{Name: name})
		if _, ok := p.findLabel(name); !ok {
			p.raise(lstart, fmt.Sprintf("Undefined label '%s'", name))
		}
	}
	p.assertEndOfStatement()
	return finish(p, start, &ast.BreakStatement{Label: lbl})
}

func (p *Parser) parseReturnStatement() ast.Stmt {
	start := p.startPos()
	p.expect(token.Return)
	if !p.ctx.allowReturn {
		p.raise(start, "'return' outside of function")
	}
	var arg ast.Expr
	if !p.canInsertSemicolon() {
		arg = p.parseExpression()
	}
	p.assertEndOfStatement()
	return finish(p, start, &ast.ReturnStatement{Argument: arg})
}

// parseWithStatement is parsed unconditionally, including in strict
// mode (spec §9 open question b): no restriction is enforced here.
func (p *Parser) parseWithStatement() ast.Stmt {
	start := p.startPos()
	p.expect(token.With)
	p.expect(token.LeftParenthesis)
	obj := withContext(p, func(c *context) { c.allowIn = true }, func() ast.Expr { return p.parseExpression() })
	p.expect(token.RightParenthesis)
	body := p.parseStatement()
	return finish(p, start, &ast.WithStatement{Object: obj, Body: body})
}

func (p *Parser) parseSwitchStatement() ast.Stmt {
	start := p.startPos()
	p.expect(token.Switch)
	p.expect(token.LeftParenthesis)
	disc := withContext(p, func(c *context) { c.allowIn = true }, func() ast.Expr { return p.parseExpression() })
	p.expect(token.RightParenthesis)
	p.expect(token.LeftBrace)

	var cases []*ast.SwitchCase
	sawDefault := false
	for !p.at(token.RightBrace) {
		cstart := p.startPos()
		var test ast.Expr
		if p.eat(token.Case) {
			test = withContext(p, func(c *context) { c.allowIn = true }, func() ast.Expr { return p.parseExpression() })
		} else {
			p.expect(token.Default)
			if sawDefault {
				p.raise(cstart, "Multiple default clause in switch statement")
			}
			sawDefault = true
		}
		p.expect(token.Colon)
		var body []ast.Stmt
		for !p.at(token.Case) && !p.at(token.Default) && !p.at(token.RightBrace) {
			body = append(body, p.parseStatement())
		}
		cases = append(cases, finish(p, cstart, &ast.SwitchCase{Test: test, Consequent: body}))
	}
	p.expect(token.RightBrace)
	return finish(p, start, &ast.SwitchStatement{Discriminant: disc, Cases: cases})
}

func (p *Parser) parseThrowStatement() ast.Stmt {
	start := p.startPos()
	p.expect(token.Throw)
	if p.tok.NewlineBefore {
		p.raise(start, "Illegal newline after throw")
	}
	arg := p.parseExpression()
	p.assertEndOfStatement()
	return finish(p, start, &ast.ThrowStatement{Argument: arg})
}

// parseTryStatement raises a fatal error when neither a catch handler
// nor a finally block follows the try block, per spec §9 open
// question a: that shape is never allowed to reach a TryStatement
// node at all.
func (p *Parser) parseTryStatement() ast.Stmt {
	start := p.startPos()
	p.expect(token.Try)
	block := p.parseBlockStatement()
	var handler *ast.CatchClause
	var finalizer *ast.BlockStatement
	if p.eat(token.Catch) {
		cstart := p.startPos()
		var param ast.Pattern
		if p.eat(token.LeftParenthesis) {
			param = p.parseBindingTarget()
			p.expect(token.RightParenthesis)
		}
		body := p.parseBlockStatement()
		handler = finish(p, cstart, &ast.CatchClause{Param: param, Body: body})
	}
	if p.eat(token.Finally) {
		finalizer = p.parseBlockStatement()
	}
	if handler == nil && finalizer == nil {
		p.unexpected()
	}
	return finish(p, start, &ast.TryStatement{Block: block, Handler: handler, Finalizer: finalizer})
}

func (p *Parser) parseDebuggerStatement() ast.Stmt {
	start := p.startPos()
	p.expect(token.Debugger)
	p.assertEndOfStatement()
	return finish(p, start, &ast.DebuggerStatement{})
}

func (p *Parser) parseFunctionDeclaration() ast.Stmt {
	start := p.startPos()
	id, params, body, generator := p.parseFunctionCommon(true)
	return finish(p, start, &ast.FunctionDeclaration{Id: id, Params: params, Body: body, Generator: generator})
}

func (p *Parser) parseClassDeclaration() ast.Stmt {
	start := p.startPos()
	id, super, body := p.parseClassCommon(true)
	return finish(p, start, &ast.ClassDeclaration{Id: id, SuperClass: super, Body: body})
}

// --- module items ---

func (p *Parser) parseModuleDeclaration() ast.ModuleItem {
	if p.at(token.Import) {
		return p.parseImportDeclaration()
	}
	return p.parseExportDeclaration()
}

func (p *Parser) parseImportDeclaration() ast.ModuleItem {
	start := p.startPos()
	p.expect(token.Import)

	if p.tok.Type == token.String {
		src := p.parseStringLiteral()
		p.assertEndOfStatement()
		return finish(p, start, &ast.ImportDeclaration{Source: src})
	}

	var specs []ast.Node
	if p.tok.Type == token.Identifier && !p.isContextual("from") {
		idStart, name := p.tok.Start, p.tok.StringValue
		p.checkBindingIdentifier(idStart, name, mixed)
		p.next()
		local := finish(p, idStart, &ast.Identifier{Name: name})
		specs = append(specs, finish(p, idStart, &ast.ImportDefaultSpecifier{Local: local}))
		if p.eat(token.Comma) {
			specs = append(specs, p.parseImportClauseTail()...)
		}
	} else {
		specs = append(specs, p.parseImportClauseTail()...)
	}
	p.expectContextual("from")
	src := p.parseStringLiteral()
	p.assertEndOfStatement()
	return finish(p, start, &ast.ImportDeclaration{Specifiers: specs, Source: src})
}

func (p *Parser) parseImportClauseTail() []ast.Node {
	if p.at(token.Multiply) {
		start := p.tok.Start
		p.next()
		p.expectContextual("as")
		idStart, name := p.tok.Start, p.tok.StringValue
		p.checkBindingIdentifier(idStart, name, mixed)
		p.next()
		local := finish(p, idStart, &ast.Identifier{Name: name})
		return []ast.Node{finish(p, start, &ast.ImportNamespaceSpecifier{Local: local})}
	}
	p.expect(token.LeftBrace)
	var specs []ast.Node
	for !p.at(token.RightBrace) {
		sstart := p.startPos()
		impStart, impName := p.tok.Start, p.identifierNameString()
		p.next()
		imported := finish(p, impStart, &ast.Identifier{Name: impName})
		local := imported
		if p.eatContextual("as") {
			lstart, lname := p.tok.Start, p.tok.StringValue
			p.checkBindingIdentifier(lstart, lname, mixed)
			p.next()
			local = finish(p, lstart, &ast.Identifier{Name: lname})
		} else {
			p.checkBindingIdentifier(imported.GetLoc().Start, imported.Name, mixed)
		}
		specs = append(specs, finish(p, sstart, &ast.ImportSpecifier{Imported: imported, Local: local}))
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RightBrace)
	return specs
}

func (p *Parser) parseExportDeclaration() ast.ModuleItem {
	start := p.startPos()
	p.expect(token.Export)

	if p.eat(token.Multiply) {
		p.expectContextual("from")
		src := p.parseStringLiteral()
		p.assertEndOfStatement()
		return finish(p, start, &ast.ExportAllDeclaration{Source: src})
	}

	if p.eat(token.Default) {
		var decl ast.Node
		switch {
		case p.at(token.Function):
			dstart := p.startPos()
			id, params, body, generator := p.parseFunctionCommon(false)
			decl = finish(p, dstart, &ast.FunctionDeclaration{Id: id, Params: params, Body: body, Generator: generator})
		case p.at(token.Class):
			dstart := p.startPos()
			id, super, body := p.parseClassCommon(false)
			decl = finish(p, dstart, &ast.ClassDeclaration{Id: id, SuperClass: super, Body: body})
		default:
			decl = withContext(p, func(c *context) { c.allowIn = true }, func() ast.Expr {
				return p.parseAssignmentExpression()
			})
			p.assertEndOfStatement()
		}
		return finish(p, start, &ast.ExportDefaultDeclaration{Declaration: decl})
	}

	if p.at(token.LeftBrace) {
		p.next()
		var specs []*ast.ExportSpecifier
		for !p.at(token.RightBrace) {
			sstart := p.startPos()
			lstart, lname := p.tok.Start, p.identifierNameString()
			p.next()
			local := finish(p, lstart, &ast.Identifier{Name: lname})
			exported := local
			if p.eatContextual("as") {
				estart, ename := p.tok.Start, p.identifierNameString()
				p.next()
				exported = finish(p, estart, &ast.Identifier{Name: ename})
			}
			specs = append(specs, finish(p, sstart, &ast.ExportSpecifier{Local: local, Exported: exported}))
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expect(token.RightBrace)
		var src *ast.StringLiteral
		if p.eatContextual("from") {
			src = p.parseStringLiteral()
		}
		p.assertEndOfStatement()
		return finish(p, start, &ast.ExportNamedDeclaration{Specifiers: specs, Source: src})
	}

	var decl ast.Node
	switch {
	case p.at(token.Var), p.at(token.Const):
		decl = p.parseVariableStatement()
	case p.at(token.Function):
		decl = p.parseFunctionDeclaration()
	case p.at(token.Class):
		decl = p.parseClassDeclaration()
	case p.isContextual("let"):
		decl = p.parseVariableStatement()
	default:
		p.unexpected()
	}
	return finish(p, start, &ast.ExportNamedDeclaration{Declaration: decl})
}
