package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/parser"
)

func mustParse(t *testing.T, code string) *ast.Program {
	t.Helper()
	prog, err := parser.Parse(code, parser.DefaultOptions())
	require.NoError(t, err, "code:\n%s", code)
	return prog
}

func mustFail(t *testing.T, code string) error {
	t.Helper()
	_, err := parser.Parse(code, parser.DefaultOptions())
	require.Error(t, err, "code:\n%s", code)
	return err
}

func firstStmt(prog *ast.Program) ast.ModuleItem {
	return prog.Body[0]
}

func TestLegacyOctalRejectedInStrictMode(t *testing.T) {
	mustFail(t, "\"use strict\";\nvar x = 010;")
}

func TestLegacyOctalAllowedInSloppyMode(t *testing.T) {
	prog := mustParse(t, `var x = 010;`)
	decl := firstStmt(prog).(*ast.VariableDeclaration)
	lit := decl.Declarations[0].Init.(*ast.NumericLiteral)
	require.True(t, lit.LegacyOctal)
	require.Equal(t, float64(8), lit.Value)
}

func TestLegacyOctalEscapeInDirectivePrologueIsRetroactive(t *testing.T) {
	mustFail(t, "'\\05';\n'use strict';")
}

func TestForOfWithArrayPattern(t *testing.T) {
	prog := mustParse(t, `for (let [a, b] of xs) { a(b); }`)
	stmt := firstStmt(prog).(*ast.ForOfStatement)
	decl := stmt.Left.(*ast.VariableDeclaration)
	require.Equal(t, "let", decl.Kind)
	_, ok := decl.Declarations[0].Id.(*ast.ArrayPattern)
	require.True(t, ok)
}

func TestForInWithMemberExpressionTarget(t *testing.T) {
	prog := mustParse(t, `for (a.b in c) { d(); }`)
	stmt := firstStmt(prog).(*ast.ForInStatement)
	_, ok := stmt.Left.(*ast.MemberExpression)
	require.True(t, ok)
}

func TestSwitchWithThreeCasesAndSingleDefault(t *testing.T) {
	prog := mustParse(t, `switch (x) {
		case 1: a();
		default: b();
		case 2: c();
	}`)
	stmt := firstStmt(prog).(*ast.SwitchStatement)
	require.Len(t, stmt.Cases, 3)
	require.Nil(t, stmt.Cases[1].Test)
}

func TestSwitchRejectsSecondDefault(t *testing.T) {
	mustFail(t, `switch (x) { default: a(); default: b(); }`)
}

func TestNestedNewWithoutInnerCall(t *testing.T) {
	prog := mustParse(t, `new new f()();`)
	stmt := firstStmt(prog).(*ast.ExpressionStatement)
	outer := stmt.Expression.(*ast.NewExpression)
	inner, ok := outer.Callee.(*ast.NewExpression)
	require.True(t, ok)
	require.Empty(t, inner.Arguments)
	require.Len(t, outer.Arguments, 0)
}

func TestTaggedTemplateExpression(t *testing.T) {
	prog := mustParse(t, "tag`a${1}b`;")
	stmt := firstStmt(prog).(*ast.ExpressionStatement)
	tt := stmt.Expression.(*ast.TaggedTemplateExpression)
	require.Len(t, tt.Quasi.Quasis, 2)
	require.Len(t, tt.Quasi.Expressions, 1)
}

func TestBlockScopedLetThenUpdateExpression(t *testing.T) {
	prog := mustParse(t, `{ let x = 0; x++; }`)
	block := firstStmt(prog).(*ast.BlockStatement)
	require.Len(t, block.Body, 2)
	_, ok := block.Body[1].(*ast.ExpressionStatement).Expression.(*ast.UpdateExpression)
	require.True(t, ok)
}

func TestTryWithoutCatchOrFinallyIsFatal(t *testing.T) {
	mustFail(t, `try { f(); }`)
}

func TestTryWithCatchOnly(t *testing.T) {
	prog := mustParse(t, `try { f(); } catch (e) { g(e); }`)
	stmt := firstStmt(prog).(*ast.TryStatement)
	require.NotNil(t, stmt.Handler)
	require.Nil(t, stmt.Finalizer)
}

func TestWithStatementAllowedInStrictMode(t *testing.T) {
	prog := mustParse(t, `"use strict";
with (obj) { f(); }`)
	_, ok := prog.Body[1].(*ast.WithStatement)
	require.True(t, ok)
}

func TestArrowFunctionCoverGrammar(t *testing.T) {
	prog := mustParse(t, `const f = (a, b = 1, ...rest) => a + b;`)
	decl := firstStmt(prog).(*ast.VariableDeclaration)
	arrow := decl.Declarations[0].Init.(*ast.ArrowFunctionExpression)
	require.Len(t, arrow.Params, 3)
	require.True(t, arrow.ExpressionBody)
}

func TestParenthesizedExpressionIsNotAnArrow(t *testing.T) {
	prog := mustParse(t, `(1 + 2);`)
	stmt := firstStmt(prog).(*ast.ExpressionStatement)
	_, ok := stmt.Expression.(*ast.ParenthesizedExpression)
	require.True(t, ok)
}

func TestYieldDelegateOnlySetWithArgument(t *testing.T) {
	prog := mustParse(t, `function* g() { yield; yield* other(); }`)
	fn := firstStmt(prog).(*ast.FunctionDeclaration)
	first := fn.Body.Body[0].(*ast.ExpressionStatement).Expression.(*ast.YieldExpression)
	require.False(t, first.Delegate)
	require.Nil(t, first.Argument)

	second := fn.Body.Body[1].(*ast.ExpressionStatement).Expression.(*ast.YieldExpression)
	require.True(t, second.Delegate)
	require.NotNil(t, second.Argument)
}

func TestDestructuringAssignmentObjectPattern(t *testing.T) {
	prog := mustParse(t, `({a, b: c} = obj);`)
	stmt := firstStmt(prog).(*ast.ExpressionStatement)
	paren := stmt.Expression.(*ast.ParenthesizedExpression)
	assign := paren.Expression.(*ast.AssignmentExpression)
	_, ok := assign.Left.(*ast.ObjectPattern)
	require.True(t, ok)
}

func TestModuleImportExport(t *testing.T) {
	options := parser.DefaultOptions()
	options.SourceType = parser.Module
	prog, err := parser.Parse(`import d, { a as b } from "mod";
export default function f() {}
export { d };`, options)
	require.NoError(t, err)
	require.Equal(t, "module", prog.SourceType)
	imp := prog.Body[0].(*ast.ImportDeclaration)
	require.Len(t, imp.Specifiers, 2)
}

func TestBinaryPrecedenceFolding(t *testing.T) {
	prog := mustParse(t, `a + b * c;`)
	stmt := firstStmt(prog).(*ast.ExpressionStatement)
	top := stmt.Expression.(*ast.BinaryExpression)
	require.Equal(t, "+", top.Operator)
	right := top.Right.(*ast.BinaryExpression)
	require.Equal(t, "*", right.Operator)
}
