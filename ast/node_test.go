package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/t14raptor/esparse/ast"
)

func TestBaseGetSetLoc(t *testing.T) {
	n := &ast.Identifier{Name: "x"}
	loc := ast.Location{Start: ast.Position{Line: 1, Column: 0}, End: ast.Position{Line: 1, Column: 1}}
	n.SetLoc(loc)
	require.Equal(t, loc, n.GetLoc())
}

func TestIdentifierSatisfiesPatternAndExpr(t *testing.T) {
	var _ ast.Expr = &ast.Identifier{}
	var _ ast.Pattern = &ast.Identifier{}
}

func TestBinaryExpressionSatisfiesExprNotStmt(t *testing.T) {
	var _ ast.Expr = &ast.BinaryExpression{}
	_, isStmt := any(&ast.BinaryExpression{}).(ast.Stmt)
	require.False(t, isStmt)
}

func TestNodeInterfaceIsSatisfiedBySeveralKinds(t *testing.T) {
	var nodes []ast.Node = []ast.Node{
		&ast.Identifier{},
		&ast.NumericLiteral{},
		&ast.ThisExpression{},
	}
	require.Len(t, nodes, 3)
}
