package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/t14raptor/esparse/ast"
)

func TestToJSONValueInjectsTypeField(t *testing.T) {
	n := &ast.Identifier{Name: "x"}
	v := ast.ToJSONValue(n).(map[string]any)
	require.Equal(t, "Identifier", v["type"])
	require.Equal(t, "x", v["name"])
}

func TestToJSONValueFlattensEmbeddedBase(t *testing.T) {
	n := &ast.NumericLiteral{Value: 1, Raw: "1"}
	n.SetLoc(ast.Location{Start: ast.Position{Line: 1, Column: 0}, End: ast.Position{Line: 1, Column: 1}})
	v := ast.ToJSONValue(n).(map[string]any)
	loc, ok := v["loc"].(map[string]any)
	require.True(t, ok, "Base's Loc field must be promoted to the top level, not nested under a \"Base\" key")
	start := loc["start"].(map[string]any)
	require.Equal(t, 1, start["line"])
}

func TestToJSONValueRecursesThroughNestedNodes(t *testing.T) {
	n := &ast.BinaryExpression{
		Operator: "+",
		Left:     &ast.Identifier{Name: "a"},
		Right:    &ast.NumericLiteral{Value: 1, Raw: "1"},
	}
	v := ast.ToJSONValue(n).(map[string]any)
	left := v["left"].(map[string]any)
	require.Equal(t, "Identifier", left["type"])
	require.Equal(t, "a", left["name"])
	right := v["right"].(map[string]any)
	require.Equal(t, "NumericLiteral", right["type"])
}

func TestToJSONValueRendersSlices(t *testing.T) {
	n := &ast.ArrayExpression{
		Elements: []ast.Expr{&ast.NumericLiteral{Value: 1, Raw: "1"}, &ast.NumericLiteral{Value: 2, Raw: "2"}},
	}
	v := ast.ToJSONValue(n).(map[string]any)
	elems := v["elements"].([]any)
	require.Len(t, elems, 2)
	require.Equal(t, "NumericLiteral", elems[0].(map[string]any)["type"])
}

func TestToJSONValueEmptyNilSliceIsEmptyArrayNotNull(t *testing.T) {
	n := &ast.ArrayExpression{}
	v := ast.ToJSONValue(n).(map[string]any)
	elems, ok := v["elements"].([]any)
	require.True(t, ok)
	require.Empty(t, elems)
}

func TestToJSONValueNilPointerFieldIsNull(t *testing.T) {
	n := &ast.MetaProperty{Meta: &ast.Identifier{Name: "new"}, Property: nil}
	v := ast.ToJSONValue(n).(map[string]any)
	require.Nil(t, v["property"])
}

func TestToJSONValueNilNodeIsNull(t *testing.T) {
	require.Nil(t, ast.ToJSONValue(nil))
}
