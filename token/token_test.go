package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/t14raptor/esparse/token"
)

func TestKeywordLooksUpReservedWords(t *testing.T) {
	tok, ok := token.Keyword("while")
	require.True(t, ok)
	require.Equal(t, token.While, tok)

	_, ok = token.Keyword("async")
	require.False(t, ok, "contextual keywords are lexed as Identifier, not reserved")
}

func TestIsFutureReservedStrict(t *testing.T) {
	require.True(t, token.IsFutureReservedStrict("let"))
	require.True(t, token.IsFutureReservedStrict("yield"))
	require.False(t, token.IsFutureReservedStrict("while"))
	require.False(t, token.IsFutureReservedStrict("x"))
}

func TestBinaryGradeOrdering(t *testing.T) {
	require.Less(t, token.BinaryGrade(token.LogicalOr, true), token.BinaryGrade(token.LogicalAnd, true))
	require.Less(t, token.BinaryGrade(token.Or, true), token.BinaryGrade(token.ExclusiveOr, true))
	require.Less(t, token.BinaryGrade(token.ExclusiveOr, true), token.BinaryGrade(token.And, true))
	require.Less(t, token.BinaryGrade(token.Equal, true), token.BinaryGrade(token.Less, true))
	require.Less(t, token.BinaryGrade(token.Less, true), token.BinaryGrade(token.ShiftLeft, true))
	require.Less(t, token.BinaryGrade(token.ShiftLeft, true), token.BinaryGrade(token.Plus, true))
	require.Less(t, token.BinaryGrade(token.Plus, true), token.BinaryGrade(token.Multiply, true))
}

func TestBinaryGradeInRespectsAllowIn(t *testing.T) {
	require.Equal(t, 6, token.BinaryGrade(token.In, true))
	require.Equal(t, token.GradeNone, token.BinaryGrade(token.In, false))
}

func TestBinaryGradeNonOperator(t *testing.T) {
	require.Equal(t, token.GradeNone, token.BinaryGrade(token.Identifier, true))
}

func TestIsLogical(t *testing.T) {
	require.True(t, token.IsLogical(token.BinaryGrade(token.LogicalAnd, true)))
	require.True(t, token.IsLogical(token.BinaryGrade(token.LogicalOr, true)))
	require.False(t, token.IsLogical(token.BinaryGrade(token.Or, true)))
	require.False(t, token.IsLogical(token.GradeNone))
}

func TestIsAssignOp(t *testing.T) {
	require.True(t, token.IsAssignOp(token.Assign))
	require.True(t, token.IsAssignOp(token.UnsignedShiftRightAssign))
	require.False(t, token.IsAssignOp(token.Equal))
}

func TestIsPrefixUnaryOp(t *testing.T) {
	require.True(t, token.IsPrefixUnaryOp(token.Delete))
	require.True(t, token.IsPrefixUnaryOp(token.Not))
	require.False(t, token.IsPrefixUnaryOp(token.Arrow))
}

func TestIsUpdateOp(t *testing.T) {
	require.True(t, token.IsUpdateOp(token.Increment))
	require.True(t, token.IsUpdateOp(token.Decrement))
	require.False(t, token.IsUpdateOp(token.Plus))
}

func TestStringFallsBackForUnknownToken(t *testing.T) {
	require.Equal(t, "while", token.While.String())
	require.Equal(t, "EOF", token.Eof.String())
	require.Equal(t, "token(9999)", token.Token(9999).String())
}
