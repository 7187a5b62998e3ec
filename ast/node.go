// Package ast defines the ESTree-shaped abstract syntax tree produced by
// the parser: the Node factory collaborator of the grammar (spec §4.5,
// §3). Every node carries a Location with a start and end source
// position; nodes are created once by the grammar and never mutated
// afterward except for the four retroactive-position cases named in
// spec §2.
package ast

// Position is a single point in the source, both as a byte offset and
// as a 1-based line / 0-based column pair.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"-"`
}

// Location is the start/end span of a node, matching the Token
// {location: {start, end}} shape described in spec §3.
type Location struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Base is embedded by every concrete node type. It supplies the Loc
// field and the Node interface's accessor/mutator, so the grammar can
// stamp positions uniformly (spec §4.5's createNode/completeNode).
type Base struct {
	Loc Location `json:"loc"`
}

// GetLoc returns the node's source span.
func (b *Base) GetLoc() Location { return b.Loc }

// SetLoc overwrites the node's source span. Used both by normal node
// completion and by the retroactive position updates spec §2 allows
// (function/class/arrow bodies).
func (b *Base) SetLoc(l Location) { b.Loc = l }

// Node is satisfied by every AST node.
type Node interface {
	GetLoc() Location
	SetLoc(Location)
}

// Expr is satisfied by every expression node, including pattern nodes
// that appear in expression position after the expression→pattern
// rewrite (spec §4.3).
type Expr interface {
	Node
	exprNode()
}

// Stmt is satisfied by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Pattern is satisfied by binding-pattern nodes: Identifier,
// ArrayPattern, ObjectPattern, AssignmentPattern, RestElement, and
// MemberExpression (a valid assignment target, though never a valid
// binding target. The expression→pattern rewrite is shallow per spec
// §9 and does not reject this case).
type Pattern interface {
	Expr
	patternNode()
}

// ModuleItem is satisfied by top-level items valid in module source
// type: statements, plus import/export declarations.
type ModuleItem interface {
	Node
	moduleItemNode()
}
