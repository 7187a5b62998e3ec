package ast

// Identifier is a binding or reference identifier. It doubles as a
// Pattern: an identifier is itself a valid binding target, so no
// separate "IdentifierPattern" node exists (matching ESTree).
type Identifier struct {
	Base
	Name string `json:"name"`
}

func (*Identifier) exprNode()    {}
func (*Identifier) patternNode() {}

// ThisExpression is the "this" keyword.
type ThisExpression struct {
	Base
}

func (*ThisExpression) exprNode() {}

// Super is the "super" keyword, valid only as the object of a
// MemberExpression or the callee of a CallExpression (spec §4.3 LHS
// composition: "super-property-or-call").
type Super struct {
	Base
}

func (*Super) exprNode() {}

// MetaProperty is "new.target" (spec §4.3's LHS composition sub-
// production for leading new tokens).
type MetaProperty struct {
	Base
	Meta     *Identifier `json:"meta"`
	Property *Identifier `json:"property"`
}

func (*MetaProperty) exprNode() {}
