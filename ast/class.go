package ast

// ClassExpression is "class [name] [extends superClass] { body }" in
// expression position.
type ClassExpression struct {
	Base
	Id         *Identifier `json:"id"`
	SuperClass Expr        `json:"superClass"`
	Body       *ClassBody  `json:"body"`
}

func (*ClassExpression) exprNode() {}

// ClassBody is the "{ elements... }" of a class.
type ClassBody struct {
	Base
	Body []*MethodDefinition `json:"body"`
}

// MethodDefinition is one class element: a method, getter, setter, or
// constructor (spec §4.2 "Class elements"/"Method definitions"). A
// bare ";" class element is skipped by the grammar and never produces
// a node.
type MethodDefinition struct {
	Base
	Key      Expr                 `json:"key"`
	Value    *FunctionExpression `json:"value"`
	Kind     string               `json:"kind"` // "constructor" | "method" | "get" | "set"
	Computed bool                 `json:"computed"`
	Static   bool                 `json:"static"`
}
