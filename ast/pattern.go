package ast

// ArrayPattern is a destructuring array pattern. Elements may contain
// nil entries for elisions (spec §3 invariant ii); the final element
// may be a *RestElement, never elsewhere (invariant iii).
type ArrayPattern struct {
	Base
	Elements []Pattern `json:"elements"`
}

func (*ArrayPattern) exprNode()    {}
func (*ArrayPattern) patternNode() {}

// ObjectPattern is a destructuring object pattern.
type ObjectPattern struct {
	Base
	Properties []Node `json:"properties"` // *AssignmentProperty or *RestElement
}

func (*ObjectPattern) exprNode()    {}
func (*ObjectPattern) patternNode() {}

// AssignmentProperty is the pattern-side analogue of Property (spec
// §4.3's conversion rule: "each Property → AssignmentProperty
// preserving key, value, method, shorthand, computed").
type AssignmentProperty struct {
	Base
	Key       Expr    `json:"key"`
	Value     Pattern `json:"value"`
	Kind      string  `json:"kind"` // always "init"
	Method    bool    `json:"method"`
	Shorthand bool    `json:"shorthand"`
	Computed  bool    `json:"computed"`
}

func (*AssignmentProperty) exprNode() {}

// AssignmentPattern is "left = right" inside a binding context (a
// default-valued parameter or destructuring element); produced by the
// expression→pattern converter from an AssignmentExpression whose
// operator is "=" (spec §4.3).
type AssignmentPattern struct {
	Base
	Left  Pattern `json:"left"`
	Right Expr    `json:"right"`
}

func (*AssignmentPattern) exprNode()    {}
func (*AssignmentPattern) patternNode() {}

// RestElement is "...argument" in a binding position: the final
// element of an ArrayPattern, of an ObjectPattern's Properties, or of
// FunctionDeclaration/FunctionExpression/ArrowFunctionExpression params,
// forbidden elsewhere (spec §3 invariant iii).
type RestElement struct {
	Base
	Argument Pattern `json:"argument"`
}

func (*RestElement) exprNode()    {}
func (*RestElement) patternNode() {}
