package ast

// ImportDefaultSpecifier is the "id" of "import id from 'mod'".
type ImportDefaultSpecifier struct {
	Base
	Local *Identifier `json:"local"`
}

// ImportNamespaceSpecifier is "* as id" of "import * as id from 'mod'".
type ImportNamespaceSpecifier struct {
	Base
	Local *Identifier `json:"local"`
}

// ImportSpecifier is one "imported [as local]" entry of a named import
// list.
type ImportSpecifier struct {
	Base
	Imported *Identifier `json:"imported"`
	Local    *Identifier `json:"local"`
}

// ImportDeclaration is "import ... from 'source';" in any of its forms
// (default, namespace, named, or side-effect-only).
type ImportDeclaration struct {
	Base
	Specifiers []Node        `json:"specifiers"` // *ImportDefaultSpecifier | *ImportNamespaceSpecifier | *ImportSpecifier
	Source     *StringLiteral `json:"source"`
}

func (*ImportDeclaration) moduleItemNode() {}

// ExportSpecifier is one "local [as exported]" entry of a named export
// list.
type ExportSpecifier struct {
	Base
	Local    *Identifier `json:"local"`
	Exported *Identifier `json:"exported"`
}

// ExportNamedDeclaration is "export declaration;" or
// "export { specifiers } [from 'source'];".
type ExportNamedDeclaration struct {
	Base
	Declaration Node               `json:"declaration"` // *VariableDeclaration | *FunctionDeclaration | *ClassDeclaration | nil
	Specifiers  []*ExportSpecifier `json:"specifiers"`
	Source      *StringLiteral     `json:"source"`
}

func (*ExportNamedDeclaration) moduleItemNode() {}

// ExportDefaultDeclaration is "export default declaration;".
type ExportDefaultDeclaration struct {
	Base
	Declaration Node `json:"declaration"` // *FunctionDeclaration | *ClassDeclaration | Expr
}

func (*ExportDefaultDeclaration) moduleItemNode() {}

// ExportAllDeclaration is "export * from 'source';".
type ExportAllDeclaration struct {
	Base
	Source *StringLiteral `json:"source"`
}

func (*ExportAllDeclaration) moduleItemNode() {}
