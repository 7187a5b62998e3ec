package ast

// Program is the root node produced by a parse (spec §6): a single
// Program node with SourceType set and Body containing the parsed
// items. Directives holds the literal text of each directive-prologue
// string seen at the top of Body (SPEC_FULL §D.1); "use strict" among
// them is what turns on strict mode for a script.
type Program struct {
	Base
	SourceType string       `json:"sourceType"` // "script" | "module"
	Body       []ModuleItem `json:"body"`
	Directives []string     `json:"directives"`
}

func (*Program) moduleItemNode() {}
