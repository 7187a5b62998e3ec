package parser

// SourceType selects whether a program is parsed as a script or a
// module (spec §6). Module source type turns strict mode on from the
// first token.
type SourceType string

const (
	Script SourceType = "script"
	Module SourceType = "module"
)

// Options configures a parse (SPEC_FULL §B.3).
type Options struct {
	SourceType SourceType
	// Locations is on in DefaultOptions. The parser does not read it:
	// every node gets a Location (line/column start and end) whatever
	// this field says, since SPEC_FULL makes position bookkeeping
	// universal rather than opt-in, unlike upstream acorn where
	// `locations` defaults off.
	Locations bool
	// AllowReturnOutsideFunction sets the initial allowReturn context
	// flag. When it is false, a "return" statement outside any function
	// body is a SyntaxError ("'return' outside of function").
	AllowReturnOutsideFunction bool
	// AllowHashBang allows a leading "#!..." line, treated as a
	// comment (SPEC_FULL §D.5).
	AllowHashBang bool
	// AllowReserved turns off the rejection of "eval", "arguments" and
	// the strict-mode reserved words as identifiers in strict-mode code
	// and in class names. Keywords proper are still rejected.
	AllowReserved bool
}

// DefaultOptions returns the Options used when none are given.
func DefaultOptions() Options {
	return Options{SourceType: Script, Locations: true}
}
