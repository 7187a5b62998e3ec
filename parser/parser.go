// Package parser implements the recursive-descent ES2015 grammar
// engine described in spec §2–§4: the context stack (C1), the grammar
// dispatcher (C2), the expression engine (C3), the strict-mode gate
// (C4), and the position-bookkeeping half of the AST builder (C5),
// which constructs concrete ast package node values directly rather
// than through an intermediate generic "createNode" step.
package parser

import (
	"github.com/rs/zerolog"

	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/parser/scanner"
	"github.com/t14raptor/esparse/token"
)

// context holds the scoped grammar flags of spec §3's ParserContext.
type context struct {
	allowIn     bool
	allowYield  bool
	allowReturn bool
}

// label tracks an in-scope statement label for continue/break
// validation (spec §4.2).
type label struct {
	name   string
	isLoop bool
}

// Parser is the engine described by spec §2. It is single-threaded and
// synchronous (spec §5): every method below runs to completion before
// the next is called, and speculative parses are always fenced by a
// scanner Mark/Reset pair.
type Parser struct {
	sc      *scanner.Scanner
	tok     scanner.Token
	prevEnd ast.Position

	ctx    context
	strict bool
	inModule bool

	labels []label

	options Options
	log     *zerolog.Logger
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithLogger attaches a trace/error logger (SPEC_FULL §B.1). A nil
// logger (the default) disables logging entirely at zero cost.
func WithLogger(l *zerolog.Logger) Option {
	return func(p *Parser) { p.log = l }
}

// New creates a Parser over src configured by opts.
func New(src string, options Options, opts ...Option) *Parser {
	p := &Parser{
		sc:      scanner.NewScanner(src),
		options: options,
	}
	p.sc.AllowHashBang = options.AllowHashBang
	for _, o := range opts {
		o(p)
	}
	p.inModule = options.SourceType == Module
	p.strict = p.inModule
	p.ctx = context{allowIn: true, allowReturn: options.AllowReturnOutsideFunction}
	return p
}

// Parse parses a complete Program from src per options (spec §6). On
// any grammar error it returns (nil, *SyntaxError); the returned
// Program is never partial (spec §6).
func Parse(src string, options Options, opts ...Option) (prog *ast.Program, err error) {
	p := New(src, options, opts...)
	return p.parseTopLevel()
}

// ParseModule parses src as module source type (spec §6), regardless
// of options.SourceType.
func ParseModule(src string, options Options, opts ...Option) (*ast.Program, error) {
	options.SourceType = Module
	return Parse(src, options, opts...)
}

func (p *Parser) parseTopLevel() (prog *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(parseError)
			if !ok {
				panic(r)
			}
			prog = nil
			err = pe.err
		}
	}()
	p.sc.SetStrict(p.strict)
	p.next()
	return p.parseProgram(), nil
}

// next advances to the next token, recording the end position of the
// token just consumed (used by finishLoc and by ASI/noLineTerminators).
func (p *Parser) next() {
	if p.tok.Type != 0 || p.tok.End.Offset != 0 {
		p.prevEnd = p.tok.End
	}
	p.tok = p.sc.Next()
	if err := p.sc.Err(); err != nil {
		p.raise(p.tok.Start, err.Error())
	}
}

// parserState is a snapshot taken for speculative parses (spec §5's
// getState()/setState()); the sole backtracking primitive.
type parserState struct {
	checkpoint scanner.Checkpoint
	tok        scanner.Token
	prevEnd    ast.Position
	strict     bool
}

func (p *Parser) mark() parserState {
	return parserState{checkpoint: p.sc.Mark(), tok: p.tok, prevEnd: p.prevEnd, strict: p.strict}
}

func (p *Parser) restore(s parserState) {
	p.sc.Reset(s.checkpoint)
	p.tok = s.tok
	p.prevEnd = s.prevEnd
	p.strict = s.strict
	p.sc.SetStrict(s.strict)
}

// withContext is the scoped-override primitive of spec §4.1 (C1): it
// saves the current context, applies override, invokes fn, and
// restores the saved context unconditionally on every exit path
// (success, panic from a fatal error, or normal return), matching
// spec §5's "Scoped resources" guarantee.
func withContext[T any](p *Parser, override func(*context), fn func() T) T {
	saved := p.ctx
	if override != nil {
		override(&p.ctx)
	}
	defer func() { p.ctx = saved }()
	return fn()
}

// withStrictSaved saves the strict-mode flag, runs fn, and restores the
// flag in both parser and scanner on every exit path. It is used around
// code that may turn strict mode on locally (a function body's directive
// prologue, a class body) without leaking it to the enclosing scope
// (spec §5 "Scoped resources").
func withStrictSaved[T any](p *Parser, fn func() T) T {
	saved := p.strict
	defer func() {
		p.strict = saved
		p.sc.SetStrict(saved)
	}()
	return fn()
}

// --- token-level helpers (spec §5's consume/isBefore/getToken family,
// adapted to Go's typed token.Token kind rather than literal strings,
// since the scanner already maps every literal spelling onto exactly
// one token.Token constant) ---

func (p *Parser) at(t token.Token) bool { return p.tok.Type == t }

// eat consumes the current token if it matches t, reporting whether it
// did (spec §5 (i): consume).
func (p *Parser) eat(t token.Token) bool {
	if p.tok.Type != t {
		return false
	}
	p.next()
	return true
}

// expect consumes a token of kind t or raises (spec §5 (i)).
func (p *Parser) expect(t token.Token) {
	if !p.eat(t) {
		p.unexpected()
	}
}

// isContextual reports whether the current token is the identifier
// name, used to recognize contextual keywords (let, of, from, as,
// async, get, set, yield, static, target, per spec Design Notes).
func (p *Parser) isContextual(name string) bool {
	return p.tok.Type == token.Identifier && p.tok.StringValue == name
}

func (p *Parser) eatContextual(name string) bool {
	if !p.isContextual(name) {
		return false
	}
	p.next()
	return true
}

func (p *Parser) expectContextual(name string) {
	if !p.eatContextual(name) {
		p.unexpected()
	}
}

// noLineTerminators enforces the restriction that an ASI-sensitive
// production's argument/label must appear on the same logical line
// (spec §4.2): return, continue, break, throw, yield.
func (p *Parser) noLineTerminators() bool {
	return !p.tok.NewlineBefore
}

// canInsertSemicolon reports whether ASI may fire here: an explicit
// ";", an immediate "}", end of input, or a preceding line terminator
// (spec §4.2).
func (p *Parser) canInsertSemicolon() bool {
	return p.tok.Type == token.Semicolon || p.tok.Type == token.RightBrace ||
		p.tok.Type == token.Eof || p.tok.NewlineBefore
}

// assertEndOfStatement consumes an explicit semicolon or relies on ASI
// (spec §4.2). Raises if neither applies.
func (p *Parser) assertEndOfStatement() {
	if p.eat(token.Semicolon) {
		return
	}
	if !p.canInsertSemicolon() {
		p.unexpected()
	}
	if p.log != nil {
		p.log.Trace().Int("offset", p.prevEnd.Offset).Msg("ASI")
	}
}

// --- position bookkeeping (C5) ---

// startPos returns the start position to stamp onto a node about to be
// parsed.
func (p *Parser) startPos() ast.Position { return p.tok.Start }

// finishLoc completes a node's Location, using the end position of the
// token most recently consumed (spec §4.5's finishNode, which stamps
// the *previous* token's end, not the current token's start).
func (p *Parser) finishLoc(start ast.Position) ast.Location {
	return ast.Location{Start: start, End: p.prevEnd}
}

// finishLocAt completes a node's Location at an explicit end position,
// used by retroactive position updates (spec §2).
func (p *Parser) finishLocAt(start, end ast.Position) ast.Location {
	return ast.Location{Start: start, End: end}
}
