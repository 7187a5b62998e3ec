package parser

import "github.com/t14raptor/esparse/ast"

// finish stamps n's Location from start to the end of the most
// recently consumed token, then returns n. This is the position half
// of spec §4.5's createNode/completeNode pair, adapted to construct
// the concrete struct directly rather than through a generic factory.
func finish[N ast.Node](p *Parser, start ast.Position, n N) N {
	n.SetLoc(p.finishLoc(start))
	return n
}

// finishAt is finish but with an explicit end position, used when the
// end is not simply "the last consumed token": binary-expression
// folding and the retroactive body-position updates of spec §2.
func finishAt[N ast.Node](p *Parser, start, end ast.Position, n N) N {
	n.SetLoc(ast.Location{Start: start, End: end})
	return n
}
