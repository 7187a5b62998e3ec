package parser

import "github.com/t14raptor/esparse/ast"

// toPattern converts an already-parsed expression into the pattern it
// denotes when reinterpreted as an assignment or binding target (spec
// §4.3). Nodes that cannot be targets (a NumericLiteral, a call, a
// compound assignment, a spread that is not the last array element,
// say) are rejected here with "Invalid destructuring assignment target"
// or "Rest element must be last element"; Identifier and
// MemberExpression leaves are accepted as they are.
func (p *Parser) toPattern(e ast.Expr) ast.Pattern {
	switch e := e.(type) {
	case ast.Pattern:
		return e
	case *ast.SpreadElement:
		re := &ast.RestElement{Argument: p.toPattern(e.Argument)}
		re.SetLoc(e.GetLoc())
		return re
	case *ast.ArrayExpression:
		elems := make([]ast.Pattern, len(e.Elements))
		for i, el := range e.Elements {
			if el == nil {
				continue
			}
			if _, isSpread := el.(*ast.SpreadElement); isSpread && i != len(e.Elements)-1 {
				p.raise(el.GetLoc().Start, "Rest element must be last element")
			}
			elems[i] = p.toPattern(el)
		}
		arr := &ast.ArrayPattern{Elements: elems}
		arr.SetLoc(e.GetLoc())
		return arr
	case *ast.ObjectExpression:
		props := make([]ast.Node, len(e.Properties))
		for i, pr := range e.Properties {
			switch pr := pr.(type) {
			case *ast.SpreadElement:
				re := &ast.RestElement{Argument: p.toPattern(pr.Argument)}
				re.SetLoc(pr.GetLoc())
				props[i] = re
			case *ast.Property:
				ap := &ast.AssignmentProperty{
					Key:       pr.Key,
					Kind:      "init",
					Method:    pr.Method,
					Shorthand: pr.Shorthand,
					Computed:  pr.Computed,
					Value:     p.toPattern(pr.Value),
				}
				ap.SetLoc(pr.GetLoc())
				props[i] = ap
			}
		}
		obj := &ast.ObjectPattern{Properties: props}
		obj.SetLoc(e.GetLoc())
		return obj
	case *ast.AssignmentExpression:
		if e.Operator != "=" {
			p.raise(e.GetLoc().Start, "Invalid destructuring assignment target")
		}
		left := p.toPattern(e.Left.(ast.Expr))
		ap := &ast.AssignmentPattern{Left: left, Right: e.Right}
		ap.SetLoc(e.GetLoc())
		return ap
	case *ast.ParenthesizedExpression:
		return p.toPattern(e.Expression)
	default:
		p.raise(e.GetLoc().Start, "Invalid destructuring assignment target")
		return nil
	}
}
