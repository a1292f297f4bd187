package transpiler

import (
	"go/ast"
	"go/token"

	"github.com/mbsulliv/c2go/astctx"
	"github.com/mbsulliv/c2go/internal/diag"
	"github.com/mbsulliv/c2go/types"
	"github.com/mbsulliv/c2go/util"
)

// convertUnaryOperator lowers UnaryOperator. `&` and the
// increment/decrement pair are the only cases that need the operand as
// an lvalue rather than a plain value; everything else just lowers the
// operand and wraps it.
func (t *Translation) convertUnaryOperator(id astctx.ID, n astctx.Node) util.WithStmts[ast.Expr] {
	spelling := astctx.ExpectString(n.Extras[0])

	switch spelling {
	case "++", "--":
		return t.convertIncDec(id, n, spelling)
	}

	operand := t.convertExpr(n.Children[0])

	switch spelling {
	case "&":
		return util.Map(operand, func(e ast.Expr) ast.Expr {
			addr := util.NewCallExpr(
				&ast.SelectorExpr{X: ast.NewIdent("cptr"), Sel: ast.NewIdent("Addr")},
				&ast.UnaryExpr{Op: token.AND, X: e},
			)
			return t.conv.CastExpr(addr, n.TypeID)
		})

	case "*":
		return util.Map(operand, func(e ast.Expr) ast.Expr {
			return util.NewCallExpr(&ast.SelectorExpr{X: e, Sel: ast.NewIdent("Deref")})
		})

	case "!":
		return util.Map(operand, func(e ast.Expr) ast.Expr {
			return types.BoolToCInt(&ast.UnaryExpr{Op: token.NOT, X: e})
		})

	case "-":
		return util.Map(operand, func(e ast.Expr) ast.Expr { return &ast.UnaryExpr{Op: token.SUB, X: e} })

	case "+":
		return operand

	case "~":
		return util.Map(operand, func(e ast.Expr) ast.Expr { return &ast.UnaryExpr{Op: token.XOR, X: e} })

	default:
		diag.Unimplementedf(uint64(id), n.Tag, "unhandled unary operator %q", spelling)
		panic("unreachable")
	}
}

// convertIncDec lowers prefix/postfix ++/-- on an identifier operand as
// a closure whose pre statements run before the returned value and
// whose post statements run after it, via util.NewAnonymousFunction's
// defer-based implementation: Go evaluates a bare return expression
// before running deferred calls, so deferring the mutation after the
// return statement gives exactly postfix semantics, and running it
// before gives prefix. Only an identifier (DeclRefExpr) operand is
// supported; anything else is an unimplemented construct.
func (t *Translation) convertIncDec(id astctx.ID, n astctx.Node, spelling string) util.WithStmts[ast.Expr] {
	operandID := n.Children[0]
	operandNode := t.ctx.Node(operandID)
	if operandNode.Tag != "DeclRefExpr" {
		diag.Unimplementedf(uint64(id), n.Tag, "++/-- on a non-identifier lvalue")
	}
	cName := astctx.ExpectString(operandNode.Extras[0])
	goName, ok := t.names.Get(cName)
	if !ok {
		diag.Malformedf(uint64(id), n.Tag, "reference to undeclared name %q", cName)
	}
	ident := ast.NewIdent(goName)

	resultType := t.conv.Convert(n.TypeID)
	unsigned := t.ctx.Resolve(n.TypeID).IsUnsignedIntegral()
	one := &ast.BasicLit{Kind: token.INT, Value: "1"}

	var newValue ast.Expr
	switch {
	case unsigned && spelling == "++":
		newValue = util.NewCallExpr(&ast.SelectorExpr{X: ast.NewIdent("cnum"), Sel: ast.NewIdent("WrappingAdd")}, ident, one)
	case unsigned && spelling == "--":
		newValue = util.NewCallExpr(&ast.SelectorExpr{X: ast.NewIdent("cnum"), Sel: ast.NewIdent("WrappingSub")}, ident, one)
	case spelling == "++":
		newValue = &ast.BinaryExpr{X: ident, Op: token.ADD, Y: one}
	default:
		newValue = &ast.BinaryExpr{X: ident, Op: token.SUB, Y: one}
	}
	assign := &ast.AssignStmt{Lhs: []ast.Expr{ident}, Tok: token.ASSIGN, Rhs: []ast.Expr{newValue}}

	isPrefix := astctx.ExpectU64(n.Extras[1]) != 0
	var pre, post []ast.Stmt
	if isPrefix {
		pre = []ast.Stmt{assign}
	} else {
		post = []ast.Stmt{assign}
	}
	return util.Pure[ast.Expr](util.NewAnonymousFunction(pre, post, ident, resultType))
}
