package transpiler

import (
	"go/ast"
	"go/token"
	"strconv"

	"github.com/mbsulliv/c2go/astctx"
	"github.com/mbsulliv/c2go/internal/diag"
	"github.com/mbsulliv/c2go/util"
)

// convertExpr lowers one C expression to WithStmts<target expr>.
func (t *Translation) convertExpr(id astctx.ID) util.WithStmts[ast.Expr] {
	n := t.ctx.Node(id)
	switch n.Tag {
	case "DeclRefExpr":
		return t.convertDeclRefExpr(id, n)

	case "IntegerLiteral", "CharacterLiteral":
		v := astctx.ExpectU64(n.Extras[0])
		return util.Pure[ast.Expr](&ast.BasicLit{Kind: token.INT, Value: strconv.FormatUint(v, 10)})

	case "FloatingLiteral":
		v := astctx.ExpectF64(n.Extras[0])
		return util.Pure[ast.Expr](&ast.BasicLit{Kind: token.FLOAT, Value: formatFloat(v)})

	case "ImplicitCastExpr":
		// Pass-through: see conventions.go and DESIGN.md for why this
		// does not yet inspect a CastKind.
		return t.convertExpr(n.Children[0])

	case "CStyleCastExpr":
		inner := t.convertExpr(n.Children[0])
		return util.Map(inner, func(e ast.Expr) ast.Expr { return t.conv.CastExpr(e, n.TypeID) })

	case "ParenExpr":
		inner := t.convertExpr(n.Children[0])
		return util.Map(inner, func(e ast.Expr) ast.Expr { return &ast.ParenExpr{X: e} })

	case "CallExpr":
		return t.convertCallExpr(n)

	case "MemberExpr":
		return t.convertMemberExpr(id, n)

	case "ArraySubscriptExpr":
		return t.convertArraySubscriptExpr(n)

	case "ConditionalOperator":
		return t.convertConditionalOperator(id, n)

	case "UnaryOperator":
		return t.convertUnaryOperator(id, n)

	case "BinaryOperator":
		return t.convertBinaryOperator(id, n)

	default:
		diag.Unimplementedf(uint64(id), n.Tag, "unhandled expression kind")
		panic("unreachable")
	}
}

func (t *Translation) convertDeclRefExpr(id astctx.ID, n astctx.Node) util.WithStmts[ast.Expr] {
	cName := astctx.ExpectString(n.Extras[0])
	goName, ok := t.names.Get(cName)
	if !ok {
		diag.Malformedf(uint64(id), n.Tag, "reference to undeclared name %q", cName)
	}
	return util.Pure[ast.Expr](ast.NewIdent(goName))
}

func (t *Translation) convertCallExpr(n astctx.Node) util.WithStmts[ast.Expr] {
	fn := t.convertExpr(n.Children[0])
	args := util.BindAll(n.Children[1:], func(argID astctx.ID) util.WithStmts[ast.Expr] {
		return t.convertExpr(argID)
	})
	stmts := append(append([]ast.Stmt{}, fn.Stmts...), args.Stmts...)
	return util.WithStmts[ast.Expr]{Stmts: stmts, Val: util.NewCallExpr(fn.Val, args.Val...)}
}

func (t *Translation) convertMemberExpr(id astctx.ID, n astctx.Node) util.WithStmts[ast.Expr] {
	fieldName := astctx.ExpectString(n.Extras[0])
	isArrow := astctx.ExpectU64(n.Extras[1]) != 0
	baseID := n.Children[0]
	goFieldName := t.recordFieldGoName(id, t.ctx.Node(baseID).TypeID, isArrow, fieldName)

	base := t.convertExpr(baseID)
	return util.Map(base, func(b ast.Expr) ast.Expr {
		recv := b
		if isArrow {
			recv = util.NewCallExpr(&ast.SelectorExpr{X: b, Sel: ast.NewIdent("Deref")})
		}
		return &ast.SelectorExpr{X: recv, Sel: ast.NewIdent(goFieldName)}
	})
}

func (t *Translation) convertArraySubscriptExpr(n astctx.Node) util.WithStmts[ast.Expr] {
	base := t.convertExpr(n.Children[0])
	index := t.convertExpr(n.Children[1])
	combined := util.Bind(base, func(b ast.Expr) util.WithStmts[ast.Expr] {
		return util.Map(index, func(i ast.Expr) ast.Expr {
			return util.NewCallExpr(&ast.SelectorExpr{X: b, Sel: ast.NewIdent("Index")},
				util.NewCallExpr(ast.NewIdent("int64"), i))
		})
	})
	return combined
}

// convertConditionalOperator lowers `a ? b : c`. Only the condition's
// prefix is hoisted — the condition is evaluated exactly once — while
// the branches' own prefixes must stay inside their branch, since C
// only evaluates the taken branch. The desugared if/else is wrapped in
// an immediately-invoked closure, since Go has no ternary or inline-if
// expression.
func (t *Translation) convertConditionalOperator(id astctx.ID, n astctx.Node) util.WithStmts[ast.Expr] {
	cond := t.convertExpr(n.Children[0])
	thenW := t.convertExpr(n.Children[1])
	elseW := t.convertExpr(n.Children[2])

	resultType := t.conv.Convert(n.TypeID)

	thenBlock := &ast.BlockStmt{
		List: append(append([]ast.Stmt{}, thenW.Stmts...), &ast.ReturnStmt{Results: []ast.Expr{thenW.Val}}),
	}
	elseBlock := &ast.BlockStmt{
		List: append(append([]ast.Stmt{}, elseW.Stmts...), &ast.ReturnStmt{Results: []ast.Expr{elseW.Val}}),
	}

	closure := util.NewFuncClosure(resultType, &ast.IfStmt{
		Cond: cond.Val,
		Body: thenBlock,
		Else: elseBlock,
	})
	return util.WithStmts[ast.Expr]{Stmts: cond.Stmts, Val: closure}
}

// formatFloat renders v as an unsuffixed decimal float literal,
// always carrying a decimal point or exponent so the target's lexer
// cannot mistake it for an integer literal.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	for _, r := range s {
		if r == '.' || r == 'e' || r == 'E' {
			return s
		}
	}
	return s + ".0"
}
