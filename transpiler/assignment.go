package transpiler

import (
	"go/ast"
	"go/token"

	"github.com/mbsulliv/c2go/astctx"
	"github.com/mbsulliv/c2go/internal/diag"
	"github.com/mbsulliv/c2go/util"
)

// lvalue is an assignment target materialized exactly once: read
// yields the current value, write yields the statement that stores a
// new one. Both close over whatever prefix statements and fresh
// temporaries computeLvalue needed to guarantee the lhs is evaluated a
// single time.
type lvalue struct {
	read  func() ast.Expr
	write func(value ast.Expr) ast.Stmt
}

// convertAssignment implements the assignment and compound-assignment
// protocol: materialize the lhs lvalue once, evaluate rhs, store, and
// yield the stored value. baseOp is "" for plain `=`, or the bare
// operator ("+" for "+=", etc.) for a compound assignment, which is
// rewritten as `lhs = lhs baseOp rhs` by re-entering the operator table
// via applyBinaryOp — so unsigned wrap, pointer arithmetic and the rest
// compose for free.
func (t *Translation) convertAssignment(id astctx.ID, n astctx.Node, lhsID, rhsID astctx.ID, baseOp string) util.WithStmts[ast.Expr] {
	prefix, lv := t.computeLvalue(lhsID)
	rhsW := t.convertExpr(rhsID)

	stmts := append(append([]ast.Stmt{}, prefix...), rhsW.Stmts...)

	var newValue ast.Expr
	if baseOp == "" {
		newValue = rhsW.Val
	} else {
		lhsType := t.ctx.Resolve(t.ctx.Node(lhsID).TypeID)
		rhsType := t.ctx.Resolve(t.ctx.Node(rhsID).TypeID)
		newValue = t.applyBinaryOp(id, baseOp, lv.read(), lhsType, rhsW.Val, rhsType)
	}

	stmts = append(stmts, lv.write(newValue))
	return util.WithStmts[ast.Expr]{Stmts: stmts, Val: lv.read()}
}

// computeLvalue materializes an lhs expression as an lvalue,
// introducing a fresh renamer temporary to bind any subexpression that
// is not already side-effect-free to evaluate twice (a function-call
// base, an arbitrary pointer expression, a computed index) — the
// "bind a fresh temporary p as a mutable reference to the lhs lvalue"
// step of the protocol. A bare identifier needs no temporary: naming
// it twice reads the same storage both times.
func (t *Translation) computeLvalue(id astctx.ID) ([]ast.Stmt, lvalue) {
	n := t.ctx.Node(id)
	switch n.Tag {
	case "DeclRefExpr":
		cName := astctx.ExpectString(n.Extras[0])
		goName, ok := t.names.Get(cName)
		if !ok {
			diag.Malformedf(uint64(id), n.Tag, "reference to undeclared name %q", cName)
		}
		ident := ast.NewIdent(goName)
		return nil, lvalue{
			read:  func() ast.Expr { return ident },
			write: func(v ast.Expr) ast.Stmt { return &ast.AssignStmt{Lhs: []ast.Expr{ident}, Tok: token.ASSIGN, Rhs: []ast.Expr{v}} },
		}

	case "UnaryOperator":
		if astctx.ExpectString(n.Extras[0]) != "*" {
			diag.Unimplementedf(uint64(id), n.Tag, "assignment through a non-dereference unary lvalue")
		}
		ptrW := t.convertExpr(n.Children[0])
		tmp := ast.NewIdent(t.names.Fresh())
		prefix := append(append([]ast.Stmt{}, ptrW.Stmts...), &ast.AssignStmt{
			Lhs: []ast.Expr{tmp}, Tok: token.DEFINE, Rhs: []ast.Expr{ptrW.Val},
		})
		return prefix, lvalue{
			read:  func() ast.Expr { return util.NewCallExpr(&ast.SelectorExpr{X: tmp, Sel: ast.NewIdent("Deref")}) },
			write: func(v ast.Expr) ast.Stmt { return util.ExprStmt(util.NewCallExpr(&ast.SelectorExpr{X: tmp, Sel: ast.NewIdent("Set")}, v)) },
		}

	case "MemberExpr":
		fieldName := astctx.ExpectString(n.Extras[0])
		isArrow := astctx.ExpectU64(n.Extras[1]) != 0
		baseID := n.Children[0]
		goFieldName := t.recordFieldGoName(id, t.ctx.Node(baseID).TypeID, isArrow, fieldName)
		baseW := t.convertExpr(baseID)
		baseVal := baseW.Val
		if !isArrow {
			// Bind the base by address so the store below reaches the
			// original struct rather than a copy of it.
			baseVal = &ast.UnaryExpr{Op: token.AND, X: baseW.Val}
		}
		tmp := ast.NewIdent(t.names.Fresh())
		prefix := append(append([]ast.Stmt{}, baseW.Stmts...), &ast.AssignStmt{
			Lhs: []ast.Expr{tmp}, Tok: token.DEFINE, Rhs: []ast.Expr{baseVal},
		})
		recv := func() ast.Expr {
			if isArrow {
				return util.NewCallExpr(&ast.SelectorExpr{X: tmp, Sel: ast.NewIdent("Deref")})
			}
			return tmp
		}
		field := ast.NewIdent(goFieldName)
		return prefix, lvalue{
			read: func() ast.Expr { return &ast.SelectorExpr{X: recv(), Sel: field} },
			write: func(v ast.Expr) ast.Stmt {
				return &ast.AssignStmt{Lhs: []ast.Expr{&ast.SelectorExpr{X: recv(), Sel: field}}, Tok: token.ASSIGN, Rhs: []ast.Expr{v}}
			},
		}

	case "ArraySubscriptExpr":
		baseW := t.convertExpr(n.Children[0])
		idxW := t.convertExpr(n.Children[1])
		baseTmp := ast.NewIdent(t.names.Fresh())
		idxTmp := ast.NewIdent(t.names.Fresh())
		prefix := append(append([]ast.Stmt{}, baseW.Stmts...),
			&ast.AssignStmt{Lhs: []ast.Expr{baseTmp}, Tok: token.DEFINE, Rhs: []ast.Expr{baseW.Val}})
		prefix = append(prefix, idxW.Stmts...)
		prefix = append(prefix, &ast.AssignStmt{
			Lhs: []ast.Expr{idxTmp}, Tok: token.DEFINE,
			Rhs: []ast.Expr{util.NewCallExpr(ast.NewIdent("int64"), idxW.Val)},
		})
		return prefix, lvalue{
			read: func() ast.Expr {
				return util.NewCallExpr(&ast.SelectorExpr{X: baseTmp, Sel: ast.NewIdent("Index")}, idxTmp)
			},
			write: func(v ast.Expr) ast.Stmt {
				return util.ExprStmt(util.NewCallExpr(&ast.SelectorExpr{X: baseTmp, Sel: ast.NewIdent("SetAt")}, idxTmp, v))
			},
		}

	default:
		diag.Unimplementedf(uint64(id), n.Tag, "unhandled assignment lvalue kind")
		panic("unreachable")
	}
}
