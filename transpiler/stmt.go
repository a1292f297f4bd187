package transpiler

import (
	"go/ast"
	"go/token"

	"github.com/mbsulliv/c2go/astctx"
	"github.com/mbsulliv/c2go/internal/diag"
	"github.com/mbsulliv/c2go/util"
)

// convertBlock lowers a CompoundStmt to a target block, pushing and
// popping a scope around it: AddScope/DropScope calls balance on every
// exit path, since there is exactly one DropScope per convertBlock
// call, reached whether the loop above ran zero or many iterations.
func (t *Translation) convertBlock(id astctx.ID) *ast.BlockStmt {
	n := t.ctx.Node(id)
	if n.Tag != "CompoundStmt" {
		diag.Malformedf(uint64(id), n.Tag, "expected CompoundStmt")
	}
	t.names.AddScope()
	var list []ast.Stmt
	for _, childID := range n.Children {
		list = append(list, t.convertStmt(childID)...)
	}
	t.names.DropScope()
	return &ast.BlockStmt{List: list}
}

// convertStmt lowers one C statement to zero or more target
// statements.
func (t *Translation) convertStmt(id astctx.ID) []ast.Stmt {
	n := t.ctx.Node(id)
	switch n.Tag {
	case "CompoundStmt":
		return []ast.Stmt{t.convertBlock(id)}

	case "NullStmt":
		return nil

	case "DeclStmt":
		var stmts []ast.Stmt
		for _, declID := range n.Children {
			dn := t.ctx.Node(declID)
			switch dn.Tag {
			case "VarDecl":
				stmts = append(stmts, t.convertLocalVarDecl(declID, dn)...)
			default:
				diag.Unimplementedf(uint64(declID), dn.Tag, "unhandled declaration inside DeclStmt")
			}
		}
		return stmts

	case "ReturnStmt":
		if !n.Children[0].Valid() {
			return []ast.Stmt{&ast.ReturnStmt{}}
		}
		w := t.convertExpr(n.Children[0])
		return append(append([]ast.Stmt{}, w.Stmts...), &ast.ReturnStmt{Results: []ast.Expr{w.Val}})

	case "IfStmt":
		cond := t.convertExpr(n.Children[0])
		thenBlock := t.convertStmtAsBlock(n.Children[1])
		var elseStmt ast.Stmt
		if n.Children[2].Valid() {
			elseStmt = t.convertStmtAsBlock(n.Children[2])
		}
		stmts := append([]ast.Stmt{}, cond.Stmts...)
		stmts = append(stmts, &ast.IfStmt{Cond: cond.Val, Body: thenBlock, Else: elseStmt})
		return stmts

	case "WhileStmt":
		condW := t.convertExpr(n.Children[0])
		condExpr := util.Collapse(condW, ast.NewIdent("bool"))
		body := t.convertStmtAsBlock(n.Children[1])
		return []ast.Stmt{&ast.ForStmt{Cond: condExpr, Body: body}}

	case "DoStmt":
		body := t.convertStmtAsBlock(n.Children[0])
		condW := t.convertExpr(n.Children[1])
		breakIf := &ast.IfStmt{
			Cond: &ast.UnaryExpr{Op: token.NOT, X: condW.Val},
			Body: &ast.BlockStmt{List: []ast.Stmt{&ast.BranchStmt{Tok: token.BREAK}}},
		}
		loopBody := append(append([]ast.Stmt{}, body.List...), condW.Stmts...)
		loopBody = append(loopBody, breakIf)
		return []ast.Stmt{&ast.ForStmt{Body: &ast.BlockStmt{List: loopBody}}}

	case "ForStmt":
		return t.convertForStmt(id, n)

	default:
		return statementize(t.convertExpr(id))
	}
}

// statementize turns an expression lowered for its side effects (the
// default case above: a bare top-level C expression statement) into
// target statements. Only a call expression is legal as a bare Go
// ExpressionStmt — a plain identifier (an assignment to a DeclRefExpr
// lvalue) or a non-arrow field selector (an assignment to a MemberExpr
// lvalue) is not. Those lvalues' writes already landed in w.Stmts via
// convertAssignment, so the trailing "read the new value" in w.Val
// exists only for an enclosing expression that actually wants it;
// dropped here, it is simply never evaluated, matching C's "a
// statement-level assignment's value is unused" rule.
func statementize(w util.WithStmts[ast.Expr]) []ast.Stmt {
	if call, ok := w.Val.(*ast.CallExpr); ok {
		return append(append([]ast.Stmt{}, w.Stmts...), util.ExprStmt(call))
	}
	return append([]ast.Stmt{}, w.Stmts...)
}

// convertStmtAsBlock lowers a statement that must appear as a target
// block (an if/while/do body), wrapping a non-CompoundStmt single
// statement (C permits an unbraced if/while body) in a synthetic
// block so the target always has a brace-delimited body.
func (t *Translation) convertStmtAsBlock(id astctx.ID) *ast.BlockStmt {
	if t.ctx.Node(id).Tag == "CompoundStmt" {
		return t.convertBlock(id)
	}
	return &ast.BlockStmt{List: t.convertStmt(id)}
}

// convertForStmt desugars C's for(init; cond; inc) into the same shape
// as a while loop: a DeclStmt-or-expr init executed once before the
// loop, a condition defaulting to "true" when absent, and the
// increment appended to the end of the body, rather than hand-rolling
// a separate three-clause loop lowering. C scopes a for-loop's init
// declaration to the statement itself, not the enclosing block, so the
// whole lowering is bracketed in AddScope/DropScope and wrapped in its
// own ast.BlockStmt, the same way convertBlock brackets a CompoundStmt
// in both a renamer scope and a real Go block — otherwise two sibling
// `for (int i = 0; ...)` loops in one function would collide inserting
// "i" into the same enclosing renamer scope twice. With the scope, the
// second loop's "i" is renamed to a distinct Go name ("i_1").
func (t *Translation) convertForStmt(id astctx.ID, n astctx.Node) []ast.Stmt {
	t.names.AddScope()
	defer t.names.DropScope()

	var stmts []ast.Stmt
	if initID := n.Children[0]; initID.Valid() {
		stmts = append(stmts, t.convertStmt(initID)...)
	}

	var condExpr ast.Expr = ast.NewIdent("true")
	if condID := n.Children[1]; condID.Valid() {
		condW := t.convertExpr(condID)
		condExpr = util.Collapse(condW, ast.NewIdent("bool"))
	}

	body := t.convertStmtAsBlock(n.Children[3])
	if incID := n.Children[2]; incID.Valid() {
		body.List = append(body.List, statementize(t.convertExpr(incID))...)
	}

	stmts = append(stmts, &ast.ForStmt{Cond: condExpr, Body: body})
	return []ast.Stmt{&ast.BlockStmt{List: stmts}}
}
