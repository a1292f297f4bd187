package util

import (
	"go/ast"
	"go/token"
)

// NewIdent is a thin alias for ast.NewIdent, kept as its own entry
// point so every other builder in this package reads uniformly as
// util.New*.
func NewIdent(name string) *ast.Ident { return ast.NewIdent(name) }

// NewNil is the target-language spelling of a NULL pointer constant
// where the type converter cannot supply a concrete pointer type (e.g.
// a bare `(0)` NULL macro expansion seen in a ParenExpr).
func NewNil() ast.Expr { return ast.NewIdent("nil") }

// NewCallExpr builds `fn(args...)`.
func NewCallExpr(fn ast.Expr, args ...ast.Expr) *ast.CallExpr {
	return &ast.CallExpr{Fun: fn, Args: args}
}

// NewBinaryExpr builds `x op y` with a go/token.Token operator.
func NewBinaryExpr(x ast.Expr, op token.Token, y ast.Expr) *ast.BinaryExpr {
	return &ast.BinaryExpr{X: x, Op: op, Y: y}
}

// NewFuncClosure wraps a single statement (typically an IfStmt) as an
// immediately-invoked, argument-less closure returning resultType,
// e.g. `func() int32 { if cond { return b } else { return c } }()`.
// C's ternary has no direct Go expression form, so it is lowered to a
// call of a closure whose whole body is the desugared if/else.
func NewFuncClosure(resultType ast.Expr, body ast.Stmt) *ast.CallExpr {
	ftype := &ast.FuncType{}
	if resultType != nil {
		ftype.Results = &ast.FieldList{List: []*ast.Field{{Type: resultType}}}
	}
	lit := &ast.FuncLit{
		Type: ftype,
		Body: &ast.BlockStmt{List: []ast.Stmt{body}},
	}
	return &ast.CallExpr{Fun: lit}
}

// NewImmediateClosure wraps prefix statements followed by a trailing
// return of value as an immediately-invoked closure, the target's
// stand-in for a block expression.
func NewImmediateClosure(prefix []ast.Stmt, value ast.Expr, resultType ast.Expr) ast.Expr {
	body := make([]ast.Stmt, 0, len(prefix)+1)
	body = append(body, prefix...)
	body = append(body, &ast.ReturnStmt{Results: []ast.Expr{value}})
	ftype := &ast.FuncType{
		Results: &ast.FieldList{List: []*ast.Field{{Type: resultType}}},
	}
	lit := &ast.FuncLit{Type: ftype, Body: &ast.BlockStmt{List: body}}
	return &ast.CallExpr{Fun: lit}
}

// NewAnonymousFunction is the pre/post-increment closure shape for
// UnaryOperator `++`/`--`: pre statements run first, then result is
// evaluated and returned, then post statements run (via defer, since Go
// evaluates a bare return expression before running deferred calls),
// giving prefix semantics when post is empty and postfix semantics
// when pre is empty and post carries the increment.
func NewAnonymousFunction(pre []ast.Stmt, post []ast.Stmt, result ast.Expr, resultType ast.Expr) ast.Expr {
	body := make([]ast.Stmt, 0, len(pre)+2)
	body = append(body, pre...)
	if len(post) > 0 {
		body = append(body, &ast.DeferStmt{
			Call: &ast.CallExpr{Fun: &ast.FuncLit{
				Type: &ast.FuncType{},
				Body: &ast.BlockStmt{List: post},
			}},
		})
	}
	body = append(body, &ast.ReturnStmt{Results: []ast.Expr{result}})
	ftype := &ast.FuncType{Results: &ast.FieldList{List: []*ast.Field{{Type: resultType}}}}
	lit := &ast.FuncLit{Type: ftype, Body: &ast.BlockStmt{List: body}}
	return &ast.CallExpr{Fun: lit}
}

// ExprStmt wraps an expression discarded for its side effects.
func ExprStmt(e ast.Expr) ast.Stmt { return &ast.ExprStmt{X: e} }
