// This file contains the binary operator table: the
// C-operator-to-go/token.Token table and pointer arithmetic (the
// assignment / compound-assignment protocol that re-enters this table
// lives in assignment.go), driven by astctx's
// resolved C types and dispatching into the runtime/cptr and
// runtime/cnum support packages rather than synthesizing
// unsafe.Pointer expressions inline.
package transpiler

import (
	"go/ast"
	"go/token"
	"strings"

	"github.com/mbsulliv/c2go/astctx"
	"github.com/mbsulliv/c2go/internal/diag"
	"github.com/mbsulliv/c2go/types"
	"github.com/mbsulliv/c2go/util"
)

// convertBinaryOperator dispatches a BinaryOperator node to the
// assignment protocol or the binary operator table, by operator
// spelling.
func (t *Translation) convertBinaryOperator(id astctx.ID, n astctx.Node) util.WithStmts[ast.Expr] {
	spelling := astctx.ExpectString(n.Extras[0])
	lhsID, rhsID := n.Children[0], n.Children[1]

	if spelling == "=" {
		return t.convertAssignment(id, n, lhsID, rhsID, "")
	}
	if strings.HasSuffix(spelling, "=") && !isComparisonSpelling(spelling) {
		return t.convertAssignment(id, n, lhsID, rhsID, strings.TrimSuffix(spelling, "="))
	}
	return t.convertBinaryValue(id, spelling, lhsID, rhsID)
}

func isComparisonSpelling(s string) bool {
	switch s {
	case "==", "!=", "<=", ">=":
		return true
	}
	return false
}

// convertBinaryValue lowers a non-assignment binary operator: lower
// both operands left-to-right, retaining their resolved C types, then
// delegate to applyBinaryOp for the table itself.
func (t *Translation) convertBinaryValue(id astctx.ID, spelling string, lhsID, rhsID astctx.ID) util.WithStmts[ast.Expr] {
	lhsType := t.ctx.Resolve(t.ctx.Node(lhsID).TypeID)
	rhsType := t.ctx.Resolve(t.ctx.Node(rhsID).TypeID)
	lhsW := t.convertExpr(lhsID)
	rhsW := t.convertExpr(rhsID)
	stmts := append(append([]ast.Stmt{}, lhsW.Stmts...), rhsW.Stmts...)

	val := t.applyBinaryOp(id, spelling, lhsW.Val, lhsType, rhsW.Val, rhsType)
	return util.WithStmts[ast.Expr]{Stmts: stmts, Val: val}
}

// applyBinaryOp is the operator table itself: pointer arithmetic when
// either operand is a pointer, wrapping arithmetic when an operand type
// is unsigned, a C-int-cast comparison for relational/equality
// operators, truthiness-normalized operands for the logical
// connectives, and the native operator otherwise. Kept separate from
// convertBinaryValue so convertAssignment's compound `op=` rewrite
// (lowering the binary *p op rhs, reusing the same operator table) can
// drive it directly from an already-lowered lvalue read, without
// re-lowering anything.
func (t *Translation) applyBinaryOp(id astctx.ID, spelling string, lhsVal ast.Expr, lhsType astctx.Type, rhsVal ast.Expr, rhsType astctx.Type) ast.Expr {
	switch spelling {
	case "+", "-":
		if lhsType.IsPointer() || rhsType.IsPointer() {
			return t.pointerArithmetic(id, spelling, lhsVal, lhsType, rhsVal, rhsType)
		}
	}

	switch spelling {
	case "+", "-", "*", "/", "%":
		if lhsType.IsUnsignedIntegral() || rhsType.IsUnsignedIntegral() {
			return util.NewCallExpr(
				&ast.SelectorExpr{X: ast.NewIdent("cnum"), Sel: ast.NewIdent(wrappingFuncName(spelling))},
				lhsVal, rhsVal)
		}
		tok := tokenForOperator(id, spelling)
		return &ast.BinaryExpr{X: lhsVal, Op: tok, Y: rhsVal}

	case "^", "|", "&", ">>", "<<":
		tok := tokenForOperator(id, spelling)
		return &ast.BinaryExpr{X: lhsVal, Op: tok, Y: rhsVal}

	case "==", "!=":
		if lhsType.IsPointer() || rhsType.IsPointer() {
			return types.BoolToCInt(t.pointerEquality(id, spelling, lhsVal, lhsType, rhsVal, rhsType))
		}
		tok := tokenForOperator(id, spelling)
		return types.BoolToCInt(&ast.BinaryExpr{X: lhsVal, Op: tok, Y: rhsVal})

	case "<", ">", "<=", ">=":
		if lhsType.IsPointer() || rhsType.IsPointer() {
			return types.BoolToCInt(t.pointerOrdering(id, spelling, lhsVal, lhsType, rhsVal, rhsType))
		}
		tok := tokenForOperator(id, spelling)
		return types.BoolToCInt(&ast.BinaryExpr{X: lhsVal, Op: tok, Y: rhsVal})

	case "&&", "||":
		tok := tokenForOperator(id, spelling)
		cmp := &ast.BinaryExpr{X: truthy(lhsVal, lhsType), Op: tok, Y: truthy(rhsVal, rhsType)}
		return types.BoolToCInt(cmp)

	default:
		diag.Unimplementedf(uint64(id), "BinaryOperator", "unhandled binary operator %q", spelling)
		panic("unreachable")
	}
}

// truthy normalizes a C operand used in a boolean context: a native
// Go bool is used as-is, anything else is compared against its zero
// value, matching C's "any nonzero scalar is true" rule.
func truthy(e ast.Expr, t astctx.Type) ast.Expr {
	if t.Tag == "Builtin" && len(t.Extras) > 0 {
		if spelling := astctx.ExpectString(t.Extras[0]); spelling == "_Bool" || spelling == "bool" {
			return e
		}
	}
	return &ast.BinaryExpr{X: e, Op: token.NEQ, Y: &ast.BasicLit{Kind: token.INT, Value: "0"}}
}

func wrappingFuncName(spelling string) string {
	switch spelling {
	case "+":
		return "WrappingAdd"
	case "-":
		return "WrappingSub"
	case "*":
		return "WrappingMul"
	case "/":
		return "WrappingDiv"
	case "%":
		return "WrappingRem"
	}
	panic("unreachable: wrappingFuncName called with non-arithmetic spelling " + spelling)
}

// pointerArithmetic lowers `ptr + n` / `n + ptr` / `ptr - n` to
// cptr.Ptr.Offset, and `ptr - ptr` (pointer difference) to
// cptr.Ptr.OffsetTo.
func (t *Translation) pointerArithmetic(id astctx.ID, spelling string, lhs ast.Expr, lhsType astctx.Type, rhs ast.Expr, rhsType astctx.Type) ast.Expr {
	switch {
	case lhsType.IsPointer() && rhsType.IsPointer():
		if spelling != "-" {
			diag.Unimplementedf(uint64(id), "BinaryOperator", "pointer %s pointer is not pointer difference", spelling)
		}
		// rhs.OffsetTo(lhs) yields lhs - rhs.
		return util.NewCallExpr(&ast.SelectorExpr{X: rhs, Sel: ast.NewIdent("OffsetTo")}, lhs)

	case lhsType.IsPointer():
		n := rhs
		if spelling == "-" {
			n = &ast.UnaryExpr{Op: token.SUB, X: rhs}
		}
		return util.NewCallExpr(&ast.SelectorExpr{X: lhs, Sel: ast.NewIdent("Offset")},
			util.NewCallExpr(ast.NewIdent("int64"), n))

	case rhsType.IsPointer():
		if spelling != "+" {
			diag.Unimplementedf(uint64(id), "BinaryOperator", "int %s pointer is not pointer addition", spelling)
		}
		return util.NewCallExpr(&ast.SelectorExpr{X: rhs, Sel: ast.NewIdent("Offset")},
			util.NewCallExpr(ast.NewIdent("int64"), lhs))
	}
	panic("unreachable: pointerArithmetic called with no pointer operand")
}

// pointerEquality lowers `p == q` / `p != q` where at least one
// operand is a pointer. cptr.Ptr is a struct holding a slice, so Go's
// native `==`/`!=` cannot compare it at all; two real pointers compare
// via Ptr.Eq, and a pointer compared against a literal NULL (the
// ubiquitous `p == NULL` / `p != NULL`) compares via Ptr.IsNil instead,
// since NULL lowers to a bare integer-zero literal, not a Ptr value.
func (t *Translation) pointerEquality(id astctx.ID, spelling string, lhsVal ast.Expr, lhsType astctx.Type, rhsVal ast.Expr, rhsType astctx.Type) ast.Expr {
	var eq ast.Expr
	switch {
	case lhsType.IsPointer() && isNullLiteral(rhsVal):
		eq = util.NewCallExpr(&ast.SelectorExpr{X: lhsVal, Sel: ast.NewIdent("IsNil")})
	case rhsType.IsPointer() && isNullLiteral(lhsVal):
		eq = util.NewCallExpr(&ast.SelectorExpr{X: rhsVal, Sel: ast.NewIdent("IsNil")})
	case lhsType.IsPointer() && rhsType.IsPointer():
		eq = util.NewCallExpr(&ast.SelectorExpr{X: lhsVal, Sel: ast.NewIdent("Eq")}, rhsVal)
	default:
		diag.Unimplementedf(uint64(id), "BinaryOperator", "pointer %s with a non-pointer, non-NULL operand", spelling)
		panic("unreachable")
	}
	if spelling == "!=" {
		return &ast.UnaryExpr{Op: token.NOT, X: eq}
	}
	return eq
}

// pointerOrdering lowers `<`/`>`/`<=`/`>=` between two pointers via
// Ptr.Less, valid only when both operands point into the same object
// (the same precondition C itself places on pointer ordering).
func (t *Translation) pointerOrdering(id astctx.ID, spelling string, lhsVal ast.Expr, lhsType astctx.Type, rhsVal ast.Expr, rhsType astctx.Type) ast.Expr {
	if !lhsType.IsPointer() || !rhsType.IsPointer() {
		diag.Unimplementedf(uint64(id), "BinaryOperator", "pointer %s requires two pointer operands", spelling)
		panic("unreachable")
	}
	less := func(a, b ast.Expr) ast.Expr {
		return util.NewCallExpr(&ast.SelectorExpr{X: a, Sel: ast.NewIdent("Less")}, b)
	}
	switch spelling {
	case "<":
		return less(lhsVal, rhsVal)
	case ">":
		return less(rhsVal, lhsVal)
	case "<=":
		return &ast.UnaryExpr{Op: token.NOT, X: less(rhsVal, lhsVal)}
	case ">=":
		return &ast.UnaryExpr{Op: token.NOT, X: less(lhsVal, rhsVal)}
	}
	panic("unreachable: pointerOrdering called with non-ordering spelling " + spelling)
}

// isNullLiteral reports whether e is the lowering of a C NULL
// constant: ImplicitCastExpr passes a null-to-pointer cast through
// unchanged, so NULL reaches here as the plain integer literal 0 its
// IntegerLiteral child lowers to, not as a Ptr value.
func isNullLiteral(e ast.Expr) bool {
	lit, ok := e.(*ast.BasicLit)
	return ok && lit.Kind == token.INT && lit.Value == "0"
}

// tokenForOperator maps a C operator spelling to its go/token.Token,
// trimmed to the non-assignment, non-unary operators this function is
// ever called for (assignment and compound assignment are rewritten
// by convertAssignment before reaching here; ++/-- are handled in
// unary.go).
func tokenForOperator(id astctx.ID, spelling string) token.Token {
	switch spelling {
	case "+":
		return token.ADD
	case "-":
		return token.SUB
	case "*":
		return token.MUL
	case "/":
		return token.QUO
	case "%":
		return token.REM
	case "&":
		return token.AND
	case "|":
		return token.OR
	case "^":
		return token.XOR
	case ">>":
		return token.SHR
	case "<<":
		return token.SHL
	case ">=":
		return token.GEQ
	case "<=":
		return token.LEQ
	case "<":
		return token.LSS
	case ">":
		return token.GTR
	case "!=":
		return token.NEQ
	case "==":
		return token.EQL
	case "&&":
		return token.LAND
	case "||":
		return token.LOR
	}
	diag.Unimplementedf(uint64(id), "BinaryOperator", "no target operator for C operator %q", spelling)
	panic("unreachable")
}
