package transpiler

import (
	"bytes"
	"go/printer"
	"go/token"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/mbsulliv/c2go/astctx"
)

// TestLoopTranslationSnapshot lowers a while loop with a compound
// assignment and snapshots the printed Go source, rather than
// asserting it field by field.
func TestLoopTranslationSnapshot(t *testing.T) {
	const intType astctx.ID = 1
	ctx := &astctx.Context{
		TopNodes: []astctx.ID{1},
		Types:    map[astctx.ID]astctx.Type{intType: builtin("int", false)},
		Nodes: map[astctx.ID]astctx.Node{
			1: declNode("FunctionDecl", "sum_to", intType, 2, 3),
			2: {Tag: "CompoundStmt", Children: []astctx.ID{4, 5, 8}},
			3: declNode("ParmVarDecl", "n", intType),

			// int total = 0;
			4:  {Tag: "DeclStmt", Children: []astctx.ID{40}},
			40: {Tag: "VarDecl", TypeID: intType, Children: []astctx.ID{61}, Extras: []astctx.Scalar{astctx.String("total")}},

			// while (n > 0) { total = total + n; n -= 1; }
			5:  {Tag: "WhileStmt", Children: []astctx.ID{6, 7}},
			6:  {Tag: "BinaryOperator", TypeID: intType, Children: []astctx.ID{60, 61}, Extras: []astctx.Scalar{astctx.String(">")}},
			60: {Tag: "DeclRefExpr", TypeID: intType, Extras: []astctx.Scalar{astctx.String("n")}},
			61: {Tag: "IntegerLiteral", TypeID: intType, Extras: []astctx.Scalar{astctx.U64(0)}},
			7:  {Tag: "CompoundStmt", Children: []astctx.ID{70, 75}},
			70: {Tag: "BinaryOperator", TypeID: intType, Children: []astctx.ID{71, 72}, Extras: []astctx.Scalar{astctx.String("=")}},
			71: {Tag: "DeclRefExpr", TypeID: intType, Extras: []astctx.Scalar{astctx.String("total")}},
			72: {Tag: "BinaryOperator", TypeID: intType, Children: []astctx.ID{73, 74}, Extras: []astctx.Scalar{astctx.String("+")}},
			73: {Tag: "DeclRefExpr", TypeID: intType, Extras: []astctx.Scalar{astctx.String("total")}},
			74: {Tag: "DeclRefExpr", TypeID: intType, Extras: []astctx.Scalar{astctx.String("n")}},
			75: {Tag: "BinaryOperator", TypeID: intType, Children: []astctx.ID{76, 77}, Extras: []astctx.Scalar{astctx.String("-=")}},
			76: {Tag: "DeclRefExpr", TypeID: intType, Extras: []astctx.Scalar{astctx.String("n")}},
			77: {Tag: "IntegerLiteral", TypeID: intType, Extras: []astctx.Scalar{astctx.U64(1)}},

			// return total;
			8: {Tag: "ReturnStmt", Children: []astctx.ID{80}},
			80: {Tag: "DeclRefExpr", TypeID: intType, Extras: []astctx.Scalar{astctx.String("total")}},
		},
	}

	tr := New(ctx)
	tr.Translate()
	file := tr.Emit("main")

	var buf bytes.Buffer
	if err := printer.Fprint(&buf, token.NewFileSet(), file); err != nil {
		t.Fatalf("printing emitted file: %v", err)
	}

	snaps.MatchSnapshot(t, "sum_to", buf.String())
}
