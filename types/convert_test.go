package types

import (
	"go/ast"
	"testing"

	"github.com/mbsulliv/c2go/astctx"
)

func builtin(spelling string, unsigned bool) astctx.Type {
	return astctx.Type{Tag: "Builtin", Unsigned: unsigned, Extras: []astctx.Scalar{astctx.String(spelling)}}
}

func newTestContext(types map[astctx.ID]astctx.Type) *astctx.Context {
	return &astctx.Context{Nodes: map[astctx.ID]astctx.Node{}, Types: types}
}

func TestConvertMapsSignedAndUnsignedBuiltins(t *testing.T) {
	ctx := newTestContext(map[astctx.ID]astctx.Type{
		1: builtin("int", false),
		2: builtin("unsigned int", true),
		3: builtin("double", false),
		4: builtin("_Bool", false),
	})
	conv := New(ctx)

	cases := []struct {
		id   astctx.ID
		want string
	}{
		{1, "int32"},
		{2, "uint32"},
		{3, "float64"},
		{4, "bool"},
	}
	for _, c := range cases {
		if got := String(conv.Convert(c.id)); got != c.want {
			t.Errorf("Convert(%d) = %q, want %q", c.id, got, c.want)
		}
	}
}

func TestConvertIsMemoized(t *testing.T) {
	ctx := newTestContext(map[astctx.ID]astctx.Type{1: builtin("int", false)})
	conv := New(ctx)
	first := conv.Convert(1)
	second := conv.Convert(1)
	if first != second {
		t.Fatalf("expected Convert to return the identical cached ast.Expr on repeat calls")
	}
}

func TestConvertPointerWrapsCptrPtr(t *testing.T) {
	ctx := newTestContext(map[astctx.ID]astctx.Type{
		1: builtin("int", false),
		2: {Tag: "Pointer", Pointee: 1},
	})
	conv := New(ctx)
	if got, want := String(conv.Convert(2)), "cptr.Ptr[int32]"; got != want {
		t.Fatalf("Convert(pointer-to-int) = %q, want %q", got, want)
	}
}

func TestCastExprOnVoidIsIdentity(t *testing.T) {
	ctx := newTestContext(map[astctx.ID]astctx.Type{1: builtin("void", false)})
	conv := New(ctx)
	x := ast.NewIdent("x")
	if got := conv.CastExpr(x, 1); got != x {
		t.Fatalf("expected a void cast to return the expression unchanged")
	}
}

func TestBoolToCIntWrapsInInt32Call(t *testing.T) {
	b := ast.NewIdent("flag")
	got := BoolToCInt(b)
	call, ok := got.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected *ast.CallExpr, got %T", got)
	}
	if String(call.Fun) != "int32" {
		t.Fatalf("expected the wrap to call int32(...), got %s", String(call.Fun))
	}
}
