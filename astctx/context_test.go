package astctx

import (
	"testing"

	"github.com/mbsulliv/c2go/internal/diag"
)

func TestLoadJSONRoundTripsThroughDump(t *testing.T) {
	src := []byte(`{
		"top_nodes": [1],
		"nodes": {
			"1": {"tag": "FunctionDecl", "type_id": 10, "children": [2], "extras": ["main"]},
			"2": {"tag": "IntegerLiteral", "type_id": 11, "children": [], "extras": [42]}
		},
		"types": {
			"10": {"tag": "Builtin", "unsigned": false, "extras": ["int"]},
			"11": {"tag": "Typedef", "canonical": 10}
		}
	}`)

	ctx, err := LoadJSON(src)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}

	if len(ctx.TopNodes) != 1 || ctx.TopNodes[0] != 1 {
		t.Fatalf("unexpected top nodes: %v", ctx.TopNodes)
	}

	fn := ctx.Node(1)
	name, ok := fn.DeclName()
	if !ok || name != "main" {
		t.Fatalf("expected decl name main, got %q ok=%v", name, ok)
	}

	lit := ctx.Node(2)
	if got := ExpectU64(lit.Extras[0]); got != 42 {
		t.Fatalf("expected literal value 42, got %d", got)
	}

	resolved := ctx.Resolve(11)
	if resolved.Tag != "Builtin" || resolved.Unsigned {
		t.Fatalf("expected typedef to resolve to unsigned=false Builtin, got %+v", resolved)
	}

	dumped, err := Dump(ctx)
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	roundTripped, err := LoadJSON(dumped)
	if err != nil {
		t.Fatalf("LoadJSON(Dump(ctx)): %v", err)
	}
	if roundTripped.Node(1).Tag != "FunctionDecl" {
		t.Fatalf("round trip lost FunctionDecl tag")
	}
}

func TestDanglingNodeIsFatal(t *testing.T) {
	ctx := &Context{Nodes: map[ID]Node{}, Types: map[ID]Type{}}

	var fault *diag.Fault
	func() {
		defer func() {
			r := recover()
			f, ok := r.(*diag.Fault)
			if !ok {
				t.Fatalf("expected a *diag.Fault panic, got %#v", r)
			}
			fault = f
		}()
		ctx.Node(999)
	}()

	if fault == nil || fault.Kind != diag.Malformed {
		t.Fatalf("expected Malformed fault, got %+v", fault)
	}
}

func TestExpectU64OnStringIsFatal(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected ExpectU64 on a string scalar to panic")
		}
	}()
	ExpectU64(String("nope"))
}
