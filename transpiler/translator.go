// Package transpiler is the translator: the recursive lowering from a
// C AST node to a target (Go) AST node, dispatched by a tag switch over
// astctx.Node with ids flowing through util.WithStmts rather than a
// typed AST-node interface.
package transpiler

import (
	"go/ast"

	"github.com/mbsulliv/c2go/astctx"
	"github.com/mbsulliv/c2go/internal/diag"
	"github.com/mbsulliv/c2go/renamer"
	"github.com/mbsulliv/c2go/types"
)

// Translation is the state threaded through one translation unit:
// the AST Context (read-only, shared), the Type Converter, the
// Renamer, the per-record field name tables, and the target items
// accumulated so far. Created once per translation unit and discarded
// after Emit.
type Translation struct {
	ctx    *astctx.Context
	conv   *types.Converter
	names  *renamer.Renamer
	fields map[string]map[string]string // record C name -> field C name -> Go name
	items  []ast.Decl
}

// New creates a Translation over ctx with a fresh Renamer seeded with
// Go's reserved-word set.
func New(ctx *astctx.Context) *Translation {
	return &Translation{
		ctx:    ctx,
		conv:   types.New(ctx),
		names:  renamer.New(renamer.Reserved()),
		fields: make(map[string]map[string]string),
	}
}

// Translate runs the driver in two passes over TopNodes, the way
// populating every top-level name before dispatching any declaration
// lets a function body forward-reference a sibling declared later in
// the same translation unit: the first pass binds every top-level
// declaration's C name to a Go name; the second lowers each
// declaration's full body, looking up (rather than inserting) the name
// the first pass already bound. Translating the same Context twice
// yields structurally identical items, since nothing here depends on
// anything but ctx and the deterministic renamer-suffixing rule.
func (t *Translation) Translate() []ast.Decl {
	for _, id := range t.ctx.TopNodes {
		t.registerTopLevelName(id)
	}
	for _, id := range t.ctx.TopNodes {
		t.addTopLevel(id)
	}
	return t.items
}

// registerTopLevelName binds one top-level declaration's C name in the
// outermost scope, unless a prior sibling (a prototype preceding its
// own definition) already bound the same name.
func (t *Translation) registerTopLevelName(id astctx.ID) {
	n := t.ctx.Node(id)
	switch n.Tag {
	case "FunctionDecl", "TypedefDecl", "RecordDecl", "VarDecl":
		cName := declName(id, n)
		if _, ok := t.names.Get(cName); ok {
			return
		}
		t.names.Insert(cName, cName)
	default:
		diag.Unimplementedf(uint64(id), n.Tag, "top-level declaration kind not handled")
	}
}

func (t *Translation) addTopLevel(id astctx.ID) {
	n := t.ctx.Node(id)
	switch n.Tag {
	case "FunctionDecl":
		t.addFunction(id, n)
	case "TypedefDecl":
		t.addTypedef(id, n)
	case "RecordDecl":
		t.addStruct(id, n)
	case "VarDecl":
		t.addGlobalVar(id, n)
	default:
		diag.Unimplementedf(uint64(id), n.Tag, "top-level declaration kind not handled")
	}
}

// declName reads a node's Extras[0] name, failing fatally if absent
// (every tag it is called for is a named
// declaration under the convention documented in conventions.go).
func declName(id astctx.ID, n astctx.Node) string {
	name, ok := n.DeclName()
	if !ok {
		diag.Malformedf(uint64(id), n.Tag, "expected a declaration name in extras[0]")
	}
	return name
}
