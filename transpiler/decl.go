package transpiler

import (
	"go/ast"
	"go/token"

	"github.com/mbsulliv/c2go/astctx"
	"github.com/mbsulliv/c2go/internal/diag"
)

// addFunction lowers FunctionDecl: push a scope, insert each
// parameter, lower the body, pop the scope, emit a function item with
// the converted return type. A FunctionDecl with no body (Children[0]
// invalid — a prototype-only declaration) emits a signature with no
// body. The function's own name was already bound by
// registerTopLevelName, so a prototype and its later definition
// resolve to the same Go name without re-inserting it here.
func (t *Translation) addFunction(id astctx.ID, n astctx.Node) {
	cName := declName(id, n)
	goName, ok := t.names.Get(cName)
	if !ok {
		diag.Malformedf(uint64(id), n.Tag, "function %q was not registered before lowering", cName)
	}

	bodyID := n.Children[0]
	params := n.Children[1:]

	t.names.AddScope()
	fields := make([]*ast.Field, 0, len(params))
	for _, paramID := range params {
		pn := t.ctx.Node(paramID)
		pName := declName(paramID, pn)
		pGoName, _ := t.names.Insert(pName, pName)
		fields = append(fields, &ast.Field{
			Names: []*ast.Ident{ast.NewIdent(pGoName)},
			Type:  t.conv.Convert(pn.TypeID),
		})
	}

	var body *ast.BlockStmt
	if bodyID.Valid() {
		body = t.convertBlock(bodyID)
	}
	t.names.DropScope()

	resultType := t.conv.Convert(n.TypeID)
	var results *ast.FieldList
	if resultType != nil {
		results = &ast.FieldList{List: []*ast.Field{{Type: resultType}}}
	}

	t.items = append(t.items, &ast.FuncDecl{
		Name: ast.NewIdent(goName),
		Type: &ast.FuncType{
			Params:  &ast.FieldList{List: fields},
			Results: results,
		},
		Body: body,
	})
}

// addTypedef lowers TypedefDecl: convert the underlying type, emit a
// type-alias item. The name was already bound by registerTopLevelName.
func (t *Translation) addTypedef(id astctx.ID, n astctx.Node) {
	cName := declName(id, n)
	goName, ok := t.names.Get(cName)
	if !ok {
		diag.Malformedf(uint64(id), n.Tag, "typedef %q was not registered before lowering", cName)
	}
	underlying := t.conv.Convert(n.TypeID)

	t.items = append(t.items, &ast.GenDecl{
		Tok: token.TYPE,
		Specs: []ast.Spec{
			&ast.TypeSpec{
				Name:   ast.NewIdent(goName),
				Assign: 1, // alias (`type Name = Underlying`), matching a C typedef's transparency
				Type:   underlying,
			},
		},
	})
}

// addStruct lowers RecordDecl: convert each field's type in
// declaration order, emit a struct item. Each field name is inserted
// into the Renamer in a scope scoped to this struct — routing field
// names through the same Renamer as every other identifier, rather
// than recomputing a capitalized name ad hoc, means two C fields
// differing only by the case of their first letter (both valid,
// distinct C identifiers) never collide into the same Go field. The
// resulting C-name-to-Go-name table is kept in t.fields for
// recordFieldGoName to look up at every MemberExpr site.
func (t *Translation) addStruct(id astctx.ID, n astctx.Node) {
	cName := declName(id, n)
	goName, ok := t.names.Get(cName)
	if !ok {
		diag.Malformedf(uint64(id), n.Tag, "record %q was not registered before lowering", cName)
	}

	t.names.AddScope()
	fieldNames := make(map[string]string, len(n.Children))
	fields := make([]*ast.Field, 0, len(n.Children))
	for _, fieldID := range n.Children {
		fn := t.ctx.Node(fieldID)
		fName := declName(fieldID, fn)
		fGoName, ok := t.names.Insert(fName, exportable(fName))
		if !ok {
			diag.Malformedf(uint64(fieldID), fn.Tag, "duplicate field declaration of %q in record %q", fName, cName)
		}
		fieldNames[fName] = fGoName
		fields = append(fields, &ast.Field{
			Names: []*ast.Ident{ast.NewIdent(fGoName)},
			Type:  t.conv.Convert(fn.TypeID),
		})
	}
	t.names.DropScope()
	t.fields[cName] = fieldNames

	t.items = append(t.items, &ast.GenDecl{
		Tok: token.TYPE,
		Specs: []ast.Spec{
			&ast.TypeSpec{
				Name: ast.NewIdent(goName),
				Type: &ast.StructType{Fields: &ast.FieldList{List: fields}},
			},
		},
	})
}

// recordFieldGoName resolves a MemberExpr's field to the Go name
// addStruct bound it to: resolve the base expression's (possibly
// pointer) type through to its Record declaration, then look up the
// field in that record's table, rather than recomputing a capitalized
// name ad hoc at every access site.
func (t *Translation) recordFieldGoName(id astctx.ID, baseTypeID astctx.ID, isArrow bool, fieldCName string) string {
	rt := t.ctx.Resolve(baseTypeID)
	if isArrow {
		if !rt.IsPointer() {
			diag.Malformedf(uint64(id), "MemberExpr", "-> base is not a pointer type")
		}
		rt = t.ctx.Resolve(rt.Pointee)
	}
	if rt.Tag != "Record" {
		diag.Malformedf(uint64(id), "MemberExpr", "member access on a non-record type")
	}
	recordName, ok := rt.DeclName()
	if !ok {
		diag.Malformedf(uint64(id), "MemberExpr", "record type has no declared name")
	}
	fields, ok := t.fields[recordName]
	if !ok {
		diag.Malformedf(uint64(id), "MemberExpr", "unknown record type %q", recordName)
	}
	goName, ok := fields[fieldCName]
	if !ok {
		diag.Malformedf(uint64(id), "MemberExpr", "record %q has no field %q", recordName, fieldCName)
	}
	return goName
}

// addGlobalVar lowers a top-level VarDecl to a package-level var item.
// Any statements its initializer would have produced are impossible at
// package scope in Go (there is no package-level statement position),
// so a global whose initializer is not side-effect-free is an
// unimplemented construct rather than a silent truncation. The name
// was already bound by registerTopLevelName.
func (t *Translation) addGlobalVar(id astctx.ID, n astctx.Node) {
	cName := declName(id, n)
	goName, ok := t.names.Get(cName)
	if !ok {
		diag.Malformedf(uint64(id), n.Tag, "global %q was not registered before lowering", cName)
	}

	spec := &ast.ValueSpec{
		Names: []*ast.Ident{ast.NewIdent(goName)},
		Type:  t.conv.Convert(n.TypeID),
	}
	if initID := n.Children[0]; initID.Valid() {
		init := t.convertExpr(initID)
		if len(init.Stmts) > 0 {
			diag.Unimplementedf(uint64(id), n.Tag, "global initializer with side effects has no package-level statement position")
		}
		spec.Values = []ast.Expr{init.Val}
	}

	t.items = append(t.items, &ast.GenDecl{Tok: token.VAR, Specs: []ast.Spec{spec}})
}

// convertLocalVarDecl lowers a VarDecl found inside a DeclStmt: insert
// the variable, lower the optional initializer, return the statements
// that must precede the binding followed by the binding itself. Every
// local is treated as uniformly mutable, so this always emits `var
// name type = init`, never `:=`, keeping every local's declared type
// explicit regardless of whether Go could infer it.
func (t *Translation) convertLocalVarDecl(id astctx.ID, n astctx.Node) []ast.Stmt {
	cName := declName(id, n)
	goName, ok := t.names.Insert(cName, cName)
	if !ok {
		diag.Malformedf(uint64(id), n.Tag, "duplicate local declaration of %q in one scope", cName)
	}

	goType := t.conv.Convert(n.TypeID)
	spec := &ast.ValueSpec{
		Names: []*ast.Ident{ast.NewIdent(goName)},
		Type:  goType,
	}

	var stmts []ast.Stmt
	if initID := n.Children[0]; initID.Valid() {
		init := t.convertExpr(initID)
		stmts = append(stmts, init.Stmts...)
		spec.Values = []ast.Expr{init.Val}
	}

	stmts = append(stmts, &ast.DeclStmt{
		Decl: &ast.GenDecl{Tok: token.VAR, Specs: []ast.Spec{spec}},
	})
	return stmts
}

// exportable capitalizes a struct field's Go name so printed structs
// have externally-usable fields, rather than leaving them
// lowercase-and-unreachable outside the package.
func exportable(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] = r[0] - 'a' + 'A'
	}
	return string(r)
}
