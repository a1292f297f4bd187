package transpiler

import (
	"go/ast"
	"go/token"
	"sort"
)

// runtimeImports maps the package-qualifier identifiers translated
// code may reference (cptr.Ptr, cptr.Addr, cnum.WrappingAdd, ...) to
// the import path that defines them. Rather than have every lowering
// site that builds a `cptr.X(...)` or `cnum.X(...)` selector also
// remember to register an import, Emit scans the finished tree once
// and adds exactly the imports actually referenced.
var runtimeImports = map[string]string{
	"cptr": "github.com/mbsulliv/c2go/runtime/cptr",
	"cnum": "github.com/mbsulliv/c2go/runtime/cnum",
}

// Emit assembles the accumulated items into a complete Go file,
// declared under packageName, with exactly the runtime imports the
// translated code actually references.
func (t *Translation) Emit(packageName string) *ast.File {
	needed := map[string]bool{}
	for _, decl := range t.items {
		ast.Inspect(decl, func(node ast.Node) bool {
			sel, ok := node.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			ident, ok := sel.X.(*ast.Ident)
			if !ok {
				return true
			}
			if _, known := runtimeImports[ident.Name]; known {
				needed[ident.Name] = true
			}
			return true
		})
	}

	decls := make([]ast.Decl, 0, len(t.items)+1)
	if len(needed) > 0 {
		qualifiers := make([]string, 0, len(needed))
		for qualifier := range needed {
			qualifiers = append(qualifiers, qualifier)
		}
		sort.Strings(qualifiers)

		specs := make([]ast.Spec, 0, len(qualifiers))
		for _, qualifier := range qualifiers {
			path := runtimeImports[qualifier]
			specs = append(specs, &ast.ImportSpec{Path: &ast.BasicLit{Kind: token.STRING, Value: `"` + path + `"`}})
		}
		decls = append(decls, &ast.GenDecl{Tok: token.IMPORT, Specs: specs})
	}
	decls = append(decls, t.items...)

	return &ast.File{
		Name:  ast.NewIdent(packageName),
		Decls: decls,
	}
}
