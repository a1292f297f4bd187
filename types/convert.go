// Package types converts a C type id to a target Go type expression,
// memoizing results since the same id is resolved repeatedly across a
// translation unit. It also exposes the pointer/unsigned predicates
// the binary operator table is driven by.
package types

import (
	"fmt"
	"go/ast"

	"github.com/mbsulliv/c2go/astctx"
	"github.com/mbsulliv/c2go/internal/diag"
)

// Converter converts C type ids to Go type expressions. Convert is
// referentially transparent for a given (Converter, id) pair; the
// cache only avoids rebuilding identical ast.Expr trees; it is not
// observable from outside the package.
type Converter struct {
	ctx   *astctx.Context
	cache map[astctx.ID]ast.Expr
}

// New creates a Type Converter over ctx. ctx is read-only and may
// outlive the Converter; the Converter holds no other state.
func New(ctx *astctx.Context) *Converter {
	return &Converter{ctx: ctx, cache: make(map[astctx.ID]ast.Expr)}
}

// Convert returns the Go type expression for the C type id.
func (c *Converter) Convert(id astctx.ID) ast.Expr {
	if e, ok := c.cache[id]; ok {
		return e
	}
	e := c.convert(id)
	c.cache[id] = e
	return e
}

func (c *Converter) convert(id astctx.ID) ast.Expr {
	t := c.ctx.Type(id)
	switch t.Tag {
	case "Builtin":
		return builtinIdent(uint64(id), spelling(t), t.Unsigned)

	case "Pointer":
		pointee := c.Convert(t.Pointee)
		return &ast.IndexExpr{
			X:     &ast.SelectorExpr{X: ast.NewIdent("cptr"), Sel: ast.NewIdent("Ptr")},
			Index: pointee,
		}

	case "Typedef", "Record", "Enum":
		name, ok := typeName(t)
		if !ok {
			diag.Malformedf(uint64(id), t.Tag, "expected a name in extras[0]")
		}
		return ast.NewIdent(name)

	default:
		diag.Unimplementedf(uint64(id), t.Tag, "type converter: unhandled C type tag")
		panic("unreachable")
	}
}

// typeName reads the first extras entry as the declared name, the
// same DeclName convention astctx.Node uses for declarations.
func typeName(t astctx.Type) (string, bool) {
	if len(t.Extras) == 0 {
		return "", false
	}
	if t.Extras[0].Kind != astctx.KindString {
		return "", false
	}
	return astctx.ExpectString(t.Extras[0]), true
}

func spelling(t astctx.Type) string {
	name, ok := typeName(t)
	if !ok {
		return ""
	}
	return name
}

// builtinIdent maps a C builtin type's spelling to a Go numeric/bool
// type identifier. C's `int`/`unsigned int` are treated as 32 bits,
// matching the common LP64/LLP64 convention.
func builtinIdent(nodeID uint64, spelling string, unsigned bool) ast.Expr {
	switch spelling {
	case "void":
		return nil
	case "_Bool", "bool":
		return ast.NewIdent("bool")
	case "char":
		if unsigned {
			return ast.NewIdent("uint8")
		}
		return ast.NewIdent("int8")
	case "signed char":
		return ast.NewIdent("int8")
	case "unsigned char":
		return ast.NewIdent("uint8")
	case "short", "short int":
		if unsigned {
			return ast.NewIdent("uint16")
		}
		return ast.NewIdent("int16")
	case "unsigned short", "unsigned short int":
		return ast.NewIdent("uint16")
	case "int":
		if unsigned {
			return ast.NewIdent("uint32")
		}
		return ast.NewIdent("int32")
	case "unsigned int", "unsigned":
		return ast.NewIdent("uint32")
	case "long", "long int":
		if unsigned {
			return ast.NewIdent("uint64")
		}
		return ast.NewIdent("int64")
	case "unsigned long", "unsigned long int":
		return ast.NewIdent("uint64")
	case "long long", "long long int":
		if unsigned {
			return ast.NewIdent("uint64")
		}
		return ast.NewIdent("int64")
	case "unsigned long long", "unsigned long long int":
		return ast.NewIdent("uint64")
	case "float":
		return ast.NewIdent("float32")
	case "double", "long double":
		return ast.NewIdent("float64")
	default:
		diag.Unimplementedf(nodeID, "Builtin", "type converter: unknown builtin spelling %q", spelling)
		panic("unreachable")
	}
}

// CastExpr produces a Go conversion `toType(expr)`, the lowering for a
// C-style cast expression and for the bool-to-C-int adjustment the
// binary operator table requires of relational operators. void casts
// (statement-only, discarding a value) return expr unchanged; nothing
// in Go needs an explicit conversion to discard a value.
func (c *Converter) CastExpr(expr ast.Expr, toType astctx.ID) ast.Expr {
	target := c.Convert(toType)
	if target == nil {
		return expr
	}
	return &ast.CallExpr{Fun: target, Args: []ast.Expr{expr}}
}

// CIntType is the C-int representation: the type a relational
// operator's result is cast to, since in Go a comparison yields an
// untyped/native bool that cannot itself feed further C arithmetic.
func CIntType() ast.Expr { return ast.NewIdent("int32") }

// BoolToCInt wraps a bool-valued expression with the C-int cast
// required after every relational and logical-equality comparison.
func BoolToCInt(b ast.Expr) ast.Expr {
	return &ast.CallExpr{Fun: CIntType(), Args: []ast.Expr{b}}
}

// String is a debug helper, not used by the translator itself, kept
// for error messages and tests that want to show a type back as text
// without pulling in go/printer.
func String(e ast.Expr) string {
	switch x := e.(type) {
	case *ast.Ident:
		return x.Name
	case *ast.IndexExpr:
		return fmt.Sprintf("%s[%s]", String(x.X), String(x.Index))
	case *ast.SelectorExpr:
		return fmt.Sprintf("%s.%s", String(x.X), x.Sel.Name)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%T", e)
	}
}
