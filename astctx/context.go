// Package astctx is the read-only AST context the translation engine
// consumes. It is deliberately thin: a serialized Clang AST dump —
// produced upstream by an external collaborator — is loaded once into
// an indexed, immutable store of C AST nodes and C type nodes, keyed by
// opaque ids. Nothing in this package, or in the translator that reads
// it, mutates a Context after Load returns.
package astctx

import "github.com/mbsulliv/c2go/internal/diag"

// ID is an opaque node id, as assigned by the upstream deserializer.
// The zero value means "no node" (an absent optional child).
type ID uint64

// Valid reports whether id refers to an actual node.
func (id ID) Valid() bool { return id != 0 }

// Node is one C AST node: a tag naming the construct, an ordered list
// of (optionally absent) children, an optional C type, and a
// construct-specific list of scalars.
type Node struct {
	Tag      string
	Children []ID
	TypeID   ID
	Extras   []Scalar
}

// Type is one C type node. It answers the two predicates lowering
// needs and can be resolved through typedefs to a canonical form.
type Type struct {
	// Tag names the type's own construct: "Builtin", "Pointer",
	// "Typedef", "Record", "Function", ...
	Tag string

	// Pointee is set when Tag == "Pointer": the id of the pointee type.
	Pointee ID

	// Canonical is set when Tag == "Typedef": the id this typedef
	// resolves to (one step; Resolve follows the whole chain).
	Canonical ID

	// Unsigned is set for Tag == "Builtin" integer types.
	Unsigned bool

	// Extras carries the remaining construct-specific scalars, e.g. a
	// builtin type's spelling ("int", "unsigned long", "double", ...)
	// or a record's field (name, type) pairs serialized as a
	// Scalar-array.
	Extras []Scalar
}

// IsPointer reports whether this type (after nothing — no resolution)
// denotes a pointer. Lowering sites that need to see through typedefs
// first call Context.Resolve before asking.
func (t Type) IsPointer() bool { return t.Tag == "Pointer" }

// IsUnsignedIntegral reports whether this type is an unsigned integer
// builtin.
func (t Type) IsUnsignedIntegral() bool { return t.Tag == "Builtin" && t.Unsigned }

// Context is the full read-only store for one translation unit.
type Context struct {
	TopNodes []ID
	Nodes    map[ID]Node
	Types    map[ID]Type
}

// Node looks up a node by id. A dangling id is a fatal implementer
// error.
func (c *Context) Node(id ID) Node {
	n, ok := c.Nodes[id]
	if !ok {
		diag.Malformedf(uint64(id), "", "dangling node id")
	}
	return n
}

// RequireChild fetches the child-index'th child of n, failing fatally
// if it is absent. Used at sites where a lowering rule assumes the
// child must be present (e.g. a BinaryOperator's lhs).
func (c *Context) RequireChild(n Node, index int, parentTag string) ID {
	if index >= len(n.Children) {
		diag.Malformedf(0, parentTag, "expected child %d, node has %d children", index, len(n.Children))
	}
	id := n.Children[index]
	if !id.Valid() {
		diag.Malformedf(0, parentTag, "expected child %d to be present", index)
	}
	return id
}

// Type looks up a type by id. A dangling id is fatal.
func (c *Context) Type(id ID) Type {
	t, ok := c.Types[id]
	if !ok {
		diag.Malformedf(uint64(id), "", "dangling type id")
	}
	return t
}

// RequireType fetches n's own type, failing fatally if the node has no
// associated type (most expression and declaration nodes must).
func (c *Context) RequireType(n Node) Type {
	if !n.TypeID.Valid() {
		diag.Malformedf(0, n.Tag, "expected a type")
	}
	return c.Type(n.TypeID)
}

// Resolve chases a typedef chain to its canonical type.
func (c *Context) Resolve(id ID) Type {
	t := c.Type(id)
	seen := map[ID]bool{id: true}
	for t.Tag == "Typedef" {
		if seen[t.Canonical] {
			diag.Malformedf(uint64(id), "Typedef", "cyclic typedef chain")
		}
		seen[t.Canonical] = true
		t = c.Type(t.Canonical)
	}
	return t
}

// DeclName returns the declaration name carried in extras[0], the
// convention every named-declaration tag in this contract follows
// (FunctionDecl, VarDecl, ParmVarDecl, TypedefDecl, RecordDecl,
// FieldDecl).
func (n Node) DeclName() (string, bool) {
	if len(n.Extras) == 0 {
		return "", false
	}
	s, ok := n.Extras[0].asString()
	return s, ok
}

// DeclName returns a Typedef/Record/Enum type's declared name, carried
// in extras[0] the same way Node.DeclName carries a declaration's.
func (t Type) DeclName() (string, bool) {
	if len(t.Extras) == 0 {
		return "", false
	}
	s, ok := t.Extras[0].asString()
	return s, ok
}
