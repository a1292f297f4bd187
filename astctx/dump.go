package astctx

import (
	"encoding/json"
	"strconv"

	"github.com/tidwall/pretty"
)

// Dump re-serializes a Context back to JSON, for the CLI's
// dump-context debug subcommand. Node ids are map keys, which
// encoding/json can only emit as object keys once the map's key type
// is string, and extras need to come back out as the same
// heterogeneous (string | u64 | f64 | array) shape LoadJSON accepts —
// both handled here by building a plain map[string]any tree before
// marshaling, then handing the bytes to tidwall/pretty for the
// indentation LoadJSON's caller-facing fixtures use.
func Dump(ctx *Context) ([]byte, error) {
	nodes := make(map[string]any, len(ctx.Nodes))
	for id, n := range ctx.Nodes {
		nodes[strconv.FormatUint(uint64(id), 10)] = nodeToAny(n)
	}

	types := make(map[string]any, len(ctx.Types))
	for id, t := range ctx.Types {
		types[strconv.FormatUint(uint64(id), 10)] = typeToAny(t)
	}

	top := make([]uint64, len(ctx.TopNodes))
	for i, id := range ctx.TopNodes {
		top[i] = uint64(id)
	}

	doc := map[string]any{
		"top_nodes": top,
		"nodes":     nodes,
		"types":     types,
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(raw), nil
}

func nodeToAny(n Node) map[string]any {
	children := make([]any, len(n.Children))
	for i, c := range n.Children {
		if c.Valid() {
			children[i] = uint64(c)
		} else {
			children[i] = nil
		}
	}
	m := map[string]any{
		"tag":      n.Tag,
		"children": children,
		"extras":   scalarsToAny(n.Extras),
	}
	if n.TypeID.Valid() {
		m["type_id"] = uint64(n.TypeID)
	}
	return m
}

func typeToAny(t Type) map[string]any {
	m := map[string]any{
		"tag":      t.Tag,
		"unsigned": t.Unsigned,
		"extras":   scalarsToAny(t.Extras),
	}
	if t.Pointee.Valid() {
		m["pointee"] = uint64(t.Pointee)
	}
	if t.Canonical.Valid() {
		m["canonical"] = uint64(t.Canonical)
	}
	return m
}

func scalarsToAny(ss []Scalar) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = scalarToAny(s)
	}
	return out
}

func scalarToAny(s Scalar) any {
	switch s.Kind {
	case KindString:
		return s.Str
	case KindU64:
		return s.U64
	case KindF64:
		return map[string]any{"f64": s.F64}
	case KindArray:
		return scalarsToAny(s.Arr)
	default:
		return nil
	}
}
