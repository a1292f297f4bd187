package astctx

import (
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/mbsulliv/c2go/internal/diag"
)

// LoadYAML parses an AST dump in the same logical shape LoadJSON
// expects, but encoded as YAML. Some AST-dump front ends (and humans
// hand-writing fixtures) prefer YAML's readability over JSON's
// strictness; both decode into the same Context.
func LoadYAML(data []byte) (*Context, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, diag.Wrap(err, "loading AST dump (yaml)")
	}

	ctx := &Context{
		Nodes: make(map[ID]Node),
		Types: make(map[ID]Type),
	}

	for _, v := range asSlice(doc["top_nodes"]) {
		ctx.TopNodes = append(ctx.TopNodes, ID(asUint(v)))
	}
	for key, v := range asMap(doc["nodes"]) {
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return nil, diag.Wrap(err, "node id %q", key)
		}
		ctx.Nodes[ID(id)] = decodeNodeAny(asMap(v))
	}
	for key, v := range asMap(doc["types"]) {
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return nil, diag.Wrap(err, "type id %q", key)
		}
		ctx.Types[ID(id)] = decodeTypeAny(asMap(v))
	}
	return ctx, nil
}

func decodeNodeAny(m map[string]any) Node {
	n := Node{Tag: asString(m["tag"]), TypeID: ID(asUint(m["type_id"]))}
	for _, c := range asSlice(m["children"]) {
		if c == nil {
			n.Children = append(n.Children, ID(0))
			continue
		}
		n.Children = append(n.Children, ID(asUint(c)))
	}
	for _, e := range asSlice(m["extras"]) {
		n.Extras = append(n.Extras, decodeScalarAny(e))
	}
	return n
}

func decodeTypeAny(m map[string]any) Type {
	t := Type{
		Tag:       asString(m["tag"]),
		Pointee:   ID(asUint(m["pointee"])),
		Canonical: ID(asUint(m["canonical"])),
		Unsigned:  asBool(m["unsigned"]),
	}
	for _, e := range asSlice(m["extras"]) {
		t.Extras = append(t.Extras, decodeScalarAny(e))
	}
	return t
}

func decodeScalarAny(v any) Scalar {
	switch x := v.(type) {
	case string:
		return String(x)
	case int:
		return U64(uint64(x))
	case int64:
		return U64(uint64(x))
	case uint64:
		return U64(x)
	case float64:
		// A bare YAML number is ambiguous between a whole-valued float
		// and a u64 (both decode to float64 here), so floats must be
		// wrapped as {"f64": ...} by the producer; see the map case
		// below. A bare number is always treated as u64.
		return U64(uint64(x))
	case []any:
		elems := make([]Scalar, 0, len(x))
		for _, e := range x {
			elems = append(elems, decodeScalarAny(e))
		}
		return Array(elems)
	case map[string]any:
		if f, ok := x["f64"]; ok {
			return F64(asFloat(f))
		}
		return String(asString(v))
	default:
		return String(asString(v))
	}
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asUint(v any) uint64 {
	switch x := v.(type) {
	case uint64:
		return x
	case int:
		return uint64(x)
	case int64:
		return uint64(x)
	case float64:
		return uint64(x)
	default:
		return 0
	}
}

func asFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int:
		return float64(x)
	case int64:
		return float64(x)
	default:
		return 0
	}
}
