package astctx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mbsulliv/c2go/internal/diag"
	"github.com/tidwall/gjson"
)

// LoadJSON parses a serialized AST dump in the shape this engine
// expects:
//
//	{
//	  "top_nodes": [1, 2],
//	  "nodes": {"1": {"tag": "...", "children": [2, null], "type_id": 7, "extras": [...]}},
//	  "types": {"7": {"tag": "Builtin", "unsigned": false, "extras": ["int"]}}
//	}
//
// gjson is used rather than encoding/json because extras entries are
// heterogeneous (string, u64, f64, or nested array) and gjson's path
// queries walk that shape without a fixed Go struct per node tag.
func LoadJSON(data []byte) (*Context, error) {
	if !gjson.ValidBytes(data) {
		return nil, diag.Wrap(fmt.Errorf("not valid JSON"), "loading AST dump")
	}
	root := gjson.ParseBytes(data)

	ctx := &Context{
		Nodes: make(map[ID]Node),
		Types: make(map[ID]Type),
	}

	for _, v := range root.Get("top_nodes").Array() {
		ctx.TopNodes = append(ctx.TopNodes, ID(v.Uint()))
	}

	var loadErr error
	root.Get("nodes").ForEach(func(key, value gjson.Result) bool {
		id, err := strconv.ParseUint(key.String(), 10, 64)
		if err != nil {
			loadErr = diag.Wrap(err, "node id %q", key.String())
			return false
		}
		ctx.Nodes[ID(id)] = decodeNode(value)
		return true
	})
	if loadErr != nil {
		return nil, loadErr
	}

	root.Get("types").ForEach(func(key, value gjson.Result) bool {
		id, err := strconv.ParseUint(key.String(), 10, 64)
		if err != nil {
			loadErr = diag.Wrap(err, "type id %q", key.String())
			return false
		}
		ctx.Types[ID(id)] = decodeType(value)
		return true
	})
	if loadErr != nil {
		return nil, loadErr
	}

	return ctx, nil
}

func decodeNode(v gjson.Result) Node {
	n := Node{
		Tag:    v.Get("tag").String(),
		TypeID: ID(v.Get("type_id").Uint()),
	}
	for _, c := range v.Get("children").Array() {
		if c.Type == gjson.Null {
			n.Children = append(n.Children, ID(0))
			continue
		}
		n.Children = append(n.Children, ID(c.Uint()))
	}
	for _, e := range v.Get("extras").Array() {
		n.Extras = append(n.Extras, decodeScalar(e))
	}
	return n
}

func decodeType(v gjson.Result) Type {
	t := Type{
		Tag:       v.Get("tag").String(),
		Pointee:   ID(v.Get("pointee").Uint()),
		Canonical: ID(v.Get("canonical").Uint()),
		Unsigned:  v.Get("unsigned").Bool(),
	}
	for _, e := range v.Get("extras").Array() {
		t.Extras = append(t.Extras, decodeScalar(e))
	}
	return t
}

func decodeScalar(v gjson.Result) Scalar {
	switch v.Type {
	case gjson.String:
		return String(v.String())
	case gjson.Number:
		if strings.ContainsAny(v.Raw, ".eE") {
			return F64(v.Float())
		}
		return U64(v.Uint())
	case gjson.JSON:
		if v.IsArray() {
			var elems []Scalar
			v.ForEach(func(_, e gjson.Result) bool {
				elems = append(elems, decodeScalar(e))
				return true
			})
			return Array(elems)
		}
		// The only object shape a scalar ever takes is Dump's
		// {"f64": value} wrapper, used to round-trip a whole-valued
		// float without it being mistaken for a u64 on reload.
		if f := v.Get("f64"); f.Exists() {
			return F64(f.Float())
		}
		return String(v.Raw)
	default:
		return String(v.String())
	}
}
