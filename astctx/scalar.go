package astctx

import "github.com/mbsulliv/c2go/internal/diag"

// ScalarKind tags which field of a Scalar is live.
type ScalarKind int

const (
	KindString ScalarKind = iota
	KindU64
	KindF64
	KindArray
)

// Scalar is one entry of a Node's or Type's extras list: a
// construct-specific piece of data exposed through typed accessors
// rather than a bare interface{}, so a type-mismatched access fails
// loudly instead of silently.
type Scalar struct {
	Kind ScalarKind
	Str  string
	U64  uint64
	F64  float64
	Arr  []Scalar
}

func String(s string) Scalar  { return Scalar{Kind: KindString, Str: s} }
func U64(v uint64) Scalar     { return Scalar{Kind: KindU64, U64: v} }
func F64(v float64) Scalar    { return Scalar{Kind: KindF64, F64: v} }
func Array(v []Scalar) Scalar { return Scalar{Kind: KindArray, Arr: v} }

func (s Scalar) asString() (string, bool) {
	if s.Kind != KindString {
		return "", false
	}
	return s.Str, true
}

// ExpectString returns s's string payload, or raises a Malformed fault.
func ExpectString(s Scalar) string {
	if s.Kind != KindString {
		diag.Malformedf(0, "", "extras scalar: expected string, got %v", s.Kind)
	}
	return s.Str
}

// ExpectU64 returns s's unsigned integer payload.
func ExpectU64(s Scalar) uint64 {
	if s.Kind != KindU64 {
		diag.Malformedf(0, "", "extras scalar: expected u64, got %v", s.Kind)
	}
	return s.U64
}

// ExpectF64 returns s's floating point payload.
func ExpectF64(s Scalar) float64 {
	if s.Kind != KindF64 {
		diag.Malformedf(0, "", "extras scalar: expected f64, got %v", s.Kind)
	}
	return s.F64
}

// ExpectArray returns s's nested scalar array.
func ExpectArray(s Scalar) []Scalar {
	if s.Kind != KindArray {
		diag.Malformedf(0, "", "extras scalar: expected array, got %v", s.Kind)
	}
	return s.Arr
}
