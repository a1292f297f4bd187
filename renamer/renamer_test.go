package renamer

import "testing"

func TestInsertRejectsSameScopeRedeclaration(t *testing.T) {
	r := New(Reserved())
	if _, ok := r.Insert("x", "x"); !ok {
		t.Fatalf("expected first insert of x to succeed")
	}
	if _, ok := r.Insert("x", "x"); ok {
		t.Fatalf("expected second insert of x in the same scope to fail")
	}
}

func TestNestedScopeShadowsWithDistinctName(t *testing.T) {
	r := New(Reserved())
	outer, _ := r.Insert("x", "x")

	r.AddScope()
	inner, ok := r.Insert("x", "x")
	if !ok {
		t.Fatalf("expected inner x to be insertable")
	}
	if inner == outer {
		t.Fatalf("expected inner x to receive a distinct name from outer x, got %q twice", inner)
	}
	if got, ok := r.Get("x"); !ok || got != inner {
		t.Fatalf("expected lookup inside inner scope to find %q, got %q (ok=%v)", inner, got, ok)
	}
	r.DropScope()

	if got, ok := r.Get("x"); !ok || got != outer {
		t.Fatalf("expected lookup after popping scope to find %q, got %q (ok=%v)", outer, got, ok)
	}
}

func TestCollisionSuffixedDeterministically(t *testing.T) {
	r := New(Reserved())
	a, _ := r.Insert("a", "tmp")
	b, _ := r.Insert("b", "tmp")
	if a == b {
		t.Fatalf("expected distinct names for colliding hints, got %q twice", a)
	}
	if a != "tmp" || b != "tmp_1" {
		t.Fatalf("expected deterministic tmp/tmp_1 suffixing, got %q, %q", a, b)
	}
}

func TestInsertAvoidsReservedWord(t *testing.T) {
	r := New(Reserved())
	name, ok := r.Insert("c_range", "range")
	if !ok {
		t.Fatalf("expected insert to succeed")
	}
	if name == "range" {
		t.Fatalf("expected a reserved-word hint to be suffixed, got bare %q", name)
	}
}

func TestFreshNamesAreUniqueAndUnbound(t *testing.T) {
	r := New(Reserved())
	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		name := r.Fresh()
		if seen[name] {
			t.Fatalf("Fresh returned %q twice", name)
		}
		seen[name] = true
	}
}

func TestGetMissingNameFails(t *testing.T) {
	r := New(Reserved())
	if _, ok := r.Get("never_declared"); ok {
		t.Fatalf("expected lookup of an unbound C name to fail")
	}
}
