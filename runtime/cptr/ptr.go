// Package cptr is the runtime support a translated program links
// against for C pointer semantics that Go has no native operator for:
// pointer arithmetic and pointer difference. Translated code never
// spells out unsafe.Pointer arithmetic inline; every lowered pointer
// operation instead calls through this one small, reusable generic
// type.
package cptr

import "unsafe"

// Ptr is a C pointer value: a base slice standing in for "the object
// this pointer points into" plus the element index the pointer
// currently designates. Reslicing would also work for the common case
// of a pointer walking forward through an array, but does not support
// negative offsets back past the pointer's current position, which C
// allows as long as the result stays in bounds of the original object;
// carrying idx separately from base handles that.
type Ptr[T any] struct {
	base []T
	idx  int
}

// Of wraps an existing slice as a pointer to its first element —
// the translation of any C array-to-pointer decay (a bare array name
// used where a pointer is expected).
func Of[T any](base []T) Ptr[T] {
	return Ptr[T]{base: base}
}

// Addr takes the address of a single Go value, the way C's unary `&`
// does for a scalar variable. The one-element slice it wraps aliases v
// through unsafe.Slice, so writes through the resulting Ptr are
// visible at v, matching C's aliasing semantics for &x.
func Addr[T any](v *T) Ptr[T] {
	return Ptr[T]{base: unsafe.Slice(v, 1)}
}

// Nil is the zero Ptr, equivalent to a C NULL pointer.
func Nil[T any]() Ptr[T] { return Ptr[T]{} }

// IsNil reports whether p is a C NULL pointer.
func (p Ptr[T]) IsNil() bool { return p.base == nil }

// Offset implements C pointer arithmetic `p + n` / `p - n`: a new
// pointer n elements further into the same object. n may be negative.
func (p Ptr[T]) Offset(n int64) Ptr[T] {
	return Ptr[T]{base: p.base, idx: p.idx + int(n)}
}

// OffsetTo implements C pointer difference `target - p`, valid only
// when p and target point into the same object.
func (p Ptr[T]) OffsetTo(target Ptr[T]) int64 {
	return int64(target.idx - p.idx)
}

// At returns a pointer n elements further into the same object,
// matching `&p[n]` / ArraySubscriptExpr's address computation.
func (p Ptr[T]) At(n int64) Ptr[T] { return p.Offset(n) }

// Deref reads the value p currently points to (C `*p`).
func (p Ptr[T]) Deref() T { return p.base[p.idx] }

// Set writes through p (the store half of C `*p = v`).
func (p Ptr[T]) Set(v T) { p.base[p.idx] = v }

// Index reads the element n past p (C `p[n]`).
func (p Ptr[T]) Index(n int64) T { return p.base[p.idx+int(n)] }

// SetAt writes the element n past p (C `p[n] = v`).
func (p Ptr[T]) SetAt(n int64, v T) { p.base[p.idx+int(n)] = v }

// Eq reports pointer equality (C `p == q`): same object, same index.
func (p Ptr[T]) Eq(q Ptr[T]) bool {
	return p.idx == q.idx && samePtr(p.base, q.base)
}

// Less reports whether p designates an earlier element than q (C
// `p < q`), valid only when p and q point into the same object.
func (p Ptr[T]) Less(q Ptr[T]) bool { return p.idx < q.idx }

func samePtr[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) == 0 && len(b) == 0
	}
	return &a[0] == &b[0]
}
