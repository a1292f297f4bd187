// Package cnum is the runtime support for C's unsigned integer
// arithmetic, which is defined to wrap silently modulo 2^N on
// overflow. Go's native +, -, * on an unsigned type already wrap
// this way and never panic, so these functions are not masking
// arithmetic Go would otherwise trap on. They exist so the translator
// has one unconditional, explicitly-named lowering for the "unsigned"
// half of the binary operator table, rather than silently reusing the
// signed-path's bare operator and leaving the invariant implicit.
package cnum

// Unsigned is any Go unsigned integer type a C unsigned integral type
// can be represented as.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

func WrappingAdd[T Unsigned](a, b T) T { return a + b }
func WrappingSub[T Unsigned](a, b T) T { return a - b }
func WrappingMul[T Unsigned](a, b T) T { return a * b }

// WrappingDiv and WrappingRem are named for table symmetry with the
// other Wrapping* functions; C unsigned division and remainder don't
// actually wrap (only +, -, * can overflow), they're just plain
// unsigned division, which already has defined behavior on every
// target including this one except division by zero (left as a
// native panic, matching C's undefined behavior there with a loud
// failure instead of a silent one).
func WrappingDiv[T Unsigned](a, b T) T { return a / b }
func WrappingRem[T Unsigned](a, b T) T { return a % b }
