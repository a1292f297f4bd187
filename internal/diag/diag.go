// Package diag formats the translation engine's fatal failures.
//
// There are no recoverable errors in the core: an unimplemented
// construct or a malformed AST both abort the current translation.
// Since the C AST this engine consumes carries no source positions, a
// Fault identifies the offending node by id and tag instead of by
// line/column.
package diag

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies why a translation aborted.
type Kind int

const (
	// Unimplemented means the AST used a tag, operator, or cast kind
	// this engine does not lower yet.
	Unimplemented Kind = iota
	// Malformed means the AST Context contract was violated: a missing
	// child, a wrong extras scalar type, or a dangling id.
	Malformed
)

func (k Kind) String() string {
	if k == Unimplemented {
		return "unimplemented construct"
	}
	return "malformed AST"
}

// Fault is the single error type the core ever raises.
type Fault struct {
	Kind    Kind
	NodeTag string
	NodeID  uint64
	Message string
	Cause   error
}

func (f *Fault) Error() string {
	if f.NodeTag != "" {
		return fmt.Sprintf("%s: %s (node %d, tag %s)", f.Kind, f.Message, f.NodeID, f.NodeTag)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

func (f *Fault) Unwrap() error { return f.Cause }

// Unimplementedf raises a Fault for a construct the lowering does not
// handle, identifying it by tag. It panics: callers recover once, at
// the driver boundary (see transpiler.Translate).
func Unimplementedf(nodeID uint64, tag string, format string, args ...any) {
	panic(&Fault{
		Kind:    Unimplemented,
		NodeID:  nodeID,
		NodeTag: tag,
		Message: fmt.Sprintf(format, args...),
	})
}

// Malformedf raises a Fault for a broken AST Context invariant.
func Malformedf(nodeID uint64, tag string, format string, args ...any) {
	panic(&Fault{
		Kind:    Malformed,
		NodeID:  nodeID,
		NodeTag: tag,
		Message: fmt.Sprintf(format, args...),
	})
}

// Wrap attaches a Fault-shaped cause from an arbitrary error, e.g. one
// surfaced while decoding the serialized AST before any node id exists.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}

// Recover turns a panicking *Fault into an error return. Any other
// panic value is re-raised: only Faults are part of this package's
// control-flow contract.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if f, ok := r.(*Fault); ok {
		*errp = f
		return
	}
	panic(r)
}
