package autodiff

import "github.com/sanika-n/gunn-computational-graphs/internal/tensor"

// Operation is a backward variant in the computation graph: it captures
// exactly two operand variables and one local derivative rule.
//
// The variant set is closed — add, sub, mul and div in this package are
// the only implementations. Each instance is created atomically with the
// output variable that owns it and is immutable from then on.
type Operation[T tensor.Float, B tensor.Backend] interface {
	// Backward converts the incoming gradient into contributions for the
	// two operands via the local derivative rule, and pushes each
	// contribution into the operand with BackwardWith (first operand
	// before second, deterministically).
	Backward(accumGrad *tensor.RawTensor) error

	// Inputs returns the two operand variables in call order.
	Inputs() []*Variable[T, B]
}
