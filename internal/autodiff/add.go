package autodiff

import (
	"fmt"

	"github.com/sanika-n/gunn-computational-graphs/internal/tensor"
)

// Add builds the graph node for element-wise addition: out = a + b.
//
// Shapes must match exactly (no broadcasting); on mismatch the builder
// fails with ErrShapeMismatch before allocating anything. Neither
// operand's value or gradient is touched at build time.
func Add[T tensor.Float, B tensor.Backend](a, b *Variable[T, B]) (*Variable[T, B], error) {
	if !a.data.Shape().Equal(b.data.Shape()) {
		return nil, fmt.Errorf("add: %w: %v vs %v", ErrShapeMismatch, a.data.Shape(), b.data.Shape())
	}

	// Keep the backend's inplace fast path away from operand buffers.
	defer a.data.ForceNonUnique()()
	defer b.data.ForceNonUnique()()

	out := New[T, B](a.backend.Add(a.data, b.data), a.backend)
	out.SetSource(&addOp[T, B]{a: a, b: b})
	return out, nil
}

// addOp is the backward variant for element-wise addition.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = accumGrad
//   - d(a+b)/db = 1, so grad_b = accumGrad
type addOp[T tensor.Float, B tensor.Backend] struct {
	a, b *Variable[T, B]
}

// Backward pushes the incoming gradient unchanged into both operands.
func (op *addOp[T, B]) Backward(accumGrad *tensor.RawTensor) error {
	if err := op.a.BackwardWith(accumGrad); err != nil {
		return err
	}
	return op.b.BackwardWith(accumGrad)
}

// Inputs returns the operand variables [a, b].
func (op *addOp[T, B]) Inputs() []*Variable[T, B] {
	return []*Variable[T, B]{op.a, op.b}
}
