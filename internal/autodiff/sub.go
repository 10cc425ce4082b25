package autodiff

import (
	"fmt"

	"github.com/sanika-n/gunn-computational-graphs/internal/tensor"
)

// Sub builds the graph node for element-wise subtraction: out = a - b.
//
// Shapes must match exactly; on mismatch the builder fails with
// ErrShapeMismatch before allocating anything.
func Sub[T tensor.Float, B tensor.Backend](a, b *Variable[T, B]) (*Variable[T, B], error) {
	if !a.data.Shape().Equal(b.data.Shape()) {
		return nil, fmt.Errorf("sub: %w: %v vs %v", ErrShapeMismatch, a.data.Shape(), b.data.Shape())
	}

	defer a.data.ForceNonUnique()()
	defer b.data.ForceNonUnique()()

	out := New[T, B](a.backend.Sub(a.data, b.data), a.backend)
	out.SetSource(&subOp[T, B]{a: a, b: b})
	return out, nil
}

// subOp is the backward variant for element-wise subtraction.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = accumGrad
//   - d(a-b)/db = -1, so grad_b = -accumGrad
type subOp[T tensor.Float, B tensor.Backend] struct {
	a, b *Variable[T, B]
}

// Backward pushes the incoming gradient into a and its negation into b.
func (op *subOp[T, B]) Backward(accumGrad *tensor.RawTensor) error {
	if err := op.a.BackwardWith(accumGrad); err != nil {
		return err
	}
	return op.b.BackwardWith(op.b.backend.Neg(accumGrad))
}

// Inputs returns the operand variables [a, b].
func (op *subOp[T, B]) Inputs() []*Variable[T, B] {
	return []*Variable[T, B]{op.a, op.b}
}
