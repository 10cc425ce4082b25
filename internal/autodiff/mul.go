package autodiff

import (
	"fmt"

	"github.com/sanika-n/gunn-computational-graphs/internal/tensor"
)

// Mul builds the graph node for element-wise multiplication: out = a * b.
//
// Shapes must match exactly; on mismatch the builder fails with
// ErrShapeMismatch before allocating anything.
func Mul[T tensor.Float, B tensor.Backend](a, b *Variable[T, B]) (*Variable[T, B], error) {
	if !a.data.Shape().Equal(b.data.Shape()) {
		return nil, fmt.Errorf("mul: %w: %v vs %v", ErrShapeMismatch, a.data.Shape(), b.data.Shape())
	}

	defer a.data.ForceNonUnique()()
	defer b.data.ForceNonUnique()()

	out := New[T, B](a.backend.Mul(a.data, b.data), a.backend)
	out.SetSource(&mulOp[T, B]{a: a, b: b})
	return out, nil
}

// mulOp is the backward variant for element-wise multiplication.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = b * accumGrad
//   - d(a*b)/db = a, so grad_b = a * accumGrad
type mulOp[T tensor.Float, B tensor.Backend] struct {
	a, b *Variable[T, B]
}

// Backward applies the product rule and recurses into both operands.
func (op *mulOp[T, B]) Backward(accumGrad *tensor.RawTensor) error {
	// Operand values are read again on other paths through the graph;
	// keep the backend's inplace fast path away from them.
	defer op.a.data.ForceNonUnique()()
	defer op.b.data.ForceNonUnique()()

	backend := op.a.backend

	// grad_a = b * accumGrad
	gradA := backend.Mul(op.b.data, accumGrad)

	// grad_b = a * accumGrad
	gradB := backend.Mul(op.a.data, accumGrad)

	if err := op.a.BackwardWith(gradA); err != nil {
		return err
	}
	return op.b.BackwardWith(gradB)
}

// Inputs returns the operand variables [a, b].
func (op *mulOp[T, B]) Inputs() []*Variable[T, B] {
	return []*Variable[T, B]{op.a, op.b}
}
