package autodiff

import (
	"fmt"

	"github.com/sanika-n/gunn-computational-graphs/internal/tensor"
)

// Div builds the graph node for element-wise division: out = a / b.
//
// Shapes must match exactly; on mismatch the builder fails with
// ErrShapeMismatch before allocating anything. Division by zero is not
// special-cased: Inf/NaN propagate per IEEE-754.
func Div[T tensor.Float, B tensor.Backend](a, b *Variable[T, B]) (*Variable[T, B], error) {
	if !a.data.Shape().Equal(b.data.Shape()) {
		return nil, fmt.Errorf("div: %w: %v vs %v", ErrShapeMismatch, a.data.Shape(), b.data.Shape())
	}

	defer a.data.ForceNonUnique()()
	defer b.data.ForceNonUnique()()

	out := New[T, B](a.backend.Div(a.data, b.data), a.backend)
	out.SetSource(&divOp[T, B]{a: a, b: b})
	return out, nil
}

// divOp is the backward variant for element-wise division.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so grad_a = (1/b) * accumGrad
//   - d(a/b)/db = -a/b², so grad_b = (-a/b²) * accumGrad
type divOp[T tensor.Float, B tensor.Backend] struct {
	a, b *Variable[T, B]
}

// Backward applies the quotient rule and recurses into both operands.
func (op *divOp[T, B]) Backward(accumGrad *tensor.RawTensor) error {
	defer op.a.data.ForceNonUnique()()
	defer op.b.data.ForceNonUnique()()

	backend := op.a.backend

	// grad_a = (1/b) * accumGrad
	gradA := backend.Mul(backend.Recip(op.b.data), accumGrad)

	// grad_b = -(a / b²) * accumGrad
	bSquared := backend.Mul(op.b.data, op.b.data)
	gradB := backend.Mul(backend.Neg(backend.Div(op.a.data, bSquared)), accumGrad)

	if err := op.a.BackwardWith(gradA); err != nil {
		return err
	}
	return op.b.BackwardWith(gradB)
}

// Inputs returns the operand variables [a, b].
func (op *divOp[T, B]) Inputs() []*Variable[T, B] {
	return []*Variable[T, B]{op.a, op.b}
}
