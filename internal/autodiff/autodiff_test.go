package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanika-n/gunn-computational-graphs/internal/autodiff"
	"github.com/sanika-n/gunn-computational-graphs/internal/backend/cpu"
	"github.com/sanika-n/gunn-computational-graphs/internal/tensor"
)

// testBackend is shared across tests; the CPU backend is stateless.
var testBackend = cpu.New()

func leaf(t *testing.T, data []float32) *autodiff.Variable[float32, *cpu.CPUBackend] {
	t.Helper()
	v, err := autodiff.FromSlice(data, tensor.Shape{len(data)}, testBackend)
	require.NoError(t, err)
	return v
}

// TestLeaf_Construction tests leaf variables: zero grad, no source.
func TestLeaf_Construction(t *testing.T) {
	x := leaf(t, []float32{1, 2, 3})

	assert.True(t, x.IsLeaf())
	assert.Nil(t, x.Source())
	assert.Equal(t, []float32{1, 2, 3}, x.Values())
	assert.Equal(t, []float32{0, 0, 0}, x.GradValues())
	assert.True(t, x.Grad().Shape().Equal(x.Data().Shape()))
}

// TestAdd_ForwardAndBackward tests additivity: forward value and
// all-ones gradients for both operands.
func TestAdd_ForwardAndBackward(t *testing.T) {
	x := leaf(t, []float32{1, 2, 3})
	y := leaf(t, []float32{4, 5, 6})

	z, err := autodiff.Add(x, y)
	require.NoError(t, err)
	assert.Equal(t, []float32{5, 7, 9}, z.Values())

	require.NoError(t, z.Backward())
	assert.Equal(t, []float32{1, 1, 1}, x.GradValues())
	assert.Equal(t, []float32{1, 1, 1}, y.GradValues())
	assert.Equal(t, []float32{1, 1, 1}, z.GradValues())
}

// TestSub_Backward tests d(x-y)/dy = -1.
func TestSub_Backward(t *testing.T) {
	x := leaf(t, []float32{5, 7})
	y := leaf(t, []float32{2, 3})

	z, err := autodiff.Sub(x, y)
	require.NoError(t, err)
	assert.Equal(t, []float32{3, 4}, z.Values())

	require.NoError(t, z.Backward())
	assert.Equal(t, []float32{1, 1}, x.GradValues())
	assert.Equal(t, []float32{-1, -1}, y.GradValues())
}

// TestMul_SelfMultiplication tests the diamond case z = x * x:
// the shared node must receive contributions from both paths,
// summing to 2x.
func TestMul_SelfMultiplication(t *testing.T) {
	x := leaf(t, []float32{1, 2, 3})

	z, err := autodiff.Mul(x, x)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 4, 9}, z.Values())

	require.NoError(t, z.Backward())
	assert.Equal(t, []float32{2, 4, 6}, x.GradValues())
}

// TestDiv_QuotientRule tests z = x / y with a non-unit seed S:
// x.grad = S/y and y.grad = -S*x/y².
func TestDiv_QuotientRule(t *testing.T) {
	x := leaf(t, []float32{1, 2, 3})
	y := leaf(t, []float32{4, 5, 6})

	z, err := autodiff.Div(x, y)
	require.NoError(t, err)

	seed, err := tensor.FromSlice([]float32{2, 2, 2}, tensor.Shape{3}, tensor.CPU)
	require.NoError(t, err)
	require.NoError(t, z.BackwardWith(seed))

	xGrad := x.GradValues()
	yGrad := y.GradValues()
	xData := []float32{1, 2, 3}
	yData := []float32{4, 5, 6}
	for i := range xData {
		assert.InDelta(t, 2/yData[i], xGrad[i], 1e-6, "x.grad mismatch at index %d", i)
		assert.InDelta(t, -2*xData[i]/(yData[i]*yData[i]), yGrad[i], 1e-6, "y.grad mismatch at index %d", i)
	}
}

// TestBuilder_ShapeMismatch tests that builders fail before touching
// either operand.
func TestBuilder_ShapeMismatch(t *testing.T) {
	x := leaf(t, []float32{1, 2, 3})
	y := leaf(t, []float32{1, 2})

	for _, build := range []func(a, b *autodiff.Variable[float32, *cpu.CPUBackend]) (*autodiff.Variable[float32, *cpu.CPUBackend], error){
		autodiff.Add[float32, *cpu.CPUBackend],
		autodiff.Sub[float32, *cpu.CPUBackend],
		autodiff.Mul[float32, *cpu.CPUBackend],
		autodiff.Div[float32, *cpu.CPUBackend],
	} {
		z, err := build(x, y)
		require.ErrorIs(t, err, autodiff.ErrShapeMismatch)
		assert.Nil(t, z)
	}

	// Operand gradients stay untouched
	assert.Equal(t, []float32{0, 0, 0}, x.GradValues())
	assert.Equal(t, []float32{0, 0}, y.GradValues())
}

// TestBackward_Accumulation tests that repeated backward calls keep
// summing into the existing gradients.
func TestBackward_Accumulation(t *testing.T) {
	x := leaf(t, []float32{1, 2})
	y := leaf(t, []float32{3, 4})

	z, err := autodiff.Add(x, y)
	require.NoError(t, err)

	seed, err := tensor.FromSlice([]float32{2, 3}, tensor.Shape{2}, tensor.CPU)
	require.NoError(t, err)

	require.NoError(t, z.BackwardWith(seed))
	require.NoError(t, z.BackwardWith(seed))

	assert.Equal(t, []float32{4, 6}, x.GradValues())
	assert.Equal(t, []float32{4, 6}, y.GradValues())
	assert.Equal(t, []float32{4, 6}, z.GradValues())
}

// TestBackward_MultiHopChain tests d = (a + b) * a:
// da = 2a + b, db = a.
func TestBackward_MultiHopChain(t *testing.T) {
	a := leaf(t, []float32{1, 2, 3})
	b := leaf(t, []float32{4, 5, 6})

	c, err := autodiff.Add(a, b)
	require.NoError(t, err)

	d, err := autodiff.Mul(c, a)
	require.NoError(t, err)
	assert.Equal(t, []float32{5, 14, 27}, d.Values())

	seed, err := tensor.FromSlice([]float32{1, 1, 1}, tensor.Shape{3}, tensor.CPU)
	require.NoError(t, err)
	require.NoError(t, d.BackwardWith(seed))

	assert.Equal(t, []float32{6, 9, 12}, a.GradValues())
	assert.Equal(t, []float32{1, 2, 3}, b.GradValues())
}

// TestBackward_StackedDiamonds tests two reconvergent levels:
// y = x*x, z = y*y = x⁴, so dz/dx = 4x³. Each path must contribute
// independently and the contributions must sum.
func TestBackward_StackedDiamonds(t *testing.T) {
	x := leaf(t, []float32{1, 2, 3})

	y, err := autodiff.Mul(x, x)
	require.NoError(t, err)

	z, err := autodiff.Mul(y, y)
	require.NoError(t, err)

	require.NoError(t, z.Backward())

	xGrad := x.GradValues()
	for i, v := range []float32{1, 2, 3} {
		assert.InDelta(t, 4*v*v*v, xGrad[i], 1e-4, "dz/dx mismatch at index %d", i)
	}
}

// TestBackwardWith_ShapeMismatch tests that a bad seed mutates nothing.
func TestBackwardWith_ShapeMismatch(t *testing.T) {
	x := leaf(t, []float32{1, 2})
	y := leaf(t, []float32{3, 4})

	z, err := autodiff.Mul(x, y)
	require.NoError(t, err)

	bad, err := tensor.FromSlice([]float32{1, 1, 1}, tensor.Shape{3}, tensor.CPU)
	require.NoError(t, err)

	require.ErrorIs(t, z.BackwardWith(bad), autodiff.ErrShapeMismatch)
	assert.Equal(t, []float32{0, 0}, z.GradValues())
	assert.Equal(t, []float32{0, 0}, x.GradValues())
	assert.Equal(t, []float32{0, 0}, y.GradValues())
}

// TestZeroGrad tests the explicit gradient reset.
func TestZeroGrad(t *testing.T) {
	x := leaf(t, []float32{1, 2})
	y := leaf(t, []float32{3, 4})

	z, err := autodiff.Mul(x, y)
	require.NoError(t, err)
	require.NoError(t, z.Backward())
	assert.Equal(t, []float32{3, 4}, x.GradValues())

	x.ZeroGrad()
	y.ZeroGrad()
	z.ZeroGrad()

	assert.Equal(t, []float32{0, 0}, x.GradValues())

	// A fresh pass after reset matches the first
	require.NoError(t, z.Backward())
	assert.Equal(t, []float32{3, 4}, x.GradValues())
	assert.Equal(t, []float32{1, 2}, y.GradValues())
}

// TestSetSource_Twice tests the attach-once contract.
func TestSetSource_Twice(t *testing.T) {
	x := leaf(t, []float32{1})
	y := leaf(t, []float32{2})

	z, err := autodiff.Add(x, y)
	require.NoError(t, err)
	require.NotNil(t, z.Source())
	assert.Len(t, z.Source().Inputs(), 2)

	assert.Panics(t, func() {
		z.SetSource(z.Source())
	})
}

// TestOperandsUnchanged tests that forward and backward passes never
// mutate operand values.
func TestOperandsUnchanged(t *testing.T) {
	x := leaf(t, []float32{1, 2, 3})
	y := leaf(t, []float32{4, 5, 6})

	z, err := autodiff.Div(x, y)
	require.NoError(t, err)
	require.NoError(t, z.Backward())

	assert.Equal(t, []float32{1, 2, 3}, x.Values())
	assert.Equal(t, []float32{4, 5, 6}, y.Values())
}

// TestBackward_Float64 tests the float64 instantiation end to end.
func TestBackward_Float64(t *testing.T) {
	backend := cpu.New()

	x, err := autodiff.FromSlice([]float64{1.5, 2.5}, tensor.Shape{2}, backend)
	require.NoError(t, err)
	y, err := autodiff.FromSlice([]float64{2, 4}, tensor.Shape{2}, backend)
	require.NoError(t, err)

	z, err := autodiff.Mul(x, y)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 10}, z.Values())

	require.NoError(t, z.Backward())
	assert.Equal(t, []float64{2, 4}, x.GradValues())
	assert.Equal(t, []float64{1.5, 2.5}, y.GradValues())
}

// TestDiv_ByZeroFlowsThrough tests that Inf gradients are data, not errors.
func TestDiv_ByZeroFlowsThrough(t *testing.T) {
	x := leaf(t, []float32{1})
	y := leaf(t, []float32{0})

	z, err := autodiff.Div(x, y)
	require.NoError(t, err)

	require.NoError(t, z.Backward())
	assert.True(t, math.IsInf(float64(x.GradValues()[0]), 1), "1/0 gradient should be +Inf")
}
